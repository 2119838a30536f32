package game

import "github.com/hajimehoshi/ebiten/v2"

// Scene 场景接口
type Scene interface {
	// Update 更新场景逻辑，deltaTime 为帧间隔（秒）
	Update(deltaTime float64)

	// Draw 绘制场景到屏幕
	Draw(screen *ebiten.Image)
}

// Resizable 可响应窗口尺寸变化的场景
type Resizable interface {
	// Resize 通知场景新的逻辑尺寸（像素），设备缩放由场景内部处理
	Resize(width, height int)
}

// Disposable 持有需要显式释放资源的场景
type Disposable interface {
	// Dispose 释放场景资源，调用后场景不再可用
	Dispose()
}
