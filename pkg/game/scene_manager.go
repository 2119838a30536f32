package game

import "github.com/hajimehoshi/ebiten/v2"

// SceneManager 场景管理器
// 负责场景切换并保证被替换场景的资源得到释放
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager 创建场景管理器
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换到新场景
// 旧场景若实现 Disposable 会先被释放
func (sm *SceneManager) SwitchTo(scene Scene) {
	if d, ok := sm.currentScene.(Disposable); ok {
		d.Dispose()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Resize 转发尺寸变化给当前场景
func (sm *SceneManager) Resize(width, height int) {
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}
