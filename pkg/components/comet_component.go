package components

import (
	"image/color"

	"github.com/gonewx/herofx/pkg/utils"
)

// CometComponent 表示两点之间的一条瞬态有向动画连线（彗星）
//
// 头部进度 HeadProgress 由补间调度器从 0 匀速推进到 1，
// 尾部起点 TailStart 始终维持不变量：
//
//	TailStart = max(0, HeadProgress - tailLength)
//
// 头部补间完成后彗星被标记不可见并销毁，同时在 Target 处生成爆炸效果。
//
// This is a pure data component following ECS principles - it contains no methods.
type CometComponent struct {
	// Source / Target 连线的起点与终点（画布像素空间，创建后不变）
	Source utils.Point
	Target utils.Point

	// HeadProgress 头部沿路径的归一化位置 ∈ [0,1]
	HeadProgress float64
	// TailStart 尾部起点的归一化位置 ∈ [0,1]，不会超过 HeadProgress
	TailStart float64

	// Color 从调色板随机选取的线条颜色
	Color color.RGBA

	// Visible 补间完成后置为 false，渲染时跳过
	Visible bool
}
