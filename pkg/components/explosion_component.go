package components

import "image/color"

// ExplosionComponent 表示彗星到达终点时生成的径向爆炸效果
//
// Radius 从点半径增长到 pointRadius × explosionMaxRadiusFactor，
// Opacity 在同一补间内从 0.8 衰减到 0（缓出曲线）。
// 补间完成后实体被销毁。
//
// This is a pure data component following ECS principles - it contains no methods.
type ExplosionComponent struct {
	// X / Y 爆炸中心（画布像素空间，即彗星的终点）
	X float64
	Y float64

	// Color 继承自触发爆炸的彗星
	Color color.RGBA

	// Radius 当前半径（像素）
	Radius float64
	// Opacity 当前不透明度 ∈ [0,1]
	Opacity float64
}
