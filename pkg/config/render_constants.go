package config

// 渲染常量
//
// 这些是视觉签名的固定参数，不暴露为配置项：
// 彗星尾巴的三段渐变与爆炸径向渐变的透明度停靠点必须精确复现。

const (
	// MaxNumPoints 点云密度硬上限（防止配置失误拖垮每帧绘制）
	MaxNumPoints = 10000

	// CometMidAlpha 彗星尾巴渐变中点的透明度系数
	CometMidAlpha = 0.5

	// CometHeadRadiusFactor 头部圆点半径相对点半径的倍数
	CometHeadRadiusFactor = 1.5

	// CometHeadBrighten 头部圆点相对线条颜色向白色混合的比例
	CometHeadBrighten = 0.35

	// ExplosionStartOpacity 爆炸初始不透明度
	ExplosionStartOpacity = 0.8

	// ExplosionCoreAlpha 爆炸径向渐变核心透明度系数
	ExplosionCoreAlpha = 0.9

	// ExplosionMidAlpha 爆炸径向渐变中途停靠点透明度系数
	ExplosionMidAlpha = 0.5

	// ExplosionMidRadiusFraction 中途停靠点所在的半径比例
	ExplosionMidRadiusFraction = 0.6

	// ExplosionMinOpacity / ExplosionMinRadius 低于该阈值的爆炸跳过绘制
	// （肉眼不可见的形状没有绘制价值）
	ExplosionMinOpacity = 0.01
	ExplosionMinRadius  = 0.1

	// ExplosionFanSegments 径向渐变三角扇的分段数
	ExplosionFanSegments = 24

	// LetterEntranceOffsetY 字母入场动画的初始垂直偏移（像素）
	LetterEntranceOffsetY = 100.0

	// MaxDeviceScale 画布像素尺寸跟踪设备像素比的上限
	// 高密度屏上超过 2x 的渲染开销不值得
	MaxDeviceScale = 2.0
)
