package components

// LetterComponent 表示标题中的单个字形，可独立变换
//
// 字母在挂载时被分配一组固定的随机下落参数（FallDistance、
// HorizontalDrift、RotationMagnitude、DelayFactor）。这些参数在整个
// 生命周期内保持稳定，不随重新渲染重新随机化，因此给定滚动进度时
// 下落轨迹是确定的。
//
// 空格字符 IsSpace=true，不参与动画（没有可见字形），但在重组标题
// 文本时保留原始位置。
type LetterComponent struct {
	// Char 原始字符
	Char rune
	// IsSpace 空格字符标记，空格不参与动画
	IsSpace bool

	// 当前动画状态（由补间调度器驱动）
	X        float64 // 水平位移（像素）
	Y        float64 // 垂直位移（像素）
	Rotation float64 // 旋转角度（度）
	Opacity  float64 // 不透明度 ∈ [0,1]

	// 挂载时生成的固定随机下落参数
	FallDistance      float64 // 下落总距离（像素）
	HorizontalDrift   float64 // 水平漂移量（像素，可为负）
	RotationMagnitude float64 // 旋转幅度（度，可为负）
	DelayFactor       float64 // 下落启动延迟因子 ∈ [0,1)
}
