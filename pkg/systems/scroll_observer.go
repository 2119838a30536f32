package systems

import "github.com/gonewx/herofx/pkg/utils"

// ScrollObserver 虚拟滚动区域观察者
//
// 监视偏移量 [start, end] 区间，把平滑后的偏移映射为 0~1 的进度。
// 离开区间下边界触发一次 OnLeave，重新回到区间触发一次 OnEnterBack。
// scrub > 0 时偏移量按指数平滑趋近目标，模拟滚动惯性。
type ScrollObserver struct {
	start float64
	end   float64
	scrub float64

	offset   float64 // 目标偏移
	smoothed float64 // 平滑后的偏移
	progress float64
	reported bool // 是否已上报过进度
	left     bool // 当前是否在区间下方
	closed   bool

	onProgress  func(p float64)
	onLeave     func()
	onEnterBack func()
}

// NewScrollObserver 创建滚动观察者
// end <= start 时区间被修正为 [start, start+1]
func NewScrollObserver(start, end, scrub float64) *ScrollObserver {
	if end <= start {
		end = start + 1
	}
	if scrub < 0 {
		scrub = 0
	}
	return &ScrollObserver{
		start: start,
		end:   end,
		scrub: scrub,
	}
}

// OnProgress 注册进度回调，进度变化时触发
func (so *ScrollObserver) OnProgress(callback func(p float64)) {
	so.onProgress = callback
}

// OnLeave 注册离开区间回调
func (so *ScrollObserver) OnLeave(callback func()) {
	so.onLeave = callback
}

// OnEnterBack 注册回到区间回调
func (so *ScrollObserver) OnEnterBack(callback func()) {
	so.onEnterBack = callback
}

// SetOffset 设置目标偏移，负值被钳制为 0
func (so *ScrollObserver) SetOffset(offset float64) {
	if offset < 0 {
		offset = 0
	}
	so.offset = offset
}

// ScrollBy 叠加偏移增量
func (so *ScrollObserver) ScrollBy(delta float64) {
	so.SetOffset(so.offset + delta)
}

// Offset 返回当前目标偏移
func (so *ScrollObserver) Offset() float64 {
	return so.offset
}

// Progress 返回最近上报的进度
func (so *ScrollObserver) Progress() float64 {
	return so.progress
}

// Update 推进平滑并派发回调
func (so *ScrollObserver) Update(dt float64) {
	if so.closed {
		return
	}

	if so.scrub > 0 {
		so.smoothed += (so.offset - so.smoothed) * utils.Clamp01(so.scrub*dt)
	} else {
		so.smoothed = so.offset
	}

	// 离开区间下边界
	if so.smoothed > so.end {
		if !so.left {
			so.left = true
			if so.onLeave != nil {
				so.onLeave()
			}
		}
		return
	}

	// 从区间下方回来
	if so.left {
		so.left = false
		if so.onEnterBack != nil {
			so.onEnterBack()
		}
	}

	p := utils.Clamp01((so.smoothed - so.start) / (so.end - so.start))
	if !so.reported || p != so.progress {
		so.reported = true
		so.progress = p
		if so.onProgress != nil {
			so.onProgress(p)
		}
	}
}

// Close 停止观察，后续 Update 为无操作
func (so *ScrollObserver) Close() {
	so.closed = true
	so.onProgress = nil
	so.onLeave = nil
	so.onEnterBack = nil
}
