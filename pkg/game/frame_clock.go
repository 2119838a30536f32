package game

// ClockToken 订阅凭据，用于取消订阅
type ClockToken uint64

// FrameClock 帧时钟
//
// 每帧以真实帧间隔驱动所有订阅者，订阅者按加入顺序被调用。
// Tick 过程中取消订阅立即生效：被移除的订阅者在同一帧内不再被调用。
type FrameClock struct {
	nextToken ClockToken
	order     []ClockToken
	callbacks map[ClockToken]func(dt float64)
}

// NewFrameClock 创建帧时钟
func NewFrameClock() *FrameClock {
	return &FrameClock{
		nextToken: 1,
		callbacks: make(map[ClockToken]func(dt float64)),
	}
}

// Subscribe 注册每帧回调，返回用于取消的凭据
func (fc *FrameClock) Subscribe(callback func(dt float64)) ClockToken {
	token := fc.nextToken
	fc.nextToken++
	fc.order = append(fc.order, token)
	fc.callbacks[token] = callback
	return token
}

// Unsubscribe 取消订阅，未知凭据为无操作
func (fc *FrameClock) Unsubscribe(token ClockToken) {
	if _, ok := fc.callbacks[token]; !ok {
		return
	}
	delete(fc.callbacks, token)
	kept := fc.order[:0]
	for _, t := range fc.order {
		if t != token {
			kept = append(kept, t)
		}
	}
	fc.order = kept
}

// SubscriberCount 返回当前订阅者数量
func (fc *FrameClock) SubscriberCount() int {
	return len(fc.callbacks)
}

// Tick 按订阅顺序驱动所有订阅者
// 回调中新增的订阅者要到下一帧才会被调用
func (fc *FrameClock) Tick(dt float64) {
	snapshot := make([]ClockToken, len(fc.order))
	copy(snapshot, fc.order)
	for _, token := range snapshot {
		callback, ok := fc.callbacks[token]
		if !ok {
			continue
		}
		callback(dt)
	}
}
