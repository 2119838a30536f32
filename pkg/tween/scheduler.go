// Package tween 提供数值属性插值调度器
//
// 调度器将一组 float64 属性在指定时长内从起始值插值到目标值，
// 支持缓动曲线、延迟启动、覆盖模式（同一目标上的在途补间被取消）
// 以及完成回调。所有补间由外部帧循环通过 Update(dt) 统一推进，
// 不依赖任何后台 goroutine（单线程协作式调度）。
package tween

import (
	"github.com/gonewx/herofx/pkg/utils"
)

// Prop 描述一个待插值的属性
// 每次更新时 *Ptr = Lerp(From, To, eased)
type Prop struct {
	Ptr  *float64
	From float64
	To   float64
}

// Config 定义一次补间的全部参数
type Config struct {
	// Props 本次补间驱动的属性列表
	Props []Prop
	// Duration 插值时长（秒），0 表示在下一次 Update 立即完成
	Duration float64
	// Delay 启动延迟（秒）
	Delay float64
	// Ease 缓动曲线，nil 时使用线性缓动
	Ease utils.EaseFunc
	// Overwrite 为 true 时，启动前取消同一 target 上所有在途补间
	// 用于滚动事件高频触发场景，防止补间队列堆积
	Overwrite bool
	// OnUpdate 每次推进后回调，参数为缓动后的进度值 ∈ [0,1]
	OnUpdate func(t float64)
	// OnComplete 补间自然完成时回调（被取消的补间不会触发）
	OnComplete func()
}

// Handle 代表一个已提交的补间，可用于取消
type Handle struct {
	tw *tweenState
}

// Cancel 取消补间
// 取消后属性保持当前值，OnUpdate / OnComplete 均不再触发
func (h *Handle) Cancel() {
	if h != nil && h.tw != nil {
		h.tw.cancelled = true
	}
}

// tweenState 是单个补间的运行时状态
type tweenState struct {
	target    interface{}
	cfg       Config
	age       float64
	started   bool // 是否已对属性做过首次写入（Delay 结束后为 true）
	done      bool
	cancelled bool
}

// Scheduler 补间调度器
// 非并发安全：仅允许从帧循环所在的单一逻辑线程访问
type Scheduler struct {
	tweens []*tweenState
}

// NewScheduler 创建一个新的补间调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		tweens: make([]*tweenState, 0, 64),
	}
}

// Animate 提交一个针对 target 的补间
// target 仅用作覆盖模式与 CancelTarget 的键，可为 nil（此时不可被覆盖）
func (s *Scheduler) Animate(target interface{}, cfg Config) *Handle {
	if cfg.Ease == nil {
		cfg.Ease = utils.EaseLinear
	}
	if cfg.Overwrite && target != nil {
		s.CancelTarget(target)
	}

	tw := &tweenState{
		target: target,
		cfg:    cfg,
	}
	s.tweens = append(s.tweens, tw)
	return &Handle{tw: tw}
}

// CancelTarget 取消 target 上的所有在途补间
func (s *Scheduler) CancelTarget(target interface{}) {
	if target == nil {
		return
	}
	for _, tw := range s.tweens {
		if tw.target == target && !tw.done {
			tw.cancelled = true
		}
	}
}

// ActiveCount 返回当前在途（未完成且未取消）的补间数量
func (s *Scheduler) ActiveCount() int {
	count := 0
	for _, tw := range s.tweens {
		if !tw.done && !tw.cancelled {
			count++
		}
	}
	return count
}

// Update 推进所有在途补间
// dt 为距上次推进的时间（秒）。OnComplete 回调允许提交新的补间，
// 新补间从下一次 Update 开始推进。
func (s *Scheduler) Update(dt float64) {
	// 对快照遍历：回调中 Animate 追加的新补间不会在本轮被推进
	snapshot := s.tweens

	for _, tw := range snapshot {
		if tw.done || tw.cancelled {
			continue
		}

		tw.age += dt
		if tw.age < tw.cfg.Delay {
			continue
		}

		var t float64
		if tw.cfg.Duration <= 0 {
			t = 1
		} else {
			t = utils.Clamp01((tw.age - tw.cfg.Delay) / tw.cfg.Duration)
		}
		eased := tw.cfg.Ease(t)

		for _, p := range tw.cfg.Props {
			if p.Ptr != nil {
				*p.Ptr = utils.Lerp(p.From, p.To, eased)
			}
		}
		tw.started = true

		if tw.cfg.OnUpdate != nil {
			tw.cfg.OnUpdate(eased)
		}

		if t >= 1 {
			tw.done = true
			if tw.cfg.OnComplete != nil {
				tw.cfg.OnComplete()
			}
		}
	}

	s.compact()
}

// compact 移除已完成或已取消的补间
func (s *Scheduler) compact() {
	alive := s.tweens[:0]
	for _, tw := range s.tweens {
		if !tw.done && !tw.cancelled {
			alive = append(alive, tw)
		}
	}
	s.tweens = alive
}
