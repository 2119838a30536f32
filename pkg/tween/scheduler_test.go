package tween

import (
	"math"
	"testing"

	"github.com/gonewx/herofx/pkg/utils"
)

// TestAnimateBasic 测试基本插值推进
func TestAnimateBasic(t *testing.T) {
	s := NewScheduler()
	value := 0.0

	s.Animate(&value, Config{
		Props:    []Prop{{Ptr: &value, From: 0, To: 10}},
		Duration: 1.0,
	})

	s.Update(0.5)
	if math.Abs(value-5) > 0.001 {
		t.Errorf("半程后 value = %v, 期望 5", value)
	}

	s.Update(0.5)
	if math.Abs(value-10) > 0.001 {
		t.Errorf("完成后 value = %v, 期望 10", value)
	}
	if s.ActiveCount() != 0 {
		t.Errorf("完成后 ActiveCount = %d, 期望 0", s.ActiveCount())
	}
}

// TestAnimateOvershoot 测试超出时长的推进被钳制到终点
func TestAnimateOvershoot(t *testing.T) {
	s := NewScheduler()
	value := 0.0

	s.Animate(&value, Config{
		Props:    []Prop{{Ptr: &value, From: 0, To: 10}},
		Duration: 1.0,
	})

	s.Update(5.0)
	if value != 10 {
		t.Errorf("超长推进后 value = %v, 期望精确等于 10", value)
	}
}

// TestZeroDuration 测试零时长补间在首次推进时立即完成
func TestZeroDuration(t *testing.T) {
	s := NewScheduler()
	value := 0.0
	completed := false

	s.Animate(&value, Config{
		Props:      []Prop{{Ptr: &value, From: 0, To: 7}},
		Duration:   0,
		OnComplete: func() { completed = true },
	})

	s.Update(0.016)
	if value != 7 {
		t.Errorf("零时长补间后 value = %v, 期望 7", value)
	}
	if !completed {
		t.Error("零时长补间应在首次推进时触发 OnComplete")
	}
}

// TestDelay 测试延迟启动
func TestDelay(t *testing.T) {
	s := NewScheduler()
	value := 0.0

	s.Animate(&value, Config{
		Props:    []Prop{{Ptr: &value, From: 0, To: 10}},
		Duration: 1.0,
		Delay:    0.5,
	})

	s.Update(0.3)
	if value != 0 {
		t.Errorf("延迟期内 value = %v, 不应被修改", value)
	}

	s.Update(0.7) // 累计 1.0 = delay 0.5 + 进度 0.5
	if math.Abs(value-5) > 0.001 {
		t.Errorf("延迟结束半程后 value = %v, 期望 5", value)
	}
}

// TestEaseApplied 测试缓动曲线生效
func TestEaseApplied(t *testing.T) {
	s := NewScheduler()
	value := 0.0

	s.Animate(&value, Config{
		Props:    []Prop{{Ptr: &value, From: 0, To: 1}},
		Duration: 1.0,
		Ease:     utils.EaseOutCubic,
	})

	s.Update(0.5)
	expected := utils.EaseOutCubic(0.5)
	if math.Abs(value-expected) > 0.001 {
		t.Errorf("缓出半程 value = %v, 期望 %v", value, expected)
	}
}

// TestOnUpdateCallback 测试每帧回调收到缓动后的进度
func TestOnUpdateCallback(t *testing.T) {
	s := NewScheduler()
	value := 0.0
	var lastProgress float64
	calls := 0

	s.Animate(&value, Config{
		Props:    []Prop{{Ptr: &value, From: 0, To: 1}},
		Duration: 1.0,
		OnUpdate: func(p float64) {
			lastProgress = p
			calls++
		},
	})

	s.Update(0.25)
	s.Update(0.25)
	if calls != 2 {
		t.Errorf("OnUpdate 调用次数 = %d, 期望 2", calls)
	}
	if math.Abs(lastProgress-0.5) > 0.001 {
		t.Errorf("最后一次进度 = %v, 期望 0.5", lastProgress)
	}
}

// TestCancel 测试取消补间后回调不再触发、属性保持当前值
func TestCancel(t *testing.T) {
	s := NewScheduler()
	value := 0.0
	completed := false

	h := s.Animate(&value, Config{
		Props:      []Prop{{Ptr: &value, From: 0, To: 10}},
		Duration:   1.0,
		OnComplete: func() { completed = true },
	})

	s.Update(0.3)
	h.Cancel()
	frozen := value

	s.Update(1.0)
	if value != frozen {
		t.Errorf("取消后 value 变为 %v, 应保持 %v", value, frozen)
	}
	if completed {
		t.Error("被取消的补间不应触发 OnComplete")
	}
	if s.ActiveCount() != 0 {
		t.Errorf("取消后 ActiveCount = %d, 期望 0", s.ActiveCount())
	}
}

// TestOverwrite 测试覆盖模式取消同目标的在途补间
func TestOverwrite(t *testing.T) {
	s := NewScheduler()
	value := 0.0
	target := &value
	firstCompleted := false

	s.Animate(target, Config{
		Props:      []Prop{{Ptr: &value, From: 0, To: 100}},
		Duration:   1.0,
		OnComplete: func() { firstCompleted = true },
	})
	s.Update(0.1)

	// 覆盖补间：旧补间被取消
	s.Animate(target, Config{
		Props:     []Prop{{Ptr: &value, From: value, To: 5}},
		Duration:  0.5,
		Overwrite: true,
	})

	if s.ActiveCount() != 1 {
		t.Errorf("覆盖后 ActiveCount = %d, 期望 1", s.ActiveCount())
	}

	s.Update(0.5)
	if math.Abs(value-5) > 0.001 {
		t.Errorf("覆盖补间完成后 value = %v, 期望 5", value)
	}
	if firstCompleted {
		t.Error("被覆盖的补间不应触发 OnComplete")
	}
}

// TestCancelTarget 测试按目标批量取消
func TestCancelTarget(t *testing.T) {
	s := NewScheduler()
	v1, v2 := 0.0, 0.0
	target := &struct{}{}

	s.Animate(target, Config{Props: []Prop{{Ptr: &v1, From: 0, To: 1}}, Duration: 1})
	s.Animate(target, Config{Props: []Prop{{Ptr: &v2, From: 0, To: 1}}, Duration: 1})
	s.Animate(&v1, Config{Props: []Prop{{Ptr: &v1, From: 0, To: 1}}, Duration: 1})

	s.CancelTarget(target)

	if s.ActiveCount() != 1 {
		t.Errorf("按目标取消后 ActiveCount = %d, 期望 1（其他目标不受影响）", s.ActiveCount())
	}
}

// TestOnCompleteCanAnimate 测试完成回调中提交新补间不会干扰本轮推进
func TestOnCompleteCanAnimate(t *testing.T) {
	s := NewScheduler()
	v1, v2 := 0.0, 0.0

	s.Animate(&v1, Config{
		Props:    []Prop{{Ptr: &v1, From: 0, To: 1}},
		Duration: 0.1,
		OnComplete: func() {
			// 链式补间：完成时启动下一段
			s.Animate(&v2, Config{
				Props:    []Prop{{Ptr: &v2, From: 0, To: 1}},
				Duration: 0.1,
			})
		},
	})

	s.Update(0.2)
	if v2 != 0 {
		t.Errorf("新补间不应在提交的同一轮被推进: v2 = %v", v2)
	}
	if s.ActiveCount() != 1 {
		t.Errorf("链式补间应在队列中: ActiveCount = %d", s.ActiveCount())
	}

	s.Update(0.2)
	if v2 != 1 {
		t.Errorf("链式补间完成后 v2 = %v, 期望 1", v2)
	}
}
