package systems

import (
	"log"
	"math/rand"
	"strings"
	"unicode"

	"github.com/gonewx/herofx/pkg/components"
	"github.com/gonewx/herofx/pkg/config"
	"github.com/gonewx/herofx/pkg/tween"
	"github.com/gonewx/herofx/pkg/utils"
)

// LetterFallSystem 标题字母下落控制器
//
// 把标题文本分解为独立字母，每个字母在挂载时分配一组固定的随机
// 下落参数。入场动画从下方上浮淡入，之后由滚动进度驱动各字母按
// 自己的延迟因子依次下落、漂移、旋转并淡出。
type LetterFallSystem struct {
	scheduler *tween.Scheduler
	cfg       *config.LettersConfig
	rng       *rand.Rand

	title   string
	letters []*components.LetterComponent

	observer      *ScrollObserver
	reducedMotion bool
}

// NewLetterFallSystem 创建字母下落控制器
func NewLetterFallSystem(scheduler *tween.Scheduler, cfg *config.LettersConfig, rng *rand.Rand) *LetterFallSystem {
	return &LetterFallSystem{
		scheduler: scheduler,
		cfg:       cfg,
		rng:       rng,
	}
}

// SetReducedMotion 设置减弱动画模式
// 开启后入场动画被跳过，字母直接出现在最终位置
func (ls *LetterFallSystem) SetReducedMotion(reduced bool) {
	ls.reducedMotion = reduced
}

// Decompose 把标题文本分解为字母组件
//
// 每个非空格字母分配一组随机下落参数，参数在字母整个生命周期内
// 保持稳定。对相同标题重复调用是幂等的（不会重新随机化）。
func (ls *LetterFallSystem) Decompose(title string) {
	if ls.letters != nil && ls.title == title {
		return
	}

	ls.title = title
	ls.letters = make([]*components.LetterComponent, 0, len(title))

	for _, ch := range title {
		letter := &components.LetterComponent{
			Char:    ch,
			IsSpace: unicode.IsSpace(ch),
			Opacity: 1,
		}
		if !letter.IsSpace {
			letter.FallDistance = ls.cfg.FallDistance * (0.5 + ls.rng.Float64()*0.5)
			letter.HorizontalDrift = (ls.rng.Float64()*2 - 1) * ls.cfg.MaxHorizontalDrift
			letter.RotationMagnitude = (ls.rng.Float64()*2 - 1) * ls.cfg.MaxRotation
			letter.DelayFactor = ls.rng.Float64()
		}
		ls.letters = append(ls.letters, letter)
	}

	log.Printf("[LetterFallSystem] Decomposed %q into %d letters (%d animated)", title, len(ls.letters), ls.animatedCount())
}

// Letters 返回字母组件列表
func (ls *LetterFallSystem) Letters() []*components.LetterComponent {
	return ls.letters
}

// Reconstruct 由字母组件重组标题文本
func (ls *LetterFallSystem) Reconstruct() string {
	var b strings.Builder
	for _, letter := range ls.letters {
		b.WriteRune(letter.Char)
	}
	return b.String()
}

// PlayEntrance 播放入场动画
// 每个字母从下方 100 像素处上浮淡入，按索引错峰启动。
// 减弱动画模式下直接设置最终状态。
func (ls *LetterFallSystem) PlayEntrance() {
	animIndex := 0
	for _, letter := range ls.letters {
		if letter.IsSpace {
			continue
		}

		if ls.reducedMotion {
			letter.Y = 0
			letter.Opacity = 1
			continue
		}

		letter.Y = config.LetterEntranceOffsetY
		letter.Opacity = 0
		ls.scheduler.Animate(letter, tween.Config{
			Props: []tween.Prop{
				{Ptr: &letter.Y, From: config.LetterEntranceOffsetY, To: 0},
				{Ptr: &letter.Opacity, From: 0, To: 1},
			},
			Duration:  ls.cfg.EntranceDuration,
			Delay:     ls.cfg.EntranceDelay + ls.cfg.StaggerDelay*float64(animIndex),
			Ease:      utils.EaseOutCubic,
			Overwrite: true,
		})
		animIndex++
	}
}

// BindScroll 绑定滚动观察者
// 进度变化驱动字母下落，离开区间淡出，回到区间恢复
func (ls *LetterFallSystem) BindScroll(observer *ScrollObserver) {
	ls.observer = observer
	observer.OnProgress(ls.applyProgress)
	observer.OnLeave(ls.fadeOut)
	observer.OnEnterBack(ls.restore)
}

// applyProgress 把滚动进度 p ∈ [0,1] 映射到每个字母的下落状态
//
// 单字母进度 f = clamp((p - delayFactor × delayScale) / progressDivisor, 0, 1)，
// 延迟因子大的字母起步晚。短覆盖补间吸收高频滚动事件。
func (ls *LetterFallSystem) applyProgress(p float64) {
	// 减弱动画模式下字母固定在静止位置，不响应滚动
	if ls.reducedMotion {
		return
	}
	for _, letter := range ls.letters {
		if letter.IsSpace {
			continue
		}

		f := utils.Clamp01((p - letter.DelayFactor*ls.cfg.DelayScale) / ls.cfg.ProgressDivisor)

		ls.scheduler.Animate(letter, tween.Config{
			Props: []tween.Prop{
				{Ptr: &letter.Y, From: letter.Y, To: f * letter.FallDistance},
				{Ptr: &letter.X, From: letter.X, To: f * letter.HorizontalDrift},
				{Ptr: &letter.Rotation, From: letter.Rotation, To: f * letter.RotationMagnitude},
				{Ptr: &letter.Opacity, From: letter.Opacity, To: 1 - f},
			},
			Duration:  ls.cfg.ScrollTweenDuration,
			Ease:      utils.EaseLinear,
			Overwrite: true,
		})
	}
}

// fadeOut 滚动离开区间时整体淡出
func (ls *LetterFallSystem) fadeOut() {
	if ls.reducedMotion {
		return
	}
	for _, letter := range ls.letters {
		if letter.IsSpace {
			continue
		}
		ls.scheduler.Animate(letter, tween.Config{
			Props: []tween.Prop{
				{Ptr: &letter.Opacity, From: letter.Opacity, To: 0},
			},
			Duration:  ls.cfg.ScrollTweenDuration,
			Ease:      utils.EaseLinear,
			Overwrite: true,
		})
	}
}

// restore 滚动回到区间时恢复静止状态
// 随后的进度回调会立即接管，继续按当前进度驱动下落
func (ls *LetterFallSystem) restore() {
	for _, letter := range ls.letters {
		if letter.IsSpace {
			continue
		}
		ls.scheduler.Animate(letter, tween.Config{
			Props: []tween.Prop{
				{Ptr: &letter.Y, From: letter.Y, To: 0},
				{Ptr: &letter.X, From: letter.X, To: 0},
				{Ptr: &letter.Rotation, From: letter.Rotation, To: 0},
				{Ptr: &letter.Opacity, From: letter.Opacity, To: 1},
			},
			Duration:  ls.cfg.ScrollTweenDuration,
			Ease:      utils.EaseLinear,
			Overwrite: true,
		})
	}
}

// Teardown 停止滚动观察并取消全部在途补间
func (ls *LetterFallSystem) Teardown() {
	if ls.observer != nil {
		ls.observer.Close()
		ls.observer = nil
	}
	for _, letter := range ls.letters {
		ls.scheduler.CancelTarget(letter)
	}
}

// animatedCount 返回参与动画的（非空格）字母数量
func (ls *LetterFallSystem) animatedCount() int {
	count := 0
	for _, letter := range ls.letters {
		if !letter.IsSpace {
			count++
		}
	}
	return count
}
