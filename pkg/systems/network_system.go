package systems

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/herofx/pkg/components"
	"github.com/gonewx/herofx/pkg/config"
	"github.com/gonewx/herofx/pkg/ecs"
	"github.com/gonewx/herofx/pkg/game"
	"github.com/gonewx/herofx/pkg/tween"
	"github.com/gonewx/herofx/pkg/utils"
)

// lifecycleState 引擎生命周期状态
type lifecycleState int

const (
	stateUninitialized lifecycleState = iota
	stateRunning
	stateDisposed
)

// NetworkSystem 点云网络动画引擎
//
// 生命周期：NewNetworkSystem → Initialize → (每帧由帧时钟驱动 step) → Teardown。
// Initialize 生成点云并订阅帧时钟；Teardown 退订并清空全部实体，
// 之后任何帧时钟节拍都不会再触碰画布。
type NetworkSystem struct {
	em        *ecs.EntityManager
	scheduler *tween.Scheduler
	clock     *game.FrameClock
	render    *NetworkRenderSystem
	cfg       *config.NetworkConfig
	rng       *rand.Rand

	state      lifecycleState
	clockToken game.ClockToken

	points  []utils.Point
	palette []color.RGBA

	canvas *ebiten.Image
	width  float64 // 画布像素宽度（已含设备缩放）
	height float64
	scale  float64

	spawnElapsed float64
	warmupDone   bool

	// 每个彗星/爆炸组件对应的在途补间，尺寸变化时整体取消
	handles map[interface{}]*tween.Handle
}

// NewNetworkSystem 创建网络动画引擎（未初始化状态）
func NewNetworkSystem(em *ecs.EntityManager, scheduler *tween.Scheduler, clock *game.FrameClock, cfg *config.NetworkConfig, rng *rand.Rand) *NetworkSystem {
	return &NetworkSystem{
		em:        em,
		scheduler: scheduler,
		clock:     clock,
		render:    NewNetworkRenderSystem(em, cfg),
		cfg:       cfg,
		rng:       rng,
		handles:   make(map[interface{}]*tween.Handle),
	}
}

// Initialize 初始化引擎：生成点云、创建画布并订阅帧时钟
//
// width / height 为逻辑像素，scale 为设备像素比（钳制到 [1, MaxDeviceScale]）。
// 重复初始化或非法尺寸为无操作。
func (ns *NetworkSystem) Initialize(width, height int, scale float64) {
	if ns.state != stateUninitialized {
		log.Printf("[NetworkSystem] Initialize ignored: state=%d", ns.state)
		return
	}
	if width <= 0 || height <= 0 {
		log.Printf("[NetworkSystem] Initialize ignored: invalid size %dx%d", width, height)
		return
	}

	ns.scale = utils.Clamp(scale, 1, config.MaxDeviceScale)
	ns.width = float64(width) * ns.scale
	ns.height = float64(height) * ns.scale

	ns.points = utils.RandomPoints(ns.cfg.NumPoints, ns.width, ns.height, ns.rng)
	ns.em.Clear()
	ns.canvas = ebiten.NewImage(int(ns.width), int(ns.height))

	ns.clockToken = ns.clock.Subscribe(ns.step)
	ns.state = stateRunning
	log.Printf("[NetworkSystem] Initialized: %dx%d scale=%.1f points=%d", width, height, ns.scale, len(ns.points))
}

// SetPalette 设置彗星调色板与主题颜色
func (ns *NetworkSystem) SetPalette(palette []color.RGBA, pointColor, background color.RGBA) {
	ns.palette = palette
	ns.render.SetColors(pointColor, background)
}

// Resize 响应画布尺寸变化
// 在途彗星和爆炸全部丢弃，点云按新尺寸重新生成
func (ns *NetworkSystem) Resize(width, height int) {
	if ns.state != stateRunning {
		return
	}
	if width <= 0 || height <= 0 {
		return
	}

	ns.cancelAllTweens()
	ns.em.Clear()

	ns.width = float64(width) * ns.scale
	ns.height = float64(height) * ns.scale
	ns.points = utils.RandomPoints(ns.cfg.NumPoints, ns.width, ns.height, ns.rng)

	if ns.canvas != nil {
		ns.canvas.Deallocate()
	}
	ns.canvas = ebiten.NewImage(int(ns.width), int(ns.height))
	log.Printf("[NetworkSystem] Resized: %dx%d", width, height)
}

// step 帧时钟回调：推进生成定时器并整幅重绘画布
func (ns *NetworkSystem) step(dt float64) {
	if ns.state != stateRunning {
		return
	}

	ns.spawnElapsed += dt
	if !ns.warmupDone {
		if ns.spawnElapsed >= ns.cfg.SpawnWarmup {
			ns.warmupDone = true
			ns.spawnElapsed -= ns.cfg.SpawnWarmup
			ns.SpawnComet()
		}
	}
	if ns.warmupDone {
		for ns.spawnElapsed >= ns.cfg.SpawnInterval {
			ns.spawnElapsed -= ns.cfg.SpawnInterval
			ns.SpawnComet()
		}
	}

	ns.render.Redraw(ns.canvas, ns.points, ns.scale)
	ns.em.RemoveMarkedEntities()
}

// SpawnComet 尝试生成一条新彗星
//
// 随机配对若干次，找到距离不超过 connectDistance 的两点即启动。
// 达到 maxActiveLines 上限或找不到合适点对时静默放弃。
func (ns *NetworkSystem) SpawnComet() {
	if ns.state != stateRunning {
		return
	}
	if len(ns.points) < 2 {
		return
	}
	if ns.ActiveComets() >= ns.cfg.MaxActiveLines {
		return
	}

	maxDist := ns.cfg.ConnectDistance * ns.scale
	for attempt := 0; attempt < ns.cfg.MaxSpawnAttempts; attempt++ {
		i := ns.rng.Intn(len(ns.points))
		j := ns.rng.Intn(len(ns.points))
		if i == j {
			continue
		}
		if utils.Distance(ns.points[i], ns.points[j]) > maxDist {
			continue
		}
		ns.startComet(ns.points[i], ns.points[j])
		return
	}
}

// startComet 创建彗星实体并提交头部进度补间
func (ns *NetworkSystem) startComet(source, target utils.Point) {
	comet := &components.CometComponent{
		Source:  source,
		Target:  target,
		Color:   ns.pickColor(),
		Visible: true,
	}

	id := ns.em.CreateEntity()
	ecs.AddComponent(ns.em, id, comet)

	tailLength := ns.cfg.CometTailLength
	handle := ns.scheduler.Animate(comet, tween.Config{
		Props: []tween.Prop{
			{Ptr: &comet.HeadProgress, From: 0, To: 1},
		},
		Duration: ns.cfg.LineAnimationDuration,
		Ease:     utils.EaseLinear,
		OnUpdate: func(t float64) {
			// 尾部始终跟在头部后面固定距离
			comet.TailStart = comet.HeadProgress - tailLength
			if comet.TailStart < 0 {
				comet.TailStart = 0
			}
		},
		OnComplete: func() {
			comet.Visible = false
			delete(ns.handles, comet)
			ns.em.DestroyEntity(id)
			ns.spawnExplosion(comet.Target, comet.Color)
		},
	})
	ns.handles[comet] = handle
}

// spawnExplosion 在彗星终点生成爆炸实体
func (ns *NetworkSystem) spawnExplosion(at utils.Point, c color.RGBA) {
	if ns.state != stateRunning {
		return
	}

	explosion := &components.ExplosionComponent{
		X:       at.X,
		Y:       at.Y,
		Color:   c,
		Radius:  ns.cfg.PointRadius * ns.scale,
		Opacity: config.ExplosionStartOpacity,
	}

	id := ns.em.CreateEntity()
	ecs.AddComponent(ns.em, id, explosion)

	handle := ns.scheduler.Animate(explosion, tween.Config{
		Props: []tween.Prop{
			{Ptr: &explosion.Radius, From: explosion.Radius, To: ns.cfg.PointRadius * ns.scale * ns.cfg.ExplosionMaxRadiusFactor},
			{Ptr: &explosion.Opacity, From: config.ExplosionStartOpacity, To: 0},
		},
		Duration: ns.cfg.ExplosionDuration,
		Ease:     utils.EaseOutCubic,
		OnComplete: func() {
			delete(ns.handles, explosion)
			ns.em.DestroyEntity(id)
		},
	})
	ns.handles[explosion] = handle
}

// pickColor 从调色板随机取色，调色板为空时回退到白色
func (ns *NetworkSystem) pickColor() color.RGBA {
	if len(ns.palette) == 0 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return ns.palette[ns.rng.Intn(len(ns.palette))]
}

// Draw 把画布内容绘制到屏幕
func (ns *NetworkSystem) Draw(screen *ebiten.Image) {
	if ns.state != stateRunning || ns.canvas == nil {
		return
	}
	// 画布与屏幕同为物理像素尺寸，直接平铺
	screen.DrawImage(ns.canvas, nil)
}

// Teardown 销毁引擎：退订帧时钟、取消全部在途补间并清空实体
// 之后引擎不再可用，重复调用为无操作
func (ns *NetworkSystem) Teardown() {
	if ns.state != stateRunning {
		return
	}
	ns.clock.Unsubscribe(ns.clockToken)
	ns.cancelAllTweens()
	ns.em.Clear()
	ns.state = stateDisposed
	log.Printf("[NetworkSystem] Teardown complete")
}

// cancelAllTweens 取消引擎持有的全部在途补间
func (ns *NetworkSystem) cancelAllTweens() {
	for _, handle := range ns.handles {
		handle.Cancel()
	}
	ns.handles = make(map[interface{}]*tween.Handle)
}

// Points 返回当前点云（测试与调试用）
func (ns *NetworkSystem) Points() []utils.Point {
	return ns.points
}

// ActiveComets 返回当前存活的彗星数量
func (ns *NetworkSystem) ActiveComets() int {
	return len(ecs.GetEntitiesWith1[*components.CometComponent](ns.em))
}

// ActiveExplosions 返回当前存活的爆炸数量
func (ns *NetworkSystem) ActiveExplosions() int {
	return len(ecs.GetEntitiesWith1[*components.ExplosionComponent](ns.em))
}

// IsRunning 返回引擎是否处于运行状态
func (ns *NetworkSystem) IsRunning() bool {
	return ns.state == stateRunning
}

// Canvas 返回离屏画布（测试用）
func (ns *NetworkSystem) Canvas() *ebiten.Image {
	return ns.canvas
}
