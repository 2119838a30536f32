// Package scenes 提供演示场景
//
// HeroScene 装配首屏动画的全部子系统：网络动画引擎、字母下落控制器、
// 补间调度器、帧时钟和滚动观察者，并负责它们的生命周期。
package scenes

import (
	"bytes"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/herofx/pkg/config"
	"github.com/gonewx/herofx/pkg/ecs"
	"github.com/gonewx/herofx/pkg/game"
	"github.com/gonewx/herofx/pkg/systems"
	"github.com/gonewx/herofx/pkg/tween"
)

// titleBaselineFraction 标题基线在屏幕高度中的位置
const titleBaselineFraction = 0.4

// HeroScene 首屏动画演示场景
type HeroScene struct {
	cfg      *config.HeroConfig
	settings *game.SettingsManager

	clock          *game.FrameClock
	scheduler      *tween.Scheduler
	schedulerToken game.ClockToken
	theme          *game.ThemeManager

	network *systems.NetworkSystem
	letters *systems.LetterFallSystem
	scroll  *systems.ScrollObserver

	fontFace    *text.GoTextFace
	letterColor [4]uint8

	width    int
	height   int
	scale    float64
	disposed bool
}

// NewHeroScene 创建并装配首屏动画场景
func NewHeroScene(cfg *config.HeroConfig, settings *game.SettingsManager) *HeroScene {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	s := &HeroScene{
		cfg:       cfg,
		settings:  settings,
		clock:     game.NewFrameClock(),
		scheduler: tween.NewScheduler(),
		width:     cfg.Window.Width,
		height:    cfg.Window.Height,
		scale:     deviceScale(),
	}

	// 调度器最先订阅：补间推进发生在所有系统回调之前
	s.schedulerToken = s.clock.Subscribe(s.scheduler.Update)

	s.theme = game.NewThemeManager(settings.GetSettings().DarkMode)

	em := ecs.NewEntityManager()
	s.network = systems.NewNetworkSystem(em, s.scheduler, s.clock, &cfg.Network, rng)
	s.letters = systems.NewLetterFallSystem(s.scheduler, &cfg.Letters, rng)
	s.letters.SetReducedMotion(settings.GetSettings().ReducedMotion)

	s.applyTheme(s.theme.IsDark())
	s.theme.OnChange(s.applyTheme)

	s.network.Initialize(s.width, s.height, s.scale)

	s.loadFont()
	s.letters.Decompose(cfg.Letters.Title)
	s.letters.PlayEntrance()

	s.scroll = systems.NewScrollObserver(0, cfg.Scroll.RegionLength, cfg.Scroll.Scrub)
	s.letters.BindScroll(s.scroll)

	return s
}

// loadFont 加载标题字体
// 字体缺失或损坏时仅记录日志，字母不渲染（背景动画照常运行）
func (s *HeroScene) loadFont() {
	data, err := os.ReadFile(s.cfg.Letters.FontPath)
	if err != nil {
		log.Printf("[HeroScene] font unavailable: %v (letters disabled)", err)
		return
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		log.Printf("[HeroScene] font parse failed: %v (letters disabled)", err)
		return
	}
	s.fontFace = &text.GoTextFace{
		Source:    source,
		Size:      s.cfg.Letters.FontSize,
		Direction: text.DirectionLeftToRight,
	}
}

// applyTheme 把主题颜色应用到各渲染系统
func (s *HeroScene) applyTheme(dark bool) {
	t := &s.cfg.Theme
	s.network.SetPalette(t.Palette(dark), t.PointColor(dark), t.Background(dark))
	c := t.LetterColor(dark)
	s.letterColor = [4]uint8{c.R, c.G, c.B, c.A}
}

// Resize 响应逻辑窗口尺寸变化
func (s *HeroScene) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.network.Resize(width, height)
}

// Update 更新场景
func (s *HeroScene) Update(deltaTime float64) {
	if s.disposed {
		return
	}
	s.handleInput()
	s.clock.Tick(deltaTime)
	s.scroll.Update(deltaTime)
}

// handleInput 处理滚动与主题切换输入
func (s *HeroScene) handleInput() {
	// 滚轮驱动虚拟滚动区域
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		s.scroll.ScrollBy(-wheelY * s.cfg.Scroll.WheelStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		s.scroll.ScrollBy(s.cfg.Scroll.RegionLength / 4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		s.scroll.ScrollBy(-s.cfg.Scroll.RegionLength / 4)
	}

	// T 切换明暗主题并持久化
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		s.theme.Toggle()
		s.settings.SetDarkMode(s.theme.IsDark())
	}

	// R 重播入场动画
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.letters.PlayEntrance()
	}
}

// Draw 绘制场景
func (s *HeroScene) Draw(screen *ebiten.Image) {
	if s.disposed {
		return
	}
	screen.Fill(s.cfg.Theme.Background(s.theme.IsDark()))
	s.network.Draw(screen)
	s.drawLetters(screen)
}

// drawLetters 按字母各自的变换绘制标题
//
// 每个字母以自身中心为旋转轴，水平排布从居中的起点开始累计字距。
func (s *HeroScene) drawLetters(screen *ebiten.Image) {
	if s.fontFace == nil || len(s.letters.Letters()) == 0 {
		return
	}

	letters := s.letters.Letters()

	// 先测量总宽度以便居中
	advances := make([]float64, len(letters))
	total := 0.0
	for i, letter := range letters {
		advances[i] = text.Advance(string(letter.Char), s.fontFace)
		total += advances[i]
	}

	baseX := (float64(s.width) - total) / 2
	baseY := float64(s.height) * titleBaselineFraction
	fontSize := s.cfg.Letters.FontSize

	penX := baseX
	for i, letter := range letters {
		advance := advances[i]
		if letter.IsSpace || letter.Opacity <= 0.01 {
			penX += advance
			continue
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(-advance/2, -fontSize/2)
		op.GeoM.Rotate(letter.Rotation * math.Pi / 180)
		op.GeoM.Translate(advance/2, fontSize/2)
		op.GeoM.Translate(penX+letter.X, baseY+letter.Y)
		// 字母在逻辑坐标系排版，最后整体放大到物理像素
		op.GeoM.Scale(s.scale, s.scale)
		op.ColorScale.Scale(
			float32(s.letterColor[0])/255,
			float32(s.letterColor[1])/255,
			float32(s.letterColor[2])/255,
			float32(s.letterColor[3])/255,
		)
		op.ColorScale.ScaleAlpha(float32(letter.Opacity))
		text.Draw(screen, string(letter.Char), s.fontFace, op)

		penX += advance
	}
}

// Dispose 释放场景资源
// 网络引擎退订帧时钟，字母控制器取消在途补间，重复调用为无操作
func (s *HeroScene) Dispose() {
	if s.disposed {
		return
	}
	s.network.Teardown()
	s.letters.Teardown()
	s.clock.Unsubscribe(s.schedulerToken)
	s.disposed = true
	log.Printf("[HeroScene] Disposed")
}

// deviceScale 返回设备像素比，上限 config.MaxDeviceScale
func deviceScale() float64 {
	factor := ebiten.Monitor().DeviceScaleFactor()
	if factor <= 0 {
		return 1
	}
	if factor > config.MaxDeviceScale {
		return config.MaxDeviceScale
	}
	return factor
}
