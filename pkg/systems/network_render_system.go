package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/herofx/pkg/components"
	"github.com/gonewx/herofx/pkg/config"
	"github.com/gonewx/herofx/pkg/ecs"
	"github.com/gonewx/herofx/pkg/utils"
)

// 顶点着色三角形使用的白色源图
// 取 3x3 图的中心 1x1 子图，避免采样到边缘像素
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// NetworkRenderSystem 网络动画渲染系统
//
// 负责把点云、彗星线和爆炸绘制到画布上。
// 彗星尾巴和爆炸的透明度渐变通过顶点着色三角形实现。
type NetworkRenderSystem struct {
	em  *ecs.EntityManager
	cfg *config.NetworkConfig

	pointColor color.RGBA
	background color.RGBA

	// 复用的顶点/索引缓冲
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewNetworkRenderSystem 创建渲染系统
func NewNetworkRenderSystem(em *ecs.EntityManager, cfg *config.NetworkConfig) *NetworkRenderSystem {
	return &NetworkRenderSystem{
		em:  em,
		cfg: cfg,
	}
}

// SetColors 设置主题颜色
func (s *NetworkRenderSystem) SetColors(pointColor, background color.RGBA) {
	s.pointColor = pointColor
	s.background = background
}

// Redraw 整幅重绘画布
// 绘制顺序：背景、静态点、彗星、爆炸
func (s *NetworkRenderSystem) Redraw(canvas *ebiten.Image, points []utils.Point, scale float64) {
	if canvas == nil {
		return
	}

	canvas.Fill(s.background)
	s.drawPoints(canvas, points, scale)
	s.drawComets(canvas, scale)
	s.drawExplosions(canvas)
}

// drawPoints 绘制静态点云
func (s *NetworkRenderSystem) drawPoints(canvas *ebiten.Image, points []utils.Point, scale float64) {
	if s.pointColor.A == 0 {
		return
	}
	radius := float32(s.cfg.PointRadius * scale)
	for _, p := range points {
		vector.DrawFilledCircle(canvas, float32(p.X), float32(p.Y), radius, s.pointColor, true)
	}
}

// drawComets 绘制所有彗星线
func (s *NetworkRenderSystem) drawComets(canvas *ebiten.Image, scale float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.CometComponent](s.em) {
		comet, ok := ecs.GetComponent[*components.CometComponent](s.em, id)
		if !ok {
			continue
		}
		s.drawComet(canvas, comet, scale)
	}
}

// drawComet 绘制单条彗星线
//
// 尾巴是一条 6 顶点的四边形带，透明度从尾端 0 渐变到头部不透明，
// 中点处取 CometMidAlpha。头部叠加一个提亮的圆点。
func (s *NetworkRenderSystem) drawComet(canvas *ebiten.Image, comet *components.CometComponent, scale float64) {
	if !comet.Visible {
		return
	}
	if comet.HeadProgress >= 1 && comet.TailStart >= 1 {
		return
	}

	head := utils.LerpPoint(comet.Source, comet.Target, comet.HeadProgress)
	tail := utils.LerpPoint(comet.Source, comet.Target, comet.TailStart)
	mid := utils.LerpPoint(tail, head, 0.5)

	dx := head.X - tail.X
	dy := head.Y - tail.Y
	length := math.Hypot(dx, dy)
	if length > 1e-6 {
		halfWidth := s.cfg.LineWidth * scale / 2
		nx := -dy / length * halfWidth
		ny := dx / length * halfWidth

		s.vertices = s.vertices[:0]
		s.indices = s.indices[:0]

		appendPair := func(p utils.Point, alpha float64) {
			c := vertexColor(comet.Color, alpha)
			s.vertices = append(s.vertices,
				ebiten.Vertex{DstX: float32(p.X + nx), DstY: float32(p.Y + ny), SrcX: 1, SrcY: 1, ColorR: c[0], ColorG: c[1], ColorB: c[2], ColorA: c[3]},
				ebiten.Vertex{DstX: float32(p.X - nx), DstY: float32(p.Y - ny), SrcX: 1, SrcY: 1, ColorR: c[0], ColorG: c[1], ColorB: c[2], ColorA: c[3]},
			)
		}

		appendPair(tail, 0)
		appendPair(mid, config.CometMidAlpha)
		appendPair(head, 1)

		s.indices = append(s.indices,
			0, 1, 2, 1, 3, 2,
			2, 3, 4, 3, 5, 4,
		)

		canvas.DrawTriangles(s.vertices, s.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
			AntiAlias: true,
		})
	}

	// 头部亮点
	headColor := utils.Brighten(comet.Color, config.CometHeadBrighten)
	headRadius := float32(s.cfg.PointRadius * scale * config.CometHeadRadiusFactor)
	vector.DrawFilledCircle(canvas, float32(head.X), float32(head.Y), headRadius, headColor, true)
}

// drawExplosions 绘制所有爆炸
func (s *NetworkRenderSystem) drawExplosions(canvas *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.ExplosionComponent](s.em) {
		explosion, ok := ecs.GetComponent[*components.ExplosionComponent](s.em, id)
		if !ok {
			continue
		}
		s.drawExplosion(canvas, explosion)
	}
}

// drawExplosion 绘制单个爆炸
//
// 双环三角扇：中心最亮，0.6 倍半径处衰减到一半，边缘完全透明。
func (s *NetworkRenderSystem) drawExplosion(canvas *ebiten.Image, explosion *components.ExplosionComponent) {
	if explosion.Opacity <= config.ExplosionMinOpacity {
		return
	}
	if explosion.Radius <= config.ExplosionMinRadius {
		return
	}

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]

	appendVertex := func(x, y, alpha float64) {
		c := vertexColor(explosion.Color, alpha*explosion.Opacity)
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: c[0], ColorG: c[1], ColorB: c[2], ColorA: c[3],
		})
	}

	// 中心顶点
	appendVertex(explosion.X, explosion.Y, config.ExplosionCoreAlpha)

	segments := config.ExplosionFanSegments
	rings := [2]struct{ radius, alpha float64 }{
		{explosion.Radius * config.ExplosionMidRadiusFraction, config.ExplosionMidAlpha},
		{explosion.Radius, 0},
	}
	for _, ring := range rings {
		for i := 0; i < segments; i++ {
			angle := float64(i) / float64(segments) * 2 * math.Pi
			appendVertex(
				explosion.X+math.Cos(angle)*ring.radius,
				explosion.Y+math.Sin(angle)*ring.radius,
				ring.alpha,
			)
		}
	}

	// 内环三角扇
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		s.indices = append(s.indices, 0, uint16(1+i), uint16(1+next))
	}
	// 内外环之间的环带
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		inner := uint16(1 + i)
		innerNext := uint16(1 + next)
		outer := uint16(1 + segments + i)
		outerNext := uint16(1 + segments + next)
		s.indices = append(s.indices,
			inner, outer, innerNext,
			innerNext, outer, outerNext,
		)
	}

	canvas.DrawTriangles(s.vertices, s.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// vertexColor 计算预乘透明度的顶点颜色分量
func vertexColor(c color.RGBA, alpha float64) [4]float32 {
	a := utils.Clamp01(alpha) * float64(c.A) / 255
	return [4]float32{
		float32(float64(c.R) / 255 * a),
		float32(float64(c.G) / 255 * a),
		float32(float64(c.B) / 255 * a),
		float32(a),
	}
}
