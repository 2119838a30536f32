package config

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/herofx/pkg/utils"
)

// HeroConfig 首屏动画引擎的完整配置
//
// 通过 yaml 文件加载，未提供的字段保持默认值。
// 加载失败不是致命错误：调用方可以回退到 DefaultHeroConfig()，
// 引擎降级为默认视觉效果而不是崩溃。
type HeroConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Network NetworkConfig `yaml:"network"`
	Letters LettersConfig `yaml:"letters"`
	Scroll  ScrollConfig  `yaml:"scroll"`
	Theme   ThemeConfig   `yaml:"theme"`
}

// WindowConfig 演示窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`  // 逻辑宽度（像素）
	Height int    `yaml:"height"` // 逻辑高度（像素）
	Title  string `yaml:"title"`  // 窗口标题
}

// NetworkConfig 点云/彗星网络动画配置
type NetworkConfig struct {
	NumPoints             int     `yaml:"numPoints"`             // 点云密度
	ConnectDistance       float64 `yaml:"connectDistance"`       // 可连线的最大像素距离
	MaxActiveLines        int     `yaml:"maxActiveLines"`        // 同时存活的彗星上限
	MaxSpawnAttempts      int     `yaml:"maxSpawnAttempts"`      // 单次生成的随机配对尝试上限
	LineAnimationDuration float64 `yaml:"lineAnimationDuration"` // 彗星头部走完全程的时长（秒）
	CometTailLength       float64 `yaml:"cometTailLength"`       // 可见尾巴长度（头部进度单位）
	SpawnInterval         float64 `yaml:"spawnInterval"`         // 生成定时器间隔（秒）
	SpawnWarmup           float64 `yaml:"spawnWarmup"`           // 首次生成前的预热延迟（秒）
	PointRadius           float64 `yaml:"pointRadius"`           // 静态点半径（像素）
	LineWidth             float64 `yaml:"lineWidth"`             // 彗星线宽（像素）

	ExplosionMaxRadiusFactor float64 `yaml:"explosionMaxRadiusFactor"` // 爆炸半径增长倍数
	ExplosionDuration        float64 `yaml:"explosionDuration"`        // 爆炸生长/衰减时长（秒）
}

// LettersConfig 标题字母下落动画配置
type LettersConfig struct {
	Title    string  `yaml:"title"`    // 标题文本
	FontPath string  `yaml:"fontPath"` // 字体文件路径，缺失时字母不渲染（软降级）
	FontSize float64 `yaml:"fontSize"` // 字号（像素）

	EntranceDelay    float64 `yaml:"entranceDelay"`    // 入场动画整体延迟（秒）
	EntranceDuration float64 `yaml:"entranceDuration"` // 入场动画时长（秒）
	StaggerDelay     float64 `yaml:"staggerDelay"`     // 每个字母的错峰启动偏移（秒）

	FallDistance       float64 `yaml:"fallDistance"`       // 随机下落距离上界（像素）
	MaxHorizontalDrift float64 `yaml:"maxHorizontalDrift"` // 随机水平漂移上界（像素）
	MaxRotation        float64 `yaml:"maxRotation"`        // 随机旋转幅度上界（度）

	// 滚动进度到单字母下落进度的映射常量
	// f_i = clamp((p - delayFactor_i × delayScale) / progressDivisor, 0, 1)
	DelayScale      float64 `yaml:"delayScale"`
	ProgressDivisor float64 `yaml:"progressDivisor"`

	// ScrollTweenDuration 滚动驱动更新使用的短补间时长（秒）
	// 覆盖模式下防止快速滚动造成补间堆积
	ScrollTweenDuration float64 `yaml:"scrollTweenDuration"`
}

// ScrollConfig 虚拟滚动区域配置
type ScrollConfig struct {
	RegionLength float64 `yaml:"regionLength"` // 滚动绑定区域长度（像素）
	Scrub        float64 `yaml:"scrub"`        // 平滑速率（1/秒），0 表示不平滑
	WheelStep    float64 `yaml:"wheelStep"`    // 滚轮每格对应的滚动像素
}

// ThemeConfig 明暗两套配色
// 调色板与背景/点/字母颜色使用 "#RRGGBB" 或 "#RRGGBBAA" 十六进制格式
type ThemeConfig struct {
	LightPalette     []string `yaml:"lightPalette"`
	DarkPalette      []string `yaml:"darkPalette"`
	LightBackground  string   `yaml:"lightBackground"`
	DarkBackground   string   `yaml:"darkBackground"`
	LightPointColor  string   `yaml:"lightPointColor"`
	DarkPointColor   string   `yaml:"darkPointColor"`
	LightLetterColor string   `yaml:"lightLetterColor"`
	DarkLetterColor  string   `yaml:"darkLetterColor"`

	// 解析后的颜色缓存（Validate 填充，不参与序列化）
	lightPalette []color.RGBA
	darkPalette  []color.RGBA
	lightBG      color.RGBA
	darkBG       color.RGBA
	lightPoint   color.RGBA
	darkPoint    color.RGBA
	lightLetter  color.RGBA
	darkLetter   color.RGBA
}

// DefaultHeroConfig 返回默认配置
func DefaultHeroConfig() *HeroConfig {
	return &HeroConfig{
		Window: WindowConfig{
			Width:  960,
			Height: 600,
			Title:  "herofx",
		},
		Network: NetworkConfig{
			NumPoints:                72,
			ConnectDistance:          190,
			MaxActiveLines:           4,
			MaxSpawnAttempts:         50,
			LineAnimationDuration:    1.4,
			CometTailLength:          0.35,
			SpawnInterval:            0.9,
			SpawnWarmup:              1.2,
			PointRadius:              1.6,
			LineWidth:                1.2,
			ExplosionMaxRadiusFactor: 7,
			ExplosionDuration:        0.9,
		},
		Letters: LettersConfig{
			Title:               "GONEWX",
			FontPath:            "assets/fonts/title.ttf",
			FontSize:            96,
			EntranceDelay:       0.4,
			EntranceDuration:    0.8,
			StaggerDelay:        0.045,
			FallDistance:        340,
			MaxHorizontalDrift:  120,
			MaxRotation:         40,
			DelayScale:          0.3,
			ProgressDivisor:     2.4,
			ScrollTweenDuration: 0.1,
		},
		Scroll: ScrollConfig{
			RegionLength: 640,
			Scrub:        8,
			WheelStep:    40,
		},
		Theme: ThemeConfig{
			LightPalette:     []string{"#5B8DEF", "#9B6BF2", "#2BB8A3", "#EF6B9B"},
			DarkPalette:      []string{"#7FAFFF", "#B78BFF", "#4FD8C4", "#FF8BB5"},
			LightBackground:  "#F7F8FC",
			DarkBackground:   "#0E1116",
			LightPointColor:  "#1F293766",
			DarkPointColor:   "#E5E7EB55",
			LightLetterColor: "#111827",
			DarkLetterColor:  "#F9FAFB",
		},
	}
}

// LoadHeroConfig 从 yaml 文件加载配置
// 文件中省略的字段保留默认值；解析或校验失败时返回错误
func LoadHeroConfig(path string) (*HeroConfig, error) {
	cfg := DefaultHeroConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	log.Printf("[Config] 配置加载完成: %s", path)
	return cfg, nil
}

// Validate 校验并修正配置
// 越界数值被钳制回默认值范围，颜色字符串被解析进缓存
func (c *HeroConfig) Validate() error {
	def := DefaultHeroConfig()

	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}

	n := &c.Network
	dn := def.Network
	if n.NumPoints < 0 {
		n.NumPoints = dn.NumPoints
	}
	if n.NumPoints > MaxNumPoints {
		n.NumPoints = MaxNumPoints
	}
	if n.ConnectDistance <= 0 {
		n.ConnectDistance = dn.ConnectDistance
	}
	if n.MaxActiveLines <= 0 {
		n.MaxActiveLines = dn.MaxActiveLines
	}
	if n.MaxSpawnAttempts <= 0 {
		n.MaxSpawnAttempts = dn.MaxSpawnAttempts
	}
	if n.LineAnimationDuration < 0 {
		n.LineAnimationDuration = dn.LineAnimationDuration
	}
	n.CometTailLength = utils.Clamp(n.CometTailLength, 0, 1)
	if n.CometTailLength == 0 {
		n.CometTailLength = dn.CometTailLength
	}
	if n.SpawnInterval <= 0 {
		n.SpawnInterval = dn.SpawnInterval
	}
	if n.SpawnWarmup < 0 {
		n.SpawnWarmup = dn.SpawnWarmup
	}
	if n.PointRadius <= 0 {
		n.PointRadius = dn.PointRadius
	}
	if n.LineWidth <= 0 {
		n.LineWidth = dn.LineWidth
	}
	if n.ExplosionMaxRadiusFactor <= 0 {
		n.ExplosionMaxRadiusFactor = dn.ExplosionMaxRadiusFactor
	}
	if n.ExplosionDuration <= 0 {
		n.ExplosionDuration = dn.ExplosionDuration
	}

	l := &c.Letters
	dl := def.Letters
	if l.FontSize <= 0 {
		l.FontSize = dl.FontSize
	}
	if l.EntranceDelay < 0 {
		l.EntranceDelay = dl.EntranceDelay
	}
	if l.EntranceDuration <= 0 {
		l.EntranceDuration = dl.EntranceDuration
	}
	if l.StaggerDelay < 0 {
		l.StaggerDelay = dl.StaggerDelay
	}
	if l.FallDistance <= 0 {
		l.FallDistance = dl.FallDistance
	}
	if l.MaxHorizontalDrift < 0 {
		l.MaxHorizontalDrift = dl.MaxHorizontalDrift
	}
	if l.MaxRotation < 0 {
		l.MaxRotation = dl.MaxRotation
	}
	if l.DelayScale <= 0 {
		l.DelayScale = dl.DelayScale
	}
	if l.ProgressDivisor <= 0 {
		l.ProgressDivisor = dl.ProgressDivisor
	}
	if l.ScrollTweenDuration <= 0 {
		l.ScrollTweenDuration = dl.ScrollTweenDuration
	}

	s := &c.Scroll
	ds := def.Scroll
	if s.RegionLength <= 0 {
		s.RegionLength = ds.RegionLength
	}
	if s.Scrub < 0 {
		s.Scrub = ds.Scrub
	}
	if s.WheelStep <= 0 {
		s.WheelStep = ds.WheelStep
	}

	return c.Theme.parseColors(def)
}

// parseColors 解析主题颜色字符串进缓存
func (t *ThemeConfig) parseColors(def *HeroConfig) error {
	if len(t.LightPalette) == 0 {
		t.LightPalette = def.Theme.LightPalette
	}
	if len(t.DarkPalette) == 0 {
		t.DarkPalette = def.Theme.DarkPalette
	}

	parsePalette := func(in []string) ([]color.RGBA, error) {
		out := make([]color.RGBA, 0, len(in))
		for _, s := range in {
			c, err := utils.ParseHexColor(s)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
		return out, nil
	}

	var err error
	if t.lightPalette, err = parsePalette(t.LightPalette); err != nil {
		return fmt.Errorf("lightPalette: %w", err)
	}
	if t.darkPalette, err = parsePalette(t.DarkPalette); err != nil {
		return fmt.Errorf("darkPalette: %w", err)
	}

	parseOr := func(s, fallback string) (color.RGBA, error) {
		if s == "" {
			s = fallback
		}
		return utils.ParseHexColor(s)
	}

	dt := def.Theme
	if t.lightBG, err = parseOr(t.LightBackground, dt.LightBackground); err != nil {
		return fmt.Errorf("lightBackground: %w", err)
	}
	if t.darkBG, err = parseOr(t.DarkBackground, dt.DarkBackground); err != nil {
		return fmt.Errorf("darkBackground: %w", err)
	}
	if t.lightPoint, err = parseOr(t.LightPointColor, dt.LightPointColor); err != nil {
		return fmt.Errorf("lightPointColor: %w", err)
	}
	if t.darkPoint, err = parseOr(t.DarkPointColor, dt.DarkPointColor); err != nil {
		return fmt.Errorf("darkPointColor: %w", err)
	}
	if t.lightLetter, err = parseOr(t.LightLetterColor, dt.LightLetterColor); err != nil {
		return fmt.Errorf("lightLetterColor: %w", err)
	}
	if t.darkLetter, err = parseOr(t.DarkLetterColor, dt.DarkLetterColor); err != nil {
		return fmt.Errorf("darkLetterColor: %w", err)
	}
	return nil
}

// Palette 返回当前主题的彗星调色板
func (t *ThemeConfig) Palette(dark bool) []color.RGBA {
	if dark {
		return t.darkPalette
	}
	return t.lightPalette
}

// Background 返回当前主题的背景色
func (t *ThemeConfig) Background(dark bool) color.RGBA {
	if dark {
		return t.darkBG
	}
	return t.lightBG
}

// PointColor 返回当前主题的静态点颜色
func (t *ThemeConfig) PointColor(dark bool) color.RGBA {
	if dark {
		return t.darkPoint
	}
	return t.lightPoint
}

// LetterColor 返回当前主题的标题字母颜色
func (t *ThemeConfig) LetterColor(dark bool) color.RGBA {
	if dark {
		return t.darkLetter
	}
	return t.lightLetter
}
