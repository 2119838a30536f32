// Package app 提供演示应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，负责配置加载、
// 设置持久化和场景管理的装配。
package app

import (
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/herofx/pkg/config"
	"github.com/gonewx/herofx/pkg/game"
	"github.com/gonewx/herofx/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 可选的 yaml 配置路径，为空或加载失败时使用默认配置
	ConfigPath string
}

// App 是演示应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	heroConfig   *config.HeroConfig
	verbose      bool

	// 上次观察到的逻辑窗口尺寸，用于把尺寸变化转发给场景
	lastWidth  int
	lastHeight int
}

// NewApp 创建并初始化演示应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载配置；加载失败降级为默认配置（装饰性系统不因配置错误崩溃）
	heroConfig := config.DefaultHeroConfig()
	if err := heroConfig.Validate(); err != nil {
		return nil, err
	}
	if cfg.ConfigPath != "" {
		loaded, err := config.LoadHeroConfig(cfg.ConfigPath)
		if err != nil {
			log.Printf("[App] config load failed: %v (using defaults)", err)
		} else {
			heroConfig = loaded
		}
	}

	// gdata 跨平台存储；打开失败进入降级模式（仅内存设置）
	gdataManager, err := gdata.Open(gdata.Config{AppName: "herofx"})
	if err != nil {
		log.Printf("[App] gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}

	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] settings manager: %v", err)
	}

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewHeroScene(heroConfig, settings))

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		heroConfig:   heroConfig,
		verbose:      cfg.Verbose,
		lastWidth:    heroConfig.Window.Width,
		lastHeight:   heroConfig.Window.Height,
	}, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settings.SetFullscreen(fullscreen)
	}

	// Esc 退出（保存设置后终止）
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.Shutdown()
		return ebiten.Termination
	}

	// 窗口尺寸变化转发给场景
	width, height := ebiten.WindowSize()
	if width > 0 && height > 0 && (width != a.lastWidth || height != a.lastHeight) {
		a.lastWidth = width
		a.lastHeight = height
		a.sceneManager.Resize(width, height)
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制应用画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸（LayoutF 存在时不会被调用）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := deviceScale()
	return int(float64(outsideWidth) * scale), int(float64(outsideHeight) * scale)
}

// LayoutF 按设备像素比放大渲染目标，保证高密度屏上的锐利渲染
// 缩放因子上限 2x
func (a *App) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	scale := deviceScale()
	return outsideWidth * scale, outsideHeight * scale
}

// Shutdown 保存设置并释放当前场景
// 用于窗口关闭或 Esc 退出
func (a *App) Shutdown() {
	if d, ok := a.sceneManager.GetCurrentScene().(game.Disposable); ok {
		d.Dispose()
	}
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] failed to save settings: %v", err)
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetConfig 返回生效的应用配置
// main 用它设置窗口尺寸与标题
func (a *App) GetConfig() *config.HeroConfig {
	return a.heroConfig
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
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
