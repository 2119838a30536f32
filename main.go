package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/herofx/pkg/app"
)

func main() {
	var (
		verbose    bool
		configPath string
	)
	flag.BoolVar(&verbose, "verbose", false, "enable verbose logging")
	flag.StringVar(&configPath, "config", "", "path to yaml config (optional)")
	flag.Parse()

	a, err := app.NewApp(app.Config{
		Verbose:    verbose,
		ConfigPath: configPath,
	})
	if err != nil {
		log.Fatal(err)
	}

	windowCfg := a.GetConfig().Window
	ebiten.SetWindowSize(windowCfg.Width, windowCfg.Height)
	ebiten.SetWindowTitle(windowCfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Start the loop.
	// This will call Update() and Draw() repeatedly until the window is closed.
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}

	// 正常退出路径（窗口关闭）：保存设置并释放场景
	a.Shutdown()
}
