package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/pixelgarden/pkg/app"
	"github.com/decker502/pixelgarden/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "花园配置文件路径（默认使用内置 data/garden.yaml）")
	night      = flag.Bool("night", false, "以夜晚模式启动")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用配置文件或当前时间）")
	locale     = flag.String("locale", "", "界面语言，如 en、zh_CN")
	ttyMode    = flag.Bool("tty", false, "在终端中运行（tcell）")
	mute       = flag.Bool("mute", false, "关闭放置提示音")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	cfg := app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Night:      *night,
		Seed:       *seed,
		Locale:     *locale,
		Mute:       *mute,
	}

	if *ttyMode {
		if err := runTerminal(cfg); err != nil {
			// 终端模式下日志可能被重定向，直接写标准错误
			fmt.Fprintf(os.Stderr, "终端模式运行失败: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gardenApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	width, height := gardenApp.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Pixel Garden")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(gardenApp.Settings().GetSettings().Fullscreen)

	if err := ebiten.RunGame(gardenApp); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
