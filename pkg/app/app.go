// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/pixelgarden/pkg/config"
	"github.com/decker502/pixelgarden/pkg/embedded"
	"github.com/decker502/pixelgarden/pkg/game"
	"github.com/decker502/pixelgarden/pkg/garden"
	"github.com/decker502/pixelgarden/pkg/palette"
	"github.com/decker502/pixelgarden/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AppName gdata 存储使用的应用名
const AppName = "pixelgarden"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 花园配置文件路径，为空使用 config.DefaultGardenConfigPath
	ConfigPath string
	// Night 以夜晚模式启动
	Night bool
	// Seed 覆盖配置文件中的随机种子（0 表示不覆盖）
	Seed int64
	// Locale 覆盖界面语言（为空表示使用设置或配置文件）
	Locale string
	// Mute 关闭放置提示音
	Mute bool
}

// App 应用包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	width                    int
	height                   int
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gardenCfg, table, err := LoadGarden(cfg.ConfigPath, cfg.Seed)
	if err != nil {
		return nil, err
	}

	settings := game.NewSettingsManager(game.OpenGdata(AppName))
	locale := ResolveLocale(cfg.Locale, settings.GetSettings().Locale, gardenCfg.Locale)
	strs, err := game.NewGardenStrings(locale)
	if err != nil {
		return nil, fmt.Errorf("文本加载失败: %w", err)
	}
	if cfg.Locale != "" {
		settings.SetLocale(strs.Locale())
	}

	state := game.NewState(gardenCfg, table, nil)
	state.Garden.SetVerbose(cfg.Verbose)
	state.SetNight(cfg.Night)
	if !cfg.Mute {
		audioManager := game.NewAudioManager(settings)
		state.Controller.SetOnPlaced(func(item garden.Item) {
			audioManager.PlayChirp(item.Type)
		})
	}

	scene, err := scenes.NewGardenScene(state, strs, settings)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	width, height := config.WindowSize(gardenCfg)
	log.Printf("[App] Window %dx%d, locale %s", width, height, strs.Locale())

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		width:        width,
		height:       height,
	}, nil
}

// LoadGarden 加载花园配置和调色板
//
// 参数：
//   - path: 配置文件路径，为空使用默认路径
//   - seed: 非 0 时覆盖配置中的随机种子
func LoadGarden(path string, seed int64) (*config.GardenConfig, *palette.Table, error) {
	if path == "" {
		path = config.DefaultGardenConfigPath
	}
	gardenCfg, err := config.LoadGardenConfig(path)
	if err != nil {
		return nil, nil, fmt.Errorf("配置加载失败: %w", err)
	}
	if seed != 0 {
		gardenCfg.Seed = seed
	}

	table := palette.Default()
	if gardenCfg.PalettePath != "" {
		data, err := embedded.ReadFileOrDisk(gardenCfg.PalettePath)
		if err != nil {
			return nil, nil, fmt.Errorf("调色板读取失败: %w", err)
		}
		if table, err = palette.Parse(data); err != nil {
			return nil, nil, fmt.Errorf("调色板解析失败: %w", err)
		}
		log.Printf("[App] Palette loaded from %s", gardenCfg.PalettePath)
	}
	return gardenCfg, table, nil
}

// ResolveLocale 按优先级选择语言：命令行 > 已保存设置 > 配置文件
func ResolveLocale(flag, saved, configured string) string {
	for _, l := range []string{flag, saved, configured} {
		if l != "" {
			return l
		}
	}
	return game.DefaultLocale
}

// Update 更新逻辑，每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 窗口关闭：保存显示设置后退出
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.Exit()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面，每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 控制全屏时的缩放和 letterbox 颜色
// 使用最近邻滤波保持像素风格
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸：画布加工具栏
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// WindowSize 返回窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.width, a.height
}

// Settings 返回显示设置
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}
