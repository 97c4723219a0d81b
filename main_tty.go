package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/decker502/pixelgarden/pkg/app"
	"github.com/decker502/pixelgarden/pkg/game"
	"github.com/decker502/pixelgarden/pkg/sfx"
	"github.com/decker502/pixelgarden/pkg/tty"
	"github.com/gdamore/tcell/v2"
)

// ttyLogFile 终端模式下的日志文件（标准错误会破坏画面）
const ttyLogFile = "pixelgarden.log"

// runTerminal 在终端中运行花园
// 鼠标左键放置/拖拽，1-4 选择工具，n 切换昼夜，c 清空，q 退出
func runTerminal(cfg app.Config) error {
	if cfg.Verbose {
		f, err := os.Create(ttyLogFile)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	gardenCfg, table, err := app.LoadGarden(cfg.ConfigPath, cfg.Seed)
	if err != nil {
		return err
	}

	settings := game.NewSettingsManager(game.OpenGdata(app.AppName))
	prefs := settings.GetSettings()
	strs, err := game.NewGardenStrings(app.ResolveLocale(cfg.Locale, prefs.Locale, gardenCfg.Locale))
	if err != nil {
		return err
	}

	state := game.NewState(gardenCfg, table, nil)
	state.Garden.SetVerbose(cfg.Verbose)
	state.SetNight(cfg.Night)

	player, err := sfx.NewPlayer(prefs.SoundEnabled && !cfg.Mute, prefs.SoundVolume)
	if err != nil {
		// 没有声音也可以运行
		log.Printf("[Tty] %v", err)
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	host := tty.NewHost(screen, state, strs, player)
	if err := host.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
