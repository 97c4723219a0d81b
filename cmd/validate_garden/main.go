// validate_garden 检查花园配置、调色板和语言文件是否可用
//
// 文件按程序运行时的方式读取（data/ 前缀走嵌入资源目录，其余走磁盘），
// 检查结果与程序实际加载的内容一致。
//
// 用法：
//
//	go run ./cmd/validate_garden [-config data/garden.yaml] [-locales en,zh_CN]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/decker502/pixelgarden/pkg/app"
	"github.com/decker502/pixelgarden/pkg/config"
	"github.com/decker502/pixelgarden/pkg/embedded"
	"github.com/decker502/pixelgarden/pkg/game"
)

// localesDir 语言目录，每个子目录是一种语言
const localesDir = "data/locales"

var (
	configPath = flag.String("config", config.DefaultGardenConfigPath, "花园配置文件路径")
	locales    = flag.String("locales", "", "要检查的语言，逗号分隔（为空检查 data/locales 下全部语言）")
)

func main() {
	flag.Parse()

	// 以工作目录作为数据根目录，路径解析与嵌入资源一致
	embedded.Init(os.DirFS("."))

	if failed := run(os.Stdout, *configPath, splitLocales(*locales)); failed > 0 {
		fmt.Printf("❌ 有 %d 项检查失败\n", failed)
		os.Exit(1)
	}
}

// run 执行全部检查，返回失败项数量
// locales 为空时检查 localesDir 下的全部语言
func run(out io.Writer, configPath string, locales []string) int {
	failed := 0

	cfg, _, err := app.LoadGarden(configPath, 0)
	if err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)
		failed++
	} else {
		fmt.Fprintf(out, "✅ 配置有效: 画布 %dx%d, 格子 %d, 蜜蜂 %d, 工具 %s\n",
			cfg.Canvas.Width, cfg.Canvas.Height, cfg.CellSize, cfg.Bees.Count, cfg.Tool)
		if cfg.PalettePath == "" {
			fmt.Fprintf(out, "✅ 使用内置调色板\n")
		} else {
			fmt.Fprintf(out, "✅ 调色板有效: %s\n", cfg.PalettePath)
		}
	}

	if len(locales) == 0 {
		locales, err = discoverLocales()
		if err != nil {
			fmt.Fprintf(out, "❌ 读取语言目录失败: %v\n", err)
			return failed + 1
		}
	}

	for _, locale := range locales {
		data, err := embedded.ReadFileOrDisk(game.LocalePath(locale))
		if err != nil {
			fmt.Fprintf(out, "❌ 读取语言文件失败: %v\n", err)
			failed++
			continue
		}
		if missing := game.ParseGardenStrings(locale, data).MissingKeys(); len(missing) > 0 {
			fmt.Fprintf(out, "❌ %s 缺少 %d 个翻译: %s\n", locale, len(missing), strings.Join(missing, ", "))
			failed++
			continue
		}
		fmt.Fprintf(out, "✅ %s 翻译完整\n", locale)
	}
	return failed
}

// discoverLocales 列出语言目录下的全部语言
func discoverLocales() ([]string, error) {
	entries, err := embedded.ReadDir(localesDir)
	if err != nil {
		return nil, err
	}
	var result []string
	for _, e := range entries {
		if e.IsDir() {
			result = append(result, e.Name())
		}
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no locales under %s", localesDir)
	}
	return result, nil
}

func splitLocales(s string) []string {
	var result []string
	for _, l := range strings.Split(s, ",") {
		if l = strings.TrimSpace(l); l != "" {
			result = append(result, l)
		}
	}
	return result
}
