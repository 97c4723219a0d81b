package main

import (
	"bytes"
	"os"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/pixelgarden/pkg/embedded"
)

const completePo = `msgid "TOOL_TREE"
msgstr "Tree"

msgid "TOOL_FLOWER"
msgstr "Flower"

msgid "TOOL_POND"
msgstr "Pond"

msgid "TOOL_ROCK"
msgstr "Rock"

msgid "CLEAR"
msgstr "Clear"

msgid "MODE_TO_NIGHT"
msgstr "Night"

msgid "MODE_TO_DAY"
msgstr "Day"

msgid "STATUS_ITEMS"
msgstr "%d items"
`

// newDataFS 只存在于内存中的数据目录，磁盘上的同名路径不存在
func newDataFS(t *testing.T, gardenYAML string) fstest.MapFS {
	t.Helper()
	palettes, err := os.ReadFile("../../data/palettes.yaml")
	if err != nil {
		t.Fatalf("读取调色板失败: %v", err)
	}
	return fstest.MapFS{
		"data/garden.yaml":             {Data: []byte(gardenYAML)},
		"data/palettes.yaml":           {Data: palettes},
		"data/locales/en/garden.po":    {Data: []byte(completePo)},
		"data/locales/fr/garden.po":    {Data: []byte("msgid \"CLEAR\"\nmsgstr \"Effacer\"\n")},
		"data/locales/zh_CN/garden.po": {Data: []byte(completePo)},
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		gardenYAML string
		locales    []string
		wantFailed int
		wantOut    string
	}{
		{"配置和语言都有效", "palette: data/palettes.yaml\n", []string{"en", "zh_CN"}, 0, "✅ 调色板有效: data/palettes.yaml"},
		{"内置调色板", "tool: pond\n", []string{"en"}, 0, "工具 pond"},
		{"调色板缺失", "palette: data/missing.yaml\n", []string{"en"}, 1, "调色板读取失败"},
		{"配置无效", "cellSize: 0\n", []string{"en"}, 1, "配置加载失败"},
		{"翻译不完整", "", []string{"fr"}, 1, "fr 缺少 7 个翻译"},
		{"语言文件不存在", "", []string{"de"}, 1, "读取语言文件失败"},
		{"自动发现全部语言", "", nil, 1, "✅ zh_CN 翻译完整"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embedded.Init(newDataFS(t, tt.gardenYAML))
			defer embedded.Init(nil)

			var out bytes.Buffer
			if got := run(&out, "data/garden.yaml", tt.locales); got != tt.wantFailed {
				t.Errorf("run() = %d, want %d\n%s", got, tt.wantFailed, out.String())
			}
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("output missing %q:\n%s", tt.wantOut, out.String())
			}
		})
	}
}

func TestDiscoverLocales(t *testing.T) {
	embedded.Init(newDataFS(t, ""))
	defer embedded.Init(nil)

	got, err := discoverLocales()
	if err != nil {
		t.Fatalf("discoverLocales() error = %v", err)
	}
	if want := []string{"en", "fr", "zh_CN"}; !reflect.DeepEqual(got, want) {
		t.Errorf("discoverLocales() = %v, want %v", got, want)
	}
}

func TestSplitLocales(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"空字符串", "", nil},
		{"去除空白和空项", " en, ,zh_CN ", []string{"en", "zh_CN"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitLocales(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitLocales(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
