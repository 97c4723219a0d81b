package game

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/decker502/pixelgarden/pkg/embedded"
	"github.com/decker502/pixelgarden/pkg/types"
)

const testPoEN = `msgid ""
msgstr ""
"Language: en\n"
"Content-Type: text/plain; charset=UTF-8\n"

msgid "TOOL_TREE"
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

const testPoZH = `msgid ""
msgstr ""
"Language: zh_CN\n"
"Content-Type: text/plain; charset=UTF-8\n"

msgid "TOOL_TREE"
msgstr "树"

msgid "MODE_TO_NIGHT"
msgstr "夜晚"
`

func TestGardenStringsLabels(t *testing.T) {
	gs := ParseGardenStrings("en", []byte(testPoEN))

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"树工具", gs.ToolLabel(types.ItemTree), "Tree"},
		{"花工具", gs.ToolLabel(types.ItemFlower), "Flower"},
		{"池塘工具", gs.ToolLabel(types.ItemPond), "Pond"},
		{"石头工具", gs.ToolLabel(types.ItemRock), "Rock"},
		{"清空", gs.ClearLabel(), "Clear"},
		{"白天显示切换到夜晚", gs.ModeLabel(false), "Night"},
		{"夜晚显示切换到白天", gs.ModeLabel(true), "Day"},
		{"格式化参数", gs.GetString(KeyStatusItems, 3), "3 items"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestGardenStringsUntranslated(t *testing.T) {
	gs := ParseGardenStrings("zh_CN", []byte(testPoZH))

	if got := gs.ToolLabel(types.ItemTree); got != "树" {
		t.Errorf("ToolLabel(tree) = %q, want 树", got)
	}
	// 未翻译的键原样返回
	if got := gs.ToolLabel(types.ItemRock); got != KeyToolRock {
		t.Errorf("ToolLabel(rock) = %q, want %q", got, KeyToolRock)
	}
}

func TestGardenStringsNil(t *testing.T) {
	var gs *GardenStrings
	if got := gs.GetString(KeyClear); got != KeyClear {
		t.Errorf("nil GetString = %q, want %q", got, KeyClear)
	}
}

func TestNewGardenStringsFallback(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/locales/en/garden.po":    {Data: []byte(testPoEN)},
		"data/locales/zh_CN/garden.po": {Data: []byte(testPoZH)},
	})
	defer embedded.Init(nil)

	tests := []struct {
		name       string
		locale     string
		wantLocale string
	}{
		{"中文", "zh_CN", "zh_CN"},
		{"空语言使用默认", "", "en"},
		{"未知语言回退", "fr", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs, err := NewGardenStrings(tt.locale)
			if err != nil {
				t.Fatalf("NewGardenStrings(%q) error: %v", tt.locale, err)
			}
			if gs.Locale() != tt.wantLocale {
				t.Errorf("Locale() = %q, want %q", gs.Locale(), tt.wantLocale)
			}
		})
	}
}

func TestGardenStringsMissingKeys(t *testing.T) {
	full := ParseGardenStrings("en", []byte(testPoEN))
	if missing := full.MissingKeys(); len(missing) != 0 {
		t.Errorf("MissingKeys() = %v, want none", missing)
	}

	partial := ParseGardenStrings("en", []byte("msgid \"CLEAR\"\nmsgstr \"Clear\"\n"))
	if got := len(partial.MissingKeys()); got != len(StringKeys)-1 {
		t.Errorf("len(MissingKeys()) = %d, want %d", got, len(StringKeys)-1)
	}
}

func TestLocaleFilesComplete(t *testing.T) {
	for _, locale := range []string{"en", "zh_CN"} {
		t.Run(locale, func(t *testing.T) {
			data, err := os.ReadFile("../../" + LocalePath(locale))
			if err != nil {
				t.Fatalf("读取语言文件失败: %v", err)
			}
			if missing := ParseGardenStrings(locale, data).MissingKeys(); len(missing) != 0 {
				t.Errorf("未翻译的键: %v", missing)
			}
		})
	}
}
