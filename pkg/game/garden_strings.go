package game

import (
	"fmt"

	"github.com/decker502/pixelgarden/pkg/embedded"
	"github.com/decker502/pixelgarden/pkg/types"
	"github.com/leonelquinteros/gotext"
)

// 文本键
const (
	KeyToolTree    = "TOOL_TREE"
	KeyToolFlower  = "TOOL_FLOWER"
	KeyToolPond    = "TOOL_POND"
	KeyToolRock    = "TOOL_ROCK"
	KeyClear       = "CLEAR"
	KeyModeToNight = "MODE_TO_NIGHT"
	KeyModeToDay   = "MODE_TO_DAY"
	KeyStatusItems = "STATUS_ITEMS"
)

// DefaultLocale 找不到语言目录时使用的语言
const DefaultLocale = "en"

// LocalePath 返回语言目录中的 .po 文件路径
func LocalePath(locale string) string {
	return fmt.Sprintf("data/locales/%s/garden.po", locale)
}

// GardenStrings 界面文本管理器
// 从 gettext .po 目录加载本地化文本，键即 msgid
type GardenStrings struct {
	locale string
	po     *gotext.Po
}

// NewGardenStrings 加载指定语言的文本
//
// 语言文件不存在时回退到 DefaultLocale。
//
// 返回：
//   - *GardenStrings: 文本管理器实例
//   - error: 默认语言文件也无法读取时返回错误
func NewGardenStrings(locale string) (*GardenStrings, error) {
	if locale == "" {
		locale = DefaultLocale
	}

	data, err := embedded.ReadFileOrDisk(LocalePath(locale))
	if err != nil && locale != DefaultLocale {
		locale = DefaultLocale
		data, err = embedded.ReadFileOrDisk(LocalePath(locale))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load locale %s: %w", locale, err)
	}

	return ParseGardenStrings(locale, data), nil
}

// ParseGardenStrings 从 .po 内容创建文本管理器
func ParseGardenStrings(locale string, data []byte) *GardenStrings {
	po := gotext.NewPo()
	po.Parse(data)
	return &GardenStrings{locale: locale, po: po}
}

// Locale 返回当前语言
func (gs *GardenStrings) Locale() string {
	return gs.locale
}

// StringKeys 界面用到的全部文本键
var StringKeys = []string{
	KeyToolTree, KeyToolFlower, KeyToolPond, KeyToolRock,
	KeyClear, KeyModeToNight, KeyModeToDay, KeyStatusItems,
}

// MissingKeys 返回未翻译的文本键
func (gs *GardenStrings) MissingKeys() []string {
	var missing []string
	for _, key := range StringKeys {
		if gs.GetString(key) == key {
			missing = append(missing, key)
		}
	}
	return missing
}

// GetString 根据键获取文本
// 未翻译的键原样返回
func (gs *GardenStrings) GetString(key string, vars ...interface{}) string {
	if gs == nil || gs.po == nil {
		return key
	}
	return gs.po.Get(key, vars...)
}

// ToolLabel 返回工具按钮文本
func (gs *GardenStrings) ToolLabel(t types.ItemType) string {
	switch t {
	case types.ItemTree:
		return gs.GetString(KeyToolTree)
	case types.ItemFlower:
		return gs.GetString(KeyToolFlower)
	case types.ItemPond:
		return gs.GetString(KeyToolPond)
	case types.ItemRock:
		return gs.GetString(KeyToolRock)
	}
	return t.String()
}

// ModeLabel 返回昼夜切换按钮文本
// 白天显示切换到夜晚的文字，夜晚显示切换到白天的文字
func (gs *GardenStrings) ModeLabel(night bool) string {
	if night {
		return gs.GetString(KeyModeToDay)
	}
	return gs.GetString(KeyModeToNight)
}

// ClearLabel 返回清空按钮文本
func (gs *GardenStrings) ClearLabel() string {
	return gs.GetString(KeyClear)
}
