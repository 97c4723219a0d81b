package config

import (
	"fmt"

	"github.com/decker502/pixelgarden/pkg/embedded"
	"github.com/decker502/pixelgarden/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultGardenConfigPath 默认花园配置文件路径（嵌入资源）
const DefaultGardenConfigPath = "data/garden.yaml"

// GardenConfig 花园配置
//
// 包含画布尺寸、网格格子尺寸、放置间距和蜜蜂参数。
//
// 配置文件位置: data/garden.yaml
type GardenConfig struct {
	// Canvas 画布尺寸（像素）
	Canvas CanvasConfig `yaml:"canvas"`

	// CellSize 网格格子尺寸（像素），所有物品坐标都对齐到它的整数倍
	CellSize int `yaml:"cellSize"`

	// ClearanceCells 同类非花物品之间的最小中心距离（单位：格子）
	ClearanceCells int `yaml:"clearanceCells"`

	// Bees 蜜蜂模拟参数
	Bees BeeConfig `yaml:"bees"`

	// Seed 随机种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`

	// PalettePath 调色板文件路径，为空则使用内置调色板
	PalettePath string `yaml:"palette"`

	// Locale 界面语言（如 "en", "zh_CN"）
	Locale string `yaml:"locale"`

	// Tool 启动时选中的工具（tree, flower, pond, rock）
	Tool types.ItemType `yaml:"tool"`
}

// CanvasConfig 画布尺寸
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BeeConfig 蜜蜂模拟参数
//
// 每个 tick 固定步长推进，不做 deltaTime 缩放。
type BeeConfig struct {
	// Count 启动时创建的蜜蜂数量
	Count int `yaml:"count"`

	// RedirectChance 每只蜜蜂每个 tick 随机改变速度的概率
	RedirectChance float64 `yaml:"redirectChance"`

	// WingStep 翅膀相位每个 tick 的增量（弧度）
	WingStep float64 `yaml:"wingStep"`

	// MaxSpeedX 水平速度上限，速度在 [-MaxSpeedX, MaxSpeedX] 内均匀分布
	MaxSpeedX float64 `yaml:"maxSpeedX"`

	// MaxSpeedY 垂直速度上限，速度在 [-MaxSpeedY, MaxSpeedY] 内均匀分布
	MaxSpeedY float64 `yaml:"maxSpeedY"`
}

// DefaultBeeConfig 返回默认蜜蜂参数
func DefaultBeeConfig() BeeConfig {
	return BeeConfig{
		Count:          5,
		RedirectChance: 0.02,
		WingStep:       0.2,
		MaxSpeedX:      1.0,
		MaxSpeedY:      0.75,
	}
}

// DefaultGardenConfig 返回默认花园配置
func DefaultGardenConfig() *GardenConfig {
	return &GardenConfig{
		Canvas: CanvasConfig{
			Width:  DefaultCanvasWidth,
			Height: DefaultCanvasHeight,
		},
		CellSize:       DefaultCellSize,
		ClearanceCells: DefaultClearanceCells,
		Bees:           DefaultBeeConfig(),
		Locale:         "en",
		Tool:           types.ItemTree,
	}
}

// ParseGardenConfig 解析 YAML 格式的花园配置
//
// 未出现在 YAML 中的字段保留默认值。
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *GardenConfig: 解析并验证后的配置
//   - error: 解析或验证失败时返回错误
func ParseGardenConfig(data []byte) (*GardenConfig, error) {
	config := DefaultGardenConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse garden config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid garden config: %w", err)
	}

	return config, nil
}

// LoadGardenConfig 加载花园配置
//
// 优先从嵌入资源读取，找不到时读取磁盘文件。
//
// 参数:
//   - path: 配置文件路径（如 "data/garden.yaml"）
//
// 返回:
//   - *GardenConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadGardenConfig(path string) (*GardenConfig, error) {
	data, err := embedded.ReadFileOrDisk(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read garden config: %w", err)
	}
	return ParseGardenConfig(data)
}

// Validate 验证配置有效性
//
// 检查配置值是否在合理范围内：
//   - 画布尺寸和格子尺寸必须为正数
//   - 画布尺寸必须是格子尺寸的整数倍
//   - 随机转向概率在 [0, 1] 之间
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *GardenConfig) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("cellSize must be positive, got %d", c.CellSize)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Width%c.CellSize != 0 || c.Canvas.Height%c.CellSize != 0 {
		return fmt.Errorf("canvas %dx%d is not a multiple of cellSize %d",
			c.Canvas.Width, c.Canvas.Height, c.CellSize)
	}
	if c.ClearanceCells < 0 {
		return fmt.Errorf("clearanceCells must be >= 0, got %d", c.ClearanceCells)
	}
	if c.Bees.Count < 0 {
		return fmt.Errorf("bees.count must be >= 0, got %d", c.Bees.Count)
	}
	if c.Bees.RedirectChance < 0 || c.Bees.RedirectChance > 1 {
		return fmt.Errorf("bees.redirectChance must be within [0, 1], got %.3f", c.Bees.RedirectChance)
	}
	if !c.Tool.IsValid() {
		return fmt.Errorf("tool must be one of tree, flower, pond, rock, got %s", c.Tool)
	}
	if c.Bees.MaxSpeedX < 0 || c.Bees.MaxSpeedY < 0 {
		return fmt.Errorf("bee speed limits must be >= 0, got (%.2f, %.2f)",
			c.Bees.MaxSpeedX, c.Bees.MaxSpeedY)
	}
	return nil
}

// ClearanceDistance 返回同类物品的最小间距（像素）
func (c *GardenConfig) ClearanceDistance() float64 {
	return float64(c.ClearanceCells * c.CellSize)
}
