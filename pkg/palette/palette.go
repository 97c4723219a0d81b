// Package palette 提供花园物品的昼夜调色板
//
// 调色板是不可变的静态表：每种物品类型在白天和夜晚各有一组颜色，
// 包含具名颜色角色（如树干、花茎）和可选颜色列表（如树叶、花瓣）。
package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// TreeColors 树的颜色
type TreeColors struct {
	Trunk  color.NRGBA
	Leaves []color.NRGBA
}

// FlowerColors 花的颜色
type FlowerColors struct {
	Stem   color.NRGBA
	Petals []color.NRGBA
}

// PondColors 池塘的颜色
type PondColors struct {
	Water     []color.NRGBA
	Highlight color.NRGBA
}

// RockColors 石头的颜色
type RockColors struct {
	Stone []color.NRGBA
}

// BeeColors 蜜蜂的颜色
type BeeColors struct {
	Body   color.NRGBA
	Stripe color.NRGBA
	Wing   color.NRGBA
}

// ModePalette 某一模式（白天或夜晚）下的完整调色板
type ModePalette struct {
	Background color.NRGBA
	Tree       TreeColors
	Flower     FlowerColors
	Pond       PondColors
	Rock       RockColors
	Bee        BeeColors
}

// Table 昼夜调色板表
type Table struct {
	day   ModePalette
	night ModePalette
}

// For 返回指定模式下的调色板
func (t *Table) For(night bool) *ModePalette {
	if night {
		return &t.night
	}
	return &t.day
}

// Day 返回白天调色板
func (t *Table) Day() *ModePalette { return &t.day }

// Night 返回夜晚调色板
func (t *Table) Night() *ModePalette { return &t.night }

// Default 返回内置调色板
func Default() *Table {
	return &Table{
		day: ModePalette{
			Background: mustHex("#7EC850"),
			Tree: TreeColors{
				Trunk:  mustHex("#8B4513"),
				Leaves: mustHexList("#228B22", "#32CD32", "#3CB371"),
			},
			Flower: FlowerColors{
				Stem:   mustHex("#228B22"),
				Petals: mustHexList("#FF69B4", "#FF1493", "#FFD700", "#FF4500", "#9370DB", "#BA55D3"),
			},
			Pond: PondColors{
				Water:     mustHexList("#1E90FF", "#4169E1", "#00BFFF"),
				Highlight: WithAlpha(color.NRGBA{R: 255, G: 255, B: 255}, 0.3),
			},
			Rock: RockColors{
				Stone: mustHexList("#808080", "#A9A9A9", "#696969", "#778899"),
			},
			Bee: BeeColors{
				Body:   mustHex("#FFD700"),
				Stripe: mustHex("#000000"),
				Wing:   WithAlpha(color.NRGBA{R: 255, G: 255, B: 255}, 0.7),
			},
		},
		night: ModePalette{
			Background: mustHex("#1E4620"),
			Tree: TreeColors{
				Trunk:  mustHex("#5D2E0C"),
				Leaves: mustHexList("#193E19", "#1E4620", "#254B38"),
			},
			Flower: FlowerColors{
				Stem:   mustHex("#193E19"),
				Petals: mustHexList("#A34A77", "#8A1650", "#A38A00", "#A35000", "#614783", "#7A3B8C"),
			},
			Pond: PondColors{
				Water:     mustHexList("#104E8B", "#24427A", "#00688B"),
				Highlight: WithAlpha(color.NRGBA{R: 255, G: 255, B: 255}, 0.1),
			},
			Rock: RockColors{
				Stone: mustHexList("#4D4D4D", "#666666", "#3D3D3D", "#475F77"),
			},
			Bee: BeeColors{
				Body:   mustHex("#D8BE60"),
				Stripe: mustHex("#000000"),
				Wing:   WithAlpha(color.NRGBA{R: 220, G: 220, B: 255}, 0.5),
			},
		},
	}
}

// WithAlpha 返回设置了不透明度的颜色（alpha 取值 0.0 ~ 1.0）
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(alpha*255 + 0.5)
	return c
}

// ParseHex 解析 "#RRGGBB" 或 "#RRGGBBAA" 格式的颜色
func ParseHex(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

func mustHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func mustHexList(list ...string) []color.NRGBA {
	out := make([]color.NRGBA, len(list))
	for i, s := range list {
		out[i] = mustHex(s)
	}
	return out
}

// ========================================
// YAML 调色板文件
// ========================================

type rawModePalette struct {
	Background string `yaml:"background"`
	Tree       struct {
		Trunk  string   `yaml:"trunk"`
		Leaves []string `yaml:"leaves"`
	} `yaml:"tree"`
	Flower struct {
		Stem   string   `yaml:"stem"`
		Petals []string `yaml:"petals"`
	} `yaml:"flower"`
	Pond struct {
		Water     []string `yaml:"water"`
		Highlight string   `yaml:"highlight"`
	} `yaml:"pond"`
	Rock struct {
		Stone []string `yaml:"stone"`
	} `yaml:"rock"`
	Bee struct {
		Body   string `yaml:"body"`
		Stripe string `yaml:"stripe"`
		Wing   string `yaml:"wing"`
	} `yaml:"bee"`
}

type rawTable struct {
	Day   rawModePalette `yaml:"day"`
	Night rawModePalette `yaml:"night"`
}

// Parse 解析 YAML 格式的调色板文件
//
// 文件格式：
//
//	day:
//	  background: "#7EC850"
//	  tree: {trunk: "#8B4513", leaves: ["#228B22"]}
//	  ...
//	night:
//	  ...
//
// 任何缺失的颜色角色都会返回错误，错误信息包含模式、类型和角色名。
func Parse(data []byte) (*Table, error) {
	var raw rawTable
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}

	day, err := raw.Day.decode("day")
	if err != nil {
		return nil, err
	}
	night, err := raw.Night.decode("night")
	if err != nil {
		return nil, err
	}
	return &Table{day: *day, night: *night}, nil
}

func (r *rawModePalette) decode(mode string) (*ModePalette, error) {
	var p ModePalette
	var err error

	one := func(role, s string) color.NRGBA {
		if err != nil {
			return color.NRGBA{}
		}
		if s == "" {
			err = fmt.Errorf("palette %s: missing %s", mode, role)
			return color.NRGBA{}
		}
		c, perr := ParseHex(s)
		if perr != nil {
			err = fmt.Errorf("palette %s.%s: %w", mode, role, perr)
		}
		return c
	}
	list := func(role string, ss []string) []color.NRGBA {
		if err != nil {
			return nil
		}
		if len(ss) == 0 {
			err = fmt.Errorf("palette %s: missing %s", mode, role)
			return nil
		}
		out := make([]color.NRGBA, len(ss))
		for i, s := range ss {
			out[i] = one(fmt.Sprintf("%s[%d]", role, i), s)
		}
		return out
	}

	p.Background = one("background", r.Background)
	p.Tree.Trunk = one("tree.trunk", r.Tree.Trunk)
	p.Tree.Leaves = list("tree.leaves", r.Tree.Leaves)
	p.Flower.Stem = one("flower.stem", r.Flower.Stem)
	p.Flower.Petals = list("flower.petals", r.Flower.Petals)
	p.Pond.Water = list("pond.water", r.Pond.Water)
	p.Pond.Highlight = one("pond.highlight", r.Pond.Highlight)
	p.Rock.Stone = list("rock.stone", r.Rock.Stone)
	p.Bee.Body = one("bee.body", r.Bee.Body)
	p.Bee.Stripe = one("bee.stripe", r.Bee.Stripe)
	p.Bee.Wing = one("bee.wing", r.Bee.Wing)

	if err != nil {
		return nil, err
	}
	return &p, nil
}
