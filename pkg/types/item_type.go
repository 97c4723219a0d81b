// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"
	"strings"
)

// ItemType 定义花园物品的类型
type ItemType int

const (
	// ItemUnknown 未知物品类型
	ItemUnknown ItemType = iota
	// ItemTree 树
	ItemTree
	// ItemFlower 花
	ItemFlower
	// ItemPond 池塘
	ItemPond
	// ItemRock 石头
	ItemRock
)

// Size 物品的逻辑尺寸（单位：网格格子）
type Size struct {
	W int `yaml:"width"`
	H int `yaml:"height"`
}

// itemSizes 各类型物品的固定逻辑尺寸
var itemSizes = map[ItemType]Size{
	ItemTree:   {W: 5, H: 7},
	ItemFlower: {W: 3, H: 4},
	ItemPond:   {W: 6, H: 4},
	ItemRock:   {W: 4, H: 3},
}

// AllItemTypes 返回全部可放置的物品类型（工具栏顺序）
func AllItemTypes() []ItemType {
	return []ItemType{ItemTree, ItemFlower, ItemPond, ItemRock}
}

// String 返回物品类型的字符串表示
func (t ItemType) String() string {
	switch t {
	case ItemTree:
		return "tree"
	case ItemFlower:
		return "flower"
	case ItemPond:
		return "pond"
	case ItemRock:
		return "rock"
	default:
		return "unknown"
	}
}

// IsValid 是否为可放置的物品类型
func (t ItemType) IsValid() bool {
	return t >= ItemTree && t <= ItemRock
}

// Size 返回物品类型的固定逻辑尺寸
// 未知类型返回 1x1
func (t ItemType) Size() Size {
	if s, ok := itemSizes[t]; ok {
		return s
	}
	return Size{W: 1, H: 1}
}

// ParseItemType 将字符串解析为物品类型（大小写不敏感）
func ParseItemType(s string) (ItemType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range AllItemTypes() {
		if t.String() == name {
			return t, nil
		}
	}
	return ItemUnknown, fmt.Errorf("unknown item type: %q", s)
}

// UnmarshalYAML 从字符串读取物品类型
func (t *ItemType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseItemType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
