// Package garden 实现花园模型：已放置物品的有序集合与放置规则
package garden

import (
	"log"
	"slices"

	"github.com/decker502/pixelgarden/pkg/types"
	"github.com/decker502/pixelgarden/pkg/utils"
)

// VariantCount 每种物品的造型变体数量
const VariantCount = 3

// Rand 放置时使用的随机源
// *math/rand.Rand 满足此接口，测试可注入固定种子
type Rand interface {
	Intn(n int) int
}

// Item 已放置的花园物品
// 创建后不再修改，仅能被 Clear 整体清除
type Item struct {
	Type types.ItemType
	// X, Y 物品左上角坐标（像素，格子尺寸的整数倍）
	X, Y int
	// Variant 造型变体 (0, 1, 2)
	Variant int
	// Size 逻辑尺寸（格子）
	Size types.Size
}

// Garden 花园模型
//
// 物品按插入顺序保存；绘制顺序由 DrawOrder 按 Y 坐标生成，不修改存储顺序。
type Garden struct {
	items     []Item
	cellSize  int
	clearance float64
	rng       Rand
	verbose   bool
}

// New 创建花园模型
//
// 参数:
//   - cellSize: 网格格子尺寸（像素）
//   - clearance: 同类非花物品的最小中心间距（像素）
//   - rng: 变体随机源
func New(cellSize int, clearance float64, rng Rand) *Garden {
	return &Garden{
		items:     make([]Item, 0, 64),
		cellSize:  cellSize,
		clearance: clearance,
		rng:       rng,
	}
}

// SetVerbose 开启被拒绝放置的调试日志
func (g *Garden) SetVerbose(v bool) {
	g.verbose = v
}

// CellSize 返回格子尺寸
func (g *Garden) CellSize() int {
	return g.cellSize
}

// TryPlace 尝试在原始像素坐标处放置物品
//
// 坐标先向下对齐到网格。非花物品如果与任意同类物品的距离小于间距，
// 则静默拒绝（不修改状态，不返回错误）。
//
// 返回:
//   - Item: 新放置的物品（被拒绝时为零值）
//   - bool: 是否放置成功
func (g *Garden) TryPlace(itemType types.ItemType, rawX, rawY int) (Item, bool) {
	x, y := utils.SnapPoint(rawX, rawY, g.cellSize)

	if itemType != types.ItemFlower && g.tooClose(itemType, x, y) {
		if g.verbose {
			log.Printf("[Garden] 放置被拒绝: %s (%d, %d) 距离同类物品过近", itemType, x, y)
		}
		return Item{}, false
	}

	item := Item{
		Type:    itemType,
		X:       x,
		Y:       y,
		Variant: g.rng.Intn(VariantCount),
		Size:    itemType.Size(),
	}
	g.items = append(g.items, item)
	return item, true
}

// tooClose 检查 (x, y) 是否与同类物品距离小于间距
func (g *Garden) tooClose(itemType types.ItemType, x, y int) bool {
	for _, it := range g.items {
		if it.Type != itemType {
			continue
		}
		if utils.Distance(it.X, it.Y, x, y) < g.clearance {
			return true
		}
	}
	return false
}

// Clear 清空所有物品
func (g *Garden) Clear() {
	g.items = g.items[:0]
}

// Len 返回物品数量
func (g *Garden) Len() int {
	return len(g.items)
}

// Items 返回按插入顺序排列的物品副本
func (g *Garden) Items() []Item {
	return slices.Clone(g.items)
}

// DrawOrder 返回按 Y 坐标升序排列的物品副本（画家算法）
// 使用稳定排序，Y 相同时保持插入顺序
func (g *Garden) DrawOrder() []Item {
	ordered := slices.Clone(g.items)
	slices.SortStableFunc(ordered, func(a, b Item) int {
		return a.Y - b.Y
	})
	return ordered
}

// CountByType 按类型统计物品数量
func (g *Garden) CountByType() map[types.ItemType]int {
	counts := make(map[types.ItemType]int, 4)
	for _, it := range g.items {
		counts[it.Type]++
	}
	return counts
}
