package sprites

import "github.com/decker502/pixelgarden/pkg/types"

// Cell 以格子为单位的矩形（相对物品左上角）
type Cell struct {
	DX, DY, W, H int
}

// Silhouette 一种物品类型的全部造型
type Silhouette struct {
	// Base 在变体之前绘制的固定部分（树干、花茎），可为空
	Base []Cell
	// Variants 三种变体造型
	Variants [3][]Cell
	// Overlay 在变体之后绘制的固定部分（池塘高光），可为空
	Overlay []Cell
}

// silhouettes 各类型物品的手绘造型表
var silhouettes = map[types.ItemType]Silhouette{
	types.ItemTree: {
		Base: []Cell{{2, 3, 1, 4}},
		Variants: [3][]Cell{
			// 松树
			{{2, 0, 1, 1}, {1, 1, 3, 1}, {0, 2, 5, 1}},
			// 圆冠
			{{1, 1, 3, 1}, {0, 2, 5, 1}, {1, 3, 3, 1}},
			// 灌木
			{{1, 0, 3, 1}, {0, 1, 5, 2}},
		},
	},
	types.ItemFlower: {
		Base: []Cell{{1, 2, 1, 2}},
		Variants: [3][]Cell{
			// 十字
			{{1, 0, 1, 1}, {0, 1, 3, 1}},
			// 圆花
			{{0, 1, 1, 1}, {1, 0, 1, 2}, {2, 1, 1, 1}},
			// 郁金香
			{{0, 1, 1, 1}, {1, 0, 1, 2}, {2, 1, 1, 1}},
		},
	},
	types.ItemPond: {
		Variants: [3][]Cell{
			// 圆形
			{{1, 0, 4, 1}, {0, 1, 6, 2}, {1, 3, 4, 1}},
			// 椭圆
			{{1, 0, 4, 1}, {0, 1, 6, 1}, {0, 2, 6, 1}, {1, 3, 4, 1}},
			// 不规则
			{{1, 0, 3, 1}, {0, 1, 5, 1}, {1, 2, 4, 1}, {2, 3, 2, 1}},
		},
		Overlay: []Cell{{2, 1, 1, 1}},
	},
	types.ItemRock: {
		Variants: [3][]Cell{
			// 小石头
			{{1, 1, 2, 2}},
			// 中石头
			{{0, 1, 4, 2}},
			// 大石头
			{{1, 0, 2, 1}, {0, 1, 4, 1}, {1, 2, 2, 1}},
		},
	},
}

// variantIndex 将变体编号映射到造型下标
// 超出范围的编号使用最后一种造型
func variantIndex(v int) int {
	if v >= 0 && v < 3 {
		return v
	}
	return 2
}
