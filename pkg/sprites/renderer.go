package sprites

import (
	"image/color"

	"github.com/decker502/pixelgarden/pkg/bees"
	"github.com/decker502/pixelgarden/pkg/garden"
	"github.com/decker502/pixelgarden/pkg/palette"
	"github.com/decker502/pixelgarden/pkg/types"
)

// Rand 渲染时使用的随机源（花瓣颜色在每次绘制时重新随机）
// *math/rand.Rand 满足此接口，测试可注入固定序列
type Rand interface {
	Intn(n int) int
}

// drawFunc 单一物品类型的绘制函数
type drawFunc func(r *Renderer, s Surface, x, y float64, variant int, p *palette.ModePalette)

// drawers 物品类型 → 绘制函数的查找表
var drawers = map[types.ItemType]drawFunc{
	types.ItemTree:   drawTree,
	types.ItemFlower: drawFlower,
	types.ItemPond:   drawPond,
	types.ItemRock:   drawRock,
}

// Renderer 精灵渲染器
type Renderer struct {
	table    *palette.Table
	cellSize float64
	rng      Rand
}

// NewRenderer 创建精灵渲染器
//
// 参数:
//   - table: 昼夜调色板
//   - cellSize: 格子尺寸（像素）
//   - rng: 花瓣颜色随机源
func NewRenderer(table *palette.Table, cellSize int, rng Rand) *Renderer {
	return &Renderer{
		table:    table,
		cellSize: float64(cellSize),
		rng:      rng,
	}
}

// Palette 返回指定模式的调色板
func (r *Renderer) Palette(night bool) *palette.ModePalette {
	return r.table.For(night)
}

// fillCells 以格子为单位填充一组矩形
func (r *Renderer) fillCells(s Surface, x, y float64, cells []Cell, c color.Color) {
	cs := r.cellSize
	for _, cell := range cells {
		s.FillRect(x+float64(cell.DX)*cs, y+float64(cell.DY)*cs, float64(cell.W)*cs, float64(cell.H)*cs, c)
	}
}

// DrawItem 绘制单个物品
// 未知类型不绘制任何内容
func (r *Renderer) DrawItem(s Surface, item garden.Item, night bool) {
	draw, ok := drawers[item.Type]
	if !ok {
		return
	}
	draw(r, s, float64(item.X), float64(item.Y), variantIndex(item.Variant), r.table.For(night))
}

func drawTree(r *Renderer, s Surface, x, y float64, variant int, p *palette.ModePalette) {
	sil := silhouettes[types.ItemTree]
	r.fillCells(s, x, y, sil.Base, p.Tree.Trunk)

	leaves := p.Tree.Leaves[variant%len(p.Tree.Leaves)]
	r.fillCells(s, x, y, sil.Variants[variantIndex(variant)], leaves)
}

func drawFlower(r *Renderer, s Surface, x, y float64, variant int, p *palette.ModePalette) {
	sil := silhouettes[types.ItemFlower]
	r.fillCells(s, x, y, sil.Base, p.Flower.Stem)

	// 花瓣颜色不保存在物品上，每次绘制都重新随机
	petal := p.Flower.Petals[r.rng.Intn(len(p.Flower.Petals))]
	r.fillCells(s, x, y, sil.Variants[variantIndex(variant)], petal)
}

func drawPond(r *Renderer, s Surface, x, y float64, variant int, p *palette.ModePalette) {
	sil := silhouettes[types.ItemPond]
	water := p.Pond.Water[variant%len(p.Pond.Water)]
	r.fillCells(s, x, y, sil.Variants[variantIndex(variant)], water)
	r.fillCells(s, x, y, sil.Overlay, p.Pond.Highlight)
}

func drawRock(r *Renderer, s Surface, x, y float64, variant int, p *palette.ModePalette) {
	sil := silhouettes[types.ItemRock]
	stone := p.Rock.Stone[variant%len(p.Rock.Stone)]
	r.fillCells(s, x, y, sil.Variants[variantIndex(variant)], stone)
}

// DrawBee 绘制一只蜜蜂：身体、两条黑色条纹、左右扇动的翅膀
func (r *Renderer) DrawBee(s Surface, b bees.Bee, night bool) {
	p := r.table.For(night)
	size := b.Size

	s.FillRect(b.X, b.Y, size, size, p.Bee.Body)

	s.FillRect(b.X, b.Y+size*0.3, size, size*0.15, p.Bee.Stripe)
	s.FillRect(b.X, b.Y+size*0.6, size, size*0.15, p.Bee.Stripe)

	left, right := b.WingExtents()
	s.FillRect(b.X-size*0.5, b.Y-left/2, size*0.5, left, p.Bee.Wing)
	s.FillRect(b.X+size, b.Y-right/2, size*0.5, right, p.Bee.Wing)
}

// ItemSource 提供按绘制顺序排列的物品
type ItemSource interface {
	DrawOrder() []garden.Item
}

// BeeSource 提供蜜蜂列表
type BeeSource interface {
	Bees() []bees.Bee
}

// Scene 一帧完整场景的输入
type Scene struct {
	Width, Height int
	Night         bool
	Garden        ItemSource
	Bees          BeeSource
}

// DrawScene 绘制完整场景
//
// 顺序：背景 → 按 Y 升序的物品（画家算法）→ 蜜蜂（模拟器顺序，不排序）
func (r *Renderer) DrawScene(s Surface, sc Scene) {
	p := r.table.For(sc.Night)
	s.FillRect(0, 0, float64(sc.Width), float64(sc.Height), p.Background)

	if sc.Garden != nil {
		for _, item := range sc.Garden.DrawOrder() {
			r.DrawItem(s, item, sc.Night)
		}
	}

	if sc.Bees != nil {
		for _, b := range sc.Bees.Bees() {
			r.DrawBee(s, b, sc.Night)
		}
	}
}
