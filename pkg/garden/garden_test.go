package garden

import (
	"math/rand"
	"testing"

	"github.com/decker502/pixelgarden/pkg/types"
	"github.com/decker502/pixelgarden/pkg/utils"
)

// fixedRand 固定返回值的随机源
type fixedRand struct{ n int }

func (r fixedRand) Intn(n int) int { return r.n % n }

func newTestGarden() *Garden {
	return New(16, 48, rand.New(rand.NewSource(1)))
}

// TestTryPlaceScenario 测试典型放置场景
func TestTryPlaceScenario(t *testing.T) {
	g := newTestGarden()

	// 在 (10, 10) 放置树 → 对齐到 (0, 0)
	tree, ok := g.TryPlace(types.ItemTree, 10, 10)
	if !ok {
		t.Fatal("first tree should be placed")
	}
	if tree.X != 0 || tree.Y != 0 {
		t.Errorf("tree position = (%d, %d), want (0, 0)", tree.X, tree.Y)
	}
	if tree.Size != (types.Size{W: 5, H: 7}) {
		t.Errorf("tree size = %+v", tree.Size)
	}

	// 在 (20, 20) 放置第二棵树 → 对齐到 (16, 16)，距离 22.6 < 48，拒绝
	if _, ok := g.TryPlace(types.ItemTree, 20, 20); ok {
		t.Error("second tree at (20, 20) should be rejected")
	}
	if g.Len() != 1 {
		t.Errorf("rejected placement must not change state, len = %d", g.Len())
	}

	// 在 (20, 20) 放置花 → 始终接受
	flower, ok := g.TryPlace(types.ItemFlower, 20, 20)
	if !ok {
		t.Fatal("flower should always be accepted")
	}
	if flower.X != 16 || flower.Y != 16 {
		t.Errorf("flower position = (%d, %d), want (16, 16)", flower.X, flower.Y)
	}
}

// TestTryPlaceDifferentTypes 测试不同类型之间不受间距限制
func TestTryPlaceDifferentTypes(t *testing.T) {
	g := newTestGarden()

	for _, it := range types.AllItemTypes() {
		if _, ok := g.TryPlace(it, 0, 0); !ok {
			t.Errorf("%s at origin should be accepted when no same-type item exists", it)
		}
	}
	if g.Len() != 4 {
		t.Errorf("len = %d, want 4", g.Len())
	}
}

// TestTryPlaceClearanceBoundary 测试间距边界：恰好 3 格时允许放置
func TestTryPlaceClearanceBoundary(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		wantOK bool
	}{
		{"恰好 48 像素（水平）", 48, 0, true},
		{"47 像素对齐到 32", 47, 0, false},
		{"对角 (32, 32) 距离 45.25", 32, 32, false},
		{"对角 (48, 16) 距离 50.6", 48, 16, true},
		{"垂直 48 像素", 0, 48, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGarden()
			g.TryPlace(types.ItemRock, 0, 0)
			if _, ok := g.TryPlace(types.ItemRock, tt.x, tt.y); ok != tt.wantOK {
				t.Errorf("TryPlace(rock, %d, %d) = %v, want %v", tt.x, tt.y, ok, tt.wantOK)
			}
		})
	}
}

// TestFlowersNeverRejected 测试花可以任意聚集
func TestFlowersNeverRejected(t *testing.T) {
	g := newTestGarden()
	for i := 0; i < 50; i++ {
		if _, ok := g.TryPlace(types.ItemFlower, 5, 5); !ok {
			t.Fatalf("flower #%d rejected", i)
		}
	}
	if g.Len() != 50 {
		t.Errorf("len = %d, want 50", g.Len())
	}
}

// TestClearanceInvariant 测试任意放置序列后同类非花物品的间距不变量
func TestClearanceInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := New(16, 48, rng)
	all := types.AllItemTypes()

	for i := 0; i < 2000; i++ {
		it := all[rng.Intn(len(all))]
		g.TryPlace(it, rng.Intn(800), rng.Intn(480))
	}

	items := g.Items()
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			if a.Type != b.Type || a.Type == types.ItemFlower {
				continue
			}
			if d := utils.Distance(a.X, a.Y, b.X, b.Y); d < 48 {
				t.Fatalf("%s items %d and %d are %.2f apart", a.Type, i, j, d)
			}
		}
		if items[i].X%16 != 0 || items[i].Y%16 != 0 {
			t.Fatalf("item %d not grid aligned: (%d, %d)", i, items[i].X, items[i].Y)
		}
		if items[i].Variant < 0 || items[i].Variant >= VariantCount {
			t.Fatalf("item %d has invalid variant %d", i, items[i].Variant)
		}
	}
}

// TestSnapIdempotentPlacement 测试同一格子内放置得到相同坐标
func TestSnapIdempotentPlacement(t *testing.T) {
	g := newTestGarden()
	a, _ := g.TryPlace(types.ItemFlower, 33, 65)
	b, _ := g.TryPlace(types.ItemFlower, 47, 79)
	if a.X != b.X || a.Y != b.Y {
		t.Errorf("same cell placements differ: (%d, %d) vs (%d, %d)", a.X, a.Y, b.X, b.Y)
	}
}

// TestVariantFromRand 测试变体来自注入的随机源
func TestVariantFromRand(t *testing.T) {
	g := New(16, 48, fixedRand{n: 2})
	item, _ := g.TryPlace(types.ItemPond, 100, 100)
	if item.Variant != 2 {
		t.Errorf("variant = %d, want 2", item.Variant)
	}
}

// TestClear 测试清空
func TestClear(t *testing.T) {
	g := newTestGarden()
	g.TryPlace(types.ItemTree, 0, 0)
	g.TryPlace(types.ItemFlower, 0, 0)
	g.Clear()

	if g.Len() != 0 || len(g.Items()) != 0 || len(g.DrawOrder()) != 0 {
		t.Error("garden should be empty after Clear")
	}

	// 清空后可以在原位置再次放置
	if _, ok := g.TryPlace(types.ItemTree, 0, 0); !ok {
		t.Error("tree should be placeable after Clear")
	}
}

// TestDrawOrder 测试按 Y 升序的稳定排序，且不修改存储顺序
func TestDrawOrder(t *testing.T) {
	g := newTestGarden()
	g.TryPlace(types.ItemTree, 0, 200)
	g.TryPlace(types.ItemFlower, 0, 50)
	g.TryPlace(types.ItemRock, 100, 200)
	g.TryPlace(types.ItemPond, 300, 10)

	order := g.DrawOrder()
	wantTypes := []types.ItemType{types.ItemPond, types.ItemFlower, types.ItemTree, types.ItemRock}
	for i, want := range wantTypes {
		if order[i].Type != want {
			t.Errorf("DrawOrder()[%d] = %s, want %s", i, order[i].Type, want)
		}
	}

	items := g.Items()
	if items[0].Type != types.ItemTree || items[3].Type != types.ItemPond {
		t.Error("DrawOrder must not reorder the stored items")
	}
}

// TestItemsIsCopy 测试返回的切片是副本
func TestItemsIsCopy(t *testing.T) {
	g := newTestGarden()
	g.TryPlace(types.ItemTree, 0, 0)
	items := g.Items()
	items[0].X = 999
	if g.Items()[0].X != 0 {
		t.Error("modifying Items() result must not affect the garden")
	}
}

// TestCountByType 测试按类型统计
func TestCountByType(t *testing.T) {
	g := newTestGarden()
	g.TryPlace(types.ItemFlower, 0, 0)
	g.TryPlace(types.ItemFlower, 0, 0)
	g.TryPlace(types.ItemRock, 0, 0)

	counts := g.CountByType()
	if counts[types.ItemFlower] != 2 || counts[types.ItemRock] != 1 || counts[types.ItemTree] != 0 {
		t.Errorf("CountByType = %v", counts)
	}
}
