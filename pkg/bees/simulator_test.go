package bees

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/pixelgarden/pkg/config"
)

// seqRand 按顺序返回预设值的随机源，用完后循环
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func newTestSimulator(rng Rand) *Simulator {
	return NewSimulator(config.DefaultBeeConfig(), 800, 480, 16, rng)
}

// TestSpawn 测试创建蜜蜂的初始分布
func TestSpawn(t *testing.T) {
	s := newTestSimulator(rand.New(rand.NewSource(3)))
	s.Spawn(5)

	if s.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", s.Len())
	}
	for i, b := range s.Bees() {
		if b.X < 0 || b.X >= 800 || b.Y < 0 || b.Y >= 240 {
			t.Errorf("bee %d spawned outside upper half: (%.1f, %.1f)", i, b.X, b.Y)
		}
		if b.SpeedX < -1 || b.SpeedX > 1 || b.SpeedY < -0.75 || b.SpeedY > 0.75 {
			t.Errorf("bee %d speed out of range: (%.2f, %.2f)", i, b.SpeedX, b.SpeedY)
		}
		if b.Size != 16 {
			t.Errorf("bee %d size = %v, want 16", i, b.Size)
		}
		if b.WingOffset < 0 || b.WingOffset >= 2*math.Pi {
			t.Errorf("bee %d wing offset = %v", i, b.WingOffset)
		}
	}
}

// TestTickWingOffset 测试一个 tick 后每只蜜蜂的翅膀相位恰好增加 0.2
func TestTickWingOffset(t *testing.T) {
	s := newTestSimulator(rand.New(rand.NewSource(11)))
	s.Spawn(5)
	before := s.Bees()

	s.Tick()

	after := s.Bees()
	if len(after) != 5 {
		t.Fatalf("bee count changed: %d", len(after))
	}
	for i := range after {
		if after[i].WingOffset != before[i].WingOffset+0.2 {
			t.Errorf("bee %d wing offset %v -> %v, want +0.2", i, before[i].WingOffset, after[i].WingOffset)
		}
	}
}

// TestTickMovesByVelocity 测试无随机转向时位置按速度推进
func TestTickMovesByVelocity(t *testing.T) {
	// Spawn 消耗 5 个值：x, y, wing, vx, vy；之后 tick 的转向判定都返回 0.99（不转向）
	rng := &seqRand{vals: []float64{0.5, 0.5, 0, 0.75, 0.25, 0.99}}
	s := newTestSimulator(rng)
	s.Spawn(1)

	b := s.Bees()[0]
	if b.X != 400 || b.Y != 120 {
		t.Fatalf("spawn position = (%v, %v), want (400, 120)", b.X, b.Y)
	}
	if b.SpeedX != 0.5 || b.SpeedY != -0.375 {
		t.Fatalf("spawn speed = (%v, %v), want (0.5, -0.375)", b.SpeedX, b.SpeedY)
	}

	rng.vals = []float64{0.99}
	rng.i = 0
	s.Tick()

	b = s.Bees()[0]
	if b.X != 400.5 || b.Y != 119.625 {
		t.Errorf("after tick = (%v, %v), want (400.5, 119.625)", b.X, b.Y)
	}
	if b.SpeedX != 0.5 || b.SpeedY != -0.375 {
		t.Errorf("speed changed without redirect: (%v, %v)", b.SpeedX, b.SpeedY)
	}
}

// TestTickRedirect 测试随机转向
func TestTickRedirect(t *testing.T) {
	rng := &seqRand{vals: []float64{0.5, 0.5, 0, 0.5, 0.5}}
	s := newTestSimulator(rng)
	s.Spawn(1)

	// 转向判定 0.01 < 0.02，随后速度取 1.0 和 0.0
	rng.vals = []float64{0.01, 1.0, 0.0}
	rng.i = 0
	s.Tick()

	b := s.Bees()[0]
	if b.SpeedX != 1 || b.SpeedY != -0.75 {
		t.Errorf("redirected speed = (%v, %v), want (1, -0.75)", b.SpeedX, b.SpeedY)
	}
}

// TestTickClamp 测试位置始终限制在画布上半部分
func TestTickClamp(t *testing.T) {
	s := newTestSimulator(rand.New(rand.NewSource(99)))
	s.Spawn(20)

	for n := 0; n < 5000; n++ {
		s.Tick()
		for i, b := range s.Bees() {
			if b.X < 0 || b.X > 800 || b.Y < 0 || b.Y > 240 {
				t.Fatalf("tick %d: bee %d escaped to (%.2f, %.2f)", n, i, b.X, b.Y)
			}
		}
	}
}

// TestTickClampEdges 测试越界时被截断到边界
func TestTickClampEdges(t *testing.T) {
	s := newTestSimulator(&seqRand{vals: []float64{0.99}})
	s.bees = []Bee{
		{X: 0.2, Y: 239.9, SpeedX: -1, SpeedY: 0.75, Size: 16},
		{X: 799.5, Y: 0.1, SpeedX: 1, SpeedY: -0.75, Size: 16},
	}
	s.Tick()

	got := s.Bees()
	if got[0].X != 0 || got[0].Y != 240 {
		t.Errorf("bee 0 = (%v, %v), want (0, 240)", got[0].X, got[0].Y)
	}
	if got[1].X != 800 || got[1].Y != 0 {
		t.Errorf("bee 1 = (%v, %v), want (800, 0)", got[1].X, got[1].Y)
	}
}

// TestWingExtents 测试翅膀高度公式
func TestWingExtents(t *testing.T) {
	tests := []struct {
		name      string
		phase     float64
		wantLeft  float64
		wantRight float64
	}{
		{"相位 0", 0, 4.8, 4.8},
		{"相位 π/2", math.Pi / 2, 16, 16},
		{"相位 π/6", math.Pi / 6, 0.5*16*0.7 + 4.8, 0.5*16*0.7 + 4.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Bee{Size: 16, WingOffset: tt.phase}
			l, r := b.WingExtents()
			if math.Abs(l-tt.wantLeft) > 1e-9 || math.Abs(r-tt.wantRight) > 1e-9 {
				t.Errorf("WingExtents() = (%v, %v), want (%v, %v)", l, r, tt.wantLeft, tt.wantRight)
			}
		})
	}
}

// TestBeesIsCopy 测试返回副本
func TestBeesIsCopy(t *testing.T) {
	s := newTestSimulator(rand.New(rand.NewSource(1)))
	s.Spawn(1)
	bs := s.Bees()
	bs[0].X = -100
	if s.Bees()[0].X == -100 {
		t.Error("Bees() must return a copy")
	}
}
