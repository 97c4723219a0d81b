// Package bees 实现环境蜜蜂的运动模拟
//
// 每个 tick 以固定步长推进（不做 deltaTime 缩放），蜜蜂在启动时创建，
// 在进程生命周期内不会被销毁。
package bees

import (
	"math"

	"github.com/decker502/pixelgarden/pkg/config"
)

// Rand 模拟使用的随机源
// *math/rand.Rand 满足此接口
type Rand interface {
	Float64() float64
}

// Bee 单只蜜蜂的状态
type Bee struct {
	X, Y           float64
	SpeedX, SpeedY float64
	// Size 身体边长（像素），创建后不变
	Size float64
	// WingOffset 翅膀相位（弧度），单调递增，使用方自行取周期
	WingOffset float64
}

// WingExtents 返回左右翅膀的高度
// 两只翅膀相位相差 π，独立扇动
func (b Bee) WingExtents() (left, right float64) {
	left = math.Abs(math.Sin(b.WingOffset))*b.Size*0.7 + b.Size*0.3
	right = math.Abs(math.Sin(b.WingOffset+math.Pi))*b.Size*0.7 + b.Size*0.3
	return left, right
}

// Simulator 蜜蜂模拟器
type Simulator struct {
	bees   []Bee
	cfg    config.BeeConfig
	width  float64
	height float64
	size   float64
	rng    Rand
}

// NewSimulator 创建蜜蜂模拟器
//
// 参数:
//   - cfg: 蜜蜂参数
//   - canvasW, canvasH: 画布尺寸（像素），蜜蜂只在上半部分活动
//   - size: 蜜蜂尺寸（通常等于格子尺寸）
//   - rng: 随机源
func NewSimulator(cfg config.BeeConfig, canvasW, canvasH int, size float64, rng Rand) *Simulator {
	return &Simulator{
		bees:   make([]Bee, 0, cfg.Count),
		cfg:    cfg,
		width:  float64(canvasW),
		height: float64(canvasH),
		size:   size,
		rng:    rng,
	}
}

// Spawn 创建 count 只蜜蜂，随机分布在画布上半部分
func (s *Simulator) Spawn(count int) {
	for i := 0; i < count; i++ {
		b := Bee{
			X:          s.rng.Float64() * s.width,
			Y:          s.rng.Float64() * (s.height / 2),
			Size:       s.size,
			WingOffset: s.rng.Float64() * math.Pi * 2,
		}
		b.SpeedX, b.SpeedY = s.randomVelocity()
		s.bees = append(s.bees, b)
	}
}

// randomVelocity 生成随机速度
// speedX ∈ [-MaxSpeedX, MaxSpeedX]，speedY ∈ [-MaxSpeedY, MaxSpeedY]
func (s *Simulator) randomVelocity() (float64, float64) {
	vx := (s.rng.Float64() - 0.5) * 2 * s.cfg.MaxSpeedX
	vy := (s.rng.Float64() - 0.5) * 2 * s.cfg.MaxSpeedY
	return vx, vy
}

// Tick 推进一个 tick
//
// 每只蜜蜂依次：位置 += 速度；按概率随机改变速度；翅膀相位递增；
// 将位置限制在画布内（纵向只允许上半部分）。
func (s *Simulator) Tick() {
	maxY := s.height / 2
	for i := range s.bees {
		b := &s.bees[i]

		b.X += b.SpeedX
		b.Y += b.SpeedY

		if s.rng.Float64() < s.cfg.RedirectChance {
			b.SpeedX, b.SpeedY = s.randomVelocity()
		}

		b.WingOffset += s.cfg.WingStep

		b.X = clamp(b.X, 0, s.width)
		b.Y = clamp(b.Y, 0, maxY)
	}
}

// Bees 返回蜜蜂状态副本（按创建顺序）
func (s *Simulator) Bees() []Bee {
	out := make([]Bee, len(s.bees))
	copy(out, s.bees)
	return out
}

// Len 返回蜜蜂数量
func (s *Simulator) Len() int {
	return len(s.bees)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
