package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/pixelgarden/pkg/bees"
	"github.com/decker502/pixelgarden/pkg/config"
	"github.com/decker502/pixelgarden/pkg/garden"
	"github.com/decker502/pixelgarden/pkg/input"
	"github.com/decker502/pixelgarden/pkg/palette"
	"github.com/decker502/pixelgarden/pkg/sprites"
)

// State 应用状态
//
// 持有花园模型、蜜蜂模拟器、交互控制器、渲染器和昼夜模式。
// 所有状态都在宿主的单一循环线程中访问，不需要加锁。
type State struct {
	Config     *config.GardenConfig
	Garden     *garden.Garden
	Bees       *bees.Simulator
	Controller *input.Controller
	Renderer   *sprites.Renderer

	night bool
}

// NewState 创建应用状态并生成初始蜜蜂
//
// 参数：
//   - cfg: 花园配置
//   - table: 昼夜调色板
//   - rng: 随机源，为 nil 时按 cfg.Seed 创建（Seed 为 0 时使用当前时间）
func NewState(cfg *config.GardenConfig, table *palette.Table, rng *rand.Rand) *State {
	if rng == nil {
		rng = NewRand(cfg.Seed)
	}
	if table == nil {
		table = palette.Default()
	}

	g := garden.New(cfg.CellSize, cfg.ClearanceDistance(), rng)
	sim := bees.NewSimulator(cfg.Bees, cfg.Canvas.Width, cfg.Canvas.Height, float64(cfg.CellSize), rng)
	sim.Spawn(cfg.Bees.Count)

	s := &State{
		Config:     cfg,
		Garden:     g,
		Bees:       sim,
		Controller: input.NewController(g),
		Renderer:   sprites.NewRenderer(table, cfg.CellSize, rng),
	}
	if err := s.Controller.SelectTool(cfg.Tool); err != nil {
		log.Printf("[State] Warning: %v, keeping %s", err, s.Controller.SelectedTool())
	}
	log.Printf("[State] Garden ready: canvas %dx%d, cell %d, %d bees",
		cfg.Canvas.Width, cfg.Canvas.Height, cfg.CellSize, sim.Len())
	return s
}

// NewRand 创建随机源，seed 为 0 时使用当前时间
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// IsNight 是否为夜晚模式
func (s *State) IsNight() bool {
	return s.night
}

// SetNight 设置昼夜模式
func (s *State) SetNight(night bool) {
	s.night = night
}

// ToggleNight 切换昼夜模式
// 只影响后续帧使用的调色板，不修改物品和蜜蜂
func (s *State) ToggleNight() bool {
	s.night = !s.night
	log.Printf("[State] Night mode: %v", s.night)
	return s.night
}

// Clear 清空花园中的所有物品
// 蜜蜂、工具选择和昼夜模式保持不变
func (s *State) Clear() {
	s.Garden.Clear()
	log.Printf("[State] Garden cleared")
}

// Scene 返回当前帧的绘制输入
func (s *State) Scene() sprites.Scene {
	return sprites.Scene{
		Width:  s.Config.Canvas.Width,
		Height: s.Config.Canvas.Height,
		Night:  s.night,
		Garden: s.Garden,
		Bees:   s.Bees,
	}
}
