package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/pixelgarden/pkg/components"
	"github.com/decker502/pixelgarden/pkg/ecs"
	"github.com/decker502/pixelgarden/pkg/game"
	"github.com/decker502/pixelgarden/pkg/input"
	"github.com/decker502/pixelgarden/pkg/systems"
	"github.com/decker502/pixelgarden/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GardenScene 花园场景
//
// 画布在上，工具栏在下。画布输入交给交互控制器，
// 工具栏按钮是 ECS 实体，由按钮系统处理点击和渲染。
type GardenScene struct {
	state    *game.State
	loop     *game.FrameLoop
	strings  *game.GardenStrings
	settings *game.SettingsManager

	// ECS 工具栏
	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem
	toolButtons        map[types.ItemType]*components.ButtonComponent
	modeButton         *components.ButtonComponent

	// 指针输入
	pointer *PointerReader
	tracker *input.PointerTracker

	showDebug bool
}

// keyBinding 键盘快捷键
type keyBinding struct {
	key    ebiten.Key
	action func(s *GardenScene)
}

var keyBindings = []keyBinding{
	{ebiten.Key1, func(s *GardenScene) { s.selectTool(types.ItemTree) }},
	{ebiten.Key2, func(s *GardenScene) { s.selectTool(types.ItemFlower) }},
	{ebiten.Key3, func(s *GardenScene) { s.selectTool(types.ItemPond) }},
	{ebiten.Key4, func(s *GardenScene) { s.selectTool(types.ItemRock) }},
	{ebiten.KeyN, (*GardenScene).toggleNight},
	{ebiten.KeyC, (*GardenScene).clearGarden},
	{ebiten.KeyF3, (*GardenScene).toggleDebug},
	{ebiten.KeyM, (*GardenScene).toggleSound},
}

// NewGardenScene 创建花园场景
//
// 参数：
//   - state: 应用状态
//   - strs: 界面文本，可为 nil（显示文本键）
//   - settings: 显示设置，可为 nil（退出时不保存）
//
// 返回：
//   - *GardenScene: 场景实例
//   - error: 字体加载失败时返回错误
func NewGardenScene(state *game.State, strs *game.GardenStrings, settings *game.SettingsManager) (*GardenScene, error) {
	s := &GardenScene{
		state:         state,
		loop:          game.NewFrameLoop(state),
		strings:       strs,
		settings:      settings,
		entityManager: ecs.NewEntityManager(),
		toolButtons:   make(map[types.ItemType]*components.ButtonComponent),
		pointer:       NewPointerReader(),
		tracker: input.NewPointerTracker(input.Bounds{
			W: state.Config.Canvas.Width,
			H: state.Config.Canvas.Height,
		}),
	}
	s.buttonSystem = systems.NewButtonSystem(s.entityManager)
	s.buttonRenderSystem = systems.NewButtonRenderSystem(s.entityManager)

	if err := s.initToolbar(); err != nil {
		return nil, fmt.Errorf("failed to build toolbar: %w", err)
	}
	s.refreshToolbar()

	log.Printf("[GardenScene] Scene created with %d toolbar buttons", s.entityManager.Count())
	return s, nil
}

// Update 更新场景
func (s *GardenScene) Update(deltaTime float64) {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			b.action(s)
		}
	}

	p := s.pointer.Read()
	s.buttonSystem.HandlePointer(float64(p.X), float64(p.Y), p.Pressed, p.JustReleased)
	s.state.Controller.Dispatch(s.tracker.Track(input.PointerSample{
		X:            p.X,
		Y:            p.Y,
		Pressed:      p.Pressed,
		JustPressed:  p.JustPressed,
		JustReleased: p.JustReleased,
	}))

	s.buttonSystem.Update(deltaTime)
	s.loop.Step()
	s.refreshToolbar()
}

// Draw 绘制场景
func (s *GardenScene) Draw(screen *ebiten.Image) {
	cfg := s.state.Config
	s.loop.Draw(newCanvasSurface(screen, cfg.Canvas.Width, cfg.Canvas.Height))
	s.drawToolbar(screen)
	s.drawDebug(screen)
}

// OnExit 保存当前的全屏状态
func (s *GardenScene) OnExit() bool {
	if s.settings == nil {
		return true
	}
	s.settings.SetFullscreen(ebiten.IsFullscreen())
	if err := s.settings.Save(); err != nil {
		log.Printf("[GardenScene] Failed to save settings: %v", err)
		return false
	}
	return true
}

// selectTool 切换当前工具
func (s *GardenScene) selectTool(t types.ItemType) {
	if err := s.state.Controller.SelectTool(t); err != nil {
		log.Printf("[GardenScene] %v", err)
		return
	}
	s.refreshToolbar()
}

// toggleNight 切换昼夜模式
func (s *GardenScene) toggleNight() {
	s.state.ToggleNight()
	s.refreshToolbar()
}

// clearGarden 清空花园
func (s *GardenScene) clearGarden() {
	s.state.Clear()
}

// toggleDebug 切换调试信息
func (s *GardenScene) toggleDebug() {
	s.showDebug = !s.showDebug
}

// toggleSound 切换放置提示音，退出时随其他设置一起保存
func (s *GardenScene) toggleSound() {
	if s.settings == nil {
		return
	}
	enabled := !s.settings.GetSettings().SoundEnabled
	s.settings.SetSoundEnabled(enabled)
	log.Printf("[GardenScene] Sound enabled: %v", enabled)
}
