package scenes

import (
	"image/color"

	"github.com/decker502/pixelgarden/pkg/components"
	"github.com/decker502/pixelgarden/pkg/config"
	"github.com/decker502/pixelgarden/pkg/systems"
	"github.com/decker502/pixelgarden/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 工具栏配色
var (
	toolbarBackground = color.NRGBA{R: 0x3a, G: 0x3a, B: 0x3a, A: 0xff}
	buttonFill        = color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	buttonHoverFill   = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	buttonActiveFill  = color.NRGBA{R: 0x8f, G: 0xd1, B: 0x6a, A: 0xff}
	buttonBorder      = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	buttonText        = color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
)

// initToolbar 创建工具栏按钮实体
// 顺序：四个工具、清空、昼夜切换
func (s *GardenScene) initToolbar() error {
	face, err := systems.LoadButtonFace(config.ButtonFontSize)
	if err != nil {
		return err
	}

	y := config.ToolbarButtonY(s.state.Config.Canvas.Height)
	index := 0
	add := func(label string, onClick func()) *components.ButtonComponent {
		button := &components.ButtonComponent{
			Width:      config.ButtonWidthAt(index),
			Height:     config.ButtonHeight,
			Text:       label,
			Font:       face,
			TextColor:  buttonText,
			Fill:       buttonFill,
			HoverFill:  buttonHoverFill,
			ActiveFill: buttonActiveFill,
			Border:     buttonBorder,
			Enabled:    true,
			Scale:      1,
			OnClick:    onClick,
		}
		id := s.entityManager.CreateEntity()
		s.entityManager.AddComponent(id, button)
		s.entityManager.AddComponent(id, &components.PositionComponent{X: config.ToolbarButtonX(index), Y: y})
		index++
		return button
	}

	for _, t := range types.AllItemTypes() {
		s.toolButtons[t] = add(s.strings.ToolLabel(t), func() { s.selectTool(t) })
	}
	add(s.strings.ClearLabel(), s.clearGarden)
	s.modeButton = add(s.strings.ModeLabel(s.state.IsNight()), s.toggleNight)
	return nil
}

// refreshToolbar 同步按钮高亮和昼夜文字
func (s *GardenScene) refreshToolbar() {
	selected := s.state.Controller.SelectedTool()
	for t, button := range s.toolButtons {
		button.Active = t == selected
	}
	s.modeButton.Text = s.strings.ModeLabel(s.state.IsNight())
}

// drawToolbar 绘制工具栏背景和按钮
func (s *GardenScene) drawToolbar(screen *ebiten.Image) {
	cfg := s.state.Config
	vector.DrawFilledRect(screen,
		0, float32(cfg.Canvas.Height),
		float32(cfg.Canvas.Width), config.ToolbarHeight,
		toolbarBackground, false)
	s.buttonRenderSystem.Draw(screen)
}
