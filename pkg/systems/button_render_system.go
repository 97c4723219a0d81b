package systems

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/decker502/pixelgarden/pkg/components"
	"github.com/decker502/pixelgarden/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// ButtonRenderSystem 按钮渲染系统
// 纯色背景 + 1 像素边框 + 居中带阴影的文字，按 Scale 围绕中心缩放
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// LoadButtonFace 加载按钮字体（Go Regular）
func LoadButtonFace(size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load button font: %w", err)
	}
	return &text.GoTextFace{Source: source, Size: size}, nil
}

// Draw 渲染所有按钮，按实体创建顺序
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	x, y, w, h := ScaledRect(pos.X, pos.Y, button.Width, button.Height, button.Scale)

	fill := button.CurrentFill()
	if button.State == components.UIDisabled {
		fill.A /= 2
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fill, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, button.Border, false)

	s.drawButtonText(screen, button, x+w/2, y+h/2)
}

// ScaledRect 围绕中心缩放矩形
// scale 为 0 时视为 1（未初始化的组件）
func ScaledRect(x, y, w, h, scale float64) (float64, float64, float64, float64) {
	if scale == 0 {
		scale = 1
	}
	sw, sh := w*scale, h*scale
	return x - (sw-w)/2, y - (sh-h)/2, sw, sh
}

// drawButtonText 渲染按钮文字（居中，带阴影）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent, centerX, centerY float64) {
	if button.Text == "" || button.Font == nil {
		return
	}

	const shadowOffset = 1.0

	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(centerX+shadowOffset, centerY+shadowOffset)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 140})
	text.Draw(screen, button.Text, button.Font, shadowOp)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(centerX, centerY)
	op.ColorScale.ScaleWithColor(button.TextColor)
	text.Draw(screen, button.Text, button.Font, op)
}
