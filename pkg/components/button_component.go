package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
)

// ButtonComponent 工具栏按钮组件
// 纯色矩形按钮：背景、边框、居中文字、点击回调和按下时的缩放脉冲
type ButtonComponent struct {
	// Width, Height 按钮尺寸（像素）
	Width  float64
	Height float64

	// Text 按钮文字
	Text string
	// Font 文字字体，为 nil 时不绘制文字
	Font *text.GoTextFace
	// TextColor 文字颜色
	TextColor color.NRGBA

	// Fill 正常背景色
	Fill color.NRGBA
	// HoverFill 悬停背景色
	HoverFill color.NRGBA
	// ActiveFill 被选中（当前工具）时的背景色
	ActiveFill color.NRGBA
	// Border 边框颜色
	Border color.NRGBA

	// State 当前交互状态
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool
	// Active 是否处于选中状态（当前工具按钮高亮）
	Active bool

	// OnClick 在按钮内抬起时触发
	OnClick func()

	// Scale 当前缩放，1.0 为原始尺寸
	Scale float64
	// Pulse 按下后的缩放回弹动画，结束后置为 nil
	Pulse *gween.Tween
}

// Contains 判断点是否在按钮范围内（以 x, y 为按钮左上角）
func (b *ButtonComponent) Contains(x, y, px, py float64) bool {
	return px >= x && px <= x+b.Width && py >= y && py <= y+b.Height
}

// CurrentFill 按状态返回背景色
func (b *ButtonComponent) CurrentFill() color.NRGBA {
	switch {
	case b.Active:
		return b.ActiveFill
	case b.State == UIHovered || b.State == UIClicked:
		return b.HoverFill
	}
	return b.Fill
}
