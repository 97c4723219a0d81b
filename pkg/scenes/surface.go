package scenes

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ebitenSurface 将填充矩形绘制到 ebiten 图像上
// 不开启抗锯齿，保持像素风格的硬边
type ebitenSurface struct {
	dst *ebiten.Image
}

// newCanvasSurface 返回裁剪到画布区域的渲染表面
// 超出画布的部分（如底部的高树）不会画到工具栏上
func newCanvasSurface(screen *ebiten.Image, width, height int) *ebitenSurface {
	canvas := screen.SubImage(image.Rect(0, 0, width, height)).(*ebiten.Image)
	return &ebitenSurface{dst: canvas}
}

// FillRect 填充矩形
func (s *ebitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}
