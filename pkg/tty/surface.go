// Package tty 在终端中运行花园：tcell 画面、鼠标放置和键盘快捷键
package tty

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// upperHalf 上半块字符：前景色为上半格，背景色为下半格
const upperHalf = '▀'

// CellSurface 将像素矩形光栅化到终端字符格
//
// 每个字符格上下各一个“点”，每个点覆盖 dot×dot 像素。
// 矩形覆盖点中心时才绘制该点；半透明颜色按 alpha 混合到已有颜色上。
type CellSurface struct {
	cols, rows int // 字符格数量
	dot        float64
	dots       []colorful.Color // 行优先，高度为 rows*2
}

// NewCellSurface 创建与画布对应的字符格表面
//
// 参数：
//   - canvasW, canvasH: 画布像素尺寸
//   - dot: 每个点的像素边长
func NewCellSurface(canvasW, canvasH, dot int) *CellSurface {
	cols := (canvasW + dot - 1) / dot
	dotRows := (canvasH + dot - 1) / dot
	rows := (dotRows + 1) / 2
	return &CellSurface{
		cols: cols,
		rows: rows,
		dot:  float64(dot),
		dots: make([]colorful.Color, cols*rows*2),
	}
}

// Size 返回字符格数量
func (s *CellSurface) Size() (cols, rows int) {
	return s.cols, s.rows
}

// Dot 返回点的像素边长
func (s *CellSurface) Dot() float64 {
	return s.dot
}

// FillRect 填充矩形
func (s *CellSurface) FillRect(x, y, w, h float64, c color.Color) {
	src, ok := colorful.MakeColor(c)
	if !ok {
		return // 完全透明
	}
	_, _, _, a := c.RGBA()
	alpha := float64(a) / 0xffff

	// 点 i 的中心为 (i+0.5)*dot，落在 [x, x+w) 内
	i0 := max(int(math.Ceil(x/s.dot-0.5)), 0)
	i1 := min(int(math.Ceil((x+w)/s.dot-0.5)), s.cols)
	j0 := max(int(math.Ceil(y/s.dot-0.5)), 0)
	j1 := min(int(math.Ceil((y+h)/s.dot-0.5)), s.rows*2)

	for j := j0; j < j1; j++ {
		for i := i0; i < i1; i++ {
			idx := j*s.cols + i
			if alpha >= 1 {
				s.dots[idx] = src
			} else {
				s.dots[idx] = s.dots[idx].BlendRgb(src, alpha).Clamped()
			}
		}
	}
}

// dotAt 返回点 (i, j) 的颜色，越界返回黑色
func (s *CellSurface) dotAt(i, j int) colorful.Color {
	if i < 0 || j < 0 || i >= s.cols || j >= s.rows*2 {
		return colorful.Color{}
	}
	return s.dots[j*s.cols+i]
}

// Flush 将所有字符格写入屏幕（不调用 Show）
func (s *CellSurface) Flush(screen tcell.Screen) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top := s.dotAt(col, row*2)
			bottom := s.dotAt(col, row*2+1)
			style := tcell.StyleDefault.
				Foreground(toTcell(top)).
				Background(toTcell(bottom))
			screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
}

// toTcell 转换为终端真彩色
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
