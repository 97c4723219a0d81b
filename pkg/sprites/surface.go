// Package sprites 实现花园物品和蜜蜂的像素精灵渲染
//
// 所有绘制都归结为一个原语：在渲染表面上填充纯色矩形。
// 渲染函数只写不读，不依赖具体的图形后端。
package sprites

import "image/color"

// Surface 渲染表面
// 唯一需要的绘制原语是填充轴对齐矩形
type Surface interface {
	FillRect(x, y, w, h float64, c color.Color)
}

// Rect 一次填充矩形调用
type Rect struct {
	X, Y, W, H float64
	Color      color.Color
}

// NRGBA 返回非预乘格式的颜色
func (r Rect) NRGBA() color.NRGBA {
	return color.NRGBAModel.Convert(r.Color).(color.NRGBA)
}

// Recorder 记录所有填充调用的渲染表面，供测试断言绘制顺序和颜色
type Recorder struct {
	Rects []Rect
}

// FillRect 记录一次填充
func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Rects = append(r.Rects, Rect{X: x, Y: y, W: w, H: h, Color: c})
}
