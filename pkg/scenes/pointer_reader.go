// Package scenes 实现 Ebitengine 宿主下的花园场景
package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerState 一帧的指针状态（鼠标或触摸，窗口坐标）
type PointerState struct {
	X, Y         int
	Pressed      bool
	JustPressed  bool
	JustReleased bool
	// IsTouch 本帧输入来自触摸
	IsTouch bool
}

// rawPointer 从设备读到的原始数据
type rawPointer struct {
	touching     bool
	touchX       int
	touchY       int
	cursorX      int
	cursorY      int
	mousePressed bool
}

// PointerReader 将鼠标和触摸统一为单一指针
//
// 触摸优先于鼠标。按下/抬起由相邻两帧的按压状态推导，
// 触摸抬起时设备已不再报告位置，使用最后一次触摸位置。
type PointerReader struct {
	wasPressed bool
	lastTouchX int
	lastTouchY int
	lastTouch  bool
}

// NewPointerReader 创建指针读取器
func NewPointerReader() *PointerReader {
	return &PointerReader{}
}

// Read 读取本帧的指针状态，每帧调用一次
func (r *PointerReader) Read() PointerState {
	raw := rawPointer{}
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		raw.touching = true
		raw.touchX, raw.touchY = ebiten.TouchPosition(touchIDs[0])
	}
	raw.cursorX, raw.cursorY = ebiten.CursorPosition()
	raw.mousePressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return r.next(raw)
}

// next 根据原始数据推进状态
func (r *PointerReader) next(raw rawPointer) PointerState {
	var s PointerState

	switch {
	case raw.touching:
		s.X, s.Y = raw.touchX, raw.touchY
		s.Pressed = true
		s.IsTouch = true
		r.lastTouchX, r.lastTouchY = raw.touchX, raw.touchY
	case r.lastTouch:
		// 触摸刚结束
		s.X, s.Y = r.lastTouchX, r.lastTouchY
		s.IsTouch = true
	default:
		s.X, s.Y = raw.cursorX, raw.cursorY
		s.Pressed = raw.mousePressed
	}

	s.JustPressed = s.Pressed && !r.wasPressed
	s.JustReleased = !s.Pressed && r.wasPressed

	r.wasPressed = s.Pressed
	r.lastTouch = raw.touching
	return s
}
