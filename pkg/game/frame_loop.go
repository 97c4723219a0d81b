package game

import (
	"github.com/decker502/pixelgarden/pkg/sprites"
)

// FrameLoop 帧循环
//
// 每个宿主帧调用一次 Tick：先推进蜜蜂，再绘制完整场景。
// 循环本身不设上限，由宿主驱动。
type FrameLoop struct {
	state *State
	frame uint64
}

// NewFrameLoop 创建帧循环
func NewFrameLoop(state *State) *FrameLoop {
	return &FrameLoop{state: state}
}

// Step 推进一帧模拟，不绘制
func (f *FrameLoop) Step() {
	f.state.Bees.Tick()
	f.frame++
}

// Draw 将当前状态绘制到 surface
func (f *FrameLoop) Draw(surface sprites.Surface) {
	f.state.Renderer.DrawScene(surface, f.state.Scene())
}

// Tick 推进一帧并绘制
func (f *FrameLoop) Tick(surface sprites.Surface) {
	f.Step()
	f.Draw(surface)
}

// Frame 返回已推进的帧数
func (f *FrameLoop) Frame() uint64 {
	return f.frame
}

// State 返回帧循环驱动的应用状态
func (f *FrameLoop) State() *State {
	return f.state
}
