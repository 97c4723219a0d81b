package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个可绘制的界面场景
// 同一时刻只有一个场景接收 Update 和 Draw
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 将场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// ExitHandler 可选接口，场景在程序关闭前收到通知
//
// 用于保存显示设置等收尾工作。花园内容本身不做持久化。
type ExitHandler interface {
	// OnExit 在窗口关闭前调用
	// 返回 false 表示收尾失败（程序仍会正常退出）
	OnExit() bool
}
