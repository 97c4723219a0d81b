package config

// 布局配置常量
// 本文件定义了花园场景中的布局参数，包括画布、工具栏和窗口尺寸

// Canvas Configuration (花园画布配置)
// 画布坐标以画布左上角为原点，所有物品坐标都是格子尺寸的整数倍
const (
	// DefaultCanvasWidth 默认画布宽度（像素）
	DefaultCanvasWidth = 800

	// DefaultCanvasHeight 默认画布高度（像素）
	DefaultCanvasHeight = 480

	// DefaultCellSize 默认网格格子尺寸（像素）
	DefaultCellSize = 16

	// DefaultClearanceCells 同类物品中心点最小间距（单位：格子）
	// 花不受此限制
	DefaultClearanceCells = 3
)

// Toolbar Configuration (工具栏配置)
// 工具栏位于画布下方，包含 4 个工具按钮 + 清空按钮 + 昼夜切换按钮
const (
	// ToolbarHeight 工具栏高度（像素）
	ToolbarHeight = 56

	// ToolbarPadding 工具栏内边距（像素）
	ToolbarPadding = 8.0

	// ToolButtonWidth 工具按钮宽度（像素）
	ToolButtonWidth = 96.0

	// WideButtonWidth 清空/昼夜按钮宽度（像素）
	WideButtonWidth = 150.0

	// ButtonHeight 按钮高度（像素）
	ButtonHeight = 40.0

	// ButtonGap 按钮间距（像素）
	ButtonGap = 8.0

	// ButtonFontSize 按钮文字字号
	ButtonFontSize = 16.0

	// ButtonPulseScale 按钮按下时脉冲动画的最大缩放
	ButtonPulseScale = 1.12

	// ButtonPulseDuration 脉冲动画时长（秒）
	ButtonPulseDuration = 0.18
)

// GameWindowWidth 游戏窗口逻辑宽度
const GameWindowWidth = DefaultCanvasWidth

// GameWindowHeight 游戏窗口逻辑高度（画布 + 工具栏）
const GameWindowHeight = DefaultCanvasHeight + ToolbarHeight

// ToolbarButtonX 返回第 index 个按钮的左上角 X 坐标
// 前 4 个为工具按钮，之后为宽按钮
func ToolbarButtonX(index int) float64 {
	x := ToolbarPadding
	for i := 0; i < index; i++ {
		x += ButtonWidthAt(i) + ButtonGap
	}
	return x
}

// ButtonWidthAt 返回第 index 个按钮的宽度
func ButtonWidthAt(index int) float64 {
	if index < 4 {
		return ToolButtonWidth
	}
	return WideButtonWidth
}

// ToolbarButtonY 返回工具栏按钮的 Y 坐标（相对于窗口）
func ToolbarButtonY(canvasHeight int) float64 {
	return float64(canvasHeight) + (ToolbarHeight-ButtonHeight)/2
}

// ToolbarButtonCount 工具栏按钮数量：四个工具、清空、昼夜切换
const ToolbarButtonCount = 6

// ToolbarWidth 工具栏按钮区所需的最小宽度
func ToolbarWidth() int {
	return int(ToolbarButtonX(ToolbarButtonCount) - ButtonGap + ToolbarPadding)
}

// WindowSize 返回窗口逻辑尺寸
// 宽度至少容纳整条工具栏，高度为画布加工具栏
func WindowSize(cfg *GardenConfig) (int, int) {
	w := max(cfg.Canvas.Width, ToolbarWidth())
	return w, cfg.Canvas.Height + ToolbarHeight
}
