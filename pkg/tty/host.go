package tty

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/decker502/pixelgarden/pkg/game"
	"github.com/decker502/pixelgarden/pkg/garden"
	"github.com/decker502/pixelgarden/pkg/input"
	"github.com/decker502/pixelgarden/pkg/types"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// FrameInterval 帧间隔（约 60 FPS）
const FrameInterval = 16 * time.Millisecond

// Chirper 放置成功时的提示音
type Chirper interface {
	Play(itemType types.ItemType)
}

// Host 终端宿主
//
// 事件读取在独立 goroutine 中进行，所有状态修改都在 Run 的循环里完成。
type Host struct {
	screen  tcell.Screen
	state   *game.State
	loop    *game.FrameLoop
	strings *game.GardenStrings
	surface *CellSurface
	tracker *input.PointerTracker
	chirp   Chirper

	mouseDown bool
}

// NewHost 创建终端宿主
//
// 参数：
//   - screen: 已初始化的 tcell 屏幕
//   - state: 应用状态
//   - strs: 界面文本，可为 nil
//   - chirp: 提示音，可为 nil
func NewHost(screen tcell.Screen, state *game.State, strs *game.GardenStrings, chirp Chirper) *Host {
	cfg := state.Config
	h := &Host{
		screen:  screen,
		state:   state,
		loop:    game.NewFrameLoop(state),
		strings: strs,
		surface: NewCellSurface(cfg.Canvas.Width, cfg.Canvas.Height, DotSize(cfg.CellSize)),
		tracker: input.NewPointerTracker(input.Bounds{W: cfg.Canvas.Width, H: cfg.Canvas.Height}),
		chirp:   chirp,
	}
	state.Controller.SetOnPlaced(h.onPlaced)
	screen.EnableMouse()
	return h
}

// DotSize 每个终端半格对应的像素边长：半个网格格子
func DotSize(cellSize int) int {
	return max(cellSize/2, 1)
}

// Run 运行主循环，直到退出键或 ctx 取消
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := pollEvents(h.screen.PollEvent, done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.Frame()
		}
	}
}

// pollEvents 在独立 goroutine 中读取事件
// poll 返回 nil（屏幕已关闭）或 done 关闭时 goroutine 退出并关闭返回的通道。
func pollEvents(poll func() tcell.Event, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := poll()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// Frame 推进一帧并刷新屏幕
func (h *Host) Frame() {
	h.loop.Tick(h.surface)
	h.surface.Flush(h.screen)
	h.drawStatus()
	h.screen.Show()
}

// HandleEvent 处理一个终端事件，返回 false 表示退出
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

// handleKey 键盘快捷键
func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case '1':
		h.selectTool(types.ItemTree)
	case '2':
		h.selectTool(types.ItemFlower)
	case '3':
		h.selectTool(types.ItemPond)
	case '4':
		h.selectTool(types.ItemRock)
	case 'n', 'N':
		h.state.ToggleNight()
	case 'c', 'C':
		h.state.Clear()
	}
	return true
}

func (h *Host) selectTool(t types.ItemType) {
	if err := h.state.Controller.SelectTool(t); err != nil {
		log.Printf("[Tty] %v", err)
	}
}

// handleMouse 将字符格坐标转换为画布像素坐标（格子中心）并交给控制器
func (h *Host) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	dot := h.surface.Dot()
	sample := input.PointerSample{
		X:            int(float64(col)*dot + dot/2),
		Y:            int(float64(row)*dot*2 + dot),
		Pressed:      pressed,
		JustPressed:  pressed && !h.mouseDown,
		JustReleased: !pressed && h.mouseDown,
	}
	h.mouseDown = pressed
	h.state.Controller.Dispatch(h.tracker.Track(sample))
}

// onPlaced 放置成功回调
func (h *Host) onPlaced(item garden.Item) {
	if h.chirp != nil {
		h.chirp.Play(item.Type)
	}
}

// StatusLine 返回状态栏文本
func (h *Host) StatusLine() string {
	tool := h.state.Controller.SelectedTool()
	return fmt.Sprintf(" [1-4] %s | [n] %s | [c] %s | %s | [q] quit",
		h.strings.ToolLabel(tool),
		h.strings.ModeLabel(h.state.IsNight()),
		h.strings.ClearLabel(),
		h.strings.GetString(game.KeyStatusItems, h.state.Garden.Len()))
}

// drawStatus 在画布下方绘制状态栏
func (h *Host) drawStatus() {
	_, rows := h.surface.Size()
	width, _ := h.screen.Size()
	style := tcell.StyleDefault.Reverse(true)

	col := 0
	for _, r := range h.StatusLine() {
		if col >= width {
			break
		}
		h.screen.SetContent(col, rows, r, nil, style)
		col += max(runewidth.RuneWidth(r), 1)
	}
	for ; col < width; col++ {
		h.screen.SetContent(col, rows, ' ', nil, style)
	}
}
