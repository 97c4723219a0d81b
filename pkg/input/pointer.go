package input

// PointerSample 一帧的指针采样（窗口坐标）
type PointerSample struct {
	X, Y int
	// Pressed 本帧按钮（或触摸）是否处于按下状态
	Pressed bool
	// JustPressed 本帧刚按下
	JustPressed bool
	// JustReleased 本帧刚抬起
	JustReleased bool
}

// EventKind 指针事件类型
type EventKind int

const (
	// EventDown 按下
	EventDown EventKind = iota
	// EventMove 移动
	EventMove
	// EventUp 抬起
	EventUp
	// EventLeave 离开画布
	EventLeave
)

// Event 画布局部坐标的指针事件
type Event struct {
	Kind EventKind
	X, Y int
}

// Bounds 画布在窗口中的区域
type Bounds struct {
	X, Y, W, H int
}

// Contains 判断窗口坐标是否落在画布内
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// PointerTracker 将逐帧的指针采样转换为画布事件
//
// 与浏览器的 mousedown/mousemove/mouseup/mouseleave 语义一致：
//   - 只有在画布内按下才产生 Down
//   - 位置变化且在画布内时产生 Move
//   - 指针从画布内移出时产生 Leave
type PointerTracker struct {
	bounds  Bounds
	inside  bool
	lastX   int
	lastY   int
	hasLast bool
	events  []Event
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker(bounds Bounds) *PointerTracker {
	return &PointerTracker{bounds: bounds}
}

// Track 处理一帧采样，返回本帧产生的事件
// 返回的切片在下一次调用前有效
func (t *PointerTracker) Track(s PointerSample) []Event {
	t.events = t.events[:0]
	inside := t.bounds.Contains(s.X, s.Y)
	lx, ly := s.X-t.bounds.X, s.Y-t.bounds.Y
	moved := !t.hasLast || s.X != t.lastX || s.Y != t.lastY

	if t.inside && !inside {
		t.events = append(t.events, Event{Kind: EventLeave, X: lx, Y: ly})
	}

	if inside {
		if s.JustPressed {
			t.events = append(t.events, Event{Kind: EventDown, X: lx, Y: ly})
		} else if moved {
			t.events = append(t.events, Event{Kind: EventMove, X: lx, Y: ly})
		}
	}

	if s.JustReleased && inside {
		t.events = append(t.events, Event{Kind: EventUp, X: lx, Y: ly})
	}

	t.inside = inside
	t.lastX, t.lastY = s.X, s.Y
	t.hasLast = true
	return t.events
}

// Dispatch 将事件分发给控制器
func (c *Controller) Dispatch(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventDown:
			c.PointerDown(ev.X, ev.Y)
		case EventMove:
			c.PointerMove(ev.X, ev.Y)
		case EventUp:
			c.PointerUp()
		case EventLeave:
			c.PointerLeave()
		}
	}
}
