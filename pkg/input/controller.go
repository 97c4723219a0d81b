// Package input 实现交互控制器：将指针事件转换为网格放置
//
// 控制器有两个状态：空闲和拖拽。按下时进入拖拽并立即放置一次；
// 拖拽中每次移动都在新位置尝试放置；抬起或离开画布时回到空闲。
// 当前工具（物品类型）是独立的正交状态，只能通过 SelectTool 修改。
package input

import (
	"fmt"

	"github.com/decker502/pixelgarden/pkg/garden"
	"github.com/decker502/pixelgarden/pkg/types"
)

// Placer 放置目标，由花园模型实现
type Placer interface {
	TryPlace(itemType types.ItemType, rawX, rawY int) (garden.Item, bool)
}

// PlacedFunc 放置成功后的回调
type PlacedFunc func(item garden.Item)

// Controller 交互控制器
type Controller struct {
	placer   Placer
	tool     types.ItemType
	dragging bool
	onPlaced PlacedFunc
}

// NewController 创建交互控制器，默认工具为树
func NewController(placer Placer) *Controller {
	return &Controller{
		placer: placer,
		tool:   types.ItemTree,
	}
}

// SetOnPlaced 设置放置成功回调（可为 nil）
func (c *Controller) SetOnPlaced(fn PlacedFunc) {
	c.onPlaced = fn
}

// SelectTool 选择当前工具
// 只接受四种可放置的物品类型
func (c *Controller) SelectTool(t types.ItemType) error {
	if !t.IsValid() {
		return fmt.Errorf("invalid tool: %s", t)
	}
	c.tool = t
	return nil
}

// SelectedTool 返回当前工具
func (c *Controller) SelectedTool() types.ItemType {
	return c.tool
}

// IsDragging 是否处于拖拽状态
func (c *Controller) IsDragging() bool {
	return c.dragging
}

// PointerDown 指针按下：进入拖拽并立即放置
func (c *Controller) PointerDown(x, y int) {
	c.dragging = true
	c.place(x, y)
}

// PointerMove 指针移动：拖拽中在新位置放置
func (c *Controller) PointerMove(x, y int) {
	if !c.dragging {
		return
	}
	c.place(x, y)
}

// PointerUp 指针抬起：结束拖拽
func (c *Controller) PointerUp() {
	c.dragging = false
}

// PointerLeave 指针离开画布：结束拖拽
func (c *Controller) PointerLeave() {
	c.dragging = false
}

// place 以当前工具尝试放置
func (c *Controller) place(x, y int) {
	item, ok := c.placer.TryPlace(c.tool, x, y)
	if ok && c.onPlaced != nil {
		c.onPlaced(item)
	}
}
