// Package systems 包含工具栏实体的交互和渲染系统
package systems

import (
	"github.com/decker502/pixelgarden/pkg/components"
	"github.com/decker502/pixelgarden/pkg/config"
	"github.com/decker502/pixelgarden/pkg/ecs"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ButtonSystem 按钮交互系统
//
// 职责：
//   - 根据指针位置更新按钮状态（悬停/按下/正常）
//   - 指针在按钮内抬起时触发 OnClick 并启动缩放脉冲
//   - 推进脉冲动画
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// HandlePointer 处理一帧的指针状态
//
// 参数：
//   - x, y: 指针屏幕坐标
//   - pressed: 按键是否处于按下状态
//   - released: 本帧是否刚抬起
//
// 返回：
//   - bool: 指针是否落在某个按钮上（调用方据此屏蔽画布输入）
func (s *ButtonSystem) HandlePointer(x, y float64, pressed, released bool) bool {
	over := false
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !button.Contains(pos.X, pos.Y, x, y) {
			button.State = components.UINormal
			continue
		}

		over = true
		switch {
		case released:
			// 抬起瞬间触发回调
			if button.OnClick != nil {
				button.OnClick()
			}
			StartPulse(button)
			button.State = components.UIHovered
		case pressed:
			button.State = components.UIClicked
		default:
			button.State = components.UIHovered
		}
	}
	return over
}

// Update 推进所有按钮的缩放脉冲
func (s *ButtonSystem) Update(deltaTime float64) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		if button.Pulse == nil {
			continue
		}
		scale, finished := button.Pulse.Update(float32(deltaTime))
		button.Scale = float64(scale)
		if finished {
			button.Pulse = nil
			button.Scale = 1.0
		}
	}
}

// StartPulse 从放大状态回弹到原始尺寸
func StartPulse(button *components.ButtonComponent) {
	button.Scale = config.ButtonPulseScale
	button.Pulse = gween.New(float32(config.ButtonPulseScale), 1.0, float32(config.ButtonPulseDuration), ease.OutQuad)
}
