package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 != 1 || id2 != 2 {
		t.Errorf("entity IDs = %d, %d, want 1, 2", id1, id2)
	}
	if em.Count() != 2 {
		t.Errorf("Count() = %d, want 2", em.Count())
	}
}

func TestGenericComponentAccess(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("position component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("position = (%v, %v), want (100, 200)", pos.X, pos.Y)
	}

	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("velocity component should not be found")
	}
	// 指针类型和值类型是不同的组件类型
	if _, ok := GetComponent[testPositionComponent](em, id); ok {
		t.Error("value type should not match pointer component")
	}

	// 同类型组件会被替换
	em.AddComponent(id, &testPositionComponent{X: 1, Y: 2})
	pos, _ = GetComponent[*testPositionComponent](em, id)
	if pos.X != 1 || pos.Y != 2 {
		t.Errorf("position after replace = (%v, %v), want (1, 2)", pos.X, pos.Y)
	}
}

func TestGetComponentUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	if _, ok := GetComponent[*testPositionComponent](em, 99); ok {
		t.Error("unknown entity should have no components")
	}
	// 未知实体添加组件不应 panic
	em.AddComponent(99, &testPositionComponent{})
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	tests := []struct {
		name string
		pos  bool
		vel  bool
	}{
		{"只有位置", true, false},
		{"位置和速度", true, true},
		{"只有速度", false, true},
		{"位置和速度2", true, true},
	}
	ids := make([]EntityID, len(tests))
	for i, tt := range tests {
		ids[i] = em.CreateEntity()
		if tt.pos {
			em.AddComponent(ids[i], &testPositionComponent{})
		}
		if tt.vel {
			em.AddComponent(ids[i], &testVelocityComponent{})
		}
	}

	both := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if !reflect.DeepEqual(both, []EntityID{ids[1], ids[3]}) {
		t.Errorf("GetEntitiesWith2 = %v, want %v", both, []EntityID{ids[1], ids[3]})
	}

	withPos := GetEntitiesWith1[*testPositionComponent](em)
	if !reflect.DeepEqual(withPos, []EntityID{ids[0], ids[1], ids[3]}) {
		t.Errorf("GetEntitiesWith1 = %v, want ascending IDs with position", withPos)
	}

	if all := em.GetEntitiesWith(); len(all) != len(tests) {
		t.Errorf("GetEntitiesWith() = %d entities, want %d", len(all), len(tests))
	}
}
