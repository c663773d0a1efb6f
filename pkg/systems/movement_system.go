package systems

import (
	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/ecs"
)

// MovementSystem 按速度积分所有运动实体的位置
type MovementSystem struct {
	em *ecs.EntityManager
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{em: em}
}

// Update position += velocity * deltaTime
func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime
	}
}
