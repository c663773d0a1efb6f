package entities

import (
	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/ecs"
)

// NewPhoenix 创建凤凰实体
// 凤凰没有速度组件：位置由指针目标直接驱动
func NewPhoenix(em *ecs.EntityManager, x, y, radius float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.KindComponent{Kind: components.KindPhoenix})
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: radius})
	ecs.AddComponent(em, id, &components.PhoenixComponent{TargetX: x, TargetY: y})
	return id
}
