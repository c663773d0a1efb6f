package entities

import (
	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/ecs"
)

// NewBoss 创建世界首领
// BulletML 运行器由 BossSystem 在首帧按阶段创建
func NewBoss(em *ecs.EntityManager, world *config.WorldDefinition, x, y float64) ecs.EntityID {
	boss := world.Boss

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.KindComponent{Kind: components.KindBoss})
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.HealthComponent{
		CurrentHealth: boss.Health,
		MaxHealth:     boss.Health,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: boss.Radius})
	ecs.AddComponent(em, id, &components.BossComponent{
		Name:    boss.Name,
		WorldID: world.ID,
		Damage:  boss.Damage,
		Color:   config.MustHexColor(world.Color),
		Phase:   1,
		CenterX: x,
	})
	return id
}
