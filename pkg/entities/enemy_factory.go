package entities

import (
	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/ecs"
)

// NewEnemy 根据已按世界缩放的属性创建敌人
//
// 参数:
//   - stats: 敌人属性（config.EnemiesConfig.StatsForWorld 的结果）
//   - x, y: 生成位置（通常在屏幕顶部之外）
//   - attackDelay: 首次攻击前的等待时间（秒）
func NewEnemy(em *ecs.EntityManager, stats config.EnemyStats, x, y, attackDelay float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.KindComponent{Kind: components.KindEnemy})
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: 0, VY: stats.Speed})
	ecs.AddComponent(em, id, &components.HealthComponent{
		CurrentHealth: stats.Health,
		MaxHealth:     stats.Health,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: stats.Radius})
	ecs.AddComponent(em, id, &components.EnemyComponent{
		Name:        stats.Name,
		Pattern:     stats.Pattern,
		Damage:      stats.Damage,
		Speed:       stats.Speed,
		Coins:       stats.Coins,
		XP:          stats.XP,
		AttackTimer: attackDelay,
		Color:       config.MustHexColor(stats.Color),
	})
	return id
}
