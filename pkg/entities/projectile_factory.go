package entities

import (
	"image/color"

	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/ecs"
	"github.com/tsujio/go-bulletml"
)

// ProjectileSpec 直线子弹参数
type ProjectileSpec struct {
	X, Y     float64
	VX, VY   float64 // 像素/秒
	Damage   int
	Color    color.RGBA
	Size     float64
	Lifetime float64 // 秒
}

// NewProjectile 创建直线飞行的子弹
func NewProjectile(em *ecs.EntityManager, owner components.ProjectileOwner, spec ProjectileSpec) ecs.EntityID {
	kind := components.KindPhoenixProjectile
	if owner == components.OwnerEnemy {
		kind = components.KindEnemyProjectile
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.KindComponent{Kind: kind})
	ecs.AddComponent(em, id, &components.PositionComponent{X: spec.X, Y: spec.Y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: spec.VX, VY: spec.VY})
	ecs.AddComponent(em, id, &components.ProjectileComponent{
		Owner:  owner,
		Damage: spec.Damage,
		Color:  spec.Color,
		Size:   spec.Size,
	})
	if spec.Lifetime > 0 {
		ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: spec.Lifetime})
	}
	return id
}

// NewBulletMLProjectile 创建由 BulletML 运行器驱动的首领弹幕
// 位置在每个运行器帧由 BossSystem 同步，越界由 BoundsSystem 清理
func NewBulletMLProjectile(em *ecs.EntityManager, br bulletml.BulletRunner, damage int, c color.RGBA, size float64) ecs.EntityID {
	x, y := br.Position()

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.KindComponent{Kind: components.KindEnemyProjectile})
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.ProjectileComponent{
		Owner:  components.OwnerEnemy,
		Damage: damage,
		Color:  c,
		Size:   size,
		Bullet: br,
	})
	return id
}
