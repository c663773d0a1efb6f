package systems

import (
	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/ecs"
)

// CollisionSystem 圆形距离碰撞检测
//
// 检测的碰撞对：
//   - 凤凰 vs 敌人：凤凰受到接触伤害，敌人被推开
//   - 凤凰子弹 vs 敌人 / 首领：造成伤害，子弹消失
//   - 敌方子弹 vs 凤凰：凤凰受到伤害，子弹消失
//
// 凤凰的生命值不在 ECS 中，受伤通过 PhoenixHitEvent 通知战斗编排器
type CollisionSystem struct {
	em       *ecs.EntityManager
	cfg      *config.GameplayConfig
	resolver *DamageResolver
	events   *EventQueue
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, cfg *config.GameplayConfig, resolver *DamageResolver, events *EventQueue) *CollisionSystem {
	return &CollisionSystem{
		em:       em,
		cfg:      cfg,
		resolver: resolver,
		events:   events,
	}
}

// Update 执行本帧全部碰撞检测
func (s *CollisionSystem) Update(deltaTime float64) {
	_, phoenixPos, hasPhoenix := findPhoenix(s.em)

	enemies := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.em)

	if hasPhoenix {
		s.checkPhoenixContact(phoenixPos, enemies)
	}
	s.checkProjectiles(phoenixPos, hasPhoenix, enemies)
}

// checkPhoenixContact 凤凰与敌人接触
func (s *CollisionSystem) checkPhoenixContact(phoenixPos *components.PositionComponent, enemies []ecs.EntityID) {
	for _, id := range enemies {
		if s.em.IsMarkedForDestruction(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		dx, dy := pos.X-phoenixPos.X, pos.Y-phoenixPos.Y
		if distance(0, 0, dx, dy) >= s.cfg.Collision.PhoenixContact {
			continue
		}

		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		s.events.Push(PhoenixHitEvent{Damage: enemy.Damage, Source: components.KindEnemy})

		pos.X += dx * s.cfg.Collision.PushBack
		pos.Y += dy * s.cfg.Collision.PushBack
	}
}

// checkProjectiles 子弹命中检测，每颗子弹最多命中一个目标
func (s *CollisionSystem) checkProjectiles(phoenixPos *components.PositionComponent, hasPhoenix bool, enemies []ecs.EntityID) {
	bossID, hasBoss := findBoss(s.em)

	for _, pid := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.em) {
		if s.em.IsMarkedForDestruction(pid) {
			continue
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, pid)
		ppos, _ := ecs.GetComponent[*components.PositionComponent](s.em, pid)

		switch proj.Owner {
		case components.OwnerPhoenix:
			if s.hitEnemies(pid, proj, ppos, enemies) {
				continue
			}
			if hasBoss {
				s.hitBoss(pid, proj, ppos, bossID)
			}

		case components.OwnerEnemy:
			if !hasPhoenix {
				continue
			}
			if distance(ppos.X, ppos.Y, phoenixPos.X, phoenixPos.Y) < s.cfg.Collision.ProjectileVsPhoenix {
				s.em.DestroyEntity(pid)
				s.resolver.Sparks(ppos.X, ppos.Y)
				s.events.Push(PhoenixHitEvent{Damage: proj.Damage, Source: components.KindEnemyProjectile})
			}
		}
	}
}

func (s *CollisionSystem) hitEnemies(pid ecs.EntityID, proj *components.ProjectileComponent,
	ppos *components.PositionComponent, enemies []ecs.EntityID) bool {
	for _, eid := range enemies {
		if s.em.IsMarkedForDestruction(eid) {
			continue
		}
		epos, _ := ecs.GetComponent[*components.PositionComponent](s.em, eid)
		if distance(ppos.X, ppos.Y, epos.X, epos.Y) < s.cfg.Collision.ProjectileVsEnemy {
			s.em.DestroyEntity(pid)
			s.resolver.HitEnemy(eid, proj.Damage, ppos.X, ppos.Y)
			return true
		}
	}
	return false
}

func (s *CollisionSystem) hitBoss(pid ecs.EntityID, proj *components.ProjectileComponent,
	ppos *components.PositionComponent, bossID ecs.EntityID) {
	if s.em.IsMarkedForDestruction(bossID) {
		return
	}
	bpos, _ := ecs.GetComponent[*components.PositionComponent](s.em, bossID)
	col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, bossID)
	if distance(ppos.X, ppos.Y, bpos.X, bpos.Y) < col.Radius {
		s.em.DestroyEntity(pid)
		s.resolver.HitBoss(bossID, proj.Damage, ppos.X, ppos.Y)
	}
}
