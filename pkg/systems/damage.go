package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/ecs"
	"github.com/gonewx/phoenix/pkg/entities"
)

// DamageResolver 结算凤凰对敌人和首领造成的伤害
// 子弹命中（CollisionSystem）和光束（AttackSystem）共用同一套死亡与奖励逻辑
type DamageResolver struct {
	em     *ecs.EntityManager
	cfg    *config.GameplayConfig
	rng    *rand.Rand
	events *EventQueue
}

// NewDamageResolver 创建伤害结算器
func NewDamageResolver(em *ecs.EntityManager, cfg *config.GameplayConfig, rng *rand.Rand, events *EventQueue) *DamageResolver {
	return &DamageResolver{em: em, cfg: cfg, rng: rng, events: events}
}

// Sparks 在 (x,y) 产生命中火花（敌方子弹击中凤凰时使用）
func (d *DamageResolver) Sparks(x, y float64) {
	entities.NewParticleBurst(d.em, d.rng, d.cfg.Particles.Hit, x, y)
}

// HitEnemy 对普通敌人造成伤害，(hitX,hitY) 为命中粒子位置
// 返回敌人是否因此死亡
func (d *DamageResolver) HitEnemy(id ecs.EntityID, damage int, hitX, hitY float64) bool {
	if d.em.IsMarkedForDestruction(id) {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](d.em, id)
	if !ok {
		return false
	}
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](d.em, id)
	if !ok {
		return false
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](d.em, id)

	entities.NewParticleBurst(d.em, d.rng, d.cfg.Particles.Hit, hitX, hitY)

	if !health.TakeDamage(damage) {
		d.events.Push(EnemyHitEvent{Entity: id, X: hitX, Y: hitY, Damage: damage})
		return false
	}

	d.em.DestroyEntity(id)
	entities.NewParticleBurst(d.em, d.rng, d.cfg.Particles.Death, pos.X, pos.Y)
	d.events.Push(EnemyKilledEvent{
		Entity: id,
		Name:   enemy.Name,
		X:      pos.X,
		Y:      pos.Y,
		XP:     enemy.XP,
		Coins:  enemy.Coins,
	})
	return true
}

// HitBoss 对首领造成伤害
// 首领死亡时清除场上全部敌方子弹并产生 BossDefeatedEvent
func (d *DamageResolver) HitBoss(id ecs.EntityID, damage int, hitX, hitY float64) bool {
	if d.em.IsMarkedForDestruction(id) {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](d.em, id)
	if !ok {
		return false
	}
	boss, ok := ecs.GetComponent[*components.BossComponent](d.em, id)
	if !ok {
		return false
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](d.em, id)

	boss.HitFlash = d.cfg.Boss.HitFlash
	entities.NewParticleBurst(d.em, d.rng, d.cfg.Particles.Hit, hitX, hitY)

	if !health.TakeDamage(damage) {
		d.events.Push(EnemyHitEvent{Entity: id, X: hitX, Y: hitY, Damage: damage})
		return false
	}

	d.em.DestroyEntity(id)
	for _, pid := range ecs.GetEntitiesWith1[*components.ProjectileComponent](d.em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](d.em, pid)
		if proj.Owner == components.OwnerEnemy {
			d.em.DestroyEntity(pid)
		}
	}
	entities.NewParticleBurst(d.em, d.rng, d.cfg.Particles.Death, pos.X, pos.Y)

	log.Printf("[DamageResolver] 首领 %s 被击败", boss.Name)
	d.events.Push(BossDefeatedEvent{
		Name:    boss.Name,
		WorldID: boss.WorldID,
		XP:      health.MaxHealth * d.cfg.Rewards.BossXPPerHealth,
		Coins:   health.MaxHealth * d.cfg.Rewards.BossCoinsPerHealth,
	})
	return true
}
