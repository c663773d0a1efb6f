package systems

import (
	"image/color"
	"testing"

	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/ecs"
	"github.com/gonewx/phoenix/pkg/entities"
)

func addProjectile(w *testWorld, owner components.ProjectileOwner, x, y float64, damage int) ecs.EntityID {
	return entities.NewProjectile(w.em, owner, entities.ProjectileSpec{
		X: x, Y: y, Damage: damage, Color: color.RGBA{A: 255}, Size: 5, Lifetime: 3,
	})
}

func TestCollisionPhoenixContact(t *testing.T) {
	w := newTestWorldFixture()
	w.addPhoenix(240, 600)
	system := NewCollisionSystem(w.em, w.cfg, w.resolver, w.events)

	near := w.addEnemy(config.PatternDirect, 30, 250, 600) // 距离 10
	far := w.addEnemy(config.PatternDirect, 30, 240, 530)  // 距离 70

	system.Update(1.0 / 60)

	hits := eventsOf[PhoenixHitEvent](w.events.Drain())
	if len(hits) != 1 {
		t.Fatalf("expected 1 PhoenixHit, got %d", len(hits))
	}
	if hits[0].Damage != 15 || hits[0].Source != components.KindEnemy {
		t.Errorf("unexpected hit %+v", hits[0])
	}

	// 敌人被推开 2 倍偏移量：dx = 10 → x = 250 + 20
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, near)
	if pos.X != 270 || pos.Y != 600 {
		t.Errorf("pushed enemy at (%.1f, %.1f), want (270, 600)", pos.X, pos.Y)
	}
	pos, _ = ecs.GetComponent[*components.PositionComponent](w.em, far)
	if pos.X != 240 || pos.Y != 530 {
		t.Errorf("far enemy should not move, got (%.1f, %.1f)", pos.X, pos.Y)
	}
}

func TestCollisionProjectileKillsEnemy(t *testing.T) {
	w := newTestWorldFixture()
	w.addPhoenix(240, 750)
	system := NewCollisionSystem(w.em, w.cfg, w.resolver, w.events)

	enemy := w.addEnemy(config.PatternDirect, 30, 100, 200)
	first := addProjectile(w, components.OwnerPhoenix, 110, 200, 20)
	second := addProjectile(w, components.OwnerPhoenix, 100, 215, 20)
	miss := addProjectile(w, components.OwnerPhoenix, 100, 260, 20)

	system.Update(1.0 / 60)

	if !w.em.IsMarkedForDestruction(first) || !w.em.IsMarkedForDestruction(second) {
		t.Fatal("both hitting projectiles should be consumed")
	}
	if w.em.IsMarkedForDestruction(miss) {
		t.Error("missing projectile should survive")
	}
	if !w.em.IsMarkedForDestruction(enemy) {
		t.Fatal("enemy with 30 health should die from 2x20 damage")
	}

	events := w.events.Drain()
	if hits := eventsOf[EnemyHitEvent](events); len(hits) != 1 {
		t.Errorf("expected 1 EnemyHit, got %d", len(hits))
	}
	killed := eventsOf[EnemyKilledEvent](events)
	if len(killed) != 1 || killed[0].XP != 6 || killed[0].Coins != 4 {
		t.Fatalf("unexpected EnemyKilled events %+v", killed)
	}

	// 2 次命中各 5 个粒子 + 死亡 10 个粒子
	if n := countKind(w.em, components.KindParticle); n != 20 {
		t.Errorf("expected 20 particles, got %d", n)
	}
}

func TestCollisionEnemyProjectileHitsPhoenix(t *testing.T) {
	w := newTestWorldFixture()
	w.addPhoenix(240, 600)
	system := NewCollisionSystem(w.em, w.cfg, w.resolver, w.events)

	hit := addProjectile(w, components.OwnerEnemy, 240, 620, 25)
	friendly := addProjectile(w, components.OwnerPhoenix, 240, 600, 25)

	system.Update(1.0 / 60)

	if !w.em.IsMarkedForDestruction(hit) {
		t.Error("enemy projectile within 25px should be consumed")
	}
	if w.em.IsMarkedForDestruction(friendly) {
		t.Error("phoenix projectile must not hit the phoenix")
	}
	hits := eventsOf[PhoenixHitEvent](w.events.Drain())
	if len(hits) != 1 || hits[0].Damage != 25 || hits[0].Source != components.KindEnemyProjectile {
		t.Errorf("unexpected PhoenixHit events %+v", hits)
	}
}

func TestCollisionProjectileDefeatsBoss(t *testing.T) {
	w := newTestWorldFixture()
	w.addPhoenix(240, 750)
	system := NewCollisionSystem(w.em, w.cfg, w.resolver, w.events)

	boss := w.addBoss(240, 170)
	health, _ := ecs.GetComponent[*components.HealthComponent](w.em, boss)
	health.CurrentHealth = 10

	// 首领半径 60
	bullet := addProjectile(w, components.OwnerEnemy, 100, 400, 30)
	addProjectile(w, components.OwnerPhoenix, 240, 220, 50)

	system.Update(1.0 / 60)

	if !w.em.IsMarkedForDestruction(boss) {
		t.Fatal("boss should be defeated")
	}
	if !w.em.IsMarkedForDestruction(bullet) {
		t.Error("enemy projectiles should be cleared when the boss dies")
	}
	defeated := eventsOf[BossDefeatedEvent](w.events.Drain())
	if len(defeated) != 1 {
		t.Fatalf("expected 1 BossDefeated, got %d", len(defeated))
	}
	if defeated[0].XP != 200 || defeated[0].Coins != 400 || defeated[0].WorldID != 1 {
		t.Errorf("unexpected BossDefeated %+v", defeated[0])
	}
}
