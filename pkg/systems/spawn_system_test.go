package systems

import (
	"testing"

	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/ecs"
)

func newTestSpawnSystem(w *testWorld) *SpawnSystem {
	return NewSpawnSystem(w.em, w.cfg, newTestEnemiesConfig(), newTestWorld(), w.rng, w.clock, w.events)
}

func TestSpawnSystemEnvironmentTimer(t *testing.T) {
	w := newTestWorldFixture()
	system := newTestSpawnSystem(w)

	system.Update(1.9)
	if n := countKind(w.em, components.KindEnvironment); n != 0 {
		t.Fatalf("expected no environment object before 2s, got %d", n)
	}
	system.Update(0.1)
	if n := countKind(w.em, components.KindEnvironment); n != 1 {
		t.Fatalf("expected 1 environment object at 2s, got %d", n)
	}
}

func TestSpawnSystemEnemyIntervalAndCap(t *testing.T) {
	w := newTestWorldFixture()
	system := newTestSpawnSystem(w)

	// 世界 1：间隔 2.35 秒，上限 4
	system.Update(2.3)
	if n := countKind(w.em, components.KindEnemy); n != 0 {
		t.Fatalf("expected no enemy before interval, got %d", n)
	}
	system.Update(0.1)
	if n := countKind(w.em, components.KindEnemy); n != 1 {
		t.Fatalf("expected 1 enemy after interval, got %d", n)
	}

	for i := 0; i < 10; i++ {
		system.Update(2.4)
	}
	if n := countKind(w.em, components.KindEnemy); n != 4 {
		t.Errorf("enemy count should be capped at 4, got %d", n)
	}

	// 新生成的敌人在屏幕顶部之外、水平方向在边距内
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](w.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
		if pos.X < enemySpawnMargin || pos.X > w.cfg.Screen.Width-enemySpawnMargin {
			t.Errorf("enemy spawned at x=%.1f outside margins", pos.X)
		}
		if pos.Y != enemySpawnY {
			t.Errorf("enemy spawned at y=%.1f, want %.1f", pos.Y, enemySpawnY)
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](w.em, id)
		if enemy.Pattern != config.PatternDirect || enemy.XP != 6 {
			t.Errorf("unexpected enemy %+v", enemy)
		}
	}
}

func TestSpawnSystemSpawnsAsSoonAsSlotFrees(t *testing.T) {
	w := newTestWorldFixture()
	system := newTestSpawnSystem(w)

	for i := 0; i < 4; i++ {
		system.Update(2.4)
	}
	if n := countKind(w.em, components.KindEnemy); n != 4 {
		t.Fatalf("expected field filled to cap 4, got %d", n)
	}

	// 满员期间计时器超过间隔
	system.Update(3.0)
	if n := countKind(w.em, components.KindEnemy); n != 4 {
		t.Fatalf("no spawn expected while capped, got %d", n)
	}

	ids := ecs.GetEntitiesWith1[*components.EnemyComponent](w.em)
	w.em.DestroyEntity(ids[0])
	w.em.RemoveMarkedEntities()

	system.Update(1.0 / 60)
	if n := countKind(w.em, components.KindEnemy); n != 4 {
		t.Errorf("expected refill on the next frame after a slot frees, got %d enemies", n)
	}

	// 生成后计时器重新开始
	ids = ecs.GetEntitiesWith1[*components.EnemyComponent](w.em)
	w.em.DestroyEntity(ids[0])
	w.em.RemoveMarkedEntities()
	system.Update(1.0 / 60)
	if n := countKind(w.em, components.KindEnemy); n != 3 {
		t.Errorf("timer should restart after a spawn, got %d enemies", n)
	}
}

func TestSpawnSystemBoss(t *testing.T) {
	w := newTestWorldFixture()
	system := newTestSpawnSystem(w)

	w.addEnemy(config.PatternChase, 40, 100, 100)
	w.addEnemy(config.PatternDirect, 40, 200, 100)

	w.clock.Now = 299.9
	system.Update(0.01)
	if system.BossSpawned() {
		t.Fatal("boss should not spawn before 300s")
	}

	w.clock.Now = 300
	system.Update(0.01)
	if !system.BossSpawned() {
		t.Fatal("boss should spawn at 300s")
	}
	if n := countKind(w.em, components.KindEnemy); n != 0 {
		t.Errorf("regular enemies should be cleared, %d left", n)
	}
	if n := countKind(w.em, components.KindBoss); n != 1 {
		t.Errorf("expected exactly 1 boss, got %d", n)
	}

	spawned := eventsOf[BossSpawnedEvent](w.events.Drain())
	if len(spawned) != 1 || spawned[0].Name != "Inferno Guardian" || spawned[0].WorldID != 1 {
		t.Errorf("unexpected BossSpawned events: %+v", spawned)
	}

	// 首领战期间不再生成敌人，也不会生成第二个首领
	w.em.RemoveMarkedEntities()
	for i := 0; i < 20; i++ {
		w.clock.Advance(1)
		system.Update(1)
	}
	if n := countKind(w.em, components.KindEnemy); n != 0 {
		t.Errorf("no enemies should spawn during boss fight, got %d", n)
	}
	if n := countKind(w.em, components.KindBoss); n != 1 {
		t.Errorf("expected 1 boss, got %d", n)
	}

	bossID, _ := findBoss(w.em)
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, bossID)
	if diff := pos.Y - 854*0.2; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("boss spawned at y=%.1f, want %.1f", pos.Y, 854*0.2)
	}
}

func TestEnemyAISystem(t *testing.T) {
	w := newTestWorldFixture()
	w.addPhoenix(240, 700)
	system := NewEnemyAISystem(w.em, w.cfg)

	chaser := w.addEnemy(config.PatternChase, 40, 240, 100)
	direct := w.addEnemy(config.PatternDirect, 40, 100, 100)
	ranged := w.addEnemy(config.PatternRanged, 40, 400, 100)

	// 立即触发首次攻击
	for _, id := range []ecs.EntityID{chaser, direct, ranged} {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](w.em, id)
		enemy.AttackTimer = 0
	}

	system.Update(1.0 / 60)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, chaser)
	if vel.VX != 0 || vel.VY != 60 {
		t.Errorf("chaser directly above phoenix should move straight down, got %+v", vel)
	}
	vel, _ = ecs.GetComponent[*components.VelocityComponent](w.em, direct)
	if vel.VX != 0 || vel.VY != 60 {
		t.Errorf("direct enemy velocity = %+v", vel)
	}

	if n := countKind(w.em, components.KindEnemyProjectile); n != 1 {
		t.Fatalf("only the ranged enemy should fire, got %d projectiles", n)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](w.em) {
		pvel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, id)
		speed := distance(0, 0, pvel.VX, pvel.VY)
		if speed < 199.999 || speed > 200.001 {
			t.Errorf("enemy projectile speed = %.3f, want 200", speed)
		}
		if pvel.VX >= 0 || pvel.VY <= 0 {
			t.Errorf("projectile should head down-left toward phoenix, got %+v", pvel)
		}
	}

	// 攻击间隔重置为模式对应的时间
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](w.em, ranged)
	if enemy.AttackTimer != 3 {
		t.Errorf("ranged attack timer = %.2f, want 3", enemy.AttackTimer)
	}
	enemy, _ = ecs.GetComponent[*components.EnemyComponent](w.em, chaser)
	if enemy.AttackTimer != 1.5 {
		t.Errorf("chase attack timer = %.2f, want 1.5", enemy.AttackTimer)
	}
}
