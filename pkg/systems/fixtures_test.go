package systems

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/ecs"
	"github.com/gonewx/phoenix/pkg/entities"
	"github.com/tsujio/go-bulletml"
)

// newTestGameplayConfig 返回与 data/gameplay.yaml 默认值一致的配置
func newTestGameplayConfig() *config.GameplayConfig {
	return &config.GameplayConfig{
		Screen:    config.ScreenConfig{Width: 480, Height: 854},
		Phoenix:   config.PhoenixConfig{Radius: 20, MarginX: 50, MarginY: 100, StartY: 0.8},
		Collision: config.CollisionConfig{PhoenixContact: 25, ProjectileVsEnemy: 20, ProjectileVsPhoenix: 25, PushBack: 2},
		Spawn: config.SpawnConfig{
			EnemyBaseInterval: 2.5, EnemyIntervalStep: 0.15, EnemyMinInterval: 0.8,
			MaxEnemiesBase: 3, MaxEnemiesCap: 8, EnvironmentInterval: 2, BossTime: 300,
		},
		EnemyAttack: config.EnemyAttackConfig{
			DirectInterval: 2, ChaseInterval: 1.5, RangedInterval: 3, ProjectileSpeed: 200, ProjectileLife: 6,
		},
		Bounds: config.BoundsConfig{EnemyMargin: 50, ProjectileMargin: 50, EnvironmentMargin: 100},
		Attack: config.AttackConfig{
			HoldDuration: 1, DoubleDuration: 0.5, TripleDuration: 0.8,
			DartSpeed: 520, FanSpeed: 420, FanCount: 5, FanSpreadDegrees: 60, BeamWidth: 40, ProjectileLife: 3,
		},
		Gesture: config.GestureConfig{HoldDelay: 0.3, TapWindow: 0.2},
		Rewards: config.RewardConfig{KillHeal: 2, BossXPPerHealth: 1, BossCoinsPerHealth: 2, ScorePerXP: 10},
		Boss: config.BossConfig{
			SpawnY: 0.2, HitFlash: 0.15, SwaySpeed: 0.6, SwayAmplitude: 0.3,
			Phase2Ratio: 0.5, Phase3Ratio: 0.25, TickRate: 60, BulletRadius: 8,
		},
		Environment: config.EnvironmentConfig{
			DriftX: 10, MinSpeed: 30, MaxSpeed: 70, MinSize: 40, MaxSize: 120, MinOpacity: 0.3, MaxOpacity: 0.8,
		},
		Particles: config.ParticleConfig{
			Death: config.BurstConfig{Count: 10, Speed: 100, Life: 1, Size: 3, SizeRange: 5, Colors: []string{"#ff4444", "#ff8844"}},
			Hit:   config.BurstConfig{Count: 5, Speed: 50, Life: 0.5, Size: 2, SizeRange: 3, Colors: []string{"#ffff44"}},
		},
	}
}

func newTestEnemiesConfig() *config.EnemiesConfig {
	return &config.EnemiesConfig{
		HealthScalePerWorld: 0.3,
		Enemies: []config.EnemyArchetype{
			{Name: "Fire Imp", Pattern: config.PatternDirect, BaseHealth: 30, BaseDamage: 15, BaseSpeed: 50, SpeedPerWorld: 5, BaseCoins: 3, BaseXP: 5, Radius: 18, Color: "#ff5522"},
		},
	}
}

func newTestWorld() *config.WorldDefinition {
	return &config.WorldDefinition{
		ID: 1, Name: "Ember Plains", Color: "#ff4444",
		Boss: config.BossDefinition{Name: "Inferno Guardian", Health: 200, Damage: 30, Radius: 60},
	}
}

// testAimedPattern 每 10 帧向目标发射一颗子弹
const testAimedPattern = `<?xml version="1.0" ?>
<bulletml type="vertical" xmlns="http://www.asahi-net.or.jp/~cs8k-cyu/bulletml">
  <action label="top">
    <repeat>
      <times>9999</times>
      <action>
        <fire>
          <direction type="aim">0</direction>
          <speed>3</speed>
          <bullet/>
        </fire>
        <wait>10</wait>
      </action>
    </repeat>
  </action>
</bulletml>`

func mustLoadPattern(t *testing.T, src string) *bulletml.BulletML {
	t.Helper()
	bml, err := bulletml.Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("bulletml.Load failed: %v", err)
	}
	return bml
}

// testWorld 一组共享依赖的系统测试夹具
type testWorld struct {
	em       *ecs.EntityManager
	cfg      *config.GameplayConfig
	rng      *rand.Rand
	clock    *Clock
	events   *EventQueue
	resolver *DamageResolver
}

func newTestWorldFixture() *testWorld {
	em := ecs.NewEntityManager()
	cfg := newTestGameplayConfig()
	rng := rand.New(rand.NewSource(7))
	events := &EventQueue{}
	return &testWorld{
		em:       em,
		cfg:      cfg,
		rng:      rng,
		clock:    &Clock{},
		events:   events,
		resolver: NewDamageResolver(em, cfg, rng, events),
	}
}

func (w *testWorld) addPhoenix(x, y float64) ecs.EntityID {
	return entities.NewPhoenix(w.em, x, y, w.cfg.Phoenix.Radius)
}

func (w *testWorld) addEnemy(pattern config.AttackPattern, health int, x, y float64) ecs.EntityID {
	return entities.NewEnemy(w.em, config.EnemyStats{
		Name: "Test " + string(pattern), Pattern: pattern,
		Health: health, Damage: 15, Speed: 60, Coins: 4, XP: 6, Radius: 18, Color: "#ff5522",
	}, x, y, 10)
}

func (w *testWorld) addBoss(x, y float64) ecs.EntityID {
	return entities.NewBoss(w.em, newTestWorld(), x, y)
}

func countKind(em *ecs.EntityManager, kind components.EntityKind) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.KindComponent](em) {
		k, _ := ecs.GetComponent[*components.KindComponent](em, id)
		if k.Kind == kind && !em.IsMarkedForDestruction(id) {
			n++
		}
	}
	return n
}

func eventsOf[T Event](events []Event) []T {
	var out []T
	for _, e := range events {
		if typed, ok := e.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}
