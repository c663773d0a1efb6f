package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/ecs"
	"github.com/gonewx/phoenix/pkg/entities"
)

const (
	// enemySpawnMargin 敌人生成时距屏幕左右边缘的最小距离
	enemySpawnMargin = 30.0
	// enemySpawnY 敌人在屏幕顶部之外生成的纵坐标
	enemySpawnY = -50.0
)

// SpawnSystem 按计时器生成敌人、背景漂浮物和首领
type SpawnSystem struct {
	em      *ecs.EntityManager
	cfg     *config.GameplayConfig
	enemies *config.EnemiesConfig
	world   *config.WorldDefinition
	rng     *rand.Rand
	clock   *Clock
	events  *EventQueue

	enemyTimer       float64
	environmentTimer float64
	bossSpawned      bool
}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem(em *ecs.EntityManager, cfg *config.GameplayConfig, enemies *config.EnemiesConfig,
	world *config.WorldDefinition, rng *rand.Rand, clock *Clock, events *EventQueue) *SpawnSystem {
	return &SpawnSystem{
		em:      em,
		cfg:     cfg,
		enemies: enemies,
		world:   world,
		rng:     rng,
		clock:   clock,
		events:  events,
	}
}

// BossSpawned 首领是否已经登场
func (s *SpawnSystem) BossSpawned() bool {
	return s.bossSpawned
}

// Update 推进三个生成计时器
func (s *SpawnSystem) Update(deltaTime float64) {
	s.environmentTimer += deltaTime
	if s.environmentTimer >= s.cfg.Spawn.EnvironmentInterval {
		s.environmentTimer = 0
		entities.NewEnvironmentObject(s.em, s.rng, s.cfg.Environment, s.cfg.Screen.Width)
	}

	if s.bossSpawned {
		return
	}

	// 达到上限时计时器继续累积，空出位置后下一帧立即生成
	s.enemyTimer += deltaTime
	if s.enemyTimer >= s.cfg.EnemySpawnInterval(s.world.ID) && s.enemyCount() < s.cfg.MaxEnemies(s.world.ID) {
		s.enemyTimer = 0
		s.spawnEnemy()
	}

	if s.clock.Now >= s.cfg.Spawn.BossTime {
		s.spawnBoss()
	}
}

func (s *SpawnSystem) enemyCount() int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.em) {
		if !s.em.IsMarkedForDestruction(id) {
			n++
		}
	}
	return n
}

// spawnEnemy 随机挑选原型，在屏幕顶部之外生成
func (s *SpawnSystem) spawnEnemy() {
	archetype := s.enemies.Enemies[s.rng.Intn(len(s.enemies.Enemies))]
	stats := s.enemies.StatsForWorld(archetype, s.world.ID)

	x := enemySpawnMargin + s.rng.Float64()*(s.cfg.Screen.Width-2*enemySpawnMargin)
	entities.NewEnemy(s.em, stats, x, enemySpawnY, s.cfg.EnemyAttackInterval(stats.Pattern))
}

// spawnBoss 清除场上普通敌人并生成首领
func (s *SpawnSystem) spawnBoss() {
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.em) {
		s.em.DestroyEntity(id)
	}

	x := s.cfg.Screen.Width / 2
	y := s.cfg.Screen.Height * s.cfg.Boss.SpawnY
	entities.NewBoss(s.em, s.world, x, y)
	s.bossSpawned = true

	log.Printf("[SpawnSystem] 首领登场: %s (世界 %d, 战斗时间 %.1fs)", s.world.Boss.Name, s.world.ID, s.clock.Now)
	s.events.Push(BossSpawnedEvent{Name: s.world.Boss.Name, WorldID: s.world.ID})
}
