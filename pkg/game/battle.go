package game

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/google/uuid"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/ecs"
	"github.com/gonewx/phoenix/pkg/entities"
	"github.com/gonewx/phoenix/pkg/input"
	"github.com/gonewx/phoenix/pkg/systems"
)

// BattleState 战斗状态
type BattleState int

const (
	BattleRunning BattleState = iota
	BattleWon
	BattleLost
)

// String 返回状态名称
func (s BattleState) String() string {
	switch s {
	case BattleRunning:
		return "running"
	case BattleWon:
		return "won"
	case BattleLost:
		return "lost"
	}
	return "unknown"
}

// BattleListener 战斗事件监听器（音效、界面提示）
type BattleListener func(e systems.Event)

// Battle 一局战斗
//
// 持有实体管理器和全部系统，按固定顺序推进一帧，
// 并在帧末把系统产生的事件结算到 PlayerState。
// 只在游戏循环所在的 goroutine 中使用。
type Battle struct {
	RunID uuid.UUID

	bundle *config.Bundle
	world  *config.WorldDefinition
	player *PlayerState

	em     *ecs.EntityManager
	clock  *systems.Clock
	events *systems.EventQueue
	rng    *rand.Rand

	phoenixSystem   *systems.PhoenixSystem
	spawnSystem     *systems.SpawnSystem
	enemyAISystem   *systems.EnemyAISystem
	bossSystem      *systems.BossSystem
	movementSystem  *systems.MovementSystem
	lifetimeSystem  *systems.LifetimeSystem
	collisionSystem *systems.CollisionSystem
	boundsSystem    *systems.BoundsSystem
	attack          *systems.AttackSystem

	listeners []BattleListener

	state  BattleState
	paused bool
	score  int
	kills  int
}

// NewBattle 在 worldID 开始一局战斗，凤凰生命回满
func NewBattle(bundle *config.Bundle, player *PlayerState, worldID int, seed int64) (*Battle, error) {
	world, ok := bundle.Worlds.Get(worldID)
	if !ok {
		return nil, fmt.Errorf("start battle in world %d: %w", worldID, ErrUnknownWorld)
	}

	b := &Battle{
		RunID:  uuid.New(),
		bundle: bundle,
		world:  world,
		player: player,
		em:     ecs.NewEntityManager(),
		clock:  &systems.Clock{},
		events: &systems.EventQueue{},
		rng:    rand.New(rand.NewSource(seed)),
	}

	cfg := bundle.Gameplay
	resolver := systems.NewDamageResolver(b.em, cfg, b.rng, b.events)

	b.phoenixSystem = systems.NewPhoenixSystem(b.em, cfg)
	b.spawnSystem = systems.NewSpawnSystem(b.em, cfg, bundle.Enemies, world, b.rng, b.clock, b.events)
	b.enemyAISystem = systems.NewEnemyAISystem(b.em, cfg)
	b.bossSystem = systems.NewBossSystem(b.em, cfg, bundle.BossPatterns, b.events)
	b.movementSystem = systems.NewMovementSystem(b.em)
	b.lifetimeSystem = systems.NewLifetimeSystem(b.em)
	b.collisionSystem = systems.NewCollisionSystem(b.em, cfg, resolver, b.events)
	b.boundsSystem = systems.NewBoundsSystem(b.em, cfg)
	b.attack = systems.NewAttackSystem(b.em, cfg, b.clock, resolver, b.events)

	entities.NewPhoenix(b.em, cfg.Screen.Width/2, cfg.Screen.Height*cfg.Phoenix.StartY, cfg.Phoenix.Radius)
	player.RestoreHealth()

	log.Printf("[Battle] Run %s started in world %d (%s)", b.RunID, world.ID, world.Name)
	return b, nil
}

// AddListener 注册事件监听器
func (b *Battle) AddListener(l BattleListener) {
	b.listeners = append(b.listeners, l)
}

// World 当前世界
func (b *Battle) World() *config.WorldDefinition {
	return b.world
}

// State 战斗状态
func (b *Battle) State() BattleState {
	return b.state
}

// Now 战斗时间（秒）
func (b *Battle) Now() float64 {
	return b.clock.Now
}

// Score 当前得分
func (b *Battle) Score() int {
	return b.score
}

// Kills 击杀数
func (b *Battle) Kills() int {
	return b.kills
}

// SetPaused 暂停或继续
func (b *Battle) SetPaused(paused bool) {
	b.paused = paused
}

// Paused 是否暂停
func (b *Battle) Paused() bool {
	return b.paused
}

// EntityManager 返回实体管理器（调试和测试使用）
func (b *Battle) EntityManager() *ecs.EntityManager {
	return b.em
}

// SetPhoenixTarget 拖动凤凰到 (x,y)
func (b *Battle) SetPhoenixTarget(x, y float64) {
	b.phoenixSystem.SetTarget(x, y)
}

// MovePhoenix 按位移拖动凤凰
func (b *Battle) MovePhoenix(dx, dy float64) {
	b.phoenixSystem.MoveTarget(dx, dy)
}

// HandleGesture 手势触发对应槽位的招式
func (b *Battle) HandleGesture(g input.Gesture) bool {
	return b.Fire(g.Kind.Slot())
}

// Fire 释放槽位上装备的招式，冷却中、槽位为空或战斗已结束时返回 false
func (b *Battle) Fire(slot config.MoveSlot) bool {
	if b.state != BattleRunning || b.paused {
		return false
	}
	move, ok := b.player.EquippedMove(slot)
	if !ok {
		return false
	}
	spec := systems.AttackSpec{
		MoveID:   move.ID,
		Damage:   move.Damage,
		Cooldown: float64(move.Cooldown) / 1000,
		Color:    config.MustHexColor(move.Color),
	}
	return b.attack.Fire(slot, spec)
}

// Update 推进一帧
func (b *Battle) Update(deltaTime float64) {
	if b.state != BattleRunning || b.paused {
		return
	}
	b.clock.Advance(deltaTime)

	b.phoenixSystem.Update(deltaTime)
	b.spawnSystem.Update(deltaTime)
	b.enemyAISystem.Update(deltaTime)
	b.bossSystem.Update(deltaTime)
	b.movementSystem.Update(deltaTime)
	b.lifetimeSystem.Update(deltaTime)
	b.collisionSystem.Update(deltaTime)
	b.boundsSystem.Update(deltaTime)

	b.dispatchEvents()
	b.em.RemoveMarkedEntities()
}

// dispatchEvents 结算本帧事件并通知监听器
// 结算过程中产生的新事件（升级、金币、死亡、通关）在同一帧内继续分发
func (b *Battle) dispatchEvents() {
	for b.events.Len() > 0 {
		for _, e := range b.events.Drain() {
			b.apply(e)
			for _, l := range b.listeners {
				l(e)
			}
		}
	}
}

func (b *Battle) apply(e systems.Event) {
	rewards := b.bundle.Gameplay.Rewards

	switch ev := e.(type) {
	case systems.EnemyKilledEvent:
		// 同一帧内凤凰已阵亡时不再结算击杀奖励
		if b.state != BattleRunning {
			return
		}
		b.kills++
		b.score += ev.XP * rewards.ScorePerXP
		b.grant(ev.XP, ev.Coins)
		b.player.Heal(rewards.KillHeal)

	case systems.PhoenixHitEvent:
		if b.state != BattleRunning {
			return
		}
		if b.player.Damage(ev.Damage) > 0 {
			return
		}
		b.player.OnPlayerDeath()
		b.state = BattleLost
		log.Printf("[Battle] Run %s: phoenix fell after %.1fs (score %d)", b.RunID, b.clock.Now, b.score)
		b.events.Push(systems.PhoenixDiedEvent{})

	case systems.BossDefeatedEvent:
		if b.state != BattleRunning {
			return
		}
		b.score += ev.XP * rewards.ScorePerXP
		b.grant(ev.XP, ev.Coins)
		if err := b.player.CompleteWorld(b.world.ID, b.clock.Now, b.score); err != nil {
			log.Printf("[Battle] Warning: %v", err)
		}
		b.state = BattleWon
		log.Printf("[Battle] Run %s: world %d cleared in %.1fs (score %d)", b.RunID, b.world.ID, b.clock.Now, b.score)
		b.events.Push(systems.WorldCompletedEvent{WorldID: b.world.ID, Time: b.clock.Now, Score: b.score})
	}
}

// grant 发放经验和金币
func (b *Battle) grant(xp, coins int) {
	if levels := b.player.GainXP(xp); levels > 0 {
		b.events.Push(systems.LevelUpEvent{Level: b.player.PlayerStats.Level})
	}
	if coins > 0 {
		b.player.GainCoins(coins)
		b.events.Push(systems.CoinsGainedEvent{Amount: coins})
	}
}
