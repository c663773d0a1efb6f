package systems

import (
	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/ecs"
)

// Event 战斗事件
// 系统在帧内产生事件，由战斗编排器在帧末统一分发（奖励结算、音效、界面）
type Event interface {
	eventName() string
}

// EnemyKilledEvent 敌人被击杀
type EnemyKilledEvent struct {
	Entity ecs.EntityID
	Name   string
	X, Y   float64
	XP     int
	Coins  int
}

// EnemyHitEvent 敌人或首领被命中但未死亡
type EnemyHitEvent struct {
	Entity ecs.EntityID
	X, Y   float64
	Damage int
}

// PhoenixHitEvent 凤凰受到伤害
type PhoenixHitEvent struct {
	Damage int
	Source components.EntityKind
}

// BossSpawnedEvent 首领登场
type BossSpawnedEvent struct {
	Name    string
	WorldID int
}

// BossPhaseEvent 首领进入新阶段
type BossPhaseEvent struct {
	Name  string
	Phase int
}

// BossDefeatedEvent 首领被击败
type BossDefeatedEvent struct {
	Name    string
	WorldID int
	XP      int
	Coins   int
}

// PhoenixAttackEvent 凤凰释放招式
type PhoenixAttackEvent struct {
	Slot   config.MoveSlot
	MoveID string
	Damage int
}

// 以下事件由战斗编排器在结算奖励时产生

// CoinsGainedEvent 获得金币
type CoinsGainedEvent struct {
	Amount int
}

// LevelUpEvent 玩家升级
type LevelUpEvent struct {
	Level int
}

// PhoenixDiedEvent 凤凰生命归零
type PhoenixDiedEvent struct{}

// WorldCompletedEvent 通关
type WorldCompletedEvent struct {
	WorldID int
	Time    float64
	Score   int
}

func (EnemyKilledEvent) eventName() string    { return "enemy_killed" }
func (EnemyHitEvent) eventName() string       { return "enemy_hit" }
func (PhoenixHitEvent) eventName() string     { return "phoenix_hit" }
func (BossSpawnedEvent) eventName() string    { return "boss_spawned" }
func (BossPhaseEvent) eventName() string      { return "boss_phase" }
func (BossDefeatedEvent) eventName() string   { return "boss_defeated" }
func (PhoenixAttackEvent) eventName() string  { return "phoenix_attack" }
func (CoinsGainedEvent) eventName() string    { return "coins_gained" }
func (LevelUpEvent) eventName() string        { return "level_up" }
func (PhoenixDiedEvent) eventName() string    { return "phoenix_died" }
func (WorldCompletedEvent) eventName() string { return "world_completed" }

// EventName 返回事件名称（日志使用）
func EventName(e Event) string {
	return e.eventName()
}

// EventQueue 帧内事件队列
// 仅在模拟线程中使用，不需要加锁
type EventQueue struct {
	events []Event
}

// Push 追加事件
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain 取出并清空全部事件（按产生顺序）
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len 返回待处理事件数量
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Clock 战斗时钟（秒）
// 所有冷却和生成计时都使用战斗时间，暂停时不前进
type Clock struct {
	Now float64
}

// Advance 推进时钟
func (c *Clock) Advance(dt float64) {
	c.Now += dt
}
