package systems

import (
	"image/color"
	"log"
	"math"

	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/ecs"
	"github.com/gonewx/phoenix/pkg/entities"
)

// phoenixProjectileSize 凤凰子弹半径
const phoenixProjectileSize = 5.0

// AttackSpec 一次攻击使用的招式参数（来自当前装备的招式）
type AttackSpec struct {
	MoveID   string
	Damage   int
	Cooldown float64 // 秒
	Color    color.RGBA
}

// AttackSystem 处理手势触发的凤凰攻击
//
// 每个槽位独立冷却，冷却基于战斗时钟。
//   - double: 一发高速子弹，瞄准最近的敌人或首领
//   - triple: 扇形齐射
//   - hold: 竖直光束，立即伤害凤凰上方光束宽度内的全部敌人和首领
type AttackSystem struct {
	em       *ecs.EntityManager
	cfg      *config.GameplayConfig
	clock    *Clock
	resolver *DamageResolver
	events   *EventQueue

	readyAt   map[config.MoveSlot]float64 // 槽位可再次使用的战斗时间
	cooldowns map[config.MoveSlot]float64 // 槽位最近一次使用的冷却总时长
}

// NewAttackSystem 创建攻击系统
func NewAttackSystem(em *ecs.EntityManager, cfg *config.GameplayConfig, clock *Clock, resolver *DamageResolver, events *EventQueue) *AttackSystem {
	return &AttackSystem{
		em:        em,
		cfg:       cfg,
		clock:     clock,
		resolver:  resolver,
		events:    events,
		readyAt:   make(map[config.MoveSlot]float64),
		cooldowns: make(map[config.MoveSlot]float64),
	}
}

// CooldownRemaining 返回槽位剩余冷却时间（秒）
func (s *AttackSystem) CooldownRemaining(slot config.MoveSlot) float64 {
	return math.Max(0, s.readyAt[slot]-s.clock.Now)
}

// CooldownProgress 返回槽位冷却进度 [0,1]，1 表示可用
func (s *AttackSystem) CooldownProgress(slot config.MoveSlot) float64 {
	total := s.cooldowns[slot]
	if total <= 0 {
		return 1
	}
	return 1 - s.CooldownRemaining(slot)/total
}

// Ready 槽位是否可用
func (s *AttackSystem) Ready(slot config.MoveSlot) bool {
	return s.clock.Now >= s.readyAt[slot]
}

// Fire 尝试释放槽位对应的招式
// 冷却中或凤凰不存在时返回 false
func (s *AttackSystem) Fire(slot config.MoveSlot, spec AttackSpec) bool {
	if !s.Ready(slot) {
		return false
	}
	id, pos, ok := findPhoenix(s.em)
	if !ok {
		return false
	}

	s.readyAt[slot] = s.clock.Now + spec.Cooldown
	s.cooldowns[slot] = spec.Cooldown

	phoenix, _ := ecs.GetComponent[*components.PhoenixComponent](s.em, id)
	phoenix.IsAttacking = true
	phoenix.AttackSlot = slot
	phoenix.AttackTimer = s.cfg.AttackDuration(slot)

	switch slot {
	case config.SlotDouble:
		s.fireDart(pos, spec)
	case config.SlotTriple:
		s.fireFan(pos, spec)
	case config.SlotHold:
		s.fireBeam(pos, spec)
	default:
		log.Printf("[AttackSystem] Warning: 未知槽位 %q", slot)
	}

	s.events.Push(PhoenixAttackEvent{Slot: slot, MoveID: spec.MoveID, Damage: spec.Damage})
	return true
}

// fireDart 向最近的目标发射一发子弹，没有目标时竖直向上
func (s *AttackSystem) fireDart(pos *components.PositionComponent, spec AttackSpec) {
	vx, vy := 0.0, -s.cfg.Attack.DartSpeed
	if tx, ty, ok := s.nearestTarget(pos); ok {
		if ax, ay, ok := aimVelocity(pos.X, pos.Y, tx, ty, s.cfg.Attack.DartSpeed); ok {
			vx, vy = ax, ay
		}
	}
	s.spawnProjectile(pos, vx, vy, spec)
}

// fireFan 以竖直向上为中心发射扇形子弹
func (s *AttackSystem) fireFan(pos *components.PositionComponent, spec AttackSpec) {
	n := s.cfg.Attack.FanCount
	spread := s.cfg.Attack.FanSpreadDegrees * math.Pi / 180
	for i := 0; i < n; i++ {
		offset := 0.0
		if n > 1 {
			offset = -spread/2 + spread*float64(i)/float64(n-1)
		}
		// 角度以竖直向上为 0，顺时针为正
		vx := math.Sin(offset) * s.cfg.Attack.FanSpeed
		vy := -math.Cos(offset) * s.cfg.Attack.FanSpeed
		s.spawnProjectile(pos, vx, vy, spec)
	}
}

// fireBeam 立即伤害光束范围内的目标，并生成光束特效
func (s *AttackSystem) fireBeam(pos *components.PositionComponent, spec AttackSpec) {
	half := s.cfg.Attack.BeamWidth / 2

	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.CollisionComponent](s.em) {
		epos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		if inBeam(pos, epos, col.Radius, half) {
			s.resolver.HitEnemy(id, spec.Damage, epos.X, epos.Y)
		}
	}
	if bossID, ok := findBoss(s.em); ok {
		bpos, _ := ecs.GetComponent[*components.PositionComponent](s.em, bossID)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, bossID)
		if inBeam(pos, bpos, col.Radius, half) {
			s.resolver.HitBoss(bossID, spec.Damage, bpos.X, bpos.Y+col.Radius)
		}
	}

	entities.NewBeam(s.em, pos.X, pos.Y, s.cfg.Attack.BeamWidth, s.cfg.Attack.HoldDuration, spec.Color)
}

// inBeam 目标圆与凤凰上方竖直条带相交
func inBeam(origin, target *components.PositionComponent, radius, halfWidth float64) bool {
	return math.Abs(target.X-origin.X) <= halfWidth+radius && target.Y-radius <= origin.Y
}

func (s *AttackSystem) spawnProjectile(pos *components.PositionComponent, vx, vy float64, spec AttackSpec) {
	entities.NewProjectile(s.em, components.OwnerPhoenix, entities.ProjectileSpec{
		X:        pos.X,
		Y:        pos.Y,
		VX:       vx,
		VY:       vy,
		Damage:   spec.Damage,
		Color:    spec.Color,
		Size:     phoenixProjectileSize,
		Lifetime: s.cfg.Attack.ProjectileLife,
	})
}

// nearestTarget 返回离凤凰最近的敌人或首领位置
func (s *AttackSystem) nearestTarget(pos *components.PositionComponent) (float64, float64, bool) {
	best := math.Inf(1)
	var tx, ty float64
	found := false

	consider := func(id ecs.EntityID) {
		if s.em.IsMarkedForDestruction(id) {
			return
		}
		p, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if d := distance(pos.X, pos.Y, p.X, p.Y); d < best {
			best, tx, ty, found = d, p.X, p.Y, true
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.em) {
		consider(id)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.BossComponent, *components.PositionComponent](s.em) {
		consider(id)
	}
	return tx, ty, found
}

// Reset 清除全部冷却（新战斗开始）
func (s *AttackSystem) Reset() {
	s.readyAt = make(map[config.MoveSlot]float64)
	s.cooldowns = make(map[config.MoveSlot]float64)
}
