package systems

import (
	"log"
	"math"

	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/ecs"
	"github.com/gonewx/phoenix/pkg/entities"
	"github.com/tsujio/go-bulletml"
)

// BossSystem 首领行为
//
// 首领在出生高度水平摆动；剩余生命比例降到阈值时切换阶段，
// 每个阶段运行一份 BulletML 弹幕脚本，发射的子弹作为敌方子弹参与碰撞。
// BulletML 按帧定义速度和等待时间，因此运行器和子弹以固定帧率推进，
// 与渲染帧率无关。
type BossSystem struct {
	em       *ecs.EntityManager
	cfg      *config.GameplayConfig
	patterns map[int]config.BossPatternSet
	events   *EventQueue

	tickAccumulator float64
}

// NewBossSystem 创建首领系统
func NewBossSystem(em *ecs.EntityManager, cfg *config.GameplayConfig, patterns map[int]config.BossPatternSet, events *EventQueue) *BossSystem {
	return &BossSystem{
		em:       em,
		cfg:      cfg,
		patterns: patterns,
		events:   events,
	}
}

// phaseFor 根据剩余生命比例计算阶段
func (s *BossSystem) phaseFor(ratio float64) int {
	switch {
	case ratio <= s.cfg.Boss.Phase3Ratio:
		return 3
	case ratio <= s.cfg.Boss.Phase2Ratio:
		return 2
	default:
		return 1
	}
}

// Update 移动首领、切换阶段并推进弹幕
func (s *BossSystem) Update(deltaTime float64) {
	bossID, hasBoss := findBoss(s.em)
	if hasBoss {
		s.updateBoss(bossID, deltaTime)
	}

	step := 1 / s.cfg.Boss.TickRate
	s.tickAccumulator += deltaTime
	for s.tickAccumulator >= step {
		s.tickAccumulator -= step
		s.tick(bossID, hasBoss)
	}
}

// updateBoss 摆动、受击闪烁和阶段切换
func (s *BossSystem) updateBoss(id ecs.EntityID, deltaTime float64) {
	boss, _ := ecs.GetComponent[*components.BossComponent](s.em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
	health, _ := ecs.GetComponent[*components.HealthComponent](s.em, id)

	boss.SwayTime += deltaTime
	pos.X = boss.CenterX + math.Sin(boss.SwayTime*s.cfg.Boss.SwaySpeed)*s.cfg.Boss.SwayAmplitude*s.cfg.Screen.Width

	if boss.HitFlash > 0 {
		boss.HitFlash = math.Max(0, boss.HitFlash-deltaTime)
	}

	phase := s.phaseFor(health.Ratio())
	if phase != boss.Phase || !boss.PatternStarted {
		changed := phase != boss.Phase
		boss.Phase = phase
		if err := s.startPattern(id, boss); err != nil {
			log.Printf("[BossSystem] Warning: 首领 %s 阶段 %d 弹幕启动失败: %v", boss.Name, phase, err)
		}
		if changed {
			log.Printf("[BossSystem] 首领 %s 进入阶段 %d", boss.Name, phase)
			s.events.Push(BossPhaseEvent{Name: boss.Name, Phase: phase})
		}
	}
}

// startPattern 为当前阶段创建 BulletML 运行器
func (s *BossSystem) startPattern(id ecs.EntityID, boss *components.BossComponent) error {
	boss.Runner = nil
	boss.PatternStarted = true

	set, ok := s.patterns[boss.WorldID]
	if !ok || set[boss.Phase-1] == nil {
		return nil
	}

	damage := boss.Damage
	opts := &bulletml.NewRunnerOptions{
		OnBulletFired: func(br bulletml.BulletRunner, fc *bulletml.FireContext) {
			entities.NewBulletMLProjectile(s.em, br, damage, enemyProjectileColor, s.cfg.Boss.BulletRadius)
		},
		CurrentShootPosition: func() (float64, float64) {
			if pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id); ok {
				return pos.X, pos.Y
			}
			return s.cfg.Screen.Width / 2, s.cfg.Screen.Height * s.cfg.Boss.SpawnY
		},
		CurrentTargetPosition: func() (float64, float64) {
			if _, pos, ok := findPhoenix(s.em); ok {
				return pos.X, pos.Y
			}
			return s.cfg.Screen.Width / 2, s.cfg.Screen.Height
		},
	}

	runner, err := bulletml.NewRunner(set[boss.Phase-1], opts)
	if err != nil {
		return err
	}
	boss.Runner = runner
	return nil
}

// tick 推进一帧 BulletML：先推进首领脚本（可能发射新子弹），再推进全部子弹
func (s *BossSystem) tick(bossID ecs.EntityID, hasBoss bool) {
	if hasBoss {
		boss, _ := ecs.GetComponent[*components.BossComponent](s.em, bossID)
		if boss.Runner != nil {
			if err := boss.Runner.Update(); err != nil {
				log.Printf("[BossSystem] Warning: 弹幕运行失败: %v", err)
				boss.Runner = nil
			}
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.em) {
		if s.em.IsMarkedForDestruction(id) {
			continue
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
		if proj.Bullet == nil {
			continue
		}
		if err := proj.Bullet.Update(); err != nil {
			log.Printf("[BossSystem] Warning: 子弹运行失败: %v", err)
			s.em.DestroyEntity(id)
			continue
		}
		if proj.Bullet.Vanished() {
			s.em.DestroyEntity(id)
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		pos.X, pos.Y = proj.Bullet.Position()
	}
}
