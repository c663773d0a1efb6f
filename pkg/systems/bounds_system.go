package systems

import (
	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/ecs"
)

// BoundsSystem 清理离开屏幕的实体（不发放奖励）
type BoundsSystem struct {
	em  *ecs.EntityManager
	cfg *config.GameplayConfig
}

// NewBoundsSystem 创建越界清理系统
func NewBoundsSystem(em *ecs.EntityManager, cfg *config.GameplayConfig) *BoundsSystem {
	return &BoundsSystem{em: em, cfg: cfg}
}

// Update 检查敌人、子弹和背景漂浮物是否越界
func (s *BoundsSystem) Update(deltaTime float64) {
	w, h := s.cfg.Screen.Width, s.cfg.Screen.Height

	// 敌人只会从底部离开
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if pos.Y > h+s.cfg.Bounds.EnemyMargin {
			s.em.DestroyEntity(id)
		}
	}

	m := s.cfg.Bounds.ProjectileMargin
	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if pos.X < -m || pos.X > w+m || pos.Y < -m || pos.Y > h+m {
			s.em.DestroyEntity(id)
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.EnvironmentComponent, *components.PositionComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if pos.Y > h+s.cfg.Bounds.EnvironmentMargin {
			s.em.DestroyEntity(id)
		}
	}
}
