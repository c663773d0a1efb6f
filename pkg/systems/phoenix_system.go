package systems

import (
	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/ecs"
)

// PhoenixSystem 让凤凰跟随指针目标，并维护攻击状态计时
type PhoenixSystem struct {
	em  *ecs.EntityManager
	cfg *config.GameplayConfig
}

// NewPhoenixSystem 创建凤凰系统
func NewPhoenixSystem(em *ecs.EntityManager, cfg *config.GameplayConfig) *PhoenixSystem {
	return &PhoenixSystem{em: em, cfg: cfg}
}

// SetTarget 设置拖动目标（限制在可活动区域内）
func (s *PhoenixSystem) SetTarget(x, y float64) {
	id, _, ok := findPhoenix(s.em)
	if !ok {
		return
	}
	phoenix, _ := ecs.GetComponent[*components.PhoenixComponent](s.em, id)
	phoenix.TargetX, phoenix.TargetY = s.cfg.ClampPhoenix(x, y)
}

// MoveTarget 按偏移量移动目标（终端客户端的方向键使用）
func (s *PhoenixSystem) MoveTarget(dx, dy float64) {
	id, _, ok := findPhoenix(s.em)
	if !ok {
		return
	}
	phoenix, _ := ecs.GetComponent[*components.PhoenixComponent](s.em, id)
	phoenix.TargetX, phoenix.TargetY = s.cfg.ClampPhoenix(phoenix.TargetX+dx, phoenix.TargetY+dy)
}

// Update 凤凰直接移动到目标位置；攻击状态到期后恢复
func (s *PhoenixSystem) Update(deltaTime float64) {
	id, pos, ok := findPhoenix(s.em)
	if !ok {
		return
	}
	phoenix, _ := ecs.GetComponent[*components.PhoenixComponent](s.em, id)

	pos.X, pos.Y = s.cfg.ClampPhoenix(phoenix.TargetX, phoenix.TargetY)

	if phoenix.IsAttacking {
		phoenix.AttackTimer -= deltaTime
		if phoenix.AttackTimer <= 0 {
			phoenix.AttackTimer = 0
			phoenix.IsAttacking = false
		}
	}
}
