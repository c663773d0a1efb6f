package systems

import (
	"image/color"

	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/ecs"
	"github.com/gonewx/phoenix/pkg/entities"
)

// enemyProjectileColor 敌方火球颜色
var enemyProjectileColor = color.RGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}

// enemyProjectileSize 敌方火球半径
const enemyProjectileSize = 6.0

// EnemyAISystem 敌人移动决策和攻击节奏
//
// 移动模式：
//   - chase: 朝凤凰当前位置移动
//   - direct / ranged: 直线下落
//
// 每个敌人按模式对应的间隔攻击一次，ranged 发射瞄准凤凰的火球
type EnemyAISystem struct {
	em  *ecs.EntityManager
	cfg *config.GameplayConfig
}

// NewEnemyAISystem 创建敌人 AI 系统
func NewEnemyAISystem(em *ecs.EntityManager, cfg *config.GameplayConfig) *EnemyAISystem {
	return &EnemyAISystem{em: em, cfg: cfg}
}

// Update 设置敌人速度并处理攻击计时
func (s *EnemyAISystem) Update(deltaTime float64) {
	_, phoenixPos, hasPhoenix := findPhoenix(s.em)

	ids := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.VelocityComponent](s.em)
	for _, id := range ids {
		if s.em.IsMarkedForDestruction(id) {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		vel.VX, vel.VY = 0, enemy.Speed
		if enemy.Pattern == config.PatternChase && hasPhoenix {
			if vx, vy, ok := aimVelocity(pos.X, pos.Y, phoenixPos.X, phoenixPos.Y, enemy.Speed); ok {
				vel.VX, vel.VY = vx, vy
			} else {
				vel.VX, vel.VY = 0, 0
			}
		}

		enemy.AttackTimer -= deltaTime
		if enemy.AttackTimer > 0 {
			continue
		}
		enemy.AttackTimer = s.cfg.EnemyAttackInterval(enemy.Pattern)

		if enemy.Pattern == config.PatternRanged && hasPhoenix {
			s.fireAt(pos, phoenixPos, enemy.Damage)
		}
	}
}

// fireAt 从敌人位置向凤凰发射火球
func (s *EnemyAISystem) fireAt(from, to *components.PositionComponent, damage int) {
	vx, vy, ok := aimVelocity(from.X, from.Y, to.X, to.Y, s.cfg.EnemyAttack.ProjectileSpeed)
	if !ok {
		return
	}
	entities.NewProjectile(s.em, components.OwnerEnemy, entities.ProjectileSpec{
		X:        from.X,
		Y:        from.Y,
		VX:       vx,
		VY:       vy,
		Damage:   damage,
		Color:    enemyProjectileColor,
		Size:     enemyProjectileSize,
		Lifetime: s.cfg.EnemyAttack.ProjectileLife,
	})
}
