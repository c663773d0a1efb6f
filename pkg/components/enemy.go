package components

import (
	"image/color"

	"github.com/gonewx/phoenix/pkg/config"
)

// EnemyComponent 普通敌人
type EnemyComponent struct {
	Name        string
	Pattern     config.AttackPattern
	Damage      int     // 接触伤害和子弹伤害
	Speed       float64 // 移动速度（像素/秒）
	Coins       int     // 击杀奖励金币
	XP          int     // 击杀奖励经验
	AttackTimer float64 // 距离下次攻击的时间（秒）
	Color       color.RGBA
}
