package components

import "github.com/gonewx/phoenix/pkg/config"

// PhoenixComponent 玩家控制的凤凰
type PhoenixComponent struct {
	// 指针拖动目标位置，凤凰每帧移动到该位置（已限制在可活动区域内）
	TargetX float64
	TargetY float64

	IsAttacking bool
	AttackSlot  config.MoveSlot
	AttackTimer float64 // 攻击状态剩余时间（秒）
}
