package components

// HealthComponent 存储实体的生命值信息
// 用于敌人、首领等可被攻击的实体（凤凰的生命值保存在玩家状态中）
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}

// Ratio 返回当前生命值比例 [0,1]
func (h *HealthComponent) Ratio() float64 {
	if h.MaxHealth <= 0 {
		return 0
	}
	r := float64(h.CurrentHealth) / float64(h.MaxHealth)
	if r < 0 {
		return 0
	}
	return r
}

// TakeDamage 扣除生命值（不低于 0），返回是否死亡
func (h *HealthComponent) TakeDamage(amount int) bool {
	h.CurrentHealth -= amount
	if h.CurrentHealth < 0 {
		h.CurrentHealth = 0
	}
	return h.CurrentHealth == 0
}
