package game

import (
	"fmt"
	"math"

	"github.com/gonewx/phoenix/pkg/config"
)

// 新存档的初始数值
const (
	DefaultLevel     = 1
	DefaultXPToNext  = 100
	DefaultMaxHealth = 100
	DefaultCoins     = 50

	// HealthPerLevel 每升一级增加的生命上限
	HealthPerLevel = 10
)

// PlayerStats 玩家属性
type PlayerStats struct {
	Level     int `json:"level"`
	XP        int `json:"xp"`
	XPToNext  int `json:"xpToNext"`
	Health    int `json:"health"`
	MaxHealth int `json:"maxHealth"`
	Coins     int `json:"coins"`
}

// AttackMove 招式及其拥有/装备状态
type AttackMove struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slot        config.MoveSlot `json:"type"`
	Damage      int             `json:"damage"`
	Cooldown    int             `json:"cooldown"` // 毫秒
	Cost        int             `json:"cost"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	IsOwned     bool            `json:"isOwned"`
	IsEquipped  bool            `json:"isEquipped"`
}

// EquippedMoves 三个槽位当前装备的招式，空槽为 nil
type EquippedMoves struct {
	Hold   *AttackMove `json:"hold"`
	Double *AttackMove `json:"double"`
	Triple *AttackMove `json:"triple"`
}

// WorldProgress 单个世界的进度
type WorldProgress struct {
	WorldID   int     `json:"worldId"`
	Unlocked  bool    `json:"unlocked"`
	Completed bool    `json:"completed"`
	BestTime  float64 `json:"bestTime"` // 秒，0 表示尚无记录
	HighScore int     `json:"highScore"`
}

// Settings 声音开关
type Settings struct {
	SoundEnabled bool `json:"soundEnabled"`
	MusicEnabled bool `json:"musicEnabled"`
}

// PlayerState 持久化的全部玩家进度
//
// 整个结构以一个 JSON 对象保存，字段名与旧版客户端的存档保持一致
type PlayerState struct {
	PlayerStats    PlayerStats     `json:"playerStats"`
	EquippedMoves  EquippedMoves   `json:"equippedMoves"`
	AvailableMoves []AttackMove    `json:"availableMoves"`
	WorldProgress  []WorldProgress `json:"worldProgress"`
	DeathCount     int             `json:"deathCount"`
	CurrentWorld   int             `json:"currentWorld"`
	Settings       Settings        `json:"settings"`

	catalog    *config.MoveCatalog
	worldCount int
}

// NewPlayerState 按招式目录创建默认存档
func NewPlayerState(catalog *config.MoveCatalog, worldCount int) *PlayerState {
	s := &PlayerState{catalog: catalog, worldCount: worldCount}
	s.applyDefaults()
	return s
}

func (s *PlayerState) applyDefaults() {
	s.PlayerStats = PlayerStats{
		Level:     DefaultLevel,
		XP:        0,
		XPToNext:  DefaultXPToNext,
		Health:    DefaultMaxHealth,
		MaxHealth: DefaultMaxHealth,
		Coins:     DefaultCoins,
	}

	s.AvailableMoves = make([]AttackMove, 0, len(s.catalog.Moves))
	for _, def := range s.catalog.Moves {
		m := moveFromDefinition(def)
		m.IsOwned = def.Starter
		m.IsEquipped = def.Starter
		s.AvailableMoves = append(s.AvailableMoves, m)
	}

	s.WorldProgress = make([]WorldProgress, s.worldCount)
	for i := range s.WorldProgress {
		s.WorldProgress[i] = WorldProgress{WorldID: i + 1, Unlocked: i == 0}
	}

	s.DeathCount = 0
	s.CurrentWorld = 1
	s.Settings = Settings{SoundEnabled: true, MusicEnabled: true}
	s.syncEquipped()
}

func moveFromDefinition(def config.MoveDefinition) AttackMove {
	return AttackMove{
		ID:          def.ID,
		Name:        def.Name,
		Slot:        def.Slot,
		Damage:      def.Damage,
		Cooldown:    def.Cooldown,
		Cost:        def.Cost,
		Description: def.Description,
		Color:       def.Color,
	}
}

// XPForLevel 返回从 level 升到下一级所需经验
func XPForLevel(level int) int {
	return int(math.Floor(100 * math.Pow(1.2, float64(level-1))))
}

// UpdatePlayerStats 修改玩家属性，修改后生命值被限制在 [0, MaxHealth]
func (s *PlayerState) UpdatePlayerStats(update func(stats *PlayerStats)) {
	update(&s.PlayerStats)
	s.clampStats()
}

func (s *PlayerState) clampStats() {
	st := &s.PlayerStats
	if st.MaxHealth < 1 {
		st.MaxHealth = 1
	}
	if st.Health < 0 {
		st.Health = 0
	}
	if st.Health > st.MaxHealth {
		st.Health = st.MaxHealth
	}
	if st.Coins < 0 {
		st.Coins = 0
	}
	if st.Level < 1 {
		st.Level = 1
	}
	if st.XPToNext < 1 {
		st.XPToNext = XPForLevel(st.Level)
	}
	if st.XP < 0 {
		st.XP = 0
	}
}

// GainXP 增加经验并处理连续升级，返回本次提升的等级数
// 升级时生命上限 +10 并回满生命
func (s *PlayerState) GainXP(amount int) int {
	if amount <= 0 {
		return 0
	}
	st := &s.PlayerStats
	st.XP += amount

	levels := 0
	for st.XP >= st.XPToNext {
		st.XP -= st.XPToNext
		st.Level++
		st.MaxHealth += HealthPerLevel
		st.XPToNext = XPForLevel(st.Level)
		levels++
	}
	if levels > 0 {
		st.Health = st.MaxHealth
	}
	return levels
}

// GainCoins 增加金币
func (s *PlayerState) GainCoins(amount int) {
	if amount <= 0 {
		return
	}
	s.PlayerStats.Coins += amount
}

// Damage 扣除生命，返回剩余生命
func (s *PlayerState) Damage(amount int) int {
	if amount > 0 {
		s.PlayerStats.Health -= amount
		s.clampStats()
	}
	return s.PlayerStats.Health
}

// Heal 恢复生命，不超过上限
func (s *PlayerState) Heal(amount int) {
	if amount > 0 {
		s.PlayerStats.Health += amount
		s.clampStats()
	}
}

// IsDead 生命是否归零
func (s *PlayerState) IsDead() bool {
	return s.PlayerStats.Health <= 0
}

// RestoreHealth 回满生命（重新开始战斗时调用）
func (s *PlayerState) RestoreHealth() {
	s.PlayerStats.Health = s.PlayerStats.MaxHealth
}

// Move 按 ID 查找招式
func (s *PlayerState) Move(id string) (*AttackMove, bool) {
	for i := range s.AvailableMoves {
		if s.AvailableMoves[i].ID == id {
			return &s.AvailableMoves[i], true
		}
	}
	return nil, false
}

// MovesForSlot 返回指定槽位的全部招式（目录顺序）
func (s *PlayerState) MovesForSlot(slot config.MoveSlot) []*AttackMove {
	result := make([]*AttackMove, 0)
	for i := range s.AvailableMoves {
		if s.AvailableMoves[i].Slot == slot {
			result = append(result, &s.AvailableMoves[i])
		}
	}
	return result
}

// PurchaseMove 购买招式
func (s *PlayerState) PurchaseMove(id string) error {
	m, ok := s.Move(id)
	if !ok {
		return fmt.Errorf("purchase %s: %w", id, ErrUnknownMove)
	}
	if m.IsOwned {
		return fmt.Errorf("purchase %s: %w", id, ErrMoveAlreadyOwned)
	}
	if s.PlayerStats.Coins < m.Cost {
		return fmt.Errorf("purchase %s (cost %d, have %d): %w", id, m.Cost, s.PlayerStats.Coins, ErrInsufficientCoins)
	}
	s.PlayerStats.Coins -= m.Cost
	m.IsOwned = true
	return nil
}

// EquipMove 装备已拥有的招式，同槽位的其它招式被卸下
func (s *PlayerState) EquipMove(id string) error {
	m, ok := s.Move(id)
	if !ok {
		return fmt.Errorf("equip %s: %w", id, ErrUnknownMove)
	}
	if !m.IsOwned {
		return fmt.Errorf("equip %s: %w", id, ErrMoveNotOwned)
	}
	slot := m.Slot
	for i := range s.AvailableMoves {
		if s.AvailableMoves[i].Slot == slot {
			s.AvailableMoves[i].IsEquipped = s.AvailableMoves[i].ID == id
		}
	}
	s.syncEquipped()
	return nil
}

// EquippedMove 返回槽位当前装备的招式
func (s *PlayerState) EquippedMove(slot config.MoveSlot) (*AttackMove, bool) {
	for i := range s.AvailableMoves {
		m := &s.AvailableMoves[i]
		if m.Slot == slot && m.IsEquipped {
			return m, true
		}
	}
	return nil, false
}

// syncEquipped 根据 IsEquipped 标记重建 EquippedMoves
func (s *PlayerState) syncEquipped() {
	s.EquippedMoves = EquippedMoves{}
	for _, slot := range config.AllSlots {
		m, ok := s.EquippedMove(slot)
		if !ok {
			continue
		}
		cp := *m
		switch slot {
		case config.SlotHold:
			s.EquippedMoves.Hold = &cp
		case config.SlotDouble:
			s.EquippedMoves.Double = &cp
		case config.SlotTriple:
			s.EquippedMoves.Triple = &cp
		}
	}
}

// World 返回世界进度
func (s *PlayerState) World(id int) (*WorldProgress, bool) {
	for i := range s.WorldProgress {
		if s.WorldProgress[i].WorldID == id {
			return &s.WorldProgress[i], true
		}
	}
	return nil, false
}

// UnlockWorld 解锁世界
func (s *PlayerState) UnlockWorld(id int) error {
	w, ok := s.World(id)
	if !ok {
		return fmt.Errorf("unlock world %d: %w", id, ErrUnknownWorld)
	}
	w.Unlocked = true
	return nil
}

// CompleteWorld 记录通关：最佳用时取较小值（0 为无记录），最高分取较大值，并解锁下一个世界
func (s *PlayerState) CompleteWorld(id int, seconds float64, score int) error {
	w, ok := s.World(id)
	if !ok {
		return fmt.Errorf("complete world %d: %w", id, ErrUnknownWorld)
	}
	w.Completed = true
	if w.BestTime == 0 || seconds < w.BestTime {
		w.BestTime = seconds
	}
	if score > w.HighScore {
		w.HighScore = score
	}

	if next, ok := s.World(id + 1); ok {
		next.Unlocked = true
	}
	return nil
}

// SetCurrentWorld 切换当前世界，世界必须已解锁
func (s *PlayerState) SetCurrentWorld(id int) error {
	w, ok := s.World(id)
	if !ok {
		return fmt.Errorf("select world %d: %w", id, ErrUnknownWorld)
	}
	if !w.Unlocked {
		return fmt.Errorf("select world %d: %w", id, ErrWorldLocked)
	}
	s.CurrentWorld = id
	return nil
}

// OnPlayerDeath 记录一次死亡
func (s *PlayerState) OnPlayerDeath() {
	s.DeathCount++
}

// UpdateSettings 修改声音设置
func (s *PlayerState) UpdateSettings(update func(settings *Settings)) {
	update(&s.Settings)
}

// ResetProgress 恢复为全新存档（包括设置）
func (s *PlayerState) ResetProgress() {
	s.applyDefaults()
}

// reconcile 将读入的存档与当前招式目录和世界数对齐
//
// 目录中的静态字段（名称、伤害、冷却、价格）以目录为准，只保留存档中的拥有/装备标记；
// 初始招式始终拥有；每个槽位恰好装备一个已拥有的招式。
func (s *PlayerState) reconcile(saved *PlayerState) {
	s.PlayerStats = saved.PlayerStats
	s.DeathCount = saved.DeathCount
	s.Settings = saved.Settings
	if s.DeathCount < 0 {
		s.DeathCount = 0
	}

	savedMoves := make(map[string]AttackMove, len(saved.AvailableMoves))
	for _, m := range saved.AvailableMoves {
		savedMoves[m.ID] = m
	}
	// 旧存档只记录了 equippedMoves 而未标记 isEquipped 时以其为准
	equippedIDs := make(map[config.MoveSlot]string)
	for slot, m := range map[config.MoveSlot]*AttackMove{
		config.SlotHold:   saved.EquippedMoves.Hold,
		config.SlotDouble: saved.EquippedMoves.Double,
		config.SlotTriple: saved.EquippedMoves.Triple,
	} {
		if m != nil {
			equippedIDs[slot] = m.ID
		}
	}

	equipped := make(map[config.MoveSlot]bool)
	for i, def := range s.catalog.Moves {
		m := moveFromDefinition(def)
		prev, ok := savedMoves[def.ID]
		m.IsOwned = def.Starter || (ok && prev.IsOwned)
		wantEquipped := (ok && prev.IsEquipped) || equippedIDs[def.Slot] == def.ID
		if m.IsOwned && wantEquipped && !equipped[def.Slot] {
			m.IsEquipped = true
			equipped[def.Slot] = true
		}
		s.AvailableMoves[i] = m
	}
	for i, def := range s.catalog.Moves {
		if def.Starter && !equipped[def.Slot] {
			s.AvailableMoves[i].IsEquipped = true
			equipped[def.Slot] = true
		}
	}
	s.syncEquipped()

	for _, w := range saved.WorldProgress {
		cur, ok := s.World(w.WorldID)
		if !ok {
			continue
		}
		cur.Unlocked = cur.Unlocked || w.Unlocked
		cur.Completed = w.Completed
		if w.BestTime > 0 {
			cur.BestTime = w.BestTime
		}
		if w.HighScore > 0 {
			cur.HighScore = w.HighScore
		}
	}

	s.CurrentWorld = 1
	if w, ok := s.World(saved.CurrentWorld); ok && w.Unlocked {
		s.CurrentWorld = saved.CurrentWorld
	}
	s.clampStats()
}
