package config

import (
	"fmt"

	"github.com/gonewx/phoenix/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// MoveCatalogPath 招式目录配置文件路径
const MoveCatalogPath = "data/moves.yaml"

// MoveSlot 攻击槽位，由手势决定
type MoveSlot string

const (
	SlotHold   MoveSlot = "hold"   // 长按
	SlotDouble MoveSlot = "double" // 双击
	SlotTriple MoveSlot = "triple" // 三击
)

// AllSlots 按界面显示顺序排列的全部槽位
var AllSlots = []MoveSlot{SlotHold, SlotDouble, SlotTriple}

// Valid 判断槽位是否合法
func (s MoveSlot) Valid() bool {
	switch s {
	case SlotHold, SlotDouble, SlotTriple:
		return true
	}
	return false
}

// MoveDefinition 招式静态定义
type MoveDefinition struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Slot        MoveSlot `yaml:"slot"`
	Damage      int      `yaml:"damage"`
	Cooldown    int      `yaml:"cooldown"` // 毫秒
	Cost        int      `yaml:"cost"`
	Description string   `yaml:"description"`
	Color       string   `yaml:"color"`
	Starter     bool     `yaml:"starter"` // 初始拥有并装备
}

// CooldownSeconds 返回以秒为单位的冷却时间
func (m MoveDefinition) CooldownSeconds() float64 {
	return float64(m.Cooldown) / 1000
}

// MoveCatalog 招式目录
type MoveCatalog struct {
	Moves []MoveDefinition `yaml:"moves"`
}

// LoadMoveCatalog 从 YAML 文件加载招式目录
func LoadMoveCatalog(filepath string) (*MoveCatalog, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read move catalog %s: %w", filepath, err)
	}
	return ParseMoveCatalog(data)
}

// ParseMoveCatalog 解析并校验招式目录
func ParseMoveCatalog(data []byte) (*MoveCatalog, error) {
	var catalog MoveCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse move catalog YAML: %w", err)
	}
	if err := validateMoveCatalog(&catalog); err != nil {
		return nil, fmt.Errorf("invalid move catalog: %w", err)
	}
	return &catalog, nil
}

// validateMoveCatalog 校验 ID 唯一、槽位合法，并且每个槽位恰好一个初始招式
func validateMoveCatalog(catalog *MoveCatalog) error {
	if len(catalog.Moves) == 0 {
		return fmt.Errorf("at least one move is required")
	}

	seen := make(map[string]bool, len(catalog.Moves))
	starters := make(map[MoveSlot]int)
	for i, m := range catalog.Moves {
		if m.ID == "" {
			return fmt.Errorf("move #%d: id is required", i)
		}
		if seen[m.ID] {
			return fmt.Errorf("move %s: duplicate id", m.ID)
		}
		seen[m.ID] = true

		if !m.Slot.Valid() {
			return fmt.Errorf("move %s: unknown slot %q", m.ID, m.Slot)
		}
		if m.Damage <= 0 {
			return fmt.Errorf("move %s: damage must be positive, got %d", m.ID, m.Damage)
		}
		if m.Cooldown < 0 || m.Cost < 0 {
			return fmt.Errorf("move %s: cooldown and cost cannot be negative", m.ID)
		}
		if m.Starter {
			starters[m.Slot]++
		}
	}

	for _, slot := range AllSlots {
		if starters[slot] != 1 {
			return fmt.Errorf("slot %s: exactly one starter move required, got %d", slot, starters[slot])
		}
	}
	return nil
}

// Get 按 ID 查找招式
func (c *MoveCatalog) Get(id string) (*MoveDefinition, bool) {
	for i := range c.Moves {
		if c.Moves[i].ID == id {
			return &c.Moves[i], true
		}
	}
	return nil, false
}

// BySlot 返回指定槽位的全部招式（保持目录顺序）
func (c *MoveCatalog) BySlot(slot MoveSlot) []MoveDefinition {
	result := make([]MoveDefinition, 0)
	for _, m := range c.Moves {
		if m.Slot == slot {
			result = append(result, m)
		}
	}
	return result
}
