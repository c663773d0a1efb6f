package config

import (
	"fmt"

	"github.com/gonewx/phoenix/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// WorldsConfigPath 世界配置文件路径
const WorldsConfigPath = "data/worlds.yaml"

// WorldCount 世界总数
const WorldCount = 10

// BossDefinition 首领静态定义
type BossDefinition struct {
	Name     string   `yaml:"name"`
	Health   int      `yaml:"health"`
	Damage   int      `yaml:"damage"`
	Radius   float64  `yaml:"radius"`
	Attacks  []string `yaml:"attacks"`
	Patterns []string `yaml:"patterns"` // 阶段 1/2/3 的 BulletML 文件
}

// WorldDefinition 世界静态定义
type WorldDefinition struct {
	ID          int            `yaml:"id"`
	Name        string         `yaml:"name"`
	Theme       string         `yaml:"theme"`
	Color       string         `yaml:"color"`
	Description string         `yaml:"description"`
	Boss        BossDefinition `yaml:"boss"`
}

// WorldsConfig 世界配置文件结构
type WorldsConfig struct {
	Worlds []WorldDefinition `yaml:"worlds"`
}

// LoadWorlds 从 YAML 文件加载世界配置
func LoadWorlds(filepath string) (*WorldsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read worlds config %s: %w", filepath, err)
	}
	return ParseWorlds(data)
}

// ParseWorlds 解析并校验世界配置
func ParseWorlds(data []byte) (*WorldsConfig, error) {
	var cfg WorldsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse worlds YAML: %w", err)
	}
	if err := validateWorlds(&cfg); err != nil {
		return nil, fmt.Errorf("invalid worlds config: %w", err)
	}
	return &cfg, nil
}

// validateWorlds 世界 ID 必须为 1..N 连续排列
func validateWorlds(cfg *WorldsConfig) error {
	if len(cfg.Worlds) == 0 {
		return fmt.Errorf("at least one world is required")
	}
	for i, w := range cfg.Worlds {
		if w.ID != i+1 {
			return fmt.Errorf("world #%d: expected id %d, got %d", i, i+1, w.ID)
		}
		if w.Name == "" {
			return fmt.Errorf("world %d: name is required", w.ID)
		}
		if _, err := ParseHexColor(w.Color); err != nil {
			return fmt.Errorf("world %d: %w", w.ID, err)
		}
		if w.Boss.Health <= 0 || w.Boss.Damage <= 0 {
			return fmt.Errorf("world %d: boss health and damage must be positive", w.ID)
		}
		if w.Boss.Radius <= 0 {
			return fmt.Errorf("world %d: boss radius must be positive", w.ID)
		}
		if len(w.Boss.Patterns) != 3 {
			return fmt.Errorf("world %d: boss needs 3 phase patterns, got %d", w.ID, len(w.Boss.Patterns))
		}
	}
	return nil
}

// Get 按 ID 获取世界定义
func (c *WorldsConfig) Get(id int) (*WorldDefinition, bool) {
	if id < 1 || id > len(c.Worlds) {
		return nil, false
	}
	return &c.Worlds[id-1], true
}
