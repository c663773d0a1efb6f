package config

import (
	"fmt"
	"math"

	"github.com/gonewx/phoenix/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// EnemiesConfigPath 敌人原型配置文件路径
const EnemiesConfigPath = "data/enemies.yaml"

// AttackPattern 敌人行为模式
type AttackPattern string

const (
	PatternDirect AttackPattern = "direct" // 直线下落
	PatternChase  AttackPattern = "chase"  // 追踪凤凰
	PatternRanged AttackPattern = "ranged" // 下落并发射子弹
)

// EnemyArchetype 单个敌人原型
type EnemyArchetype struct {
	Name          string        `yaml:"name"`
	Pattern       AttackPattern `yaml:"pattern"`
	BaseHealth    int           `yaml:"baseHealth"`
	BaseDamage    int           `yaml:"baseDamage"`
	BaseSpeed     float64       `yaml:"baseSpeed"`
	SpeedPerWorld float64       `yaml:"speedPerWorld"`
	BaseCoins     int           `yaml:"baseCoins"`
	BaseXP        int           `yaml:"baseXP"`
	Radius        float64       `yaml:"radius"`
	Color         string        `yaml:"color"`
}

// EnemiesConfig 敌人原型配置文件结构
type EnemiesConfig struct {
	HealthScalePerWorld float64          `yaml:"healthScalePerWorld"`
	Enemies             []EnemyArchetype `yaml:"enemies"`
}

// EnemyStats 按世界缩放后的敌人属性
type EnemyStats struct {
	Name    string
	Pattern AttackPattern
	Health  int
	Damage  int
	Speed   float64
	Coins   int
	XP      int
	Radius  float64
	Color   string
}

// LoadEnemyArchetypes 从 YAML 文件加载敌人原型
func LoadEnemyArchetypes(filepath string) (*EnemiesConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemies config %s: %w", filepath, err)
	}
	return ParseEnemyArchetypes(data)
}

// ParseEnemyArchetypes 解析并校验敌人原型
func ParseEnemyArchetypes(data []byte) (*EnemiesConfig, error) {
	var cfg EnemiesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse enemies YAML: %w", err)
	}
	if err := validateEnemyArchetypes(&cfg); err != nil {
		return nil, fmt.Errorf("invalid enemies config: %w", err)
	}
	return &cfg, nil
}

func validateEnemyArchetypes(cfg *EnemiesConfig) error {
	if len(cfg.Enemies) == 0 {
		return fmt.Errorf("at least one enemy archetype is required")
	}
	if cfg.HealthScalePerWorld < 0 {
		return fmt.Errorf("healthScalePerWorld cannot be negative, got %.2f", cfg.HealthScalePerWorld)
	}

	for _, e := range cfg.Enemies {
		switch e.Pattern {
		case PatternDirect, PatternChase, PatternRanged:
		default:
			return fmt.Errorf("enemy %s: unknown pattern %q", e.Name, e.Pattern)
		}
		if e.BaseHealth <= 0 {
			return fmt.Errorf("enemy %s: baseHealth must be positive, got %d", e.Name, e.BaseHealth)
		}
		if e.BaseDamage < 0 || e.BaseCoins < 0 || e.BaseXP < 0 {
			return fmt.Errorf("enemy %s: damage, coins and xp cannot be negative", e.Name)
		}
		if e.BaseSpeed < 0 || e.Radius <= 0 {
			return fmt.Errorf("enemy %s: speed cannot be negative and radius must be positive", e.Name)
		}
	}
	return nil
}

// StatsForWorld 计算指定原型在第 world 个世界的属性
func (c *EnemiesConfig) StatsForWorld(a EnemyArchetype, world int) EnemyStats {
	mult := 1 + float64(world-1)*c.HealthScalePerWorld
	return EnemyStats{
		Name:    a.Name,
		Pattern: a.Pattern,
		Health:  int(math.Floor(float64(a.BaseHealth) * mult)),
		Damage:  int(math.Floor(float64(a.BaseDamage) * mult)),
		Speed:   a.BaseSpeed + float64(world)*a.SpeedPerWorld,
		Coins:   a.BaseCoins + world,
		XP:      a.BaseXP + world,
		Radius:  a.Radius,
		Color:   a.Color,
	}
}
