package config

import (
	"fmt"
	"math"

	"github.com/gonewx/phoenix/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// GameplayConfigPath 战斗参数配置文件路径
const GameplayConfigPath = "data/gameplay.yaml"

// ScreenConfig 逻辑屏幕尺寸
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhoenixConfig 凤凰移动参数
type PhoenixConfig struct {
	Radius  float64 `yaml:"radius"`
	MarginX float64 `yaml:"marginX"` // x 被限制在 [marginX, width-marginX]
	MarginY float64 `yaml:"marginY"` // y 被限制在 [marginY, height-marginY]
	StartY  float64 `yaml:"startY"`  // 初始 y（屏幕高度比例）
}

// CollisionConfig 碰撞半径
type CollisionConfig struct {
	PhoenixContact      float64 `yaml:"phoenixContact"`
	ProjectileVsEnemy   float64 `yaml:"projectileVsEnemy"`
	ProjectileVsPhoenix float64 `yaml:"projectileVsPhoenix"`
	PushBack            float64 `yaml:"pushBack"`
}

// SpawnConfig 生成计时参数（秒）
type SpawnConfig struct {
	EnemyBaseInterval   float64 `yaml:"enemyBaseInterval"`
	EnemyIntervalStep   float64 `yaml:"enemyIntervalStep"`
	EnemyMinInterval    float64 `yaml:"enemyMinInterval"`
	MaxEnemiesBase      int     `yaml:"maxEnemiesBase"`
	MaxEnemiesCap       int     `yaml:"maxEnemiesCap"`
	EnvironmentInterval float64 `yaml:"environmentInterval"`
	BossTime            float64 `yaml:"bossTime"`
}

// EnemyAttackConfig 敌人攻击节奏
type EnemyAttackConfig struct {
	DirectInterval  float64 `yaml:"directInterval"`
	ChaseInterval   float64 `yaml:"chaseInterval"`
	RangedInterval  float64 `yaml:"rangedInterval"`
	ProjectileSpeed float64 `yaml:"projectileSpeed"`
	ProjectileLife  float64 `yaml:"projectileLife"`
}

// BoundsConfig 出界移除的边距
type BoundsConfig struct {
	EnemyMargin       float64 `yaml:"enemyMargin"`
	ProjectileMargin  float64 `yaml:"projectileMargin"`
	EnvironmentMargin float64 `yaml:"environmentMargin"`
}

// AttackConfig 凤凰攻击参数
type AttackConfig struct {
	HoldDuration     float64 `yaml:"holdDuration"`
	DoubleDuration   float64 `yaml:"doubleDuration"`
	TripleDuration   float64 `yaml:"tripleDuration"`
	DartSpeed        float64 `yaml:"dartSpeed"`
	FanSpeed         float64 `yaml:"fanSpeed"`
	FanCount         int     `yaml:"fanCount"`
	FanSpreadDegrees float64 `yaml:"fanSpreadDegrees"`
	BeamWidth        float64 `yaml:"beamWidth"`
	ProjectileLife   float64 `yaml:"projectileLife"`
}

// GestureConfig 手势识别时间窗口（秒）
type GestureConfig struct {
	HoldDelay float64 `yaml:"holdDelay"`
	TapWindow float64 `yaml:"tapWindow"`
}

// RewardConfig 奖励参数
type RewardConfig struct {
	KillHeal           int `yaml:"killHeal"`
	BossXPPerHealth    int `yaml:"bossXPPerHealth"`
	BossCoinsPerHealth int `yaml:"bossCoinsPerHealth"`
	ScorePerXP         int `yaml:"scorePerXP"`
}

// BossConfig 首领行为参数
type BossConfig struct {
	SpawnY        float64 `yaml:"spawnY"`        // 出生位置（屏幕高度比例）
	HitFlash      float64 `yaml:"hitFlash"`      // 受击闪烁时长（秒）
	SwaySpeed     float64 `yaml:"swaySpeed"`     // 摆动角速度（弧度/秒）
	SwayAmplitude float64 `yaml:"swayAmplitude"` // 摆动幅度（屏幕宽度比例）
	Phase2Ratio   float64 `yaml:"phase2Ratio"`
	Phase3Ratio   float64 `yaml:"phase3Ratio"`
	TickRate      float64 `yaml:"tickRate"`
	BulletRadius  float64 `yaml:"bulletRadius"`
}

// EnvironmentConfig 背景漂浮物参数
type EnvironmentConfig struct {
	DriftX     float64 `yaml:"driftX"`
	MinSpeed   float64 `yaml:"minSpeed"`
	MaxSpeed   float64 `yaml:"maxSpeed"`
	MinSize    float64 `yaml:"minSize"`
	MaxSize    float64 `yaml:"maxSize"`
	MinOpacity float64 `yaml:"minOpacity"`
	MaxOpacity float64 `yaml:"maxOpacity"`
}

// BurstConfig 一次粒子爆发的参数
type BurstConfig struct {
	Count     int      `yaml:"count"`
	Speed     float64  `yaml:"speed"` // 最大速度（像素/秒）
	Life      float64  `yaml:"life"`
	Size      float64  `yaml:"size"`
	SizeRange float64  `yaml:"sizeRange"`
	Colors    []string `yaml:"colors"`
}

// ParticleConfig 粒子爆发参数
type ParticleConfig struct {
	Death BurstConfig `yaml:"death"` // 敌人死亡
	Hit   BurstConfig `yaml:"hit"`   // 子弹命中
}

// GameplayConfig 战斗参数总配置
type GameplayConfig struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Phoenix     PhoenixConfig     `yaml:"phoenix"`
	Collision   CollisionConfig   `yaml:"collision"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	EnemyAttack EnemyAttackConfig `yaml:"enemyAttack"`
	Bounds      BoundsConfig      `yaml:"bounds"`
	Attack      AttackConfig      `yaml:"attack"`
	Gesture     GestureConfig     `yaml:"gesture"`
	Rewards     RewardConfig      `yaml:"rewards"`
	Boss        BossConfig        `yaml:"boss"`
	Environment EnvironmentConfig `yaml:"environment"`
	Particles   ParticleConfig    `yaml:"particles"`
}

// LoadGameplayConfig 从 YAML 文件加载战斗参数
func LoadGameplayConfig(filepath string) (*GameplayConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config %s: %w", filepath, err)
	}
	return ParseGameplayConfig(data)
}

// ParseGameplayConfig 解析并校验战斗参数
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	var cfg GameplayConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay YAML: %w", err)
	}
	if err := validateGameplayConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}
	return &cfg, nil
}

func validateGameplayConfig(cfg *GameplayConfig) error {
	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %.0fx%.0f", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Phoenix.MarginX*2 >= cfg.Screen.Width || cfg.Phoenix.MarginY*2 >= cfg.Screen.Height {
		return fmt.Errorf("phoenix margins (%.0f, %.0f) leave no play area", cfg.Phoenix.MarginX, cfg.Phoenix.MarginY)
	}
	if cfg.Collision.PhoenixContact <= 0 || cfg.Collision.ProjectileVsEnemy <= 0 || cfg.Collision.ProjectileVsPhoenix <= 0 {
		return fmt.Errorf("collision radii must be positive")
	}
	if cfg.Spawn.EnemyMinInterval <= 0 || cfg.Spawn.EnemyBaseInterval < cfg.Spawn.EnemyMinInterval {
		return fmt.Errorf("enemy spawn interval: base %.2f must be >= min %.2f > 0",
			cfg.Spawn.EnemyBaseInterval, cfg.Spawn.EnemyMinInterval)
	}
	if cfg.Spawn.MaxEnemiesBase < 1 || cfg.Spawn.MaxEnemiesCap < cfg.Spawn.MaxEnemiesBase {
		return fmt.Errorf("max enemies: base %d must be >= 1 and <= cap %d", cfg.Spawn.MaxEnemiesBase, cfg.Spawn.MaxEnemiesCap)
	}
	if cfg.Spawn.EnvironmentInterval <= 0 || cfg.Spawn.BossTime <= 0 {
		return fmt.Errorf("environment interval and boss time must be positive")
	}
	if cfg.EnemyAttack.DirectInterval <= 0 || cfg.EnemyAttack.ChaseInterval <= 0 || cfg.EnemyAttack.RangedInterval <= 0 {
		return fmt.Errorf("enemy attack intervals must be positive")
	}
	if cfg.Attack.FanCount < 1 {
		return fmt.Errorf("attack fanCount must be at least 1, got %d", cfg.Attack.FanCount)
	}
	if cfg.Attack.HoldDuration <= 0 || cfg.Attack.DoubleDuration <= 0 || cfg.Attack.TripleDuration <= 0 {
		return fmt.Errorf("attack durations must be positive")
	}
	if cfg.Gesture.HoldDelay <= 0 || cfg.Gesture.TapWindow <= 0 {
		return fmt.Errorf("gesture timings must be positive")
	}
	if cfg.Boss.Phase3Ratio <= 0 || cfg.Boss.Phase2Ratio <= cfg.Boss.Phase3Ratio || cfg.Boss.Phase2Ratio >= 1 {
		return fmt.Errorf("boss phase ratios must satisfy 0 < phase3 (%.2f) < phase2 (%.2f) < 1",
			cfg.Boss.Phase3Ratio, cfg.Boss.Phase2Ratio)
	}
	if cfg.Boss.TickRate <= 0 {
		return fmt.Errorf("boss tickRate must be positive, got %.2f", cfg.Boss.TickRate)
	}
	for name, b := range map[string]BurstConfig{"death": cfg.Particles.Death, "hit": cfg.Particles.Hit} {
		if b.Count < 0 || b.Life <= 0 || len(b.Colors) == 0 {
			return fmt.Errorf("particles %s: count >= 0, life > 0 and at least one color required", name)
		}
		for _, c := range b.Colors {
			if _, err := ParseHexColor(c); err != nil {
				return fmt.Errorf("particles %s: %w", name, err)
			}
		}
	}
	if cfg.Environment.MinSize > cfg.Environment.MaxSize || cfg.Environment.MinSpeed > cfg.Environment.MaxSpeed {
		return fmt.Errorf("environment ranges are inverted")
	}
	return nil
}

// EnemySpawnInterval 返回指定世界的敌人生成间隔（秒）
// max(min, base - world*step)
func (c *GameplayConfig) EnemySpawnInterval(world int) float64 {
	return math.Max(c.Spawn.EnemyMinInterval, c.Spawn.EnemyBaseInterval-float64(world)*c.Spawn.EnemyIntervalStep)
}

// MaxEnemies 返回指定世界同屏敌人上限
// min(cap, base + world)
func (c *GameplayConfig) MaxEnemies(world int) int {
	n := c.Spawn.MaxEnemiesBase + world
	if n > c.Spawn.MaxEnemiesCap {
		return c.Spawn.MaxEnemiesCap
	}
	return n
}

// AttackDuration 返回招式槽位对应的攻击状态持续时间
func (c *GameplayConfig) AttackDuration(slot MoveSlot) float64 {
	switch slot {
	case SlotHold:
		return c.Attack.HoldDuration
	case SlotDouble:
		return c.Attack.DoubleDuration
	case SlotTriple:
		return c.Attack.TripleDuration
	}
	return 0
}

// EnemyAttackInterval 返回攻击模式对应的攻击间隔
func (c *GameplayConfig) EnemyAttackInterval(pattern AttackPattern) float64 {
	switch pattern {
	case PatternChase:
		return c.EnemyAttack.ChaseInterval
	case PatternRanged:
		return c.EnemyAttack.RangedInterval
	default:
		return c.EnemyAttack.DirectInterval
	}
}

// ClampPhoenix 将坐标限制在凤凰可活动区域内
func (c *GameplayConfig) ClampPhoenix(x, y float64) (float64, float64) {
	minX, maxX := c.Phoenix.MarginX, c.Screen.Width-c.Phoenix.MarginX
	minY, maxY := c.Phoenix.MarginY, c.Screen.Height-c.Phoenix.MarginY
	return math.Min(math.Max(x, minX), maxX), math.Min(math.Max(y, minY), maxY)
}
