package config

import "fmt"

// Bundle 一局游戏需要的全部静态数据
type Bundle struct {
	Gameplay     *GameplayConfig
	Moves        *MoveCatalog
	Worlds       *WorldsConfig
	Enemies      *EnemiesConfig
	BossPatterns map[int]BossPatternSet
}

// LoadBundle 加载全部配置文件
// embedded 包必须已初始化
func LoadBundle() (*Bundle, error) {
	gameplay, err := LoadGameplayConfig(GameplayConfigPath)
	if err != nil {
		return nil, err
	}
	moves, err := LoadMoveCatalog(MoveCatalogPath)
	if err != nil {
		return nil, err
	}
	worlds, err := LoadWorlds(WorldsConfigPath)
	if err != nil {
		return nil, err
	}
	enemies, err := LoadEnemyArchetypes(EnemiesConfigPath)
	if err != nil {
		return nil, err
	}
	patterns, err := LoadBossPatterns(worlds)
	if err != nil {
		return nil, fmt.Errorf("failed to load boss patterns: %w", err)
	}

	return &Bundle{
		Gameplay:     gameplay,
		Moves:        moves,
		Worlds:       worlds,
		Enemies:      enemies,
		BossPatterns: patterns,
	}, nil
}
