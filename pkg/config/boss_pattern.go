package config

import (
	"fmt"

	"github.com/gonewx/phoenix/pkg/embedded"
	"github.com/tsujio/go-bulletml"
)

// LoadBossPattern 加载 BulletML 弹幕文件
// 同一文件会被多个首领复用，调用方负责缓存
func LoadBossPattern(filepath string) (*bulletml.BulletML, error) {
	f, err := embedded.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open boss pattern %s: %w", filepath, err)
	}
	defer f.Close()

	bml, err := bulletml.Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse boss pattern %s: %w", filepath, err)
	}
	return bml, nil
}

// BossPatternSet 首领三个阶段的弹幕
type BossPatternSet [3]*bulletml.BulletML

// LoadBossPatterns 加载所有世界首领用到的弹幕文件
// 返回 世界ID -> 阶段弹幕
func LoadBossPatterns(worlds *WorldsConfig) (map[int]BossPatternSet, error) {
	cache := make(map[string]*bulletml.BulletML)
	result := make(map[int]BossPatternSet, len(worlds.Worlds))

	for _, w := range worlds.Worlds {
		var set BossPatternSet
		for phase, path := range w.Boss.Patterns {
			bml, ok := cache[path]
			if !ok {
				var err error
				bml, err = LoadBossPattern(path)
				if err != nil {
					return nil, fmt.Errorf("world %d phase %d: %w", w.ID, phase+1, err)
				}
				cache[path] = bml
			}
			set[phase] = bml
		}
		result[w.ID] = set
	}
	return result, nil
}
