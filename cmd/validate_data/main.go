// validate_data 校验 data/ 目录中的全部配置，并打印每个世界的敌人数值
//
// 用法：
//
//	go run ./cmd/validate_data -data .
//	go run ./cmd/validate_data -cues
package main

import (
	"crypto/md5"
	"flag"
	"fmt"
	"os"

	"github.com/gonewx/phoenix/internal/audio"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/embedded"
	"github.com/gonewx/phoenix/pkg/game"
)

var (
	dataDir = flag.String("data", ".", "包含 data/ 目录的路径")
	cues    = flag.Bool("cues", false, "同时合成全部音效并输出大小和校验和")
)

func main() {
	flag.Parse()
	embedded.Init(os.DirFS(*dataDir))

	bundle, err := config.LoadBundle()
	if err != nil {
		fmt.Printf("❌ 配置校验失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 配置加载成功\n")

	for _, slot := range config.AllSlots {
		fmt.Printf("✅ 槽位 %-6s 招式数量: %d\n", slot, len(bundle.Moves.BySlot(slot)))
	}

	fmt.Printf("✅ 世界数量: %d\n", len(bundle.Worlds.Worlds))
	for _, w := range bundle.Worlds.Worlds {
		fmt.Printf("  %2d. %-20s 首领 %-18s HP %5d  出怪间隔 %4.0fms  同屏上限 %d\n",
			w.ID, w.Name, w.Boss.Name, w.Boss.Health,
			bundle.Gameplay.EnemySpawnInterval(w.ID)*1000, bundle.Gameplay.MaxEnemies(w.ID))
		for _, a := range bundle.Enemies.Enemies {
			s := bundle.Enemies.StatsForWorld(a, w.ID)
			fmt.Printf("      %-16s %-7s HP %4d  DMG %3d  SPD %5.1f  $%d  XP %d\n",
				s.Name, s.Pattern, s.Health, s.Damage, s.Speed, s.Coins, s.XP)
		}
		if _, ok := bundle.BossPatterns[w.ID]; !ok {
			fmt.Printf("❌ 世界 %d 缺少首领弹幕\n", w.ID)
			os.Exit(1)
		}
	}

	if !*cues {
		return
	}
	for _, c := range audio.AllCues {
		pcm, err := audio.RenderCue(c, game.AudioSampleRate)
		if err != nil {
			fmt.Printf("❌ 音效 %s 合成失败: %v\n", c, err)
			os.Exit(1)
		}
		fmt.Printf("✅ 音效 %-14s %7d bytes  MD5 %x\n", c, len(pcm), md5.Sum(pcm))
	}
}
