package components

import (
	"image/color"

	"github.com/tsujio/go-bulletml"
)

// BossComponent 世界首领
type BossComponent struct {
	Name    string
	WorldID int
	Damage  int // 接触伤害和弹幕伤害
	Color   color.RGBA

	// Phase 当前阶段（1..3），由剩余生命比例决定
	Phase int

	// 水平摆动
	SwayTime float64
	CenterX  float64

	// Runner 当前阶段的 BulletML 运行器，阶段切换时重建
	Runner         bulletml.Runner
	PatternStarted bool

	// HitFlash 受击闪烁剩余时间（秒）
	HitFlash float64
}
