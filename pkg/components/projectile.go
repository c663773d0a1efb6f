package components

import (
	"image/color"

	"github.com/tsujio/go-bulletml"
)

// ProjectileOwner 子弹归属
type ProjectileOwner int

const (
	OwnerPhoenix ProjectileOwner = iota
	OwnerEnemy
)

// ProjectileComponent 子弹
type ProjectileComponent struct {
	Owner  ProjectileOwner
	Damage int
	Color  color.RGBA
	Size   float64

	// Bullet 非空时位置由 BulletML 运行器驱动，不使用 VelocityComponent
	Bullet bulletml.BulletRunner
}

// BeamComponent 长按招式产生的竖直光束（仅视觉，伤害在发射时结算）
type BeamComponent struct {
	Width float64
	Color color.RGBA
}
