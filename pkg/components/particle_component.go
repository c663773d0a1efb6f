package components

import "image/color"

// ParticleComponent 爆炸/命中粒子的视觉属性
// 运动由 VelocityComponent 驱动，寿命由 LifetimeComponent 管理
type ParticleComponent struct {
	Color color.RGBA
	Size  float64 // 半径（像素）
}
