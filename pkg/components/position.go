package components

// PositionComponent 实体中心的屏幕坐标
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 实体速度（像素/秒）
// 由 MovementSystem 每帧积分到 PositionComponent
type VelocityComponent struct {
	VX float64
	VY float64
}
