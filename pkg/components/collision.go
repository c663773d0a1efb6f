package components

// CollisionComponent 定义实体的圆形碰撞半径
// 实际判定距离由碰撞对决定（见 gameplay.yaml 的 collision 段），
// Radius 只在没有配置专用距离时使用（例如首领）
type CollisionComponent struct {
	Radius float64 // 碰撞半径（像素）
}
