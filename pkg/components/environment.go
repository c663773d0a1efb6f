package components

// EnvironmentVariant 背景漂浮物种类
type EnvironmentVariant int

const (
	EnvCloud EnvironmentVariant = iota
	EnvStar
	EnvNebula
)

// String 返回种类名称
func (v EnvironmentVariant) String() string {
	switch v {
	case EnvCloud:
		return "cloud"
	case EnvStar:
		return "star"
	case EnvNebula:
		return "nebula"
	}
	return "unknown"
}

// EnvironmentComponent 背景漂浮物（不参与碰撞）
type EnvironmentComponent struct {
	Variant EnvironmentVariant
	Size    float64
	Opacity float64
}
