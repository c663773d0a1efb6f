package components

// EntityKind 实体类型标签
type EntityKind int

const (
	KindPhoenix EntityKind = iota
	KindEnemy
	KindBoss
	KindPhoenixProjectile
	KindEnemyProjectile
	KindBeam
	KindParticle
	KindEnvironment
)

// String 返回类型名称（日志和终端客户端使用）
func (k EntityKind) String() string {
	switch k {
	case KindPhoenix:
		return "phoenix"
	case KindEnemy:
		return "enemy"
	case KindBoss:
		return "boss"
	case KindPhoenixProjectile:
		return "phoenix_projectile"
	case KindEnemyProjectile:
		return "enemy_projectile"
	case KindBeam:
		return "beam"
	case KindParticle:
		return "particle"
	case KindEnvironment:
		return "environment"
	}
	return "unknown"
}

// KindComponent 标记实体类型，渲染快照按它分组
type KindComponent struct {
	Kind EntityKind
}
