package entities

import (
	"math/rand"

	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/ecs"
)

// NewEnvironmentObject 在屏幕顶部之外随机生成一个背景漂浮物
func NewEnvironmentObject(em *ecs.EntityManager, rng *rand.Rand, cfg config.EnvironmentConfig, screenW float64) ecs.EntityID {
	size := cfg.MinSize + rng.Float64()*(cfg.MaxSize-cfg.MinSize)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.KindComponent{Kind: components.KindEnvironment})
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: rng.Float64() * screenW,
		Y: -size,
	})
	ecs.AddComponent(em, id, &components.VelocityComponent{
		VX: (rng.Float64()*2 - 1) * cfg.DriftX,
		VY: cfg.MinSpeed + rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed),
	})
	ecs.AddComponent(em, id, &components.EnvironmentComponent{
		Variant: components.EnvironmentVariant(rng.Intn(3)),
		Size:    size,
		Opacity: cfg.MinOpacity + rng.Float64()*(cfg.MaxOpacity-cfg.MinOpacity),
	})
	return id
}
