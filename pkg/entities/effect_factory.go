package entities

import (
	"image/color"
	"math/rand"

	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/ecs"
)

// NewParticleBurst 在 (x,y) 生成一次粒子爆发
// 速度分量在 [-Speed, Speed] 内随机，寿命在 [Life, 2*Life] 内随机，颜色从 Colors 中随机挑选
func NewParticleBurst(em *ecs.EntityManager, rng *rand.Rand, burst config.BurstConfig, x, y float64) []ecs.EntityID {
	palette := make([]color.RGBA, 0, len(burst.Colors))
	for _, c := range burst.Colors {
		palette = append(palette, config.MustHexColor(c))
	}
	if len(palette) == 0 {
		palette = append(palette, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	}

	ids := make([]ecs.EntityID, 0, burst.Count)
	for i := 0; i < burst.Count; i++ {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.KindComponent{Kind: components.KindParticle})
		ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
		ecs.AddComponent(em, id, &components.VelocityComponent{
			VX: (rng.Float64()*2 - 1) * burst.Speed,
			VY: (rng.Float64()*2 - 1) * burst.Speed,
		})
		ecs.AddComponent(em, id, &components.ParticleComponent{
			Color: palette[rng.Intn(len(palette))],
			Size:  burst.Size + rng.Float64()*burst.SizeRange,
		})
		ecs.AddComponent(em, id, &components.LifetimeComponent{
			MaxLifetime: burst.Life * (1 + rng.Float64()),
		})
		ids = append(ids, id)
	}
	return ids
}

// NewBeam 创建长按招式的光束特效
// 光束从凤凰位置向上延伸到屏幕顶端
func NewBeam(em *ecs.EntityManager, x, y, width, duration float64, c color.RGBA) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.KindComponent{Kind: components.KindBeam})
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.BeamComponent{Width: width, Color: c})
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: duration})
	return id
}
