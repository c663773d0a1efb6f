package systems

import (
	"math"

	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/ecs"
)

// findPhoenix 返回凤凰实体及其位置
func findPhoenix(em *ecs.EntityManager) (ecs.EntityID, *components.PositionComponent, bool) {
	ids := ecs.GetEntitiesWith2[*components.PhoenixComponent, *components.PositionComponent](em)
	if len(ids) == 0 {
		return 0, nil, false
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, ids[0])
	return ids[0], pos, true
}

// findBoss 返回当前存活的首领
func findBoss(em *ecs.EntityManager) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.BossComponent](em) {
		if !em.IsMarkedForDestruction(id) {
			return id, true
		}
	}
	return 0, false
}

// distance 两点欧氏距离
func distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// aimVelocity 返回从 (fromX,fromY) 指向 (toX,toY) 的速度向量
// 两点重合时返回 (0,0) 和 false
func aimVelocity(fromX, fromY, toX, toY, speed float64) (float64, float64, bool) {
	dx, dy := toX-fromX, toY-fromY
	d := math.Hypot(dx, dy)
	if d == 0 {
		return 0, 0, false
	}
	return dx / d * speed, dy / d * speed, true
}
