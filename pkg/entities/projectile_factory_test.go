package entities

import (
	"image/color"
	"testing"

	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/ecs"
)

// TestNewProjectile 测试直线子弹实体创建
func TestNewProjectile(t *testing.T) {
	em := ecs.NewEntityManager()

	tests := []struct {
		name     string
		owner    components.ProjectileOwner
		lifetime float64
		wantKind components.EntityKind
		wantLife bool
	}{
		{"凤凰子弹", components.OwnerPhoenix, 3, components.KindPhoenixProjectile, true},
		{"敌人子弹", components.OwnerEnemy, 6, components.KindEnemyProjectile, true},
		{"无寿命子弹", components.OwnerEnemy, 0, components.KindEnemyProjectile, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := NewProjectile(em, tt.owner, ProjectileSpec{
				X: 100, Y: 200, VX: 0, VY: -400,
				Damage: 25, Color: color.RGBA{R: 255, A: 255}, Size: 5, Lifetime: tt.lifetime,
			})

			kind, ok := ecs.GetComponent[*components.KindComponent](em, id)
			if !ok || kind.Kind != tt.wantKind {
				t.Fatalf("kind = %v, want %v", kind, tt.wantKind)
			}

			proj, ok := ecs.GetComponent[*components.ProjectileComponent](em, id)
			if !ok {
				t.Fatal("ProjectileComponent missing")
			}
			if proj.Owner != tt.owner || proj.Damage != 25 || proj.Bullet != nil {
				t.Errorf("unexpected projectile component: %+v", proj)
			}

			vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
			if !ok || vel.VY != -400 {
				t.Errorf("velocity = %+v", vel)
			}

			if got := ecs.HasComponent[*components.LifetimeComponent](em, id); got != tt.wantLife {
				t.Errorf("has lifetime = %v, want %v", got, tt.wantLife)
			}
		})
	}
}
