package game

import (
	"image/color"

	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/ecs"
)

// 渲染快照：与图形库无关的实体记录，ebiten 渲染器和终端客户端共用

// PhoenixView 凤凰
type PhoenixView struct {
	X, Y        float64
	Radius      float64
	IsAttacking bool
	AttackSlot  config.MoveSlot
}

// EnemyView 普通敌人
type EnemyView struct {
	X, Y        float64
	Radius      float64
	Name        string
	Pattern     config.AttackPattern
	Color       color.RGBA
	HealthRatio float64
}

// BossView 首领
type BossView struct {
	X, Y        float64
	Radius      float64
	Name        string
	Phase       int
	Color       color.RGBA
	Health      int
	MaxHealth   int
	HealthRatio float64
	Flashing    bool
}

// ProjectileView 子弹
type ProjectileView struct {
	X, Y    float64
	Size    float64
	Color   color.RGBA
	FromFoe bool
}

// BeamView 光束，从 (X,Y) 向上延伸到屏幕顶端
type BeamView struct {
	X, Y  float64
	Width float64
	Color color.RGBA
	Alpha float64 // 随剩余寿命淡出
}

// ParticleView 粒子
type ParticleView struct {
	X, Y  float64
	Size  float64
	Color color.RGBA
	Alpha float64
}

// EnvironmentView 背景漂浮物
type EnvironmentView struct {
	X, Y    float64
	Size    float64
	Variant components.EnvironmentVariant
	Opacity float64
}

// CooldownView 攻击槽位冷却
type CooldownView struct {
	Slot      config.MoveSlot
	MoveName  string
	Color     color.RGBA
	Progress  float64 // [0,1]，1 表示可用
	Remaining float64 // 秒
	Equipped  bool
}

// HUDView 界面数据
type HUDView struct {
	WorldID     int
	WorldName   string
	Health      int
	MaxHealth   int
	Level       int
	Coins       int
	Score       int
	Kills       int
	Elapsed     float64
	BossTime    float64
	BossSpawned bool
	Cooldowns   []CooldownView
}

// Snapshot 一帧的完整渲染数据
type Snapshot struct {
	State       BattleState
	Phoenix     *PhoenixView
	Boss        *BossView
	Enemies     []EnemyView
	Projectiles []ProjectileView
	Beams       []BeamView
	Particles   []ParticleView
	Environment []EnvironmentView
	HUD         HUDView
}

// Snapshot 收集当前帧的渲染数据
func (b *Battle) Snapshot() *Snapshot {
	snap := &Snapshot{State: b.state}

	for _, id := range ecs.GetEntitiesWith2[*components.KindComponent, *components.PositionComponent](b.em) {
		if b.em.IsMarkedForDestruction(id) {
			continue
		}
		kind, _ := ecs.GetComponent[*components.KindComponent](b.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](b.em, id)

		switch kind.Kind {
		case components.KindPhoenix:
			snap.Phoenix = b.phoenixView(id, pos)
		case components.KindEnemy:
			snap.Enemies = append(snap.Enemies, b.enemyView(id, pos))
		case components.KindBoss:
			snap.Boss = b.bossView(id, pos)
		case components.KindPhoenixProjectile, components.KindEnemyProjectile:
			proj, ok := ecs.GetComponent[*components.ProjectileComponent](b.em, id)
			if !ok {
				continue
			}
			snap.Projectiles = append(snap.Projectiles, ProjectileView{
				X: pos.X, Y: pos.Y, Size: proj.Size, Color: proj.Color,
				FromFoe: proj.Owner == components.OwnerEnemy,
			})
		case components.KindBeam:
			beam, _ := ecs.GetComponent[*components.BeamComponent](b.em, id)
			snap.Beams = append(snap.Beams, BeamView{
				X: pos.X, Y: pos.Y, Width: beam.Width, Color: beam.Color, Alpha: b.fade(id),
			})
		case components.KindParticle:
			p, _ := ecs.GetComponent[*components.ParticleComponent](b.em, id)
			snap.Particles = append(snap.Particles, ParticleView{
				X: pos.X, Y: pos.Y, Size: p.Size, Color: p.Color, Alpha: b.fade(id),
			})
		case components.KindEnvironment:
			env, _ := ecs.GetComponent[*components.EnvironmentComponent](b.em, id)
			snap.Environment = append(snap.Environment, EnvironmentView{
				X: pos.X, Y: pos.Y, Size: env.Size, Variant: env.Variant, Opacity: env.Opacity,
			})
		}
	}

	snap.HUD = b.hudView()
	return snap
}

func (b *Battle) phoenixView(id ecs.EntityID, pos *components.PositionComponent) *PhoenixView {
	view := &PhoenixView{X: pos.X, Y: pos.Y, Radius: b.bundle.Gameplay.Phoenix.Radius}
	if p, ok := ecs.GetComponent[*components.PhoenixComponent](b.em, id); ok {
		view.IsAttacking = p.IsAttacking
		view.AttackSlot = p.AttackSlot
	}
	return view
}

func (b *Battle) enemyView(id ecs.EntityID, pos *components.PositionComponent) EnemyView {
	view := EnemyView{X: pos.X, Y: pos.Y, HealthRatio: 1}
	if e, ok := ecs.GetComponent[*components.EnemyComponent](b.em, id); ok {
		view.Name = e.Name
		view.Pattern = e.Pattern
		view.Color = e.Color
	}
	if c, ok := ecs.GetComponent[*components.CollisionComponent](b.em, id); ok {
		view.Radius = c.Radius
	}
	if h, ok := ecs.GetComponent[*components.HealthComponent](b.em, id); ok {
		view.HealthRatio = h.Ratio()
	}
	return view
}

func (b *Battle) bossView(id ecs.EntityID, pos *components.PositionComponent) *BossView {
	view := &BossView{X: pos.X, Y: pos.Y, HealthRatio: 1}
	if boss, ok := ecs.GetComponent[*components.BossComponent](b.em, id); ok {
		view.Name = boss.Name
		view.Phase = boss.Phase
		view.Color = boss.Color
		view.Flashing = boss.HitFlash > 0
	}
	if c, ok := ecs.GetComponent[*components.CollisionComponent](b.em, id); ok {
		view.Radius = c.Radius
	}
	if h, ok := ecs.GetComponent[*components.HealthComponent](b.em, id); ok {
		view.Health = h.CurrentHealth
		view.MaxHealth = h.MaxHealth
		view.HealthRatio = h.Ratio()
	}
	return view
}

// fade 按剩余寿命计算透明度
func (b *Battle) fade(id ecs.EntityID) float64 {
	life, ok := ecs.GetComponent[*components.LifetimeComponent](b.em, id)
	if !ok || life.MaxLifetime <= 0 {
		return 1
	}
	return life.Remaining() / life.MaxLifetime
}

func (b *Battle) hudView() HUDView {
	st := b.player.PlayerStats
	hud := HUDView{
		WorldID:     b.world.ID,
		WorldName:   b.world.Name,
		Health:      st.Health,
		MaxHealth:   st.MaxHealth,
		Level:       st.Level,
		Coins:       st.Coins,
		Score:       b.score,
		Kills:       b.kills,
		Elapsed:     b.clock.Now,
		BossTime:    b.bundle.Gameplay.Spawn.BossTime,
		BossSpawned: b.spawnSystem.BossSpawned(),
		Cooldowns:   make([]CooldownView, 0, len(config.AllSlots)),
	}
	for _, slot := range config.AllSlots {
		cd := CooldownView{
			Slot:      slot,
			Progress:  b.attack.CooldownProgress(slot),
			Remaining: b.attack.CooldownRemaining(slot),
		}
		if m, ok := b.player.EquippedMove(slot); ok {
			cd.MoveName = m.Name
			cd.Color = config.MustHexColor(m.Color)
			cd.Equipped = true
		}
		hud.Cooldowns = append(hud.Cooldowns, cd)
	}
	return hud
}
