package render

import (
	"fmt"
	"image/color"

	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/game"
	"github.com/gonewx/phoenix/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorPhoenix     = color.RGBA{R: 0xff, G: 0x88, B: 0x00, A: 0xff}
	colorPhoenixCore = color.RGBA{R: 0xff, G: 0xee, B: 0x88, A: 0xff}
	colorFoeShot     = color.RGBA{R: 0xff, G: 0x44, B: 0x88, A: 0xff}
	colorCloud       = color.RGBA{R: 0xcc, G: 0xcc, B: 0xdd, A: 0xff}
	colorStar        = color.RGBA{R: 0xff, G: 0xff, B: 0xcc, A: 0xff}
	colorNebula      = color.RGBA{R: 0x88, G: 0x44, B: 0xaa, A: 0xff}
)

// BattleRenderer 把战斗快照绘制为矢量图形
type BattleRenderer struct {
	screenW, screenH float64
	theme            color.RGBA
}

// NewBattleRenderer 创建渲染器，theme 为世界主题色
func NewBattleRenderer(gameplay *config.GameplayConfig, world *config.WorldDefinition) *BattleRenderer {
	return &BattleRenderer{
		screenW: gameplay.Screen.Width,
		screenH: gameplay.Screen.Height,
		theme:   config.MustHexColor(world.Color),
	}
}

// Draw 按图层顺序绘制：背景、漂浮物、粒子、光束、子弹、敌人、首领、凤凰、界面
func (r *BattleRenderer) Draw(screen *ebiten.Image, snap *game.Snapshot) {
	screen.Fill(ColorBackground)
	FillRect(screen, config.Rect{W: r.screenW, H: r.screenH}, WithAlpha(r.theme, 0.12))

	for _, env := range snap.Environment {
		r.drawEnvironment(screen, env)
	}
	for _, p := range snap.Particles {
		circle(screen, p.X, p.Y, p.Size, WithAlpha(p.Color, p.Alpha))
	}
	for _, b := range snap.Beams {
		beam := config.Rect{X: b.X - b.Width/2, Y: 0, W: b.Width, H: b.Y}
		alpha := utils.EaseOutQuad(b.Alpha)
		FillRect(screen, beam, WithAlpha(b.Color, 0.6*alpha))
		FillRect(screen, config.Rect{X: b.X - b.Width/6, Y: 0, W: b.Width / 3, H: b.Y}, WithAlpha(ColorText, 0.8*alpha))
	}
	for _, p := range snap.Projectiles {
		c := p.Color
		if p.FromFoe {
			c = colorFoeShot
		}
		circle(screen, p.X, p.Y, p.Size, c)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	if snap.Boss != nil {
		r.drawBoss(screen, snap.Boss)
	}
	if snap.Phoenix != nil {
		r.drawPhoenix(screen, snap.Phoenix, snap.HUD.Cooldowns)
	}
	r.drawHUD(screen, snap)
}

func circle(screen *ebiten.Image, x, y, radius float64, clr color.Color) {
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), clr, true)
}

func ring(screen *ebiten.Image, x, y, radius, width float64, clr color.Color) {
	vector.StrokeCircle(screen, float32(x), float32(y), float32(radius), float32(width), clr, true)
}

func (r *BattleRenderer) drawEnvironment(screen *ebiten.Image, env game.EnvironmentView) {
	switch env.Variant {
	case components.EnvStar:
		circle(screen, env.X, env.Y, env.Size/4, WithAlpha(colorStar, env.Opacity))
	case components.EnvNebula:
		circle(screen, env.X, env.Y, env.Size, WithAlpha(colorNebula, env.Opacity/2))
	default:
		circle(screen, env.X, env.Y, env.Size/2, WithAlpha(colorCloud, env.Opacity))
		circle(screen, env.X+env.Size/3, env.Y+env.Size/8, env.Size/3, WithAlpha(colorCloud, env.Opacity))
	}
}

func (r *BattleRenderer) drawEnemy(screen *ebiten.Image, e game.EnemyView) {
	circle(screen, e.X, e.Y, e.Radius, e.Color)
	ring(screen, e.X, e.Y, e.Radius, 2, ColorBackground)
	if e.HealthRatio < 1 {
		bar := config.Rect{
			X: e.X - e.Radius, Y: e.Y - e.Radius - config.EnemyHealthBarHeight - 4,
			W: 2 * e.Radius, H: config.EnemyHealthBarHeight,
		}
		DrawBar(screen, bar, e.HealthRatio, HealthColor(e.HealthRatio))
	}
}

func (r *BattleRenderer) drawBoss(screen *ebiten.Image, b *game.BossView) {
	c := b.Color
	if b.Flashing {
		c = ColorText
	}
	circle(screen, b.X, b.Y, b.Radius, c)
	for i := 0; i < b.Phase; i++ {
		ring(screen, b.X, b.Y, b.Radius+6+float64(i)*6, 2, WithAlpha(ColorDanger, 0.8))
	}

	bar := config.Rect{
		X: config.HUDPadding, Y: config.HUDHeight + 4,
		W: r.screenW - 2*config.HUDPadding, H: config.BossHealthBarHeight,
	}
	DrawBar(screen, bar, b.HealthRatio, ColorDanger)
	label := fmt.Sprintf("%s  P%d  %d/%d", b.Name, b.Phase, b.Health, b.MaxHealth)
	DrawText(screen, label, r.screenW/2, bar.Y+bar.H+2, TextSmall, ColorText, AlignCenter)
}

func (r *BattleRenderer) drawPhoenix(screen *ebiten.Image, p *game.PhoenixView, cooldowns []game.CooldownView) {
	if p.IsAttacking {
		glow := ColorAccent
		for _, cd := range cooldowns {
			if cd.Slot == p.AttackSlot && cd.Equipped {
				glow = cd.Color
			}
		}
		circle(screen, p.X, p.Y, p.Radius*1.6, WithAlpha(glow, 0.35))
	}
	// 两侧翅膀
	vector.StrokeLine(screen, float32(p.X-p.Radius*1.8), float32(p.Y-p.Radius/2),
		float32(p.X), float32(p.Y), 4, colorPhoenix, true)
	vector.StrokeLine(screen, float32(p.X+p.Radius*1.8), float32(p.Y-p.Radius/2),
		float32(p.X), float32(p.Y), 4, colorPhoenix, true)
	circle(screen, p.X, p.Y, p.Radius, colorPhoenix)
	circle(screen, p.X, p.Y, p.Radius/2, colorPhoenixCore)
}

func (r *BattleRenderer) drawHUD(screen *ebiten.Image, snap *game.Snapshot) {
	hud := snap.HUD
	FillRect(screen, config.Rect{W: r.screenW, H: config.HUDHeight}, WithAlpha(ColorPanel, 0.85))

	ratio := 0.0
	if hud.MaxHealth > 0 {
		ratio = float64(hud.Health) / float64(hud.MaxHealth)
	}
	healthBar := config.Rect{X: config.HUDPadding, Y: config.HUDPadding, W: config.HealthBarWidth, H: config.HealthBarHeight}
	DrawBar(screen, healthBar, ratio, HealthColor(ratio))
	DrawText(screen, fmt.Sprintf("HP %d/%d", hud.Health, hud.MaxHealth),
		config.HUDPadding, healthBar.Y+healthBar.H+4, TextSmall, ColorText, AlignStart)
	DrawText(screen, fmt.Sprintf("Lv %d  $%d", hud.Level, hud.Coins),
		config.HUDPadding, healthBar.Y+healthBar.H+20, TextSmall, ColorGold, AlignStart)

	DrawText(screen, fmt.Sprintf("W%d %s", hud.WorldID, hud.WorldName),
		r.screenW/2, config.HUDPadding, TextSmall, ColorText, AlignCenter)
	DrawText(screen, fmt.Sprintf("Score %d  Kills %d", hud.Score, hud.Kills),
		r.screenW/2, config.HUDPadding+18, TextSmall, ColorMuted, AlignCenter)

	timer := "BOSS"
	if !hud.BossSpawned {
		timer = FormatClock(hud.Elapsed) + " / " + FormatClock(hud.BossTime)
	}
	DrawText(screen, timer, r.screenW/2, config.HUDPadding+36, TextSmall, ColorText, AlignCenter)

	for i, cd := range hud.Cooldowns {
		rect := config.CooldownBarRect(r.screenW, r.screenH, i, len(hud.Cooldowns))
		fill := cd.Color
		if !cd.Equipped {
			fill = ColorDisabled
		}
		DrawBar(screen, rect, cd.Progress, fill)
		label := string(cd.Slot)
		if cd.Remaining > 0 {
			label = fmt.Sprintf("%s %.1fs", cd.Slot, cd.Remaining)
		}
		DrawText(screen, label, rect.X+rect.W/2, rect.Y+rect.H+2, TextSmall, ColorMuted, AlignCenter)
	}
}
