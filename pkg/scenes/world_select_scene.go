package scenes

import (
	"fmt"
	"log"

	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/game"
	"github.com/gonewx/phoenix/pkg/modules"
	"github.com/gonewx/phoenix/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// backButtonRect 左上角返回按钮
func backButtonRect() config.Rect {
	return config.Rect{X: config.HUDPadding, Y: 40, W: 88, H: config.SmallButtonSize}
}

// WorldSelectScene 世界选择：十个世界的解锁、通关、最佳成绩
type WorldSelectScene struct {
	ctx     *Context
	pointer *pointerTap
	buttons modules.ButtonSet
	message string
}

// NewWorldSelectScene 创建世界选择场景
func NewWorldSelectScene(ctx *Context) *WorldSelectScene {
	s := &WorldSelectScene{ctx: ctx, pointer: newPointerTap(ctx.Input)}
	w, _ := ctx.screen()

	s.buttons.Add(modules.NewButton(backButtonRect(), "BACK", render.ColorPanel, func() {
		ctx.Scenes.Goto(game.SceneMenu)
	}))
	for i, def := range ctx.Bundle.Worlds.Worlds {
		worldID := def.ID
		r := config.ListRowRect(w, config.ListTop, config.WorldTileHeight, i)
		// 行按钮本身不绘制，由 Draw 画成卡片
		s.buttons.Add(&modules.Button{Rect: r, Enabled: true, OnClick: func() { s.selectWorld(worldID) }})
	}
	return s
}

// selectWorld 选择世界并进入战斗，未解锁时只提示
func (s *WorldSelectScene) selectWorld(worldID int) {
	player := s.ctx.player()
	if err := player.SetCurrentWorld(worldID); err != nil {
		s.message = fmt.Sprintf("World %d is locked", worldID)
		log.Printf("[WorldSelectScene] %v", err)
		return
	}
	s.ctx.Saves.SaveOrLog()
	s.ctx.Scenes.LoadLevel(worldID)
}

// Update 处理点击
func (s *WorldSelectScene) Update(deltaTime float64) {
	if sx, sy, ex, ey, ok := s.pointer.update(deltaTime); ok {
		s.buttons.Tap(sx, sy, ex, ey)
	}
}

// Draw 绘制世界列表
func (s *WorldSelectScene) Draw(screen *ebiten.Image) {
	w, h := s.ctx.screen()
	player := s.ctx.player()

	screen.Fill(render.ColorBackground)
	render.DrawText(screen, "SELECT WORLD", w/2, 48, render.TextLarge, render.ColorAccent, render.AlignCenter)
	back := s.buttons.Buttons()[0]
	render.DrawButton(screen, back.Rect, back.Label, back.Color, true)

	for i, def := range s.ctx.Bundle.Worlds.Worlds {
		r := config.ListRowRect(w, config.ListTop, config.WorldTileHeight, i)
		progress, _ := player.World(def.ID)
		s.drawWorldTile(screen, r, def, progress, def.ID == player.CurrentWorld)
	}

	if s.message != "" {
		render.DrawText(screen, s.message, w/2, h-40, render.TextNormal, render.ColorDanger, render.AlignCenter)
	}
}

func (s *WorldSelectScene) drawWorldTile(screen *ebiten.Image, r config.Rect, def config.WorldDefinition, progress *game.WorldProgress, current bool) {
	theme := config.MustHexColor(def.Color)
	unlocked := progress != nil && progress.Unlocked

	if unlocked {
		render.FillRect(screen, r, render.WithAlpha(theme, 0.45))
	} else {
		render.FillRect(screen, r, render.ColorDisabled)
	}
	if current {
		render.StrokeRect(screen, r, 3, render.ColorGold)
	}

	render.DrawText(screen, fmt.Sprintf("%d. %s", def.ID, def.Name), r.X+10, r.Y+8, render.TextNormal, render.ColorText, render.AlignStart)
	render.DrawText(screen, def.Theme+" - "+def.Boss.Name, r.X+10, r.Y+34, render.TextSmall, render.ColorMuted, render.AlignStart)

	status := worldStatus(progress)
	render.DrawText(screen, status, r.X+r.W-10, r.Y+22, render.TextSmall, render.ColorGold, render.AlignEnd)
}

// worldStatus 返回世界卡片右侧的状态文字
func worldStatus(p *game.WorldProgress) string {
	switch {
	case p == nil || !p.Unlocked:
		return "LOCKED"
	case p.Completed:
		return fmt.Sprintf("BEST %s  HI %d", render.FormatClock(p.BestTime), p.HighScore)
	default:
		return "READY"
	}
}
