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

// 菜单按钮起始 Y 坐标
const menuButtonsTop = 330.0

// MenuScene 主菜单：玩家概况、开始游戏、世界、商店、声音设置、重置进度
type MenuScene struct {
	ctx     *Context
	pointer *pointerTap
	buttons modules.ButtonSet

	soundButton *modules.Button
	musicButton *modules.Button
	resetButton *modules.Button
	// 重置需要连续点击两次确认
	resetArmed bool
}

// NewMenuScene 创建主菜单
func NewMenuScene(ctx *Context) *MenuScene {
	m := &MenuScene{ctx: ctx, pointer: newPointerTap(ctx.Input)}
	w, _ := ctx.screen()

	m.buttons.Add(modules.NewButton(config.MenuButtonRect(w, menuButtonsTop, 0), "PLAY GAME", render.ColorAccent, m.onPlay))
	m.buttons.Add(modules.NewButton(config.MenuButtonRect(w, menuButtonsTop, 1), "WORLDS", render.ColorPanel, func() {
		ctx.Scenes.Goto(game.SceneWorldSelect)
	}))
	m.buttons.Add(modules.NewButton(config.MenuButtonRect(w, menuButtonsTop, 2), "UPGRADE SHOP", render.ColorPanel, func() {
		ctx.Scenes.Goto(game.SceneShop)
	}))
	m.soundButton = m.buttons.Add(modules.NewButton(config.MenuButtonRect(w, menuButtonsTop, 3), "", render.ColorPanel, m.onToggleSound))
	m.musicButton = m.buttons.Add(modules.NewButton(config.MenuButtonRect(w, menuButtonsTop, 4), "", render.ColorPanel, m.onToggleMusic))
	m.resetButton = m.buttons.Add(modules.NewButton(config.MenuButtonRect(w, menuButtonsTop, 5), "", render.ColorPanel, m.onReset))
	m.refreshLabels()

	if ctx.Audio != nil {
		ctx.Audio.ApplySettings()
	}
	return m
}

func (m *MenuScene) refreshLabels() {
	s := m.ctx.player().Settings
	m.soundButton.Label = "SOUND: " + onOff(s.SoundEnabled)
	m.musicButton.Label = "MUSIC: " + onOff(s.MusicEnabled)
	if m.resetArmed {
		m.resetButton.Label = "TAP AGAIN TO RESET"
		m.resetButton.Color = render.ColorDanger
	} else {
		m.resetButton.Label = "RESET PROGRESS"
		m.resetButton.Color = render.ColorPanel
	}
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

func (m *MenuScene) onPlay() {
	m.ctx.Scenes.LoadLevel(m.ctx.player().CurrentWorld)
}

func (m *MenuScene) onToggleSound() {
	m.ctx.player().UpdateSettings(func(s *game.Settings) { s.SoundEnabled = !s.SoundEnabled })
	m.afterSettingsChange()
}

func (m *MenuScene) onToggleMusic() {
	m.ctx.player().UpdateSettings(func(s *game.Settings) { s.MusicEnabled = !s.MusicEnabled })
	m.afterSettingsChange()
}

func (m *MenuScene) afterSettingsChange() {
	m.ctx.Saves.SaveOrLog()
	if m.ctx.Audio != nil {
		m.ctx.Audio.ApplySettings()
	}
	m.refreshLabels()
}

func (m *MenuScene) onReset() {
	if !m.resetArmed {
		m.resetArmed = true
		m.refreshLabels()
		return
	}
	m.resetArmed = false
	if err := m.ctx.Saves.Reset(); err != nil {
		log.Printf("[MenuScene] Warning: reset save failed: %v", err)
	}
	log.Printf("[MenuScene] 进度已重置")
	if m.ctx.Audio != nil {
		m.ctx.Audio.ApplySettings()
	}
	m.refreshLabels()
}

// Update 处理按钮点击
func (m *MenuScene) Update(deltaTime float64) {
	sx, sy, ex, ey, ok := m.pointer.update(deltaTime)
	if !ok {
		return
	}
	armed := m.resetArmed
	m.buttons.Tap(sx, sy, ex, ey)
	// 点击其他位置取消重置确认
	if armed && m.resetArmed {
		m.resetArmed = false
		m.refreshLabels()
	}
}

// Draw 绘制标题、概况和按钮
func (m *MenuScene) Draw(screen *ebiten.Image) {
	w, _ := m.ctx.screen()
	st := m.ctx.player().PlayerStats

	screen.Fill(render.ColorBackground)
	render.DrawText(screen, "PHOENIX", w/2, 80, render.TextLarge*1.6, render.ColorAccent, render.AlignCenter)
	render.DrawText(screen, "FLYING LEGENDS", w/2, 140, render.TextNormal, render.ColorMuted, render.AlignCenter)

	stats := fmt.Sprintf("Level %d    Coins %d    Health %d", st.Level, st.Coins, st.MaxHealth)
	render.DrawText(screen, stats, w/2, 200, render.TextNormal, render.ColorText, render.AlignCenter)

	xpBar := config.Rect{X: (w - config.ButtonWidth) / 2, Y: 250, W: config.ButtonWidth, H: config.HealthBarHeight}
	ratio := 0.0
	if st.XPToNext > 0 {
		ratio = float64(st.XP) / float64(st.XPToNext)
	}
	render.DrawBar(screen, xpBar, ratio, render.ColorGold)
	render.DrawText(screen, fmt.Sprintf("XP: %d / %d", st.XP, st.XPToNext), w/2, xpBar.Y+xpBar.H+6,
		render.TextSmall, render.ColorMuted, render.AlignCenter)

	m.buttons.Draw(screen)
}
