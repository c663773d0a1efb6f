package modules

import (
	"log"

	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// PauseMenuCallbacks 暂停菜单回调函数集合
type PauseMenuCallbacks struct {
	OnContinue    func() // "继续"
	OnRestart     func() // "重新开始"
	OnMainMenu    func() // "返回主菜单"
	OnPauseMusic  func() // 可选
	OnResumeMusic func() // 可选
}

// PauseMenuModule 战斗中的暂停菜单
// 显示时盖住战斗画面，只响应自己的按钮
type PauseMenuModule struct {
	callbacks PauseMenuCallbacks
	buttons   ButtonSet
	active    bool

	screenW, screenH float64
}

// NewPauseMenuModule 创建暂停菜单，初始隐藏
func NewPauseMenuModule(screenW, screenH float64, cb PauseMenuCallbacks) *PauseMenuModule {
	m := &PauseMenuModule{callbacks: cb, screenW: screenW, screenH: screenH}

	top := screenH/2 - config.ButtonHeight
	m.buttons.Add(NewButton(config.MenuButtonRect(screenW, top, 0), "CONTINUE", render.ColorAccent, func() {
		m.Hide()
		if m.callbacks.OnContinue != nil {
			m.callbacks.OnContinue()
		}
	}))
	m.buttons.Add(NewButton(config.MenuButtonRect(screenW, top, 1), "RESTART", render.ColorPanel, func() {
		m.active = false
		if m.callbacks.OnRestart != nil {
			m.callbacks.OnRestart()
		}
	}))
	m.buttons.Add(NewButton(config.MenuButtonRect(screenW, top, 2), "MAIN MENU", render.ColorPanel, func() {
		m.active = false
		if m.callbacks.OnMainMenu != nil {
			m.callbacks.OnMainMenu()
		}
	}))
	return m
}

// Show 显示菜单并暂停音乐
func (m *PauseMenuModule) Show() {
	if m.active {
		return
	}
	m.active = true
	if m.callbacks.OnPauseMusic != nil {
		m.callbacks.OnPauseMusic()
	}
	log.Printf("[PauseMenuModule] 显示暂停菜单")
}

// Hide 隐藏菜单并恢复音乐
func (m *PauseMenuModule) Hide() {
	if !m.active {
		return
	}
	m.active = false
	if m.callbacks.OnResumeMusic != nil {
		m.callbacks.OnResumeMusic()
	}
	log.Printf("[PauseMenuModule] 隐藏暂停菜单")
}

// Toggle 切换显示状态
func (m *PauseMenuModule) Toggle() {
	if m.active {
		m.Hide()
		return
	}
	m.Show()
}

// IsActive 菜单是否显示中
func (m *PauseMenuModule) IsActive() bool {
	return m.active
}

// HandleTap 处理点击，菜单隐藏时返回 false
func (m *PauseMenuModule) HandleTap(startX, startY, endX, endY float64) bool {
	if !m.active {
		return false
	}
	m.buttons.Tap(startX, startY, endX, endY)
	return true
}

// Draw 绘制遮罩、标题和按钮
func (m *PauseMenuModule) Draw(screen *ebiten.Image) {
	if !m.active {
		return
	}
	render.FillRect(screen, config.Rect{W: m.screenW, H: m.screenH}, render.WithAlpha(render.ColorBackground, 0.75))
	render.DrawText(screen, "PAUSED", m.screenW/2, m.screenH/2-config.ButtonHeight*2-20,
		render.TextLarge, render.ColorText, render.AlignCenter)
	m.buttons.Draw(screen)
}
