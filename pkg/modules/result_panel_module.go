package modules

import (
	"image/color"

	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/render"
	"github.com/gonewx/phoenix/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 面板滑入时长（秒）
const resultSlideDuration = 0.4

// ResultAction 结算面板上的一个按钮
type ResultAction struct {
	Label   string
	Color   color.RGBA
	OnClick func()
}

// ResultPanelModule 战斗结束面板（失败 / 胜利）
type ResultPanelModule struct {
	title      string
	titleColor color.RGBA
	lines      []string
	buttons    ButtonSet
	active     bool
	elapsed    float64

	screenW, screenH float64
}

// NewResultPanelModule 创建隐藏的结算面板
func NewResultPanelModule(screenW, screenH float64) *ResultPanelModule {
	return &ResultPanelModule{screenW: screenW, screenH: screenH}
}

// Show 以给定标题、正文和按钮显示面板
func (m *ResultPanelModule) Show(title string, titleColor color.RGBA, lines []string, actions []ResultAction) {
	m.title = title
	m.titleColor = titleColor
	m.lines = lines
	m.buttons.Clear()
	top := m.screenH/2 + 20
	for i, a := range actions {
		m.buttons.Add(NewButton(config.MenuButtonRect(m.screenW, top, i), a.Label, a.Color, a.OnClick))
	}
	m.active = true
	m.elapsed = 0
}

// Hide 隐藏面板
func (m *ResultPanelModule) Hide() {
	m.active = false
}

// IsActive 面板是否显示中
func (m *ResultPanelModule) IsActive() bool {
	return m.active
}

// Update 推进滑入动画
func (m *ResultPanelModule) Update(deltaTime float64) {
	if m.active {
		m.elapsed += deltaTime
	}
}

// HandleTap 处理点击；滑入动画结束前不响应，避免误触
func (m *ResultPanelModule) HandleTap(startX, startY, endX, endY float64) bool {
	if !m.active {
		return false
	}
	if m.elapsed >= resultSlideDuration {
		m.buttons.Tap(startX, startY, endX, endY)
	}
	return true
}

// offset 返回当前滑入偏移
func (m *ResultPanelModule) offset() float64 {
	t := m.elapsed / resultSlideDuration
	if t > 1 {
		t = 1
	}
	return utils.Lerp(m.screenH/2, 0, utils.EaseOutCubic(t))
}

// Draw 绘制面板
func (m *ResultPanelModule) Draw(screen *ebiten.Image) {
	if !m.active {
		return
	}
	render.FillRect(screen, config.Rect{W: m.screenW, H: m.screenH}, render.WithAlpha(render.ColorBackground, 0.8))

	dy := m.offset()
	y := m.screenH/2 - 200 + dy
	render.DrawText(screen, m.title, m.screenW/2, y, render.TextLarge, m.titleColor, render.AlignCenter)
	y += render.TextHeight(render.TextLarge) + 16
	for _, line := range m.lines {
		render.DrawText(screen, line, m.screenW/2, y, render.TextNormal, render.ColorText, render.AlignCenter)
		y += render.TextHeight(render.TextNormal) + 8
	}

	if dy > 0 {
		return
	}
	m.buttons.Draw(screen)
}
