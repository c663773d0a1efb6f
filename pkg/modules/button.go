// Package modules 场景共用的界面模块（按钮组、暂停菜单、结算面板）
package modules

import (
	"image/color"

	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// Button 矩形按钮
type Button struct {
	Rect    config.Rect
	Label   string
	Color   color.RGBA
	Enabled bool
	OnClick func()
}

// NewButton 创建启用状态的按钮
func NewButton(r config.Rect, label string, c color.RGBA, onClick func()) *Button {
	return &Button{Rect: r, Label: label, Color: c, Enabled: true, OnClick: onClick}
}

// ButtonSet 一组按钮，按添加顺序命中
type ButtonSet struct {
	buttons []*Button
}

// Add 追加按钮并返回它，便于之后修改标签
func (s *ButtonSet) Add(b *Button) *Button {
	s.buttons = append(s.buttons, b)
	return b
}

// Clear 移除全部按钮
func (s *ButtonSet) Clear() {
	s.buttons = s.buttons[:0]
}

// Buttons 返回全部按钮
func (s *ButtonSet) Buttons() []*Button {
	return s.buttons
}

// Tap 处理一次点击，按下和抬起都落在同一个启用按钮内才触发
func (s *ButtonSet) Tap(startX, startY, endX, endY float64) bool {
	for _, b := range s.buttons {
		if !b.Enabled || !b.Rect.Contains(startX, startY) || !b.Rect.Contains(endX, endY) {
			continue
		}
		if b.OnClick != nil {
			b.OnClick()
		}
		return true
	}
	return false
}

// Hit 返回包含该点的启用按钮
func (s *ButtonSet) Hit(x, y float64) (*Button, bool) {
	for _, b := range s.buttons {
		if b.Enabled && b.Rect.Contains(x, y) {
			return b, true
		}
	}
	return nil, false
}

// Draw 绘制全部按钮
func (s *ButtonSet) Draw(screen *ebiten.Image) {
	for _, b := range s.buttons {
		render.DrawButton(screen, b.Rect, b.Label, b.Color, b.Enabled)
	}
}
