package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/phoenix/pkg/components"
	"github.com/gonewx/phoenix/pkg/game"
)

// 终端顶部保留两行状态栏
const statusRows = 2

// projection 把逻辑坐标映射到终端字符格
type projection struct {
	worldW, worldH float64
	cols, rows     int
}

// cell 返回逻辑坐标对应的字符格，超出战场区域时 ok 为 false
func (p projection) cell(x, y float64) (col, row int, ok bool) {
	fieldRows := p.rows - statusRows
	if p.cols <= 0 || fieldRows <= 0 || p.worldW <= 0 || p.worldH <= 0 {
		return 0, 0, false
	}
	if x < 0 || y < 0 || x >= p.worldW || y >= p.worldH {
		return 0, 0, false
	}
	col = int(x / p.worldW * float64(p.cols))
	row = int(y/p.worldH*float64(fieldRows)) + statusRows
	return col, row, true
}

// step 返回一格对应的逻辑距离（方向键移动步长）
func (p projection) step() (dx, dy float64) {
	fieldRows := p.rows - statusRows
	if p.cols <= 0 || fieldRows <= 0 {
		return 0, 0
	}
	return p.worldW / float64(p.cols), p.worldH / float64(fieldRows)
}

func styleFor(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

var (
	stylePhoenix = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleFoeShot = tcell.StyleDefault.Foreground(tcell.ColorHotPink)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

func envRune(v components.EnvironmentVariant) rune {
	switch v {
	case components.EnvStar:
		return '.'
	case components.EnvNebula:
		return ':'
	default:
		return '~'
	}
}

// enemyRune 敌人按名字首字母显示
func enemyRune(name string) rune {
	for _, r := range name {
		return r
	}
	return 'e'
}

func putString(s tcell.Screen, col, row int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(col, row, r, nil, style)
		col++
	}
}

func putCentered(s tcell.Screen, row int, text string, style tcell.Style) {
	cols, _ := s.Size()
	putString(s, (cols-len(text))/2, row, text, style)
}

// statusLines 返回顶部两行状态文字
func statusLines(snap *game.Snapshot) (string, string) {
	hud := snap.HUD
	timer := "BOSS"
	if !hud.BossSpawned {
		timer = fmt.Sprintf("%s/%s", clock(hud.Elapsed), clock(hud.BossTime))
	}
	first := fmt.Sprintf(" W%d %s | HP %d/%d | Lv %d | $%d | %s",
		hud.WorldID, hud.WorldName, hud.Health, hud.MaxHealth, hud.Level, hud.Coins, timer)

	second := fmt.Sprintf(" Score %d Kills %d |", hud.Score, hud.Kills)
	for _, cd := range hud.Cooldowns {
		state := "--"
		switch {
		case !cd.Equipped:
		case cd.Remaining > 0:
			state = fmt.Sprintf("%.1fs", cd.Remaining)
		default:
			state = "OK"
		}
		second += fmt.Sprintf(" %s:%s", cd.Slot, state)
	}
	if snap.Boss != nil {
		second += fmt.Sprintf(" | %s P%d %d/%d", snap.Boss.Name, snap.Boss.Phase, snap.Boss.Health, snap.Boss.MaxHealth)
	}
	return first, second
}

func clock(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	total := int(sec)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// drawSnapshot 把一帧快照画到终端
func drawSnapshot(s tcell.Screen, p projection, snap *game.Snapshot) {
	s.Clear()

	for _, env := range snap.Environment {
		if c, r, ok := p.cell(env.X, env.Y); ok {
			s.SetContent(c, r, envRune(env.Variant), nil, styleDim)
		}
	}
	for _, b := range snap.Beams {
		c, bottom, ok := p.cell(b.X, b.Y)
		if !ok {
			continue
		}
		for r := statusRows; r < bottom; r++ {
			s.SetContent(c, r, '|', nil, styleFor(b.Color))
		}
	}
	for _, pr := range snap.Projectiles {
		c, r, ok := p.cell(pr.X, pr.Y)
		if !ok {
			continue
		}
		if pr.FromFoe {
			s.SetContent(c, r, '*', nil, styleFoeShot)
		} else {
			s.SetContent(c, r, '^', nil, styleFor(pr.Color))
		}
	}
	for _, e := range snap.Enemies {
		if c, r, ok := p.cell(e.X, e.Y); ok {
			s.SetContent(c, r, enemyRune(e.Name), nil, styleFor(e.Color))
		}
	}
	if b := snap.Boss; b != nil {
		if c, r, ok := p.cell(b.X, b.Y); ok {
			style := styleFor(b.Color).Bold(true)
			if b.Flashing {
				style = style.Reverse(true)
			}
			putString(s, c-1, r, "<B>", style)
		}
	}
	if ph := snap.Phoenix; ph != nil {
		if c, r, ok := p.cell(ph.X, ph.Y); ok {
			style := stylePhoenix
			if ph.IsAttacking {
				style = style.Reverse(true)
			}
			putString(s, c-1, r, "\\A/", style)
		}
	}

	first, second := statusLines(snap)
	cols, _ := s.Size()
	for c := 0; c < cols; c++ {
		s.SetContent(c, 0, ' ', nil, styleStatus)
		s.SetContent(c, 1, ' ', nil, styleStatus)
	}
	putString(s, 0, 0, first, styleStatus)
	putString(s, 0, 1, second, styleStatus)
}
