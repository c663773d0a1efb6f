package render

import (
	"fmt"
	"image/color"

	"github.com/gonewx/phoenix/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 界面配色
var (
	ColorBackground = color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}
	ColorPanel      = color.RGBA{R: 0x2a, G: 0x2a, B: 0x40, A: 0xff}
	ColorAccent     = color.RGBA{R: 0xff, G: 0x66, B: 0x00, A: 0xff}
	ColorText       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorMuted      = color.RGBA{R: 0x88, G: 0x88, B: 0x99, A: 0xff}
	ColorDisabled   = color.RGBA{R: 0x44, G: 0x44, B: 0x55, A: 0xff}
	ColorHealth     = color.RGBA{R: 0x44, G: 0xdd, B: 0x44, A: 0xff}
	ColorDanger     = color.RGBA{R: 0xff, G: 0x33, B: 0x33, A: 0xff}
	ColorGold       = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
)

// WithAlpha 返回按 alpha (0..1) 缩放后的颜色（预乘）
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// FillRect 填充矩形
func FillRect(screen *ebiten.Image, r config.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, true)
}

// StrokeRect 描边矩形
func StrokeRect(screen *ebiten.Image, r config.Rect, width float64, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), clr, true)
}

// DrawButton 绘制带标签的按钮
func DrawButton(screen *ebiten.Image, r config.Rect, label string, fill color.RGBA, enabled bool) {
	if !enabled {
		fill = ColorDisabled
	}
	FillRect(screen, r, fill)
	StrokeRect(screen, r, 2, ColorText)
	cx, cy := r.Center()
	DrawText(screen, label, cx, cy-TextHeight(TextNormal)/2, TextNormal, ColorText, AlignCenter)
}

// DrawBar 绘制进度条，ratio 在 [0,1]
func DrawBar(screen *ebiten.Image, r config.Rect, ratio float64, fill color.RGBA) {
	FillRect(screen, r, ColorDisabled)
	if ratio > 0 {
		if ratio > 1 {
			ratio = 1
		}
		FillRect(screen, config.Rect{X: r.X, Y: r.Y, W: r.W * ratio, H: r.H}, fill)
	}
}

// FormatClock 把秒数格式化为 m:ss
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// HealthColor 按生命比例返回血条颜色
func HealthColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.5:
		return ColorHealth
	case ratio > 0.25:
		return ColorGold
	default:
		return ColorDanger
	}
}
