// Package render 用矢量图形绘制战斗快照和界面控件
//
// 所有坐标都是逻辑屏幕坐标，Layout 负责缩放到实际窗口。
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Align 文本水平对齐方式
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// 内置位图字体，放大后使用
var face = text.NewGoXFace(basicfont.Face7x13)

// Text 字号倍数
const (
	TextSmall  = 1.0
	TextNormal = 1.5
	TextLarge  = 2.5
)

// DrawText 在 (x, y) 绘制文本，y 为文本顶端
func DrawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color, align Align) {
	op := &text.DrawOptions{}
	switch align {
	case AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case AlignEnd:
		op.PrimaryAlign = text.AlignEnd
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// TextHeight 返回指定倍数下单行文本高度
func TextHeight(scale float64) float64 {
	return face.Metrics().HAscent*scale + face.Metrics().HDescent*scale
}
