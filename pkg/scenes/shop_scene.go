package scenes

import (
	"errors"
	"fmt"
	"log"

	"github.com/gonewx/phoenix/internal/audio"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/game"
	"github.com/gonewx/phoenix/pkg/modules"
	"github.com/gonewx/phoenix/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	shopActionWidth = 120.0
	// 列表下方留给翻页按钮和提示的高度
	shopFooterHeight = 110.0
)

// ShopScene 商店：按槽位浏览招式，购买和装备
type ShopScene struct {
	ctx     *Context
	pointer *pointerTap
	buttons modules.ButtonSet

	slot    config.MoveSlot
	page    int
	message string
}

// NewShopScene 创建商店场景，默认显示长按槽位
func NewShopScene(ctx *Context) *ShopScene {
	s := &ShopScene{ctx: ctx, pointer: newPointerTap(ctx.Input), slot: config.SlotHold}
	s.rebuild()
	return s
}

func (s *ShopScene) listTop() float64 {
	return config.ListTop + config.ShopTabHeight + 8
}

// rowsPerPage 每页可显示的招式行数
func (s *ShopScene) rowsPerPage() int {
	_, h := s.ctx.screen()
	n := int((h - s.listTop() - shopFooterHeight) / config.ShopRowHeight)
	if n < 1 {
		return 1
	}
	return n
}

// pageCount 当前槽位的总页数
func (s *ShopScene) pageCount() int {
	moves := len(s.ctx.player().MovesForSlot(s.slot))
	per := s.rowsPerPage()
	if moves == 0 {
		return 1
	}
	return (moves + per - 1) / per
}

// pageMoves 当前页的招式
func (s *ShopScene) pageMoves() []*game.AttackMove {
	moves := s.ctx.player().MovesForSlot(s.slot)
	per := s.rowsPerPage()
	start := s.page * per
	if start >= len(moves) {
		return nil
	}
	end := start + per
	if end > len(moves) {
		end = len(moves)
	}
	return moves[start:end]
}

func (s *ShopScene) tabRect(i int) config.Rect {
	w, _ := s.ctx.screen()
	tabW := (w - 2*config.HUDPadding) / float64(len(config.AllSlots))
	return config.Rect{X: config.HUDPadding + float64(i)*tabW, Y: config.ListTop, W: tabW - 4, H: config.ShopTabHeight}
}

func (s *ShopScene) actionRect(row config.Rect) config.Rect {
	return config.Rect{X: row.X + row.W - shopActionWidth - 4, Y: row.Y + 4, W: shopActionWidth, H: row.H - 8}
}

// rebuild 根据当前槽位、页码和玩家状态重建按钮
func (s *ShopScene) rebuild() {
	w, h := s.ctx.screen()
	player := s.ctx.player()
	s.buttons.Clear()

	s.buttons.Add(modules.NewButton(backButtonRect(), "BACK", render.ColorPanel, func() {
		s.ctx.Scenes.Goto(game.SceneMenu)
	}))

	for i, slot := range config.AllSlots {
		slot := slot
		fill := render.ColorPanel
		if slot == s.slot {
			fill = render.ColorAccent
		}
		s.buttons.Add(modules.NewButton(s.tabRect(i), slotTitle(slot), fill, func() {
			s.slot = slot
			s.page = 0
			s.message = ""
			s.rebuild()
		}))
	}

	for i, move := range s.pageMoves() {
		id := move.ID
		row := config.ListRowRect(w, s.listTop(), config.ShopRowHeight, i)
		action := s.actionRect(row)
		switch {
		case move.IsEquipped:
			b := modules.NewButton(action, "EQUIPPED", render.ColorHealth, nil)
			b.Enabled = false
			s.buttons.Add(b)
		case move.IsOwned:
			s.buttons.Add(modules.NewButton(action, "EQUIP", render.ColorPanel, func() { s.equip(id) }))
		default:
			b := modules.NewButton(action, fmt.Sprintf("BUY $%d", move.Cost), render.ColorAccent, func() { s.purchase(id) })
			b.Enabled = player.PlayerStats.Coins >= move.Cost
			s.buttons.Add(b)
		}
	}

	pageY := h - shopFooterHeight + 20
	prev := s.buttons.Add(modules.NewButton(config.Rect{X: config.HUDPadding, Y: pageY, W: 80, H: config.SmallButtonSize}, "<", render.ColorPanel, func() {
		s.page--
		s.rebuild()
	}))
	prev.Enabled = s.page > 0
	next := s.buttons.Add(modules.NewButton(config.Rect{X: w - config.HUDPadding - 80, Y: pageY, W: 80, H: config.SmallButtonSize}, ">", render.ColorPanel, func() {
		s.page++
		s.rebuild()
	}))
	next.Enabled = s.page < s.pageCount()-1
}

func slotTitle(slot config.MoveSlot) string {
	switch slot {
	case config.SlotHold:
		return "HOLD"
	case config.SlotDouble:
		return "DOUBLE"
	default:
		return "TRIPLE"
	}
}

func (s *ShopScene) purchase(id string) {
	player := s.ctx.player()
	err := player.PurchaseMove(id)
	switch {
	case errors.Is(err, game.ErrInsufficientCoins):
		s.message = "Not enough coins"
	case err != nil:
		s.message = err.Error()
		log.Printf("[ShopScene] purchase %s: %v", id, err)
	default:
		move, _ := player.Move(id)
		s.message = "Purchased " + move.Name
		s.ctx.Saves.SaveOrLog()
		if s.ctx.Audio != nil {
			s.ctx.Audio.PlayCue(audio.CueCoin)
		}
	}
	s.rebuild()
}

func (s *ShopScene) equip(id string) {
	player := s.ctx.player()
	if err := player.EquipMove(id); err != nil {
		s.message = err.Error()
		log.Printf("[ShopScene] equip %s: %v", id, err)
	} else {
		move, _ := player.Move(id)
		s.message = "Equipped " + move.Name
		s.ctx.Saves.SaveOrLog()
	}
	s.rebuild()
}

// Update 处理点击
func (s *ShopScene) Update(deltaTime float64) {
	if sx, sy, ex, ey, ok := s.pointer.update(deltaTime); ok {
		s.buttons.Tap(sx, sy, ex, ey)
	}
}

// Draw 绘制商店
func (s *ShopScene) Draw(screen *ebiten.Image) {
	w, h := s.ctx.screen()
	player := s.ctx.player()

	screen.Fill(render.ColorBackground)
	render.DrawText(screen, "UPGRADE SHOP", w/2, 48, render.TextLarge, render.ColorAccent, render.AlignCenter)
	render.DrawText(screen, fmt.Sprintf("$%d", player.PlayerStats.Coins), w-config.HUDPadding, 56,
		render.TextNormal, render.ColorGold, render.AlignEnd)

	for i, move := range s.pageMoves() {
		row := config.ListRowRect(w, s.listTop(), config.ShopRowHeight, i)
		render.FillRect(screen, row, render.ColorPanel)
		render.FillRect(screen, config.Rect{X: row.X, Y: row.Y, W: 6, H: row.H}, config.MustHexColor(move.Color))
		render.DrawText(screen, move.Name, row.X+14, row.Y+6, render.TextNormal, render.ColorText, render.AlignStart)
		detail := fmt.Sprintf("DMG %d  CD %.1fs", move.Damage, float64(move.Cooldown)/1000)
		render.DrawText(screen, detail, row.X+14, row.Y+30, render.TextSmall, render.ColorMuted, render.AlignStart)
	}

	s.buttons.Draw(screen)

	render.DrawText(screen, fmt.Sprintf("Page %d/%d", s.page+1, s.pageCount()), w/2, h-shopFooterHeight+32,
		render.TextSmall, render.ColorMuted, render.AlignCenter)
	if s.message != "" {
		render.DrawText(screen, s.message, w/2, h-40, render.TextNormal, render.ColorGold, render.AlignCenter)
	}
}
