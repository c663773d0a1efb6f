package scenes

import (
	"os"
	"testing"

	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/embedded"
	"github.com/gonewx/phoenix/pkg/game"
	"github.com/gonewx/phoenix/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const frame = 1.0 / 60

// fakePointer 可编程的指针输入
type fakePointer struct {
	pressed     bool
	justPressed bool
	x, y        int
}

func (f *fakePointer) JustPressed() (ebiten.TouchID, int, int, bool) {
	if !f.justPressed {
		return 0, 0, 0, false
	}
	f.justPressed = false
	return -1, f.x, f.y, true
}

func (f *fakePointer) Position(ebiten.TouchID) (int, int, bool) {
	return f.x, f.y, f.pressed
}

func (f *fakePointer) press(x, y float64) {
	f.x, f.y = int(x), int(y)
	f.pressed = true
	f.justPressed = true
}

func (f *fakePointer) release() {
	f.pressed = false
}

type sceneFixture struct {
	ctx     *Context
	pointer *fakePointer
}

func newSceneFixture(t *testing.T) *sceneFixture {
	t.Helper()
	embedded.Init(os.DirFS("../.."))
	bundle, err := config.LoadBundle()
	if err != nil {
		t.Fatalf("LoadBundle() error: %v", err)
	}
	pointer := &fakePointer{}
	ctx := &Context{
		Bundle: bundle,
		Saves:  game.NewSaveManager(nil, bundle.Moves, len(bundle.Worlds.Worlds)),
		Scenes: game.NewSceneManager(),
		Input:  pointer,
		Seed:   func() int64 { return 7 },
	}
	Register(ctx)
	return &sceneFixture{ctx: ctx, pointer: pointer}
}

// tap 在 (x,y) 完成一次点击：按下一帧、抬起一帧
func (f *sceneFixture) tap(x, y float64) {
	f.pointer.press(x, y)
	f.ctx.Scenes.Update(frame)
	f.pointer.release()
	f.ctx.Scenes.Update(frame)
}

func (f *sceneFixture) tapRect(r config.Rect) {
	f.tap(r.Center())
}

func (f *sceneFixture) screenW() float64 {
	return f.ctx.Bundle.Gameplay.Screen.Width
}

func TestMenuNavigation(t *testing.T) {
	f := newSceneFixture(t)
	f.ctx.Scenes.Goto(game.SceneMenu)
	w := f.screenW()

	f.tapRect(config.MenuButtonRect(w, menuButtonsTop, 1))
	if f.ctx.Scenes.CurrentID() != game.SceneWorldSelect {
		t.Fatalf("after WORLDS current = %s", f.ctx.Scenes.CurrentID())
	}

	f.tapRect(backButtonRect())
	if f.ctx.Scenes.CurrentID() != game.SceneMenu {
		t.Fatalf("after BACK current = %s", f.ctx.Scenes.CurrentID())
	}

	f.tapRect(config.MenuButtonRect(w, menuButtonsTop, 2))
	if f.ctx.Scenes.CurrentID() != game.SceneShop {
		t.Fatalf("after SHOP current = %s", f.ctx.Scenes.CurrentID())
	}

	f.ctx.Scenes.Goto(game.SceneMenu)
	f.tapRect(config.MenuButtonRect(w, menuButtonsTop, 0))
	if f.ctx.Scenes.CurrentID() != game.SceneGame {
		t.Fatalf("after PLAY current = %s", f.ctx.Scenes.CurrentID())
	}
}

func TestMenuSettingsToggle(t *testing.T) {
	f := newSceneFixture(t)
	f.ctx.Scenes.Goto(game.SceneMenu)
	w := f.screenW()

	f.tapRect(config.MenuButtonRect(w, menuButtonsTop, 3))
	f.tapRect(config.MenuButtonRect(w, menuButtonsTop, 4))
	s := f.ctx.Saves.State().Settings
	if s.SoundEnabled || s.MusicEnabled {
		t.Errorf("settings after toggles = %+v, want both off", s)
	}
	menu := f.ctx.Scenes.GetCurrentScene().(*MenuScene)
	if menu.soundButton.Label != "SOUND: OFF" || menu.musicButton.Label != "MUSIC: OFF" {
		t.Errorf("labels = %q, %q", menu.soundButton.Label, menu.musicButton.Label)
	}
}

func TestMenuResetNeedsConfirmation(t *testing.T) {
	f := newSceneFixture(t)
	f.ctx.Scenes.Goto(game.SceneMenu)
	w := f.screenW()
	f.ctx.Saves.State().GainCoins(500)
	resetRect := config.MenuButtonRect(w, menuButtonsTop, 5)

	f.tapRect(resetRect)
	// 点击空白处取消确认
	f.tap(5, 5)
	f.tapRect(resetRect)
	if f.ctx.Saves.State().PlayerStats.Coins != game.DefaultCoins+500 {
		t.Fatal("progress reset without confirmation")
	}

	f.tapRect(resetRect)
	if f.ctx.Saves.State().PlayerStats.Coins != game.DefaultCoins {
		t.Errorf("Coins = %d after confirmed reset, want %d", f.ctx.Saves.State().PlayerStats.Coins, game.DefaultCoins)
	}
}

func TestWorldSelectLockedWorld(t *testing.T) {
	f := newSceneFixture(t)
	f.ctx.Scenes.Goto(game.SceneWorldSelect)
	w := f.screenW()

	f.tapRect(config.ListRowRect(w, config.ListTop, config.WorldTileHeight, 1))
	scene, ok := f.ctx.Scenes.GetCurrentScene().(*WorldSelectScene)
	if !ok {
		t.Fatal("locked world left the world select scene")
	}
	if scene.message == "" {
		t.Error("expected a locked message")
	}

	f.ctx.Saves.State().UnlockWorld(2)
	f.tapRect(config.ListRowRect(w, config.ListTop, config.WorldTileHeight, 1))
	gs, ok := f.ctx.Scenes.GetCurrentScene().(*GameScene)
	if !ok || gs.worldID != 2 {
		t.Fatalf("expected game scene for world 2, got %T", f.ctx.Scenes.GetCurrentScene())
	}
	if f.ctx.Saves.State().CurrentWorld != 2 {
		t.Errorf("CurrentWorld = %d, want 2", f.ctx.Saves.State().CurrentWorld)
	}
}

func TestWorldStatus(t *testing.T) {
	tests := []struct {
		name string
		p    *game.WorldProgress
		want string
	}{
		{"不存在", nil, "LOCKED"},
		{"未解锁", &game.WorldProgress{}, "LOCKED"},
		{"已解锁", &game.WorldProgress{Unlocked: true}, "READY"},
		{"已通关", &game.WorldProgress{Unlocked: true, Completed: true, BestTime: 125, HighScore: 900}, "BEST 2:05  HI 900"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := worldStatus(tt.p); got != tt.want {
				t.Errorf("worldStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShopPurchaseAndEquip(t *testing.T) {
	f := newSceneFixture(t)
	f.ctx.Scenes.Goto(game.SceneShop)
	shop := f.ctx.Scenes.GetCurrentScene().(*ShopScene)
	w := f.screenW()

	moves := shop.pageMoves()
	if len(moves) < 2 || !moves[0].IsEquipped {
		t.Fatalf("first hold move should be the equipped starter, got %+v", moves[0])
	}
	target := moves[1]
	actionRect := shop.actionRect(config.ListRowRect(w, shop.listTop(), config.ShopRowHeight, 1))

	// 金币不足时购买按钮禁用
	f.ctx.Saves.State().UpdatePlayerStats(func(st *game.PlayerStats) { st.Coins = target.Cost - 1 })
	shop.rebuild()
	f.tapRect(actionRect)
	if target.IsOwned {
		t.Fatal("purchased without enough coins")
	}

	f.ctx.Saves.State().UpdatePlayerStats(func(st *game.PlayerStats) { st.Coins = target.Cost })
	shop.rebuild()
	f.tapRect(actionRect)
	if !target.IsOwned || f.ctx.Saves.State().PlayerStats.Coins != 0 {
		t.Fatalf("purchase failed: owned=%v coins=%d msg=%q", target.IsOwned, f.ctx.Saves.State().PlayerStats.Coins, shop.message)
	}

	f.tapRect(actionRect)
	if !target.IsEquipped {
		t.Fatalf("equip failed: %q", shop.message)
	}
	if eq, _ := f.ctx.Saves.State().EquippedMove(config.SlotHold); eq.ID != target.ID {
		t.Errorf("equipped hold = %s, want %s", eq.ID, target.ID)
	}
}

func TestShopTabsAndPaging(t *testing.T) {
	f := newSceneFixture(t)
	f.ctx.Scenes.Goto(game.SceneShop)
	shop := f.ctx.Scenes.GetCurrentScene().(*ShopScene)

	f.tapRect(shop.tabRect(2))
	if shop.slot != config.SlotTriple || shop.page != 0 {
		t.Fatalf("slot=%s page=%d after triple tab", shop.slot, shop.page)
	}
	for _, m := range shop.pageMoves() {
		if m.Slot != config.SlotTriple {
			t.Errorf("move %s in triple tab has slot %s", m.ID, m.Slot)
		}
	}

	if shop.pageCount() < 2 {
		t.Skip("catalog fits on one page")
	}
	w := f.screenW()
	_, h := f.ctx.screen()
	f.tapRect(config.Rect{X: w - config.HUDPadding - 80, Y: h - shopFooterHeight + 20, W: 80, H: config.SmallButtonSize})
	if shop.page != 1 {
		t.Errorf("page = %d after next, want 1", shop.page)
	}
}

func TestGameScenePauseAndResume(t *testing.T) {
	f := newSceneFixture(t)
	if !f.ctx.Scenes.LoadLevel(1) {
		t.Fatal("LoadLevel(1) failed")
	}
	gs := f.ctx.Scenes.GetCurrentScene().(*GameScene)
	w := f.screenW()
	_, h := f.ctx.screen()

	size := config.SmallButtonSize
	f.tapRect(config.Rect{X: w - config.HUDPadding - size, Y: config.HUDPadding, W: size, H: size})
	if !gs.battle.Paused() || !gs.pause.IsActive() {
		t.Fatal("pause button did not pause the battle")
	}
	now := gs.battle.Now()
	f.ctx.Scenes.Update(frame)
	if gs.battle.Now() != now {
		t.Error("battle advanced while paused")
	}

	f.tapRect(config.MenuButtonRect(w, h/2-config.ButtonHeight, 0))
	if gs.battle.Paused() || gs.pause.IsActive() {
		t.Fatal("continue did not resume the battle")
	}
	f.ctx.Scenes.Update(frame)
	if gs.battle.Now() <= now {
		t.Error("battle did not advance after resume")
	}
}

func TestGameSceneDefeatAndContinue(t *testing.T) {
	f := newSceneFixture(t)
	f.ctx.Scenes.LoadLevel(1)
	gs := f.ctx.Scenes.GetCurrentScene().(*GameScene)
	first := gs.battle
	w := f.screenW()
	_, h := f.ctx.screen()

	gs.onBattleEvent(systems.PhoenixDiedEvent{})
	if !gs.result.IsActive() {
		t.Fatal("defeat panel not shown")
	}
	// 等待面板滑入
	for i := 0; i < 30; i++ {
		f.ctx.Scenes.Update(frame)
	}
	f.tapRect(config.MenuButtonRect(w, h/2+20, 0))

	if gs.battle == first || gs.result.IsActive() {
		t.Fatal("continue did not start a new battle")
	}
	if st := f.ctx.Saves.State().PlayerStats; st.Health != st.MaxHealth {
		t.Errorf("health = %d after continue, want full", st.Health)
	}
}

func TestGameSceneVictoryNextWorld(t *testing.T) {
	f := newSceneFixture(t)
	f.ctx.Scenes.LoadLevel(1)
	gs := f.ctx.Scenes.GetCurrentScene().(*GameScene)
	w := f.screenW()
	_, h := f.ctx.screen()

	if err := f.ctx.Saves.State().CompleteWorld(1, 200, 500); err != nil {
		t.Fatalf("CompleteWorld() error: %v", err)
	}
	gs.onBattleEvent(systems.WorldCompletedEvent{WorldID: 1, Time: 200, Score: 500})
	for i := 0; i < 30; i++ {
		f.ctx.Scenes.Update(frame)
	}
	f.tapRect(config.MenuButtonRect(w, h/2+20, 0))

	next, ok := f.ctx.Scenes.GetCurrentScene().(*GameScene)
	if !ok || next.worldID != 2 {
		t.Fatalf("NEXT WORLD did not load world 2")
	}
	if f.ctx.Saves.State().CurrentWorld != 2 {
		t.Errorf("CurrentWorld = %d, want 2", f.ctx.Saves.State().CurrentWorld)
	}
}

func TestGameSceneUnknownWorld(t *testing.T) {
	f := newSceneFixture(t)
	if f.ctx.Scenes.LoadLevel(42) {
		t.Error("LoadLevel(42) should fail")
	}
	if _, err := NewGameScene(f.ctx, 0); err == nil {
		t.Error("NewGameScene(0) should fail")
	}
}
