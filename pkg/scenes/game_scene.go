package scenes

import (
	"fmt"
	"log"

	"github.com/gonewx/phoenix/internal/audio"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/game"
	"github.com/gonewx/phoenix/pkg/input"
	"github.com/gonewx/phoenix/pkg/modules"
	"github.com/gonewx/phoenix/pkg/render"
	"github.com/gonewx/phoenix/pkg/systems"
	"github.com/gonewx/phoenix/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 首领登场提示显示时长（秒）
const bannerDuration = 2.5

// GameScene 战斗场景
// 拖动移动凤凰，长按/双击/三击释放对应槽位的招式
type GameScene struct {
	ctx     *Context
	worldID int

	battle   *game.Battle
	renderer *render.BattleRenderer
	tracker  *input.PointerTracker
	now      float64

	hud    modules.ButtonSet
	pause  *modules.PauseMenuModule
	result *modules.ResultPanelModule

	banner      string
	bannerTimer float64
}

// NewGameScene 创建指定世界的战斗场景
func NewGameScene(ctx *Context, worldID int) (*GameScene, error) {
	world, ok := ctx.Bundle.Worlds.Get(worldID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", game.ErrUnknownWorld, worldID)
	}
	w, h := ctx.screen()

	s := &GameScene{
		ctx:      ctx,
		worldID:  worldID,
		renderer: render.NewBattleRenderer(ctx.Bundle.Gameplay, world),
		result:   modules.NewResultPanelModule(w, h),
	}
	s.pause = modules.NewPauseMenuModule(w, h, modules.PauseMenuCallbacks{
		OnContinue: s.resume,
		OnRestart:  s.restart,
		OnMainMenu: s.exitToMenu,
		OnPauseMusic: func() {
			if ctx.Audio != nil {
				ctx.Audio.PauseMusic()
			}
		},
		OnResumeMusic: func() {
			if ctx.Audio != nil {
				ctx.Audio.ResumeMusic()
			}
		},
	})

	size := config.SmallButtonSize
	s.hud.Add(modules.NewButton(config.Rect{X: w - config.HUDPadding - size, Y: config.HUDPadding, W: size, H: size},
		"II", render.ColorPanel, s.openPause))
	s.hud.Add(modules.NewButton(config.Rect{X: w - config.HUDPadding - 2*size - 8, Y: config.HUDPadding, W: size, H: size},
		"<", render.ColorPanel, s.exitToMenu))

	if err := s.startBattle(); err != nil {
		return nil, err
	}
	if ctx.Audio != nil {
		ctx.Audio.PlayMusic(audio.CueBackground)
	}
	return s, nil
}

// startBattle 开始新的一局（首次进入或失败后继续）
func (s *GameScene) startBattle() error {
	var seed int64
	if s.ctx.Seed != nil {
		seed = s.ctx.Seed()
	}
	b, err := game.NewBattle(s.ctx.Bundle, s.ctx.player(), s.worldID, seed)
	if err != nil {
		return err
	}
	if s.ctx.Audio != nil {
		b.AddListener(s.ctx.Audio.OnBattleEvent)
	}
	b.AddListener(s.onBattleEvent)

	s.battle = b
	s.tracker = input.NewPointerTracker(s.ctx.Input, input.NewGestureClassifier(s.ctx.Bundle.Gameplay.Gesture))
	s.banner = ""
	s.bannerTimer = 0
	s.result.Hide()
	return nil
}

// Battle 返回当前战斗
func (s *GameScene) Battle() *game.Battle {
	return s.battle
}

func (s *GameScene) onBattleEvent(e systems.Event) {
	switch ev := e.(type) {
	case systems.BossSpawnedEvent:
		s.banner = fmt.Sprintf("Boss Spawned! Defeat the %s!", ev.Name)
		s.bannerTimer = bannerDuration
	case systems.PhoenixDiedEvent:
		s.ctx.Saves.SaveOrLog()
		s.showDefeat()
	case systems.WorldCompletedEvent:
		s.ctx.Saves.SaveOrLog()
		s.showVictory(ev)
	}
}

func (s *GameScene) showDefeat() {
	lines := []string{
		fmt.Sprintf("Score %d   Kills %d", s.battle.Score(), s.battle.Kills()),
		fmt.Sprintf("Deaths %d", s.ctx.player().DeathCount),
	}
	s.result.Show("YOU FELL", render.ColorDanger, lines, []modules.ResultAction{
		{Label: "CONTINUE", Color: render.ColorAccent, OnClick: s.restart},
		{Label: "MAIN MENU", Color: render.ColorPanel, OnClick: s.exitToMenu},
	})
}

func (s *GameScene) showVictory(ev systems.WorldCompletedEvent) {
	lines := []string{
		fmt.Sprintf("World %d completed!", ev.WorldID),
		fmt.Sprintf("Time %s   Score %d", render.FormatClock(ev.Time), ev.Score),
	}
	actions := make([]modules.ResultAction, 0, 2)
	next := ev.WorldID + 1
	if p, ok := s.ctx.player().World(next); ok && p.Unlocked {
		actions = append(actions, modules.ResultAction{Label: "NEXT WORLD", Color: render.ColorAccent, OnClick: func() {
			if err := s.ctx.player().SetCurrentWorld(next); err != nil {
				log.Printf("[GameScene] %v", err)
				return
			}
			s.ctx.Saves.SaveOrLog()
			s.ctx.Scenes.LoadLevel(next)
		}})
	}
	actions = append(actions, modules.ResultAction{Label: "MAIN MENU", Color: render.ColorPanel, OnClick: s.exitToMenu})
	s.result.Show("VICTORY!", render.ColorGold, lines, actions)
}

func (s *GameScene) openPause() {
	s.battle.SetPaused(true)
	s.pause.Show()
	s.ctx.Saves.SaveOrLog()
}

func (s *GameScene) resume() {
	s.battle.SetPaused(false)
	s.tracker.Cancel()
}

func (s *GameScene) restart() {
	log.Printf("[GameScene] 重新开始世界 %d", s.worldID)
	if err := s.startBattle(); err != nil {
		log.Printf("[GameScene] Warning: restart failed: %v", err)
	}
}

func (s *GameScene) exitToMenu() {
	s.ctx.Saves.SaveOrLog()
	s.ctx.Scenes.Goto(game.SceneMenu)
}

// SaveOnExit 实现 game.Saveable
func (s *GameScene) SaveOnExit() bool {
	if err := s.ctx.Saves.Save(); err != nil {
		log.Printf("[GameScene] Warning: save on exit failed: %v", err)
		return false
	}
	return true
}

// Update 处理输入并推进战斗
func (s *GameScene) Update(deltaTime float64) {
	s.now += deltaTime
	gestures := s.tracker.Update(s.now)
	released := s.tracker.JustReleased()
	info := s.tracker.Info()
	sx, sy := float64(info.StartX), float64(info.StartY)
	ex, ey := float64(info.CurrentX), float64(info.CurrentY)

	if s.result.IsActive() {
		s.result.Update(deltaTime)
		if released {
			s.result.HandleTap(sx, sy, ex, ey)
		}
		return
	}
	if s.pause.IsActive() {
		if released {
			s.pause.HandleTap(sx, sy, ex, ey)
		}
		return
	}

	if s.tracker.JustPressed() {
		if b, ok := s.hud.Hit(sx, sy); ok {
			s.tracker.Cancel()
			b.OnClick()
			return
		}
	}
	if s.tracker.Pressed() {
		if dx, dy := s.tracker.Delta(); dx != 0 || dy != 0 {
			s.battle.MovePhoenix(dx, dy)
		}
	}
	for _, g := range gestures {
		s.battle.HandleGesture(g)
	}

	s.battle.Update(deltaTime)

	if s.bannerTimer > 0 {
		s.bannerTimer -= deltaTime
	}
}

// Draw 绘制战斗画面和覆盖层
func (s *GameScene) Draw(screen *ebiten.Image) {
	w, h := s.ctx.screen()
	s.renderer.Draw(screen, s.battle.Snapshot())
	s.hud.Draw(screen)

	if s.bannerTimer > 0 {
		alpha := utils.EaseInOutCubic(s.bannerTimer / bannerDuration)
		render.DrawText(screen, s.banner, w/2, h/3, render.TextNormal, render.WithAlpha(render.ColorDanger, alpha), render.AlignCenter)
	}
	s.pause.Draw(screen)
	s.result.Draw(screen)
}
