// phoenix-term 在终端中运行凤凰战斗
//
// 方向键移动凤凰，空格为一次点击（连按两次/三次释放对应招式），
// h 释放长按招式，p 暂停，q 保存并退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/phoenix/pkg/app"
	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/embedded"
	"github.com/gonewx/phoenix/pkg/game"
	"github.com/gonewx/phoenix/pkg/input"
	"github.com/gonewx/phoenix/pkg/systems"
)

var (
	dataDir = flag.String("data", ".", "包含 data/ 目录的路径")
	world   = flag.Int("world", 0, "世界编号，0 表示使用存档中的当前世界")
	logFile = flag.String("log", "", "日志文件（终端被占用，日志不输出到屏幕）")
	mute    = flag.Bool("mute", false, "关闭音效")
)

const (
	tickRate      = 60
	bannerSeconds = 2.5
)

// termGame 终端客户端状态
type termGame struct {
	screen  tcell.Screen
	bundle  *config.Bundle
	saves   *game.SaveManager
	sound   *speakerSound
	worldID int

	battle     *game.Battle
	classifier *input.GestureClassifier
	proj       projection
	now        float64

	message      string
	messageUntil float64 // 0 表示一直显示
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法创建日志文件: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	embedded.Init(os.DirFS(*dataDir))
	bundle, err := config.LoadBundle()
	if err != nil {
		return fmt.Errorf("配置加载失败: %w", err)
	}
	saves := game.NewSaveManager(app.OpenStorage(), bundle.Moves, len(bundle.Worlds.Worlds))

	worldID := saves.State().CurrentWorld
	if *world > 0 {
		if err := saves.State().SetCurrentWorld(*world); err != nil {
			return err
		}
		worldID = *world
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	g := &termGame{
		screen:  screen,
		bundle:  bundle,
		saves:   saves,
		worldID: worldID,
		sound: newSpeakerSound(func() bool {
			return !*mute && saves.State().Settings.SoundEnabled
		}),
	}
	if err := g.sound.Init(); err != nil {
		log.Printf("[Term] Audio initialization failed: %v", err)
	}
	defer g.sound.Close()

	if err := g.start(); err != nil {
		return err
	}
	g.loop()
	return saves.Save()
}

// start 开始（或重新开始）当前世界的战斗
func (g *termGame) start() error {
	b, err := game.NewBattle(g.bundle, g.saves.State(), g.worldID, time.Now().UnixNano())
	if err != nil {
		return err
	}
	b.AddListener(g.sound.OnBattleEvent)
	b.AddListener(g.onBattleEvent)
	g.battle = b
	g.classifier = input.NewGestureClassifier(g.bundle.Gameplay.Gesture)
	g.message, g.messageUntil = "", 0
	g.resize()
	return nil
}

func (g *termGame) resize() {
	cols, rows := g.screen.Size()
	g.proj = projection{
		worldW: g.bundle.Gameplay.Screen.Width,
		worldH: g.bundle.Gameplay.Screen.Height,
		cols:   cols,
		rows:   rows,
	}
}

func (g *termGame) onBattleEvent(e systems.Event) {
	switch ev := e.(type) {
	case systems.BossSpawnedEvent:
		g.message = fmt.Sprintf("Boss Spawned! Defeat the %s!", ev.Name)
		g.messageUntil = g.now + bannerSeconds
	case systems.PhoenixDiedEvent:
		g.saves.SaveOrLog()
		g.message, g.messageUntil = "YOU FELL - r: continue  q: quit", 0
	case systems.WorldCompletedEvent:
		g.saves.SaveOrLog()
		g.messageUntil = 0
		g.message = fmt.Sprintf("VICTORY in %s - n: next world  r: replay  q: quit", clock(ev.Time))
	}
}

func (g *termGame) loop() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()
	dt := 1.0 / tickRate

	for {
		select {
		case ev := <-events:
			if !g.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			g.now += dt
			for _, gesture := range g.classifier.Update(g.now) {
				g.battle.HandleGesture(gesture)
			}
			g.battle.Update(dt)
			g.draw()
		}
	}
}

// handleEvent 处理按键，返回 false 表示退出
func (g *termGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.resize()
	case *tcell.EventKey:
		dx, dy := g.proj.step()
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			g.battle.MovePhoenix(0, -dy)
		case tcell.KeyDown:
			g.battle.MovePhoenix(0, dy)
		case tcell.KeyLeft:
			g.battle.MovePhoenix(-dx, 0)
		case tcell.KeyRight:
			g.battle.MovePhoenix(dx, 0)
		case tcell.KeyRune:
			return g.handleRune(ev.Rune())
		}
	}
	return true
}

func (g *termGame) handleRune(r rune) bool {
	running := g.battle.State() == game.BattleRunning
	switch r {
	case 'q':
		return false
	case ' ':
		// 终端没有按键抬起事件，一次按键即一次完整点击
		g.classifier.TouchStart(g.now, 0, 0)
		g.classifier.TouchEnd(g.now)
	case 'h':
		g.battle.Fire(config.SlotHold)
	case 'p':
		if running {
			g.battle.SetPaused(!g.battle.Paused())
			g.saves.SaveOrLog()
		}
	case 'r':
		if !running {
			g.restart(g.worldID)
		}
	case 'n':
		if g.battle.State() == game.BattleWon {
			next := g.worldID + 1
			if err := g.saves.State().SetCurrentWorld(next); err != nil {
				g.message = err.Error()
				return true
			}
			g.restart(next)
		}
	}
	return true
}

func (g *termGame) restart(worldID int) {
	g.worldID = worldID
	if err := g.start(); err != nil {
		g.message = err.Error()
	}
}

func (g *termGame) draw() {
	drawSnapshot(g.screen, g.proj, g.battle.Snapshot())
	_, rows := g.screen.Size()
	if g.battle.Paused() {
		putCentered(g.screen, rows/2, "PAUSED - p: resume  q: quit", styleBanner)
	}
	if g.message != "" && (g.messageUntil == 0 || g.now < g.messageUntil) {
		putCentered(g.screen, rows/3, g.message, styleBanner)
	}
	putString(g.screen, 0, rows-1, " arrows: move  space: tap  h: hold  p: pause  q: quit", styleDim)
	g.screen.Show()
}
