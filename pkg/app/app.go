// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/game"
	"github.com/gonewx/phoenix/pkg/input"
	"github.com/gonewx/phoenix/pkg/scenes"
	"github.com/gonewx/phoenix/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// StorageAppName gdata 存储使用的应用名
const StorageAppName = "phoenix"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// World 直接进入指定世界（0 表示显示主菜单）
	World int
	// Reset 启动时清空存档
	Reset bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	saves        *game.SaveManager
	screenW      int
	screenH      int
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	bundle, err := config.LoadBundle()
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载 %d 个招式, %d 个世界", len(bundle.Moves.Moves), len(bundle.Worlds.Worlds))

	saves := game.NewSaveManager(OpenStorage(), bundle.Moves, len(bundle.Worlds.Worlds))
	if cfg.Reset {
		if err := saves.Reset(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	}

	audioManager := game.NewAudioManager(audio.NewContext(game.AudioSampleRate), func() game.Settings {
		return saves.State().Settings
	})
	audioManager.Preload()
	log.Printf("[App] AudioManager initialized")

	sceneManager := game.NewSceneManager()
	scenes.Register(&scenes.Context{
		Bundle: bundle,
		Saves:  saves,
		Audio:  audioManager,
		Scenes: sceneManager,
		Input:  input.EbitenSource{},
		Seed:   func() int64 { return time.Now().UnixNano() },
	})

	if !startScene(sceneManager, saves, cfg.World) {
		sceneManager.Goto(game.SceneMenu)
	}

	return &App{
		sceneManager: sceneManager,
		saves:        saves,
		screenW:      int(bundle.Gameplay.Screen.Width),
		screenH:      int(bundle.Gameplay.Screen.Height),
		verbose:      cfg.Verbose,
	}, nil
}

// OpenStorage 打开 gdata 存储，失败时返回 nil（存档只保存在内存中）
func OpenStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage dir: %v", err)
	}
	if path := utils.GetStoragePath(); path != "" {
		log.Printf("[App] Storage path: %s", path)
	}
	manager, err := gdata.Open(gdata.Config{AppName: StorageAppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, progress will not persist: %v", err)
		return nil
	}
	return manager
}

// startScene 处理 -world 参数，成功进入战斗时返回 true
func startScene(sm *game.SceneManager, saves *game.SaveManager, worldID int) bool {
	if worldID <= 0 {
		return false
	}
	if err := saves.State().SetCurrentWorld(worldID); err != nil {
		log.Printf("[App] Warning: cannot start world %d: %v", worldID, err)
		return false
	}
	log.Printf("[App] Starting world: %d", worldID)
	return sm.LoadLevel(worldID)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏（仅桌面端）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenW, a.screenH
}

// ScreenSize 返回逻辑屏幕尺寸（窗口初始大小）
func (a *App) ScreenSize() (int, int) {
	return a.screenW, a.screenH
}

// SaveOnExit 退出时保存存档
func (a *App) SaveOnExit() {
	a.sceneManager.SaveOnExit(a.saves.SaveOrLog)
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
