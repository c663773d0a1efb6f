package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 创建菜单类场景
type SceneFactory func() Scene

// LevelFactory 创建指定世界的战斗场景，避免 game 包依赖 scenes 包
type LevelFactory func(worldID int) Scene

// SceneManager 管理当前活动场景
// 任意时刻只有一个场景的 Update 和 Draw 被调用
type SceneManager struct {
	currentScene Scene
	currentID    SceneID
	factories    map[SceneID]SceneFactory
	levelFactory LevelFactory
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{
		factories: make(map[SceneID]SceneFactory),
	}
}

// Register 注册场景工厂
func (sm *SceneManager) Register(id SceneID, factory SceneFactory) {
	sm.factories[id] = factory
}

// SetLevelFactory 设置战斗场景工厂
func (sm *SceneManager) SetLevelFactory(factory LevelFactory) {
	sm.levelFactory = factory
}

// SwitchTo 直接切换到给定场景
func (sm *SceneManager) SwitchTo(id SceneID, scene Scene) {
	sm.currentScene = scene
	sm.currentID = id
}

// Goto 通过已注册的工厂切换场景
// 每次切换都新建场景，界面数据随之刷新
func (sm *SceneManager) Goto(id SceneID) bool {
	factory, ok := sm.factories[id]
	if !ok {
		log.Printf("[SceneManager] 错误: 未注册场景: %s", id)
		return false
	}
	scene := factory()
	if scene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", id)
		return false
	}
	sm.SwitchTo(id, scene)
	log.Printf("[SceneManager] 切换到场景: %s", id)
	return true
}

// LoadLevel 进入指定世界的战斗
func (sm *SceneManager) LoadLevel(worldID int) bool {
	log.Printf("[SceneManager] 加载世界: %d", worldID)

	if sm.levelFactory == nil {
		log.Printf("[SceneManager] 错误: LevelFactory 未设置")
		return false
	}
	scene := sm.levelFactory(worldID)
	if scene == nil {
		log.Printf("[SceneManager] 错误: 无法创建战斗场景: %d", worldID)
		return false
	}
	sm.SwitchTo(SceneGame, scene)
	return true
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentID 返回当前场景标识
func (sm *SceneManager) CurrentID() SceneID {
	return sm.currentID
}

// SaveCurrent 若当前场景实现 Saveable 则保存
func (sm *SceneManager) SaveCurrent() bool {
	if s, ok := sm.currentScene.(Saveable); ok {
		return s.SaveOnExit()
	}
	return true
}

// SaveOnExit 退出时保存一次存档：Saveable 场景自行保存，其余场景交给 fallback
func (sm *SceneManager) SaveOnExit(fallback func()) {
	if _, ok := sm.currentScene.(Saveable); ok {
		sm.SaveCurrent()
		return
	}
	if fallback != nil {
		fallback()
	}
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
