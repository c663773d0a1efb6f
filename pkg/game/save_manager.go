package game

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gonewx/phoenix/pkg/config"
	"github.com/quasilyte/gdata/v2"
)

// 存档位置：gdata 对象 + 属性组成固定的存储键
const (
	saveObject   = "phoenix"
	saveProperty = "phoenixGameState"
)

// SaveManager 玩家进度存取
//
// 整个 PlayerState 以一个 JSON 对象保存在固定键下。
// gdataManager 为 nil 时为降级模式：进度只保存在内存中。
// 读写失败只记录日志，state 始终保持可用。
type SaveManager struct {
	gdataManager *gdata.Manager
	catalog      *config.MoveCatalog
	worldCount   int
	state        *PlayerState
}

// NewSaveManager 创建存档管理器并立即加载已有存档
func NewSaveManager(gdataManager *gdata.Manager, catalog *config.MoveCatalog, worldCount int) *SaveManager {
	sm := &SaveManager{
		gdataManager: gdataManager,
		catalog:      catalog,
		worldCount:   worldCount,
		state:        NewPlayerState(catalog, worldCount),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SaveManager] Warning: Failed to load game: %v (using defaults)", err)
	}
	return sm
}

// State 返回当前玩家状态
func (sm *SaveManager) State() *PlayerState {
	return sm.state
}

// Persistent 是否能够持久化
func (sm *SaveManager) Persistent() bool {
	return sm.gdataManager != nil
}

// Load 读取存档并合并到默认状态上
//
// 存档不存在时使用默认状态并返回 nil；读取或解析失败时同样回退到默认状态，但返回错误
func (sm *SaveManager) Load() error {
	if sm.gdataManager == nil {
		sm.state = NewPlayerState(sm.catalog, sm.worldCount)
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(saveObject, saveProperty) {
		sm.state = NewPlayerState(sm.catalog, sm.worldCount)
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		sm.state = NewPlayerState(sm.catalog, sm.worldCount)
		return fmt.Errorf("failed to load game state: %w", err)
	}

	state, err := DecodePlayerState(data, sm.catalog, sm.worldCount)
	sm.state = state
	if err != nil {
		return err
	}

	log.Printf("[SaveManager] Game loaded (level %d, coins %d)", state.PlayerStats.Level, state.PlayerStats.Coins)
	return nil
}

// Save 写入当前状态
func (sm *SaveManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(sm.state)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(saveObject, saveProperty, data); err != nil {
		return fmt.Errorf("failed to save game state: %w", err)
	}
	return nil
}

// SaveOrLog 保存，失败只记录日志
func (sm *SaveManager) SaveOrLog() {
	if err := sm.Save(); err != nil {
		log.Printf("[SaveManager] Warning: %v", err)
	}
}

// Reset 清空全部进度并覆盖存档
func (sm *SaveManager) Reset() error {
	sm.state.ResetProgress()
	if err := sm.Save(); err != nil {
		return fmt.Errorf("failed to reset game state: %w", err)
	}
	log.Printf("[SaveManager] Progress reset")
	return nil
}

// DecodePlayerState 解析存档 JSON，存档中缺失的字段保留默认值
//
// 解析失败时返回默认状态和错误
func DecodePlayerState(data []byte, catalog *config.MoveCatalog, worldCount int) (*PlayerState, error) {
	state := NewPlayerState(catalog, worldCount)

	saved := PlayerState{
		PlayerStats:  state.PlayerStats,
		CurrentWorld: state.CurrentWorld,
		Settings:     state.Settings,
	}
	if err := json.Unmarshal(data, &saved); err != nil {
		return state, fmt.Errorf("failed to unmarshal game state: %w", err)
	}

	state.reconcile(&saved)
	return state, nil
}
