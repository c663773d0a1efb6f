package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 游戏场景（菜单、世界选择、商店、战斗）
// 每个场景有独立的更新和绘制逻辑
type Scene interface {
	// Update 按帧推进场景，deltaTime 单位为秒
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：场景在程序退出时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 游戏窗口关闭
//   - 移动端切到后台
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}

// SceneID 场景标识
type SceneID string

const (
	SceneMenu        SceneID = "menu"
	SceneWorldSelect SceneID = "world_select"
	SceneShop        SceneID = "shop"
	SceneGame        SceneID = "game"
)
