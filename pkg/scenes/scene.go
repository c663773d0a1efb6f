// Package scenes 菜单、世界选择、商店和战斗场景
package scenes

import (
	"log"

	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/game"
	"github.com/gonewx/phoenix/pkg/input"
)

// Scene 是 game.Scene 的别名
type Scene = game.Scene

// Context 场景共享的依赖
type Context struct {
	Bundle *config.Bundle
	Saves  *game.SaveManager
	Audio  *game.AudioManager
	Scenes *game.SceneManager
	// Input 指针输入来源，测试中替换为假输入
	Input input.PointerSource
	// Seed 返回每局战斗的随机种子
	Seed func() int64
}

// Register 把全部场景注册到场景管理器
func Register(ctx *Context) {
	ctx.Scenes.Register(game.SceneMenu, func() game.Scene { return NewMenuScene(ctx) })
	ctx.Scenes.Register(game.SceneWorldSelect, func() game.Scene { return NewWorldSelectScene(ctx) })
	ctx.Scenes.Register(game.SceneShop, func() game.Scene { return NewShopScene(ctx) })
	ctx.Scenes.SetLevelFactory(func(worldID int) game.Scene {
		s, err := NewGameScene(ctx, worldID)
		if err != nil {
			log.Printf("[Scenes] Warning: cannot load world %d: %v", worldID, err)
			return nil
		}
		return s
	})
}

func (c *Context) player() *game.PlayerState {
	return c.Saves.State()
}

func (c *Context) screen() (float64, float64) {
	return c.Bundle.Gameplay.Screen.Width, c.Bundle.Gameplay.Screen.Height
}

// pointerTap 跟踪一次完整的点击（按下到抬起）
type pointerTap struct {
	tracker *input.PointerTracker
	now     float64
}

func newPointerTap(src input.PointerSource) *pointerTap {
	return &pointerTap{tracker: input.NewPointerTracker(src, nil)}
}

// update 推进一帧，本帧完成点击时返回起止坐标
func (p *pointerTap) update(deltaTime float64) (startX, startY, endX, endY float64, ok bool) {
	p.now += deltaTime
	p.tracker.Update(p.now)
	if !p.tracker.JustReleased() {
		return 0, 0, 0, 0, false
	}
	info := p.tracker.Info()
	return float64(info.StartX), float64(info.StartY), float64(info.CurrentX), float64(info.CurrentY), true
}
