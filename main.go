package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/phoenix/pkg/app"
	"github.com/gonewx/phoenix/pkg/embedded"
)

var (
	verbose = flag.Bool("verbose", false, "详细日志")
	world   = flag.Int("world", 0, "直接进入指定世界 (1-10)")
	reset   = flag.Bool("reset", false, "启动时清空存档")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		World:   *world,
		Reset:   *reset,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	w, h := gameApp.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Phoenix: Flying Legends")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)
	gameApp.SaveOnExit()
	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}
