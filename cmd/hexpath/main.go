// cmd/hexpath/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-hexpath/internal/app"
	"go-hexpath/internal/config"
	"go-hexpath/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a JSON settings file")
	mapFile := flag.String("map", "", "path to a text map layout")
	width := flag.Int("width", 0, "map width in tiles")
	height := flag.Int("height", 0, "map height in tiles")
	seed := flag.Int64("seed", 0, "obstacle seed, 0 picks one from the clock")
	menu := flag.Bool("menu", false, "start from the title screen")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *mapFile != "" {
		settings.MapFile = *mapFile
	}
	if *width > 0 {
		settings.MapWidth = *width
	}
	if *height > 0 {
		settings.MapHeight = *height
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	world, err := app.NewWorld(settings)
	if err != nil {
		log.Fatal(err)
	}
	theme, err := config.ThemeByName(settings.Theme)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("map %dx%d, seed %d, %s, %s", world.Map.Width(), world.Map.Height(), world.Rng.Seed(), world.Session.Algorithm, world.Session.Style)

	sm := state.NewStateMachine() // Создаём машину состояний
	newMap := func() state.State { return state.NewMapState(sm, world, theme) }
	if *menu {
		sm.SetState(state.NewMenuState(sm, newMap))
	} else {
		sm.SetState(newMap())
	}

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Hexagonal Pathfinding")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
