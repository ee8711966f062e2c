// cmd/hexterm/main.go
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"go-hexpath/internal/app"
	"go-hexpath/internal/config"
	"go-hexpath/internal/terminal"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON settings file")
	mapFile := flag.String("map", "", "path to a text map layout")
	width := flag.Int("width", 0, "map width in tiles")
	height := flag.Int("height", 0, "map height in tiles")
	seed := flag.Int64("seed", 0, "obstacle seed, 0 picks one from the clock")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "", "write the log to this file instead of discarding it")
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
	if *mute {
		settings.Sound = false
	}

	world, err := app.NewWorld(settings)
	if err != nil {
		log.Fatal(err)
	}
	theme, err := config.ThemeByName(settings.Theme)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// экран занят картой, лог идёт в файл или никуда
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			screen.Fini()
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("map %dx%d, seed %d, %s, %s", world.Map.Width(), world.Map.Height(), world.Rng.Seed(), world.Session.Algorithm, world.Session.Style)

	chime := terminal.NewChime(settings.Sound)
	chime.Subscribe(world.Events)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	terminal.New(screen, world, theme).Run(ctx)
	stop()

	chime.Close()
	screen.Fini()
}
