// internal/terminal/terminal.go
package terminal

import (
	"context"
	"log"
	"time"

	"go-hexpath/internal/app"
	"go-hexpath/internal/config"
	"go-hexpath/internal/event"
	"go-hexpath/pkg/hexmap"
	"go-hexpath/pkg/pathfinding"
	"go-hexpath/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

const helpLine = "arrows: cursor  enter: step/follow  f: finish  h: hold  a/s/o: options  r: regenerate  c: theme  q: quit"

// Terminal — текстовый фронтенд: курсор двигается стрелками, а ввод
// превращается в app.Input так же, как у графического.
type Terminal struct {
	screen   tcell.Screen
	world    *app.World
	renderer *Renderer
	viewport Viewport

	Cursor  hexmap.Index
	Message string // последнее событие

	// нажатия, накопленные с прошлого кадра
	pending app.Input
	// hold держит FollowPath нажатым в пошаговом режиме
	hold bool
}

// New связывает экран с миром. Экран уже должен быть инициализирован.
func New(screen tcell.Screen, world *app.World, theme config.Theme) *Terminal {
	width, height := screen.Size()
	t := &Terminal{
		screen:   screen,
		world:    world,
		renderer: NewRenderer(theme),
		viewport: NewViewport(width, height),
	}
	if tile := world.Map.TileByPoint(world.Character.Position); tile != nil {
		t.Cursor = tile.Index
	}
	t.viewport.Follow(t.Cursor, world.Map.Width(), world.Map.Height())

	world.Events.Subscribe(event.PathFound, t)
	world.Events.Subscribe(event.PathNotFound, t)
	world.Events.Subscribe(event.MapRegenerated, t)
	world.Events.Subscribe(event.CharacterArrived, t)
	return t
}

// Viewport returns the visible window of the map.
func (t *Terminal) Viewport() Viewport {
	return t.viewport
}

// Holding reports whether FollowPath is held by the h toggle.
func (t *Terminal) Holding() bool {
	return t.hold
}

// Theme returns the current palette.
func (t *Terminal) Theme() config.Theme {
	return t.renderer.Theme
}

// OnEvent — обновляет строку сообщения
func (t *Terminal) OnEvent(e event.Event) {
	switch e.Type {
	case event.PathFound:
		res := e.Data.(event.PathResult)
		t.Message = "Path found"
		log.Printf("path found: %d tiles, %d checked", len(res.Path), res.Checked)
	case event.PathNotFound:
		t.Message = "No path"
	case event.MapRegenerated:
		t.Message = "Map regenerated"
	case event.CharacterArrived:
		t.Message = "Arrived"
	}
}

// HandleEvent разбирает событие терминала. Возвращает false, если нужно выйти.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev)

	case *tcell.EventMouse:
		x, y := ev.Position()
		idx, ok := t.viewport.IndexAt(x, y)
		if !ok || !t.world.Map.Contains(idx.X, idx.Y) {
			return true
		}
		t.Cursor = idx
		if ev.Buttons()&tcell.Button1 != 0 {
			t.pending.FollowPath = true
		}

	case *tcell.EventResize:
		t.screen.Sync()
		t.viewport.Resize(t.screen.Size())
	}
	return true
}

func (t *Terminal) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		t.moveCursor(0, -1)
	case tcell.KeyDown:
		t.moveCursor(0, 1)
	case tcell.KeyLeft:
		t.moveCursor(-1, 0)
	case tcell.KeyRight:
		t.moveCursor(1, 0)
	case tcell.KeyEnter:
		t.pending.FollowPath = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			t.pending.FollowPath = true
		case 'f':
			t.pending.FinishPath = true
		case 'h':
			t.hold = !t.hold
		case 'r':
			t.pending.Regenerate = true
		case 'a', '1':
			t.pending.Algorithm = true
		case 's', '2':
			t.pending.Style = true
		case 'o', '3':
			t.pending.Obstacles = true
		case 'c':
			t.renderer.Theme = config.NextTheme(t.renderer.Theme.Name)
		case 'l':
			t.renderer.Labels = !t.renderer.Labels
		}
	}
	return true
}

func (t *Terminal) moveCursor(dx, dy int) {
	hm := t.world.Map
	t.Cursor.X = utils.Clamp(0, t.Cursor.X+dx, hm.Width()-1)
	t.Cursor.Y = utils.Clamp(0, t.Cursor.Y+dy, hm.Height()-1)
}

// Step прогоняет один кадр логики с накопленным вводом.
func (t *Terminal) Step(dt float64) {
	hm := t.world.Map

	in := t.pending
	replay := false
	if t.hold && t.world.Session.Style == pathfinding.StepByStep {
		if in.FollowPath && t.world.Controls.FollowPath.Current {
			// явное нажатие поверх удержания: кадр отпускания, само нажатие
			// уходит в следующий кадр
			in.FollowPath = false
			replay = true
		} else {
			in.FollowPath = true
		}
	}
	// курсор мог остаться за картой после смены карты
	t.Cursor.X = utils.Clamp(0, t.Cursor.X, hm.Width()-1)
	t.Cursor.Y = utils.Clamp(0, t.Cursor.Y, hm.Height()-1)
	if tile := hm.Tile(t.Cursor.X, t.Cursor.Y); tile != nil {
		in.Cursor = tile.Center
		in.CursorInside = true
	}

	t.world.Update(in, dt)
	t.pending = app.Input{FollowPath: replay}
	t.viewport.Follow(t.Cursor, hm.Width(), hm.Height())
}

// StatusLines собирает строки под картой.
func (t *Terminal) StatusLines() []string {
	options := t.world.OptionsSummary() + "  Theme: " + t.renderer.Theme.Name
	if t.hold {
		options += "  [hold]"
	}
	summary := ""
	for i, line := range t.world.SearchSummary() {
		if i > 0 {
			summary += "  "
		}
		summary += line
	}
	return []string{options, summary, t.Message, helpLine}
}

// Draw перерисовывает экран.
func (t *Terminal) Draw() {
	t.renderer.Draw(t.screen, t.world, t.viewport, t.Cursor, t.StatusLines())
	t.screen.Show()
}

// Run крутит цикл до выхода пользователя или отмены ctx.
func (t *Terminal) Run(ctx context.Context) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return // экран закрыт
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	lastUpdate := time.Now()
	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-events:
			if !t.HandleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(lastUpdate).Seconds()
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			lastUpdate = now
			t.Step(dt)
			t.Draw()
		}
	}
}
