// internal/app/world.go
package app

import (
	"fmt"
	"log"
	"os"

	"go-hexpath/internal/config"
	"go-hexpath/internal/event"
	"go-hexpath/internal/utils"
	"go-hexpath/pkg/hexmap"
	"go-hexpath/pkg/pathfinding"
)

// World связывает карту, сессию поиска и персонажа и прогоняет их логику
// раз в кадр. Отрисовка живёт во фронтендах.
type World struct {
	Map       *hexmap.HexMap
	Session   *pathfinding.Session
	Character *Character
	Controls  *Controls
	Events    *event.Dispatcher
	Rng       *utils.PRNGService

	ObstacleFrequency hexmap.ObstacleFrequency
	// TileUnderCursor — проходимый гекс под курсором, nil если такого нет
	TileUnderCursor *hexmap.Tile

	sinceLastStep utils.AccumulatedTime
	// пара start/destination, о результате которой уже сообщили
	notified     bool
	notifiedPair [2]hexmap.TileID
}

// NewWorld строит мир по настройкам. Карта берётся из MapFile, если он
// задан, иначе генерируется случайно, и тогда вокруг центра расчищается
// место для персонажа.
func NewWorld(settings config.Settings) (*World, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	rng := utils.NewPRNGService(settings.Seed)

	var hm *hexmap.HexMap
	if settings.MapFile != "" {
		// карту из файла не трогаем, персонаж встанет на ближайший проходимый гекс
		loaded, err := loadMapFile(settings.MapFile)
		if err != nil {
			return nil, err
		}
		if loaded.NearestPassable(loaded.CenterTile()) == nil {
			return nil, fmt.Errorf("failed to place character on %s: %w", settings.MapFile, hexmap.ErrNoPassableTile)
		}
		hm = loaded
	} else {
		generated, err := hexmap.NewHexMap(settings.MapWidth, settings.MapHeight, settings.ObstacleFrequency, rng)
		if err != nil {
			return nil, err
		}
		// персонаж не должен стоять в стене
		generated.ClearAroundPoint(generated.CenterTile().Center)
		hm = generated
	}

	// Validate already accepted both names
	algorithm, _ := pathfinding.ParseAlgorithm(settings.Algorithm)
	style, _ := pathfinding.ParseStyle(settings.Style)

	session := pathfinding.NewSession()
	session.Algorithm = algorithm
	session.Style = style
	session.AppendStartTile = settings.AppendStartTile

	return NewWorldWithMap(hm, session, settings.ObstacleFrequency, rng), nil
}

// NewWorldWithMap собирает мир из готовых частей. Карта не меняется:
// персонаж ставится на проходимый гекс, ближайший к центру.
func NewWorldWithMap(hm *hexmap.HexMap, session *pathfinding.Session, freq hexmap.ObstacleFrequency, rng *utils.PRNGService) *World {
	center := hm.CenterTile()
	if start := hm.NearestPassable(center); start != nil {
		center = start
	}

	return &World{
		Map:               hm,
		Session:           session,
		Character:         NewCharacter(center.Center),
		Controls:          NewControls(),
		Events:            event.NewDispatcher(),
		Rng:               rng,
		ObstacleFrequency: freq,
		sinceLastStep:     utils.AccumulatedTime{Required: config.StepInterval},
	}
}

func loadMapFile(path string) (*hexmap.HexMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}
	hm, err := hexmap.ParseLayout(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", path, err)
	}
	return hm, nil
}

// Update прогоняет один кадр логики.
func (w *World) Update(in Input, dt float64) {
	w.Controls.Update(in, dt)

	if w.Character.ClearOnDestination() {
		w.ClearSession()
		w.Events.Dispatch(event.Event{Type: event.CharacterArrived, Data: w.Character.Position})
	}

	c := w.Controls
	if c.Regenerate.JustPressed() {
		w.RegenerateMap()
	}
	if c.Obstacles.JustPressed() {
		w.ChangeObstacleFrequency()
	}
	if c.Algorithm.JustPressed() {
		w.ChangeAlgorithm()
	}
	if c.Style.JustPressed() {
		w.ChangeStyle()
	}

	if c.FollowPath.JustPressed() && w.Session.Finished {
		w.Character.SendToSelectedPath(w.Session.Path(w.Map))
	}

	w.DetectTileUnderCursor()
	w.DetectPathToTileUnderCursor(dt)
	w.Character.MoveThroughPath()
}

// CharacterMoving reports whether the character walks a path.
func (w *World) CharacterMoving() bool {
	return w.Character.HasPath()
}

// OptionsAllowed reports whether algorithm, style and map may change now.
func (w *World) OptionsAllowed() bool {
	return pathfinding.AllowOptionChanges(w.Session, w.CharacterMoving())
}

// DetectTileUnderCursor запоминает проходимый гекс под курсором, если
// сейчас не идёт поиск и персонаж стоит.
func (w *World) DetectTileUnderCursor() {
	if w.CharacterMoving() || w.Session.Pending {
		return
	}

	w.TileUnderCursor = nil
	if !w.Controls.CursorInside {
		return
	}
	if tile := w.Map.TileByPoint(w.Controls.Cursor); tile != nil && !tile.Impassable {
		w.TileUnderCursor = tile
	}
}

// DetectPathToTileUnderCursor ведёт поиск от гекса персонажа к гексу под
// курсором.
//
// В мгновенном режиме путь пересчитывается каждый кадр. В пошаговом шаг
// делается по нажатию FollowPath; FinishPath досчитывает поиск сразу; при
// долгом удержании FollowPath шаги идут сами, не чаще config.StepInterval,
// и останавливаются перед последним шагом восстановления пути.
func (w *World) DetectPathToTileUnderCursor(dt float64) {
	if w.CharacterMoving() {
		return
	}

	s := w.Session
	c := w.Controls
	pending := s.Pending
	instant := s.Style == pathfinding.Instant

	followPressed := c.FollowPath.JustPressed()
	forceFinish := pending && c.FinishPath.JustPressed()
	hold := pending && c.SpeedUpPath.Reached() && w.sinceLastStep.Reached()

	calculate := instant || followPressed || forceFinish || hold
	w.sinceLastStep.Update(!calculate, dt)
	if !calculate {
		return
	}

	var start, destination *hexmap.Tile
	if pending {
		start = w.Map.ByID(s.StartingTile)
		destination = w.Map.ByID(s.DestinationTile)
	} else {
		start = w.Map.TileByPoint(w.Character.Position)
		destination = w.TileUnderCursor
	}

	phase := pathfinding.FindPath(s, w.Map, start, destination, pathfinding.Options{
		InterruptBeforeLastStep: hold,
		ForceInstant:            forceFinish,
	})
	w.notifyPhase(phase)
}

// notifyPhase сообщает о результате поиска один раз на пару гексов.
func (w *World) notifyPhase(phase pathfinding.Phase) {
	if phase != pathfinding.PhaseFinished {
		w.notified = false
		return
	}

	s := w.Session
	pair := [2]hexmap.TileID{s.StartingTile, s.DestinationTile}
	if w.notified && w.notifiedPair == pair {
		return
	}
	w.notified = true
	w.notifiedPair = pair

	result := event.PathResult{
		Start:       s.StartingTile,
		Destination: s.DestinationTile,
		Path:        s.FoundPath,
		Checked:     len(s.CheckedTiles),
	}
	if s.DestinationReached {
		w.Events.Dispatch(event.Event{Type: event.PathFound, Data: result})
	} else {
		w.Events.Dispatch(event.Event{Type: event.PathNotFound, Data: result})
	}
}

// ClearSession сбрасывает поиск и разметку гексов.
func (w *World) ClearSession() {
	pathfinding.ClearSession(w.Session)
	w.notified = false
	w.Events.Dispatch(event.Event{Type: event.SessionCleared})
}

// RegenerateMap заново расставляет препятствия вокруг персонажа.
func (w *World) RegenerateMap() bool {
	if !w.OptionsAllowed() {
		return false
	}
	w.Map.Regenerate(w.ObstacleFrequency, w.Rng, w.Character.Position)
	w.ClearSession()
	w.TileUnderCursor = nil
	log.Printf("map regenerated: %s obstacles", w.ObstacleFrequency)
	w.Events.Dispatch(event.Event{Type: event.MapRegenerated, Data: event.MapInfo{
		Frequency: w.ObstacleFrequency,
		Seed:      w.Rng.Seed(),
	}})
	return true
}

// ChangeObstacleFrequency переключает частоту препятствий и сразу
// перегенерирует карту.
func (w *World) ChangeObstacleFrequency() bool {
	if !w.OptionsAllowed() {
		return false
	}
	w.ObstacleFrequency = w.ObstacleFrequency.Next()
	return w.RegenerateMap()
}

// ChangeAlgorithm переключает алгоритм. Старый результат сбрасывается,
// чтобы следующий поиск шёл уже новым алгоритмом.
func (w *World) ChangeAlgorithm() bool {
	if !w.OptionsAllowed() {
		return false
	}
	pathfinding.ChangeAlgorithm(w.Session)
	w.ClearSession()
	return true
}

// ChangeStyle переключает мгновенный и пошаговый режимы.
func (w *World) ChangeStyle() bool {
	if !w.OptionsAllowed() {
		return false
	}
	pathfinding.ChangeStyle(w.Session)
	w.notified = false
	w.Events.Dispatch(event.Event{Type: event.SessionCleared})
	return true
}
