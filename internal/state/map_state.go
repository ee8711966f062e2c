// internal/state/map_state.go
package state

import (
	"log"

	"go-hexpath/internal/app"
	"go-hexpath/internal/config"
	"go-hexpath/internal/event"
	"go-hexpath/internal/ui"
	"go-hexpath/pkg/hexmap"
	"go-hexpath/pkg/render"
	"go-hexpath/pkg/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MapState — основной экран: карта, персонаж и панель настроек.
type MapState struct {
	sm       *StateMachine
	world    *app.World
	camera   *view.Camera
	renderer *render.HexRenderer
	options  *ui.OptionsPanel
	info     *ui.InfoPanel

	scrollAnchor [2]int // позиция курсора при нажатии средней кнопки
}

func NewMapState(sm *StateMachine, world *app.World, theme config.Theme) *MapState {
	camera := view.NewCamera(config.ScreenWidth, config.ScreenHeight)
	camera.CenterOn(world.Character.Position)

	return &MapState{
		sm:       sm,
		world:    world,
		camera:   camera,
		renderer: render.NewHexRenderer(theme),
		options:  ui.NewOptionsPanel(),
		info:     ui.NewInfoPanel(config.ButtonMargin, config.ScreenHeight-90),
	}
}

// Enter подписывает карту на события мира. Пауза лежит поверх карты,
// так что повторного входа не бывает.
func (m *MapState) Enter() {
	m.world.Events.Subscribe(event.PathFound, m)
	m.world.Events.Subscribe(event.PathNotFound, m)
	m.world.Events.Subscribe(event.MapRegenerated, m)
	m.world.Events.Subscribe(event.CharacterArrived, m)
}

// OnEvent — обновляет строку состояния
func (m *MapState) OnEvent(e event.Event) {
	switch e.Type {
	case event.PathFound:
		res := e.Data.(event.PathResult)
		m.info.Message = "Path found"
		log.Printf("path found: %d tiles, %d checked", len(res.Path), res.Checked)
	case event.PathNotFound:
		res := e.Data.(event.PathResult)
		m.info.Message = "No path"
		log.Printf("no path: %d checked", res.Checked)
	case event.MapRegenerated:
		m.info.Message = "Map regenerated"
	case event.CharacterArrived:
		m.info.Message = "Arrived"
	}
}

func (m *MapState) Update(deltaTime float64) {
	if pausePressed() {
		m.sm.Push(NewPauseState(m.sm))
		return
	}

	m.updateCamera(deltaTime)

	mx, my := ebiten.CursorPosition()
	m.options.Sync(m.world, m.renderer.Theme.Name)
	overPanel := m.options.Contains(mx, my)
	action := m.options.Click(mx, my, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))

	if action == ui.ActionTheme || inpututil.IsKeyJustPressed(ebiten.KeyC) {
		m.renderer.Theme = config.NextTheme(m.renderer.Theme.Name)
	}

	in := app.Input{
		Cursor:       m.camera.ScreenToMap(float64(mx), float64(my)),
		CursorInside: m.camera.Contains(float64(mx), float64(my)) && !overPanel,
		FollowPath: ebiten.IsKeyPressed(ebiten.KeySpace) ||
			(!overPanel && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)),
		FinishPath: ebiten.IsKeyPressed(ebiten.KeyF),
		Regenerate: ebiten.IsKeyPressed(ebiten.KeyR) || action == ui.ActionRegenerate,
		Obstacles:  ebiten.IsKeyPressed(ebiten.Key3) || action == ui.ActionObstacles,
		Algorithm:  ebiten.IsKeyPressed(ebiten.Key1) || action == ui.ActionAlgorithm,
		Style:      ebiten.IsKeyPressed(ebiten.Key2) || action == ui.ActionStyle,
	}
	m.world.Update(in, deltaTime)
}

// updateCamera — зум колесом, прокрутка WASD или средней кнопкой мыши.
func (m *MapState) updateCamera(deltaTime float64) {
	_, wheelY := ebiten.Wheel()
	switch {
	case wheelY > 0:
		m.camera.Zoom(1, deltaTime)
	case wheelY < 0:
		m.camera.Zoom(-1, deltaTime)
	}
	m.camera.Update()

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		m.scrollAnchor = [2]int{mx, my}
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		rate := config.CameraMiddleScrollRate * deltaTime
		m.camera.Scroll(float64(mx-m.scrollAnchor[0])*rate, float64(my-m.scrollAnchor[1])*rate)
	} else {
		step := config.CameraScrollSpeed * deltaTime
		var dx, dy float64
		if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
			dy -= step
		}
		if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
			dy += step
		}
		if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
			dx -= step
		}
		if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
			dx += step
		}
		m.camera.Scroll(dx, dy)
	}

	m.camera.KeepInside(m.world.Map.Boundaries)
}

func (m *MapState) Draw(screen *ebiten.Image) {
	var hovered *hexmap.Tile
	if !m.world.CharacterMoving() {
		hovered = m.world.TileUnderCursor
	}
	m.renderer.Draw(screen, m.camera, m.world.Map, m.world.Session, hovered)
	m.renderer.DrawCharacter(screen, m.camera, m.world.Character.Position, app.CharacterRadius)

	mx, my := ebiten.CursorPosition()
	m.options.Draw(screen, mx, my)
	m.info.Draw(screen, m.world)
}

func (m *MapState) Exit() {
	m.world.Events.Unsubscribe(event.PathFound, m)
	m.world.Events.Unsubscribe(event.PathNotFound, m)
	m.world.Events.Unsubscribe(event.MapRegenerated, m)
	m.world.Events.Unsubscribe(event.CharacterArrived, m)
}
