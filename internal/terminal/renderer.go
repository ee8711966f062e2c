// internal/terminal/renderer.go
package terminal

import (
	"fmt"
	"image/color"

	"go-hexpath/internal/app"
	"go-hexpath/internal/config"
	"go-hexpath/pkg/hexmap"
	"go-hexpath/pkg/pathfinding"
	"go-hexpath/pkg/view"

	"github.com/gdamore/tcell/v2"
)

// Глифы состояний гекса, по два символа на гекс
var glyphs = map[view.TileState]string{
	view.StatePassable:   "..",
	view.StateImpassable: "##",
	view.StateChecked:    "::",
	view.StateCandidate:  "oo",
	view.StateNext:       ">>",
	view.StateCurrent:    "**",
	view.StatePath:       "==",
}

const characterGlyph = "()"

// Renderer рисует карту символами в терминале.
type Renderer struct {
	Theme config.Theme
	// Labels включает подписи стоимости на просмотренных гексах
	Labels bool
}

func NewRenderer(theme config.Theme) *Renderer {
	return &Renderer{Theme: theme, Labels: true}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// TileCell возвращает два символа и стиль для гекса.
func (r *Renderer) TileCell(t *hexmap.Tile, s *pathfinding.Session) (string, tcell.Style) {
	state := view.Classify(t, s)
	bg := view.TileFill(state, r.Theme.Tiles)
	style := tcell.StyleDefault.Background(toTcell(bg)).Foreground(toTcell(view.ContrastText(bg)))

	if r.Labels && (state == view.StateChecked || state == view.StateCandidate) {
		return label(t, s), style
	}
	return glyphs[state], style
}

// label — стоимость гекса, а для жадного поиска эвристика.
func label(t *hexmap.Tile, s *pathfinding.Session) string {
	value := t.Path.Cost
	if s != nil && !s.Algorithm.UsesCost() {
		value = t.Path.Heuristic
	}
	if value > 99 {
		return "++"
	}
	return fmt.Sprintf("%2d", value)
}

// Draw рисует видимые гексы, персонажа, курсор и строки состояния.
func (r *Renderer) Draw(screen tcell.Screen, w *app.World, vp Viewport, cursor hexmap.Index, status []string) {
	screen.Fill(' ', tcell.StyleDefault.Background(toTcell(config.BackgroundColor)))

	var characterTile hexmap.TileID = hexmap.NoTile
	if t := w.Map.TileByPoint(w.Character.Position); t != nil {
		characterTile = t.ID
	}

	for y := vp.Origin.Y; y < vp.Origin.Y+vp.Rows; y++ {
		for x := vp.Origin.X; x < vp.Origin.X+vp.Cols; x++ {
			tile := w.Map.Tile(x, y)
			if tile == nil {
				continue
			}
			sx, sy, _ := vp.CellOf(tile.Index)

			glyph, style := r.TileCell(tile, w.Session)
			if tile.ID == characterTile {
				glyph = characterGlyph
				style = style.Foreground(toTcell(r.Theme.Character.Body)).Bold(true)
			}
			if tile.Index == cursor && !w.CharacterMoving() {
				_, bg, _ := style.Decompose()
				style = style.Background(darken(bg))
			}
			putString(screen, sx, sy, glyph, style)
		}
	}

	_, height := screen.Size()
	textStyle := tcell.StyleDefault.Foreground(toTcell(config.TextLightColor)).Background(toTcell(config.BackgroundColor))
	top := height - len(status)
	for i, line := range status {
		putString(screen, 0, top+i, line, textStyle)
	}
}

func darken(c tcell.Color) tcell.Color {
	r, g, b := c.RGB()
	d := view.DarkenColor(color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
	return toTcell(d)
}

func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
