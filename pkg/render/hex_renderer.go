// pkg/render/hex_renderer.go
package render

import (
	"fmt"
	"image/color"

	"go-hexpath/internal/config"
	"go-hexpath/pkg/hexmap"
	"go-hexpath/pkg/pathfinding"
	"go-hexpath/pkg/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HexRenderer рисует видимую часть карты с разметкой поиска.
type HexRenderer struct {
	Theme config.Theme

	whiteImg *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
	fontFace font.Face
}

func NewHexRenderer(theme config.Theme) *HexRenderer {
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)

	return &HexRenderer{
		Theme:    theme,
		whiteImg: whiteImg,
		fillVs:   make([]ebiten.Vertex, 0, 18),
		fillIs:   make([]uint16, 0, 18),
		strokeVs: make([]ebiten.Vertex, 0, 36),
		strokeIs: make([]uint16, 0, 36),
		fontFace: basicfont.Face7x13,
	}
}

// Draw рисует гексы, попадающие в камеру, затем подписи и стрелки к
// родителям, если масштаб позволяет их прочитать.
func (r *HexRenderer) Draw(screen *ebiten.Image, cam *view.Camera, hm *hexmap.HexMap, s *pathfinding.Session, hovered *hexmap.Tile) {
	screen.Fill(config.BackgroundColor)

	tiles := hm.VisibleTiles(cam.Viewport())
	for _, tile := range tiles {
		fill := view.TileFill(view.Classify(tile, s), r.Theme.Tiles)
		path := r.hexagonPath(cam, tile.Center)
		r.fill(screen, path, fill)
		r.stroke(screen, path, r.Theme.Tiles.Outline, float32(config.StrokeWidth*cam.Scale/2+0.5))
	}

	if hovered != nil {
		r.stroke(screen, r.hexagonPath(cam, hovered.Center), config.LineColor, float32(config.StrokeWidth*2))
	}

	if cam.Scale < config.LabelMinScale {
		return
	}
	for _, tile := range tiles {
		if !tile.Path.Checked || tile.Impassable {
			continue
		}
		r.drawParentArrow(screen, cam, hm, tile)
		r.drawLabels(screen, cam, s, tile)
	}
}

func (r *HexRenderer) hexagonPath(cam *view.Camera, center hexmap.Point) *vector.Path {
	path := &vector.Path{}
	for i, p := range hexmap.HexagonPoints(center) {
		x, y := cam.MapToScreen(p)
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) fill(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, c)
	target.DrawTriangles(r.fillVs, r.fillIs, r.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) stroke(target *ebiten.Image, path *vector.Path, c color.RGBA, width float32) {
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	paint(r.strokeVs, c)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}

// drawParentArrow рисует короткую линию от центра гекса в сторону родителя.
func (r *HexRenderer) drawParentArrow(screen *ebiten.Image, cam *view.Camera, hm *hexmap.HexMap, tile *hexmap.Tile) {
	dir, ok := view.ParentDirection(hm, tile)
	if !ok {
		return
	}
	const inner, outer = 0.45, 0.8
	radius := hexmap.HexagonVerticalDistance
	x0, y0 := cam.MapToScreen(hexmap.Point{X: tile.Center.X + dir.X*radius*inner, Y: tile.Center.Y + dir.Y*radius*inner})
	x1, y1 := cam.MapToScreen(hexmap.Point{X: tile.Center.X + dir.X*radius*outer, Y: tile.Center.Y + dir.Y*radius*outer})
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(config.StrokeWidth), r.Theme.Tiles.Outline, true)
}

// drawLabels подписывает стоимость и эвристику, если алгоритм их считает.
func (r *HexRenderer) drawLabels(screen *ebiten.Image, cam *view.Camera, s *pathfinding.Session, tile *hexmap.Tile) {
	x, y := cam.MapToScreen(tile.Center)
	clr := r.Theme.Tiles.Text

	var lines []string
	if s.Algorithm.UsesCost() {
		lines = append(lines, fmt.Sprintf("c%d", tile.Path.Cost))
	}
	if s.Algorithm.UsesHeuristic() {
		lines = append(lines, fmt.Sprintf("h%d", tile.Path.Heuristic))
	}

	lineHeight := r.fontFace.Metrics().Height.Ceil()
	top := int(y) - lineHeight*len(lines)/2 + lineHeight - config.TextOffsetY
	for i, line := range lines {
		width := text.BoundString(r.fontFace, line).Dx()
		text.Draw(screen, line, r.fontFace, int(x)-width/2, top+i*lineHeight, clr)
	}
}

// DrawCharacter рисует персонажа: тело с обводкой и две ноги.
func (r *HexRenderer) DrawCharacter(screen *ebiten.Image, cam *view.Camera, position hexmap.Point, radius float64) {
	colors := r.Theme.Character
	x, y := cam.MapToScreen(position)
	rad := float32(radius * cam.Scale)
	fx, fy := float32(x), float32(y)

	feet := rad / 3
	vector.DrawFilledCircle(screen, fx-rad/2, fy+rad*0.9, feet, colors.Feet, true)
	vector.DrawFilledCircle(screen, fx+rad/2, fy+rad*0.9, feet, colors.Feet, true)
	vector.StrokeCircle(screen, fx-rad/2, fy+rad*0.9, feet, 1, colors.Outline, true)
	vector.StrokeCircle(screen, fx+rad/2, fy+rad*0.9, feet, 1, colors.Outline, true)

	vector.DrawFilledCircle(screen, fx, fy, rad, colors.Body, true)
	vector.StrokeCircle(screen, fx, fy, rad, float32(config.StrokeWidth), colors.Outline, true)
}
