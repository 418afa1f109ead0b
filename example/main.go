//go:build example

// An interactive polygon editor demonstrating the polymesh editing engine
// with Ebitengine as the host shell.
//
// Controls:
//
//	drag vertex      move it (hold shift to snap to the grid)
//	drag elsewhere   marquee-select vertices
//	A                select all vertices
//	S                split the edge nearest the cursor
//	E                extrude the edge nearest the cursor
//	D                delete the selected vertices
//	C                toggle the curve on the edge nearest the cursor
//	R / T            rotate / scale the selection by dragging
package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	polymesh "github.com/UnityPatterns/PolyMesh"
)

const (
	screenW   = 800
	screenH   = 600
	pxPerUnit = 120
)

var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

type editor struct {
	poly     *polymesh.Polygon
	settings polymesh.Settings
	sel      polymesh.Selection

	drag      *polymesh.DragSession
	dragStart polymesh.Point
	marquee   bool

	front polymesh.Mesh
	dirty bool
}

func newEditor() *editor {
	e := &editor{
		poly:     polymesh.New(),
		settings: polymesh.DefaultSettings(),
		dirty:    true,
	}
	return e
}

func toLocal(mx, my int) polymesh.Point {
	return polymesh.Pt(
		float64(mx-screenW/2)/pxPerUnit,
		float64(screenH/2-my)/pxPerUnit,
	)
}

func toScreen(pt polymesh.Point) (float32, float32) {
	return float32(pt.X*pxPerUnit) + screenW/2, screenH/2 - float32(pt.Y*pxPerUnit)
}

func (e *editor) Update() error {
	cursor := toLocal(ebiten.CursorPosition())

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		e.beginDrag(cursor)
	}
	if e.drag != nil || e.marquee {
		e.continueDrag(cursor)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		e.endDrag(cursor)
	}
	e.handleKeys(cursor)

	shape := ebiten.CursorShapeDefault
	if e.drag != nil {
		switch e.drag.Cursor() {
		case polymesh.CursorMove:
			shape = ebiten.CursorShapeMove
		case polymesh.CursorRotate, polymesh.CursorScale:
			shape = ebiten.CursorShapeCrosshair
		}
	}
	ebiten.SetCursorShape(shape)

	if e.dirty {
		e.front, _, _ = e.settings.Synthesize(e.poly)
		e.dirty = false
	}
	return nil
}

func (e *editor) beginDrag(cursor polymesh.Point) {
	e.dragStart = cursor
	if i, ok := polymesh.NearestVertex(e.poly.Positions(), cursor); ok &&
		e.poly.Position(i).Distance(cursor) < 0.1 {
		if !e.sel.Contains(i) {
			e.sel = polymesh.Selection{i}
		}
		e.drag = polymesh.BeginDrag(e.poly, e.sel)
		return
	}
	e.marquee = true
}

func (e *editor) continueDrag(cursor polymesh.Point) {
	if e.drag == nil {
		return
	}
	snap := polymesh.SnapConfig{
		Enabled: ebiten.IsKeyPressed(ebiten.KeyShift),
		Unit:    0.25,
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyR):
		c := e.drag.Centroid()
		e.drag.Rotate(c, e.dragStart.Sub(c), cursor.Sub(c))
	case ebiten.IsKeyPressed(ebiten.KeyT):
		c := e.drag.Centroid()
		e.drag.Scale(c, cursor.Sub(e.dragStart), ebiten.IsKeyPressed(ebiten.KeyShift))
	default:
		e.drag.Translate(cursor.Sub(e.dragStart), snap)
	}
	e.dirty = true
}

func (e *editor) endDrag(cursor polymesh.Point) {
	if e.drag != nil {
		e.drag.Commit()
		e.drag = nil
		e.dirty = true
	}
	if e.marquee {
		e.marquee = false
		r := polymesh.NewRectFromPoints(e.dragStart, cursor)
		e.sel = nil
		for i, pt := range e.poly.Positions() {
			if r.Contains(pt) {
				e.sel = e.sel.Add(i)
			}
		}
	}
}

func (e *editor) handleKeys(cursor polymesh.Point) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		e.sel = polymesh.SelectAll(e.poly.Len())
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if hit, ok := polymesh.NearestEdge(e.poly, cursor); ok {
			e.poly.SplitEdge(hit.Edge, hit.Point)
			e.sel = nil
			e.dirty = true
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		if hit, ok := polymesh.NearestEdge(e.poly, cursor); ok {
			e.sel = e.poly.ExtrudeEdge(hit.Edge)
			e.dirty = true
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		if e.poly.DeleteVertices(e.sel) {
			e.sel = nil
			e.dirty = true
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if hit, ok := polymesh.NearestEdge(e.poly, cursor); ok {
			if e.poly.At(hit.Edge).Curved {
				e.poly.ClearCurve(hit.Edge)
			} else {
				e.poly.SetCurve(hit.Edge, cursor)
			}
			e.dirty = true
		}
	}
}

func (e *editor) Draw(screen *ebiten.Image) {
	e.drawMesh(screen)
	e.drawOutline(screen)
	e.drawHandles(screen)
	if e.marquee {
		mx, my := ebiten.CursorPosition()
		x0, y0 := toScreen(e.dragStart)
		vector.StrokeRect(screen, x0, y0, float32(mx)-x0, float32(my)-y0, 1,
			color.RGBA{0xff, 0xff, 0xff, 0x80}, false)
	}
}

func (e *editor) drawMesh(screen *ebiten.Image) {
	vs := make([]ebiten.Vertex, len(e.front.Vertices))
	for i, v := range e.front.Vertices {
		x, y := toScreen(polymesh.Pt(v.X, v.Y))
		vs[i] = ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: 1, SrcY: 1,
			ColorR: 0.2, ColorG: 0.5, ColorB: 0.8, ColorA: 1,
		}
	}
	is := make([]uint16, len(e.front.Triangles))
	for i, idx := range e.front.Triangles {
		is[i] = uint16(idx)
	}
	screen.DrawTriangles(vs, is, whiteImage.SubImage(whiteImage.Bounds().Inset(1)).(*ebiten.Image), nil)
}

func (e *editor) drawOutline(screen *ebiten.Image) {
	boundary := e.poly.Tessellate(e.settings.CurveDetail)
	for i, pt := range boundary {
		x0, y0 := toScreen(pt)
		x1, y1 := toScreen(boundary[(i+1)%len(boundary)])
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, color.White, true)
	}
}

func (e *editor) drawHandles(screen *ebiten.Image) {
	for i := 0; i < e.poly.Len(); i++ {
		v := e.poly.At(i)
		x, y := toScreen(v.Position)
		c := color.RGBA{0xff, 0xff, 0xff, 0xff}
		if e.sel.Contains(i) {
			c = color.RGBA{0xff, 0xa0, 0x00, 0xff}
		}
		vector.DrawFilledRect(screen, x-3, y-3, 6, 6, c, false)
		hx, hy := toScreen(v.Handle)
		vector.DrawFilledCircle(screen, hx, hy, 2.5, color.RGBA{0x80, 0xff, 0x80, 0xff}, true)
	}
}

func (e *editor) Layout(int, int) (int, int) {
	return screenW, screenH
}

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("polymesh editor")
	if err := ebiten.RunGame(newEditor()); err != nil {
		log.Fatal(err)
	}
}
