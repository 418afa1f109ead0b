package polymesh

// TransformKind identifies which transform a drag session last applied.
type TransformKind int

const (
	TransformNone TransformKind = iota
	TransformMove
	TransformRotate
	TransformScale
)

// Cursor is the affordance hint the host shell should display for the
// current interaction state.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorMove
	CursorRotate
	CursorScale
)

// Cursor returns the cursor affordance for the transform kind.
func (k TransformKind) Cursor() Cursor {
	switch k {
	case TransformMove:
		return CursorMove
	case TransformRotate:
		return CursorRotate
	case TransformScale:
		return CursorScale
	default:
		return CursorDefault
	}
}

// DragSession scopes one continuous drag over a selection. It captures a
// snapshot of the polygon's vertices at BeginDrag, and every transform is
// applied against that fixed baseline, so moving the cursor back and forth
// never accumulates error. Commit keeps the live state; Cancel restores the
// snapshot. A session is finished after either and further calls are no-ops.
type DragSession struct {
	poly *Polygon
	sel  Selection
	base []Point
	snap []Vertex
	kind TransformKind
	done bool
}

// BeginDrag starts a drag session over the selected vertices of p. The
// selection must be non-empty and is expected to stay untouched for the
// session's lifetime.
func BeginDrag(p *Polygon, sel Selection) *DragSession {
	snap := p.Clone().verts
	base := make([]Point, len(snap))
	for i, v := range snap {
		base[i] = v.Position
	}
	return &DragSession{
		poly: p,
		sel:  sel,
		base: base,
		snap: snap,
	}
}

// Centroid returns the centroid of the session's selection as of the
// baseline snapshot, the natural pivot for rotate and scale.
func (s *DragSession) Centroid() Point {
	var sum Vec2
	for _, i := range s.sel {
		sum = sum.Add(Vec2(s.base[i]))
	}
	return Point(sum.Mul(1.0 / float64(len(s.sel))))
}

// Translate moves the selection by delta from the baseline.
func (s *DragSession) Translate(delta Vec2, snap SnapConfig) {
	if s.done {
		return
	}
	s.kind = TransformMove
	TranslateSelection(s.poly, s.sel, s.base, delta, snap)
}

// Rotate rotates the selection about center by the angle between from and to,
// from the baseline.
func (s *DragSession) Rotate(center Point, from, to Vec2) {
	if s.done {
		return
	}
	s.kind = TransformRotate
	RotateSelection(s.poly, s.sel, s.base, center, from, to)
}

// Scale scales the selection about center by amount, from the baseline.
func (s *DragSession) Scale(center Point, amount Vec2, uniform bool) {
	if s.done {
		return
	}
	s.kind = TransformScale
	ScaleSelection(s.poly, s.sel, s.base, center, amount, uniform)
}

// Cursor returns the affordance hint for the session's current state.
func (s *DragSession) Cursor() Cursor {
	if s.done {
		return CursorDefault
	}
	return s.kind.Cursor()
}

// Commit ends the session, keeping the polygon's live state.
func (s *DragSession) Commit() {
	s.done = true
}

// Cancel ends the session and restores the polygon to its baseline snapshot.
func (s *DragSession) Cancel() {
	if s.done {
		return
	}
	s.done = true
	s.poly.verts = s.snap
	s.poly.SyncHandles()
}
