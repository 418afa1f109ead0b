package polymesh

import "math"

// SnapConfig is the editor's grid-snapping policy, passed explicitly into
// translation rather than read from ambient preferences. With Global set the
// absolute result of a move is snapped to the grid; otherwise only the drag
// delta is quantized, preserving each point's offset from the grid. A Unit
// of zero or less disables snapping regardless of Enabled.
type SnapConfig struct {
	Enabled bool
	Global  bool
	Unit    float64
}

func (c SnapConfig) active() bool {
	return c.Enabled && c.Unit > 0
}

// Round quantizes x to the nearest multiple of the snap unit.
func (c SnapConfig) Round(x float64) float64 {
	return math.Round(x/c.Unit) * c.Unit
}

func (c SnapConfig) roundVec(v Vec2) Vec2 {
	return Vec2{X: c.Round(v.X), Y: c.Round(v.Y)}
}

// TranslateSelection moves every selected key point to its baseline position
// plus delta. base holds all key points as they were when the drag began, so
// repeated calls during one drag do not accumulate. Straight-edge handles
// are re-synced afterwards.
func TranslateSelection(p *Polygon, sel Selection, base []Point, delta Vec2, snap SnapConfig) {
	if snap.active() && !snap.Global {
		delta = snap.roundVec(delta)
	}
	for _, i := range sel {
		pos := base[i].Translate(delta)
		if snap.active() && snap.Global {
			pos = Point(snap.roundVec(Vec2(pos)))
		}
		p.verts[p.wrap(i)].Position = pos
	}
	p.SyncHandles()
}

// RotateSelection rotates every selected key point about center by the angle
// between the from and to direction vectors, typically the drag's start and
// current cursor directions. Each point's distance to center is preserved
// exactly: the offset is re-expressed in polar form and only its angle
// changes.
func RotateSelection(p *Polygon, sel Selection, base []Point, center Point, from, to Vec2) {
	delta := to.Angle() - from.Angle()
	for _, i := range sel {
		off := base[i].Sub(center)
		p.verts[p.wrap(i)].Position = center.Translate(
			VecFromAngle(off.Angle() + delta).Mul(off.Hypot()))
	}
	p.SyncHandles()
}

// scaleFactor maps a drag amount to a multiplier. Dragging outward grows
// linearly; dragging inward follows a reciprocal curve that approaches but
// never reaches zero, so a scale can always be undone by dragging back.
func scaleFactor(v float64) float64 {
	if v >= 0 {
		return 1 + v
	}
	return 1 / (1 - v)
}

// ScaleSelection scales every selected key point's offset from center,
// per-axis, by the factors derived from amount. With uniform set, the
// larger-magnitude axis of amount is copied onto the other before mapping,
// so both axes scale alike.
func ScaleSelection(p *Polygon, sel Selection, base []Point, center Point, amount Vec2, uniform bool) {
	if uniform {
		if math.Abs(amount.X) > math.Abs(amount.Y) {
			amount.Y = amount.X
		} else {
			amount.X = amount.Y
		}
	}
	fx := scaleFactor(amount.X)
	fy := scaleFactor(amount.Y)
	for _, i := range sel {
		off := base[i].Sub(center)
		p.verts[p.wrap(i)].Position = center.Translate(Vec2{X: off.X * fx, Y: off.Y * fy})
	}
	p.SyncHandles()
}
