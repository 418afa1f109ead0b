package polymesh

// QuadBez is a single quadratic Bézier segment.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Eval evaluates the curve at t ∈ [0, 1]:
// (1−t)²·P0 + 2(1−t)t·P1 + t²·P2, componentwise.
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Start returns the curve's start point.
func (q QuadBez) Start() Point {
	return q.P0
}

// End returns the curve's end point.
func (q QuadBez) End() Point {
	return q.P2
}

// ControlThrough derives the true quadratic control point for a curve from
// `from` to `to` that passes near the authored bulge handle. The handle is
// projected onto the infinite line through the endpoints and then reflected
// through its projection by a factor of two, which places the curve's
// midpoint at the handle's perpendicular offset from the chord.
//
// A zero-length edge has no line to project onto; the handle is returned
// unprojected in that case.
func ControlThrough(from, to, bulge Point) Point {
	axis := to.Sub(from)
	len2 := axis.Hypot2()
	if len2 == 0 {
		return bulge
	}
	d := bulge.Sub(from)
	proj := from.Translate(axis.Mul(d.Dot(axis) / len2))
	return proj.Translate(bulge.Sub(proj).Mul(2.0))
}

// CurveThrough returns the quadratic Bézier from `from` to `to` whose control
// point is reconstructed from the bulge handle.
func CurveThrough(from, to, bulge Point) QuadBez {
	return QuadBez{
		P0: from,
		P1: ControlThrough(from, to, bulge),
		P2: to,
	}
}
