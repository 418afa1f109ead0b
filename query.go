package polymesh

// NearestVertex returns the index of the point nearest to target. Ties go to
// the first occurrence in iteration order. It reports false on empty input.
func NearestVertex(points []Point, target Point) (int, bool) {
	if len(points) == 0 {
		return 0, false
	}
	best := 0
	bestDist := points[0].DistanceSquared(target)
	for i, pt := range points[1:] {
		if d := pt.DistanceSquared(target); d < bestDist {
			best = i + 1
			bestDist = d
		}
	}
	return best, true
}

// EdgeHit is the result of projecting a point onto the polygon's outline.
type EdgeHit struct {
	// Edge is the index of the hit edge.
	Edge int
	// Point is the projected point on the edge. For a curved edge this lies
	// on the curve, evaluated at the chord's relative parameter.
	Point Point
	// T is the projection's relative parameter along the edge's chord,
	// in [0, 1].
	T float64
}

// NearestEdge projects target onto every edge of the polygon and returns the
// in-range projection nearest to target. The projection is computed against
// the edge's chord; when the scalar projection falls outside the chord the
// edge does not participate. For a curved edge the chord parameter is mapped
// through the edge's reconstructed Bézier, so the returned point lies on the
// curve. It reports false when no edge yields an in-range projection.
func NearestEdge(p *Polygon, target Point) (EdgeHit, bool) {
	var best EdgeHit
	bestDist := 0.0
	found := false
	for i := 0; i < p.Len(); i++ {
		hit, ok := projectOnEdge(p, i, target)
		if !ok {
			continue
		}
		if d := hit.Point.DistanceSquared(target); !found || d < bestDist {
			best = hit
			bestDist = d
			found = true
		}
	}
	return best, found
}

func projectOnEdge(p *Polygon, i int, target Point) (EdgeHit, bool) {
	from := p.Position(i)
	to := p.Position(p.Next(i))
	axis := to.Sub(from)
	length := axis.Hypot()
	if length == 0 {
		return EdgeHit{}, false
	}
	d := target.Sub(from).Dot(axis.Normalize())
	if d < 0 || d > length {
		return EdgeHit{}, false
	}
	t := d / length
	hit := EdgeHit{Edge: i, T: t}
	if p.At(i).Curved {
		hit.Point = p.EdgeCurve(i).Eval(t)
	} else {
		hit.Point = from.Lerp(to, t)
	}
	return hit, true
}
