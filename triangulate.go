package polymesh

import "slices"

// Near-collinear ears fail the convexity test and are skipped.
const earEpsilon = 1e-10

// SignedArea returns the signed area of the closed polygon described by the
// given boundary points, positive for counter-clockwise winding in a y-up
// plane.
func SignedArea(points []Point) float64 {
	var sum float64
	for i, q := 0, len(points)-1; i < len(points); q, i = i, i+1 {
		sum += points[q].X*points[i].Y - points[i].X*points[q].Y
	}
	return sum * 0.5
}

// Triangulate converts a simple, possibly concave boundary sequence into a
// flat triangle index list by ear clipping. Winding is normalized up front
// from the boundary's signed area, and the emitted indices are reversed at
// the end so the triangles come out front-facing regardless of the input's
// winding.
//
// The clipper is deliberately lenient: on degenerate or self-intersecting
// input it gives up once it has scanned twice around the remaining vertices
// without finding an ear, and returns the triangles emitted so far with
// complete=false. Callers needing strict simple-polygon validation must
// check separately. A complete result for an n-point boundary has exactly
// n−2 triangles. Fewer than three points yield an empty, complete result.
func Triangulate(points []Point) (indices []int, complete bool) {
	n := len(points)
	if n < 3 {
		return nil, true
	}

	// Working index list in normalized winding order.
	ring := make([]int, n)
	if SignedArea(points) > 0 {
		for v := range ring {
			ring[v] = v
		}
	} else {
		for v := range ring {
			ring[v] = n - 1 - v
		}
	}

	nv := n
	budget := 2 * nv
	for v := nv - 1; nv > 2; {
		budget--
		if budget <= 0 {
			// No ear found in a full sweep: the outline is degenerate or
			// self-intersecting. Keep what we have.
			slices.Reverse(indices)
			return indices, false
		}

		u := v
		if nv <= u {
			u = 0
		}
		v = u + 1
		if nv <= v {
			v = 0
		}
		w := v + 1
		if nv <= w {
			w = 0
		}

		if snip(points, u, v, w, nv, ring) {
			indices = append(indices, ring[u], ring[v], ring[w])
			ring = slices.Delete(ring, v, v+1)
			nv--
			budget = 2 * nv
		}
	}

	slices.Reverse(indices)
	return indices, true
}

// snip reports whether the triple (u, v, w) of consecutive ring positions is
// a clippable ear: v is convex under the normalized winding and no other
// remaining point lies inside the triangle.
func snip(points []Point, u, v, w, nv int, ring []int) bool {
	a := points[ring[u]]
	b := points[ring[v]]
	c := points[ring[w]]
	if b.Sub(a).Cross(c.Sub(b)) < earEpsilon {
		return false
	}
	for i := 0; i < nv; i++ {
		if i == u || i == v || i == w {
			continue
		}
		if insideTriangle(a, b, c, points[ring[i]]) {
			return false
		}
	}
	return true
}

// insideTriangle reports whether p lies in triangle (a, b, c), boundary
// inclusive.
func insideTriangle(a, b, c, p Point) bool {
	return c.Sub(b).Cross(p.Sub(b)) >= 0 &&
		a.Sub(c).Cross(p.Sub(c)) >= 0 &&
		b.Sub(a).Cross(p.Sub(a)) >= 0
}
