package polymesh

import "slices"

// Selection is a set of vertex indices, order-insensitive and free of
// duplicates. Selections are transient editor state: structural edits that
// renumber vertices invalidate them, and the owner is expected to Clamp (or
// replace) the selection afterwards.
type Selection []int

// Contains reports whether index i is selected.
func (sel Selection) Contains(i int) bool {
	return slices.Contains(sel, i)
}

// Add returns the selection with index i added, if not already present.
func (sel Selection) Add(i int) Selection {
	if sel.Contains(i) {
		return sel
	}
	return append(sel, i)
}

// Remove returns the selection with index i removed.
func (sel Selection) Remove(i int) Selection {
	if k := slices.Index(sel, i); k >= 0 {
		return slices.Delete(sel, k, k+1)
	}
	return sel
}

// Clamp returns the selection with any index outside [0, n) dropped. Call it
// after a structural edit has reduced or renumbered the vertex ring.
func (sel Selection) Clamp(n int) Selection {
	return slices.DeleteFunc(sel, func(i int) bool {
		return i < 0 || i >= n
	})
}

// SelectAll returns a selection of all n indices.
func SelectAll(n int) Selection {
	sel := make(Selection, n)
	for i := range sel {
		sel[i] = i
	}
	return sel
}

// Centroid returns the arithmetic mean of the selected key points. The
// selection must be non-empty; callers are expected to guard, and the zero
// point is returned otherwise.
func Centroid(p *Polygon, sel Selection) Point {
	if len(sel) == 0 {
		return Point{}
	}
	var sum Vec2
	for _, i := range sel {
		sum = sum.Add(Vec2(p.Position(i)))
	}
	return Point(sum.Mul(1.0 / float64(len(sel))))
}
