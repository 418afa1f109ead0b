package polymesh

import (
	"math"
	"testing"
)

func TestCentroid(t *testing.T) {
	p := unitSquare()
	diff(t, Pt(0, 0), Centroid(p, SelectAll(4)))
	diff(t, Pt(0.5, 0), Centroid(p, Selection{0, 1}))
	diff(t, Pt(0.5, 0.5), Centroid(p, Selection{0}))
	diff(t, Pt(0, 0), Centroid(p, nil))
}

func TestTranslateSelection(t *testing.T) {
	p := unitSquare()
	base := p.Positions()
	TranslateSelection(p, Selection{0, 1}, base, Vec(1, 0.5), SnapConfig{})
	diff(t, []Point{
		Pt(1.5, 1),
		Pt(1.5, 0),
		Pt(-0.5, -0.5),
		Pt(-0.5, 0.5),
	}, p.Positions())
}

func TestTranslateSelectionFromBaseline(t *testing.T) {
	// Two applies with the same delta land in the same place: the transform
	// works from the pre-drag baseline, not the live positions.
	p := unitSquare()
	base := p.Positions()
	TranslateSelection(p, Selection{0}, base, Vec(1, 0), SnapConfig{})
	TranslateSelection(p, Selection{0}, base, Vec(1, 0), SnapConfig{})
	diff(t, Pt(1.5, 0.5), p.Position(0))
}

func TestTranslateSnapDelta(t *testing.T) {
	// Delta snapping quantizes the movement only; the point keeps its
	// off-grid offset.
	p := unitSquare()
	base := p.Positions()
	snap := SnapConfig{Enabled: true, Unit: 0.5}
	TranslateSelection(p, Selection{0}, base, Vec(0.6, 0.2), snap)
	diff(t, Pt(1, 0.5), p.Position(0))
}

func TestTranslateSnapGlobal(t *testing.T) {
	// Global snapping quantizes the result onto the grid.
	p := unitSquare()
	base := p.Positions()
	snap := SnapConfig{Enabled: true, Global: true, Unit: 1}
	TranslateSelection(p, Selection{0}, base, Vec(0.6, 0.2), snap)
	diff(t, Pt(1, 1), p.Position(0))
}

func TestTranslateSnapZeroUnit(t *testing.T) {
	p := unitSquare()
	base := p.Positions()
	snap := SnapConfig{Enabled: true, Unit: 0}
	TranslateSelection(p, Selection{0}, base, Vec(0.6, 0.2), snap)
	assertNear(t, p.Position(0), Pt(1.1, 0.7), 1e-12)
}

func TestRotatePreservesRadius(t *testing.T) {
	p := unitSquare()
	base := p.Positions()
	center := Pt(0.2, -0.1)
	for _, th := range []float64{0.1, 1.234, math.Pi, -2.5, 6} {
		q := p.Clone()
		RotateSelection(q, SelectAll(4), base, center, Vec(1, 0), VecFromAngle(th))
		for i := 0; i < 4; i++ {
			want := base[i].Distance(center)
			got := q.Position(i).Distance(center)
			if math.Abs(got-want) > 1e-12 {
				t.Errorf("angle %g, vertex %d: radius %g, want %g", th, i, got, want)
			}
		}
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	p := unitSquare()
	base := p.Positions()
	RotateSelection(p, SelectAll(4), base, Pt(0, 0), Vec(1, 0), Vec(0, 1))
	assertNear(t, p.Position(0), Pt(-0.5, 0.5), 1e-12)
	assertNear(t, p.Position(1), Pt(0.5, 0.5), 1e-12)
}

func TestRotateAngleDeltaFromVectors(t *testing.T) {
	// The rotation is the angle between the drag vectors, regardless of
	// their magnitudes.
	p := unitSquare()
	base := p.Positions()
	RotateSelection(p, SelectAll(4), base, Pt(0, 0), Vec(3, 0), Vec(0, 7))
	assertNear(t, p.Position(0), Pt(-0.5, 0.5), 1e-12)
}

func TestScaleIdentity(t *testing.T) {
	p := unitSquare()
	base := p.Positions()
	ScaleSelection(p, SelectAll(4), base, Pt(0, 0), Vec(0, 0), false)
	diff(t, base, p.Positions())
}

func TestScaleDoublesAxis(t *testing.T) {
	p := unitSquare()
	base := p.Positions()
	ScaleSelection(p, SelectAll(4), base, Pt(0, 0), Vec(1, 0), false)
	diff(t, []Point{
		Pt(1, 0.5),
		Pt(1, -0.5),
		Pt(-1, -0.5),
		Pt(-1, 0.5),
	}, p.Positions())
}

func TestScaleSelectedOffsetsFromCentroid(t *testing.T) {
	// Selecting the right edge of the square scales around (0.5, 0): both
	// points have zero x-offset from the centroid, so they stay put.
	p := unitSquare()
	base := p.Positions()
	sel := Selection{0, 1}
	center := Centroid(p, sel)
	diff(t, Pt(0.5, 0), center)
	ScaleSelection(p, sel, base, center, Vec(1, 0), false)
	diff(t, base, p.Positions())
}

func TestScaleInwardReciprocal(t *testing.T) {
	// Dragging inward shrinks via 1/(1−v): never zero, never negative.
	p := unitSquare()
	base := p.Positions()
	ScaleSelection(p, SelectAll(4), base, Pt(0, 0), Vec(-1, -1), false)
	diff(t, []Point{
		Pt(0.25, 0.25),
		Pt(0.25, -0.25),
		Pt(-0.25, -0.25),
		Pt(-0.25, 0.25),
	}, p.Positions())
}

func TestScaleUniform(t *testing.T) {
	// Uniform scaling copies the larger-magnitude axis onto the smaller.
	p := unitSquare()
	base := p.Positions()
	ScaleSelection(p, SelectAll(4), base, Pt(0, 0), Vec(1, 0.2), true)
	diff(t, []Point{
		Pt(1, 1),
		Pt(1, -1),
		Pt(-1, -1),
		Pt(-1, 1),
	}, p.Positions())
}

func TestSelectionHelpers(t *testing.T) {
	var sel Selection
	sel = sel.Add(2).Add(0).Add(2)
	diff(t, Selection{2, 0}, sel)
	if !sel.Contains(0) || sel.Contains(1) {
		t.Error("Contains mismatch")
	}
	sel = sel.Remove(2)
	diff(t, Selection{0}, sel)
	diff(t, Selection{0, 1, 2}, SelectAll(3))
	diff(t, Selection{1}, Selection{1, 4, -1}.Clamp(3))
}
