package polymesh

import "testing"

func TestDragSessionTranslateCommit(t *testing.T) {
	p := unitSquare()
	s := BeginDrag(p, Selection{0, 1})
	s.Translate(Vec(1, 0), SnapConfig{})
	s.Commit()
	diff(t, []Point{
		Pt(1.5, 0.5),
		Pt(1.5, -0.5),
		Pt(-0.5, -0.5),
		Pt(-0.5, 0.5),
	}, p.Positions())
}

func TestDragSessionBaselineDoesNotAccumulate(t *testing.T) {
	p := unitSquare()
	s := BeginDrag(p, Selection{0})
	s.Translate(Vec(1, 0), SnapConfig{})
	s.Translate(Vec(2, 0), SnapConfig{})
	s.Translate(Vec(1, 0), SnapConfig{})
	s.Commit()
	diff(t, Pt(1.5, 0.5), p.Position(0))
}

func TestDragSessionCancelRestores(t *testing.T) {
	p := unitSquare()
	want := p.Clone()
	s := BeginDrag(p, SelectAll(4))
	s.Rotate(Pt(0, 0), Vec(1, 0), Vec(0, 1))
	s.Scale(Pt(0, 0), Vec(3, 3), true)
	s.Cancel()
	diff(t, want.verts, p.verts)
}

func TestDragSessionCancelRestoresCurves(t *testing.T) {
	p := unitSquare()
	p.SetCurve(0, Pt(1, 0))
	want := p.Clone()
	s := BeginDrag(p, SelectAll(4))
	s.Translate(Vec(5, 5), SnapConfig{})
	s.Cancel()
	diff(t, want.verts, p.verts)
}

func TestDragSessionFinishedIsInert(t *testing.T) {
	p := unitSquare()
	s := BeginDrag(p, Selection{0})
	s.Translate(Vec(1, 0), SnapConfig{})
	s.Commit()
	s.Translate(Vec(5, 5), SnapConfig{})
	s.Cancel()
	diff(t, Pt(1.5, 0.5), p.Position(0))
}

func TestDragSessionCentroid(t *testing.T) {
	p := unitSquare()
	s := BeginDrag(p, Selection{0, 1})
	diff(t, Pt(0.5, 0), s.Centroid())
	// The pivot is the baseline centroid; moving the selection mid-drag does
	// not shift it.
	s.Translate(Vec(10, 0), SnapConfig{})
	diff(t, Pt(0.5, 0), s.Centroid())
}

func TestDragSessionCursor(t *testing.T) {
	p := unitSquare()
	s := BeginDrag(p, Selection{0})
	if got := s.Cursor(); got != CursorDefault {
		t.Errorf("fresh session cursor %v, want default", got)
	}
	s.Translate(Vec(1, 0), SnapConfig{})
	if got := s.Cursor(); got != CursorMove {
		t.Errorf("cursor %v, want move", got)
	}
	s.Rotate(Pt(0, 0), Vec(1, 0), Vec(0, 1))
	if got := s.Cursor(); got != CursorRotate {
		t.Errorf("cursor %v, want rotate", got)
	}
	s.Scale(Pt(0, 0), Vec(1, 1), false)
	if got := s.Cursor(); got != CursorScale {
		t.Errorf("cursor %v, want scale", got)
	}
	s.Commit()
	if got := s.Cursor(); got != CursorDefault {
		t.Errorf("finished session cursor %v, want default", got)
	}
}

func TestDragSessionRotatePreservesRadius(t *testing.T) {
	p := unitSquare()
	s := BeginDrag(p, SelectAll(4))
	center := s.Centroid()
	s.Rotate(center, Vec(1, 0), VecFromAngle(2.4))
	for i := 0; i < 4; i++ {
		want := 0.5 * 1.4142135623730951 // half diagonal
		got := p.Position(i).Distance(center)
		if d := got - want; d > 1e-12 || d < -1e-12 {
			t.Errorf("vertex %d radius %g, want %g", i, got, want)
		}
	}
	s.Commit()
}
