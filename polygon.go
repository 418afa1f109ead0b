package polymesh

import "slices"

// Vertex is one entry of the polygon's cyclic vertex ring. Position is the
// authored key point. Handle is the authored off-curve drag handle for the
// edge that starts at this vertex; for a straight edge it is kept in sync
// with the edge's midpoint and carries no structural meaning.
type Vertex struct {
	Position Point
	Handle   Point
	Curved   bool
}

// Polygon is an editable closed polygon with optional quadratic-curve edges.
// Vertices are indexed 0..Len()−1 and the ring is implicitly closed: edge i
// runs from vertex i to vertex (i+1) mod Len(). A polygon never has fewer
// than three vertices; structural edits that would violate that are
// rejected.
//
// Polygon is not safe for concurrent mutation; the host editor is expected
// to serialize edits, one per discrete input event.
type Polygon struct {
	verts []Vertex
}

// New returns the default polygon: a unit square centered on the origin with
// straight edges.
func New() *Polygon {
	p, _ := FromPoints([]Point{
		Pt(0.5, 0.5),
		Pt(0.5, -0.5),
		Pt(-0.5, -0.5),
		Pt(-0.5, 0.5),
	})
	return p
}

// FromPoints builds a polygon with straight edges from at least three key
// points. It reports false, and returns nil, when given fewer.
func FromPoints(pts []Point) (*Polygon, bool) {
	if len(pts) < 3 {
		return nil, false
	}
	p := &Polygon{verts: make([]Vertex, len(pts))}
	for i, pt := range pts {
		p.verts[i].Position = pt
	}
	p.SyncHandles()
	return p, true
}

// FromVertices builds a polygon from saved vertex records, the persisted
// form of the model. Straight-edge handles are re-synced, so stale handle
// data cannot survive a load. It reports false, and returns nil, when given
// fewer than three records.
func FromVertices(verts []Vertex) (*Polygon, bool) {
	if len(verts) < 3 {
		return nil, false
	}
	p := &Polygon{verts: slices.Clone(verts)}
	p.SyncHandles()
	return p, true
}

// Vertices returns a copy of the vertex records, for persistence.
func (p *Polygon) Vertices() []Vertex {
	return slices.Clone(p.verts)
}

// Len returns the number of vertices.
func (p *Polygon) Len() int {
	return len(p.verts)
}

// wrap maps any index into the ring. All cyclic index arithmetic funnels
// through here.
func (p *Polygon) wrap(i int) int {
	n := len(p.verts)
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Next returns the index following i in the ring.
func (p *Polygon) Next(i int) int {
	return p.wrap(i + 1)
}

// At returns the vertex record at index i (cyclically).
func (p *Polygon) At(i int) Vertex {
	return p.verts[p.wrap(i)]
}

// Position returns the key point at index i (cyclically).
func (p *Polygon) Position(i int) Point {
	return p.verts[p.wrap(i)].Position
}

// Positions returns the key points in order. The slice is freshly allocated.
func (p *Polygon) Positions() []Point {
	pts := make([]Point, len(p.verts))
	for i, v := range p.verts {
		pts[i] = v.Position
	}
	return pts
}

// SetPosition moves the key point at index i and re-syncs the straight-edge
// handles that depend on it.
func (p *Polygon) SetPosition(i int, pt Point) {
	p.verts[p.wrap(i)].Position = pt
	p.SyncHandles()
}

// EdgeCurve returns the quadratic Bézier for edge i, reconstructing the
// control point from the edge's handle. For a straight edge the result
// degenerates to the segment (the handle is its midpoint).
func (p *Polygon) EdgeCurve(i int) QuadBez {
	i = p.wrap(i)
	v := p.verts[i]
	return CurveThrough(v.Position, p.verts[p.Next(i)].Position, v.Handle)
}

// Clone returns a deep copy of the polygon.
func (p *Polygon) Clone() *Polygon {
	return &Polygon{verts: slices.Clone(p.verts)}
}

// SyncHandles recomputes the handle of every straight edge as the midpoint
// of its endpoints, so drag handles stay on the edge after any positional
// change. Curved-edge handles are authored state and are left alone.
func (p *Polygon) SyncHandles() {
	for i := range p.verts {
		if !p.verts[i].Curved {
			p.verts[i].Handle = p.verts[i].Position.Midpoint(p.verts[p.Next(i)].Position)
		}
	}
}

// SplitEdge inserts a new vertex at pos on edge i, between vertex i and its
// successor. The edge being split loses its curve: a curve cannot survive a
// split, so edge i is forced straight and the new edge starts straight as
// well. It reports false, without modifying the polygon, when i is not a
// valid edge index.
func (p *Polygon) SplitEdge(i int, pos Point) bool {
	if i < 0 || i >= len(p.verts) {
		return false
	}
	p.verts[i].Curved = false
	p.verts = slices.Insert(p.verts, i+1, Vertex{Position: pos})
	p.SyncHandles()
	return true
}

// ExtrudeEdge duplicates both endpoints of edge i, growing new geometry from
// the boundary without leaving a gap: the two new vertices start coincident
// with the originals and are returned as the new selection for the caller to
// drag outward. The original edge is forced straight. It returns nil when i
// is not a valid edge index.
func (p *Polygon) ExtrudeEdge(i int) Selection {
	if i < 0 || i >= len(p.verts) {
		return nil
	}
	p.verts[i].Curved = false
	var sel Selection
	if i == len(p.verts)-1 {
		// The closing edge: duplicate its endpoints at the end of the ring,
		// keeping the ring order (last vertex, then vertex 0's twin).
		p.verts = append(p.verts,
			Vertex{Position: p.verts[i].Position},
			Vertex{Position: p.verts[0].Position},
		)
		sel = Selection{len(p.verts) - 2, len(p.verts) - 1}
	} else {
		p.verts = slices.Insert(p.verts, i+1,
			Vertex{Position: p.verts[i].Position},
			Vertex{Position: p.verts[i+1].Position},
		)
		sel = Selection{i + 1, i + 2}
	}
	p.SyncHandles()
	return sel
}

// DeleteVertices removes the given vertex indices along with their handles
// and curve flags. The call is atomic: if removing them would leave fewer
// than three vertices, nothing is deleted and the method reports false.
// Duplicate and out-of-range indices are ignored.
func (p *Polygon) DeleteVertices(indices []int) bool {
	del := make([]int, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(p.verts) && !slices.Contains(del, i) {
			del = append(del, i)
		}
	}
	if len(p.verts)-len(del) < 3 {
		return false
	}
	// Highest first, so the remaining indices stay valid during removal.
	slices.Sort(del)
	for k := len(del) - 1; k >= 0; k-- {
		p.verts = slices.Delete(p.verts, del[k], del[k]+1)
	}
	p.SyncHandles()
	return true
}

// SetCurve makes edge i a quadratic curve bulging through the given handle.
func (p *Polygon) SetCurve(i int, handle Point) {
	i = p.wrap(i)
	p.verts[i].Curved = true
	p.verts[i].Handle = handle
}

// ClearCurve makes edge i straight again, snapping its handle back to the
// segment midpoint.
func (p *Polygon) ClearCurve(i int) {
	i = p.wrap(i)
	p.verts[i].Curved = false
	p.verts[i].Handle = p.verts[i].Position.Midpoint(p.verts[p.Next(i)].Position)
}
