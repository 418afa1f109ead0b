// Package polymesh maintains an editable closed 2D polygon and derives
// renderable and collidable meshes from it.
//
// # Model
//
// A [Polygon] is a cyclic ring of [Vertex] records. Each vertex carries its
// key point, an off-curve drag handle, and a flag marking the edge that
// starts at the vertex as either a straight segment or a quadratic Bézier
// bulging through the handle. The ring is implicitly closed and never has
// fewer than three vertices; edits that would break that are rejected as
// no-ops.
//
// # Synthesis
//
// Mesh data flows one way: [Polygon.Tessellate] expands the outline into a
// boundary point sequence, [Triangulate] ear-clips it into a triangle index
// list, and [BuildFrontMesh] and [BuildExtrusionMesh] assemble the final
// vertex/UV/index buffers. Every synthesis call rebuilds its buffers from
// scratch; there is no incremental update to invalidate.
//
// The triangulator is deliberately lenient: self-intersecting outlines
// produce a partial triangle list and a false completeness flag instead of
// an error, because an editor must keep rendering something while the user
// drags a polygon through a degenerate shape.
//
// # Editing
//
// Structural edits ([Polygon.SplitEdge], [Polygon.ExtrudeEdge],
// [Polygon.DeleteVertices]) mutate the ring in place. Positional edits go
// through a [DragSession], which snapshots the polygon when the drag begins
// and applies translate/rotate/scale against that fixed baseline until the
// session is committed or cancelled. Read-only queries ([NearestVertex],
// [NearestEdge], [Rect.Contains]) drive the host editor's hit testing.
//
// The package is pure geometry: projecting cursor rays into the polygon's
// local plane, rendering handles, and undo history are the host's concern.
// See example/ for an interactive editor built on Ebitengine.
package polymesh
