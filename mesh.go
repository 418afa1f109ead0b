package polymesh

import "math"

// Mesh is a synthesized vertex/index buffer set. Vertices and UVs are index
// aligned; Triangles is a flat list of vertex-index triples. Meshes are
// rebuilt wholesale on every synthesis call, never patched incrementally.
// Collision meshes carry no UVs.
type Mesh struct {
	Vertices  []Point3
	UVs       []Point
	Triangles []int
}

// IsEmpty reports whether the mesh has no geometry.
func (m Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0 && len(m.Triangles) == 0
}

// UVTransform maps boundary points into UV space. The authored values are
// applied inverted: each point is translated by −Position, rotated by
// −Rotation, then scaled by 1/Scale, so that moving the transform moves the
// texture the intuitive way. A Scale of zero flattens all UVs to the origin
// rather than dividing by zero.
type UVTransform struct {
	Position Vec2
	Rotation float64
	Scale    float64
}

// Apply maps a single boundary point into UV space.
func (uv UVTransform) Apply(pt Point) Point {
	p := Vec2(pt).Sub(uv.Position)
	sin, cos := math.Sincos(-uv.Rotation)
	p = Vec2{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
	if uv.Scale == 0 {
		return Point{}
	}
	return Point(p.Mul(1.0 / uv.Scale))
}

// BuildFrontMesh synthesizes the renderable front-face mesh: the tessellated
// boundary as vertices in the z=0 plane, one UV per vertex through the UV
// transform, and ear-clipped triangles. complete is false when the
// triangulation hit its iteration budget on a degenerate outline and the
// triangle list is partial.
func BuildFrontMesh(p *Polygon, detail float64, uv UVTransform) (mesh Mesh, complete bool) {
	boundary := p.Tessellate(detail)
	tris, complete := Triangulate(boundary)
	mesh = Mesh{
		Vertices:  make([]Point3, len(boundary)),
		UVs:       make([]Point, len(boundary)),
		Triangles: tris,
	}
	for i, pt := range boundary {
		mesh.Vertices[i] = pt.AtDepth(0)
		mesh.UVs[i] = uv.Apply(pt)
	}
	return mesh, complete
}

// BuildExtrusionMesh synthesizes collision geometry from a tessellated
// boundary and its front-face triangles. With edges set, each boundary point
// becomes a front/back vertex pair at z = ∓depth/2 and every cyclic boundary
// edge becomes a two-triangle wall quad with outward-facing winding. With
// front set, the front-face mesh (boundary at z=0, the given triangles) is
// appended after the wall vertices, index-shifted. With neither flag the
// result is empty, which is still a valid mesh and clears any collider that
// consumed a previous one.
func BuildExtrusionMesh(boundary []Point, triangles []int, depth float64, edges, front bool) Mesh {
	var mesh Mesh
	if edges {
		half := depth / 2
		mesh.Vertices = make([]Point3, 0, len(boundary)*2)
		for _, pt := range boundary {
			mesh.Vertices = append(mesh.Vertices, pt.AtDepth(-half), pt.AtDepth(half))
		}
		mesh.Triangles = make([]int, 0, len(boundary)*6)
		for i := range boundary {
			j := (i + 1) % len(boundary)
			fi, bi := 2*i, 2*i+1
			fj, bj := 2*j, 2*j+1
			mesh.Triangles = append(mesh.Triangles,
				fi, fj, bj,
				fi, bj, bi,
			)
		}
	}
	if front {
		base := len(mesh.Vertices)
		for _, pt := range boundary {
			mesh.Vertices = append(mesh.Vertices, pt.AtDepth(0))
		}
		for _, idx := range triangles {
			mesh.Triangles = append(mesh.Triangles, base+idx)
		}
	}
	return mesh
}
