package polymesh

// Settings are the scalar synthesis parameters that persist alongside the
// polygon's vertex ring: everything else (selection, drag baselines, hover
// state) is transient and owned by the host editor.
type Settings struct {
	// CurveDetail is the tessellation parameter step for curved edges.
	CurveDetail float64
	// ColliderDepth is the extrusion thickness of the collision mesh.
	ColliderDepth float64
	// ColliderEdges includes the side-wall quads in the collision mesh.
	ColliderEdges bool
	// ColliderFront includes the front face in the collision mesh.
	ColliderFront bool
	// UV maps boundary points to texture coordinates.
	UV UVTransform
}

// DefaultSettings returns the synthesis defaults for a new polygon.
func DefaultSettings() Settings {
	return Settings{
		CurveDetail:   0.1,
		ColliderDepth: 1,
		ColliderEdges: true,
		UV:            UVTransform{Scale: 1},
	}
}

// Synthesize runs the full pipeline over p: tessellation, triangulation,
// front mesh, and extrusion mesh, using the settings' parameters. complete
// is false when triangulation returned a partial result for a degenerate
// outline; both meshes are still produced from whatever triangles were
// emitted.
func (s Settings) Synthesize(p *Polygon) (front, collider Mesh, complete bool) {
	front, complete = BuildFrontMesh(p, s.CurveDetail, s.UV)
	boundary := make([]Point, len(front.Vertices))
	for i, v := range front.Vertices {
		boundary[i] = Pt(v.X, v.Y)
	}
	collider = BuildExtrusionMesh(boundary, front.Triangles, s.ColliderDepth, s.ColliderEdges, s.ColliderFront)
	return front, collider, complete
}
