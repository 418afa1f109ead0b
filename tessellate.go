package polymesh

import "math"

// Detail bounds for Tessellate. Detail is the parameter step between curve
// samples, so the lower bound caps a curved edge at 100 samples.
const (
	minDetail = 0.01
	maxDetail = 1.0
)

// Tessellate expands the polygon's outline into a single ordered, cyclic
// boundary sequence. A straight edge contributes its start key point once; a
// curved edge contributes ceil(1/detail) evenly spaced samples starting at
// t=0 and excluding t=1, since t=1 coincides with the vertex that starts the
// next edge. There is no duplicate closing point.
//
// detail is clamped to [0.01, 1]; smaller detail means more samples. The
// output is deterministic: the same polygon and detail always produce the
// same points.
func (p *Polygon) Tessellate(detail float64) []Point {
	detail = math.Min(math.Max(detail, minDetail), maxDetail)
	boundary := make([]Point, 0, p.Len())
	for i := 0; i < p.Len(); i++ {
		if !p.At(i).Curved {
			boundary = append(boundary, p.Position(i))
			continue
		}
		q := p.EdgeCurve(i)
		count := int(math.Ceil(1.0 / detail))
		for k := 0; k < count; k++ {
			boundary = append(boundary, q.Eval(float64(k)/float64(count)))
		}
	}
	return boundary
}
