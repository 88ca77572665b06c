package sat

import "github.com/mmays/steroids/gm"

// Projection is the 1d interval [Min, Max] that results from projecting a
// polygon onto an axis.
type Projection struct {
	Min, Max float64
}

// Overlaps reports whether the two intervals intersect. The test is
// inclusive: intervals that merely touch at a boundary count as overlapping.
func (p Projection) Overlaps(other Projection) bool {
	return p.Min <= other.Max && other.Min <= p.Max
}

// Project projects the vertices onto the given axis and returns the interval
// of the scalar projection values. The axis must be unit length for the
// interval to be in world units; Project does not normalize it.
//
// Projecting an empty vertex slice is a programming error and panics.
func Project(verts []gm.Vec, axis gm.Vec) Projection {
	value := axis.Dot(verts[0])
	proj := Projection{Min: value, Max: value}

	for _, vert := range verts[1:] {
		value = axis.Dot(vert)
		proj.Min = min(proj.Min, value)
		proj.Max = max(proj.Max, value)
	}

	return proj
}

// Axes returns the candidate separating axes for a convex polygon: the
// normalized outward normal of every edge, in edge order, wrapping from the
// last vertex back to the first. Axes of parallel edges are not deduplicated,
// projecting onto the same axis twice is redundant but harmless.
//
// A zero-length edge produces the zero vector as its axis (Normalized leaves
// it unchanged). Such an axis carries no separating information; callers are
// expected to supply polygons without duplicate consecutive vertices.
func Axes(verts []gm.Vec) []gm.Vec {
	axes := make([]gm.Vec, len(verts))

	for i, vert := range verts {
		next := verts[(i+1)%len(verts)]
		edge := vert.Sub(next)
		axes[i] = edge.Perp().Normalized()
	}

	return axes
}
