package sat

import (
	"fmt"

	"github.com/mmays/steroids/gm"
)

// Shape is a closed convex polygon with a pose in 2d space.
//
// The local-space vertices are fixed at construction. The pose fields are
// plain public fields and may be mutated at any time between queries; both
// WorldVertices and Collides always work with the current pose.
type Shape struct {
	verts []gm.Vec

	// Pos is the world-space position of the shape's local origin.
	Pos gm.Vec
	// Rot is the rotation of the shape in degrees, counter-clockwise.
	Rot float64
	// Scale is a uniform scale factor applied before rotation.
	Scale float64
}

// NewShape builds a Shape from flattened x, y coordinate pairs, so
// NewShape(0, 0, 1, 0, 1, 1) is a triangle. The pose starts at the origin
// with no rotation and scale one.
//
// An odd number of coordinates or fewer than three vertices is rejected.
// The vertices must describe a convex polygon; this is not validated, and
// the collision test is only exact for convex input.
func NewShape(coords ...float64) (*Shape, error) {
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("vertex coordinates must come in pairs, got %d values", len(coords))
	}

	verts := make([]gm.Vec, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		verts = append(verts, gm.Vec{X: coords[i], Y: coords[i+1]})
	}

	return ShapeOf(verts)
}

// ShapeOf builds a Shape from the given local-space vertices. The slice is
// copied, the caller keeps ownership of its argument.
func ShapeOf(verts []gm.Vec) (*Shape, error) {
	if len(verts) < 3 {
		return nil, fmt.Errorf("a polygon needs at least 3 vertices, got %d", len(verts))
	}

	shape := &Shape{
		verts: append([]gm.Vec(nil), verts...),
		Scale: 1,
	}

	return shape, nil
}

// Transform returns the affine transform of the current pose. A local point
// is scaled first, then rotated, then translated.
func (s *Shape) Transform() gm.Affine {
	return gm.IdentityAffine().
		Translate(s.Pos).
		Rotate(gm.DegToRad(s.Rot)).
		Scale(gm.VecSplat(s.Scale))
}

// LocalVertices returns a copy of the shape's local-space vertices.
func (s *Shape) LocalVertices() []gm.Vec {
	return append([]gm.Vec(nil), s.verts...)
}

// WorldVertices returns the shape's vertices with the current pose applied.
// This is the surface a renderer draws from.
func (s *Shape) WorldVertices() []gm.Vec {
	tr := s.Transform()

	verts := make([]gm.Vec, len(s.verts))
	for i, vert := range s.verts {
		verts[i] = tr.Transform(vert)
	}

	return verts
}

// EffectiveLength returns the scaled distance from the shape's origin to its
// farthest vertex, a conservative bounding radius for the posed shape.
func (s *Shape) EffectiveLength() float64 {
	var longest float64
	for _, vert := range s.verts {
		longest = max(longest, vert.Length())
	}

	return longest * s.Scale
}

// Collides reports whether the two shapes intersect, using the separating
// axis theorem over the edge normals of both polygons. Shapes that merely
// touch at an edge or corner count as colliding.
func (s *Shape) Collides(other *Shape) bool {
	verts1 := s.WorldVertices()
	verts2 := other.WorldVertices()

	for _, axes := range [2][]gm.Vec{Axes(verts1), Axes(verts2)} {
		for _, axis := range axes {
			proj1 := Project(verts1, axis)
			proj2 := Project(verts2, axis)

			if !proj1.Overlaps(proj2) {
				// found a separating axis
				return false
			}
		}
	}

	return true
}
