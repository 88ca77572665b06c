// Package sat implements an exact narrow-phase collision test for convex
// polygons based on the separating axis theorem.
//
// A Shape owns an immutable set of local-space vertices and a mutable pose
// (position, rotation, uniform scale). Collides applies both poses lazily,
// projects both shapes onto the outward edge normals of both polygons and
// reports an intersection iff the projections overlap on every axis.
//
// The package performs no caching: every query recomputes world-space
// vertices from the current pose, so pose changes between queries are always
// visible. There is no internal locking either; callers running queries and
// pose mutations on the same Shape from multiple goroutines must serialize
// them.
package sat
