// Package mesh holds immutable triangle meshes with independently indexed
// positions, normals and texture coordinates.
package mesh

import "github.com/Faultbox/uvsphere/pkg/math"

// Index is an optional index into one of a mesh's attribute lists.
type Index struct {
	I     int
	Valid bool
}

// Some returns a present index.
func Some(i int) Index {
	return Index{I: i, Valid: true}
}

// VertexRef is one corner of a face. Position is always present; Normal and
// UV index their own lists and need not match Position.
type VertexRef struct {
	Position int
	Normal   Index
	UV       Index
}

// Face is a triangle wound counter-clockwise when seen from outside.
type Face [3]VertexRef

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}
