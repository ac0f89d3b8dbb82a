package sphere

import (
	"github.com/Faultbox/uvsphere/pkg/math"
	"github.com/Faultbox/uvsphere/pkg/mesh"
)

// Generate builds a unit UV sphere centred at the origin. Normals equal
// positions and faces index both with the same index; the mesh has no UVs.
// It returns an error wrapping ErrInvalidParameters when slices < 3 or
// stacks < 2.
func Generate(slices, stacks int) (*mesh.Mesh, error) {
	s, err := Sample(slices, stacks)
	if err != nil {
		return nil, err
	}
	faces, err := Triangulate(slices, stacks, len(s.Positions))
	if err != nil {
		return nil, err
	}
	return mesh.New(mesh.Data{
		Positions: s.Positions,
		Normals:   s.Positions,
		Faces:     faces,
	})
}

// GenerateTextured is Generate plus texture coordinates taken from the
// sampled parameters, with a separate UV column at the longitude seam.
func GenerateTextured(slices, stacks int) (*mesh.Mesh, error) {
	s, err := Sample(slices, stacks)
	if err != nil {
		return nil, err
	}
	faces, err := TriangulateTextured(slices, stacks, len(s.Positions))
	if err != nil {
		return nil, err
	}

	uvs := make([]math.Vec2, len(s.Params))
	for i, p := range s.Params {
		uvs[i] = p.UV()
	}

	return mesh.New(mesh.Data{
		Positions: s.Positions,
		Normals:   s.Positions,
		UVs:       uvs,
		Faces:     faces,
	})
}
