package mesh

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Faultbox/uvsphere/pkg/math"
)

var (
	// ErrIndexOutOfRange is returned by New when a face refers to an element
	// that does not exist in the corresponding list.
	ErrIndexOutOfRange = errors.New("mesh: index out of range")

	// ErrMissingAttribute is returned by New when a face refers to normals or
	// UVs that the mesh does not carry.
	ErrMissingAttribute = errors.New("mesh: face references missing attribute list")
)

// Mesh is an immutable triangle mesh. Normals, UVs and faces are optional;
// accessors report whether they are present. Face indices are only
// meaningful relative to the Mesh that owns them.
type Mesh struct {
	positions []math.Vec3
	normals   []math.Vec3
	uvs       []math.Vec2
	faces     []Face

	hasNormals bool
	hasUVs     bool
	hasFaces   bool

	bounds Bounds
}

// Data is the input to New. A nil slice marks the attribute as absent; an
// empty non-nil slice is present but empty.
type Data struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	UVs       []math.Vec2
	Faces     []Face
}

// New validates d and returns a Mesh owning copies of its slices. Either the
// whole mesh is returned or an error, never a partial mesh.
func New(d Data) (*Mesh, error) {
	for fi, f := range d.Faces {
		for ci, ref := range f {
			if err := checkRef(d, ref); err != nil {
				return nil, fmt.Errorf("face %d corner %d: %w", fi, ci, err)
			}
		}
	}

	m := &Mesh{
		positions:  slices.Clone(d.Positions),
		normals:    slices.Clone(d.Normals),
		uvs:        slices.Clone(d.UVs),
		faces:      slices.Clone(d.Faces),
		hasNormals: d.Normals != nil,
		hasUVs:     d.UVs != nil,
		hasFaces:   d.Faces != nil,
	}
	if m.positions == nil {
		m.positions = []math.Vec3{}
	}
	m.bounds = computeBounds(m.positions)
	return m, nil
}

func checkRef(d Data, ref VertexRef) error {
	if ref.Position < 0 || ref.Position >= len(d.Positions) {
		return fmt.Errorf("%w: position %d of %d", ErrIndexOutOfRange, ref.Position, len(d.Positions))
	}
	if ref.Normal.Valid {
		if d.Normals == nil {
			return fmt.Errorf("%w: normals", ErrMissingAttribute)
		}
		if ref.Normal.I < 0 || ref.Normal.I >= len(d.Normals) {
			return fmt.Errorf("%w: normal %d of %d", ErrIndexOutOfRange, ref.Normal.I, len(d.Normals))
		}
	}
	if ref.UV.Valid {
		if d.UVs == nil {
			return fmt.Errorf("%w: uvs", ErrMissingAttribute)
		}
		if ref.UV.I < 0 || ref.UV.I >= len(d.UVs) {
			return fmt.Errorf("%w: uv %d of %d", ErrIndexOutOfRange, ref.UV.I, len(d.UVs))
		}
	}
	return nil
}

// Positions returns a copy of the vertex positions.
func (m *Mesh) Positions() []math.Vec3 {
	return slices.Clone(m.positions)
}

// Normals returns a copy of the normals and whether the mesh has any.
func (m *Mesh) Normals() ([]math.Vec3, bool) {
	if !m.hasNormals {
		return nil, false
	}
	return slices.Clone(m.normals), true
}

// UVs returns a copy of the texture coordinates and whether the mesh has any.
func (m *Mesh) UVs() ([]math.Vec2, bool) {
	if !m.hasUVs {
		return nil, false
	}
	return slices.Clone(m.uvs), true
}

// Faces returns a copy of the faces and whether the mesh has any.
func (m *Mesh) Faces() ([]Face, bool) {
	if !m.hasFaces {
		return nil, false
	}
	return slices.Clone(m.faces), true
}

// Position returns position i. It panics if i is out of range.
func (m *Mesh) Position(i int) math.Vec3 {
	return m.positions[i]
}

// NumPositions returns the number of positions.
func (m *Mesh) NumPositions() int {
	return len(m.positions)
}

// NumFaces returns the number of faces, zero when faces are absent.
func (m *Mesh) NumFaces() int {
	return len(m.faces)
}

// Indices flattens the faces into a position index buffer, three entries per
// triangle.
func (m *Mesh) Indices() []uint32 {
	indices := make([]uint32, 0, len(m.faces)*3)
	for _, f := range m.faces {
		indices = append(indices, uint32(f[0].Position), uint32(f[1].Position), uint32(f[2].Position))
	}
	return indices
}

// Bounds returns the axis-aligned bounding box of the positions.
func (m *Mesh) Bounds() Bounds {
	return m.bounds
}

func computeBounds(positions []math.Vec3) Bounds {
	if len(positions) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: positions[0], Max: positions[0]}
	for _, p := range positions[1:] {
		updateBounds(&b, p)
	}
	return b
}

func updateBounds(b *Bounds, p math.Vec3) {
	b.Min = math.NewVec3(min(b.Min.X(), p.X()), min(b.Min.Y(), p.Y()), min(b.Min.Z(), p.Z()))
	b.Max = math.NewVec3(max(b.Max.X(), p.X()), max(b.Max.Y(), p.Y()), max(b.Max.Z(), p.Z()))
}
