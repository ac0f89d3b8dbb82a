package sphere

import (
	"fmt"

	"github.com/Faultbox/uvsphere/pkg/mesh"
)

// Triangulate builds the faces for a sphere sampled with the given divisions.
// positionCount must be the length of the sampled position list; the south
// pole is its last element. Every corner's normal index equals its position
// index and no UV index is set.
func Triangulate(slices, stacks, positionCount int) ([]mesh.Face, error) {
	b, err := newTriangulator(slices, stacks, positionCount, false)
	if err != nil {
		return nil, err
	}
	return b.build(), nil
}

// TriangulateTextured is Triangulate with UV indices into the parameter list
// returned by Sample. The seam column reuses positions but takes the
// duplicate Lon = 2*Pi parameter, so texture coordinates do not wrap
// backwards across the last quad of each band.
func TriangulateTextured(slices, stacks, positionCount int) ([]mesh.Face, error) {
	b, err := newTriangulator(slices, stacks, positionCount, true)
	if err != nil {
		return nil, err
	}
	return b.build(), nil
}

type triangulator struct {
	slices   int
	stacks   int
	south    int
	southUV  int
	textured bool
	faces    []mesh.Face
}

func newTriangulator(slices, stacks, positionCount int, textured bool) (*triangulator, error) {
	if err := Validate(slices, stacks); err != nil {
		return nil, err
	}
	if want := NumPositions(slices, stacks); positionCount != want {
		return nil, fmt.Errorf("%w: %d positions for %dx%d sphere, want %d",
			ErrInvalidParameters, positionCount, slices, stacks, want)
	}
	return &triangulator{
		slices:   slices,
		stacks:   stacks,
		south:    positionCount - 1,
		southUV:  NumParams(slices, stacks) - 1,
		textured: textured,
		faces:    make([]mesh.Face, 0, NumFaces(slices, stacks)),
	}, nil
}

// ref returns a corner whose position, normal and UV indices are given.
func (t *triangulator) ref(pos, uv int) mesh.VertexRef {
	r := mesh.VertexRef{Position: pos, Normal: mesh.Some(pos)}
	if t.textured {
		r.UV = mesh.Some(uv)
	}
	return r
}

// corner returns the body vertex at latitude band `band` (0 = nearest the
// north pole) and longitude column col in [0, slices]. Column slices is the
// seam: it shares column 0's position but has its own UV.
func (t *triangulator) corner(band, col int) mesh.VertexRef {
	pos := 1 + band*t.slices + col%t.slices
	uv := 1 + band*(t.slices+1) + col
	return t.ref(pos, uv)
}

func (t *triangulator) emit(a, b, c mesh.VertexRef) {
	t.faces = append(t.faces, mesh.Face{a, b, c})
}

func (t *triangulator) build() []mesh.Face {
	north := t.ref(0, 0)
	for i := 0; i < t.slices; i++ {
		t.emit(north, t.corner(0, i), t.corner(0, i+1))
	}

	// Quads between adjacent bands, split along the i2-i3 diagonal.
	for band := 0; band < t.stacks-2; band++ {
		for i := 0; i < t.slices; i++ {
			i1 := t.corner(band, i)
			i2 := t.corner(band, i+1)
			i3 := t.corner(band+1, i)
			i4 := t.corner(band+1, i+1)

			t.emit(i2, i1, i3)
			t.emit(i2, i3, i4)
		}
	}

	// Reversed relative to the north cap: the pole is below the band here.
	south := t.ref(t.south, t.southUV)
	last := t.stacks - 2
	for i := 0; i < t.slices; i++ {
		t.emit(south, t.corner(last, i+1), t.corner(last, i))
	}

	return t.faces
}
