// Package sphere generates UV (latitude/longitude) sphere meshes.
//
// Vertex layout is fixed: index 0 is the north pole (0, 1, 0), followed by
// stacks-1 latitude bands of slices vertices each, ordered by longitude, and
// finally the south pole (0, -1, 0). Triangulation relies on this layout.
package sphere

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/uvsphere/pkg/math"
)

// Param is the (longitude, latitude) pair a vertex was sampled at, in
// radians. Lat runs from 0 at the north pole to Pi at the south pole.
type Param struct {
	Lon float32
	Lat float32
}

// UV maps the parameter onto [0,1]x[0,1] texture space.
func (p Param) UV() math.Vec2 {
	return math.Vec2{X: p.Lon / (2 * math32.Pi), Y: p.Lat / math32.Pi}
}

// Samples holds sampled sphere positions and their parameters. Params has one
// extra entry per band closing the seam at Lon = 2*Pi, so it is longer than
// Positions.
type Samples struct {
	Slices    int
	Stacks    int
	Positions []math.Vec3
	Params    []Param
}

// NumPositions returns the number of positions a sphere with the given
// divisions has.
func NumPositions(slices, stacks int) int {
	return slices*(stacks-1) + 2
}

// NumParams returns the number of parameters (positions plus seam entries).
func NumParams(slices, stacks int) int {
	return (slices+1)*(stacks-1) + 2
}

// NumFaces returns the number of triangles a sphere with the given divisions
// has.
func NumFaces(slices, stacks int) int {
	return 2*slices + 2*slices*(stacks-2)
}

// Sample computes the unit-sphere positions for the given divisions.
func Sample(slices, stacks int) (*Samples, error) {
	if err := Validate(slices, stacks); err != nil {
		return nil, err
	}

	positions := make([]math.Vec3, 0, NumPositions(slices, stacks))
	params := make([]Param, 0, NumParams(slices, stacks))

	positions = append(positions, math.UnitY())
	params = append(params, Param{Lon: 0, Lat: 0})

	for lat := 1; lat < stacks; lat++ {
		latAngle := math32.Pi * float32(lat) / float32(stacks)
		sinLat, cosLat := math32.Sin(latAngle), math32.Cos(latAngle)
		for lon := 0; lon < slices; lon++ {
			lonAngle := 2 * math32.Pi * float32(lon) / float32(slices)
			sinLon, cosLon := math32.Sin(lonAngle), math32.Cos(lonAngle)
			positions = append(positions, math.NewVec3(sinLat*sinLon, cosLat, sinLat*cosLon))
			params = append(params, Param{Lon: lonAngle, Lat: latAngle})
		}
		// Seam duplicate for texture wrap; no position is added.
		params = append(params, Param{Lon: 2 * math32.Pi, Lat: latAngle})
	}

	positions = append(positions, math.NewVec3(0, -1, 0))
	params = append(params, Param{Lon: 0, Lat: math32.Pi})

	return &Samples{
		Slices:    slices,
		Stacks:    stacks,
		Positions: positions,
		Params:    params,
	}, nil
}
