// Package math provides the vector types used by the sphere generator.
package math

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FitVec3 is the packed three-float form of a vector, as consumed by GL
// vertex buffers.
type FitVec3 = mgl32.Vec3

// Vec3 is a 3D vector stored in four lanes. The fourth lane is alignment
// padding: it is never returned by accessors and never compared by Equal.
// Use Equal rather than == when the padding may differ.
type Vec3 struct {
	arr [4]float32
}

// NewVec3 returns the vector (x, y, z).
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{arr: [4]float32{x, y, z, 0}}
}

// Zero returns the zero vector.
func Zero() Vec3 {
	return Vec3{}
}

// UnitX returns (1, 0, 0).
func UnitX() Vec3 {
	return NewVec3(1, 0, 0)
}

// UnitY returns (0, 1, 0).
func UnitY() Vec3 {
	return NewVec3(0, 1, 0)
}

// UnitZ returns (0, 0, 1).
func UnitZ() Vec3 {
	return NewVec3(0, 0, 1)
}

// FromFit converts a packed vector back to Vec3. Padding is zero.
func FromFit(f FitVec3) Vec3 {
	return NewVec3(f[0], f[1], f[2])
}

// X returns the x component.
func (v Vec3) X() float32 { return v.arr[0] }

// Y returns the y component.
func (v Vec3) Y() float32 { return v.arr[1] }

// Z returns the z component.
func (v Vec3) Z() float32 { return v.arr[2] }

// At returns component i (0=x, 1=y, 2=z). It panics for any other index.
func (v Vec3) At(i int) float32 {
	if i < 0 || i > 2 {
		panic(fmt.Sprintf("math: Vec3 index %d out of range [0, 2]", i))
	}
	return v.arr[i]
}

// Fit returns the packed three-float form of v.
func (v Vec3) Fit() FitVec3 {
	return FitVec3{v.arr[0], v.arr[1], v.arr[2]}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	v.AddAssign(other)
	return v
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	v.SubAssign(other)
	return v
}

// Mul returns the component-wise product of v and other.
func (v Vec3) Mul(other Vec3) Vec3 {
	v.MulAssign(other)
	return v
}

// AddScalar returns v with s added to each component.
func (v Vec3) AddScalar(s float32) Vec3 {
	v.AddScalarAssign(s)
	return v
}

// SubScalar returns v with s subtracted from each component.
func (v Vec3) SubScalar(s float32) Vec3 {
	v.SubScalarAssign(s)
	return v
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	v.ScaleAssign(s)
	return v
}

// AddAssign adds other to v in place.
func (v *Vec3) AddAssign(other Vec3) {
	for i := range v.arr {
		v.arr[i] += other.arr[i]
	}
}

// SubAssign subtracts other from v in place.
func (v *Vec3) SubAssign(other Vec3) {
	for i := range v.arr {
		v.arr[i] -= other.arr[i]
	}
}

// MulAssign multiplies v by other component-wise in place.
func (v *Vec3) MulAssign(other Vec3) {
	for i := range v.arr {
		v.arr[i] *= other.arr[i]
	}
}

// AddScalarAssign adds s to x, y and z in place. Padding is left alone.
func (v *Vec3) AddScalarAssign(s float32) {
	v.arr[0] += s
	v.arr[1] += s
	v.arr[2] += s
}

// SubScalarAssign subtracts s from x, y and z in place. Padding is left alone.
func (v *Vec3) SubScalarAssign(s float32) {
	v.arr[0] -= s
	v.arr[1] -= s
	v.arr[2] -= s
}

// ScaleAssign multiplies every lane of v by s in place.
func (v *Vec3) ScaleAssign(s float32) {
	for i := range v.arr {
		v.arr[i] *= s
	}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.arr[0]*other.arr[0] + v.arr[1]*other.arr[1] + v.arr[2]*other.arr[2]
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return NewVec3(
		v.arr[1]*other.arr[2]-v.arr[2]*other.arr[1],
		v.arr[2]*other.arr[0]-v.arr[0]*other.arr[2],
		v.arr[0]*other.arr[1]-v.arr[1]*other.arr[0],
	)
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns a unit vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return NewVec3(v.arr[0]/l, v.arr[1]/l, v.arr[2]/l)
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Equal reports whether x, y and z match exactly.
func (v Vec3) Equal(other Vec3) bool {
	return v.arr[0] == other.arr[0] && v.arr[1] == other.arr[1] && v.arr[2] == other.arr[2]
}

// ApproxEqual reports whether every component is within eps of other.
func (v Vec3) ApproxEqual(other Vec3, eps float32) bool {
	for i := 0; i < 3; i++ {
		if math32.Abs(v.arr[i]-other.arr[i]) > eps {
			return false
		}
	}
	return true
}

// XZ returns the XZ components as Vec2.
func (v Vec3) XZ() Vec2 {
	return Vec2{v.arr[0], v.arr[2]}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.arr[0], v.arr[1], v.arr[2])
}
