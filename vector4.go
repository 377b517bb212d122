package glue

import (
	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
	"golang.org/x/text/message"
)

// Vector4 is a 4D vector of Real components.
//
// Equality is exact: components are compared with ==, so a vector holding
// NaN is not equal to itself.
type Vector4 struct {
	X, Y, Z, W Real
}

// Vec4 is a convenience function to create a Vector4.
func Vec4(x, y, z, w Real) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vec4FromF32 converts a float32 vector to a Vector4.
func Vec4FromF32(v f32.Vec4) Vector4 {
	return Vector4{X: Real(v[0]), Y: Real(v[1]), Z: Real(v[2]), W: Real(v[3])}
}

// At returns the component at index i (0 is X through 3 is W).
// It panics if i is out of range.
func (v Vector4) At(i int) Real {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(indexPanic("Vector4", i))
}

// Set assigns the component at index i. It panics if i is out of range.
func (v *Vector4) Set(i int, c Real) {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	case 2:
		v.Z = c
	case 3:
		v.W = c
	default:
		panic(indexPanic("Vector4", i))
	}
}

// Equal reports whether all components are exactly equal.
func (v Vector4) Equal(o Vector4) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z && v.W == o.W
}

// Hash returns a hash of the vector's components.
func (v Vector4) Hash() uint32 {
	return hashReal(v.Y) ^ hashReal(v.X) ^ hashReal(v.Z) ^ hashReal(v.W)
}

// String returns the vector as "(x, y, z, w)".
func (v Vector4) String() string {
	return defaultComponents(v.X, v.Y, v.Z, v.W)
}

// Formatted returns the vector with format applied to each component,
// e.g. "%.2f".
func (v Vector4) Formatted(format string) string {
	return formatComponents(nil, format, v.X, v.Y, v.Z, v.W)
}

// FormattedIn is like Formatted but prints through p.
func (v Vector4) FormattedIn(p *message.Printer, format string) string {
	return formatComponents(p, format, v.X, v.Y, v.Z, v.W)
}

// F32 converts the vector to a float32 vector.
func (v Vector4) F32() f32.Vec4 {
	return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// Color interprets the vector as an RGBA color (X=R, Y=G, Z=B, W=A).
func (v Vector4) Color() gputypes.Color {
	return gputypes.Color{R: float64(v.X), G: float64(v.Y), B: float64(v.Z), A: float64(v.W)}
}
