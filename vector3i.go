package glue

import (
	"github.com/gogpu/gputypes"
	"golang.org/x/text/message"
)

// Vector3i is a 3D vector with integer components, laid out as three
// consecutive int32 values.
type Vector3i struct {
	X, Y, Z int32
}

// Vec3i is a convenience function to create a Vector3i.
func Vec3i(x, y, z int32) Vector3i {
	return Vector3i{X: x, Y: y, Z: z}
}

// At returns the component at index i (0 is X, 1 is Y, 2 is Z).
// It panics if i is out of range.
func (v Vector3i) At(i int) int32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(indexPanic("Vector3i", i))
}

// Set assigns the component at index i. It panics if i is out of range.
func (v *Vector3i) Set(i int, c int32) {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	case 2:
		v.Z = c
	default:
		panic(indexPanic("Vector3i", i))
	}
}

// Equal reports whether all components are equal.
func (v Vector3i) Equal(o Vector3i) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// Hash returns a hash of the vector's components.
func (v Vector3i) Hash() uint32 {
	return uint32(v.Y) ^ uint32(v.X) ^ uint32(v.Z)
}

// String returns the vector as "(x, y, z)".
func (v Vector3i) String() string {
	return defaultComponents(v.X, v.Y, v.Z)
}

// Formatted returns the vector with format applied to each component.
func (v Vector3i) Formatted(format string) string {
	return formatComponents(nil, format, v.X, v.Y, v.Z)
}

// FormattedIn is like Formatted but prints through p.
func (v Vector3i) FormattedIn(p *message.Printer, format string) string {
	return formatComponents(p, format, v.X, v.Y, v.Z)
}

// Extent3D converts the vector to a GPU extent (width, height, depth).
// Negative components clamp to zero.
func (v Vector3i) Extent3D() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              clampUint32(v.X),
		Height:             clampUint32(v.Y),
		DepthOrArrayLayers: clampUint32(v.Z),
	}
}

// Origin3D converts the vector to a GPU texel origin.
// Negative components clamp to zero.
func (v Vector3i) Origin3D() gputypes.Origin3D {
	return gputypes.Origin3D{X: clampUint32(v.X), Y: clampUint32(v.Y), Z: clampUint32(v.Z)}
}
