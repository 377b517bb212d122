package glue

import "golang.org/x/text/message"

// Vector4i is a 4D vector with integer components.
type Vector4i struct {
	X, Y, Z, W int32
}

// Vec4i is a convenience function to create a Vector4i.
func Vec4i(x, y, z, w int32) Vector4i {
	return Vector4i{X: x, Y: y, Z: z, W: w}
}

// At returns the component at index i. It panics if i is out of range.
func (v Vector4i) At(i int) int32 {
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
	panic(indexPanic("Vector4i", i))
}

// Set assigns the component at index i. It panics if i is out of range.
func (v *Vector4i) Set(i int, c int32) {
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
		panic(indexPanic("Vector4i", i))
	}
}

// Equal reports whether all components are equal.
func (v Vector4i) Equal(o Vector4i) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z && v.W == o.W
}

// Hash returns a hash of the vector's components.
func (v Vector4i) Hash() uint32 {
	return uint32(v.Y) ^ uint32(v.X) ^ uint32(v.Z) ^ uint32(v.W)
}

// String returns the vector as "(x, y, z, w)".
func (v Vector4i) String() string {
	return defaultComponents(v.X, v.Y, v.Z, v.W)
}

// Formatted returns the vector with format applied to each component.
func (v Vector4i) Formatted(format string) string {
	return formatComponents(nil, format, v.X, v.Y, v.Z, v.W)
}

// FormattedIn is like Formatted but prints through p.
func (v Vector4i) FormattedIn(p *message.Printer, format string) string {
	return formatComponents(p, format, v.X, v.Y, v.Z, v.W)
}

// Vector4 converts the vector to Real components.
func (v Vector4i) Vector4() Vector4 {
	return Vector4{X: Real(v.X), Y: Real(v.Y), Z: Real(v.Z), W: Real(v.W)}
}
