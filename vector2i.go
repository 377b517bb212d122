package glue

import (
	"image"

	"golang.org/x/image/math/fixed"
	"golang.org/x/text/message"
)

// Vector2i is a 2D vector with integer components. It mirrors the engine's
// Vector2i layout: two consecutive int32 values.
type Vector2i struct {
	X, Y int32
}

// Vec2i is a convenience function to create a Vector2i.
func Vec2i(x, y int32) Vector2i {
	return Vector2i{X: x, Y: y}
}

// Vec2iFromPoint converts an image.Point to a Vector2i.
// Coordinates outside the int32 range are truncated.
func Vec2iFromPoint(p image.Point) Vector2i {
	return Vector2i{X: int32(p.X), Y: int32(p.Y)}
}

// Add returns the component-wise sum of two vectors.
func (v Vector2i) Add(w Vector2i) Vector2i {
	return Vector2i{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vector2i) Sub(w Vector2i) Vector2i {
	return Vector2i{X: v.X - w.X, Y: v.Y - w.Y}
}

// Abs returns the vector with each component replaced by its absolute value.
func (v Vector2i) Abs() Vector2i {
	return Vector2i{X: absInt32(v.X), Y: absInt32(v.Y)}
}

// At returns the component at index i (0 is X, 1 is Y).
// It panics if i is out of range.
func (v Vector2i) At(i int) int32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(indexPanic("Vector2i", i))
}

// Set assigns the component at index i. It panics if i is out of range.
func (v *Vector2i) Set(i int, c int32) {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	default:
		panic(indexPanic("Vector2i", i))
	}
}

// Equal reports whether both components are equal.
func (v Vector2i) Equal(o Vector2i) bool {
	return v.X == o.X && v.Y == o.Y
}

// Hash returns a hash of the vector's components.
func (v Vector2i) Hash() uint32 {
	return uint32(v.Y) ^ uint32(v.X)
}

// String returns the vector as "(x, y)".
func (v Vector2i) String() string {
	return defaultComponents(v.X, v.Y)
}

// Formatted returns the vector with format applied to each component,
// e.g. Vec2i(3, 4).Formatted("%03d") is "(003, 004)".
func (v Vector2i) Formatted(format string) string {
	return formatComponents(nil, format, v.X, v.Y)
}

// FormattedIn is like Formatted but prints through p.
func (v Vector2i) FormattedIn(p *message.Printer, format string) string {
	return formatComponents(p, format, v.X, v.Y)
}

// Point converts the vector to an image.Point.
func (v Vector2i) Point() image.Point {
	return image.Point{X: int(v.X), Y: int(v.Y)}
}

// Fixed converts the vector to a 26.6 fixed-point point.
func (v Vector2i) Fixed() fixed.Point26_6 {
	return fixed.P(int(v.X), int(v.Y))
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
