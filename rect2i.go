package glue

import (
	"image"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/message"
)

// Rect2i is an integer axis-aligned rectangle made of a position and a size.
//
// No invariant is enforced on the fields: a negative Size is accepted and
// can be normalized with Abs.
type Rect2i struct {
	// Position is the beginning corner, typically the top-left.
	Position Vector2i

	// Size is the extent from Position to End. Usually non-negative.
	Size Vector2i
}

// NewRect2i creates a rectangle from a position and a size.
func NewRect2i(position, size Vector2i) Rect2i {
	return Rect2i{Position: position, Size: size}
}

// Rect2iPosWH creates a rectangle from a position, a width and a height.
func Rect2iPosWH(position Vector2i, width, height int32) Rect2i {
	return Rect2i{Position: position, Size: Vector2i{X: width, Y: height}}
}

// Rect2iXYSize creates a rectangle from x, y and a size.
func Rect2iXYSize(x, y int32, size Vector2i) Rect2i {
	return Rect2i{Position: Vector2i{X: x, Y: y}, Size: size}
}

// Rect2iXYWH creates a rectangle from x, y, width and height.
func Rect2iXYWH(x, y, width, height int32) Rect2i {
	return Rect2i{Position: Vector2i{X: x, Y: y}, Size: Vector2i{X: width, Y: height}}
}

// Rect2iFromImage converts an image.Rectangle to a Rect2i.
func Rect2iFromImage(r image.Rectangle) Rect2i {
	return NewRect2i(Vec2iFromPoint(r.Min), Vec2iFromPoint(r.Size()))
}

// End returns the ending corner, Position + Size.
func (r Rect2i) End() Vector2i {
	return r.Position.Add(r.Size)
}

// Abs returns an equivalent rectangle with a non-negative size. The
// position moves to the top-left corner of the covered area.
func (r Rect2i) Abs() Rect2i {
	return Rect2i{
		Position: Vector2i{
			X: r.Position.X + min(r.Size.X, 0),
			Y: r.Position.Y + min(r.Size.Y, 0),
		},
		Size: r.Size.Abs(),
	}
}

// Area returns Size.X * Size.Y. It is negative when exactly one size
// component is negative.
func (r Rect2i) Area() int64 {
	return int64(r.Size.X) * int64(r.Size.Y)
}

// HasArea reports whether both size components are positive.
func (r Rect2i) HasArea() bool {
	return r.Size.X > 0 && r.Size.Y > 0
}

// HasPoint reports whether p lies inside the rectangle. The beginning edges
// are inclusive and the ending edges exclusive. Expects a non-negative size.
func (r Rect2i) HasPoint(p Vector2i) bool {
	if p.X < r.Position.X || p.Y < r.Position.Y {
		return false
	}
	end := r.End()
	return p.X < end.X && p.Y < end.Y
}

// Intersects reports whether r and o overlap. Touching edges do not count.
// Expects non-negative sizes.
func (r Rect2i) Intersects(o Rect2i) bool {
	rEnd, oEnd := r.End(), o.End()
	if r.Position.X >= oEnd.X || rEnd.X <= o.Position.X {
		return false
	}
	if r.Position.Y >= oEnd.Y || rEnd.Y <= o.Position.Y {
		return false
	}
	return true
}

// Equal reports whether both position and size are equal.
func (r Rect2i) Equal(o Rect2i) bool {
	return r.Position.Equal(o.Position) && r.Size.Equal(o.Size)
}

// Hash returns a hash combining the position and size hashes.
func (r Rect2i) Hash() uint32 {
	return r.Position.Hash() ^ r.Size.Hash()
}

// String returns the rectangle as "((x, y), (w, h))".
func (r Rect2i) String() string {
	return tuple(r.Position.String(), r.Size.String())
}

// Formatted returns the rectangle with format applied to each component.
func (r Rect2i) Formatted(format string) string {
	return r.FormattedIn(nil, format)
}

// FormattedIn is like Formatted but prints through p.
func (r Rect2i) FormattedIn(p *message.Printer, format string) string {
	return tuple(r.Position.FormattedIn(p, format), r.Size.FormattedIn(p, format))
}

// Image converts the rectangle to a canonical image.Rectangle.
func (r Rect2i) Image() image.Rectangle {
	end := r.End()
	return image.Rect(int(r.Position.X), int(r.Position.Y), int(end.X), int(end.Y))
}

// Fixed converts the rectangle to 26.6 fixed-point bounds.
func (r Rect2i) Fixed() fixed.Rectangle26_6 {
	end := r.End()
	return fixed.R(int(r.Position.X), int(r.Position.Y), int(end.X), int(end.Y))
}

// Extent3D returns the size as a single-layer GPU extent.
// Negative size components clamp to zero.
func (r Rect2i) Extent3D() gputypes.Extent3D {
	return Vector3i{X: r.Size.X, Y: r.Size.Y, Z: 1}.Extent3D()
}
