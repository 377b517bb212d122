package glue

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/text/message"
)

// Projection is a 4x4 matrix stored as four row vectors, as used by the
// engine for camera projections.
//
// The zero value is the zero matrix. Use NewProjection or
// ProjectionIdentity for the identity.
type Projection struct {
	Row0, Row1, Row2, Row3 Vector4
}

// NewProjection returns the identity projection.
func NewProjection() Projection {
	var m Projection
	m.SetIdentity()
	return m
}

// ProjectionIdentity returns the identity projection:
//
//	| 1 0 0 0 |
//	| 0 1 0 0 |
//	| 0 0 1 0 |
//	| 0 0 0 1 |
func ProjectionIdentity() Projection {
	return NewProjection()
}

// NewProjectionRows creates a projection from four rows.
func NewProjectionRows(row0, row1, row2, row3 Vector4) Projection {
	return Projection{Row0: row0, Row1: row1, Row2: row2, Row3: row3}
}

// ProjectionFromMat4 creates a projection from a row-major float32 matrix.
func ProjectionFromMat4(m f32.Mat4) Projection {
	var p Projection
	for r := range 4 {
		p.setRow(r, Vec4FromF32(f32.Vec4{m[4*r], m[4*r+1], m[4*r+2], m[4*r+3]}))
	}
	return p
}

// SetIdentity resets m to the identity: every row is zeroed and only the
// diagonal element is set to one.
func (m *Projection) SetIdentity() {
	*m = Projection{}
	m.Row0.Set(0, 1)
	m.Row1.Set(1, 1)
	m.Row2.Set(2, 1)
	m.Row3.Set(3, 1)
}

// Row returns row i. It panics if i is out of range.
func (m Projection) Row(i int) Vector4 {
	switch i {
	case 0:
		return m.Row0
	case 1:
		return m.Row1
	case 2:
		return m.Row2
	case 3:
		return m.Row3
	}
	panic(indexPanic("Projection row", i))
}

func (m *Projection) setRow(i int, v Vector4) {
	switch i {
	case 0:
		m.Row0 = v
	case 1:
		m.Row1 = v
	case 2:
		m.Row2 = v
	case 3:
		m.Row3 = v
	default:
		panic(indexPanic("Projection row", i))
	}
}

// Equal reports whether every row of m equals the same row of o.
func (m Projection) Equal(o Projection) bool {
	return m.Row0.Equal(o.Row0) &&
		m.Row1.Equal(o.Row1) &&
		m.Row2.Equal(o.Row2) &&
		m.Row3.Equal(o.Row3)
}

// Hash returns a hash combining all four row hashes.
func (m Projection) Hash() uint32 {
	return m.Row0.Hash() ^ m.Row1.Hash() ^ m.Row2.Hash() ^ m.Row3.Hash()
}

// String returns the rows in order as "((...), (...), (...), (...))".
func (m Projection) String() string {
	return tuple(m.Row0.String(), m.Row1.String(), m.Row2.String(), m.Row3.String())
}

// Formatted returns the matrix with format applied to each element.
func (m Projection) Formatted(format string) string {
	return m.FormattedIn(nil, format)
}

// FormattedIn is like Formatted but prints through p.
func (m Projection) FormattedIn(p *message.Printer, format string) string {
	return tuple(
		m.Row0.FormattedIn(p, format),
		m.Row1.FormattedIn(p, format),
		m.Row2.FormattedIn(p, format),
		m.Row3.FormattedIn(p, format),
	)
}

// Mat4 converts the matrix to a row-major float32 matrix.
func (m Projection) Mat4() f32.Mat4 {
	var out f32.Mat4
	for r := range 4 {
		row := m.Row(r).F32()
		copy(out[4*r:4*r+4], row[:])
	}
	return out
}
