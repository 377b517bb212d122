package glue

import (
	"fmt"
	"strings"

	"golang.org/x/text/message"
)

// Value is implemented by every numeric value type in this package.
type Value interface {
	fmt.Stringer

	// Hash returns a hash that is equal for equal values.
	Hash() uint32

	// Formatted renders each component with the given fmt verb.
	Formatted(format string) string

	// FormattedIn is like Formatted but prints through p, so the output
	// follows p's locale (digit grouping, decimal separator).
	FormattedIn(p *message.Printer, format string) string
}

var (
	_ Value = Vector2i{}
	_ Value = Vector3i{}
	_ Value = Vector4{}
	_ Value = Vector4i{}
	_ Value = Rect2i{}
	_ Value = Projection{}
)

// component is the set of scalar types stored in value types.
type component interface {
	~int32 | ~float32 | ~float64
}

// tuple renders already formatted parts as "(a, b, c)".
func tuple(parts ...string) string {
	return "(" + strings.Join(parts, ", ") + ")"
}

// formatComponents applies format to every component independently.
// A nil printer formats with package fmt.
func formatComponents[T component](p *message.Printer, format string, comps ...T) string {
	parts := make([]string, len(comps))
	for i, c := range comps {
		if p == nil {
			parts[i] = fmt.Sprintf(format, c)
		} else {
			parts[i] = p.Sprintf(format, c)
		}
	}
	return tuple(parts...)
}

// defaultComponents renders components with their default representation:
// integers in decimal, reals in shortest round-trip form.
func defaultComponents[T component](comps ...T) string {
	parts := make([]string, len(comps))
	for i, c := range comps {
		parts[i] = fmt.Sprint(c)
	}
	return tuple(parts...)
}

// indexPanic builds the panic value for an out-of-range component index.
func indexPanic(typeName string, i int) string {
	return fmt.Sprintf("glue: %s index %d out of range", typeName, i)
}

// clampUint32 converts v to uint32, clamping negatives to zero.
func clampUint32(v int32) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}
