package glue

// equatable is satisfied by the value types' typed Equal methods.
type equatable[T any] interface {
	Equal(T) bool
}

// Equal reports whether a and b hold the same value type with equal
// contents, in the manner of object equality: the dynamic types must match
// before the typed comparison runs. Pointers to value types are compared by
// the values they point to; a nil pointer equals nothing.
//
// StringName is not handled here because its comparison can fail; use
// (*StringName).Equal.
func Equal(a, b any) bool {
	switch x := a.(type) {
	case Vector2i:
		return equalTo(x, b)
	case *Vector2i:
		return x != nil && equalTo(*x, b)
	case Vector3i:
		return equalTo(x, b)
	case *Vector3i:
		return x != nil && equalTo(*x, b)
	case Vector4:
		return equalTo(x, b)
	case *Vector4:
		return x != nil && equalTo(*x, b)
	case Vector4i:
		return equalTo(x, b)
	case *Vector4i:
		return x != nil && equalTo(*x, b)
	case Rect2i:
		return equalTo(x, b)
	case *Rect2i:
		return x != nil && equalTo(*x, b)
	case Projection:
		return equalTo(x, b)
	case *Projection:
		return x != nil && equalTo(*x, b)
	}
	return false
}

func equalTo[T equatable[T]](x T, b any) bool {
	switch y := b.(type) {
	case T:
		return x.Equal(y)
	case *T:
		return y != nil && x.Equal(*y)
	}
	return false
}
