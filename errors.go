package glue

import "errors"

var (
	// ErrNilStringName is returned when an operation receives a nil
	// *StringName as its receiver or argument.
	ErrNilStringName = errors.New("glue: StringName is nil")

	// ErrDisposed is returned when an operation other than disposal is
	// attempted on a disposed StringName.
	ErrDisposed = errors.New("glue: StringName is disposed")

	// ErrNoRuntime is returned when a StringName is created while no native
	// runtime is registered or supplied with WithRuntime.
	ErrNoRuntime = errors.New("glue: no native runtime registered")

	// ErrNilRuntime is returned by RegisterRuntime for a nil runtime.
	ErrNilRuntime = errors.New("glue: runtime must not be nil")

	// ErrNullHandle is returned when the native runtime hands back the null
	// handle from an allocation.
	ErrNullHandle = errors.New("glue: native runtime returned a null handle")
)
