// Package glue provides the Go side of a game engine's scripting binding:
// value types that mirror native engine structures and an interned string
// handle backed by the native runtime.
//
// # Overview
//
// The value types (Vector2i, Vector3i, Vector4, Vector4i, Rect2i,
// Projection) are plain structs laid out field-for-field like their engine
// counterparts. They are compared, hashed and formatted by value and need
// no cleanup.
//
// StringName is different: it owns one opaque native resource. Create it
// with NewStringName or NewStringNameFrom and release it with Dispose (or
// Close) when done:
//
//	import (
//	    "github.com/gogpu/glue"
//	    _ "github.com/gogpu/glue/native" // in-process runtime
//	)
//
//	name, err := glue.NewStringNameFrom("player")
//	if err != nil {
//	    return err
//	}
//	defer name.Dispose()
//
// # Native runtime
//
// Every StringName operation that touches the resource is delegated to a
// Runtime. Engine integrations register one with RegisterRuntime, usually
// from an init function in a package imported for side effects. Package
// native provides an in-process runtime for tools and tests.
//
// # Formatting
//
// String renders components as "(x, y, ...)". Formatted applies a fmt verb
// to each component, and FormattedIn does the same through a
// golang.org/x/text/message Printer for locale-aware output.
//
// # Precision
//
// Real is float32. Build with -tags glue_double for float64, matching an
// engine compiled with double precision.
package glue

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
