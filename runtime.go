package glue

import (
	"fmt"
	"sync"
)

// Handle is an opaque reference to a resource owned by the native runtime.
// Its bits are never interpreted by this package; every operation on it is
// delegated to the Runtime that issued it.
type Handle uintptr

// NullHandle is the handle value that refers to no resource.
const NullHandle Handle = 0

// IsNull reports whether h is the null handle.
func (h Handle) IsNull() bool {
	return h == NullHandle
}

// String returns the handle as a hexadecimal address.
func (h Handle) String() string {
	return fmt.Sprintf("0x%x", uintptr(h))
}

// Runtime is the native side of the StringName binding.
//
// Implementations are provided by engine integrations. The package
// github.com/gogpu/glue/native provides an in-process implementation and
// registers it via blank import:
//
//	import _ "github.com/gogpu/glue/native"
//
// StringName never passes NullHandle or a released handle to a Runtime.
// Implementations must be safe for concurrent use.
type Runtime interface {
	// New allocates an empty name.
	New() Handle

	// NewFromString allocates a name interning s.
	NewFromString(s string) Handle

	// Clone allocates a new handle to the same interned value as h.
	Clone(h Handle) Handle

	// Release frees the resource behind h.
	Release(h Handle)

	// Equal reports whether a and b refer to equal interned values.
	Equal(a, b Handle) bool

	// String returns the text behind h.
	String(h Handle) string

	// Hash returns a hash of the value behind h. Handles for which Equal
	// reports true must hash equally.
	Hash(h Handle) uint32
}

var (
	runtimeMu  sync.RWMutex
	registered Runtime
)

// RegisterRuntime sets the process-wide native runtime used by StringName
// constructors that are not given WithRuntime.
//
// Only one runtime can be registered. Subsequent calls replace the previous
// one; names created earlier keep using the runtime that issued them.
//
// Typical usage via blank import in runtime packages:
//
//	func init() {
//	    glue.RegisterRuntime(New())
//	}
func RegisterRuntime(r Runtime) error {
	if r == nil {
		return ErrNilRuntime
	}
	propagateLogger(r, Logger())

	runtimeMu.Lock()
	old := registered
	registered = r
	runtimeMu.Unlock()

	if old != nil && old != r {
		Logger().Warn("glue: native runtime replaced", "old", fmt.Sprintf("%T", old), "new", fmt.Sprintf("%T", r))
	} else {
		Logger().Info("glue: native runtime registered", "runtime", fmt.Sprintf("%T", r))
	}
	return nil
}

// CurrentRuntime returns the registered native runtime, or nil if none.
func CurrentRuntime() Runtime {
	runtimeMu.RLock()
	r := registered
	runtimeMu.RUnlock()
	return r
}
