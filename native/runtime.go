// Package native provides an in-process implementation of glue.Runtime.
//
// The runtime keeps a handle table on top of a sharded interning table:
// every allocation yields a fresh opaque handle, and handles to equal text
// share one interned entry. Equality therefore compares entries, never the
// handle values themselves.
//
// Importing the package for its side effects registers a default runtime:
//
//	import _ "github.com/gogpu/glue/native"
package native

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/glue"
	"github.com/gogpu/glue/internal/intern"
)

// Stats holds runtime statistics.
type Stats struct {
	// Handles is the number of live handles.
	Handles int

	// Entries is the number of distinct interned texts.
	Entries int

	// Allocations counts handles issued by New, NewFromString and Clone.
	Allocations uint64

	// Releases counts successful releases.
	Releases uint64

	// UnknownReleases counts releases of handles the runtime did not know,
	// including double releases.
	UnknownReleases uint64
}

// Runtime is an in-process glue.Runtime. It is safe for concurrent use.
type Runtime struct {
	table *intern.Table

	mu      sync.RWMutex
	handles map[glue.Handle]*intern.Entry
	next    glue.Handle

	logger atomic.Pointer[slog.Logger]

	allocs   atomic.Uint64
	releases atomic.Uint64
	unknown  atomic.Uint64
}

var _ glue.Runtime = (*Runtime)(nil)

// New creates a runtime.
func New(opts ...Option) *Runtime {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Runtime{
		table:   intern.New(o.shardCapacity),
		handles: make(map[glue.Handle]*intern.Entry),
	}
	if o.logger != nil {
		r.logger.Store(o.logger)
	}
	return r
}

// SetLogger sets the runtime's logger. glue.SetLogger calls it for the
// registered runtime. Pass nil to fall back to glue.Logger.
func (r *Runtime) SetLogger(l *slog.Logger) {
	r.logger.Store(l)
}

func (r *Runtime) log() *slog.Logger {
	if l := r.logger.Load(); l != nil {
		return l
	}
	return glue.Logger()
}

// issue stores e under a fresh handle.
func (r *Runtime) issue(e *intern.Entry) glue.Handle {
	r.mu.Lock()
	r.next++
	h := r.next
	r.handles[h] = e
	r.mu.Unlock()

	r.allocs.Add(1)
	return h
}

func (r *Runtime) entry(h glue.Handle) (*intern.Entry, bool) {
	r.mu.RLock()
	e, ok := r.handles[h]
	r.mu.RUnlock()
	return e, ok
}

// New allocates an empty name. All empty names compare equal.
func (r *Runtime) New() glue.Handle {
	return r.NewFromString("")
}

// NewFromString allocates a handle interning s.
func (r *Runtime) NewFromString(s string) glue.Handle {
	return r.issue(r.table.Acquire(s))
}

// Clone allocates a new handle sharing h's interned entry. It returns
// glue.NullHandle if h is unknown.
func (r *Runtime) Clone(h glue.Handle) glue.Handle {
	e, ok := r.entry(h)
	if !ok {
		r.log().Warn("native: clone of unknown handle", "handle", h)
		return glue.NullHandle
	}
	r.table.Retain(e)
	return r.issue(e)
}

// Release frees h. Unknown handles, including ones already released, are
// ignored and logged.
func (r *Runtime) Release(h glue.Handle) {
	r.mu.Lock()
	e, ok := r.handles[h]
	if ok {
		delete(r.handles, h)
	}
	r.mu.Unlock()

	if !ok {
		r.unknown.Add(1)
		r.log().Warn("native: release of unknown handle", "handle", h)
		return
	}
	r.releases.Add(1)
	if r.table.Release(e) {
		r.log().Debug("native: interned text dropped", "text", e.Text())
	}
}

// Equal reports whether a and b refer to the same interned entry.
// Unknown handles are unequal to everything.
func (r *Runtime) Equal(a, b glue.Handle) bool {
	ea, ok := r.entry(a)
	if !ok {
		return false
	}
	eb, ok := r.entry(b)
	return ok && ea == eb
}

// String returns the text behind h, or "" if h is unknown.
func (r *Runtime) String(h glue.Handle) string {
	if e, ok := r.entry(h); ok {
		return e.Text()
	}
	return ""
}

// Hash returns the hash of the text behind h, or 0 if h is unknown.
func (r *Runtime) Hash(h glue.Handle) uint32 {
	if e, ok := r.entry(h); ok {
		return e.Hash()
	}
	return 0
}

// Stats returns current runtime statistics.
func (r *Runtime) Stats() Stats {
	r.mu.RLock()
	handles := len(r.handles)
	r.mu.RUnlock()

	return Stats{
		Handles:         handles,
		Entries:         r.table.Len(),
		Allocations:     r.allocs.Load(),
		Releases:        r.releases.Load(),
		UnknownReleases: r.unknown.Load(),
	}
}

var defaultRuntime = New()

// Default returns the package's shared runtime. Unless built with the
// noglueruntime tag, it is registered with glue at init.
func Default() *Runtime {
	return defaultRuntime
}
