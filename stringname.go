package glue

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// nameSeq numbers name states so that two names are always locked in the
// same order.
var nameSeq atomic.Uint64

// StringName is a name interned by the native runtime.
//
// A StringName owns exactly one native handle. It is live from creation
// until Dispose (or Close) is called, after which every accessor returns
// ErrDisposed. Disposal is idempotent. If a live StringName becomes
// unreachable, a cleanup registered with runtime.AddCleanup releases the
// handle; explicit disposal cancels that cleanup, and the handle is never
// released twice.
//
// Equality is decided by the runtime: two names created from the same text
// compare equal even though their handles differ.
//
// The zero value is disposed. StringName is safe for concurrent use.
type StringName struct {
	state   *nameState
	cleanup runtime.Cleanup
}

// nameState owns the native handle. It is separate from StringName so the
// cleanup can release it once the StringName is unreachable.
type nameState struct {
	mu       sync.RWMutex
	id       uint64
	rt       Runtime
	handle   Handle
	disposed bool
}

// release frees the native handle on the first call and reports whether it
// did so.
func (st *nameState) release() (Handle, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.disposed {
		return NullHandle, false
	}
	st.disposed = true
	h := st.handle
	st.handle = NullHandle
	if !h.IsNull() {
		st.rt.Release(h)
	}
	return h, true
}

func (st *nameState) finalize() {
	if h, ok := st.release(); ok {
		Logger().Debug("glue: StringName released by cleanup", "handle", h)
	}
}

// NewStringName creates an empty name.
func NewStringName(opts ...StringNameOption) (*StringName, error) {
	r, err := resolveRuntime(opts)
	if err != nil {
		return nil, err
	}
	return newStringName(r, r.New())
}

// NewStringNameFrom creates a name interning text.
func NewStringNameFrom(text string, opts ...StringNameOption) (*StringName, error) {
	r, err := resolveRuntime(opts)
	if err != nil {
		return nil, err
	}
	return newStringName(r, r.NewFromString(text))
}

func newStringName(r Runtime, h Handle) (*StringName, error) {
	if h.IsNull() {
		return nil, ErrNullHandle
	}
	st := &nameState{id: nameSeq.Add(1), rt: r, handle: h}
	s := &StringName{state: st}
	s.cleanup = runtime.AddCleanup(s, (*nameState).finalize, st)
	Logger().Debug("glue: StringName allocated", "handle", h)
	return s, nil
}

// with runs fn while holding a read lock on a live state.
func (s *StringName) with(fn func(st *nameState)) error {
	if s == nil {
		return ErrNilStringName
	}
	st := s.state
	if st == nil {
		return ErrDisposed
	}
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.disposed {
		return ErrDisposed
	}
	fn(st)
	runtime.KeepAlive(s)
	return nil
}

// Clone creates a new name with its own handle to the same interned value.
// The clone has an independent lifetime.
func (s *StringName) Clone() (*StringName, error) {
	var (
		r Runtime
		h Handle
	)
	err := s.with(func(st *nameState) {
		r = st.rt
		h = st.rt.Clone(st.handle)
	})
	if err != nil {
		return nil, err
	}
	return newStringName(r, h)
}

// Text returns the interned text.
func (s *StringName) Text() (string, error) {
	var text string
	err := s.with(func(st *nameState) {
		text = st.rt.String(st.handle)
	})
	return text, err
}

// MustText is like Text but panics on error.
func (s *StringName) MustText() string {
	text, err := s.Text()
	if err != nil {
		panic(err)
	}
	return text
}

// Handle returns the native handle. The handle stays valid only while s is
// live; it must not be released by the caller.
func (s *StringName) Handle() (Handle, error) {
	h := NullHandle
	err := s.with(func(st *nameState) {
		h = st.handle
	})
	return h, err
}

// Hash returns the runtime's hash of the interned value. Equal names hash
// equally.
func (s *StringName) Hash() (uint32, error) {
	var hash uint32
	err := s.with(func(st *nameState) {
		hash = st.rt.Hash(st.handle)
	})
	return hash, err
}

// Equal reports whether s and o refer to equal interned values. The
// comparison is delegated to the runtime; names issued by different
// runtimes are never equal.
func (s *StringName) Equal(o *StringName) (bool, error) {
	if s == nil || o == nil {
		return false, ErrNilStringName
	}
	a, b := s.state, o.state
	if a == nil || b == nil {
		return false, ErrDisposed
	}

	first, second := a, b
	if second.id < first.id {
		first, second = second, first
	}
	first.mu.RLock()
	defer first.mu.RUnlock()
	if second != first {
		second.mu.RLock()
		defer second.mu.RUnlock()
	}

	if a.disposed || b.disposed {
		return false, ErrDisposed
	}
	eq := a.rt == b.rt && a.rt.Equal(a.handle, b.handle)
	runtime.KeepAlive(s)
	runtime.KeepAlive(o)
	return eq, nil
}

// IsDisposed reports whether s has been disposed. A nil StringName reports
// true.
func (s *StringName) IsDisposed() bool {
	return s.with(func(*nameState) {}) != nil
}

// Dispose releases the native handle. Calling Dispose on a disposed or nil
// StringName does nothing.
func (s *StringName) Dispose() {
	if s == nil || s.state == nil {
		return
	}
	s.cleanup.Stop()
	if h, ok := s.state.release(); ok {
		Logger().Debug("glue: StringName disposed", "handle", h)
	}
}

// Close implements io.Closer. It disposes s and returns ErrNilStringName
// only for a nil receiver.
func (s *StringName) Close() error {
	if s == nil {
		return ErrNilStringName
	}
	s.Dispose()
	return nil
}

// String implements fmt.Stringer. Because fmt cannot report errors, a nil
// or disposed name renders as a marker; use Text to detect those states.
func (s *StringName) String() string {
	text, err := s.Text()
	switch {
	case errors.Is(err, ErrNilStringName):
		return "<nil StringName>"
	case err != nil:
		return "<disposed StringName>"
	}
	return text
}
