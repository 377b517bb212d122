package native

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/glue"
)

func TestNewFromStringInterns(t *testing.T) {
	r := New()

	a := r.NewFromString("foo")
	b := r.NewFromString("foo")
	c := r.NewFromString("bar")

	if a == b {
		t.Error("expected distinct handles for separate allocations")
	}
	if !r.Equal(a, b) {
		t.Error("expected handles for equal text to compare equal")
	}
	if r.Equal(a, c) {
		t.Error("expected handles for different text to compare unequal")
	}
	if r.Hash(a) != r.Hash(b) {
		t.Error("expected equal handles to hash equally")
	}
	if got := r.String(a); got != "foo" {
		t.Errorf("String() = %q, want %q", got, "foo")
	}

	s := r.Stats()
	if s.Handles != 3 || s.Entries != 2 || s.Allocations != 3 {
		t.Errorf("unexpected stats %+v", s)
	}
}

func TestNewIsEmpty(t *testing.T) {
	r := New()

	a := r.New()
	b := r.NewFromString("")
	if !r.Equal(a, b) {
		t.Error("expected empty names to compare equal")
	}
	if got := r.String(a); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestClone(t *testing.T) {
	r := New()

	a := r.NewFromString("foo")
	b := r.Clone(a)
	if b == glue.NullHandle || b == a {
		t.Fatalf("Clone returned %v", b)
	}
	if !r.Equal(a, b) {
		t.Error("expected clone to compare equal")
	}

	r.Release(a)
	if got := r.String(b); got != "foo" {
		t.Errorf("clone should outlive original, got %q", got)
	}
	r.Release(b)
	if s := r.Stats(); s.Entries != 0 || s.Handles != 0 {
		t.Errorf("expected empty runtime, got %+v", s)
	}

	if h := r.Clone(a); h != glue.NullHandle {
		t.Errorf("Clone of released handle = %v, want NullHandle", h)
	}
}

func TestReleaseUnknownHandle(t *testing.T) {
	var buf bytes.Buffer
	r := New(WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	h := r.NewFromString("foo")
	r.Release(h)
	r.Release(h)
	r.Release(glue.Handle(12345))

	s := r.Stats()
	if s.Releases != 1 {
		t.Errorf("expected 1 release, got %d", s.Releases)
	}
	if s.UnknownReleases != 2 {
		t.Errorf("expected 2 unknown releases, got %d", s.UnknownReleases)
	}
	if !strings.Contains(buf.String(), "release of unknown handle") {
		t.Errorf("expected warning in log output, got: %s", buf.String())
	}
}

func TestUnknownHandleQueries(t *testing.T) {
	r := New()
	h := r.NewFromString("foo")
	bogus := glue.Handle(999)

	if r.Equal(h, bogus) || r.Equal(bogus, h) || r.Equal(bogus, bogus) {
		t.Error("unknown handles must be unequal to everything")
	}
	if r.String(bogus) != "" {
		t.Error("String of unknown handle should be empty")
	}
	if r.Hash(bogus) != 0 {
		t.Error("Hash of unknown handle should be 0")
	}
}

func TestSetLogger(t *testing.T) {
	r := New()
	if r.log() != glue.Logger() {
		t.Error("runtime without logger should use glue.Logger")
	}

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	r.SetLogger(custom)
	if r.log() != custom {
		t.Error("SetLogger did not take effect")
	}

	r.SetLogger(nil)
	if r.log() != glue.Logger() {
		t.Error("SetLogger(nil) should restore glue.Logger")
	}
}

func TestDefaultRegistered(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() returned nil")
	}
	if glue.CurrentRuntime() != glue.Runtime(Default()) {
		t.Error("expected package init to register the default runtime")
	}
}

func TestConcurrentAllocations(t *testing.T) {
	r := New()

	var wg sync.WaitGroup
	const goroutines = 32
	const iterations = 100

	for g := range goroutines {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := range iterations {
				text := "name" + strconv.Itoa((id+i)%8)
				a := r.NewFromString(text)
				b := r.Clone(a)
				if !r.Equal(a, b) {
					t.Errorf("clone of %q not equal", text)
				}
				r.Release(a)
				r.Release(b)
			}
		}(g)
	}
	wg.Wait()

	s := r.Stats()
	if s.Handles != 0 || s.Entries != 0 {
		t.Errorf("expected empty runtime, got %+v", s)
	}
	if s.Allocations != goroutines*iterations*2 {
		t.Errorf("expected %d allocations, got %d", goroutines*iterations*2, s.Allocations)
	}
}
