package intern

import (
	"strconv"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	tbl := New(0)
	if tbl == nil {
		t.Fatal("New returned nil")
	}
	if tbl.Len() != 0 {
		t.Errorf("expected empty table, got %d entries", tbl.Len())
	}
}

func TestAcquireSameText(t *testing.T) {
	tbl := New(8)

	a := tbl.Acquire("foo")
	b := tbl.Acquire("foo")
	if a != b {
		t.Error("expected equal texts to share one entry")
	}
	if got := tbl.Refs(a); got != 2 {
		t.Errorf("expected 2 refs, got %d", got)
	}
	if a.Text() != "foo" {
		t.Errorf("expected text foo, got %q", a.Text())
	}
	if tbl.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", tbl.Len())
	}

	c := tbl.Acquire("bar")
	if c == a {
		t.Error("expected different texts to get different entries")
	}
}

func TestReleaseRemovesLastReference(t *testing.T) {
	tbl := New(8)

	a := tbl.Acquire("foo")
	tbl.Acquire("foo")

	if tbl.Release(a) {
		t.Error("first release should keep the entry")
	}
	if _, ok := tbl.Lookup("foo"); !ok {
		t.Error("expected foo to be live after first release")
	}
	if !tbl.Release(a) {
		t.Error("last release should remove the entry")
	}
	if _, ok := tbl.Lookup("foo"); ok {
		t.Error("expected foo to be gone after last release")
	}
	if tbl.Release(a) {
		t.Error("release without references should do nothing")
	}
	if got := tbl.Stats().Removals; got != 1 {
		t.Errorf("expected 1 removal, got %d", got)
	}
}

func TestReacquireAfterRemoval(t *testing.T) {
	tbl := New(8)

	a := tbl.Acquire("foo")
	tbl.Release(a)
	b := tbl.Acquire("foo")
	if a == b {
		t.Error("expected a fresh entry after removal")
	}
	// The stale entry has no references; releasing it must not touch b.
	tbl.Release(a)
	if got := tbl.Refs(b); got != 1 {
		t.Errorf("expected 1 ref on new entry, got %d", got)
	}
}

func TestRetain(t *testing.T) {
	tbl := New(8)

	a := tbl.Acquire("foo")
	tbl.Retain(a)
	tbl.Release(a)
	if _, ok := tbl.Lookup("foo"); !ok {
		t.Error("retained entry should survive one release")
	}
}

func TestEntryHash(t *testing.T) {
	tbl := New(8)
	a := tbl.Acquire("foo")
	h := StringHasher("foo")
	want := uint32(h) ^ uint32(h>>32)
	if a.Hash() != want {
		t.Errorf("Hash() = %d, want %d", a.Hash(), want)
	}
}

func TestStats(t *testing.T) {
	tbl := New(8)
	tbl.Acquire("a")
	tbl.Acquire("a")
	tbl.Acquire("b")

	s := tbl.Stats()
	if s.Len != 2 {
		t.Errorf("expected Len 2, got %d", s.Len)
	}
	if s.Hits != 1 {
		t.Errorf("expected 1 hit, got %d", s.Hits)
	}
	if s.Misses != 2 {
		t.Errorf("expected 2 misses, got %d", s.Misses)
	}

	tbl.ResetStats()
	s = tbl.Stats()
	if s.Hits != 0 || s.Misses != 0 || s.Removals != 0 {
		t.Errorf("expected zeroed counters, got %+v", s)
	}
}

func TestShardLen(t *testing.T) {
	tbl := New(8)
	for i := range 100 {
		tbl.Acquire("key" + strconv.Itoa(i))
	}

	total := 0
	for _, n := range tbl.ShardLen() {
		total += n
	}
	if total != 100 {
		t.Errorf("expected 100 entries across shards, got %d", total)
	}
}

func TestConcurrentAcquireRelease(t *testing.T) {
	tbl := New(8)

	var wg sync.WaitGroup
	const goroutines = 50
	const iterations = 200

	for g := range goroutines {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := range iterations {
				text := "key" + strconv.Itoa((id+i)%10)
				e := tbl.Acquire(text)
				if e.Text() != text {
					t.Errorf("Acquire(%q) returned entry %q", text, e.Text())
				}
				tbl.Release(e)
			}
		}(g)
	}
	wg.Wait()

	if tbl.Len() != 0 {
		t.Errorf("expected empty table after balanced releases, got %d", tbl.Len())
	}
}

func BenchmarkAcquireRelease(b *testing.B) {
	tbl := New(0)
	b.ReportAllocs()
	for b.Loop() {
		e := tbl.Acquire("benchmark")
		tbl.Release(e)
	}
}
