// Package intern implements a sharded, reference-counted string interning
// table.
//
// Equal texts acquired while a previous acquisition is still held map to
// the same *Entry, so entry identity can stand in for text equality. An
// entry is removed when its last reference is released.
package intern

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

// Default configuration constants.
const (
	// ShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	ShardCount = 16

	// DefaultShardCapacity is the initial map size hint per shard.
	DefaultShardCapacity = 64

	// shardMask is used for fast shard selection (ShardCount - 1).
	shardMask = ShardCount - 1
)

// StringHasher computes the FNV-1a hash of s.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Entry is one interned text. Entries are owned by the Table; callers hold
// references obtained from Acquire or Retain and give them back with
// Release.
type Entry struct {
	text  string
	hash  uint64
	refs  int // guarded by the owning shard's mutex
	shard *shard
}

// Text returns the interned text.
func (e *Entry) Text() string {
	return e.text
}

// Hash returns the 32-bit fold of the text's FNV-1a hash.
func (e *Entry) Hash() uint32 {
	return uint32(e.hash) ^ uint32(e.hash>>32)
}

// shard is a single partition of the table with its own mutex.
type shard struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// Stats holds table statistics.
type Stats struct {
	// Len is the number of live entries.
	Len int

	// Hits counts acquisitions that found an existing entry.
	Hits uint64

	// Misses counts acquisitions that created an entry.
	Misses uint64

	// Removals counts entries dropped after their last release.
	Removals uint64
}

// Table is a thread-safe interning table split into ShardCount shards.
type Table struct {
	shards [ShardCount]*shard

	hits     atomic.Uint64
	misses   atomic.Uint64
	removals atomic.Uint64
}

// New creates a table. capacity is the initial map size hint per shard;
// if capacity <= 0, DefaultShardCapacity is used.
func New(capacity int) *Table {
	if capacity <= 0 {
		capacity = DefaultShardCapacity
	}
	t := &Table{}
	for i := range t.shards {
		t.shards[i] = &shard{entries: make(map[string]*Entry, capacity)}
	}
	return t
}

// getShard returns the shard for a text hash.
func (t *Table) getShard(hash uint64) *shard {
	return t.shards[hash&shardMask]
}

// Acquire returns the entry for text, creating it if needed, and adds one
// reference to it.
func (t *Table) Acquire(text string) *Entry {
	hash := StringHasher(text)
	sh := t.getShard(hash)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	if e, ok := sh.entries[text]; ok {
		e.refs++
		t.hits.Add(1)
		return e
	}

	t.misses.Add(1)
	e := &Entry{text: text, hash: hash, refs: 1, shard: sh}
	sh.entries[text] = e
	return e
}

// Retain adds one reference to an entry the caller already holds.
func (t *Table) Retain(e *Entry) {
	e.shard.mu.Lock()
	e.refs++
	e.shard.mu.Unlock()
}

// Release drops one reference to e and reports whether the entry was
// removed from the table. Releasing an entry with no references left does
// nothing.
func (t *Table) Release(e *Entry) bool {
	sh := e.shard
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if e.refs <= 0 {
		return false
	}
	e.refs--
	if e.refs > 0 {
		return false
	}
	if sh.entries[e.text] == e {
		delete(sh.entries, e.text)
	}
	t.removals.Add(1)
	return true
}

// Lookup returns the live entry for text without adding a reference.
func (t *Table) Lookup(text string) (*Entry, bool) {
	sh := t.getShard(StringHasher(text))
	sh.mu.RLock()
	e, ok := sh.entries[text]
	sh.mu.RUnlock()
	return e, ok
}

// Refs returns the current reference count of e.
func (t *Table) Refs(e *Entry) int {
	e.shard.mu.RLock()
	defer e.shard.mu.RUnlock()
	return e.refs
}

// Len returns the total number of live entries across all shards.
func (t *Table) Len() int {
	total := 0
	for _, sh := range t.shards {
		sh.mu.RLock()
		total += len(sh.entries)
		sh.mu.RUnlock()
	}
	return total
}

// ShardLen returns the number of entries in each shard.
// Useful for debugging load distribution.
func (t *Table) ShardLen() [ShardCount]int {
	var lens [ShardCount]int
	for i, sh := range t.shards {
		sh.mu.RLock()
		lens[i] = len(sh.entries)
		sh.mu.RUnlock()
	}
	return lens
}

// Stats returns current table statistics.
func (t *Table) Stats() Stats {
	return Stats{
		Len:      t.Len(),
		Hits:     t.hits.Load(),
		Misses:   t.misses.Load(),
		Removals: t.removals.Load(),
	}
}

// ResetStats resets the hit, miss and removal counters to zero.
func (t *Table) ResetStats() {
	t.hits.Store(0)
	t.misses.Store(0)
	t.removals.Store(0)
}
