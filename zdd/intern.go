// intern.go — per-level node interning: packed mate key -> node id
// deduplication, sequential and sharded (concurrent) variants.
//
// Grounded on original_source's hash-map-of-mate-key-to-node-id interning
// step, reworked per spec.md §5 ("two distinct partial assignments that
// pack to the same key must collapse to one node") using a striped-lock
// shard table in the style of flow/dinic.go's per-goroutine level
// bookkeeping, so Construct can expand a level's live nodes across
// WithWorkers goroutines without a single global lock serializing them.
package zdd

import (
	"bytes"
	"sort"
	"sync"
)

// internEntry is one distinct packed key discovered at a level, together
// with the final NodeID it is assigned during finalize and the canonical
// mate it was first built from (kept so EnterLevel can run against it at
// the next level).
type internEntry struct {
	key  []byte
	id   NodeID
	mate Mate
}

// interner deduplicates packed keys within a single level. It is not safe
// for concurrent use; sequential Construct uses one directly, while
// concurrent Construct uses shardedInterner below.
type interner struct {
	byKey map[string]*internEntry
	order []*internEntry // first-seen order, re-sorted by key before finalize
}

func newInterner() *interner {
	return &interner{byKey: make(map[string]*internEntry)}
}

// getOrCreate returns the existing entry for key, or creates one holding
// mate. The driver calls this once per (level, branch) outcome and keeps
// the returned pointer to resolve the parent -> child edge once finalize
// has assigned real NodeIDs.
func (it *interner) getOrCreate(key []byte, mate Mate) *internEntry {
	if e, ok := it.byKey[string(key)]; ok {
		return e
	}
	e := &internEntry{key: append([]byte(nil), key...), mate: mate}
	it.byKey[string(key)] = e
	it.order = append(it.order, e)

	return e
}

// finalize assigns final, deterministic NodeIDs to every entry in
// ascending packed-key order (spec.md §5: "deterministic regardless of
// discovery order") and returns them in that same order.
func (it *interner) finalize(nextID *NodeID) []*internEntry {
	sort.Slice(it.order, func(i, j int) bool {
		return bytes.Compare(it.order[i].key, it.order[j].key) < 0
	})
	for _, e := range it.order {
		e.id = *nextID
		*nextID++
	}

	return it.order
}

// shardCount controls how many stripes shardedInterner splits its key
// space across. A small fixed fan-out keeps contention low without
// over-allocating for tiny levels; it is independent of WithWorkers so
// the driver can run more goroutines than shards without lock contention
// dominating (each shard still has its own mutex).
const shardCount = 16

// shardedInterner is the concurrent counterpart of interner: getOrCreate
// may be called from multiple goroutines at once (one per expanding live
// node), each shard guarded by its own mutex so unrelated keys never
// contend. Final NodeID assignment still happens in a single-threaded
// finalize pass, which is what makes the result byte-for-byte identical
// to the sequential path regardless of expansion order.
type shardedInterner struct {
	shards [shardCount]struct {
		mu    sync.Mutex
		byKey map[string]*internEntry
	}
}

func newShardedInterner() *shardedInterner {
	si := &shardedInterner{}
	for i := range si.shards {
		si.shards[i].byKey = make(map[string]*internEntry)
	}

	return si
}

func shardIndex(key []byte) int {
	var h uint32 = 2166136261
	for _, b := range key {
		h ^= uint32(b)
		h *= 16777619
	}

	return int(h % shardCount)
}

func (si *shardedInterner) getOrCreate(key []byte, mate Mate) *internEntry {
	s := &si.shards[shardIndex(key)]
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.byKey[string(key)]; ok {
		return e
	}
	e := &internEntry{key: append([]byte(nil), key...), mate: mate}
	s.byKey[string(key)] = e

	return e
}

// finalize collects every entry across all shards, sorts by packed key,
// and assigns final NodeIDs — identical in effect to interner.finalize,
// making concurrent and sequential Construct runs produce identical
// PseudoZDD node numbering (spec.md's determinism requirement).
func (si *shardedInterner) finalize(nextID *NodeID) []*internEntry {
	var all []*internEntry
	for i := range si.shards {
		for _, e := range si.shards[i].byKey {
			all = append(all, e)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return bytes.Compare(all[i].key, all[j].key) < 0
	})
	for _, e := range all {
		e.id = *nextID
		*nextID++
	}

	return all
}
