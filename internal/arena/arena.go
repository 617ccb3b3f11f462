// Package arena implements the append-only generational store that backs
// graph and node allocation.
//
// # Storage Model
//
// An Arena hands out Index values (slot + generation) instead of pointers.
// Entries live in fixed-size segments, so growing the arena never moves an
// entry: a *T obtained from Get stays valid for the arena's lifetime even
// across later inserts.
//
// # Generations
//
// Every entry is stamped with the arena generation current at insert time.
// Generations start at 1, so the zero Index can never resolve. An Index whose
// generation does not match its slot's stamp is stale and is rejected on
// access instead of silently aliasing another entry. The arena is append-only
// and never reuses a slot; the generation machinery exists so that a
// deletion-capable extension can invalidate indices without an API change.
//
// # Concurrency Model
//
// Arena does NOT support concurrent mutation. The owner must serialize
// Insert calls; Get and Len on an already-built region are safe to call
// concurrently once a happens-before edge separates them from the last
// Insert.
package arena

import (
	"fmt"
)

const (
	// segmentBits determines the size of each segment.
	// 12 bits = 4096 entries per segment.
	segmentBits = 12
	segmentSize = 1 << segmentBits
	segmentMask = segmentSize - 1
)

// Index is a safe reference to an arena entry.
// It includes the generation stamp to detect stale references.
type Index struct {
	Slot uint32
	Gen  uint32
}

// Valid reports whether idx could have been issued by an arena.
// The zero Index is invalid: generations start at 1.
func (idx Index) Valid() bool {
	return idx.Gen != 0
}

func (idx Index) String() string {
	return fmt.Sprintf("%d@%d", idx.Slot, idx.Gen)
}

// ErrStaleIndex indicates an Index that does not resolve to a live entry:
// never issued, forged, or invalidated by a generation bump.
type ErrStaleIndex struct {
	Slot uint32
	Gen  uint32
}

func (e *ErrStaleIndex) Error() string {
	return fmt.Sprintf("arena: stale index %d@%d", e.Slot, e.Gen)
}

// Stats tracks arena storage metrics.
type Stats struct {
	Entries  uint64 // Current: entries stored
	Segments uint64 // Current: segments held
	Capacity uint64 // Current: total entry capacity across segments
}

type entry[T any] struct {
	gen   uint32
	value T
}

// segment is a fixed-size block of entries. Segments are allocated once and
// never moved or freed, which is what keeps entry pointers stable.
type segment[T any] struct {
	entries [segmentSize]entry[T]
}

// Arena is an append-only generational store of T entries.
type Arena[T any] struct {
	segments []*segment[T]
	len      uint32
	gen      uint32
}

type options struct {
	capacity int
}

// Option is a configuration option for an Arena.
type Option func(*options)

// WithCapacity pre-allocates segments for at least n entries.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// New creates an empty Arena.
func New[T any](optFns ...Option) *Arena[T] {
	o := options{}
	for _, fn := range optFns {
		fn(&o)
	}

	a := &Arena[T]{
		// Initialize generation to 1 so 0 is invalid
		gen: 1,
	}

	if o.capacity > 0 {
		numSegments := (o.capacity + segmentSize - 1) / segmentSize
		a.segments = make([]*segment[T], 0, numSegments)
		for range numSegments {
			a.segments = append(a.segments, &segment[T]{})
		}
	}

	return a
}

// Insert appends v and returns its Index. O(1) amortized; existing entries
// never move.
func (a *Arena[T]) Insert(v T) Index {
	slot := a.len
	segIdx := int(slot >> segmentBits)
	if segIdx == len(a.segments) {
		a.segments = append(a.segments, &segment[T]{})
	}

	e := &a.segments[segIdx].entries[slot&segmentMask]
	e.gen = a.gen
	e.value = v
	a.len++

	return Index{Slot: slot, Gen: a.gen}
}

// Get returns a pointer to the entry at idx. The pointer stays valid for the
// arena's lifetime. It returns ErrStaleIndex if idx was never issued or its
// generation does not match.
func (a *Arena[T]) Get(idx Index) (*T, error) {
	e := a.entry(idx.Slot)
	if !idx.Valid() || e == nil || e.gen != idx.Gen {
		return nil, &ErrStaleIndex{Slot: idx.Slot, Gen: idx.Gen}
	}
	return &e.value, nil
}

// Contains reports whether idx resolves to a live entry.
func (a *Arena[T]) Contains(idx Index) bool {
	e := a.entry(idx.Slot)
	return idx.Valid() && e != nil && e.gen == idx.Gen
}

// At returns a pointer to the entry in slot order, for enumeration.
// Slots are issued densely from 0, so every slot below Len is live.
func (a *Arena[T]) At(slot uint32) (*T, Index) {
	e := a.entry(slot)
	if e == nil {
		return nil, Index{}
	}
	return &e.value, Index{Slot: slot, Gen: e.gen}
}

func (a *Arena[T]) entry(slot uint32) *entry[T] {
	if slot >= a.len {
		return nil
	}
	return &a.segments[slot>>segmentBits].entries[slot&segmentMask]
}

// Len returns the number of entries stored.
func (a *Arena[T]) Len() int {
	return int(a.len)
}

// Stats returns the current arena statistics.
func (a *Arena[T]) Stats() Stats {
	return Stats{
		Entries:  uint64(a.len),
		Segments: uint64(len(a.segments)),
		Capacity: uint64(len(a.segments)) * segmentSize,
	}
}

// Usage returns the capacity utilization percentage.
func (a *Arena[T]) Usage() float64 {
	stats := a.Stats()
	if stats.Capacity == 0 {
		return 0
	}
	return float64(stats.Entries) / float64(stats.Capacity) * 100
}

func (a *Arena[T]) String() string {
	stats := a.Stats()
	return fmt.Sprintf(
		"Arena{entries: %d, segments: %d, capacity: %d, usage: %.1f%%}",
		stats.Entries,
		stats.Segments,
		stats.Capacity,
		a.Usage(),
	)
}
