package arena

import (
	"errors"
	"fmt"
	"testing"
)

type payload struct {
	id   int
	name string
}

func TestArena_New(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		a := New[payload]()

		if a.Len() != 0 {
			t.Errorf("expected len=0, got %d", a.Len())
		}
		if a.gen != 1 {
			t.Errorf("expected generation=1, got %d", a.gen)
		}
		if len(a.segments) != 0 {
			t.Errorf("expected no segments, got %d", len(a.segments))
		}
	})

	t.Run("with capacity", func(t *testing.T) {
		a := New[payload](WithCapacity(segmentSize + 1))

		if len(a.segments) != 2 {
			t.Errorf("expected 2 segments, got %d", len(a.segments))
		}
		if a.Len() != 0 {
			t.Errorf("expected len=0, got %d", a.Len())
		}

		stats := a.Stats()
		if stats.Capacity != 2*segmentSize {
			t.Errorf("expected capacity=%d, got %d", 2*segmentSize, stats.Capacity)
		}
	})
}

func TestArena_Insert(t *testing.T) {
	t.Run("sequential slots", func(t *testing.T) {
		a := New[payload]()

		for i := 0; i < 10; i++ {
			idx := a.Insert(payload{id: i})
			if idx.Slot != uint32(i) {
				t.Errorf("expected slot=%d, got %d", i, idx.Slot)
			}
			if idx.Gen != 1 {
				t.Errorf("expected gen=1, got %d", idx.Gen)
			}
			if !idx.Valid() {
				t.Errorf("index %v should be valid", idx)
			}
		}

		if a.Len() != 10 {
			t.Errorf("expected len=10, got %d", a.Len())
		}
	})

	t.Run("segment growth", func(t *testing.T) {
		a := New[payload]()

		for i := 0; i < segmentSize+1; i++ {
			a.Insert(payload{id: i})
		}

		if len(a.segments) != 2 {
			t.Errorf("expected 2 segments, got %d", len(a.segments))
		}
		if a.Len() != segmentSize+1 {
			t.Errorf("expected len=%d, got %d", segmentSize+1, a.Len())
		}
	})

	t.Run("pointers stay valid across growth", func(t *testing.T) {
		a := New[payload]()

		idx := a.Insert(payload{id: 42, name: "anchor"})
		p, err := a.Get(idx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Force several segment allocations after taking the pointer.
		for i := 0; i < 3*segmentSize; i++ {
			a.Insert(payload{id: i})
		}

		if p.id != 42 || p.name != "anchor" {
			t.Errorf("entry moved or changed: %+v", *p)
		}

		p2, err := a.Get(idx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p != p2 {
			t.Error("expected identical pointer for same index")
		}
	})
}

func TestArena_Get(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		a := New[payload]()

		idx := a.Insert(payload{id: 7, name: "seven"})
		p, err := a.Get(idx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.id != 7 || p.name != "seven" {
			t.Errorf("unexpected payload: %+v", *p)
		}
	})

	t.Run("zero index", func(t *testing.T) {
		a := New[payload]()
		a.Insert(payload{id: 1})

		_, err := a.Get(Index{})
		var stale *ErrStaleIndex
		if !errors.As(err, &stale) {
			t.Fatalf("expected ErrStaleIndex, got %v", err)
		}
		if stale.Slot != 0 || stale.Gen != 0 {
			t.Errorf("unexpected error detail: %+v", stale)
		}
	})

	t.Run("unissued slot", func(t *testing.T) {
		a := New[payload]()
		a.Insert(payload{id: 1})

		_, err := a.Get(Index{Slot: 99, Gen: 1})
		var stale *ErrStaleIndex
		if !errors.As(err, &stale) {
			t.Fatalf("expected ErrStaleIndex, got %v", err)
		}
		if stale.Slot != 99 {
			t.Errorf("expected slot=99 in error, got %d", stale.Slot)
		}
	})

	t.Run("forged generation", func(t *testing.T) {
		a := New[payload]()
		idx := a.Insert(payload{id: 1})

		forged := Index{Slot: idx.Slot, Gen: idx.Gen + 1}
		_, err := a.Get(forged)
		var stale *ErrStaleIndex
		if !errors.As(err, &stale) {
			t.Fatalf("expected ErrStaleIndex, got %v", err)
		}
	})
}

func TestArena_Contains(t *testing.T) {
	a := New[payload]()
	idx := a.Insert(payload{id: 1})

	if !a.Contains(idx) {
		t.Error("expected Contains=true for issued index")
	}
	if a.Contains(Index{}) {
		t.Error("expected Contains=false for zero index")
	}
	if a.Contains(Index{Slot: 5, Gen: 1}) {
		t.Error("expected Contains=false for unissued slot")
	}
	if a.Contains(Index{Slot: idx.Slot, Gen: idx.Gen + 1}) {
		t.Error("expected Contains=false for forged generation")
	}
}

func TestArena_At(t *testing.T) {
	a := New[payload]()

	indices := make([]Index, 0, 5)
	for i := 0; i < 5; i++ {
		indices = append(indices, a.Insert(payload{id: i}))
	}

	for slot := uint32(0); slot < 5; slot++ {
		p, idx := a.At(slot)
		if p == nil {
			t.Fatalf("expected entry at slot %d", slot)
		}
		if p.id != int(slot) {
			t.Errorf("expected id=%d at slot %d, got %d", slot, slot, p.id)
		}
		if idx != indices[slot] {
			t.Errorf("expected index %v, got %v", indices[slot], idx)
		}
	}

	p, idx := a.At(5)
	if p != nil || idx.Valid() {
		t.Errorf("expected no entry past len, got %v at %v", p, idx)
	}
}

func TestArena_Stats(t *testing.T) {
	a := New[payload]()
	for i := 0; i < 3; i++ {
		a.Insert(payload{id: i})
	}

	stats := a.Stats()
	if stats.Entries != 3 {
		t.Errorf("expected entries=3, got %d", stats.Entries)
	}
	if stats.Segments != 1 {
		t.Errorf("expected segments=1, got %d", stats.Segments)
	}
	if stats.Capacity != segmentSize {
		t.Errorf("expected capacity=%d, got %d", segmentSize, stats.Capacity)
	}
	if a.Usage() <= 0 {
		t.Errorf("expected positive usage, got %f", a.Usage())
	}
}

func TestIndex_String(t *testing.T) {
	idx := Index{Slot: 3, Gen: 1}
	if got := idx.String(); got != "3@1" {
		t.Errorf("expected 3@1, got %s", got)
	}
}

func BenchmarkArena_Insert(b *testing.B) {
	a := New[payload]()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		a.Insert(payload{id: i})
	}
}

func BenchmarkArena_Get(b *testing.B) {
	a := New[payload]()
	indices := make([]Index, 1024)
	for i := range indices {
		indices[i] = a.Insert(payload{id: i})
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = a.Get(indices[i%len(indices)])
	}
}

func ExampleArena() {
	a := New[string]()
	idx := a.Insert("hello")

	s, err := a.Get(idx)
	if err != nil {
		panic(err)
	}
	fmt.Println(*s, a.Len())
	// Output: hello 1
}
