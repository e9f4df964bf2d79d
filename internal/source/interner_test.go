package source

import (
	"fmt"
	"sync"
	"testing"
)

func TestInternerBasic(t *testing.T) {
	interner := NewInterner()

	// NoStringID is reserved for the empty string.
	if s, ok := interner.Lookup(NoStringID); !ok || s != "" {
		t.Errorf("NoStringID must resolve to the empty string, got %q, ok=%v", s, ok)
	}

	id1 := interner.Intern("hello")
	if id1 == NoStringID {
		t.Error("Intern must not return NoStringID for a non-empty string")
	}

	id2 := interner.Intern("hello")
	if id1 != id2 {
		t.Errorf("same string must intern to the same ID: %d != %d", id1, id2)
	}

	if s, ok := interner.Lookup(id1); !ok || s != "hello" {
		t.Errorf("Lookup returned %q, ok=%v", s, ok)
	}

	id3 := interner.Intern("world")
	if id3 == id1 {
		t.Error("different strings must get different IDs")
	}

	// "" + "hello" + "world"
	if interner.Len() != 3 {
		t.Errorf("Len: got %d, want 3", interner.Len())
	}
}

func TestInternerBytes(t *testing.T) {
	interner := NewInterner()

	id1 := interner.InternBytes([]byte("test"))
	id2 := interner.Intern("test")
	if id1 != id2 {
		t.Errorf("InternBytes and Intern must agree: %d != %d", id1, id2)
	}
}

func TestInternerHas(t *testing.T) {
	interner := NewInterner()

	if !interner.Has(NoStringID) {
		t.Error("Has must be true for NoStringID")
	}
	id := interner.Intern("test")
	if !interner.Has(id) {
		t.Error("Has must be true for a valid ID")
	}
	if interner.Has(StringID(9999)) {
		t.Error("Has must be false for an unknown ID")
	}
}

func TestInternerConcurrent(t *testing.T) {
	interner := NewInterner()

	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	ids := make([][]StringID, workers)
	for w := 0; w < workers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[w] = make([]StringID, perWorker)
			for i := 0; i < perWorker; i++ {
				// Half shared across workers, half unique.
				var s string
				if i%2 == 0 {
					s = fmt.Sprintf("shared-%d", i)
				} else {
					s = fmt.Sprintf("worker-%d-%d", w, i)
				}
				ids[w][i] = interner.Intern(s)
			}
		}()
	}
	wg.Wait()

	// Shared strings must have converged to one ID each.
	for i := 0; i < perWorker; i += 2 {
		want := ids[0][i]
		for w := 1; w < workers; w++ {
			if ids[w][i] != want {
				t.Fatalf("shared string %d interned to different IDs: %d vs %d", i, want, ids[w][i])
			}
		}
	}

	// And every ID must still resolve.
	for w := 0; w < workers; w++ {
		for i := 0; i < perWorker; i++ {
			if !interner.Has(ids[w][i]) {
				t.Fatalf("worker %d id %d vanished", w, i)
			}
		}
	}
}

func TestInternerSnapshot(t *testing.T) {
	interner := NewInterner()
	interner.Intern("a")
	interner.Intern("b")

	snap := interner.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("snapshot length: got %d, want 3", len(snap))
	}

	// Mutating the snapshot must not affect the interner.
	snap[1] = "mutated"
	if s := interner.MustLookup(interner.Intern("a")); s != "a" {
		t.Errorf("interner was affected by snapshot mutation: %q", s)
	}
}
