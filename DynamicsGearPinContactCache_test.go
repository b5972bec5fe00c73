package chrono_test

import (
	"testing"

	"github.com/anassar/chrono"
)

func TestContactCacheHandleIdentity(t *testing.T) {
	cache := chrono.NewGearPinContactCache(8)

	first := cache.GetOrCreate(3)
	if first == nil {
		t.Fatalf("GetOrCreate returned nil")
	}
	for _, reaction := range first.ReactionsCache {
		if reaction != 0.0 {
			t.Fatalf("new cache entry not zero-initialized: %v", first.ReactionsCache)
		}
	}

	// the solver scribbles into the cache between steps
	first.ReactionsCache[0] = 42.5
	first.ReactionsCache[5] = -1.25

	second := cache.GetOrCreate(3)
	if second != first {
		t.Errorf("GetOrCreate returned a different handle for the same shoe id")
	}
	if second.ReactionsCache[0] != 42.5 || second.ReactionsCache[5] != -1.25 {
		t.Errorf("warm-start values lost across lookups: %v", second.ReactionsCache)
	}
}

func TestContactCacheDistinctShoes(t *testing.T) {
	cache := chrono.NewGearPinContactCache(0)

	a := cache.GetOrCreate(0)
	b := cache.GetOrCreate(1)
	if a == b {
		t.Errorf("distinct shoe ids share a cache entry")
	}

	a.ReactionsCache[2] = 7.0
	if b.ReactionsCache[2] != 0.0 {
		t.Errorf("write to one shoe's cache leaked into another's")
	}

	if cache.Size() != 2 {
		t.Errorf("cache size: got %d want 2", cache.Size())
	}
}

func TestContactCacheRemove(t *testing.T) {
	cache := chrono.NewGearPinContactCache(4)

	stale := cache.GetOrCreate(7)
	stale.ReactionsCache[1] = 3.0
	cache.Remove(7)

	if cache.Size() != 0 {
		t.Errorf("cache size after remove: got %d want 0", cache.Size())
	}

	fresh := cache.GetOrCreate(7)
	if fresh == stale {
		t.Errorf("evicted entry resurrected with its old identity")
	}
	if fresh.ReactionsCache[1] != 0.0 {
		t.Errorf("re-created entry not zero-initialized: %v", fresh.ReactionsCache)
	}
}
