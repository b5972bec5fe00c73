package chrono

import (
	"sync"
)

/// Warm-start state for one persistent gear/pin contact. Six reaction
/// components, the same structure the external solver keeps per manifold
/// point; it reads and rewrites them across steps as scratch space.
type GearPinCacheContact struct {
	ReactionsCache [6]float32
}

/// Persistent contact cache, keyed by shoe index: one cached reaction state
/// per shoe against the gear family. Entries are pointer-stable, so a handle
/// handed to the solver on step N still addresses the same storage on step
/// N+1. Entries are never evicted here; a shoe that permanently leaves
/// contact just stops being touched (the callback can opt into eviction).
type GearPinContactCache struct {
	M_table map[int]*GearPinCacheContact
	M_mutex sync.Mutex
}

/// capacityHint sizes the initial table, mirroring the persistent hashtable
/// dimension of the original container. The table still grows as needed.
func NewGearPinContactCache(capacityHint int) *GearPinContactCache {
	ChAssert(capacityHint >= 0, "cache capacity hint must not be negative")
	return &GearPinContactCache{
		M_table: make(map[int]*GearPinCacheContact, capacityHint),
	}
}

/// Returns the cached reaction state for shoeID, inserting a zero-initialized
/// entry on first use. Never fails. Safe for concurrent use by the parallel
/// per-shoe pass.
func (cache *GearPinContactCache) GetOrCreate(shoeID int) *GearPinCacheContact {
	cache.M_mutex.Lock()
	defer cache.M_mutex.Unlock()

	if cached, ok := cache.M_table[shoeID]; ok {
		return cached
	}

	cached := &GearPinCacheContact{}
	cache.M_table[shoeID] = cached
	return cached
}

/// Drops the cached state for shoeID, if any. The next contact for that shoe
/// warm-starts from zero.
func (cache *GearPinContactCache) Remove(shoeID int) {
	cache.M_mutex.Lock()
	defer cache.M_mutex.Unlock()

	delete(cache.M_table, shoeID)
}

/// Number of live entries, for diagnostics.
func (cache *GearPinContactCache) Size() int {
	cache.M_mutex.Lock()
	defer cache.M_mutex.Unlock()

	return len(cache.M_table)
}
