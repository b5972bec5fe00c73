package chrono

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

/// Pose lookup into the body registry owned by the external engine. The
/// callback holds body ids, never body lifetime.
type ChBodyRegistryInterface interface {
	GetBodyCoordsys(bodyId int) ChCoordsys
}

/// The engine's contact-resolution subsystem. Implemented differently per
/// solver backend (complementarity or penalty); the collision logic here is
/// solver-agnostic.
type ChContactContainerInterface interface {
	AddContact(info *ChCollisionInfo)
}

/// One detected contact, handed to the contact container. ReactionCache
/// points at mutable per-contact storage the solver uses as read/write
/// scratch space to warm-start itself across steps.
type ChCollisionInfo struct {
	ModelA        int        ///< gear body id
	ModelB        int        ///< shoe body id
	VpA           mgl64.Vec3 ///< world contact point on the gear
	VpB           mgl64.Vec3 ///< world contact point on the shoe
	VN            mgl64.Vec3 ///< world contact normal, from gear to shoe
	Distance      float64    ///< negative indicates overlap
	ReactionCache *[6]float32
}

/// Concave geometry (the gear tooth seat) cannot be exactly represented by
/// the default convex collision primitives, nor accurately modeled with a
/// mesh or convex hull. This custom collision callback checks the gear
/// against the whole track shoe family each step, keeping a persistent
/// per-shoe contact cache so the solver can warm-start.
type GearPinCollisionCallback struct {
	M_gearId  int
	M_shoeIds []int
	M_geom    GearPinGeometry

	// two endpoints of the cylinder pin, w.r.t. the shoe c-sys.
	// Symmetric about the XY plane; narrow phase mirrors them for -z.
	// point 1 = inner, 2 = outer
	M_p1_bar mgl64.Vec3
	M_p2_bar mgl64.Vec3

	// two endpoints of the seat cylinder, one pair per gear tooth, w.r.t.
	// the gear c-sys. Symmetric about the XY plane, like the pin.
	M_seat1_bar []mgl64.Vec3
	M_seat2_bar []mgl64.Vec3

	M_boundRadGear float64
	M_boundRadShoe float64

	M_hashedContacts *GearPinContactCache
	M_persistence    GearPinPersistenceTracker

	M_Ncontacts          int
	M_workerCount        int
	M_cacheEvictionSteps int

	M_submitMutex sync.Mutex
}

/// All length units in meters. persistentHashtableDim is the initial
/// capacity hint for the contact cache.
func NewGearPinCollisionCallback(gearId int, shoeIds []int, geom GearPinGeometry, persistentHashtableDim int) *GearPinCollisionCallback {
	ChAssert(len(shoeIds) > 0, "gear/pin callback needs at least one shoe")

	cb := &GearPinCollisionCallback{
		M_gearId:      gearId,
		M_shoeIds:     append([]int(nil), shoeIds...),
		M_geom:        geom,
		M_workerCount: 1,
	}

	cb.M_p1_bar = mgl64.Vec3{
		geom.M_pin_x_offset,
		geom.M_pin_y_offset,
		geom.M_pin_width_min / 2.0,
	}
	cb.M_p2_bar = mgl64.Vec3{
		geom.M_pin_x_offset,
		geom.M_pin_y_offset,
		geom.M_pin_width_max / 2.0,
	}

	cb.M_seat1_bar = make([]mgl64.Vec3, geom.M_num_teeth)
	cb.M_seat2_bar = make([]mgl64.Vec3, geom.M_num_teeth)
	for t := 0; t < geom.M_num_teeth; t++ {
		// first seat directly above the COG at zero key angle, the rest
		// spaced evenly around the gear
		angle := geom.M_key_angle + 2.0*Ch_pi*float64(t)/float64(geom.M_num_teeth)
		cb.M_seat1_bar[t] = mgl64.Vec3{
			geom.M_gear_pitch_radius * math.Sin(angle),
			geom.M_gear_pitch_radius * math.Cos(angle),
			geom.M_gear_seat_width_min / 2.0,
		}
		cb.M_seat2_bar[t] = mgl64.Vec3{
			geom.M_gear_pitch_radius * math.Sin(angle),
			geom.M_gear_pitch_radius * math.Cos(angle),
			geom.M_gear_seat_width_max / 2.0,
		}
	}

	cb.M_boundRadGear = GearBoundingRadius(&geom)
	cb.M_boundRadShoe = PinBoundingRadius(&geom)

	// broad-phase may never produce a false negative: each bounding radius
	// must enclose the geometry its narrow phase counterpart engages
	pinLocalReach := math.Sqrt(geom.M_pin_radius*geom.M_pin_radius +
		0.25*geom.M_pin_width_max*geom.M_pin_width_max)
	ChAssert(cb.M_boundRadShoe >= pinLocalReach,
		"shoe bounding radius does not enclose the pin cylinder")
	ChAssert(cb.M_boundRadGear >= SeatSurfaceReach(&geom),
		"gear bounding radius does not enclose the seat surfaces")

	cb.M_hashedContacts = NewGearPinContactCache(persistentHashtableDim)
	cb.M_persistence = MakeGearPinPersistenceTracker(len(shoeIds))

	return cb
}

/// Number of goroutines for the per-shoe pass. Each shoe's test is
/// independent, so the loop parallelizes by shoe index; contact submission
/// stays serialized internally.
func (cb *GearPinCollisionCallback) SetWorkerCount(n int) {
	ChAssert(n >= 1, "worker count must be at least 1")
	cb.M_workerCount = n
}

/// When n > 0, a shoe out of contact for n consecutive steps has its cached
/// reaction state dropped, so a later re-engagement warm-starts from zero.
/// 0 (the default) keeps stale entries forever, which is bounded by the
/// fixed shoe count.
func (cb *GearPinCollisionCallback) SetCacheEvictionSteps(n int) {
	ChAssert(n >= 0, "eviction steps must not be negative")
	cb.M_cacheEvictionSteps = n
}

/// Callback function used each timestep. Resets the contact counter, then
/// runs the gear against the shoe family.
func (cb *GearPinCollisionCallback) PerformCustomCollision(registry ChBodyRegistryInterface, container ChContactContainerInterface) {
	cb.M_Ncontacts = 0
	cb.CollisionGearPinFamily(registry, container)
}

/// Looks through the shoe list and checks whether any pins are in contact
/// with the concave gear seat surface.
func (cb *GearPinCollisionCallback) CollisionGearPinFamily(registry ChBodyRegistryInterface, container ChContactContainerInterface) {
	gearCsys := registry.GetBodyCoordsys(cb.M_gearId)

	if cb.M_workerCount <= 1 {
		for idx := range cb.M_shoeIds {
			cb.collideShoe(idx, gearCsys, registry, container)
		}
		return
	}

	work := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < cb.M_workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				cb.collideShoe(idx, gearCsys, registry, container)
			}
		}()
	}
	for idx := range cb.M_shoeIds {
		work <- idx
	}
	close(work)
	wg.Wait()
}

func (cb *GearPinCollisionCallback) collideShoe(idx int, gearCsys ChCoordsys, registry ChBodyRegistryInterface, container ChContactContainerInterface) {
	shoeCsys := registry.GetBodyCoordsys(cb.M_shoeIds[idx])

	inContact := false
	if TestGearPinBroadPhase(gearCsys, shoeCsys, &cb.M_geom, cb.M_boundRadGear, cb.M_boundRadShoe) {
		if contact, ok := CollideGearPinNarrowPhase(&cb.M_geom, gearCsys, shoeCsys,
			cb.M_p1_bar, cb.M_p2_bar, cb.M_seat1_bar, cb.M_seat2_bar); ok {
			cb.Found_GearPin_Contact(idx, contact, container)
			inContact = true
		}
	}

	cb.M_persistence.Update(idx, inContact)

	if cb.M_cacheEvictionSteps > 0 && !inContact &&
		cb.M_persistence.StepsSinceContact(idx) >= cb.M_cacheEvictionSteps {
		cb.M_hashedContacts.Remove(idx)
	}
}

/// Checks the hash table for a persistent contact for this shoe, then fills
/// the contact container. The cache entry keeps its identity across steps,
/// which is what lets the solver warm-start.
func (cb *GearPinCollisionCallback) Found_GearPin_Contact(shoeIdx int, contact GearPinContact, container ChContactContainerInterface) {
	cached := cb.M_hashedContacts.GetOrCreate(shoeIdx)

	info := &ChCollisionInfo{
		ModelA:        cb.M_gearId,
		ModelB:        cb.M_shoeIds[shoeIdx],
		VpA:           contact.VpGear,
		VpB:           contact.VpShoe,
		VN:            contact.VN,
		Distance:      contact.Distance,
		ReactionCache: &cached.ReactionsCache,
	}

	// the container is shared mutable state; submissions and the running
	// counter are serialized under the parallel pass
	cb.M_submitMutex.Lock()
	cb.M_Ncontacts++
	container.AddContact(info)
	cb.M_submitMutex.Unlock()
}

/// Number of gear/pin contacts detected this step.
func (cb *GearPinCollisionCallback) GetNcontacts_GearPin() int {
	return cb.M_Ncontacts
}

func (cb *GearPinCollisionCallback) Get_contactPrevStep(idx int) bool {
	return cb.M_persistence.ContactedLastStep(idx)
}

func (cb *GearPinCollisionCallback) Get_persistentContactSteps(idx int) int {
	return cb.M_persistence.ConsecutiveContactSteps(idx)
}

/// Live contact cache entries, for diagnostics.
func (cb *GearPinCollisionCallback) GetCacheSize() int {
	return cb.M_hashedContacts.Size()
}
