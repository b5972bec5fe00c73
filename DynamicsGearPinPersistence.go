package chrono

import (
	"fmt"
)

/// Per-shoe history of contact with the gear family, used for determining if
/// contacts are "persistent", i.e. no liftoff once the pin is engaged with
/// the sprocket. One slot per shoe, updated exactly once per step per shoe;
/// slots are disjoint across shoes so the parallel pass needs no locking
/// here.
type GearPinPersistenceTracker struct {
	M_contactPrevStep        []bool ///< did the shoe pass narrow phase last step?
	M_persistentContactSteps []int  ///< how many steps in a row has the pin been in contact?
	M_stepsSinceContact      []int  ///< how many steps in a row has it been out of contact?
}

func MakeGearPinPersistenceTracker(numShoes int) GearPinPersistenceTracker {
	ChAssert(numShoes > 0, "persistence tracker needs at least one shoe")
	return GearPinPersistenceTracker{
		M_contactPrevStep:        make([]bool, numShoes),
		M_persistentContactSteps: make([]int, numShoes),
		M_stepsSinceContact:      make([]int, numShoes),
	}
}

func (tracker *GearPinPersistenceTracker) checkIndex(idx int) {
	ChAssert(idx >= 0 && idx < len(tracker.M_contactPrevStep),
		fmt.Sprintf("shoe index %d out of range [0,%d)", idx, len(tracker.M_contactPrevStep)))
}

/// Record this step's narrow-phase outcome for one shoe.
func (tracker *GearPinPersistenceTracker) Update(idx int, inContact bool) {
	tracker.checkIndex(idx)

	if inContact {
		tracker.M_persistentContactSteps[idx]++
		tracker.M_stepsSinceContact[idx] = 0
	} else {
		tracker.M_persistentContactSteps[idx] = 0
		tracker.M_stepsSinceContact[idx]++
	}
	tracker.M_contactPrevStep[idx] = inContact
}

func (tracker *GearPinPersistenceTracker) ContactedLastStep(idx int) bool {
	tracker.checkIndex(idx)
	return tracker.M_contactPrevStep[idx]
}

func (tracker *GearPinPersistenceTracker) ConsecutiveContactSteps(idx int) int {
	tracker.checkIndex(idx)
	return tracker.M_persistentContactSteps[idx]
}

func (tracker *GearPinPersistenceTracker) StepsSinceContact(idx int) int {
	tracker.checkIndex(idx)
	return tracker.M_stepsSinceContact[idx]
}

func (tracker *GearPinPersistenceTracker) NumShoes() int {
	return len(tracker.M_contactPrevStep)
}
