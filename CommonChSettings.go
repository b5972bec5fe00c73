package chrono

import "math"

func ChAssert(a bool, message string) {
	if !a {
		panic("ChAssert: " + message)
	}
}

const Ch_maxFloat = math.MaxFloat64
const Ch_pi = math.Pi

/// A small length used as a degeneracy tolerance for segment and direction
/// math. Chosen to be numerically significant at the meter scale of the
/// gear/pin geometry while far below any physical dimension.
const Ch_epsilon = 1e-12

/// The speculative contact envelope, in meters. Narrow-phase reports a
/// contact when the pin surface comes within this distance of the seat
/// surface, before actual overlap, so the solver gets a one-step lookahead.
/// Scaled to the M113 pin radius (0.0232 m); revisit for very different
/// geometry scales.
const ChCollisionEnvelope = 0.003
