package chrono

import (
	"github.com/go-gl/mathgl/mgl64"
)

/// A narrow-phase result: one contact between the pin cylinder and a gear
/// seat surface. Produced fresh each step, consumed immediately.
type GearPinContact struct {
	VpGear   mgl64.Vec3 ///< world contact point on the gear seat surface
	VpShoe   mgl64.Vec3 ///< world contact point on the pin surface
	VN       mgl64.Vec3 ///< unit normal, the gear-to-shoe push direction
	Distance float64    ///< surface gap; negative indicates overlap
	ToothIdx int        ///< which seat produced the contact
}

func mirrorZ(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], -v[2]}
}

/// Exact test of the shoe pin (a finite cylinder, axis between p1Bar and
/// p2Bar in the shoe c-sys) against the concave seat surface of every gear
/// tooth (finite cylinders of radius M_gear_tooth_radius, axes between
/// seat1Bar[i] and seat2Bar[i] in the gear c-sys). The seat encloses the
/// pin, so the surfaces touch when the axis separation reaches
/// seat radius - pin radius; the gap is measured from there and a contact
/// is reported while the gap is below the speculative envelope.
///
/// The pin and the seats are symmetric about their local XY midplanes, each
/// splitting into a +z and a mirrored -z half. A shoe shifted along z can
/// land its +z pin half in a -z seat half, so all four half pairings are
/// tested per tooth. The minimum-gap (deepest) candidate over all teeth and
/// pairings wins.
func CollideGearPinNarrowPhase(geom *GearPinGeometry, gearCsys ChCoordsys, shoeCsys ChCoordsys, p1Bar mgl64.Vec3, p2Bar mgl64.Vec3, seat1Bar []mgl64.Vec3, seat2Bar []mgl64.Vec3) (GearPinContact, bool) {
	ChAssert(len(seat1Bar) == geom.M_num_teeth && len(seat2Bar) == geom.M_num_teeth, "seat endpoint arrays must hold one entry per tooth")

	seatRad := geom.M_gear_tooth_radius
	pinRad := geom.M_pin_radius

	// world pin axis, +z half and mirrored -z half
	wp1 := shoeCsys.TransformPointLocalToParent(p1Bar)
	wp2 := shoeCsys.TransformPointLocalToParent(p2Bar)
	wm1 := shoeCsys.TransformPointLocalToParent(mirrorZ(p1Bar))
	wm2 := shoeCsys.TransformPointLocalToParent(mirrorZ(p2Bar))

	best := GearPinContact{Distance: Ch_maxFloat}
	found := false

	for t := 0; t < geom.M_num_teeth; t++ {
		// push direction fallback for the coaxial case: the gear-inward
		// radial of this seat, so the reported normal points radially
		// outward from the gear center
		inward := mgl64.Vec3{-seat1Bar[t][0], -seat1Bar[t][1], 0.0}.Normalize()
		fallback := gearCsys.TransformDirectionLocalToParent(inward)

		ws1 := gearCsys.TransformPointLocalToParent(seat1Bar[t])
		ws2 := gearCsys.TransformPointLocalToParent(seat2Bar[t])
		wsm1 := gearCsys.TransformPointLocalToParent(mirrorZ(seat1Bar[t]))
		wsm2 := gearCsys.TransformPointLocalToParent(mirrorZ(seat2Bar[t]))

		candidates := [4][4]mgl64.Vec3{
			{ws1, ws2, wp1, wp2},
			{wsm1, wsm2, wm1, wm2},
			{ws1, ws2, wm1, wm2},
			{wsm1, wsm2, wp1, wp2},
		}
		for _, seg := range candidates {
			if c, ok := collideSeatPinCylinders(seg[0], seg[1], seg[2], seg[3], seatRad, pinRad, fallback); ok && c.Distance < best.Distance {
				best = c
				best.ToothIdx = t
				found = true
			}
		}
	}

	return best, found
}

/// One seat-cylinder/pin-cylinder candidate, world space. The seat is
/// concave: the pin digs into the gear material as its axis moves AWAY from
/// the seat axis, so the gap is (seatRad - pinRad) - axis distance. A pin
/// whose axis has left the seat cylinder entirely is engaging the tooth
/// flank, which this model does not cover, so such candidates are rejected
/// rather than reported as deep contacts.
func collideSeatPinCylinders(s1 mgl64.Vec3, s2 mgl64.Vec3, pp1 mgl64.Vec3, pp2 mgl64.Vec3, seatRad float64, pinRad float64, fallbackPush mgl64.Vec3) (GearPinContact, bool) {
	cSeat, cPin, dist := ChSegmentSegmentClosestPoints(s1, s2, pp1, pp2)

	if dist > seatRad {
		return GearPinContact{}, false
	}

	gap := (seatRad - pinRad) - dist
	if gap >= ChCollisionEnvelope {
		return GearPinContact{}, false
	}

	// u: direction from the seat axis toward the pin axis, the direction in
	// which the pin sinks into the seat surface
	var u mgl64.Vec3
	if dist > Ch_epsilon {
		u = cPin.Sub(cSeat).Mul(1.0 / dist)
	} else {
		u = fallbackPush
		cPin = cSeat
	}

	return GearPinContact{
		VpGear:   cSeat.Add(u.Mul(seatRad)),
		VpShoe:   cPin.Add(u.Mul(pinRad)),
		VN:       u.Mul(-1.0),
		Distance: gap,
	}, true
}
