package chrono

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

/// Gear bounding sphere radius, centered at the gear c-sys origin. Must
/// over-bound every surface the narrow phase can engage: the tips and edges
/// of the gear teeth, and the seat cylinders, whose axes run out of plane to
/// half the seat width at the pitch radius. The larger of the two reaches
/// wins; revalidate if the geometry parameters change.
func GearBoundingRadius(geom *GearPinGeometry) float64 {
	toothReach := math.Sqrt(geom.M_tooth_mid_bar.LenSqr() + 0.25*geom.M_tooth_len*geom.M_tooth_len)
	return math.Max(toothReach, SeatSurfaceReach(geom))
}

/// Farthest point of any seat surface from the gear c-sys origin: the outer
/// seat axis endpoint sits at the pitch radius, half the max seat width out
/// of plane, and the surface extends one seat radius beyond the axis.
func SeatSurfaceReach(geom *GearPinGeometry) float64 {
	axisReach := math.Sqrt(geom.M_gear_pitch_radius*geom.M_gear_pitch_radius +
		0.25*geom.M_gear_seat_width_max*geom.M_gear_seat_width_max)
	return axisReach + geom.M_gear_tooth_radius
}

/// Shoe bounding sphere radius, centered at the pin center. It circumscribes
/// the outside circumference of the pins, measured from the shoe c-sys
/// origin to the outer pin endpoint so the pin offset is absorbed into the
/// radius. Must over-bound the pin cylinder; revalidate if the geometry
/// parameters change.
func PinBoundingRadius(geom *GearPinGeometry) float64 {
	outer := mgl64.Vec3{
		geom.M_pin_x_offset + geom.M_pin_radius,
		geom.M_pin_y_offset,
		geom.M_pin_width_max / 2.0,
	}
	return outer.Len()
}

/// The pin cylinder center in the shoe c-sys.
func PinCenterLocal(geom *GearPinGeometry) mgl64.Vec3 {
	return mgl64.Vec3{geom.M_pin_x_offset, geom.M_pin_y_offset, 0.0}
}

/// Broad-phase: is the distance between the sphere centers less than the sum
/// of the bounding radii? Conservative by construction: false positives are
/// discarded by narrow-phase, false negatives cannot occur as long as each
/// radius over-bounds its geometry (asserted when the callback is built).
func TestGearPinBroadPhase(gearCsys ChCoordsys, shoeCsys ChCoordsys, geom *GearPinGeometry, boundRadGear float64, boundRadShoe float64) bool {
	pinPos := shoeCsys.TransformPointLocalToParent(PinCenterLocal(geom))
	return gearCsys.Pos.Sub(pinPos).Len() <= boundRadGear+boundRadShoe
}
