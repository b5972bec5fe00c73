package chrono

import (
	"github.com/go-gl/mathgl/mgl64"
)

/// Configuration for the M113 gear/pin geometry. All length units in meters.
/// Fill one of these out (or start from MakeGearPinGeometryDef) and pass it
/// to MakeGearPinGeometry.
type GearPinGeometryDef struct {
	GearBaseRadius   float64    ///< gear base circle radius
	GearPitchRadius  float64    ///< center of the arc that uses the tooth radius to define the gear tooth surface
	GearSeatWidthMax float64    ///< max width of the gear seat, w.r.t. gear c-sys
	GearSeatWidthMin float64    ///< min width of the gear seat, w.r.t. gear c-sys
	ToothMidBar      mgl64.Vec3 ///< center of the top of the gear tooth, relative to the gear c-sys
	ToothLen         float64    ///< length of the top of the gear tooth, in the local XY plane
	ToothWidth       float64    ///< width of the top of the gear tooth, in the local Z plane
	NumTeeth         int        ///< number of gear teeth
	KeyAngle         float64    ///< rotation of the first seat away from directly above the COG, in rads
	PinRadius        float64    ///< shoe pin radius
	PinWidthMax      float64    ///< max total pin width
	PinWidthMin      float64    ///< min total pin width
	PinXOffset       float64    ///< x-offset of the pin from the center of the shoe c-sys
	PinYOffset       float64    ///< y-offset of the pin from the center of the shoe c-sys
}

/// The M113 sprocket/track-shoe reference values.
func MakeGearPinGeometryDef() GearPinGeometryDef {
	return GearPinGeometryDef{
		GearBaseRadius:   0.211,
		GearPitchRadius:  0.267,
		GearSeatWidthMax: 0.626,
		GearSeatWidthMin: 0.458,
		ToothMidBar:      mgl64.Vec3{0.079815, 0.24719, 0.2712},
		ToothLen:         0.013119,
		ToothWidth:       0.0840,
		NumTeeth:         10,
		KeyAngle:         0.0,
		PinRadius:        0.0232,
		PinWidthMax:      0.531,
		PinWidthMin:      0.38,
		PinXOffset:       -0.07581,
		PinYOffset:       0.0,
	}
}

/// Immutable data container for the gear/pin geometry, shared read-only by
/// broad-phase, narrow-phase and the collision callback.
type GearPinGeometry struct {
	// gear geometry
	M_gear_base_radius    float64
	M_gear_pitch_radius   float64
	M_gear_tooth_radius   float64 ///< derived: pitch radius - base radius
	M_gear_seat_width_max float64
	M_gear_seat_width_min float64
	M_num_teeth           int
	M_key_angle           float64

	// gear tooth geometry
	M_tooth_mid_bar mgl64.Vec3
	M_tooth_len     float64
	M_tooth_width   float64

	// shoe pin geometry
	M_pin_radius    float64
	M_pin_width_max float64
	M_pin_width_min float64
	M_pin_x_offset  float64
	M_pin_y_offset  float64
}

/// Validates the dimensions and derives the tooth radius. Invalid dimensions
/// are configuration errors caught at startup, so this panics rather than
/// returning an error.
func MakeGearPinGeometry(def GearPinGeometryDef) GearPinGeometry {
	ChAssert(def.GearSeatWidthMax > def.GearSeatWidthMin, "gear seat width max must exceed min")
	ChAssert(def.PinWidthMax > def.PinWidthMin, "pin width max must exceed min")
	ChAssert(def.GearPitchRadius > def.GearBaseRadius, "gear pitch radius must exceed base radius")
	ChAssert(def.NumTeeth > 0, "gear needs at least one tooth")
	ChAssert(def.PinRadius > 0.0, "pin radius must be positive")

	return GearPinGeometry{
		M_gear_base_radius:    def.GearBaseRadius,
		M_gear_pitch_radius:   def.GearPitchRadius,
		M_gear_tooth_radius:   def.GearPitchRadius - def.GearBaseRadius,
		M_gear_seat_width_max: def.GearSeatWidthMax,
		M_gear_seat_width_min: def.GearSeatWidthMin,
		M_num_teeth:           def.NumTeeth,
		M_key_angle:           def.KeyAngle,
		M_tooth_mid_bar:       def.ToothMidBar,
		M_tooth_len:           def.ToothLen,
		M_tooth_width:         def.ToothWidth,
		M_pin_radius:          def.PinRadius,
		M_pin_width_max:       def.PinWidthMax,
		M_pin_width_min:       def.PinWidthMin,
		M_pin_x_offset:        def.PinXOffset,
		M_pin_y_offset:        def.PinYOffset,
	}
}
