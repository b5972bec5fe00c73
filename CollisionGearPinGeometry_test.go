package chrono_test

import (
	"math"
	"testing"

	"github.com/anassar/chrono"
	"github.com/go-gl/mathgl/mgl64"
)

// round-number geometry shared by the collision tests; the effective
// seat radius is 0.06, the pin radius 0.02, so the pin touches the seat
// bottom when its center sits 0.22 from the gear center.
func makeTestGeometryDef() chrono.GearPinGeometryDef {
	return chrono.GearPinGeometryDef{
		GearBaseRadius:   0.20,
		GearPitchRadius:  0.26,
		GearSeatWidthMax: 0.60,
		GearSeatWidthMin: 0.40,
		ToothMidBar:      mgl64.Vec3{0.08, 0.25, 0.27},
		ToothLen:         0.02,
		ToothWidth:       0.08,
		NumTeeth:         10,
		KeyAngle:         0.0,
		PinRadius:        0.02,
		PinWidthMax:      0.50,
		PinWidthMin:      0.36,
		PinXOffset:       -0.08,
		PinYOffset:       0.0,
	}
}

func makeTestGeometry() chrono.GearPinGeometry {
	return chrono.MakeGearPinGeometry(makeTestGeometryDef())
}

// shoe pose (identity rotation) whose pin center sits at radius rc from the
// gear center, along the seat ray at the given angle
func shoePoseAt(geom *chrono.GearPinGeometry, angle float64, rc float64) chrono.ChCoordsys {
	center := mgl64.Vec3{rc * math.Sin(angle), rc * math.Cos(angle), 0.0}
	return chrono.MakeChCoordsys(
		center.Sub(mgl64.Vec3{geom.M_pin_x_offset, geom.M_pin_y_offset, 0.0}),
		mgl64.QuatIdent(),
	)
}

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected a panic", name)
		}
	}()
	f()
}

func TestGearPinGeometryRoundTrip(t *testing.T) {
	def := chrono.MakeGearPinGeometryDef()
	geom := chrono.MakeGearPinGeometry(def)

	if geom.M_gear_base_radius != def.GearBaseRadius {
		t.Errorf("gear base radius: got %v want %v", geom.M_gear_base_radius, def.GearBaseRadius)
	}
	if geom.M_gear_pitch_radius != def.GearPitchRadius {
		t.Errorf("gear pitch radius: got %v want %v", geom.M_gear_pitch_radius, def.GearPitchRadius)
	}
	if geom.M_gear_seat_width_max != def.GearSeatWidthMax {
		t.Errorf("gear seat width max: got %v want %v", geom.M_gear_seat_width_max, def.GearSeatWidthMax)
	}
	if geom.M_gear_seat_width_min != def.GearSeatWidthMin {
		t.Errorf("gear seat width min: got %v want %v", geom.M_gear_seat_width_min, def.GearSeatWidthMin)
	}
	if geom.M_tooth_mid_bar != def.ToothMidBar {
		t.Errorf("tooth mid bar: got %v want %v", geom.M_tooth_mid_bar, def.ToothMidBar)
	}
	if geom.M_tooth_len != def.ToothLen {
		t.Errorf("tooth len: got %v want %v", geom.M_tooth_len, def.ToothLen)
	}
	if geom.M_tooth_width != def.ToothWidth {
		t.Errorf("tooth width: got %v want %v", geom.M_tooth_width, def.ToothWidth)
	}
	if geom.M_num_teeth != def.NumTeeth {
		t.Errorf("num teeth: got %v want %v", geom.M_num_teeth, def.NumTeeth)
	}
	if geom.M_key_angle != def.KeyAngle {
		t.Errorf("key angle: got %v want %v", geom.M_key_angle, def.KeyAngle)
	}
	if geom.M_pin_radius != def.PinRadius {
		t.Errorf("pin radius: got %v want %v", geom.M_pin_radius, def.PinRadius)
	}
	if geom.M_pin_width_max != def.PinWidthMax {
		t.Errorf("pin width max: got %v want %v", geom.M_pin_width_max, def.PinWidthMax)
	}
	if geom.M_pin_width_min != def.PinWidthMin {
		t.Errorf("pin width min: got %v want %v", geom.M_pin_width_min, def.PinWidthMin)
	}
	if geom.M_pin_x_offset != def.PinXOffset {
		t.Errorf("pin x offset: got %v want %v", geom.M_pin_x_offset, def.PinXOffset)
	}
	if geom.M_pin_y_offset != def.PinYOffset {
		t.Errorf("pin y offset: got %v want %v", geom.M_pin_y_offset, def.PinYOffset)
	}

	// the only derived field
	if geom.M_gear_tooth_radius != def.GearPitchRadius-def.GearBaseRadius {
		t.Errorf("tooth radius: got %v want %v", geom.M_gear_tooth_radius, def.GearPitchRadius-def.GearBaseRadius)
	}
}

func TestGearPinGeometryValidation(t *testing.T) {
	expectPanic(t, "seat width max <= min", func() {
		def := makeTestGeometryDef()
		def.GearSeatWidthMax = def.GearSeatWidthMin
		chrono.MakeGearPinGeometry(def)
	})

	expectPanic(t, "pin width max <= min", func() {
		def := makeTestGeometryDef()
		def.PinWidthMax = def.PinWidthMin - 0.01
		chrono.MakeGearPinGeometry(def)
	})

	expectPanic(t, "pitch radius <= base radius", func() {
		def := makeTestGeometryDef()
		def.GearPitchRadius = def.GearBaseRadius
		chrono.MakeGearPinGeometry(def)
	})

	expectPanic(t, "zero teeth", func() {
		def := makeTestGeometryDef()
		def.NumTeeth = 0
		chrono.MakeGearPinGeometry(def)
	})
}
