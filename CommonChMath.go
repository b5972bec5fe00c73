package chrono

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

/// This function is used to ensure that a floating point number is not a NaN or infinity.
func ChIsValid(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func ChClampFloat(a float64, low float64, high float64) float64 {
	return math.Max(low, math.Min(a, high))
}

///////////////////////////////////////////////////////////////////////////////
/// A coordinate system: a position and a rotation quaternion. This is the
/// world-space pose of a body, queried from the owning engine once per step.
///////////////////////////////////////////////////////////////////////////////
type ChCoordsys struct {
	Pos mgl64.Vec3
	Rot mgl64.Quat
}

func MakeChCoordsys(pos mgl64.Vec3, rot mgl64.Quat) ChCoordsys {
	return ChCoordsys{
		Pos: pos,
		Rot: rot,
	}
}

func MakeChCoordsysIdentity() ChCoordsys {
	return ChCoordsys{
		Pos: mgl64.Vec3{},
		Rot: mgl64.QuatIdent(),
	}
}

/// Transform a point expressed in this coordinate system into the parent
/// (world) frame.
func (c ChCoordsys) TransformPointLocalToParent(p mgl64.Vec3) mgl64.Vec3 {
	return c.Rot.Rotate(p).Add(c.Pos)
}

/// Transform a point expressed in the parent (world) frame into this
/// coordinate system.
func (c ChCoordsys) TransformPointParentToLocal(p mgl64.Vec3) mgl64.Vec3 {
	return c.Rot.Inverse().Rotate(p.Sub(c.Pos))
}

/// Rotate a direction from this coordinate system into the parent frame.
/// Directions ignore the position part.
func (c ChCoordsys) TransformDirectionLocalToParent(d mgl64.Vec3) mgl64.Vec3 {
	return c.Rot.Rotate(d)
}

/// Closest points between segment [p1,q1] and segment [p2,q2].
/// Returns the closest point on each segment and the distance between them.
/// Handles degenerate (near zero length) segments.
func ChSegmentSegmentClosestPoints(p1 mgl64.Vec3, q1 mgl64.Vec3, p2 mgl64.Vec3, q2 mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3, float64) {
	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)

	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	var s, t float64

	if a <= Ch_epsilon && e <= Ch_epsilon {
		// both segments degenerate to points
		s = 0.0
		t = 0.0
	} else if a <= Ch_epsilon {
		s = 0.0
		t = ChClampFloat(f/e, 0.0, 1.0)
	} else {
		c := d1.Dot(r)
		if e <= Ch_epsilon {
			t = 0.0
			s = ChClampFloat(-c/a, 0.0, 1.0)
		} else {
			b := d1.Dot(d2)
			denom := a*e - b*b

			// nonzero denom: segments not parallel, clamp s to the closest
			// point on the infinite line pair; parallel: pick s = 0
			if denom > Ch_epsilon {
				s = ChClampFloat((b*f-c*e)/denom, 0.0, 1.0)
			} else {
				s = 0.0
			}

			t = (b*s + f) / e

			if t < 0.0 {
				t = 0.0
				s = ChClampFloat(-c/a, 0.0, 1.0)
			} else if t > 1.0 {
				t = 1.0
				s = ChClampFloat((b-c)/a, 0.0, 1.0)
			}
		}
	}

	c1 := p1.Add(d1.Mul(s))
	c2 := p2.Add(d2.Mul(t))

	return c1, c2, c2.Sub(c1).Len()
}
