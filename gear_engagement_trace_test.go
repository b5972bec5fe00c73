package chrono_test

import (
	"fmt"
	"testing"

	"github.com/anassar/chrono"
	"github.com/pmezard/go-difflib/difflib"
)

// Drives one shoe through a scripted engagement against tooth 0 and compares
// the per-step contact trace against the reference values derived from the
// geometry by hand: the pin touches the seat bottom with its center 0.22
// from the gear center, so the surface gap is (pin center radius - 0.22).
func TestGearEngagementTrace(t *testing.T) {
	expected := "" +
		"0(shoe00): dist= -0.0050 ny= 1.0 persist=1 n=1\n" +
		"1(shoe00): dist= -0.0020 ny= 1.0 persist=2 n=1\n" +
		"2(shoe00): dist=  0.0020 ny= 1.0 persist=3 n=1\n" +
		"3(shoe00): no contact persist=0 n=0\n" +
		"4(shoe00): dist= -0.0050 ny= 1.0 persist=1 n=1\n"

	geom := makeTestGeometry()
	cb := chrono.NewGearPinCollisionCallback(testGearId, []int{1}, geom, 16)

	registry := testBodyRegistry{testGearId: chrono.MakeChCoordsysIdentity()}
	container := &testContactContainer{}

	// pin center radius per step: deep, shallow, speculative (inside the
	// envelope, still separated), lifted clear, re-engaged
	script := []float64{0.215, 0.218, 0.222, 0.226, 0.215}

	output := ""
	for i, rc := range script {
		registry[1] = shoePoseAt(&geom, 0.0, rc)
		container.reset()

		cb.PerformCustomCollision(registry, container)

		var msg string
		if len(container.contacts) > 0 {
			info := container.contacts[0]
			msg = fmt.Sprintf("%v(shoe00): dist=%8.4f ny=%4.1f persist=%d n=%d\n",
				i, info.Distance, info.VN[1], cb.Get_persistentContactSteps(0), cb.GetNcontacts_GearPin())
		} else {
			msg = fmt.Sprintf("%v(shoe00): no contact persist=%d n=%d\n",
				i, cb.Get_persistentContactSteps(0), cb.GetNcontacts_GearPin())
		}
		output += msg
	}

	if output != expected {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(expected),
			B:        difflib.SplitLines(output),
			FromFile: "Expected",
			ToFile:   "Current",
			Context:  0,
		}
		text, _ := difflib.GetUnifiedDiffString(diff)
		t.Fatalf("NOT matching engagement reference. Failure: \n%s", text)
	}
}
