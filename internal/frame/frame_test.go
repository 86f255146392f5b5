package frame

import (
	"errors"
	"math"
	"testing"

	"go.viam.com/test"

	"ned-enu-converter/internal/mathutil"
)

var a = math.Sqrt(0.5)

func TestTransformConstant(t *testing.T) {
	k := Transform(NED, ENU)
	test.That(t, k, test.ShouldResemble, mathutil.Quat{a, a, 0, 0})
	test.That(t, k.Len(), test.ShouldAlmostEqual, 1.0)
	test.That(t, Transform(ENU, NED), test.ShouldResemble, mathutil.Quat{a, -a, 0, 0})
	test.That(t, Transform(NED, NED), test.ShouldResemble, mathutil.QuatIdentity())

	t.Run("returned copies do not alias the constant", func(t *testing.T) {
		k := Transform(NED, ENU)
		k[0] = 42
		test.That(t, Transform(NED, ENU)[0], test.ShouldEqual, a)
	})
}

func TestConvertSameFrameIsIdentity(t *testing.T) {
	q := mathutil.Quat{0.1, -0.2, 0.3, 4}
	for _, f := range All() {
		out := Convert(q, f, f)
		test.That(t, out, test.ShouldResemble, q)
		out[0] = 99
		test.That(t, q[0], test.ShouldEqual, 0.1)
	}
}

func TestNEDToENUIdentity(t *testing.T) {
	got := NEDToENU(mathutil.QuatIdentity())
	test.That(t, got[0], test.ShouldAlmostEqual, 0.707107, 1e-6)
	test.That(t, got[1], test.ShouldAlmostEqual, 0.707107, 1e-6)
	test.That(t, got[2], test.ShouldEqual, 0.0)
	test.That(t, got[3], test.ShouldEqual, 0.0)
}

func TestConvertIsLeftMultiplication(t *testing.T) {
	q := mathutil.AxisAngleToQuat(mathutil.Vec3{0, 0, 1}, 90)
	want := Transform(NED, ENU).Mul(q)
	test.That(t, Convert(q, NED, ENU), test.ShouldResemble, want)

	// K·(√½, 0, 0, √½)
	got := NEDToENU(mathutil.Quat{a, 0, 0, a})
	test.That(t, got.ApproxEqual(mathutil.Quat{0.5, 0.5, -0.5, 0.5}, 1e-12), test.ShouldBeTrue)
}

func TestConvertDoesNotNormalize(t *testing.T) {
	got := NEDToENU(mathutil.Quat{2, 0, 0, 0})
	test.That(t, got.Len(), test.ShouldAlmostEqual, 2.0)

	got = NEDToENU(mathutil.Quat{})
	test.That(t, got, test.ShouldResemble, mathutil.Quat{})
}

func TestRoundTrip(t *testing.T) {
	inputs := []mathutil.Quat{
		mathutil.QuatIdentity(),
		mathutil.AxisAngleToQuat(mathutil.Vec3{0, 0, 1}, 90),
		mathutil.AxisAngleToQuat(mathutil.Vec3{0, 1, 0}, 10),
		mathutil.AxisAngleToQuat(mathutil.Vec3{1, 0, 0}, 45),
		mathutil.AxisAngleToQuat(mathutil.Vec3{-3, 1, 2}, 271),
		mathutil.AxisAngleToQuat(mathutil.Vec3{0, 0, 1}, 166).Mul(mathutil.AxisAngleToQuat(mathutil.Vec3{0, 1, 0}, -69)),
	}
	for _, q := range inputs {
		there := Convert(q, NED, ENU)
		back := Convert(there, ENU, NED)
		test.That(t, back.SameRotation(q, 1e-12), test.ShouldBeTrue)

		there = Convert(q, ENU, NED)
		back = Convert(there, NED, ENU)
		test.That(t, back.SameRotation(q, 1e-12), test.ShouldBeTrue)
	}
}

func TestParse(t *testing.T) {
	for in, want := range map[string]Frame{"NED": NED, "ned": NED, " ENU ": ENU, "Enu": ENU} {
		got, err := Parse(in)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, got, test.ShouldEqual, want)
	}

	_, err := Parse("ECEF")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, ErrUnknownFrame), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "ECEF")
}

func TestStringAndAxisNames(t *testing.T) {
	test.That(t, NED.String(), test.ShouldEqual, "NED")
	test.That(t, ENU.String(), test.ShouldEqual, "ENU")
	test.That(t, Frame(7).String(), test.ShouldEqual, "Frame(7)")
	test.That(t, NED.AxisNames(), test.ShouldResemble, [3]string{"N", "E", "D"})
	test.That(t, ENU.AxisNames(), test.ShouldResemble, [3]string{"E", "N", "U"})
}
