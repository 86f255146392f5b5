package mavattitude

import (
	"math"
	"testing"

	"go.viam.com/test"

	"ned-enu-converter/internal/frame"
	"ned-enu-converter/internal/mathutil"
)

// float32 message fields limit precision.
const eps = 1e-6

func TestToAttitudeQuaternion(t *testing.T) {
	ned := ToAttitudeQuaternion(mathutil.QuatIdentity(), frame.NED, 0)
	test.That(t, ned.Q1, test.ShouldEqual, float32(1))
	test.That(t, ned.Q2, test.ShouldEqual, float32(0))

	// ENU heading north is NED yaw 0.
	enu := frame.NEDToENU(mathutil.QuatIdentity())
	msg := ToAttitudeQuaternion(enu, frame.ENU, 1234)
	test.That(t, msg.TimeBootMs, test.ShouldEqual, uint32(1234))
	test.That(t, float64(msg.Q1), test.ShouldAlmostEqual, 1, eps)
	test.That(t, float64(msg.Q2), test.ShouldAlmostEqual, 0, eps)
	test.That(t, float64(msg.Q3), test.ShouldAlmostEqual, 0, eps)
	test.That(t, float64(msg.Q4), test.ShouldAlmostEqual, 0, eps)
}

func TestToAttitudeQuaternionRoundTrip(t *testing.T) {
	enu := mathutil.AxisAngleToQuat(mathutil.Vec3{1, -2, 0.5}, 33)
	msg := ToAttitudeQuaternion(enu, frame.ENU, 0)

	ned := mathutil.Quat{float64(msg.Q1), float64(msg.Q2), float64(msg.Q3), float64(msg.Q4)}
	test.That(t, frame.NEDToENU(ned).SameRotation(enu, eps), test.ShouldBeTrue)
}

func TestToAttitude(t *testing.T) {
	yaw90 := mathutil.AxisAngleToQuat(mathutil.Vec3{0, 0, 1}, 90)
	msg := ToAttitude(yaw90, frame.NED, 42)
	test.That(t, msg.TimeBootMs, test.ShouldEqual, uint32(42))
	test.That(t, float64(msg.Roll), test.ShouldAlmostEqual, 0, eps)
	test.That(t, float64(msg.Pitch), test.ShouldAlmostEqual, 0, eps)
	test.That(t, float64(msg.Yaw), test.ShouldAlmostEqual, math.Pi/2, eps)

	// Same physical attitude handed over in ENU.
	msg = ToAttitude(frame.NEDToENU(yaw90), frame.ENU, 0)
	test.That(t, float64(msg.Yaw), test.ShouldAlmostEqual, math.Pi/2, eps)

	pitched := mathutil.AxisAngleToQuat(mathutil.Vec3{0, 1, 0}, 30)
	msg = ToAttitude(pitched, frame.NED, 0)
	test.That(t, float64(msg.Roll), test.ShouldAlmostEqual, 0, eps)
	test.That(t, float64(msg.Pitch), test.ShouldAlmostEqual, math.Pi/6, eps)
	test.That(t, float64(msg.Yaw), test.ShouldAlmostEqual, 0, eps)
}
