// Package mavattitude builds MAVLink attitude messages, which are always
// expressed in NED, from quaternions in either frame.
package mavattitude

import (
	"github.com/bluenviron/gomavlib/v3/pkg/dialects/common"

	"ned-enu-converter/internal/frame"
	"ned-enu-converter/internal/mathutil"
)

// ToAttitudeQuaternion builds an ATTITUDE_QUATERNION message for q, given in
// frame from. Angular rates are left zero.
func ToAttitudeQuaternion(q mathutil.Quat, from frame.Frame, timeBootMs uint32) *common.MessageAttitudeQuaternion {
	ned := frame.Convert(q, from, frame.NED)
	return &common.MessageAttitudeQuaternion{
		TimeBootMs: timeBootMs,
		Q1:         float32(ned[0]),
		Q2:         float32(ned[1]),
		Q3:         float32(ned[2]),
		Q4:         float32(ned[3]),
	}
}

// ToAttitude builds an ATTITUDE message (roll, pitch, yaw in radians,
// applied yaw first) for q, given in frame from.
func ToAttitude(q mathutil.Quat, from frame.Frame, timeBootMs uint32) *common.MessageAttitude {
	roll, pitch, yaw := mathutil.QuatToEulerZYX(frame.Convert(q, from, frame.NED))
	return &common.MessageAttitude{
		TimeBootMs: timeBootMs,
		Roll:       float32(roll),
		Pitch:      float32(pitch),
		Yaw:        float32(yaw),
	}
}
