// Package frame converts orientations between the North-East-Down and
// East-North-Up reference frame conventions.
package frame

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"ned-enu-converter/internal/mathutil"
)

// Frame names a reference frame convention. Only NED and ENU exist.
type Frame int

const (
	NED Frame = iota // North-East-Down
	ENU              // East-North-Up
)

// ErrUnknownFrame is returned by Parse for names other than NED and ENU.
var ErrUnknownFrame = errors.New("unknown frame")

// nedToENU is the fixed transform applied on the left of a NED orientation.
// Unit length, so its conjugate is the ENU→NED transform.
var nedToENU = mathutil.Quat{1 / math.Sqrt2, 1 / math.Sqrt2, 0, 0}

// All returns every recognized frame, in display order.
func All() []Frame {
	return []Frame{NED, ENU}
}

func (f Frame) String() string {
	switch f {
	case NED:
		return "NED"
	case ENU:
		return "ENU"
	}
	return fmt.Sprintf("Frame(%d)", int(f))
}

// AxisNames returns the labels of the frame's x, y and z axes.
func (f Frame) AxisNames() [3]string {
	if f == ENU {
		return [3]string{"E", "N", "U"}
	}
	return [3]string{"N", "E", "D"}
}

// Parse maps a case-insensitive frame name to a Frame.
func Parse(s string) (Frame, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NED":
		return NED, nil
	case "ENU":
		return ENU, nil
	}
	return 0, fmt.Errorf("frame: %q: %w", s, ErrUnknownFrame)
}

// Transform returns the quaternion that Convert multiplies on the left
// for a from→to conversion. Equal frames give the identity.
func Transform(from, to Frame) mathutil.Quat {
	switch {
	case from == NED && to == ENU:
		return nedToENU
	case from == ENU && to == NED:
		return nedToENU.Conj()
	}
	return mathutil.QuatIdentity()
}

// Convert re-expresses orientation q, given in frame from, in frame to.
// Same-frame conversion returns q unchanged. The result is not normalized.
func Convert(q mathutil.Quat, from, to Frame) mathutil.Quat {
	if from == to {
		return q
	}
	return Transform(from, to).Mul(q)
}

// NEDToENU is Convert(q, NED, ENU).
func NEDToENU(q mathutil.Quat) mathutil.Quat {
	return Convert(q, NED, ENU)
}

// ENUToNED is Convert(q, ENU, NED).
func ENUToNED(q mathutil.Quat) mathutil.Quat {
	return Convert(q, ENU, NED)
}
