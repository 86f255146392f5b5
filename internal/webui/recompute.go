package webui

import (
	"strconv"
	"strings"

	"github.com/bluenviron/gomavlib/v3/pkg/dialects/common"

	"ned-enu-converter/internal/frame"
	"ned-enu-converter/internal/mathutil"
	"ned-enu-converter/internal/mavattitude"
)

// View is everything the page displays for one Form.
type View struct {
	Input  mathutil.Quat  `json:"input"`
	Output mathutil.Quat  `json:"output"`
	Matrix [3][3]float64  `json:"matrix"`
	Euler  mathutil.Euler `json:"euler"`

	QuatText   string       `json:"quatText"`
	MatrixText [3][3]string `json:"matrixText"`
	RPYText    string       `json:"rpyText"`

	// MAVLink messages for the output, set only when the output frame is known.
	AttitudeQuaternion *common.MessageAttitudeQuaternion `json:"attitudeQuaternion,omitempty"`
	Attitude           *common.MessageAttitude           `json:"attitude,omitempty"`
	MAVLinkQuatText    string                            `json:"mavlinkQuatText"`
	MAVLinkRPYText     string                            `json:"mavlinkRpyText"`
}

// InputQuat returns the orientation entered in f. Quaternion input is
// normalized; any other input type is read as axis-angle in degrees.
func InputQuat(f Form) mathutil.Quat {
	if f.InputType == InputQuaternion {
		return mathutil.Quat{f.QW, f.QX, f.QY, f.QZ}.Normalize()
	}
	return mathutil.AxisAngleToQuat(mathutil.Vec3{f.AX, f.AY, f.AZ}, f.Angle)
}

// convertNamed converts q between named frames. Equal names, or any name
// that is not a known frame, leave q unchanged.
func convertNamed(q mathutil.Quat, from, to string) mathutil.Quat {
	if from == to {
		return q
	}
	fromFrame, err := frame.Parse(from)
	if err != nil {
		return q
	}
	toFrame, err := frame.Parse(to)
	if err != nil {
		return q
	}
	return frame.Convert(q, fromFrame, toFrame)
}

// Recompute derives the output orientation and its representations from f.
func Recompute(f Form) View {
	in := InputQuat(f)
	out := convertNamed(in, f.InputFrame, f.OutputFrame).Normalize()

	v := View{
		Input:  in,
		Output: out,
		Matrix: mathutil.QuatToMat3(out).Rows(),
		Euler:  mathutil.QuatToEulerXYZ(out),
	}

	parts := make([]string, len(out))
	for i, c := range out {
		parts[i] = fixed(c, 6)
	}
	v.QuatText = strings.Join(parts, ", ")

	for r, row := range v.Matrix {
		for c, val := range row {
			v.MatrixText[r][c] = fixed(val, 6)
		}
	}

	v.RPYText = fixed(v.Euler.Roll, 2) + ", " + fixed(v.Euler.Pitch, 2) + ", " + fixed(v.Euler.Yaw, 2)

	if outFrame, err := frame.Parse(f.OutputFrame); err == nil {
		v.AttitudeQuaternion = mavattitude.ToAttitudeQuaternion(out, outFrame, 0)
		v.Attitude = mavattitude.ToAttitude(out, outFrame, 0)

		aq := v.AttitudeQuaternion
		v.MAVLinkQuatText = fixed32(aq.Q1, 6) + ", " + fixed32(aq.Q2, 6) + ", " + fixed32(aq.Q3, 6) + ", " + fixed32(aq.Q4, 6)
		at := v.Attitude
		v.MAVLinkRPYText = fixed32(at.Roll, 4) + ", " + fixed32(at.Pitch, 4) + ", " + fixed32(at.Yaw, 4)
	}
	return v
}

// fixed formats v with prec decimals. Negative zero prints unsigned.
func fixed(v float64, prec int) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func fixed32(v float32, prec int) string {
	return fixed(float64(v), prec)
}
