// Package webui serves the interactive orientation converter page and its
// JSON and image endpoints.
package webui

import (
	"math"
	"net/url"
	"strings"

	"github.com/spf13/cast"

	"ned-enu-converter/internal/frame"
)

// Input modes of the page.
const (
	InputQuaternion = "quaternion"
	InputAxisAngle  = "axis"
)

// Form mirrors the page controls. Frame names are kept as entered so that
// unrecognized values can pass through unconverted.
type Form struct {
	InputType string `json:"inputType"`

	QW float64 `json:"qw"`
	QX float64 `json:"qx"`
	QY float64 `json:"qy"`
	QZ float64 `json:"qz"`

	AX    float64 `json:"ax"`
	AY    float64 `json:"ay"`
	AZ    float64 `json:"az"`
	Angle float64 `json:"angle"`

	InputFrame  string `json:"inputFrame"`
	OutputFrame string `json:"outputFrame"`
}

// DefaultForm is the state of a freshly loaded page: identity quaternion,
// a z axis for axis-angle mode, converting in to out.
func DefaultForm(in, out frame.Frame) Form {
	return Form{
		InputType:   InputQuaternion,
		QW:          1,
		AZ:          1,
		InputFrame:  in.String(),
		OutputFrame: out.String(),
	}
}

// ParseForm reads a Form from query values. Fields absent from v keep the
// value in defaults; present numeric fields that do not parse, are empty or
// are not finite read as 0.
func ParseForm(v url.Values, defaults Form) Form {
	f := defaults

	if v.Has("inputType") {
		f.InputType = v.Get("inputType")
	}
	if v.Has("inputFrame") {
		f.InputFrame = v.Get("inputFrame")
	}
	if v.Has("outputFrame") {
		f.OutputFrame = v.Get("outputFrame")
	}

	for key, dst := range map[string]*float64{
		"qw":    &f.QW,
		"qx":    &f.QX,
		"qy":    &f.QY,
		"qz":    &f.QZ,
		"ax":    &f.AX,
		"ay":    &f.AY,
		"az":    &f.AZ,
		"angle": &f.Angle,
	} {
		if v.Has(key) {
			*dst = lenientFloat(v.Get(key))
		}
	}
	return f
}

// Values encodes f as query values accepted by ParseForm.
func (f Form) Values() url.Values {
	v := url.Values{}
	v.Set("inputType", f.InputType)
	v.Set("qw", cast.ToString(f.QW))
	v.Set("qx", cast.ToString(f.QX))
	v.Set("qy", cast.ToString(f.QY))
	v.Set("qz", cast.ToString(f.QZ))
	v.Set("ax", cast.ToString(f.AX))
	v.Set("ay", cast.ToString(f.AY))
	v.Set("az", cast.ToString(f.AZ))
	v.Set("angle", cast.ToString(f.Angle))
	v.Set("inputFrame", f.InputFrame)
	v.Set("outputFrame", f.OutputFrame)
	return v
}

func lenientFloat(s string) float64 {
	v := cast.ToFloat64(strings.TrimSpace(s))
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
