package webui

import (
	"net/url"
	"testing"

	"go.viam.com/test"

	"ned-enu-converter/internal/frame"
)

func TestDefaultForm(t *testing.T) {
	f := DefaultForm(frame.NED, frame.ENU)
	test.That(t, f.InputType, test.ShouldEqual, InputQuaternion)
	test.That(t, f.QW, test.ShouldEqual, 1.0)
	test.That(t, f.InputFrame, test.ShouldEqual, "NED")
	test.That(t, f.OutputFrame, test.ShouldEqual, "ENU")
}

func TestParseFormLenientNumbers(t *testing.T) {
	defaults := DefaultForm(frame.NED, frame.ENU)
	v := url.Values{
		"qw":    {"abc"},
		"qx":    {""},
		"qy":    {" 2.5 "},
		"qz":    {"NaN"},
		"ax":    {"Inf"},
		"ay":    {"-1e3"},
		"angle": {"45"},
	}

	f := ParseForm(v, defaults)
	test.That(t, f.QW, test.ShouldEqual, 0.0)
	test.That(t, f.QX, test.ShouldEqual, 0.0)
	test.That(t, f.QY, test.ShouldEqual, 2.5)
	test.That(t, f.QZ, test.ShouldEqual, 0.0)
	test.That(t, f.AX, test.ShouldEqual, 0.0)
	test.That(t, f.AY, test.ShouldEqual, -1000.0)
	test.That(t, f.Angle, test.ShouldEqual, 45.0)

	// absent fields keep their defaults
	test.That(t, f.AZ, test.ShouldEqual, defaults.AZ)
	test.That(t, f.InputType, test.ShouldEqual, defaults.InputType)
	test.That(t, f.InputFrame, test.ShouldEqual, defaults.InputFrame)
}

func TestParseFormStrings(t *testing.T) {
	v := url.Values{
		"inputType":   {"axis"},
		"inputFrame":  {"ENU"},
		"outputFrame": {"bogus"},
	}
	f := ParseForm(v, DefaultForm(frame.NED, frame.ENU))
	test.That(t, f.InputType, test.ShouldEqual, "axis")
	test.That(t, f.InputFrame, test.ShouldEqual, "ENU")
	test.That(t, f.OutputFrame, test.ShouldEqual, "bogus")
}

func TestFormValuesRoundTrip(t *testing.T) {
	f := Form{
		InputType:   InputAxisAngle,
		QW:          0.5,
		QX:          -0.5,
		QY:          0.25,
		QZ:          1e-9,
		AX:          1,
		AY:          2,
		AZ:          3,
		Angle:       -30.5,
		InputFrame:  "ENU",
		OutputFrame: "NED",
	}
	test.That(t, ParseForm(f.Values(), Form{}), test.ShouldResemble, f)
}
