package postprocess

import (
	"image"
	"image/color"
	"testing"

	"go.viam.com/test"
)

func TestDownsampleKeepsSmallImages(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	test.That(t, Downsample(img, 32, 32), test.ShouldEqual, img)
}

func TestDownsampleSolidColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	want := color.NRGBA{R: 200, G: 40, B: 10, A: 255}
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetNRGBA(x, y, want)
		}
	}

	out := Downsample(img, 16, 16)
	test.That(t, out.Bounds(), test.ShouldResemble, image.Rect(0, 0, 16, 16))
	got := out.NRGBAAt(8, 8)
	test.That(t, float64(got.R), test.ShouldAlmostEqual, float64(want.R), 1)
	test.That(t, float64(got.G), test.ShouldAlmostEqual, float64(want.G), 1)
	test.That(t, float64(got.B), test.ShouldAlmostEqual, float64(want.B), 1)
	test.That(t, got.A, test.ShouldEqual, want.A)
}

func TestDownsampleNoDarkHalo(t *testing.T) {
	// Left half opaque white, right half fully transparent black.
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 32; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	out := Downsample(img, 16, 16)
	edge := out.NRGBAAt(8, 8)
	if edge.A > 0 {
		test.That(t, edge.R, test.ShouldBeGreaterThan, uint8(200))
	}
}
