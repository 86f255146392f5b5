package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var labelColor = color.NRGBA{R: 70, G: 70, B: 70, A: 255}

// DrawLabel writes text centered on (x, y) with the built-in 7×13 bitmap face.
func DrawLabel(img *image.NRGBA, text string, x, y int) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: face,
	}

	width := d.MeasureString(text).Round()
	ascent := face.Metrics().Ascent.Round()
	d.Dot = fixed.P(x-width/2, y+ascent/2)
	d.DrawString(text)
}
