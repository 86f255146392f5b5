package raster

import (
	"image/color"
	"math"

	"ned-enu-converter/internal/mathutil"
)

// RasterizeTriangle fills one flat-shaded, z-buffered triangle.
//
// Vertices are in screen space: x right, y down, z toward the viewer (larger z
// wins). normal is the face normal in view space and only feeds the lighting.
// Hot path: no allocation in the pixel loop.
func RasterizeTriangle(fb *FrameBuffer, tri [3]mathutil.Vec3, normal mathutil.Vec3, col color.NRGBA, lc *LightConfig) {
	x0, y0, z0 := tri[0][0], tri[0][1], tri[0][2]
	x1, y1, z1 := tri[1][0], tri[1][1], tri[1][2]
	x2, y2, z2 := tri[2][0], tri[2][1], tri[2][2]

	shade := lc.Shade(normal)
	cr := lc.Apply(col.R, shade)
	cg := lc.Apply(col.G, shade)
	cb := lc.Apply(col.B, shade)

	// Bounding box
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = cr
			fb.Color[pxIdx+1] = cg
			fb.Color[pxIdx+2] = cb
			fb.Color[pxIdx+3] = col.A
		}
	}
}
