package raster

import (
	"image"
	"image/color"

	"ned-enu-converter/internal/mathutil"
	"ned-enu-converter/internal/postprocess"
)

// Options controls RenderAxes.
type Options struct {
	Size        int       // output width and height in pixels
	Supersample int       // render at Size*Supersample, then downsample
	Labels      [3]string // reference frame axis labels (x, y, z)
	ZUp         bool      // draw the reference z axis pointing up (ENU) instead of down (NED)
}

// Half-extent of the visible scene in world units.
const sceneExtent = 1.4

var (
	axisColors = [3]color.NRGBA{
		{R: 220, G: 50, B: 47, A: 255},
		{R: 76, G: 175, B: 80, A: 255},
		{R: 38, G: 110, B: 220, A: 255},
	}
	referenceColor = color.NRGBA{R: 150, G: 150, B: 150, A: 255}

	// Oblique camera: Rx(25°) @ Ry(-40°) over a y-up display frame.
	cameraTilt = mathutil.Mat3Mul(mathutil.RotX(mathutil.Deg2Rad(25)), mathutil.RotY(mathutil.Deg2Rad(-40)))

	// Reference frame → y-up display frame.
	zUpDisplay   = mathutil.Mat3{1, 0, 0, 0, 0, 1, 0, -1, 0}
	zDownDisplay = mathutil.Mat3{0, 1, 0, 0, 0, -1, -1, 0, 0}
)

// prismFaces triangulates the 6 faces of an 8-vertex prism
// (vertices 0-3 at the base, 4-7 at the tip, same order).
var prismFaces = [12][3]int{
	{0, 1, 2}, {0, 2, 3},
	{4, 6, 5}, {4, 7, 6},
	{0, 4, 5}, {0, 5, 1},
	{1, 5, 6}, {1, 6, 2},
	{2, 6, 7}, {2, 7, 3},
	{3, 7, 4}, {3, 4, 0},
}

// ViewMatrix maps reference frame coordinates into view space
// (x right, y up, z toward the viewer).
func ViewMatrix(zUp bool) mathutil.Mat3 {
	if zUp {
		return mathutil.Mat3Mul(cameraTilt, zUpDisplay)
	}
	return mathutil.Mat3Mul(cameraTilt, zDownDisplay)
}

// RenderAxes draws the body axes of orientation q (red x, green y, blue z)
// over thin grey reference axes, and returns an Options.Size square image
// with a transparent background. q is normalized before drawing.
func RenderAxes(q mathutil.Quat, opts Options) *image.NRGBA {
	if opts.Size <= 0 {
		opts.Size = 256
	}
	if opts.Supersample <= 0 {
		opts.Supersample = 1
	}

	renderSize := opts.Size * opts.Supersample
	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	view := ViewMatrix(opts.ZUp)
	body := mathutil.Mat3Mul(view, mathutil.QuatToMat3(q.Normalize()))
	proj := newProjection(renderSize)

	for axis := 0; axis < 3; axis++ {
		drawPrism(fb, axisPrism(axis, 1.2, 0.012), view, proj, referenceColor, &lc)
	}
	for axis := 0; axis < 3; axis++ {
		drawPrism(fb, axisPrism(axis, 1.0, 0.045), body, proj, axisColors[axis], &lc)
	}

	img := fb.Image()
	if opts.Supersample > 1 {
		img = postprocess.Downsample(img, opts.Size, opts.Size)
	}

	final := newProjection(opts.Size)
	for axis, label := range opts.Labels {
		if label == "" {
			continue
		}
		tip := final.apply(view.MulVec3(unitAxis(axis).Scale(1.3)))
		DrawLabel(img, label, int(tip[0]), int(tip[1]))
	}

	return img
}

// projection is an orthographic view→screen mapping for a square target.
type projection struct {
	scale float64
	half  float64
}

func newProjection(size int) projection {
	return projection{
		scale: float64(size) / (2 * sceneExtent),
		half:  float64(size) / 2,
	}
}

func (p projection) apply(v mathutil.Vec3) mathutil.Vec3 {
	return mathutil.Vec3{v[0]*p.scale + p.half, -v[1]*p.scale + p.half, v[2]}
}

func unitAxis(axis int) mathutil.Vec3 {
	var v mathutil.Vec3
	v[axis] = 1
	return v
}

// axisPrism builds a square prism of the given length along one axis,
// starting at the origin.
func axisPrism(axis int, length, halfWidth float64) [8]mathutil.Vec3 {
	u := unitAxis(axis).Scale(length)
	p := unitAxis((axis + 1) % 3).Scale(halfWidth)
	r := unitAxis((axis + 2) % 3).Scale(halfWidth)

	base := [4]mathutil.Vec3{
		p.Add(r),
		p.Sub(r),
		p.Scale(-1).Sub(r),
		r.Sub(p),
	}

	var verts [8]mathutil.Vec3
	for i, c := range base {
		verts[i] = c
		verts[i+4] = c.Add(u)
	}
	return verts
}

func drawPrism(fb *FrameBuffer, verts [8]mathutil.Vec3, m mathutil.Mat3, proj projection, col color.NRGBA, lc *LightConfig) {
	var viewVerts, screen [8]mathutil.Vec3
	for i, v := range verts {
		viewVerts[i] = m.MulVec3(v)
		screen[i] = proj.apply(viewVerts[i])
	}

	for _, f := range prismFaces {
		a, b, c := viewVerts[f[0]], viewVerts[f[1]], viewVerts[f[2]]
		normal := b.Sub(a).Cross(c.Sub(a))
		if normal.LenSq() == 0 {
			continue
		}
		tri := [3]mathutil.Vec3{screen[f[0]], screen[f[1]], screen[f[2]]}
		RasterizeTriangle(fb, tri, normal.Normalize(), col, lc)
	}
}
