package raster

import "fds-renderer/internal/texture"

// Vertex is one screen-space vertex as produced by the geometry pipeline:
// pixel-space position, reciprocal depth, perspective texture coordinates
// pre-divided by z, and linear light in [0,1] per channel. RZ must be
// positive; the feeder clips before projecting.
type Vertex struct {
	PX, PY float32
	RZ     float32 // 1/z
	UZ, VZ float32 // u/z, v/z
	LR     float32
	LG     float32
	LB     float32
}

// Face binds a polygon to its texture.
type Face struct {
	Tex *texture.Texture
}

// KernelKind selects the pixel kernel for a draw call.
type KernelKind int

const (
	// Exact evaluates true perspective-correct texture coordinates per
	// pixel, eight pixels at a time.
	Exact KernelKind = iota
	// Approximate interpolates texture coordinates in swizzled space with
	// forward differences, one pixel at a time.
	Approximate
)

// Interpolation selects how the Approximate kernel steps u/v inside a tile.
type Interpolation int

const (
	// Quadratic adds a per-tile second-order correction to the affine
	// interpolants, tracking perspective much more closely.
	Quadratic Interpolation = iota
	// Affine uses first-order forward differences only.
	Affine
)

// BlendMode selects how passing pixels are written.
type BlendMode int

const (
	Overwrite BlendMode = iota
	XOR
)

// Context carries everything a draw call needs: the two destination
// surfaces with their strides, the viewport, the depth scale, the kernel
// selection, and the per-call texture binding and per-triangle gradients.
// Construct one per frame and reuse it across faces.
type Context struct {
	Color       []uint32
	ColorStride int
	Depth       []uint16
	DepthStride int

	XRes, YRes int

	// ZScale maps view-space z to the 16-bit depth range.
	ZScale float32

	Kernel KernelKind
	Interp Interpolation
	Blend  BlendMode

	tex  texInfo
	grad gradients
}

// texInfo is the per-draw-call texture binding, resolved to one mip level.
type texInfo struct {
	texels         []uint32
	logW, logH     int
	uScale, vScale float32
	umask, vmask   int32
	packedUMask    int32
}

// gradients are the screen-space d/dx, d/dy of the linearly-varying
// attributes, solved per triangle.
type gradients struct {
	drzdx, drzdy float32
	duzdx, duzdy float32
	dvzdx, dvzdy float32
	drdx, drdy   float32
	dgdx, dgdy   float32
	dbdx, dbdy   float32
}

// NewContext builds a draw context targeting fb.
func NewContext(fb *FrameBuffer, zscale float32) *Context {
	return &Context{
		Color:       fb.Color,
		ColorStride: fb.ColorStride,
		Depth:       fb.Depth,
		DepthStride: fb.DepthStride,
		XRes:        fb.Width,
		YRes:        fb.Height,
		ZScale:      zscale,
	}
}

func (ctx *Context) clampedX(x int) int {
	return min(max(x, 0), ctx.XRes-1)
}

func (ctx *Context) clampedY(y int) int {
	return min(max(y, 0), ctx.YRes-1)
}
