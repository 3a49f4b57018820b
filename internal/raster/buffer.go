package raster

import "image"

// FrameBuffer holds the two render targets as flat slices: packed ARGB
// color and a 16-bit depth buffer where larger means closer. Strides are
// in elements, not bytes. Dimensions are always multiples of TileSize so
// the tile kernels can write full 8-pixel spans without clipping.
type FrameBuffer struct {
	Width  int
	Height int

	Color       []uint32
	ColorStride int

	Depth       []uint16
	DepthStride int
}

// NewFrameBuffer allocates a cleared framebuffer, rounding the dimensions
// up to the next multiple of TileSize.
func NewFrameBuffer(w, h int) *FrameBuffer {
	w = (w + TileSize - 1) &^ (TileSize - 1)
	h = (h + TileSize - 1) &^ (TileSize - 1)
	return &FrameBuffer{
		Width:       w,
		Height:      h,
		Color:       make([]uint32, w*h),
		ColorStride: w,
		Depth:       make([]uint16, w*h),
		DepthStride: w,
	}
}

// Clear resets the color buffer to the given ARGB value and the depth
// buffer to 0 (farthest).
func (fb *FrameBuffer) Clear(argb uint32) {
	for i := range fb.Color {
		fb.Color[i] = argb
	}
	for i := range fb.Depth {
		fb.Depth[i] = 0
	}
}

// Pixel returns the color at (x, y), for tests and debugging.
func (fb *FrameBuffer) Pixel(x, y int) uint32 {
	return fb.Color[y*fb.ColorStride+x]
}

// DepthAt returns the depth value at (x, y).
func (fb *FrameBuffer) DepthAt(x, y int) uint16 {
	return fb.Depth[y*fb.DepthStride+x]
}

// ToNRGBA converts the packed ARGB color buffer to an NRGBA image for
// encoding.
func (fb *FrameBuffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		row := fb.Color[y*fb.ColorStride : y*fb.ColorStride+fb.Width]
		out := img.Pix[y*img.Stride:]
		for x, c := range row {
			out[x*4] = uint8(c >> 16)
			out[x*4+1] = uint8(c >> 8)
			out[x*4+2] = uint8(c)
			out[x*4+3] = uint8(c >> 24)
		}
	}
	return img
}
