package texture

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"fds-renderer/internal/swizzle"
)

// Texture holds a mipmapped, block-tiled texture. Texels are packed ARGB
// (A<<24 | R<<16 | G<<8 | B) and stored in the swizzled layout, so a
// swizzled offset indexes Mipmaps[level] directly. LSizeX and LSizeY are
// the log2 of the base width and height; level k is
// (1<<(LSizeX-k)) × (1<<(LSizeY-k)). Levels narrower than 4 texels are
// stored 4 texels wide with their columns repeated, so their slices are
// longer than width×height.
type Texture struct {
	Mipmaps [][]uint32
	LSizeX  int
	LSizeY  int
}

// Levels returns the number of mip levels.
func (t *Texture) Levels() int {
	return len(t.Mipmaps)
}

// Texel returns the texel at (u,v) of the given level, for tests and
// debugging. u and v must be in range for that level.
func (t *Texture) Texel(level, u, v int) uint32 {
	vbits := uint32(t.LSizeY - level)
	return t.Mipmaps[level][swizzle.Index(uint32(u), uint32(v), vbits)]
}

// Build converts an image into a swizzled mipmapped texture. The image
// must have power-of-two dimensions within the swizzler's supported range;
// anything else is rejected here so the rasterizer core never has to.
func Build(img image.Image) (*Texture, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	lw, ok := log2(w)
	if !ok {
		return nil, fmt.Errorf("texture: width %d is not a power of two", w)
	}
	lh, ok := log2(h)
	if !ok {
		return nil, fmt.Errorf("texture: height %d is not a power of two", h)
	}
	if lw > swizzle.MaxLogSize || lh > swizzle.MaxLogSize || lw+lh > swizzle.MaxLogSum {
		return nil, fmt.Errorf("texture: %dx%d exceeds the swizzled addressing range", w, h)
	}

	base := toNRGBA(img)

	levels := lw
	if lh < levels {
		levels = lh
	}
	levels++

	t := &Texture{
		Mipmaps: make([][]uint32, levels),
		LSizeX:  lw,
		LSizeY:  lh,
	}

	level := base
	for k := 0; k < levels; k++ {
		if k > 0 {
			level = halve(level)
		}
		t.Mipmaps[k] = swizzleLevel(level, uint32(lh-k))
	}

	return t, nil
}

// BuildPixels wraps a row-major ARGB texel slice, swizzling each mip built
// from the base by 2×2 box reduction. Procedural sources use this path to
// avoid a round trip through image.Image.
func BuildPixels(pix []uint32, lw, lh int) (*Texture, error) {
	w, h := 1<<lw, 1<<lh
	if len(pix) != w*h {
		return nil, fmt.Errorf("texture: got %d texels, want %d", len(pix), w*h)
	}
	if lw > swizzle.MaxLogSize || lh > swizzle.MaxLogSize || lw+lh > swizzle.MaxLogSum {
		return nil, fmt.Errorf("texture: %dx%d exceeds the swizzled addressing range", w, h)
	}

	levels := lw
	if lh < levels {
		levels = lh
	}
	levels++

	t := &Texture{
		Mipmaps: make([][]uint32, levels),
		LSizeX:  lw,
		LSizeY:  lh,
	}

	cur := pix
	cw, ch := w, h
	for k := 0; k < levels; k++ {
		if k > 0 {
			cur = boxHalve(cur, cw, ch)
			cw /= 2
			ch /= 2
		}
		// Levels narrower than one 4-wide strip repeat their columns across
		// it, so u&3 still lands on texel u mod width.
		sw4 := max(cw, 4)
		sw := make([]uint32, sw4*ch)
		vbits := uint32(lh - k)
		for v := 0; v < ch; v++ {
			for u := 0; u < sw4; u++ {
				sw[swizzle.Index(uint32(u), uint32(v), vbits)] = cur[v*cw+u%cw]
			}
		}
		t.Mipmaps[k] = sw
	}

	return t, nil
}

// swizzleLevel packs an NRGBA level into swizzled ARGB storage.
func swizzleLevel(img *image.NRGBA, vbits uint32) []uint32 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	sw4 := max(w, 4)
	out := make([]uint32, sw4*h)
	for v := 0; v < h; v++ {
		row := img.Pix[v*img.Stride:]
		for u := 0; u < sw4; u++ {
			p := row[(u%w)*4 : (u%w)*4+4]
			argb := uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
			out[swizzle.Index(uint32(u), uint32(v), vbits)] = argb
		}
	}
	return out
}

// halve downscales an NRGBA image by 2 in each axis, stopping at 1 texel.
func halve(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx()/2, b.Dy()/2
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// boxHalve reduces a row-major ARGB slice by plain 2×2 averaging.
func boxHalve(pix []uint32, w, h int) []uint32 {
	nw, nh := w/2, h/2
	out := make([]uint32, nw*nh)
	for y := 0; y < nh; y++ {
		for x := 0; x < nw; x++ {
			p00 := pix[(2*y)*w+2*x]
			p10 := pix[(2*y)*w+2*x+1]
			p01 := pix[(2*y+1)*w+2*x]
			p11 := pix[(2*y+1)*w+2*x+1]
			var avg uint32
			for shift := uint(0); shift < 32; shift += 8 {
				c := (p00>>shift&0xff + p10>>shift&0xff + p01>>shift&0xff + p11>>shift&0xff + 2) / 4
				avg |= c << shift
			}
			out[y*nw+x] = avg
		}
	}
	return out
}

func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}

func log2(n int) (int, bool) {
	if n <= 0 || n&(n-1) != 0 {
		return 0, false
	}
	l := 0
	for n > 1 {
		n >>= 1
		l++
	}
	return l, true
}
