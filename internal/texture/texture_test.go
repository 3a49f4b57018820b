package texture

import (
	"image"
	"testing"
)

func TestBuildPixelsRoundTrip(t *testing.T) {
	const lw, lh = 4, 3
	w, h := 1<<lw, 1<<lh
	pix := make([]uint32, w*h)
	for v := 0; v < h; v++ {
		for u := 0; u < w; u++ {
			pix[v*w+u] = uint32(v)<<16 | uint32(u)
		}
	}

	tex, err := BuildPixels(pix, lw, lh)
	if err != nil {
		t.Fatalf("BuildPixels: %v", err)
	}

	for v := 0; v < h; v++ {
		for u := 0; u < w; u++ {
			if got := tex.Texel(0, u, v); got != pix[v*w+u] {
				t.Fatalf("texel (%d,%d) = %#x, want %#x", u, v, got, pix[v*w+u])
			}
		}
	}
}

func TestBuildMipChain(t *testing.T) {
	tex, err := BuildPixels(make([]uint32, 32*8), 5, 3)
	if err != nil {
		t.Fatalf("BuildPixels: %v", err)
	}
	// Chain stops when the smaller axis reaches one texel.
	if got, want := tex.Levels(), 4; got != want {
		t.Fatalf("Levels() = %d, want %d", got, want)
	}
	for k := 0; k < tex.Levels(); k++ {
		want := (32 >> k) * (8 >> k)
		if len(tex.Mipmaps[k]) != want {
			t.Errorf("level %d has %d texels, want %d", k, len(tex.Mipmaps[k]), want)
		}
	}
}

func TestBuildMipAveraging(t *testing.T) {
	// 2x2 base of solid gray quadrant values averages into one texel.
	pix := []uint32{
		0xFF000000, 0xFF404040,
		0xFF808080, 0xFFC0C0C0,
	}
	tex, err := BuildPixels(pix, 1, 1)
	if err != nil {
		t.Fatalf("BuildPixels: %v", err)
	}
	if got := tex.Texel(1, 0, 0); got != 0xFF606060 {
		t.Errorf("mip texel = %#x, want 0xFF606060", got)
	}
}

func TestBuildRejectsBadDims(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"not pow2 width", 48, 32},
		{"not pow2 height", 32, 50},
		{"too wide", 4096, 8},
		{"too many total bits", 2048, 2048},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, tt.w, tt.h))
			if _, err := Build(img); err == nil {
				t.Errorf("Build(%dx%d) succeeded, want error", tt.w, tt.h)
			}
		})
	}
}

func TestBuildFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			i := y*img.Stride + x*4
			img.Pix[i] = uint8(x * 16)   // R
			img.Pix[i+1] = uint8(y * 16) // G
			img.Pix[i+2] = 0x20          // B
			img.Pix[i+3] = 0xFF          // A
		}
	}

	tex, err := Build(img)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if tex.LSizeX != 3 || tex.LSizeY != 3 {
		t.Fatalf("LSize = (%d,%d), want (3,3)", tex.LSizeX, tex.LSizeY)
	}
	if got, want := tex.Texel(0, 2, 5), uint32(0xFF205020); got != want {
		t.Errorf("texel (2,5) = %#x, want %#x", got, want)
	}
}
