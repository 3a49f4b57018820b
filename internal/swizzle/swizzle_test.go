package swizzle

import (
	"testing"

	"fds-renderer/internal/simd"
)

// texSizes covers square and skewed power-of-two dimensions up to the
// supported maximum.
var texSizes = []struct {
	name         string
	ubits, vbits uint32
}{
	{"4x4", 2, 2},
	{"8x32", 3, 5},
	{"64x64", 6, 6},
	{"256x256", 8, 8},
	{"1024x16", 10, 4},
	{"16x1024", 4, 10},
	{"2048x512", 11, 9},
	{"512x2048", 9, 11},
}

func TestScalarEncodingRoundTrip(t *testing.T) {
	for _, tc := range texSizes {
		t.Run(tc.name, func(t *testing.T) {
			w := uint32(1) << tc.ubits
			h := uint32(1) << tc.vbits
			umask := w - 1
			vmask := h - 1

			// Stride through the full range on big textures to keep the
			// test quick; cover every texel on small ones.
			step := uint32(1)
			if w*h > 1<<16 {
				step = 7
			}
			for v := uint32(0); v < h; v += step {
				for u := uint32(0); u < w; u += step {
					tu := TileU(u<<FracBits, tc.vbits, umask)
					tv := TileV(v<<FracBits, vmask)
					got := (tu + tv) >> 12
					want := Index(u, v, tc.vbits)
					if got != want {
						t.Fatalf("(%d,%d): (TileU+TileV)>>12 = %#x, want %#x", u, v, got, want)
					}
				}
			}
		})
	}
}

func TestPackedEncodingMatchesScalar(t *testing.T) {
	for _, tc := range texSizes {
		t.Run(tc.name, func(t *testing.T) {
			w := int32(1) << tc.ubits
			h := int32(1) << tc.vbits
			sm := int32(UMask(tc.vbits, uint32(w-1)))

			step := int32(1)
			if w*h > 1<<16 {
				step = 5
			}
			for v := int32(0); v < h; v += step {
				for u := int32(0); u < w; u += step {
					tu := PackedTileU(simd.SplatI32(u), uint(tc.vbits), sm)
					tv := PackedTileV(simd.SplatI32(v), h-1)
					got := uint32(tu[0] + tv[0])
					want := Index(uint32(u), uint32(v), tc.vbits)
					if got != want {
						t.Fatalf("(%d,%d): packed = %#x, want %#x", u, v, got, want)
					}
				}
			}
		})
	}
}

func TestPackedEncodingIsPermutation(t *testing.T) {
	// Exhaustive on a skewed mid-size texture: every (u,v) maps to a
	// distinct index in [0, W·H).
	const ubits, vbits = 5, 3
	w := int32(1) << ubits
	h := int32(1) << vbits
	sm := int32(UMask(vbits, uint32(w-1)))

	seen := make([]bool, w*h)
	for v := int32(0); v < h; v++ {
		for u := int32(0); u < w; u++ {
			tu := PackedTileU(simd.SplatI32(u), vbits, sm)
			tv := PackedTileV(simd.SplatI32(v), h-1)
			idx := tu[0] + tv[0]
			if idx < 0 || idx >= w*h {
				t.Fatalf("(%d,%d): index %d out of range [0,%d)", u, v, idx, w*h)
			}
			if seen[idx] {
				t.Fatalf("(%d,%d): index %d hit twice", u, v, idx)
			}
			seen[idx] = true
		}
	}
}

func TestPackedEncodingWraps(t *testing.T) {
	// Out-of-range coordinates must wrap like (u & umask, v & vmask).
	const ubits, vbits = 4, 6
	w := int32(1) << ubits
	h := int32(1) << vbits
	sm := int32(UMask(vbits, uint32(w-1)))

	for _, c := range []struct{ u, v int32 }{
		{w, 0}, {0, h}, {w + 3, h + 5}, {5 * w, 7 * h}, {w - 1, h - 1},
	} {
		tu := PackedTileU(simd.SplatI32(c.u), vbits, sm)
		tv := PackedTileV(simd.SplatI32(c.v), h-1)
		got := uint32(tu[0] + tv[0])
		want := Index(uint32(c.u)&uint32(w-1), uint32(c.v)&uint32(h-1), vbits)
		if got != want {
			t.Errorf("(%d,%d): packed = %#x, want wrapped %#x", c.u, c.v, got, want)
		}
	}
}

func TestCarryTrickStepping(t *testing.T) {
	// Iterating u ← (u + TileDU(du)) & TileUMask for N steps must equal
	// the direct encoding of (u0 + N·du) & umask, fraction included.
	for _, tc := range texSizes {
		t.Run(tc.name, func(t *testing.T) {
			w := uint32(1) << tc.ubits
			h := uint32(1) << tc.vbits
			umask := w - 1
			vmask := h - 1
			fullU := (w << FracBits) - 1
			fullV := (h << FracBits) - 1

			deltas := []uint32{1, 0x7ff, 0x800, 0x801, 3<<FracBits + 129, (w/2)<<FracBits + 1}
			starts := []uint32{0, 0x5a5, (w - 1) << FracBits, (w << FracBits) / 3}

			for _, du := range deltas {
				du &= fullU
				for _, u0 := range starts {
					u0 &= fullU
					u := TileU(u0, tc.vbits, umask)
					step := TileDU(du, tc.vbits, umask)
					mask := TileUMask(tc.vbits, umask)
					for n := uint32(1); n <= 20; n++ {
						u = (u + step) & mask
						want := TileU((u0+n*du)&fullU, tc.vbits, umask)
						if u != want {
							t.Fatalf("u0=%#x du=%#x step %d: got %#x, want %#x", u0, du, n, u, want)
						}
					}
				}
			}

			for _, dv := range deltas {
				dv &= fullV
				for _, v0 := range starts {
					v0 &= fullV
					v := TileV(v0, vmask)
					step := TileDV(dv, vmask)
					mask := TileVMask(vmask)
					for n := uint32(1); n <= 20; n++ {
						v = (v + step) & mask
						want := TileV((v0+n*dv)&fullV, vmask)
						if v != want {
							t.Fatalf("v0=%#x dv=%#x step %d: got %#x, want %#x", v0, dv, n, v, want)
						}
					}
				}
			}
		})
	}
}
