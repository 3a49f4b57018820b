// Package swizzle maps logical (u,v) texel coordinates into block-tiled
// byte offsets so neighbouring texels share cache lines in both axes.
//
// Texels are stored in 4-wide column strips: storage index
//
//	(u&3) | v<<2 | (u>>2)<<(2+vbits)
//
// Two encodings of that index coexist. The scalar encoding (TileU/TileV)
// keeps an 11-bit fraction below the texel bits and spreads the integer
// bits so that a plain add followed by a mask AND performs wrapping
// fixed-point stepping (the carry-trick deltas from TileDU/TileDV set
// fill bits above each field so carries ripple across the gaps). The
// packed encoding (PackedTileU/PackedTileV) drops the fraction and fits
// the same storage index directly in one 32-bit lane for gathers.
package swizzle

import "fds-renderer/internal/simd"

// FracBits is the fixed-point fraction width of scalar-encoding u/v values.
const FracBits = 11

// MaxLogSize bounds texture dimensions to 2048 texels per axis. The scalar
// encoding reserves bits 0–10 for the fraction and bits 11–13 for low texel
// bits and carry fills, which leaves 18 bits above bit 14 for the v field
// and the high u field together: LogWidth+LogHeight must not exceed
// MaxLogSum or the high u bits fall off the top of the word.
const (
	MaxLogSize = 11
	MaxLogSum  = 20
)

// Scalar encoding, fields from bit 0 up:
//
//	u: fraction at [0:11], u&3 at [12:14], u>>2 at [14+vbits:]
//	v: fraction at [0:11], v at [14:14+vbits]
//
// The gaps between fields hold the carry fill bits of the delta forms;
// after the >>12 of a texel fetch the surviving bits line up with Index.

// TileV encodes a fixed-point v into the scalar tiled form.
func TileV(v, vmask uint32) uint32 {
	return (v & 0x7ff) | ((v << 3) & (vmask << 14))
}

// TileDV encodes a per-step v delta. The 0x3800 fill bits let the add
// carry out of the fraction field straight into the V field.
func TileDV(v, vmask uint32) uint32 {
	return TileV(v, vmask) | 0x3800
}

// TileVMask is the AND mask that strips carry fill after a TileDV add.
func TileVMask(vmask uint32) uint32 {
	return 0x7ff | (vmask << 14)
}

// TileU encodes a fixed-point u into the scalar tiled form.
func TileU(u, vbits, umask uint32) uint32 {
	return (u & 0x7ff) | ((u & 0x1800) << 1) | ((u << (1 + vbits)) & ((umask >> 2) << (14 + vbits)))
}

// TileDU encodes a per-step u delta. Bit 11 and the vbits-wide fill at
// bit 14 bridge the two gaps in the U field.
func TileDU(u, vbits, umask uint32) uint32 {
	return TileU(u, vbits, umask) | 0x800 | (((1 << vbits) - 1) << 14)
}

// TileUMask is the AND mask that strips carry fill after a TileDU add.
func TileUMask(vbits, umask uint32) uint32 {
	return 0x37ff | ((umask >> 2) << (14 + vbits))
}

// Packed encoding: no fraction, the storage index split across two lane
// values — u&3 at [0:2] and u>>2 at [2+vbits:] in one, v at [2:2+vbits]
// in the other. Their sum is the Index value directly.

// UMask returns the packed-encoding mask for the high u bits.
func UMask(vbits uint32, umask uint32) uint32 {
	return (umask >> 2) << (2 + vbits)
}

// PackedTileU encodes integer u lanes into the packed tiled form. sm must
// come from UMask for the same texture.
func PackedTileU(u simd.I32x8, vbits uint, sm int32) simd.I32x8 {
	return u.AndS(3).Or(u.ShlS(vbits).AndS(sm))
}

// PackedTileV encodes integer v lanes into the packed tiled form.
func PackedTileV(v simd.I32x8, vmask int32) simd.I32x8 {
	return v.AndS(vmask).ShlS(2)
}

// Index returns the storage index of texel (u,v) for a texture with 2^vbits
// rows. u and v must already be in range.
func Index(u, v, vbits uint32) uint32 {
	return (u & 3) | v<<2 | (u>>2)<<(2+vbits)
}
