// Package simd provides 8-lane wide types for the rasterizer inner loops.
//
// The types are fixed-size arrays processed with plain loops so the Go
// compiler can auto-vectorize them (SSE/AVX/NEON). No assembly, no unsafe.
package simd

import "math"

// F32x8 is 8 float32 lanes.
type F32x8 [8]float32

// I32x8 is 8 int32 lanes.
type I32x8 [8]int32

// U32x8 is 8 uint32 lanes.
type U32x8 [8]uint32

// Mask8 is a per-lane predicate.
type Mask8 [8]bool

// SplatF32 broadcasts n to all lanes.
func SplatF32(n float32) F32x8 {
	var r F32x8
	for i := range r {
		r[i] = n
	}
	return r
}

// SplatI32 broadcasts n to all lanes.
func SplatI32(n int32) I32x8 {
	var r I32x8
	for i := range r {
		r[i] = n
	}
	return r
}

// ArithSeqF32 returns [base, base+step, …, base+7·step].
func ArithSeqF32(base, step float32) F32x8 {
	var r F32x8
	for i := range r {
		r[i] = base + float32(i)*step
	}
	return r
}

// ArithSeqI32 returns [base, base+step, …, base+7·step].
func ArithSeqI32(base, step int32) I32x8 {
	var r I32x8
	for i := range r {
		r[i] = base + int32(i)*step
	}
	return r
}

// Add performs element-wise addition.
func (v F32x8) Add(o F32x8) F32x8 {
	var r F32x8
	for i := range v {
		r[i] = v[i] + o[i]
	}
	return r
}

// AddS adds s to every lane.
func (v F32x8) AddS(s float32) F32x8 {
	var r F32x8
	for i := range v {
		r[i] = v[i] + s
	}
	return r
}

// Mul performs element-wise multiplication.
func (v F32x8) Mul(o F32x8) F32x8 {
	var r F32x8
	for i := range v {
		r[i] = v[i] * o[i]
	}
	return r
}

// MulS multiplies every lane by s.
func (v F32x8) MulS(s float32) F32x8 {
	var r F32x8
	for i := range v {
		r[i] = v[i] * s
	}
	return r
}

// Add performs element-wise addition.
func (v I32x8) Add(o I32x8) I32x8 {
	var r I32x8
	for i := range v {
		r[i] = v[i] + o[i]
	}
	return r
}

// AddS adds s to every lane.
func (v I32x8) AddS(s int32) I32x8 {
	var r I32x8
	for i := range v {
		r[i] = v[i] + s
	}
	return r
}

// Sub performs element-wise subtraction.
func (v I32x8) Sub(o I32x8) I32x8 {
	var r I32x8
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}

// Or performs element-wise bitwise OR.
func (v I32x8) Or(o I32x8) I32x8 {
	var r I32x8
	for i := range v {
		r[i] = v[i] | o[i]
	}
	return r
}

// And performs element-wise bitwise AND.
func (v I32x8) And(o I32x8) I32x8 {
	var r I32x8
	for i := range v {
		r[i] = v[i] & o[i]
	}
	return r
}

// AndS ANDs every lane with s.
func (v I32x8) AndS(s int32) I32x8 {
	var r I32x8
	for i := range v {
		r[i] = v[i] & s
	}
	return r
}

// ShlS shifts every lane left by n bits.
func (v I32x8) ShlS(n uint) I32x8 {
	var r I32x8
	for i := range v {
		r[i] = v[i] << n
	}
	return r
}

// GE0 returns a mask of lanes with a non-negative value.
func (v I32x8) GE0() Mask8 {
	var m Mask8
	for i := range v {
		m[i] = v[i] >= 0
	}
	return m
}

// And combines two masks lane-wise.
func (m Mask8) And(o Mask8) Mask8 {
	var r Mask8
	for i := range m {
		r[i] = m[i] && o[i]
	}
	return r
}

// Any reports whether any lane is set.
func (m Mask8) Any() bool {
	return m[0] || m[1] || m[2] || m[3] || m[4] || m[5] || m[6] || m[7]
}

// ApproxRecip returns a per-lane reciprocal approximation. Callers require
// at least 11 bits of accuracy; a full-precision divide satisfies that on
// every target, so no Newton-Raphson refinement step is needed.
func ApproxRecip(v F32x8) F32x8 {
	var r F32x8
	for i := range v {
		r[i] = 1.0 / v[i]
	}
	return r
}

// RoundI converts each lane to the nearest integer, ties to even. This
// matches the default x86 rounding mode used by hardware float→int
// conversion.
func RoundI(v F32x8) I32x8 {
	var r I32x8
	for i := range v {
		r[i] = int32(math.RoundToEven(float64(v[i])))
	}
	return r
}

// SatU16 clamps each lane into the unsigned 16-bit range.
func (v I32x8) SatU16() U32x8 {
	var r U32x8
	for i := range v {
		x := v[i]
		if x < 0 {
			x = 0
		} else if x > 0xFFFF {
			x = 0xFFFF
		}
		r[i] = uint32(x)
	}
	return r
}

// Gather reads table[idx[i]] for every lane where mask[i] is set; inactive
// lanes yield 0. Inactive-lane indices may be out of range.
func Gather(table []uint32, idx I32x8, mask Mask8) U32x8 {
	var r U32x8
	for i := range idx {
		if mask[i] {
			r[i] = table[idx[i]]
		}
	}
	return r
}

// Sub performs element-wise subtraction.
func (v U32x8) Sub(o U32x8) U32x8 {
	var r U32x8
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}

// Gt returns a mask of lanes where v > o.
func (v U32x8) Gt(o U32x8) Mask8 {
	var m Mask8
	for i := range v {
		m[i] = v[i] > o[i]
	}
	return m
}

// MaskStoreU32 writes the active lanes of v into dst[0:8].
func MaskStoreU32(dst []uint32, mask Mask8, v U32x8) {
	_ = dst[7]
	for i := range v {
		if mask[i] {
			dst[i] = v[i]
		}
	}
}

// MaskXorU32 XORs the active lanes of v into dst[0:8].
func MaskXorU32(dst []uint32, mask Mask8, v U32x8) {
	_ = dst[7]
	for i := range v {
		if mask[i] {
			dst[i] ^= v[i]
		}
	}
}

// LoadU16x8 zero-extends 8 uint16 values into 32-bit lanes.
func LoadU16x8(src []uint16) U32x8 {
	_ = src[7]
	var r U32x8
	for i := range r {
		r[i] = uint32(src[i])
	}
	return r
}

// MaskStoreU16 narrows the active lanes of v to 16 bits and blends them
// into dst[0:8], leaving inactive lanes untouched.
func MaskStoreU16(dst []uint16, mask Mask8, v U32x8) {
	_ = dst[7]
	for i := range v {
		if mask[i] {
			dst[i] = uint16(v[i])
		}
	}
}
