package simd

import "testing"

func TestArithSeq(t *testing.T) {
	t.Run("i32", func(t *testing.T) {
		tests := []struct {
			name       string
			base, step int32
			want       I32x8
		}{
			{"zero step", 5, 0, SplatI32(5)},
			{"unit step", 0, 1, I32x8{0, 1, 2, 3, 4, 5, 6, 7}},
			{"negative step", 10, -3, I32x8{10, 7, 4, 1, -2, -5, -8, -11}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if got := ArithSeqI32(tt.base, tt.step); got != tt.want {
					t.Errorf("ArithSeqI32(%d, %d) = %v, want %v", tt.base, tt.step, got, tt.want)
				}
			})
		}
	})

	t.Run("f32", func(t *testing.T) {
		got := ArithSeqF32(1.5, 0.25)
		want := F32x8{1.5, 1.75, 2.0, 2.25, 2.5, 2.75, 3.0, 3.25}
		if got != want {
			t.Errorf("ArithSeqF32(1.5, 0.25) = %v, want %v", got, want)
		}
		if got := ArithSeqF32(2.5, 0); got != SplatF32(2.5) {
			t.Errorf("ArithSeqF32(2.5, 0) = %v, want splat", got)
		}
	})
}

func TestCoverageOps(t *testing.T) {
	a := I32x8{1, -1, 0, 5, -3, 2, -7, 0}
	b := I32x8{1, 2, 0, -5, -3, 2, 7, 0}
	c := I32x8{1, 2, 0, 5, -3, 2, 7, -1}

	got := a.Or(b).Or(c).GE0()
	want := Mask8{true, false, true, false, false, true, false, false}
	if got != want {
		t.Errorf("(a|b|c).GE0() = %v, want %v", got, want)
	}
	if !got.Any() {
		t.Error("Any() = false with set lanes")
	}
	var none Mask8
	if none.Any() {
		t.Error("Any() = true on empty mask")
	}
}

func TestGather(t *testing.T) {
	table := []uint32{10, 20, 30, 40}

	t.Run("all active", func(t *testing.T) {
		idx := I32x8{0, 1, 2, 3, 3, 2, 1, 0}
		mask := Mask8{true, true, true, true, true, true, true, true}
		got := Gather(table, idx, mask)
		want := U32x8{10, 20, 30, 40, 40, 30, 20, 10}
		if got != want {
			t.Errorf("Gather = %v, want %v", got, want)
		}
	})

	t.Run("inactive lanes may be out of range", func(t *testing.T) {
		idx := I32x8{0, 999, -5, 3, 1 << 20, 2, -1, 1}
		mask := Mask8{true, false, false, true, false, true, false, true}
		got := Gather(table, idx, mask)
		want := U32x8{10, 0, 0, 40, 0, 30, 0, 20}
		if got != want {
			t.Errorf("Gather = %v, want %v", got, want)
		}
	})
}

func TestMaskStores(t *testing.T) {
	t.Run("u32 overwrite", func(t *testing.T) {
		dst := []uint32{1, 1, 1, 1, 1, 1, 1, 1}
		MaskStoreU32(dst, Mask8{true, false, true, false, true, false, true, false}, U32x8{9, 9, 9, 9, 9, 9, 9, 9})
		want := []uint32{9, 1, 9, 1, 9, 1, 9, 1}
		for i := range dst {
			if dst[i] != want[i] {
				t.Fatalf("dst = %v, want %v", dst, want)
			}
		}
	})

	t.Run("u32 xor", func(t *testing.T) {
		dst := []uint32{0xF0, 0xF0, 0xF0, 0xF0, 0xF0, 0xF0, 0xF0, 0xF0}
		v := U32x8{0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F}
		MaskXorU32(dst, Mask8{true, true, false, false, true, true, false, false}, v)
		want := []uint32{0xFF, 0xFF, 0xF0, 0xF0, 0xFF, 0xFF, 0xF0, 0xF0}
		for i := range dst {
			if dst[i] != want[i] {
				t.Fatalf("dst = %v, want %v", dst, want)
			}
		}
	})

	t.Run("u16 blend", func(t *testing.T) {
		dst := []uint16{7, 7, 7, 7, 7, 7, 7, 7}
		MaskStoreU16(dst, Mask8{false, true, false, true, false, true, false, true}, U32x8{0x1FFFF, 2, 3, 4, 5, 6, 7, 0xABCD})
		want := []uint16{7, 2, 7, 4, 7, 6, 7, 0xABCD}
		for i := range dst {
			if dst[i] != want[i] {
				t.Fatalf("dst = %v, want %v", dst, want)
			}
		}
	})
}

func TestLoadU16x8(t *testing.T) {
	src := []uint16{0, 1, 0xFF80, 0xFFFF, 42, 7, 8, 9}
	got := LoadU16x8(src)
	want := U32x8{0, 1, 0xFF80, 0xFFFF, 42, 7, 8, 9}
	if got != want {
		t.Errorf("LoadU16x8 = %v, want %v", got, want)
	}
}

func TestSatU16(t *testing.T) {
	v := I32x8{-1, 0, 1, 0xFFFF, 0x10000, 1 << 30, -(1 << 30), 0xFF80}
	got := v.SatU16()
	want := U32x8{0, 0, 1, 0xFFFF, 0xFFFF, 0xFFFF, 0, 0xFF80}
	if got != want {
		t.Errorf("SatU16 = %v, want %v", got, want)
	}
}

func TestApproxRecip(t *testing.T) {
	v := F32x8{1, 2, 4, 0.5, 8, 0.25, 100, 0.01}
	got := ApproxRecip(v)
	for i := range v {
		want := 1.0 / v[i]
		diff := got[i] - want
		if diff < 0 {
			diff = -diff
		}
		// Contract is >= 11 bits of accuracy.
		if diff > want/2048 {
			t.Errorf("lane %d: ApproxRecip(%f) = %f, want within 2^-11 of %f", i, v[i], got[i], want)
		}
	}
}

func TestRoundI(t *testing.T) {
	v := F32x8{0.4, 0.5, 1.5, 2.5, -0.5, -1.5, 2.49, -2.51}
	got := RoundI(v)
	// Ties round to even.
	want := I32x8{0, 0, 2, 2, 0, -2, 2, -3}
	if got != want {
		t.Errorf("RoundI(%v) = %v, want %v", v, got, want)
	}
}
