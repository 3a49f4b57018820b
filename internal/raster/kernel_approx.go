package raster

import (
	"math"

	"fds-renderer/internal/swizzle"
)

// Gouraud light fixed point: [0,1] maps to 255·2048 so that chan>>11
// extracts an 8-bit modulation factor.
const lightFix = 255 * 2048

// applyApprox rasterizes one tile without per-pixel division. True
// perspective-correct u/v are evaluated only at the four tile corners;
// inside, the coordinates advance by forward differences directly in
// swizzled space, so each step is an add followed by a mask AND (the
// carry-trick deltas handle the wrap). Under Quadratic interpolation the
// per-row x-deltas additionally pick up the bilinear cross term each row.
func (ctx *Context) applyApprox(t *tileState) {
	quadratic := ctx.Interp == Quadratic
	xorBlend := ctx.Blend == XOR
	ti := &ctx.tex
	g := &ctx.grad

	off := t.y*TileSize*ctx.ColorStride + t.x*TileSize
	zoff := t.y*TileSize*ctx.DepthStride + t.x*TileSize

	a0, b0, c0 := t.a0, t.b0, t.c0

	umask := uint32(ti.umask)
	vmask := uint32(ti.vmask)
	logH := uint32(ti.logH)
	umaskT := swizzle.TileUMask(logH, umask)
	vmaskT := swizzle.TileVMask(vmask)
	fillU := uint32(0x800) | (uint32(1)<<logH-1)<<14
	const fillV = uint32(0x3800)

	rz0 := t.rz0
	zx := rz0 + g.drzdx*TileSize
	zy := rz0 + g.drzdy*TileSize
	zxy := rz0 + (g.drzdx+g.drzdy)*TileSize

	us := 2048 * ti.uScale
	vs := 2048 * ti.vScale

	// True perspective-correct u/v at the tile corners, 11-bit fraction.
	cu00 := int32(t.uz0 / rz0 * us)
	cu10 := int32((t.uz0 + g.duzdx*TileSize) / zx * us)
	cu01 := int32((t.uz0 + g.duzdy*TileSize) / zy * us)
	cu11 := int32((t.uz0 + (g.duzdx+g.duzdy)*TileSize) / zxy * us)

	cv00 := int32(t.vz0 / rz0 * vs)
	cv10 := int32((t.vz0 + g.dvzdx*TileSize) / zx * vs)
	cv01 := int32((t.vz0 + g.dvzdy*TileSize) / zy * vs)
	cv11 := int32((t.vz0 + (g.dvzdx+g.dvzdy)*TileSize) / zxy * vs)

	// Bilinear coefficients: per-pixel x/y steps and the cross term.
	duxRaw := (cu10 - cu00) / TileSize
	duyRaw := (cu01 - cu00) / TileSize
	dvxRaw := (cv10 - cv00) / TileSize
	dvyRaw := (cv01 - cv00) / TileSize

	var ddu, ddv uint32
	if quadratic {
		ddu = swizzle.TileU(uint32((cu11-cu10-cu01+cu00)/(TileSize*TileSize)), logH, umask)
		ddv = swizzle.TileV(uint32((cv11-cv10-cv01+cv00)/(TileSize*TileSize)), vmask)
	}

	u0 := swizzle.TileU(uint32(cu00), logH, umask)
	v0 := swizzle.TileV(uint32(cv00), vmask)
	dux := swizzle.TileDU(uint32(duxRaw), logH, umask)
	dvx := swizzle.TileDV(uint32(dvxRaw), vmask)
	duy := swizzle.TileDU(uint32(duyRaw), logH, umask)
	dvy := swizzle.TileDV(uint32(dvyRaw), vmask)

	// Gouraud corners in light fixed point.
	lr00 := int32(t.lr0 * lightFix)
	lg00 := int32(t.lg0 * lightFix)
	lb00 := int32(t.lb0 * lightFix)
	lr10 := int32((t.lr0 + g.drdx*TileSize) * lightFix)
	lg10 := int32((t.lg0 + g.dgdx*TileSize) * lightFix)
	lb10 := int32((t.lb0 + g.dbdx*TileSize) * lightFix)
	lr01 := int32((t.lr0 + g.drdy*TileSize) * lightFix)
	lg01 := int32((t.lg0 + g.dgdy*TileSize) * lightFix)
	lb01 := int32((t.lb0 + g.dbdy*TileSize) * lightFix)

	dlrx := (lr10 - lr00) / TileSize
	dlgx := (lg10 - lg00) / TileSize
	dlbx := (lb10 - lb00) / TileSize
	dlry := (lr01 - lr00) / TileSize
	dlgy := (lg01 - lg00) / TileSize
	dlby := (lb01 - lb00) / TileSize

	lr0, lg0, lb0 := lr00, lg00, lb00

	for y := 0; y < TileSize; y++ {
		a, b, c := a0, b0, c0
		u, v := u0, v0
		rz := rz0
		lr, lg, lb := lr0, lg0, lb0

		span := ctx.Color[off : off+TileSize]
		zspan := ctx.Depth[zoff : zoff+TileSize]

		for i := 0; i < TileSize; i++ {
			if a|b|c >= 0 {
				q := ctx.quantizeZ(1.0 / rz)
				wz := uint16(q >> 10)
				if wz > zspan[i] {
					zspan[i] = wz

					texel := ti.texels[(u+v)>>12]
					rr := (texel >> 16 & 0xFF) * uint32(lr>>11&0xFF) >> 8
					gg := (texel >> 8 & 0xFF) * uint32(lg>>11&0xFF) >> 8
					bb := (texel & 0xFF) * uint32(lb>>11&0xFF) >> 8
					out := texel&0xFF000000 | rr<<16 | gg<<8 | bb

					if xorBlend {
						span[i] ^= out
					} else {
						span[i] = out
					}
				}
			}

			a += t.dadx
			b += t.dbdx
			c += t.dcdx
			u = (u + dux) & umaskT
			v = (v + dvx) & vmaskT
			rz += g.drzdx
			lr += dlrx
			lg += dlgx
			lb += dlbx
		}

		a0 += t.dady
		b0 += t.dbdy
		c0 += t.dcdy
		u0 = (u0 + duy) & umaskT
		v0 = (v0 + dvy) & vmaskT
		rz0 += g.drzdy
		lr0 += dlry
		lg0 += dlgy
		lb0 += dlby

		if quadratic {
			// Fold the cross term into the x-deltas, restoring the carry
			// fill bits the mask AND strips. Light has no cross term: the
			// Gouraud channels are linear in screen space already.
			dux = (dux+ddu)&umaskT | fillU
			dvx = (dvx+ddv)&vmaskT | fillV
		}

		off += ctx.ColorStride
		zoff += ctx.DepthStride
	}
}

// quantizeZ maps view-space z into the 26-bit wrapped depth range
// (0xFF80·1024) used by the scalar path; the stored 16-bit value is the
// top bits.
func (ctx *Context) quantizeZ(z float32) uint32 {
	const m = 0xFF80 * 1024
	zrem := math.Mod(float64(z)*float64(ctx.ZScale)*1024, m)
	if zrem < 0 {
		zrem += m
	}
	return uint32(m - zrem)
}
