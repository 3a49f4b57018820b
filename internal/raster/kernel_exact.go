package raster

import (
	"fds-renderer/internal/simd"
	"fds-renderer/internal/swizzle"
)

// applyExact rasterizes one tile with true perspective correction: each
// 1×8 row is evaluated as 8 lanes — edge coverage, reciprocal of the
// interpolated 1/z, depth test, packed swizzled texel gather and masked
// stores. Lighting is not applied on this path.
func (ctx *Context) applyExact(t *tileState) {
	ti := &ctx.tex
	g := &ctx.grad

	off := t.y*TileSize*ctx.ColorStride + t.x*TileSize
	zoff := t.y*TileSize*ctx.DepthStride + t.x*TileSize

	pa := simd.ArithSeqI32(t.a0, t.dadx)
	pb := simd.ArithSeqI32(t.b0, t.dbdx)
	pc := simd.ArithSeqI32(t.c0, t.dcdx)

	prz := simd.ArithSeqF32(t.rz0, g.drzdx)
	puz := simd.ArithSeqF32(t.uz0, g.duzdx)
	pvz := simd.ArithSeqF32(t.vz0, g.dvzdx)

	zmax := simd.SplatI32(0xFF80)

	for y := 0; y < TileSize; y++ {
		mask := pa.Or(pb).Or(pc).GE0()
		if mask.Any() {
			span := ctx.Color[off : off+TileSize]
			zspan := ctx.Depth[zoff : zoff+TileSize]

			pz := simd.ApproxRecip(prz)

			zCand := zmax.Sub(simd.RoundI(pz.MulS(ctx.ZScale))).SatU16()
			zOld := simd.LoadU16x8(zspan)
			mask = mask.And(zCand.Gt(zOld))

			if mask.Any() {
				simd.MaskStoreU16(zspan, mask, zCand)

				u := simd.RoundI(puz.Mul(pz).MulS(ti.uScale))
				v := simd.RoundI(pvz.Mul(pz).MulS(ti.vScale))

				tu := swizzle.PackedTileU(u, uint(ti.logH), ti.packedUMask)
				tv := swizzle.PackedTileV(v, ti.vmask)

				samples := simd.Gather(ti.texels, tu.Add(tv), mask)

				if ctx.Blend == XOR {
					simd.MaskXorU32(span, mask, samples)
				} else {
					simd.MaskStoreU32(span, mask, samples)
				}
			}
		}

		pa = pa.AddS(t.dady)
		pb = pb.AddS(t.dbdy)
		pc = pc.AddS(t.dcdy)

		prz = prz.AddS(g.drzdy)
		puz = puz.AddS(g.duzdy)
		pvz = pvz.AddS(g.dvzdy)

		off += ctx.ColorStride
		zoff += ctx.DepthStride
	}
}
