package raster

// tileState is the per-tile launch state for a kernel: edge values at the
// tile origin with their per-pixel and per-row steps, and the attribute
// values extrapolated to the origin.
type tileState struct {
	x, y int

	a0, dadx, dady int32
	b0, dbdx, dbdy int32
	c0, dcdx, dcdy int32

	rz0      float32
	uz0, vz0 float32
	lr0      float32
	lg0      float32
	lb0      float32
}

// rasterizeTriangle walks the 8×8 tiles of the triangle's clamped bounding
// box, conservatively rejects tiles fully outside an edge, and hands the
// survivors to the selected pixel kernel. Gradients must already be set
// up for this triangle.
func (ctx *Context) rasterizeTriangle(v1, v2, v3 *Vertex) {
	tileMx := ctx.clampedX(int(min3f(v1.PX, v2.PX, v3.PX))) / TileSize
	tileMX := ctx.clampedX(int(max3f(v1.PX, v2.PX, v3.PX))) / TileSize
	tileMy := ctx.clampedY(int(min3f(v1.PY, v2.PY, v3.PY))) / TileSize
	tileMY := ctx.clampedY(int(max3f(v1.PY, v2.PY, v3.PY))) / TileSize

	v1x, v1y := toSubpixel(v1.PX), toSubpixel(v1.PY)
	v2x, v2y := toSubpixel(v2.PX), toSubpixel(v2.PY)
	v3x, v3y := toSubpixel(v3.PX), toSubpixel(v3.PY)

	x0 := int32(tileMx*TileSize) << SubpixelBits
	y0 := int32(tileMy*TileSize) << SubpixelBits

	dadx, dady := v2y-v1y, v1x-v2x
	dbdx, dbdy := v3y-v2y, v2x-v3x
	dcdx, dcdy := v1y-v3y, v3x-v1x

	a0 := orient2d(v2x, v2y, v1x, v1y, x0, y0) + fillBias(dadx, dady)
	b0 := orient2d(v3x, v3y, v2x, v2y, x0, y0) + fillBias(dbdx, dbdy)
	c0 := orient2d(v1x, v1y, v3x, v3y, x0, y0) + fillBias(dcdx, dcdy)

	g := &ctx.grad
	for y := tileMy; y <= tileMY; y++ {
		a, b, c := a0, b0, c0
		for x := tileMx; x <= tileMX; x++ {
			// Worst-case edge values over the tile; if even those are
			// negative on some edge the tile is fully outside.
			maxA := a + maxStep(dadx) + maxStep(dady)
			maxB := b + maxStep(dbdx) + maxStep(dbdy)
			maxC := c + maxStep(dcdx) + maxStep(dcdy)

			if maxA|maxB|maxC >= 0 {
				px := float32(x * TileSize)
				py := float32(y * TileSize)
				dx := px - v1.PX
				dy := py - v1.PY

				t := tileState{
					x: x, y: y,
					a0: a, dadx: dadx, dady: dady,
					b0: b, dbdx: dbdx, dbdy: dbdy,
					c0: c, dcdx: dcdx, dcdy: dcdy,
					rz0: v1.RZ + dx*g.drzdx + dy*g.drzdy,
					uz0: v1.UZ + dx*g.duzdx + dy*g.duzdy,
					vz0: v1.VZ + dx*g.dvzdx + dy*g.dvzdy,
					lr0: v1.LR + dx*g.drdx + dy*g.drdy,
					lg0: v1.LG + dx*g.dgdx + dy*g.dgdy,
					lb0: v1.LB + dx*g.dbdx + dy*g.dbdy,
				}

				if ctx.Kernel == Exact {
					ctx.applyExact(&t)
				} else {
					ctx.applyApprox(&t)
				}
			}

			a += TileSize * dadx
			b += TileSize * dbdx
			c += TileSize * dcdx
		}
		a0 += TileSize * dady
		b0 += TileSize * dbdy
		c0 += TileSize * dcdy
	}
}

// maxStep is the positive contribution of one edge step across a tile.
func maxStep(d int32) int32 {
	if d > 0 {
		return d * TileSize
	}
	return 0
}

func min3f(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3f(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
