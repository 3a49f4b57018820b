package raster

import "fds-renderer/internal/mathutil"

// setupGradients solves the 2×2 screen-space system over the two edges
// from v1 and fills in d/dx, d/dy for every linearly-varying attribute.
// RZ, UZ and VZ are linear across the triangle in screen space; 1/RZ is
// not and is never interpolated directly. Returns false for triangles
// degenerate enough to skip.
func (ctx *Context) setupGradients(v1, v2, v3 *Vertex) bool {
	m0 := v2.PX - v1.PX
	m1 := v2.PY - v1.PY
	m2 := v3.PX - v1.PX
	m3 := v3.PY - v1.PY

	det := m0*m3 - m1*m2
	if mathutil.Abs32(det) <= 0.01 {
		return false
	}

	// Inverse of the edge matrix.
	i0 := m3 / det
	i1 := -m1 / det
	i2 := -m2 / det
	i3 := m0 / det

	g := &ctx.grad
	g.drzdx = i0*(v2.RZ-v1.RZ) + i1*(v3.RZ-v1.RZ)
	g.drzdy = i2*(v2.RZ-v1.RZ) + i3*(v3.RZ-v1.RZ)
	g.duzdx = i0*(v2.UZ-v1.UZ) + i1*(v3.UZ-v1.UZ)
	g.duzdy = i2*(v2.UZ-v1.UZ) + i3*(v3.UZ-v1.UZ)
	g.dvzdx = i0*(v2.VZ-v1.VZ) + i1*(v3.VZ-v1.VZ)
	g.dvzdy = i2*(v2.VZ-v1.VZ) + i3*(v3.VZ-v1.VZ)

	g.drdx = i0*(v2.LR-v1.LR) + i1*(v3.LR-v1.LR)
	g.drdy = i2*(v2.LR-v1.LR) + i3*(v3.LR-v1.LR)
	g.dgdx = i0*(v2.LG-v1.LG) + i1*(v3.LG-v1.LG)
	g.dgdy = i2*(v2.LG-v1.LG) + i3*(v3.LG-v1.LG)
	g.dbdx = i0*(v2.LB-v1.LB) + i1*(v3.LB-v1.LB)
	g.dbdy = i2*(v2.LB-v1.LB) + i3*(v3.LB-v1.LB)

	return true
}
