package raster

import (
	"math"
	"testing"

	"fds-renderer/internal/texture"
)

// perspectiveError draws one heavily foreshortened triangle with a
// u-identifying texture and returns the worst texel-space error between
// what each covered pixel sampled and the true perspective-correct u.
func perspectiveError(t *testing.T, kernel KernelKind, interp Interpolation) float64 {
	t.Helper()

	const logW, logH = 8, 2
	w := 1 << logW

	// Each texel's blue byte encodes its own u index.
	pix := make([]uint32, w*4)
	for v := 0; v < 4; v++ {
		for u := 0; u < w; u++ {
			pix[v*w+u] = 0xFF000000 | uint32(u)
		}
	}
	tex, err := texture.BuildPixels(pix, logW, logH)
	if err != nil {
		t.Fatal(err)
	}

	// Strong foreshortening: depth spans 1 to 20 across the triangle.
	v1 := vtx(0, 0, 0.05, 0.02, 0.3, 1)
	v2 := vtx(792, 0, 1.0, 0.9, 0.3, 1)
	v3 := vtx(400, 592, 0.5, 0.45, 0.6, 1)

	fb, ctx := newTarget(800, 600)
	ctx.Kernel = kernel
	ctx.Interp = interp
	tri := renderOrder(v1, v2, v3)
	draw(ctx, tex, tri, 0)

	// Attribute planes in float64 for ground truth.
	m0 := float64(v2.PX - v1.PX)
	m1 := float64(v2.PY - v1.PY)
	m2 := float64(v3.PX - v1.PX)
	m3 := float64(v3.PY - v1.PY)
	det := m0*m3 - m1*m2
	duzdx := (m3*float64(v2.UZ-v1.UZ) - m1*float64(v3.UZ-v1.UZ)) / det
	duzdy := (-m2*float64(v2.UZ-v1.UZ) + m0*float64(v3.UZ-v1.UZ)) / det
	drzdx := (m3*float64(v2.RZ-v1.RZ) - m1*float64(v3.RZ-v1.RZ)) / det
	drzdy := (-m2*float64(v2.RZ-v1.RZ) + m0*float64(v3.RZ-v1.RZ)) / det

	worst := 0.0
	covered := 0
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.Pixel(x, y)
			if c>>24 != 0xFF {
				continue
			}
			covered++

			uSampled := float64(c & 0xFF)
			if kernel == Approximate {
				// Full light still scales the byte by 255/256; undo it.
				uSampled++
			}

			dx := float64(x) - float64(v1.PX)
			dy := float64(y) - float64(v1.PY)
			uz := float64(v1.UZ) + dx*duzdx + dy*duzdy
			rz := float64(v1.RZ) + dx*drzdx + dy*drzdy
			uTrue := uz / rz * float64(w)

			if err := math.Abs(uSampled - uTrue); err > worst {
				worst = err
			}
		}
	}
	if covered < 100000 {
		t.Fatalf("only %d pixels covered; triangle setup broken", covered)
	}
	return worst
}

func TestPerspectiveCorrectness(t *testing.T) {
	// The exact kernel recovers perspective-correct texel coordinates to
	// within a texel everywhere; the affine kernel, exact only at tile
	// corners, visibly does not.
	exactErr := perspectiveError(t, Exact, Quadratic)
	if exactErr > 1.0 {
		t.Errorf("exact kernel texel error = %.2f, want ≤ 1", exactErr)
	}

	affineErr := perspectiveError(t, Approximate, Affine)
	if affineErr <= 1.0 {
		t.Errorf("affine kernel texel error = %.2f; expected it to exceed the exact bound", affineErr)
	}

	quadErr := perspectiveError(t, Approximate, Quadratic)
	if quadErr > affineErr+1 {
		t.Errorf("quadratic interpolation (%.2f) should not be worse than affine (%.2f)", quadErr, affineErr)
	}
}
