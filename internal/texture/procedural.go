package texture

// Solid returns a texture of the given size filled with one ARGB color.
func Solid(lw, lh int, argb uint32) *Texture {
	w, h := 1<<lw, 1<<lh
	pix := make([]uint32, w*h)
	for i := range pix {
		pix[i] = argb
	}
	t, err := BuildPixels(pix, lw, lh)
	if err != nil {
		panic(err)
	}
	return t
}

// Checkerboard returns a texture alternating two colors per texel.
func Checkerboard(lw, lh int, a, b uint32) *Texture {
	w, h := 1<<lw, 1<<lh
	pix := make([]uint32, w*h)
	for v := 0; v < h; v++ {
		for u := 0; u < w; u++ {
			c := a
			if (u+v)&1 == 1 {
				c = b
			}
			pix[v*w+u] = c
		}
	}
	t, err := BuildPixels(pix, lw, lh)
	if err != nil {
		panic(err)
	}
	return t
}

// Grid returns a background-colored texture with line-colored texels every
// cell texels in both axes. Useful for eyeballing perspective correction.
func Grid(lw, lh, cell int, line, background uint32) *Texture {
	w, h := 1<<lw, 1<<lh
	pix := make([]uint32, w*h)
	for v := 0; v < h; v++ {
		for u := 0; u < w; u++ {
			c := background
			if u%cell == 0 || v%cell == 0 {
				c = line
			}
			pix[v*w+u] = c
		}
	}
	t, err := BuildPixels(pix, lw, lh)
	if err != nil {
		panic(err)
	}
	return t
}
