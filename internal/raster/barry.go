package raster

import (
	"fds-renderer/internal/swizzle"
	"fds-renderer/internal/texture"
)

// TheOtherBarry rasterizes one textured, Gouraud-lit face into the
// context's surfaces. The face is triangulated as a fan from vertex 0;
// each triangle gets its own attribute gradients and a tile walk.
// Triangles with |det| ≤ 0.01 are skipped.
//
// This is the HOT PATH entry — no allocations below this call.
func TheOtherBarry(ctx *Context, f *Face, verts []*Vertex, miplevel int) {
	if f.Tex == nil || len(verts) < 3 {
		return
	}
	ctx.bindTexture(f.Tex, miplevel)

	for i := 2; i < len(verts); i++ {
		v1 := verts[0]
		v2 := verts[i-1]
		v3 := verts[i]

		if !ctx.setupGradients(v1, v2, v3) {
			continue
		}
		ctx.rasterizeTriangle(v1, v2, v3)
	}
}

// bindTexture resolves one mip level into the context.
func (ctx *Context) bindTexture(tex *texture.Texture, miplevel int) {
	if miplevel < 0 {
		miplevel = 0
	} else if miplevel >= tex.Levels() {
		miplevel = tex.Levels() - 1
	}

	logW := tex.LSizeX - miplevel
	logH := tex.LSizeY - miplevel

	ti := &ctx.tex
	ti.texels = tex.Mipmaps[miplevel]
	ti.logW = logW
	ti.logH = logH
	ti.uScale = float32(int32(1) << logW)
	ti.vScale = float32(int32(1) << logH)
	ti.umask = int32(1)<<logW - 1
	ti.vmask = int32(1)<<logH - 1
	ti.packedUMask = int32(swizzle.UMask(uint32(logH), uint32(ti.umask)))
}
