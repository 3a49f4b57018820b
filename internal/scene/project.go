package scene

import (
	"math"

	"fds-renderer/internal/mathutil"
	"fds-renderer/internal/raster"
)

// Camera rotates the mesh, pushes it Dist units down +z and projects with
// a pinhole of Focal pixels onto a viewport centered at (width/2,
// height/2).
type Camera struct {
	Rot   mathutil.Mat3
	Dist  float64
	Focal float64
}

// Light is a single directional light with an ambient floor. Dir points
// toward the light.
type Light struct {
	Dir     mathutil.Vec3
	Ambient float64
	Diffuse float64
}

// nearZ is the minimum view-space depth; faces crossing it are dropped
// whole rather than clipped, keeping the rasterizer's RZ > 0 contract.
const nearZ = 0.1

// Project emits one rasterizer vertex slice per face: screen position,
// reciprocal depth, pre-divided texture coordinates and per-vertex
// Gouraud light. Backfacing and near-plane-crossing faces yield nil.
func Project(m *Mesh, cam Camera, li Light, width, height int) [][]*raster.Vertex {
	cx := float64(width) / 2
	cy := float64(height) / 2

	out := make([][]*raster.Vertex, len(m.Faces))

	// Transform once per mesh vertex, then assemble faces.
	view := make([]mathutil.Vec3, len(m.Verts))
	shade := make([]float64, len(m.Verts))
	for i, p := range m.Verts {
		v := cam.Rot.MulVec3(p)
		v[2] += cam.Dist
		view[i] = v

		s := li.Ambient
		if m.Normals != nil {
			n := cam.Rot.MulVec3(m.Normals[i])
			if ndl := n.Dot(li.Dir); ndl > 0 {
				s += ndl * li.Diffuse
			}
		}
		shade[i] = math.Min(s, 1)
	}

	backing := make([]raster.Vertex, 0, len(m.Faces)*4)

	for fi, f := range m.Faces {
		if len(f.VI) < 3 {
			continue
		}

		ok := true
		for _, vi := range f.VI {
			if view[vi][2] < nearZ {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		start := len(backing)
		for k, vi := range f.VI {
			v := view[vi]
			rz := 1 / v[2]
			var u, uvv float64
			if len(m.UVs) > 0 {
				u = float64(m.UVs[f.TI[k]][0])
				uvv = float64(m.UVs[f.TI[k]][1])
			}
			l := float32(shade[vi])
			backing = append(backing, raster.Vertex{
				PX: float32(cx + cam.Focal*v[0]*rz),
				PY: float32(cy + cam.Focal*v[1]*rz),
				RZ: float32(rz),
				UZ: float32(u * rz),
				VZ: float32(uvv * rz),
				LR: l,
				LG: l,
				LB: l,
			})
		}
		face := backing[start:]

		if screenCross(face) >= 0 {
			// Backfacing under the rasterizer's winding convention.
			backing = backing[:start]
			continue
		}

		verts := make([]*raster.Vertex, len(face))
		for k := range face {
			verts[k] = &face[k]
		}
		out[fi] = verts
	}

	return out
}

// screenCross is the z of the screen-space cross product of the first
// fan triangle; front faces are negative with y growing downward.
func screenCross(v []raster.Vertex) float32 {
	ax := v[1].PX - v[0].PX
	ay := v[1].PY - v[0].PY
	bx := v[2].PX - v[0].PX
	by := v[2].PY - v[0].PY
	return ax*by - ay*bx
}

// SelectMip picks the mip level closest to one texel per pixel for a
// projected face.
func SelectMip(verts []*raster.Vertex, f Face, uvs [][2]float32, logW, logH, levels int) int {
	if len(uvs) == 0 {
		return 0
	}
	var screenArea, texArea float64
	n := len(verts)
	w := float64(int(1) << logW)
	h := float64(int(1) << logH)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		screenArea += float64(verts[i].PX)*float64(verts[j].PY) - float64(verts[j].PX)*float64(verts[i].PY)
		ui := float64(uvs[f.TI[i]][0]) * w
		vi := float64(uvs[f.TI[i]][1]) * h
		uj := float64(uvs[f.TI[j]][0]) * w
		vj := float64(uvs[f.TI[j]][1]) * h
		texArea += ui*vj - uj*vi
	}
	screenArea = math.Abs(screenArea)
	texArea = math.Abs(texArea)
	if screenArea < 1e-6 || texArea < 1e-6 {
		return 0
	}

	mip := int(math.Floor(math.Log2(math.Sqrt(texArea/screenArea)) + 0.5))
	if mip < 0 {
		mip = 0
	}
	if mip >= levels {
		mip = levels - 1
	}
	return mip
}
