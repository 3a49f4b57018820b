package scene

import "fds-renderer/internal/mathutil"

// Mesh is a polygon soup: positions, texture coordinates and faces that
// index both. Faces may have any vertex count ≥ 3; the rasterizer fans
// them from vertex 0.
type Mesh struct {
	Verts   []mathutil.Vec3
	UVs     [][2]float32
	Normals []mathutil.Vec3 // per vertex, filled by BuildNormals
	Faces   []Face
}

// Face indexes the mesh arrays. VI and TI run in parallel.
type Face struct {
	VI []int
	TI []int
}

// BuildNormals computes smooth per-vertex normals by area-weighted
// averaging of adjacent face normals.
func (m *Mesh) BuildNormals() {
	m.Normals = make([]mathutil.Vec3, len(m.Verts))
	for _, f := range m.Faces {
		if len(f.VI) < 3 {
			continue
		}
		p0 := m.Verts[f.VI[0]]
		p1 := m.Verts[f.VI[1]]
		p2 := m.Verts[f.VI[2]]
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		for _, vi := range f.VI {
			m.Normals[vi] = m.Normals[vi].Add(n)
		}
	}
	for i := range m.Normals {
		m.Normals[i] = m.Normals[i].Normalize()
	}
}

// Cube returns a cube spanning -1..1 on each axis with full-texture UVs
// on every face, wound so that outward faces are front-facing after
// projection.
func Cube() *Mesh {
	m := &Mesh{
		Verts: []mathutil.Vec3{
			{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
			{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
		},
		UVs: [][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	}
	quads := [][4]int{
		{0, 3, 2, 1}, // back
		{5, 6, 7, 4}, // front
		{4, 7, 3, 0}, // left
		{1, 2, 6, 5}, // right
		{4, 0, 1, 5}, // bottom
		{3, 7, 6, 2}, // top
	}
	for _, q := range quads {
		m.Faces = append(m.Faces, Face{
			VI: []int{q[0], q[1], q[2], q[3]},
			TI: []int{0, 1, 2, 3},
		})
	}
	m.BuildNormals()
	return m
}
