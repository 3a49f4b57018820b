package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"fds-renderer/internal/mathutil"
)

// Parse reads a Wavefront OBJ subset: v, vt, f, with o/g/usemtl names
// kept only for error messages. Old DOS/Windows exporters write names and
// comments in Windows-1252, so the stream is decoded from that before
// parsing.
func Parse(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	object := ""

	sc := bufio.NewScanner(charmap.Windows1252.NewDecoder().Reader(r))
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(strings.TrimSpace(sc.Text()))
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("scene: line %d: short vertex", line)
			}
			var p mathutil.Vec3
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("scene: line %d: vertex: %w", line, err)
				}
				p[i] = f
			}
			m.Verts = append(m.Verts, p)

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("scene: line %d: short texcoord", line)
			}
			u, err := strconv.ParseFloat(fields[1], 32)
			if err != nil {
				return nil, fmt.Errorf("scene: line %d: texcoord: %w", line, err)
			}
			v, err := strconv.ParseFloat(fields[2], 32)
			if err != nil {
				return nil, fmt.Errorf("scene: line %d: texcoord: %w", line, err)
			}
			// OBJ v runs bottom-up; textures are addressed top-down.
			m.UVs = append(m.UVs, [2]float32{float32(u), 1 - float32(v)})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("scene: line %d: face needs 3+ vertices", line)
			}
			var face Face
			for _, ref := range fields[1:] {
				vi, ti, err := parseRef(ref, len(m.Verts), len(m.UVs))
				if err != nil {
					return nil, fmt.Errorf("scene: line %d (object %q): %w", line, object, err)
				}
				face.VI = append(face.VI, vi)
				face.TI = append(face.TI, ti)
			}
			m.Faces = append(m.Faces, face)

		case "o", "g", "usemtl":
			if len(fields) > 1 {
				object = fields[1]
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scene: read: %w", err)
	}

	m.BuildNormals()
	return m, nil
}

// LoadOBJ reads an OBJ file from disk.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// parseRef parses one face vertex reference "v", "v/vt" or "v/vt/vn",
// resolving negative (relative) indices.
func parseRef(ref string, nv, nt int) (vi, ti int, err error) {
	parts := strings.Split(ref, "/")

	vi, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("face ref %q: %w", ref, err)
	}
	vi = resolveIndex(vi, nv)
	if vi < 0 || vi >= nv {
		return 0, 0, fmt.Errorf("face ref %q: vertex index out of range", ref)
	}

	if len(parts) > 1 && parts[1] != "" {
		ti, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, fmt.Errorf("face ref %q: %w", ref, err)
		}
		ti = resolveIndex(ti, nt)
		if ti < 0 || ti >= nt {
			return 0, 0, fmt.Errorf("face ref %q: texcoord index out of range", ref)
		}
	}

	return vi, ti, nil
}

func resolveIndex(i, n int) int {
	if i < 0 {
		return n + i
	}
	return i - 1
}
