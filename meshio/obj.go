// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package meshio loads and saves triangulated meshes in the Wavefront OBJ
// format, the on-disk format used by the uvula CLI.
package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ultimaker/uvula-go/geom"
	"github.com/ultimaker/uvula-go/mesh"
)

// Load reads a single-object triangle mesh from a Wavefront OBJ stream. It
// supports the "v", "vt", and triangulated "f" records, accepting face
// indices in v, v/t, v//n, and v/t/n form; it does not generate normals and
// ignores "vn", "o", "s", "g", "mtllib", and "usemtl" records, since unwrap
// and project only need positions, faces and (optionally) existing UVs.
// The Reader r is expected to be opened and closed by the caller.
func Load(r io.Reader) (mesh.Mesh, error) {
	var verts []geom.Point3F
	var uvs []geom.Point2F
	var faces []mesh.Face
	haveUV := false

	vmap := make(map[string]uint32)
	var outVerts []geom.Point3F
	var outUVs []geom.Point2F

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens := strings.Fields(line)
		switch tokens[0] {
		case "v":
			var x, y, z float32
			if _, err := fmt.Sscanf(line, "v %f %f %f", &x, &y, &z); err != nil {
				return mesh.Mesh{}, fmt.Errorf("meshio: bad vertex on line %d: %s", lineNo, err)
			}
			verts = append(verts, geom.Point3F{X: x, Y: y, Z: z})
		case "vt":
			var u, v float32
			if _, err := fmt.Sscanf(line, "vt %f %f", &u, &v); err != nil {
				return mesh.Mesh{}, fmt.Errorf("meshio: bad texture coordinate on line %d: %s", lineNo, err)
			}
			uvs = append(uvs, geom.Point2F{X: u, Y: v})
			haveUV = true
		case "f":
			if len(tokens) < 4 {
				return mesh.Mesh{}, fmt.Errorf("meshio: face on line %d has fewer than 3 vertices", lineNo)
			}
			if len(tokens) > 4 {
				return mesh.Mesh{}, fmt.Errorf("meshio: face on line %d is not triangulated", lineNo)
			}
			var idx [3]uint32
			for i := 0; i < 3; i++ {
				v, t, err := parseFaceIndex(tokens[i+1])
				if err != nil {
					return mesh.Mesh{}, fmt.Errorf("meshio: bad face on line %d: %s", lineNo, err)
				}
				if v < 0 || v >= len(verts) {
					return mesh.Mesh{}, fmt.Errorf("meshio: face on line %d references out-of-range vertex %d", lineNo, v+1)
				}
				key := fmt.Sprintf("%d/%d", v, t)
				unique, ok := vmap[key]
				if !ok {
					unique = uint32(len(outVerts))
					vmap[key] = unique
					outVerts = append(outVerts, verts[v])
					if t >= 0 && t < len(uvs) {
						outUVs = append(outUVs, uvs[t])
					} else {
						outUVs = append(outUVs, geom.Point2F{})
					}
				}
				idx[i] = unique
			}
			faces = append(faces, mesh.Face{I1: idx[0], I2: idx[1], I3: idx[2]})
		}
	}
	if err := scanner.Err(); err != nil {
		return mesh.Mesh{}, fmt.Errorf("meshio: %s", err)
	}
	if len(outVerts) == 0 || len(faces) == 0 {
		return mesh.Mesh{}, fmt.Errorf("meshio: no triangle mesh found")
	}

	m := mesh.Mesh{Vertices: outVerts, Faces: faces}
	if haveUV {
		m.UV = outUVs
	}
	return m, nil
}

// parseFaceIndex turns one OBJ face-corner token ("v", "v/t", "v//n" or
// "v/t/n") into zero-based vertex and texture-coordinate indices. t is -1
// when the corner carries no texture coordinate.
func parseFaceIndex(token string) (v, t int, err error) {
	parts := strings.Split(token, "/")
	var vi, ti int
	switch len(parts) {
	case 1:
		if _, err = fmt.Sscanf(parts[0], "%d", &vi); err != nil {
			return 0, 0, fmt.Errorf("bad face corner %q", token)
		}
		ti = 0
	case 2:
		if _, err = fmt.Sscanf(parts[0], "%d", &vi); err != nil {
			return 0, 0, fmt.Errorf("bad face corner %q", token)
		}
		if parts[1] == "" {
			ti = 0
		} else if _, err = fmt.Sscanf(parts[1], "%d", &ti); err != nil {
			return 0, 0, fmt.Errorf("bad face corner %q", token)
		}
	case 3:
		if _, err = fmt.Sscanf(parts[0], "%d", &vi); err != nil {
			return 0, 0, fmt.Errorf("bad face corner %q", token)
		}
		if parts[1] == "" {
			ti = 0
		} else if _, err = fmt.Sscanf(parts[1], "%d", &ti); err != nil {
			return 0, 0, fmt.Errorf("bad face corner %q", token)
		}
	default:
		return 0, 0, fmt.Errorf("bad face corner %q", token)
	}
	v = vi - 1
	if ti == 0 {
		t = -1
	} else {
		t = ti - 1
	}
	return v, t, nil
}

// Save writes m to w as a Wavefront OBJ, with uvs (aligned 1:1 with
// m.Vertices) emitted as the "vt" records that make up texture-coord
// channel 0. OBJ has no notion of a named UV channel, so the channel's
// name, "unwrapped", is recorded in a leading comment for tools that care.
func Save(w io.Writer, m mesh.Mesh, uvs []geom.Point2F) error {
	if len(uvs) != 0 && len(uvs) != len(m.Vertices) {
		return fmt.Errorf("meshio: %d UVs for %d vertices", len(uvs), len(m.Vertices))
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# texture channel 0: unwrapped")
	fmt.Fprintln(bw, "o unwrapped")
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, uv := range uvs {
		fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
	}
	for _, f := range m.Faces {
		if len(uvs) != 0 {
			fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", f.I1+1, f.I1+1, f.I2+1, f.I2+1, f.I3+1, f.I3+1)
		} else {
			fmt.Fprintf(bw, "f %d %d %d\n", f.I1+1, f.I2+1, f.I3+1)
		}
	}
	return bw.Flush()
}
