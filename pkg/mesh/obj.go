package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoTriangles is returned by [ReadOBJ] when the input contains no face
// records at all; an index-buffer tool has nothing to do with a point
// cloud.
var ErrNoTriangles = errors.New("no faces in OBJ input")

// ReadOBJ parses a Wavefront OBJ stream into a [Mesh]. Only v and f
// records contribute; polygons with more than three corners are fan
// triangulated in place, which preserves winding. Face indices may use
// the a, a/b, a//c and a/b/c forms, 1-based or negative (relative to the
// vertices seen so far).
func ReadOBJ(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", line)
			}
			var p [3]float64
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad coordinate %q: %w", line, fields[i+1], err)
				}
				p[i] = f
			}
			m.Positions = append(m.Positions, p)
		case "f":
			if err := m.appendFace(fields[1:], line); err != nil {
				return nil, err
			}
		case "o", "g":
			if len(fields) > 1 && m.Name == "" {
				m.Name = fields[1]
			}
		}
		// vn, vt, mtllib, usemtl, s: irrelevant to index extraction
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(m.Indices) == 0 {
		return nil, ErrNoTriangles
	}
	return m, nil
}

// appendFace resolves one f record to vertex ids and fan-triangulates it.
func (m *Mesh) appendFace(corners []string, line int) error {
	if len(corners) < 3 {
		return fmt.Errorf("line %d: face needs at least 3 corners", line)
	}
	ids := make([]uint32, len(corners))
	for i, c := range corners {
		// Only the position index matters; strip /texco/normal parts.
		if slash := strings.IndexByte(c, '/'); slash >= 0 {
			c = c[:slash]
		}
		n, err := strconv.Atoi(c)
		if err != nil {
			return fmt.Errorf("line %d: bad face index %q: %w", line, c, err)
		}
		switch {
		case n > 0:
			n-- // OBJ indices are 1-based
		case n < 0:
			n += len(m.Positions) // negative indices are relative
		default:
			return fmt.Errorf("line %d: face index must not be 0", line)
		}
		if n < 0 || n >= len(m.Positions) {
			return fmt.Errorf("line %d: face index %s out of range", line, c)
		}
		ids[i] = uint32(n)
	}
	for i := 1; i < len(ids)-1; i++ {
		m.Indices = append(m.Indices, ids[0], ids[i], ids[i+1])
	}
	return nil
}

// ReadOBJFile reads an OBJ file from disk. The mesh name defaults to the
// file path when the file declares no object name.
func ReadOBJFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = path
	}
	return m, nil
}

// WriteOBJ writes the mesh as Wavefront OBJ: one v record per vertex, one
// triangular f record per index triple, in buffer order. Triangle order
// in the output therefore reflects any optimization applied to the index
// buffer.
func WriteOBJ(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)
	if m.Name != "" {
		fmt.Fprintf(bw, "o %s\n", m.Name)
	}
	for _, p := range m.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2])
	}
	for t := 0; t+2 < len(m.Indices); t += 3 {
		fmt.Fprintf(bw, "f %d %d %d\n", m.Indices[t]+1, m.Indices[t+1]+1, m.Indices[t+2]+1)
	}
	return bw.Flush()
}

// WriteOBJFile writes the mesh to path, creating or truncating it.
func WriteOBJFile(path string, m *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteOBJ(f, m); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
