package mesh

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidIndexCount is returned by [Mesh.Validate] when the index
	// buffer length is not a multiple of 3.
	ErrInvalidIndexCount = errors.New("index count must be a multiple of 3")

	// ErrIndexOutOfRange is returned by [Mesh.Validate] when an index
	// references a vertex the mesh does not have.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Mesh is a triangle mesh: vertex positions plus a flat index buffer with
// three consecutive indices per triangle. The winding order of each
// triangle is meaningful and preserved by every operation in this module.
type Mesh struct {
	Name      string
	Positions [][3]float64
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Positions) }

// TriangleCount returns the number of triangles described by the index
// buffer. The remainder of a ragged buffer is ignored; use [Mesh.Validate]
// to reject ragged buffers outright.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Validate checks that the index buffer is a whole number of triangles
// and that every index references an existing vertex. Returns
// ErrInvalidIndexCount or ErrIndexOutOfRange.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidIndexCount, len(m.Indices))
	}
	for _, id := range m.Indices {
		if int(id) >= len(m.Positions) {
			return fmt.Errorf("%w: id %d with %d vertices", ErrIndexOutOfRange, id, len(m.Positions))
		}
	}
	return nil
}

// Clone returns a deep copy of the mesh. Useful for before/after
// comparisons around in-place optimization.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Name:      m.Name,
		Positions: slices.Clone(m.Positions),
		Indices:   slices.Clone(m.Indices),
	}
}
