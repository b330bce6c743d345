package meshgen

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/matzehuels/vcacheopt/pkg/mesh"
)

// Grid returns a regular triangle grid of w by h cells on the XY plane:
// (w+1)*(h+1) vertices and 2*w*h triangles, each cell split along its
// diagonal. Interior vertices touch six triangles, the valence profile of
// a typical scanned or modelled surface. Triangles are emitted row-major,
// which is already cache-friendly; shuffle the result to make a
// challenging input.
func Grid(w, h int) *mesh.Mesh {
	m := &mesh.Mesh{Name: fmt.Sprintf("grid_%dx%d", w, h)}
	for y := 0; y <= h; y++ {
		for x := 0; x <= w; x++ {
			m.Positions = append(m.Positions, [3]float64{float64(x), float64(y), 0})
		}
	}
	stride := uint32(w + 1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := uint32(y)*stride + uint32(x)
			b := a + 1
			c := a + stride
			d := c + 1
			m.Indices = append(m.Indices, a, b, c, b, d, c)
		}
	}
	return m
}

// Fan returns n triangles sharing vertex 0, with n+1 distinct rim
// vertices on the unit circle. Every triangle misses exactly its one new
// rim vertex once the hub is resident, so a good ordering approaches an
// ACMR of 1/3.
func Fan(n int) *mesh.Mesh {
	m := &mesh.Mesh{Name: fmt.Sprintf("fan_%d", n)}
	m.Positions = append(m.Positions, [3]float64{0, 0, 0})
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n+1)
		m.Positions = append(m.Positions, [3]float64{math.Cos(a), math.Sin(a), 0})
	}
	for i := 0; i < n; i++ {
		m.Indices = append(m.Indices, 0, uint32(i+1), uint32(i+2))
	}
	return m
}

// Strip returns n edge-sharing triangles over n+2 vertices: triangle i is
// (i, i+1, i+2). Consecutive triangles share two vertices, the best case
// for any vertex cache.
func Strip(n int) *mesh.Mesh {
	m := &mesh.Mesh{Name: fmt.Sprintf("strip_%d", n)}
	for i := 0; i < n+2; i++ {
		m.Positions = append(m.Positions, [3]float64{float64(i), float64(i % 2), 0})
	}
	for i := 0; i < n; i++ {
		m.Indices = append(m.Indices, uint32(i), uint32(i+1), uint32(i+2))
	}
	return m
}

// Random returns tris triangles over verts vertices with uniformly random
// ids and positions in the unit cube. There is no guarantee of shared
// edges or even of three distinct corners per triangle; it exists to
// stress the optimizer with unstructured input. Deterministic for a given
// seed.
func Random(tris, verts int, seed int64) *mesh.Mesh {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0xdeadbeef))
	m := &mesh.Mesh{Name: fmt.Sprintf("random_%dt%dv", tris, verts)}
	for i := 0; i < verts; i++ {
		m.Positions = append(m.Positions, [3]float64{rng.Float64(), rng.Float64(), rng.Float64()})
	}
	for i := 0; i < 3*tris; i++ {
		m.Indices = append(m.Indices, uint32(rng.IntN(verts)))
	}
	return m
}

// Shuffle permutes whole triangles of an index buffer in place, keeping
// the three indices of each triangle together and in order. Winding is
// untouched; only locality between triangles is destroyed. Deterministic
// for a given seed. Buffers shorter than two triangles are left as they
// are.
func Shuffle(indices []uint32, seed int64) {
	n := len(indices) / 3
	if n < 2 {
		return
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0xdeadbeef))
	rng.Shuffle(n, func(i, j int) {
		for k := 0; k < 3; k++ {
			indices[i*3+k], indices[j*3+k] = indices[j*3+k], indices[i*3+k]
		}
	})
}
