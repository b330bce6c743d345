// Package vcache reorders triangle index buffers for GPU post-transform
// vertex cache efficiency.
//
// # Overview
//
// GPUs keep a small cache of recently transformed vertices. When an index
// buffer references a vertex that is still resident, the vertex shader run
// is skipped entirely. Triangle order therefore has a large effect on
// rendering cost even though it changes nothing about the mesh itself.
//
// This package implements Tom Forsyth's linear-speed vertex cache
// optimization: a greedy scheduler that simulates a bounded LRU cache,
// scores every eligible triangle by the cache positions of its vertices
// plus a valence bonus, and emits triangles one at a time. Only the order
// of triangles changes; vertex data, index values within each triangle,
// and winding order are all preserved.
//
// # Basic Usage
//
// [Optimize] rewrites the caller's index buffer in place; [ACMR] measures
// the quality of any ordering without modifying it:
//
//	before, _ := vcache.ACMR(indices, 32)
//	if err := vcache.Optimize(indices, numVertices, 32); err != nil {
//	    return err
//	}
//	after, _ := vcache.ACMR(indices, 32)
//
// Indices are grouped in consecutive triples, one triple per triangle.
// The numVertices argument must be one past the highest vertex id the
// buffer references; every id is validated against it.
//
// # Scoring Model
//
// Each scheduling step scores the vertices currently in the simulated
// cache. The three front slots carry a flat bonus (they belong to the
// triangle just drawn, so reusing them is free), deeper slots decay
// smoothly toward zero, and every vertex earns a valence bonus that grows
// as its remaining triangle count shrinks, since finishing a nearly
// exhausted vertex frees its cache slot for good. A triangle's score is the sum of
// its cached vertices' scores; the highest-scoring triangle is drawn and
// its vertices move to the cache front.
//
// # Measuring Results
//
// [ACMR] streams an index sequence through an independent fixed-size cache
// and reports the fraction of indices that missed. The simulation inserts
// on miss only; hits do not refresh an entry's position. This is a lighter
// approximation than true LRU, kept deliberately so that reported ratios
// are comparable with the reference implementation. Values range over
// (0, 1]: 1.0 means every index was transformed, 1/3 is the floor for a
// perfectly cached closed strip (one new vertex per triangle).
//
// # Concurrency
//
// Both operations are pure CPU-bound batch computations with no global
// state. [Optimize] requires exclusive access to its buffer for the call's
// duration; distinct buffers can be processed in parallel freely.
package vcache
