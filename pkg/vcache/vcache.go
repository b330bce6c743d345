package vcache

import "errors"

// DefaultCacheSize is the simulated cache capacity used when Optimize is
// called with a non-positive cache size. 32 entries matches the FIFO-ish
// post-transform caches of common desktop GPUs; orderings produced for it
// degrade gracefully on both smaller and larger hardware caches.
const DefaultCacheSize = 32

// minCacheSize is the smallest cache the scoring model supports: slots 0-2
// are reserved for the triangle just drawn, so the decay curve needs at
// least one slot behind them.
const minCacheSize = 4

var (
	// ErrInvalidIndexCount is returned by [Optimize] and [ACMR] when the
	// index buffer length is not a multiple of 3. Indices are consumed in
	// triples, one per triangle; a ragged buffer is a contract violation
	// and is rejected rather than truncated.
	ErrInvalidIndexCount = errors.New("index count must be a multiple of 3")

	// ErrInvalidCacheSize is returned by [Optimize] when the requested
	// cache size is between 1 and 3. The scheduler's scoring model gives
	// the three front slots special treatment, so it cannot target a cache
	// smaller than 4. Pass 0 to use [DefaultCacheSize].
	ErrInvalidCacheSize = errors.New("cache size must be at least 4")

	// ErrVertexOutOfRange is returned by [Optimize] when the index buffer
	// references a vertex id >= numVertices. The reference contract leaves
	// this undefined; rejecting it explicitly is cheaper than sizing the
	// adjacency arrays wrong.
	ErrVertexOutOfRange = errors.New("vertex id out of range")
)

// notCached marks a vertex record as absent from the simulated cache.
const notCached = -1

// vertexRec is the per-vertex scheduling state. Records are held in a flat
// array indexed by vertex id and cross-reference the shared adjacency
// array by integer offset.
type vertexRec struct {
	cachePos int32 // current slot in the simulated cache, notCached if absent
	trisLeft int32 // triangles referencing this vertex not yet drawn
	triCount int32 // total triangles referencing this vertex (immutable)
	triStart int32 // offset of this vertex's triangle list in the adjacency array
}

// triangleRec is the per-triangle scheduling state. The vertex ids keep
// the input winding order; GPU face culling depends on it.
type triangleRec struct {
	verts [3]uint32
	drawn bool
}
