package vcache

import (
	"fmt"
	"math"
)

// Scoring constants from Forsyth's published heuristic. The values are
// hand-tuned against real meshes; changing them changes output orderings.
const (
	frontSlotScore    = 0.75 // flat bonus for slots 0-2 (vertices of the last triangle)
	positionDecayPow  = 1.5  // exponent of the decay curve over slots 3..cacheSize-1
	valenceBoostScale = 2.0
	valenceBoostPow   = -0.5
)

// Optimize reorders the triangles of indices in place so that a GPU
// post-transform vertex cache of the given size suffers as few misses as
// possible. Indices are grouped in consecutive triples, one triple per
// triangle; only whole triples move, and the three ids within each triple
// keep their original order.
//
// numVertices must be one past the highest vertex id the buffer
// references. cacheSize <= 0 selects [DefaultCacheSize].
//
// Buffers with at most 3 indices or at most 3 vertices are too small to
// benefit and are left untouched (no-op, nil error, no allocation).
//
// Returns [ErrInvalidIndexCount], [ErrInvalidCacheSize] or
// [ErrVertexOutOfRange] on contract violations; the buffer is never
// modified when an error is returned. Runs in near-linear time in mesh
// size for realistic cache sizes.
func Optimize(indices []uint32, numVertices, cacheSize int) error {
	if len(indices)%3 != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidIndexCount, len(indices))
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if cacheSize < minCacheSize {
		return fmt.Errorf("%w: got %d", ErrInvalidCacheSize, cacheSize)
	}
	if len(indices) <= 3 || numVertices <= 3 {
		return nil
	}

	verts, adj, err := buildAdjacency(indices, numVertices)
	if err != nil {
		return err
	}

	tris := make([]triangleRec, len(indices)/3)
	for t := range tris {
		copy(tris[t].verts[:], indices[t*3:t*3+3])
	}

	s := scheduler{
		verts:     verts,
		adj:       adj,
		tris:      tris,
		cache:     make([]uint32, cacheSize),
		slotScore: make([]float64, cacheSize),
		shifted:   make([]uint32, cacheSize),
	}
	s.run(indices)
	return nil
}

// scheduler holds the scratch state of one Optimize call. Everything here
// is allocated per call and released when the call returns.
type scheduler struct {
	verts []vertexRec
	adj   []int32
	tris  []triangleRec

	// cache[:used] is the simulated LRU cache, front = most recently used.
	// Occupancy only ever grows, so the occupied prefix stays compact and
	// no in-band empty marker is needed.
	cache []uint32
	used  int

	slotScore []float64 // per-slot score, recomputed every iteration
	shifted   []uint32  // scratch for the cache shift in draw
}

// run draws every triangle exactly once, writing the chosen order into
// out. Termination is structural: each iteration drains one undrawn
// triangle.
func (s *scheduler) run(out []uint32) {
	for n := range s.tris {
		s.scoreSlots()
		best := s.bestCachedTriangle()
		if best < 0 {
			best = s.bestRemainingTriangle()
		}
		s.draw(best, out[n*3:n*3+3])
	}
}

// scoreSlots computes the per-slot vertex scores for the current cache
// contents. Slots 0-2 get a flat bonus: those vertices belong to the
// triangle just drawn, so a triangle reusing them transforms nothing new.
// Deeper slots decay smoothly to zero as they approach eviction. On top
// of the positional term, each vertex earns a valence bonus that grows as
// its remaining triangle count shrinks.
func (s *scheduler) scoreSlots() {
	for i := 0; i < s.used; i++ {
		var score float64
		if i < 3 {
			score = frontSlotScore
		} else {
			score = math.Pow(1-float64(i-3)/float64(len(s.cache)-3), positionDecayPow)
		}
		if left := s.verts[s.cache[i]].trisLeft; left > 0 {
			score += valenceBoostScale * math.Pow(float64(left), valenceBoostPow)
		}
		s.slotScore[i] = score
	}
}

// bestCachedTriangle scans the undrawn triangles adjacent to cached
// vertices and returns the highest-scoring one, or -1 if no cached vertex
// has an undrawn triangle left. A triangle's score is the sum of the slot
// scores of its cached vertices; uncached vertices contribute nothing.
// Ties keep the first candidate found (cache slot ascending, then
// adjacency order).
func (s *scheduler) bestCachedTriangle() int {
	best, bestScore := -1, 0.0
	for i := 0; i < s.used; i++ {
		v := &s.verts[s.cache[i]]
		if v.trisLeft == 0 {
			continue
		}
		for _, t := range s.adj[v.triStart : v.triStart+v.triCount] {
			if s.tris[t].drawn {
				continue
			}
			var score float64
			for _, tv := range s.tris[t].verts {
				if p := s.verts[tv].cachePos; p != notCached {
					score += s.slotScore[p]
				}
			}
			if best < 0 || score > bestScore {
				best, bestScore = int(t), score
			}
		}
	}
	return best
}

// bestRemainingTriangle is the fallback when the cache holds no vertex of
// an eligible triangle (always the case for the very first draw). It
// scans all undrawn triangles and scores each by valence bonus alone.
//
// Note the >= comparison: on ties the last candidate wins, unlike the
// cached path's first-wins >. The asymmetry is kept on purpose to produce
// byte-identical orderings to the reference implementation.
func (s *scheduler) bestRemainingTriangle() int {
	best, bestScore := -1, -1.0
	for t := range s.tris {
		if s.tris[t].drawn {
			continue
		}
		var score float64
		for _, v := range s.tris[t].verts {
			if left := s.verts[v].trisLeft; left > 0 {
				score += valenceBoostScale * math.Pow(float64(left), valenceBoostPow)
			}
		}
		if score >= bestScore {
			best, bestScore = t, score
		}
	}
	return best
}

// draw emits triangle t into out and updates all scheduling state: the
// triangle's vertices take cache slots 0-2 in winding order, previously
// cached vertices shift back preserving relative order, anything pushed
// past capacity is evicted, and the three vertices' remaining-triangle
// counters drop by one.
func (s *scheduler) draw(t int, out []uint32) {
	tri := &s.tris[t]
	tri.drawn = true
	copy(out, tri.verts[:])

	// Shift survivors behind the three front slots. Reads the old cache
	// completely before the front is overwritten below.
	pos := 3
	for i := 0; i < s.used; i++ {
		v := s.cache[i]
		if v == tri.verts[0] || v == tri.verts[1] || v == tri.verts[2] {
			continue
		}
		if pos < len(s.cache) {
			s.shifted[pos] = v
			pos++
		} else {
			s.verts[v].cachePos = notCached // evicted
		}
	}

	for k, v := range tri.verts {
		s.cache[k] = v
		s.verts[v].cachePos = int32(k)
	}
	copy(s.cache[3:pos], s.shifted[3:pos])
	for i := 3; i < pos; i++ {
		s.verts[s.cache[i]].cachePos = int32(i)
	}
	s.used = pos

	for _, v := range tri.verts {
		s.verts[v].trisLeft--
	}
}
