package vcache

import "fmt"

// ACMR streams indices through a simulated fixed-size vertex cache and
// returns the average cache miss ratio: the fraction of indices whose
// vertex was not resident when referenced. 1.0 means every index caused a
// transform; a long edge-sharing strip approaches 1/3 (one new vertex per
// triangle). An empty buffer reports 0.
//
// The simulation is intentionally not true LRU: an entry is inserted at
// the front on a miss, but a hit leaves the cache untouched. This
// insertion-on-miss-only model matches the reference measurement, so
// ratios are comparable across implementations; a true-LRU simulator
// would report slightly different numbers.
//
// A cacheSize <= 0 simulates no cache at all, so every index misses and
// the ratio is exactly 1.0. The indices buffer is never modified; calling
// ACMR twice on the same buffer returns the same value.
//
// Returns [ErrInvalidIndexCount] if the buffer length is not a multiple
// of 3.
func ACMR(indices []uint32, cacheSize int) (float64, error) {
	if len(indices)%3 != 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidIndexCount, len(indices))
	}
	if len(indices) == 0 {
		return 0, nil
	}
	if cacheSize < 0 {
		cacheSize = 0
	}

	cache := make([]uint32, cacheSize)
	used := 0
	misses := 0

	for _, id := range indices {
		hit := false
		for i := 0; i < used; i++ {
			if cache[i] == id {
				hit = true
				break
			}
		}
		if hit {
			continue
		}

		misses++
		if used < cacheSize {
			used++
		}
		if used > 0 {
			copy(cache[1:used], cache[:used-1])
			cache[0] = id
		}
	}

	return float64(misses) / float64(len(indices)), nil
}
