// Package pkg provides the core libraries for vcacheopt mesh optimization.
//
// # Overview
//
// vcacheopt reorders the triangles of an indexed mesh so vertices are
// referenced again while still resident in the GPU's post-transform
// vertex cache. The pkg directory is organized into five areas:
//
//  1. [vcache] - The optimizer itself: adjacency analysis, the greedy
//     cache-aware scheduler, and the ACMR evaluator
//  2. [mesh] - Triangle mesh container and OBJ interchange
//  3. [meshgen] - Deterministic synthetic mesh generators for testing
//     and benchmarking
//  4. [viz] - Vertex-sharing graph export via Graphviz
//  5. [cache] - Content-addressed result cache for the CLI
//
// # Architecture
//
// The typical data flow:
//
//	OBJ file / caller-owned index buffer
//	         ↓
//	    [vcache] package (reorder triangles in place)
//	         ↓
//	    [vcache.ACMR] (measure the improvement)
//	         ↓
//	    OBJ output / reordered buffer
//
// # Quick Start
//
// Optimize an index buffer and measure the result:
//
//	import "github.com/matzehuels/vcacheopt/pkg/vcache"
//
//	before, _ := vcache.ACMR(indices, vcache.DefaultCacheSize)
//	if err := vcache.Optimize(indices, numVertices, vcache.DefaultCacheSize); err != nil {
//	    return err
//	}
//	after, _ := vcache.ACMR(indices, vcache.DefaultCacheSize)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/vcache/...   # Optimizer only
//	go test -run Example       # Examples only
//	go test -bench . ./pkg/vcache
//
// [vcache]: https://pkg.go.dev/github.com/matzehuels/vcacheopt/pkg/vcache
// [mesh]: https://pkg.go.dev/github.com/matzehuels/vcacheopt/pkg/mesh
// [meshgen]: https://pkg.go.dev/github.com/matzehuels/vcacheopt/pkg/meshgen
// [viz]: https://pkg.go.dev/github.com/matzehuels/vcacheopt/pkg/viz
// [cache]: https://pkg.go.dev/github.com/matzehuels/vcacheopt/pkg/cache
// [vcache.ACMR]: https://pkg.go.dev/github.com/matzehuels/vcacheopt/pkg/vcache#ACMR
package pkg
