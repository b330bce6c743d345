package vcache_test

import (
	"fmt"

	"github.com/matzehuels/vcacheopt/pkg/vcache"
)

func ExampleOptimize() {
	// Four triangles sharing edges along a strip.
	indices := []uint32{0, 1, 2, 1, 2, 3, 2, 3, 4, 3, 4, 5}

	if err := vcache.Optimize(indices, 6, 4); err != nil {
		panic(err)
	}

	fmt.Println(indices)
	// Output:
	// [3 4 5 2 3 4 1 2 3 0 1 2]
}

func ExampleACMR() {
	indices := []uint32{0, 1, 2, 1, 2, 3, 2, 3, 4, 3, 4, 5}

	ratio, err := vcache.ACMR(indices, 4)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.2f misses per index\n", ratio)
	// Output:
	// 0.50 misses per index
}
