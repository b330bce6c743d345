// Package meshgen builds deterministic test meshes for the optimizer's
// demo harness, benchmarks and tests.
//
// The generators cover the interesting cache behaviours: [Grid] for
// moderate-valence interiors, [Fan] for a single hot vertex, [Strip] for
// the best case of one new vertex per triangle, and [Random] for
// adversarial soup. [Shuffle] destroys triangle locality without touching
// winding, producing the "poor ordering" half of before/after
// comparisons. Same arguments and seed always produce the same mesh.
package meshgen
