// Package mesh provides a minimal triangle mesh container and Wavefront
// OBJ interchange.
//
// The toolkit only ever reorders index buffers, so [Mesh] deliberately
// carries nothing beyond vertex positions and a flat triangle index
// buffer. Positions exist so that meshes survive a round trip through
// [WriteOBJ] with their geometry intact; the optimizer itself never reads
// them.
//
// [ReadOBJ] understands the subset of OBJ that matters for index
// extraction: v records, f records (including a/b/c slash forms and
// negative relative indices), and fan triangulation of polygons with more
// than three corners. Everything else is skipped.
package mesh
