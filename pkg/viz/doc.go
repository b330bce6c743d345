// Package viz renders the vertex-sharing graph of a triangle mesh.
//
// # Overview
//
// This package produces Graphviz visualizations where each vertex appears
// as a node and each shared triangle edge as a link. The picture shows at
// a glance how well connected a mesh is, which is the property the cache
// optimizer exploits: dense neighborhoods reorder well, disconnected
// soup does not.
//
// # Usage
//
// Convert a mesh to DOT format, then render to SVG or PNG:
//
//	dot := viz.ToDOT(m, viz.Options{})
//	svg, err := viz.RenderSVG(dot)
//	png, err := viz.RenderPNG(dot, 2.0)  // 2x scale
//
// The generated DOT can also be saved and processed with external
// Graphviz tools.
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: when true, node labels include the vertex valence
//     (number of incident triangles)
//
// High-valence vertices (hubs) are filled to stand out; they are the
// vertices the optimizer works hardest to keep resident.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process
// layout and rasterization. Output size grows with mesh size; the graph
// view is meant for inspecting small meshes, not production assets.
package viz
