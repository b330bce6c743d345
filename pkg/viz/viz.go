package viz

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/vcacheopt/pkg/mesh"
)

// Options configures vertex-graph rendering.
type Options struct {
	// Detailed includes the valence of each vertex in node labels.
	// When false, only the vertex id is shown.
	Detailed bool
}

// hubValence is the valence from which a vertex is drawn filled. An
// interior vertex of a regular grid touches six triangles; anything
// above that is a hub worth spotting.
const hubValence = 8

// ToDOT converts a mesh to Graphviz DOT format: one node per referenced
// vertex, one undirected edge per shared triangle edge. The resulting
// DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Vertices with valence [hubValence] or higher are rendered filled to
// distinguish hubs from regular vertices.
func ToDOT(m *mesh.Mesh, opts Options) string {
	valence := make(map[uint32]int)
	edges := make(map[[2]uint32]struct{})
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		valence[a]++
		valence[b]++
		valence[c]++
		edges[edgeKey(a, b)] = struct{}{}
		edges[edgeKey(b, c)] = struct{}{}
		edges[edgeKey(c, a)] = struct{}{}
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=solid, fontsize=18, margin=\"0.05,0.02\"];\n")
	buf.WriteString("\n")

	for _, v := range slices.Sorted(maps.Keys(valence)) {
		label := fmtLabel(v, valence[v], opts.Detailed)
		attrs := fmtAttrs(valence[v], label)
		fmt.Fprintf(&buf, "  %d [%s];\n", v, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range sortedEdges(edges) {
		fmt.Fprintf(&buf, "  %d -- %d;\n", e[0], e[1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgeKey(a, b uint32) [2]uint32 {
	if a > b {
		a, b = b, a
	}
	return [2]uint32{a, b}
}

func sortedEdges(set map[[2]uint32]struct{}) [][2]uint32 {
	out := make([][2]uint32, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b [2]uint32) int {
		if a[0] != b[0] {
			return int(a[0]) - int(b[0])
		}
		return int(a[1]) - int(b[1])
	})
	return out
}

func fmtLabel(v uint32, valence int, detailed bool) string {
	if !detailed {
		return strconv.FormatUint(uint64(v), 10)
	}
	return fmt.Sprintf("%d\ntris: %d", v, valence)
}

func fmtAttrs(valence int, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if valence >= hubValence {
		attrs = append(attrs, "style=filled", "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	var buf bytes.Buffer
	if err := render(dot, graphviz.SVG, &buf); err != nil {
		return nil, err
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz. A scale of 2.0
// produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(dot string, scale float64) ([]byte, error) {
	if scale > 0 {
		dot = withDPI(dot, 96*scale)
	}
	var buf bytes.Buffer
	if err := render(dot, graphviz.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// withDPI injects a dpi attribute right after the opening brace, so it
// applies whether or not the DOT source sets other graph attributes.
func withDPI(dot string, dpi float64) string {
	i := strings.IndexByte(dot, '{')
	if i < 0 {
		return dot
	}
	return fmt.Sprintf("%s dpi=%.0f;%s", dot[:i+1], dpi, dot[i+1:])
}

func render(dot string, format graphviz.Format, out *bytes.Buffer) error {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	if err := gv.Render(ctx, g, format, out); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
