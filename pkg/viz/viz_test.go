package viz

import (
	"strings"
	"testing"

	"github.com/matzehuels/vcacheopt/pkg/mesh"
	"github.com/matzehuels/vcacheopt/pkg/meshgen"
)

func TestToDOT_Basic(t *testing.T) {
	// Two triangles sharing the edge 1-2.
	m := &mesh.Mesh{Indices: []uint32{0, 1, 2, 2, 1, 3}}

	dot := ToDOT(m, Options{})

	if !strings.Contains(dot, "graph G") {
		t.Error("ToDOT() output missing graph declaration")
	}
	for _, want := range []string{"0 --", "1 -- 2", "-- 3"} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q:\n%s", want, dot)
		}
	}
	// Shared edge appears once.
	if strings.Count(dot, "1 -- 2;") != 1 {
		t.Errorf("ToDOT() duplicated the shared edge:\n%s", dot)
	}
}

func TestToDOT_Detailed(t *testing.T) {
	m := &mesh.Mesh{Indices: []uint32{0, 1, 2, 2, 1, 3}}

	dot := ToDOT(m, Options{Detailed: true})

	if !strings.Contains(dot, "tris: 2") {
		t.Error("ToDOT() detailed output missing valence info")
	}
}

func TestToDOT_HubHighlight(t *testing.T) {
	m := meshgen.Fan(10)

	dot := ToDOT(m, Options{})

	// The hub touches all ten triangles and must be drawn filled.
	if !strings.Contains(dot, "lightgrey") {
		t.Error("ToDOT() hub vertex missing filled style")
	}
}

func TestToDOT_Deterministic(t *testing.T) {
	m := meshgen.Grid(4, 4)
	if ToDOT(m, Options{}) != ToDOT(m, Options{}) {
		t.Error("ToDOT() output differs between identical calls")
	}
}

func TestFmtAttrs(t *testing.T) {
	if attrs := fmtAttrs(2, "v"); len(attrs) != 1 {
		t.Errorf("regular vertex should have 1 attr, got %v", attrs)
	}
	if attrs := fmtAttrs(hubValence, "v"); len(attrs) != 3 {
		t.Errorf("hub vertex should have 3 attrs, got %v", attrs)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestWithDPI(t *testing.T) {
	got := withDPI("graph G { a -- b; }", 192)
	want := "graph G { dpi=192; a -- b; }"
	if got != want {
		t.Errorf("withDPI = %q, want %q", got, want)
	}

	// Input without a graph body passes through untouched.
	if got := withDPI("nonsense", 192); got != "nonsense" {
		t.Errorf("withDPI on braceless input = %q", got)
	}
}

func TestRenderSVG(t *testing.T) {
	dot := ToDOT(meshgen.Strip(2), Options{})
	svg, err := RenderSVG(dot)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}

	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if _, err := RenderSVG(`not valid DOT {{{`); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
