package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vcacheopt/pkg/mesh"
	"github.com/matzehuels/vcacheopt/pkg/vcache"
)

// simCommand creates the sim command, an interactive walk through the
// modelled vertex cache.
func (c *CLI) simCommand() *cobra.Command {
	var cacheSize int

	cmd := &cobra.Command{
		Use:   "sim [mesh.obj]",
		Short: "Step through the vertex cache simulation",
		Long: `Step through the vertex cache simulation.

The sim command replays the mesh's index buffer one triangle at a time
against the modelled FIFO cache, showing per-vertex hits and misses, the
cache contents after each triangle and the running miss ratio. Useful
for building intuition about why an ordering performs the way it does.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mesh.ReadOBJFile(args[0])
			if err != nil {
				return fmt.Errorf("load mesh %s: %w", args[0], err)
			}
			if err := m.Validate(); err != nil {
				return err
			}

			model := newSimModel(filepath.Base(args[0]), m.Indices, cacheSize)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().IntVar(&cacheSize, "cache-size", vcache.DefaultCacheSize, "modelled vertex cache size (FIFO entries)")

	return cmd
}

// =============================================================================
// SimModel - Interactive cache replay
// =============================================================================

// simStep is the cache state after one triangle has been drawn.
type simStep struct {
	tri    [3]uint32
	hit    [3]bool
	cache  []uint32 // front-ordered contents after the triangle
	misses int      // cumulative misses
}

// SimModel is the bubbletea model for the cache replay.
type SimModel struct {
	Name      string
	CacheSize int
	Steps     []simStep
	Total     int // total index count, for the running ratio
	Cursor    int // -1 means before the first triangle
}

// newSimModel precomputes every step of the replay so navigation in
// both directions is free.
func newSimModel(name string, indices []uint32, cacheSize int) SimModel {
	m := SimModel{
		Name:      name,
		CacheSize: cacheSize,
		Total:     len(indices),
		Cursor:    -1,
	}

	cache := make([]uint32, 0, cacheSize)
	misses := 0
	for i := 0; i+2 < len(indices); i += 3 {
		step := simStep{tri: [3]uint32{indices[i], indices[i+1], indices[i+2]}}
		for k, id := range step.tri {
			if contains(cache, id) {
				step.hit[k] = true
				continue
			}
			misses++
			if cacheSize > 0 {
				if len(cache) < cacheSize {
					cache = append(cache, 0)
				}
				copy(cache[1:], cache[:len(cache)-1])
				cache[0] = id
			}
		}
		step.cache = append([]uint32(nil), cache...)
		step.misses = misses
		m.Steps = append(m.Steps, step)
	}
	return m
}

func contains(cache []uint32, id uint32) bool {
	for _, c := range cache {
		if c == id {
			return true
		}
	}
	return false
}

func (m SimModel) Init() tea.Cmd {
	return nil
}

func (m SimModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "n", " ", "enter":
			if m.Cursor < len(m.Steps)-1 {
				m.Cursor++
			}
		case "left", "h", "p":
			if m.Cursor > -1 {
				m.Cursor--
			}
		case "home", "g":
			m.Cursor = -1
		case "end", "G":
			m.Cursor = len(m.Steps) - 1
		}
	}
	return m, nil
}

var (
	simHitStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	simMissStyle = lipgloss.NewStyle().Foreground(colorRed)
	simSlotStyle = lipgloss.NewStyle().Foreground(colorWhite)
)

func (m SimModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Cache replay: %s", m.Name)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("cache size %d   ←/→ step  g/G start/end  q quit", m.CacheSize)))
	b.WriteString("\n\n")

	if m.Cursor < 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("  start of replay, %d triangles ahead\n", len(m.Steps))))
		return b.String()
	}

	step := m.Steps[m.Cursor]

	b.WriteString(fmt.Sprintf("  triangle %s of %d\n\n",
		StyleNumber.Render(fmt.Sprintf("%d", m.Cursor+1)), len(m.Steps)))

	b.WriteString("  ")
	for k, id := range step.tri {
		style := simMissStyle
		tag := "miss"
		if step.hit[k] {
			style = simHitStyle
			tag = "hit"
		}
		b.WriteString(style.Render(fmt.Sprintf("%d %s", id, tag)))
		if k < 2 {
			b.WriteString(StyleDim.Render("  ·  "))
		}
	}
	b.WriteString("\n\n")

	b.WriteString(StyleDim.Render("  cache "))
	if len(step.cache) == 0 {
		b.WriteString(StyleDim.Render("(empty)"))
	}
	for i, id := range step.cache {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(simSlotStyle.Render(fmt.Sprintf("[%d]", id)))
	}
	b.WriteString("\n\n")

	seen := (m.Cursor + 1) * 3
	b.WriteString(StyleDim.Render("  running ACMR "))
	b.WriteString(StyleNumber.Render(fmt.Sprintf("%.4f", float64(step.misses)/float64(seen))))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  (%d misses / %d indices)", step.misses, seen)))
	b.WriteString("\n")

	return b.String()
}
