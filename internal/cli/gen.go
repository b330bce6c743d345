package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vcacheopt/pkg/mesh"
	"github.com/matzehuels/vcacheopt/pkg/meshgen"
)

// genCommand creates the gen command for producing test meshes.
func (c *CLI) genCommand() *cobra.Command {
	var (
		width, height int
		count         int
		tris, verts   int
		seed          int64
		shuffle       bool
		output        string
	)

	cmd := &cobra.Command{
		Use:   "gen [grid|fan|strip|random]",
		Short: "Generate a synthetic test mesh as OBJ",
		Long: `Generate a synthetic test mesh as OBJ.

Available kinds:

  grid    regular triangle grid (--width x --height cells)
  fan     triangles sharing a single hub vertex (--count)
  strip   edge-sharing triangle strip (--count)
  random  unstructured index soup (--tris, --verts)

All generators are deterministic for a given --seed. Use --shuffle to
destroy triangle locality, which produces a worst-case ordering for
before/after comparisons.`,
		ValidArgs: []string{"grid", "fan", "strip", "random"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var m *mesh.Mesh
			switch args[0] {
			case "grid":
				m = meshgen.Grid(width, height)
			case "fan":
				m = meshgen.Fan(count)
			case "strip":
				m = meshgen.Strip(count)
			case "random":
				m = meshgen.Random(tris, verts, seed)
			}

			if shuffle {
				meshgen.Shuffle(m.Indices, seed)
			}

			if output == "" {
				output = m.Name + ".obj"
			}
			if err := mesh.WriteOBJFile(output, m); err != nil {
				return fmt.Errorf("write mesh: %w", err)
			}

			printSuccess("Generated %s", m.Name)
			printMeshStats(m.VertexCount(), m.TriangleCount(), false)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 16, "grid cells in x")
	cmd.Flags().IntVar(&height, "height", 16, "grid cells in y")
	cmd.Flags().IntVar(&count, "count", 64, "triangle count for fan and strip")
	cmd.Flags().IntVar(&tris, "tris", 256, "triangle count for random meshes")
	cmd.Flags().IntVar(&verts, "verts", 128, "vertex count for random meshes")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for generation and shuffling")
	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "shuffle triangle order after generation")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <name>.obj)")

	return cmd
}
