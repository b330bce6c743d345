package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vcacheopt/pkg/cache"
	"github.com/matzehuels/vcacheopt/pkg/mesh"
	"github.com/matzehuels/vcacheopt/pkg/vcache"
)

// resultTTL bounds how long optimized index buffers stay cached. The
// result only depends on the input, so this is housekeeping, not
// correctness.
const resultTTL = 30 * 24 * time.Hour

// optimizeCommand creates the optimize command.
func (c *CLI) optimizeCommand() *cobra.Command {
	var (
		cacheSize int
		output    string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "optimize [mesh.obj]",
		Short: "Reorder a mesh's triangles for vertex cache reuse",
		Long: `Reorder a mesh's triangles for vertex cache reuse.

The optimize command loads an OBJ mesh, reorders its triangles so that
vertices are referenced again while still resident in the post-transform
vertex cache, and writes the reordered mesh back out. Vertex data and
the winding order of every triangle are untouched; only the order of
triangles changes.

Results are cached locally, so re-optimizing an unchanged mesh is free.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOptimize(cmd.Context(), args[0], cacheSize, output, noCache)
		},
	}

	cmd.Flags().IntVar(&cacheSize, "cache-size", vcache.DefaultCacheSize, "modelled vertex cache size (FIFO entries)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>_opt.obj)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")

	return cmd
}

func (c *CLI) runOptimize(ctx context.Context, input string, cacheSize int, output string, noCache bool) error {
	m, err := mesh.ReadOBJFile(input)
	if err != nil {
		return fmt.Errorf("load mesh %s: %w", input, err)
	}
	c.Logger.Debugf("loaded %s: %d vertices, %d triangles", input, m.VertexCount(), m.TriangleCount())

	before, err := vcache.ACMR(m.Indices, cacheSize)
	if err != nil {
		return fmt.Errorf("measure input: %w", err)
	}

	store, err := newCache(noCache)
	if err != nil {
		return fmt.Errorf("open result cache: %w", err)
	}
	defer store.Close()

	key := cache.ResultKey(m.Indices, m.VertexCount(), cacheSize)
	optimized, cacheHit, err := c.optimizedIndices(ctx, store, key, m, cacheSize)
	if err != nil {
		return err
	}
	m.Indices = optimized

	after, err := vcache.ACMR(m.Indices, cacheSize)
	if err != nil {
		return fmt.Errorf("measure output: %w", err)
	}

	if output == "" {
		output = defaultOutput(input)
	}
	if err := mesh.WriteOBJFile(output, m); err != nil {
		return fmt.Errorf("write mesh: %w", err)
	}

	printSuccess("Optimized %s", filepath.Base(input))
	printMeshStats(m.VertexCount(), m.TriangleCount(), cacheHit)
	printACMR(before, after)
	printFile(output)
	printNewline()
	printNextStep("Inspect cache behavior", fmt.Sprintf("vcacheopt sim %s", output))
	return nil
}

// optimizedIndices returns the reordered index buffer for m, from the
// result cache when possible. The returned bool reports a cache hit.
func (c *CLI) optimizedIndices(ctx context.Context, store cache.Cache, key string, m *mesh.Mesh, cacheSize int) ([]uint32, bool, error) {
	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		indices, err := cache.UnmarshalIndices(data)
		if err == nil && len(indices) == len(m.Indices) {
			c.Logger.Debug("result cache hit", "key", key)
			return indices, true, nil
		}
		// Stale or corrupt entry; fall through and recompute.
		_ = store.Delete(ctx, key)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Optimizing %d triangles...", m.TriangleCount()))
	spinner.Start()

	p := newProgress(c.Logger)
	if err := vcache.Optimize(m.Indices, m.VertexCount(), cacheSize); err != nil {
		spinner.StopWithError("Optimization failed")
		return nil, false, fmt.Errorf("optimize: %w", err)
	}
	spinner.Stop()
	p.done(fmt.Sprintf("Optimized %d triangles", m.TriangleCount()))

	if err := store.Set(ctx, key, cache.MarshalIndices(m.Indices), resultTTL); err != nil {
		c.Logger.Debug("result cache write failed", "err", err)
	}
	return m.Indices, false, nil
}

// defaultOutput derives the output path from the input: mesh.obj -> mesh_opt.obj.
func defaultOutput(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_opt" + ext
}
