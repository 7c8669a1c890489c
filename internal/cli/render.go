package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/grigorchuk/pkg/cayley"
	"github.com/matzehuels/grigorchuk/pkg/config"
	"github.com/matzehuels/grigorchuk/pkg/errors"
	"github.com/matzehuels/grigorchuk/pkg/io"
	"github.com/matzehuels/grigorchuk/pkg/render/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // output file path, stdout when empty
	from   string // snapshot to render instead of walking a new map
	radius int    // steps from the origin to materialize
	format string // dot, svg or json
}

// renderCommand creates the render command for drawing the map around the origin.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the tiles around the origin as DOT, SVG or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("radius") {
				opts.radius = c.Config.Render.Radius
			}
			if !cmd.Flags().Changed("format") {
				opts.format = c.Config.Render.Format
			}
			if err := validateRender(opts); err != nil {
				return err
			}
			return c.runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.from, "from", "", "render a JSON snapshot instead of a new map")
	cmd.Flags().IntVarP(&opts.radius, "radius", "r", 0, "steps from the origin (default from config)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot, svg, json (default from config)")

	return cmd
}

func validateRender(opts renderOpts) error {
	cfg := config.Default()
	cfg.Render.Radius = opts.radius
	cfg.Render.Format = opts.format
	return cfg.Validate()
}

func (c *CLI) runRender(cmd *cobra.Command, opts renderOpts) error {
	ctx := cmd.Context()
	snap, err := c.snapshot(ctx, opts)
	if err != nil {
		return err
	}

	data, err := c.encode(ctx, snap, opts.format)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	out := cmd.ErrOrStderr()
	printSuccess(out, "Rendered %d tiles, %d edges", len(snap.Graph.Nodes), len(snap.Graph.Edges))
	printFile(out, opts.output)
	return nil
}

// snapshot imports opts.from, or walks a fresh tile map to opts.radius.
func (c *CLI) snapshot(ctx context.Context, opts renderOpts) (*io.Snapshot, error) {
	if opts.from != "" {
		snap, err := io.ImportJSON(opts.from)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("snapshot imported", "path", opts.from, "map", snap.MapID, "nodes", len(snap.Graph.Nodes))
		return snap, nil
	}

	p := newProgress(c.Logger)
	m := cayley.NewTileMap(c.newEngine(), cayley.MapOptions{Logger: c.Logger})
	g, err := nodelink.Collect(ctx, m, opts.radius)
	if err != nil {
		return nil, err
	}
	p.done(fmt.Sprintf("Collected %d tiles within radius %d", len(g.Nodes), opts.radius))
	return &io.Snapshot{MapID: m.ID(), Radius: opts.radius, Graph: g}, nil
}

func (c *CLI) encode(ctx context.Context, snap *io.Snapshot, format string) ([]byte, error) {
	nodeOpts := nodelink.Options{
		Labels: c.Config.View.Labels,
		Lines:  c.Config.View.Lines,
		Canvas: c.Config.View.Canvas == config.CanvasDistance,
	}

	switch format {
	case config.FormatJSON:
		var buf bytes.Buffer
		if snap.MapID == uuid.Nil {
			snap.MapID = uuid.New()
		}
		if err := io.WriteJSON(snap, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case config.FormatDOT:
		return []byte(nodelink.ToDOT(snap.Graph, nodeOpts)), nil
	case config.FormatSVG:
		return nodelink.RenderSVG(ctx, nodelink.ToDOT(snap.Graph, nodeOpts))
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
}
