package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/grigorchuk/pkg/algebra"
	"github.com/matzehuels/grigorchuk/pkg/cayley"
	"github.com/matzehuels/grigorchuk/pkg/observability/metrics"
)

// prepareCommand creates the prepare command, which runs the breadth-first
// enumeration the map uses for distances and prints the layer sizes.
func (c *CLI) prepareCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Enumerate the Cayley graph breadth-first and print layer sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := c.newEngine()
			ball, err := c.enumerate(cmd.Context(), cmd.ErrOrStderr(), e, algebra.NewTrail(), quiet)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, layerTable(ball))
			printDetail(out, "%d discovered, %d expanded, complete to radius %d, %d interned nodes",
				ball.Len(), ball.Processed(), ball.Radius(), e.Store().Len())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "no spinner")
	return cmd
}

// enumerate runs [cayley.Enumerate] with the configured limit behind a spinner.
func (c *CLI) enumerate(ctx context.Context, w io.Writer, e *algebra.Engine, trail *algebra.Trail, quiet bool) (*cayley.Ball, error) {
	opts := cayley.EnumerateOptions{
		Limit:  c.Config.Enumerate.Limit,
		Logger: c.Logger,
	}
	var spin *Spinner
	if !quiet {
		spin = startSpinner(ctx, w, c.Config.Enumerate.Limit)
		opts.OnLayer = spin.Layer
	}

	p := newProgress(c.Logger)
	ball, err := cayley.Enumerate(ctx, e, trail, opts)
	if spin != nil {
		if err != nil {
			spin.StopWithError("Enumeration stopped")
		} else {
			spin.Stop()
		}
	}
	if err != nil {
		return nil, err
	}
	p.done(fmt.Sprintf("Enumerated %d elements", ball.Len()))
	return ball, nil
}

// layerTable renders the number of elements at each distance. Layers past
// the ball's radius are marked partial.
func layerTable(ball *cayley.Ball) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	partialStyle := lipgloss.NewStyle().Foreground(colorDim)

	var rows [][]string
	total := 0
	for d, n := range ball.Layers() {
		total += n
		status := ""
		if d > ball.Radius() {
			status = "partial"
		}
		rows = append(rows, []string{strconv.Itoa(d), strconv.Itoa(n), strconv.Itoa(total), status})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Distance", "Elements", "Total", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row >= 0 && row < len(rows) && rows[row][3] != "" {
				return partialStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})
	return t.Render()
}

// metricsTable renders gathered metric samples.
func metricsTable(samples []metrics.Sample) string {
	rows := make([][]string, len(samples))
	for i, s := range samples {
		rows[i] = []string{s.Name, s.Labels, strconv.FormatFloat(s.Value, 'g', -1, 64)}
	}
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Metric", "Labels", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
