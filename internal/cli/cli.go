// Package cli implements the grigorchuk command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/matzehuels/grigorchuk/pkg/algebra"
	"github.com/matzehuels/grigorchuk/pkg/buildinfo"
	"github.com/matzehuels/grigorchuk/pkg/config"
	"github.com/matzehuels/grigorchuk/pkg/observability"
	"github.com/matzehuels/grigorchuk/pkg/observability/metrics"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "grigorchuk"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	flags      viewFlags
	registry   *prometheus.Registry
}

// viewFlags are the persistent flags that override config file settings.
type viewFlags struct {
	limit    int
	noLines  bool
	noLabels bool
	canvas   string
	metrics  bool
}

// New creates a new CLI instance with a default logger and default settings.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Grigorchuk computes in the Grigorchuk group and explores its Cayley graph",
		Long: `Grigorchuk reduces and compares words in the generators a, b, c, d of the
Grigorchuk group, and walks the Cayley graph of the subgroup generated by
b, ac and ca as a trivalent map.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(cmd); err != nil {
				return err
			}
			c.startMetrics()
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "TOML settings file")
	pf.IntVar(&c.flags.limit, "limit", c.Config.Enumerate.Limit, "node budget of breadth-first enumeration")
	pf.BoolVar(&c.flags.noLines, "no-lines", false, "do not split tiles into g | ga")
	pf.BoolVar(&c.flags.noLabels, "no-labels", false, "do not label tiles with words")
	pf.StringVar(&c.flags.canvas, "canvas", c.Config.View.Canvas, `tile coloring: "G" by distance, "" plain`)
	pf.BoolVar(&c.flags.metrics, "metrics", false, "print enumeration and map metrics after the command")

	// Register all subcommands
	root.AddCommand(c.reduceCommand())
	root.AddCommand(c.splitCommand())
	root.AddCommand(c.identityCommand())
	root.AddCommand(c.encodeCommand())
	root.AddCommand(c.evalCommand())
	root.AddCommand(c.distinctCommand())
	root.AddCommand(c.prepareCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the settings file and applies explicitly set flags on top.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("limit") {
		cfg.Enumerate.Limit = c.flags.limit
	}
	if flags.Changed("no-lines") {
		cfg.View.Lines = !c.flags.noLines
	}
	if flags.Changed("no-labels") {
		cfg.View.Labels = !c.flags.noLabels
	}
	if flags.Changed("canvas") {
		cfg.View.Canvas = c.flags.canvas
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	c.Config = cfg
	c.Logger.Debug("config loaded", "path", c.configPath, "limit", cfg.Enumerate.Limit,
		"lines", cfg.View.Lines, "labels", cfg.View.Labels, "canvas", cfg.View.Canvas)
	return nil
}

// startMetrics installs Prometheus hooks on a private registry when
// --metrics is set.
func (c *CLI) startMetrics() {
	if !c.flags.metrics {
		return
	}
	c.registry = prometheus.NewRegistry()
	h := metrics.New(c.registry)
	observability.SetEnumerateHooks(h)
	observability.SetMapHooks(h)
}

// Execute runs root. When --metrics was given, the gathered metrics are
// printed and the hooks removed afterwards, also when the command failed.
func (c *CLI) Execute(ctx context.Context, root *cobra.Command) error {
	defer c.stopMetrics(root.ErrOrStderr())
	return root.ExecuteContext(ctx)
}

// stopMetrics prints the gathered metrics to w and restores the no-op hooks.
func (c *CLI) stopMetrics(w io.Writer) {
	if c.registry == nil {
		return
	}
	defer observability.Reset()
	samples, err := metrics.Gather(c.registry)
	c.registry = nil
	if err != nil {
		c.Logger.Warn("gather metrics", "err", err)
		return
	}
	fmt.Fprintln(w, metricsTable(samples))
}

// newEngine creates a fresh interning context for one command.
func (c *CLI) newEngine() *algebra.Engine {
	e := algebra.New(nil)
	c.Logger.Debug("engine ready", "nodes", e.Store().Len())
	return e
}
