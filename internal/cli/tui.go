package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/grigorchuk/pkg/algebra"
	"github.com/matzehuels/grigorchuk/pkg/cayley"
	"github.com/matzehuels/grigorchuk/pkg/config"
	"github.com/matzehuels/grigorchuk/pkg/render/nodelink"
	"github.com/matzehuels/grigorchuk/pkg/word"
)

// exploreCommand creates the explore command, an interactive walk on the map.
func (c *CLI) exploreCommand() *cobra.Command {
	var noBall bool

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Walk the Cayley graph interactively",
		Long: `Walk the Cayley graph of the subgroup generated by b, ac and ca.

Keys: 0 or ← steps by ac, 1 or → by ca, 2 or ↑ by b; u undoes a step,
o returns to the origin, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := c.newEngine()
			trail := algebra.NewTrail()
			opts := cayley.MapOptions{Trail: trail, Logger: c.Logger}
			if !noBall {
				ball, err := c.enumerate(cmd.Context(), cmd.ErrOrStderr(), e, trail, false)
				if err != nil {
					return err
				}
				opts.Ball = ball
			}
			m := cayley.NewTileMap(e, opts)
			c.Logger.Debug("map created", "map", m.ID())

			p := tea.NewProgram(newExploreModel(m, c.Config.View), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(exploreModel); ok {
				printInfo(cmd.OutOrStdout(), "Visited %d tiles", fm.m.Len())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noBall, "no-distances", false, "skip enumeration; distances show as -1")
	return cmd
}

var (
	tuiKeyStyle   = lipgloss.NewStyle().Foreground(colorGray).Width(10)
	tuiErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
	tuiHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	tuiBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

var exploreKeys = map[string]cayley.Direction{
	"0": cayley.DirAC, "left": cayley.DirAC,
	"1": cayley.DirCA, "right": cayley.DirCA,
	"2": cayley.DirB, "up": cayley.DirB,
}

// exploreModel is the bubbletea model for walking a tile map.
type exploreModel struct {
	m    *cayley.Map[*cayley.Tile]
	cur  *cayley.Tile
	path []cayley.Direction
	view config.ViewConfig
	err  error
}

func newExploreModel(m *cayley.Map[*cayley.Tile], view config.ViewConfig) exploreModel {
	return exploreModel{m: m, cur: m.Origin(), view: view}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k := key.String(); k {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "o", "home":
		m.cur, m.path, m.err = m.m.Origin(), nil, nil
	case "u", "backspace":
		if len(m.path) > 0 {
			prev := len(m.path)
			m = m.step(m.path[prev-1].Back())
			if m.err == nil {
				m.path = m.path[:prev-1]
			}
		}
	default:
		if d, ok := exploreKeys[k]; ok {
			m = m.step(d)
		}
	}
	return m, nil
}

// step moves the cursor and records the direction taken.
func (m exploreModel) step(d cayley.Direction) exploreModel {
	next, err := m.m.Step(m.cur, d)
	if err != nil {
		m.err = err
		return m
	}
	m.cur, m.err = next, nil
	m.path = append(m.path[:len(m.path):len(m.path)], d)
	return m
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Grigorchuk map"))
	b.WriteString("\n\n")

	w, err := m.m.Word(m.cur)
	var rows []string
	if err != nil {
		rows = append(rows, m.row("word", tuiErrorStyle.Render(err.Error())))
	} else if m.view.Labels {
		rows = append(rows, m.row("word", StyleHighlight.Render(showWord(w))))
	}
	if err == nil && m.view.Lines {
		ga := word.Append(append(word.Word(nil), w...), word.A)
		rows = append(rows, m.row("halves", showWord(w)+StyleDim.Render(" | ")+showWord(ga)))
	}
	if x, ok := m.m.Elem(m.cur); ok {
		rows = append(rows, m.row("element", m.m.Engine().Format(x)))
	}

	dist := m.m.Distance(m.cur)
	distText := fmt.Sprintf("%d", dist)
	if m.view.Canvas == config.CanvasDistance {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(fmt.Sprintf("#%06x", nodelink.CanvasColor(dist)))).Render("  ")
		distText = swatch + " " + distText
	}
	rows = append(rows,
		m.row("distance", distText),
		m.row("steps", fmt.Sprintf("%d", len(m.path))),
		m.row("tile", fmt.Sprintf("#%d of %d", m.cur.ID, m.m.Len())),
		m.row("path", formatPath(m.path)),
	)
	b.WriteString(tuiBoxStyle.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(tuiErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(tuiHelpStyle.Render("0/← ac  1/→ ca  2/↑ b  u undo  o origin  q quit"))
	return b.String()
}

func (m exploreModel) row(key, value string) string {
	return tuiKeyStyle.Render(key) + " " + value
}

func formatPath(path []cayley.Direction) string {
	if len(path) == 0 {
		return "-"
	}
	parts := make([]string, len(path))
	for i, d := range path {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}
