package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/grigorchuk/pkg/cayley"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Labels shows each tile's decoded word. When false, only the tile ID
	// is shown.
	Labels bool
	// Lines draws tiles as records split into g and g·a.
	Lines bool
	// Canvas fills tiles with [CanvasColor] of their distance.
	Canvas bool
}

// CanvasColor returns the 24-bit RGB fill for a tile at the given distance
// from the origin. Unknown distances (-1) are black.
func CanvasColor(distance int) uint32 {
	return uint32(0x102008*(1+distance)) & 0xFFFFFF
}

var edgeStyles = [cayley.Degree]string{
	cayley.DirAC: `color="#1f77b4", dir=forward, arrowhead=vee`,
	cayley.DirCA: `color="#1f77b4", dir=back, arrowtail=vee`,
	cayley.DirB:  `color="#d62728"`,
}

// ToDOT converts a graph to Graphviz DOT source. Edges are undirected except
// for ac edges, which point the way ac leads.
func ToDOT(g *Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Lines {
		buf.WriteString("  node [shape=record, style=filled, fillcolor=white, fontsize=14];\n")
	} else {
		buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	}
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, opts))}
		if opts.Canvas {
			attrs = append(attrs, fmt.Sprintf("fillcolor=\"#%06x\"", CanvasColor(n.Distance)))
			if n.Distance > 6 {
				attrs = append(attrs, "fontcolor=white")
			}
		}
		fmt.Fprintf(&buf, "  t%d [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  t%d -- t%d [%s];\n", e.From, e.To, edgeStyles[e.Dir])
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n Node, opts Options) string {
	name := strconv.Itoa(n.ID)
	if opts.Labels {
		name = n.Word
	}
	if !opts.Lines {
		return name
	}
	half := name + "a"
	if opts.Labels {
		half = n.Half
	}
	return "{" + name + "|" + half + "}"
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
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

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
