package nodelink

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/grigorchuk/pkg/algebra"
	"github.com/matzehuels/grigorchuk/pkg/cayley"
)

func TestCollect(t *testing.T) {
	tests := []struct {
		radius int
		nodes  int
		edges  int
	}{
		{0, 1, 0},
		{1, 4, 3},
		{2, 10, 9},
	}
	for _, tt := range tests {
		m := cayley.NewTileMap(algebra.New(nil), cayley.MapOptions{})
		g, err := Collect(context.Background(), m, tt.radius)
		if err != nil {
			t.Fatalf("Collect(%d): %v", tt.radius, err)
		}
		if len(g.Nodes) != tt.nodes || len(g.Edges) != tt.edges {
			t.Errorf("radius %d: %d nodes, %d edges; want %d, %d",
				tt.radius, len(g.Nodes), len(g.Edges), tt.nodes, tt.edges)
		}
		for _, n := range g.Nodes {
			if n.Distance > tt.radius {
				t.Errorf("radius %d: node %d at distance %d", tt.radius, n.ID, n.Distance)
			}
		}
		for _, e := range g.Edges {
			if e.Dir == cayley.DirCA {
				t.Errorf("edge %d-%d reported as ca", e.From, e.To)
			}
		}
	}
}

func TestCollectWords(t *testing.T) {
	m := cayley.NewTileMap(algebra.New(nil), cayley.MapOptions{})
	g, err := Collect(context.Background(), m, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"I": "a", "ac": "aca", "ca": "c", "b": "ba"}
	for _, n := range g.Nodes {
		half, ok := want[n.Word]
		if !ok {
			t.Errorf("unexpected word %q", n.Word)
			continue
		}
		if n.Half != half {
			t.Errorf("half of %q = %q, want %q", n.Word, n.Half, half)
		}
	}
}

func TestCollectCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := cayley.NewTileMap(algebra.New(nil), cayley.MapOptions{})
	if _, err := Collect(ctx, m, 3); err == nil {
		t.Error("expected error from canceled context")
	}
}

func TestCanvasColor(t *testing.T) {
	tests := []struct {
		distance int
		want     uint32
	}{
		{-1, 0},
		{0, 0x102008},
		{1, 0x204010},
		{15, 0x020080},
	}
	for _, tt := range tests {
		if got := CanvasColor(tt.distance); got != tt.want {
			t.Errorf("CanvasColor(%d) = %06x, want %06x", tt.distance, got, tt.want)
		}
	}
}

func TestFmtLabel(t *testing.T) {
	n := Node{ID: 7, Word: "acb", Half: "acba"}
	tests := []struct {
		opts Options
		want string
	}{
		{Options{}, "7"},
		{Options{Labels: true}, "acb"},
		{Options{Lines: true}, "{7|7a}"},
		{Options{Labels: true, Lines: true}, "{acb|acba}"},
	}
	for _, tt := range tests {
		if got := fmtLabel(n, tt.opts); got != tt.want {
			t.Errorf("fmtLabel(%+v) = %q, want %q", tt.opts, got, tt.want)
		}
	}
}

func TestToDOT(t *testing.T) {
	m := cayley.NewTileMap(algebra.New(nil), cayley.MapOptions{})
	g, err := Collect(context.Background(), m, 2)
	if err != nil {
		t.Fatal(err)
	}
	dot := ToDOT(g, Options{Labels: true, Lines: true, Canvas: true})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("unexpected header: %q", dot[:20])
	}
	if got := strings.Count(dot, " -- "); got != len(g.Edges) {
		t.Errorf("%d edges in DOT, want %d", got, len(g.Edges))
	}
	if got := strings.Count(dot, "label="); got != len(g.Nodes) {
		t.Errorf("%d labeled nodes in DOT, want %d", got, len(g.Nodes))
	}
	for _, want := range []string{"shape=record", `label="{I|a}"`, `fillcolor="#102008"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %s", want)
		}
	}
}

func TestRenderSVG(t *testing.T) {
	m := cayley.NewTileMap(algebra.New(nil), cayley.MapOptions{})
	g, err := Collect(context.Background(), m, 1)
	if err != nil {
		t.Fatal(err)
	}
	svg, err := RenderSVG(context.Background(), ToDOT(g, Options{Labels: true}))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("output is not SVG")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 10.00 20.00"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `width="10" height="20"`) {
		t.Errorf("normalizeViewBox = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg>")); string(got) != "<svg>" {
		t.Errorf("no viewBox changed input: %s", got)
	}
}
