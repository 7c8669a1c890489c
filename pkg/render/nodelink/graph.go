package nodelink

import (
	"context"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/matzehuels/grigorchuk/pkg/algebra"
	"github.com/matzehuels/grigorchuk/pkg/cayley"
	"github.com/matzehuels/grigorchuk/pkg/word"
)

// Graph is a snapshot of the tiles within some radius of a map's origin.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is one tile.
type Node struct {
	ID       int          `json:"id"`
	Elem     algebra.Elem `json:"elem"`
	Word     string       `json:"word"`
	Half     string       `json:"half"`
	Distance int          `json:"distance"`
}

// Edge joins two tiles. Dir is the direction taken from From to reach To;
// ac edges are reported in that direction, never as ca.
type Edge struct {
	From int              `json:"from"`
	To   int              `json:"to"`
	Dir  cayley.Direction `json:"dir"`
}

type edgeKey struct{ from, to int }

func compareEdgeKeys(x, y interface{}) int {
	a, b := x.(edgeKey), y.(edgeKey)
	switch {
	case a.from != b.from:
		return a.from - b.from
	case a.to != b.to:
		return a.to - b.to
	}
	return 0
}

// Collect steps breadth-first from the origin of m in every direction until
// radius steps away, and returns the tiles and edges found. Tiles created
// by earlier walks but farther than radius are not included.
func Collect(ctx context.Context, m *cayley.Map[*cayley.Tile], radius int) (*Graph, error) {
	dist := map[*cayley.Tile]int{m.Origin(): 0}
	var order []*cayley.Tile
	edges := redblacktree.Tree{Comparator: compareEdgeKeys}

	queue := linkedlistqueue.New()
	queue.Enqueue(m.Origin())
	for !queue.Empty() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, _ := queue.Dequeue()
		t := v.(*cayley.Tile)
		order = append(order, t)
		if dist[t] == radius {
			continue
		}
		for _, d := range cayley.Directions {
			n, err := m.Step(t, d)
			if err != nil {
				return nil, err
			}
			if _, ok := dist[n]; !ok {
				dist[n] = dist[t] + 1
				queue.Enqueue(n)
			}
			switch {
			case d == cayley.DirCA:
				edges.Put(edgeKey{n.ID, t.ID}, cayley.DirAC)
			case d == cayley.DirAC || t.ID < n.ID:
				edges.Put(edgeKey{t.ID, n.ID}, d)
			default:
				edges.Put(edgeKey{n.ID, t.ID}, d)
			}
		}
	}

	g := &Graph{Nodes: make([]Node, 0, len(order))}
	for _, t := range order {
		w, err := m.Word(t)
		if err != nil {
			return nil, err
		}
		x, _ := m.Elem(t)
		g.Nodes = append(g.Nodes, Node{
			ID:       t.ID,
			Elem:     x,
			Word:     display(w),
			Half:     display(word.Append(append(word.Word(nil), w...), word.A)),
			Distance: dist[t],
		})
	}
	it := edges.Iterator()
	for it.Next() {
		k := it.Key().(edgeKey)
		g.Edges = append(g.Edges, Edge{From: k.from, To: k.to, Dir: it.Value().(cayley.Direction)})
	}
	return g, nil
}

func display(w word.Word) string {
	if len(w) == 0 {
		return "I"
	}
	return w.String()
}
