package cayley

import "github.com/matzehuels/grigorchuk/pkg/algebra"

// Tile is a trivalent node of a map built by [Tiles].
type Tile struct {
	ID    int
	Depth int

	// Neighbors holds the adjacent tile per direction, nil until connected.
	Neighbors [Degree]*Tile
	// Spins holds, per direction, the neighbor's slot that leads back here.
	Spins [Degree]Direction
}

// Neighbor returns the tile connected in direction d, or nil.
func (t *Tile) Neighbor(d Direction) *Tile {
	if !d.Valid() {
		return nil
	}
	return t.Neighbors[d]
}

// Tiles is the default [Host]: it allocates plain [Tile] values and keeps
// their adjacency symmetric.
type Tiles struct {
	count int
}

// NewNode allocates the next tile.
func (h *Tiles) NewNode(from *Tile, dir Direction) *Tile {
	h.count++
	t := &Tile{ID: h.count}
	if from != nil {
		t.Depth = from.Depth + 1
	}
	return t
}

// Connect links slot back of to with slot dir of from.
func (h *Tiles) Connect(to *Tile, back Direction, from *Tile, dir Direction) {
	to.Neighbors[back] = from
	to.Spins[back] = dir
	from.Neighbors[dir] = to
	from.Spins[dir] = back
}

// Len returns the number of tiles allocated, not counting the origin.
func (h *Tiles) Len() int { return h.count }

// NewTileMap creates a map over fresh [Tiles] with a root tile of ID 0.
func NewTileMap(e *algebra.Engine, opts MapOptions) *Map[*Tile] {
	return NewMap[*Tile](e, &Tiles{}, &Tile{}, opts)
}
