package algebra

import (
	"fmt"
	"strings"

	"github.com/matzehuels/grigorchuk/pkg/word"
)

// Elem is the handle of an interned group element. Handles are only
// meaningful for the [Store] that issued them.
type Elem uint32

// Fixed handles of the identity and the four generators.
const (
	I Elem = iota
	A
	B
	C
	D
)

// numFixed is the number of handles allocated by [NewStore].
const numFixed = 5

// Node is the structural form of an element: an optional swap of the two
// subtrees at the root, followed by Left and Right acting on them.
type Node struct {
	Swap  bool
	Left  Elem
	Right Elem
}

// Store interns nodes. After [Store.Lookup], two handles are equal exactly
// when the nodes they stand for are equal. The store is append-only.
type Store struct {
	nodes []Node
	index map[Node]Elem
}

// NewStore creates a store holding the identity and the four generators.
func NewStore() *Store {
	s := &Store{
		nodes: []Node{
			I: {Swap: false, Left: I, Right: I},
			A: {Swap: true, Left: I, Right: I},
			B: {Swap: false, Left: A, Right: C},
			C: {Swap: false, Left: A, Right: D},
			D: {Swap: false, Left: I, Right: B},
		},
		index: make(map[Node]Elem),
	}
	for e, n := range s.nodes {
		s.index[n] = Elem(e)
	}
	return s
}

// Lookup returns the handle for (swap, left, right), allocating one if the
// node has not been seen before. left and right must be handles of this
// store.
func (s *Store) Lookup(swap bool, left, right Elem) Elem {
	n := Node{Swap: swap, Left: left, Right: right}
	if e, ok := s.index[n]; ok {
		return e
	}
	e := Elem(len(s.nodes))
	s.nodes = append(s.nodes, n)
	s.index[n] = e
	return e
}

// Node returns the structural form of e. It panics if e was not issued by s.
func (s *Store) Node(e Elem) Node {
	return s.nodes[e]
}

// Contains reports whether e was issued by s.
func (s *Store) Contains(e Elem) bool {
	return int(e) < len(s.nodes)
}

// Len returns the number of interned elements, including the fixed five.
func (s *Store) Len() int { return len(s.nodes) }

// Generator returns the fixed handle of a generator symbol.
func Generator(sym word.Symbol) Elem {
	switch sym {
	case word.A:
		return A
	case word.B:
		return B
	case word.C:
		return C
	case word.D:
		return D
	}
	panic(fmt.Sprintf("algebra: invalid generator %q", byte(sym)))
}

// Canonical interns the element denoted by w by splitting it recursively.
// Words that denote the same element yield the same handle.
func (s *Store) Canonical(w word.Word) Elem {
	r := word.Reduce(w)
	switch len(r) {
	case 0:
		return I
	case 1:
		return Generator(r[0])
	}
	sp := word.Split(r)
	// Split routes letters by the parity of the a's seen so far, while nodes
	// store sections after the final swap, with b = (a, c) rather than (c, a).
	if sp.Swap {
		return s.Lookup(true, s.Canonical(sp.Left), s.Canonical(sp.Right))
	}
	return s.Lookup(false, s.Canonical(sp.Right), s.Canonical(sp.Left))
}

// Format renders e as a nested tree, naming the fixed elements and writing
// other elements as "(left,right)", prefixed with "a" when they swap.
func (s *Store) Format(e Elem) string {
	var b strings.Builder
	s.format(&b, e)
	return b.String()
}

var fixedNames = [numFixed]string{"I", "a", "b", "c", "d"}

func (s *Store) format(b *strings.Builder, e Elem) {
	if e < numFixed {
		b.WriteString(fixedNames[e])
		return
	}
	n := s.nodes[e]
	if n.Swap {
		b.WriteByte('a')
	}
	b.WriteByte('(')
	s.format(b, n.Left)
	b.WriteByte(',')
	s.format(b, n.Right)
	b.WriteByte(')')
}
