package algebra

import "github.com/matzehuels/grigorchuk/pkg/word"

type pair struct{ x, y Elem }

// Engine multiplies interned elements. The zero value is not usable; create
// engines with [New].
//
// An Engine also fixes the two derived generators ac and ca that, together
// with b, generate the index-two subgroup used for maps.
type Engine struct {
	store *Store
	prod  map[pair]Elem
	inv   map[Elem]Elem
	ac    Elem
	ca    Elem
}

// New creates an engine over store. A nil store gets a fresh [NewStore].
func New(store *Store) *Engine {
	if store == nil {
		store = NewStore()
	}
	e := &Engine{
		store: store,
		prod:  make(map[pair]Elem),
		inv:   make(map[Elem]Elem),
	}
	e.ac = e.Mul(A, C)
	e.ca = e.Mul(C, A)
	return e
}

// Store returns the interning context the engine allocates from.
func (e *Engine) Store() *Store { return e.store }

// AC returns the handle of a·c.
func (e *Engine) AC() Elem { return e.ac }

// CA returns the handle of c·a, the inverse of a·c.
func (e *Engine) CA() Elem { return e.ca }

// Mul returns the product x·y (x first, then y).
func (e *Engine) Mul(x, y Elem) Elem {
	if r, ok := mulFixed(x, y); ok {
		return r
	}
	k := pair{x, y}
	if r, ok := e.prod[k]; ok {
		return r
	}

	nx, ny := e.store.nodes[x], e.store.nodes[y]
	var r Elem
	if !ny.Swap {
		r = e.store.Lookup(nx.Swap, e.Mul(nx.Left, ny.Left), e.Mul(nx.Right, ny.Right))
	} else {
		r = e.store.Lookup(!nx.Swap, e.Mul(nx.Right, ny.Left), e.Mul(nx.Left, ny.Right))
	}
	e.prod[k] = r
	return r
}

// mulFixed handles products that need no recursion: the identity, the
// squares of the generators and the Klein four-group {1,b,c,d}.
func mulFixed(x, y Elem) (Elem, bool) {
	switch {
	case x == I:
		return y, true
	case y == I:
		return x, true
	case x == y && x < numFixed:
		return I, true
	case x >= B && x <= D && y >= B && y <= D:
		return B + C + D - x - y, true
	}
	return 0, false
}

// Inv returns the inverse of x.
func (e *Engine) Inv(x Elem) Elem {
	if x < numFixed {
		return x
	}
	if r, ok := e.inv[x]; ok {
		return r
	}
	n := e.store.nodes[x]
	var r Elem
	if n.Swap {
		r = e.store.Lookup(true, e.Inv(n.Right), e.Inv(n.Left))
	} else {
		r = e.store.Lookup(false, e.Inv(n.Left), e.Inv(n.Right))
	}
	e.inv[x] = r
	return r
}

// FromWord returns the element denoted by w by multiplying its generators
// left to right.
func (e *Engine) FromWord(w word.Word) Elem {
	x := I
	for _, s := range w {
		x = e.Mul(x, Generator(s))
	}
	return x
}

// Order returns the order of x, the least n > 0 with x^n = 1, trying at most
// max powers. Every element of the group has finite order, always a power of
// two, but it can be large.
func (e *Engine) Order(x Elem, max int) (int, bool) {
	p := x
	for n := 1; n <= max; n++ {
		if p == I {
			return n, true
		}
		p = e.Mul(p, x)
	}
	return 0, false
}

// Format renders x as a nested tree, see [Store.Format].
func (e *Engine) Format(x Elem) string { return e.store.Format(x) }
