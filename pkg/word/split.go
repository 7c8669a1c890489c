package word

import "strings"

// Splitting is the image of a word under the wreath recursion: the word acts
// on the binary tree by optionally swapping the two halves at the root, then
// acting on each half by Left and Right.
type Splitting struct {
	Swap  bool // odd number of a's
	Left  Word // reduced action routed to the first half
	Right Word // reduced action routed to the second half
}

// Split decomposes w into its swap flag and the two reduced half-words.
//
// Letters are routed according to the number of a's seen so far:
//
//	b -> (c, a)   c -> (d, a)   d -> (b, 1)   a -> toggle swap
//
// with the sides exchanged while the swap flag is set. The halves are built
// with [Append], so they are already reduced. w itself need not be reduced.
func Split(w Word) Splitting {
	var sp Splitting
	for _, s := range w {
		switch s {
		case A:
			sp.Swap = !sp.Swap
		case B:
			sp.route(C, A)
		case C:
			sp.route(D, A)
		case D:
			if sp.Swap {
				sp.Right = Append(sp.Right, B)
			} else {
				sp.Left = Append(sp.Left, B)
			}
		}
	}
	return sp
}

func (sp *Splitting) route(first, second Symbol) {
	if sp.Swap {
		first, second = second, first
	}
	sp.Left = Append(sp.Left, first)
	sp.Right = Append(sp.Right, second)
}

// SplitAligned is the unreduced form of [Split] meant for display. Every
// input letter produces exactly one character on each side, with '-'
// standing for "nothing routed here", so both halves line up under w.
func SplitAligned(w Word) (swap bool, left, right string) {
	var l, r strings.Builder
	emit := func(x, y byte) {
		if swap {
			x, y = y, x
		}
		l.WriteByte(x)
		r.WriteByte(y)
	}
	for _, s := range w {
		switch s {
		case A:
			swap = !swap
			l.WriteByte('-')
			r.WriteByte('-')
		case B:
			emit('c', 'a')
		case C:
			emit('d', 'a')
		case D:
			emit('b', '-')
		}
	}
	return swap, l.String(), r.String()
}

// Encode renders the recursive tree form of w, for example
//
//	Encode(MustParse("b")) == "((d,a(I,I)),a(I,I))"
//
// where I is the identity, d is kept as a leaf and a leading "a" marks a
// swap at that level.
func Encode(w Word) string {
	var b strings.Builder
	encode(&b, Reduce(w))
	return b.String()
}

func encode(b *strings.Builder, w Word) {
	switch {
	case len(w) == 0:
		b.WriteByte('I')
	case len(w) == 1 && w[0] == D:
		b.WriteByte('d')
	default:
		sp := Split(w)
		if sp.Swap {
			b.WriteByte('a')
		}
		b.WriteByte('(')
		encode(b, sp.Left)
		b.WriteByte(',')
		encode(b, sp.Right)
		b.WriteByte(')')
	}
}
