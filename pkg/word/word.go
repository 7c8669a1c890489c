package word

import (
	"strings"
	"unicode"

	"github.com/matzehuels/grigorchuk/pkg/errors"
)

// Symbol is one of the four generators a, b, c, d.
type Symbol byte

// Generators of the group.
const (
	A Symbol = 'a'
	B Symbol = 'b'
	C Symbol = 'c'
	D Symbol = 'd'
)

// Symbols lists the generators in alphabetical order.
var Symbols = [4]Symbol{A, B, C, D}

// Valid reports whether s is one of the four generators.
func (s Symbol) Valid() bool {
	return s == A || s == B || s == C || s == D
}

func (s Symbol) String() string { return string(rune(s)) }

// Word is a product of generators read left to right. The empty word is the
// identity. Words are not canonical: many words denote the same element.
type Word []Symbol

// String renders the word as a plain string of generator letters.
func (w Word) String() string {
	var b strings.Builder
	b.Grow(len(w))
	for _, s := range w {
		b.WriteByte(byte(s))
	}
	return b.String()
}

// Parse reads a word from s. Whitespace is ignored; any other character
// outside {a,b,c,d} yields an [errors.ErrCodeInvalidWord] error.
func Parse(s string) (Word, error) {
	w := make(Word, 0, len(s))
	for i, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		sym := Symbol(r)
		if r > unicode.MaxASCII || !sym.Valid() {
			return nil, errors.New(errors.ErrCodeInvalidWord, "invalid generator %q at offset %d", r, i)
		}
		w = append(w, sym)
	}
	return w, nil
}

// MustParse is like [Parse] but panics on invalid input.
// It is intended for tests and package-level literals.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

// Append appends s to w applying the local rewrite rules:
//   - a symbol equal to the last one cancels it (every generator is an involution)
//   - two distinct symbols from {b,c,d} merge into the third one
//
// Otherwise s is pushed. w is modified in place when possible, as with the
// builtin append.
func Append(w Word, s Symbol) Word {
	n := len(w)
	switch {
	case n == 0:
		return append(w, s)
	case w[n-1] == s:
		return w[:n-1]
	case s != A && w[n-1] != A:
		w[n-1] = w[n-1] ^ s ^ B ^ C ^ D
		return w
	default:
		return append(w, s)
	}
}

// Reduce returns the reduced form of w. The result never aliases w, is no
// longer than w, and Reduce(Reduce(w)) equals Reduce(w).
func Reduce(w Word) Word {
	out := make(Word, 0, len(w))
	for _, s := range w {
		out = Append(out, s)
	}
	return out
}

// Concat returns the reduced product of the given words.
func Concat(ws ...Word) Word {
	var out Word
	for _, w := range ws {
		for _, s := range w {
			out = Append(out, s)
		}
	}
	return out
}

// Inverse returns the inverse of w. Since every generator is an
// involution this is simply the reversal.
func Inverse(w Word) Word {
	out := make(Word, len(w))
	for i, s := range w {
		out[len(w)-1-i] = s
	}
	return out
}

// Equal reports whether w and v are the same letter sequence.
// Use [IsIdentity] on w·v⁻¹ to compare group values.
func Equal(w, v Word) bool {
	if len(w) != len(v) {
		return false
	}
	for i := range w {
		if w[i] != v[i] {
			return false
		}
	}
	return true
}
