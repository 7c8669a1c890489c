// Package expr parses generator expressions with grouping and powers.
//
// The grammar is
//
//	expr  = term*
//	term  = atom ( "^" int )?
//	atom  = letters | "(" expr ")"
//
// where letters is a run of generators from {a,b,c,d}. For example:
//
//	w, err := expr.Parse("(ab)^4 c")
//
// The result is expanded and reduced into a plain [word.Word].
package expr

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/matzehuels/grigorchuk/pkg/errors"
	"github.com/matzehuels/grigorchuk/pkg/word"
)

// MaxLength bounds the expanded length of a parsed expression.
const MaxLength = 1 << 20

// Expr is a sequence of terms multiplied left to right.
type Expr struct {
	Terms []*Term `parser:"@@*"`
}

// Term is a power of a letter run or a parenthesized expression.
type Term struct {
	Letters string `parser:"(  @Letters"`
	Group   *Expr  `parser:" | '(' @@ ')' )"`
	Caret   string `parser:"( @'^'"`
	Power   int    `parser:"  @Int )?"`
}

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Letters", Pattern: `[abcd]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[()^]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var exprParser = participle.MustBuild[Expr](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
)

// Parse parses s and returns its reduced expansion.
// Syntax errors and oversized expansions are reported as
// [errors.ErrCodeInvalidWord].
func Parse(s string) (word.Word, error) {
	x, err := ParseExpr(s)
	if err != nil {
		return nil, err
	}
	return x.Expand()
}

// ParseExpr parses s into its syntax tree without expanding it.
func ParseExpr(s string) (*Expr, error) {
	if strings.TrimSpace(s) == "" {
		return &Expr{}, nil
	}
	x, err := exprParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidWord, err, "parse %q", s)
	}
	return x, nil
}

// Expand multiplies out the expression and returns the reduced word.
func (x *Expr) Expand() (word.Word, error) {
	var out word.Word
	for _, t := range x.Terms {
		w, err := t.expand()
		if err != nil {
			return nil, err
		}
		out = word.Concat(out, w)
	}
	return out, nil
}

func (t *Term) expand() (word.Word, error) {
	var base word.Word
	if t.Group != nil {
		w, err := t.Group.Expand()
		if err != nil {
			return nil, err
		}
		base = w
	} else {
		base = word.Reduce(word.MustParse(t.Letters))
	}

	n := 1
	if t.Caret != "" {
		n = t.Power
	}
	if n > 0 && len(base) > MaxLength/n {
		return nil, errors.New(errors.ErrCodeInvalidWord, "expression expands beyond %d letters", MaxLength)
	}

	out := make(word.Word, 0, n*len(base))
	for i := 0; i < n; i++ {
		for _, sym := range base {
			out = word.Append(out, sym)
		}
	}
	return out, nil
}

// String renders the expression back in canonical syntax.
func (x *Expr) String() string {
	var b strings.Builder
	for i, t := range x.Terms {
		if i > 0 {
			b.WriteByte(' ')
		}
		if t.Group != nil {
			b.WriteString("(" + t.Group.String() + ")")
		} else {
			b.WriteString(t.Letters)
		}
		if t.Caret != "" {
			b.WriteString("^")
			b.WriteString(strconv.Itoa(t.Power))
		}
	}
	return b.String()
}
