// Package word manipulates generator words of the Grigorchuk group.
//
// # Overview
//
// The group is generated by four involutions a, b, c, d where {1, b, c, d}
// forms a Klein four-group. A [Word] is an unreduced product of these
// generators, read left to right.
//
// All functions here operate on words only and never touch interned
// canonical forms (see the algebra package for those):
//
//   - [Append] and [Reduce] apply the local rewrite rules (aa=1, bb=1,
//     bc=d, ...) to produce a reduced word.
//   - [Split] expresses the self-similar action on the binary tree: a word
//     becomes a swap flag and two shorter words acting on each half.
//   - [IsIdentity] decides the word problem by recursive splitting.
//
// # Parsing
//
// [Parse] turns user input such as "abac" into a [Word], rejecting any
// symbol outside {a,b,c,d}. The expr subpackage adds grouping and powers
// like "(ab)^4".
//
// [Parse]: github.com/matzehuels/grigorchuk/pkg/word.Parse
package word
