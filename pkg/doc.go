// Package pkg provides the libraries behind the grigorchuk tool.
//
// # Overview
//
// The Grigorchuk group acts on the infinite binary tree. It is generated by
// four involutions a, b, c, d, and it is finitely generated yet has
// intermediate growth, which makes its Cayley graph a curious playing field.
// The pkg directory is organized bottom-up:
//
//  1. [word] - Words in a, b, c, d: free reduction, the section split, the
//     word problem, and the expression parser in [word/expr]
//  2. [algebra] - Interned canonical forms, multiplication, and decoding
//     handles back into words
//  3. [cayley] - Breadth-first enumeration and the lazily built map of the
//     subgroup generated by b, ac and ca
//  4. [render/nodelink] and [io] - Graphviz drawings and JSON snapshots
//  5. [config], [errors], [observability], [buildinfo] - Ambient support
//
// # Quick Start
//
//	e := algebra.New(nil)
//	x := e.FromWord(word.MustParse("abab"))
//	fmt.Println(e.Format(x)) // (a(d,a),a(a,d))
//
//	m := cayley.NewTileMap(e, cayley.MapOptions{})
//	t, _ := m.Walk(m.Origin(), cayley.DirAC, cayley.DirB)
//	w, _ := m.Word(t) // acb
//
// [word]: github.com/matzehuels/grigorchuk/pkg/word
// [word/expr]: github.com/matzehuels/grigorchuk/pkg/word/expr
// [algebra]: github.com/matzehuels/grigorchuk/pkg/algebra
// [cayley]: github.com/matzehuels/grigorchuk/pkg/cayley
// [render/nodelink]: github.com/matzehuels/grigorchuk/pkg/render/nodelink
// [io]: github.com/matzehuels/grigorchuk/pkg/io
// [config]: github.com/matzehuels/grigorchuk/pkg/config
// [errors]: github.com/matzehuels/grigorchuk/pkg/errors
// [observability]: github.com/matzehuels/grigorchuk/pkg/observability
// [buildinfo]: github.com/matzehuels/grigorchuk/pkg/buildinfo
package pkg
