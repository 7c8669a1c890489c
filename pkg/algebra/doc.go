// Package algebra computes in the Grigorchuk group on interned canonical
// forms.
//
// # Overview
//
// Every group element is determined by how it acts on the infinite rooted
// binary tree: whether it swaps the two subtrees at the root, and which
// elements act on each subtree afterwards. Writing that as a triple
//
//	g = (swap, left, right)
//
// and interning the triples in a [Store] gives every element exactly one
// handle, an [Elem]. Two elements are equal if and only if their handles are
// equal, so equality is a single integer comparison.
//
// The five generators are fixed at store creation, with mutual references
// resolved by handle rather than by pointer:
//
//	I = (false, I, I)   a = (true, I, I)
//	b = (false, a, c)   c = (false, a, d)   d = (false, I, b)
//
// # Multiplication
//
// [Engine.Mul] multiplies two handles directly on the triples. When the right
// operand does not swap, the sections multiply pointwise; when it does, the
// left operand's sections cross over. Products are memoized per pair, and the
// recursion bottoms out on seven constant cases (identity, the four
// involutions, and the Klein four-group {1,b,c,d}).
//
// # Decoding
//
// Canonical triples do not remember a word. A [Trail] is a side table that
// records, for elements reached by a walk or a breadth-first search, the
// generator that reached them. [Trail.Decode] follows the trail back to the
// identity and returns the generator word.
//
// # Concurrency
//
// Store, Engine and Trail are not safe for concurrent use. All operations
// mutate shared caches, so callers must confine an engine to one goroutine
// or guard it with a lock.
package algebra
