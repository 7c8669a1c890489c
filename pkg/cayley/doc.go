// Package cayley builds the Cayley graph of the Grigorchuk subgroup
// generated by b, ac and ca.
//
// # Overview
//
// Every element g of the subgroup has exactly three neighbors: g·ac, g·ca
// and g·b. Since ca is the inverse of ac and b is an involution, the graph is
// undirected and trivalent, and each tile of a game map corresponds to one
// group element. Because every element has finite order, walking any fixed
// pattern of directions eventually returns to the start.
//
// The package provides two views of the same graph:
//
//   - [Enumerate] runs a breadth-first search from the identity up to a node
//     budget and records every discovered element's distance in a [Ball].
//   - [Map] materializes the graph lazily for a host engine: the host owns the
//     nodes, and [Map.Step] binds a new node to a group element the first time
//     a neighbor is requested.
//
// Both record how each element was reached in a shared [algebra.Trail], so the
// words labeling tiles can be decoded later.
//
// # Directions
//
// A [Direction] selects one of the three generators:
//
//	DirAC (0) -> ac    DirCA (1) -> ca    DirB (2) -> b
//
// Stepping in direction d and then in d.Back() returns to the start.
//
// # Concurrency
//
// Maps and balls share the engine's caches and are not safe for concurrent
// use.
package cayley
