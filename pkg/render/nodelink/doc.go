// Package nodelink renders Cayley maps as node-link diagrams.
//
// # Overview
//
// [Collect] walks a lazy [cayley.Map] breadth-first up to a radius,
// materializing tiles as it goes, and returns a [Graph] snapshot. [ToDOT]
// converts the snapshot to Graphviz DOT, and [RenderSVG] lays it out in
// process.
//
// # Options
//
// The [Options] struct mirrors the view settings of the game:
//
//   - Labels: annotate each tile with its decoded word
//   - Lines: draw each tile as the two halves g | ga
//   - Canvas: fill each tile with [CanvasColor] of its distance
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for SVG layout and
// [github.com/emirpasic/gods] for the breadth-first frontier and the
// ordered edge set.
package nodelink
