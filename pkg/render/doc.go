// Package render turns materialized Cayley maps into pictures.
//
// The [nodelink] subpackage draws the tiles of a map as a Graphviz graph,
// one node per group element and one edge per generator step.
//
//	g, err := nodelink.Collect(ctx, m, 4)
//	dot := nodelink.ToDOT(g, nodelink.Options{Labels: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [nodelink]: github.com/matzehuels/grigorchuk/pkg/render/nodelink
package render
