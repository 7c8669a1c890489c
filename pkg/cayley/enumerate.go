package cayley

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/matzehuels/grigorchuk/pkg/algebra"
	"github.com/matzehuels/grigorchuk/pkg/observability"
)

// DefaultLimit is the node budget used when EnumerateOptions.Limit is unset.
const DefaultLimit = 10000

// EnumerateOptions configures [Enumerate].
type EnumerateOptions struct {
	// Limit caps the number of elements whose neighbors are expanded.
	// Values <= 0 select [DefaultLimit]. Reaching the limit is not an error.
	Limit int

	// Logger receives progress at debug level. Nil selects log.Default().
	Logger *log.Logger

	// OnLayer, if set, is called whenever the search starts a new distance,
	// with the number of elements discovered so far.
	OnLayer func(depth, discovered int)
}

// Ball is the result of a breadth-first enumeration: every discovered element
// together with its distance from the identity.
type Ball struct {
	// Order lists discovered elements in the order they were found, so
	// distances along it never decrease. Order[0] is always the identity.
	Order []algebra.Elem

	dist      map[algebra.Elem]int
	processed int
	radius    int
}

// Distance returns the word length of x in b, ac and ca, if x was discovered.
func (b *Ball) Distance(x algebra.Elem) (int, bool) {
	d, ok := b.dist[x]
	return d, ok
}

// Len returns the number of discovered elements.
func (b *Ball) Len() int { return len(b.Order) }

// Processed returns the number of elements whose neighbors were expanded.
func (b *Ball) Processed() int { return b.processed }

// Radius returns the largest distance r such that every element within
// distance r has been discovered.
func (b *Ball) Radius() int { return b.radius }

// Layers returns the number of discovered elements at each distance. Layers
// beyond [Ball.Radius] may be partial.
func (b *Ball) Layers() []int {
	var layers []int
	for _, x := range b.Order {
		d := b.dist[x]
		for len(layers) <= d {
			layers = append(layers, 0)
		}
		layers[d]++
	}
	return layers
}

// Enumerate runs a breadth-first search from the identity over the
// generators b, ac and ca. It expands at most opts.Limit elements; every
// element discovered along the way receives a distance, and a label in trail
// naming the step that first reached it.
//
// The context is checked once per expanded element. On cancellation the
// partial ball is returned together with the context's error.
func Enumerate(ctx context.Context, e *algebra.Engine, trail *algebra.Trail, opts EnumerateOptions) (*Ball, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	ctx, span := otel.Tracer("cayley").Start(ctx, "cayley.Enumerate",
		trace.WithAttributes(attribute.Int("limit", limit)))
	defer span.End()

	hooks := observability.Enumerate()
	start := time.Now()

	ball := &Ball{dist: make(map[algebra.Elem]int)}
	visit := func(x algebra.Elem, l algebra.Label, d int) {
		if _, ok := ball.dist[x]; ok {
			return
		}
		ball.dist[x] = d
		ball.Order = append(ball.Order, x)
		if x != algebra.I && trail.Label(x) == algebra.LabelNone {
			trail.Set(x, l)
		}
	}
	visit(algebra.I, algebra.LabelNone, 0)

	var err error
	depth, next := 0, len(ball.Order)
	for i := 0; i < limit && i < len(ball.Order); i++ {
		if err = ctx.Err(); err != nil {
			break
		}
		if i == next {
			depth++
			ball.radius = depth
			next = len(ball.Order)
			logger.Debug("enumerate", "depth", depth, "discovered", len(ball.Order))
			hooks.OnLayer(ctx, depth, len(ball.Order))
			if opts.OnLayer != nil {
				opts.OnLayer(depth, len(ball.Order))
			}
		}

		x := ball.Order[i]
		d := ball.dist[x] + 1
		visit(e.Mul(x, algebra.B), algebra.LabelB, d)
		visit(e.Mul(x, e.AC()), algebra.LabelAC, d)
		visit(e.Mul(x, e.CA()), algebra.LabelCA, d)
		ball.processed++
	}
	if err == nil && ball.processed == next {
		ball.radius = depth + 1
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "enumeration canceled")
	}
	span.SetAttributes(
		attribute.Int("processed", ball.processed),
		attribute.Int("discovered", len(ball.Order)),
		attribute.Int("radius", ball.radius),
	)
	hooks.OnComplete(ctx, ball.processed, len(ball.Order), time.Since(start), err)
	logger.Debug("enumerate done", "processed", ball.processed, "discovered", len(ball.Order), "elapsed", time.Since(start))
	return ball, err
}
