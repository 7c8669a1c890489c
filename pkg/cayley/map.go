package cayley

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/grigorchuk/pkg/algebra"
	"github.com/matzehuels/grigorchuk/pkg/errors"
	"github.com/matzehuels/grigorchuk/pkg/observability"
	"github.com/matzehuels/grigorchuk/pkg/word"
)

// Host owns the nodes of a lazily built graph. A Map asks the host for a new
// node whenever a step reaches an element that has none yet, and tells it how
// to wire adjacency.
type Host[N comparable] interface {
	// NewNode allocates a node reached from `from` in direction dir. It must
	// return a node distinct from every node returned before.
	NewNode(from N, dir Direction) N

	// Connect records that slot back of `to` leads to `from`, and slot dir
	// of `from` leads to `to`.
	Connect(to N, back Direction, from N, dir Direction)
}

// MapOptions configures [NewMap].
type MapOptions struct {
	// Trail receives labels for newly reached elements. Nil creates a
	// private trail.
	Trail *algebra.Trail

	// Ball, when set, supplies distances for [Map.Distance].
	Ball *Ball

	// Logger receives step events at debug level. Nil selects log.Default().
	Logger *log.Logger
}

// Map binds host nodes to group elements. The origin node stands for the
// identity; every other node is created on the first step that reaches its
// element, so two walks that multiply to the same element meet at the same
// node.
type Map[N comparable] struct {
	id     uuid.UUID
	engine *algebra.Engine
	host   Host[N]
	trail  *algebra.Trail
	ball   *Ball
	logger *log.Logger

	origin N
	enc    map[algebra.Elem]N
	dec    map[N]algebra.Elem
	depth  map[N]int
}

// NewMap creates a map over host with root bound to the identity.
func NewMap[N comparable](e *algebra.Engine, host Host[N], root N, opts MapOptions) *Map[N] {
	trail := opts.Trail
	if trail == nil {
		trail = algebra.NewTrail()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	m := &Map[N]{
		id:     uuid.New(),
		engine: e,
		host:   host,
		trail:  trail,
		ball:   opts.Ball,
		logger: logger,
		origin: root,
		enc:    make(map[algebra.Elem]N),
		dec:    make(map[N]algebra.Elem),
		depth:  make(map[N]int),
	}
	m.bind(root, algebra.I, 0)
	return m
}

func (m *Map[N]) bind(n N, x algebra.Elem, depth int) {
	m.enc[x] = n
	m.dec[n] = x
	m.depth[n] = depth
}

// ID identifies the map for logs and exports.
func (m *Map[N]) ID() uuid.UUID { return m.id }

// Origin returns the node bound to the identity.
func (m *Map[N]) Origin() N { return m.origin }

// Engine returns the engine the map multiplies with.
func (m *Map[N]) Engine() *algebra.Engine { return m.engine }

// Trail returns the labels recorded by the map.
func (m *Map[N]) Trail() *algebra.Trail { return m.trail }

// Len returns the number of bound nodes.
func (m *Map[N]) Len() int { return len(m.dec) }

// Step returns the neighbor of from in direction dir, asking the host for a
// new node if the neighbor's element has none yet. Either way the host is
// told to connect the two nodes, so repeated steps are harmless.
//
// Step fails for nodes the map did not create and for directions outside
// [DirAC, DirB].
func (m *Map[N]) Step(from N, dir Direction) (N, error) {
	var zero N
	x, ok := m.dec[from]
	if !ok {
		return zero, errors.New(errors.ErrCodeUnknownNode, "node %v is not bound to an element", from)
	}
	if !dir.Valid() {
		return zero, &errors.DirectionError{Direction: int(dir), Max: Degree}
	}

	y := x
	for _, s := range dir.Label().Word() {
		y = m.engine.Mul(y, algebra.Generator(s))
	}

	n, found := m.enc[y]
	if !found {
		n = m.host.NewNode(from, dir)
		if _, taken := m.dec[n]; taken {
			return zero, errors.New(errors.ErrCodeInternal, "host returned bound node %v", n)
		}
		if m.trail.Label(y) == algebra.LabelNone && y != algebra.I {
			m.trail.Set(y, dir.Label())
		}
		m.bind(n, y, m.depth[from]+1)
		m.logger.Debug("map step", "map", m.id, "dir", dir, "elem", y, "nodes", len(m.dec))
	}
	m.host.Connect(n, dir.Back(), from, dir)
	observability.Map().OnStep(int(dir), !found)
	return n, nil
}

// Walk steps from node along dirs and returns the node reached.
func (m *Map[N]) Walk(from N, dirs ...Direction) (N, error) {
	n := from
	for _, d := range dirs {
		var err error
		if n, err = m.Step(n, d); err != nil {
			return n, err
		}
	}
	return n, nil
}

// Elem returns the element bound to n.
func (m *Map[N]) Elem(n N) (algebra.Elem, bool) {
	x, ok := m.dec[n]
	return x, ok
}

// Node returns the node bound to x, if any step has reached it.
func (m *Map[N]) Node(x algebra.Elem) (N, bool) {
	n, ok := m.enc[x]
	return n, ok
}

// Depth returns the number of steps after which n was first reached, or -1
// for unknown nodes. It is an upper bound on the distance.
func (m *Map[N]) Depth(n N) int {
	d, ok := m.depth[n]
	if !ok {
		return -1
	}
	return d
}

// Distance returns the distance of n's element from the identity as found by
// the ball, or -1 when there is no ball or it does not contain the element.
func (m *Map[N]) Distance(n N) int {
	x, ok := m.dec[n]
	if !ok || m.ball == nil {
		return -1
	}
	d, ok := m.ball.Distance(x)
	if !ok {
		return -1
	}
	return d
}

// Word decodes a word for n's element from the trail.
func (m *Map[N]) Word(n N) (word.Word, error) {
	x, ok := m.dec[n]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownNode, "node %v is not bound to an element", n)
	}
	return m.trail.Decode(m.engine, x)
}
