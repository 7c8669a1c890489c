package algebra

import (
	"github.com/matzehuels/grigorchuk/pkg/errors"
	"github.com/matzehuels/grigorchuk/pkg/word"
)

// Label names the right factor that last reached an element along a walk.
type Label uint8

const (
	// LabelNone marks an element no walk has reached.
	LabelNone Label = iota
	LabelA
	LabelB
	LabelC
	LabelD
	// LabelAC marks an element reached by right-multiplying with a·c.
	LabelAC
	// LabelCA marks an element reached by right-multiplying with c·a.
	LabelCA
)

var labelWords = [...]word.Word{
	LabelNone: nil,
	LabelA:    {word.A},
	LabelB:    {word.B},
	LabelC:    {word.C},
	LabelD:    {word.D},
	LabelAC:   {word.A, word.C},
	LabelCA:   {word.C, word.A},
}

// LabelOf returns the label of a single generator.
func LabelOf(s word.Symbol) Label {
	switch s {
	case word.A:
		return LabelA
	case word.B:
		return LabelB
	case word.C:
		return LabelC
	case word.D:
		return LabelD
	}
	return LabelNone
}

// Word returns the generators the label stands for, in multiplication order.
func (l Label) Word() word.Word {
	if int(l) >= len(labelWords) {
		return nil
	}
	return labelWords[l]
}

// String returns the label's generator word, or "-" for [LabelNone].
func (l Label) String() string {
	if l == LabelNone || int(l) >= len(labelWords) {
		return "-"
	}
	return labelWords[l].String()
}

// undo returns the element that reverses the label's step.
func (l Label) undo(e *Engine) (Elem, bool) {
	switch l {
	case LabelA:
		return A, true
	case LabelB:
		return B, true
	case LabelC:
		return C, true
	case LabelD:
		return D, true
	case LabelAC:
		return e.ca, true
	case LabelCA:
		return e.ac, true
	}
	return 0, false
}

// Trail is a side table of labels keyed by element. It holds the scratch
// data breadth-first search and lazy maps need to turn handles back into
// words; the interned nodes themselves carry none.
type Trail struct {
	labels map[Elem]Label
}

// NewTrail creates an empty trail.
func NewTrail() *Trail {
	return &Trail{labels: make(map[Elem]Label)}
}

// Set records that x was reached with l, replacing any earlier label.
func (t *Trail) Set(x Elem, l Label) {
	if l == LabelNone {
		delete(t.labels, x)
		return
	}
	t.labels[x] = l
}

// Label returns the label recorded for x.
func (t *Trail) Label(x Elem) Label { return t.labels[x] }

// Len returns the number of labeled elements.
func (t *Trail) Len() int { return len(t.labels) }

// Walk multiplies the identity by w one generator at a time, labeling every
// element along the way that has no label yet, and returns the product.
// The result can always be decoded afterwards.
func (t *Trail) Walk(e *Engine, w word.Word) Elem {
	x := I
	for _, s := range w {
		x = e.Mul(x, Generator(s))
		if x != I && t.labels[x] == LabelNone {
			t.labels[x] = LabelOf(s)
		}
	}
	return x
}

// Decode reconstructs a word for x by following labels back to the identity.
// The word is not necessarily the shortest one; it retraces whatever steps
// recorded the labels.
//
// Decode returns an [errors.ErrCodeUnknownElement] error for handles the
// engine's store never issued, an [errors.ErrCodeUnlabeled] error when some
// element on the way has no label, and [errors.ErrCodeLabelCycle] when the labels loop
// without reaching the identity.
func (t *Trail) Decode(e *Engine, x Elem) (word.Word, error) {
	if !e.store.Contains(x) {
		return nil, errors.New(errors.ErrCodeUnknownElement, "element %d not in store of %d", x, e.store.Len())
	}
	var steps []Label
	for x != I {
		if len(steps) > len(t.labels) {
			return nil, errors.New(errors.ErrCodeLabelCycle, "labels loop after %d steps", len(steps))
		}
		l := t.labels[x]
		g, ok := l.undo(e)
		if !ok {
			return nil, errors.New(errors.ErrCodeUnlabeled, "element %d has no label", x)
		}
		steps = append(steps, l)
		x = e.Mul(x, g)
	}

	var out word.Word
	for i := len(steps) - 1; i >= 0; i-- {
		out = append(out, steps[i].Word()...)
	}
	return out, nil
}
