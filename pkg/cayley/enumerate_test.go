package cayley

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/matzehuels/grigorchuk/pkg/algebra"
	"github.com/matzehuels/grigorchuk/pkg/observability"
)

func TestEnumerateLayers(t *testing.T) {
	tests := []struct {
		limit     int
		discovery int
		radius    int
		layers    []int
	}{
		{1, 4, 1, []int{1, 3}},
		{4, 10, 2, []int{1, 3, 6}},
		{10, 22, 3, []int{1, 3, 6, 12}},
		{100, 179, 6, []int{1, 3, 6, 12, 21, 36, 63, 37}},
	}
	for _, tt := range tests {
		e := algebra.New(nil)
		ball, err := Enumerate(context.Background(), e, algebra.NewTrail(), EnumerateOptions{Limit: tt.limit})
		if err != nil {
			t.Fatalf("Enumerate(%d): %v", tt.limit, err)
		}
		if ball.Processed() != tt.limit {
			t.Errorf("limit %d: Processed = %d", tt.limit, ball.Processed())
		}
		if ball.Len() != tt.discovery {
			t.Errorf("limit %d: Len = %d, want %d", tt.limit, ball.Len(), tt.discovery)
		}
		if ball.Radius() != tt.radius {
			t.Errorf("limit %d: Radius = %d, want %d", tt.limit, ball.Radius(), tt.radius)
		}
		if got := ball.Layers(); !reflect.DeepEqual(got, tt.layers) {
			t.Errorf("limit %d: Layers = %v, want %v", tt.limit, got, tt.layers)
		}
	}
}

func TestEnumerateDefaultLimit(t *testing.T) {
	ball, err := Enumerate(context.Background(), algebra.New(nil), algebra.NewTrail(), EnumerateOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if ball.Processed() != DefaultLimit {
		t.Errorf("Processed = %d, want %d", ball.Processed(), DefaultLimit)
	}
}

func TestEnumerateBreadthFirst(t *testing.T) {
	e := algebra.New(nil)
	trail := algebra.NewTrail()
	ball, err := Enumerate(context.Background(), e, trail, EnumerateOptions{Limit: 500})
	if err != nil {
		t.Fatal(err)
	}
	if ball.Order[0] != algebra.I {
		t.Fatalf("Order[0] = %d, want identity", ball.Order[0])
	}

	prev := 0
	for i, x := range ball.Order {
		d, ok := ball.Distance(x)
		if !ok {
			t.Fatalf("Order[%d] has no distance", i)
		}
		if d < prev {
			t.Fatalf("distance drops from %d to %d at %d", prev, d, i)
		}
		prev = d

		// Some neighbor lies one layer closer. Since ca inverts ac and b is
		// an involution, the neighbors of x are also its predecessors.
		neighbors := []algebra.Elem{e.Mul(x, algebra.B), e.Mul(x, e.AC()), e.Mul(x, e.CA())}
		if i < ball.Processed() {
			for _, y := range neighbors {
				dy, ok := ball.Distance(y)
				if !ok {
					t.Fatalf("neighbor of processed element %d not discovered", x)
				}
				if dy < d-1 || dy > d+1 {
					t.Fatalf("neighbor distance %d next to %d", dy, d)
				}
			}
		}
		if d == 0 {
			continue
		}
		found := false
		for _, y := range neighbors {
			if dy, ok := ball.Distance(y); ok && dy == d-1 {
				found = true
			}
		}
		if !found {
			t.Fatalf("element %d at distance %d has no predecessor", x, d)
		}
	}
}

func TestEnumerateLabelsDecode(t *testing.T) {
	e := algebra.New(nil)
	trail := algebra.NewTrail()
	ball, err := Enumerate(context.Background(), e, trail, EnumerateOptions{Limit: 300})
	if err != nil {
		t.Fatal(err)
	}
	if trail.Len() != ball.Len()-1 {
		t.Errorf("trail has %d labels, want %d", trail.Len(), ball.Len()-1)
	}
	for _, x := range ball.Order {
		w, err := trail.Decode(e, x)
		if err != nil {
			t.Fatalf("Decode(%d): %v", x, err)
		}
		if got := e.FromWord(w); got != x {
			t.Fatalf("FromWord(Decode(%d)) = %d (word %q)", x, got, w)
		}
	}
}

func TestEnumerateAssociative(t *testing.T) {
	e := algebra.New(nil)
	ball, err := Enumerate(context.Background(), e, algebra.NewTrail(), EnumerateOptions{Limit: 1000})
	if err != nil {
		t.Fatal(err)
	}
	xs := ball.Order
	for i := 0; i < len(xs); i += 97 {
		for j := 1; j < len(xs); j += 89 {
			for k := 2; k < len(xs); k += 101 {
				x, y, z := xs[i], xs[j], xs[k]
				if l, r := e.Mul(e.Mul(x, y), z), e.Mul(x, e.Mul(y, z)); l != r {
					t.Fatalf("(%d*%d)*%d = %d, %d*(%d*%d) = %d", x, y, z, l, x, y, z, r)
				}
			}
		}
	}
}

func TestEnumerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ball, err := Enumerate(ctx, algebra.New(nil), algebra.NewTrail(), EnumerateOptions{Limit: 50})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if ball.Processed() != 0 || ball.Len() != 1 {
		t.Errorf("canceled ball: processed %d, len %d", ball.Processed(), ball.Len())
	}
}

type recordingEnumerateHooks struct {
	observability.NoopEnumerateHooks
	layers    []int
	completed int
}

func (h *recordingEnumerateHooks) OnLayer(_ context.Context, depth, _ int) {
	h.layers = append(h.layers, depth)
}

func (h *recordingEnumerateHooks) OnComplete(_ context.Context, processed, _ int, _ time.Duration, _ error) {
	h.completed = processed
}

func TestEnumerateHooks(t *testing.T) {
	h := &recordingEnumerateHooks{}
	observability.SetEnumerateHooks(h)
	t.Cleanup(observability.Reset)

	if _, err := Enumerate(context.Background(), algebra.New(nil), algebra.NewTrail(), EnumerateOptions{Limit: 10}); err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2}; !reflect.DeepEqual(h.layers, want) {
		t.Errorf("layers = %v, want %v", h.layers, want)
	}
	if h.completed != 10 {
		t.Errorf("completed = %d, want 10", h.completed)
	}
}

func TestEnumerateOnLayer(t *testing.T) {
	var got [][2]int
	opts := EnumerateOptions{
		Limit: 10,
		OnLayer: func(depth, discovered int) {
			got = append(got, [2]int{depth, discovered})
		},
	}
	if _, err := Enumerate(context.Background(), algebra.New(nil), algebra.NewTrail(), opts); err != nil {
		t.Fatal(err)
	}
	if want := [][2]int{{1, 4}, {2, 10}}; !reflect.DeepEqual(got, want) {
		t.Errorf("OnLayer calls = %v, want %v", got, want)
	}
}
