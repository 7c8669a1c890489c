package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/matzehuels/grigorchuk/pkg/algebra"
	"github.com/matzehuels/grigorchuk/pkg/cayley"
	"github.com/matzehuels/grigorchuk/pkg/observability"
)

func TestEnumerateMetrics(t *testing.T) {
	h := New(prometheus.NewRegistry())
	observability.SetEnumerateHooks(h)
	t.Cleanup(observability.Reset)

	if _, err := cayley.Enumerate(context.Background(), algebra.New(nil), algebra.NewTrail(), cayley.EnumerateOptions{Limit: 10}); err != nil {
		t.Fatal(err)
	}
	if got := testutil.ToFloat64(h.layers); got != 2 {
		t.Errorf("layers = %v, want 2", got)
	}
	if got := testutil.ToFloat64(h.discovered); got != 22 {
		t.Errorf("discovered = %v, want 22", got)
	}
	if got := testutil.ToFloat64(h.runs.WithLabelValues("success")); got != 1 {
		t.Errorf("successful runs = %v, want 1", got)
	}
}

func TestMapMetrics(t *testing.T) {
	h := New(prometheus.NewRegistry())
	observability.SetMapHooks(h)
	t.Cleanup(observability.Reset)

	m := cayley.NewTileMap(algebra.New(nil), cayley.MapOptions{})
	if _, err := m.Walk(m.Origin(), cayley.DirB, cayley.DirB, cayley.DirAC); err != nil {
		t.Fatal(err)
	}
	if got := testutil.ToFloat64(h.steps.WithLabelValues("2")); got != 2 {
		t.Errorf("b steps = %v, want 2", got)
	}
	if got := testutil.ToFloat64(h.tiles); got != 2 {
		t.Errorf("tiles = %v, want 2", got)
	}
}

func TestGather(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := New(reg)
	h.OnStep(0, true)
	h.OnComplete(context.Background(), 4, 10, 0, nil)

	samples, err := Gather(reg)
	if err != nil {
		t.Fatal(err)
	}
	values := make(map[string]float64)
	for _, s := range samples {
		values[s.Name+"{"+s.Labels+"}"] = s.Value
	}
	want := map[string]float64{
		"grigorchuk_map_steps_total{direction=0}":         1,
		"grigorchuk_map_tiles_created_total{}":            1,
		"grigorchuk_enumerate_discovered{}":               10,
		"grigorchuk_enumerate_runs_total{result=success}": 1,
		"grigorchuk_enumerate_duration_seconds{}":         1,
	}
	for k, v := range want {
		if values[k] != v {
			t.Errorf("%s = %v, want %v", k, values[k], v)
		}
	}
}
