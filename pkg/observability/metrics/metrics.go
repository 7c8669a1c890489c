// Package metrics implements the observability hooks with Prometheus
// collectors.
//
//	reg := prometheus.NewRegistry()
//	h := metrics.New(reg)
//	observability.SetEnumerateHooks(h)
//	observability.SetMapHooks(h)
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/grigorchuk/pkg/observability"
)

// Hooks records enumeration and map events. It satisfies both
// [observability.EnumerateHooks] and [observability.MapHooks].
type Hooks struct {
	layers     prometheus.Counter
	runs       *prometheus.CounterVec
	discovered prometheus.Gauge
	duration   prometheus.Histogram
	steps      *prometheus.CounterVec
	tiles      prometheus.Counter
}

var (
	_ observability.EnumerateHooks = (*Hooks)(nil)
	_ observability.MapHooks       = (*Hooks)(nil)
)

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Hooks {
	f := promauto.With(reg)
	return &Hooks{
		layers: f.NewCounter(prometheus.CounterOpts{
			Name: "grigorchuk_enumerate_layers_total",
			Help: "Distance layers started by breadth-first enumeration",
		}),
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "grigorchuk_enumerate_runs_total",
			Help: "Enumeration runs by result",
		}, []string{"result"}),
		discovered: f.NewGauge(prometheus.GaugeOpts{
			Name: "grigorchuk_enumerate_discovered",
			Help: "Elements discovered by the last enumeration",
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "grigorchuk_enumerate_duration_seconds",
			Help:    "Enumeration duration",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10},
		}),
		steps: f.NewCounterVec(prometheus.CounterOpts{
			Name: "grigorchuk_map_steps_total",
			Help: "Map steps by direction",
		}, []string{"direction"}),
		tiles: f.NewCounter(prometheus.CounterOpts{
			Name: "grigorchuk_map_tiles_created_total",
			Help: "Tiles allocated by map steps",
		}),
	}
}

func (h *Hooks) OnLayer(context.Context, int, int) {
	h.layers.Inc()
}

func (h *Hooks) OnComplete(_ context.Context, _, discovered int, d time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "canceled"
	}
	h.runs.WithLabelValues(result).Inc()
	h.discovered.Set(float64(discovered))
	h.duration.Observe(d.Seconds())
}

func (h *Hooks) OnStep(direction int, created bool) {
	h.steps.WithLabelValues(strconv.Itoa(direction)).Inc()
	if created {
		h.tiles.Inc()
	}
}

// Sample is one gathered metric value.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

// Gather reads counter and gauge values from g, sorted by name.
// Histograms report their sample count.
func Gather(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			s := Sample{Name: mf.GetName()}
			for i, lp := range m.GetLabel() {
				if i > 0 {
					s.Labels += ","
				}
				s.Labels += lp.GetName() + "=" + lp.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				s.Value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				s.Value = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				s.Value = float64(m.GetHistogram().GetSampleCount())
			}
			out = append(out, s)
		}
	}
	return out, nil
}
