// Package metrics records constellation editing activity in a Prometheus
// registry.
package metrics

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/philipparndt/constellation/pkg/constellation"
)

// Registry holds all metrics of one scene
type Registry struct {
	registry *prometheus.Registry

	PicksTotal            *prometheus.CounterVec
	EdgesDroppedTotal     prometheus.Counter
	RebuildsTotal         prometheus.Counter
	RebuildsDeferredTotal prometheus.Counter
	LiveEdges             prometheus.Gauge
	Stars                 prometheus.Gauge
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.PicksTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "constellation_picks_total",
			Help: "Pointer events handled by the graph, by outcome",
		},
		[]string{"outcome"}, // pending, cleared, edge, dropped, miss, invalid
	)

	r.EdgesDroppedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "constellation_edges_dropped_total",
			Help: "Edges discarded because the line buffer was full",
		},
	)

	r.RebuildsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "constellation_rebuilds_total",
			Help: "Line buffer rewrites",
		},
	)

	r.RebuildsDeferredTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "constellation_rebuilds_deferred_total",
			Help: "Rebuilds skipped because star positions were not mounted",
		},
	)

	r.LiveEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "constellation_live_edges",
			Help: "Edges currently written to the line buffer",
		},
	)

	r.Stars = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "constellation_stars",
			Help: "Stars in the point cloud",
		},
	)

	// Export every outcome from the start
	for _, o := range constellation.Outcomes() {
		r.PicksTotal.WithLabelValues(o.String())
	}

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Picked records a pointer event outcome
func (r *Registry) Picked(o constellation.Outcome) {
	r.PicksTotal.WithLabelValues(o.String()).Inc()
	if o == constellation.OutcomeDropped {
		r.EdgesDroppedTotal.Inc()
	}
}

// Rebuilt records a line buffer rewrite
func (r *Registry) Rebuilt(liveEdges int) {
	r.RebuildsTotal.Inc()
	r.LiveEdges.Set(float64(liveEdges))
}

// Deferred records a rebuild that waited for the positions
func (r *Registry) Deferred() {
	r.RebuildsDeferredTotal.Inc()
}

// SetStars records the size of the point cloud
func (r *Registry) SetStars(n int) {
	r.Stars.Set(float64(n))
}

// Dump writes every sample as "name{labels} value", one per line, sorted by
// metric name
func (r *Registry) Dump(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	sort.Slice(families, func(i, j int) bool {
		return families[i].GetName() < families[j].GetName()
	})

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if _, err := fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), labels(m), value(mf.GetType(), m)); err != nil {
				return err
			}
		}
	}
	return nil
}

func labels(m *dto.Metric) string {
	pairs := m.GetLabel()
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, lp := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func value(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_UNTYPED:
		return m.GetUntyped().GetValue()
	default:
		return 0
	}
}
