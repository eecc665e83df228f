// Package metrics exposes Prometheus counters for filter synchronization and
// category loading. Every method is safe to call on a nil *Metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Export skip reasons.
const (
	SkipNotImported = "not_imported"
	SkipNoHistory   = "no_history"
)

// Metrics groups the counters on a dedicated registry.
type Metrics struct {
	registry       *prometheus.Registry
	imports        prometheus.Counter
	exports        prometheus.Counter
	exportsSkipped *prometheus.CounterVec
	categoryFetch  *prometheus.CounterVec
}

// New registers the counters on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		imports: factory.NewCounter(prometheus.CounterOpts{
			Name: "shopfilter_url_imports_total",
			Help: "The total number of times filters were seeded from the URL",
		}),
		exports: factory.NewCounter(prometheus.CounterOpts{
			Name: "shopfilter_url_exports_total",
			Help: "The total number of filter sets written back and published",
		}),
		exportsSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shopfilter_url_exports_skipped_total",
			Help: "The total number of filter changes that did not rewrite the URL",
		}, []string{"reason"}),
		categoryFetch: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shopfilter_category_fetches_total",
			Help: "The total number of category list fetches by result",
		}, []string{"result"}),
	}
}

// Registry returns the registry backing the counters.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Import() {
	if m != nil {
		m.imports.Inc()
	}
}

func (m *Metrics) Export() {
	if m != nil {
		m.exports.Inc()
	}
}

func (m *Metrics) ExportSkipped(reason string) {
	if m != nil {
		m.exportsSkipped.WithLabelValues(reason).Inc()
	}
}

// CategoryFetch records the outcome of a category list fetch.
func (m *Metrics) CategoryFetch(ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "failed"
	}
	m.categoryFetch.WithLabelValues(result).Inc()
}
