package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Search and catalogue metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total number of searches by kind",
		},
		[]string{"kind"},
	)

	SearchZeroResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_zero_results_total",
			Help:      "Searches that returned no results",
		},
		[]string{"kind"},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Search duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
		[]string{"kind"},
	)

	CatalogueProducts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalogue_products",
			Help:      "Products in the served catalogue",
		},
	)

	CatalogueCategories = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalogue_categories",
			Help:      "Categories in the served catalogue",
		},
	)

	CatalogueReloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalogue_reloads_total",
			Help:      "Catalogue reload attempts by result",
		},
		[]string{"result"}, // "changed" / "unchanged" / "error"
	)
)

func init() {
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchZeroResultsTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(CatalogueProducts)
	prometheus.MustRegister(CatalogueCategories)
	prometheus.MustRegister(CatalogueReloadsTotal)
}

// SearchObserver records engine searches. It satisfies search.Observer.
type SearchObserver struct{}

// ObserveSearch counts one search of kind and its duration.
func (SearchObserver) ObserveSearch(kind string, duration time.Duration, results int) {
	SearchesTotal.WithLabelValues(kind).Inc()
	SearchDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if results == 0 {
		SearchZeroResultsTotal.WithLabelValues(kind).Inc()
	}
}

// ReloadObserver records catalogue reloads. It satisfies indexer.ReloadObserver.
type ReloadObserver struct{}

// ObserveReload forwards to the package-level ObserveReload.
func (ReloadObserver) ObserveReload(changed bool, err error, products, categories int) {
	ObserveReload(changed, err, products, categories)
}

// ObserveReload records the outcome of a catalogue reload and, on success,
// the size of the served catalogue.
func ObserveReload(changed bool, err error, products, categories int) {
	switch {
	case err != nil:
		CatalogueReloadsTotal.WithLabelValues("error").Inc()
		return
	case changed:
		CatalogueReloadsTotal.WithLabelValues("changed").Inc()
	default:
		CatalogueReloadsTotal.WithLabelValues("unchanged").Inc()
	}
	CatalogueProducts.Set(float64(products))
	CatalogueCategories.Set(float64(categories))
}
