package sorting

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sortRuns = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "dsa_sort_runs_total",
		Help: "The total number of sorts performed",
	}, []string{"algorithm"})

	sortComparisons = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "dsa_sort_comparisons_total",
		Help: "The total number of predicate calls made while sorting",
	}, []string{"algorithm"})

	sortElements = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "dsa_sort_elements_total",
		Help: "The total number of elements sorted",
	}, []string{"algorithm"})
)

// Instrument returns a copy of alg whose Sort records runs, elements and
// comparisons in the dsa_sort_* counters under alg.Name.
func Instrument[T any](alg Algorithm[T]) Algorithm[T] {
	inner := alg.Sort

	alg.Sort = func(s []T, less Less[T]) {
		counted, counter := Counting(less)

		inner(s, counted)

		sortRuns.WithLabelValues(alg.Name).Inc()
		sortElements.WithLabelValues(alg.Name).Add(float64(len(s)))
		sortComparisons.WithLabelValues(alg.Name).Add(float64(counter.Comparisons()))
	}

	return alg
}
