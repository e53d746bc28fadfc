package metrics

import "github.com/prometheus/client_golang/prometheus"

var searchesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "homestay",
		Name:      "searches_total",
		Help:      "Total number of homestay searches by outcome",
	},
	[]string{"relaxed"},
)

func init() {
	prometheus.MustRegister(searchesTotal)
}

// Engine feeds the search pipeline counters.
type Engine struct{}

// SearchExecuted records one completed search.
func (Engine) SearchExecuted(relaxed bool) {
	label := "false"
	if relaxed {
		label = "true"
	}
	searchesTotal.WithLabelValues(label).Inc()
}
