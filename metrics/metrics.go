package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CheckoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "library_checkouts_total",
		Help: "Checkout attempts by outcome.",
	}, []string{"outcome"})

	ReturnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "library_returns_total",
		Help: "Return attempts by outcome.",
	}, []string{"outcome"})

	AuthDeniedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "library_auth_denied_total",
		Help: "Requests rejected by the role guard.",
	})
)
