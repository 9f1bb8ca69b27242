package cowtrie

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var getsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "cowtrie_store_gets_total",
	Help: "The total number of store lookups",
})

var getMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "cowtrie_store_get_misses_total",
	Help: "The total number of store lookups that found no value of the requested type",
})

var putsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "cowtrie_store_puts_total",
	Help: "The total number of store puts",
})

var removesTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "cowtrie_store_removes_total",
	Help: "The total number of store removes",
})
