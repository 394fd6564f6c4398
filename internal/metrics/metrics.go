// Package metrics holds the Prometheus instrumentation for the balance
// refresh pipeline. Collectors are registered on the default registry
// and exposed by the API's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FetchCycles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "networth_fetch_cycles_total",
		Help: "Completed provider fetch cycles, including partial ones.",
	})

	ReadingsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "networth_balance_readings_written_total",
		Help: "Balance readings appended, labelled by source.",
	}, []string{"source"})

	UnmatchedAccounts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "networth_unmatched_provider_accounts_total",
		Help: "Provider accounts that matched no registered account.",
	}, []string{"provider"})

	ProviderErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "networth_provider_errors_total",
		Help: "Provider fetch failures, labelled by provider.",
	}, []string{"provider"})
)
