package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// BridgeMetrics counts the asset movements processed by the bridge.
type BridgeMetrics struct {
	Registrations prometheus.Counter
	Deposits      prometheus.Counter
	Withdrawals   prometheus.Counter
	Transfers     prometheus.Counter
	Failures      *prometheus.CounterVec
}

func NewBridgeMetrics() *BridgeMetrics {
	return &BridgeMetrics{
		Registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nftbridge_registrations_total",
			Help: "Number of foreign assets registered",
		}),
		Deposits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nftbridge_deposits_total",
			Help: "Number of instances deposited",
		}),
		Withdrawals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nftbridge_withdrawals_total",
			Help: "Number of instances withdrawn",
		}),
		Transfers: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nftbridge_transfers_total",
			Help: "Number of instances transferred",
		}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nftbridge_failures_total",
			Help: "Number of failed operations by kind",
		}, []string{"operation"}),
	}
}

// Register attaches all counters to the given registry.
func (m *BridgeMetrics) Register(r prometheus.Registerer) {
	r.MustRegister(m.Registrations, m.Deposits, m.Withdrawals, m.Transfers, m.Failures)
}
