package mdns

import "github.com/prometheus/client_golang/prometheus"

// Metrics collects the counters and histograms a responder/querier
// exposes, modelled on api/grpc/middleware/middleware.go's
// CounterVec/HistogramVec usage pattern. Callers register Metrics
// against their own prometheus.Registerer; nothing in this package
// registers against the global default registry on import.
type Metrics struct {
	PacketsReceived  *prometheus.CounterVec
	PacketsSent      *prometheus.CounterVec
	ParseErrors      prometheus.Counter
	CacheSize        prometheus.Gauge
	CacheEvictions   prometheus.Counter
	ProbeConflicts   prometheus.Counter
	QueryLatency     prometheus.Histogram
}

// NewMetrics constructs a Metrics bound to reg. Pass a fresh
// prometheus.NewRegistry() in tests to avoid collisions with other
// packages' default-registry metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PacketsReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mdns", Name: "packets_received_total",
			Help: "mDNS packets received, by transport.",
		}, []string{"transport"}),
		PacketsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mdns", Name: "packets_sent_total",
			Help: "mDNS packets sent, by kind (probe, announce, query, response).",
		}, []string{"kind"}),
		ParseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mdns", Name: "parse_errors_total",
			Help: "Packets dropped because the dns codec rejected them.",
		}),
		CacheSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mdns", Name: "cache_entries",
			Help: "Current resource-record cache size.",
		}),
		CacheEvictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mdns", Name: "cache_evictions_total",
			Help: "Entries removed by the expiration sweep.",
		}),
		ProbeConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mdns", Name: "probe_conflicts_total",
			Help: "Probe rounds that found a conflicting instance name.",
		}),
		QueryLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mdns", Name: "query_latency_seconds",
			Help:    "Time from sending a query to the first matching answer.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.PacketsReceived, m.PacketsSent, m.ParseErrors,
		m.CacheSize, m.CacheEvictions, m.ProbeConflicts, m.QueryLatency)
	return m
}
