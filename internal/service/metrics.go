package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the domain counters of the service layer.
type Metrics struct {
	snapshotLoads *prometheus.CounterVec
	sessionCache  *prometheus.CounterVec
	reports       *prometheus.CounterVec
}

// NewMetrics creates the service counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		snapshotLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dms_snapshot_load_total",
				Help: "Table loads into session snapshots, by entity and result.",
			},
			[]string{"entity", "result"},
		),
		sessionCache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dms_session_cache_total",
				Help: "Session snapshot lookups, by result (hit, miss, refresh).",
			},
			[]string{"result"},
		),
		reports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dms_reports_total",
				Help: "Generated exports, by format and result.",
			},
			[]string{"format", "result"},
		),
	}

	for _, c := range []prometheus.Collector{m.snapshotLoads, m.sessionCache, m.reports} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ExportDone records one export of the given format.
func (m *Metrics) ExportDone(format string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.reports.WithLabelValues(format, result).Inc()
}
