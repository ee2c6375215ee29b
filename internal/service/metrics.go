package service

import "github.com/prometheus/client_golang/prometheus"

// IngestMetrics holds the Prometheus collectors for upload admissions.
type IngestMetrics struct {
	admissionsTotal *prometheus.CounterVec
}

// NewIngestMetrics creates the admission counters and registers them with reg.
func NewIngestMetrics(reg prometheus.Registerer) (*IngestMetrics, error) {
	m := &IngestMetrics{
		admissionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "log_admissions_total",
				Help: "Total number of upload admission decisions by outcome.",
			},
			[]string{"outcome"},
		),
	}

	if err := reg.Register(m.admissionsTotal); err != nil {
		return nil, err
	}

	return m, nil
}

// observe records one admission outcome. Safe to call on a nil receiver so
// the gate can run without metrics wired (e.g. in tests).
func (m *IngestMetrics) observe(outcome string) {
	if m == nil {
		return
	}
	m.admissionsTotal.WithLabelValues(outcome).Inc()
}
