package telemetry

import (
	"po_tracker/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Observer exports purchase order transitions and vendor metric values to
// Prometheus.
type Observer struct {
	transitionsTotal     *prometheus.CounterVec
	vendorMetric         *prometheus.GaugeVec
	metricUpdatesTotal   *prometheus.CounterVec
	historyFailuresTotal prometheus.Counter
}

var _ interfaces.IPerformanceObserver = (*Observer)(nil)

// NewObserver registers the collectors on reg. Pass prometheus.DefaultRegisterer
// to expose them on the default /metrics handler.
func NewObserver(reg prometheus.Registerer) *Observer {
	factory := promauto.With(reg)
	return &Observer{
		transitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "po_tracker_purchase_order_transitions_total",
				Help: "Total number of purchase order lifecycle transitions",
			},
			[]string{"transition"},
		),
		vendorMetric: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "po_tracker_vendor_performance",
				Help: "Current value of a vendor performance metric",
			},
			[]string{"vendor_code", "metric"},
		),
		metricUpdatesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "po_tracker_vendor_metric_updates_total",
				Help: "Total number of vendor metric writes",
			},
			[]string{"metric"},
		),
		historyFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "po_tracker_history_record_failures_total",
				Help: "Performance snapshots that could not be appended",
			},
		),
	}
}

func (o *Observer) TransitionApplied(transition string) {
	o.transitionsTotal.WithLabelValues(transition).Inc()
}

func (o *Observer) MetricUpdated(vendorCode string, metric string, value float64) {
	o.vendorMetric.WithLabelValues(vendorCode, metric).Set(value)
	o.metricUpdatesTotal.WithLabelValues(metric).Inc()
}

func (o *Observer) HistoryRecordFailed() {
	o.historyFailuresTotal.Inc()
}
