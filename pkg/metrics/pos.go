package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// POSMetrics records sale and tender outcomes for the trolley API.
type POSMetrics struct {
	salesCompleted   *prometheus.CounterVec
	tendersRejected  *prometheus.CounterVec
	partialTenders   prometheus.Counter
	decrementFailure prometheus.Counter
	tenderAmount     *prometheus.HistogramVec
}

// NewPOSMetrics registers the POS metrics on the provided registerer.
func NewPOSMetrics(reg prometheus.Registerer) *POSMetrics {
	if reg == nil {
		return &POSMetrics{}
	}
	salesCompleted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_sales_completed_total",
		Help: "Sales that reached the completed state.",
	}, []string{"method"})
	tendersRejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_tenders_rejected_total",
		Help: "Tender submissions rejected before any state change.",
	}, []string{"reason"})
	partialTenders := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pos_partial_tenders_total",
		Help: "Accepted partial tenders that froze the cart.",
	})
	decrementFailure := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pos_stock_decrement_failures_total",
		Help: "Per-line stock decrement failures during sale completion.",
	})
	tenderAmount := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pos_tender_amount",
		Help:    "Accepted tender amounts in the active currency.",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
	}, []string{"currency"})
	reg.MustRegister(salesCompleted, tendersRejected, partialTenders, decrementFailure, tenderAmount)
	return &POSMetrics{
		salesCompleted:   salesCompleted,
		tendersRejected:  tendersRejected,
		partialTenders:   partialTenders,
		decrementFailure: decrementFailure,
		tenderAmount:     tenderAmount,
	}
}

// IncSaleCompleted counts a completed sale for the payment method.
func (m *POSMetrics) IncSaleCompleted(method string) {
	if m == nil || m.salesCompleted == nil {
		return
	}
	m.salesCompleted.WithLabelValues(normalizeLabel(method)).Inc()
}

// IncTenderRejected counts a rejected tender by reason.
func (m *POSMetrics) IncTenderRejected(reason string) {
	if m == nil || m.tendersRejected == nil {
		return
	}
	m.tendersRejected.WithLabelValues(normalizeLabel(reason)).Inc()
}

// IncPartialTender counts an accepted partial tender.
func (m *POSMetrics) IncPartialTender() {
	if m == nil || m.partialTenders == nil {
		return
	}
	m.partialTenders.Inc()
}

// IncDecrementFailure counts one failed per-line stock decrement.
func (m *POSMetrics) IncDecrementFailure() {
	if m == nil || m.decrementFailure == nil {
		return
	}
	m.decrementFailure.Inc()
}

// ObserveTenderAmount records an accepted tender amount.
func (m *POSMetrics) ObserveTenderAmount(currency string, amount float64) {
	if m == nil || m.tenderAmount == nil {
		return
	}
	m.tenderAmount.WithLabelValues(normalizeLabel(currency)).Observe(amount)
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
