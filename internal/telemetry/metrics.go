// Package telemetry exposes the service's operational counters.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_created_total",
		Help: "Number of orders appended to the order ledger.",
	})

	ReceiptsAttached = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_receipts_attached_total",
		Help: "Number of receipts linked to orders.",
	})

	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_emails_sent_total",
		Help: "Transactional emails by template and outcome.",
	}, []string{"template", "outcome"})
)

// CountEmail records one email send attempt.
func CountEmail(template string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	EmailsSent.WithLabelValues(template, outcome).Inc()
}
