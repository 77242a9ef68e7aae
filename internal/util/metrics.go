package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProductsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "Total number of products created",
	})

	TestimonialsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "testimonials_created_total",
		Help: "Total number of testimonials created",
	})

	ContactMessagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contact_messages_total",
		Help: "Total number of contact messages received",
	})

	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders created",
	})

	DocumentWritesFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "document_writes_failed_total",
		Help: "Total number of failed document inserts",
	}, []string{"collection"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
