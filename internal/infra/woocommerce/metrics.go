package woocommerce

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var backendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "storefront_backend_requests_total",
		Help: "Requests proxied to the commerce backend, by endpoint and status code.",
	},
	[]string{"endpoint", "status"},
)
