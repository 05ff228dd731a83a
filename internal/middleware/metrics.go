package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_redis_error_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// SwapTransitions counts swap request status transitions by target status.
	SwapTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_swap_transitions_total",
		Help: "Total number of swap request status transitions",
	}, []string{"status"})

	// SwapAuthorizationDenials counts swap mutations refused by the
	// actor-role guard (reported to clients as not found).
	SwapAuthorizationDenials = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_swap_authorization_denials_total",
		Help: "Total number of swap mutations denied by authorization guards",
	}, []string{"operation"})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the Fiber handler that records per-request metrics.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
