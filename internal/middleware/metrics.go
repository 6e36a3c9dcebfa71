package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "friendconnect_redis_errors_total",
	Help: "Total number of Redis errors by command",
}, []string{"command"})

// RelationshipOps counts relationship operations by kind and outcome.
var RelationshipOps = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "friendconnect_relationship_ops_total",
	Help: "Total relationship operations by operation and outcome",
}, []string{"operation", "outcome"})

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-instrumentation handler backed by the
// given Prometheus middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
