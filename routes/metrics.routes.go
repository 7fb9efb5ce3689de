package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterMetricsRoutes exposes the gatherer in the Prometheus text format.
func RegisterMetricsRoutes(router *gin.Engine, gatherer prometheus.Gatherer) {
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
