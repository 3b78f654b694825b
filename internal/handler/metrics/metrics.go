package metrics

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type IHandler interface {
	Metrics(c *gin.Context)
}

type handler struct {
	exposition http.Handler
}

// New serves everything gathered from g in Prometheus or OpenMetrics format.
func New(g prometheus.Gatherer) IHandler {
	return &handler{
		exposition: promhttp.HandlerFor(g, promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		}),
	}
}

// Metrics godoc
// @Summary Prometheus metrics
// @Description Exposes HTTP, tool call and upstream API metrics
// @Tags metrics
// @Produce plain
// @Success 200 {string} string
// @Router /metrics [get]
func (h *handler) Metrics(c *gin.Context) {
	h.exposition.ServeHTTP(c.Writer, c.Request)
}
