package http

import (
	"github.com/gin-gonic/gin"

	"github.com/dwarvesf/btc-utxo-analytics/internal/handler"
	"github.com/dwarvesf/btc-utxo-analytics/internal/mcp"
	"github.com/dwarvesf/btc-utxo-analytics/internal/utils/config"
	"github.com/dwarvesf/btc-utxo-analytics/internal/utils/logger"
)

func loadV1Routes(r *gin.Engine, h *handler.Handler, appConfig *config.AppConfig, logger *logger.Logger) {
	v1 := r.Group("/api/v1")

	bitcoin := v1.Group("/bitcoin")
	{
		bitcoin.GET("/addresses/:address/utxos", h.BitcoinHandler.GetUTXO)
		bitcoin.GET("/blocks/:height/stats", h.BitcoinHandler.GetBlockStats)
		bitcoin.GET("/prompts/analyze-bitcoin-flow", h.BitcoinHandler.AnalyzeBitcoinFlow)
	}

	health := v1.Group("/health")
	{
		health.GET("/external", h.HealthHandler.External)
	}

	// MCP Streamable HTTP: POST messages, GET event stream, DELETE session
	r.POST(mcp.EndpointPath, h.MCPHandler.Handle)
	r.GET(mcp.EndpointPath, h.MCPHandler.Handle)
	r.DELETE(mcp.EndpointPath, h.MCPHandler.Handle)

	r.GET("/metrics", h.MetricsHandler.Metrics)

	// health check
	r.GET("/healthz", h.HealthHandler.Basic)

	logger.Debug("[loadV1Routes] routes registered", map[string]string{
		"env":       string(appConfig.Environment),
		"mcpServer": appConfig.MCP.ServerName,
	})
}
