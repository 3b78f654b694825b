package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dwarvesf/btc-utxo-analytics/internal/analytics"
	"github.com/dwarvesf/btc-utxo-analytics/internal/btcrpc"
	"github.com/dwarvesf/btc-utxo-analytics/internal/handler/bitcoin"
	"github.com/dwarvesf/btc-utxo-analytics/internal/handler/health"
	mcphandler "github.com/dwarvesf/btc-utxo-analytics/internal/handler/mcp"
	"github.com/dwarvesf/btc-utxo-analytics/internal/handler/metrics"
	"github.com/dwarvesf/btc-utxo-analytics/internal/utils/config"
	"github.com/dwarvesf/btc-utxo-analytics/internal/utils/logger"
)

type Handler struct {
	BitcoinHandler bitcoin.IHandler
	HealthHandler  health.IHealthHandler
	MCPHandler     mcphandler.IHandler
	MetricsHandler metrics.IHandler
}

func New(appConfig *config.AppConfig, logger *logger.Logger,
	btcRPC btcrpc.IBtcRpc,
	analyticsSvc analytics.IAnalytics,
	mcpTransport http.Handler,
	metricsRegistry *prometheus.Registry) *Handler {
	return &Handler{
		BitcoinHandler: bitcoin.New(analyticsSvc, logger),
		HealthHandler:  health.New(appConfig, logger, btcRPC),
		MCPHandler:     mcphandler.New(mcpTransport, logger),
		MetricsHandler: metrics.New(metricsRegistry),
	}
}
