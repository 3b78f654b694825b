package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dwarvesf/btc-utxo-analytics/internal/btcrpc"
	"github.com/dwarvesf/btc-utxo-analytics/internal/utils/config"
	"github.com/dwarvesf/btc-utxo-analytics/internal/utils/logger"
)

const (
	blockchainInfoCheck = "blockchain_info_api"
	externalTimeout     = 5 * time.Second
)

// HealthHandler implements IHealthHandler interface
type HealthHandler struct {
	config *config.AppConfig
	logger *logger.Logger
	btcRPC btcrpc.IBtcRpc
}

// New creates a new health handler instance
func New(config *config.AppConfig, logger *logger.Logger, btcRPC btcrpc.IBtcRpc) IHealthHandler {
	return &HealthHandler{
		config: config,
		logger: logger,
		btcRPC: btcRPC,
	}
}

// Basic handles the basic health check endpoint (/healthz)
// @Summary Basic health check
// @Description Returns basic system availability status
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} BasicHealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Basic(c *gin.Context) {
	c.JSON(http.StatusOK, BasicHealthResponse{Message: "ok"})
}

// External handles the external API dependencies health check endpoint
// @Summary External dependencies health check
// @Description Validates blockchain.info connectivity by fetching the latest block
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /api/v1/health/external [get]
func (h *HealthHandler) External(c *gin.Context) {
	start := time.Now()

	response := HealthResponse{
		Timestamp: start,
		Checks:    make(map[string]HealthCheck),
	}

	baseCtx := context.Background()
	if c.Request != nil {
		baseCtx = c.Request.Context()
	}

	btcCheck := h.checkBlockchainInfo(baseCtx)
	response.Checks[blockchainInfoCheck] = btcCheck
	response.DurationMs = time.Since(start).Milliseconds()

	if btcCheck.Status == StatusHealthy {
		response.Status = StatusHealthy
		c.JSON(http.StatusOK, response)
		return
	}

	h.logger.Warn("[External][checkBlockchainInfo] upstream unhealthy", map[string]string{
		"error": btcCheck.Error,
	})
	response.Status = StatusUnhealthy
	c.JSON(http.StatusServiceUnavailable, response)
}

// checkBlockchainInfo fetches the chain tip as a lightweight liveness check
func (h *HealthHandler) checkBlockchainInfo(ctx context.Context) HealthCheck {
	start := time.Now()

	check := HealthCheck{
		Metadata: make(map[string]interface{}),
	}

	if h.btcRPC == nil {
		check.Status = StatusUnhealthy
		check.Error = "bitcoin rpc not available"
		check.Latency = time.Since(start).Milliseconds()
		return check
	}

	checkCtx, cancel := context.WithTimeout(ctx, externalTimeout)
	defer cancel()

	block, err := h.btcRPC.GetLatestBlock(checkCtx)
	check.Latency = time.Since(start).Milliseconds()
	if err != nil {
		check.Status = StatusUnhealthy
		if checkCtx.Err() == context.DeadlineExceeded {
			check.Error = "timeout"
		} else {
			check.Error = err.Error()
		}
		return check
	}

	check.Status = StatusHealthy
	check.Metadata["endpoint"] = "blockchain.info"
	check.Metadata["latest_block_height"] = block.Height
	check.Metadata["latest_block_hash"] = block.Hash
	return check
}
