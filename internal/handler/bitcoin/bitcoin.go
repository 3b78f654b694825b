package bitcoin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dwarvesf/btc-utxo-analytics/internal/analytics"
	"github.com/dwarvesf/btc-utxo-analytics/internal/utils/logger"
	"github.com/dwarvesf/btc-utxo-analytics/internal/view"
)

type handler struct {
	analytics analytics.IAnalytics
	logger    *logger.Logger
}

func New(analytics analytics.IAnalytics, logger *logger.Logger) IHandler {
	return &handler{
		analytics: analytics,
		logger:    logger,
	}
}

// GetUTXO godoc
// @Summary Get UTXOs of an address
// @Description Lists unspent outputs of a Bitcoin address with their total value in BTC.
// @Description Upstream failures are reported in the text body, prefixed with "Error fetching UTXO: ".
// @id getUTXO
// @Tags Bitcoin
// @Produce plain
// @Param address path string true "Bitcoin address (base58 or bech32 format)"
// @Success 200 {string} string
// @Failure 400 {object} view.Response[any]
// @Router /api/v1/bitcoin/addresses/{address}/utxos [get]
func (h *handler) GetUTXO(c *gin.Context) {
	var req utxoRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.logger.Error("[GetUTXO][ShouldBindUri]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, nil, "invalid address"))
		return
	}

	c.String(http.StatusOK, h.analytics.GetUTXO(c.Request.Context(), req.Address))
}

// GetBlockStats godoc
// @Summary Get block statistics
// @Description Returns hash, transaction count, first-output value total and time of the block at a height.
// @Description Upstream failures are reported in the text body, prefixed with "Error fetching block stats: ".
// @id getBlockStats
// @Tags Bitcoin
// @Produce plain
// @Param height path int true "The height of the block"
// @Success 200 {string} string
// @Failure 400 {object} view.Response[any]
// @Router /api/v1/bitcoin/blocks/{height}/stats [get]
func (h *handler) GetBlockStats(c *gin.Context) {
	var req blockStatsRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.logger.Error("[GetBlockStats][ShouldBindUri]", map[string]string{
			"error":  err.Error(),
			"height": c.Param("height"),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, map[string]string{
			"height": c.Param("height"),
		}, "block height must be an integer"))
		return
	}

	c.String(http.StatusOK, h.analytics.GetBlockStats(c.Request.Context(), req.Height))
}

// AnalyzeBitcoinFlow godoc
// @Summary Bitcoin flow analysis prompt
// @Description Returns the prompt used to analyze funds flow and network health from UTXO and block data.
// @id analyzeBitcoinFlow
// @Tags Bitcoin
// @Produce plain
// @Success 200 {string} string
// @Router /api/v1/bitcoin/prompts/analyze-bitcoin-flow [get]
func (h *handler) AnalyzeBitcoinFlow(c *gin.Context) {
	c.String(http.StatusOK, h.analytics.AnalyzeBitcoinFlow())
}
