package analytics

import (
	"context"
	"strconv"
	"time"

	"github.com/dwarvesf/btc-utxo-analytics/internal/btcrpc"
	"github.com/dwarvesf/btc-utxo-analytics/internal/monitoring"
	"github.com/dwarvesf/btc-utxo-analytics/internal/utils/logger"
)

const (
	ToolGetUTXO              = "get_utxo"
	ToolGetBlockStats        = "get_block_stats"
	PromptAnalyzeBitcoinFlow = "analyze_bitcoin_flow"
)

const (
	utxoErrorPrefix       = "Error fetching UTXO: "
	blockStatsErrorPrefix = "Error fetching block stats: "
)

type analytics struct {
	btcRpc   btcrpc.IBtcRpc
	logger   *logger.Logger
	recorder *monitoring.ToolMetricsRecorder
}

func New(btcRpc btcrpc.IBtcRpc, logger *logger.Logger, recorder *monitoring.ToolMetricsRecorder) IAnalytics {
	return &analytics{
		btcRpc:   btcRpc,
		logger:   logger,
		recorder: recorder,
	}
}

func (a *analytics) GetUTXO(ctx context.Context, address string) string {
	start := time.Now()

	utxos, err := a.btcRpc.GetUnspentOutputs(ctx, address)
	if err != nil {
		a.recorder.RecordError(ToolGetUTXO, time.Since(start))
		a.logger.Error("[GetUTXO][btcRpc.GetUnspentOutputs]", map[string]string{
			"error":   err.Error(),
			"address": address,
		})
		return utxoErrorPrefix + err.Error()
	}

	a.recorder.RecordSuccess(ToolGetUTXO, time.Since(start))
	a.logger.Debug("[GetUTXO] fetched unspent outputs", map[string]string{
		"address": address,
		"count":   strconv.Itoa(len(utxos)),
	})
	return FormatUTXOReport(address, utxos)
}

func (a *analytics) GetBlockStats(ctx context.Context, blockHeight int64) string {
	start := time.Now()

	block, err := a.btcRpc.GetBlockByHeight(ctx, blockHeight)
	if err != nil {
		a.recorder.RecordError(ToolGetBlockStats, time.Since(start))
		a.logger.Error("[GetBlockStats][btcRpc.GetBlockByHeight]", map[string]string{
			"error":       err.Error(),
			"blockHeight": strconv.FormatInt(blockHeight, 10),
		})
		return blockStatsErrorPrefix + err.Error()
	}

	a.recorder.RecordSuccess(ToolGetBlockStats, time.Since(start))
	return FormatBlockStats(blockHeight, block)
}

func (a *analytics) AnalyzeBitcoinFlow() string {
	a.recorder.RecordSuccess(PromptAnalyzeBitcoinFlow, 0)
	return AnalyzeBitcoinFlowPrompt
}
