package btcrpc

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/dwarvesf/btc-utxo-analytics/internal/btcrpc/blockchaininfo"
	"github.com/dwarvesf/btc-utxo-analytics/internal/model"
	"github.com/dwarvesf/btc-utxo-analytics/internal/monitoring"
	"github.com/dwarvesf/btc-utxo-analytics/internal/utils/config"
	"github.com/dwarvesf/btc-utxo-analytics/internal/utils/logger"
)

const apiName = "blockchain_info"

type BtcRpc struct {
	explorer blockchaininfo.IBlockchainInfo
	metrics  *monitoring.ExternalAPIMetrics
	logger   *logger.Logger
}

func New(appConfig *config.AppConfig, logger *logger.Logger, metrics *monitoring.ExternalAPIMetrics) IBtcRpc {
	return NewWithExplorer(blockchaininfo.New(appConfig, logger), logger, metrics)
}

func NewWithExplorer(explorer blockchaininfo.IBlockchainInfo, logger *logger.Logger, metrics *monitoring.ExternalAPIMetrics) IBtcRpc {
	return &BtcRpc{
		explorer: explorer,
		metrics:  metrics,
		logger:   logger,
	}
}

func (b *BtcRpc) GetUnspentOutputs(ctx context.Context, address string) (model.UnspentOutputs, error) {
	start := time.Now()
	raw, err := b.explorer.GetUnspentOutputs(ctx, address)
	b.record("unspent", start, err)
	if err != nil {
		return nil, err
	}

	utxos := make(model.UnspentOutputs, 0, len(raw))
	for _, u := range raw {
		utxos = append(utxos, model.UnspentOutput{
			TxHash:        *u.TxHashBigEndian,
			Value:         btcutil.Amount(*u.Value),
			Confirmations: *u.Confirmations,
		})
	}

	return utxos, nil
}

func (b *BtcRpc) GetBlockByHeight(ctx context.Context, height int64) (*model.Block, error) {
	start := time.Now()
	raw, err := b.explorer.GetBlockByHeight(ctx, height)
	b.record("block_height", start, err)
	if err != nil {
		return nil, err
	}

	block := &model.Block{
		Height:       raw.Height,
		Hash:         *raw.Hash,
		Time:         *raw.Time,
		Transactions: make([]model.Transaction, 0, len(raw.Tx)),
	}
	for _, tx := range raw.Tx {
		// later outputs may lack a value, only the first one was validated
		var outputs []model.TxOutput
		if len(tx.Out) > 0 {
			outputs = []model.TxOutput{{Value: btcutil.Amount(*tx.Out[0].Value)}}
		}
		block.Transactions = append(block.Transactions, model.Transaction{Outputs: outputs})
	}

	return block, nil
}

func (b *BtcRpc) GetLatestBlock(ctx context.Context) (*model.Block, error) {
	start := time.Now()
	raw, err := b.explorer.GetLatestBlock(ctx)
	b.record("latest_block", start, err)
	if err != nil {
		return nil, err
	}

	return &model.Block{
		Height: raw.Height,
		Hash:   raw.Hash,
		Time:   raw.Time,
	}, nil
}

func (b *BtcRpc) record(endpoint string, start time.Time, err error) {
	duration := time.Since(start).Seconds()
	if err == nil {
		b.metrics.RecordAPICall(apiName, endpoint, "success", duration)
		return
	}

	errType := monitoring.ClassifyAPIError(err)
	b.metrics.RecordAPICall(apiName, endpoint, string(errType), duration)
	if errType == monitoring.ErrorTypeTimeout {
		b.metrics.RecordTimeout(apiName, "request")
	}
}
