package btcrpc

import (
	"context"

	"github.com/dwarvesf/btc-utxo-analytics/internal/model"
)

type IBtcRpc interface {
	GetUnspentOutputs(ctx context.Context, address string) (model.UnspentOutputs, error)
	GetBlockByHeight(ctx context.Context, height int64) (*model.Block, error)
	GetLatestBlock(ctx context.Context) (*model.Block, error)
}
