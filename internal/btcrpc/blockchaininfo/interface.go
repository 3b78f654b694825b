package blockchaininfo

import "context"

type IBlockchainInfo interface {
	GetUnspentOutputs(ctx context.Context, address string) ([]UnspentOutput, error)
	GetBlockByHeight(ctx context.Context, height int64) (*Block, error)
	GetLatestBlock(ctx context.Context) (*LatestBlock, error)
}
