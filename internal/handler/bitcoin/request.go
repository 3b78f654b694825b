package bitcoin

type utxoRequest struct {
	Address string `uri:"address" binding:"required"`
}

// height 0 is the genesis block, so it carries no required tag
type blockStatsRequest struct {
	Height int64 `uri:"height"`
}
