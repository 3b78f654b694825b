package analytics

import "context"

// IAnalytics is the tool surface. Every method returns text; failures are
// rendered into the returned string instead of being returned as errors.
type IAnalytics interface {
	GetUTXO(ctx context.Context, address string) string
	GetBlockStats(ctx context.Context, blockHeight int64) string
	AnalyzeBitcoinFlow() string
}
