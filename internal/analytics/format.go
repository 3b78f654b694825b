package analytics

import (
	"fmt"
	"strings"

	"github.com/dwarvesf/btc-utxo-analytics/internal/model"
)

// FormatUTXOReport renders the get_utxo result. With no outputs the report
// ends right after the "UTXO Details:" line.
func FormatUTXOReport(address string, utxos model.UnspentOutputs) string {
	details := make([]string, 0, len(utxos))
	for _, utxo := range utxos {
		details = append(details, fmt.Sprintf("- TXID: %s, Value: %s BTC, Confirmations: %d",
			utxo.TxHash, model.FormatBTC(utxo.Value), utxo.Confirmations))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Address %s:\n", address)
	fmt.Fprintf(&sb, "%d UTXOs\n", len(utxos))
	fmt.Fprintf(&sb, "Total Value: %s BTC\n", model.FormatBTC(utxos.TotalValue()))
	sb.WriteString("UTXO Details:\n")
	sb.WriteString(strings.Join(details, "\n"))
	return sb.String()
}

// FormatBlockStats renders the get_block_stats result for the requested height.
func FormatBlockStats(blockHeight int64, block *model.Block) string {
	return strings.Join([]string{
		fmt.Sprintf("Block Height: %d", blockHeight),
		fmt.Sprintf("Block Hash: %s", block.Hash),
		fmt.Sprintf("Transactions: %d", block.TxCount()),
		fmt.Sprintf("Total Value: %s BTC", model.FormatBTC(block.FirstOutputTotal())),
		fmt.Sprintf("Block Time: %d", block.Time),
	}, "\n")
}
