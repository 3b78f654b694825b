package model

import "github.com/btcsuite/btcd/btcutil"

// UnspentOutput is a spendable output owned by an address.
type UnspentOutput struct {
	TxHash        string         `json:"tx_hash_big_endian"`
	Value         btcutil.Amount `json:"value"`
	Confirmations int64          `json:"confirmations"`
}

// UnspentOutputs is an ordered UTXO set as returned by the explorer.
type UnspentOutputs []UnspentOutput

// TotalValue sums the outputs in satoshis.
func (u UnspentOutputs) TotalValue() btcutil.Amount {
	var total btcutil.Amount
	for _, utxo := range u {
		total += utxo.Value
	}
	return total
}
