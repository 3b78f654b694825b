package model

import "github.com/btcsuite/btcd/btcutil"

type Block struct {
	Height       int64         `json:"height"`
	Hash         string        `json:"hash"`
	Time         int64         `json:"time"`
	Transactions []Transaction `json:"tx"`
}

type Transaction struct {
	Outputs []TxOutput `json:"out"`
}

type TxOutput struct {
	Value btcutil.Amount `json:"value"`
}

// TxCount is the number of transactions in the block, coinbase included.
func (b *Block) TxCount() int {
	return len(b.Transactions)
}

// FirstOutputTotal sums the value of the first output of every transaction.
// Transactions without outputs are skipped; later outputs are never read.
func (b *Block) FirstOutputTotal() btcutil.Amount {
	var total btcutil.Amount
	for _, tx := range b.Transactions {
		if len(tx.Outputs) == 0 {
			continue
		}
		total += tx.Outputs[0].Value
	}
	return total
}
