package blockchaininfo

import (
	"encoding/json"
	"fmt"
)

// Fields read by the service are pointers so that a field missing from the
// upstream payload can be told apart from a zero value.

type UnspentResponse struct {
	UnspentOutputs []UnspentOutput `json:"unspent_outputs" validate:"dive"`
}

type UnspentOutput struct {
	TxHashBigEndian *string `json:"tx_hash_big_endian" validate:"required"`
	Value           *int64  `json:"value" validate:"required"`
	Confirmations   *int64  `json:"confirmations" validate:"required"`
	TxOutputN       int64   `json:"tx_output_n"`
	Script          string  `json:"script"`
}

type BlockHeightResponse struct {
	Blocks []Block `json:"blocks"`
}

type Block struct {
	Hash   *string       `json:"hash" validate:"required"`
	Time   *int64        `json:"time" validate:"required"`
	Height int64         `json:"height"`
	Tx     []Transaction `json:"tx" validate:"required,dive"`
}

type Transaction struct {
	Hash string   `json:"hash"`
	Out  []Output `json:"out"`
	// HasOut is false only when the "out" key is absent. A null "out" is
	// present but empty.
	HasOut bool `json:"-"`
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	type transaction Transaction
	var raw struct {
		transaction
		Out json.RawMessage `json:"out"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*t = Transaction(raw.transaction)
	t.HasOut = raw.Out != nil
	if t.HasOut {
		if err := json.Unmarshal(raw.Out, &t.Out); err != nil {
			return err
		}
	}
	return nil
}

type Output struct {
	Value *int64 `json:"value"`
}

type LatestBlock struct {
	Hash   string `json:"hash"`
	Height int64  `json:"height"`
	Time   int64  `json:"time"`
}

// StatusError is returned when blockchain.info answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status code: %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) HTTPStatusCode() int {
	return e.StatusCode
}
