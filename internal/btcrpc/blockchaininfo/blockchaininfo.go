package blockchaininfo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/dwarvesf/btc-utxo-analytics/internal/utils/config"
	"github.com/dwarvesf/btc-utxo-analytics/internal/utils/logger"
)

// error bodies are echoed into messages, keep them short
const maxErrorBodyLen = 256

var ErrEmptyBlockList = errors.New("block list is empty")

type blockchainInfo struct {
	baseURL  string
	client   *http.Client
	logger   *logger.Logger
	validate *validator.Validate
}

func New(cfg *config.AppConfig, logger *logger.Logger) IBlockchainInfo {
	return &blockchainInfo{
		baseURL:  strings.TrimRight(cfg.Bitcoin.BlockchainInfoAPIURL, "/"),
		client:   &http.Client{Timeout: cfg.Bitcoin.RequestTimeout},
		logger:   logger,
		validate: newPayloadValidator(),
	}
}

func newPayloadValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (c *blockchainInfo) GetUnspentOutputs(ctx context.Context, address string) ([]UnspentOutput, error) {
	endpoint := fmt.Sprintf("%s/unspent?active=%s", c.baseURL, url.QueryEscape(address))

	var response UnspentResponse
	if err := c.getJSON(ctx, "GetUnspentOutputs", endpoint, &response); err != nil {
		return nil, err
	}

	if err := c.validatePayload("GetUnspentOutputs", &response); err != nil {
		return nil, err
	}

	return response.UnspentOutputs, nil
}

func (c *blockchainInfo) GetBlockByHeight(ctx context.Context, height int64) (*Block, error) {
	endpoint := fmt.Sprintf("%s/block-height/%d?format=json", c.baseURL, height)

	var response BlockHeightResponse
	if err := c.getJSON(ctx, "GetBlockByHeight", endpoint, &response); err != nil {
		return nil, err
	}

	if response.Blocks == nil {
		return nil, errors.New(`missing field "blocks"`)
	}
	if len(response.Blocks) == 0 {
		return nil, ErrEmptyBlockList
	}

	// only the first block at this height is reported, orphans are ignored
	block := response.Blocks[0]
	if err := c.validatePayload("GetBlockByHeight", &block); err != nil {
		return nil, err
	}
	for i, tx := range block.Tx {
		if !tx.HasOut {
			return nil, errors.Errorf(`missing field "tx[%d].out"`, i)
		}
		if len(tx.Out) > 0 && tx.Out[0].Value == nil {
			return nil, errors.Errorf(`missing field "tx[%d].out[0].value"`, i)
		}
	}

	return &block, nil
}

func (c *blockchainInfo) GetLatestBlock(ctx context.Context) (*LatestBlock, error) {
	endpoint := fmt.Sprintf("%s/latestblock", c.baseURL)

	var block LatestBlock
	if err := c.getJSON(ctx, "GetLatestBlock", endpoint, &block); err != nil {
		return nil, err
	}

	return &block, nil
}

func (c *blockchainInfo) getJSON(ctx context.Context, caller, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error(fmt.Sprintf("[%s][http.NewRequest]", caller), map[string]string{
			"error": err.Error(),
		})
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error(fmt.Sprintf("[%s][client.Do]", caller), map[string]string{
			"error": err.Error(),
		})
		return errors.Wrap(err, "failed to request blockchain.info")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error(fmt.Sprintf("[%s][io.ReadAll]", caller), map[string]string{
			"error": err.Error(),
		})
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := &StatusError{
			StatusCode: resp.StatusCode,
			Body:       truncate(strings.TrimSpace(string(body)), maxErrorBodyLen),
		}
		c.logger.Error(fmt.Sprintf("[%s][client.Do]", caller), map[string]string{
			"error":      statusErr.Error(),
			"statusCode": strconv.Itoa(resp.StatusCode),
		})
		return statusErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Error(fmt.Sprintf("[%s][json.Unmarshal]", caller), map[string]string{
			"error": err.Error(),
			"body":  truncate(string(body), maxErrorBodyLen),
		})
		return errors.Wrap(err, "failed to parse response")
	}

	return nil
}

func (c *blockchainInfo) validatePayload(caller string, payload interface{}) error {
	err := c.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "failed to validate response")
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fieldPath(fieldErr.Namespace()))
	}

	msg := fmt.Sprintf("missing field %q", fields[0])
	if len(fields) > 1 {
		msg = fmt.Sprintf("%s (and %d more)", msg, len(fields)-1)
	}

	c.logger.Error(fmt.Sprintf("[%s][validate.Struct]", caller), map[string]string{
		"error":  msg,
		"fields": strings.Join(fields, ","),
	})
	return errors.New(msg)
}

// fieldPath drops the root struct name from a validator namespace:
// "UnspentResponse.unspent_outputs[0].value" becomes "unspent_outputs[0].value".
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
