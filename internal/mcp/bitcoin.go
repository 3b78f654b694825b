package mcp

import (
	"context"
	"encoding/json"
	"math"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"

	"github.com/dwarvesf/btc-utxo-analytics/internal/analytics"
	"github.com/dwarvesf/btc-utxo-analytics/internal/utils/logger"
)

const (
	getUTXODescription = "Get UTXO for a Bitcoin address. Returns the address, the number of UTXOs, " +
		"the total value in BTC and the txid, value and confirmations of every UTXO."
	getBlockStatsDescription = "Get transaction statistics for a specific Bitcoin block. Returns the block height, " +
		"block hash, number of transactions, total transaction value in BTC and block time."
)

func GetUTXOTool() mcpgo.Tool {
	return mcpgo.NewTool(analytics.ToolGetUTXO,
		mcpgo.WithDescription(getUTXODescription),
		mcpgo.WithString("address",
			mcpgo.Required(),
			mcpgo.Description("Bitcoin address (base58 or bech32 format)"),
		),
		mcpgo.WithReadOnlyHintAnnotation(true),
		mcpgo.WithDestructiveHintAnnotation(false),
	)
}

func GetBlockStatsTool() mcpgo.Tool {
	return mcpgo.NewTool(analytics.ToolGetBlockStats,
		mcpgo.WithDescription(getBlockStatsDescription),
		mcpgo.WithNumber("block_height",
			integer(),
			mcpgo.Required(),
			mcpgo.Description("The height of the block"),
		),
		mcpgo.WithReadOnlyHintAnnotation(true),
		mcpgo.WithDestructiveHintAnnotation(false),
	)
}

func AnalyzeBitcoinFlowPrompt() mcpgo.Prompt {
	return mcpgo.NewPrompt(analytics.PromptAnalyzeBitcoinFlow,
		mcpgo.WithPromptDescription(analytics.AnalyzeBitcoinFlowDescription),
	)
}

// integer narrows a number property to JSON Schema integers.
func integer() mcpgo.PropertyOption {
	return func(schema map[string]any) {
		schema["type"] = "integer"
	}
}

// RegisterBitcoinTools exposes the analytics service as two tools and one prompt.
// Unusable arguments come back as an error tool result, upstream failures as
// the service's own "Error ..." text.
func RegisterBitcoinTools(s *server.MCPServer, svc analytics.IAnalytics, log *logger.Logger) {
	s.AddTool(GetUTXOTool(), func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		address, err := stringArgument(req, "address")
		if err != nil {
			return invalidArguments(log, req, err), nil
		}
		return mcpgo.NewToolResultText(svc.GetUTXO(ctx, address)), nil
	})

	s.AddTool(GetBlockStatsTool(), func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		height, err := int64Argument(req, "block_height")
		if err != nil {
			return invalidArguments(log, req, err), nil
		}
		return mcpgo.NewToolResultText(svc.GetBlockStats(ctx, height)), nil
	})

	s.AddPrompt(AnalyzeBitcoinFlowPrompt(), func(ctx context.Context, req mcpgo.GetPromptRequest) (*mcpgo.GetPromptResult, error) {
		return mcpgo.NewGetPromptResult(analytics.AnalyzeBitcoinFlowDescription, []mcpgo.PromptMessage{
			mcpgo.NewPromptMessage(mcpgo.RoleUser, mcpgo.NewTextContent(svc.AnalyzeBitcoinFlow())),
		}), nil
	})
}

func invalidArguments(log *logger.Logger, req mcpgo.CallToolRequest, err error) *mcpgo.CallToolResult {
	log.Warn("[mcp.CallTool] invalid arguments", map[string]string{
		"tool":  req.Params.Name,
		"error": err.Error(),
	})
	return mcpgo.NewToolResultError(err.Error())
}

func argumentsOf(req mcpgo.CallToolRequest) (map[string]any, error) {
	switch args := req.Params.Arguments.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return args, nil
	default:
		return nil, errors.New("arguments must be an object")
	}
}

func stringArgument(req mcpgo.CallToolRequest, name string) (string, error) {
	args, err := argumentsOf(req)
	if err != nil {
		return "", err
	}
	value, ok := args[name]
	if !ok || value == nil {
		return "", errors.Errorf("missing required argument %q", name)
	}
	s, ok := value.(string)
	if !ok {
		return "", errors.Errorf("argument %q must be a string", name)
	}
	return s, nil
}

// int64Argument accepts JSON integers, integral floats such as 840000.0 and
// numeric strings.
func int64Argument(req mcpgo.CallToolRequest, name string) (int64, error) {
	args, err := argumentsOf(req)
	if err != nil {
		return 0, err
	}
	value, ok := args[name]
	if !ok || value == nil {
		return 0, errors.Errorf("missing required argument %q", name)
	}

	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		if f, err = v.Float64(); err != nil {
			return 0, errors.Errorf("argument %q must be an integer", name)
		}
	case string:
		number := json.Number(v)
		if i, err := number.Int64(); err == nil {
			return i, nil
		}
		if f, err = number.Float64(); err != nil {
			return 0, errors.Errorf("argument %q must be an integer", name)
		}
	default:
		return 0, errors.Errorf("argument %q must be an integer", name)
	}

	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, errors.Errorf("argument %q must be an integer", name)
	}
	return int64(f), nil
}
