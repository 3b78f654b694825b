package mcp

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwarvesf/btc-utxo-analytics/internal/analytics"
	"github.com/dwarvesf/btc-utxo-analytics/internal/types/environments"
	"github.com/dwarvesf/btc-utxo-analytics/internal/utils/logger"
)

type stubAnalytics struct {
	mu        sync.Mutex
	addresses []string
	heights   []int64
}

func (s *stubAnalytics) GetUTXO(ctx context.Context, address string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addresses = append(s.addresses, address)
	return "utxo:" + address
}

func (s *stubAnalytics) GetBlockStats(ctx context.Context, blockHeight int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heights = append(s.heights, blockHeight)
	return "Error fetching block stats: block list is empty"
}

func (s *stubAnalytics) AnalyzeBitcoinFlow() string {
	return analytics.AnalyzeBitcoinFlowPrompt
}

func (s *stubAnalytics) Addresses() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.addresses...)
}

func newTestServer(t *testing.T) (*server.MCPServer, *stubAnalytics) {
	t.Helper()
	testLogger := logger.New(environments.Test)
	svc := &stubAnalytics{}
	s := NewServer("Bitcoin UTXO Analytics", ServerVersion, testLogger)
	RegisterBitcoinTools(s, svc, testLogger)
	return s, svc
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type toolResult struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	IsError bool `json:"isError"`
}

func call(t *testing.T, s *server.MCPServer, msg string) rpcResponse {
	t.Helper()
	reply := s.HandleMessage(context.Background(), json.RawMessage(msg))
	require.NotNil(t, reply, "expected a response for %s", msg)

	data, err := json.Marshal(reply)
	require.NoError(t, err)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	assert.Equal(t, mcpgo.JSONRPC_VERSION, resp.JSONRPC)
	return resp
}

func callTool(t *testing.T, s *server.MCPServer, name, arguments string) toolResult {
	t.Helper()
	resp := call(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"`+name+`","arguments":`+arguments+`}}`)
	require.Nil(t, resp.Error)

	var result toolResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Content, 1)
	assert.Equal(t, "text", result.Content[0].Type)
	return result
}

func TestServer_Initialize(t *testing.T) {
	s, _ := newTestServer(t)

	resp := call(t, s, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"0"}}}`)

	require.Nil(t, resp.Error)
	assert.JSONEq(t, "1", string(resp.ID))
	var result mcpgo.InitializeResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	assert.Equal(t, "2024-11-05", result.ProtocolVersion)
	assert.Equal(t, "Bitcoin UTXO Analytics", result.ServerInfo.Name)
	assert.Equal(t, ServerVersion, result.ServerInfo.Version)
	assert.NotNil(t, result.Capabilities.Tools)
	assert.NotNil(t, result.Capabilities.Prompts)
}

func TestServer_Notifications(t *testing.T) {
	s, _ := newTestServer(t)

	reply := s.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","method":"notifications/initialized"}`))
	assert.Nil(t, reply)
}

func TestServer_Ping(t *testing.T) {
	s, _ := newTestServer(t)

	resp := call(t, s, `{"jsonrpc":"2.0","id":"abc","method":"ping"}`)

	require.Nil(t, resp.Error)
	assert.JSONEq(t, `"abc"`, string(resp.ID))
	assert.NotEmpty(t, resp.Result)
}

func TestServer_ListTools(t *testing.T) {
	s, _ := newTestServer(t)

	resp := call(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)

	require.Nil(t, resp.Error)
	var result struct {
		Tools []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			InputSchema struct {
				Type       string                    `json:"type"`
				Properties map[string]map[string]any `json:"properties"`
				Required   []string                  `json:"required"`
			} `json:"inputSchema"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Tools, 2)

	byName := map[string]int{}
	for i, tool := range result.Tools {
		byName[tool.Name] = i
	}
	require.Contains(t, byName, "get_utxo")
	require.Contains(t, byName, "get_block_stats")

	utxo := result.Tools[byName["get_utxo"]]
	assert.Equal(t, getUTXODescription, utxo.Description)
	assert.Equal(t, "string", utxo.InputSchema.Properties["address"]["type"])
	assert.Equal(t, []string{"address"}, utxo.InputSchema.Required)

	stats := result.Tools[byName["get_block_stats"]]
	assert.Equal(t, "object", stats.InputSchema.Type)
	assert.Equal(t, "integer", stats.InputSchema.Properties["block_height"]["type"])
	assert.Equal(t, []string{"block_height"}, stats.InputSchema.Required)
}

func TestServer_CallTool(t *testing.T) {
	s, svc := newTestServer(t)

	result := callTool(t, s, "get_utxo", `{"address":"bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh"}`)

	assert.False(t, result.IsError)
	assert.Equal(t, "utxo:bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh", result.Content[0].Text)
	assert.Equal(t, []string{"bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh"}, svc.Addresses())
}

func TestServer_CallTool_UpstreamErrorIsText(t *testing.T) {
	s, _ := newTestServer(t)

	result := callTool(t, s, "get_block_stats", `{"block_height":99999999}`)

	assert.False(t, result.IsError)
	assert.Equal(t, "Error fetching block stats: block list is empty", result.Content[0].Text)
}

func TestServer_CallTool_BlockHeightArgument(t *testing.T) {
	tests := []struct {
		name       string
		arguments  string
		wantHeight int64
		wantError  string
	}{
		{name: "integer", arguments: `{"block_height":840000}`, wantHeight: 840000},
		{name: "zero", arguments: `{"block_height":0}`, wantHeight: 0},
		{name: "integral float", arguments: `{"block_height":840000.0}`, wantHeight: 840000},
		{name: "exponent", arguments: `{"block_height":8.4e5}`, wantHeight: 840000},
		{name: "numeric string", arguments: `{"block_height":"123"}`, wantHeight: 123},
		{name: "integral float string", arguments: `{"block_height":"123.0"}`, wantHeight: 123},
		{name: "fraction", arguments: `{"block_height":1.5}`, wantError: `argument "block_height" must be an integer`},
		{name: "word", arguments: `{"block_height":"tip"}`, wantError: `argument "block_height" must be an integer`},
		{name: "boolean", arguments: `{"block_height":true}`, wantError: `argument "block_height" must be an integer`},
		{name: "out of range", arguments: `{"block_height":1e300}`, wantError: `argument "block_height" must be an integer`},
		{name: "missing", arguments: `{}`, wantError: `missing required argument "block_height"`},
		{name: "null", arguments: `{"block_height":null}`, wantError: `missing required argument "block_height"`},
		{name: "not an object", arguments: `[1]`, wantError: "arguments must be an object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, svc := newTestServer(t)

			result := callTool(t, s, "get_block_stats", tt.arguments)

			if tt.wantError != "" {
				assert.True(t, result.IsError)
				assert.Equal(t, tt.wantError, result.Content[0].Text)
				assert.Empty(t, svc.heights)
				return
			}
			assert.False(t, result.IsError)
			assert.Equal(t, []int64{tt.wantHeight}, svc.heights)
		})
	}
}

func TestServer_CallTool_AddressArgument(t *testing.T) {
	s, svc := newTestServer(t)

	result := callTool(t, s, "get_utxo", `{"address":42}`)
	assert.True(t, result.IsError)
	assert.Equal(t, `argument "address" must be a string`, result.Content[0].Text)

	resp := call(t, s, `{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"get_utxo"}}`)
	require.Nil(t, resp.Error)
	var missing toolResult
	require.NoError(t, json.Unmarshal(resp.Result, &missing))
	assert.True(t, missing.IsError)
	assert.Contains(t, missing.Content[0].Text, `"address"`)
	assert.Empty(t, svc.Addresses())

	// an empty address is passed through untouched
	result = callTool(t, s, "get_utxo", `{"address":""}`)
	assert.False(t, result.IsError)
	assert.Equal(t, []string{""}, svc.Addresses())
}

func TestServer_CallTool_UnknownTool(t *testing.T) {
	s, _ := newTestServer(t)

	resp := call(t, s, `{"jsonrpc":"2.0","id":9,"method":"tools/call","params":{"name":"get_mempool"}}`)

	require.NotNil(t, resp.Error)
	assert.Equal(t, mcpgo.INVALID_PARAMS, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "get_mempool")
}

func TestServer_Prompts(t *testing.T) {
	s, _ := newTestServer(t)

	resp := call(t, s, `{"jsonrpc":"2.0","id":10,"method":"prompts/list"}`)
	require.Nil(t, resp.Error)
	var list struct {
		Prompts []struct {
			Name        string            `json:"name"`
			Description string            `json:"description"`
			Arguments   []json.RawMessage `json:"arguments"`
		} `json:"prompts"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &list))
	require.Len(t, list.Prompts, 1)
	assert.Equal(t, "analyze_bitcoin_flow", list.Prompts[0].Name)
	assert.Equal(t, analytics.AnalyzeBitcoinFlowDescription, list.Prompts[0].Description)
	assert.Empty(t, list.Prompts[0].Arguments)

	resp = call(t, s, `{"jsonrpc":"2.0","id":11,"method":"prompts/get","params":{"name":"analyze_bitcoin_flow"}}`)
	require.Nil(t, resp.Error)
	var prompt struct {
		Messages []struct {
			Role    string `json:"role"`
			Content struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &prompt))
	require.Len(t, prompt.Messages, 1)
	assert.Equal(t, "user", prompt.Messages[0].Role)
	assert.Equal(t, "text", prompt.Messages[0].Content.Type)
	assert.Equal(t, analytics.AnalyzeBitcoinFlowPrompt, prompt.Messages[0].Content.Text)

	resp = call(t, s, `{"jsonrpc":"2.0","id":12,"method":"prompts/get","params":{"name":"missing"}}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, mcpgo.INVALID_PARAMS, resp.Error.Code)
}

func TestServer_ProtocolErrors(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		wantCode int
	}{
		{name: "malformed json", msg: `{"jsonrpc":"2.0",`, wantCode: mcpgo.PARSE_ERROR},
		{name: "wrong version", msg: `{"jsonrpc":"1.0","id":1,"method":"ping"}`, wantCode: mcpgo.INVALID_REQUEST},
		{name: "unknown method", msg: `{"jsonrpc":"2.0","id":3,"method":"bitcoin/mempool"}`, wantCode: mcpgo.METHOD_NOT_FOUND},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t)

			resp := call(t, s, tt.msg)

			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Empty(t, resp.Result)
		})
	}
}
