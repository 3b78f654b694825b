package mcp

import (
	"context"
	"fmt"
	"time"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dwarvesf/btc-utxo-analytics/internal/utils/logger"
)

const (
	ServerVersion = "1.0.0"
	EndpointPath  = "/mcp"

	heartbeatInterval = 30 * time.Second
)

// NewServer builds the MCP server that both transports share. Tools and
// prompts are registered separately by RegisterBitcoinTools.
func NewServer(name, version string, log *logger.Logger) *server.MCPServer {
	hooks := &server.Hooks{}
	hooks.AddAfterInitialize(func(ctx context.Context, id any, message *mcpgo.InitializeRequest, result *mcpgo.InitializeResult) {
		log.Info("[mcp.Initialize] client connected", map[string]string{
			"client":          message.Params.ClientInfo.Name,
			"protocolVersion": result.ProtocolVersion,
		})
	})
	hooks.AddOnError(func(ctx context.Context, id any, method mcpgo.MCPMethod, message any, err error) {
		log.Warn("[mcp.HandleMessage]", map[string]string{
			"method": string(method),
			"error":  err.Error(),
		})
	})

	return server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
		server.WithHooks(hooks),
	)
}

// NewStreamableHTTPServer exposes s over the Streamable HTTP transport at
// EndpointPath. The result is an http.Handler and is mounted on the API router.
func NewStreamableHTTPServer(s *server.MCPServer, log *logger.Logger) *server.StreamableHTTPServer {
	return server.NewStreamableHTTPServer(s,
		server.WithEndpointPath(EndpointPath),
		server.WithHeartbeatInterval(heartbeatInterval),
		server.WithLogger(transportLogger{log: log}),
	)
}

// transportLogger routes the HTTP transport's printf-style logs through zap.
type transportLogger struct {
	log *logger.Logger
}

func (l transportLogger) Infof(format string, v ...any) {
	l.log.Info("[mcp.StreamableHTTP]", map[string]string{
		"message": fmt.Sprintf(format, v...),
	})
}

func (l transportLogger) Errorf(format string, v ...any) {
	l.log.Error("[mcp.StreamableHTTP]", map[string]string{
		"message": fmt.Sprintf(format, v...),
	})
}
