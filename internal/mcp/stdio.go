package mcp

import (
	"context"
	"io"

	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"

	"github.com/dwarvesf/btc-utxo-analytics/internal/utils/logger"
)

// ServeStdio serves s over newline-delimited JSON-RPC on in and out until in
// reaches EOF or ctx is done. Both are a clean stop.
func ServeStdio(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer, log *logger.Logger) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(log.ErrorLogger())

	log.Info("[mcp.ServeStdio] serving MCP over stdio")
	err := stdio.Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, "stdio transport failed")
	}

	log.Info("[mcp.ServeStdio] stdio transport stopped")
	return nil
}
