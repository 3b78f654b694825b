package mcp

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/dwarvesf/btc-utxo-analytics/internal/utils/logger"
	"github.com/dwarvesf/btc-utxo-analytics/internal/view"
)

const maxBodySize = 4 << 20

type handler struct {
	transport http.Handler
	logger    *logger.Logger
}

// New mounts the Streamable HTTP transport on gin. POST bodies are read up
// front so oversized or broken uploads never reach the JSON-RPC layer.
func New(transport http.Handler, logger *logger.Logger) IHandler {
	return &handler{
		transport: transport,
		logger:    logger,
	}
}

// Handle godoc
// @Summary MCP Streamable HTTP endpoint
// @Description POST carries one JSON-RPC 2.0 Model Context Protocol message. The initialize
// @Description response returns an Mcp-Session-Id header that later requests must send back.
// @Description Notifications are acknowledged with 202. GET opens a server-sent event stream
// @Description for the session and DELETE ends it.
// @id mcp
// @Tags MCP
// @Accept json
// @Produce json,text/event-stream
// @Param Mcp-Session-Id header string false "Session id returned by initialize"
// @Param request body object true "JSON-RPC 2.0 message"
// @Success 200 {object} object
// @Success 202
// @Failure 400 {object} view.Response[any]
// @Failure 404 {string} string "unknown session"
// @Failure 413 {object} view.Response[any]
// @Router /mcp [post]
func (h *handler) Handle(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize))
		if err != nil {
			h.logger.Error("[mcp.Handle][io.ReadAll]", map[string]string{
				"error": err.Error(),
			})

			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				c.JSON(http.StatusRequestEntityTooLarge, view.CreateResponse[any](nil, err, nil, "request body too large"))
				return
			}
			c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, nil, "failed to read request body"))
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}

	h.transport.ServeHTTP(c.Writer, c.Request)
}
