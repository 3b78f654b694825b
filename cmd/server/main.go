package main

import (
	"github.com/dwarvesf/btc-utxo-analytics/internal/server"
)

// @title Bitcoin UTXO Analytics API
// @version 1.0
// @description UTXO and block statistics from blockchain.info, exposed as MCP tools and REST endpoints.
// @BasePath /
func main() {
	server.Init()
}
