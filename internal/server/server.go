package server

import (
	"context"
	"io"
	"net"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/dwarvesf/btc-utxo-analytics/internal/analytics"
	"github.com/dwarvesf/btc-utxo-analytics/internal/btcrpc"
	"github.com/dwarvesf/btc-utxo-analytics/internal/handler"
	"github.com/dwarvesf/btc-utxo-analytics/internal/mcp"
	"github.com/dwarvesf/btc-utxo-analytics/internal/monitoring"
	"github.com/dwarvesf/btc-utxo-analytics/internal/transport/http"
	"github.com/dwarvesf/btc-utxo-analytics/internal/types/environments"
	"github.com/dwarvesf/btc-utxo-analytics/internal/utils/config"
	"github.com/dwarvesf/btc-utxo-analytics/internal/utils/logger"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

func Init() {
	appConfig := config.New()

	// stdout carries MCP frames when stdio is served
	var log *logger.Logger
	if appConfig.ServesStdio() {
		log = logger.NewWithOutput(appConfig.Environment, "stderr")
		gin.DefaultWriter = os.Stderr
	} else {
		log = logger.New(appConfig.Environment)
	}
	defer log.Sync()

	if appConfig.Environment == environments.Production || appConfig.Environment == environments.Staging {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := appConfig.Validate(); err != nil {
		log.Warn("[Init][appConfig.Validate]", map[string]string{
			"error": err.Error(),
		})
	}
	if !appConfig.ServesStdio() && !appConfig.ServesHTTP() {
		log.Fatal("[Init] nothing to serve", map[string]string{
			"transport": appConfig.MCP.Transport,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx, appConfig, log, os.Stdin, os.Stdout); err != nil {
		log.Error("[Init][Run]", map[string]string{
			"error": err.Error(),
		})
		return
	}
	log.Info("[Init] server stopped")
}

// Run wires the upstream client, the analytics service and the MCP server,
// then serves the configured transports until ctx is done or stdio hits EOF
// with no HTTP server running.
func Run(ctx context.Context, appConfig *config.AppConfig, log *logger.Logger, stdin io.Reader, stdout io.Writer) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := monitoring.NewHTTPMetrics()
	httpMetrics.MustRegister(registry)
	apiMetrics := monitoring.NewExternalAPIMetrics()
	apiMetrics.MustRegister(registry)

	btcRpc := btcrpc.New(appConfig, log, apiMetrics)
	analyticsSvc := analytics.New(btcRpc, log, monitoring.NewToolMetricsRecorder(httpMetrics))

	mcpServer := mcp.NewServer(appConfig.MCP.ServerName, mcp.ServerVersion, log)
	mcp.RegisterBitcoinTools(mcpServer, analyticsSvc, log)

	g, gctx := errgroup.WithContext(ctx)

	if appConfig.ServesStdio() {
		g.Go(func() error {
			return mcp.ServeStdio(gctx, mcpServer, stdin, stdout, log)
		})
	}

	if appConfig.ServesHTTP() {
		mcpTransport := mcp.NewStreamableHTTPServer(mcpServer, log)
		h := handler.New(appConfig, log, btcRpc, analyticsSvc, mcpTransport, registry)
		srv := &nethttp.Server{
			Addr:              ":" + appConfig.ApiServer.Port,
			Handler:           http.NewHttpServer(appConfig, log, h, httpMetrics),
			ReadHeaderTimeout: readHeaderTimeout,
			// long-lived MCP event streams end with the group context
			BaseContext: func(net.Listener) context.Context {
				return gctx
			},
		}

		g.Go(func() error {
			log.Info("[Run] http server listening", map[string]string{
				"addr": srv.Addr,
			})
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
				return errors.Wrap(err, "http server failed")
			}
			return nil
		})

		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			log.Info("[Run] shutting down http server")
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return errors.Wrap(err, "http server shutdown failed")
			}
			return nil
		})
	}

	return g.Wait()
}
