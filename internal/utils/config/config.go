package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/dwarvesf/btc-utxo-analytics/internal/types/environments"
)

const (
	DefaultPort                 = "8080"
	DefaultAllowedOrigins       = "*"
	DefaultBlockchainInfoAPIURL = "https://blockchain.info"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultMCPServerName        = "Bitcoin UTXO Analytics"
)

// MCP transports the server can expose.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
	TransportAll   = "all"
)

type AppConfig struct {
	Environment environments.Environment
	ApiServer   ApiServerConfig
	Bitcoin     BitcoinConfig
	MCP         MCPConfig

	// problems collected while reading the environment
	invalid []string
}

type ApiServerConfig struct {
	Port           string
	AllowedOrigins string
}

type BitcoinConfig struct {
	BlockchainInfoAPIURL string
	RequestTimeout       time.Duration
}

type MCPConfig struct {
	ServerName string
	Transport  string
}

func New() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = string(environments.Development)
	}

	// this will not override env variables if they already exist
	godotenv.Load(".env." + env)

	cfg := &AppConfig{
		Environment: environments.Environment(env),
		ApiServer: ApiServerConfig{
			Port:           envVarOrDefault("PORT", DefaultPort),
			AllowedOrigins: envVarOrDefault("ALLOWED_ORIGINS", DefaultAllowedOrigins),
		},
		Bitcoin: BitcoinConfig{
			BlockchainInfoAPIURL: strings.TrimRight(envVarOrDefault("BTC_BLOCKCHAIN_INFO_API_URL", DefaultBlockchainInfoAPIURL), "/"),
		},
		MCP: MCPConfig{
			ServerName: envVarOrDefault("MCP_SERVER_NAME", DefaultMCPServerName),
			Transport:  strings.ToLower(envVarOrDefault("MCP_TRANSPORT", TransportAll)),
		},
	}

	timeout, err := envVarAsDuration("BTC_REQUEST_TIMEOUT", DefaultRequestTimeout)
	if err != nil {
		cfg.invalid = append(cfg.invalid, err.Error())
	}
	cfg.Bitcoin.RequestTimeout = timeout

	return cfg
}

// Validate reports configuration values that were rejected or are unusable.
func (c *AppConfig) Validate() error {
	problems := append([]string{}, c.invalid...)

	if !c.Environment.IsKnown() {
		problems = append(problems, fmt.Sprintf("unknown APP_ENV %q, falling back to production settings", c.Environment))
	}
	if c.Bitcoin.BlockchainInfoAPIURL == "" {
		problems = append(problems, "BTC_BLOCKCHAIN_INFO_API_URL is empty")
	}
	switch c.MCP.Transport {
	case TransportStdio, TransportHTTP, TransportAll:
	default:
		problems = append(problems, fmt.Sprintf("unsupported MCP_TRANSPORT %q", c.MCP.Transport))
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.New(strings.Join(problems, "; "))
}

// ServesStdio reports whether the MCP stdio transport should run.
func (c *AppConfig) ServesStdio() bool {
	return c.MCP.Transport == TransportStdio || c.MCP.Transport == TransportAll
}

// ServesHTTP reports whether the HTTP server should run.
func (c *AppConfig) ServesHTTP() bool {
	return c.MCP.Transport == TransportHTTP || c.MCP.Transport == TransportAll
}

func envVarOrDefault(envName, fallback string) string {
	if value := os.Getenv(envName); value != "" {
		return value
	}
	return fallback
}

func envVarAsDuration(envName string, fallback time.Duration) (time.Duration, error) {
	valueStr := os.Getenv(envName)
	if valueStr == "" {
		return fallback, nil
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallback, errors.Wrapf(err, "invalid %s", envName)
	}
	if value <= 0 {
		return fallback, errors.Errorf("invalid %s: must be positive", envName)
	}

	return value, nil
}
