package config

import (
	"fmt"
	"strings"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "LIQUIDITY_"

// Config holds all configuration for the liquidity client.
type Config struct {
	// Blockchain connection
	ChainID      string `env:"CHAIN_ID"`      // discovered from the node when empty
	GRPCEndpoint string `env:"GRPC_ENDPOINT"` // node gRPC endpoint, used for txs
	RPCEndpoint  string `env:"RPC_ENDPOINT"`  // CometBFT RPC endpoint for websocket subscriptions
	RESTEndpoint string `env:"REST_ENDPOINT"` // gRPC-gateway (LCD) endpoint, used for queries
	InsecureGRPC bool   `env:"INSECURE_GRPC"`

	// Account settings
	AccountHRP string `env:"ACCOUNT_HRP"`
	Address    string `env:"ADDRESS"`
	KeyName    string `env:"KEY_NAME"`

	// Fees
	FeeDenom      string  `env:"FEE_DENOM"`
	GasPrice      string  `env:"GAS_PRICE"` // decimal amount of FeeDenom per gas unit
	GasAdjustment float64 `env:"GAS_ADJUSTMENT"`

	// Timeouts
	BlockchainTimeout time.Duration `env:"BLOCKCHAIN_TIMEOUT"`
	QueryTimeout      time.Duration `env:"QUERY_TIMEOUT"`

	// Optional overrides
	MaxRecvMsgSize int `env:"MAX_RECV_MSG_SIZE"` // Max message size for gRPC (default: 50MB)
	MaxSendMsgSize int `env:"MAX_SEND_MSG_SIZE"`

	LogLevel string `env:"LOG_LEVEL"`

	// WaitTx controls transaction confirmation behaviour.
	WaitTx WaitTxConfig `envPrefix:"WAIT_TX_"`
}

// WaitTxConfig configures how the SDK waits for transaction inclusion.
type WaitTxConfig struct {
	// SubscriberSetupTimeout bounds how long the websocket subscription may take to become ready.
	SubscriberSetupTimeout time.Duration `env:"SUBSCRIBER_SETUP_TIMEOUT"`

	// Polling runs alongside the websocket subscription and alone when no RPC endpoint is set.
	// PollInterval controls how frequently the fallback poller queries gRPC for the tx.
	PollInterval time.Duration `env:"POLL_INTERVAL"`
	// PollMaxRetries limits the number of poll attempts before failing (0 => unlimited until ctx deadline).
	PollMaxRetries int `env:"POLL_MAX_RETRIES"`
	// PollBackoffMultiplier > 1 enables exponential growth for poll intervals.
	PollBackoffMultiplier float64 `env:"POLL_BACKOFF_MULTIPLIER"`
	// PollBackoffMaxInterval caps the exponential backoff delay (0 => unlimited).
	PollBackoffMaxInterval time.Duration `env:"POLL_BACKOFF_MAX_INTERVAL"`
	// PollBackoffJitter randomizes delays (0..1) to avoid synced retries.
	PollBackoffJitter float64 `env:"POLL_BACKOFF_JITTER"`
}

// FromEnv returns Default() overridden by any LIQUIDITY_* environment variables.
func FromEnv() (Config, error) {
	cfg := Default()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid and populates defaults.
// Address and KeyName are only required by clients that sign.
func (c *Config) Validate() error {
	if c.GRPCEndpoint == "" {
		return fmt.Errorf("grpc_endpoint is required")
	}
	if c.RESTEndpoint == "" {
		c.RESTEndpoint = DefaultRESTEndpoint
	}
	if !strings.HasPrefix(c.RESTEndpoint, "http://") && !strings.HasPrefix(c.RESTEndpoint, "https://") {
		return fmt.Errorf("rest_endpoint must be an http(s) URL, got %q", c.RESTEndpoint)
	}

	// Set defaults
	if c.AccountHRP == "" {
		c.AccountHRP = DefaultAccountHRP
	}
	if c.FeeDenom == "" {
		c.FeeDenom = DefaultFeeDenom
	}
	if c.GasPrice == "" {
		c.GasPrice = DefaultGasPrice
	}
	if _, err := c.GasPriceDec(); err != nil {
		return err
	}
	if c.GasAdjustment == 0 {
		c.GasAdjustment = DefaultGasAdjustment
	}
	if c.GasAdjustment < 1 {
		return fmt.Errorf("gas_adjustment must be >= 1, got %v", c.GasAdjustment)
	}
	if c.BlockchainTimeout == 0 {
		c.BlockchainTimeout = 30 * time.Second
	}
	if c.QueryTimeout == 0 {
		c.QueryTimeout = 10 * time.Second
	}
	if c.MaxRecvMsgSize == 0 {
		c.MaxRecvMsgSize = 1024 * 1024 * 50 // 50MB
	}
	if c.MaxSendMsgSize == 0 {
		c.MaxSendMsgSize = 1024 * 1024 * 50 // 50MB
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	ApplyWaitTxDefaults(&c.WaitTx)

	return nil
}

// GasPriceDec parses GasPrice.
func (c Config) GasPriceDec() (sdkmath.LegacyDec, error) {
	price, err := sdkmath.LegacyNewDecFromStr(c.GasPrice)
	if err != nil {
		return sdkmath.LegacyDec{}, fmt.Errorf("invalid gas_price %q: %w", c.GasPrice, err)
	}
	if price.IsNegative() {
		return sdkmath.LegacyDec{}, fmt.Errorf("gas_price must not be negative, got %s", c.GasPrice)
	}
	return price, nil
}

// Defaults used when the corresponding field is empty.
const (
	DefaultGRPCEndpoint  = "localhost:9090"
	DefaultRESTEndpoint  = "http://localhost:1317"
	DefaultAccountHRP    = "cosmos"
	DefaultFeeDenom      = "stake"
	DefaultGasPrice      = "0.025"
	DefaultGasAdjustment = 1.3
)

// Default returns a configuration pointing at a local node.
func Default() Config {
	return Config{
		GRPCEndpoint:      DefaultGRPCEndpoint,
		RPCEndpoint:       "http://localhost:26657",
		RESTEndpoint:      DefaultRESTEndpoint,
		AccountHRP:        DefaultAccountHRP,
		FeeDenom:          DefaultFeeDenom,
		GasPrice:          DefaultGasPrice,
		GasAdjustment:     DefaultGasAdjustment,
		BlockchainTimeout: 30 * time.Second,
		QueryTimeout:      10 * time.Second,
		MaxRecvMsgSize:    1024 * 1024 * 50,
		MaxSendMsgSize:    1024 * 1024 * 50,
		LogLevel:          "info",
		WaitTx:            DefaultWaitTxConfig(),
	}
}

// DefaultWaitTxConfig returns recommended defaults for wait-tx behaviour.
func DefaultWaitTxConfig() WaitTxConfig {
	return WaitTxConfig{
		SubscriberSetupTimeout: 5 * time.Second,
		PollInterval:           500 * time.Millisecond,
		PollMaxRetries:         40,
		PollBackoffMultiplier:  1.5,
		PollBackoffMaxInterval: 20 * time.Second,
		PollBackoffJitter:      0,
	}
}

// ApplyWaitTxDefaults normalizes zero or negative values using defaults.
func ApplyWaitTxDefaults(cfg *WaitTxConfig) {
	if cfg == nil {
		return
	}
	def := DefaultWaitTxConfig()

	if cfg.SubscriberSetupTimeout <= 0 {
		cfg.SubscriberSetupTimeout = def.SubscriberSetupTimeout
	}

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = def.PollInterval
	}
	if cfg.PollBackoffMultiplier <= 0 {
		cfg.PollBackoffMultiplier = def.PollBackoffMultiplier
	}
	if cfg.PollBackoffMaxInterval <= 0 {
		cfg.PollBackoffMaxInterval = def.PollBackoffMaxInterval
	}
	if cfg.PollBackoffJitter < 0 {
		cfg.PollBackoffJitter = 0
	}
}
