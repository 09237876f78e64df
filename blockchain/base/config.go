package base

import (
	"time"

	sdkmath "cosmossdk.io/math"

	clientconfig "github.com/Gravity-Devs/liquidity/client/config"
)

// Config captures shared Cosmos SDK chain settings for gRPC + tx workflows.
type Config struct {
	// ChainID is looked up from the node when empty.
	ChainID     string
	GRPCAddr    string
	RPCEndpoint string
	AccountHRP  string
	FeeDenom    string
	GasPrice    sdkmath.LegacyDec
	// GasAdjustment multiplies simulated gas.
	GasAdjustment  float64
	Timeout        time.Duration
	MaxRecvMsgSize int
	MaxSendMsgSize int
	InsecureGRPC   bool
	WaitTx         clientconfig.WaitTxConfig
}

// DefaultSimulatedGas is used when simulation fails.
const DefaultSimulatedGas uint64 = 200000

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c Config) WithDefaults() Config {
	if c.GRPCAddr == "" {
		c.GRPCAddr = clientconfig.DefaultGRPCEndpoint
	}
	if c.AccountHRP == "" {
		c.AccountHRP = clientconfig.DefaultAccountHRP
	}
	if c.FeeDenom == "" {
		c.FeeDenom = clientconfig.DefaultFeeDenom
	}
	if c.GasPrice.IsNil() {
		c.GasPrice = sdkmath.LegacyMustNewDecFromStr(clientconfig.DefaultGasPrice)
	}
	if c.GasAdjustment <= 0 {
		c.GasAdjustment = clientconfig.DefaultGasAdjustment
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MaxRecvMsgSize <= 0 {
		c.MaxRecvMsgSize = 1024 * 1024 * 50
	}
	if c.MaxSendMsgSize <= 0 {
		c.MaxSendMsgSize = 1024 * 1024 * 50
	}
	clientconfig.ApplyWaitTxDefaults(&c.WaitTx)
	return c
}

// FromClientConfig maps the user-facing configuration onto a base Config.
func FromClientConfig(cfg clientconfig.Config) (Config, error) {
	price, err := cfg.GasPriceDec()
	if err != nil {
		return Config{}, err
	}
	return Config{
		ChainID:        cfg.ChainID,
		GRPCAddr:       cfg.GRPCEndpoint,
		RPCEndpoint:    cfg.RPCEndpoint,
		AccountHRP:     cfg.AccountHRP,
		FeeDenom:       cfg.FeeDenom,
		GasPrice:       price,
		GasAdjustment:  cfg.GasAdjustment,
		Timeout:        cfg.BlockchainTimeout,
		MaxRecvMsgSize: cfg.MaxRecvMsgSize,
		MaxSendMsgSize: cfg.MaxSendMsgSize,
		InsecureGRPC:   cfg.InsecureGRPC,
		WaitTx:         cfg.WaitTx,
	}.WithDefaults(), nil
}
