package client

import (
	"context"
	"errors"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"go.uber.org/zap"

	"github.com/Gravity-Devs/liquidity/blockchain"
	"github.com/Gravity-Devs/liquidity/blockchain/base"
	"github.com/Gravity-Devs/liquidity/ibc/channel"
	"github.com/Gravity-Devs/liquidity/liquidity"
	"github.com/Gravity-Devs/liquidity/pkg/crypto"
	"github.com/Gravity-Devs/liquidity/pkg/log"
	"github.com/Gravity-Devs/liquidity/rest"
	"github.com/Gravity-Devs/liquidity/types"
)

// Client provides unified access to the liquidity and IBC channel modules.
type Client struct {
	// Blockchain is the gRPC client used for signing, broadcasting and
	// channel queries.
	Blockchain *blockchain.Client

	// REST query clients
	Liquidity *liquidity.QueryClient
	Channel   *channel.QueryClient

	// Tx clients, nil when no signer is configured
	liquidityTx *liquidity.TxClient
	channelTx   *channel.TxClient

	config Config
	signer types.Signer
	logger *zap.Logger
}

// New creates a unified client. A signer is taken from WithTxSigner or, when
// kr is set and cfg.KeyName is not empty, loaded from the keyring. Without a
// signer the client is query-only and the tx accessors return
// types.ErrMissingWallet.
func New(ctx context.Context, cfg Config, kr keyring.Keyring, opts ...Option) (*Client, error) {
	s := settings{cfg: &cfg}
	for _, opt := range opts {
		opt(&s)
	}
	logger := log.OrNop(s.logger)

	if err := cfg.Validate(); err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidConfig, err.Error())
	}

	signer, err := resolveSigner(cfg, kr, s.signer)
	if err != nil {
		return nil, err
	}

	baseCfg, err := base.FromClientConfig(cfg)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidConfig, err.Error())
	}
	bc, err := blockchain.New(ctx, baseCfg,
		blockchain.WithLogger(logger),
		blockchain.WithDialOptions(s.dialOptions...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blockchain client: %w", err)
	}

	rc, err := rest.New(rest.Options{
		Addr:       cfg.RESTEndpoint,
		HTTPClient: s.httpClient,
		Timeout:    cfg.QueryTimeout,
		Logger:     logger,
	})
	if err != nil {
		if closeErr := bc.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to initialize rest client: %w; also failed to close blockchain client: %v", err, closeErr)
		}
		return nil, fmt.Errorf("failed to initialize rest client: %w", err)
	}

	c := &Client{
		Blockchain: bc,
		Liquidity:  liquidity.NewQueryClientFrom(rc),
		Channel:    channel.NewQueryClientFrom(rc),
		config:     cfg,
		signer:     signer,
		logger:     logger,
	}
	if signer != nil {
		tx, err := bc.TxClient(signer)
		if err != nil {
			_ = bc.Close()
			return nil, err
		}
		c.liquidityTx = liquidity.NewTxClientFrom(tx)
		c.channelTx = channel.NewTxClientFrom(tx)
		logger.Debug("client ready", zap.String("signer", signer.Address()), zap.String("grpc", cfg.GRPCEndpoint))
	}
	return c, nil
}

func resolveSigner(cfg Config, kr keyring.Keyring, explicit types.Signer) (types.Signer, error) {
	var signer types.Signer
	if !types.IsNilSigner(explicit) {
		signer = explicit
	}
	if signer == nil && kr != nil && cfg.KeyName != "" {
		ks, err := crypto.NewKeyringSigner(kr, cfg.KeyName, cfg.AccountHRP)
		if err != nil {
			return nil, errorsmod.Wrap(types.ErrInvalidConfig, err.Error())
		}
		signer = ks
	}
	if cfg.Address != "" {
		if err := crypto.ValidateAccountAddress(cfg.Address, cfg.AccountHRP); err != nil {
			return nil, errorsmod.Wrap(types.ErrInvalidConfig, err.Error())
		}
	}
	if signer != nil && cfg.Address != "" && cfg.Address != signer.Address() {
		return nil, errorsmod.Wrapf(types.ErrInvalidConfig,
			"address %s does not match signer address %s", cfg.Address, signer.Address())
	}
	return signer, nil
}

// LiquidityTx returns the liquidity tx client bound to the configured signer.
func (c *Client) LiquidityTx() (*liquidity.TxClient, error) {
	if c.liquidityTx == nil {
		return nil, types.ErrMissingWallet
	}
	return c.liquidityTx, nil
}

// ChannelTx returns the IBC channel tx client bound to the configured signer.
func (c *Client) ChannelTx() (*channel.TxClient, error) {
	if c.channelTx == nil {
		return nil, types.ErrMissingWallet
	}
	return c.channelTx, nil
}

// Signer returns the configured signer, or nil for a query-only client.
func (c *Client) Signer() types.Signer {
	return c.signer
}

// Close releases all resources
func (c *Client) Close() error {
	var errs []error

	if c.Blockchain != nil {
		if err := c.Blockchain.Close(); err != nil {
			errs = append(errs, fmt.Errorf("blockchain close: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Config returns the client configuration
func (c *Client) Config() Config {
	return c.config
}
