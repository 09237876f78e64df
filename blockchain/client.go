package blockchain

import (
	"context"
	"fmt"
	"sync"

	txtypes "cosmossdk.io/api/cosmos/tx/v1beta1"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/Gravity-Devs/liquidity/blockchain/base"
	waittx "github.com/Gravity-Devs/liquidity/internal/wait-tx"
	"github.com/Gravity-Devs/liquidity/pkg/log"
)

// Client provides access to blockchain operations
type Client struct {
	*base.Client

	// Module-specific clients
	Channel *ChannelClient

	// Internal
	txService txtypes.ServiceClient
	waiter    *waittx.Waiter

	mu      sync.Mutex
	chainID string
}

// Option customises a Client.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	dialOptions []grpc.DialOption
}

// WithLogger sets the logger used by the client and its tx waiter.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithDialOptions appends gRPC dial options, e.g. a custom context dialer.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *options) { o.dialOptions = append(o.dialOptions, opts...) }
}

// New creates a new blockchain client
func New(ctx context.Context, cfg base.Config, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = log.OrNop(o.logger)

	bc, err := base.New(ctx, cfg, o.logger, o.dialOptions...)
	if err != nil {
		return nil, err
	}
	cfg = bc.Config()

	txService := txtypes.NewServiceClient(bc.GRPCConn())
	waiter, err := waittx.New(cfg.WaitTx, cfg.RPCEndpoint, txQuerier{svc: txService}, waittx.WithLogger(o.logger))
	if err != nil {
		_ = bc.Close()
		return nil, fmt.Errorf("create tx waiter: %w", err)
	}

	return &Client{
		Client: bc,
		Channel: &ChannelClient{
			query: channeltypes.NewQueryClient(bc.GRPCConn()),
		},
		txService: txService,
		waiter:    waiter,
		chainID:   cfg.ChainID,
	}, nil
}

// txQuerier adapts the generated tx service client to the waiter's Querier.
type txQuerier struct {
	svc txtypes.ServiceClient
}

func (q txQuerier) GetTx(ctx context.Context, req *txtypes.GetTxRequest) (*txtypes.GetTxResponse, error) {
	return q.svc.GetTx(ctx, req)
}
