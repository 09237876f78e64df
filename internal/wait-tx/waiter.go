package waittx

import (
	"context"
	"fmt"
	"time"

	txtypes "cosmossdk.io/api/cosmos/tx/v1beta1"
	"go.uber.org/zap"

	clientconfig "github.com/Gravity-Devs/liquidity/client/config"
)

// Querier fetches transactions over gRPC.
type Querier interface {
	GetTx(ctx context.Context, req *txtypes.GetTxRequest) (*txtypes.GetTxResponse, error)
}

// Waiter races a subscriber (WS) and a poller (gRPC) to observe a tx.
type Waiter struct {
	subscriber Source
	poller     Source
	logger     *zap.Logger
}

// Option customises a Waiter.
type Option func(*waiterOptions)

type waiterOptions struct {
	logger    *zap.Logger
	newClient func(string) (TMClient, error)
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *waiterOptions) { o.logger = l }
}

// WithTMClientFactory replaces the CometBFT client used by the subscriber.
func WithTMClientFactory(f func(endpoint string) (TMClient, error)) Option {
	return func(o *waiterOptions) { o.newClient = f }
}

// New creates a waiter based on the provided config and querier. The
// websocket subscriber is only used when rpcEndpoint is set.
func New(cfg clientconfig.WaitTxConfig, rpcEndpoint string, querier Querier, opts ...Option) (*Waiter, error) {
	if querier == nil {
		return nil, fmt.Errorf("querier is required")
	}
	o := waiterOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	normalized := cfg
	clientconfig.ApplyWaitTxDefaults(&normalized)

	var sub Source
	if rpcEndpoint != "" {
		sub = newSubscriber(rpcEndpoint, o.newClient, normalized.SubscriberSetupTimeout, o.logger)
	}

	return &Waiter{
		subscriber: sub,
		poller:     newPoller(querier, normalized, o.logger),
		logger:     o.logger,
	}, nil
}

// Wait blocks until the transaction reaches a final state or the context
// ends. Polling starts together with the subscription, since a tx committed
// before the subscription is in place is never delivered over the websocket.
// The first source to observe the tx wins; an error is returned only once
// every source has failed.
func (w *Waiter) Wait(ctx context.Context, txHash string, timeout time.Duration) (Result, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if w.poller == nil {
		return Result{}, fmt.Errorf("poller is required")
	}
	if w.subscriber == nil {
		return w.poller.Wait(ctx, txHash)
	}

	raceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		res        Result
		err        error
		subscriber bool
	}
	out := make(chan outcome, 2)
	run := func(src Source, subscriber bool) {
		res, err := src.Wait(raceCtx, txHash)
		out <- outcome{res: res, err: err, subscriber: subscriber}
	}
	go run(w.subscriber, true)
	go run(w.poller, false)

	var pollErr error
	for pending := 2; pending > 0; pending-- {
		o := <-out
		if o.err == nil {
			cancel()
			for pending--; pending > 0; pending-- {
				<-out
			}
			return o.res, nil
		}
		if o.subscriber {
			w.log().Debug("subscriber failed, polling", zap.String("tx_hash", txHash), zap.Error(o.err))
		} else {
			pollErr = o.err
		}
	}
	return Result{}, pollErr
}

func (w *Waiter) log() *zap.Logger {
	if w.logger == nil {
		return zap.NewNop()
	}
	return w.logger
}
