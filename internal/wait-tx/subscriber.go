package waittx

import (
	"context"
	"fmt"
	"strings"
	"time"

	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	ctypes "github.com/cometbft/cometbft/rpc/core/types"
	tmtypes "github.com/cometbft/cometbft/types"
	"go.uber.org/zap"
)

const subscriberID = "liquidity-sdk-wait"

// TMClient is the subset of the CometBFT RPC client used for subscriptions.
type TMClient interface {
	Start() error
	Stop() error
	Subscribe(ctx context.Context, subscriber, query string, outCapacity ...int) (<-chan ctypes.ResultEvent, error)
	Unsubscribe(ctx context.Context, subscriber, query string) error
}

// NewHTTPClient returns an HTTP+WS client for an endpoint like "http://127.0.0.1:26657".
func NewHTTPClient(endpoint string) (TMClient, error) {
	return rpchttp.New(endpoint, "/websocket")
}

type subscriber struct {
	endpoint     string
	newClient    func(endpoint string) (TMClient, error)
	setupTimeout time.Duration
	logger       *zap.Logger
}

func newSubscriber(endpoint string, newClient func(string) (TMClient, error), setupTimeout time.Duration, logger *zap.Logger) Source {
	if newClient == nil {
		newClient = NewHTTPClient
	}
	return &subscriber{endpoint: endpoint, newClient: newClient, setupTimeout: setupTimeout, logger: logger}
}

func (s *subscriber) Wait(ctx context.Context, txHash string) (Result, error) {
	client, err := s.newClient(s.endpoint)
	if err != nil {
		return Result{}, fmt.Errorf("tm client init: %w", err)
	}
	if err := client.Start(); err != nil {
		return Result{}, fmt.Errorf("tm client start: %w", err)
	}
	defer client.Stop() //nolint:errcheck

	query := fmt.Sprintf("tm.event='Tx' AND tx.hash='%s'", formatTMHash(txHash))
	setupCtx := ctx
	if s.setupTimeout > 0 {
		var cancel context.CancelFunc
		setupCtx, cancel = context.WithTimeout(ctx, s.setupTimeout)
		defer cancel()
	}
	ch, err := client.Subscribe(setupCtx, subscriberID, query)
	if err != nil {
		return Result{}, fmt.Errorf("subscribe: %w", err)
	}
	defer client.Unsubscribe(context.Background(), subscriberID, query) //nolint:errcheck

	for {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case ev, ok := <-ch:
			if !ok {
				return Result{}, fmt.Errorf("subscription closed")
			}
			txev, ok := ev.Data.(tmtypes.EventDataTx)
			if !ok {
				continue
			}
			if s.logger != nil {
				s.logger.Debug("tx event received", zap.String("tx_hash", txHash), zap.Int64("height", txev.Height))
			}
			return resultFromEvent(txHash, txev), nil
		}
	}
}

func resultFromEvent(txHash string, txev tmtypes.EventDataTx) Result {
	res := txev.Result
	flat := make(map[string][]string)
	for _, e := range res.Events {
		for _, a := range e.Attributes {
			key := e.Type + "." + a.Key
			flat[key] = append(flat[key], a.Value)
		}
	}
	return Result{
		TxHash:    strings.ToUpper(strings.TrimPrefix(txHash, "0x")),
		Height:    txev.Height,
		Code:      res.Code,
		Codespace: res.Codespace,
		RawLog:    res.Log,
		GasWanted: res.GasWanted,
		GasUsed:   res.GasUsed,
		Events:    flat,
	}
}

// formatTMHash renders a hash the way CometBFT v0.38 expects in tx.hash queries.
func formatTMHash(h string) string {
	h = strings.TrimPrefix(h, "0x")
	return "0x" + strings.ToUpper(h)
}
