package waittx

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	abcipb "cosmossdk.io/api/cosmos/base/abci/v1beta1"
	txtypes "cosmossdk.io/api/cosmos/tx/v1beta1"
	abci "github.com/cometbft/cometbft/abci/types"
	ctypes "github.com/cometbft/cometbft/rpc/core/types"
	tmtypes "github.com/cometbft/cometbft/types"

	clientconfig "github.com/Gravity-Devs/liquidity/client/config"
)

type stubSource struct {
	res   Result
	err   error
	delay time.Duration
	calls atomic.Int32
}

// Wait answers after delay, or fails when ctx ends first.
func (s *stubSource) Wait(ctx context.Context, txHash string) (Result, error) {
	s.calls.Add(1)
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-time.After(s.delay):
		return s.res, s.err
	}
}

func TestWaiterPrefersFirstResult(t *testing.T) {
	poller := &stubSource{res: Result{Code: 1}, delay: time.Hour}
	sub := &stubSource{res: Result{Code: 0}}
	w := &Waiter{poller: poller, subscriber: sub}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	res, err := w.Wait(ctx, "hash", 0)
	if err != nil {
		t.Fatalf("wait error: %v", err)
	}
	if res.Code != 0 {
		t.Fatalf("expected subscriber result, got %+v", res)
	}
	if poller.calls.Load() != 1 {
		t.Fatalf("poller should run alongside the subscriber")
	}
}

func TestWaiterPollsWhileSubscribing(t *testing.T) {
	// The tx is already committed, so the subscription never sees it.
	poller := &stubSource{res: Result{Code: 2, Height: 9}, delay: time.Millisecond}
	sub := &stubSource{delay: time.Hour}
	w := &Waiter{poller: poller, subscriber: sub}

	start := time.Now()
	res, err := w.Wait(context.Background(), "hash", time.Second)
	if err != nil {
		t.Fatalf("wait error: %v", err)
	}
	if res.Height != 9 {
		t.Fatalf("expected poller result, got %+v", res)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("polling was delayed by %s", elapsed)
	}
}

func TestWaiterFallsBackToPoller(t *testing.T) {
	poller := &stubSource{res: Result{Code: 2}, delay: 20 * time.Millisecond}
	sub := &stubSource{err: errors.New("boom")}

	w := &Waiter{poller: poller, subscriber: sub}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	res, err := w.Wait(ctx, "hash", 0)
	if err != nil {
		t.Fatalf("wait error: %v", err)
	}
	if res.Code != 2 {
		t.Fatalf("expected poller result")
	}
}

func TestWaiterWaitsForSubscriberAfterPollerGivesUp(t *testing.T) {
	poller := &stubSource{err: errors.New("retries exhausted")}
	sub := &stubSource{res: Result{Height: 11}, delay: 20 * time.Millisecond}
	w := &Waiter{poller: poller, subscriber: sub}

	res, err := w.Wait(context.Background(), "hash", time.Second)
	if err != nil {
		t.Fatalf("wait error: %v", err)
	}
	if res.Height != 11 {
		t.Fatalf("expected subscriber result, got %+v", res)
	}
}

func TestWaiterReturnsPollerErrorWhenBothFail(t *testing.T) {
	pollErr := errors.New("retries exhausted")
	w := &Waiter{
		poller:     &stubSource{err: pollErr},
		subscriber: &stubSource{err: errors.New("no websocket")},
	}

	_, err := w.Wait(context.Background(), "hash", time.Second)
	if !errors.Is(err, pollErr) {
		t.Fatalf("expected poller error, got %v", err)
	}
}

type waiterStubQuerier struct {
	resp  *txtypes.GetTxResponse
	err   error
	calls int
}

func (s *waiterStubQuerier) GetTx(ctx context.Context, req *txtypes.GetTxRequest) (*txtypes.GetTxResponse, error) {
	s.calls++
	return s.resp, s.err
}

func TestNewSetsDefaults(t *testing.T) {
	resp := &txtypes.GetTxResponse{TxResponse: &abcipb.TxResponse{Txhash: "hash", Height: 1}}
	q := &waiterStubQuerier{resp: resp}

	failing := func(string) (TMClient, error) { return nil, errors.New("no node") }
	w, err := New(clientconfig.DefaultWaitTxConfig(), "http://localhost:26657", q, WithTMClientFactory(failing))
	if err != nil {
		t.Fatalf("new error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := w.Wait(ctx, "hash", 0); err != nil {
		t.Fatalf("unexpected wait error: %v", err)
	}
}

type fakeTMClient struct {
	events  chan ctypes.ResultEvent
	started bool
	stopped bool
	query   string
}

func (f *fakeTMClient) Start() error {
	f.started = true
	return nil
}

func (f *fakeTMClient) Stop() error {
	f.stopped = true
	return nil
}

func (f *fakeTMClient) Subscribe(_ context.Context, _ string, query string, _ ...int) (<-chan ctypes.ResultEvent, error) {
	f.query = query
	return f.events, nil
}

func (f *fakeTMClient) Unsubscribe(context.Context, string, string) error { return nil }

func TestSubscriberReturnsTxResult(t *testing.T) {
	fake := &fakeTMClient{events: make(chan ctypes.ResultEvent, 2)}
	fake.events <- ctypes.ResultEvent{Data: tmtypes.EventDataNewBlock{}}
	fake.events <- ctypes.ResultEvent{Data: tmtypes.EventDataTx{TxResult: abci.TxResult{
		Height: 42,
		Result: abci.ExecTxResult{
			Code:      5,
			Codespace: "liquidity",
			Log:       "insufficient pool coin",
			GasWanted: 200000,
			GasUsed:   81234,
			Events: []abci.Event{{
				Type:       "withdraw_within_batch",
				Attributes: []abci.EventAttribute{{Key: "pool_id", Value: "1"}},
			}},
		},
	}}}

	sub := newSubscriber("http://node:26657", func(string) (TMClient, error) { return fake, nil }, time.Second, nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	res, err := sub.Wait(ctx, "abcd")
	if err != nil {
		t.Fatalf("wait error: %v", err)
	}
	if fake.query != "tm.event='Tx' AND tx.hash='0xABCD'" {
		t.Fatalf("unexpected query: %s", fake.query)
	}
	if !fake.started || !fake.stopped {
		t.Fatalf("client lifecycle not honoured")
	}
	if res.Height != 42 || res.Code != 5 || res.GasUsed != 81234 || res.RawLog != "insufficient pool coin" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if got := res.Events["withdraw_within_batch.pool_id"]; len(got) != 1 || got[0] != "1" {
		t.Fatalf("unexpected events: %v", res.Events)
	}
}
