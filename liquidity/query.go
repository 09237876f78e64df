package liquidity

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	liquiditytypes "github.com/Gravity-Devs/liquidity/liquidity/types"
	"github.com/Gravity-Devs/liquidity/rest"
	"github.com/Gravity-Devs/liquidity/types"
)

const basePath = "/cosmos/liquidity/v1beta1"

// QueryClientOptions configure a REST query client.
type QueryClientOptions = rest.Options

// QueryClient reads liquidity module state from the REST gateway.
type QueryClient struct {
	rest *rest.Client
}

// NewQueryClient creates a liquidity query client for opts.Addr.
func NewQueryClient(opts QueryClientOptions) (*QueryClient, error) {
	c, err := rest.New(opts)
	if err != nil {
		return nil, err
	}
	return &QueryClient{rest: c}, nil
}

// NewQueryClientFrom shares an existing REST client.
func NewQueryClientFrom(c *rest.Client) *QueryClient {
	return &QueryClient{rest: c}
}

func poolPath(poolID uint64) string {
	return fmt.Sprintf("%s/pools/%d", basePath, poolID)
}

// Params returns the module parameters.
func (q *QueryClient) Params(ctx context.Context) (*liquiditytypes.Params, error) {
	var out liquiditytypes.QueryParamsResponse
	if err := q.rest.GetJSON(ctx, basePath+"/params", nil, &out); err != nil {
		return nil, err
	}
	return &out.Params, nil
}

// Pools lists liquidity pools.
func (q *QueryClient) Pools(ctx context.Context, page *types.PageRequest) (*liquiditytypes.QueryLiquidityPoolsResponse, error) {
	var out liquiditytypes.QueryLiquidityPoolsResponse
	if err := q.rest.GetJSON(ctx, basePath+"/pools", rest.Params(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Pool returns a pool by ID.
func (q *QueryClient) Pool(ctx context.Context, poolID uint64) (*liquiditytypes.Pool, error) {
	return q.pool(ctx, poolPath(poolID))
}

// PoolByPoolCoinDenom returns the pool minting poolCoinDenom.
func (q *QueryClient) PoolByPoolCoinDenom(ctx context.Context, poolCoinDenom string) (*liquiditytypes.Pool, error) {
	return q.pool(ctx, basePath+"/pools/pool_coin_denom/"+rest.PathEscape(poolCoinDenom))
}

// PoolByReserveAcc returns the pool whose reserve account is reserveAcc.
func (q *QueryClient) PoolByReserveAcc(ctx context.Context, reserveAcc string) (*liquiditytypes.Pool, error) {
	return q.pool(ctx, basePath+"/pools/reserve_acc/"+rest.PathEscape(reserveAcc))
}

func (q *QueryClient) pool(ctx context.Context, path string) (*liquiditytypes.Pool, error) {
	var out liquiditytypes.QueryLiquidityPoolResponse
	if err := q.rest.GetJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out.Pool, nil
}

// PoolBatch returns the current batch of a pool.
func (q *QueryClient) PoolBatch(ctx context.Context, poolID uint64) (*liquiditytypes.PoolBatch, error) {
	var out liquiditytypes.QueryLiquidityPoolBatchResponse
	if err := q.rest.GetJSON(ctx, poolPath(poolID)+"/batch", nil, &out); err != nil {
		return nil, err
	}
	return &out.Batch, nil
}

// PoolWithBatch is a pool together with its current batch.
type PoolWithBatch struct {
	Pool  *liquiditytypes.Pool      `json:"pool"`
	Batch *liquiditytypes.PoolBatch `json:"batch"`
}

// PoolWithBatch fetches a pool and its current batch concurrently.
func (q *QueryClient) PoolWithBatch(ctx context.Context, poolID uint64) (*PoolWithBatch, error) {
	var out PoolWithBatch
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pool, err := q.Pool(gctx, poolID)
		if err != nil {
			return fmt.Errorf("pool %d: %w", poolID, err)
		}
		out.Pool = pool
		return nil
	})
	g.Go(func() error {
		batch, err := q.PoolBatch(gctx, poolID)
		if err != nil {
			return fmt.Errorf("pool %d batch: %w", poolID, err)
		}
		out.Batch = batch
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// PoolBatchSwapMsgs lists the swaps queued in the current batch.
func (q *QueryClient) PoolBatchSwapMsgs(ctx context.Context, poolID uint64, page *types.PageRequest) (*liquiditytypes.QueryPoolBatchSwapMsgsResponse, error) {
	var out liquiditytypes.QueryPoolBatchSwapMsgsResponse
	if err := q.rest.GetJSON(ctx, poolPath(poolID)+"/batch/swaps", rest.Params(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PoolBatchSwapMsg returns one queued swap by message index.
func (q *QueryClient) PoolBatchSwapMsg(ctx context.Context, poolID, msgIndex uint64) (*liquiditytypes.SwapMsgState, error) {
	var out liquiditytypes.QueryPoolBatchSwapMsgResponse
	if err := q.rest.GetJSON(ctx, fmt.Sprintf("%s/batch/swaps/%d", poolPath(poolID), msgIndex), nil, &out); err != nil {
		return nil, err
	}
	return &out.Swap, nil
}

// PoolBatchDepositMsgs lists the deposits queued in the current batch.
func (q *QueryClient) PoolBatchDepositMsgs(ctx context.Context, poolID uint64, page *types.PageRequest) (*liquiditytypes.QueryPoolBatchDepositMsgsResponse, error) {
	var out liquiditytypes.QueryPoolBatchDepositMsgsResponse
	if err := q.rest.GetJSON(ctx, poolPath(poolID)+"/batch/deposits", rest.Params(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PoolBatchDepositMsg returns one queued deposit by message index.
func (q *QueryClient) PoolBatchDepositMsg(ctx context.Context, poolID, msgIndex uint64) (*liquiditytypes.DepositMsgState, error) {
	var out liquiditytypes.QueryPoolBatchDepositMsgResponse
	if err := q.rest.GetJSON(ctx, fmt.Sprintf("%s/batch/deposits/%d", poolPath(poolID), msgIndex), nil, &out); err != nil {
		return nil, err
	}
	return &out.Deposit, nil
}

// PoolBatchWithdrawMsgs lists the withdrawals queued in the current batch.
func (q *QueryClient) PoolBatchWithdrawMsgs(ctx context.Context, poolID uint64, page *types.PageRequest) (*liquiditytypes.QueryPoolBatchWithdrawMsgsResponse, error) {
	var out liquiditytypes.QueryPoolBatchWithdrawMsgsResponse
	if err := q.rest.GetJSON(ctx, poolPath(poolID)+"/batch/withdraws", rest.Params(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PoolBatchWithdrawMsg returns one queued withdrawal by message index.
func (q *QueryClient) PoolBatchWithdrawMsg(ctx context.Context, poolID, msgIndex uint64) (*liquiditytypes.WithdrawMsgState, error) {
	var out liquiditytypes.QueryPoolBatchWithdrawMsgResponse
	if err := q.rest.GetJSON(ctx, fmt.Sprintf("%s/batch/withdraws/%d", poolPath(poolID), msgIndex), nil, &out); err != nil {
		return nil, err
	}
	return &out.Withdraw, nil
}
