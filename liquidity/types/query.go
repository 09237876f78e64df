package types

import sdktypes "github.com/Gravity-Devs/liquidity/types"

// QueryParamsResponse is the body of GET /params.
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryLiquidityPoolsResponse is the body of GET /pools.
type QueryLiquidityPoolsResponse struct {
	Pools      []Pool                 `json:"pools"`
	Pagination *sdktypes.PageResponse `json:"pagination,omitempty"`
}

// QueryLiquidityPoolResponse is the body of every single-pool lookup.
type QueryLiquidityPoolResponse struct {
	Pool Pool `json:"pool"`
}

// QueryLiquidityPoolBatchResponse is the body of GET /pools/{pool_id}/batch.
type QueryLiquidityPoolBatchResponse struct {
	Batch PoolBatch `json:"batch"`
}

// QueryPoolBatchSwapMsgsResponse lists the swaps queued in a pool batch.
type QueryPoolBatchSwapMsgsResponse struct {
	Swaps      []SwapMsgState         `json:"swaps"`
	Pagination *sdktypes.PageResponse `json:"pagination,omitempty"`
}

// QueryPoolBatchSwapMsgResponse holds a single queued swap.
type QueryPoolBatchSwapMsgResponse struct {
	Swap SwapMsgState `json:"swap"`
}

// QueryPoolBatchDepositMsgsResponse lists the deposits queued in a pool batch.
type QueryPoolBatchDepositMsgsResponse struct {
	Deposits   []DepositMsgState      `json:"deposits"`
	Pagination *sdktypes.PageResponse `json:"pagination,omitempty"`
}

// QueryPoolBatchDepositMsgResponse holds a single queued deposit.
type QueryPoolBatchDepositMsgResponse struct {
	Deposit DepositMsgState `json:"deposit"`
}

// QueryPoolBatchWithdrawMsgsResponse lists the withdrawals queued in a pool batch.
type QueryPoolBatchWithdrawMsgsResponse struct {
	Withdraws  []WithdrawMsgState     `json:"withdraws"`
	Pagination *sdktypes.PageResponse `json:"pagination,omitempty"`
}

// QueryPoolBatchWithdrawMsgResponse holds a single queued withdrawal.
type QueryPoolBatchWithdrawMsgResponse struct {
	Withdraw WithdrawMsgState `json:"withdraw"`
}
