package liquidity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gravity-Devs/liquidity/types"
)

const poolJSON = `{"pool":{"id":"1","type_id":1,"reserve_coin_denoms":["uatom","uusd"],` +
	`"reserve_account_address":"cosmos1reserve","pool_coin_denom":"poolD35A0CC16EE598F90B044CE296A405BA9C381E38837599D96F2F70C2F02A23A4"}}`

const batchJSON = `{"batch":{"pool_id":"1","index":"4","begin_height":"120","deposit_msg_index":"2",` +
	`"withdraw_msg_index":"1","swap_msg_index":"3","executed":false}}`

func newGateway(t *testing.T, routes map[string]string) *QueryClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Path
		if r.URL.RawQuery != "" {
			key += "?" + r.URL.RawQuery
		}
		body, ok := routes[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"code":5,"message":"not found","details":[]}`))
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	q, err := NewQueryClient(QueryClientOptions{Addr: srv.URL})
	require.NoError(t, err)
	return q
}

func TestQueryParams(t *testing.T) {
	q := newGateway(t, map[string]string{
		"/cosmos/liquidity/v1beta1/params": `{"params":{"pool_types":[{"id":1,"name":"StandardLiquidityPool",` +
			`"min_reserve_coin_num":2,"max_reserve_coin_num":2,"description":"Standard liquidity pool"}],` +
			`"min_init_deposit_amount":"1000000","init_pool_coin_mint_amount":"1000000","max_reserve_coin_amount":"0",` +
			`"pool_creation_fee":[{"denom":"stake","amount":"40000000"}],"swap_fee_rate":"0.003000000000000000",` +
			`"withdraw_fee_rate":"0.000000000000000000","max_order_amount_ratio":"0.100000000000000000",` +
			`"unit_batch_height":1,"circuit_breaker_enabled":false}}`,
	})

	params, err := q.Params(context.Background())
	require.NoError(t, err)
	require.Len(t, params.PoolTypes, 1)
	require.Equal(t, "StandardLiquidityPool", params.PoolTypes[0].Name)
	require.Equal(t, "0.003000000000000000", params.SwapFeeRate.String())
	require.Equal(t, "40000000stake", params.PoolCreationFee.String())
	require.Equal(t, uint32(1), params.UnitBatchHeight)
}

func TestQueryPools(t *testing.T) {
	q := newGateway(t, map[string]string{
		"/cosmos/liquidity/v1beta1/pools?pagination.limit=1": `{"pools":[` + poolJSON[len(`{"pool":`):len(poolJSON)-1] + `],` +
			`"pagination":{"next_key":"AQ==","total":"2"}}`,
	})

	resp, err := q.Pools(context.Background(), &types.PageRequest{Limit: 1})
	require.NoError(t, err)
	require.Len(t, resp.Pools, 1)
	require.Equal(t, uint64(1), resp.Pools[0].ID)
	require.Equal(t, []string{"uatom", "uusd"}, resp.Pools[0].ReserveCoinDenoms)
	require.NotNil(t, resp.Pagination)
	require.Equal(t, uint64(2), resp.Pagination.Total)
	require.Equal(t, []byte{1}, resp.Pagination.NextKey)
}

func TestQueryPoolLookups(t *testing.T) {
	q := newGateway(t, map[string]string{
		"/cosmos/liquidity/v1beta1/pools/1": poolJSON,
		"/cosmos/liquidity/v1beta1/pools/pool_coin_denom/poolD35A0CC16EE598F90B044CE296A405BA9C381E38837599D96F2F70C2F02A23A4": poolJSON,
		"/cosmos/liquidity/v1beta1/pools/reserve_acc/cosmos1reserve":                                                         poolJSON,
	})
	ctx := context.Background()

	pool, err := q.Pool(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "cosmos1reserve", pool.ReserveAccountAddress)

	pool, err = q.PoolByPoolCoinDenom(ctx, pool.PoolCoinDenom)
	require.NoError(t, err)
	require.Equal(t, uint64(1), pool.ID)

	pool, err = q.PoolByReserveAcc(ctx, "cosmos1reserve")
	require.NoError(t, err)
	require.Equal(t, uint32(1), pool.TypeID)

	_, err = q.Pool(ctx, 2)
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestQueryPoolWithBatch(t *testing.T) {
	q := newGateway(t, map[string]string{
		"/cosmos/liquidity/v1beta1/pools/1":       poolJSON,
		"/cosmos/liquidity/v1beta1/pools/1/batch": batchJSON,
	})

	got, err := q.PoolWithBatch(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, uint64(1), got.Pool.ID)
	require.Equal(t, uint64(4), got.Batch.Index)
	require.Equal(t, int64(120), got.Batch.BeginHeight)

	_, err = q.PoolWithBatch(context.Background(), 3)
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestQueryBatchMessages(t *testing.T) {
	swap := `{"msg_height":"120","msg_index":"3","executed":true,"succeeded":true,"to_be_deleted":false,` +
		`"order_expiry_height":"120","exchanged_offer_coin":{"denom":"uatom","amount":"500"},` +
		`"remaining_offer_coin":{"denom":"uatom","amount":"500"},"reserved_offer_coin_fee":{"denom":"uatom","amount":"1"},` +
		`"msg":{"swap_requester_address":"cosmos1swapper","pool_id":"1","swap_type_id":1,` +
		`"offer_coin":{"denom":"uatom","amount":"1000"},"demand_coin_denom":"uusd",` +
		`"offer_coin_fee":{"denom":"uatom","amount":"2"},"order_price":"1.500000000000000000"}}`
	deposit := `{"msg_height":"118","msg_index":"2","executed":false,"succeeded":false,"to_be_deleted":false,` +
		`"msg":{"depositor_address":"cosmos1depositor","pool_id":"1","deposit_coins":[{"denom":"uatom","amount":"10"}]}}`
	withdraw := `{"msg_height":"119","msg_index":"1","executed":false,"succeeded":false,"to_be_deleted":false,` +
		`"msg":{"withdrawer_address":"cosmos1withdrawer","pool_id":"1","pool_coin":{"denom":"pool1","amount":"5"}}}`

	q := newGateway(t, map[string]string{
		"/cosmos/liquidity/v1beta1/pools/1/batch/swaps":       `{"swaps":[` + swap + `],"pagination":{"next_key":null,"total":"1"}}`,
		"/cosmos/liquidity/v1beta1/pools/1/batch/swaps/3":     `{"swap":` + swap + `}`,
		"/cosmos/liquidity/v1beta1/pools/1/batch/deposits":    `{"deposits":[` + deposit + `]}`,
		"/cosmos/liquidity/v1beta1/pools/1/batch/deposits/2":  `{"deposit":` + deposit + `}`,
		"/cosmos/liquidity/v1beta1/pools/1/batch/withdraws":   `{"withdraws":[` + withdraw + `]}`,
		"/cosmos/liquidity/v1beta1/pools/1/batch/withdraws/1": `{"withdraw":` + withdraw + `}`,
	})
	ctx := context.Background()

	swaps, err := q.PoolBatchSwapMsgs(ctx, 1, nil)
	require.NoError(t, err)
	require.Len(t, swaps.Swaps, 1)
	require.Equal(t, "1.500000000000000000", swaps.Swaps[0].Msg.OrderPrice.String())

	s, err := q.PoolBatchSwapMsg(ctx, 1, 3)
	require.NoError(t, err)
	require.True(t, s.Succeeded)
	require.Equal(t, uint64(3), s.MsgIndex)
	require.Equal(t, "cosmos1swapper", s.Msg.SwapRequesterAddress)

	deposits, err := q.PoolBatchDepositMsgs(ctx, 1, nil)
	require.NoError(t, err)
	require.Len(t, deposits.Deposits, 1)

	d, err := q.PoolBatchDepositMsg(ctx, 1, 2)
	require.NoError(t, err)
	require.Equal(t, "10uatom", d.Msg.DepositCoins.String())

	withdraws, err := q.PoolBatchWithdrawMsgs(ctx, 1, nil)
	require.NoError(t, err)
	require.Len(t, withdraws.Withdraws, 1)

	w, err := q.PoolBatchWithdrawMsg(ctx, 1, 1)
	require.NoError(t, err)
	require.Equal(t, int64(119), w.MsgHeight)
	require.Equal(t, "5pool1", w.Msg.PoolCoin.String())
}
