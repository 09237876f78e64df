package liquidity

import (
	"context"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/Gravity-Devs/liquidity/blockchain"
	"github.com/Gravity-Devs/liquidity/blockchain/base"
	clientconfig "github.com/Gravity-Devs/liquidity/client/config"
	"github.com/Gravity-Devs/liquidity/internal/chaintest"
	liquiditytypes "github.com/Gravity-Devs/liquidity/liquidity/types"
	"github.com/Gravity-Devs/liquidity/types"
)

func newTxClient(t *testing.T) (*TxClient, *chaintest.Chain) {
	t.Helper()
	chain := chaintest.New()
	chain.Start(t)

	cfg := base.Config{
		GRPCAddr:      chaintest.Addr,
		InsecureGRPC:  true,
		FeeDenom:      "stake",
		GasPrice:      sdkmath.LegacyMustNewDecFromStr("0.025"),
		GasAdjustment: 1.3,
		Timeout:       2 * time.Second,
		WaitTx: clientconfig.WaitTxConfig{
			PollInterval:          time.Millisecond,
			PollMaxRetries:        5,
			PollBackoffMultiplier: 1,
		},
	}
	bc, err := blockchain.New(context.Background(), cfg, blockchain.WithDialOptions(chain.DialOption()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = bc.Close() })

	tx, err := bc.TxClient(chaintest.NewSigner())
	require.NoError(t, err)
	return NewTxClientFrom(tx), chain
}

func TestSwapBroadcastsSwapWithinBatch(t *testing.T) {
	c, chain := newTxClient(t)
	rate := sdkmath.LegacyMustNewDecFromStr("0.003")

	resp, err := c.Swap(context.Background(), SwapRequest{
		PoolID:          1,
		OfferCoin:       sdk.NewInt64Coin("uatom", 1000000),
		DemandCoinDenom: "uusd",
		OrderPrice:      sdkmath.LegacyMustNewDecFromStr("1.15"),
		SwapFeeRate:     rate,
	}, blockchain.SignAndBroadcastOptions{})
	require.NoError(t, err)
	require.Equal(t, int64(42), resp.Height)

	_, body, _ := chain.BroadcastedTx(t, 0)
	require.Len(t, body.Messages, 1)
	require.Equal(t, "/tendermint.liquidity.v1beta1.MsgSwapWithinBatch", body.Messages[0].TypeUrl)

	var msg liquiditytypes.MsgSwapWithinBatch
	require.NoError(t, msg.Unmarshal(body.Messages[0].Value))
	require.Equal(t, c.Address(), msg.SwapRequesterAddress)
	require.Equal(t, uint64(1), msg.PoolID)
	require.Equal(t, uint32(1), msg.SwapTypeID)
	require.Equal(t, "1500uatom", msg.OfferCoinFee.String())
	require.Equal(t, "1.150000000000000000", msg.OrderPrice.String())
}

func TestCreatePoolDepositWithdraw(t *testing.T) {
	c, chain := newTxClient(t)
	ctx := context.Background()
	coins := sdk.NewCoins(sdk.NewInt64Coin("uatom", 1000000), sdk.NewInt64Coin("uusd", 2000000))

	_, err := c.CreatePool(ctx, coins, blockchain.SignAndBroadcastOptions{})
	require.NoError(t, err)
	_, err = c.Deposit(ctx, 1, coins, blockchain.SignAndBroadcastOptions{})
	require.NoError(t, err)
	_, err = c.Withdraw(ctx, 1, sdk.NewInt64Coin("pool1", 10), blockchain.SignAndBroadcastOptions{})
	require.NoError(t, err)

	_, body, _ := chain.BroadcastedTx(t, 0)
	require.Equal(t, "/tendermint.liquidity.v1beta1.MsgCreatePool", body.Messages[0].TypeUrl)
	var create liquiditytypes.MsgCreatePool
	require.NoError(t, create.Unmarshal(body.Messages[0].Value))
	require.Equal(t, coins, create.DepositCoins)
	require.Equal(t, uint32(1), create.PoolTypeID)

	_, body, _ = chain.BroadcastedTx(t, 1)
	require.Equal(t, "/tendermint.liquidity.v1beta1.MsgDepositWithinBatch", body.Messages[0].TypeUrl)

	_, body, _ = chain.BroadcastedTx(t, 2)
	require.Equal(t, "/tendermint.liquidity.v1beta1.MsgWithdrawWithinBatch", body.Messages[0].TypeUrl)
	var withdraw liquiditytypes.MsgWithdrawWithinBatch
	require.NoError(t, withdraw.Unmarshal(body.Messages[0].Value))
	require.Equal(t, "10pool1", withdraw.PoolCoin.String())
}

func TestNewTxClientMissingWallet(t *testing.T) {
	_, err := NewTxClient(context.Background(), nil, blockchain.TxClientOptions{Addr: "localhost:9090"})
	require.ErrorIs(t, err, types.ErrMissingWallet)
}

func TestSwapRequiresSwapFeeRate(t *testing.T) {
	c, chain := newTxClient(t)

	_, err := c.Swap(context.Background(), SwapRequest{
		PoolID:          1,
		OfferCoin:       sdk.NewInt64Coin("uatom", 10000),
		DemandCoinDenom: "uusd",
		OrderPrice:      sdkmath.LegacyOneDec(),
	}, blockchain.SignAndBroadcastOptions{})
	require.ErrorIs(t, err, liquiditytypes.ErrMissingSwapFeeRate)

	_, broadcasts, _ := chain.Counts()
	require.Zero(t, broadcasts)
}
