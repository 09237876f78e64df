package blockchain

import (
	"context"
	"errors"
	"testing"
	"time"

	abcipb "cosmossdk.io/api/cosmos/base/abci/v1beta1"
	txtypes "cosmossdk.io/api/cosmos/tx/v1beta1"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/Gravity-Devs/liquidity/blockchain/base"
	clientconfig "github.com/Gravity-Devs/liquidity/client/config"
	"github.com/Gravity-Devs/liquidity/internal/chaintest"
	"github.com/Gravity-Devs/liquidity/types"
)

func startClient(t *testing.T, chain *chaintest.Chain) *Client {
	t.Helper()
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
	c, err := New(context.Background(), cfg, WithDialOptions(chain.DialOption()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func closeInitMsg() types.EncodeObject {
	msg := &channeltypes.MsgChannelCloseInit{PortId: "transfer", ChannelId: "channel-0", Signer: "cosmos1signer"}
	return types.EncodeObject{TypeURL: sdk.MsgTypeURL(msg), Value: msg}
}

func TestSignAndBroadcastSimulatesSignsAndWaits(t *testing.T) {
	chain := chaintest.New()
	c := startClient(t, chain)
	signer := chaintest.NewSigner()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := c.SignAndBroadcast(ctx, signer, []types.EncodeObject{closeInitMsg()}, SignAndBroadcastOptions{Memo: "close"})
	require.NoError(t, err)
	require.Equal(t, int64(42), resp.Height)
	require.Equal(t, "ABCD", resp.TxHash)
	require.False(t, resp.IsError())
	require.Equal(t, int64(98000), resp.GasUsed)

	sims, broadcasts, getTxs := chain.Counts()
	require.Equal(t, 1, sims)
	require.Equal(t, 1, broadcasts)
	require.Equal(t, 2, getTxs)

	// Simulation carries an empty signature.
	var simTx txtypes.TxRaw
	require.NoError(t, proto.Unmarshal(chain.Simulated(0), &simTx))
	require.Len(t, simTx.Signatures, 1)
	require.Empty(t, simTx.Signatures[0])

	raw, body, authInfo := chain.BroadcastedTx(t, 0)
	require.Len(t, raw.Signatures, 1)
	require.Equal(t, "close", body.Memo)
	require.Len(t, body.Messages, 1)
	require.Equal(t, "/ibc.core.channel.v1.MsgChannelCloseInit", body.Messages[0].TypeUrl)

	require.Equal(t, uint64(130000), authInfo.Fee.GasLimit)
	require.Len(t, authInfo.Fee.Amount, 1)
	require.Equal(t, "stake", authInfo.Fee.Amount[0].Denom)
	require.Equal(t, "3250", authInfo.Fee.Amount[0].Amount)
	require.Equal(t, uint64(3), authInfo.SignerInfos[0].Sequence)
	require.Equal(t, "/cosmos.crypto.secp256k1.PubKey", authInfo.SignerInfos[0].PublicKey.TypeUrl)

	signDoc, err := proto.MarshalOptions{Deterministic: true}.Marshal(&txtypes.SignDoc{
		BodyBytes:     raw.BodyBytes,
		AuthInfoBytes: raw.AuthInfoBytes,
		ChainId:       "liquidity-testnet",
		AccountNumber: 7,
	})
	require.NoError(t, err)
	require.True(t, signer.PubKey().VerifySignature(signDoc, raw.Signatures[0]))
}

func TestSignAndBroadcastUsesExplicitFee(t *testing.T) {
	chain := chaintest.New()
	c := startClient(t, chain)

	fee := &types.StdFee{Amount: sdk.NewCoins(sdk.NewInt64Coin("stake", 5000)), Gas: 250000}
	_, err := c.SignAndBroadcast(context.Background(), chaintest.NewSigner(), []types.EncodeObject{closeInitMsg()}, SignAndBroadcastOptions{Fee: fee})
	require.NoError(t, err)

	sims, _, _ := chain.Counts()
	require.Zero(t, sims)

	_, _, authInfo := chain.BroadcastedTx(t, 0)
	require.Equal(t, uint64(250000), authInfo.Fee.GasLimit)
	require.Equal(t, "5000", authInfo.Fee.Amount[0].Amount)
}

func TestSimulationFailureFallsBackToDefaultGas(t *testing.T) {
	chain := chaintest.New()
	chain.SimulateErr = status.Error(codes.Unavailable, "simulation disabled")
	c := startClient(t, chain)

	txBytes, err := c.BuildAndSignTx(context.Background(), chaintest.NewSigner(), []types.EncodeObject{closeInitMsg()}, SignAndBroadcastOptions{})
	require.NoError(t, err)

	var raw txtypes.TxRaw
	require.NoError(t, proto.Unmarshal(txBytes, &raw))
	var authInfo txtypes.AuthInfo
	require.NoError(t, proto.Unmarshal(raw.AuthInfoBytes, &authInfo))
	require.Equal(t, base.DefaultSimulatedGas, authInfo.Fee.GasLimit)
	require.Equal(t, "5000", authInfo.Fee.Amount[0].Amount)
}

func TestBroadcastRejectedByCheckTx(t *testing.T) {
	chain := chaintest.New()
	chain.CheckTxCode = 13
	c := startClient(t, chain)

	_, err := c.SignAndBroadcast(context.Background(), chaintest.NewSigner(), []types.EncodeObject{closeInitMsg()}, SignAndBroadcastOptions{})
	require.Error(t, err)
	require.True(t, errors.Is(err, types.ErrTxFailed))
	require.Contains(t, err.Error(), "insufficient fees")

	_, _, getTxs := chain.Counts()
	require.Zero(t, getTxs)
}

func TestDeliverTxFailureIsAResponse(t *testing.T) {
	chain := chaintest.New()
	chain.GetTxSteps = []chaintest.GetTxStep{{Resp: &txtypes.GetTxResponse{TxResponse: &abcipb.TxResponse{
		Txhash:    "ABCD",
		Height:    9,
		Code:      5,
		Codespace: "liquidity",
		RawLog:    "insufficient pool coin",
	}}}}
	c := startClient(t, chain)

	resp, err := c.SignAndBroadcast(context.Background(), chaintest.NewSigner(), []types.EncodeObject{closeInitMsg()}, SignAndBroadcastOptions{})
	require.NoError(t, err)
	require.True(t, resp.IsError())
	require.Equal(t, uint32(5), resp.Code)
	require.Equal(t, "liquidity", resp.Codespace)
}

func TestWaitForTxInclusionRetriesNotFound(t *testing.T) {
	chain := chaintest.New()
	success := &txtypes.GetTxResponse{TxResponse: &abcipb.TxResponse{Txhash: "hash", Height: 3}}
	chain.GetTxSteps = []chaintest.GetTxStep{
		{Err: status.Error(codes.NotFound, "not indexed yet")},
		{Err: status.Error(codes.NotFound, "still indexing")},
		{Resp: success},
	}
	c := startClient(t, chain)

	resp, err := c.WaitForTxInclusion(context.Background(), "hash")
	require.NoError(t, err)
	require.Equal(t, "hash", resp.TxHash)

	_, _, getTxs := chain.Counts()
	require.Equal(t, 3, getTxs)
}

func TestWaitForTxInclusionExhausted(t *testing.T) {
	chain := chaintest.New()
	chain.GetTxSteps = []chaintest.GetTxStep{{Err: status.Error(codes.NotFound, "never indexed")}}
	c := startClient(t, chain)

	_, err := c.WaitForTxInclusion(context.Background(), "hash")
	require.Error(t, err)

	_, _, getTxs := chain.Counts()
	require.Equal(t, 5, getTxs)
}

func TestChainIDIsDiscoveredOnce(t *testing.T) {
	chain := chaintest.New()
	c := startClient(t, chain)

	id, err := c.ChainID(context.Background())
	require.NoError(t, err)
	require.Equal(t, "liquidity-testnet", id)

	chain.SetNetwork("other")
	id, err = c.ChainID(context.Background())
	require.NoError(t, err)
	require.Equal(t, "liquidity-testnet", id)
}

func TestAccount(t *testing.T) {
	c := startClient(t, chaintest.New())

	acc, err := c.Account(context.Background(), "cosmos1abc")
	require.NoError(t, err)
	require.Equal(t, AccountInfo{Address: "cosmos1abc", AccountNumber: 7, Sequence: 3}, acc)
}

func TestMissingWallet(t *testing.T) {
	_, err := NewTxClient(context.Background(), nil, TxClientOptions{Addr: "localhost:9090"})
	require.ErrorIs(t, err, types.ErrMissingWallet)

	c := startClient(t, chaintest.New())
	_, err = c.TxClient(nil)
	require.ErrorIs(t, err, types.ErrMissingWallet)

	_, err = c.BuildAndSignTx(context.Background(), nil, []types.EncodeObject{closeInitMsg()}, SignAndBroadcastOptions{})
	require.ErrorIs(t, err, types.ErrMissingWallet)
}

func TestMissingWalletNilPointer(t *testing.T) {
	var signer *chaintest.Signer

	_, err := NewTxClient(context.Background(), signer, TxClientOptions{Addr: "localhost:9090"})
	require.ErrorIs(t, err, types.ErrMissingWallet)

	c := startClient(t, chaintest.New())
	_, err = c.TxClient(signer)
	require.ErrorIs(t, err, types.ErrMissingWallet)

	_, err = c.BuildAndSignTx(context.Background(), signer, []types.EncodeObject{closeInitMsg()}, SignAndBroadcastOptions{})
	require.ErrorIs(t, err, types.ErrMissingWallet)
}

func TestTxClientSharesConnection(t *testing.T) {
	c := startClient(t, chaintest.New())
	signer := chaintest.NewSigner()

	tc, err := c.TxClient(signer)
	require.NoError(t, err)
	require.Equal(t, signer.Address(), tc.Address())
	require.Same(t, c, tc.Client())

	_, err = tc.SignAndBroadcast(context.Background(), []types.EncodeObject{closeInitMsg()}, SignAndBroadcastOptions{})
	require.NoError(t, err)

	// Closing a shared tx client leaves the connection open.
	require.NoError(t, tc.Close())
	_, err = c.Account(context.Background(), signer.Address())
	require.NoError(t, err)
}
