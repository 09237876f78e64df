// Package liquidity provides tx and query clients for the Tendermint
// liquidity module (tendermint.liquidity.v1beta1).
package liquidity

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Gravity-Devs/liquidity/blockchain"
	liquiditytypes "github.com/Gravity-Devs/liquidity/liquidity/types"
	"github.com/Gravity-Devs/liquidity/types"
)

// TxClient builds and broadcasts liquidity messages for one signer.
type TxClient struct {
	tx *blockchain.TxClient
}

// NewTxClient dials opts.Addr and returns a liquidity tx client for signer.
// It returns types.ErrMissingWallet when signer is nil.
func NewTxClient(ctx context.Context, signer types.Signer, opts blockchain.TxClientOptions) (*TxClient, error) {
	tx, err := blockchain.NewTxClient(ctx, signer, opts)
	if err != nil {
		return nil, err
	}
	return &TxClient{tx: tx}, nil
}

// NewTxClientFrom wraps an existing tx client.
func NewTxClientFrom(tx *blockchain.TxClient) *TxClient {
	return &TxClient{tx: tx}
}

// Address returns the signer address.
func (c *TxClient) Address() string {
	return c.tx.Address()
}

// SignAndBroadcast signs msgs, broadcasts them and waits for inclusion.
func (c *TxClient) SignAndBroadcast(ctx context.Context, msgs []types.EncodeObject, opts blockchain.SignAndBroadcastOptions) (*types.BroadcastTxResponse, error) {
	return c.tx.SignAndBroadcast(ctx, msgs, opts)
}

// Close releases the connection when the client owns it.
func (c *TxClient) Close() error {
	return c.tx.Close()
}

func (c *TxClient) MsgCreatePool(msg *liquiditytypes.MsgCreatePool) types.EncodeObject {
	return types.EncodeObject{TypeURL: liquiditytypes.TypeURLMsgCreatePool, Value: msg}
}

func (c *TxClient) MsgDepositWithinBatch(msg *liquiditytypes.MsgDepositWithinBatch) types.EncodeObject {
	return types.EncodeObject{TypeURL: liquiditytypes.TypeURLMsgDepositWithinBatch, Value: msg}
}

func (c *TxClient) MsgWithdrawWithinBatch(msg *liquiditytypes.MsgWithdrawWithinBatch) types.EncodeObject {
	return types.EncodeObject{TypeURL: liquiditytypes.TypeURLMsgWithdrawWithinBatch, Value: msg}
}

func (c *TxClient) MsgSwapWithinBatch(msg *liquiditytypes.MsgSwapWithinBatch) types.EncodeObject {
	return types.EncodeObject{TypeURL: liquiditytypes.TypeURLMsgSwapWithinBatch, Value: msg}
}

// CreatePool creates a pool of the default type funded with depositCoins.
func (c *TxClient) CreatePool(ctx context.Context, depositCoins sdk.Coins, opts blockchain.SignAndBroadcastOptions) (*types.BroadcastTxResponse, error) {
	msg := liquiditytypes.NewMsgCreatePool(c.Address(), depositCoins)
	return c.SignAndBroadcast(ctx, []types.EncodeObject{c.MsgCreatePool(msg)}, opts)
}

// Deposit queues a deposit into the current batch of poolID.
func (c *TxClient) Deposit(ctx context.Context, poolID uint64, depositCoins sdk.Coins, opts blockchain.SignAndBroadcastOptions) (*types.BroadcastTxResponse, error) {
	msg := liquiditytypes.NewMsgDepositWithinBatch(c.Address(), poolID, depositCoins)
	return c.SignAndBroadcast(ctx, []types.EncodeObject{c.MsgDepositWithinBatch(msg)}, opts)
}

// Withdraw queues a pool coin redemption in the current batch of poolID.
func (c *TxClient) Withdraw(ctx context.Context, poolID uint64, poolCoin sdk.Coin, opts blockchain.SignAndBroadcastOptions) (*types.BroadcastTxResponse, error) {
	msg := liquiditytypes.NewMsgWithdrawWithinBatch(c.Address(), poolID, poolCoin)
	return c.SignAndBroadcast(ctx, []types.EncodeObject{c.MsgWithdrawWithinBatch(msg)}, opts)
}

// SwapRequest describes a swap order. SwapFeeRate must be the module's
// current Params.SwapFeeRate; it determines the offer coin fee reserved with
// the order.
type SwapRequest struct {
	PoolID          uint64
	OfferCoin       sdk.Coin
	DemandCoinDenom string
	OrderPrice      sdkmath.LegacyDec
	SwapFeeRate     sdkmath.LegacyDec
}

// Swap queues a swap order in the current batch of the pool.
func (c *TxClient) Swap(ctx context.Context, req SwapRequest, opts blockchain.SignAndBroadcastOptions) (*types.BroadcastTxResponse, error) {
	msg, err := liquiditytypes.NewMsgSwapWithinBatch(c.Address(), req.PoolID, req.OfferCoin, req.DemandCoinDenom, req.OrderPrice, req.SwapFeeRate)
	if err != nil {
		return nil, err
	}
	return c.SignAndBroadcast(ctx, []types.EncodeObject{c.MsgSwapWithinBatch(msg)}, opts)
}
