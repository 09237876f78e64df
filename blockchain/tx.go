package blockchain

import (
	"context"
	"errors"
	"fmt"
	"math"

	basev1beta1 "cosmossdk.io/api/cosmos/base/v1beta1"
	signingv1beta1 "cosmossdk.io/api/cosmos/tx/signing/v1beta1"
	txtypes "cosmossdk.io/api/cosmos/tx/v1beta1"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	gogoproto "github.com/cosmos/gogoproto/proto"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	"github.com/Gravity-Devs/liquidity/blockchain/base"
	"github.com/Gravity-Devs/liquidity/types"
)

var deterministic = proto.MarshalOptions{Deterministic: true}

// SignAndBroadcastOptions tune a single SignAndBroadcast call.
type SignAndBroadcastOptions struct {
	// Fee overrides gas simulation when set.
	Fee           *types.StdFee
	Memo          string
	TimeoutHeight uint64
}

// Simulate runs a gas simulation for a provided tx bytes
func (c *Client) Simulate(ctx context.Context, txBytes []byte) (uint64, error) {
	resp, err := c.txService.Simulate(ctx, &txtypes.SimulateRequest{
		TxBytes: txBytes,
	})
	if err != nil {
		return 0, fmt.Errorf("simulate tx: %w", err)
	}
	if resp == nil || resp.GasInfo == nil {
		return 0, nil
	}
	return resp.GasInfo.GasUsed, nil
}

// Broadcast broadcasts a signed transaction with a chosen broadcast mode.
// A CheckTx rejection is reported as ErrTxFailed.
func (c *Client) Broadcast(ctx context.Context, txBytes []byte, mode txtypes.BroadcastMode) (string, error) {
	resp, err := c.txService.BroadcastTx(ctx, &txtypes.BroadcastTxRequest{
		TxBytes: txBytes,
		Mode:    mode,
	})
	if err != nil {
		return "", fmt.Errorf("broadcast tx: %w", err)
	}

	if resp == nil || resp.TxResponse == nil {
		return "", fmt.Errorf("empty tx response")
	}

	if resp.TxResponse.Code != 0 {
		return "", errorsmod.Wrapf(types.ErrTxFailed, "code %d (%s): %s",
			resp.TxResponse.Code, resp.TxResponse.Codespace, resp.TxResponse.RawLog)
	}

	return resp.TxResponse.GetTxhash(), nil
}

// GetTx fetches a transaction by hash via the tx service.
func (c *Client) GetTx(ctx context.Context, hash string) (*txtypes.GetTxResponse, error) {
	resp, err := c.txService.GetTx(ctx, &txtypes.GetTxRequest{Hash: hash})
	if err != nil {
		return nil, fmt.Errorf("get tx: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("empty get tx response")
	}
	return resp, nil
}

// GetTxsByEvents searches committed transactions matching all events.
func (c *Client) GetTxsByEvents(ctx context.Context, events []string, page, limit uint64) (*txtypes.GetTxsEventResponse, error) {
	query := ""
	for i, ev := range events {
		if i > 0 {
			query += " AND "
		}
		query += ev
	}
	resp, err := c.txService.GetTxsEvent(ctx, &txtypes.GetTxsEventRequest{
		Query:   query,
		OrderBy: txtypes.OrderBy_ORDER_BY_DESC,
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("get txs by events: %w", err)
	}
	return resp, nil
}

// WaitForTxInclusion blocks until the transaction is committed, using the
// websocket subscriber when an RPC endpoint is configured and gRPC polling
// otherwise. A transaction that fails in DeliverTx is returned with a
// non-zero Code rather than as an error.
func (c *Client) WaitForTxInclusion(ctx context.Context, txHash string) (*types.BroadcastTxResponse, error) {
	res, err := c.waiter.Wait(ctx, txHash, c.Config().Timeout)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errorsmod.Wrapf(types.ErrTimeout, "tx %s: %v", txHash, err)
		}
		return nil, fmt.Errorf("wait for tx %s: %w", txHash, err)
	}
	if res.TxHash == "" {
		res.TxHash = txHash
	}
	return &types.BroadcastTxResponse{
		Height:    res.Height,
		TxHash:    res.TxHash,
		Code:      res.Code,
		Codespace: res.Codespace,
		RawLog:    res.RawLog,
		GasWanted: res.GasWanted,
		GasUsed:   res.GasUsed,
		Events:    res.Events,
	}, nil
}

// BuildAndSignTx builds a SIGN_MODE_DIRECT transaction for msgs, simulating
// gas when no explicit fee is given, and returns the encoded TxRaw.
func (c *Client) BuildAndSignTx(ctx context.Context, signer types.Signer, msgs []types.EncodeObject, opts SignAndBroadcastOptions) ([]byte, error) {
	if types.IsNilSigner(signer) {
		return nil, types.ErrMissingWallet
	}
	if len(msgs) == 0 {
		return nil, fmt.Errorf("at least one message is required")
	}
	pk := signer.PubKey()
	if pk == nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidSignature, "signer %s has no public key", signer.Address())
	}

	// 1) Tx body
	anys := make([]*anypb.Any, 0, len(msgs))
	for _, m := range msgs {
		a, err := m.ToAny()
		if err != nil {
			return nil, err
		}
		anys = append(anys, a)
	}
	bodyBytes, err := deterministic.Marshal(&txtypes.TxBody{
		Messages:      anys,
		Memo:          opts.Memo,
		TimeoutHeight: opts.TimeoutHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("encode tx body: %w", err)
	}

	// 2) Resolve account number/sequence and chain id BEFORE simulation
	acc, err := c.Account(ctx, signer.Address())
	if err != nil {
		return nil, err
	}
	chainID, err := c.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	pkBytes, err := gogoproto.Marshal(pk)
	if err != nil {
		return nil, fmt.Errorf("encode public key: %w", err)
	}
	modeInfo := &txtypes.ModeInfo{Sum: &txtypes.ModeInfo_Single_{
		Single: &txtypes.ModeInfo_Single{Mode: signingv1beta1.SignMode_SIGN_MODE_DIRECT},
	}}
	signerInfo := &txtypes.SignerInfo{
		PublicKey: &anypb.Any{TypeUrl: "/" + gogoproto.MessageName(pk), Value: pkBytes},
		ModeInfo:  modeInfo,
		Sequence:  acc.Sequence,
	}

	// 3) Fee: explicit, or simulated gas priced at the configured gas price
	fee := opts.Fee
	if fee == nil {
		gas := c.estimateGas(ctx, bodyBytes, signerInfo)
		fee = &types.StdFee{Amount: c.feeForGas(gas), Gas: gas}
	}
	authInfoBytes, err := deterministic.Marshal(&txtypes.AuthInfo{
		SignerInfos: []*txtypes.SignerInfo{signerInfo},
		Fee:         protoFee(fee),
	})
	if err != nil {
		return nil, fmt.Errorf("encode auth info: %w", err)
	}

	// 4) Sign
	signDoc, err := deterministic.Marshal(&txtypes.SignDoc{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		ChainId:       chainID,
		AccountNumber: acc.AccountNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("encode sign doc: %w", err)
	}
	sig, err := signer.SignDirect(ctx, signDoc)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidSignature, "sign tx: %v", err)
	}

	// 5) Encode signed tx
	txBytes, err := deterministic.Marshal(&txtypes.TxRaw{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		Signatures:    [][]byte{sig},
	})
	if err != nil {
		return nil, fmt.Errorf("encode signed tx: %w", err)
	}
	return txBytes, nil
}

// SignAndBroadcast signs msgs, broadcasts them in sync mode and waits for
// the transaction to be committed.
func (c *Client) SignAndBroadcast(ctx context.Context, signer types.Signer, msgs []types.EncodeObject, opts SignAndBroadcastOptions) (*types.BroadcastTxResponse, error) {
	txBytes, err := c.BuildAndSignTx(ctx, signer, msgs, opts)
	if err != nil {
		return nil, err
	}
	txHash, err := c.Broadcast(ctx, txBytes, txtypes.BroadcastMode_BROADCAST_MODE_SYNC)
	if err != nil {
		return nil, err
	}
	c.Logger().Debug("tx broadcast", zap.String("tx_hash", txHash), zap.Int("msgs", len(msgs)))
	return c.WaitForTxInclusion(ctx, txHash)
}

func (c *Client) estimateGas(ctx context.Context, bodyBytes []byte, signerInfo *txtypes.SignerInfo) uint64 {
	authInfoBytes, err := deterministic.Marshal(&txtypes.AuthInfo{
		SignerInfos: []*txtypes.SignerInfo{signerInfo},
		Fee:         &txtypes.Fee{},
	})
	if err != nil {
		return base.DefaultSimulatedGas
	}
	simBytes, err := deterministic.Marshal(&txtypes.TxRaw{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		Signatures:    [][]byte{{}},
	})
	if err != nil {
		return base.DefaultSimulatedGas
	}

	gasUsed, err := c.Simulate(ctx, simBytes)
	if err != nil || gasUsed == 0 {
		// On simulation failure, proceed with a conservative default gas
		c.Logger().Debug("simulation failed, using default gas", zap.Error(err))
		return base.DefaultSimulatedGas
	}
	gas := uint64(math.Ceil(float64(gasUsed) * c.Config().GasAdjustment))
	if gas < gasUsed {
		gas = gasUsed
	}
	return gas
}

func (c *Client) feeForGas(gas uint64) sdk.Coins {
	cfg := c.Config()
	if cfg.GasPrice.IsNil() || !cfg.GasPrice.IsPositive() {
		return nil
	}
	amount := cfg.GasPrice.MulInt64(int64(gas)).Ceil().TruncateInt()
	if !amount.IsPositive() {
		return nil
	}
	return sdk.Coins{sdk.Coin{Denom: cfg.FeeDenom, Amount: amount}}
}

func protoFee(fee *types.StdFee) *txtypes.Fee {
	amount := make([]*basev1beta1.Coin, 0, len(fee.Amount))
	for _, c := range fee.Amount {
		amount = append(amount, &basev1beta1.Coin{Denom: c.Denom, Amount: c.Amount.String()})
	}
	return &txtypes.Fee{
		Amount:   amount,
		GasLimit: fee.Gas,
		Payer:    fee.Payer,
		Granter:  fee.Granter,
	}
}
