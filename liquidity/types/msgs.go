package types

import (
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ErrMissingSwapFeeRate is returned when a swap order is built without the
// module's swap fee rate.
var ErrMissingSwapFeeRate = errors.New("swap fee rate is required to compute the offer coin fee")

// NewMsgCreatePool creates a pool of the default type with the given deposit.
func NewMsgCreatePool(creator string, depositCoins sdk.Coins) *MsgCreatePool {
	return &MsgCreatePool{
		PoolCreatorAddress: creator,
		PoolTypeID:         DefaultPoolTypeID,
		DepositCoins:       depositCoins,
	}
}

// NewMsgDepositWithinBatch deposits into the current batch of poolID.
func NewMsgDepositWithinBatch(depositor string, poolID uint64, depositCoins sdk.Coins) *MsgDepositWithinBatch {
	return &MsgDepositWithinBatch{
		DepositorAddress: depositor,
		PoolID:           poolID,
		DepositCoins:     depositCoins,
	}
}

// NewMsgWithdrawWithinBatch redeems poolCoin in the current batch of poolID.
func NewMsgWithdrawWithinBatch(withdrawer string, poolID uint64, poolCoin sdk.Coin) *MsgWithdrawWithinBatch {
	return &MsgWithdrawWithinBatch{
		WithdrawerAddress: withdrawer,
		PoolID:            poolID,
		PoolCoin:          poolCoin,
	}
}

// NewMsgSwapWithinBatch builds a swap order. swapFeeRate is the module's
// current swap fee rate (Params.SwapFeeRate); the chain rejects an order whose
// offer coin fee differs from OfferCoinFee at that rate.
func NewMsgSwapWithinBatch(
	requester string,
	poolID uint64,
	offerCoin sdk.Coin,
	demandCoinDenom string,
	orderPrice sdkmath.LegacyDec,
	swapFeeRate sdkmath.LegacyDec,
) (*MsgSwapWithinBatch, error) {
	fee, err := OfferCoinFee(offerCoin, swapFeeRate)
	if err != nil {
		return nil, err
	}
	return &MsgSwapWithinBatch{
		SwapRequesterAddress: requester,
		PoolID:               poolID,
		SwapTypeID:           DefaultSwapTypeID,
		OfferCoin:            offerCoin,
		DemandCoinDenom:      demandCoinDenom,
		OfferCoinFee:         fee,
		OrderPrice:           orderPrice,
	}, nil
}

// OfferCoinFee is the fee reserved by the chain for a swap order:
// ceil(offer.Amount * swapFeeRate / 2) in the offer denom.
func OfferCoinFee(offerCoin sdk.Coin, swapFeeRate sdkmath.LegacyDec) (sdk.Coin, error) {
	if offerCoin.Amount.IsNil() || offerCoin.Amount.IsNegative() {
		return sdk.Coin{}, fmt.Errorf("invalid offer coin amount %q", offerCoin.Amount)
	}
	if swapFeeRate.IsNil() {
		return sdk.Coin{}, ErrMissingSwapFeeRate
	}
	if swapFeeRate.IsNegative() {
		return sdk.Coin{}, fmt.Errorf("invalid swap fee rate %q", swapFeeRate)
	}
	amount := sdkmath.LegacyNewDecFromInt(offerCoin.Amount).
		Mul(swapFeeRate.QuoInt64(2)).
		Ceil().
		TruncateInt()
	return sdk.Coin{Denom: offerCoin.Denom, Amount: amount}, nil
}
