package types

import sdk "github.com/cosmos/cosmos-sdk/types"

// StdFee is an explicit fee for a transaction. A nil *StdFee asks the tx
// client to simulate gas and derive the fee from the configured gas price.
type StdFee struct {
	Amount  sdk.Coins
	Gas     uint64
	Payer   string
	Granter string
}
