package types

import (
	"encoding/json"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/Gravity-Devs/liquidity/internal/wire"
)

const (
	// ModuleName is the name of the liquidity module on chain.
	ModuleName = "liquidity"

	// ProtoPackage is the protobuf package every message lives in.
	ProtoPackage = "tendermint.liquidity.v1beta1"
)

// Type URLs of the liquidity Msg service messages.
const (
	TypeURLMsgCreatePool          = "/" + ProtoPackage + ".MsgCreatePool"
	TypeURLMsgDepositWithinBatch  = "/" + ProtoPackage + ".MsgDepositWithinBatch"
	TypeURLMsgWithdrawWithinBatch = "/" + ProtoPackage + ".MsgWithdrawWithinBatch"
	TypeURLMsgSwapWithinBatch     = "/" + ProtoPackage + ".MsgSwapWithinBatch"
)

// Pool and swap types accepted by this version of the module.
const (
	DefaultPoolTypeID uint32 = 1
	DefaultSwapTypeID uint32 = 1
)

func protoNum(n int) protowire.Number { return protowire.Number(n) }

func embedCoins(e *wire.Encoder, num protowire.Number, coins sdk.Coins) error {
	for i := range coins {
		if err := e.Embedded(num, &coins[i]); err != nil {
			return err
		}
	}
	return nil
}

func decodeCoin(f wire.Field) (sdk.Coin, error) {
	var c sdk.Coin
	err := f.Decode(&c)
	return c, err
}

func defaultCoin(c sdk.Coin) sdk.Coin {
	if c.Amount.IsNil() {
		c.Amount = sdkmath.ZeroInt()
	}
	return c
}

func defaultCoins(coins sdk.Coins) sdk.Coins {
	if len(coins) == 0 {
		return nil
	}
	out := make(sdk.Coins, len(coins))
	for i, c := range coins {
		out[i] = defaultCoin(c)
	}
	return out
}

func defaultInt(i sdkmath.Int) sdkmath.Int {
	if i.IsNil() {
		return sdkmath.ZeroInt()
	}
	return i
}

func defaultDec(d sdkmath.LegacyDec) sdkmath.LegacyDec {
	if d.IsNil() {
		return sdkmath.LegacyZeroDec()
	}
	return d.Clone()
}

// jsonCoins keeps empty repeated fields as [] in JSON output.
func jsonCoins(coins sdk.Coins) sdk.Coins {
	if coins == nil {
		return sdk.Coins{}
	}
	return coins
}

func jsonStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// readCoins decodes a JSON coin list, normalising [] to nil so that JSON and
// wire decoding agree on empty repeated fields.
func readCoins(obj wire.Object, name string, dst *sdk.Coins) error {
	var coins sdk.Coins
	if err := obj.Value(name, &coins); err != nil {
		return err
	}
	if len(coins) == 0 {
		coins = nil
	}
	*dst = coins
	return nil
}

func compactJSON(m json.Marshaler) string {
	bz, err := m.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(bz)
}
