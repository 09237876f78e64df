package types

import (
	"encoding/json"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Gravity-Devs/liquidity/internal/wire"
)

// MsgCreatePool submits the creation of a liquidity pool with an initial
// deposit of both reserve coins.
type MsgCreatePool struct {
	PoolCreatorAddress string
	// PoolTypeID must be 1 on this version of the module.
	PoolTypeID uint32
	// DepositCoins is the reserve coin pair deposited on creation.
	DepositCoins sdk.Coins
}

func (m *MsgCreatePool) Reset()                { *m = MsgCreatePool{} }
func (m *MsgCreatePool) String() string        { return compactJSON(m) }
func (*MsgCreatePool) ProtoMessage()           {}
func (*MsgCreatePool) XXX_MessageName() string { return ProtoPackage + ".MsgCreatePool" }

// Marshal encodes m in protobuf wire format.
func (m *MsgCreatePool) Marshal() ([]byte, error) {
	var e wire.Encoder
	e.String(1, m.PoolCreatorAddress)
	e.Uint32(2, m.PoolTypeID)
	if err := embedCoins(&e, 4, m.DepositCoins); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// Unmarshal decodes m from protobuf wire format.
func (m *MsgCreatePool) Unmarshal(b []byte) error {
	*m = MsgCreatePool{}
	return wire.Walk(b, func(f wire.Field) error {
		var err error
		switch f.Num {
		case 1:
			m.PoolCreatorAddress, err = f.Text()
		case 2:
			m.PoolTypeID, err = f.Uint32()
		case 4:
			var c sdk.Coin
			if c, err = decodeCoin(f); err == nil {
				m.DepositCoins = append(m.DepositCoins, c)
			}
		}
		return err
	})
}

// MarshalJSON implements json.Marshaler.
func (m *MsgCreatePool) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		PoolCreatorAddress string    `json:"pool_creator_address"`
		PoolTypeID         uint32    `json:"pool_type_id"`
		DepositCoins       sdk.Coins `json:"deposit_coins"`
	}{m.PoolCreatorAddress, m.PoolTypeID, jsonCoins(m.DepositCoins)})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *MsgCreatePool) UnmarshalJSON(b []byte) error {
	obj, err := wire.ParseObject(b)
	if err != nil {
		return err
	}
	*m = MsgCreatePool{}
	if err := obj.String("pool_creator_address", &m.PoolCreatorAddress); err != nil {
		return err
	}
	if err := obj.Uint32("pool_type_id", &m.PoolTypeID); err != nil {
		return err
	}
	return readCoins(obj, "deposit_coins", &m.DepositCoins)
}

// WithDefaults returns an independent copy of m with omitted fields set to
// their defaults. A nil receiver yields the default message.
func (m *MsgCreatePool) WithDefaults() *MsgCreatePool {
	if m == nil {
		return &MsgCreatePool{}
	}
	return &MsgCreatePool{
		PoolCreatorAddress: m.PoolCreatorAddress,
		PoolTypeID:         m.PoolTypeID,
		DepositCoins:       defaultCoins(m.DepositCoins),
	}
}

// MsgDepositWithinBatch queues a deposit into the current batch of a pool.
// It is executed at the end of the batch together with the other requests.
type MsgDepositWithinBatch struct {
	DepositorAddress string
	// PoolID is the id of the target pool.
	PoolID uint64
	// DepositCoins is the reserve coin pair to deposit.
	DepositCoins sdk.Coins
}

func (m *MsgDepositWithinBatch) Reset()                { *m = MsgDepositWithinBatch{} }
func (m *MsgDepositWithinBatch) String() string        { return compactJSON(m) }
func (*MsgDepositWithinBatch) ProtoMessage()           {}
func (*MsgDepositWithinBatch) XXX_MessageName() string { return ProtoPackage + ".MsgDepositWithinBatch" }

// Marshal encodes m in protobuf wire format.
func (m *MsgDepositWithinBatch) Marshal() ([]byte, error) {
	var e wire.Encoder
	e.String(1, m.DepositorAddress)
	e.Uint64(2, m.PoolID)
	if err := embedCoins(&e, 3, m.DepositCoins); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// Unmarshal decodes m from protobuf wire format.
func (m *MsgDepositWithinBatch) Unmarshal(b []byte) error {
	*m = MsgDepositWithinBatch{}
	return wire.Walk(b, func(f wire.Field) error {
		var err error
		switch f.Num {
		case 1:
			m.DepositorAddress, err = f.Text()
		case 2:
			m.PoolID, err = f.Uint64()
		case 3:
			var c sdk.Coin
			if c, err = decodeCoin(f); err == nil {
				m.DepositCoins = append(m.DepositCoins, c)
			}
		}
		return err
	})
}

// MarshalJSON implements json.Marshaler.
func (m *MsgDepositWithinBatch) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		DepositorAddress string    `json:"depositor_address"`
		PoolID           string    `json:"pool_id"`
		DepositCoins     sdk.Coins `json:"deposit_coins"`
	}{m.DepositorAddress, wire.FormatUint64(m.PoolID), jsonCoins(m.DepositCoins)})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *MsgDepositWithinBatch) UnmarshalJSON(b []byte) error {
	obj, err := wire.ParseObject(b)
	if err != nil {
		return err
	}
	*m = MsgDepositWithinBatch{}
	if err := obj.String("depositor_address", &m.DepositorAddress); err != nil {
		return err
	}
	if err := obj.Uint64("pool_id", &m.PoolID); err != nil {
		return err
	}
	return readCoins(obj, "deposit_coins", &m.DepositCoins)
}

// WithDefaults returns an independent copy of m with omitted fields set to
// their defaults. A nil receiver yields the default message.
func (m *MsgDepositWithinBatch) WithDefaults() *MsgDepositWithinBatch {
	if m == nil {
		return &MsgDepositWithinBatch{}
	}
	return &MsgDepositWithinBatch{
		DepositorAddress: m.DepositorAddress,
		PoolID:           m.PoolID,
		DepositCoins:     defaultCoins(m.DepositCoins),
	}
}

// MsgWithdrawWithinBatch queues the redemption of pool coins into the
// current batch of a pool.
type MsgWithdrawWithinBatch struct {
	WithdrawerAddress string
	// PoolID is the id of the target pool.
	PoolID   uint64
	PoolCoin sdk.Coin
}

func (m *MsgWithdrawWithinBatch) Reset()                { *m = MsgWithdrawWithinBatch{} }
func (m *MsgWithdrawWithinBatch) String() string        { return compactJSON(m) }
func (*MsgWithdrawWithinBatch) ProtoMessage()           {}
func (*MsgWithdrawWithinBatch) XXX_MessageName() string { return ProtoPackage + ".MsgWithdrawWithinBatch" }

// Marshal encodes m in protobuf wire format.
func (m *MsgWithdrawWithinBatch) Marshal() ([]byte, error) {
	var e wire.Encoder
	e.String(1, m.WithdrawerAddress)
	e.Uint64(2, m.PoolID)
	if err := e.Embedded(3, &m.PoolCoin); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// Unmarshal decodes m from protobuf wire format.
func (m *MsgWithdrawWithinBatch) Unmarshal(b []byte) error {
	*m = MsgWithdrawWithinBatch{}
	return wire.Walk(b, func(f wire.Field) error {
		var err error
		switch f.Num {
		case 1:
			m.WithdrawerAddress, err = f.Text()
		case 2:
			m.PoolID, err = f.Uint64()
		case 3:
			m.PoolCoin, err = decodeCoin(f)
		}
		return err
	})
}

// MarshalJSON implements json.Marshaler.
func (m *MsgWithdrawWithinBatch) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		WithdrawerAddress string   `json:"withdrawer_address"`
		PoolID            string   `json:"pool_id"`
		PoolCoin          sdk.Coin `json:"pool_coin"`
	}{m.WithdrawerAddress, wire.FormatUint64(m.PoolID), defaultCoin(m.PoolCoin)})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *MsgWithdrawWithinBatch) UnmarshalJSON(b []byte) error {
	obj, err := wire.ParseObject(b)
	if err != nil {
		return err
	}
	*m = MsgWithdrawWithinBatch{}
	if err := obj.String("withdrawer_address", &m.WithdrawerAddress); err != nil {
		return err
	}
	if err := obj.Uint64("pool_id", &m.PoolID); err != nil {
		return err
	}
	return obj.Value("pool_coin", &m.PoolCoin)
}

// WithDefaults returns an independent copy of m with omitted fields set to
// their defaults. A nil receiver yields the default message.
func (m *MsgWithdrawWithinBatch) WithDefaults() *MsgWithdrawWithinBatch {
	if m == nil {
		return &MsgWithdrawWithinBatch{PoolCoin: defaultCoin(sdk.Coin{})}
	}
	return &MsgWithdrawWithinBatch{
		WithdrawerAddress: m.WithdrawerAddress,
		PoolID:            m.PoolID,
		PoolCoin:          defaultCoin(m.PoolCoin),
	}
}

// MsgSwapWithinBatch queues a limit-order swap into the current batch of a
// pool. OfferCoinFee must be half of the offer amount times the swap fee rate;
// see OfferCoinFee.
type MsgSwapWithinBatch struct {
	// SwapRequesterAddress is the address of the swap requester.
	SwapRequesterAddress string
	// PoolID is the id of the target pool.
	PoolID uint64
	// SwapTypeID must be 1 on this version of the module.
	SwapTypeID uint32
	// OfferCoin denom must be one of the pool's reserve denoms.
	OfferCoin sdk.Coin
	// DemandCoinDenom is the denom to receive, the other reserve denom of the pool.
	DemandCoinDenom string
	OfferCoinFee    sdk.Coin
	// OrderPrice is the limit price as X/Y, where X and Y are the reserve
	// amounts of the pool's denoms sorted alphabetically.
	OrderPrice sdkmath.LegacyDec
}

func (m *MsgSwapWithinBatch) Reset()                { *m = MsgSwapWithinBatch{} }
func (m *MsgSwapWithinBatch) String() string        { return compactJSON(m) }
func (*MsgSwapWithinBatch) ProtoMessage()           {}
func (*MsgSwapWithinBatch) XXX_MessageName() string { return ProtoPackage + ".MsgSwapWithinBatch" }

// Marshal encodes m in protobuf wire format.
func (m *MsgSwapWithinBatch) Marshal() ([]byte, error) {
	var e wire.Encoder
	e.String(1, m.SwapRequesterAddress)
	e.Uint64(2, m.PoolID)
	e.Uint32(3, m.SwapTypeID)
	if err := e.Embedded(4, &m.OfferCoin); err != nil {
		return nil, err
	}
	e.String(5, m.DemandCoinDenom)
	if err := e.Embedded(6, &m.OfferCoinFee); err != nil {
		return nil, err
	}
	if err := e.Embedded(7, m.OrderPrice); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// Unmarshal decodes m from protobuf wire format.
func (m *MsgSwapWithinBatch) Unmarshal(b []byte) error {
	*m = MsgSwapWithinBatch{}
	return wire.Walk(b, func(f wire.Field) error {
		var err error
		switch f.Num {
		case 1:
			m.SwapRequesterAddress, err = f.Text()
		case 2:
			m.PoolID, err = f.Uint64()
		case 3:
			m.SwapTypeID, err = f.Uint32()
		case 4:
			m.OfferCoin, err = decodeCoin(f)
		case 5:
			m.DemandCoinDenom, err = f.Text()
		case 6:
			m.OfferCoinFee, err = decodeCoin(f)
		case 7:
			err = f.Decode(&m.OrderPrice)
		}
		return err
	})
}

// MarshalJSON implements json.Marshaler.
func (m *MsgSwapWithinBatch) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		SwapRequesterAddress string            `json:"swap_requester_address"`
		PoolID               string            `json:"pool_id"`
		SwapTypeID           uint32            `json:"swap_type_id"`
		OfferCoin            sdk.Coin          `json:"offer_coin"`
		DemandCoinDenom      string            `json:"demand_coin_denom"`
		OfferCoinFee         sdk.Coin          `json:"offer_coin_fee"`
		OrderPrice           sdkmath.LegacyDec `json:"order_price"`
	}{
		m.SwapRequesterAddress,
		wire.FormatUint64(m.PoolID),
		m.SwapTypeID,
		defaultCoin(m.OfferCoin),
		m.DemandCoinDenom,
		defaultCoin(m.OfferCoinFee),
		defaultDec(m.OrderPrice),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *MsgSwapWithinBatch) UnmarshalJSON(b []byte) error {
	obj, err := wire.ParseObject(b)
	if err != nil {
		return err
	}
	*m = MsgSwapWithinBatch{}
	if err := obj.String("swap_requester_address", &m.SwapRequesterAddress); err != nil {
		return err
	}
	if err := obj.Uint64("pool_id", &m.PoolID); err != nil {
		return err
	}
	if err := obj.Uint32("swap_type_id", &m.SwapTypeID); err != nil {
		return err
	}
	if err := obj.Value("offer_coin", &m.OfferCoin); err != nil {
		return err
	}
	if err := obj.String("demand_coin_denom", &m.DemandCoinDenom); err != nil {
		return err
	}
	if err := obj.Value("offer_coin_fee", &m.OfferCoinFee); err != nil {
		return err
	}
	return obj.Value("order_price", &m.OrderPrice)
}

// WithDefaults returns an independent copy of m with omitted fields set to
// their defaults. A nil receiver yields the default message.
func (m *MsgSwapWithinBatch) WithDefaults() *MsgSwapWithinBatch {
	if m == nil {
		m = &MsgSwapWithinBatch{}
	}
	return &MsgSwapWithinBatch{
		SwapRequesterAddress: m.SwapRequesterAddress,
		PoolID:               m.PoolID,
		SwapTypeID:           m.SwapTypeID,
		OfferCoin:            defaultCoin(m.OfferCoin),
		DemandCoinDenom:      m.DemandCoinDenom,
		OfferCoinFee:         defaultCoin(m.OfferCoinFee),
		OrderPrice:           defaultDec(m.OrderPrice),
	}
}

// MsgCreatePoolResponse is the empty Msg/CreatePool response.
type MsgCreatePoolResponse struct{ emptyMsg }

// MsgDepositWithinBatchResponse is the empty Msg/DepositWithinBatch response.
type MsgDepositWithinBatchResponse struct{ emptyMsg }

// MsgWithdrawWithinBatchResponse is the empty Msg/WithdrawWithinBatch response.
type MsgWithdrawWithinBatchResponse struct{ emptyMsg }

// MsgSwapWithinBatchResponse is the empty Msg/Swap response.
type MsgSwapWithinBatchResponse struct{ emptyMsg }

func (*MsgCreatePoolResponse) XXX_MessageName() string {
	return ProtoPackage + ".MsgCreatePoolResponse"
}

func (*MsgDepositWithinBatchResponse) XXX_MessageName() string {
	return ProtoPackage + ".MsgDepositWithinBatchResponse"
}

func (*MsgWithdrawWithinBatchResponse) XXX_MessageName() string {
	return ProtoPackage + ".MsgWithdrawWithinBatchResponse"
}

func (*MsgSwapWithinBatchResponse) XXX_MessageName() string {
	return ProtoPackage + ".MsgSwapWithinBatchResponse"
}

// emptyMsg carries the codec of a message without fields. Unknown fields are
// validated and dropped.
type emptyMsg struct{}

func (*emptyMsg) Reset()                       {}
func (*emptyMsg) String() string               { return "{}" }
func (*emptyMsg) ProtoMessage()                {}
func (*emptyMsg) Marshal() ([]byte, error)     { return []byte{}, nil }
func (*emptyMsg) MarshalJSON() ([]byte, error) { return []byte("{}"), nil }

func (*emptyMsg) Unmarshal(b []byte) error {
	return wire.Walk(b, func(wire.Field) error { return nil })
}

func (*emptyMsg) UnmarshalJSON(b []byte) error {
	_, err := wire.ParseObject(b)
	return err
}
