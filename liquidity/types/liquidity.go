package types

import (
	"encoding/json"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Gravity-Devs/liquidity/internal/wire"
)

// PoolType describes a kind of pool the module can create.
type PoolType struct {
	ID                uint32
	Name              string
	MinReserveCoinNum uint32
	MaxReserveCoinNum uint32
	Description       string
}

func (m *PoolType) Reset()                { *m = PoolType{} }
func (m *PoolType) String() string        { return compactJSON(m) }
func (*PoolType) ProtoMessage()           {}
func (*PoolType) XXX_MessageName() string { return ProtoPackage + ".PoolType" }

// Marshal encodes m in protobuf wire format.
func (m *PoolType) Marshal() ([]byte, error) {
	var e wire.Encoder
	e.Uint32(1, m.ID)
	e.String(2, m.Name)
	e.Uint32(3, m.MinReserveCoinNum)
	e.Uint32(4, m.MaxReserveCoinNum)
	e.String(5, m.Description)
	return e.Bytes(), nil
}

// Unmarshal decodes m from protobuf wire format.
func (m *PoolType) Unmarshal(b []byte) error {
	*m = PoolType{}
	return wire.Walk(b, func(f wire.Field) error {
		var err error
		switch f.Num {
		case 1:
			m.ID, err = f.Uint32()
		case 2:
			m.Name, err = f.Text()
		case 3:
			m.MinReserveCoinNum, err = f.Uint32()
		case 4:
			m.MaxReserveCoinNum, err = f.Uint32()
		case 5:
			m.Description, err = f.Text()
		}
		return err
	})
}

// MarshalJSON implements json.Marshaler.
func (m *PoolType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID                uint32 `json:"id"`
		Name              string `json:"name"`
		MinReserveCoinNum uint32 `json:"min_reserve_coin_num"`
		MaxReserveCoinNum uint32 `json:"max_reserve_coin_num"`
		Description       string `json:"description"`
	}{m.ID, m.Name, m.MinReserveCoinNum, m.MaxReserveCoinNum, m.Description})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *PoolType) UnmarshalJSON(b []byte) error {
	obj, err := wire.ParseObject(b)
	if err != nil {
		return err
	}
	*m = PoolType{}
	if err := obj.Uint32("id", &m.ID); err != nil {
		return err
	}
	if err := obj.String("name", &m.Name); err != nil {
		return err
	}
	if err := obj.Uint32("min_reserve_coin_num", &m.MinReserveCoinNum); err != nil {
		return err
	}
	if err := obj.Uint32("max_reserve_coin_num", &m.MaxReserveCoinNum); err != nil {
		return err
	}
	return obj.String("description", &m.Description)
}

// WithDefaults returns an independent copy of m.
func (m *PoolType) WithDefaults() *PoolType {
	if m == nil {
		return &PoolType{}
	}
	cp := *m
	return &cp
}

// Params are the liquidity module parameters.
type Params struct {
	PoolTypes              []PoolType
	MinInitDepositAmount   sdkmath.Int
	InitPoolCoinMintAmount sdkmath.Int
	// MaxReserveCoinAmount of zero means no limit.
	MaxReserveCoinAmount sdkmath.Int
	PoolCreationFee      sdk.Coins
	SwapFeeRate          sdkmath.LegacyDec
	WithdrawFeeRate      sdkmath.LegacyDec
	MaxOrderAmountRatio  sdkmath.LegacyDec
	UnitBatchHeight      uint32
	// CircuitBreakerEnabled disables pool creation, deposits and swaps.
	CircuitBreakerEnabled bool
}

func (m *Params) Reset()                { *m = Params{} }
func (m *Params) String() string        { return compactJSON(m) }
func (*Params) ProtoMessage()           {}
func (*Params) XXX_MessageName() string { return ProtoPackage + ".Params" }

// Marshal encodes m in protobuf wire format.
func (m *Params) Marshal() ([]byte, error) {
	var e wire.Encoder
	for i := range m.PoolTypes {
		if err := e.Embedded(1, &m.PoolTypes[i]); err != nil {
			return nil, err
		}
	}
	for num, v := range []wire.Marshaler{m.MinInitDepositAmount, m.InitPoolCoinMintAmount, m.MaxReserveCoinAmount} {
		if err := e.Embedded(protoNum(2+num), v); err != nil {
			return nil, err
		}
	}
	if err := embedCoins(&e, 5, m.PoolCreationFee); err != nil {
		return nil, err
	}
	for num, v := range []wire.Marshaler{m.SwapFeeRate, m.WithdrawFeeRate, m.MaxOrderAmountRatio} {
		if err := e.Embedded(protoNum(6+num), v); err != nil {
			return nil, err
		}
	}
	e.Uint32(9, m.UnitBatchHeight)
	e.Bool(10, m.CircuitBreakerEnabled)
	return e.Bytes(), nil
}

// Unmarshal decodes m from protobuf wire format.
func (m *Params) Unmarshal(b []byte) error {
	*m = Params{}
	return wire.Walk(b, func(f wire.Field) error {
		var err error
		switch f.Num {
		case 1:
			var pt PoolType
			if err = f.Decode(&pt); err == nil {
				m.PoolTypes = append(m.PoolTypes, pt)
			}
		case 2:
			err = f.Decode(&m.MinInitDepositAmount)
		case 3:
			err = f.Decode(&m.InitPoolCoinMintAmount)
		case 4:
			err = f.Decode(&m.MaxReserveCoinAmount)
		case 5:
			var c sdk.Coin
			if c, err = decodeCoin(f); err == nil {
				m.PoolCreationFee = append(m.PoolCreationFee, c)
			}
		case 6:
			err = f.Decode(&m.SwapFeeRate)
		case 7:
			err = f.Decode(&m.WithdrawFeeRate)
		case 8:
			err = f.Decode(&m.MaxOrderAmountRatio)
		case 9:
			m.UnitBatchHeight, err = f.Uint32()
		case 10:
			m.CircuitBreakerEnabled, err = f.Bool()
		}
		return err
	})
}

type paramsJSON struct {
	PoolTypes              []PoolType        `json:"pool_types"`
	MinInitDepositAmount   sdkmath.Int       `json:"min_init_deposit_amount"`
	InitPoolCoinMintAmount sdkmath.Int       `json:"init_pool_coin_mint_amount"`
	MaxReserveCoinAmount   sdkmath.Int       `json:"max_reserve_coin_amount"`
	PoolCreationFee        sdk.Coins         `json:"pool_creation_fee"`
	SwapFeeRate            sdkmath.LegacyDec `json:"swap_fee_rate"`
	WithdrawFeeRate        sdkmath.LegacyDec `json:"withdraw_fee_rate"`
	MaxOrderAmountRatio    sdkmath.LegacyDec `json:"max_order_amount_ratio"`
	UnitBatchHeight        uint32            `json:"unit_batch_height"`
	CircuitBreakerEnabled  bool              `json:"circuit_breaker_enabled"`
}

// MarshalJSON implements json.Marshaler.
func (m *Params) MarshalJSON() ([]byte, error) {
	d := m.WithDefaults()
	poolTypes := d.PoolTypes
	if poolTypes == nil {
		poolTypes = []PoolType{}
	}
	return json.Marshal(paramsJSON{
		PoolTypes:              poolTypes,
		MinInitDepositAmount:   d.MinInitDepositAmount,
		InitPoolCoinMintAmount: d.InitPoolCoinMintAmount,
		MaxReserveCoinAmount:   d.MaxReserveCoinAmount,
		PoolCreationFee:        jsonCoins(d.PoolCreationFee),
		SwapFeeRate:            d.SwapFeeRate,
		WithdrawFeeRate:        d.WithdrawFeeRate,
		MaxOrderAmountRatio:    d.MaxOrderAmountRatio,
		UnitBatchHeight:        d.UnitBatchHeight,
		CircuitBreakerEnabled:  d.CircuitBreakerEnabled,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Params) UnmarshalJSON(b []byte) error {
	obj, err := wire.ParseObject(b)
	if err != nil {
		return err
	}
	*m = Params{}
	if err := obj.Value("pool_types", &m.PoolTypes); err != nil {
		return err
	}
	if len(m.PoolTypes) == 0 {
		m.PoolTypes = nil
	}
	if err := obj.Value("min_init_deposit_amount", &m.MinInitDepositAmount); err != nil {
		return err
	}
	if err := obj.Value("init_pool_coin_mint_amount", &m.InitPoolCoinMintAmount); err != nil {
		return err
	}
	if err := obj.Value("max_reserve_coin_amount", &m.MaxReserveCoinAmount); err != nil {
		return err
	}
	if err := readCoins(obj, "pool_creation_fee", &m.PoolCreationFee); err != nil {
		return err
	}
	if err := obj.Value("swap_fee_rate", &m.SwapFeeRate); err != nil {
		return err
	}
	if err := obj.Value("withdraw_fee_rate", &m.WithdrawFeeRate); err != nil {
		return err
	}
	if err := obj.Value("max_order_amount_ratio", &m.MaxOrderAmountRatio); err != nil {
		return err
	}
	if err := obj.Uint32("unit_batch_height", &m.UnitBatchHeight); err != nil {
		return err
	}
	return obj.Bool("circuit_breaker_enabled", &m.CircuitBreakerEnabled)
}

// WithDefaults returns an independent copy of m with nil amounts and rates
// set to zero.
func (m *Params) WithDefaults() *Params {
	if m == nil {
		m = &Params{}
	}
	var poolTypes []PoolType
	if len(m.PoolTypes) > 0 {
		poolTypes = append([]PoolType(nil), m.PoolTypes...)
	}
	return &Params{
		PoolTypes:              poolTypes,
		MinInitDepositAmount:   defaultInt(m.MinInitDepositAmount),
		InitPoolCoinMintAmount: defaultInt(m.InitPoolCoinMintAmount),
		MaxReserveCoinAmount:   defaultInt(m.MaxReserveCoinAmount),
		PoolCreationFee:        defaultCoins(m.PoolCreationFee),
		SwapFeeRate:            defaultDec(m.SwapFeeRate),
		WithdrawFeeRate:        defaultDec(m.WithdrawFeeRate),
		MaxOrderAmountRatio:    defaultDec(m.MaxOrderAmountRatio),
		UnitBatchHeight:        m.UnitBatchHeight,
		CircuitBreakerEnabled:  m.CircuitBreakerEnabled,
	}
}

// Pool is a liquidity pool holding a pair of reserve coins.
type Pool struct {
	ID                    uint64
	TypeID                uint32
	ReserveCoinDenoms     []string
	ReserveAccountAddress string
	PoolCoinDenom         string
}

func (m *Pool) Reset()                { *m = Pool{} }
func (m *Pool) String() string        { return compactJSON(m) }
func (*Pool) ProtoMessage()           {}
func (*Pool) XXX_MessageName() string { return ProtoPackage + ".Pool" }

// Marshal encodes m in protobuf wire format.
func (m *Pool) Marshal() ([]byte, error) {
	var e wire.Encoder
	e.Uint64(1, m.ID)
	e.Uint32(2, m.TypeID)
	e.Strings(3, m.ReserveCoinDenoms)
	e.String(4, m.ReserveAccountAddress)
	e.String(5, m.PoolCoinDenom)
	return e.Bytes(), nil
}

// Unmarshal decodes m from protobuf wire format.
func (m *Pool) Unmarshal(b []byte) error {
	*m = Pool{}
	return wire.Walk(b, func(f wire.Field) error {
		var err error
		switch f.Num {
		case 1:
			m.ID, err = f.Uint64()
		case 2:
			m.TypeID, err = f.Uint32()
		case 3:
			var denom string
			if denom, err = f.Text(); err == nil {
				m.ReserveCoinDenoms = append(m.ReserveCoinDenoms, denom)
			}
		case 4:
			m.ReserveAccountAddress, err = f.Text()
		case 5:
			m.PoolCoinDenom, err = f.Text()
		}
		return err
	})
}

// MarshalJSON implements json.Marshaler.
func (m *Pool) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID                    string   `json:"id"`
		TypeID                uint32   `json:"type_id"`
		ReserveCoinDenoms     []string `json:"reserve_coin_denoms"`
		ReserveAccountAddress string   `json:"reserve_account_address"`
		PoolCoinDenom         string   `json:"pool_coin_denom"`
	}{wire.FormatUint64(m.ID), m.TypeID, jsonStrings(m.ReserveCoinDenoms), m.ReserveAccountAddress, m.PoolCoinDenom})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Pool) UnmarshalJSON(b []byte) error {
	obj, err := wire.ParseObject(b)
	if err != nil {
		return err
	}
	*m = Pool{}
	if err := obj.Uint64("id", &m.ID); err != nil {
		return err
	}
	if err := obj.Uint32("type_id", &m.TypeID); err != nil {
		return err
	}
	if err := obj.Value("reserve_coin_denoms", &m.ReserveCoinDenoms); err != nil {
		return err
	}
	if len(m.ReserveCoinDenoms) == 0 {
		m.ReserveCoinDenoms = nil
	}
	if err := obj.String("reserve_account_address", &m.ReserveAccountAddress); err != nil {
		return err
	}
	return obj.String("pool_coin_denom", &m.PoolCoinDenom)
}

// WithDefaults returns an independent copy of m.
func (m *Pool) WithDefaults() *Pool {
	if m == nil {
		return &Pool{}
	}
	cp := *m
	if len(m.ReserveCoinDenoms) > 0 {
		cp.ReserveCoinDenoms = append([]string(nil), m.ReserveCoinDenoms...)
	}
	return &cp
}

// PoolMetadata is the supply and reserve snapshot of a pool.
type PoolMetadata struct {
	PoolID              uint64
	PoolCoinTotalSupply sdk.Coin
	ReserveCoins        sdk.Coins
}

func (m *PoolMetadata) Reset()                { *m = PoolMetadata{} }
func (m *PoolMetadata) String() string        { return compactJSON(m) }
func (*PoolMetadata) ProtoMessage()           {}
func (*PoolMetadata) XXX_MessageName() string { return ProtoPackage + ".PoolMetadata" }

// Marshal encodes m in protobuf wire format.
func (m *PoolMetadata) Marshal() ([]byte, error) {
	var e wire.Encoder
	e.Uint64(1, m.PoolID)
	if err := e.Embedded(2, &m.PoolCoinTotalSupply); err != nil {
		return nil, err
	}
	if err := embedCoins(&e, 3, m.ReserveCoins); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// Unmarshal decodes m from protobuf wire format.
func (m *PoolMetadata) Unmarshal(b []byte) error {
	*m = PoolMetadata{}
	return wire.Walk(b, func(f wire.Field) error {
		var err error
		switch f.Num {
		case 1:
			m.PoolID, err = f.Uint64()
		case 2:
			m.PoolCoinTotalSupply, err = decodeCoin(f)
		case 3:
			var c sdk.Coin
			if c, err = decodeCoin(f); err == nil {
				m.ReserveCoins = append(m.ReserveCoins, c)
			}
		}
		return err
	})
}

// MarshalJSON implements json.Marshaler.
func (m *PoolMetadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		PoolID              string    `json:"pool_id"`
		PoolCoinTotalSupply sdk.Coin  `json:"pool_coin_total_supply"`
		ReserveCoins        sdk.Coins `json:"reserve_coins"`
	}{wire.FormatUint64(m.PoolID), defaultCoin(m.PoolCoinTotalSupply), jsonCoins(m.ReserveCoins)})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *PoolMetadata) UnmarshalJSON(b []byte) error {
	obj, err := wire.ParseObject(b)
	if err != nil {
		return err
	}
	*m = PoolMetadata{}
	if err := obj.Uint64("pool_id", &m.PoolID); err != nil {
		return err
	}
	if err := obj.Value("pool_coin_total_supply", &m.PoolCoinTotalSupply); err != nil {
		return err
	}
	return readCoins(obj, "reserve_coins", &m.ReserveCoins)
}

// WithDefaults returns an independent copy of m with nil amounts set to zero.
func (m *PoolMetadata) WithDefaults() *PoolMetadata {
	if m == nil {
		m = &PoolMetadata{}
	}
	return &PoolMetadata{
		PoolID:              m.PoolID,
		PoolCoinTotalSupply: defaultCoin(m.PoolCoinTotalSupply),
		ReserveCoins:        defaultCoins(m.ReserveCoins),
	}
}

// PoolBatch tracks the requests queued for a pool between two executions.
type PoolBatch struct {
	PoolID           uint64
	Index            uint64
	BeginHeight      int64
	DepositMsgIndex  uint64
	WithdrawMsgIndex uint64
	SwapMsgIndex     uint64
	Executed         bool
}

func (m *PoolBatch) Reset()                { *m = PoolBatch{} }
func (m *PoolBatch) String() string        { return compactJSON(m) }
func (*PoolBatch) ProtoMessage()           {}
func (*PoolBatch) XXX_MessageName() string { return ProtoPackage + ".PoolBatch" }

// Marshal encodes m in protobuf wire format.
func (m *PoolBatch) Marshal() ([]byte, error) {
	var e wire.Encoder
	e.Uint64(1, m.PoolID)
	e.Uint64(2, m.Index)
	e.Int64(3, m.BeginHeight)
	e.Uint64(4, m.DepositMsgIndex)
	e.Uint64(5, m.WithdrawMsgIndex)
	e.Uint64(6, m.SwapMsgIndex)
	e.Bool(7, m.Executed)
	return e.Bytes(), nil
}

// Unmarshal decodes m from protobuf wire format.
func (m *PoolBatch) Unmarshal(b []byte) error {
	*m = PoolBatch{}
	return wire.Walk(b, func(f wire.Field) error {
		var err error
		switch f.Num {
		case 1:
			m.PoolID, err = f.Uint64()
		case 2:
			m.Index, err = f.Uint64()
		case 3:
			m.BeginHeight, err = f.Int64()
		case 4:
			m.DepositMsgIndex, err = f.Uint64()
		case 5:
			m.WithdrawMsgIndex, err = f.Uint64()
		case 6:
			m.SwapMsgIndex, err = f.Uint64()
		case 7:
			m.Executed, err = f.Bool()
		}
		return err
	})
}

// MarshalJSON implements json.Marshaler.
func (m *PoolBatch) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		PoolID           string `json:"pool_id"`
		Index            string `json:"index"`
		BeginHeight      string `json:"begin_height"`
		DepositMsgIndex  string `json:"deposit_msg_index"`
		WithdrawMsgIndex string `json:"withdraw_msg_index"`
		SwapMsgIndex     string `json:"swap_msg_index"`
		Executed         bool   `json:"executed"`
	}{
		wire.FormatUint64(m.PoolID),
		wire.FormatUint64(m.Index),
		wire.FormatInt64(m.BeginHeight),
		wire.FormatUint64(m.DepositMsgIndex),
		wire.FormatUint64(m.WithdrawMsgIndex),
		wire.FormatUint64(m.SwapMsgIndex),
		m.Executed,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *PoolBatch) UnmarshalJSON(b []byte) error {
	obj, err := wire.ParseObject(b)
	if err != nil {
		return err
	}
	*m = PoolBatch{}
	if err := obj.Uint64("pool_id", &m.PoolID); err != nil {
		return err
	}
	if err := obj.Uint64("index", &m.Index); err != nil {
		return err
	}
	if err := obj.Int64("begin_height", &m.BeginHeight); err != nil {
		return err
	}
	if err := obj.Uint64("deposit_msg_index", &m.DepositMsgIndex); err != nil {
		return err
	}
	if err := obj.Uint64("withdraw_msg_index", &m.WithdrawMsgIndex); err != nil {
		return err
	}
	if err := obj.Uint64("swap_msg_index", &m.SwapMsgIndex); err != nil {
		return err
	}
	return obj.Bool("executed", &m.Executed)
}

// WithDefaults returns an independent copy of m.
func (m *PoolBatch) WithDefaults() *PoolBatch {
	if m == nil {
		return &PoolBatch{}
	}
	cp := *m
	return &cp
}

// MsgStateMeta is the bookkeeping shared by queued batch messages.
type MsgStateMeta struct {
	MsgHeight   int64
	MsgIndex    uint64
	Executed    bool
	Succeeded   bool
	ToBeDeleted bool
}

func (s MsgStateMeta) encode(e *wire.Encoder) {
	e.Int64(1, s.MsgHeight)
	e.Uint64(2, s.MsgIndex)
	e.Bool(3, s.Executed)
	e.Bool(4, s.Succeeded)
	e.Bool(5, s.ToBeDeleted)
}

// decode fills s from one of fields 1-5 and reports whether f was consumed.
func (s *MsgStateMeta) decode(f wire.Field) (bool, error) {
	var err error
	switch f.Num {
	case 1:
		s.MsgHeight, err = f.Int64()
	case 2:
		s.MsgIndex, err = f.Uint64()
	case 3:
		s.Executed, err = f.Bool()
	case 4:
		s.Succeeded, err = f.Bool()
	case 5:
		s.ToBeDeleted, err = f.Bool()
	default:
		return false, nil
	}
	return true, err
}

func (s *MsgStateMeta) readJSON(obj wire.Object) error {
	if err := obj.Int64("msg_height", &s.MsgHeight); err != nil {
		return err
	}
	if err := obj.Uint64("msg_index", &s.MsgIndex); err != nil {
		return err
	}
	if err := obj.Bool("executed", &s.Executed); err != nil {
		return err
	}
	if err := obj.Bool("succeeded", &s.Succeeded); err != nil {
		return err
	}
	return obj.Bool("to_be_deleted", &s.ToBeDeleted)
}

type msgStateMetaJSON struct {
	MsgHeight   string `json:"msg_height"`
	MsgIndex    string `json:"msg_index"`
	Executed    bool   `json:"executed"`
	Succeeded   bool   `json:"succeeded"`
	ToBeDeleted bool   `json:"to_be_deleted"`
}

func (s MsgStateMeta) toJSON() msgStateMetaJSON {
	return msgStateMetaJSON{
		MsgHeight:   wire.FormatInt64(s.MsgHeight),
		MsgIndex:    wire.FormatUint64(s.MsgIndex),
		Executed:    s.Executed,
		Succeeded:   s.Succeeded,
		ToBeDeleted: s.ToBeDeleted,
	}
}

// DepositMsgState is a deposit request queued in a pool batch.
type DepositMsgState struct {
	MsgStateMeta
	Msg *MsgDepositWithinBatch
}

func (m *DepositMsgState) Reset()                { *m = DepositMsgState{} }
func (m *DepositMsgState) String() string        { return compactJSON(m) }
func (*DepositMsgState) ProtoMessage()           {}
func (*DepositMsgState) XXX_MessageName() string { return ProtoPackage + ".DepositMsgState" }

// Marshal encodes m in protobuf wire format.
func (m *DepositMsgState) Marshal() ([]byte, error) {
	var e wire.Encoder
	m.MsgStateMeta.encode(&e)
	if m.Msg != nil {
		if err := e.Embedded(6, m.Msg); err != nil {
			return nil, err
		}
	}
	return e.Bytes(), nil
}

// Unmarshal decodes m from protobuf wire format.
func (m *DepositMsgState) Unmarshal(b []byte) error {
	*m = DepositMsgState{}
	return wire.Walk(b, func(f wire.Field) error {
		if ok, err := m.MsgStateMeta.decode(f); ok || err != nil {
			return err
		}
		if f.Num == 6 {
			m.Msg = &MsgDepositWithinBatch{}
			return f.Decode(m.Msg)
		}
		return nil
	})
}

// MarshalJSON implements json.Marshaler.
func (m *DepositMsgState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		msgStateMetaJSON
		Msg *MsgDepositWithinBatch `json:"msg"`
	}{m.MsgStateMeta.toJSON(), m.Msg})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *DepositMsgState) UnmarshalJSON(b []byte) error {
	obj, err := wire.ParseObject(b)
	if err != nil {
		return err
	}
	*m = DepositMsgState{}
	if err := m.MsgStateMeta.readJSON(obj); err != nil {
		return err
	}
	return obj.Value("msg", &m.Msg)
}

// WithDefaults returns an independent copy of m. A missing Msg stays nil.
func (m *DepositMsgState) WithDefaults() *DepositMsgState {
	if m == nil {
		return &DepositMsgState{}
	}
	cp := &DepositMsgState{MsgStateMeta: m.MsgStateMeta}
	if m.Msg != nil {
		cp.Msg = m.Msg.WithDefaults()
	}
	return cp
}

// WithdrawMsgState is a withdraw request queued in a pool batch.
type WithdrawMsgState struct {
	MsgStateMeta
	Msg *MsgWithdrawWithinBatch
}

func (m *WithdrawMsgState) Reset()                { *m = WithdrawMsgState{} }
func (m *WithdrawMsgState) String() string        { return compactJSON(m) }
func (*WithdrawMsgState) ProtoMessage()           {}
func (*WithdrawMsgState) XXX_MessageName() string { return ProtoPackage + ".WithdrawMsgState" }

// Marshal encodes m in protobuf wire format.
func (m *WithdrawMsgState) Marshal() ([]byte, error) {
	var e wire.Encoder
	m.MsgStateMeta.encode(&e)
	if m.Msg != nil {
		if err := e.Embedded(6, m.Msg); err != nil {
			return nil, err
		}
	}
	return e.Bytes(), nil
}

// Unmarshal decodes m from protobuf wire format.
func (m *WithdrawMsgState) Unmarshal(b []byte) error {
	*m = WithdrawMsgState{}
	return wire.Walk(b, func(f wire.Field) error {
		if ok, err := m.MsgStateMeta.decode(f); ok || err != nil {
			return err
		}
		if f.Num == 6 {
			m.Msg = &MsgWithdrawWithinBatch{}
			return f.Decode(m.Msg)
		}
		return nil
	})
}

// MarshalJSON implements json.Marshaler.
func (m *WithdrawMsgState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		msgStateMetaJSON
		Msg *MsgWithdrawWithinBatch `json:"msg"`
	}{m.MsgStateMeta.toJSON(), m.Msg})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *WithdrawMsgState) UnmarshalJSON(b []byte) error {
	obj, err := wire.ParseObject(b)
	if err != nil {
		return err
	}
	*m = WithdrawMsgState{}
	if err := m.MsgStateMeta.readJSON(obj); err != nil {
		return err
	}
	return obj.Value("msg", &m.Msg)
}

// WithDefaults returns an independent copy of m. A missing Msg stays nil.
func (m *WithdrawMsgState) WithDefaults() *WithdrawMsgState {
	if m == nil {
		return &WithdrawMsgState{}
	}
	cp := &WithdrawMsgState{MsgStateMeta: m.MsgStateMeta}
	if m.Msg != nil {
		cp.Msg = m.Msg.WithDefaults()
	}
	return cp
}

// SwapMsgState is a swap request queued in a pool batch, including the
// portion of the offer already matched.
type SwapMsgState struct {
	MsgStateMeta
	OrderExpiryHeight    int64
	ExchangedOfferCoin   sdk.Coin
	RemainingOfferCoin   sdk.Coin
	ReservedOfferCoinFee sdk.Coin
	Msg                  *MsgSwapWithinBatch
}

func (m *SwapMsgState) Reset()                { *m = SwapMsgState{} }
func (m *SwapMsgState) String() string        { return compactJSON(m) }
func (*SwapMsgState) ProtoMessage()           {}
func (*SwapMsgState) XXX_MessageName() string { return ProtoPackage + ".SwapMsgState" }

// Marshal encodes m in protobuf wire format.
func (m *SwapMsgState) Marshal() ([]byte, error) {
	var e wire.Encoder
	m.MsgStateMeta.encode(&e)
	e.Int64(6, m.OrderExpiryHeight)
	for num, c := range []*sdk.Coin{&m.ExchangedOfferCoin, &m.RemainingOfferCoin, &m.ReservedOfferCoinFee} {
		if err := e.Embedded(protoNum(7+num), c); err != nil {
			return nil, err
		}
	}
	if m.Msg != nil {
		if err := e.Embedded(10, m.Msg); err != nil {
			return nil, err
		}
	}
	return e.Bytes(), nil
}

// Unmarshal decodes m from protobuf wire format.
func (m *SwapMsgState) Unmarshal(b []byte) error {
	*m = SwapMsgState{}
	return wire.Walk(b, func(f wire.Field) error {
		if ok, err := m.MsgStateMeta.decode(f); ok || err != nil {
			return err
		}
		var err error
		switch f.Num {
		case 6:
			m.OrderExpiryHeight, err = f.Int64()
		case 7:
			m.ExchangedOfferCoin, err = decodeCoin(f)
		case 8:
			m.RemainingOfferCoin, err = decodeCoin(f)
		case 9:
			m.ReservedOfferCoinFee, err = decodeCoin(f)
		case 10:
			m.Msg = &MsgSwapWithinBatch{}
			err = f.Decode(m.Msg)
		}
		return err
	})
}

// MarshalJSON implements json.Marshaler.
func (m *SwapMsgState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		msgStateMetaJSON
		OrderExpiryHeight    string              `json:"order_expiry_height"`
		ExchangedOfferCoin   sdk.Coin            `json:"exchanged_offer_coin"`
		RemainingOfferCoin   sdk.Coin            `json:"remaining_offer_coin"`
		ReservedOfferCoinFee sdk.Coin            `json:"reserved_offer_coin_fee"`
		Msg                  *MsgSwapWithinBatch `json:"msg"`
	}{
		m.MsgStateMeta.toJSON(),
		wire.FormatInt64(m.OrderExpiryHeight),
		defaultCoin(m.ExchangedOfferCoin),
		defaultCoin(m.RemainingOfferCoin),
		defaultCoin(m.ReservedOfferCoinFee),
		m.Msg,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *SwapMsgState) UnmarshalJSON(b []byte) error {
	obj, err := wire.ParseObject(b)
	if err != nil {
		return err
	}
	*m = SwapMsgState{}
	if err := m.MsgStateMeta.readJSON(obj); err != nil {
		return err
	}
	if err := obj.Int64("order_expiry_height", &m.OrderExpiryHeight); err != nil {
		return err
	}
	if err := obj.Value("exchanged_offer_coin", &m.ExchangedOfferCoin); err != nil {
		return err
	}
	if err := obj.Value("remaining_offer_coin", &m.RemainingOfferCoin); err != nil {
		return err
	}
	if err := obj.Value("reserved_offer_coin_fee", &m.ReservedOfferCoinFee); err != nil {
		return err
	}
	return obj.Value("msg", &m.Msg)
}

// WithDefaults returns an independent copy of m with nil amounts set to zero.
// A missing Msg stays nil.
func (m *SwapMsgState) WithDefaults() *SwapMsgState {
	if m == nil {
		m = &SwapMsgState{}
	}
	cp := &SwapMsgState{
		MsgStateMeta:         m.MsgStateMeta,
		OrderExpiryHeight:    m.OrderExpiryHeight,
		ExchangedOfferCoin:   defaultCoin(m.ExchangedOfferCoin),
		RemainingOfferCoin:   defaultCoin(m.RemainingOfferCoin),
		ReservedOfferCoinFee: defaultCoin(m.ReservedOfferCoinFee),
	}
	if m.Msg != nil {
		cp.Msg = m.Msg.WithDefaults()
	}
	return cp
}
