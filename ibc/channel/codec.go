// Package channel binds the IBC core channel messages (ibc.core.channel.v1)
// to the tx and REST query clients.
package channel

import (
	"bytes"
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/std"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/jsonpb"
	gogoproto "github.com/cosmos/gogoproto/proto"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	"github.com/Gravity-Devs/liquidity/types"
)

// ProtoPackage is the protobuf package of the channel messages.
const ProtoPackage = "ibc.core.channel.v1"

// Type URLs of the channel Msg service messages.
const (
	TypeURLMsgChannelOpenInit     = "/" + ProtoPackage + ".MsgChannelOpenInit"
	TypeURLMsgChannelOpenTry      = "/" + ProtoPackage + ".MsgChannelOpenTry"
	TypeURLMsgChannelOpenAck      = "/" + ProtoPackage + ".MsgChannelOpenAck"
	TypeURLMsgChannelOpenConfirm  = "/" + ProtoPackage + ".MsgChannelOpenConfirm"
	TypeURLMsgChannelCloseInit    = "/" + ProtoPackage + ".MsgChannelCloseInit"
	TypeURLMsgChannelCloseConfirm = "/" + ProtoPackage + ".MsgChannelCloseConfirm"
	TypeURLMsgRecvPacket          = "/" + ProtoPackage + ".MsgRecvPacket"
	TypeURLMsgTimeout             = "/" + ProtoPackage + ".MsgTimeout"
	TypeURLMsgTimeoutOnClose      = "/" + ProtoPackage + ".MsgTimeoutOnClose"
	TypeURLMsgAcknowledgement     = "/" + ProtoPackage + ".MsgAcknowledgement"
)

var protoCodec = newProtoCodec()

func newProtoCodec() *codec.ProtoCodec {
	reg := codectypes.NewInterfaceRegistry()
	std.RegisterInterfaces(reg)
	channeltypes.RegisterInterfaces(reg)
	return codec.NewProtoCodec(reg)
}

// Codec returns the codec used for the JSON form of channel messages and
// query responses.
func Codec() codec.Codec {
	return protoCodec
}

// MarshalJSON renders msg with proto field names and 64-bit integers as strings.
func MarshalJSON(msg gogoproto.Message) ([]byte, error) {
	return protoCodec.MarshalJSON(msg)
}

// UnmarshalJSON fills msg from its JSON form. Both proto and lowerCamelCase
// field names are accepted. Fields unknown to msg are skipped, so responses
// from gateways running other ibc-go releases still decode.
func UnmarshalJSON(bz []byte, msg gogoproto.Message) error {
	if msg == nil {
		return fmt.Errorf("cannot decode JSON into %T", msg)
	}
	u := jsonpb.Unmarshaler{AnyResolver: protoCodec.InterfaceRegistry(), AllowUnknownFields: true}
	if err := u.Unmarshal(bytes.NewReader(bz), msg); err != nil {
		return err
	}
	return codectypes.UnpackInterfaces(msg, protoCodec.InterfaceRegistry())
}

type message[T any] interface {
	*T
	gogoproto.Message
}

// WithDefaults returns an independent copy of msg; a nil msg yields the
// zero message.
func WithDefaults[T any, PT message[T]](msg PT) PT {
	if msg == nil {
		return PT(new(T))
	}
	return gogoproto.Clone(msg).(PT)
}

// Msg is a channel message that can be placed in a tx body.
type Msg interface {
	sdk.Msg
	Marshal() ([]byte, error)
}

// EncodeObject tags msg with its type URL for inclusion in a tx.
func EncodeObject(msg Msg) types.EncodeObject {
	return types.EncodeObject{TypeURL: sdk.MsgTypeURL(msg), Value: msg}
}

// Decode resolves typeURL to a registered channel message and decodes bz into it.
func Decode(typeURL string, bz []byte) (sdk.Msg, error) {
	var msg sdk.Msg
	if err := protoCodec.InterfaceRegistry().UnpackAny(&codectypes.Any{TypeUrl: typeURL, Value: bz}, &msg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", typeURL, err)
	}
	return msg, nil
}
