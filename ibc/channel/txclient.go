package channel

import (
	"context"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	"github.com/Gravity-Devs/liquidity/blockchain"
	"github.com/Gravity-Devs/liquidity/types"
)

// TxClient builds and broadcasts channel messages for one signer.
type TxClient struct {
	tx *blockchain.TxClient
}

// NewTxClient dials opts.Addr and returns a channel tx client for signer. It
// returns types.ErrMissingWallet when signer is nil.
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

func (c *TxClient) MsgChannelOpenInit(msg *channeltypes.MsgChannelOpenInit) types.EncodeObject {
	return types.EncodeObject{TypeURL: TypeURLMsgChannelOpenInit, Value: msg}
}

func (c *TxClient) MsgChannelOpenTry(msg *channeltypes.MsgChannelOpenTry) types.EncodeObject {
	return types.EncodeObject{TypeURL: TypeURLMsgChannelOpenTry, Value: msg}
}

func (c *TxClient) MsgChannelOpenAck(msg *channeltypes.MsgChannelOpenAck) types.EncodeObject {
	return types.EncodeObject{TypeURL: TypeURLMsgChannelOpenAck, Value: msg}
}

func (c *TxClient) MsgChannelOpenConfirm(msg *channeltypes.MsgChannelOpenConfirm) types.EncodeObject {
	return types.EncodeObject{TypeURL: TypeURLMsgChannelOpenConfirm, Value: msg}
}

func (c *TxClient) MsgChannelCloseInit(msg *channeltypes.MsgChannelCloseInit) types.EncodeObject {
	return types.EncodeObject{TypeURL: TypeURLMsgChannelCloseInit, Value: msg}
}

func (c *TxClient) MsgChannelCloseConfirm(msg *channeltypes.MsgChannelCloseConfirm) types.EncodeObject {
	return types.EncodeObject{TypeURL: TypeURLMsgChannelCloseConfirm, Value: msg}
}

func (c *TxClient) MsgRecvPacket(msg *channeltypes.MsgRecvPacket) types.EncodeObject {
	return types.EncodeObject{TypeURL: TypeURLMsgRecvPacket, Value: msg}
}

func (c *TxClient) MsgTimeout(msg *channeltypes.MsgTimeout) types.EncodeObject {
	return types.EncodeObject{TypeURL: TypeURLMsgTimeout, Value: msg}
}

func (c *TxClient) MsgTimeoutOnClose(msg *channeltypes.MsgTimeoutOnClose) types.EncodeObject {
	return types.EncodeObject{TypeURL: TypeURLMsgTimeoutOnClose, Value: msg}
}

func (c *TxClient) MsgAcknowledgement(msg *channeltypes.MsgAcknowledgement) types.EncodeObject {
	return types.EncodeObject{TypeURL: TypeURLMsgAcknowledgement, Value: msg}
}

// CloseInit broadcasts a MsgChannelCloseInit signed by the client's signer.
func (c *TxClient) CloseInit(ctx context.Context, portID, channelID string, opts blockchain.SignAndBroadcastOptions) (*types.BroadcastTxResponse, error) {
	msg := channeltypes.NewMsgChannelCloseInit(portID, channelID, c.Address())
	return c.SignAndBroadcast(ctx, []types.EncodeObject{c.MsgChannelCloseInit(msg)}, opts)
}
