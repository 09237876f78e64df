package channel

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	abcipb "cosmossdk.io/api/cosmos/base/abci/v1beta1"
	txtypes "cosmossdk.io/api/cosmos/tx/v1beta1"
	abciv1 "cosmossdk.io/api/tendermint/abci"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Gravity-Devs/liquidity/blockchain"
	"github.com/Gravity-Devs/liquidity/blockchain/base"
	"github.com/Gravity-Devs/liquidity/internal/chaintest"
	"github.com/Gravity-Devs/liquidity/types"
)

func TestPacketsFromResponse(t *testing.T) {
	resp := &types.BroadcastTxResponse{Events: map[string][]string{
		"send_packet.packet_sequence":    {"5", "6"},
		"send_packet.packet_src_port":    {"transfer", "transfer"},
		"send_packet.packet_src_channel": {"channel-0", "channel-1"},
	}}

	packets, err := PacketsFromResponse(resp)
	require.NoError(t, err)
	require.Equal(t, []PacketInfo{
		{Port: "transfer", Channel: "channel-0", Sequence: 5},
		{Port: "transfer", Channel: "channel-1", Sequence: 6},
	}, packets)

	first, err := PacketFromResponse(resp)
	require.NoError(t, err)
	require.Equal(t, uint64(5), first.Sequence)
}

func TestPacketsFromResponseMissing(t *testing.T) {
	_, err := PacketFromResponse(&types.BroadcastTxResponse{})
	require.True(t, errors.Is(err, ErrPacketInfoNotFound))
}

func b64(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

func TestExtractAcknowledgement(t *testing.T) {
	ack := channeltypes.NewResultAcknowledgement([]byte("ok")).Acknowledgement()
	txs := []*abcipb.TxResponse{{
		Events: []*abciv1.Event{
			{Type_: "message", Attributes: []*abciv1.EventAttribute{{Key: "action", Value: "recv_packet"}}},
			{Type_: b64("write_acknowledgement"), Attributes: []*abciv1.EventAttribute{
				{Key: b64("packet_dst_port"), Value: b64("transfer")},
				{Key: b64("packet_dst_channel"), Value: b64("channel-7")},
				{Key: b64("packet_sequence"), Value: b64("5")},
				{Key: b64("packet_ack_hex"), Value: b64(hex.EncodeToString(ack))},
			}},
		},
	}}

	got, err := ExtractAcknowledgement(txs, "transfer", "channel-7", 5)
	require.NoError(t, err)
	require.Equal(t, ack, got)

	result, err := DecodeAcknowledgement(got)
	require.NoError(t, err)
	require.Equal(t, []byte("ok"), result)

	_, err = ExtractAcknowledgement(txs, "transfer", "channel-7", 6)
	require.True(t, errors.Is(err, ErrAckNotFound))
}

func TestDecodeErrorAcknowledgement(t *testing.T) {
	ack := channeltypes.NewErrorAcknowledgement(errors.New("boom")).Acknowledgement()
	_, err := DecodeAcknowledgement(ack)
	require.Error(t, err)
	require.Contains(t, err.Error(), "acknowledgement error")
}

func newChainClient(t *testing.T, chain *chaintest.Chain) *blockchain.Client {
	t.Helper()
	chain.Start(t)
	bc, err := blockchain.New(context.Background(), base.Config{
		GRPCAddr:     chaintest.Addr,
		InsecureGRPC: true,
		Timeout:      time.Second,
	}, blockchain.WithDialOptions(chain.DialOption()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = bc.Close() })
	return bc
}

func writeAckTx(ack []byte) *txtypes.GetTxsEventResponse {
	return &txtypes.GetTxsEventResponse{TxResponses: []*abcipb.TxResponse{{
		Events: []*abciv1.Event{{Type_: "write_acknowledgement", Attributes: []*abciv1.EventAttribute{
			{Key: "packet_dst_port", Value: "transfer"},
			{Key: "packet_dst_channel", Value: "channel-7"},
			{Key: "packet_sequence", Value: "5"},
			{Key: "packet_ack_hex", Value: hex.EncodeToString(ack)},
		}}},
	}}}
}

func TestAwaitAcknowledgement(t *testing.T) {
	ack := channeltypes.NewResultAcknowledgement([]byte("ok")).Acknowledgement()
	chain := chaintest.New()
	chain.TxsEventSteps = []chaintest.TxsEventStep{
		{Resp: &txtypes.GetTxsEventResponse{}},
		{Resp: writeAckTx(ack)},
	}
	bc := newChainClient(t, chain)

	got, err := AwaitAcknowledgement(context.Background(), bc, "transfer", "channel-7", 5,
		AckOptions{PollDelay: time.Millisecond, Retries: 5})
	require.NoError(t, err)
	require.Equal(t, ack, got)

	queries := chain.TxsQueries()
	require.Len(t, queries, 2)
	require.Equal(t, "write_acknowledgement.packet_dst_port='transfer' AND "+
		"write_acknowledgement.packet_dst_channel='channel-7' AND "+
		"write_acknowledgement.packet_sequence='5'", queries[0])
}

func TestAwaitAcknowledgementNotIndexed(t *testing.T) {
	bc := newChainClient(t, chaintest.New())

	_, err := AwaitAcknowledgement(context.Background(), bc, "transfer", "channel-7", 5,
		AckOptions{PollDelay: time.Millisecond, Retries: 3})
	require.True(t, errors.Is(err, ErrAckNotFound))
}

func TestAwaitAcknowledgementQueryError(t *testing.T) {
	chain := chaintest.New()
	chain.TxsEventSteps = []chaintest.TxsEventStep{{Err: status.Error(codes.Unavailable, "node down")}}
	bc := newChainClient(t, chain)

	_, err := AwaitAcknowledgement(context.Background(), bc, "transfer", "channel-7", 5,
		AckOptions{PollDelay: time.Millisecond, Retries: 3})
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrAckNotFound))
	require.Len(t, chain.TxsQueries(), 1)
}

func TestAwaitAcknowledgementCanceled(t *testing.T) {
	bc := newChainClient(t, chaintest.New())
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := AwaitAcknowledgement(ctx, bc, "transfer", "channel-7", 5,
		AckOptions{PollDelay: time.Hour, Retries: 3})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResolveCounterparty(t *testing.T) {
	ch := channeltypes.NewChannel(channeltypes.OPEN, channeltypes.UNORDERED,
		channeltypes.NewCounterparty("transfer", "channel-7"), []string{"connection-0"}, "ics20-1")
	chain := chaintest.New()
	chain.Channels = map[string]*channeltypes.Channel{"transfer/channel-0": &ch}
	bc := newChainClient(t, chain)
	ctx := context.Background()

	port, channel := ResolveCounterparty(ctx, bc.Channel, PacketInfo{Port: "transfer", Channel: "channel-0", Sequence: 5})
	require.Equal(t, "transfer", port)
	require.Equal(t, "channel-7", channel)

	port, channel = ResolveCounterparty(ctx, bc.Channel, PacketInfo{Port: "transfer", Channel: "channel-3", Sequence: 5})
	require.Equal(t, "transfer", port)
	require.Equal(t, "channel-3", channel)
}
