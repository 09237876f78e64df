package channel

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	gogoproto "github.com/cosmos/gogoproto/proto"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	"github.com/Gravity-Devs/liquidity/rest"
	"github.com/Gravity-Devs/liquidity/types"
)

const basePath = "/ibc/core/channel/v1"

// QueryClientOptions configure a REST query client.
type QueryClientOptions = rest.Options

// QueryClient reads channel state from the REST gateway.
type QueryClient struct {
	rest *rest.Client
}

// NewQueryClient creates a channel query client for opts.Addr.
func NewQueryClient(opts QueryClientOptions) (*QueryClient, error) {
	c, err := rest.New(opts)
	if err != nil {
		return nil, err
	}
	return &QueryClient{rest: c}, nil
}

// NewQueryClientFrom shares an existing REST client.
func NewQueryClientFrom(c *rest.Client) *QueryClient {
	return &QueryClient{rest: c}
}

func (q *QueryClient) get(ctx context.Context, path string, page *types.PageRequest, out gogoproto.Message) error {
	body, err := q.rest.Get(ctx, path, rest.Params(page))
	if err != nil {
		return err
	}
	if err := UnmarshalJSON(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func channelPath(portID, channelID string) string {
	return fmt.Sprintf("%s/channels/%s/ports/%s", basePath, rest.PathEscape(channelID), rest.PathEscape(portID))
}

func joinSequences(seqs []uint64) string {
	parts := make([]string, len(seqs))
	for i, s := range seqs {
		parts[i] = strconv.FormatUint(s, 10)
	}
	return strings.Join(parts, ",")
}

// Channels lists all channel ends.
func (q *QueryClient) Channels(ctx context.Context, page *types.PageRequest) (*channeltypes.QueryChannelsResponse, error) {
	var out channeltypes.QueryChannelsResponse
	if err := q.get(ctx, basePath+"/channels", page, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Channel returns a single channel end.
func (q *QueryClient) Channel(ctx context.Context, portID, channelID string) (*channeltypes.QueryChannelResponse, error) {
	var out channeltypes.QueryChannelResponse
	if err := q.get(ctx, channelPath(portID, channelID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConnectionChannels lists the channels bound to a connection.
func (q *QueryClient) ConnectionChannels(ctx context.Context, connectionID string, page *types.PageRequest) (*channeltypes.QueryConnectionChannelsResponse, error) {
	var out channeltypes.QueryConnectionChannelsResponse
	path := fmt.Sprintf("%s/connections/%s/channels", basePath, rest.PathEscape(connectionID))
	if err := q.get(ctx, path, page, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PacketCommitments lists the packet commitments of a channel.
func (q *QueryClient) PacketCommitments(ctx context.Context, portID, channelID string, page *types.PageRequest) (*channeltypes.QueryPacketCommitmentsResponse, error) {
	var out channeltypes.QueryPacketCommitmentsResponse
	if err := q.get(ctx, channelPath(portID, channelID)+"/packet_commitments", page, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PacketCommitment returns the commitment stored for one packet.
func (q *QueryClient) PacketCommitment(ctx context.Context, portID, channelID string, sequence uint64) (*channeltypes.QueryPacketCommitmentResponse, error) {
	var out channeltypes.QueryPacketCommitmentResponse
	path := fmt.Sprintf("%s/packet_commitments/%d", channelPath(portID, channelID), sequence)
	if err := q.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PacketReceipt reports whether a packet was received.
func (q *QueryClient) PacketReceipt(ctx context.Context, portID, channelID string, sequence uint64) (*channeltypes.QueryPacketReceiptResponse, error) {
	var out channeltypes.QueryPacketReceiptResponse
	path := fmt.Sprintf("%s/packet_receipts/%d", channelPath(portID, channelID), sequence)
	if err := q.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PacketAcknowledgement returns the acknowledgement written for a packet.
func (q *QueryClient) PacketAcknowledgement(ctx context.Context, portID, channelID string, sequence uint64) (*channeltypes.QueryPacketAcknowledgementResponse, error) {
	var out channeltypes.QueryPacketAcknowledgementResponse
	path := fmt.Sprintf("%s/packet_acks/%d", channelPath(portID, channelID), sequence)
	if err := q.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UnreceivedPackets filters commitment sequences down to those not yet received.
func (q *QueryClient) UnreceivedPackets(ctx context.Context, portID, channelID string, commitmentSeqs []uint64) (*channeltypes.QueryUnreceivedPacketsResponse, error) {
	var out channeltypes.QueryUnreceivedPacketsResponse
	path := fmt.Sprintf("%s/packet_commitments/%s/unreceived_packets", channelPath(portID, channelID), joinSequences(commitmentSeqs))
	if err := q.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UnreceivedAcks filters ack sequences down to those not yet relayed back.
func (q *QueryClient) UnreceivedAcks(ctx context.Context, portID, channelID string, ackSeqs []uint64) (*channeltypes.QueryUnreceivedAcksResponse, error) {
	var out channeltypes.QueryUnreceivedAcksResponse
	path := fmt.Sprintf("%s/packet_commitments/%s/unreceived_acks", channelPath(portID, channelID), joinSequences(ackSeqs))
	if err := q.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NextSequenceReceive returns the next receive sequence of a channel.
func (q *QueryClient) NextSequenceReceive(ctx context.Context, portID, channelID string) (*channeltypes.QueryNextSequenceReceiveResponse, error) {
	var out channeltypes.QueryNextSequenceReceiveResponse
	if err := q.get(ctx, channelPath(portID, channelID)+"/next_sequence", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
