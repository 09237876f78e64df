package blockchain

import (
	"context"
	"fmt"

	"github.com/cosmos/cosmos-sdk/types/query"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

// ChannelClient provides IBC channel query operations over gRPC.
type ChannelClient struct {
	query channeltypes.QueryClient
}

// Channel retrieves a channel end by port and channel ID.
func (c *ChannelClient) Channel(ctx context.Context, portID, channelID string) (*channeltypes.Channel, error) {
	resp, err := c.query.Channel(ctx, &channeltypes.QueryChannelRequest{
		PortId:    portID,
		ChannelId: channelID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	return resp.Channel, nil
}

// Channels lists channel ends.
func (c *ChannelClient) Channels(ctx context.Context, page *query.PageRequest) (*channeltypes.QueryChannelsResponse, error) {
	resp, err := c.query.Channels(ctx, &channeltypes.QueryChannelsRequest{Pagination: page})
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	return resp, nil
}

// ConnectionChannels lists the channels bound to a connection.
func (c *ChannelClient) ConnectionChannels(ctx context.Context, connectionID string, page *query.PageRequest) (*channeltypes.QueryConnectionChannelsResponse, error) {
	resp, err := c.query.ConnectionChannels(ctx, &channeltypes.QueryConnectionChannelsRequest{
		Connection: connectionID,
		Pagination: page,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list connection channels: %w", err)
	}
	return resp, nil
}

// PacketAcknowledgement retrieves the acknowledgement written for a packet.
func (c *ChannelClient) PacketAcknowledgement(ctx context.Context, portID, channelID string, sequence uint64) ([]byte, error) {
	resp, err := c.query.PacketAcknowledgement(ctx, &channeltypes.QueryPacketAcknowledgementRequest{
		PortId:    portID,
		ChannelId: channelID,
		Sequence:  sequence,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get packet acknowledgement: %w", err)
	}
	return resp.Acknowledgement, nil
}

// NextSequenceReceive returns the next receive sequence of an ordered channel.
func (c *ChannelClient) NextSequenceReceive(ctx context.Context, portID, channelID string) (uint64, error) {
	resp, err := c.query.NextSequenceReceive(ctx, &channeltypes.QueryNextSequenceReceiveRequest{
		PortId:    portID,
		ChannelId: channelID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get next sequence receive: %w", err)
	}
	return resp.NextSequenceReceive, nil
}
