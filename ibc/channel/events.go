package channel

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	abcipb "cosmossdk.io/api/cosmos/base/abci/v1beta1"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	"github.com/Gravity-Devs/liquidity/blockchain"
	waittx "github.com/Gravity-Devs/liquidity/internal/wait-tx"
	"github.com/Gravity-Devs/liquidity/types"
)

const (
	eventSendPacket = "send_packet"
	eventWriteAck   = "write_acknowledgement"

	defaultAckPollDelay = 2 * time.Second
	defaultAckRetries   = 120
)

// ErrAckNotFound is returned when no acknowledgement event is present for the packet.
var ErrAckNotFound = errors.New("acknowledgement event not found")

// ErrPacketInfoNotFound is returned when no send_packet event is found in a tx.
var ErrPacketInfoNotFound = errors.New("send_packet event not found")

// PacketInfo captures the packet identifiers needed to query acknowledgements.
type PacketInfo struct {
	Port     string
	Channel  string
	Sequence uint64
}

// PacketsFromResponse returns every packet sent by a committed tx, in event order.
func PacketsFromResponse(resp *types.BroadcastTxResponse) ([]PacketInfo, error) {
	if resp == nil {
		return nil, fmt.Errorf("nil tx response")
	}
	seqs := resp.Events[eventSendPacket+".packet_sequence"]
	ports := resp.Events[eventSendPacket+".packet_src_port"]
	channels := resp.Events[eventSendPacket+".packet_src_channel"]
	if len(seqs) == 0 || len(seqs) != len(ports) || len(seqs) != len(channels) {
		return nil, ErrPacketInfoNotFound
	}
	out := make([]PacketInfo, 0, len(seqs))
	for i := range seqs {
		seq, err := strconv.ParseUint(strings.TrimSpace(seqs[i]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("packet_sequence %q: %w", seqs[i], err)
		}
		out = append(out, PacketInfo{Port: ports[i], Channel: channels[i], Sequence: seq})
	}
	return out, nil
}

// PacketFromResponse returns the first packet sent by a committed tx.
func PacketFromResponse(resp *types.BroadcastTxResponse) (PacketInfo, error) {
	packets, err := PacketsFromResponse(resp)
	if err != nil {
		return PacketInfo{}, err
	}
	return packets[0], nil
}

// ResolveCounterparty maps a sent packet to the port and channel it is
// received on, falling back to the source identifiers when the channel
// cannot be read.
func ResolveCounterparty(ctx context.Context, src *blockchain.ChannelClient, info PacketInfo) (string, string) {
	port, channel := info.Port, info.Channel
	ch, err := src.Channel(ctx, info.Port, info.Channel)
	if err != nil || ch == nil {
		return port, channel
	}
	if ch.Counterparty.PortId != "" {
		port = ch.Counterparty.PortId
	}
	if ch.Counterparty.ChannelId != "" {
		channel = ch.Counterparty.ChannelId
	}
	return port, channel
}

// AckOptions tune AwaitAcknowledgement.
type AckOptions struct {
	PollDelay time.Duration
	Retries   int
}

// AwaitAcknowledgement polls dst, the receiving chain, until a
// write_acknowledgement event for the packet is indexed and returns the raw
// acknowledgement bytes.
func AwaitAcknowledgement(ctx context.Context, dst *blockchain.Client, port, channel string, sequence uint64, opts AckOptions) ([]byte, error) {
	if opts.PollDelay <= 0 {
		opts.PollDelay = defaultAckPollDelay
	}
	if opts.Retries <= 0 {
		opts.Retries = defaultAckRetries
	}
	events := []string{
		fmt.Sprintf("%s.packet_dst_port='%s'", eventWriteAck, port),
		fmt.Sprintf("%s.packet_dst_channel='%s'", eventWriteAck, channel),
		fmt.Sprintf("%s.packet_sequence='%d'", eventWriteAck, sequence),
	}

	var lastErr error
	for i := 0; i < opts.Retries; i++ {
		resp, err := dst.GetTxsByEvents(ctx, events, 1, 5)
		if err == nil {
			ack, ackErr := ExtractAcknowledgement(resp.GetTxResponses(), port, channel, sequence)
			if ackErr == nil {
				return ack, nil
			}
			err = ackErr
		}
		lastErr = err
		if !errors.Is(err, ErrAckNotFound) {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(opts.PollDelay):
		}
	}
	return nil, fmt.Errorf("acknowledgement not found for %s/%s/%d: %w", port, channel, sequence, lastErr)
}

// ExtractAcknowledgement finds the acknowledgement written for a packet in
// the events of txs.
func ExtractAcknowledgement(txs []*abcipb.TxResponse, port, channel string, sequence uint64) ([]byte, error) {
	seqStr := strconv.FormatUint(sequence, 10)
	for _, tx := range txs {
		for _, evt := range tx.GetEvents() {
			if strings.TrimSpace(waittx.DecodeEventValue(evt.GetType_())) != eventWriteAck {
				continue
			}
			attr := make(map[string]string)
			for _, a := range evt.GetAttributes() {
				key := strings.TrimSpace(waittx.DecodeEventValue(a.GetKey()))
				if key != "" {
					attr[key] = strings.TrimSpace(waittx.DecodeEventValue(a.GetValue()))
				}
			}
			if attr["packet_dst_port"] != port ||
				attr["packet_dst_channel"] != channel ||
				attr["packet_sequence"] != seqStr {
				continue
			}
			if ackHex := attr["packet_ack_hex"]; ackHex != "" {
				ack, err := hex.DecodeString(ackHex)
				if err != nil {
					return nil, fmt.Errorf("decode acknowledgement hex: %w", err)
				}
				return ack, nil
			}
			if ackB64 := attr["packet_ack"]; ackB64 != "" {
				ack, err := base64.StdEncoding.DecodeString(ackB64)
				if err != nil {
					return []byte(ackB64), nil
				}
				return ack, nil
			}
		}
	}
	return nil, ErrAckNotFound
}

// DecodeAcknowledgement parses a standard channel acknowledgement, returning
// its result bytes or the error it carries.
func DecodeAcknowledgement(ack []byte) ([]byte, error) {
	var out channeltypes.Acknowledgement
	if err := UnmarshalJSON(ack, &out); err != nil {
		return nil, fmt.Errorf("decode acknowledgement: %w", err)
	}
	if !out.Success() {
		return nil, fmt.Errorf("acknowledgement error: %s", out.GetError())
	}
	return out.GetResult(), nil
}
