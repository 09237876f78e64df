// Package chaintest runs an in-process gRPC node exposing the auth, tx,
// tendermint and IBC channel query services used by the clients.
package chaintest

import (
	"context"
	"net"
	"sync"
	"testing"

	authv1beta1 "cosmossdk.io/api/cosmos/auth/v1beta1"
	abcipb "cosmossdk.io/api/cosmos/base/abci/v1beta1"
	cmtservice "cosmossdk.io/api/cosmos/base/tendermint/v1beta1"
	txtypes "cosmossdk.io/api/cosmos/tx/v1beta1"
	p2pv1 "cosmossdk.io/api/tendermint/p2p"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

// Addr is the target to dial together with Chain.DialOption.
const Addr = "passthrough:///bufnet"

// GetTxStep is one scripted answer of GetTx.
type GetTxStep struct {
	Resp *txtypes.GetTxResponse
	Err  error
}

// TxsEventStep is one scripted answer of GetTxsEvent.
type TxsEventStep struct {
	Resp *txtypes.GetTxsEventResponse
	Err  error
}

// Chain is a scripted node. Exported fields may be changed before the first
// call is made.
type Chain struct {
	authv1beta1.UnimplementedQueryServer
	txtypes.UnimplementedServiceServer
	cmtservice.UnimplementedServiceServer

	AccountNumber uint64
	Sequence      uint64
	Network       string
	GasUsed       uint64
	SimulateErr   error
	CheckTxCode   uint32
	GetTxSteps    []GetTxStep
	// TxsEventSteps answer GetTxsEvent in order, repeating the last one.
	// With none, every search comes back empty.
	TxsEventSteps []TxsEventStep
	// Channels holds the channel ends served by the channel query service,
	// keyed by "port/channel".
	Channels map[string]*channeltypes.Channel

	mu          sync.Mutex
	simulated   [][]byte
	broadcasted [][]byte
	getTxCalls  int
	txsQueries  []string

	lis *bufconn.Listener
}

// New returns a chain that accepts every tx and reports it committed at
// height 42 on the second GetTx.
func New() *Chain {
	return &Chain{
		AccountNumber: 7,
		Sequence:      3,
		Network:       "liquidity-testnet",
		GasUsed:       100000,
		GetTxSteps: []GetTxStep{
			{Err: status.Error(codes.NotFound, "not indexed yet")},
			{Resp: &txtypes.GetTxResponse{TxResponse: &abcipb.TxResponse{
				Txhash:    "ABCD",
				Height:    42,
				GasWanted: 130000,
				GasUsed:   98000,
			}}},
		},
	}
}

// Start serves c over bufconn until the test ends.
func (c *Chain) Start(t *testing.T) {
	t.Helper()
	c.lis = bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	authv1beta1.RegisterQueryServer(srv, c)
	txtypes.RegisterServiceServer(srv, c)
	cmtservice.RegisterServiceServer(srv, c)
	channeltypes.RegisterQueryServer(srv, &channelService{chain: c})
	go func() {
		_ = srv.Serve(c.lis)
	}()
	t.Cleanup(func() {
		srv.Stop()
		_ = c.lis.Close()
	})
}

// DialOption routes connections to the in-process server.
func (c *Chain) DialOption() grpc.DialOption {
	return grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
		return c.lis.Dial()
	})
}

func (c *Chain) Account(_ context.Context, req *authv1beta1.QueryAccountRequest) (*authv1beta1.QueryAccountResponse, error) {
	acc, err := anypb.New(&authv1beta1.BaseAccount{
		Address:       req.Address,
		AccountNumber: c.AccountNumber,
		Sequence:      c.Sequence,
	})
	if err != nil {
		return nil, err
	}
	return &authv1beta1.QueryAccountResponse{Account: acc}, nil
}

func (c *Chain) GetNodeInfo(context.Context, *cmtservice.GetNodeInfoRequest) (*cmtservice.GetNodeInfoResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &cmtservice.GetNodeInfoResponse{DefaultNodeInfo: &p2pv1.DefaultNodeInfo{Network: c.Network}}, nil
}

func (c *Chain) Simulate(_ context.Context, req *txtypes.SimulateRequest) (*txtypes.SimulateResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.simulated = append(c.simulated, req.TxBytes)
	if c.SimulateErr != nil {
		return nil, c.SimulateErr
	}
	return &txtypes.SimulateResponse{GasInfo: &abcipb.GasInfo{GasUsed: c.GasUsed}}, nil
}

func (c *Chain) BroadcastTx(_ context.Context, req *txtypes.BroadcastTxRequest) (*txtypes.BroadcastTxResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.broadcasted = append(c.broadcasted, req.TxBytes)
	return &txtypes.BroadcastTxResponse{TxResponse: &abcipb.TxResponse{
		Txhash: "ABCD",
		Code:   c.CheckTxCode,
		RawLog: "insufficient fees",
	}}, nil
}

func (c *Chain) GetTx(context.Context, *txtypes.GetTxRequest) (*txtypes.GetTxResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.getTxCalls
	if idx >= len(c.GetTxSteps) {
		idx = len(c.GetTxSteps) - 1
	}
	c.getTxCalls++
	step := c.GetTxSteps[idx]
	return step.Resp, step.Err
}

func (c *Chain) GetTxsEvent(_ context.Context, req *txtypes.GetTxsEventRequest) (*txtypes.GetTxsEventResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := len(c.txsQueries)
	c.txsQueries = append(c.txsQueries, req.Query)
	if len(c.TxsEventSteps) == 0 {
		return &txtypes.GetTxsEventResponse{}, nil
	}
	if idx >= len(c.TxsEventSteps) {
		idx = len(c.TxsEventSteps) - 1
	}
	step := c.TxsEventSteps[idx]
	return step.Resp, step.Err
}

// TxsQueries returns the event queries received by GetTxsEvent.
func (c *Chain) TxsQueries() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.txsQueries...)
}

type channelService struct {
	channeltypes.UnimplementedQueryServer
	chain *Chain
}

func (s channelService) Channel(_ context.Context, req *channeltypes.QueryChannelRequest) (*channeltypes.QueryChannelResponse, error) {
	s.chain.mu.Lock()
	defer s.chain.mu.Unlock()
	ch, ok := s.chain.Channels[req.PortId+"/"+req.ChannelId]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "channel %s/%s not found", req.PortId, req.ChannelId)
	}
	return &channeltypes.QueryChannelResponse{Channel: ch}, nil
}

// SetNetwork changes the chain ID reported by GetNodeInfo.
func (c *Chain) SetNetwork(network string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Network = network
}

// Counts reports how many simulate, broadcast and get-tx calls were served.
func (c *Chain) Counts() (sims, broadcasts, getTxs int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.simulated), len(c.broadcasted), c.getTxCalls
}

// Simulated returns the tx bytes of simulation i.
func (c *Chain) Simulated(i int) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.simulated[i]
}

// Broadcasted returns the tx bytes of broadcast i.
func (c *Chain) Broadcasted(i int) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.broadcasted[i]
}

// BroadcastedTx decodes broadcast i into its body and auth info.
func (c *Chain) BroadcastedTx(t *testing.T, i int) (*txtypes.TxRaw, *txtypes.TxBody, *txtypes.AuthInfo) {
	t.Helper()
	var raw txtypes.TxRaw
	var body txtypes.TxBody
	var authInfo txtypes.AuthInfo
	if err := proto.Unmarshal(c.Broadcasted(i), &raw); err != nil {
		t.Fatalf("decode tx raw: %v", err)
	}
	if err := proto.Unmarshal(raw.BodyBytes, &body); err != nil {
		t.Fatalf("decode tx body: %v", err)
	}
	if err := proto.Unmarshal(raw.AuthInfoBytes, &authInfo); err != nil {
		t.Fatalf("decode auth info: %v", err)
	}
	return &raw, &body, &authInfo
}

// Signer is an in-memory secp256k1 signer.
type Signer struct {
	priv *secp256k1.PrivKey
}

// NewSigner generates a fresh key.
func NewSigner() *Signer {
	return &Signer{priv: secp256k1.GenPrivKey()}
}

func (s *Signer) Address() string { return sdk.AccAddress(s.priv.PubKey().Address()).String() }

func (s *Signer) PubKey() cryptotypes.PubKey { return s.priv.PubKey() }

func (s *Signer) SignDirect(_ context.Context, signDoc []byte) ([]byte, error) {
	return s.priv.Sign(signDoc)
}
