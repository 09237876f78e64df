package blockchain

import (
	"context"

	"github.com/Gravity-Devs/liquidity/blockchain/base"
	"github.com/Gravity-Devs/liquidity/types"
)

// TxClientOptions configure a standalone tx client.
type TxClientOptions struct {
	// Addr is the gRPC endpoint; it overrides Config.GRPCAddr when set.
	Addr    string
	Config  base.Config
	Options []Option
}

// TxClient signs and broadcasts messages for a single signer.
type TxClient struct {
	client *Client
	signer types.Signer
	owned  bool
}

// NewTxClient dials a new connection for signer. It returns ErrMissingWallet
// when signer is nil or a nil pointer.
func NewTxClient(ctx context.Context, signer types.Signer, opts TxClientOptions) (*TxClient, error) {
	if types.IsNilSigner(signer) {
		return nil, types.ErrMissingWallet
	}
	cfg := opts.Config
	if opts.Addr != "" {
		cfg.GRPCAddr = opts.Addr
	}
	c, err := New(ctx, cfg, opts.Options...)
	if err != nil {
		return nil, err
	}
	return &TxClient{client: c, signer: signer, owned: true}, nil
}

// TxClient returns a tx client for signer sharing c's connection.
func (c *Client) TxClient(signer types.Signer) (*TxClient, error) {
	if types.IsNilSigner(signer) {
		return nil, types.ErrMissingWallet
	}
	return &TxClient{client: c, signer: signer}, nil
}

// Address returns the signer address.
func (t *TxClient) Address() string {
	return t.signer.Address()
}

// Client exposes the underlying blockchain client.
func (t *TxClient) Client() *Client {
	return t.client
}

// SignAndBroadcast signs msgs with the client's signer and waits for inclusion.
func (t *TxClient) SignAndBroadcast(ctx context.Context, msgs []types.EncodeObject, opts SignAndBroadcastOptions) (*types.BroadcastTxResponse, error) {
	return t.client.SignAndBroadcast(ctx, t.signer, msgs, opts)
}

// Close releases the connection when the tx client dialed it itself.
func (t *TxClient) Close() error {
	if t == nil || !t.owned {
		return nil
	}
	return t.client.Close()
}
