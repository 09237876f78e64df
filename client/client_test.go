package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/go-bip39"
	"github.com/stretchr/testify/require"

	"github.com/Gravity-Devs/liquidity/blockchain"
	"github.com/Gravity-Devs/liquidity/internal/chaintest"
	"github.com/Gravity-Devs/liquidity/pkg/crypto"
	"github.com/Gravity-Devs/liquidity/types"
)

func testConfig(t *testing.T, chain *chaintest.Chain) Config {
	t.Helper()
	chain.Start(t)

	gw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/cosmos/liquidity/v1beta1/pools/1/batch" {
			_, _ = w.Write([]byte(`{"batch":{"pool_id":"1","index":"2","begin_height":"10","executed":true}}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":5,"message":"not found"}`))
	}))
	t.Cleanup(gw.Close)

	return Config{
		GRPCEndpoint:      chaintest.Addr,
		RESTEndpoint:      gw.URL,
		InsecureGRPC:      true,
		BlockchainTimeout: 2 * time.Second,
		WaitTx: WaitTxConfig{
			PollInterval:          time.Millisecond,
			PollMaxRetries:        5,
			PollBackoffMultiplier: 1,
		},
	}
}

func newKeyring(t *testing.T) keyring.Keyring {
	t.Helper()
	kr, err := crypto.NewKeyring(crypto.KeyringParams{Backend: keyring.BackendTest, Dir: t.TempDir()})
	require.NoError(t, err)
	mnemonic, err := bip39.NewMnemonic(make([]byte, 32))
	require.NoError(t, err)
	_, err = kr.NewAccount("alice", mnemonic, "", sdk.FullFundraiserPath, hd.Secp256k1)
	require.NoError(t, err)
	return kr
}

func TestNewQueryOnly(t *testing.T) {
	chain := chaintest.New()
	cfg := testConfig(t, chain)

	c, err := New(context.Background(), cfg, nil, WithDialOptions(chain.DialOption()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.Nil(t, c.Signer())
	_, err = c.LiquidityTx()
	require.ErrorIs(t, err, types.ErrMissingWallet)
	_, err = c.ChannelTx()
	require.ErrorIs(t, err, types.ErrMissingWallet)

	batch, err := c.Liquidity.PoolBatch(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, batch.Executed)

	_, err = c.Liquidity.Pool(context.Background(), 1)
	require.ErrorIs(t, err, types.ErrNotFound)

	// Defaults are applied by validation.
	require.Equal(t, "stake", c.Config().FeeDenom)
}

func TestNewNilPointerSignerIsQueryOnly(t *testing.T) {
	chain := chaintest.New()
	cfg := testConfig(t, chain)
	var signer *chaintest.Signer

	c, err := New(context.Background(), cfg, nil, WithDialOptions(chain.DialOption()), WithTxSigner(signer))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.Nil(t, c.Signer())
	_, err = c.LiquidityTx()
	require.ErrorIs(t, err, types.ErrMissingWallet)
}

func TestNewWithTxSigner(t *testing.T) {
	chain := chaintest.New()
	cfg := testConfig(t, chain)
	signer := chaintest.NewSigner()

	c, err := New(context.Background(), cfg, nil,
		WithDialOptions(chain.DialOption()),
		WithTxSigner(signer),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ch, err := c.ChannelTx()
	require.NoError(t, err)
	require.Equal(t, signer.Address(), ch.Address())

	resp, err := ch.CloseInit(context.Background(), "transfer", "channel-0", blockchain.SignAndBroadcastOptions{})
	require.NoError(t, err)
	require.Equal(t, int64(42), resp.Height)

	_, body, _ := chain.BroadcastedTx(t, 0)
	require.Equal(t, "/ibc.core.channel.v1.MsgChannelCloseInit", body.Messages[0].TypeUrl)

	lq, err := c.LiquidityTx()
	require.NoError(t, err)
	require.Equal(t, signer.Address(), lq.Address())
}

func TestNewLoadsKeyringSigner(t *testing.T) {
	chain := chaintest.New()
	cfg := testConfig(t, chain)
	kr := newKeyring(t)

	f, err := NewFactory(cfg, kr, WithDialOptions(chain.DialOption()))
	require.NoError(t, err)

	c, err := f.WithSigner(context.Background(), "", "alice")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	require.NotNil(t, c.Signer())
	require.True(t, strings.HasPrefix(c.Signer().Address(), "cosmos1"))

	_, err = f.WithSigner(context.Background(), chaintest.NewSigner().Address(), "alice")
	require.ErrorIs(t, err, types.ErrInvalidConfig)
	require.ErrorContains(t, err, "does not match")

	_, err = f.WithSigner(context.Background(), "cosmos1someoneelse", "alice")
	require.ErrorIs(t, err, types.ErrInvalidConfig)

	_, err = f.WithSigner(context.Background(), "", "missing")
	require.ErrorIs(t, err, types.ErrInvalidConfig)

	q, err := f.QueryOnly(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = q.Close() })
	require.Nil(t, q.Signer())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(context.Background(), Config{}, nil)
	require.ErrorIs(t, err, types.ErrInvalidConfig)

	_, err = New(context.Background(), Config{GRPCEndpoint: "localhost:9090", GasPrice: "cheap"}, nil)
	require.ErrorIs(t, err, types.ErrInvalidConfig)

	_, err = NewFactory(Config{}, nil)
	require.Error(t, err)
}
