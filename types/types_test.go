package types

import (
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	errorsmod "cosmossdk.io/errors"
	"github.com/stretchr/testify/require"
)

type rawMsg []byte

func (m rawMsg) Marshal() ([]byte, error) { return m, nil }

type failingMsg struct{}

func (failingMsg) Marshal() ([]byte, error) { return nil, errors.New("boom") }

func TestEncodeObjectToAny(t *testing.T) {
	obj := EncodeObject{TypeURL: "/x.y.Msg", Value: rawMsg{0x0a, 0x01, 'a'}}
	a, err := obj.ToAny()
	require.NoError(t, err)
	require.Equal(t, "/x.y.Msg", a.TypeUrl)
	require.Equal(t, []byte{0x0a, 0x01, 'a'}, a.Value)

	_, err = EncodeObject{Value: rawMsg{}}.ToAny()
	require.Error(t, err)
	_, err = EncodeObject{TypeURL: "/x.y.Msg"}.ToAny()
	require.Error(t, err)
	_, err = EncodeObject{TypeURL: "/x.y.Msg", Value: failingMsg{}}.ToAny()
	require.ErrorContains(t, err, "boom")
}

func TestMissingWalletIsRegistered(t *testing.T) {
	wrapped := errorsmod.Wrap(ErrMissingWallet, "tx client")
	require.True(t, errors.Is(wrapped, ErrMissingWallet))
	require.Equal(t, "missing wallet", ErrMissingWallet.Error())
	require.Equal(t, Codespace, ErrMissingWallet.Codespace())
}

func TestPageRequestApply(t *testing.T) {
	v := url.Values{}
	(&PageRequest{Key: []byte{1, 2}, Offset: 5, Limit: 10, CountTotal: true, Reverse: true}).Apply(v)
	require.Equal(t, "AQI=", v.Get("pagination.key"))
	require.Equal(t, "5", v.Get("pagination.offset"))
	require.Equal(t, "10", v.Get("pagination.limit"))
	require.Equal(t, "true", v.Get("pagination.count_total"))
	require.Equal(t, "true", v.Get("pagination.reverse"))

	empty := url.Values{}
	var nilReq *PageRequest
	nilReq.Apply(empty)
	require.Empty(t, empty)
}

func TestPageResponseJSON(t *testing.T) {
	var p PageResponse
	require.NoError(t, json.Unmarshal([]byte(`{"next_key":"AQI=","total":"12"}`), &p))
	require.Equal(t, []byte{1, 2}, p.NextKey)
	require.Equal(t, uint64(12), p.Total)

	bz, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, `{"next_key":"AQI=","total":"12"}`, string(bz))
}

func TestBroadcastTxResponseEvent(t *testing.T) {
	r := BroadcastTxResponse{Events: map[string][]string{"swap_within_batch.pool_id": {"3"}}}
	v, ok := r.Event("swap_within_batch", "pool_id")
	require.True(t, ok)
	require.Equal(t, "3", v)
	_, ok = r.Event("deposit_within_batch", "pool_id")
	require.False(t, ok)
	require.False(t, r.IsError())
	require.True(t, BroadcastTxResponse{Code: 5}.IsError())
}

type nopSigner struct{ Signer }

func TestIsNilSigner(t *testing.T) {
	var ptr *nopSigner
	require.True(t, IsNilSigner(nil))
	require.True(t, IsNilSigner(ptr))
	require.False(t, IsNilSigner(&nopSigner{}))
	require.False(t, IsNilSigner(nopSigner{}))
}
