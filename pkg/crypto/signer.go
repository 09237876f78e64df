package crypto

import (
	"context"
	"fmt"

	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	signingtypes "github.com/cosmos/cosmos-sdk/types/tx/signing"

	sdktypes "github.com/Gravity-Devs/liquidity/types"
)

// KeyringSigner signs SIGN_MODE_DIRECT sign docs with a key held in a
// Cosmos keyring.
type KeyringSigner struct {
	kr      keyring.Keyring
	keyName string
	address string
	pubKey  cryptotypes.PubKey
}

var _ sdktypes.Signer = (*KeyringSigner)(nil)

// NewKeyringSigner loads keyName from kr and derives its address for hrp.
func NewKeyringSigner(kr keyring.Keyring, keyName, hrp string) (*KeyringSigner, error) {
	pub, err := KeyPubKey(kr, keyName)
	if err != nil {
		return nil, err
	}
	addr, err := AccountAddress(pub, hrp)
	if err != nil {
		return nil, err
	}
	return &KeyringSigner{kr: kr, keyName: keyName, address: addr, pubKey: pub}, nil
}

// Address returns the bech32 account address.
func (s *KeyringSigner) Address() string { return s.address }

// PubKey returns the account public key.
func (s *KeyringSigner) PubKey() cryptotypes.PubKey { return s.pubKey }

// KeyName returns the keyring entry backing the signer.
func (s *KeyringSigner) KeyName() string { return s.keyName }

// SignDirect signs the serialized SignDoc.
func (s *KeyringSigner) SignDirect(ctx context.Context, signDoc []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sig, _, err := s.kr.Sign(s.keyName, signDoc, signingtypes.SignMode_SIGN_MODE_DIRECT)
	if err != nil {
		return nil, fmt.Errorf("sign with %q: %w", s.keyName, err)
	}
	return sig, nil
}
