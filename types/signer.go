package types

import (
	"context"
	"reflect"

	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
)

// Signer signs transactions offline in SIGN_MODE_DIRECT.
type Signer interface {
	// Address returns the bech32 account address of the signer.
	Address() string
	// PubKey returns the public key placed in the tx auth info.
	PubKey() cryptotypes.PubKey
	// SignDirect signs the serialized SignDoc.
	SignDirect(ctx context.Context, signDoc []byte) ([]byte, error)
}

// IsNilSigner reports whether s is nil, including a nil pointer held in the
// interface.
func IsNilSigner(s Signer) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
