package crypto

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdkbech32 "github.com/cosmos/cosmos-sdk/types/bech32"
)

// KeyPubKey returns the public key stored in kr under keyName.
func KeyPubKey(kr keyring.Keyring, keyName string) (cryptotypes.PubKey, error) {
	if kr == nil {
		return nil, fmt.Errorf("keyring is required")
	}
	if keyName == "" {
		return nil, fmt.Errorf("key name is required")
	}
	rec, err := kr.Key(keyName)
	if err != nil {
		return nil, fmt.Errorf("key %s not found: %w", keyName, err)
	}
	pub, err := rec.GetPubKey()
	if err != nil {
		return nil, fmt.Errorf("get pubkey for %s: %w", keyName, err)
	}
	if pub == nil {
		return nil, fmt.Errorf("nil pubkey for key %s", keyName)
	}
	return pub, nil
}

// AccountAddress encodes the account address of pub with hrp. The global
// sdk.Config prefixes are left untouched.
func AccountAddress(pub cryptotypes.PubKey, hrp string) (string, error) {
	bech, err := sdkbech32.ConvertAndEncode(hrp, pub.Address())
	if err != nil {
		return "", fmt.Errorf("bech32 encode: %w", err)
	}
	return bech, nil
}

// AddressFromKey derives the hrp account address of keyName in kr.
func AddressFromKey(kr keyring.Keyring, keyName, hrp string) (string, error) {
	pub, err := KeyPubKey(kr, keyName)
	if err != nil {
		return "", err
	}
	return AccountAddress(pub, hrp)
}

// ValidateAccountAddress checks that addr is a bech32 account address with
// prefix hrp.
func ValidateAccountAddress(addr, hrp string) error {
	prefix, bz, err := sdkbech32.DecodeAndConvert(addr)
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", addr, err)
	}
	if prefix != hrp {
		return fmt.Errorf("address %q has prefix %q, expected %q", addr, prefix, hrp)
	}
	if len(bz) != 20 && len(bz) != 32 {
		return fmt.Errorf("address %q has unexpected length %d", addr, len(bz))
	}
	return nil
}
