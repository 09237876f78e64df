package crypto

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/cosmos/cosmos-sdk/std"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultAppName is the keyring namespace used when none is given.
const DefaultAppName = "liquidity"

// KeyringParams holds configuration for initializing a Cosmos keyring.
type KeyringParams struct {
	// AppName names the keyring namespace. Default: "liquidity"
	AppName string
	// Backend selects the keyring backend ("os" | "file" | "test"). Default: "os"
	Backend string
	// Dir is the root directory for the keyring (if Backend="file"). Default: $HOME/.liquidity
	Dir string
	// Input is an optional io.Reader for interactive backends (nil for non-interactive)
	Input io.Reader
}

// DefaultKeyringParams returns sensible defaults:
//   - AppName: "liquidity"
//   - Backend: "os"
//   - Dir: $HOME/.liquidity
func DefaultKeyringParams() KeyringParams {
	return KeyringParams{
		AppName: DefaultAppName,
		Backend: keyring.BackendOS,
		Dir:     defaultDir(),
		Input:   nil,
	}
}

// NewKeyring creates a new Cosmos keyring with the provided parameters.
func NewKeyring(p KeyringParams) (keyring.Keyring, error) {
	app := p.AppName
	if app == "" {
		app = DefaultAppName
	}
	backend := p.Backend
	if backend == "" {
		backend = keyring.BackendOS
	}
	dir := expandHome(p.Dir)
	if dir == "" {
		dir = defaultDir()
	}
	in := p.Input
	if in == nil {
		in = bufio.NewReader(os.Stdin)
	}

	// Create a proto codec for keyring operations
	reg := codectypes.NewInterfaceRegistry()
	std.RegisterInterfaces(reg)
	cdc := codec.NewProtoCodec(reg)

	return keyring.New(app, backend, dir, in, cdc)
}

// GetKey returns metadata for the named key in the provided keyring.
func GetKey(kr keyring.Keyring, keyName string) (*keyring.Record, error) {
	return kr.Key(keyName)
}

// LoadKeyringFromMnemonic creates a throwaway test-backend keyring, imports
// the mnemonic, and returns the keyring, pubkey bytes, and address for hrp.
func LoadKeyringFromMnemonic(keyName, mnemonicFile, hrp string) (keyring.Keyring, []byte, string, error) {
	if keyName == "" {
		return nil, nil, "", fmt.Errorf("key name is required")
	}
	krDir, err := os.MkdirTemp("", "liquidity-keyring-*")
	if err != nil {
		return nil, nil, "", fmt.Errorf("create keyring dir: %w", err)
	}
	kr, err := NewKeyring(KeyringParams{
		Backend: keyring.BackendTest,
		Dir:     krDir,
		Input:   strings.NewReader(""),
	})
	if err != nil {
		return nil, nil, "", fmt.Errorf("create keyring: %w", err)
	}
	pub, addr, err := ImportKeyFromMnemonic(kr, keyName, mnemonicFile, hrp)
	if err != nil {
		return nil, nil, "", err
	}
	return kr, pub, addr, nil
}

// ImportKeyFromMnemonic imports the mnemonic into an existing keyring (if needed),
// returning the pubkey bytes and address for the provided HRP.
func ImportKeyFromMnemonic(kr keyring.Keyring, keyName, mnemonicFile, hrp string) ([]byte, string, error) {
	if kr == nil {
		return nil, "", fmt.Errorf("keyring is nil")
	}
	if keyName == "" {
		return nil, "", fmt.Errorf("key name is required")
	}
	mnemonic, err := readMnemonicFile(mnemonicFile)
	if err != nil {
		return nil, "", err
	}

	if _, err := kr.Key(keyName); err != nil {
		if _, err := kr.NewAccount(keyName, mnemonic, "", sdk.FullFundraiserPath, hd.Secp256k1); err != nil {
			return nil, "", fmt.Errorf("import key: %w", err)
		}
	}

	pub, err := KeyPubKey(kr, keyName)
	if err != nil {
		return nil, "", err
	}
	addr, err := AccountAddress(pub, hrp)
	if err != nil {
		return nil, "", fmt.Errorf("derive address: %w", err)
	}
	return pub.Bytes(), addr, nil
}

func readMnemonicFile(mnemonicFile string) (string, error) {
	mnemonicRaw, err := os.ReadFile(mnemonicFile)
	if err != nil {
		return "", fmt.Errorf("read mnemonic file: %w", err)
	}
	mnemonic := strings.TrimSpace(string(mnemonicRaw))
	if mnemonic == "" {
		return "", fmt.Errorf("mnemonic file is empty")
	}
	return mnemonic, nil
}

func defaultDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "."+DefaultAppName)
}

func expandHome(dir string) string {
	if strings.HasPrefix(dir, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, dir[2:])
	}
	return dir
}
