package types

import errorsmod "cosmossdk.io/errors"

// Codespace groups the SDK's registered errors.
const Codespace = "sdkgo"

var (
	// ErrMissingWallet is returned when a tx client is created without a signer
	ErrMissingWallet = errorsmod.Register(Codespace, 2, "missing wallet")

	// ErrInvalidConfig is returned when configuration is invalid
	ErrInvalidConfig = errorsmod.Register(Codespace, 3, "invalid configuration")

	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errorsmod.Register(Codespace, 4, "not found")

	// ErrTimeout is returned when an operation times out
	ErrTimeout = errorsmod.Register(Codespace, 5, "operation timed out")

	// ErrInvalidSignature is returned when a signature is invalid
	ErrInvalidSignature = errorsmod.Register(Codespace, 6, "invalid signature")

	// ErrTxFailed is returned when the node rejects a transaction in CheckTx
	ErrTxFailed = errorsmod.Register(Codespace, 7, "tx failed")
)
