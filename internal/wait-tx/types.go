package waittx

import (
	"context"
	"time"
)

// Result is the final state of a transaction observed by a Source.
type Result struct {
	TxHash    string
	Height    int64
	Code      uint32
	Codespace string
	RawLog    string
	GasWanted int64
	GasUsed   int64
	// Events are flattened as "<event type>.<attribute key>" -> values.
	Events map[string][]string
}

// Source abstracts a tx wait mechanism (poller, subscriber, etc).
type Source interface {
	Wait(ctx context.Context, txHash string) (Result, error)
}

// Backoff controls polling cadence.
type Backoff interface {
	Next(attempt int) time.Duration
}
