package types

// BroadcastTxResponse is the outcome of a signed and broadcast transaction
// once it has been included in a block.
type BroadcastTxResponse struct {
	Height    int64
	TxHash    string
	Code      uint32
	Codespace string
	RawLog    string
	GasWanted int64
	GasUsed   int64
	// Events are flattened as "<event type>.<attribute key>" -> values.
	Events map[string][]string
}

// IsError reports whether the transaction failed during execution.
func (r BroadcastTxResponse) IsError() bool {
	return r.Code != 0
}

// Event returns the first value recorded for the given event type and attribute.
func (r BroadcastTxResponse) Event(eventType, attrKey string) (string, bool) {
	vals := r.Events[eventType+"."+attrKey]
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}
