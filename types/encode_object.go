package types

import (
	"fmt"

	"google.golang.org/protobuf/types/known/anypb"
)

// Msg is any message that can be serialized in protobuf wire format.
type Msg interface {
	Marshal() ([]byte, error)
}

// EncodeObject pairs a message type URL with the message to include in a tx.
type EncodeObject struct {
	TypeURL string
	Value   Msg
}

// ToAny packs the object into a google.protobuf.Any for a tx body.
func (o EncodeObject) ToAny() (*anypb.Any, error) {
	if o.TypeURL == "" {
		return nil, fmt.Errorf("encode object: empty type url")
	}
	if o.Value == nil {
		return nil, fmt.Errorf("encode object %s: nil value", o.TypeURL)
	}
	bz, err := o.Value.Marshal()
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", o.TypeURL, err)
	}
	return &anypb.Any{TypeUrl: o.TypeURL, Value: bz}, nil
}
