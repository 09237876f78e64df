// Package wire holds the protobuf and JSON field helpers used by the
// hand-maintained liquidity message codecs. Output layout follows gogoproto:
// fields in ascending order, proto3 scalar defaults omitted, non-nullable
// embedded messages always written.
package wire

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Marshaler is implemented by every message that can be embedded.
type Marshaler interface {
	Marshal() ([]byte, error)
}

// Unmarshaler is implemented by every message that can be decoded from a field.
type Unmarshaler interface {
	Unmarshal([]byte) error
}

// Encoder appends protobuf fields to an internal buffer.
type Encoder struct {
	buf []byte
}

// String writes a length-delimited string field, skipping the empty string.
func (e *Encoder) String(num protowire.Number, v string) {
	if v == "" {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendString(e.buf, v)
}

// Strings writes one field per element, including empty elements.
func (e *Encoder) Strings(num protowire.Number, vs []string) {
	for _, v := range vs {
		e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
		e.buf = protowire.AppendString(e.buf, v)
	}
}

// Uint64 writes a varint field, skipping zero.
func (e *Encoder) Uint64(num protowire.Number, v uint64) {
	if v == 0 {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, v)
}

// Uint32 writes a varint field, skipping zero.
func (e *Encoder) Uint32(num protowire.Number, v uint32) {
	e.Uint64(num, uint64(v))
}

// Int64 writes a varint field using two's complement for negatives, skipping zero.
func (e *Encoder) Int64(num protowire.Number, v int64) {
	e.Uint64(num, uint64(v))
}

// Bool writes a varint field only when v is true.
func (e *Encoder) Bool(num protowire.Number, v bool) {
	if !v {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, protowire.EncodeBool(v))
}

// Embedded always writes m as a length-delimited field, even when it encodes
// to zero bytes. This is the gogoproto layout for nullable=false fields.
func (e *Encoder) Embedded(num protowire.Number, m Marshaler) error {
	bz, err := m.Marshal()
	if err != nil {
		return fmt.Errorf("marshal field %d: %w", num, err)
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, bz)
	return nil
}

// Bytes returns the encoded message. An empty message returns a non-nil,
// zero-length slice.
func (e *Encoder) Bytes() []byte {
	if e.buf == nil {
		return []byte{}
	}
	return e.buf
}
