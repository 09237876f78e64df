package wire

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrWireType is returned when a known field arrives with an unexpected wire type.
var ErrWireType = errors.New("unexpected wire type")

// Field is a single decoded field value.
type Field struct {
	Num    protowire.Number
	typ    protowire.Type
	varint uint64
	raw    []byte
}

// Walk calls fn for each varint or length-delimited field in b. Fields of any
// other wire type are skipped, as are fields fn does not recognise.
func Walk(b []byte, fn func(f Field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("consume tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		f := Field{Num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
			}
			f.varint = v
			b = b[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
			}
			f.raw = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("skip field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}

		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

func (f Field) expect(typ protowire.Type) error {
	if f.typ != typ {
		return fmt.Errorf("field %d: %w %d", f.Num, ErrWireType, f.typ)
	}
	return nil
}

// Uint64 returns the varint value of f.
func (f Field) Uint64() (uint64, error) {
	if err := f.expect(protowire.VarintType); err != nil {
		return 0, err
	}
	return f.varint, nil
}

// Uint32 returns the varint value of f truncated to 32 bits, as protobuf does.
func (f Field) Uint32() (uint32, error) {
	v, err := f.Uint64()
	return uint32(v), err
}

// Int64 returns the varint value of f as a signed integer.
func (f Field) Int64() (int64, error) {
	v, err := f.Uint64()
	return int64(v), err
}

// Bool returns the varint value of f as a bool.
func (f Field) Bool() (bool, error) {
	v, err := f.Uint64()
	return protowire.DecodeBool(v), err
}

// Text returns the length-delimited value of f as a string.
func (f Field) Text() (string, error) {
	if err := f.expect(protowire.BytesType); err != nil {
		return "", err
	}
	return string(f.raw), nil
}

// Raw returns a copy of the length-delimited value of f.
func (f Field) Raw() ([]byte, error) {
	if err := f.expect(protowire.BytesType); err != nil {
		return nil, err
	}
	out := make([]byte, len(f.raw))
	copy(out, f.raw)
	return out, nil
}

// Decode unmarshals the length-delimited value of f into m.
func (f Field) Decode(m Unmarshaler) error {
	if err := f.expect(protowire.BytesType); err != nil {
		return err
	}
	if err := m.Unmarshal(f.raw); err != nil {
		return fmt.Errorf("field %d: %w", f.Num, err)
	}
	return nil
}
