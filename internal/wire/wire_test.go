package wire

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

type inner struct {
	Name string
}

func (m *inner) Marshal() ([]byte, error) {
	var e Encoder
	e.String(1, m.Name)
	return e.Bytes(), nil
}

func (m *inner) Unmarshal(b []byte) error {
	*m = inner{}
	return Walk(b, func(f Field) error {
		if f.Num == 1 {
			v, err := f.Text()
			m.Name = v
			return err
		}
		return nil
	})
}

func TestEncoderSkipsDefaults(t *testing.T) {
	var e Encoder
	e.String(1, "")
	e.Uint64(2, 0)
	e.Int64(3, 0)
	e.Bool(4, false)
	require.Empty(t, e.Bytes())
	require.NotNil(t, e.Bytes())
}

func TestEncoderAlwaysWritesEmbedded(t *testing.T) {
	var e Encoder
	require.NoError(t, e.Embedded(2, &inner{}))
	require.Equal(t, []byte{0x12, 0x00}, e.Bytes())
}

func TestWalkRoundTrip(t *testing.T) {
	var e Encoder
	e.String(1, "pool")
	e.Uint64(2, 300)
	e.Int64(3, -1)
	e.Bool(4, true)
	e.Strings(5, []string{"a", ""})
	require.NoError(t, e.Embedded(6, &inner{Name: "x"}))

	var (
		s       string
		u       uint64
		i       int64
		b       bool
		strs    []string
		nested  inner
		visited []protowire.Number
	)
	err := Walk(e.Bytes(), func(f Field) error {
		visited = append(visited, f.Num)
		var err error
		switch f.Num {
		case 1:
			s, err = f.Text()
		case 2:
			u, err = f.Uint64()
		case 3:
			i, err = f.Int64()
		case 4:
			b, err = f.Bool()
		case 5:
			var v string
			v, err = f.Text()
			strs = append(strs, v)
		case 6:
			err = f.Decode(&nested)
		}
		return err
	})
	require.NoError(t, err)
	require.Equal(t, "pool", s)
	require.Equal(t, uint64(300), u)
	require.Equal(t, int64(-1), i)
	require.True(t, b)
	require.Equal(t, []string{"a", ""}, strs)
	require.Equal(t, "x", nested.Name)
	require.Equal(t, []protowire.Number{1, 2, 3, 4, 5, 5, 6}, visited)
}

func TestWalkSkipsUnknownWireTypes(t *testing.T) {
	b := protowire.AppendTag(nil, 9, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, 42)
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, "kept")

	var got inner
	require.NoError(t, got.Unmarshal(b))
	require.Equal(t, "kept", got.Name)
}

func TestWalkRejectsTruncatedInput(t *testing.T) {
	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	b = append(b, 0x05, 'a')
	require.Error(t, Walk(b, func(Field) error { return nil }))
}

func TestFieldWrongWireType(t *testing.T) {
	var e Encoder
	e.String(1, "x")
	err := Walk(e.Bytes(), func(f Field) error {
		_, err := f.Uint64()
		return err
	})
	require.True(t, errors.Is(err, ErrWireType))
}

func TestObjectAcceptsBothNamings(t *testing.T) {
	obj, err := ParseObject([]byte(`{"pool_id":"7","swapTypeId":1,"executed":"true","msg_height":-3,"name":null}`))
	require.NoError(t, err)

	var (
		poolID   uint64
		swapType uint32
		executed bool
		height   int64
		name     = "unchanged"
	)
	require.NoError(t, obj.Uint64("pool_id", &poolID))
	require.NoError(t, obj.Uint32("swap_type_id", &swapType))
	require.NoError(t, obj.Bool("executed", &executed))
	require.NoError(t, obj.Int64("msg_height", &height))
	require.NoError(t, obj.String("name", &name))

	require.Equal(t, uint64(7), poolID)
	require.Equal(t, uint32(1), swapType)
	require.True(t, executed)
	require.Equal(t, int64(-3), height)
	require.Equal(t, "unchanged", name)
}

func TestCamelCase(t *testing.T) {
	require.Equal(t, "poolCreatorAddress", CamelCase("pool_creator_address"))
	require.Equal(t, "id", CamelCase("id"))
}

func TestParseObjectNull(t *testing.T) {
	obj, err := ParseObject([]byte("null"))
	require.NoError(t, err)
	require.Empty(t, obj)
}
