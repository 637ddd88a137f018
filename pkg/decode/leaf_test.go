package decode

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestU32BE_Value(t *testing.T) {
	t.Parallel()
	v, n, err := Decode[uint32](U32BE(), []byte{0x00, 0x00, 0x01, 0x00})
	require.NoError(t, err)
	assert.Equal(t, uint32(256), v)
	assert.Equal(t, 4, n)
}

func TestU32BE_Insufficient(t *testing.T) {
	t.Parallel()
	v, n, err := Decode[uint32](U32BE(), []byte{0x00, 0x00, 0x01})
	assert.ErrorIs(t, err, ErrInsufficient)
	assert.Equal(t, uint32(0), v)
	assert.Equal(t, 0, n)
}

func TestIntegers_ByteOrder(t *testing.T) {
	t.Parallel()
	data := []byte{0xFF, 0xFE, 0xFD, 0xFC, 0xFB, 0xFA, 0xF9, 0xF8}

	tests := []struct {
		name string
		run  func() (any, error)
		want any
	}{
		{"u16be", func() (any, error) { v, _, err := Decode[uint16](U16BE(), data); return v, err }, uint16(0xFFFE)},
		{"u16le", func() (any, error) { v, _, err := Decode[uint16](U16LE(), data); return v, err }, uint16(0xFEFF)},
		{"u32le", func() (any, error) { v, _, err := Decode[uint32](U32LE(), data); return v, err }, uint32(0xFCFDFEFF)},
		{"u64be", func() (any, error) { v, _, err := Decode[uint64](U64BE(), data); return v, err }, uint64(0xFFFEFDFCFBFAF9F8)},
		{"i16be", func() (any, error) { v, _, err := Decode[int16](I16BE(), data); return v, err }, int16(-2)},
		{"i32be", func() (any, error) { v, _, err := Decode[int32](I32BE(), data); return v, err }, int32(-66052)},
		{"i64le", func() (any, error) { v, _, err := Decode[int64](I64LE(), data); return v, err }, int64(-506097522914230529)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.run()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestU8_AndI8(t *testing.T) {
	t.Parallel()
	c := NewCursor([]byte{0x05, 0xFF})

	u, err := U8().Decode(c)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), u)

	i, err := I8().Decode(c)
	require.NoError(t, err)
	assert.Equal(t, int8(-1), i)

	_, err = U8().Decode(c)
	assert.ErrorIs(t, err, ErrInsufficient)
	assert.Equal(t, 2, c.Offset())
}

func TestBool(t *testing.T) {
	t.Parallel()
	c := NewCursor([]byte{0, 2})
	f, _ := Bool().Decode(c)
	tr, _ := Bool().Decode(c)
	assert.False(t, f)
	assert.True(t, tr)
}

func TestByteArray_LeavesRest(t *testing.T) {
	t.Parallel()
	data := []byte{0xAA, 0xBB, 0xCC}
	c := NewCursor(data)

	v, err := ByteArray(2).Decode(c)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB}, v)
	assert.Equal(t, 1, c.Remaining())

	data[0] = 0x00
	assert.Equal(t, byte(0xAA), v[0], "value must not alias the input")
}

func TestByteArray_ShortAndNegative(t *testing.T) {
	t.Parallel()
	c := NewCursor([]byte{1})
	_, err := ByteArray(2).Decode(c)
	assert.ErrorIs(t, err, ErrInsufficient)
	assert.Equal(t, 0, c.Offset())

	assert.Panics(t, func() { ByteArray(-1) })
	assert.Equal(t, 4, ByteArray(4).Len())
}

func TestUvarint(t *testing.T) {
	t.Parallel()
	buf := binary.AppendUvarint(nil, 300)
	buf = append(buf, 0x01)

	c := NewCursor(buf)
	v, err := Uvarint().Decode(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(300), v)
	assert.Equal(t, 1, c.Remaining())
}

func TestVarint_Negative(t *testing.T) {
	t.Parallel()
	v, n, err := Decode(Varint(), binary.AppendVarint(nil, -12345))
	require.NoError(t, err)
	assert.Equal(t, int64(-12345), v)
	assert.Equal(t, 3, n)
}

func TestUvarint_TruncatedAndOverflow(t *testing.T) {
	t.Parallel()
	c := NewCursor([]byte{0x80, 0x80})
	_, err := Uvarint().Decode(c)
	assert.ErrorIs(t, err, ErrInsufficient)
	assert.Equal(t, 0, c.Offset())

	over := binary.AppendUvarint(nil, math.MaxUint64)
	over[len(over)-1] |= 0x80
	over = append(over, 0x01)
	_, _, err = Decode(Uvarint(), over)
	assert.True(t, errors.Is(err, ErrOverflow))
}

func TestDecodeExact_Trailing(t *testing.T) {
	t.Parallel()
	_, err := DecodeExact[uint8](U8(), []byte{1, 2})
	assert.ErrorIs(t, err, ErrTrailing)

	var te *TrailingError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 1, te.Left)

	v, err := DecodeExact[uint8](U8(), []byte{7})
	require.NoError(t, err)
	assert.Equal(t, uint8(7), v)
}

func TestRun_Result(t *testing.T) {
	t.Parallel()
	ok := Run[uint16](U16BE(), []byte{0, 1, 2}, false)
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, uint16(1), ok.Result())
	assert.Equal(t, 2, ok.Consumed())
	assert.NotEqual(t, ok.Id().String(), "")
	assert.False(t, ok.CreatedAt().IsZero())

	strict := Run[uint16](U16BE(), []byte{0, 1, 2}, true)
	assert.True(t, strict.IsFailure())
	assert.ErrorIs(t, strict.Err(), ErrTrailing)

	short := Run[uint16](U16BE(), []byte{0}, false)
	assert.True(t, short.IsFailure())
	assert.Equal(t, 0, short.Consumed())
}

func TestFunc_Adapter(t *testing.T) {
	t.Parallel()
	var d Decoder[int] = Func[int](func(c *Cursor) (int, error) {
		return c.Remaining(), nil
	})
	v, _, err := Decode(d, []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}
