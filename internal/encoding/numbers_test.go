package encoding_test

import (
	"math"
	"testing"

	"github.com/chaisql/onecode/internal/encoding"
	"github.com/chaisql/onecode/internal/testutil/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeInteger(t *testing.T) {
	require.Equal(t, "i0e", string(encoding.EncodeInteger(nil, 0)))
	require.Equal(t, "i42e", string(encoding.EncodeInteger(nil, 42)))
	require.Equal(t, "i-1e", string(encoding.EncodeInteger(nil, -1)))
	require.Equal(t, "i255e", string(encoding.EncodeInteger(nil, uint8(255))))
	require.Equal(t, "i-128e", string(encoding.EncodeInteger(nil, int8(-128))))
	require.Equal(t, "i-9223372036854775808e", string(encoding.EncodeInteger(nil, int64(math.MinInt64))))
	require.Equal(t, "i18446744073709551615e", string(encoding.EncodeInteger(nil, uint64(math.MaxUint64))))
}

func TestEncodeFloat(t *testing.T) {
	tests := []struct {
		input   float64
		bitSize int
		want    string
	}{
		{1.5, 64, "i1.5e"},
		{-1.5, 64, "i-1.5e"},
		{1, 64, "i1e"},
		{0.1, 32, "i0.1e"},
		{1e21, 64, "i1000000000000000000000e"},
		{math.NaN(), 64, "iNaNe"},
		{math.Inf(1), 64, "iinfe"},
		{math.Inf(-1), 64, "i-infe"},
	}

	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			require.Equal(t, test.want, string(encoding.EncodeFloat(nil, test.input, test.bitSize)))
		})
	}
}

func TestParseSigned(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"i0e", 0},
		{"i42e", 42},
		{"i-1e", -1},
		{"i-0e", 0},
		{"i007e", 7},
		{"i9223372036854775807e", math.MaxInt64},
		{"i-9223372036854775808e", math.MinInt64},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			c := encoding.NewCursor(test.input)
			x, err := encoding.ParseSigned[int64](c)
			assert.NoError(t, err)
			require.Equal(t, test.want, x)
			require.True(t, c.Done())
		})
	}

	t.Run("narrow types", func(t *testing.T) {
		x, err := encoding.ParseSigned[int8](encoding.NewCursor("i-128e"))
		assert.NoError(t, err)
		require.Equal(t, int8(-128), x)

		_, err = encoding.ParseSigned[int8](encoding.NewCursor("i128e"))
		assert.ErrorIs(t, err, encoding.ErrExpectedInteger)

		_, err = encoding.ParseSigned[int16](encoding.NewCursor("i-32769e"))
		assert.ErrorIs(t, err, encoding.ErrExpectedInteger)
	})
}

func TestParseUnsigned(t *testing.T) {
	x, err := encoding.ParseUnsigned[uint64](encoding.NewCursor("i18446744073709551615e"))
	assert.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), x)

	y, err := encoding.ParseUnsigned[uint32](encoding.NewCursor("i007e"))
	assert.NoError(t, err)
	require.Equal(t, uint32(7), y)

	_, err = encoding.ParseUnsigned[uint8](encoding.NewCursor("i256e"))
	assert.ErrorIs(t, err, encoding.ErrExpectedInteger)
}

func TestParseIntegerErrors(t *testing.T) {
	tests := []struct {
		input    string
		signed   error
		unsigned error
	}{
		{"", encoding.ErrEndOfInput, encoding.ErrEndOfInput},
		{"i", encoding.ErrEndOfInput, encoding.ErrEndOfInput},
		{"i12", encoding.ErrEndOfInput, encoding.ErrEndOfInput},
		{"ie", encoding.ErrExpectedInteger, encoding.ErrExpectedInteger},
		{"i-e", encoding.ErrExpectedInteger, encoding.ErrExpectedInteger},
		{"i-1e", nil, encoding.ErrExpectedInteger},
		{"i--1e", encoding.ErrExpectedInteger, encoding.ErrExpectedInteger},
		{"i1.5e", encoding.ErrExpectedInteger, encoding.ErrExpectedInteger},
		{"1:a", encoding.ErrExpectedInteger, encoding.ErrExpectedInteger},
		{"i9223372036854775808e", encoding.ErrExpectedInteger, nil},
		{"i18446744073709551616e", encoding.ErrExpectedInteger, encoding.ErrExpectedInteger},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := encoding.ParseSigned[int64](encoding.NewCursor(test.input))
			if test.signed == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.signed)
			}

			_, err = encoding.ParseUnsigned[uint64](encoding.NewCursor(test.input))
			if test.unsigned == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.unsigned)
			}
		})
	}
}
