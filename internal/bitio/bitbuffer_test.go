package bitio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestWriteReadUnsigned_KnownWidths(t *testing.T) {
	b := NewBitBuffer()
	require.NoError(t, b.WriteUnsigned(4, 0b1001))
	require.NoError(t, b.WriteUnsigned(8, 0xAB))
	b.SeekBit(0)
	v, err := b.ReadUnsigned(4)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b1001), v)
	v, err = b.ReadUnsigned(8)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xAB), v)
}

func TestWriteReadSigned_Negative(t *testing.T) {
	b := NewBitBuffer()
	require.NoError(t, b.WriteSigned(12, -2048))
	b.SeekBit(0)
	v, err := b.ReadSigned(12)
	require.NoError(t, err)
	assert.Equal(t, int64(-2048), v)
}

func TestReadUnsigned_InsufficientBits(t *testing.T) {
	b := NewBitBufferFromBytes([]byte{0xFF})
	_, err := b.ReadUnsigned(9)
	require.Error(t, err)
}

func TestWriteUnsigned_InsufficientBufferSize(t *testing.T) {
	b := &BitBuffer{bits: make([]byte, 4)}
	err := b.WriteUnsigned(5, 1)
	require.Error(t, err)
}

// Property: writing then reading any value at any width 1..=64 round-trips.
func TestUnsignedRoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(1, 64).Draw(t, "width")
		var max uint64
		if width == 64 {
			max = ^uint64(0)
		} else {
			max = (uint64(1) << uint(width)) - 1
		}
		value := rapid.Uint64Range(0, max).Draw(t, "value")

		b := NewBitBuffer()
		require.NoError(t, b.WriteUnsigned(width, value))
		b.SeekBit(0)
		got, err := b.ReadUnsigned(width)
		require.NoError(t, err)
		assert.Equal(t, value, got)
	})
}

func TestSignedRoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(2, 64).Draw(t, "width")
		min := -(int64(1) << uint(width-1))
		max := (int64(1) << uint(width-1)) - 1
		value := rapid.Int64Range(min, max).Draw(t, "value")

		b := NewBitBuffer()
		require.NoError(t, b.WriteSigned(width, value))
		b.SeekBit(0)
		got, err := b.ReadSigned(width)
		require.NoError(t, err)
		assert.Equal(t, value, got)
	})
}

func TestBytes_PadsFinalByte(t *testing.T) {
	b := NewBitBuffer()
	require.NoError(t, b.WriteUnsigned(4, 0b1000))
	out := b.Bytes(4)
	require.Len(t, out, 1)
	assert.Equal(t, byte(0b1000_0000), out[0])
}
