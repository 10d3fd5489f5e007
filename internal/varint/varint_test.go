package varint

import (
	"testing"

	"github.com/sw-vish/cdisgw/internal/bitio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestUVINT8_PacksSingleByte(t *testing.T) {
	// UVINT8(1): flag bit 0 (fits in 4 bits), value 0001 -> byte 0b0000_1000.
	v := New(UVINT8, 1)
	buf := bitio.NewBitBuffer()
	require.NoError(t, v.Encode(buf))
	assert.Equal(t, byte(0b0000_1000), buf.Bytes(8)[0])
}

func TestUVINT16_MaxValueUsesWidestBucket(t *testing.T) {
	// UVINT16(32767): flag 0b11, then 16 bits 0x7FFF.
	v := New(UVINT16, 32767)
	assert.Equal(t, 3, v.FlagIndex)
	buf := bitio.NewBitBuffer()
	require.NoError(t, v.Encode(buf))
	flag, err := func() (uint64, error) {
		buf.SeekBit(0)
		return buf.ReadUnsigned(2)
	}()
	require.NoError(t, err)
	assert.Equal(t, uint64(0b11), flag)
	val, err := buf.ReadUnsigned(16)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x7FFF), val)
}

func TestMaxima(t *testing.T) {
	cases := []struct {
		kind Kind
		max  int64
		min  int64
	}{
		{UVINT8, 255, 0},
		{UVINT16, 65535, 0},
		{UVINT32, 1<<32 - 1, 0},
		{SVINT12, 2047, -2048},
	}
	for _, c := range cases {
		v := New(c.kind, c.max)
		buf := bitio.NewBitBuffer()
		require.NoError(t, v.Encode(buf))
		buf.SeekBit(0)
		got, err := Decode(buf, c.kind)
		require.NoError(t, err)
		assert.Equal(t, c.max, got.Value)
	}
}

func TestDecode_UnknownKind(t *testing.T) {
	buf := bitio.NewBitBuffer()
	_, err := Decode(buf, Kind(999))
	require.Error(t, err)
}

// Property: the encoder always picks the smallest legal width; decoding the
// produced wire form with the declared width returns the original value.
func TestRoundTrip_Property(t *testing.T) {
	kinds := []Kind{UVINT8, UVINT16, UVINT32, SVINT12, SVINT13, SVINT14, SVINT16, SVINT24}
	ranges := map[Kind][2]int64{
		UVINT8:  {0, 255},
		UVINT16: {0, 65535},
		UVINT32: {0, 1<<32 - 1},
		SVINT12: {-2048, 2047},
		SVINT13: {-4096, 4095},
		SVINT14: {-8192, 8191},
		SVINT16: {-32768, 32767},
		SVINT24: {-(1 << 23), 1<<23 - 1},
	}

	rapid.Check(t, func(t *rapid.T) {
		kind := kinds[rapid.IntRange(0, len(kinds)-1).Draw(t, "kind")]
		r := ranges[kind]
		value := rapid.Int64Range(r[0], r[1]).Draw(t, "value")

		v := New(kind, value)
		buf := bitio.NewBitBuffer()
		require.NoError(t, v.Encode(buf))
		buf.SeekBit(0)
		got, err := Decode(buf, kind)
		require.NoError(t, err)
		assert.Equal(t, value, got.Value)
		assert.Equal(t, v.FlagIndex, got.FlagIndex)
	})
}

// Property: two VarInts with the same value serialize identically.
func TestMinimality_SameValueSameEncoding(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.Int64Range(0, 65535).Draw(t, "value")
		a := New(UVINT16, value)
		b := New(UVINT16, value)

		bufA := bitio.NewBitBuffer()
		bufB := bitio.NewBitBuffer()
		require.NoError(t, a.Encode(bufA))
		require.NoError(t, b.Encode(bufB))
		assert.Equal(t, bufA.Bytes(a.BitSize()), bufB.Bytes(b.BitSize()))
	})
}
