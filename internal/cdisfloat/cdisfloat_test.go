package cdisfloat

import (
	"testing"

	"github.com/sw-vish/cdisgw/internal/bitio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEncode_PrefersMostNegativeExponentThatFits(t *testing.T) {
	// x=1.0 fits at the most negative exponent (-4): mantissa 10000.
	f := Encode(ParameterValue, 1.0)
	assert.Equal(t, int64(10000), f.Mantissa)
	assert.Equal(t, int64(-4), f.Exponent)
	assert.InDelta(t, 1.0, f.Value(), 1e-9)

	buf := bitio.NewBitBuffer()
	require.NoError(t, f.Write(buf))
	assert.Equal(t, 18, buf.Cursor())
}

func TestRoundTrip_WireBits(t *testing.T) {
	f := Float{Spec: ParameterValue, Mantissa: 1, Exponent: 1}
	buf := bitio.NewBitBuffer()
	require.NoError(t, f.Write(buf))
	buf.SeekBit(0)
	got, err := Read(buf, ParameterValue)
	require.NoError(t, err)
	assert.Equal(t, f, got)
}

func TestEncode_PicksSmallestExponentThatFits(t *testing.T) {
	f := Encode(ParameterValue, 123.0)
	assert.Equal(t, int64(12300), f.Mantissa)
	assert.Equal(t, int64(-2), f.Exponent)
}

func TestEncode_Decode_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(-1e6, 1e6).Draw(t, "x")
		f := Encode(ParameterValue, x)

		buf := bitio.NewBitBuffer()
		require.NoError(t, f.Write(buf))
		buf.SeekBit(0)
		got, err := Read(buf, ParameterValue)
		require.NoError(t, err)
		assert.Equal(t, f, got)
	})
}
