// Package cdisfloat implements the C-DIS compressed-float encoding: a signed
// mantissa plus a signed base-10 exponent, used for parameter values (§4.3)
// and similar specializations that share the pattern with different bit
// widths.
package cdisfloat

import (
	"math"

	"github.com/sw-vish/cdisgw/internal/bitio"
)

// Spec names one compressed-float specialization's bit widths, e.g. the
// 15-bit-mantissa/3-bit-exponent parameter value float.
type Spec struct {
	MantissaBits int
	ExponentBits int
}

// ParameterValue is the 15-bit mantissa / 3-bit exponent specialization used
// for EM Emission fundamental parameters (frequency, PRF, pulse width).
var ParameterValue = Spec{MantissaBits: 15, ExponentBits: 3}

// Float is a decoded compressed float: mantissa * 10^exponent.
type Float struct {
	Spec     Spec
	Mantissa int64
	Exponent int64
}

func mantissaRange(bits int) (lo, hi int64) {
	return -(int64(1) << uint(bits-1)), (int64(1) << uint(bits-1)) - 1
}

// Encode picks the smallest exponent e in the signed ExponentBits range such
// that round(x / 10^e) fits the signed MantissaBits range, then returns the
// resulting Float. Saturates to the widest exponent's mantissa range rather
// than wrapping if x is unrepresentable at any exponent.
func Encode(spec Spec, x float64) Float {
	expLo, expHi := mantissaRange(spec.ExponentBits)
	mLo, mHi := mantissaRange(spec.MantissaBits)

	for e := expLo; e <= expHi; e++ {
		scale := math.Pow(10, float64(e))
		m := math.RoundToEven(x / scale)
		if m >= float64(mLo) && m <= float64(mHi) {
			return Float{Spec: spec, Mantissa: int64(m), Exponent: e}
		}
	}

	// Saturate at the widest exponent, clamping the mantissa.
	scale := math.Pow(10, float64(expHi))
	m := math.RoundToEven(x / scale)
	if m < float64(mLo) {
		m = float64(mLo)
	}
	if m > float64(mHi) {
		m = float64(mHi)
	}
	return Float{Spec: spec, Mantissa: int64(m), Exponent: expHi}
}

// Value returns the decoded real value: mantissa * 10^exponent.
func (f Float) Value() float32 {
	return float32(float64(f.Mantissa) * math.Pow(10, float64(f.Exponent)))
}

// Write serializes mantissa then exponent into buf at the cursor.
func (f Float) Write(buf *bitio.BitBuffer) error {
	if err := buf.WriteSigned(f.Spec.MantissaBits, f.Mantissa); err != nil {
		return err
	}
	return buf.WriteSigned(f.Spec.ExponentBits, f.Exponent)
}

// Read reads a compressed float of the given spec from buf at the cursor.
func Read(buf *bitio.BitBuffer, spec Spec) (Float, error) {
	m, err := buf.ReadSigned(spec.MantissaBits)
	if err != nil {
		return Float{}, err
	}
	e, err := buf.ReadSigned(spec.ExponentBits)
	if err != nil {
		return Float{}, err
	}
	return Float{Spec: spec, Mantissa: m, Exponent: e}, nil
}

// BitSize returns the total bits a Float of this spec occupies.
func (s Spec) BitSize() int { return s.MantissaBits + s.ExponentBits }
