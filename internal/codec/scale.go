// Package codec implements the value-preserving conversion between DIS
// (package dis) and C-DIS (package cdis) PDU values: unit scaling, range
// quantization with saturation, and presence-flag derivation. It never
// touches wire bytes directly — those are package dis's and package cdis's
// job; codec only walks already-parsed structures.
package codec

import (
	"math"

	"github.com/sw-vish/cdisgw/internal/cdis"
)

// roundHalfEven rounds x to the nearest integer, ties to even, matching the
// DIS->C-DIS quantization rule.
func roundHalfEven(x float64) int64 {
	return int64(math.RoundToEven(x))
}

// saturate clamps v to the inclusive [lo, hi] range rather than wrapping.
func saturate(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// quantizeSigned converts x by scale, rounds half-to-even, and saturates to
// a signed range of bits width. Used for fields with a fixed bit width that
// isn't backed by a VarInt (WorldCoordinates, Orientation).
func quantizeSigned(x, scale float64, bits int) int64 {
	lo := -(int64(1) << uint(bits-1))
	hi := (int64(1) << uint(bits-1)) - 1
	return saturate(roundHalfEven(x*scale), lo, hi)
}

// normalizeAngle range-reduces an angle in radians to (-pi, pi], per spec's
// requirement that angles be reduced before scaling (unreduced angles wrap
// ambiguously at the quantization boundary).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	}
	if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// Local aliases onto cdis's constants module, so this package's Encode/Decode
// pairs read the exact symbols the wire codec itself uses.
const (
	linearVelocityScale     = cdis.MetersToDecimeters
	linearAccelerationScale = cdis.MetersToDecimeters
	linearAccelerationSat   = cdis.LinearAccelerationSaturation
	angularVelocityScale    = cdis.AngularVelocityScale
	orientationScale        = cdis.OrientationScale
	centimetersPerMeter     = cdis.CentimetersPerMeter
	cdisTimeUnitsPerHour    = cdis.CdisTimeUnitsPerHour
	disTimeUnitsPerHour     = cdis.DisTimeUnitsPerHour
)
