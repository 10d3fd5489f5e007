// Package cdis implements the C-DIS wire-level structures: the header,
// shared records, and the PDU body codecs for every C-DIS-supported PDU
// family, plus the top-level dispatcher that parses/serializes a C-DIS
// datagram. Grounded on cdis-assemble/src/constants.rs, lib.rs, and the
// per-family model/parser/writer modules in the original source.
package cdis

const (
	OneBit      = 1
	TwoBits     = 2
	ThreeBits   = 3
	FourBits    = 4
	FiveBits    = 5
	SixBits     = 6
	EightBits   = 8
	NineBits    = 9
	TenBits     = 10
	TwelveBits  = 12
	ThirteenBits = 13
	FourteenBits = 14
	SixteenBits = 16
	TwentySixBits = 26

	// ProtocolVersion is the constant C-DIS protocol version, SISO-023-2023.
	ProtocolVersion = 1

	// MTUBytes/MTUBits bound the largest serialized PDU.
	MTUBytes = 1400
	MTUBits  = MTUBytes * 8

	// HeaderFixedBits is the header's fixed-width portion: 2 (version) + 8
	// (pdu type) + 26 (timestamp) + 14 (length) + 8 (status) = 58 bits. The
	// exercise id is a UVINT8 and is variable width, added on top.
	HeaderFixedBits = 2 + 8 + 26 + 14 + 8

	// MetersToDecimeters/CentimetersPerMeter are unit-scaling factors used
	// throughout the record codec.
	MetersToDecimeters  = 10.0
	CentimetersPerMeter = 100.0

	// RadiansPerSecToDegreesPerSec converts angular velocity units.
	RadiansPerSecToDegreesPerSec = 180.0 / 3.14159265358979323846

	// AngularVelocityScale maps DIS rad/s directly onto the SVINT12 field so
	// that +/-4*pi rad/s (+/-720 deg/s) spans the full +/-2047 extremes.
	AngularVelocityScale = 2047.0 / (4 * 3.14159265358979323846)

	// OrientationScale maps a range-reduced (-pi, pi] radian angle onto the
	// 13-bit signed Orientation field's +/-4095 extremes.
	OrientationScale = 4095.0 / 3.14159265358979323846

	// LinearAccelerationSaturation bounds LinearAcceleration's quantized
	// SVINT14 value to [-8192, 8191], the bucket's full signed range.
	LinearAccelerationSaturation = 8192

	// CenterOfEarthAltitude is a reserved sentinel altitude value (cm); see
	// spec.md §9 "Altitude sentinel (open question)". Never produced by
	// ordinary coordinate conversion.
	CenterOfEarthAltitude = -8_388_608

	// AltitudeCmThreshold bounds ordinary (non-sentinel) altitudes.
	AltitudeCmThreshold = 8_388_608

	// NsPerHour / CdisTimeUnitsPerHour / DisTimeUnitsPerHour drive the
	// timestamp conversions of spec.md §6.
	NsPerHour            = 3600.0 * 1e9
	CdisTimeUnitsPerHour = (1 << 26) - 1
	DisTimeUnitsPerHour  = (1 << 31) - 1
)
