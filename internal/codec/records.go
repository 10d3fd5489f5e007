package codec

import (
	"github.com/golang/geo/r3"

	"github.com/sw-vish/cdisgw/internal/cdis"
	"github.com/sw-vish/cdisgw/internal/dis"
	"github.com/sw-vish/cdisgw/internal/varint"
)

// EncodeEntityId converts a byte-aligned DIS EntityId to its UVINT16 triple.
func EncodeEntityId(e dis.EntityId) cdis.EntityId {
	return cdis.NewEntityId(e.Site, e.Application, e.Entity)
}

// DecodeEntityId converts a C-DIS EntityId back to DIS's plain uint16 triple.
func DecodeEntityId(e cdis.EntityId) dis.EntityId {
	return dis.EntityId{
		Site:        uint16(e.Site.Value),
		Application: uint16(e.Application.Value),
		Entity:      uint16(e.Entity.Value),
	}
}

// EncodeEventId converts a DIS EventId (site/application/number) to the
// C-DIS EventId record.
func EncodeEventId(e dis.EventId) cdis.EventId {
	return cdis.NewEventId(e.Site, e.Application, e.Number)
}

// DecodeEventId is EncodeEventId's inverse.
func DecodeEventId(e cdis.EventId) dis.EventId {
	return dis.EventId{
		Site:        uint16(e.SimulationAddress.Site.Value),
		Application: uint16(e.SimulationAddress.Application.Value),
		Number:      uint16(e.Number.Value),
	}
}

// EncodeEntityType converts a DIS EntityType to its C-DIS bit layout
// (identity conversion; only the wire widths differ).
func EncodeEntityType(e dis.EntityType) cdis.EntityType {
	return cdis.NewEntityType(e.Kind, e.Domain, e.Country, e.Category, e.SubCategory, e.Specific, e.Extra)
}

// DecodeEntityType is EncodeEntityType's inverse.
func DecodeEntityType(e cdis.EntityType) dis.EntityType {
	return dis.EntityType{
		Kind: e.Kind, Domain: e.Domain, Country: e.Country,
		Category: uint8(e.Category.Value), SubCategory: uint8(e.SubCategory.Value),
		Specific: uint8(e.Specific.Value), Extra: uint8(e.Extra.Value),
	}
}

// EncodeLinearVelocity converts DIS m/s to C-DIS decimeters/s (SVINT16).
func EncodeLinearVelocity(v r3.Vector) cdis.Vector3 {
	return cdis.NewLinearVelocity(
		roundHalfEven(v.X*linearVelocityScale),
		roundHalfEven(v.Y*linearVelocityScale),
		roundHalfEven(v.Z*linearVelocityScale),
	)
}

// DecodeLinearVelocity is EncodeLinearVelocity's inverse.
func DecodeLinearVelocity(v cdis.Vector3) r3.Vector {
	return r3.Vector{
		X: float64(v.X.Value) / linearVelocityScale,
		Y: float64(v.Y.Value) / linearVelocityScale,
		Z: float64(v.Z.Value) / linearVelocityScale,
	}
}

// EncodeLinearAcceleration converts DIS m/s^2 to C-DIS decimeters/s^2
// (SVINT14), saturating to [-8192, 8191], the bucket's full signed range.
func EncodeLinearAcceleration(v r3.Vector) cdis.Vector3 {
	clamp := func(x float64) int64 {
		return saturate(roundHalfEven(x*linearAccelerationScale), -linearAccelerationSat, linearAccelerationSat-1)
	}
	return cdis.NewLinearAcceleration(clamp(v.X), clamp(v.Y), clamp(v.Z))
}

// DecodeLinearAcceleration is EncodeLinearAcceleration's inverse.
func DecodeLinearAcceleration(v cdis.Vector3) r3.Vector {
	return r3.Vector{
		X: float64(v.X.Value) / linearAccelerationScale,
		Y: float64(v.Y.Value) / linearAccelerationScale,
		Z: float64(v.Z.Value) / linearAccelerationScale,
	}
}

// EncodeAngularVelocity converts DIS rad/s to the SVINT12 field so that
// +/-4*pi rad/s (+/-720 deg/s) spans the full +/-2047 range.
func EncodeAngularVelocity(v r3.Vector) cdis.Vector3 {
	return cdis.NewAngularVelocity(
		roundHalfEven(v.X*angularVelocityScale),
		roundHalfEven(v.Y*angularVelocityScale),
		roundHalfEven(v.Z*angularVelocityScale),
	)
}

// DecodeAngularVelocity is EncodeAngularVelocity's inverse.
func DecodeAngularVelocity(v cdis.Vector3) r3.Vector {
	return r3.Vector{
		X: float64(v.X.Value) / angularVelocityScale,
		Y: float64(v.Y.Value) / angularVelocityScale,
		Z: float64(v.Z.Value) / angularVelocityScale,
	}
}

// EncodeOrientation range-reduces each Euler angle to (-pi, pi] and scales
// independently — psi, theta, and phi each carry their own value (see the
// angular-normalization note this gateway resolves in DESIGN.md).
func EncodeOrientation(o dis.Orientation) cdis.Orientation {
	return cdis.Orientation{
		Psi:   int16(quantizeSigned(normalizeAngle(float64(o.Psi)), orientationScale, cdis.ThirteenBits)),
		Theta: int16(quantizeSigned(normalizeAngle(float64(o.Theta)), orientationScale, cdis.ThirteenBits)),
		Phi:   int16(quantizeSigned(normalizeAngle(float64(o.Phi)), orientationScale, cdis.ThirteenBits)),
	}
}

// DecodeOrientation is EncodeOrientation's inverse.
func DecodeOrientation(o cdis.Orientation) dis.Orientation {
	return dis.Orientation{
		Psi:   float32(float64(o.Psi) / orientationScale),
		Theta: float32(float64(o.Theta) / orientationScale),
		Phi:   float32(float64(o.Phi) / orientationScale),
	}
}

// EncodeWorldCoordinates converts a geocentric DIS location (meters) to
// C-DIS's centimeter-resolution record, saturating each axis at the 30-bit
// signed range rather than erroring (spec's "approx; field-specific" note:
// this uniform width does not span true ECEF magnitudes without
// saturation).
func EncodeWorldCoordinates(v r3.Vector) cdis.WorldCoordinates {
	q := func(x float64) int32 {
		return int32(quantizeSigned(x, centimetersPerMeter, cdis.WorldCoordinateBits))
	}
	return cdis.WorldCoordinates{X: q(v.X), Y: q(v.Y), Z: q(v.Z)}
}

// DecodeWorldCoordinates is EncodeWorldCoordinates's inverse.
func DecodeWorldCoordinates(w cdis.WorldCoordinates) r3.Vector {
	return r3.Vector{
		X: float64(w.X) / centimetersPerMeter,
		Y: float64(w.Y) / centimetersPerMeter,
		Z: float64(w.Z) / centimetersPerMeter,
	}
}

// EncodeEntityCoordinateVector converts a DIS relative-position vector to
// the SVINT16 record, scaled per the given units (centimeters or meters).
func EncodeEntityCoordinateVector(v r3.Vector, units cdis.CoordinateUnits) cdis.EntityCoordinateVector {
	scale := 1.0
	if units == cdis.CoordinateUnitsCentimeters {
		scale = centimetersPerMeter
	}
	return cdis.NewEntityCoordinateVector(
		roundHalfEven(v.X*scale),
		roundHalfEven(v.Y*scale),
		roundHalfEven(v.Z*scale),
	)
}

// DecodeEntityCoordinateVector is EncodeEntityCoordinateVector's inverse.
func DecodeEntityCoordinateVector(v cdis.EntityCoordinateVector, units cdis.CoordinateUnits) r3.Vector {
	scale := 1.0
	if units == cdis.CoordinateUnitsCentimeters {
		scale = centimetersPerMeter
	}
	return r3.Vector{
		X: float64(v.X.Value) / scale,
		Y: float64(v.Y.Value) / scale,
		Z: float64(v.Z.Value) / scale,
	}
}

// EncodeTimestamp converts a DIS PDU timestamp (units per hour 2^31-1) to
// C-DIS time units (per hour 2^26-1).
func EncodeTimestamp(disUnits uint32) cdis.CdisTimeStamp {
	scaled := roundHalfEven(float64(disUnits) * cdisTimeUnitsPerHour / disTimeUnitsPerHour)
	return cdis.CdisTimeStamp{Units: uint32(saturate(scaled, 0, cdisTimeUnitsPerHour))}
}

// DecodeTimestamp is EncodeTimestamp's inverse.
func DecodeTimestamp(t cdis.CdisTimeStamp) uint32 {
	scaled := roundHalfEven(float64(t.Units) * disTimeUnitsPerHour / cdisTimeUnitsPerHour)
	return uint32(saturate(scaled, 0, disTimeUnitsPerHour))
}

// varintValue is a small helper for PDU codecs that move plain numeric DIS
// fields into a specific VarInt kind.
func varintValue(kind varint.Kind, v int64) varint.VarInt { return varint.New(kind, v) }
