package codec

import (
	"github.com/sw-vish/cdisgw/internal/cdis"
	"github.com/sw-vish/cdisgw/internal/dis"
	"github.com/sw-vish/cdisgw/internal/varint"
)

// EncodeCollision converts a DIS Collision PDU body to C-DIS. DIS carries
// Mass (kilograms) and Location as continuous floats with no units flag;
// this gateway always encodes Location in meters (the coarser of the two
// coordinate units) and Mass in grams (the finer of the two mass units).
func EncodeCollision(p dis.Collision) cdis.Collision {
	return cdis.Collision{
		LocationUnits:     cdis.CoordinateUnitsMeters,
		MassUnits:         cdis.MassUnitsGrams,
		IssuingEntityId:   EncodeEntityId(p.IssuingEntityId),
		CollidingEntityId: EncodeEntityId(p.CollidingEntityId),
		EventId:           EncodeEventId(p.EventId),
		CollisionType:     varintValue(varint.UVINT8, int64(p.CollisionType)),
		Velocity:          EncodeLinearVelocity(p.Velocity),
		Mass:              varintValue(varint.UVINT32, roundHalfEven(float64(p.Mass)*gramsPerKilogram)),
		Location:          EncodeEntityCoordinateVector(p.Location, cdis.CoordinateUnitsMeters),
	}
}

// DecodeCollision is EncodeCollision's inverse (spec.md §8 scenario 4: units
// flag byte 0b10 -> {location=Meters, mass=Grams}, 0b11 -> {location=Meters,
// mass=Kilograms}).
func DecodeCollision(p cdis.Collision) dis.Collision {
	mass := float64(p.Mass.Value)
	if p.MassUnits == cdis.MassUnitsGrams {
		mass /= gramsPerKilogram
	}
	return dis.Collision{
		IssuingEntityId:   DecodeEntityId(p.IssuingEntityId),
		CollidingEntityId: DecodeEntityId(p.CollidingEntityId),
		EventId:           DecodeEventId(p.EventId),
		CollisionType:     uint8(p.CollisionType.Value),
		Velocity:          DecodeLinearVelocity(p.Velocity),
		Mass:              float32(mass),
		Location:          DecodeEntityCoordinateVector(p.Location, p.LocationUnits),
	}
}

const gramsPerKilogram = 1000.0
