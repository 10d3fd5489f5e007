package codec

import (
	"github.com/sw-vish/cdisgw/internal/cdis"
	"github.com/sw-vish/cdisgw/internal/cdisfloat"
	"github.com/sw-vish/cdisgw/internal/dis"
	"github.com/sw-vish/cdisgw/internal/varint"
)

func encodeMunitionDescriptor(d dis.MunitionDescriptor) cdis.MunitionDescriptor {
	return cdis.MunitionDescriptor{
		EntityType: EncodeEntityType(d.EntityType),
		Warhead:    varintValue(varint.UVINT16, int64(d.Warhead)),
		Fuse:       varintValue(varint.UVINT16, int64(d.Fuse)),
		Quantity:   varintValue(varint.UVINT16, int64(d.Quantity)),
		Rate:       varintValue(varint.UVINT16, int64(d.Rate)),
	}
}

func decodeMunitionDescriptor(d cdis.MunitionDescriptor) dis.MunitionDescriptor {
	return dis.MunitionDescriptor{
		EntityType: DecodeEntityType(d.EntityType),
		Warhead:    uint16(d.Warhead.Value),
		Fuse:       uint16(d.Fuse.Value),
		Quantity:   uint16(d.Quantity.Value),
		Rate:       uint16(d.Rate.Value),
	}
}

// EncodeFire converts a DIS Fire PDU body to C-DIS. Range is carried as a
// compressed float (parameter-value spec) rather than a raw scaled integer.
func EncodeFire(p dis.Fire) cdis.Fire {
	return cdis.Fire{
		FiringEntityId:   EncodeEntityId(p.FiringEntityId),
		TargetEntityId:   EncodeEntityId(p.TargetEntityId),
		MunitionId:       EncodeEntityId(p.MunitionId),
		EventId:          EncodeEventId(p.EventId),
		FireMissionIndex: varintValue(varint.UVINT32, int64(p.FireMissionIndex)),
		Location:         EncodeWorldCoordinates(p.Location),
		Descriptor:       encodeMunitionDescriptor(p.Descriptor),
		Velocity:         EncodeLinearVelocity(p.Velocity),
		Range:            cdisfloat.Encode(cdisfloat.ParameterValue, float64(p.Range)),
	}
}

// DecodeFire is EncodeFire's inverse.
func DecodeFire(p cdis.Fire) dis.Fire {
	return dis.Fire{
		FiringEntityId:   DecodeEntityId(p.FiringEntityId),
		TargetEntityId:   DecodeEntityId(p.TargetEntityId),
		MunitionId:       DecodeEntityId(p.MunitionId),
		EventId:          DecodeEventId(p.EventId),
		FireMissionIndex: uint32(p.FireMissionIndex.Value),
		Location:         DecodeWorldCoordinates(p.Location),
		Descriptor:       decodeMunitionDescriptor(p.Descriptor),
		Velocity:         DecodeLinearVelocity(p.Velocity),
		Range:            p.Range.Value(),
	}
}

// EncodeDetonation converts a DIS Detonation PDU body to C-DIS.
// LocationInEntity is relative position, carried as a centimeter-scale
// EntityCoordinateVector.
func EncodeDetonation(p dis.Detonation) cdis.Detonation {
	return cdis.Detonation{
		FiringEntityId:   EncodeEntityId(p.FiringEntityId),
		TargetEntityId:   EncodeEntityId(p.TargetEntityId),
		MunitionId:       EncodeEntityId(p.MunitionId),
		EventId:          EncodeEventId(p.EventId),
		Velocity:         EncodeLinearVelocity(p.Velocity),
		Location:         EncodeWorldCoordinates(p.Location),
		Descriptor:       encodeMunitionDescriptor(p.Descriptor),
		LocationInEntity: EncodeEntityCoordinateVector(p.LocationInEntity, cdis.CoordinateUnitsCentimeters),
		DetonationResult: varintValue(varint.UVINT8, int64(p.DetonationResult)),
	}
}

// DecodeDetonation is EncodeDetonation's inverse.
func DecodeDetonation(p cdis.Detonation) dis.Detonation {
	return dis.Detonation{
		FiringEntityId:   DecodeEntityId(p.FiringEntityId),
		TargetEntityId:   DecodeEntityId(p.TargetEntityId),
		MunitionId:       DecodeEntityId(p.MunitionId),
		EventId:          DecodeEventId(p.EventId),
		Velocity:         DecodeLinearVelocity(p.Velocity),
		Location:         DecodeWorldCoordinates(p.Location),
		Descriptor:       decodeMunitionDescriptor(p.Descriptor),
		LocationInEntity: DecodeEntityCoordinateVector(p.LocationInEntity, cdis.CoordinateUnitsCentimeters),
		DetonationResult: uint8(p.DetonationResult.Value),
	}
}
