package cdis

import (
	"github.com/sw-vish/cdisgw/internal/bitio"
	"github.com/sw-vish/cdisgw/internal/cdisfloat"
	"github.com/sw-vish/cdisgw/internal/varint"
)

func init() {
	registerBody(PduTypeFire, func(buf *bitio.BitBuffer) (Body, error) { return readFire(buf) })
	registerBody(PduTypeDetonation, func(buf *bitio.BitBuffer) (Body, error) { return readDetonation(buf) })
}

// MunitionDescriptor identifies the munition type and its fire-event
// parameters (dis-rs common model.rs MunitionDescriptor).
type MunitionDescriptor struct {
	EntityType EntityType
	Warhead    varint.VarInt
	Fuse       varint.VarInt
	Quantity   varint.VarInt
	Rate       varint.VarInt
}

func (d MunitionDescriptor) Write(buf *bitio.BitBuffer) error {
	if err := d.EntityType.Write(buf); err != nil {
		return err
	}
	if err := d.Warhead.Encode(buf); err != nil {
		return err
	}
	if err := d.Fuse.Encode(buf); err != nil {
		return err
	}
	if err := d.Quantity.Encode(buf); err != nil {
		return err
	}
	return d.Rate.Encode(buf)
}

func readMunitionDescriptor(buf *bitio.BitBuffer) (MunitionDescriptor, error) {
	et, err := ReadEntityType(buf)
	if err != nil {
		return MunitionDescriptor{}, err
	}
	warhead, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return MunitionDescriptor{}, err
	}
	fuse, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return MunitionDescriptor{}, err
	}
	qty, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return MunitionDescriptor{}, err
	}
	rate, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return MunitionDescriptor{}, err
	}
	return MunitionDescriptor{et, warhead, fuse, qty, rate}, nil
}

func (d MunitionDescriptor) BitSize() int {
	return d.EntityType.BitSize() + d.Warhead.BitSize() + d.Fuse.BitSize() + d.Quantity.BitSize() + d.Rate.BitSize()
}

// Fire reports a weapon discharge (dis-rs common fire/model.rs). Range uses
// the compressed-float parameter-value codec rather than a raw scaled
// integer, matching how C-DIS carries continuous physical quantities that
// aren't positions or velocities.
type Fire struct {
	FiringEntityId  EntityId
	TargetEntityId  EntityId
	MunitionId      EntityId
	EventId         EventId
	FireMissionIndex varint.VarInt
	Location        WorldCoordinates
	Descriptor      MunitionDescriptor
	Velocity        Vector3 // SVINT16 LinearVelocity
	Range           cdisfloat.Float
}

func (p Fire) PduType() PduType      { return PduTypeFire }
func (p Fire) Originator() *EntityId { return &p.FiringEntityId }
func (p Fire) Receiver() *EntityId   { return &p.TargetEntityId }

func (p Fire) BitSizeOf() int {
	return p.FiringEntityId.BitSize() + p.TargetEntityId.BitSize() + p.MunitionId.BitSize() +
		p.EventId.BitSize() + p.FireMissionIndex.BitSize() + p.Location.BitSize() +
		p.Descriptor.BitSize() + p.Velocity.BitSize() + p.Range.Spec.BitSize()
}

func (p Fire) Write(buf *bitio.BitBuffer) error {
	if err := p.FiringEntityId.Write(buf); err != nil {
		return err
	}
	if err := p.TargetEntityId.Write(buf); err != nil {
		return err
	}
	if err := p.MunitionId.Write(buf); err != nil {
		return err
	}
	if err := p.EventId.Write(buf); err != nil {
		return err
	}
	if err := p.FireMissionIndex.Encode(buf); err != nil {
		return err
	}
	if err := p.Location.Write(buf); err != nil {
		return err
	}
	if err := p.Descriptor.Write(buf); err != nil {
		return err
	}
	if err := p.Velocity.Write(buf); err != nil {
		return err
	}
	return p.Range.Write(buf)
}

func readFire(buf *bitio.BitBuffer) (Fire, error) {
	firing, err := ReadEntityId(buf)
	if err != nil {
		return Fire{}, err
	}
	target, err := ReadEntityId(buf)
	if err != nil {
		return Fire{}, err
	}
	munition, err := ReadEntityId(buf)
	if err != nil {
		return Fire{}, err
	}
	event, err := ReadEventId(buf)
	if err != nil {
		return Fire{}, err
	}
	missionIdx, err := varint.Decode(buf, varint.UVINT32)
	if err != nil {
		return Fire{}, err
	}
	location, err := ReadWorldCoordinates(buf)
	if err != nil {
		return Fire{}, err
	}
	descriptor, err := readMunitionDescriptor(buf)
	if err != nil {
		return Fire{}, err
	}
	velocity, err := ReadVector3(buf, varint.SVINT16)
	if err != nil {
		return Fire{}, err
	}
	rng, err := cdisfloat.Read(buf, cdisfloat.ParameterValue)
	if err != nil {
		return Fire{}, err
	}
	return Fire{firing, target, munition, event, missionIdx, location, descriptor, velocity, rng}, nil
}

// Detonation reports a munition detonation or impact (dis-rs common
// detonation). LocationInEntity is relative to TargetEntityId, carried as a
// centimeter-scale EntityCoordinateVector.
type Detonation struct {
	FiringEntityId   EntityId
	TargetEntityId   EntityId
	MunitionId       EntityId
	EventId          EventId
	Velocity         Vector3 // SVINT16 LinearVelocity
	Location         WorldCoordinates
	Descriptor       MunitionDescriptor
	LocationInEntity EntityCoordinateVector
	DetonationResult varint.VarInt
}

func (p Detonation) PduType() PduType      { return PduTypeDetonation }
func (p Detonation) Originator() *EntityId { return &p.FiringEntityId }
func (p Detonation) Receiver() *EntityId   { return &p.TargetEntityId }

func (p Detonation) BitSizeOf() int {
	return p.FiringEntityId.BitSize() + p.TargetEntityId.BitSize() + p.MunitionId.BitSize() +
		p.EventId.BitSize() + p.Velocity.BitSize() + p.Location.BitSize() + p.Descriptor.BitSize() +
		p.LocationInEntity.BitSize() + p.DetonationResult.BitSize()
}

func (p Detonation) Write(buf *bitio.BitBuffer) error {
	if err := p.FiringEntityId.Write(buf); err != nil {
		return err
	}
	if err := p.TargetEntityId.Write(buf); err != nil {
		return err
	}
	if err := p.MunitionId.Write(buf); err != nil {
		return err
	}
	if err := p.EventId.Write(buf); err != nil {
		return err
	}
	if err := p.Velocity.Write(buf); err != nil {
		return err
	}
	if err := p.Location.Write(buf); err != nil {
		return err
	}
	if err := p.Descriptor.Write(buf); err != nil {
		return err
	}
	if err := p.LocationInEntity.Write(buf); err != nil {
		return err
	}
	return p.DetonationResult.Encode(buf)
}

func readDetonation(buf *bitio.BitBuffer) (Detonation, error) {
	firing, err := ReadEntityId(buf)
	if err != nil {
		return Detonation{}, err
	}
	target, err := ReadEntityId(buf)
	if err != nil {
		return Detonation{}, err
	}
	munition, err := ReadEntityId(buf)
	if err != nil {
		return Detonation{}, err
	}
	event, err := ReadEventId(buf)
	if err != nil {
		return Detonation{}, err
	}
	velocity, err := ReadVector3(buf, varint.SVINT16)
	if err != nil {
		return Detonation{}, err
	}
	location, err := ReadWorldCoordinates(buf)
	if err != nil {
		return Detonation{}, err
	}
	descriptor, err := readMunitionDescriptor(buf)
	if err != nil {
		return Detonation{}, err
	}
	locationInEntity, err := ReadVector3(buf, varint.SVINT16)
	if err != nil {
		return Detonation{}, err
	}
	result, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return Detonation{}, err
	}
	return Detonation{firing, target, munition, event, velocity, location, descriptor, locationInEntity, result}, nil
}
