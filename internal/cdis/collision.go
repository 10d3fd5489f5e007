package cdis

import (
	"github.com/sw-vish/cdisgw/internal/bitio"
	"github.com/sw-vish/cdisgw/internal/varint"
)

func init() {
	registerBody(PduTypeCollision, func(buf *bitio.BitBuffer) (Body, error) { return readCollision(buf) })
}

// MassUnits selects Collision.Mass's real-world unit (spec.md §4.5
// Collision units header, low bit).
type MassUnits uint8

const (
	MassUnitsGrams     MassUnits = 0
	MassUnitsKilograms MassUnits = 1
)

// Collision reports an entity-to-entity or entity-to-terrain collision
// (dis-rs common collision). The two leading 1-bit flags are independent:
// LocationUnits picks Location's scale (CoordinateUnitsCentimeters or
// CoordinateUnitsMeters) and MassUnits picks Mass's (spec.md §8 scenario 4:
// wire byte 0b10 decodes to {location=Meters, mass=Grams}, 0b11 to
// {location=Meters, mass=Kilograms}).
type Collision struct {
	LocationUnits     CoordinateUnits
	MassUnits         MassUnits
	IssuingEntityId   EntityId
	CollidingEntityId EntityId
	EventId           EventId
	CollisionType     varint.VarInt
	Velocity          Vector3 // SVINT16 LinearVelocity
	Mass              varint.VarInt
	Location          EntityCoordinateVector
}

func (p Collision) PduType() PduType      { return PduTypeCollision }
func (p Collision) Originator() *EntityId { return &p.IssuingEntityId }
func (p Collision) Receiver() *EntityId   { return &p.CollidingEntityId }

func (p Collision) BitSizeOf() int {
	return TwoBits + p.IssuingEntityId.BitSize() + p.CollidingEntityId.BitSize() + p.EventId.BitSize() +
		p.CollisionType.BitSize() + p.Velocity.BitSize() + p.Mass.BitSize() + p.Location.BitSize()
}

func (p Collision) Write(buf *bitio.BitBuffer) error {
	if err := buf.WriteUnsigned(OneBit, uint64(p.LocationUnits)); err != nil {
		return err
	}
	if err := buf.WriteUnsigned(OneBit, uint64(p.MassUnits)); err != nil {
		return err
	}
	if err := p.IssuingEntityId.Write(buf); err != nil {
		return err
	}
	if err := p.CollidingEntityId.Write(buf); err != nil {
		return err
	}
	if err := p.EventId.Write(buf); err != nil {
		return err
	}
	if err := p.CollisionType.Encode(buf); err != nil {
		return err
	}
	if err := p.Velocity.Write(buf); err != nil {
		return err
	}
	if err := p.Mass.Encode(buf); err != nil {
		return err
	}
	return p.Location.Write(buf)
}

func readCollision(buf *bitio.BitBuffer) (Collision, error) {
	locationUnits, err := buf.ReadUnsigned(OneBit)
	if err != nil {
		return Collision{}, err
	}
	massUnits, err := buf.ReadUnsigned(OneBit)
	if err != nil {
		return Collision{}, err
	}
	issuing, err := ReadEntityId(buf)
	if err != nil {
		return Collision{}, err
	}
	colliding, err := ReadEntityId(buf)
	if err != nil {
		return Collision{}, err
	}
	event, err := ReadEventId(buf)
	if err != nil {
		return Collision{}, err
	}
	collisionType, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return Collision{}, err
	}
	velocity, err := ReadVector3(buf, varint.SVINT16)
	if err != nil {
		return Collision{}, err
	}
	mass, err := varint.Decode(buf, varint.UVINT32)
	if err != nil {
		return Collision{}, err
	}
	location, err := ReadVector3(buf, varint.SVINT16)
	if err != nil {
		return Collision{}, err
	}
	return Collision{
		LocationUnits: CoordinateUnits(locationUnits), MassUnits: MassUnits(massUnits),
		IssuingEntityId: issuing, CollidingEntityId: colliding, EventId: event,
		CollisionType: collisionType, Velocity: velocity, Mass: mass, Location: location,
	}, nil
}
