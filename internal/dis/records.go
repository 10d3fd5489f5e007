package dis

import (
	"encoding/binary"
	"math"

	"github.com/golang/geo/r3"
)

// EntityId is the 6-byte (site, application, entity) identity triple.
type EntityId struct {
	Site, Application, Entity uint16
}

const EntityIdLength = 6

func (e EntityId) Marshal(buf []byte) {
	binary.BigEndian.PutUint16(buf[0:], e.Site)
	binary.BigEndian.PutUint16(buf[2:], e.Application)
	binary.BigEndian.PutUint16(buf[4:], e.Entity)
}

func UnmarshalEntityId(buf []byte) EntityId {
	return EntityId{
		Site:        binary.BigEndian.Uint16(buf[0:]),
		Application: binary.BigEndian.Uint16(buf[2:]),
		Entity:      binary.BigEndian.Uint16(buf[4:]),
	}
}

// EventId identifies a fire/detonation event.
type EventId struct {
	Site, Application uint16
	Number            uint16
}

const EventIdLength = 6

func (e EventId) Marshal(buf []byte) {
	binary.BigEndian.PutUint16(buf[0:], e.Site)
	binary.BigEndian.PutUint16(buf[2:], e.Application)
	binary.BigEndian.PutUint16(buf[4:], e.Number)
}

func UnmarshalEventId(buf []byte) EventId {
	return EventId{
		Site:        binary.BigEndian.Uint16(buf[0:]),
		Application: binary.BigEndian.Uint16(buf[2:]),
		Number:      binary.BigEndian.Uint16(buf[4:]),
	}
}

// EntityType is the 8-byte kind/domain/country/category/subcategory/
// specific/extra record.
type EntityType struct {
	Kind, Domain                              uint8
	Country                                   uint16
	Category, SubCategory, Specific, Extra    uint8
}

const EntityTypeLength = 8

func (e EntityType) Marshal(buf []byte) {
	buf[0] = e.Kind
	buf[1] = e.Domain
	binary.BigEndian.PutUint16(buf[2:], e.Country)
	buf[4] = e.Category
	buf[5] = e.SubCategory
	buf[6] = e.Specific
	buf[7] = e.Extra
}

func UnmarshalEntityType(buf []byte) EntityType {
	return EntityType{
		Kind: buf[0], Domain: buf[1],
		Country:  binary.BigEndian.Uint16(buf[2:]),
		Category: buf[4], SubCategory: buf[5], Specific: buf[6], Extra: buf[7],
	}
}

// Vector3F32 marshals an r3.Vector as three 32-bit floats — DIS's wire
// representation for velocity, acceleration, and angular velocity.
const Vector3F32Length = 12

func MarshalVector3F32(v r3.Vector, buf []byte) {
	binary.BigEndian.PutUint32(buf[0:], math.Float32bits(float32(v.X)))
	binary.BigEndian.PutUint32(buf[4:], math.Float32bits(float32(v.Y)))
	binary.BigEndian.PutUint32(buf[8:], math.Float32bits(float32(v.Z)))
}

func UnmarshalVector3F32(buf []byte) r3.Vector {
	x := math.Float32frombits(binary.BigEndian.Uint32(buf[0:]))
	y := math.Float32frombits(binary.BigEndian.Uint32(buf[4:]))
	z := math.Float32frombits(binary.BigEndian.Uint32(buf[8:]))
	return r3.Vector{X: float64(x), Y: float64(y), Z: float64(z)}
}

// WorldCoordinates marshals a geocentric (ECEF) location as three 64-bit
// floats, meters.
const WorldCoordinatesLength = 24

func MarshalWorldCoordinates(v r3.Vector, buf []byte) {
	binary.BigEndian.PutUint64(buf[0:], math.Float64bits(v.X))
	binary.BigEndian.PutUint64(buf[8:], math.Float64bits(v.Y))
	binary.BigEndian.PutUint64(buf[16:], math.Float64bits(v.Z))
}

func UnmarshalWorldCoordinates(buf []byte) r3.Vector {
	x := math.Float64frombits(binary.BigEndian.Uint64(buf[0:]))
	y := math.Float64frombits(binary.BigEndian.Uint64(buf[8:]))
	z := math.Float64frombits(binary.BigEndian.Uint64(buf[16:]))
	return r3.Vector{X: x, Y: y, Z: z}
}

// Orientation is psi/theta/phi Euler angles in radians, 32-bit floats each.
type Orientation struct {
	Psi, Theta, Phi float32
}

const OrientationLength = 12

func (o Orientation) Marshal(buf []byte) {
	binary.BigEndian.PutUint32(buf[0:], math.Float32bits(o.Psi))
	binary.BigEndian.PutUint32(buf[4:], math.Float32bits(o.Theta))
	binary.BigEndian.PutUint32(buf[8:], math.Float32bits(o.Phi))
}

func UnmarshalOrientation(buf []byte) Orientation {
	return Orientation{
		Psi:   math.Float32frombits(binary.BigEndian.Uint32(buf[0:])),
		Theta: math.Float32frombits(binary.BigEndian.Uint32(buf[4:])),
		Phi:   math.Float32frombits(binary.BigEndian.Uint32(buf[8:])),
	}
}

// EntityMarking is an 11-character name plus character-set code.
type EntityMarking struct {
	CharacterSet uint8
	Characters   [11]byte
}

const EntityMarkingLength = 12

func (m EntityMarking) Marshal(buf []byte) {
	buf[0] = m.CharacterSet
	copy(buf[1:12], m.Characters[:])
}

func UnmarshalEntityMarking(buf []byte) EntityMarking {
	var m EntityMarking
	m.CharacterSet = buf[0]
	copy(m.Characters[:], buf[1:12])
	return m
}

// DeadReckoningParameters names the DR algorithm plus the acceleration and
// angular velocity terms (each 32-bit float triples).
type DeadReckoningParameters struct {
	Algorithm          uint8
	LinearAcceleration r3.Vector
	AngularVelocity    r3.Vector
}

const DeadReckoningParametersLength = 1 + 15 + Vector3F32Length + Vector3F32Length

func (d DeadReckoningParameters) Marshal(buf []byte) {
	buf[0] = d.Algorithm
	// bytes 1-15 reserved (other DR parameters, unused by this gateway)
	MarshalVector3F32(d.LinearAcceleration, buf[16:])
	MarshalVector3F32(d.AngularVelocity, buf[16+Vector3F32Length:])
}

func UnmarshalDeadReckoningParameters(buf []byte) DeadReckoningParameters {
	return DeadReckoningParameters{
		Algorithm:          buf[0],
		LinearAcceleration: UnmarshalVector3F32(buf[16:]),
		AngularVelocity:    UnmarshalVector3F32(buf[16+Vector3F32Length:]),
	}
}

// FixedDatum pairs a 32-bit datum id with a 32-bit value.
type FixedDatum struct {
	DatumId    uint32
	DatumValue uint32
}

const FixedDatumLength = 8

func (d FixedDatum) Marshal(buf []byte) {
	binary.BigEndian.PutUint32(buf[0:], d.DatumId)
	binary.BigEndian.PutUint32(buf[4:], d.DatumValue)
}

func UnmarshalFixedDatum(buf []byte) FixedDatum {
	return FixedDatum{DatumId: binary.BigEndian.Uint32(buf[0:]), DatumValue: binary.BigEndian.Uint32(buf[4:])}
}

// VariableDatum is a datum id plus a bit-length-prefixed, 64-bit-padded
// value (DIS common VariableDatum).
type VariableDatum struct {
	DatumId    uint32
	LengthBits uint32
	Value      []byte // padded to a multiple of 8 bytes
}

func (d VariableDatum) paddedLength() int {
	n := 8 + (int(d.LengthBits)+7)/8
	if rem := n % 8; rem != 0 {
		n += 8 - rem
	}
	return n
}

func (d VariableDatum) Marshal(buf []byte) int {
	binary.BigEndian.PutUint32(buf[0:], d.DatumId)
	binary.BigEndian.PutUint32(buf[4:], d.LengthBits)
	copy(buf[8:], d.Value)
	return d.paddedLength()
}

func UnmarshalVariableDatum(buf []byte) (VariableDatum, int) {
	id := binary.BigEndian.Uint32(buf[0:])
	lengthBits := binary.BigEndian.Uint32(buf[4:])
	d := VariableDatum{DatumId: id, LengthBits: lengthBits}
	n := d.paddedLength()
	d.Value = append([]byte(nil), buf[8:n]...)
	return d, n
}

// MunitionDescriptor identifies a munition type and its fire-event
// parameters.
type MunitionDescriptor struct {
	EntityType EntityType
	Warhead    uint16
	Fuse       uint16
	Quantity   uint16
	Rate       uint16
}

const MunitionDescriptorLength = EntityTypeLength + 8

func (d MunitionDescriptor) Marshal(buf []byte) {
	d.EntityType.Marshal(buf[0:])
	binary.BigEndian.PutUint16(buf[8:], d.Warhead)
	binary.BigEndian.PutUint16(buf[10:], d.Fuse)
	binary.BigEndian.PutUint16(buf[12:], d.Quantity)
	binary.BigEndian.PutUint16(buf[14:], d.Rate)
}

func UnmarshalMunitionDescriptor(buf []byte) MunitionDescriptor {
	return MunitionDescriptor{
		EntityType: UnmarshalEntityType(buf[0:]),
		Warhead:    binary.BigEndian.Uint16(buf[8:]),
		Fuse:       binary.BigEndian.Uint16(buf[10:]),
		Quantity:   binary.BigEndian.Uint16(buf[12:]),
		Rate:       binary.BigEndian.Uint16(buf[14:]),
	}
}
