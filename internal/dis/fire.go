package dis

import (
	"encoding/binary"
	"math"

	"github.com/golang/geo/r3"
)

func init() {
	registerBody(PduTypeFire, func(buf []byte) (Body, error) { return unmarshalFire(buf) })
	registerBody(PduTypeDetonation, func(buf []byte) (Body, error) { return unmarshalDetonation(buf) })
}

// Fire reports a weapon discharge (dis-rs common fire/model.rs).
type Fire struct {
	FiringEntityId   EntityId
	TargetEntityId   EntityId
	MunitionId       EntityId
	EventId          EventId
	FireMissionIndex uint32
	Location         r3.Vector
	Descriptor       MunitionDescriptor
	Velocity         r3.Vector
	Range            float32
}

func (p Fire) PduType() PduType      { return PduTypeFire }
func (p Fire) Originator() *EntityId { return &p.FiringEntityId }
func (p Fire) Receiver() *EntityId   { return &p.TargetEntityId }

func (p Fire) Marshal() []byte {
	n := EntityIdLength*3 + EventIdLength + 4 + WorldCoordinatesLength + MunitionDescriptorLength + Vector3F32Length + 4
	buf := make([]byte, n)
	off := 0
	p.FiringEntityId.Marshal(buf[off:])
	off += EntityIdLength
	p.TargetEntityId.Marshal(buf[off:])
	off += EntityIdLength
	p.MunitionId.Marshal(buf[off:])
	off += EntityIdLength
	p.EventId.Marshal(buf[off:])
	off += EventIdLength
	binary.BigEndian.PutUint32(buf[off:], p.FireMissionIndex)
	off += 4
	MarshalWorldCoordinates(p.Location, buf[off:])
	off += WorldCoordinatesLength
	p.Descriptor.Marshal(buf[off:])
	off += MunitionDescriptorLength
	MarshalVector3F32(p.Velocity, buf[off:])
	off += Vector3F32Length
	binary.BigEndian.PutUint32(buf[off:], math.Float32bits(p.Range))
	return buf
}

func unmarshalFire(buf []byte) (Fire, error) {
	off := 0
	firing := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	target := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	munition := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	event := UnmarshalEventId(buf[off:])
	off += EventIdLength
	missionIdx := binary.BigEndian.Uint32(buf[off:])
	off += 4
	location := UnmarshalWorldCoordinates(buf[off:])
	off += WorldCoordinatesLength
	descriptor := UnmarshalMunitionDescriptor(buf[off:])
	off += MunitionDescriptorLength
	velocity := UnmarshalVector3F32(buf[off:])
	off += Vector3F32Length
	rng := math.Float32frombits(binary.BigEndian.Uint32(buf[off:]))
	return Fire{firing, target, munition, event, missionIdx, location, descriptor, velocity, rng}, nil
}

// Detonation reports a munition detonation or impact (dis-rs common
// detonation).
type Detonation struct {
	FiringEntityId   EntityId
	TargetEntityId   EntityId
	MunitionId       EntityId
	EventId          EventId
	Velocity         r3.Vector
	Location         r3.Vector
	Descriptor       MunitionDescriptor
	LocationInEntity r3.Vector
	DetonationResult uint8
}

func (p Detonation) PduType() PduType      { return PduTypeDetonation }
func (p Detonation) Originator() *EntityId { return &p.FiringEntityId }
func (p Detonation) Receiver() *EntityId   { return &p.TargetEntityId }

func (p Detonation) Marshal() []byte {
	n := EntityIdLength*3 + EventIdLength + Vector3F32Length + WorldCoordinatesLength +
		MunitionDescriptorLength + Vector3F32Length + 1 + 1 /*padding*/
	buf := make([]byte, n)
	off := 0
	p.FiringEntityId.Marshal(buf[off:])
	off += EntityIdLength
	p.TargetEntityId.Marshal(buf[off:])
	off += EntityIdLength
	p.MunitionId.Marshal(buf[off:])
	off += EntityIdLength
	p.EventId.Marshal(buf[off:])
	off += EventIdLength
	MarshalVector3F32(p.Velocity, buf[off:])
	off += Vector3F32Length
	MarshalWorldCoordinates(p.Location, buf[off:])
	off += WorldCoordinatesLength
	p.Descriptor.Marshal(buf[off:])
	off += MunitionDescriptorLength
	MarshalVector3F32(p.LocationInEntity, buf[off:])
	off += Vector3F32Length
	buf[off] = p.DetonationResult
	return buf
}

func unmarshalDetonation(buf []byte) (Detonation, error) {
	off := 0
	firing := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	target := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	munition := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	event := UnmarshalEventId(buf[off:])
	off += EventIdLength
	velocity := UnmarshalVector3F32(buf[off:])
	off += Vector3F32Length
	location := UnmarshalWorldCoordinates(buf[off:])
	off += WorldCoordinatesLength
	descriptor := UnmarshalMunitionDescriptor(buf[off:])
	off += MunitionDescriptorLength
	locationInEntity := UnmarshalVector3F32(buf[off:])
	off += Vector3F32Length
	result := buf[off]
	return Detonation{firing, target, munition, event, velocity, location, descriptor, locationInEntity, result}, nil
}
