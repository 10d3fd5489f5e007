package dis

import (
	"encoding/binary"
	"math"

	"github.com/golang/geo/r3"
)

func init() {
	registerBody(PduTypeCollision, func(buf []byte) (Body, error) { return unmarshalCollision(buf) })
}

// Collision reports an entity-to-entity or entity-to-terrain collision
// (dis-rs common collision). Mass and Location are carried as continuous
// floats on the DIS side; the C-DIS units flag is a quantization decision
// made by the codec, not a DIS wire field.
type Collision struct {
	IssuingEntityId   EntityId
	CollidingEntityId EntityId
	EventId           EventId
	CollisionType     uint8
	Velocity          r3.Vector
	Mass              float32
	Location          r3.Vector
}

func (p Collision) PduType() PduType      { return PduTypeCollision }
func (p Collision) Originator() *EntityId { return &p.IssuingEntityId }
func (p Collision) Receiver() *EntityId   { return &p.CollidingEntityId }

func (p Collision) Marshal() []byte {
	n := EntityIdLength*2 + EventIdLength + 1 + 1 /*padding*/ + Vector3F32Length + 4 + Vector3F32Length
	buf := make([]byte, n)
	off := 0
	p.IssuingEntityId.Marshal(buf[off:])
	off += EntityIdLength
	p.CollidingEntityId.Marshal(buf[off:])
	off += EntityIdLength
	p.EventId.Marshal(buf[off:])
	off += EventIdLength
	buf[off] = p.CollisionType
	off += 2
	MarshalVector3F32(p.Velocity, buf[off:])
	off += Vector3F32Length
	binary.BigEndian.PutUint32(buf[off:], math.Float32bits(p.Mass))
	off += 4
	MarshalVector3F32(p.Location, buf[off:])
	return buf
}

func unmarshalCollision(buf []byte) (Collision, error) {
	off := 0
	issuing := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	colliding := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	event := UnmarshalEventId(buf[off:])
	off += EventIdLength
	collisionType := buf[off]
	off += 2
	velocity := UnmarshalVector3F32(buf[off:])
	off += Vector3F32Length
	mass := math.Float32frombits(binary.BigEndian.Uint32(buf[off:]))
	off += 4
	location := UnmarshalVector3F32(buf[off:])
	return Collision{issuing, colliding, event, collisionType, velocity, mass, location}, nil
}
