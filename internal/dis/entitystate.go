package dis

import (
	"encoding/binary"

	"github.com/golang/geo/r3"
)

func init() {
	registerBody(PduTypeEntityState, func(buf []byte) (Body, error) { return unmarshalEntityState(buf) })
}

const variableParameterLength = 16

// VariableParameter is one 16-byte DIS variable parameter record, opaque
// beyond its leading record type byte.
type VariableParameter struct {
	RecordType uint8
	Payload    [15]byte
}

func (v VariableParameter) Marshal(buf []byte) {
	buf[0] = v.RecordType
	copy(buf[1:16], v.Payload[:])
}

func unmarshalVariableParameter(buf []byte) VariableParameter {
	var v VariableParameter
	v.RecordType = buf[0]
	copy(v.Payload[:], buf[1:16])
	return v
}

// EntityState is the DIS v7 Entity State PDU body: every field always
// present, byte-aligned (IEEE 1278.1).
type EntityState struct {
	EntityId                EntityId
	ForceId                 uint8
	EntityType              EntityType
	AlternateEntityType     EntityType
	EntityLinearVelocity    r3.Vector
	EntityLocation          r3.Vector
	EntityOrientation       Orientation
	EntityAppearance        uint32
	DeadReckoningParameters DeadReckoningParameters
	EntityMarking           EntityMarking
	Capabilities            uint32
	VariableParameters      []VariableParameter
}

func (e EntityState) PduType() PduType      { return PduTypeEntityState }
func (e EntityState) Originator() *EntityId { return &e.EntityId }
func (e EntityState) Receiver() *EntityId   { return nil }

func (e EntityState) Marshal() []byte {
	n := EntityIdLength + 1 + 1 + EntityTypeLength + EntityTypeLength + Vector3F32Length +
		WorldCoordinatesLength + OrientationLength + 4 + DeadReckoningParametersLength +
		EntityMarkingLength + 4 + len(e.VariableParameters)*variableParameterLength
	buf := make([]byte, n)
	off := 0
	e.EntityId.Marshal(buf[off:])
	off += EntityIdLength
	buf[off] = e.ForceId
	off++
	buf[off] = uint8(len(e.VariableParameters))
	off++
	e.EntityType.Marshal(buf[off:])
	off += EntityTypeLength
	e.AlternateEntityType.Marshal(buf[off:])
	off += EntityTypeLength
	MarshalVector3F32(e.EntityLinearVelocity, buf[off:])
	off += Vector3F32Length
	MarshalWorldCoordinates(e.EntityLocation, buf[off:])
	off += WorldCoordinatesLength
	e.EntityOrientation.Marshal(buf[off:])
	off += OrientationLength
	binary.BigEndian.PutUint32(buf[off:], e.EntityAppearance)
	off += 4
	e.DeadReckoningParameters.Marshal(buf[off:])
	off += DeadReckoningParametersLength
	e.EntityMarking.Marshal(buf[off:])
	off += EntityMarkingLength
	binary.BigEndian.PutUint32(buf[off:], e.Capabilities)
	off += 4
	for _, vp := range e.VariableParameters {
		vp.Marshal(buf[off:])
		off += variableParameterLength
	}
	return buf
}

func unmarshalEntityState(buf []byte) (EntityState, error) {
	off := 0
	entityId := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	forceId := buf[off]
	off++
	numVarParams := int(buf[off])
	off++
	entityType := UnmarshalEntityType(buf[off:])
	off += EntityTypeLength
	altType := UnmarshalEntityType(buf[off:])
	off += EntityTypeLength
	velocity := UnmarshalVector3F32(buf[off:])
	off += Vector3F32Length
	location := UnmarshalWorldCoordinates(buf[off:])
	off += WorldCoordinatesLength
	orientation := UnmarshalOrientation(buf[off:])
	off += OrientationLength
	appearance := binary.BigEndian.Uint32(buf[off:])
	off += 4
	drParams := UnmarshalDeadReckoningParameters(buf[off:])
	off += DeadReckoningParametersLength
	marking := UnmarshalEntityMarking(buf[off:])
	off += EntityMarkingLength
	capabilities := binary.BigEndian.Uint32(buf[off:])
	off += 4

	varParams := make([]VariableParameter, 0, numVarParams)
	for i := 0; i < numVarParams; i++ {
		varParams = append(varParams, unmarshalVariableParameter(buf[off:]))
		off += variableParameterLength
	}

	return EntityState{
		EntityId: entityId, ForceId: forceId, EntityType: entityType, AlternateEntityType: altType,
		EntityLinearVelocity: velocity, EntityLocation: location, EntityOrientation: orientation,
		EntityAppearance: appearance, DeadReckoningParameters: drParams, EntityMarking: marking,
		Capabilities: capabilities, VariableParameters: varParams,
	}, nil
}
