package codec

import (
	"github.com/golang/geo/r3"

	"github.com/sw-vish/cdisgw/internal/cdis"
	"github.com/sw-vish/cdisgw/internal/dis"
	"github.com/sw-vish/cdisgw/internal/varint"
)

func encodeEntityMarking(m dis.EntityMarking) cdis.EntityMarking {
	return cdis.EntityMarking{CharacterSet: m.CharacterSet, Characters: m.Characters}
}

func decodeEntityMarking(m cdis.EntityMarking) dis.EntityMarking {
	return dis.EntityMarking{CharacterSet: m.CharacterSet, Characters: m.Characters}
}

func encodeDeadReckoningParameters(d dis.DeadReckoningParameters) cdis.DeadReckoningParameters {
	return cdis.DeadReckoningParameters{
		Algorithm:          varintValue(varint.UVINT8, int64(d.Algorithm)),
		LinearAcceleration: EncodeLinearAcceleration(d.LinearAcceleration),
		AngularVelocity:    EncodeAngularVelocity(d.AngularVelocity),
	}
}

func decodeDeadReckoningParameters(d cdis.DeadReckoningParameters) dis.DeadReckoningParameters {
	return dis.DeadReckoningParameters{
		Algorithm:          uint8(d.Algorithm.Value),
		LinearAcceleration: DecodeLinearAcceleration(d.LinearAcceleration),
		AngularVelocity:    DecodeAngularVelocity(d.AngularVelocity),
	}
}

// encodeVariableParameter/decodeVariableParameter carry a DIS variable
// parameter's 16-byte record (record type + 15-byte payload) across as
// C-DIS's 1-bit-flag-plus-127-bit-payload record. Both are 128 bits on the
// wire; this gateway always marks Compressed false and packs the DIS
// record's bytes starting at the flag's neighboring bit, so only the final
// least-significant payload bit is not carried — an accepted, documented
// precision loss in a field this gateway treats as opaque.
func encodeVariableParameter(v dis.VariableParameter) cdis.VariableParameter {
	buf := make([]byte, 16)
	v.Marshal(buf)
	return cdis.VariableParameter{Compressed: false, Payload: buf}
}

func decodeVariableParameter(v cdis.VariableParameter) dis.VariableParameter {
	buf := make([]byte, 16)
	copy(buf, v.Payload)
	var vp dis.VariableParameter
	vp.RecordType = buf[0]
	copy(vp.Payload[:], buf[1:16])
	return vp
}

// EncodeEntityState converts a DIS EntityState PDU body to C-DIS. DIS
// carries every sub-record unconditionally; this gateway marks every
// optional C-DIS field present so no DIS-side data is dropped.
func EncodeEntityState(p dis.EntityState) cdis.EntityState {
	appearance := p.EntityAppearance
	capabilities := p.Capabilities
	altType := EncodeEntityType(p.AlternateEntityType)
	marking := encodeEntityMarking(p.EntityMarking)
	dr := encodeDeadReckoningParameters(p.DeadReckoningParameters)
	velocity := EncodeLinearVelocity(p.EntityLinearVelocity)
	orientation := EncodeOrientation(p.EntityOrientation)
	location := EncodeWorldCoordinates(p.EntityLocation)
	entityType := EncodeEntityType(p.EntityType)

	varParams := make([]cdis.VariableParameter, len(p.VariableParameters))
	for i, vp := range p.VariableParameters {
		varParams[i] = encodeVariableParameter(vp)
	}

	return cdis.EntityState{
		ForceId:                p.ForceId,
		EntityId:               EncodeEntityId(p.EntityId),
		VariableParameterCount: uint8(len(p.VariableParameters)),
		Appearance:             &appearance,
		AlternateEntityType:    &altType,
		EntityCapabilities:     &capabilities,
		VariableParameters:     varParams,
		EntityMarking:          &marking,
		DrParameters:           &dr,
		LinearVelocity:         &velocity,
		Orientation:            &orientation,
		WorldLocation:          &location,
		EntityType:             &entityType,
	}
}

// DecodeEntityState is EncodeEntityState's inverse. Any optional field the
// C-DIS side omitted decodes to its DIS-side zero value.
func DecodeEntityState(p cdis.EntityState) dis.EntityState {
	e := dis.EntityState{
		EntityId: DecodeEntityId(p.EntityId),
		ForceId:  p.ForceId,
	}

	if p.Appearance != nil {
		e.EntityAppearance = *p.Appearance
	}
	if p.AlternateEntityType != nil {
		e.AlternateEntityType = DecodeEntityType(*p.AlternateEntityType)
	}
	if p.EntityCapabilities != nil {
		e.Capabilities = *p.EntityCapabilities
	}
	if p.EntityMarking != nil {
		e.EntityMarking = decodeEntityMarking(*p.EntityMarking)
	}
	if p.DrParameters != nil {
		e.DeadReckoningParameters = decodeDeadReckoningParameters(*p.DrParameters)
	}
	if p.LinearVelocity != nil {
		e.EntityLinearVelocity = DecodeLinearVelocity(*p.LinearVelocity)
	} else {
		e.EntityLinearVelocity = r3.Vector{}
	}
	if p.Orientation != nil {
		e.EntityOrientation = DecodeOrientation(*p.Orientation)
	}
	if p.WorldLocation != nil {
		e.EntityLocation = DecodeWorldCoordinates(*p.WorldLocation)
	} else {
		e.EntityLocation = r3.Vector{}
	}
	if p.EntityType != nil {
		e.EntityType = DecodeEntityType(*p.EntityType)
	}

	e.VariableParameters = make([]dis.VariableParameter, len(p.VariableParameters))
	for i, vp := range p.VariableParameters {
		e.VariableParameters[i] = decodeVariableParameter(vp)
	}
	return e
}
