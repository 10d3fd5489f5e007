package cdis

import (
	"github.com/sw-vish/cdisgw/internal/bitio"
	"github.com/sw-vish/cdisgw/internal/varint"
)

func init() {
	registerBody(PduTypeEntityState, func(buf *bitio.BitBuffer) (Body, error) { return readEntityState(buf) })
}

// entityStatePresence bit positions, in the declared wire order (spec.md
// §4.5): appearance, alternate entity type, entity capabilities, variable
// parameters, entity marking, DR parameters, linear velocity, orientation,
// world location, entity type.
const (
	presenceAppearance = iota
	presenceAlternateEntityType
	presenceEntityCapabilities
	presenceVariableParameters
	presenceEntityMarking
	presenceDrParameters
	presenceLinearVelocity
	presenceOrientation
	presenceWorldLocation
	presenceEntityType
	presenceBitCount
)

// EntityMarking is an 11-character name plus a character-set code, carried
// byte-aligned (dis-rs common model.rs EntityMarking retains this shape
// unchanged in C-DIS since it is opaque text, not a quantized value).
type EntityMarking struct {
	CharacterSet uint8
	Characters   [11]byte
}

func (m EntityMarking) Write(buf *bitio.BitBuffer) error {
	if err := buf.WriteUnsigned(EightBits, uint64(m.CharacterSet)); err != nil {
		return err
	}
	for _, c := range m.Characters {
		if err := buf.WriteUnsigned(EightBits, uint64(c)); err != nil {
			return err
		}
	}
	return nil
}

func readEntityMarking(buf *bitio.BitBuffer) (EntityMarking, error) {
	cs, err := buf.ReadUnsigned(EightBits)
	if err != nil {
		return EntityMarking{}, err
	}
	var m EntityMarking
	m.CharacterSet = uint8(cs)
	for i := range m.Characters {
		c, err := buf.ReadUnsigned(EightBits)
		if err != nil {
			return EntityMarking{}, err
		}
		m.Characters[i] = byte(c)
	}
	return m, nil
}

func (EntityMarking) BitSize() int { return EightBits + 11*EightBits }

// DeadReckoningParameters names the DR algorithm and the acceleration/angular
// velocity terms it uses to extrapolate position between updates.
type DeadReckoningParameters struct {
	Algorithm        varint.VarInt
	LinearAcceleration Vector3 // SVINT14
	AngularVelocity    Vector3 // SVINT12
}

func (d DeadReckoningParameters) Write(buf *bitio.BitBuffer) error {
	if err := d.Algorithm.Encode(buf); err != nil {
		return err
	}
	if err := d.LinearAcceleration.Write(buf); err != nil {
		return err
	}
	return d.AngularVelocity.Write(buf)
}

func readDeadReckoningParameters(buf *bitio.BitBuffer) (DeadReckoningParameters, error) {
	alg, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return DeadReckoningParameters{}, err
	}
	accel, err := ReadVector3(buf, varint.SVINT14)
	if err != nil {
		return DeadReckoningParameters{}, err
	}
	angular, err := ReadVector3(buf, varint.SVINT12)
	if err != nil {
		return DeadReckoningParameters{}, err
	}
	return DeadReckoningParameters{alg, accel, angular}, nil
}

func (d DeadReckoningParameters) BitSize() int {
	return d.Algorithm.BitSize() + d.LinearAcceleration.BitSize() + d.AngularVelocity.BitSize()
}

// variableParameterBits is the fixed on-wire size of a VariableParameter
// record: a 1-bit compressed flag plus a 127-bit payload (spec.md §4.5).
const variableParameterBits = 128

// VariableParameter is one entry of EntityState's variable-parameter list —
// its internal layout depends on Compressed and is otherwise opaque to the
// dispatcher, so it is carried as raw payload bits.
type VariableParameter struct {
	Compressed bool
	Payload    []byte // 127 significant bits, MSB-first
}

func (v VariableParameter) Write(buf *bitio.BitBuffer) error {
	flag := uint64(0)
	if v.Compressed {
		flag = 1
	}
	if err := buf.WriteUnsigned(1, flag); err != nil {
		return err
	}
	for i := 0; i < variableParameterBits-1; i++ {
		bit := (v.Payload[i/8] >> uint(7-i%8)) & 1
		if err := buf.WriteUnsigned(1, uint64(bit)); err != nil {
			return err
		}
	}
	return nil
}

func readVariableParameter(buf *bitio.BitBuffer) (VariableParameter, error) {
	flag, err := buf.ReadUnsigned(1)
	if err != nil {
		return VariableParameter{}, err
	}
	payload, err := readRawBits(buf, variableParameterBits-1)
	if err != nil {
		return VariableParameter{}, err
	}
	return VariableParameter{Compressed: flag == 1, Payload: payload}, nil
}

func (VariableParameter) BitSize() int { return variableParameterBits }

// EntityState is the representative-difficulty body: a fields-present
// bitmap gating nine optional sub-records plus a variable-length list of
// VariableParameters (spec.md §4.5).
type EntityState struct {
	ForceId                uint8 // 3 bits
	EntityId               EntityId
	VariableParameterCount uint8 // 8 bits

	Appearance         *uint32
	AlternateEntityType *EntityType
	EntityCapabilities *uint32
	VariableParameters []VariableParameter
	EntityMarking      *EntityMarking
	DrParameters       *DeadReckoningParameters
	LinearVelocity     *Vector3 // SVINT16
	Orientation        *Orientation
	WorldLocation      *WorldCoordinates
	EntityType         *EntityType
}

func (e EntityState) presenceBits() [presenceBitCount]bool {
	var p [presenceBitCount]bool
	p[presenceAppearance] = e.Appearance != nil
	p[presenceAlternateEntityType] = e.AlternateEntityType != nil
	p[presenceEntityCapabilities] = e.EntityCapabilities != nil
	p[presenceVariableParameters] = len(e.VariableParameters) > 0
	p[presenceEntityMarking] = e.EntityMarking != nil
	p[presenceDrParameters] = e.DrParameters != nil
	p[presenceLinearVelocity] = e.LinearVelocity != nil
	p[presenceOrientation] = e.Orientation != nil
	p[presenceWorldLocation] = e.WorldLocation != nil
	p[presenceEntityType] = e.EntityType != nil
	return p
}

func (e EntityState) PduType() PduType      { return PduTypeEntityState }
func (e EntityState) Originator() *EntityId { return &e.EntityId }
func (e EntityState) Receiver() *EntityId   { return nil }

func (e EntityState) BitSizeOf() int {
	n := presenceBitCount + ThreeBits + EightBits + e.EntityId.BitSize()
	if e.Appearance != nil {
		n += 32
	}
	if e.AlternateEntityType != nil {
		n += e.AlternateEntityType.BitSize()
	}
	if e.EntityCapabilities != nil {
		n += 32
	}
	for range e.VariableParameters {
		n += variableParameterBits
	}
	if e.EntityMarking != nil {
		n += e.EntityMarking.BitSize()
	}
	if e.DrParameters != nil {
		n += e.DrParameters.BitSize()
	}
	if e.LinearVelocity != nil {
		n += e.LinearVelocity.BitSize()
	}
	if e.Orientation != nil {
		n += e.Orientation.BitSize()
	}
	if e.WorldLocation != nil {
		n += e.WorldLocation.BitSize()
	}
	if e.EntityType != nil {
		n += e.EntityType.BitSize()
	}
	return n
}

func (e EntityState) Write(buf *bitio.BitBuffer) error {
	presence := e.presenceBits()
	for _, bit := range presence {
		v := uint64(0)
		if bit {
			v = 1
		}
		if err := buf.WriteUnsigned(1, v); err != nil {
			return err
		}
	}
	if err := buf.WriteUnsigned(ThreeBits, uint64(e.ForceId)); err != nil {
		return err
	}
	if err := buf.WriteUnsigned(EightBits, uint64(e.VariableParameterCount)); err != nil {
		return err
	}
	if err := e.EntityId.Write(buf); err != nil {
		return err
	}

	if presence[presenceAppearance] {
		if err := buf.WriteUnsigned(32, uint64(*e.Appearance)); err != nil {
			return err
		}
	}
	if presence[presenceAlternateEntityType] {
		if err := e.AlternateEntityType.Write(buf); err != nil {
			return err
		}
	}
	if presence[presenceEntityCapabilities] {
		if err := buf.WriteUnsigned(32, uint64(*e.EntityCapabilities)); err != nil {
			return err
		}
	}
	if presence[presenceVariableParameters] {
		for _, vp := range e.VariableParameters {
			if err := vp.Write(buf); err != nil {
				return err
			}
		}
	}
	if presence[presenceEntityMarking] {
		if err := e.EntityMarking.Write(buf); err != nil {
			return err
		}
	}
	if presence[presenceDrParameters] {
		if err := e.DrParameters.Write(buf); err != nil {
			return err
		}
	}
	if presence[presenceLinearVelocity] {
		if err := e.LinearVelocity.Write(buf); err != nil {
			return err
		}
	}
	if presence[presenceOrientation] {
		if err := e.Orientation.Write(buf); err != nil {
			return err
		}
	}
	if presence[presenceWorldLocation] {
		if err := e.WorldLocation.Write(buf); err != nil {
			return err
		}
	}
	if presence[presenceEntityType] {
		if err := e.EntityType.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func readEntityState(buf *bitio.BitBuffer) (EntityState, error) {
	var presence [presenceBitCount]bool
	for i := range presence {
		bit, err := buf.ReadUnsigned(1)
		if err != nil {
			return EntityState{}, err
		}
		presence[i] = bit == 1
	}

	forceId, err := buf.ReadUnsigned(ThreeBits)
	if err != nil {
		return EntityState{}, err
	}
	varParamCount, err := buf.ReadUnsigned(EightBits)
	if err != nil {
		return EntityState{}, err
	}
	entityId, err := ReadEntityId(buf)
	if err != nil {
		return EntityState{}, err
	}

	e := EntityState{ForceId: uint8(forceId), VariableParameterCount: uint8(varParamCount), EntityId: entityId}

	if presence[presenceAppearance] {
		v, err := buf.ReadUnsigned(32)
		if err != nil {
			return EntityState{}, err
		}
		appearance := uint32(v)
		e.Appearance = &appearance
	}
	if presence[presenceAlternateEntityType] {
		et, err := ReadEntityType(buf)
		if err != nil {
			return EntityState{}, err
		}
		e.AlternateEntityType = &et
	}
	if presence[presenceEntityCapabilities] {
		v, err := buf.ReadUnsigned(32)
		if err != nil {
			return EntityState{}, err
		}
		caps := uint32(v)
		e.EntityCapabilities = &caps
	}
	if presence[presenceVariableParameters] {
		e.VariableParameters = make([]VariableParameter, 0, e.VariableParameterCount)
		for i := uint8(0); i < e.VariableParameterCount; i++ {
			vp, err := readVariableParameter(buf)
			if err != nil {
				return EntityState{}, err
			}
			e.VariableParameters = append(e.VariableParameters, vp)
		}
	}
	if presence[presenceEntityMarking] {
		m, err := readEntityMarking(buf)
		if err != nil {
			return EntityState{}, err
		}
		e.EntityMarking = &m
	}
	if presence[presenceDrParameters] {
		dr, err := readDeadReckoningParameters(buf)
		if err != nil {
			return EntityState{}, err
		}
		e.DrParameters = &dr
	}
	if presence[presenceLinearVelocity] {
		v, err := ReadVector3(buf, varint.SVINT16)
		if err != nil {
			return EntityState{}, err
		}
		e.LinearVelocity = &v
	}
	if presence[presenceOrientation] {
		o, err := ReadOrientation(buf)
		if err != nil {
			return EntityState{}, err
		}
		e.Orientation = &o
	}
	if presence[presenceWorldLocation] {
		w, err := ReadWorldCoordinates(buf)
		if err != nil {
			return EntityState{}, err
		}
		e.WorldLocation = &w
	}
	if presence[presenceEntityType] {
		et, err := ReadEntityType(buf)
		if err != nil {
			return EntityState{}, err
		}
		e.EntityType = &et
	}

	return e, nil
}
