package dis

import (
	"encoding/binary"
	"math"

	"github.com/golang/geo/r3"
)

func init() {
	registerBody(PduTypeDesignator, func(buf []byte) (Body, error) { return unmarshalDesignator(buf) })
	registerBody(PduTypeTransmitter, func(buf []byte) (Body, error) { return unmarshalTransmitter(buf) })
	registerBody(PduTypeSignal, func(buf []byte) (Body, error) { return unmarshalSignal(buf) })
	registerBody(PduTypeReceiver, func(buf []byte) (Body, error) { return unmarshalReceiver(buf) })
	registerBody(PduTypeIFF, func(buf []byte) (Body, error) { return unmarshalIff(buf) })
}

// Designator reports a laser/IR designator spot (IEEE 1278.1 Designator PDU).
type Designator struct {
	DesignatingEntityId  EntityId
	CodeName             uint16
	DesignatedEntityId   EntityId
	DesignatorCode       uint16
	DesignatorPower      float32
	DesignatorWavelength float32
	SpotWrtDesignated    r3.Vector
	SpotLocation         r3.Vector
}

func (p Designator) PduType() PduType      { return PduTypeDesignator }
func (p Designator) Originator() *EntityId { return &p.DesignatingEntityId }
func (p Designator) Receiver() *EntityId   { return &p.DesignatedEntityId }

func (p Designator) Marshal() []byte {
	n := EntityIdLength + 2 + 1 /*code*/ + EntityIdLength + 2 + 4 + 4 + Vector3F32Length + WorldCoordinatesLength
	buf := make([]byte, n)
	off := 0
	p.DesignatingEntityId.Marshal(buf[off:])
	off += EntityIdLength
	buf[off] = 0 // code name spare/system-name high byte, unused
	off++
	binary.BigEndian.PutUint16(buf[off:], p.CodeName)
	off += 2
	p.DesignatedEntityId.Marshal(buf[off:])
	off += EntityIdLength
	binary.BigEndian.PutUint16(buf[off:], p.DesignatorCode)
	off += 2
	binary.BigEndian.PutUint32(buf[off:], math.Float32bits(p.DesignatorPower))
	off += 4
	binary.BigEndian.PutUint32(buf[off:], math.Float32bits(p.DesignatorWavelength))
	off += 4
	MarshalVector3F32(p.SpotWrtDesignated, buf[off:])
	off += Vector3F32Length
	MarshalWorldCoordinates(p.SpotLocation, buf[off:])
	return buf
}

func unmarshalDesignator(buf []byte) (Designator, error) {
	off := 0
	designating := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	off++ // spare
	codeName := binary.BigEndian.Uint16(buf[off:])
	off += 2
	designated := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	code := binary.BigEndian.Uint16(buf[off:])
	off += 2
	power := math.Float32frombits(binary.BigEndian.Uint32(buf[off:]))
	off += 4
	wavelength := math.Float32frombits(binary.BigEndian.Uint32(buf[off:]))
	off += 4
	spotWrt := UnmarshalVector3F32(buf[off:])
	off += Vector3F32Length
	spotLoc := UnmarshalWorldCoordinates(buf[off:])
	return Designator{designating, codeName, designated, code, power, wavelength, spotWrt, spotLoc}, nil
}

// ModulationType bundles the four modulation sub-fields of a radio
// transmitter's modulation parameters record.
type ModulationType struct {
	SpreadSpectrum  uint16
	MajorModulation uint16
	Detail          uint16
	System          uint16
}

const ModulationTypeLength = 8

func (m ModulationType) Marshal(buf []byte) {
	binary.BigEndian.PutUint16(buf[0:], m.SpreadSpectrum)
	binary.BigEndian.PutUint16(buf[2:], m.MajorModulation)
	binary.BigEndian.PutUint16(buf[4:], m.Detail)
	binary.BigEndian.PutUint16(buf[6:], m.System)
}

func unmarshalModulationType(buf []byte) ModulationType {
	return ModulationType{
		SpreadSpectrum:  binary.BigEndian.Uint16(buf[0:]),
		MajorModulation: binary.BigEndian.Uint16(buf[2:]),
		Detail:          binary.BigEndian.Uint16(buf[4:]),
		System:          binary.BigEndian.Uint16(buf[6:]),
	}
}

// Transmitter reports a radio transmitter's state and RF parameters
// (IEEE 1278.1 Transmitter PDU).
type Transmitter struct {
	EntityId        EntityId
	RadioId         uint16
	TransmitState   uint8
	InputSource     uint8
	AntennaLocation r3.Vector
	Frequency       uint64
	Bandwidth       float32
	Power           float32
	Modulation      ModulationType
	CryptoSystem    uint16
	CryptoKeyId     uint16
}

func (p Transmitter) PduType() PduType      { return PduTypeTransmitter }
func (p Transmitter) Originator() *EntityId { return &p.EntityId }
func (p Transmitter) Receiver() *EntityId   { return nil }

func (p Transmitter) Marshal() []byte {
	n := EntityIdLength + 2 + 1 + 1 + Vector3F32Length + 8 + 4 + 4 + ModulationTypeLength + 2 + 2
	buf := make([]byte, n)
	off := 0
	p.EntityId.Marshal(buf[off:])
	off += EntityIdLength
	binary.BigEndian.PutUint16(buf[off:], p.RadioId)
	off += 2
	buf[off] = p.TransmitState
	off++
	buf[off] = p.InputSource
	off++
	MarshalVector3F32(p.AntennaLocation, buf[off:])
	off += Vector3F32Length
	binary.BigEndian.PutUint64(buf[off:], p.Frequency)
	off += 8
	binary.BigEndian.PutUint32(buf[off:], math.Float32bits(p.Bandwidth))
	off += 4
	binary.BigEndian.PutUint32(buf[off:], math.Float32bits(p.Power))
	off += 4
	p.Modulation.Marshal(buf[off:])
	off += ModulationTypeLength
	binary.BigEndian.PutUint16(buf[off:], p.CryptoSystem)
	off += 2
	binary.BigEndian.PutUint16(buf[off:], p.CryptoKeyId)
	return buf
}

func unmarshalTransmitter(buf []byte) (Transmitter, error) {
	off := 0
	entityId := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	radioId := binary.BigEndian.Uint16(buf[off:])
	off += 2
	state := buf[off]
	off++
	input := buf[off]
	off++
	antenna := UnmarshalVector3F32(buf[off:])
	off += Vector3F32Length
	freq := binary.BigEndian.Uint64(buf[off:])
	off += 8
	bandwidth := math.Float32frombits(binary.BigEndian.Uint32(buf[off:]))
	off += 4
	power := math.Float32frombits(binary.BigEndian.Uint32(buf[off:]))
	off += 4
	modulation := unmarshalModulationType(buf[off:])
	off += ModulationTypeLength
	cryptoSystem := binary.BigEndian.Uint16(buf[off:])
	off += 2
	cryptoKey := binary.BigEndian.Uint16(buf[off:])
	return Transmitter{entityId, radioId, state, input, antenna, freq, bandwidth, power, modulation, cryptoSystem, cryptoKey}, nil
}

// Signal carries a block of encoded radio traffic (IEEE 1278.1 Signal PDU).
// Data is padded to a 32-bit boundary on the wire; DataLengthBits names the
// unpadded length.
type Signal struct {
	EntityId       EntityId
	RadioId        uint16
	EncodingScheme uint16
	TdlType        uint16
	SampleRate     uint32
	DataLengthBits uint16
	Samples        uint16
	Data           []byte
}

func (p Signal) PduType() PduType      { return PduTypeSignal }
func (p Signal) Originator() *EntityId { return &p.EntityId }
func (p Signal) Receiver() *EntityId   { return nil }

func (p Signal) paddedDataLength() int {
	n := (int(p.DataLengthBits) + 7) / 8
	if rem := n % 4; rem != 0 {
		n += 4 - rem
	}
	return n
}

func (p Signal) Marshal() []byte {
	n := EntityIdLength + 2 + 2 + 2 + 4 + 2 + 2 + p.paddedDataLength()
	buf := make([]byte, n)
	off := 0
	p.EntityId.Marshal(buf[off:])
	off += EntityIdLength
	binary.BigEndian.PutUint16(buf[off:], p.RadioId)
	off += 2
	binary.BigEndian.PutUint16(buf[off:], p.EncodingScheme)
	off += 2
	binary.BigEndian.PutUint16(buf[off:], p.TdlType)
	off += 2
	binary.BigEndian.PutUint32(buf[off:], p.SampleRate)
	off += 4
	binary.BigEndian.PutUint16(buf[off:], p.DataLengthBits)
	off += 2
	binary.BigEndian.PutUint16(buf[off:], p.Samples)
	off += 2
	copy(buf[off:], p.Data)
	return buf
}

func unmarshalSignal(buf []byte) (Signal, error) {
	off := 0
	entityId := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	radioId := binary.BigEndian.Uint16(buf[off:])
	off += 2
	encoding := binary.BigEndian.Uint16(buf[off:])
	off += 2
	tdl := binary.BigEndian.Uint16(buf[off:])
	off += 2
	sampleRate := binary.BigEndian.Uint32(buf[off:])
	off += 4
	lengthBits := binary.BigEndian.Uint16(buf[off:])
	off += 2
	samples := binary.BigEndian.Uint16(buf[off:])
	off += 2
	p := Signal{entityId, radioId, encoding, tdl, sampleRate, lengthBits, samples, nil}
	n := p.paddedDataLength()
	p.Data = append([]byte(nil), buf[off:off+n]...)
	return p, nil
}

// Receiver reports a radio receiver's state (IEEE 1278.1 Receiver PDU).
type Receiver struct {
	EntityId            EntityId
	RadioId             uint16
	ReceiverState       uint16
	ReceivedPower       float32
	TransmitterEntityId EntityId
	TransmitterRadioId  uint16
}

func (p Receiver) PduType() PduType      { return PduTypeReceiver }
func (p Receiver) Originator() *EntityId { return &p.EntityId }
func (p Receiver) Receiver() *EntityId   { return &p.TransmitterEntityId }

func (p Receiver) Marshal() []byte {
	n := EntityIdLength + 2 + 2 + 4 + EntityIdLength + 2
	buf := make([]byte, n)
	off := 0
	p.EntityId.Marshal(buf[off:])
	off += EntityIdLength
	binary.BigEndian.PutUint16(buf[off:], p.RadioId)
	off += 2
	binary.BigEndian.PutUint16(buf[off:], p.ReceiverState)
	off += 2
	binary.BigEndian.PutUint32(buf[off:], math.Float32bits(p.ReceivedPower))
	off += 4
	p.TransmitterEntityId.Marshal(buf[off:])
	off += EntityIdLength
	binary.BigEndian.PutUint16(buf[off:], p.TransmitterRadioId)
	return buf
}

func unmarshalReceiver(buf []byte) (Receiver, error) {
	off := 0
	entityId := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	radioId := binary.BigEndian.Uint16(buf[off:])
	off += 2
	state := binary.BigEndian.Uint16(buf[off:])
	off += 2
	power := math.Float32frombits(binary.BigEndian.Uint32(buf[off:]))
	off += 4
	txEntityId := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	txRadioId := binary.BigEndian.Uint16(buf[off:])
	return Receiver{entityId, radioId, state, power, txEntityId, txRadioId}, nil
}

// Iff reports an IFF/NAVAIDS transponder's system state (IEEE 1278.1 IFF
// PDU). Condensed to the fields the gateway's record codec carries across to
// C-DIS; full per-mode parameter detail is outside this body's scope.
type Iff struct {
	EntityId          EntityId
	EventId           EntityId
	Location          r3.Vector
	SystemType        uint8
	SystemName        uint8
	SystemMode        uint8
	SystemStatus      uint8
	InformationLayers uint8
	ParameterModifier uint8
}

func (p Iff) PduType() PduType      { return PduTypeIFF }
func (p Iff) Originator() *EntityId { return &p.EntityId }
func (p Iff) Receiver() *EntityId   { return nil }

func (p Iff) Marshal() []byte {
	n := EntityIdLength + EntityIdLength + Vector3F32Length + 6 + 2 /*padding*/
	buf := make([]byte, n)
	off := 0
	p.EntityId.Marshal(buf[off:])
	off += EntityIdLength
	p.EventId.Marshal(buf[off:])
	off += EntityIdLength
	MarshalVector3F32(p.Location, buf[off:])
	off += Vector3F32Length
	buf[off] = p.SystemType
	off++
	buf[off] = p.SystemName
	off++
	buf[off] = p.SystemMode
	off++
	buf[off] = p.SystemStatus
	off++
	buf[off] = p.InformationLayers
	off++
	buf[off] = p.ParameterModifier
	return buf
}

func unmarshalIff(buf []byte) (Iff, error) {
	off := 0
	entityId := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	eventId := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	location := UnmarshalVector3F32(buf[off:])
	off += Vector3F32Length
	systemType := buf[off]
	off++
	systemName := buf[off]
	off++
	systemMode := buf[off]
	off++
	status := buf[off]
	off++
	layers := buf[off]
	off++
	modifier := buf[off]
	return Iff{entityId, eventId, location, systemType, systemName, systemMode, status, layers, modifier}, nil
}
