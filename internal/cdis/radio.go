package cdis

import (
	"github.com/sw-vish/cdisgw/internal/bitio"
	"github.com/sw-vish/cdisgw/internal/cdisfloat"
	"github.com/sw-vish/cdisgw/internal/varint"
)

func init() {
	registerBody(PduTypeDesignator, func(buf *bitio.BitBuffer) (Body, error) { return readDesignator(buf) })
	registerBody(PduTypeTransmitter, func(buf *bitio.BitBuffer) (Body, error) { return readTransmitter(buf) })
	registerBody(PduTypeSignal, func(buf *bitio.BitBuffer) (Body, error) { return readSignal(buf) })
	registerBody(PduTypeReceiver, func(buf *bitio.BitBuffer) (Body, error) { return readReceiver(buf) })
	registerBody(PduTypeIFF, func(buf *bitio.BitBuffer) (Body, error) { return readIff(buf) })
}

// Designator reports a laser/IR designator spot (dis-rs common designator).
type Designator struct {
	DesignatingEntityId EntityId
	CodeName            varint.VarInt // UVINT16
	DesignatedEntityId  EntityId
	DesignatorCode      varint.VarInt // UVINT16
	DesignatorPower     cdisfloat.Float
	DesignatorWavelength cdisfloat.Float
	SpotWrtDesignated   EntityCoordinateVector
	SpotLocation        WorldCoordinates
}

func (p Designator) PduType() PduType      { return PduTypeDesignator }
func (p Designator) Originator() *EntityId { return &p.DesignatingEntityId }
func (p Designator) Receiver() *EntityId   { return &p.DesignatedEntityId }

func (p Designator) BitSizeOf() int {
	return p.DesignatingEntityId.BitSize() + p.CodeName.BitSize() + p.DesignatedEntityId.BitSize() +
		p.DesignatorCode.BitSize() + p.DesignatorPower.Spec.BitSize() + p.DesignatorWavelength.Spec.BitSize() +
		p.SpotWrtDesignated.BitSize() + p.SpotLocation.BitSize()
}

func (p Designator) Write(buf *bitio.BitBuffer) error {
	if err := p.DesignatingEntityId.Write(buf); err != nil {
		return err
	}
	if err := p.CodeName.Encode(buf); err != nil {
		return err
	}
	if err := p.DesignatedEntityId.Write(buf); err != nil {
		return err
	}
	if err := p.DesignatorCode.Encode(buf); err != nil {
		return err
	}
	if err := p.DesignatorPower.Write(buf); err != nil {
		return err
	}
	if err := p.DesignatorWavelength.Write(buf); err != nil {
		return err
	}
	if err := p.SpotWrtDesignated.Write(buf); err != nil {
		return err
	}
	return p.SpotLocation.Write(buf)
}

func readDesignator(buf *bitio.BitBuffer) (Designator, error) {
	designating, err := ReadEntityId(buf)
	if err != nil {
		return Designator{}, err
	}
	codeName, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return Designator{}, err
	}
	designated, err := ReadEntityId(buf)
	if err != nil {
		return Designator{}, err
	}
	code, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return Designator{}, err
	}
	power, err := cdisfloat.Read(buf, cdisfloat.ParameterValue)
	if err != nil {
		return Designator{}, err
	}
	wavelength, err := cdisfloat.Read(buf, cdisfloat.ParameterValue)
	if err != nil {
		return Designator{}, err
	}
	spotWrt, err := ReadVector3(buf, varint.SVINT16)
	if err != nil {
		return Designator{}, err
	}
	spotLoc, err := ReadWorldCoordinates(buf)
	if err != nil {
		return Designator{}, err
	}
	return Designator{designating, codeName, designated, code, power, wavelength, spotWrt, spotLoc}, nil
}

// ModulationType bundles the four modulation sub-fields of a radio
// transmitter's modulation parameters (dis-rs common transmitter).
type ModulationType struct {
	SpreadSpectrum  varint.VarInt
	MajorModulation varint.VarInt
	Detail          varint.VarInt
	System          varint.VarInt
}

func (m ModulationType) Write(buf *bitio.BitBuffer) error {
	for _, v := range []varint.VarInt{m.SpreadSpectrum, m.MajorModulation, m.Detail, m.System} {
		if err := v.Encode(buf); err != nil {
			return err
		}
	}
	return nil
}

func readModulationType(buf *bitio.BitBuffer) (ModulationType, error) {
	ss, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return ModulationType{}, err
	}
	major, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return ModulationType{}, err
	}
	detail, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return ModulationType{}, err
	}
	system, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return ModulationType{}, err
	}
	return ModulationType{ss, major, detail, system}, nil
}

func (m ModulationType) BitSize() int {
	return m.SpreadSpectrum.BitSize() + m.MajorModulation.BitSize() + m.Detail.BitSize() + m.System.BitSize()
}

// Transmitter reports a radio transmitter's state and RF parameters
// (dis-rs common transmitter).
type Transmitter struct {
	EntityId        EntityId
	RadioId         varint.VarInt // UVINT16
	TransmitState   varint.VarInt // UVINT8
	InputSource     varint.VarInt // UVINT8
	AntennaLocation EntityCoordinateVector
	Frequency       varint.VarInt // UVINT32, Hz
	Bandwidth       cdisfloat.Float
	Power           cdisfloat.Float
	Modulation      ModulationType
	CryptoSystem    varint.VarInt // UVINT16
	CryptoKeyId     varint.VarInt // UVINT16
}

func (p Transmitter) PduType() PduType      { return PduTypeTransmitter }
func (p Transmitter) Originator() *EntityId { return &p.EntityId }
func (p Transmitter) Receiver() *EntityId   { return nil }

func (p Transmitter) BitSizeOf() int {
	return p.EntityId.BitSize() + p.RadioId.BitSize() + p.TransmitState.BitSize() + p.InputSource.BitSize() +
		p.AntennaLocation.BitSize() + p.Frequency.BitSize() + p.Bandwidth.Spec.BitSize() + p.Power.Spec.BitSize() +
		p.Modulation.BitSize() + p.CryptoSystem.BitSize() + p.CryptoKeyId.BitSize()
}

func (p Transmitter) Write(buf *bitio.BitBuffer) error {
	if err := p.EntityId.Write(buf); err != nil {
		return err
	}
	if err := p.RadioId.Encode(buf); err != nil {
		return err
	}
	if err := p.TransmitState.Encode(buf); err != nil {
		return err
	}
	if err := p.InputSource.Encode(buf); err != nil {
		return err
	}
	if err := p.AntennaLocation.Write(buf); err != nil {
		return err
	}
	if err := p.Frequency.Encode(buf); err != nil {
		return err
	}
	if err := p.Bandwidth.Write(buf); err != nil {
		return err
	}
	if err := p.Power.Write(buf); err != nil {
		return err
	}
	if err := p.Modulation.Write(buf); err != nil {
		return err
	}
	if err := p.CryptoSystem.Encode(buf); err != nil {
		return err
	}
	return p.CryptoKeyId.Encode(buf)
}

func readTransmitter(buf *bitio.BitBuffer) (Transmitter, error) {
	entityId, err := ReadEntityId(buf)
	if err != nil {
		return Transmitter{}, err
	}
	radioId, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return Transmitter{}, err
	}
	state, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return Transmitter{}, err
	}
	input, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return Transmitter{}, err
	}
	antenna, err := ReadVector3(buf, varint.SVINT16)
	if err != nil {
		return Transmitter{}, err
	}
	freq, err := varint.Decode(buf, varint.UVINT32)
	if err != nil {
		return Transmitter{}, err
	}
	bandwidth, err := cdisfloat.Read(buf, cdisfloat.ParameterValue)
	if err != nil {
		return Transmitter{}, err
	}
	power, err := cdisfloat.Read(buf, cdisfloat.ParameterValue)
	if err != nil {
		return Transmitter{}, err
	}
	modulation, err := readModulationType(buf)
	if err != nil {
		return Transmitter{}, err
	}
	cryptoSystem, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return Transmitter{}, err
	}
	cryptoKey, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return Transmitter{}, err
	}
	return Transmitter{entityId, radioId, state, input, antenna, freq, bandwidth, power, modulation, cryptoSystem, cryptoKey}, nil
}

// Signal carries a block of encoded radio traffic (dis-rs common signal).
// Data is a raw bit payload whose length is self-describing.
type Signal struct {
	EntityId       EntityId
	RadioId        varint.VarInt // UVINT16
	EncodingScheme varint.VarInt // UVINT16
	TdlType        varint.VarInt // UVINT16
	SampleRate     varint.VarInt // UVINT32
	DataLengthBits varint.VarInt // UVINT16
	Samples        varint.VarInt // UVINT16
	Data           []byte
}

func (p Signal) PduType() PduType      { return PduTypeSignal }
func (p Signal) Originator() *EntityId { return &p.EntityId }
func (p Signal) Receiver() *EntityId   { return nil }

func (p Signal) BitSizeOf() int {
	return p.EntityId.BitSize() + p.RadioId.BitSize() + p.EncodingScheme.BitSize() + p.TdlType.BitSize() +
		p.SampleRate.BitSize() + p.DataLengthBits.BitSize() + p.Samples.BitSize() + int(p.DataLengthBits.Value)
}

func (p Signal) Write(buf *bitio.BitBuffer) error {
	if err := p.EntityId.Write(buf); err != nil {
		return err
	}
	if err := p.RadioId.Encode(buf); err != nil {
		return err
	}
	if err := p.EncodingScheme.Encode(buf); err != nil {
		return err
	}
	if err := p.TdlType.Encode(buf); err != nil {
		return err
	}
	if err := p.SampleRate.Encode(buf); err != nil {
		return err
	}
	if err := p.DataLengthBits.Encode(buf); err != nil {
		return err
	}
	if err := p.Samples.Encode(buf); err != nil {
		return err
	}
	n := int(p.DataLengthBits.Value)
	for i := 0; i < n; i++ {
		bit := (p.Data[i/8] >> uint(7-i%8)) & 1
		if err := buf.WriteUnsigned(1, uint64(bit)); err != nil {
			return err
		}
	}
	return nil
}

func readSignal(buf *bitio.BitBuffer) (Signal, error) {
	entityId, err := ReadEntityId(buf)
	if err != nil {
		return Signal{}, err
	}
	radioId, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return Signal{}, err
	}
	encoding, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return Signal{}, err
	}
	tdl, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return Signal{}, err
	}
	sampleRate, err := varint.Decode(buf, varint.UVINT32)
	if err != nil {
		return Signal{}, err
	}
	length, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return Signal{}, err
	}
	samples, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return Signal{}, err
	}
	data, err := readRawBits(buf, int(length.Value))
	if err != nil {
		return Signal{}, err
	}
	return Signal{entityId, radioId, encoding, tdl, sampleRate, length, samples, data}, nil
}

// Receiver reports a radio receiver's state (dis-rs common receiver).
type Receiver struct {
	EntityId            EntityId
	RadioId             varint.VarInt // UVINT16
	ReceiverState       varint.VarInt // UVINT8
	ReceivedPower       cdisfloat.Float
	TransmitterEntityId EntityId
	TransmitterRadioId  varint.VarInt // UVINT16
}

func (p Receiver) PduType() PduType      { return PduTypeReceiver }
func (p Receiver) Originator() *EntityId { return &p.EntityId }
func (p Receiver) Receiver() *EntityId   { return &p.TransmitterEntityId }

func (p Receiver) BitSizeOf() int {
	return p.EntityId.BitSize() + p.RadioId.BitSize() + p.ReceiverState.BitSize() + p.ReceivedPower.Spec.BitSize() +
		p.TransmitterEntityId.BitSize() + p.TransmitterRadioId.BitSize()
}

func (p Receiver) Write(buf *bitio.BitBuffer) error {
	if err := p.EntityId.Write(buf); err != nil {
		return err
	}
	if err := p.RadioId.Encode(buf); err != nil {
		return err
	}
	if err := p.ReceiverState.Encode(buf); err != nil {
		return err
	}
	if err := p.ReceivedPower.Write(buf); err != nil {
		return err
	}
	if err := p.TransmitterEntityId.Write(buf); err != nil {
		return err
	}
	return p.TransmitterRadioId.Encode(buf)
}

func readReceiver(buf *bitio.BitBuffer) (Receiver, error) {
	entityId, err := ReadEntityId(buf)
	if err != nil {
		return Receiver{}, err
	}
	radioId, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return Receiver{}, err
	}
	state, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return Receiver{}, err
	}
	power, err := cdisfloat.Read(buf, cdisfloat.ParameterValue)
	if err != nil {
		return Receiver{}, err
	}
	txEntityId, err := ReadEntityId(buf)
	if err != nil {
		return Receiver{}, err
	}
	txRadioId, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return Receiver{}, err
	}
	return Receiver{entityId, radioId, state, power, txEntityId, txRadioId}, nil
}

// Iff reports an IFF/NAVAIDS transponder's system state (dis-rs common
// iff). FundamentalOperationalData is condensed to the status/layer fields
// the gateway's record codec distinguishes; per-mode parameter detail is
// outside this body's scope.
type Iff struct {
	EntityId            EntityId
	EventId              EntityId
	Location             EntityCoordinateVector
	SystemType           varint.VarInt // UVINT8
	SystemName           varint.VarInt // UVINT8
	SystemMode           varint.VarInt // UVINT8
	SystemStatus         varint.VarInt // UVINT8
	InformationLayers    varint.VarInt // UVINT8
	ParameterModifier    varint.VarInt // UVINT8
}

func (p Iff) PduType() PduType      { return PduTypeIFF }
func (p Iff) Originator() *EntityId { return &p.EntityId }
func (p Iff) Receiver() *EntityId   { return nil }

func (p Iff) BitSizeOf() int {
	return p.EntityId.BitSize() + p.EventId.BitSize() + p.Location.BitSize() + p.SystemType.BitSize() +
		p.SystemName.BitSize() + p.SystemMode.BitSize() + p.SystemStatus.BitSize() +
		p.InformationLayers.BitSize() + p.ParameterModifier.BitSize()
}

func (p Iff) Write(buf *bitio.BitBuffer) error {
	if err := p.EntityId.Write(buf); err != nil {
		return err
	}
	if err := p.EventId.Write(buf); err != nil {
		return err
	}
	if err := p.Location.Write(buf); err != nil {
		return err
	}
	for _, v := range []varint.VarInt{p.SystemType, p.SystemName, p.SystemMode, p.SystemStatus, p.InformationLayers, p.ParameterModifier} {
		if err := v.Encode(buf); err != nil {
			return err
		}
	}
	return nil
}

func readIff(buf *bitio.BitBuffer) (Iff, error) {
	entityId, err := ReadEntityId(buf)
	if err != nil {
		return Iff{}, err
	}
	eventId, err := ReadEntityId(buf)
	if err != nil {
		return Iff{}, err
	}
	location, err := ReadVector3(buf, varint.SVINT16)
	if err != nil {
		return Iff{}, err
	}
	systemType, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return Iff{}, err
	}
	systemName, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return Iff{}, err
	}
	systemMode, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return Iff{}, err
	}
	status, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return Iff{}, err
	}
	layers, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return Iff{}, err
	}
	modifier, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return Iff{}, err
	}
	return Iff{entityId, eventId, location, systemType, systemName, systemMode, status, layers, modifier}, nil
}
