package codec

import (
	"github.com/sw-vish/cdisgw/internal/cdis"
	"github.com/sw-vish/cdisgw/internal/cdisfloat"
	"github.com/sw-vish/cdisgw/internal/dis"
	"github.com/sw-vish/cdisgw/internal/varint"
)

func encodeModulationType(m dis.ModulationType) cdis.ModulationType {
	return cdis.ModulationType{
		SpreadSpectrum:  varintValue(varint.UVINT16, int64(m.SpreadSpectrum)),
		MajorModulation: varintValue(varint.UVINT16, int64(m.MajorModulation)),
		Detail:          varintValue(varint.UVINT16, int64(m.Detail)),
		System:          varintValue(varint.UVINT16, int64(m.System)),
	}
}

func decodeModulationType(m cdis.ModulationType) dis.ModulationType {
	return dis.ModulationType{
		SpreadSpectrum:  uint16(m.SpreadSpectrum.Value),
		MajorModulation: uint16(m.MajorModulation.Value),
		Detail:          uint16(m.Detail.Value),
		System:          uint16(m.System.Value),
	}
}

// EncodeDesignator converts a DIS Designator PDU body to C-DIS. The
// relative-position field (SpotWrtDesignated) carries no sibling units flag,
// so this gateway always encodes it as meters (CoordinateUnitsMeters).
func EncodeDesignator(p dis.Designator) cdis.Designator {
	return cdis.Designator{
		DesignatingEntityId:  EncodeEntityId(p.DesignatingEntityId),
		CodeName:             varintValue(varint.UVINT16, int64(p.CodeName)),
		DesignatedEntityId:   EncodeEntityId(p.DesignatedEntityId),
		DesignatorCode:       varintValue(varint.UVINT16, int64(p.DesignatorCode)),
		DesignatorPower:      cdisfloat.Encode(cdisfloat.ParameterValue, float64(p.DesignatorPower)),
		DesignatorWavelength: cdisfloat.Encode(cdisfloat.ParameterValue, float64(p.DesignatorWavelength)),
		SpotWrtDesignated:    EncodeEntityCoordinateVector(p.SpotWrtDesignated, cdis.CoordinateUnitsMeters),
		SpotLocation:         EncodeWorldCoordinates(p.SpotLocation),
	}
}

// DecodeDesignator is EncodeDesignator's inverse.
func DecodeDesignator(p cdis.Designator) dis.Designator {
	return dis.Designator{
		DesignatingEntityId:  DecodeEntityId(p.DesignatingEntityId),
		CodeName:             uint16(p.CodeName.Value),
		DesignatedEntityId:   DecodeEntityId(p.DesignatedEntityId),
		DesignatorCode:       uint16(p.DesignatorCode.Value),
		DesignatorPower:      float32(p.DesignatorPower.Value()),
		DesignatorWavelength: float32(p.DesignatorWavelength.Value()),
		SpotWrtDesignated:    DecodeEntityCoordinateVector(p.SpotWrtDesignated, cdis.CoordinateUnitsMeters),
		SpotLocation:         DecodeWorldCoordinates(p.SpotLocation),
	}
}

// EncodeTransmitter converts a DIS Transmitter PDU body to C-DIS.
func EncodeTransmitter(p dis.Transmitter) cdis.Transmitter {
	return cdis.Transmitter{
		EntityId:        EncodeEntityId(p.EntityId),
		RadioId:         varintValue(varint.UVINT16, int64(p.RadioId)),
		TransmitState:   varintValue(varint.UVINT8, int64(p.TransmitState)),
		InputSource:     varintValue(varint.UVINT8, int64(p.InputSource)),
		AntennaLocation: EncodeEntityCoordinateVector(p.AntennaLocation, cdis.CoordinateUnitsMeters),
		Frequency:       varintValue(varint.UVINT32, int64(p.Frequency)),
		Bandwidth:       cdisfloat.Encode(cdisfloat.ParameterValue, float64(p.Bandwidth)),
		Power:           cdisfloat.Encode(cdisfloat.ParameterValue, float64(p.Power)),
		Modulation:      encodeModulationType(p.Modulation),
		CryptoSystem:    varintValue(varint.UVINT16, int64(p.CryptoSystem)),
		CryptoKeyId:     varintValue(varint.UVINT16, int64(p.CryptoKeyId)),
	}
}

// DecodeTransmitter is EncodeTransmitter's inverse.
func DecodeTransmitter(p cdis.Transmitter) dis.Transmitter {
	return dis.Transmitter{
		EntityId:        DecodeEntityId(p.EntityId),
		RadioId:         uint16(p.RadioId.Value),
		TransmitState:   uint8(p.TransmitState.Value),
		InputSource:     uint8(p.InputSource.Value),
		AntennaLocation: DecodeEntityCoordinateVector(p.AntennaLocation, cdis.CoordinateUnitsMeters),
		Frequency:       uint64(p.Frequency.Value),
		Bandwidth:       float32(p.Bandwidth.Value()),
		Power:           float32(p.Power.Value()),
		Modulation:      decodeModulationType(p.Modulation),
		CryptoSystem:    uint16(p.CryptoSystem.Value),
		CryptoKeyId:     uint16(p.CryptoKeyId.Value),
	}
}

// EncodeSignal converts a DIS Signal PDU body to C-DIS. Data carries across
// byte-for-byte; only the bit count's representation (raw uint16 vs UVINT16)
// and the padding convention (32-bit DIS vs unpadded C-DIS) differ.
func EncodeSignal(p dis.Signal) cdis.Signal {
	return cdis.Signal{
		EntityId:       EncodeEntityId(p.EntityId),
		RadioId:        varintValue(varint.UVINT16, int64(p.RadioId)),
		EncodingScheme: varintValue(varint.UVINT16, int64(p.EncodingScheme)),
		TdlType:        varintValue(varint.UVINT16, int64(p.TdlType)),
		SampleRate:     varintValue(varint.UVINT32, int64(p.SampleRate)),
		DataLengthBits: varintValue(varint.UVINT16, int64(p.DataLengthBits)),
		Samples:        varintValue(varint.UVINT16, int64(p.Samples)),
		Data:           p.Data,
	}
}

// DecodeSignal is EncodeSignal's inverse. The unpadded C-DIS payload is
// re-padded to the 32-bit boundary DIS's Signal PDU requires.
func DecodeSignal(p cdis.Signal) dis.Signal {
	n := int(p.DataLengthBits.Value)
	padded := (n + 7) / 8
	if rem := padded % 4; rem != 0 {
		padded += 4 - rem
	}
	data := make([]byte, padded)
	copy(data, p.Data)
	return dis.Signal{
		EntityId:       DecodeEntityId(p.EntityId),
		RadioId:        uint16(p.RadioId.Value),
		EncodingScheme: uint16(p.EncodingScheme.Value),
		TdlType:        uint16(p.TdlType.Value),
		SampleRate:     uint32(p.SampleRate.Value),
		DataLengthBits: uint16(n),
		Samples:        uint16(p.Samples.Value),
		Data:           data,
	}
}

// EncodeReceiver converts a DIS Receiver PDU body to C-DIS.
func EncodeReceiver(p dis.Receiver) cdis.Receiver {
	return cdis.Receiver{
		EntityId:            EncodeEntityId(p.EntityId),
		RadioId:             varintValue(varint.UVINT16, int64(p.RadioId)),
		ReceiverState:       varintValue(varint.UVINT8, int64(p.ReceiverState)),
		ReceivedPower:       cdisfloat.Encode(cdisfloat.ParameterValue, float64(p.ReceivedPower)),
		TransmitterEntityId: EncodeEntityId(p.TransmitterEntityId),
		TransmitterRadioId:  varintValue(varint.UVINT16, int64(p.TransmitterRadioId)),
	}
}

// DecodeReceiver is EncodeReceiver's inverse.
func DecodeReceiver(p cdis.Receiver) dis.Receiver {
	return dis.Receiver{
		EntityId:            DecodeEntityId(p.EntityId),
		RadioId:             uint16(p.RadioId.Value),
		ReceiverState:       uint16(p.ReceiverState.Value),
		ReceivedPower:       float32(p.ReceivedPower.Value()),
		TransmitterEntityId: DecodeEntityId(p.TransmitterEntityId),
		TransmitterRadioId:  uint16(p.TransmitterRadioId.Value),
	}
}

// EncodeIff converts a DIS IFF PDU body to C-DIS.
func EncodeIff(p dis.Iff) cdis.Iff {
	return cdis.Iff{
		EntityId:          EncodeEntityId(p.EntityId),
		EventId:           EncodeEntityId(p.EventId),
		Location:          EncodeEntityCoordinateVector(p.Location, cdis.CoordinateUnitsMeters),
		SystemType:        varintValue(varint.UVINT8, int64(p.SystemType)),
		SystemName:        varintValue(varint.UVINT8, int64(p.SystemName)),
		SystemMode:        varintValue(varint.UVINT8, int64(p.SystemMode)),
		SystemStatus:      varintValue(varint.UVINT8, int64(p.SystemStatus)),
		InformationLayers: varintValue(varint.UVINT8, int64(p.InformationLayers)),
		ParameterModifier: varintValue(varint.UVINT8, int64(p.ParameterModifier)),
	}
}

// DecodeIff is EncodeIff's inverse.
func DecodeIff(p cdis.Iff) dis.Iff {
	return dis.Iff{
		EntityId:          DecodeEntityId(p.EntityId),
		EventId:           DecodeEntityId(p.EventId),
		Location:          DecodeEntityCoordinateVector(p.Location, cdis.CoordinateUnitsMeters),
		SystemType:        uint8(p.SystemType.Value),
		SystemName:        uint8(p.SystemName.Value),
		SystemMode:        uint8(p.SystemMode.Value),
		SystemStatus:      uint8(p.SystemStatus.Value),
		InformationLayers: uint8(p.InformationLayers.Value),
		ParameterModifier: uint8(p.ParameterModifier.Value),
	}
}
