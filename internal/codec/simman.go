package codec

import (
	"github.com/sw-vish/cdisgw/internal/cdis"
	"github.com/sw-vish/cdisgw/internal/dis"
	"github.com/sw-vish/cdisgw/internal/varint"
)

// encodeFixedDatum/decodeFixedDatum convert between DIS's plain-uint32 and
// C-DIS's UVINT32-wrapped datum id/value pair.
func encodeFixedDatum(d dis.FixedDatum) cdis.FixedDatum {
	return cdis.NewFixedDatum(d.DatumId, d.DatumValue)
}

func decodeFixedDatum(d cdis.FixedDatum) dis.FixedDatum {
	return dis.FixedDatum{DatumId: uint32(d.DatumId.Value), DatumValue: uint32(d.DatumValue.Value)}
}

func encodeFixedDatums(datums []dis.FixedDatum) []cdis.FixedDatum {
	out := make([]cdis.FixedDatum, len(datums))
	for i, d := range datums {
		out[i] = encodeFixedDatum(d)
	}
	return out
}

func decodeFixedDatums(datums []cdis.FixedDatum) []dis.FixedDatum {
	out := make([]dis.FixedDatum, len(datums))
	for i, d := range datums {
		out[i] = decodeFixedDatum(d)
	}
	return out
}

// encodeVariableDatum/decodeVariableDatum convert between DIS's
// 64-bit-padded byte value and C-DIS's unpadded bit-packed value. Both sides
// already carry the value as a packed big-endian bit string starting at bit
// 0, so the payload bytes carry across unchanged; only the length-prefix
// representation (plain uint32 vs UVINT16) and the padding differ.
func encodeVariableDatum(d dis.VariableDatum) cdis.VariableDatum {
	return cdis.NewVariableDatum(d.DatumId, d.Value, int(d.LengthBits))
}

func decodeVariableDatum(d cdis.VariableDatum) dis.VariableDatum {
	n := int(d.LengthBits.Value)
	padded := (n + 7) / 8
	if rem := padded % 8; rem != 0 {
		padded += 8 - rem
	}
	value := make([]byte, padded)
	copy(value, d.ValueBits)
	return dis.VariableDatum{DatumId: uint32(d.DatumId.Value), LengthBits: uint32(n), Value: value}
}

func encodeVariableDatums(datums []dis.VariableDatum) []cdis.VariableDatum {
	out := make([]cdis.VariableDatum, len(datums))
	for i, d := range datums {
		out[i] = encodeVariableDatum(d)
	}
	return out
}

func decodeVariableDatums(datums []cdis.VariableDatum) []dis.VariableDatum {
	out := make([]dis.VariableDatum, len(datums))
	for i, d := range datums {
		out[i] = decodeVariableDatum(d)
	}
	return out
}

func EncodeCreateEntity(p dis.CreateEntity) cdis.CreateEntity {
	return cdis.NewCreateEntity(EncodeEntityId(p.Originating), EncodeEntityId(p.Receiving), p.RequestId)
}

func DecodeCreateEntity(p cdis.CreateEntity) dis.CreateEntity {
	return dis.CreateEntity{
		Originating: DecodeEntityId(p.Originating),
		Receiving:   DecodeEntityId(p.Receiving),
		RequestId:   uint32(p.RequestId.Value),
	}
}

func EncodeRemoveEntity(p dis.RemoveEntity) cdis.RemoveEntity {
	return cdis.NewRemoveEntity(EncodeEntityId(p.Originating), EncodeEntityId(p.Receiving), p.RequestId)
}

func DecodeRemoveEntity(p cdis.RemoveEntity) dis.RemoveEntity {
	return dis.RemoveEntity{
		Originating: DecodeEntityId(p.Originating),
		Receiving:   DecodeEntityId(p.Receiving),
		RequestId:   uint32(p.RequestId.Value),
	}
}

func EncodeStartResume(p dis.StartResume) cdis.StartResume {
	return cdis.StartResume{
		Originating:    EncodeEntityId(p.Originating),
		Receiving:      EncodeEntityId(p.Receiving),
		RealWorldTime:  EncodeTimestamp(uint32(p.RealWorldTime)),
		SimulationTime: EncodeTimestamp(uint32(p.SimulationTime)),
		RequestId:      varintValue(varint.UVINT32, int64(p.RequestId)),
	}
}

func DecodeStartResume(p cdis.StartResume) dis.StartResume {
	return dis.StartResume{
		Originating:    DecodeEntityId(p.Originating),
		Receiving:      DecodeEntityId(p.Receiving),
		RealWorldTime:  uint64(DecodeTimestamp(p.RealWorldTime)),
		SimulationTime: uint64(DecodeTimestamp(p.SimulationTime)),
		RequestId:      uint32(p.RequestId.Value),
	}
}

func EncodeStopFreeze(p dis.StopFreeze) cdis.StopFreeze {
	return cdis.StopFreeze{
		Originating:    EncodeEntityId(p.Originating),
		Receiving:      EncodeEntityId(p.Receiving),
		RealWorldTime:  EncodeTimestamp(uint32(p.RealWorldTime)),
		Reason:         varintValue(varint.UVINT8, int64(p.Reason)),
		FrozenBehavior: varintValue(varint.UVINT8, int64(p.FrozenBehavior)),
		RequestId:      varintValue(varint.UVINT32, int64(p.RequestId)),
	}
}

func DecodeStopFreeze(p cdis.StopFreeze) dis.StopFreeze {
	return dis.StopFreeze{
		Originating:    DecodeEntityId(p.Originating),
		Receiving:      DecodeEntityId(p.Receiving),
		RealWorldTime:  uint64(DecodeTimestamp(p.RealWorldTime)),
		Reason:         uint8(p.Reason.Value),
		FrozenBehavior: uint8(p.FrozenBehavior.Value),
		RequestId:      uint32(p.RequestId.Value),
	}
}

func EncodeAcknowledge(p dis.Acknowledge) cdis.Acknowledge {
	return cdis.NewAcknowledge(
		EncodeEntityId(p.Originating), EncodeEntityId(p.Receiving),
		uint8(p.AcknowledgeFlag), uint8(p.ResponseFlag), p.RequestId,
	)
}

func DecodeAcknowledge(p cdis.Acknowledge) dis.Acknowledge {
	return dis.Acknowledge{
		Originating:     DecodeEntityId(p.Originating),
		Receiving:       DecodeEntityId(p.Receiving),
		AcknowledgeFlag: uint16(p.AcknowledgeFlag.Value),
		ResponseFlag:    uint16(p.ResponseFlag.Value),
		RequestId:       uint32(p.RequestId.Value),
	}
}

func EncodeActionRequest(p dis.ActionRequest) cdis.ActionRequest {
	return cdis.ActionRequest{
		cdis.NewDatumBearing(
			EncodeEntityId(p.Originating), EncodeEntityId(p.Receiving),
			varintValue(varint.UVINT32, int64(p.RequestId)),
			encodeFixedDatums(p.FixedDatums), encodeVariableDatums(p.VariableDatums),
		),
		varintValue(varint.UVINT32, int64(p.ActionId)),
	}
}

func DecodeActionRequest(p cdis.ActionRequest) dis.ActionRequest {
	return dis.ActionRequest{
		dis.NewDatumBearing(
			DecodeEntityId(p.Originating), DecodeEntityId(p.Receiving),
			uint32(p.RequestId.Value),
			decodeFixedDatums(p.FixedDatums), decodeVariableDatums(p.VariableDatums),
		),
		uint32(p.ActionId.Value),
	}
}

func EncodeActionResponse(p dis.ActionResponse) cdis.ActionResponse {
	return cdis.ActionResponse{
		cdis.NewDatumBearing(
			EncodeEntityId(p.Originating), EncodeEntityId(p.Receiving),
			varintValue(varint.UVINT32, int64(p.RequestId)),
			encodeFixedDatums(p.FixedDatums), encodeVariableDatums(p.VariableDatums),
		),
		varintValue(varint.UVINT8, int64(p.ResponseStatus)),
	}
}

func DecodeActionResponse(p cdis.ActionResponse) dis.ActionResponse {
	return dis.ActionResponse{
		dis.NewDatumBearing(
			DecodeEntityId(p.Originating), DecodeEntityId(p.Receiving),
			uint32(p.RequestId.Value),
			decodeFixedDatums(p.FixedDatums), decodeVariableDatums(p.VariableDatums),
		),
		uint32(p.ResponseStatus.Value),
	}
}

func EncodeDataQuery(p dis.DataQuery) cdis.DataQuery {
	fixedIds := make([]varint.VarInt, len(p.FixedDatumIds))
	for i, id := range p.FixedDatumIds {
		fixedIds[i] = varintValue(varint.UVINT32, int64(id))
	}
	variableIds := make([]varint.VarInt, len(p.VariableDatumIds))
	for i, id := range p.VariableDatumIds {
		variableIds[i] = varintValue(varint.UVINT32, int64(id))
	}
	return cdis.DataQuery{
		Originating:      EncodeEntityId(p.Originating),
		Receiving:        EncodeEntityId(p.Receiving),
		RequestId:        varintValue(varint.UVINT32, int64(p.RequestId)),
		TimeInterval:     varintValue(varint.UVINT32, int64(p.TimeInterval)),
		FixedDatumIds:    fixedIds,
		VariableDatumIds: variableIds,
	}
}

func DecodeDataQuery(p cdis.DataQuery) dis.DataQuery {
	fixedIds := make([]uint32, len(p.FixedDatumIds))
	for i, id := range p.FixedDatumIds {
		fixedIds[i] = uint32(id.Value)
	}
	variableIds := make([]uint32, len(p.VariableDatumIds))
	for i, id := range p.VariableDatumIds {
		variableIds[i] = uint32(id.Value)
	}
	return dis.DataQuery{
		Originating:      DecodeEntityId(p.Originating),
		Receiving:        DecodeEntityId(p.Receiving),
		RequestId:        uint32(p.RequestId.Value),
		TimeInterval:     uint32(p.TimeInterval.Value),
		FixedDatumIds:    fixedIds,
		VariableDatumIds: variableIds,
	}
}

func EncodeSetData(p dis.SetData) cdis.SetData {
	return cdis.SetData{cdis.NewDatumBearing(
		EncodeEntityId(p.Originating), EncodeEntityId(p.Receiving),
		varintValue(varint.UVINT32, int64(p.RequestId)),
		encodeFixedDatums(p.FixedDatums), encodeVariableDatums(p.VariableDatums),
	)}
}

func DecodeSetData(p cdis.SetData) dis.SetData {
	return dis.SetData{dis.NewDatumBearing(
		DecodeEntityId(p.Originating), DecodeEntityId(p.Receiving),
		uint32(p.RequestId.Value),
		decodeFixedDatums(p.FixedDatums), decodeVariableDatums(p.VariableDatums),
	)}
}

func EncodeData(p dis.Data) cdis.Data {
	return cdis.Data{cdis.NewDatumBearing(
		EncodeEntityId(p.Originating), EncodeEntityId(p.Receiving),
		varintValue(varint.UVINT32, int64(p.RequestId)),
		encodeFixedDatums(p.FixedDatums), encodeVariableDatums(p.VariableDatums),
	)}
}

func DecodeData(p cdis.Data) dis.Data {
	return dis.Data{dis.NewDatumBearing(
		DecodeEntityId(p.Originating), DecodeEntityId(p.Receiving),
		uint32(p.RequestId.Value),
		decodeFixedDatums(p.FixedDatums), decodeVariableDatums(p.VariableDatums),
	)}
}

func EncodeEventReport(p dis.EventReport) cdis.EventReport {
	return cdis.EventReport{
		cdis.NewDatumBearing(
			EncodeEntityId(p.Originating), EncodeEntityId(p.Receiving),
			varintValue(varint.UVINT32, int64(p.RequestId)),
			encodeFixedDatums(p.FixedDatums), encodeVariableDatums(p.VariableDatums),
		),
		varintValue(varint.UVINT32, int64(p.EventType)),
	}
}

func DecodeEventReport(p cdis.EventReport) dis.EventReport {
	return dis.EventReport{
		dis.NewDatumBearing(
			DecodeEntityId(p.Originating), DecodeEntityId(p.Receiving),
			uint32(p.RequestId.Value),
			decodeFixedDatums(p.FixedDatums), decodeVariableDatums(p.VariableDatums),
		),
		uint32(p.EventType.Value),
	}
}

func EncodeComment(p dis.Comment) cdis.Comment {
	return cdis.Comment{
		Originating:    EncodeEntityId(p.Originating),
		Receiving:      EncodeEntityId(p.Receiving),
		VariableDatums: encodeVariableDatums(p.VariableDatums),
	}
}

func DecodeComment(p cdis.Comment) dis.Comment {
	return dis.Comment{
		Originating:    DecodeEntityId(p.Originating),
		Receiving:      DecodeEntityId(p.Receiving),
		VariableDatums: decodeVariableDatums(p.VariableDatums),
	}
}
