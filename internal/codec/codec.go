// Package codec converts already-parsed DIS and C-DIS PDU bodies into each
// other's value representation. It never touches wire bytes directly: the
// dis and cdis packages own parsing/serialization, codec only maps one
// package's structs to the other's, applying unit scaling and quantization
// along the way.
package codec

import (
	"fmt"

	"github.com/sw-vish/cdisgw/internal/cdis"
	"github.com/sw-vish/cdisgw/internal/cdiserr"
	"github.com/sw-vish/cdisgw/internal/dis"
)

// protocolFamily maps a PDU type to the DIS v7 protocol family byte a C-DIS
// header has no room for (cdis.Header carries PduType but not family). DIS
// requires the byte on the wire, so decoding derives it from the type rather
// than dropping the field.
func protocolFamily(t dis.PduType) uint8 {
	switch t {
	case dis.PduTypeEntityState, dis.PduTypeCollision:
		return 1 // Entity Information/Interaction
	case dis.PduTypeFire, dis.PduTypeDetonation:
		return 2 // Warfare
	case dis.PduTypeCreateEntity, dis.PduTypeRemoveEntity, dis.PduTypeStartResume,
		dis.PduTypeStopFreeze, dis.PduTypeAcknowledge, dis.PduTypeActionRequest,
		dis.PduTypeActionResponse, dis.PduTypeDataQuery, dis.PduTypeSetData,
		dis.PduTypeData, dis.PduTypeEventReport, dis.PduTypeComment:
		return 5 // Simulation Management
	case dis.PduTypeElectromagneticEmission, dis.PduTypeDesignator:
		return 6 // Distributed Emission Regeneration
	case dis.PduTypeTransmitter, dis.PduTypeSignal, dis.PduTypeReceiver:
		return 4 // Radio Communications
	case dis.PduTypeIFF:
		return 7 // IFF/SIF
	default:
		return 0
	}
}

// EncodePdu converts a full DIS PDU into its C-DIS equivalent, dispatching
// the body conversion by PduType (spec.md §4.6/§4.7 DIS-to-C-DIS direction).
// An unsupported PduType yields a cdiserr.Error of KindUnsupportedPdu rather
// than a silently dropped PDU.
func EncodePdu(p *dis.Pdu) (*cdis.Pdu, error) {
	pduType := cdis.PduType(p.Header.PduType)
	if !cdis.IsSupported(pduType) {
		return nil, cdiserr.UnsupportedPdu(uint8(p.Header.PduType))
	}

	body, err := encodeBody(pduType, p.Body)
	if err != nil {
		return nil, err
	}

	header := cdis.NewHeader(p.Header.ExerciseId, pduType, EncodeTimestamp(p.Header.Timestamp), p.Header.PduStatus)
	return &cdis.Pdu{Header: header, Body: body}, nil
}

// DecodePdu converts a full C-DIS PDU into its DIS equivalent (spec.md
// §4.6/§4.7 C-DIS-to-DIS direction). A cdis.Unsupported body (a PDU type
// outside the C-DIS-supported set, passed through with its raw bits intact)
// has no DIS body to decode into and returns KindUnsupportedPdu.
func DecodePdu(p *cdis.Pdu) (*dis.Pdu, error) {
	if _, ok := p.Body.(cdis.Unsupported); ok {
		return nil, cdiserr.UnsupportedPdu(uint8(p.Header.PduType))
	}

	body, err := decodeBody(p.Header.PduType, p.Body)
	if err != nil {
		return nil, err
	}

	disPduType := dis.PduType(p.Header.PduType)
	header := dis.Header{
		ProtocolVersion: dis.DisProtocolVersion,
		ExerciseId:      uint8(p.Header.ExerciseId.Value),
		PduType:         disPduType,
		ProtocolFamily:  protocolFamily(disPduType),
		Timestamp:       DecodeTimestamp(p.Header.Timestamp),
		PduStatus:       p.Header.Status,
	}
	return &dis.Pdu{Header: header, Body: body}, nil
}

func encodeBody(t cdis.PduType, b dis.Body) (cdis.Body, error) {
	switch v := b.(type) {
	case dis.EntityState:
		return EncodeEntityState(v), nil
	case dis.Fire:
		return EncodeFire(v), nil
	case dis.Detonation:
		return EncodeDetonation(v), nil
	case dis.Collision:
		return EncodeCollision(v), nil
	case dis.CreateEntity:
		return EncodeCreateEntity(v), nil
	case dis.RemoveEntity:
		return EncodeRemoveEntity(v), nil
	case dis.StartResume:
		return EncodeStartResume(v), nil
	case dis.StopFreeze:
		return EncodeStopFreeze(v), nil
	case dis.Acknowledge:
		return EncodeAcknowledge(v), nil
	case dis.ActionRequest:
		return EncodeActionRequest(v), nil
	case dis.ActionResponse:
		return EncodeActionResponse(v), nil
	case dis.DataQuery:
		return EncodeDataQuery(v), nil
	case dis.SetData:
		return EncodeSetData(v), nil
	case dis.Data:
		return EncodeData(v), nil
	case dis.EventReport:
		return EncodeEventReport(v), nil
	case dis.Comment:
		return EncodeComment(v), nil
	case dis.ElectromagneticEmission:
		return EncodeElectromagneticEmission(v), nil
	case dis.Designator:
		return EncodeDesignator(v), nil
	case dis.Transmitter:
		return EncodeTransmitter(v), nil
	case dis.Signal:
		return EncodeSignal(v), nil
	case dis.Receiver:
		return EncodeReceiver(v), nil
	case dis.Iff:
		return EncodeIff(v), nil
	default:
		return nil, fmt.Errorf("codec: no body encoder for pdu type %d (go type %T)", t, b)
	}
}

func decodeBody(t cdis.PduType, b cdis.Body) (dis.Body, error) {
	switch v := b.(type) {
	case cdis.EntityState:
		return DecodeEntityState(v), nil
	case cdis.Fire:
		return DecodeFire(v), nil
	case cdis.Detonation:
		return DecodeDetonation(v), nil
	case cdis.Collision:
		return DecodeCollision(v), nil
	case cdis.CreateEntity:
		return DecodeCreateEntity(v), nil
	case cdis.RemoveEntity:
		return DecodeRemoveEntity(v), nil
	case cdis.StartResume:
		return DecodeStartResume(v), nil
	case cdis.StopFreeze:
		return DecodeStopFreeze(v), nil
	case cdis.Acknowledge:
		return DecodeAcknowledge(v), nil
	case cdis.ActionRequest:
		return DecodeActionRequest(v), nil
	case cdis.ActionResponse:
		return DecodeActionResponse(v), nil
	case cdis.DataQuery:
		return DecodeDataQuery(v), nil
	case cdis.SetData:
		return DecodeSetData(v), nil
	case cdis.Data:
		return DecodeData(v), nil
	case cdis.EventReport:
		return DecodeEventReport(v), nil
	case cdis.Comment:
		return DecodeComment(v), nil
	case cdis.ElectromagneticEmission:
		return DecodeElectromagneticEmission(v), nil
	case cdis.Designator:
		return DecodeDesignator(v), nil
	case cdis.Transmitter:
		return DecodeTransmitter(v), nil
	case cdis.Signal:
		return DecodeSignal(v), nil
	case cdis.Receiver:
		return DecodeReceiver(v), nil
	case cdis.Iff:
		return DecodeIff(v), nil
	default:
		return nil, fmt.Errorf("codec: no body decoder for pdu type %d (go type %T)", t, b)
	}
}
