// Package dis implements the byte-aligned DIS v7 (IEEE 1278.1) wire model:
// the PDU header, shared records, and per-family body codecs, mirroring the
// C-DIS families in package cdis one-for-one so internal/codec can convert
// between them. Grounded on the fixed-buffer binary.BigEndian style used
// throughout the protocol package this gateway's RPKI-to-router server was
// built from.
package dis

import "encoding/binary"

// PduType mirrors the SISO PduType enumeration's numeric codes on the DIS
// side; values line up with cdis.PduType for the families this gateway
// supports.
type PduType uint8

const (
	PduTypeEntityState PduType = 1
	PduTypeFire         PduType = 2
	PduTypeDetonation   PduType = 3
	PduTypeCollision    PduType = 4

	PduTypeCreateEntity PduType = 11
	PduTypeRemoveEntity PduType = 12
	PduTypeStartResume  PduType = 13
	PduTypeStopFreeze   PduType = 14
	PduTypeAcknowledge  PduType = 15
	PduTypeActionRequest  PduType = 16
	PduTypeActionResponse PduType = 17
	PduTypeDataQuery      PduType = 18
	PduTypeSetData        PduType = 19
	PduTypeData           PduType = 20
	PduTypeEventReport    PduType = 21
	PduTypeComment        PduType = 22

	PduTypeElectromagneticEmission PduType = 23
	PduTypeDesignator              PduType = 24
	PduTypeTransmitter             PduType = 25
	PduTypeSignal                  PduType = 26
	PduTypeReceiver                PduType = 27

	PduTypeIFF PduType = 28
)

// HeaderLength is the fixed 12-byte DIS v7 PDU header length.
const HeaderLength = 12

// Header is the 12-byte DIS PDU header: protocol version, exercise id, PDU
// type, protocol family, a 32-bit timestamp, the 16-bit PDU length in bytes,
// and the v7 PduStatus/padding byte pair.
type Header struct {
	ProtocolVersion uint8
	ExerciseId      uint8
	PduType         PduType
	ProtocolFamily  uint8
	Timestamp       uint32
	Length          uint16
	PduStatus       uint8
	Padding         uint8
}

const DisProtocolVersion = 7

func (h Header) Marshal(buf []byte) {
	buf[0] = h.ProtocolVersion
	buf[1] = h.ExerciseId
	buf[2] = uint8(h.PduType)
	buf[3] = h.ProtocolFamily
	binary.BigEndian.PutUint32(buf[4:], h.Timestamp)
	binary.BigEndian.PutUint16(buf[8:], h.Length)
	buf[10] = h.PduStatus
	buf[11] = h.Padding
}

func UnmarshalHeader(buf []byte) Header {
	return Header{
		ProtocolVersion: buf[0],
		ExerciseId:      buf[1],
		PduType:         PduType(buf[2]),
		ProtocolFamily:  buf[3],
		Timestamp:       binary.BigEndian.Uint32(buf[4:]),
		Length:          binary.BigEndian.Uint16(buf[8:]),
		PduStatus:       buf[10],
		Padding:         buf[11],
	}
}
