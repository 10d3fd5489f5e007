package cdis

import (
	"github.com/sw-vish/cdisgw/internal/bitio"
	"github.com/sw-vish/cdisgw/internal/cdiserr"
	"github.com/sw-vish/cdisgw/internal/varint"
)

// Header is the C-DIS header (spec.md §3/§6): protocol version, exercise id
// (UVINT8), PDU type, timestamp (26 C-DIS time units), PDU length in bits
// (header-inclusive), and DIS v7 PDU status flags.
type Header struct {
	ProtocolVersion uint8
	ExerciseId      varint.VarInt
	PduType         PduType
	Timestamp       CdisTimeStamp
	LengthBits      uint16 // 14 bits
	Status          uint8  // DIS v7 PduStatus flags, carried byte-for-byte
}

// NewHeader builds a header with LengthBits left at zero; callers back-patch
// it after the body is serialized (§4.6 step 3).
func NewHeader(exerciseId uint8, pduType PduType, timestamp CdisTimeStamp, status uint8) Header {
	return Header{
		ProtocolVersion: ProtocolVersion,
		ExerciseId:      varint.New(varint.UVINT8, int64(exerciseId)),
		PduType:         pduType,
		Timestamp:       timestamp,
		Status:          status,
	}
}

// BitSize returns the header's total on-wire bit length: the fixed portion
// plus the exercise id's VarInt width plus the 8-bit status flags.
func (h Header) BitSize() int {
	return TwoBits + h.ExerciseId.BitSize() + EightBits + TwentySixBits + FourteenBits + EightBits
}

// Write serializes the header at the cursor, including LengthBits as it
// currently stands (callers back-patch by writing again after SeekBit(0)).
func (h Header) Write(buf *bitio.BitBuffer) error {
	if err := buf.WriteUnsigned(TwoBits, uint64(h.ProtocolVersion)); err != nil {
		return err
	}
	if err := h.ExerciseId.Encode(buf); err != nil {
		return err
	}
	if err := buf.WriteUnsigned(EightBits, uint64(h.PduType)); err != nil {
		return err
	}
	if err := h.Timestamp.Write(buf); err != nil {
		return err
	}
	if err := buf.WriteUnsigned(FourteenBits, uint64(h.LengthBits)); err != nil {
		return err
	}
	return buf.WriteUnsigned(EightBits, uint64(h.Status))
}

// ReadHeader parses a header from buf at the cursor. Fails with
// InsufficientHeaderLength if the minimum fixed-width prefix is unavailable.
func ReadHeader(buf *bitio.BitBuffer) (Header, error) {
	// ThreeBits here is a deliberately conservative stand-in for the
	// narrowest UVINT8 (5 bits: 1 flag + 4 value) so this check never
	// rejects a header ReadHeader could otherwise still parse.
	const minFixedBits = TwoBits + ThreeBits + EightBits + TwentySixBits + FourteenBits + EightBits
	if buf.Cursor()+minFixedBits > buf.Len() {
		return Header{}, cdiserr.InsufficientHeaderLength(buf.Len() - buf.Cursor())
	}

	version, err := buf.ReadUnsigned(TwoBits)
	if err != nil {
		return Header{}, cdiserr.InsufficientHeaderLength(buf.Len() - buf.Cursor())
	}
	exerciseId, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return Header{}, cdiserr.InsufficientHeaderLength(buf.Len() - buf.Cursor())
	}
	pduType, err := buf.ReadUnsigned(EightBits)
	if err != nil {
		return Header{}, cdiserr.InsufficientHeaderLength(buf.Len() - buf.Cursor())
	}
	ts, err := ReadCdisTimeStamp(buf)
	if err != nil {
		return Header{}, cdiserr.InsufficientHeaderLength(buf.Len() - buf.Cursor())
	}
	length, err := buf.ReadUnsigned(FourteenBits)
	if err != nil {
		return Header{}, cdiserr.InsufficientHeaderLength(buf.Len() - buf.Cursor())
	}
	status, err := buf.ReadUnsigned(EightBits)
	if err != nil {
		return Header{}, cdiserr.InsufficientHeaderLength(buf.Len() - buf.Cursor())
	}

	return Header{
		ProtocolVersion: uint8(version),
		ExerciseId:      exerciseId,
		PduType:         PduType(pduType),
		Timestamp:       ts,
		LengthBits:      uint16(length),
		Status:          uint8(status),
	}, nil
}
