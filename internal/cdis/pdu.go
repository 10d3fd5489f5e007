package cdis

import (
	"github.com/sw-vish/cdisgw/internal/bitio"
	"github.com/sw-vish/cdisgw/internal/cdiserr"
)

// Body is implemented by every PDU body codec: EntityState, Fire,
// Detonation, Collision, the simulation-management family, Electromagnetic
// Emission, Designator, Transmitter, Signal, Receiver, IFF, and Unsupported.
type Body interface {
	PduType() PduType
	Write(buf *bitio.BitBuffer) error
	BitSizeOf() int
	Originator() *EntityId
	Receiver() *EntityId
}

// bodyParser parses a body of a known type from buf at the cursor.
type bodyParser func(buf *bitio.BitBuffer) (Body, error)

var bodyParsers = map[PduType]bodyParser{}

// registerBody wires a PDU type's parser into the dispatch table. Called
// from each body codec file's init, keeping pdu.go free of a hand-maintained
// switch that would drift from the per-family files.
func registerBody(t PduType, p bodyParser) { bodyParsers[t] = p }

// Pdu is a full C-DIS protocol data unit: header plus dispatched body.
type Pdu struct {
	Header Header
	Body   Body
}

// FinalizeLength sets Header.LengthBits from the header and body's actual
// bit sizes (spec.md §3 invariant: the length field equals the bits
// written).
func (p *Pdu) FinalizeLength() {
	p.Header.LengthBits = uint16(p.Header.BitSize() + p.Body.BitSizeOf())
}

// Serialize writes the header (reserved, then back-patched) and body into
// buf starting at the cursor, and returns the total bits written. Fails
// fast with InsufficientBufferSize if the PDU would exceed MTUBits.
func Serialize(p *Pdu, buf *bitio.BitBuffer) (int, error) {
	start := buf.Cursor()
	p.FinalizeLength()
	if start+int(p.Header.LengthBits) > MTUBits {
		return 0, cdiserr.InsufficientBufferSize(int(p.Header.LengthBits), MTUBits-start)
	}

	headerBits := p.Header.BitSize()
	// Reserve header space, serialize body, then back-patch the header at
	// the reserved position — mirrors spec.md §4.6 steps 1-3.
	buf.SeekBit(start + headerBits)
	if err := p.Body.Write(buf); err != nil {
		return 0, err
	}
	bodyEnd := buf.Cursor()

	buf.SeekBit(start)
	if err := p.Header.Write(buf); err != nil {
		return 0, err
	}
	buf.SeekBit(bodyEnd)

	return bodyEnd - start, nil
}

// ParsePdu parses a single PDU from buf at the cursor: header then dispatched
// body. A type code outside the supported set parses as Unsupported,
// preserving the raw body bits (spec.md §4.6 step 4); a supported type with
// no registered body parser yields UnsupportedPdu (registerBody covers the
// whole supported set, so this does not occur in practice).
func ParsePdu(buf *bitio.BitBuffer) (*Pdu, error) {
	header, err := ReadHeader(buf)
	if err != nil {
		return nil, err
	}

	bodyStart := buf.Cursor()
	bodyBits := int(header.LengthBits) - header.BitSize()
	if bodyBits < 0 || bodyStart+bodyBits > buf.Len() {
		return nil, cdiserr.InsufficientPduLength(bodyStart+bodyBits, buf.Len())
	}

	if !IsSupported(header.PduType) {
		raw, rerr := readRawBits(buf, bodyBits)
		if rerr != nil {
			return nil, rerr
		}
		return &Pdu{Header: header, Body: Unsupported{Type: header.PduType, RawBits: raw, NumBits: bodyBits}}, nil
	}

	parser, ok := bodyParsers[header.PduType]
	if !ok {
		return nil, cdiserr.UnsupportedPdu(uint8(header.PduType))
	}
	body, err := parser(buf)
	if err != nil {
		return nil, err
	}
	buf.SeekBit(bodyStart + bodyBits)
	return &Pdu{Header: header, Body: body}, nil
}

// ParseDatagram parses every PDU in a byte slice that may contain more than
// one back-to-back PDU (spec.md §4.6 step 3, §8 "multi-PDU datagram").
// PDUs parsed before an error still return, alongside that error.
func ParseDatagram(data []byte) ([]*Pdu, error) {
	buf := bitio.NewBitBufferFromBytes(data)
	var pdus []*Pdu
	for buf.Cursor() < buf.Len() {
		remaining := buf.Len() - buf.Cursor()
		if remaining < HeaderFixedBits {
			return pdus, cdiserr.InsufficientHeaderLength(remaining)
		}
		pdu, err := ParsePdu(buf)
		if err != nil {
			return pdus, err
		}
		pdus = append(pdus, pdu)
	}
	return pdus, nil
}

func readRawBits(buf *bitio.BitBuffer, n int) ([]byte, error) {
	start := buf.Cursor()
	if start+n > buf.Len() {
		return nil, cdiserr.InsufficientPduLength(start+n, buf.Len())
	}
	raw := buf.Bytes(start + n)[start/8:]
	buf.SeekBit(start + n)
	return raw, nil
}

// Unsupported preserves the original body bits of a PDU type outside the
// C-DIS-supported set (spec.md §4.6 step 4).
type Unsupported struct {
	Type    PduType
	RawBits []byte
	NumBits int
}

func (u Unsupported) PduType() PduType      { return u.Type }
func (u Unsupported) BitSizeOf() int        { return u.NumBits }
func (u Unsupported) Originator() *EntityId { return nil }
func (u Unsupported) Receiver() *EntityId   { return nil }
func (u Unsupported) Write(buf *bitio.BitBuffer) error {
	for i := 0; i < u.NumBits; i++ {
		bit := (u.RawBits[i/8] >> uint(7-i%8)) & 1
		if err := buf.WriteUnsigned(1, uint64(bit)); err != nil {
			return err
		}
	}
	return nil
}
