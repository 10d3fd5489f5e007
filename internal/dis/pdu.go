package dis

import "fmt"

// Body is implemented by every DIS PDU body this gateway translates.
type Body interface {
	PduType() PduType
	Marshal() []byte
	Originator() *EntityId
	Receiver() *EntityId
}

type bodyUnmarshaler func(buf []byte) (Body, error)

var bodyUnmarshalers = map[PduType]bodyUnmarshaler{}

func registerBody(t PduType, u bodyUnmarshaler) { bodyUnmarshalers[t] = u }

// Pdu is a full DIS protocol data unit: header plus dispatched body.
type Pdu struct {
	Header Header
	Body   Body
}

// Marshal serializes the header (length back-patched) and body into a
// single byte slice.
func Marshal(p *Pdu) []byte {
	body := p.Body.Marshal()
	p.Header.Length = uint16(HeaderLength + len(body))
	buf := make([]byte, p.Header.Length)
	p.Header.Marshal(buf)
	copy(buf[HeaderLength:], body)
	return buf
}

// Unmarshal parses a single DIS PDU from buf.
func Unmarshal(buf []byte) (*Pdu, error) {
	if len(buf) < HeaderLength {
		return nil, fmt.Errorf("dis: short header: %d bytes", len(buf))
	}
	header := UnmarshalHeader(buf)
	if int(header.Length) > len(buf) {
		return nil, fmt.Errorf("dis: pdu length %d exceeds buffer %d", header.Length, len(buf))
	}
	body := buf[HeaderLength:header.Length]

	u, ok := bodyUnmarshalers[header.PduType]
	if !ok {
		return nil, fmt.Errorf("dis: no body codec for pdu type %d", header.PduType)
	}
	b, err := u(body)
	if err != nil {
		return nil, err
	}
	return &Pdu{Header: header, Body: b}, nil
}
