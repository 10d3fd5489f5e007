package cdis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sw-vish/cdisgw/internal/bitio"
	"github.com/sw-vish/cdisgw/internal/cdiserr"
	"github.com/sw-vish/cdisgw/internal/cdisfloat"
	"github.com/sw-vish/cdisgw/internal/varint"
)

// serializePdu serializes p into a fresh buffer and returns its bytes and
// bit length, mirroring what disToCdis/cdisToDis do around Serialize.
func serializePdu(t *testing.T, p *Pdu) ([]byte, int) {
	t.Helper()
	buf := bitio.NewBitBuffer()
	n, err := Serialize(p, buf)
	require.NoError(t, err)
	return buf.Bytes(n), n
}

func parseOnePdu(t *testing.T, raw []byte) *Pdu {
	t.Helper()
	buf := bitio.NewBitBufferFromBytes(raw)
	p, err := ParsePdu(buf)
	require.NoError(t, err)
	return p
}

// TestSerializeParsePdu_Acknowledge_RoundTrip is the literal spec.md §8
// scenario 1: an Acknowledge body (104 bits in C-DIS for these values, 160
// bits on the DIS side), parse(serialize(pdu)) == pdu.
func TestSerializeParsePdu_Acknowledge_RoundTrip(t *testing.T) {
	originating := NewEntityId(10, 10, 10)
	receiving := NewEntityId(20, 20, 20)
	body := NewAcknowledge(originating, receiving, 1, 1, 0x01020304)

	header := NewHeader(1, PduTypeAcknowledge, CdisTimeStamp{Units: 1000}, 0)
	pdu := &Pdu{Header: header, Body: body}

	raw, n := serializePdu(t, pdu)
	assert.Equal(t, header.BitSize()+body.BitSizeOf(), n)

	got := parseOnePdu(t, raw)
	assert.Equal(t, pdu.Header.PduType, got.Header.PduType)
	assert.Equal(t, pdu.Header.LengthBits, got.Header.LengthBits)

	gotBody, ok := got.Body.(Acknowledge)
	require.True(t, ok)
	assert.Equal(t, body, gotBody)
}

// TestSerializeParsePdu_DataQuery_RoundTrip is spec.md §8 scenario 2.
func TestSerializeParsePdu_DataQuery_RoundTrip(t *testing.T) {
	originating := NewEntityId(10, 10, 10)
	receiving := NewEntityId(20, 20, 20)
	body := NewDataQuery(originating, receiving, 5, 0, []uint32{52340}, []uint32{34100, 37000})

	header := NewHeader(1, PduTypeDataQuery, CdisTimeStamp{Units: 500}, 0)
	pdu := &Pdu{Header: header, Body: body}

	raw, _ := serializePdu(t, pdu)
	got := parseOnePdu(t, raw)

	gotBody, ok := got.Body.(DataQuery)
	require.True(t, ok)
	assert.Equal(t, body, gotBody)
}

// TestSerializeParsePdu_Fire_RoundTrip is spec.md §8 scenario 5: an
// expendable-munition Fire PDU.
func TestSerializeParsePdu_Fire_RoundTrip(t *testing.T) {
	firing := NewEntityId(1, 1, 1)
	target := NewEntityId(2, 2, 2)
	munition := NewEntityId(1, 1, 2)
	event := NewEventId(1, 1, 7)

	body := Fire{
		FiringEntityId:   firing,
		TargetEntityId:   target,
		MunitionId:       munition,
		EventId:          event,
		FireMissionIndex: varint.New(varint.UVINT32, 0),
		Location:         WorldCoordinates{X: 1000, Y: 2000, Z: 3000},
		Descriptor: MunitionDescriptor{
			EntityType: NewEntityType(8 /*Expendable*/, 0, 0, 0, 0, 0, 0),
			Warhead:    varint.New(varint.UVINT16, 0),
			Fuse:       varint.New(varint.UVINT16, 0),
			Quantity:   varint.New(varint.UVINT16, 1),
			Rate:       varint.New(varint.UVINT16, 0),
		},
		Velocity: NewLinearVelocity(50, 60, 70),
		Range:    cdisfloat.Encode(cdisfloat.ParameterValue, 0),
	}

	header := NewHeader(1, PduTypeFire, CdisTimeStamp{Units: 10}, 0)
	pdu := &Pdu{Header: header, Body: body}

	raw, _ := serializePdu(t, pdu)
	got := parseOnePdu(t, raw)

	gotBody, ok := got.Body.(Fire)
	require.True(t, ok)
	assert.Equal(t, body, gotBody)
}

// TestParseDatagram_MultiPdu is spec.md §8 scenario 6: a datagram carrying
// an Acknowledge followed by a DataQuery must parse both, in order, and any
// trailing garbage shorter than a header must surface as
// InsufficientHeaderLength rather than being silently dropped or treated as
// fatal — this is the sentinel node.isTrailingPadding relies on.
func TestParseDatagram_MultiPdu(t *testing.T) {
	originating := NewEntityId(10, 10, 10)
	receiving := NewEntityId(20, 20, 20)

	ackPdu := &Pdu{
		Header: NewHeader(1, PduTypeAcknowledge, CdisTimeStamp{Units: 1}, 0),
		Body:   NewAcknowledge(originating, receiving, 1, 1, 0x01020304),
	}
	queryPdu := &Pdu{
		Header: NewHeader(1, PduTypeDataQuery, CdisTimeStamp{Units: 2}, 0),
		Body:   NewDataQuery(originating, receiving, 5, 0, []uint32{52340}, nil),
	}

	buf := bitio.NewBitBuffer()
	n1, err := Serialize(ackPdu, buf)
	require.NoError(t, err)
	n2, err := Serialize(queryPdu, buf)
	require.NoError(t, err)
	totalBits := n1 + n2

	// buf.Bytes rounds up to a whole byte, so unless totalBits happens to
	// be a multiple of 8 this datagram already ends with 1-7 bits of
	// padding, same as any real UDP datagram (§4.1): the two PDUs occupy
	// an arbitrary bit range inside a byte array.
	datagram := buf.Bytes(totalBits)
	pdus, err := ParseDatagram(datagram)
	if pad := totalBits % 8; pad == 0 {
		require.NoError(t, err)
	} else {
		var cerr *cdiserr.Error
		require.True(t, errors.As(err, &cerr))
		assert.Equal(t, cdiserr.KindInsufficientHeaderLength, cerr.Kind)
		assert.Equal(t, 8-pad, cerr.BitsSeen)
	}
	require.Len(t, pdus, 2, "PDUs already parsed before any trailing padding must still be returned")
	assert.Equal(t, PduTypeAcknowledge, pdus[0].Header.PduType)
	assert.Equal(t, PduTypeDataQuery, pdus[1].Header.PduType)
	assert.Equal(t, ackPdu.Body, pdus[0].Body)
	assert.Equal(t, queryPdu.Body, pdus[1].Body)

	// Append a whole extra byte of unambiguous garbage, shorter than a
	// header either way, and confirm the same benign sentinel fires
	// alongside both already-parsed PDUs rather than discarding them.
	padded := append(append([]byte{}, datagram...), 0x00)
	pdus, err = ParseDatagram(padded)
	require.Error(t, err)
	var cerr *cdiserr.Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, cdiserr.KindInsufficientHeaderLength, cerr.Kind)
	require.Len(t, pdus, 2, "PDUs already parsed before the trailing padding must still be returned")
	assert.Equal(t, ackPdu.Body, pdus[0].Body)
	assert.Equal(t, queryPdu.Body, pdus[1].Body)
}

// TestSerializePdu_HeaderBackpatchIsIdempotent is spec.md §8 universal
// property 6: serializing the same PDU twice into independent fresh
// buffers produces bit-identical output.
func TestSerializePdu_HeaderBackpatchIsIdempotent(t *testing.T) {
	originating := NewEntityId(10, 10, 10)
	receiving := NewEntityId(20, 20, 20)
	body := NewAcknowledge(originating, receiving, 1, 1, 0x01020304)
	header := NewHeader(1, PduTypeAcknowledge, CdisTimeStamp{Units: 1000}, 0)

	first, n1 := serializePdu(t, &Pdu{Header: header, Body: body})
	second, n2 := serializePdu(t, &Pdu{Header: header, Body: body})

	assert.Equal(t, n1, n2)
	assert.Equal(t, first, second)
}

// TestSerializePdu_LengthConsistency is spec.md §8 universal property 3:
// the header's length field equals the header's own bits plus the body's
// bits, and Serialize's return value agrees.
func TestSerializePdu_LengthConsistency(t *testing.T) {
	originating := NewEntityId(10, 10, 10)
	receiving := NewEntityId(20, 20, 20)
	body := NewDataQuery(originating, receiving, 5, 0, []uint32{52340}, []uint32{34100, 37000})
	header := NewHeader(1, PduTypeDataQuery, CdisTimeStamp{Units: 500}, 0)
	pdu := &Pdu{Header: header, Body: body}

	_, n := serializePdu(t, pdu)
	assert.Equal(t, int(pdu.Header.LengthBits), n)
	assert.Equal(t, pdu.Header.BitSize()+body.BitSizeOf(), int(pdu.Header.LengthBits))
}
