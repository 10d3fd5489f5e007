package dis

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMarshalUnmarshal_Acknowledge_RoundTrip is the literal spec.md §8
// scenario 1: Unmarshal(Marshal(pdu)) == pdu, with the Acknowledge body
// landing at its fixed 160-bit (20-byte) DIS length.
func TestMarshalUnmarshal_Acknowledge_RoundTrip(t *testing.T) {
	body := Acknowledge{
		Originating:     EntityId{Site: 10, Application: 10, Entity: 10},
		Receiving:       EntityId{Site: 20, Application: 20, Entity: 20},
		AcknowledgeFlag: 1,
		ResponseFlag:    1,
		RequestId:       0x01020304,
	}
	assert.Len(t, body.Marshal(), 20, "Acknowledge body must be exactly 160 bits / 20 bytes on the wire")

	pdu := &Pdu{
		Header: Header{ProtocolVersion: 7, ExerciseId: 1, PduType: PduTypeAcknowledge, Timestamp: 123},
		Body:   body,
	}

	raw := Marshal(pdu)
	assert.Equal(t, int(HeaderLength+20), len(raw))

	got, err := Unmarshal(raw)
	require.NoError(t, err)
	assert.Equal(t, pdu.Header.PduType, got.Header.PduType)
	assert.Equal(t, body, got.Body)
}

// TestMarshalUnmarshal_DataQuery_RoundTrip is spec.md §8 scenario 2.
func TestMarshalUnmarshal_DataQuery_RoundTrip(t *testing.T) {
	body := DataQuery{
		Originating:      EntityId{Site: 10, Application: 10, Entity: 10},
		Receiving:        EntityId{Site: 20, Application: 20, Entity: 20},
		RequestId:        5,
		FixedDatumIds:    []uint32{52340},
		VariableDatumIds: []uint32{34100, 37000},
	}

	pdu := &Pdu{
		Header: Header{ProtocolVersion: 7, ExerciseId: 1, PduType: PduTypeDataQuery, Timestamp: 456},
		Body:   body,
	}

	raw := Marshal(pdu)
	got, err := Unmarshal(raw)
	require.NoError(t, err)

	gotBody, ok := got.Body.(DataQuery)
	require.True(t, ok)
	assert.Equal(t, body, gotBody)
}

// TestMarshalUnmarshal_Fire_RoundTrip is spec.md §8 scenario 5: a Fire PDU
// whose munition descriptor carries an expendable entity type, with a
// PduStatus FireTypeIndicator bit recording the same fact on the header.
func TestMarshalUnmarshal_Fire_RoundTrip(t *testing.T) {
	const fireTypeIndicatorExpendable = 0x10 // PduStatus bit 4 (FTI) set
	body := Fire{
		FiringEntityId:   EntityId{Site: 1, Application: 1, Entity: 1},
		TargetEntityId:   EntityId{Site: 2, Application: 2, Entity: 2},
		MunitionId:       EntityId{Site: 1, Application: 1, Entity: 2},
		EventId:          EventId{Site: 1, Application: 1, Number: 7},
		FireMissionIndex: 0,
		Location:         r3.Vector{X: 1000, Y: 2000, Z: 3000},
		Descriptor: MunitionDescriptor{
			EntityType: EntityType{Kind: 8 /*Expendable*/},
			Quantity:   1,
		},
		Velocity: r3.Vector{X: 50, Y: 60, Z: 70},
		Range:    0,
	}

	pdu := &Pdu{
		Header: Header{
			ProtocolVersion: 7,
			ExerciseId:      1,
			PduType:         PduTypeFire,
			Timestamp:       789,
			PduStatus:       fireTypeIndicatorExpendable,
		},
		Body: body,
	}

	raw := Marshal(pdu)
	got, err := Unmarshal(raw)
	require.NoError(t, err)
	assert.Equal(t, pdu.Header.PduStatus, got.Header.PduStatus)

	gotBody, ok := got.Body.(Fire)
	require.True(t, ok)
	assert.Equal(t, body, gotBody)
}

func TestUnmarshal_ShortHeader(t *testing.T) {
	_, err := Unmarshal([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestUnmarshal_UnknownPduType(t *testing.T) {
	header := Header{ProtocolVersion: 7, ExerciseId: 1, PduType: PduType(250), Length: HeaderLength}
	buf := make([]byte, HeaderLength)
	header.Marshal(buf)
	_, err := Unmarshal(buf)
	require.Error(t, err)
}
