package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sw-vish/cdisgw/internal/dis"
)

func TestEncodeDecodePdu_Acknowledge_RoundTrip(t *testing.T) {
	orig := dis.EntityId{Site: 1, Application: 2, Entity: 3}
	recv := dis.EntityId{Site: 4, Application: 5, Entity: 6}
	src := &dis.Pdu{
		Header: dis.Header{
			ProtocolVersion: dis.DisProtocolVersion,
			ExerciseId:      1,
			PduType:         dis.PduTypeAcknowledge,
			ProtocolFamily:  5,
			Timestamp:       1000,
			PduStatus:       0,
		},
		Body: dis.Acknowledge{
			Originating:     orig,
			Receiving:       recv,
			AcknowledgeFlag: 1,
			ResponseFlag:    2,
			RequestId:       42,
		},
	}

	cdisPdu, err := EncodePdu(src)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), uint8(cdisPdu.Header.ExerciseId.Value))

	back, err := DecodePdu(cdisPdu)
	require.NoError(t, err)

	assert.Equal(t, src.Header.PduType, back.Header.PduType)
	assert.Equal(t, src.Header.ExerciseId, back.Header.ExerciseId)
	assert.Equal(t, src.Header.ProtocolFamily, back.Header.ProtocolFamily)
	assert.Equal(t, src.Body, back.Body)
}

func TestEncodeDecodePdu_DataQuery_RoundTrip(t *testing.T) {
	orig := dis.EntityId{Site: 7, Application: 8, Entity: 9}
	recv := dis.EntityId{Site: 10, Application: 11, Entity: 12}
	src := &dis.Pdu{
		Header: dis.Header{
			ProtocolVersion: dis.DisProtocolVersion,
			ExerciseId:      3,
			PduType:         dis.PduTypeDataQuery,
			ProtocolFamily:  5,
			Timestamp:       5555,
		},
		Body: dis.DataQuery{
			Originating:      orig,
			Receiving:        recv,
			RequestId:        99,
			TimeInterval:     10,
			FixedDatumIds:    []uint32{1, 2, 3},
			VariableDatumIds: []uint32{4, 5},
		},
	}

	cdisPdu, err := EncodePdu(src)
	require.NoError(t, err)

	back, err := DecodePdu(cdisPdu)
	require.NoError(t, err)
	assert.Equal(t, src.Body, back.Body)
}

func TestEncodePdu_UnsupportedPduType(t *testing.T) {
	src := &dis.Pdu{
		Header: dis.Header{PduType: dis.PduType(250)},
		Body:   nil,
	}
	_, err := EncodePdu(src)
	require.Error(t, err)
}
