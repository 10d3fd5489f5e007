package codec

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"

	"github.com/sw-vish/cdisgw/internal/dis"
)

func TestEncodeDecodeEntityState_RoundTrip(t *testing.T) {
	src := dis.EntityState{
		EntityId:            dis.EntityId{Site: 1, Application: 2, Entity: 3},
		ForceId:             1,
		EntityType:          dis.EntityType{Kind: 1, Domain: 2, Country: 225, Category: 1, SubCategory: 1, Specific: 1, Extra: 0},
		AlternateEntityType: dis.EntityType{Kind: 1, Domain: 2, Country: 225, Category: 1, SubCategory: 1, Specific: 1, Extra: 0},
		EntityLinearVelocity: r3.Vector{X: 10, Y: 0, Z: -5},
		EntityLocation:       r3.Vector{X: 100.5, Y: 200.25, Z: -50},
		EntityOrientation:    dis.Orientation{Psi: 0.5, Theta: -0.25, Phi: 0.1},
		EntityAppearance:     0xDEADBEEF,
		DeadReckoningParameters: dis.DeadReckoningParameters{
			Algorithm:          2,
			LinearAcceleration: r3.Vector{X: 1, Y: 2, Z: 3},
			AngularVelocity:    r3.Vector{X: 0.1, Y: 0.2, Z: 0.3},
		},
		EntityMarking: dis.EntityMarking{CharacterSet: 1, Characters: [11]byte{'T', 'E', 'S', 'T'}},
		Capabilities:  1,
	}

	encoded := EncodeEntityState(src)
	back := DecodeEntityState(encoded)

	assert.Equal(t, src.EntityId, back.EntityId)
	assert.Equal(t, src.ForceId, back.ForceId)
	assert.Equal(t, src.EntityType, back.EntityType)
	assert.Equal(t, src.EntityAppearance, back.EntityAppearance)
	assert.Equal(t, src.Capabilities, back.Capabilities)
	assert.Equal(t, src.EntityMarking, back.EntityMarking)
	assert.InDelta(t, src.EntityLocation.X, back.EntityLocation.X, 1.0)
	assert.InDelta(t, src.EntityLocation.Y, back.EntityLocation.Y, 1.0)
}

func TestEncodeEntityState_NoVariableParameters(t *testing.T) {
	src := dis.EntityState{
		EntityId:   dis.EntityId{Site: 1, Application: 1, Entity: 1},
		EntityType: dis.EntityType{},
	}
	encoded := EncodeEntityState(src)
	assert.Equal(t, uint8(0), encoded.VariableParameterCount)
	assert.Empty(t, encoded.VariableParameters)
}
