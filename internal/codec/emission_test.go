package codec

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"

	"github.com/sw-vish/cdisgw/internal/dis"
)

func trackJam(site, application, entity uint16, emitter, beam uint8) dis.TrackJam {
	return dis.TrackJam{
		EntityId:      dis.EntityId{Site: site, Application: application, Entity: entity},
		EmitterNumber: emitter,
		BeamNumber:    beam,
	}
}

func TestEncodeDecodeElectromagneticEmission_PoolsAndDedupes(t *testing.T) {
	params := dis.FundamentalParameterData{Frequency: 9000, FrequencyRange: 10, Erp: 30, Prf: 500, PulseWidth: 1}
	beamData := dis.BeamData{AzimuthCenter: 0.1, AzimuthSweep: 0.2, ElevationCenter: 0.3, ElevationSweep: 0.4, SweepSync: 0.5}

	beam1 := dis.EmitterBeam{
		BeamParameterIndex: 1,
		FundamentalParams:  params,
		BeamData:           beamData,
		JammingKind:        0,
		TrackJamRecords: []dis.TrackJam{
			trackJam(1, 1, 1, 1, 1),
			trackJam(1, 1, 2, 1, 1),
		},
	}
	// beam2 shares the same FundamentalParameterData/BeamData values as beam1,
	// so the pooled encoding should dedupe them into a single pool entry each.
	beam2 := dis.EmitterBeam{
		BeamParameterIndex: 2,
		FundamentalParams:  params,
		BeamData:           beamData,
		JammingKind:        1,
		TrackJamRecords: []dis.TrackJam{
			trackJam(1, 1, 1, 2, 1), // same site/app as the first beam's track jam
		},
	}

	src := dis.ElectromagneticEmission{
		EmittingId:           dis.EntityId{Site: 1, Application: 1, Entity: 1},
		EventId:              dis.EntityId{Site: 1, Application: 1, Entity: 2},
		StateUpdateIndicator: 1,
		EmitterSystems: []dis.EmitterSystem{
			{
				Name:     10,
				Function: 2,
				Number:   0,
				Location: r3.Vector{X: 1, Y: 2, Z: 3},
				Beams:    []dis.EmitterBeam{beam1, beam2},
			},
		},
	}

	encoded := EncodeElectromagneticEmission(src)

	assert.Len(t, encoded.FundamentalParams, 1, "equal FundamentalParameterData values should dedupe into one pool entry")
	assert.Len(t, encoded.BeamDataList, 1, "equal BeamData values should dedupe into one pool entry")
	assert.Len(t, encoded.SiteAppPairs, 1, "every track jam shares the same site/application pair")

	back := DecodeElectromagneticEmission(encoded)
	assert.Equal(t, src.EmittingId, back.EmittingId)
	assert.Equal(t, src.EventId, back.EventId)
	gotSystems := back.EmitterSystems
	assert.Len(t, gotSystems, 1)
	assert.Equal(t, src.EmitterSystems[0].Name, gotSystems[0].Name)
	assert.Equal(t, uint8(0), gotSystems[0].Number, "DIS-only Number field has no C-DIS counterpart and decodes to zero")
	assert.Len(t, gotSystems[0].Beams, 2)
	assert.Equal(t, src.EmitterSystems[0].Beams[0].TrackJamRecords, gotSystems[0].Beams[0].TrackJamRecords)
	assert.Equal(t, src.EmitterSystems[0].Beams[1].TrackJamRecords, gotSystems[0].Beams[1].TrackJamRecords)
}
