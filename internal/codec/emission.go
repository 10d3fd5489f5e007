package codec

import (
	"github.com/golang/geo/r3"

	"github.com/sw-vish/cdisgw/internal/cdis"
	"github.com/sw-vish/cdisgw/internal/cdisfloat"
	"github.com/sw-vish/cdisgw/internal/dis"
	"github.com/sw-vish/cdisgw/internal/varint"
)

func encodeFundamentalParameterData(f dis.FundamentalParameterData) cdis.FundamentalParameterData {
	return cdis.FundamentalParameterData{
		Frequency:      cdisfloat.Encode(cdisfloat.ParameterValue, float64(f.Frequency)),
		FrequencyRange: cdisfloat.Encode(cdisfloat.ParameterValue, float64(f.FrequencyRange)),
		Erp:            cdisfloat.Encode(cdisfloat.ParameterValue, float64(f.Erp)),
		Prf:            cdisfloat.Encode(cdisfloat.ParameterValue, float64(f.Prf)),
		PulseWidth:     cdisfloat.Encode(cdisfloat.ParameterValue, float64(f.PulseWidth)),
	}
}

func decodeFundamentalParameterData(f cdis.FundamentalParameterData) dis.FundamentalParameterData {
	return dis.FundamentalParameterData{
		Frequency:      float32(f.Frequency.Value()),
		FrequencyRange: float32(f.FrequencyRange.Value()),
		Erp:            float32(f.Erp.Value()),
		Prf:            float32(f.Prf.Value()),
		PulseWidth:     float32(f.PulseWidth.Value()),
	}
}

func encodeBeamData(b dis.BeamData) cdis.BeamData {
	return cdis.BeamData{
		AzimuthCenter:   cdisfloat.Encode(cdisfloat.ParameterValue, float64(b.AzimuthCenter)),
		AzimuthSweep:    cdisfloat.Encode(cdisfloat.ParameterValue, float64(b.AzimuthSweep)),
		ElevationCenter: cdisfloat.Encode(cdisfloat.ParameterValue, float64(b.ElevationCenter)),
		ElevationSweep:  cdisfloat.Encode(cdisfloat.ParameterValue, float64(b.ElevationSweep)),
		SweepSync:       cdisfloat.Encode(cdisfloat.ParameterValue, float64(b.SweepSync)),
	}
}

func decodeBeamData(b cdis.BeamData) dis.BeamData {
	return dis.BeamData{
		AzimuthCenter:   float32(b.AzimuthCenter.Value()),
		AzimuthSweep:    float32(b.AzimuthSweep.Value()),
		ElevationCenter: float32(b.ElevationCenter.Value()),
		ElevationSweep:  float32(b.ElevationSweep.Value()),
		SweepSync:       float32(b.SweepSync.Value()),
	}
}

// emissionPools accumulates the PDU-level FundamentalParameterData, BeamData,
// and SiteAppPair lists that C-DIS pools and EmitterBeam/TrackJam reference by
// index. DIS has no such pool — every beam embeds its own records directly —
// so encoding builds the pool here, deduplicating equal values to keep the
// compressed side's counted lists small.
type emissionPools struct {
	params   []cdis.FundamentalParameterData
	beamData []cdis.BeamData
	siteApp  []cdis.SiteAppPair
}

func (p *emissionPools) paramsIndex(f dis.FundamentalParameterData) uint8 {
	enc := encodeFundamentalParameterData(f)
	for i, existing := range p.params {
		if existing == enc {
			return uint8(i)
		}
	}
	p.params = append(p.params, enc)
	return uint8(len(p.params) - 1)
}

func (p *emissionPools) beamDataIndex(b dis.BeamData) uint8 {
	enc := encodeBeamData(b)
	for i, existing := range p.beamData {
		if existing == enc {
			return uint8(i)
		}
	}
	p.beamData = append(p.beamData, enc)
	return uint8(len(p.beamData) - 1)
}

func (p *emissionPools) siteAppIndex(site, application uint16) uint8 {
	pair := cdis.SiteAppPair{
		Site:        varintValue(varint.UVINT16, int64(site)),
		Application: varintValue(varint.UVINT16, int64(application)),
	}
	for i, existing := range p.siteApp {
		if existing == pair {
			return uint8(i)
		}
	}
	p.siteApp = append(p.siteApp, pair)
	return uint8(len(p.siteApp) - 1)
}

func encodeTrackJam(t dis.TrackJam, pools *emissionPools) cdis.TrackJam {
	idx := pools.siteAppIndex(t.EntityId.Site, t.EntityId.Application)
	emitterNumber := t.EmitterNumber
	beamNumber := t.BeamNumber
	return cdis.TrackJam{
		SiteAppPairIndex: idx,
		EntityId:         EncodeEntityId(t.EntityId),
		EmitterNumber:    &emitterNumber,
		BeamNumber:       &beamNumber,
	}
}

// decodeTrackJam is encodeTrackJam's inverse. The site/app pair the index
// refers to is redundant with the EntityId's own Site/Application (both
// travel together in this gateway's encoding), so EntityId is decoded
// directly and the pool entry is only consulted for bounds validation, which
// the compressed-side decoder has already performed.
func decodeTrackJam(t cdis.TrackJam) dis.TrackJam {
	var emitterNumber, beamNumber uint8
	if t.EmitterNumber != nil {
		emitterNumber = *t.EmitterNumber
	}
	if t.BeamNumber != nil {
		beamNumber = *t.BeamNumber
	}
	return dis.TrackJam{
		EntityId:      DecodeEntityId(t.EntityId),
		EmitterNumber: emitterNumber,
		BeamNumber:    beamNumber,
	}
}

func encodeEmitterBeam(b dis.EmitterBeam, pools *emissionPools) cdis.EmitterBeam {
	paramsIdx := pools.paramsIndex(b.FundamentalParams)
	dataIdx := pools.beamDataIndex(b.BeamData)
	jammingKind := b.JammingKind

	trackJams := make([]cdis.TrackJam, len(b.TrackJamRecords))
	for i, tj := range b.TrackJamRecords {
		trackJams[i] = encodeTrackJam(tj, pools)
	}

	return cdis.EmitterBeam{
		HasParamsIndex:         true,
		HasDataIndex:           true,
		HasJammingKind:         true,
		HasTrackJamList:        len(trackJams) > 0,
		BeamParameterIndex:     b.BeamParameterIndex,
		FundamentalParamsIndex: &paramsIdx,
		BeamDataIndex:          &dataIdx,
		JammingKind:            &jammingKind,
		TrackJamRecords:        trackJams,
	}
}

// decodeEmitterBeam resolves a beam's pool indices back into directly
// embedded DIS records. The compressed-side decoder validates every
// track-jam site/app index before this function runs; it does not validate
// params/beamData indices, and an out-of-range one here decodes to the
// zero-value record instead of an error.
func decodeEmitterBeam(b cdis.EmitterBeam, params []dis.FundamentalParameterData, beamData []dis.BeamData) dis.EmitterBeam {
	var fp dis.FundamentalParameterData
	if b.FundamentalParamsIndex != nil && int(*b.FundamentalParamsIndex) < len(params) {
		fp = params[*b.FundamentalParamsIndex]
	}
	var bd dis.BeamData
	if b.BeamDataIndex != nil && int(*b.BeamDataIndex) < len(beamData) {
		bd = beamData[*b.BeamDataIndex]
	}
	var jammingKind uint8
	if b.JammingKind != nil {
		jammingKind = *b.JammingKind
	}

	trackJams := make([]dis.TrackJam, len(b.TrackJamRecords))
	for i, tj := range b.TrackJamRecords {
		trackJams[i] = decodeTrackJam(tj)
	}

	return dis.EmitterBeam{
		BeamParameterIndex: b.BeamParameterIndex,
		FundamentalParams:  fp,
		BeamData:           bd,
		JammingKind:        jammingKind,
		TrackJamRecords:    trackJams,
	}
}

// encodeEmitterSystem converts a DIS EmitterSystem to C-DIS. DIS always
// supplies Name, Function, and Location, so this gateway always marks both
// presence bits set. The system Number has no C-DIS counterpart and is
// dropped; decoding synthesizes it as 0.
func encodeEmitterSystem(s dis.EmitterSystem, pools *emissionPools) cdis.EmitterSystem {
	name := varintValue(varint.UVINT16, int64(s.Name))
	function := varintValue(varint.UVINT8, int64(s.Function))
	location := EncodeEntityCoordinateVector(s.Location, cdis.CoordinateUnitsMeters)

	beams := make([]cdis.EmitterBeam, len(s.Beams))
	for i, b := range s.Beams {
		beams[i] = encodeEmitterBeam(b, pools)
	}

	return cdis.EmitterSystem{
		Name:     &name,
		Function: &function,
		Location: &location,
		Beams:    beams,
	}
}

func decodeEmitterSystem(s cdis.EmitterSystem, params []dis.FundamentalParameterData, beamData []dis.BeamData) dis.EmitterSystem {
	var name uint16
	var function uint8
	if s.Name != nil {
		name = uint16(s.Name.Value)
	}
	if s.Function != nil {
		function = uint8(s.Function.Value)
	}
	var location r3.Vector
	if s.Location != nil {
		location = DecodeEntityCoordinateVector(*s.Location, cdis.CoordinateUnitsMeters)
	}

	beams := make([]dis.EmitterBeam, len(s.Beams))
	for i, b := range s.Beams {
		beams[i] = decodeEmitterBeam(b, params, beamData)
	}

	return dis.EmitterSystem{
		Name:     name,
		Function: function,
		Number:   0,
		Location: location,
		Beams:    beams,
	}
}

// EncodeElectromagneticEmission converts a DIS ElectromagneticEmission PDU
// body to C-DIS. C-DIS pools FundamentalParameterData, BeamData, and
// site/app pairs at the PDU level and has beams/track-jam records reference
// them by index; DIS embeds each record directly per beam/per track-jam,
// so encoding builds the pool as it walks the DIS-side systems.
func EncodeElectromagneticEmission(p dis.ElectromagneticEmission) cdis.ElectromagneticEmission {
	var pools emissionPools
	systems := make([]cdis.EmitterSystem, len(p.EmitterSystems))
	for i, s := range p.EmitterSystems {
		systems[i] = encodeEmitterSystem(s, &pools)
	}

	return cdis.ElectromagneticEmission{
		FullUpdateFlag:       true,
		FundamentalParams:    pools.params,
		BeamDataList:         pools.beamData,
		SiteAppPairs:         pools.siteApp,
		EmittingId:           EncodeEntityId(p.EmittingId),
		EventId:              EncodeEntityId(p.EventId),
		StateUpdateIndicator: p.StateUpdateIndicator != 0,
		EmitterSystems:       systems,
	}
}

// DecodeElectromagneticEmission is EncodeElectromagneticEmission's inverse,
// resolving each beam's pool-index references back into directly embedded
// DIS records.
func DecodeElectromagneticEmission(p cdis.ElectromagneticEmission) dis.ElectromagneticEmission {
	params := make([]dis.FundamentalParameterData, len(p.FundamentalParams))
	for i, v := range p.FundamentalParams {
		params[i] = decodeFundamentalParameterData(v)
	}
	beamData := make([]dis.BeamData, len(p.BeamDataList))
	for i, v := range p.BeamDataList {
		beamData[i] = decodeBeamData(v)
	}

	var indicator uint8
	if p.StateUpdateIndicator {
		indicator = 1
	}

	systems := make([]dis.EmitterSystem, len(p.EmitterSystems))
	for i, s := range p.EmitterSystems {
		systems[i] = decodeEmitterSystem(s, params, beamData)
	}

	return dis.ElectromagneticEmission{
		EmittingId:           DecodeEntityId(p.EmittingId),
		EventId:              DecodeEntityId(p.EventId),
		StateUpdateIndicator: indicator,
		EmitterSystems:       systems,
	}
}
