package cdis

import (
	"fmt"

	"github.com/sw-vish/cdisgw/internal/bitio"
	"github.com/sw-vish/cdisgw/internal/cdiserr"
	"github.com/sw-vish/cdisgw/internal/cdisfloat"
	"github.com/sw-vish/cdisgw/internal/varint"
)

// indexOutOfRangeError reports a track-jam record referencing a site/app
// pair index beyond the PDU's declared list (spec.md §4.5: the decoder must
// validate, never dereference, the reference).
func indexOutOfRangeError(index uint8, count int) *cdiserr.Error {
	return cdiserr.ParseError(fmt.Sprintf("track-jam site/app pair index %d out of range [0,%d)", index, count))
}

func init() {
	registerBody(PduTypeElectromagneticEmission, func(buf *bitio.BitBuffer) (Body, error) { return readElectromagneticEmission(buf) })
}

// FundamentalParameterData carries the RF characteristics of an emitter beam
// as compressed-float parameter values (spec.md §4.5 EM Emission layout).
type FundamentalParameterData struct {
	Frequency      cdisfloat.Float
	FrequencyRange cdisfloat.Float
	Erp            cdisfloat.Float
	Prf            cdisfloat.Float
	PulseWidth     cdisfloat.Float
}

func (f FundamentalParameterData) Write(buf *bitio.BitBuffer) error {
	for _, v := range []cdisfloat.Float{f.Frequency, f.FrequencyRange, f.Erp, f.Prf, f.PulseWidth} {
		if err := v.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func readFundamentalParameterData(buf *bitio.BitBuffer) (FundamentalParameterData, error) {
	freq, err := cdisfloat.Read(buf, cdisfloat.ParameterValue)
	if err != nil {
		return FundamentalParameterData{}, err
	}
	freqRange, err := cdisfloat.Read(buf, cdisfloat.ParameterValue)
	if err != nil {
		return FundamentalParameterData{}, err
	}
	erp, err := cdisfloat.Read(buf, cdisfloat.ParameterValue)
	if err != nil {
		return FundamentalParameterData{}, err
	}
	prf, err := cdisfloat.Read(buf, cdisfloat.ParameterValue)
	if err != nil {
		return FundamentalParameterData{}, err
	}
	pulseWidth, err := cdisfloat.Read(buf, cdisfloat.ParameterValue)
	if err != nil {
		return FundamentalParameterData{}, err
	}
	return FundamentalParameterData{freq, freqRange, erp, prf, pulseWidth}, nil
}

func (FundamentalParameterData) BitSize() int { return cdisfloat.ParameterValue.BitSize() * 5 }

// BeamData carries the scan geometry of an emitter beam.
type BeamData struct {
	AzimuthCenter   cdisfloat.Float
	AzimuthSweep    cdisfloat.Float
	ElevationCenter cdisfloat.Float
	ElevationSweep  cdisfloat.Float
	SweepSync       cdisfloat.Float
}

func (b BeamData) Write(buf *bitio.BitBuffer) error {
	for _, v := range []cdisfloat.Float{b.AzimuthCenter, b.AzimuthSweep, b.ElevationCenter, b.ElevationSweep, b.SweepSync} {
		if err := v.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func readBeamData(buf *bitio.BitBuffer) (BeamData, error) {
	az, err := cdisfloat.Read(buf, cdisfloat.ParameterValue)
	if err != nil {
		return BeamData{}, err
	}
	azSweep, err := cdisfloat.Read(buf, cdisfloat.ParameterValue)
	if err != nil {
		return BeamData{}, err
	}
	el, err := cdisfloat.Read(buf, cdisfloat.ParameterValue)
	if err != nil {
		return BeamData{}, err
	}
	elSweep, err := cdisfloat.Read(buf, cdisfloat.ParameterValue)
	if err != nil {
		return BeamData{}, err
	}
	sync, err := cdisfloat.Read(buf, cdisfloat.ParameterValue)
	if err != nil {
		return BeamData{}, err
	}
	return BeamData{az, azSweep, el, elSweep, sync}, nil
}

func (BeamData) BitSize() int { return cdisfloat.ParameterValue.BitSize() * 5 }

// SiteAppPair is a (site, application) reference shared by emission and
// track-jam records, narrower than a full EntityId since it never names an
// individual entity.
type SiteAppPair struct {
	Site        varint.VarInt
	Application varint.VarInt
}

func (s SiteAppPair) Write(buf *bitio.BitBuffer) error {
	if err := s.Site.Encode(buf); err != nil {
		return err
	}
	return s.Application.Encode(buf)
}

func readSiteAppPair(buf *bitio.BitBuffer) (SiteAppPair, error) {
	site, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return SiteAppPair{}, err
	}
	app, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return SiteAppPair{}, err
	}
	return SiteAppPair{site, app}, nil
}

func (s SiteAppPair) BitSize() int { return s.Site.BitSize() + s.Application.BitSize() }

const trackJamSiteAppIndexBits = 6

// TrackJam references one of the PDU-level site/app pairs by index — the
// decoder must validate index < len(site/app pairs) but never dereference it
// itself (spec.md §4.5).
type TrackJam struct {
	SiteAppPairIndex uint8 // 6 bits
	EntityId         EntityId
	EmitterNumber    *uint8 // gated by the owning beam's paramsIndexPresent bit
	BeamNumber       *uint8 // gated by the owning beam's dataIndexPresent bit
}

func (t TrackJam) write(buf *bitio.BitBuffer) error {
	if err := buf.WriteUnsigned(trackJamSiteAppIndexBits, uint64(t.SiteAppPairIndex)); err != nil {
		return err
	}
	if err := t.EntityId.Write(buf); err != nil {
		return err
	}
	if t.EmitterNumber != nil {
		if err := buf.WriteUnsigned(EightBits, uint64(*t.EmitterNumber)); err != nil {
			return err
		}
	}
	if t.BeamNumber != nil {
		if err := buf.WriteUnsigned(EightBits, uint64(*t.BeamNumber)); err != nil {
			return err
		}
	}
	return nil
}

func readTrackJam(buf *bitio.BitBuffer, hasEmitterNumber, hasBeamNumber bool) (TrackJam, error) {
	idx, err := buf.ReadUnsigned(trackJamSiteAppIndexBits)
	if err != nil {
		return TrackJam{}, err
	}
	entityId, err := ReadEntityId(buf)
	if err != nil {
		return TrackJam{}, err
	}
	t := TrackJam{SiteAppPairIndex: uint8(idx), EntityId: entityId}
	if hasEmitterNumber {
		v, err := buf.ReadUnsigned(EightBits)
		if err != nil {
			return TrackJam{}, err
		}
		n := uint8(v)
		t.EmitterNumber = &n
	}
	if hasBeamNumber {
		v, err := buf.ReadUnsigned(EightBits)
		if err != nil {
			return TrackJam{}, err
		}
		n := uint8(v)
		t.BeamNumber = &n
	}
	return t, nil
}

func (t TrackJam) bitSize() int {
	n := trackJamSiteAppIndexBits + t.EntityId.BitSize()
	if t.EmitterNumber != nil {
		n += EightBits
	}
	if t.BeamNumber != nil {
		n += EightBits
	}
	return n
}

const emitterBeamTrackJamCountBits = 4

// EmitterBeam is one beam of an EmitterSystem: a 4-bit presence mask gating
// the fundamental-params index, beam-data index, jamming kind, and the
// track-jam list, plus the always-present beam parameter index.
type EmitterBeam struct {
	HasParamsIndex   bool
	HasDataIndex     bool
	HasJammingKind   bool
	HasTrackJamList  bool
	BeamParameterIndex uint16 // 16 bits, always present
	FundamentalParamsIndex *uint8
	BeamDataIndex          *uint8
	JammingKind            *uint8
	TrackJamRecords        []TrackJam
}

func (b EmitterBeam) presenceMask() uint64 {
	var m uint64
	if b.HasParamsIndex {
		m |= 1 << 3
	}
	if b.HasDataIndex {
		m |= 1 << 2
	}
	if b.HasJammingKind {
		m |= 1 << 1
	}
	if b.HasTrackJamList {
		m |= 1
	}
	return m
}

func (b EmitterBeam) Write(buf *bitio.BitBuffer) error {
	if err := buf.WriteUnsigned(FourBits, b.presenceMask()); err != nil {
		return err
	}
	if err := buf.WriteUnsigned(SixteenBits, uint64(b.BeamParameterIndex)); err != nil {
		return err
	}
	if b.HasParamsIndex {
		if err := buf.WriteUnsigned(EightBits, uint64(*b.FundamentalParamsIndex)); err != nil {
			return err
		}
	}
	if b.HasDataIndex {
		if err := buf.WriteUnsigned(EightBits, uint64(*b.BeamDataIndex)); err != nil {
			return err
		}
	}
	if b.HasJammingKind {
		if err := buf.WriteUnsigned(EightBits, uint64(*b.JammingKind)); err != nil {
			return err
		}
	}
	if err := buf.WriteUnsigned(emitterBeamTrackJamCountBits, uint64(len(b.TrackJamRecords))); err != nil {
		return err
	}
	if b.HasTrackJamList {
		for _, tj := range b.TrackJamRecords {
			if err := tj.write(buf); err != nil {
				return err
			}
		}
	}
	return nil
}

func readEmitterBeam(buf *bitio.BitBuffer) (EmitterBeam, error) {
	mask, err := buf.ReadUnsigned(FourBits)
	if err != nil {
		return EmitterBeam{}, err
	}
	b := EmitterBeam{
		HasParamsIndex:  mask&(1<<3) != 0,
		HasDataIndex:    mask&(1<<2) != 0,
		HasJammingKind:  mask&(1<<1) != 0,
		HasTrackJamList: mask&1 != 0,
	}
	idx, err := buf.ReadUnsigned(SixteenBits)
	if err != nil {
		return EmitterBeam{}, err
	}
	b.BeamParameterIndex = uint16(idx)

	if b.HasParamsIndex {
		v, err := buf.ReadUnsigned(EightBits)
		if err != nil {
			return EmitterBeam{}, err
		}
		n := uint8(v)
		b.FundamentalParamsIndex = &n
	}
	if b.HasDataIndex {
		v, err := buf.ReadUnsigned(EightBits)
		if err != nil {
			return EmitterBeam{}, err
		}
		n := uint8(v)
		b.BeamDataIndex = &n
	}
	if b.HasJammingKind {
		v, err := buf.ReadUnsigned(EightBits)
		if err != nil {
			return EmitterBeam{}, err
		}
		n := uint8(v)
		b.JammingKind = &n
	}
	count, err := buf.ReadUnsigned(emitterBeamTrackJamCountBits)
	if err != nil {
		return EmitterBeam{}, err
	}
	if b.HasTrackJamList {
		b.TrackJamRecords = make([]TrackJam, 0, count)
		for i := uint64(0); i < count; i++ {
			tj, err := readTrackJam(buf, b.HasParamsIndex, b.HasDataIndex)
			if err != nil {
				return EmitterBeam{}, err
			}
			b.TrackJamRecords = append(b.TrackJamRecords, tj)
		}
	}
	return b, nil
}

func (b EmitterBeam) bitSize() int {
	n := FourBits + SixteenBits + emitterBeamTrackJamCountBits
	if b.HasParamsIndex {
		n += EightBits
	}
	if b.HasDataIndex {
		n += EightBits
	}
	if b.HasJammingKind {
		n += EightBits
	}
	if b.HasTrackJamList {
		for _, tj := range b.TrackJamRecords {
			n += tj.bitSize()
		}
	}
	return n
}

const emitterSystemBeamCountBits = 5

// EmitterSystem groups one emitter's identity/location with its beams. Name
// and Function share one presence bit; Location has its own.
type EmitterSystem struct {
	Name     *varint.VarInt // UVINT16, gated with Function
	Function *varint.VarInt // UVINT8, gated with Name
	Location *EntityCoordinateVector
	Beams    []EmitterBeam
}

func (s EmitterSystem) Write(buf *bitio.BitBuffer) error {
	hasNameFunction := s.Name != nil
	hasLocation := s.Location != nil
	v := uint64(0)
	if hasNameFunction {
		v |= 2
	}
	if hasLocation {
		v |= 1
	}
	if err := buf.WriteUnsigned(TwoBits, v); err != nil {
		return err
	}
	if hasNameFunction {
		if err := s.Name.Encode(buf); err != nil {
			return err
		}
		if err := s.Function.Encode(buf); err != nil {
			return err
		}
	}
	if hasLocation {
		if err := s.Location.Write(buf); err != nil {
			return err
		}
	}
	if err := buf.WriteUnsigned(emitterSystemBeamCountBits, uint64(len(s.Beams))); err != nil {
		return err
	}
	for _, beam := range s.Beams {
		if err := beam.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func readEmitterSystem(buf *bitio.BitBuffer) (EmitterSystem, error) {
	presence, err := buf.ReadUnsigned(TwoBits)
	if err != nil {
		return EmitterSystem{}, err
	}
	var s EmitterSystem
	if presence&2 != 0 {
		name, err := varint.Decode(buf, varint.UVINT16)
		if err != nil {
			return EmitterSystem{}, err
		}
		fn, err := varint.Decode(buf, varint.UVINT8)
		if err != nil {
			return EmitterSystem{}, err
		}
		s.Name, s.Function = &name, &fn
	}
	if presence&1 != 0 {
		loc, err := ReadVector3(buf, varint.SVINT16)
		if err != nil {
			return EmitterSystem{}, err
		}
		s.Location = &loc
	}
	beamCount, err := buf.ReadUnsigned(emitterSystemBeamCountBits)
	if err != nil {
		return EmitterSystem{}, err
	}
	s.Beams = make([]EmitterBeam, 0, beamCount)
	for i := uint64(0); i < beamCount; i++ {
		beam, err := readEmitterBeam(buf)
		if err != nil {
			return EmitterSystem{}, err
		}
		s.Beams = append(s.Beams, beam)
	}
	return s, nil
}

func (s EmitterSystem) bitSize() int {
	n := TwoBits + emitterSystemBeamCountBits
	if s.Name != nil {
		n += s.Name.BitSize() + s.Function.BitSize()
	}
	if s.Location != nil {
		n += s.Location.BitSize()
	}
	for _, b := range s.Beams {
		n += b.bitSize()
	}
	return n
}

const emitterSystemCountBits = EightBits

// ElectromagneticEmission reports the RF emitters active on an entity
// (spec.md §4.5, the representative nested-counted-structure body).
type ElectromagneticEmission struct {
	FullUpdateFlag       bool
	FundamentalParams    []FundamentalParameterData
	BeamDataList         []BeamData
	SiteAppPairs         []SiteAppPair
	EmittingId           EntityId
	EventId              EntityId
	StateUpdateIndicator bool
	EmitterSystems       []EmitterSystem
}

func (e ElectromagneticEmission) PduType() PduType      { return PduTypeElectromagneticEmission }
func (e ElectromagneticEmission) Originator() *EntityId { return &e.EmittingId }
func (e ElectromagneticEmission) Receiver() *EntityId   { return nil }

func (e ElectromagneticEmission) BitSizeOf() int {
	n := OneBit + FiveBits*3 + e.EmittingId.BitSize() + e.EventId.BitSize() + OneBit + emitterSystemCountBits
	n += len(e.FundamentalParams) * FundamentalParameterData{}.BitSize()
	n += len(e.BeamDataList) * BeamData{}.BitSize()
	for _, p := range e.SiteAppPairs {
		n += p.BitSize()
	}
	for _, s := range e.EmitterSystems {
		n += s.bitSize()
	}
	return n
}

func (e ElectromagneticEmission) Write(buf *bitio.BitBuffer) error {
	flag := uint64(0)
	if e.FullUpdateFlag {
		flag = 1
	}
	if err := buf.WriteUnsigned(OneBit, flag); err != nil {
		return err
	}
	if err := buf.WriteUnsigned(FiveBits, uint64(len(e.FundamentalParams))); err != nil {
		return err
	}
	if err := buf.WriteUnsigned(FiveBits, uint64(len(e.BeamDataList))); err != nil {
		return err
	}
	if err := buf.WriteUnsigned(FiveBits, uint64(len(e.SiteAppPairs))); err != nil {
		return err
	}
	if err := e.EmittingId.Write(buf); err != nil {
		return err
	}
	if err := e.EventId.Write(buf); err != nil {
		return err
	}
	indicator := uint64(0)
	if e.StateUpdateIndicator {
		indicator = 1
	}
	if err := buf.WriteUnsigned(OneBit, indicator); err != nil {
		return err
	}
	if err := buf.WriteUnsigned(emitterSystemCountBits, uint64(len(e.EmitterSystems))); err != nil {
		return err
	}
	for _, p := range e.FundamentalParams {
		if err := p.Write(buf); err != nil {
			return err
		}
	}
	for _, b := range e.BeamDataList {
		if err := b.Write(buf); err != nil {
			return err
		}
	}
	for _, p := range e.SiteAppPairs {
		if err := p.Write(buf); err != nil {
			return err
		}
	}
	for _, s := range e.EmitterSystems {
		if err := s.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func readElectromagneticEmission(buf *bitio.BitBuffer) (ElectromagneticEmission, error) {
	flag, err := buf.ReadUnsigned(OneBit)
	if err != nil {
		return ElectromagneticEmission{}, err
	}
	numParams, err := buf.ReadUnsigned(FiveBits)
	if err != nil {
		return ElectromagneticEmission{}, err
	}
	numBeamData, err := buf.ReadUnsigned(FiveBits)
	if err != nil {
		return ElectromagneticEmission{}, err
	}
	numSiteApp, err := buf.ReadUnsigned(FiveBits)
	if err != nil {
		return ElectromagneticEmission{}, err
	}
	emittingId, err := ReadEntityId(buf)
	if err != nil {
		return ElectromagneticEmission{}, err
	}
	eventId, err := ReadEntityId(buf)
	if err != nil {
		return ElectromagneticEmission{}, err
	}
	indicator, err := buf.ReadUnsigned(OneBit)
	if err != nil {
		return ElectromagneticEmission{}, err
	}
	numSystems, err := buf.ReadUnsigned(emitterSystemCountBits)
	if err != nil {
		return ElectromagneticEmission{}, err
	}

	params := make([]FundamentalParameterData, 0, numParams)
	for i := uint64(0); i < numParams; i++ {
		p, err := readFundamentalParameterData(buf)
		if err != nil {
			return ElectromagneticEmission{}, err
		}
		params = append(params, p)
	}
	beamData := make([]BeamData, 0, numBeamData)
	for i := uint64(0); i < numBeamData; i++ {
		b, err := readBeamData(buf)
		if err != nil {
			return ElectromagneticEmission{}, err
		}
		beamData = append(beamData, b)
	}
	siteApp := make([]SiteAppPair, 0, numSiteApp)
	for i := uint64(0); i < numSiteApp; i++ {
		p, err := readSiteAppPair(buf)
		if err != nil {
			return ElectromagneticEmission{}, err
		}
		siteApp = append(siteApp, p)
	}
	systems := make([]EmitterSystem, 0, numSystems)
	for i := uint64(0); i < numSystems; i++ {
		s, err := readEmitterSystem(buf)
		if err != nil {
			return ElectromagneticEmission{}, err
		}
		for _, beam := range s.Beams {
			for _, tj := range beam.TrackJamRecords {
				if int(tj.SiteAppPairIndex) >= len(siteApp) {
					return ElectromagneticEmission{}, indexOutOfRangeError(tj.SiteAppPairIndex, len(siteApp))
				}
			}
		}
		systems = append(systems, s)
	}

	return ElectromagneticEmission{
		FullUpdateFlag:       flag == 1,
		FundamentalParams:    params,
		BeamDataList:         beamData,
		SiteAppPairs:         siteApp,
		EmittingId:           emittingId,
		EventId:              eventId,
		StateUpdateIndicator: indicator == 1,
		EmitterSystems:       systems,
	}, nil
}
