package dis

import (
	"encoding/binary"
	"math"

	"github.com/golang/geo/r3"
)

func init() {
	registerBody(PduTypeElectromagneticEmission, func(buf []byte) (Body, error) { return unmarshalElectromagneticEmission(buf) })
}

const fundamentalParameterDataLength = 20

// FundamentalParameterData carries an emitter beam's RF characteristics as
// 32-bit floats (IEEE 1278.1 Electromagnetic Emission PDU).
type FundamentalParameterData struct {
	Frequency      float32
	FrequencyRange float32
	Erp            float32
	Prf             float32
	PulseWidth      float32
}

func (f FundamentalParameterData) Marshal(buf []byte) {
	binary.BigEndian.PutUint32(buf[0:], math.Float32bits(f.Frequency))
	binary.BigEndian.PutUint32(buf[4:], math.Float32bits(f.FrequencyRange))
	binary.BigEndian.PutUint32(buf[8:], math.Float32bits(f.Erp))
	binary.BigEndian.PutUint32(buf[12:], math.Float32bits(f.Prf))
	binary.BigEndian.PutUint32(buf[16:], math.Float32bits(f.PulseWidth))
}

func unmarshalFundamentalParameterData(buf []byte) FundamentalParameterData {
	return FundamentalParameterData{
		Frequency:      math.Float32frombits(binary.BigEndian.Uint32(buf[0:])),
		FrequencyRange: math.Float32frombits(binary.BigEndian.Uint32(buf[4:])),
		Erp:            math.Float32frombits(binary.BigEndian.Uint32(buf[8:])),
		Prf:            math.Float32frombits(binary.BigEndian.Uint32(buf[12:])),
		PulseWidth:     math.Float32frombits(binary.BigEndian.Uint32(buf[16:])),
	}
}

const beamDataLength = 20

// BeamData carries an emitter beam's scan geometry.
type BeamData struct {
	AzimuthCenter   float32
	AzimuthSweep    float32
	ElevationCenter float32
	ElevationSweep  float32
	SweepSync       float32
}

func (b BeamData) Marshal(buf []byte) {
	binary.BigEndian.PutUint32(buf[0:], math.Float32bits(b.AzimuthCenter))
	binary.BigEndian.PutUint32(buf[4:], math.Float32bits(b.AzimuthSweep))
	binary.BigEndian.PutUint32(buf[8:], math.Float32bits(b.ElevationCenter))
	binary.BigEndian.PutUint32(buf[12:], math.Float32bits(b.ElevationSweep))
	binary.BigEndian.PutUint32(buf[16:], math.Float32bits(b.SweepSync))
}

func unmarshalBeamData(buf []byte) BeamData {
	return BeamData{
		AzimuthCenter:   math.Float32frombits(binary.BigEndian.Uint32(buf[0:])),
		AzimuthSweep:    math.Float32frombits(binary.BigEndian.Uint32(buf[4:])),
		ElevationCenter: math.Float32frombits(binary.BigEndian.Uint32(buf[8:])),
		ElevationSweep:  math.Float32frombits(binary.BigEndian.Uint32(buf[12:])),
		SweepSync:       math.Float32frombits(binary.BigEndian.Uint32(buf[16:])),
	}
}

// TrackJam names an entity being tracked or jammed by a beam.
type TrackJam struct {
	EntityId      EntityId
	EmitterNumber uint8
	BeamNumber    uint8
}

const trackJamLength = EntityIdLength + 2

func (t TrackJam) Marshal(buf []byte) {
	t.EntityId.Marshal(buf[0:])
	buf[EntityIdLength] = t.EmitterNumber
	buf[EntityIdLength+1] = t.BeamNumber
}

func unmarshalTrackJam(buf []byte) TrackJam {
	return TrackJam{EntityId: UnmarshalEntityId(buf[0:]), EmitterNumber: buf[EntityIdLength], BeamNumber: buf[EntityIdLength+1]}
}

// EmitterBeam is one beam of an EmitterSystem, embedding its fundamental
// parameters and scan geometry directly (real DIS layout, unlike C-DIS's
// pooled-and-indexed variant).
type EmitterBeam struct {
	BeamParameterIndex uint16
	FundamentalParams  FundamentalParameterData
	BeamData           BeamData
	JammingKind        uint8
	TrackJamRecords    []TrackJam
}

func (b EmitterBeam) length() int {
	return 2 + 2 /*record length/number pad*/ + fundamentalParameterDataLength + beamDataLength + 1 + 1 + len(b.TrackJamRecords)*trackJamLength
}

func (b EmitterBeam) Marshal(buf []byte) int {
	off := 0
	binary.BigEndian.PutUint16(buf[off:], b.BeamParameterIndex)
	off += 2
	off += 2 // reserved
	b.FundamentalParams.Marshal(buf[off:])
	off += fundamentalParameterDataLength
	b.BeamData.Marshal(buf[off:])
	off += beamDataLength
	buf[off] = b.JammingKind
	off++
	buf[off] = uint8(len(b.TrackJamRecords))
	off++
	for _, tj := range b.TrackJamRecords {
		tj.Marshal(buf[off:])
		off += trackJamLength
	}
	return off
}

func unmarshalEmitterBeam(buf []byte) (EmitterBeam, int) {
	off := 0
	idx := binary.BigEndian.Uint16(buf[off:])
	off += 2 + 2
	params := unmarshalFundamentalParameterData(buf[off:])
	off += fundamentalParameterDataLength
	beamData := unmarshalBeamData(buf[off:])
	off += beamDataLength
	jammingKind := buf[off]
	off++
	trackJamCount := int(buf[off])
	off++
	trackJams := make([]TrackJam, 0, trackJamCount)
	for i := 0; i < trackJamCount; i++ {
		trackJams = append(trackJams, unmarshalTrackJam(buf[off:]))
		off += trackJamLength
	}
	return EmitterBeam{idx, params, beamData, jammingKind, trackJams}, off
}

// EmitterSystem groups one emitter's identity/location with its beams.
type EmitterSystem struct {
	Name     uint16
	Function uint8
	Number   uint8
	Location r3.Vector
	Beams    []EmitterBeam
}

func (s EmitterSystem) length() int {
	n := 2 + 1 + 1 + Vector3F32Length + 1 /*beam count*/ + 3 /*pad*/
	for _, b := range s.Beams {
		n += b.length()
	}
	return n
}

func (s EmitterSystem) Marshal(buf []byte) int {
	off := 0
	binary.BigEndian.PutUint16(buf[off:], s.Name)
	off += 2
	buf[off] = s.Function
	off++
	buf[off] = s.Number
	off++
	MarshalVector3F32(s.Location, buf[off:])
	off += Vector3F32Length
	buf[off] = uint8(len(s.Beams))
	off += 1 + 3
	for _, b := range s.Beams {
		off += b.Marshal(buf[off:])
	}
	return off
}

func unmarshalEmitterSystem(buf []byte) (EmitterSystem, int) {
	off := 0
	name := binary.BigEndian.Uint16(buf[off:])
	off += 2
	function := buf[off]
	off++
	number := buf[off]
	off++
	location := UnmarshalVector3F32(buf[off:])
	off += Vector3F32Length
	beamCount := int(buf[off])
	off += 1 + 3
	beams := make([]EmitterBeam, 0, beamCount)
	for i := 0; i < beamCount; i++ {
		b, n := unmarshalEmitterBeam(buf[off:])
		beams = append(beams, b)
		off += n
	}
	return EmitterSystem{name, function, number, location, beams}, off
}

// ElectromagneticEmission reports the RF emitters active on an entity
// (IEEE 1278.1 Electromagnetic Emission PDU).
type ElectromagneticEmission struct {
	EmittingId           EntityId
	EventId              EntityId
	StateUpdateIndicator uint8
	EmitterSystems       []EmitterSystem
}

func (e ElectromagneticEmission) PduType() PduType      { return PduTypeElectromagneticEmission }
func (e ElectromagneticEmission) Originator() *EntityId { return &e.EmittingId }
func (e ElectromagneticEmission) Receiver() *EntityId   { return nil }

func (e ElectromagneticEmission) Marshal() []byte {
	n := EntityIdLength*2 + 1 + 3
	for _, s := range e.EmitterSystems {
		n += s.length()
	}
	buf := make([]byte, n)
	off := 0
	e.EmittingId.Marshal(buf[off:])
	off += EntityIdLength
	e.EventId.Marshal(buf[off:])
	off += EntityIdLength
	buf[off] = e.StateUpdateIndicator
	off += 1 + 3
	for _, s := range e.EmitterSystems {
		off += s.Marshal(buf[off:])
	}
	return buf
}

func unmarshalElectromagneticEmission(buf []byte) (ElectromagneticEmission, error) {
	off := 0
	emittingId := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	eventId := UnmarshalEntityId(buf[off:])
	off += EntityIdLength
	indicator := buf[off]
	off += 1 + 3

	var systems []EmitterSystem
	for off < len(buf) {
		s, n := unmarshalEmitterSystem(buf[off:])
		systems = append(systems, s)
		off += n
	}

	return ElectromagneticEmission{emittingId, eventId, indicator, systems}, nil
}
