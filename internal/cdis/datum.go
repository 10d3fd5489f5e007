package cdis

import (
	"github.com/sw-vish/cdisgw/internal/bitio"
	"github.com/sw-vish/cdisgw/internal/varint"
)

// EventId identifies a fire/detonation event: the issuing site/application
// plus a UVINT16 event number, grounded on dis-rs fire/model.rs's EventId.
type EventId struct {
	SimulationAddress EntityId // only Site/Application are meaningful
	Number            varint.VarInt
}

func NewEventId(site, application, number uint16) EventId {
	return EventId{
		SimulationAddress: EntityId{
			Site:        varint.New(varint.UVINT16, int64(site)),
			Application: varint.New(varint.UVINT16, int64(application)),
		},
		Number: varint.New(varint.UVINT16, int64(number)),
	}
}

func (e EventId) Write(buf *bitio.BitBuffer) error {
	if err := e.SimulationAddress.Site.Encode(buf); err != nil {
		return err
	}
	if err := e.SimulationAddress.Application.Encode(buf); err != nil {
		return err
	}
	return e.Number.Encode(buf)
}

func ReadEventId(buf *bitio.BitBuffer) (EventId, error) {
	site, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return EventId{}, err
	}
	app, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return EventId{}, err
	}
	num, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return EventId{}, err
	}
	return EventId{SimulationAddress: EntityId{Site: site, Application: app}, Number: num}, nil
}

func (e EventId) BitSize() int {
	return e.SimulationAddress.Site.BitSize() + e.SimulationAddress.Application.BitSize() + e.Number.BitSize()
}

// FixedDatum pairs a datum id with a 32-bit value (dis-rs common FixedDatum),
// both carried as UVINT32 on the C-DIS wire.
type FixedDatum struct {
	DatumId    varint.VarInt
	DatumValue varint.VarInt
}

func NewFixedDatum(id, value uint32) FixedDatum {
	return FixedDatum{
		DatumId:    varint.New(varint.UVINT32, int64(id)),
		DatumValue: varint.New(varint.UVINT32, int64(value)),
	}
}

func (d FixedDatum) Write(buf *bitio.BitBuffer) error {
	if err := d.DatumId.Encode(buf); err != nil {
		return err
	}
	return d.DatumValue.Encode(buf)
}

func ReadFixedDatum(buf *bitio.BitBuffer) (FixedDatum, error) {
	id, err := varint.Decode(buf, varint.UVINT32)
	if err != nil {
		return FixedDatum{}, err
	}
	val, err := varint.Decode(buf, varint.UVINT32)
	if err != nil {
		return FixedDatum{}, err
	}
	return FixedDatum{DatumId: id, DatumValue: val}, nil
}

func (d FixedDatum) BitSize() int { return d.DatumId.BitSize() + d.DatumValue.BitSize() }

// VariableDatum is a datum id plus a bit-length-prefixed value (dis-rs common
// VariableDatum). The length is carried as a UVINT16 bit count, the value
// follows as raw bits — no byte padding on the C-DIS side (§4.6 variable
// datum handling differs from DIS's 64-bit-aligned padding).
type VariableDatum struct {
	DatumId     varint.VarInt
	LengthBits  varint.VarInt
	ValueBits   []byte // packed, LengthBits.Value significant bits
}

func NewVariableDatum(id uint32, valueBits []byte, numBits int) VariableDatum {
	return VariableDatum{
		DatumId:    varint.New(varint.UVINT32, int64(id)),
		LengthBits: varint.New(varint.UVINT16, int64(numBits)),
		ValueBits:  valueBits,
	}
}

func (d VariableDatum) Write(buf *bitio.BitBuffer) error {
	if err := d.DatumId.Encode(buf); err != nil {
		return err
	}
	if err := d.LengthBits.Encode(buf); err != nil {
		return err
	}
	n := int(d.LengthBits.Value)
	for i := 0; i < n; i++ {
		bit := (d.ValueBits[i/8] >> uint(7-i%8)) & 1
		if err := buf.WriteUnsigned(1, uint64(bit)); err != nil {
			return err
		}
	}
	return nil
}

func ReadVariableDatum(buf *bitio.BitBuffer) (VariableDatum, error) {
	id, err := varint.Decode(buf, varint.UVINT32)
	if err != nil {
		return VariableDatum{}, err
	}
	length, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return VariableDatum{}, err
	}
	n := int(length.Value)
	raw, err := readRawBits(buf, n)
	if err != nil {
		return VariableDatum{}, err
	}
	return VariableDatum{DatumId: id, LengthBits: length, ValueBits: raw}, nil
}

func (d VariableDatum) BitSize() int {
	return d.DatumId.BitSize() + d.LengthBits.BitSize() + int(d.LengthBits.Value)
}

// writeFixedDatums/writeVariableDatums/readFixedDatums/readVariableDatums
// implement the UVINT8-counted repeat sections shared by the
// simulation-management family (dis-rs data_query/mod.rs, set_data_r,
// comment/model.rs).
func writeFixedDatums(buf *bitio.BitBuffer, datums []FixedDatum) error {
	count := varint.New(varint.UVINT8, int64(len(datums)))
	if err := count.Encode(buf); err != nil {
		return err
	}
	for _, d := range datums {
		if err := d.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func readFixedDatums(buf *bitio.BitBuffer) ([]FixedDatum, error) {
	count, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return nil, err
	}
	out := make([]FixedDatum, 0, count.Value)
	for i := int64(0); i < count.Value; i++ {
		d, err := ReadFixedDatum(buf)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func bitSizeFixedDatums(datums []FixedDatum) int {
	n := varint.New(varint.UVINT8, int64(len(datums))).BitSize()
	for _, d := range datums {
		n += d.BitSize()
	}
	return n
}

func writeVariableDatums(buf *bitio.BitBuffer, datums []VariableDatum) error {
	count := varint.New(varint.UVINT8, int64(len(datums)))
	if err := count.Encode(buf); err != nil {
		return err
	}
	for _, d := range datums {
		if err := d.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func readVariableDatums(buf *bitio.BitBuffer) ([]VariableDatum, error) {
	count, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return nil, err
	}
	out := make([]VariableDatum, 0, count.Value)
	for i := int64(0); i < count.Value; i++ {
		d, err := ReadVariableDatum(buf)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func bitSizeVariableDatums(datums []VariableDatum) int {
	n := varint.New(varint.UVINT8, int64(len(datums))).BitSize()
	for _, d := range datums {
		n += d.BitSize()
	}
	return n
}
