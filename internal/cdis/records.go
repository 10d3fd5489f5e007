package cdis

import (
	"github.com/sw-vish/cdisgw/internal/bitio"
	"github.com/sw-vish/cdisgw/internal/varint"
)

// EntityId is the 3 x UVINT16 (site, application, entity) identity record,
// shared by every PDU body that references an entity.
type EntityId struct {
	Site        varint.VarInt
	Application varint.VarInt
	Entity      varint.VarInt
}

// NewEntityId builds an EntityId from plain uint16 components.
func NewEntityId(site, application, entity uint16) EntityId {
	return EntityId{
		Site:        varint.New(varint.UVINT16, int64(site)),
		Application: varint.New(varint.UVINT16, int64(application)),
		Entity:      varint.New(varint.UVINT16, int64(entity)),
	}
}

func (e EntityId) Write(buf *bitio.BitBuffer) error {
	if err := e.Site.Encode(buf); err != nil {
		return err
	}
	if err := e.Application.Encode(buf); err != nil {
		return err
	}
	return e.Entity.Encode(buf)
}

func ReadEntityId(buf *bitio.BitBuffer) (EntityId, error) {
	site, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return EntityId{}, err
	}
	app, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return EntityId{}, err
	}
	ent, err := varint.Decode(buf, varint.UVINT16)
	if err != nil {
		return EntityId{}, err
	}
	return EntityId{Site: site, Application: app, Entity: ent}, nil
}

func (e EntityId) BitSize() int {
	return e.Site.BitSize() + e.Application.BitSize() + e.Entity.BitSize()
}

// EntityType is kind(4b) + domain(4b) + country(9b) + 4 x UVINT8.
type EntityType struct {
	Kind        uint8 // 4 bits
	Domain      uint8 // 4 bits
	Country     uint16 // 9 bits
	Category    varint.VarInt
	SubCategory varint.VarInt
	Specific    varint.VarInt
	Extra       varint.VarInt
}

func NewEntityType(kind, domain uint8, country uint16, category, subcategory, specific, extra uint8) EntityType {
	return EntityType{
		Kind:        kind,
		Domain:      domain,
		Country:     country,
		Category:    varint.New(varint.UVINT8, int64(category)),
		SubCategory: varint.New(varint.UVINT8, int64(subcategory)),
		Specific:    varint.New(varint.UVINT8, int64(specific)),
		Extra:       varint.New(varint.UVINT8, int64(extra)),
	}
}

func (e EntityType) Write(buf *bitio.BitBuffer) error {
	if err := buf.WriteUnsigned(FourBits, uint64(e.Kind)); err != nil {
		return err
	}
	if err := buf.WriteUnsigned(FourBits, uint64(e.Domain)); err != nil {
		return err
	}
	if err := buf.WriteUnsigned(NineBits, uint64(e.Country)); err != nil {
		return err
	}
	for _, v := range []varint.VarInt{e.Category, e.SubCategory, e.Specific, e.Extra} {
		if err := v.Encode(buf); err != nil {
			return err
		}
	}
	return nil
}

func ReadEntityType(buf *bitio.BitBuffer) (EntityType, error) {
	kind, err := buf.ReadUnsigned(FourBits)
	if err != nil {
		return EntityType{}, err
	}
	domain, err := buf.ReadUnsigned(FourBits)
	if err != nil {
		return EntityType{}, err
	}
	country, err := buf.ReadUnsigned(NineBits)
	if err != nil {
		return EntityType{}, err
	}
	cat, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return EntityType{}, err
	}
	sub, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return EntityType{}, err
	}
	spec, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return EntityType{}, err
	}
	extra, err := varint.Decode(buf, varint.UVINT8)
	if err != nil {
		return EntityType{}, err
	}
	return EntityType{
		Kind: uint8(kind), Domain: uint8(domain), Country: uint16(country),
		Category: cat, SubCategory: sub, Specific: spec, Extra: extra,
	}, nil
}

func (e EntityType) BitSize() int {
	return FourBits + FourBits + NineBits + e.Category.BitSize() + e.SubCategory.BitSize() + e.Specific.BitSize() + e.Extra.BitSize()
}

// Vector3 is a generic 3-component record of SVINT values, used for
// LinearVelocity, LinearAcceleration, and AngularVelocity — they differ
// only in which VarInt kind backs each axis.
type Vector3 struct {
	Kind    varint.Kind
	X, Y, Z varint.VarInt
}

func newVector3(kind varint.Kind, x, y, z int64) Vector3 {
	return Vector3{Kind: kind, X: varint.New(kind, x), Y: varint.New(kind, y), Z: varint.New(kind, z)}
}

// NewLinearVelocity builds the 3 x SVINT16 LinearVelocity record.
func NewLinearVelocity(x, y, z int64) Vector3 { return newVector3(varint.SVINT16, x, y, z) }

// NewLinearAcceleration builds the 3 x SVINT14 LinearAcceleration record.
func NewLinearAcceleration(x, y, z int64) Vector3 { return newVector3(varint.SVINT14, x, y, z) }

// NewAngularVelocity builds the 3 x SVINT12 AngularVelocity record.
func NewAngularVelocity(x, y, z int64) Vector3 { return newVector3(varint.SVINT12, x, y, z) }

func (v Vector3) Write(buf *bitio.BitBuffer) error {
	if err := v.X.Encode(buf); err != nil {
		return err
	}
	if err := v.Y.Encode(buf); err != nil {
		return err
	}
	return v.Z.Encode(buf)
}

func ReadVector3(buf *bitio.BitBuffer, kind varint.Kind) (Vector3, error) {
	x, err := varint.Decode(buf, kind)
	if err != nil {
		return Vector3{}, err
	}
	y, err := varint.Decode(buf, kind)
	if err != nil {
		return Vector3{}, err
	}
	z, err := varint.Decode(buf, kind)
	if err != nil {
		return Vector3{}, err
	}
	return Vector3{Kind: kind, X: x, Y: y, Z: z}, nil
}

func (v Vector3) BitSize() int { return v.X.BitSize() + v.Y.BitSize() + v.Z.BitSize() }

// Orientation is psi/theta/phi, each a fixed 13-bit signed field (§4.4).
type Orientation struct {
	Psi, Theta, Phi int16
}

func (o Orientation) Write(buf *bitio.BitBuffer) error {
	if err := buf.WriteSigned(ThirteenBits, int64(o.Psi)); err != nil {
		return err
	}
	if err := buf.WriteSigned(ThirteenBits, int64(o.Theta)); err != nil {
		return err
	}
	return buf.WriteSigned(ThirteenBits, int64(o.Phi))
}

func ReadOrientation(buf *bitio.BitBuffer) (Orientation, error) {
	psi, err := buf.ReadSigned(ThirteenBits)
	if err != nil {
		return Orientation{}, err
	}
	theta, err := buf.ReadSigned(ThirteenBits)
	if err != nil {
		return Orientation{}, err
	}
	phi, err := buf.ReadSigned(ThirteenBits)
	if err != nil {
		return Orientation{}, err
	}
	return Orientation{Psi: int16(psi), Theta: int16(theta), Phi: int16(phi)}, nil
}

func (Orientation) BitSize() int { return ThirteenBits * 3 }

// WorldCoordinates is the geocentric location record: 3 signed 30-bit
// components at centimeter resolution (§4.4, approximate per field in the
// full standard; this gateway applies a uniform width).
type WorldCoordinates struct {
	X, Y, Z int32
}

const WorldCoordinateBits = 30

func (w WorldCoordinates) Write(buf *bitio.BitBuffer) error {
	if err := buf.WriteSigned(WorldCoordinateBits, int64(w.X)); err != nil {
		return err
	}
	if err := buf.WriteSigned(WorldCoordinateBits, int64(w.Y)); err != nil {
		return err
	}
	return buf.WriteSigned(WorldCoordinateBits, int64(w.Z))
}

func ReadWorldCoordinates(buf *bitio.BitBuffer) (WorldCoordinates, error) {
	x, err := buf.ReadSigned(WorldCoordinateBits)
	if err != nil {
		return WorldCoordinates{}, err
	}
	y, err := buf.ReadSigned(WorldCoordinateBits)
	if err != nil {
		return WorldCoordinates{}, err
	}
	z, err := buf.ReadSigned(WorldCoordinateBits)
	if err != nil {
		return WorldCoordinates{}, err
	}
	return WorldCoordinates{X: int32(x), Y: int32(y), Z: int32(z)}, nil
}

func (WorldCoordinates) BitSize() int { return WorldCoordinateBits * 3 }

// CoordinateUnits selects the scale of an EntityCoordinateVector.
type CoordinateUnits uint8

const (
	CoordinateUnitsCentimeters CoordinateUnits = 0
	CoordinateUnitsMeters      CoordinateUnits = 1
)

// EntityCoordinateVector is a 3 x SVINT16 relative-position record whose
// unit (centimeters or meters) is carried by a sibling units flag, not by
// the record itself (§4.4).
type EntityCoordinateVector = Vector3

func NewEntityCoordinateVector(x, y, z int64) EntityCoordinateVector {
	return newVector3(varint.SVINT16, x, y, z)
}

// CdisTimeStamp is the 26-bit C-DIS timestamp (hour fraction).
type CdisTimeStamp struct {
	Units uint32
}

func (t CdisTimeStamp) Write(buf *bitio.BitBuffer) error {
	return buf.WriteUnsigned(TwentySixBits, uint64(t.Units))
}

func ReadCdisTimeStamp(buf *bitio.BitBuffer) (CdisTimeStamp, error) {
	u, err := buf.ReadUnsigned(TwentySixBits)
	if err != nil {
		return CdisTimeStamp{}, err
	}
	return CdisTimeStamp{Units: uint32(u)}, nil
}

func (CdisTimeStamp) BitSize() int { return TwentySixBits }
