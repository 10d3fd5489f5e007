// Package varint implements the self-delimiting VarInt encodings used
// pervasively in C-DIS: a small flag field selects one of up to four value
// widths, and the value follows at that width. The encoder always picks the
// smallest width that fits; the decoder trusts the declared width.
package varint

import (
	"github.com/sw-vish/cdisgw/internal/bitio"
	"github.com/sw-vish/cdisgw/internal/cdiserr"
)

// Kind names one of the eight VarInt families spec.md §3 tabulates.
type Kind int

const (
	UVINT8 Kind = iota
	UVINT16
	UVINT32
	SVINT12
	SVINT13
	SVINT14
	SVINT16
	SVINT24
)

type table struct {
	flagBits int
	widths   []int
	signed   bool
}

var tables = map[Kind]table{
	UVINT8:  {flagBits: 1, widths: []int{4, 8}},
	UVINT16: {flagBits: 2, widths: []int{8, 10, 14, 16}},
	UVINT32: {flagBits: 2, widths: []int{8, 16, 24, 32}},
	SVINT12: {flagBits: 2, widths: []int{3, 5, 9, 12}, signed: true},
	SVINT13: {flagBits: 2, widths: []int{3, 6, 9, 13}, signed: true},
	SVINT14: {flagBits: 2, widths: []int{3, 6, 10, 14}, signed: true},
	SVINT16: {flagBits: 2, widths: []int{4, 8, 12, 16}, signed: true},
	SVINT24: {flagBits: 2, widths: []int{6, 12, 18, 24}, signed: true},
}

// VarInt is a decoded self-delimiting integer: the value and the width
// bucket it occupies on the wire. Two VarInts of the same Kind and Value
// always choose the same FlagIndex, and therefore serialize identically.
type VarInt struct {
	Kind      Kind
	Value     int64
	FlagIndex int
}

// unsignedRange reports the inclusive [0, max] range a width bits wide.
func unsignedRange(width int) (lo, hi int64) {
	return 0, (int64(1) << uint(width)) - 1
}

// signedRange reports the inclusive [min, max] two's-complement range.
func signedRange(width int) (lo, hi int64) {
	return -(int64(1) << uint(width-1)), (int64(1) << uint(width-1)) - 1
}

// New builds a VarInt of the given kind, choosing the smallest legal width
// whose range contains value. Value out of range for even the widest bucket
// is a caller contract violation (spec.md §4.2) — it is clamped to the
// widest bucket rather than silently accepted at a narrower one.
func New(kind Kind, value int64) VarInt {
	t := tables[kind]
	for i, w := range t.widths {
		var lo, hi int64
		if t.signed {
			lo, hi = signedRange(w)
		} else {
			lo, hi = unsignedRange(w)
		}
		if value >= lo && value <= hi {
			return VarInt{Kind: kind, Value: value, FlagIndex: i}
		}
	}
	// Out of range for every bucket: caller error. Saturate into the widest
	// bucket rather than panicking, matching the "never wrap" saturation
	// policy applied elsewhere in the codec.
	last := len(t.widths) - 1
	var lo, hi int64
	if t.signed {
		lo, hi = signedRange(t.widths[last])
	} else {
		lo, hi = unsignedRange(t.widths[last])
	}
	v := value
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return VarInt{Kind: kind, Value: v, FlagIndex: last}
}

// Encode serializes the VarInt into buf at the cursor: flag bits then value
// bits.
func (v VarInt) Encode(buf *bitio.BitBuffer) error {
	t := tables[v.Kind]
	if err := buf.WriteUnsigned(t.flagBits, uint64(v.FlagIndex)); err != nil {
		return err
	}
	width := t.widths[v.FlagIndex]
	if t.signed {
		return buf.WriteSigned(width, v.Value)
	}
	return buf.WriteUnsigned(width, uint64(v.Value))
}

// Decode reads a VarInt of the given kind from buf at the cursor: flag bits
// select the width, then the value is read at that width with the kind's
// signedness. No range validation is performed beyond sign extension.
func Decode(buf *bitio.BitBuffer, kind Kind) (VarInt, error) {
	t, ok := tables[kind]
	if !ok {
		return VarInt{}, cdiserr.ParseError("unknown varint kind")
	}
	flag, err := buf.ReadUnsigned(t.flagBits)
	if err != nil {
		return VarInt{}, err
	}
	idx := int(flag)
	if idx >= len(t.widths) {
		return VarInt{}, cdiserr.ParseError("varint flag index out of range")
	}
	width := t.widths[idx]
	if t.signed {
		val, err := buf.ReadSigned(width)
		if err != nil {
			return VarInt{}, err
		}
		return VarInt{Kind: kind, Value: val, FlagIndex: idx}, nil
	}
	val, err := buf.ReadUnsigned(width)
	if err != nil {
		return VarInt{}, err
	}
	return VarInt{Kind: kind, Value: int64(val), FlagIndex: idx}, nil
}

// BitSize returns the total number of bits this VarInt occupies on the wire
// (flag bits + value bits), needed for body-length accounting.
func (v VarInt) BitSize() int {
	t := tables[v.Kind]
	return t.flagBits + t.widths[v.FlagIndex]
}
