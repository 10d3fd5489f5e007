// Package bitio implements the random-access bit buffer that every C-DIS
// wire structure is packed into and unpacked from: a fixed-capacity bit
// array plus a cursor, with unsigned/signed read and write of widths 1..=64.
//
// All reads and writes are big-endian in bit order; byte boundaries carry no
// meaning for the logical layout. This mirrors the teacher's big-endian,
// fixed-size-buffer style in internal/protocol/marshal.go, generalized from
// whole bytes down to single bits.
package bitio

import "github.com/sw-vish/cdisgw/internal/cdiserr"

// MTUBits is the largest bit length a single serialized PDU may occupy:
// 1400 bytes, the DIS/C-DIS maximum transmission unit.
const MTUBits = 1400 * 8

// BitBuffer is a fixed-capacity, byte-backed array of bits with a cursor
// tracking the next bit to read or write. It is not implicitly padded to a
// byte boundary; callers pad only when handing bytes to an external sink.
type BitBuffer struct {
	bits   []byte // one bit per byte slot: 0 or 1, MSB-first logical order
	cursor int
}

// NewBitBuffer allocates a buffer with capacity for at least MTUBits bits.
func NewBitBuffer() *BitBuffer {
	return &BitBuffer{bits: make([]byte, MTUBits)}
}

// NewBitBufferFromBytes loads buf's bits (MSB-first within each byte) into a
// fresh BitBuffer, cursor at 0. Used by parsers working from a wire slice.
func NewBitBufferFromBytes(buf []byte) *BitBuffer {
	b := &BitBuffer{bits: make([]byte, len(buf)*8)}
	for i, by := range buf {
		for bit := 0; bit < 8; bit++ {
			b.bits[i*8+bit] = (by >> (7 - bit)) & 1
		}
	}
	return b
}

// Cursor returns the current bit offset.
func (b *BitBuffer) Cursor() int { return b.cursor }

// SeekBit repositions the cursor to an absolute bit offset. Used for
// back-patching a header after the body has been serialized.
func (b *BitBuffer) SeekBit(pos int) { b.cursor = pos }

// Len returns the buffer's total bit capacity.
func (b *BitBuffer) Len() int { return len(b.bits) }

// ReadUnsigned reads width bits (1..=64) as an unsigned integer, MSB first,
// and advances the cursor. Fails with InsufficientPduLength if fewer than
// width bits remain.
func (b *BitBuffer) ReadUnsigned(width int) (uint64, error) {
	if width < 1 || width > 64 {
		return 0, cdiserr.ParseError("bit width out of range 1..=64")
	}
	if b.cursor+width > len(b.bits) {
		return 0, cdiserr.InsufficientPduLength(b.cursor+width, len(b.bits))
	}
	var v uint64
	for i := 0; i < width; i++ {
		v = (v << 1) | uint64(b.bits[b.cursor+i])
	}
	b.cursor += width
	return v, nil
}

// ReadSigned reads width bits as a two's-complement signed integer,
// sign-extending to int64, and advances the cursor.
func (b *BitBuffer) ReadSigned(width int) (int64, error) {
	u, err := b.ReadUnsigned(width)
	if err != nil {
		return 0, err
	}
	return signExtend(u, width), nil
}

// WriteUnsigned writes the low width bits of value, MSB first, at the
// cursor, and advances it. Fails with InsufficientBufferSize if the buffer
// lacks room.
func (b *BitBuffer) WriteUnsigned(width int, value uint64) error {
	if width < 1 || width > 64 {
		return cdiserr.ParseError("bit width out of range 1..=64")
	}
	if b.cursor+width > len(b.bits) {
		return cdiserr.InsufficientBufferSize(b.cursor+width, len(b.bits))
	}
	for i := 0; i < width; i++ {
		shift := width - 1 - i
		b.bits[b.cursor+i] = byte((value >> uint(shift)) & 1)
	}
	b.cursor += width
	return nil
}

// WriteSigned writes the two's-complement representation of value in width
// bits at the cursor, and advances it.
func (b *BitBuffer) WriteSigned(width int, value int64) error {
	return b.WriteUnsigned(width, truncateTwosComplement(value, width))
}

// Bytes packs the buffer's bits (0..n, MSB-first per byte), padding the
// final byte with zero bits, into a byte slice of the requested bit length.
// n must be <= b.Len().
func (b *BitBuffer) Bytes(n int) []byte {
	nBytes := (n + 7) / 8
	out := make([]byte, nBytes)
	for i := 0; i < n; i++ {
		if b.bits[i] != 0 {
			out[i/8] |= 1 << uint(7-(i%8))
		}
	}
	return out
}

func signExtend(u uint64, width int) int64 {
	signBit := uint64(1) << uint(width-1)
	if u&signBit != 0 {
		return int64(u) - int64(signBit<<1)
	}
	return int64(u)
}

func truncateTwosComplement(value int64, width int) uint64 {
	if width >= 64 {
		return uint64(value)
	}
	mask := uint64(1)<<uint(width) - 1
	return uint64(value) & mask
}
