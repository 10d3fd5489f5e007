package node

import (
	"errors"
	"fmt"

	"github.com/sw-vish/cdisgw/internal/bitio"
	"github.com/sw-vish/cdisgw/internal/cdis"
	"github.com/sw-vish/cdisgw/internal/cdiserr"
	"github.com/sw-vish/cdisgw/internal/codec"
	"github.com/sw-vish/cdisgw/internal/dis"
)

// disToCdis converts one DIS-wire datagram into a single C-DIS-wire
// datagram. Real DIS-over-UDP traffic carries exactly one PDU per
// datagram, so unlike cdisToDis below there is no multi-PDU loop on this
// side.
func disToCdis(msg []byte) ([][]byte, error) {
	disPdu, err := dis.Unmarshal(msg)
	if err != nil {
		return nil, fmt.Errorf("dis_receiver: %w", err)
	}

	cdisPdu, err := codec.EncodePdu(disPdu)
	if err != nil {
		return nil, fmt.Errorf("dis_receiver: %w", err)
	}

	buf := bitio.NewBitBuffer()
	n, err := cdis.Serialize(cdisPdu, buf)
	if err != nil {
		return nil, fmt.Errorf("dis_receiver: %w", err)
	}
	return [][]byte{buf.Bytes(n)}, nil
}

// cdisToDis converts one C-DIS-wire datagram, which spec.md §4.6 allows to
// carry more than one back-to-back PDU, into one DIS-wire datagram per
// PDU — DIS convention is one PDU per datagram, so a multi-PDU C-DIS
// datagram fans out into multiple outbound messages here.
func cdisToDis(msg []byte) ([][]byte, error) {
	pdus, err := cdis.ParseDatagram(msg)
	if err != nil && !isTrailingPadding(err) {
		return nil, fmt.Errorf("cdis_receiver: %w", err)
	}

	out := make([][]byte, 0, len(pdus))
	for _, p := range pdus {
		disPdu, err := codec.DecodePdu(p)
		if err != nil {
			return out, fmt.Errorf("cdis_receiver: %w", err)
		}
		out = append(out, dis.Marshal(disPdu))
	}
	return out, nil
}

// isTrailingPadding reports whether err is the benign InsufficientHeaderLength
// ParseDatagram returns once only the final PDU's sub-byte padding (1-7 bits)
// remains — a C-DIS body ends on an arbitrary bit boundary (spec.md §4.1), so
// every datagram whose total bit length isn't a multiple of 8 ends this way.
// It is the normal end-of-datagram sentinel, not a parse failure: the PDUs
// ParseDatagram already returned alongside it are complete and valid
// (spec.md §4.6 step 4 / scenario 6).
func isTrailingPadding(err error) bool {
	var cerr *cdiserr.Error
	return errors.As(err, &cerr) && cerr.Kind == cdiserr.KindInsufficientHeaderLength
}

// passthrough forwards a message unchanged — the behavior of dis_sender and
// cdis_sender, which exist in the pipeline to be wired independently of
// their upstream receiver (e.g. fanning one receiver's output to several
// senders) and to carry their own Stats counters, not to transform bytes.
func passthrough(msg []byte) ([][]byte, error) {
	return [][]byte{msg}, nil
}
