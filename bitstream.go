package huffman

import (
	"bytes"
	"errors"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// maxPadBits is the largest legal pad count.
const maxPadBits = 7

// EncodedPayload is a packed bit stream prefixed by a one-byte header.
//
// The header records how many low-order bits of the final byte are padding
// (0 through 7).  The remaining bytes hold the concatenated codes, first
// bit in the most significant position of the first byte.
//
type EncodedPayload []byte

// PadBits returns the pad count recorded in the header.
func (p EncodedPayload) PadBits() (byte, error) {
	if len(p) == 0 {
		return 0, corruptf("payload is missing its pad-count header")
	}
	pad := p[0]
	if pad > maxPadBits {
		return 0, corruptf("pad count %d is outside 0..%d", pad, maxPadBits)
	}
	return pad, nil
}

// Packed returns the packed bytes that follow the header.
func (p EncodedPayload) Packed() []byte {
	if len(p) == 0 {
		return nil
	}
	return p[1:]
}

// BitLen returns the exact number of meaningful bits in the payload, i.e.
// 8 × len(Packed()) − PadBits().  It fails if the header is missing or
// inconsistent with the packed bytes.
func (p EncodedPayload) BitLen() (uint64, error) {
	pad, err := p.PadBits()
	if err != nil {
		return 0, err
	}
	packed := p.Packed()
	if len(packed) == 0 {
		if pad != 0 {
			return 0, corruptf("pad count %d with no packed bytes", pad)
		}
		return 0, nil
	}
	if pad != 0 {
		mask := byte(1)<<pad - 1
		if last := packed[len(packed)-1]; last&mask != 0 {
			return 0, corruptf("final byte %#02x has non-zero padding", last)
		}
	}
	return 8*uint64(len(packed)) - uint64(pad), nil
}

// Pack encodes data with the given table.  Codes are concatenated in input
// order, the final byte is filled up with zero bits, and the number of
// filler bits is stored in the header.
//
// It is an IntegrityError for data to contain a symbol that the table does
// not cover.
//
func Pack(data []byte, table CodeTable) (EncodedPayload, error) {
	var buf bytes.Buffer
	buf.Grow(1 + len(data))

	// Placeholder for the pad count, which is only known at the end.
	buf.WriteByte(0)

	w := bitio.NewWriter(&buf)
	for offset, b := range data {
		hc, ok := table.Code(Symbol(b))
		if !ok {
			return nil, &IntegrityError{Symbol: Symbol(b), Offset: offset}
		}
		for pos := byte(0); pos < hc.Size; {
			bits, n := hc.chunk(pos)
			if err := w.WriteBits(bits, n); err != nil {
				return nil, err
			}
			pos += n
		}
	}

	pad, err := w.Align()
	if err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	assert.Assertf(pad <= maxPadBits, "bit writer skipped %d bits", pad)

	out := buf.Bytes()
	out[0] = pad
	return EncodedPayload(out), nil
}

// Unpack decodes every symbol in p using d.  The walk accumulates bits into
// a candidate code and emits a symbol each time the candidate is a complete
// code.
//
// Unpack fails with a CorruptDataError if the header is invalid, if the
// candidate ever stops being a prefix of any code, or if bits are left over
// at the end that do not form a complete code.
//
func Unpack(p EncodedPayload, d *Decoder) ([]byte, error) {
	bitLen, err := p.BitLen()
	if err != nil {
		return nil, err
	}
	if bitLen == 0 {
		return []byte{}, nil
	}
	if d.Len() == 0 {
		return nil, corruptf("%d bits of data but the code table is empty", bitLen)
	}

	out := make([]byte, 0, bitLen/uint64(d.MinSize()))
	r := bitio.NewReader(bytes.NewReader(p.Packed()))

	var candidate Code
	for index := uint64(0); index < bitLen; index++ {
		bit, err := r.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, corruptf("bit stream ended at bit %d of %d", index, bitLen)
			}
			return nil, err
		}
		if bit {
			candidate = candidate.Append(1)
		} else {
			candidate = candidate.Append(0)
		}

		symbol, ok, minSize, _ := d.Decode(candidate)
		if ok {
			out = append(out, byte(symbol))
			candidate = Code{}
			continue
		}
		if minSize == 0 {
			return nil, corruptf("bits %s ending at bit %d match no code", candidate, index)
		}
	}

	if candidate.Size != 0 {
		return nil, corruptf("%d trailing bits %s do not form a complete code", candidate.Size, candidate)
	}
	return out, nil
}
