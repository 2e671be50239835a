package huffman

import (
	"fmt"
	mathbits "math/bits"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the maximum number of bits in a Code.  A tree over the
// full byte alphabet is at most 255 edges deep.
const MaxCodeSize = 255

const wordBits = 64

// Code represents a sequence of bits.  Code is comparable, so it can be
// used as a map key.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits[0] is the first bit; bit i lives in Bits[i/64] at position
	// i%64.  Bits beyond Size are always zero.
	Bits [4]uint64
}

// MakeCode is a convenience function that constructs a Code of at most 64
// bits.  The least significant bit of bits is the first bit.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= wordBits, "size %d > %d", size, wordBits)
	if size < wordBits {
		bits &= (uint64(1) << size) - 1
	}
	var hc Code
	hc.Size = size
	hc.Bits[0] = bits
	return hc
}

// ParseCode constructs a Code from a string of '0' and '1' characters,
// first bit first.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("code %q is too long: %d bits, max %d", str, len(str), MaxCodeSize)
	}
	var hc Code
	for _, ch := range str {
		switch ch {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("invalid character %q in code %q", ch, str)
		}
	}
	return hc, nil
}

// Bit returns the i'th bit of this Code, counting from the first bit.
func (hc Code) Bit(i byte) uint {
	assert.Assertf(i < hc.Size, "bit index %d out of range for code of size %d", i, hc.Size)
	return uint(hc.Bits[i/wordBits]>>(i%wordBits)) & 1
}

// Append returns the Code formed by adding one bit after the last bit of
// this Code.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "code already holds %d bits", hc.Size)
	i := hc.Size
	hc.Bits[i/wordBits] |= uint64(bit&1) << (i % wordBits)
	hc.Size++
	return hc
}

// Prefix returns the first size bits of this Code.
func (hc Code) Prefix(size byte) Code {
	assert.Assertf(size <= hc.Size, "prefix size %d > code size %d", size, hc.Size)
	var out Code
	out.Size = size
	full := size / wordBits
	copy(out.Bits[:full], hc.Bits[:full])
	if rem := size % wordBits; rem != 0 {
		out.Bits[full] = hc.Bits[full] & ((uint64(1) << rem) - 1)
	}
	return out
}

// HasPrefix reports whether prefix is a prefix of this Code.  Every Code
// is a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Prefix(prefix.Size) == prefix
}

// flipped returns this Code with bit i inverted.
func (hc Code) flipped(i byte) Code {
	hc.Bits[i/wordBits] ^= uint64(1) << (i % wordBits)
	return hc
}

// chunk returns up to 64 bits of this Code starting at bit offset, packed
// so that the earliest bit is the most significant of the n returned bits.
// This is the order expected by an MSB-first bit writer.
func (hc Code) chunk(offset byte) (bits uint64, n byte) {
	n = hc.Size - offset
	if n > wordBits-offset%wordBits {
		n = wordBits - offset%wordBits
	}
	word := hc.Bits[offset/wordBits] >> (offset % wordBits)
	return reverseBits(n, word), n
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := byte(0); i < hc.Size; i++ {
		sb.WriteByte('0' + byte(hc.Bit(i)))
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code{}

func reverseBits(size byte, bits uint64) uint64 {
	if size == 0 {
		return 0
	}
	return mathbits.Reverse64(bits) >> (wordBits - size)
}
