package huffman

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"fmt"
	"io"
)

// Magic is the first four bytes of every serialized Container.
const Magic = "PXHF"

// Version is the serialization format version written by MarshalBinary.
const Version = 1

// Section tags.
const (
	sectionFrequencies = 'F'
	sectionPayload     = 'P'
)

// Container bundles an EncodedPayload with the frequency table it was
// encoded from.  The decoder rebuilds the tree from the frequencies with
// BuildTree, which is deterministic, so the rebuilt CodeTable is identical
// to the one used for encoding.
//
// The serialized form is:
//
//     "PXHF"  version(1)
//     'F' uvarint(n) n×{symbol(1) uvarint(count)}   symbols ascending, counts > 0
//     'P' uvarint(len) payload(len)
//
// MarshalBinary writes the sections in that order; UnmarshalBinary accepts
// either order but requires each exactly once.
//
type Container struct {
	Frequencies Frequencies
	Payload     EncodedPayload
}

// Stats summarizes the sizes involved in a Container.
type Stats struct {
	// OriginalBytes is the length of the uncompressed input.
	OriginalBytes uint64

	// EncodedBits is the exact length of the coded bit stream, excluding
	// header and padding.
	EncodedBits uint64

	// PayloadBytes is the length of the EncodedPayload, header included.
	PayloadBytes int

	// ContainerBytes is the length of the serialized Container.
	ContainerBytes int

	// Symbols is the alphabet size.
	Symbols int
}

// Ratio returns ContainerBytes / OriginalBytes, or 0 for an empty input.
func (s Stats) Ratio() float64 {
	if s.OriginalBytes == 0 {
		return 0
	}
	return float64(s.ContainerBytes) / float64(s.OriginalBytes)
}

// Stats computes the size summary for this Container.
func (c Container) Stats() (Stats, error) {
	bitLen, err := c.Payload.BitLen()
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		OriginalBytes:  c.Frequencies.Total(),
		EncodedBits:    bitLen,
		PayloadBytes:   len(c.Payload),
		ContainerBytes: c.serializedLen(),
		Symbols:        c.Frequencies.Len(),
	}, nil
}

func (c Container) serializedLen() int {
	var tmp [binary.MaxVarintLen64]byte
	n := len(Magic) + 1
	n += 1 + binary.PutUvarint(tmp[:], uint64(c.Frequencies.Len()))
	for _, count := range c.Frequencies {
		if count != 0 {
			n += 1 + binary.PutUvarint(tmp[:], count)
		}
	}
	n += 1 + binary.PutUvarint(tmp[:], uint64(len(c.Payload))) + len(c.Payload)
	return n
}

// MarshalBinary serializes the Container.
func (c Container) MarshalBinary() ([]byte, error) {
	if len(c.Payload) == 0 {
		return nil, &SchemaError{Section: "payload", Reason: "missing"}
	}

	var tmp [binary.MaxVarintLen64]byte
	putUvarint := func(buf *bytes.Buffer, x uint64) {
		n := binary.PutUvarint(tmp[:], x)
		buf.Write(tmp[:n])
	}

	var buf bytes.Buffer
	buf.Grow(c.serializedLen())
	buf.WriteString(Magic)
	buf.WriteByte(Version)

	buf.WriteByte(sectionFrequencies)
	putUvarint(&buf, uint64(c.Frequencies.Len()))
	for symbol, count := range c.Frequencies {
		if count != 0 {
			buf.WriteByte(byte(symbol))
			putUvarint(&buf, count)
		}
	}

	buf.WriteByte(sectionPayload)
	putUvarint(&buf, uint64(len(c.Payload)))
	buf.Write(c.Payload)

	return buf.Bytes(), nil
}

// UnmarshalBinary deserializes a Container written by MarshalBinary.
//
// Structural problems (bad magic, unsupported version, unknown, missing or
// repeated sections) are reported as *SchemaError.  Problems with section
// contents (truncation, zero or overflowing counts, unsorted symbols) are
// reported as *CorruptDataError.
//
func (c *Container) UnmarshalBinary(data []byte) error {
	if len(data) < len(Magic) || string(data[:len(Magic)]) != Magic {
		return &SchemaError{Reason: "not a container: bad magic"}
	}
	r := bytes.NewReader(data[len(Magic):])

	version, err := r.ReadByte()
	if err != nil {
		return &SchemaError{Reason: "missing version"}
	}
	if version != Version {
		return &SchemaError{Reason: fmt.Sprintf("unsupported version %d", version)}
	}

	var out Container
	var haveFreq, havePayload bool
	for {
		tag, err := r.ReadByte()
		if err == io.EOF {
			break
		}

		switch tag {
		case sectionFrequencies:
			if haveFreq {
				return &SchemaError{Section: "frequencies", Reason: "repeated"}
			}
			haveFreq = true
			if out.Frequencies, err = readFrequencies(r); err != nil {
				return err
			}

		case sectionPayload:
			if havePayload {
				return &SchemaError{Section: "payload", Reason: "repeated"}
			}
			havePayload = true
			if out.Payload, err = readPayload(r); err != nil {
				return err
			}

		default:
			return &SchemaError{Reason: fmt.Sprintf("unknown section tag %#02x", tag)}
		}
	}

	if !haveFreq {
		return &SchemaError{Section: "frequencies", Reason: "missing"}
	}
	if !havePayload {
		return &SchemaError{Section: "payload", Reason: "missing"}
	}

	*c = out
	return nil
}

func readFrequencies(r *bytes.Reader) (Frequencies, error) {
	var freq Frequencies
	n, err := binary.ReadUvarint(r)
	if err != nil {
		return freq, corruptf("frequencies: truncated entry count")
	}
	if n > NumSymbols {
		return freq, corruptf("frequencies: %d entries, max %d", n, NumSymbols)
	}

	var total uint64
	last := -1
	for i := uint64(0); i < n; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return freq, corruptf("frequencies: truncated at entry %d of %d", i, n)
		}
		if int(b) <= last {
			return freq, corruptf("frequencies: symbol %d out of order after %d", b, last)
		}
		last = int(b)

		count, err := binary.ReadUvarint(r)
		if err != nil {
			return freq, corruptf("frequencies: truncated count for symbol %d", b)
		}
		if count == 0 {
			return freq, corruptf("frequencies: symbol %d has a zero count", b)
		}
		if total+count < total {
			return freq, corruptf("frequencies: total count overflows")
		}
		total += count
		freq[b] = count
	}
	return freq, nil
}

func readPayload(r *bytes.Reader) (EncodedPayload, error) {
	n, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, corruptf("payload: truncated length")
	}
	if n == 0 {
		return nil, &SchemaError{Section: "payload", Reason: "empty"}
	}
	if n > uint64(r.Len()) {
		return nil, corruptf("payload: length %d exceeds remaining %d bytes", n, r.Len())
	}
	p := make(EncodedPayload, n)
	if _, err := io.ReadFull(r, p); err != nil {
		return nil, corruptf("payload: %v", err)
	}
	return p, nil
}

var (
	_ encoding.BinaryMarshaler   = Container{}
	_ encoding.BinaryUnmarshaler = (*Container)(nil)
)
