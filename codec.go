package huffman

import (
	"fmt"
)

// Encode compresses data into a Container.  Any input is accepted,
// including an empty one.  The only possible error is an *IntegrityError,
// which cannot happen unless the package itself is broken.
func Encode(data []byte) (Container, error) {
	freq := CountFrequencies(data)
	table := NewCodeTable(BuildTree(freq))
	payload, err := Pack(data, table)
	if err != nil {
		return Container{}, err
	}
	return Container{Frequencies: freq, Payload: payload}, nil
}

// Decode expands a Container back into the original bytes.  The code table
// is rebuilt from the Container's frequencies.
//
// Decode fails with a *SchemaError if the payload is missing, and with a
// *CorruptDataError if the payload is truncated or does not match the
// frequency table, including when the number of decoded symbols differs
// from the total count.
//
func Decode(c Container) ([]byte, error) {
	if len(c.Payload) == 0 {
		return nil, &SchemaError{Section: "payload", Reason: "missing"}
	}

	table := NewCodeTable(BuildTree(c.Frequencies))
	out, err := Unpack(c.Payload, table.Decoder())
	if err != nil {
		return nil, err
	}

	if total := c.Frequencies.Total(); uint64(len(out)) != total {
		return nil, corruptf("decoded %d symbols, frequency table expects %d", len(out), total)
	}
	if CountFrequencies(out) != c.Frequencies {
		return nil, corruptf("decoded symbols do not match the frequency table")
	}
	return out, nil
}

// Compress is Encode followed by Container.MarshalBinary.
func Compress(data []byte) ([]byte, error) {
	c, err := Encode(data)
	if err != nil {
		return nil, err
	}
	return c.MarshalBinary()
}

// Decompress is Container.UnmarshalBinary followed by Decode.
func Decompress(data []byte) ([]byte, error) {
	var c Container
	if err := c.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	out, err := Decode(c)
	if err != nil {
		return nil, fmt.Errorf("decompress %d bytes: %w", len(data), err)
	}
	return out, nil
}
