package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Frequencies holds the number of occurrences of each Symbol in an input.
// A count of 0 means the Symbol does not occur and is not part of the
// alphabet.
//
// Frequencies is an array, so it is copied by value; a table returned by
// CountFrequencies cannot be altered behind the caller's back.
//
type Frequencies [NumSymbols]uint64

// CountFrequencies counts every byte of data.  An empty input yields an
// empty table.
func CountFrequencies(data []byte) Frequencies {
	var freq Frequencies
	for _, b := range data {
		freq[b]++
	}
	return freq
}

// Count returns the number of occurrences of symbol.
func (freq Frequencies) Count(symbol Symbol) uint64 {
	return freq[symbol]
}

// Len returns the number of distinct symbols with a non-zero count.
func (freq Frequencies) Len() int {
	var n int
	for _, count := range freq {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, which is the length of the input the
// table was counted from.
func (freq Frequencies) Total() uint64 {
	var total uint64
	for _, count := range freq {
		total += count
	}
	return total
}

// Symbols returns the symbols with a non-zero count, in ascending order.
func (freq Frequencies) Symbols() []Symbol {
	out := make([]Symbol, 0, freq.Len())
	for symbol, count := range freq {
		if count != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the
// given writer.
func (freq Frequencies) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Frequencies{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", freq.Len())
	fmt.Fprintf(&buf, "\tTotal() = %d\n", freq.Total())
	for _, symbol := range freq.Symbols() {
		fmt.Fprintf(&buf, "\tCount(%d) = %d\n", symbol, freq[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
