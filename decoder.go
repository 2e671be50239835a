package huffman

import (
	"bytes"
	"fmt"
	"io"
	mathbits "math/bits"
	"sort"
)

// Decoder is the inverse of a CodeTable: it maps codes back to symbols.
//
// Besides one entry per complete code, the lookup table holds an entry for
// every proper prefix of a code, which lets Decode tell "keep reading" apart
// from "this can never become a valid code".
//
type Decoder struct {
	table   map[Code]decoderData
	numSyms int
	minSize byte
	maxSize byte
}

func newDecoder(ct CodeTable) *Decoder {
	numSyms := ct.Len()
	if numSyms == 0 {
		return &Decoder{}
	}

	// len(table) is approximately n×log2(n) when filled.
	numTableSlots := numSyms * (mathbits.Len(uint(numSyms)))

	d := &Decoder{
		table:   make(map[Code]decoderData, numTableSlots),
		numSyms: numSyms,
		minSize: ct.MinSize(),
		maxSize: ct.MaxSize(),
	}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if hc, ok := ct.Code(Symbol(symbol)); ok {
			fillTable(d.table, Symbol(symbol), hc)
		}
	}
	return d
}

// Decode attempts to decode a candidate code into a Symbol.
//
// If hc is a complete code, ok is true and minSize == maxSize == hc.Size.
//
// If hc is a proper prefix of one or more codes, ok is false and between
// (minSize - hc.Size) and (maxSize - hc.Size) additional bits are required
// to decode a symbol.
//
// If hc is neither, ok is false and minSize == maxSize == 0.
//
func (d *Decoder) Decode(hc Code) (symbol Symbol, ok bool, minSize byte, maxSize byte) {
	dd, found := d.table[hc]
	if !found {
		return 0, false, 0, 0
	}
	return dd.symbol, dd.leaf, dd.minSize, dd.maxSize
}

// Len returns the number of symbols the Decoder knows.
func (d *Decoder) Len() int {
	return d.numSyms
}

// MinSize is the bit length of the shortest legal code.
func (d *Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d *Decoder) MaxSize() byte {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		dd := d.table[hc]
		if dd.leaf {
			fmt.Fprintf(&buf, "\tDecode(%s) = {%d, %d, %d}\n", hc, dd.symbol, dd.minSize, dd.maxSize)
		} else {
			fmt.Fprintf(&buf, "\tDecode(%s) = {-, %d, %d}\n", hc, dd.minSize, dd.maxSize)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type decoderData struct {
	symbol  Symbol
	leaf    bool
	minSize byte
	maxSize byte
}

func fillTable(table map[Code]decoderData, symbol Symbol, hc Code) {
	dd := decoderData{symbol, true, hc.Size, hc.Size}
	table[hc] = dd

	for hc.Size != 0 {
		// For each hc "...xxxa", look up "...xxxA" where A = NOT a.

		last := hc.Size - 1
		sibling := hc.flipped(last)

		// Merge the dd's from "...xxxa" (dd) and "...xxxA" (ddSibling)
		// into ddNew (the new parent for dd and ddSibling).

		ddNew := decoderData{0, false, dd.minSize, dd.maxSize}
		if ddSibling, found := table[sibling]; found {
			if ddNew.minSize > ddSibling.minSize {
				ddNew.minSize = ddSibling.minSize
			}
			if ddNew.maxSize < ddSibling.maxSize {
				ddNew.maxSize = ddSibling.maxSize
			}
		}

		// Mutate hc from "...xxxa" to "...xxx".

		hc = hc.Prefix(last)

		// If table[hc] already equals ddNew, we can stop walking up.

		if ddOld, found := table[hc]; found && ddOld == ddNew {
			break
		}

		// Update table[hc] with ddNew and continue walking up.

		table[hc] = ddNew
		dd = ddNew
	}
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

// Less orders codes by size, then lexicographically by bits, first bit
// first.
func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	for k := byte(0); k < a.Size; k++ {
		if x, y := a.Bit(k), b.Bit(k); x != y {
			return x < y
		}
	}
	return false
}

var _ sort.Interface = byCode(nil)

// }}}
