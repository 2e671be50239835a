package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol of an alphabet to its Huffman code.
type CodeTable struct {
	codes   [NumSymbols]Code
	numSyms int
	minSize byte
	maxSize byte
}

// NewCodeTable derives the code for every leaf of t.  A left edge
// contributes a 0 bit and a right edge a 1 bit; a leaf's code is the path
// from the root.
//
// A tree whose root is a leaf (a single-symbol alphabet) has no edges at
// all, so that symbol is assigned the one-bit code "0" instead of an empty
// code.  An empty tree yields an empty table.
//
func NewCodeTable(t *Tree) CodeTable {
	var ct CodeTable
	root := t.Root()
	if root == NoChild {
		return ct
	}

	if node := t.Node(root); node.IsLeaf() {
		ct.codes[node.Symbol] = MakeCode(1, 0)
		ct.numSyms = 1
		ct.minSize, ct.maxSize = 1, 1
		return ct
	}

	// Walk the tree depth-first with an explicit stack.  Each stackItem
	// carries the code accumulated on the way down to its node.  The right
	// child is pushed before the left child, so leaves are visited from left
	// to right.

	type stackItem struct {
		index int
		code  Code
	}

	stack := make([]stackItem, 0, t.NumLeaves())
	stack = append(stack, stackItem{index: root})
	for len(stack) != 0 {
		last := len(stack) - 1
		item := stack[last]
		stack = stack[:last]

		node := t.Node(item.index)
		if node.IsLeaf() {
			size := item.code.Size
			ct.codes[node.Symbol] = item.code
			if ct.numSyms == 0 {
				ct.minSize, ct.maxSize = size, size
			} else if ct.minSize > size {
				ct.minSize = size
			} else if ct.maxSize < size {
				ct.maxSize = size
			}
			ct.numSyms++
			continue
		}

		stack = append(stack,
			stackItem{index: node.Right, code: item.code.Append(1)},
			stackItem{index: node.Left, code: item.code.Append(0)},
		)
	}

	assert.Assertf(ct.numSyms == t.NumLeaves(), "walk found %d leaves, tree has %d", ct.numSyms, t.NumLeaves())
	return ct
}

// Code returns the code for symbol.  The second result is false if symbol
// is not part of this table's alphabet.
func (ct CodeTable) Code(symbol Symbol) (Code, bool) {
	hc := ct.codes[symbol]
	return hc, hc.Size != 0
}

// Len returns the number of symbols in the table.
func (ct CodeTable) Len() int {
	return ct.numSyms
}

// MinSize is the bit length of the shortest code.
func (ct CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable) MaxSize() byte {
	return ct.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol,
// 0 for symbols outside the alphabet.
func (ct CodeTable) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol := range ct.codes {
		out[symbol] = ct.codes[symbol].Size
	}
	return out
}

// WeightedLength returns the total number of bits needed to encode an input
// with the given frequencies, i.e. the sum over all symbols of count times
// code size.  Symbols outside the table contribute nothing.
func (ct CodeTable) WeightedLength(freq Frequencies) uint64 {
	var total uint64
	for symbol, count := range freq {
		total += count * uint64(ct.codes[symbol].Size)
	}
	return total
}

// Decoder builds the inverse of this table.
func (ct CodeTable) Decoder() *Decoder {
	return newDecoder(ct)
}

// Dump writes a programmer-readable debugging dump of the table's current
// state to the given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := range ct.codes {
		if hc := ct.codes[symbol]; hc.Size != 0 {
			fmt.Fprintf(&buf, "\tCode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
