package huffman

import (
	"bytes"
	"strings"
	"testing"
)

func makeTestCodeTable() CodeTable {
	return NewCodeTable(BuildTree(makeTestFrequencies()))
}

func TestCodeTable(t *testing.T) {
	ct := makeTestCodeTable()

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tCode(0) = \"1100\"\n",
		"\tCode(1) = \"1101\"\n",
		"\tCode(2) = \"100\"\n",
		"\tCode(3) = \"101\"\n",
		"\tCode(4) = \"111\"\n",
		"\tCode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ct.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	actualSizes := ct.SizeBySymbol()[:6]
	expectSizes := []byte{4, 4, 3, 3, 3, 1}
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}

	if actual := ct.WeightedLength(makeTestFrequencies()); actual != 224 {
		t.Errorf("expected weighted length 224, got %d", actual)
	}

	if _, ok := ct.Code(6); ok {
		t.Errorf("symbol 6 should not have a code")
	}
}

func TestCodeTable_Example(t *testing.T) {
	ct := NewCodeTable(BuildTree(CountFrequencies([]byte{65, 65, 65, 66, 66, 67})))

	type testRow struct {
		symbol Symbol
		expect string
	}

	testData := [...]testRow{
		{symbol: 65, expect: `"0"`},
		{symbol: 66, expect: `"11"`},
		{symbol: 67, expect: `"10"`},
	}
	for _, row := range testData {
		hc, ok := ct.Code(row.symbol)
		if !ok {
			t.Errorf("symbol %d has no code", row.symbol)
			continue
		}
		if actual := hc.String(); actual != row.expect {
			t.Errorf("symbol %d: expected %s, got %s", row.symbol, row.expect, actual)
		}
	}
}

func TestCodeTable_Degenerate(t *testing.T) {
	empty := NewCodeTable(BuildTree(Frequencies{}))
	if empty.Len() != 0 || empty.MinSize() != 0 || empty.MaxSize() != 0 {
		t.Errorf("expected empty table, got Len=%d", empty.Len())
	}

	var freq Frequencies
	freq[200] = 1000
	single := NewCodeTable(BuildTree(freq))
	hc, ok := single.Code(200)
	if !ok || hc != MakeCode(1, 0) {
		t.Errorf("expected one-bit code \"0\" for the only symbol, got %s", hc)
	}
	if single.WeightedLength(freq) != 1000 {
		t.Errorf("expected 1000 bits, got %d", single.WeightedLength(freq))
	}
}

func checkPrefixFree(t *testing.T, ct CodeTable) {
	t.Helper()
	for a := 0; a < NumSymbols; a++ {
		ca, ok := ct.Code(Symbol(a))
		if !ok {
			continue
		}
		for b := 0; b < NumSymbols; b++ {
			cb, ok := ct.Code(Symbol(b))
			if !ok || a == b {
				continue
			}
			if cb.HasPrefix(ca) {
				t.Errorf("code %s of symbol %d is a prefix of code %s of symbol %d", ca, a, cb, b)
			}
		}
	}
}

func TestCodeTable_PrefixFree(t *testing.T) {
	all := Frequencies{}
	for i := range all {
		all[i] = uint64(i*i%97 + 1)
	}

	checkPrefixFree(t, makeTestCodeTable())
	checkPrefixFree(t, NewCodeTable(BuildTree(all)))
	checkPrefixFree(t, NewCodeTable(BuildTree(fibonacciFrequencies(80))))
}

func TestCodeTable_Deep(t *testing.T) {
	freq := fibonacciFrequencies(80)
	ct := NewCodeTable(BuildTree(freq))

	if ct.Len() != 80 {
		t.Errorf("expected 80 codes, got %d", ct.Len())
	}
	if ct.MinSize() != 1 || ct.MaxSize() != 79 {
		t.Errorf("expected sizes 1 .. 79, got %d .. %d", ct.MinSize(), ct.MaxSize())
	}
	if expect, actual := independentCost(freq), ct.WeightedLength(freq); expect != actual {
		t.Errorf("expected weighted length %d, got %d", expect, actual)
	}
}

func TestCodeTable_Reproducible(t *testing.T) {
	freq := CountFrequencies([]byte("abracadabra, alakazam"))
	var a, b strings.Builder
	_, _ = NewCodeTable(BuildTree(freq)).Dump(&a)
	_, _ = NewCodeTable(BuildTree(freq)).Dump(&b)
	if a.String() != b.String() {
		t.Errorf("tables differ:\n\tfirst:  %s\n\tsecond: %s", a.String(), b.String())
	}
}
