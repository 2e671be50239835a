package huffman

import (
	"strings"
	"testing"
)

func makeTestDecoder() *Decoder {
	return makeTestCodeTable().Decoder()
}

func TestDecoder_Decode(t *testing.T) {
	d := makeTestDecoder()

	type testRow struct {
		code string
		ok   bool
		min  byte
		max  byte
		sym  Symbol
	}

	testData := [...]testRow{
		{code: "", min: 1, max: 4},
		{code: "0", ok: true, min: 1, max: 1, sym: 5},
		{code: "1", min: 3, max: 4},
		{code: "10", min: 3, max: 3},
		{code: "11", min: 3, max: 4},
		{code: "100", ok: true, min: 3, max: 3, sym: 2},
		{code: "101", ok: true, min: 3, max: 3, sym: 3},
		{code: "110", min: 4, max: 4},
		{code: "111", ok: true, min: 3, max: 3, sym: 4},
		{code: "1100", ok: true, min: 4, max: 4, sym: 0},
		{code: "1101", ok: true, min: 4, max: 4, sym: 1},
		{code: "00", min: 0, max: 0},
		{code: "11111", min: 0, max: 0},
	}
	for _, row := range testData {
		hc, err := ParseCode(row.code)
		if err != nil {
			t.Fatal(err)
		}
		t.Run(hc.String(), func(t *testing.T) {
			sym, ok, min, max := d.Decode(hc)
			if ok != row.ok {
				t.Errorf("expected ok=%v, got %v", row.ok, ok)
			}
			if ok && sym != row.sym {
				t.Errorf("expected symbol %d, got %d", row.sym, sym)
			}
			if min != row.min {
				t.Errorf("expected minimum size %d, got %d", row.min, min)
			}
			if max != row.max {
				t.Errorf("expected maximum size %d, got %d", row.max, max)
			}
		})
	}
}

func TestDecoder_Dump(t *testing.T) {
	d := makeTestDecoder()

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tDecode(\"\") = {-, 1, 4}\n",
		"\tDecode(\"0\") = {5, 1, 1}\n",
		"\tDecode(\"1\") = {-, 3, 4}\n",
		"\tDecode(\"10\") = {-, 3, 3}\n",
		"\tDecode(\"11\") = {-, 3, 4}\n",
		"\tDecode(\"100\") = {2, 3, 3}\n",
		"\tDecode(\"101\") = {3, 3, 3}\n",
		"\tDecode(\"110\") = {-, 4, 4}\n",
		"\tDecode(\"111\") = {4, 3, 3}\n",
		"\tDecode(\"1100\") = {0, 4, 4}\n",
		"\tDecode(\"1101\") = {1, 4, 4}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = d.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestDecoder_Inverse(t *testing.T) {
	freq := fibonacciFrequencies(80)
	ct := NewCodeTable(BuildTree(freq))
	d := ct.Decoder()

	if d.Len() != ct.Len() || d.MinSize() != ct.MinSize() || d.MaxSize() != ct.MaxSize() {
		t.Errorf("decoder shape differs from table: %d/%d/%d vs %d/%d/%d",
			d.Len(), d.MinSize(), d.MaxSize(), ct.Len(), ct.MinSize(), ct.MaxSize())
	}
	for _, symbol := range freq.Symbols() {
		hc, _ := ct.Code(symbol)
		actual, ok, _, _ := d.Decode(hc)
		if !ok || actual != symbol {
			t.Errorf("Decode(%s) = (%d, %v), expected (%d, true)", hc, actual, ok, symbol)
		}
	}
}
