package huffman

import (
	"strings"
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		hc     Code
		expect string
	}

	testData := [...]testRow{
		{hc: Code{}, expect: `""`},
		{hc: MakeCode(1, 0), expect: `"0"`},
		{hc: MakeCode(1, 1), expect: `"1"`},
		{hc: MakeCode(3, 0x1), expect: `"100"`},
		{hc: MakeCode(4, 0x3), expect: `"1100"`},
		{hc: MakeCode(4, 0xff), expect: `"1111"`},
	}
	for _, row := range testData {
		actual := row.hc.String()
		if actual != row.expect {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
		}
	}
}

func TestParseCode(t *testing.T) {
	for _, str := range []string{"", "0", "1", "0110", strings.Repeat("10", 60), strings.Repeat("1", MaxCodeSize)} {
		hc, err := ParseCode(str)
		if err != nil {
			t.Errorf("ParseCode(%q) failed: %v", str, err)
			continue
		}
		if int(hc.Size) != len(str) {
			t.Errorf("ParseCode(%q): expected size %d, got %d", str, len(str), hc.Size)
		}
		if expect, actual := `"`+str+`"`, hc.String(); expect != actual {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
		}
	}

	for _, str := range []string{"012", "x", strings.Repeat("0", MaxCodeSize+1)} {
		if _, err := ParseCode(str); err == nil {
			t.Errorf("ParseCode(%q): expected error", str)
		}
	}
}

func TestCode_Prefix(t *testing.T) {
	long, err := ParseCode(strings.Repeat("01", 50) + "111")
	if err != nil {
		t.Fatal(err)
	}

	for size := byte(0); size <= long.Size; size++ {
		prefix := long.Prefix(size)
		if prefix.Size != size {
			t.Errorf("Prefix(%d): wrong size %d", size, prefix.Size)
		}
		if !long.HasPrefix(prefix) {
			t.Errorf("Prefix(%d) = %s is not a prefix of %s", size, prefix, long)
		}
		for i := byte(0); i < size; i++ {
			if prefix.Bit(i) != long.Bit(i) {
				t.Errorf("Prefix(%d): bit %d differs", size, i)
			}
		}
	}

	other := long.flipped(70)
	if long.HasPrefix(other) {
		t.Errorf("%s should not be a prefix of %s", other, long)
	}
	if !other.HasPrefix(other.Prefix(70)) || !long.HasPrefix(other.Prefix(70)) {
		t.Errorf("common prefix of 70 bits not recognized")
	}
}

func TestCode_chunk(t *testing.T) {
	str := "1" + strings.Repeat("0", 62) + "11" + strings.Repeat("0", 9) + "1"
	hc, err := ParseCode(str)
	if err != nil {
		t.Fatal(err)
	}

	// The first chunk stops at the word boundary; the second holds the rest.
	bits, n := hc.chunk(0)
	if n != 64 || bits != 0x8000000000000001 {
		t.Errorf("chunk(0) = (%#x, %d)", bits, n)
	}
	bits, n = hc.chunk(64)
	if n != 11 || bits != 0x401 {
		t.Errorf("chunk(64) = (%#x, %d)", bits, n)
	}
}
