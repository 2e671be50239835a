package huffman

import (
	"fmt"
)

// IntegrityError is returned by Pack when an input symbol has no code in
// the table it is being packed with.  The table is always derived from the
// same input by Encode, so seeing this error indicates a bug in the caller.
type IntegrityError struct {
	Symbol Symbol
	Offset int
}

// Error fulfills the error interface.
func (err *IntegrityError) Error() string {
	return fmt.Sprintf("huffman: integrity error: symbol %d at offset %d has no code", err.Symbol, err.Offset)
}

// CorruptDataError is returned while decoding when the encoded data is
// truncated, padded inconsistently, or does not match its code table.
type CorruptDataError struct {
	Reason string
}

// Error fulfills the error interface.
func (err *CorruptDataError) Error() string {
	return "huffman: corrupt data: " + err.Reason
}

func corruptf(format string, args ...interface{}) error {
	return &CorruptDataError{Reason: fmt.Sprintf(format, args...)}
}

// SchemaError is returned while decoding a Container that is missing a
// required section or is not a Container at all.
type SchemaError struct {
	Section string
	Reason  string
}

// Error fulfills the error interface.
func (err *SchemaError) Error() string {
	if err.Section == "" {
		return "huffman: schema error: " + err.Reason
	}
	return "huffman: schema error: " + err.Section + ": " + err.Reason
}

var (
	_ error = (*IntegrityError)(nil)
	_ error = (*CorruptDataError)(nil)
	_ error = (*SchemaError)(nil)
)
