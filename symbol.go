package huffman

// Symbol represents one symbol of the byte alphabet.
type Symbol uint8

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)
