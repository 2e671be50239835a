// Package huffman implements a self-contained Huffman codec for byte
// streams.  The whole input is modeled in a single pass: symbol counts are
// turned into an optimal prefix code, the input is packed into a
// byte-aligned bit stream, and the result is bundled with the frequency
// table into a Container that an independent decoder can expand back into
// the exact original bytes.
//
// Trees are built deterministically (see BuildTree), which is what allows
// a Container to ship only the frequency table and have the receiver
// rebuild a bit-identical CodeTable.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
