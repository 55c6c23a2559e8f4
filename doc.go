// Package bbd is a reversible codec between raw bytes and Unicode
// Braille Patterns characters (U+2800–U+28FF) — a binary Braille dump.
//
// 🚀 What is bbd?
//
//	A small, pure-Go library that renders any byte sequence as Braille
//	cells, one character per byte, and reads it back bit-exactly:
//		• Six styles: direct, the nibble-column family (nlbb/nlbt/nrbb/nrbt)
//		  and bcd (binary coded decimal, values 0–99)
//		• Column wrapping with uniform indentation on encode
//		• Wrap-tolerant decode: whitespace never changes the payload
//		• Optional Markdown code-block fencing
//
// ✨ Why choose bbd?
//
//   - Bijective by construction – every style round-trips its whole domain
//   - Pure Go – no cgo, stateless, trivially parallel across calls
//   - Explicit errors – domain violations and stray characters are
//     reported with their exact position, never papered over
//
// Everything is organized under three subpackages plus one command:
//
//	cell/    — dot-grid addressing: dots 1–8 ↔ offset bits ↔ (column, row)
//	style/   — the six named byte↔cell bijections
//	codec/   — stream encode/decode with wrapping, indent and fencing
//	cmd/bbd/ — command-line filter (files or stdin → stdout)
//
// Quick example:
//
//	text, _ := codec.Encode([]byte("Hello\n"), style.NLBB, nil)
//	// text == "⢄⠮⢦⢦⢾⢐"
//
// See each package's doc.go and example_test.go for details.
//
//	go get github.com/katalvlaran/bbd
package bbd
