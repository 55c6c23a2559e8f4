// Package codec drives a style across whole byte sequences: it is the
// stream-level encode/decode pipeline of bbd, including the wrap/format
// layer.
//
// What:
//
//   - Encode maps every input byte, in order, to one Braille rune under
//     the chosen style, inserting a line break plus uniform indent after
//     every WrapWidth output characters (0 disables wrapping), and can
//     fence the whole block as Markdown.
//   - Decode ignores all interleaved whitespace — line breaks and indent
//     are pure formatting — and maps every remaining rune back to its
//     byte. Any legally wrapped encoding of the same content decodes
//     identically.
//
// Options:
//
//   - WrapWidth: output units per line, default 64; 0 disables wrapping.
//   - Indent: spaces emitted after each inserted line break, default 0.
//   - Markdown: wrap the encoded block in a fenced code block.
//   - Offset: units already on the current line, so a sequence split
//     across several Encode calls keeps a continuous wrap phase.
//
// Errors:
//
//   - style.ErrDomain / style.ErrInvalidCharacter surface unchanged,
//     wrapped with the offending unit's position. No partial output is
//     returned on error.
//   - ErrBadOptions: a negative WrapWidth, Indent or Offset.
//
// Both operations are pure functions over their inputs: no I/O, no state
// between calls, unit i of the input always maps to unit i of the output.
// Concurrent calls are safe because nothing is shared.
package codec
