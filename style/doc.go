// Package style provides the six named bijections between byte values
// and Braille cells used by the bbd codec.
//
// What:
//
//   - Style is a closed enumeration: NLBB (default), NLBT, NRBB, NRBT,
//     Direct and BCD. Parse resolves the lower-case CLI names.
//   - EncodeByte maps one byte (or one 0–99 decimal value for BCD) to one
//     Braille Patterns rune; DecodeRune is its exact inverse.
//
// Styles:
//
//   - direct: offset = byte value, the identity permutation over 0–255.
//   - nlbb/nlbt/nrbb/nrbt: the byte's most significant nibble (MSN) goes
//     to the left (nl) or right (nr) column, and each nibble's most
//     significant bit sits in the top (t) or bottom (b) row, remaining
//     bits filling toward the opposite end. Four combinations of two
//     independent choices, implemented as one parameterized layout.
//   - bcd: binary coded decimal of values 0–99. The tens digit occupies
//     the left column and the ones digit the right column, most
//     significant digit bit in the top row (the nlbt row convention
//     applied to decimal digits). Values ≥ 100 are rejected on encode;
//     recovered digits > 9 are rejected on decode.
//
// Errors:
//
//   - ErrDomain: a value (or recovered digit pair) outside the style's
//     domain. Only BCD has a restricted domain.
//   - ErrInvalidCharacter: a decode input outside U+2800–U+28FF.
//   - ErrUnknownStyle: Parse received an unrecognized name.
//
// Every style is stateless: a pure (EncodeByte, DecodeRune) pair with
// DecodeRune(EncodeByte(b)) == b over its whole domain.
package style
