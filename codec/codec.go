package codec

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/bbd/style"
)

// Encode renders data as Braille Patterns text under st, one character
// per byte in input order, wrapped and framed per opts. A nil opts means
// DefaultOptions().
//
// The first byte outside the style's domain (possible only for BCD)
// aborts the call with an error wrapping style.ErrDomain that names the
// byte's index; nothing is returned in that case.
func Encode(data []byte, st style.Style, opts *Options) (string, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.WrapWidth < 0 || o.Indent < 0 || o.Offset < 0 {
		return "", fmt.Errorf("%w: wrap %d, indent %d, offset %d",
			ErrBadOptions, o.WrapWidth, o.Indent, o.Offset)
	}

	separator := "\n" + strings.Repeat(" ", o.Indent)
	column := 0
	if o.WrapWidth > 0 {
		column = o.Offset % o.WrapWidth
	}

	var out strings.Builder
	out.Grow(3 * len(data)) // Braille runes are 3 bytes in UTF-8
	for i, b := range data {
		r, err := st.EncodeByte(b)
		if err != nil {
			return "", fmt.Errorf("codec: byte 0x%02X at index %d: %w", b, i, err)
		}
		out.WriteRune(r)

		if o.WrapWidth > 0 {
			column++
			if column >= o.WrapWidth {
				out.WriteString(separator)
				column = 0
			}
		}
	}

	if o.Markdown {
		return "```\n" + out.String() + "\n```", nil
	}
	return out.String(), nil
}

// Decode maps Braille Patterns text back to the bytes it encodes under
// st. All whitespace — line breaks, indentation, spaces, tabs — is
// skipped wherever it appears, so the wrap width and indent used at
// encode time are irrelevant.
//
// Any other rune outside U+2800–U+28FF fails with an error wrapping
// style.ErrInvalidCharacter; a Braille rune whose recovered value lies
// outside the style's domain fails wrapping style.ErrDomain. Both name
// the rune's position in text. No partial output is returned on error.
func Decode(text string, st style.Style) ([]byte, error) {
	out := make([]byte, 0, len(text)/3)
	position := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			position++
			continue
		}
		b, err := st.DecodeRune(r)
		if err != nil {
			return nil, fmt.Errorf("codec: character at position %d: %w", position, err)
		}
		out = append(out, b)
		position++
	}
	return out, nil
}
