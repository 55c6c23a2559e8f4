package codec

// DefaultWrapWidth is the number of encoded units per output line when
// the caller does not choose otherwise.
const DefaultWrapWidth = 64

// Options configures the wrap/format layer of Encode. Decode takes no
// options: it accepts any legally wrapped (or unwrapped) input.
//
// Fields:
//   - WrapWidth — encoded units per line before a line break is inserted.
//     0 disables wrapping entirely, regardless of input length.
//   - Indent    — number of spaces emitted after each inserted line
//     break, applied uniformly.
//   - Markdown  — wrap the whole encoded block in a fenced Markdown code
//     block. Pure text framing; the payload characters are unchanged.
//   - Offset    — encoded units already emitted on the current line.
//     Lets a caller split one logical stream across several Encode calls
//     (e.g. consecutive files) without resetting the wrap phase.
//
// Example:
//
//	opts := codec.DefaultOptions()
//	opts.WrapWidth = 16
//	opts.Indent = 4
//	text, err := codec.Encode(data, style.NLBB, &opts)
type Options struct {
	WrapWidth int
	Indent    int
	Markdown  bool
	Offset    int
}

// DefaultOptions returns the documented defaults: wrap at 64 units, no
// indent, no Markdown fencing, zero offset.
func DefaultOptions() Options {
	return Options{WrapWidth: DefaultWrapWidth}
}
