package codec

import "errors"

// ErrBadOptions indicates a negative WrapWidth, Indent or Offset.
var ErrBadOptions = errors.New("codec: options values must be non-negative")
