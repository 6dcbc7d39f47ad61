package core

import "errors"

// ErrIndexOutOfRange is returned for vector component access outside {0, 1, 2}.
var ErrIndexOutOfRange = errors.New("vector index out of range")

// ErrDegenerate is returned when a division or normalization would produce
// infinities or NaNs because the divisor is not meaningfully distinguishable
// from zero. It signals an ill-formed ray or geometric configuration upstream.
var ErrDegenerate = errors.New("degenerate geometry")
