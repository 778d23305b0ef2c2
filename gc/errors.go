package gc

import "errors"

// ErrNestedTooSmall is returned by AddNestedReference when the source
// block's payload is smaller than one machine word, so there is nowhere
// to write the outgoing pointer.
var ErrNestedTooSmall = errors.New("gc: source block too small to hold a nested reference")
