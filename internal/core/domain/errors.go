package domain

import "errors"

// ErrDuplicate is returned by stores when a uniqueness rule rejects a write,
// e.g. a second active payment for the same order.
var ErrDuplicate = errors.New("duplicate record")
