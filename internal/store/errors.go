package store

import "errors"

// ErrOutOfMemory is returned by any operation that would grow a container
// past its configured budget. The store is left byte-for-byte as it was;
// see Budget for the reserve-or-fail discipline this approximates.
var ErrOutOfMemory = errors.New("store: out of memory")

// ErrTypeMismatch is returned when an operation targets a key bound to a
// different variant than the one it expects. Callers never coerce; they
// surface this to the caller as a TypeError response.
var ErrTypeMismatch = errors.New("store: key holds a different value type")
