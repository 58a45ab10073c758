package transport

import "errors"

// ErrIO marks a fatal transport failure: a short read, a closed socket, a
// write that didn't complete. The connection owning the Framer must be torn
// down; there is no partial-frame recovery.
var ErrIO = errors.New("transport: io error")

// ErrInvalidData marks a structurally broken frame: bad brotli, a
// passphrase-based age container where a recipients container was
// required, a decrypt failure, or a frame larger than the configured
// maximum. Also fatal to the connection, but callers may still attempt to
// write one last correlated failure response before closing.
var ErrInvalidData = errors.New("transport: invalid data")
