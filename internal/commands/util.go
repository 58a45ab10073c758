package commands

import (
	"errors"

	"github.com/FairyTail2000/in-mem/internal/store"
	"github.com/FairyTail2000/in-mem/pkg/proto"
)

// statusForErr maps a store-layer error to the wire Status a Response
// carries back. A nil error is never passed here by convention; callers
// branch on err before reaching for this.
func statusForErr(err error) proto.Status {
	switch {
	case errors.Is(err, store.ErrOutOfMemory):
		return proto.StatusOutOfMemory
	case errors.Is(err, store.ErrTypeMismatch):
		return proto.StatusTypeError
	default:
		return proto.StatusFailure
	}
}

// decode unmarshals ctx.Raw into dst, returning a Failure result built from
// the decode error's message if it fails.
func decode(ctx *Context, dst any) (Result, bool) {
	if err := proto.DecodePayload(ctx.Raw, dst); err != nil {
		return Result{Status: proto.StatusFailure, Content: err.Error()}, false
	}
	return Result{}, true
}

// decodeOrClose is decode's counterpart for LOGIN/KEYEXCHANGE, whose
// original handlers treat an undecodable payload as bad-faith behavior that
// closes the connection rather than a response worth sending.
func decodeOrClose(ctx *Context, dst any) (Result, bool) {
	if err := proto.DecodePayload(ctx.Raw, dst); err != nil {
		return Result{Close: true}, false
	}
	return Result{}, true
}
