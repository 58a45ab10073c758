package commands

import "github.com/FairyTail2000/in-mem/pkg/proto"

// clientIDHandler returns the server-assigned connection id. Added in
// SPEC_FULL.md §5 as a supplemented command, grounded on the original's
// client command; it reports Success with the id as content rather than the
// original's Failure status on a successful lookup.
type clientIDHandler struct{ Base }

func (clientIDHandler) Execute(ctx *Context) Result {
	return Result{Status: proto.StatusSuccess, Content: ctx.Conn.ID().String()}
}
