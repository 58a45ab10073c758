package commands

import "github.com/FairyTail2000/in-mem/pkg/proto"

type userRemoveHandler struct{ Base }

func (userRemoveHandler) Execute(ctx *Context) Result {
	var in proto.UserRemoveInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	if !ctx.Store.UserRemove(in.User) {
		return Result{Status: proto.StatusNotFound}
	}
	return Result{Status: proto.StatusSuccess}
}
