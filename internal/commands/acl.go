package commands

import "github.com/FairyTail2000/in-mem/pkg/proto"

type aclSetHandler struct{ Base }

func (aclSetHandler) Execute(ctx *Context) Result {
	var in proto.AclSetInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	ctx.Store.AclAdd(in.User, in.Command)
	return Result{Status: proto.StatusSuccess}
}

type aclRemoveHandler struct{ Base }

func (aclRemoveHandler) Execute(ctx *Context) Result {
	var in proto.AclRemoveInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	if !ctx.Store.AclRemove(in.User, in.Command) {
		return Result{Status: proto.StatusNotFound}
	}
	return Result{Status: proto.StatusSuccess}
}

type aclListHandler struct{ Base }

func (aclListHandler) Execute(ctx *Context) Result {
	var in proto.AclListInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	return Result{Status: proto.StatusSuccess, Content: ctx.Store.AclList(in.User)}
}
