package commands

import "github.com/FairyTail2000/in-mem/pkg/proto"

type getHandler struct{ Base }

func (getHandler) Execute(ctx *Context) Result {
	var in proto.GetInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	val, found := ctx.Store.Get(in.Key)
	if found {
		return Result{Status: proto.StatusSuccess, Content: val}
	}
	if in.Default != nil {
		return Result{Status: proto.StatusFailure, Content: *in.Default}
	}
	return Result{Status: proto.StatusFailure}
}

type setHandler struct{ Base }

func (setHandler) Execute(ctx *Context) Result {
	var in proto.SetInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	if err := ctx.Store.Set(in.Key, in.Value); err != nil {
		return Result{Status: statusForErr(err)}
	}
	return Result{Status: proto.StatusSuccess}
}

type deleteHandler struct{ Base }

func (deleteHandler) Execute(ctx *Context) Result {
	var in proto.DeleteInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	if _, found := ctx.Store.Remove(in.Key); !found {
		return Result{Status: proto.StatusNotFound}
	}
	return Result{Status: proto.StatusSuccess}
}

type heartbeatHandler struct{ Base }

func (heartbeatHandler) Execute(*Context) Result {
	return Result{Status: proto.StatusSuccess}
}
