package commands

import "github.com/FairyTail2000/in-mem/pkg/proto"

type hGetHandler struct{ Base }

func (hGetHandler) Execute(ctx *Context) Result {
	var in proto.HGetInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	val, found, err := ctx.Store.HGet(in.Key, in.Field)
	if err != nil {
		return Result{Status: statusForErr(err)}
	}
	if !found {
		return Result{Status: proto.StatusNotFound}
	}
	return Result{Status: proto.StatusSuccess, Content: val}
}

type hSetHandler struct{ Base }

func (hSetHandler) Execute(ctx *Context) Result {
	var in proto.HSetInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	if err := ctx.Store.HSet(in.Key, in.Value); err != nil {
		return Result{Status: statusForErr(err)}
	}
	return Result{Status: proto.StatusSuccess}
}

type hUpsertHandler struct{ Base }

func (hUpsertHandler) Execute(ctx *Context) Result {
	var in proto.HUpsertInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	if err := ctx.Store.HUpsert(in.Key, in.Field, in.Value); err != nil {
		return Result{Status: statusForErr(err)}
	}
	return Result{Status: proto.StatusSuccess}
}

type hDelHandler struct{ Base }

func (hDelHandler) Execute(ctx *Context) Result {
	var in proto.HDelInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	removed, err := ctx.Store.HDel(in.Key, in.Field)
	if err != nil {
		return Result{Status: statusForErr(err)}
	}
	if !removed {
		return Result{Status: proto.StatusNotFound}
	}
	return Result{Status: proto.StatusSuccess}
}

type hExistsHandler struct{ Base }

func (hExistsHandler) Execute(ctx *Context) Result {
	var in proto.HExistsInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	exists, err := ctx.Store.HExists(in.Key, in.Field)
	if err != nil {
		return Result{Status: statusForErr(err)}
	}
	return Result{Status: proto.StatusSuccess, Content: exists}
}

type hGetAllHandler struct{ Base }

func (hGetAllHandler) Execute(ctx *Context) Result {
	var in proto.HGetAllInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	all, err := ctx.Store.HGetAll(in.Key)
	if err != nil {
		return Result{Status: statusForErr(err)}
	}
	return Result{Status: proto.StatusSuccess, Content: all}
}

type hKeysHandler struct{ Base }

func (hKeysHandler) Execute(ctx *Context) Result {
	var in proto.HKeysInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	keys, err := ctx.Store.HKeys(in.Key)
	if err != nil {
		return Result{Status: statusForErr(err)}
	}
	return Result{Status: proto.StatusSuccess, Content: keys}
}

type hValsHandler struct{ Base }

func (hValsHandler) Execute(ctx *Context) Result {
	var in proto.HValsInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	vals, err := ctx.Store.HVals(in.Key)
	if err != nil {
		return Result{Status: statusForErr(err)}
	}
	return Result{Status: proto.StatusSuccess, Content: vals}
}

type hLenHandler struct{ Base }

func (hLenHandler) Execute(ctx *Context) Result {
	var in proto.HLenInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	n, err := ctx.Store.HLen(in.Key)
	if err != nil {
		return Result{Status: statusForErr(err)}
	}
	return Result{Status: proto.StatusSuccess, Content: n}
}

type hStrLenHandler struct{ Base }

func (hStrLenHandler) Execute(ctx *Context) Result {
	var in proto.HStrLenInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	length, found, err := ctx.Store.HStrLen(in.Key, in.Field)
	if err != nil {
		return Result{Status: statusForErr(err)}
	}
	if !found {
		return Result{Status: proto.StatusNotFound}
	}
	return Result{Status: proto.StatusSuccess, Content: length}
}

type hIncrByHandler struct{ Base }

func (hIncrByHandler) Execute(ctx *Context) Result {
	var in proto.HIncrByInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	next, err := ctx.Store.HIncrBy(in.Key, in.Field, in.Value)
	if err != nil {
		return Result{Status: statusForErr(err)}
	}
	return Result{Status: proto.StatusSuccess, Content: next}
}
