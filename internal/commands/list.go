package commands

import "github.com/FairyTail2000/in-mem/pkg/proto"

type lLenHandler struct{ Base }

func (lLenHandler) Execute(ctx *Context) Result {
	var in proto.LLenInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	return Result{Status: proto.StatusSuccess, Content: ctx.Store.LLen(in.Key)}
}

type lIndexHandler struct{ Base }

func (lIndexHandler) Execute(ctx *Context) Result {
	var in proto.LIndexInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	idx, found := ctx.Store.LIndex(in.Key, in.Value)
	if !found {
		return Result{Status: proto.StatusNotFound}
	}
	return Result{Status: proto.StatusSuccess, Content: idx}
}

type lPushHandler struct{ Base }

func (lPushHandler) Execute(ctx *Context) Result {
	var in proto.LPushInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	if err := ctx.Store.LPush(in.Key, in.Values); err != nil {
		return Result{Status: statusForErr(err)}
	}
	return Result{Status: proto.StatusSuccess}
}

type lPushXHandler struct{ Base }

func (lPushXHandler) Execute(ctx *Context) Result {
	var in proto.LPushXInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	if err := ctx.Store.LPushX(in.Key, in.Values); err != nil {
		return Result{Status: statusForErr(err)}
	}
	return Result{Status: proto.StatusSuccess}
}

type lPopHandler struct{ Base }

func (lPopHandler) Execute(ctx *Context) Result {
	var in proto.LPopInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	count := 1
	if in.Count != nil {
		count = int(*in.Count)
	}
	popped, found, err := ctx.Store.LPop(in.Key, count)
	if err != nil {
		return Result{Status: statusForErr(err)}
	}
	if !found {
		return Result{Status: proto.StatusNotFound}
	}
	return Result{Status: proto.StatusSuccess, Content: popped}
}

type lPosHandler struct{ Base }

func (lPosHandler) Execute(ctx *Context) Result {
	var in proto.LPosInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	var rank int64
	if in.Rank != nil {
		rank = *in.Rank
	}
	var count uint64
	if in.Count != nil {
		count = *in.Count
	}
	var maxLen uint64
	if in.MaxLen != nil {
		maxLen = *in.MaxLen
	}
	positions, found, err := ctx.Store.LPos(in.Key, in.Value, rank, count, maxLen)
	if err != nil {
		return Result{Status: statusForErr(err)}
	}
	if !found {
		return Result{Status: proto.StatusNotFound}
	}
	return Result{Status: proto.StatusSuccess, Content: positions}
}

type lRangeHandler struct{ Base }

func (lRangeHandler) Execute(ctx *Context) Result {
	var in proto.LRangeInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	items, err := ctx.Store.LRange(in.Key, in.Start, in.Stop)
	if err != nil {
		return Result{Status: statusForErr(err)}
	}
	return Result{Status: proto.StatusSuccess, Content: items}
}

type lRemHandler struct{ Base }

func (lRemHandler) Execute(ctx *Context) Result {
	var in proto.LRemInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	n, err := ctx.Store.LRem(in.Key, in.Count, in.Value)
	if err != nil {
		return Result{Status: statusForErr(err)}
	}
	return Result{Status: proto.StatusSuccess, Content: n}
}

type lSetHandler struct{ Base }

func (lSetHandler) Execute(ctx *Context) Result {
	var in proto.LSetInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	ok, err := ctx.Store.LSet(in.Key, in.Index, in.Value)
	if err != nil {
		return Result{Status: statusForErr(err)}
	}
	if !ok {
		return Result{Status: proto.StatusNotFound}
	}
	return Result{Status: proto.StatusSuccess}
}

type lTrimHandler struct{ Base }

func (lTrimHandler) Execute(ctx *Context) Result {
	var in proto.LTrimInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	ok, err := ctx.Store.LTrim(in.Key, in.Start, in.Stop)
	if err != nil {
		return Result{Status: statusForErr(err)}
	}
	if !ok {
		return Result{Status: proto.StatusNotFound}
	}
	return Result{Status: proto.StatusSuccess}
}

type rPushHandler struct{ Base }

func (rPushHandler) Execute(ctx *Context) Result {
	var in proto.RPushInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	if err := ctx.Store.RPush(in.Key, in.Values); err != nil {
		return Result{Status: statusForErr(err)}
	}
	return Result{Status: proto.StatusSuccess}
}

type rPushXHandler struct{ Base }

func (rPushXHandler) Execute(ctx *Context) Result {
	var in proto.RPushXInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	if err := ctx.Store.RPushX(in.Key, in.Values); err != nil {
		return Result{Status: statusForErr(err)}
	}
	return Result{Status: proto.StatusSuccess}
}

type rPopHandler struct{ Base }

func (rPopHandler) Execute(ctx *Context) Result {
	var in proto.RPopInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	count := 1
	if in.Count != nil {
		count = int(*in.Count)
	}
	popped, found, err := ctx.Store.RPop(in.Key, count)
	if err != nil {
		return Result{Status: statusForErr(err)}
	}
	if !found {
		return Result{Status: proto.StatusNotFound}
	}
	return Result{Status: proto.StatusSuccess, Content: popped}
}

type lMoveHandler struct{ Base }

func (lMoveHandler) Execute(ctx *Context) Result {
	var in proto.LMoveInput
	if res, ok := decode(ctx, &in); !ok {
		return res
	}
	moved, ok, err := ctx.Store.LMove(in.Src, in.Dst, in.WhereSrc, in.WhereDst)
	if err != nil {
		return Result{Status: statusForErr(err)}
	}
	if !ok {
		return Result{Status: proto.StatusNotFound}
	}
	return Result{Status: proto.StatusSuccess, Content: moved}
}
