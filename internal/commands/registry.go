package commands

import "github.com/FairyTail2000/in-mem/pkg/proto"

// Registry maps every CommandID to the Handler that serves it.
type Registry struct {
	handlers map[proto.CommandID]Handler
}

// NewRegistry builds the registry with every handler wired in. Calling this
// once at startup and sharing the result across connections is the
// intended usage — Handler implementations carry no per-request state, so
// nothing about sharing it is unsafe.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[proto.CommandID]Handler)}

	r.register(proto.Get, getHandler{})
	r.register(proto.Set, setHandler{})
	r.register(proto.Delete, deleteHandler{})
	r.register(proto.Heartbeat, heartbeatHandler{})

	r.register(proto.AclSet, aclSetHandler{})
	r.register(proto.AclRemove, aclRemoveHandler{})
	r.register(proto.AclList, aclListHandler{})

	r.register(proto.Login, loginHandler{})
	r.register(proto.KeyExchange, keyExchangeHandler{})

	r.register(proto.HGet, hGetHandler{})
	r.register(proto.HSet, hSetHandler{})
	r.register(proto.HUpsert, hUpsertHandler{})
	r.register(proto.HDel, hDelHandler{})
	r.register(proto.HExists, hExistsHandler{})
	r.register(proto.HGetAll, hGetAllHandler{})
	r.register(proto.HKeys, hKeysHandler{})
	r.register(proto.HVals, hValsHandler{})
	r.register(proto.HLen, hLenHandler{})
	r.register(proto.HStrLen, hStrLenHandler{})
	r.register(proto.HIncrBy, hIncrByHandler{})

	r.register(proto.UserRemove, userRemoveHandler{})

	r.register(proto.LLen, lLenHandler{})
	r.register(proto.LIndex, lIndexHandler{})
	r.register(proto.LPush, lPushHandler{})
	r.register(proto.LPushX, lPushXHandler{})
	r.register(proto.LPop, lPopHandler{})
	r.register(proto.LPos, lPosHandler{})
	r.register(proto.LRange, lRangeHandler{})
	r.register(proto.LRem, lRemHandler{})
	r.register(proto.LSet, lSetHandler{})
	r.register(proto.LTrim, lTrimHandler{})
	r.register(proto.RPush, rPushHandler{})
	r.register(proto.RPushX, rPushXHandler{})
	r.register(proto.RPop, rPopHandler{})
	r.register(proto.LMove, lMoveHandler{})

	r.register(proto.ClientID, clientIDHandler{})

	return r
}

func (r *Registry) register(id proto.CommandID, h Handler) {
	r.handlers[id] = h
}

// Get looks up the handler for id.
func (r *Registry) Get(id proto.CommandID) (Handler, bool) {
	h, ok := r.handlers[id]
	return h, ok
}
