// Package proto defines the wire schema shared between the server and any
// client: the command/response envelope and the per-command payload shapes.
// Everything here is encoded with cbor (see Message) rather than bson, but
// preserves the same self-describing tree of string/bytes/int/bool/array/map
// values the original wire format relied on.
package proto

// CommandID identifies a command kind for dispatch and ACL purposes. Values
// are stable across the lifetime of the protocol; never renumber one once
// clients depend on it.
type CommandID uint16

const (
	Get CommandID = iota
	Set
	Delete
	Heartbeat
	AclList
	AclSet
	AclRemove
	Login
	HGet
	HSet
	HDel
	HGetAll
	HKeys
	HVals
	HLen
	HExists
	HIncrBy
	HStrLen
	KeyExchange
	HUpsert
	UserRemove
	LLen
	LIndex
	LPush
	LPushX
	LPop
	LPos
	LRange
	LRem
	LSet
	LTrim
	RPush
	RPushX
	RPop
	LMove
	ClientID
)

var commandNames = map[CommandID]string{
	Get:         "GET",
	Set:         "SET",
	Delete:      "DELETE",
	Heartbeat:   "HEARTBEAT",
	AclList:     "ACL_LIST",
	AclSet:      "ACL_SET",
	AclRemove:   "ACL_REMOVE",
	Login:       "LOGIN",
	HGet:        "HGET",
	HSet:        "HSET",
	HDel:        "HDEL",
	HGetAll:     "HGETALL",
	HKeys:       "HKEYS",
	HVals:       "HVALS",
	HLen:        "HLEN",
	HExists:     "HEXISTS",
	HIncrBy:     "HINCRBY",
	HStrLen:     "HSTRLEN",
	KeyExchange: "KEYEXCHANGE",
	HUpsert:     "HUPSERT",
	UserRemove:  "USER_REMOVE",
	LLen:        "LLEN",
	LIndex:      "LINDEX",
	LPush:       "LPUSH",
	LPushX:      "LPUSHX",
	LPop:        "LPOP",
	LPos:        "LPOS",
	LRange:      "LRANGE",
	LRem:        "LREM",
	LSet:        "LSET",
	LTrim:       "LTRIM",
	RPush:       "RPUSH",
	RPushX:      "RPUSHX",
	RPop:        "RPOP",
	LMove:       "LMOVE",
	ClientID:    "CLIENTID",
}

func (c CommandID) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseCommandID resolves a command's human-readable name (as used in ACL
// config entries) back to its numeric id.
func ParseCommandID(name string) (CommandID, bool) {
	for id, n := range commandNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// AlwaysAllowed is the set of commands the ACL can never restrict: a client
// always needs to be able to heartbeat, log in, and exchange keys.
func AlwaysAllowed(c CommandID) bool {
	return c == Heartbeat || c == Login || c == KeyExchange
}
