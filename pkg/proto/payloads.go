package proto

// Payload shapes for every command, mirroring spec.md §6. Struct field tags
// pin the wire names so they stay stable independent of Go field renames.

type GetInput struct {
	Key     string  `cbor:"key"`
	Default *string `cbor:"default,omitempty"`
}

type SetInput struct {
	Key   string `cbor:"key"`
	Value string `cbor:"value"`
}

type DeleteInput struct {
	Key string `cbor:"key"`
}

type AclSetInput struct {
	User    string    `cbor:"user"`
	Command CommandID `cbor:"command"`
}

type AclRemoveInput struct {
	User    string    `cbor:"user"`
	Command CommandID `cbor:"command"`
}

type AclListInput struct {
	User string `cbor:"user"`
}

type LoginInput struct {
	User     string `cbor:"user"`
	Password string `cbor:"password"`
}

type KeyExchangeInput struct {
	PubKey string `cbor:"pub_key"`
}

type HGetInput struct {
	Key   string `cbor:"key"`
	Field string `cbor:"field"`
}

type HDelInput struct {
	Key   string `cbor:"key"`
	Field string `cbor:"field"`
}

type HExistsInput struct {
	Key   string `cbor:"key"`
	Field string `cbor:"field"`
}

type HStrLenInput struct {
	Key   string `cbor:"key"`
	Field string `cbor:"field"`
}

type HSetInput struct {
	Key   string            `cbor:"key"`
	Value map[string]string `cbor:"value"`
}

type HUpsertInput struct {
	Key   string `cbor:"key"`
	Field string `cbor:"field"`
	Value string `cbor:"value"`
}

type HGetAllInput struct {
	Key string `cbor:"key"`
}

type HKeysInput struct {
	Key string `cbor:"key"`
}

type HValsInput struct {
	Key string `cbor:"key"`
}

type HLenInput struct {
	Key string `cbor:"key"`
}

type HIncrByInput struct {
	Key   string `cbor:"key"`
	Field string `cbor:"field"`
	Value int64  `cbor:"value"`
}

type UserRemoveInput struct {
	User string `cbor:"user"`
}

type LLenInput struct {
	Key string `cbor:"key"`
}

// LIndexInput follows the original store's lindex: it looks up the position
// of a value in the list, it does not address an element by index.
type LIndexInput struct {
	Key   string `cbor:"key"`
	Value string `cbor:"value"`
}

type LPushInput struct {
	Key    string   `cbor:"key"`
	Values []string `cbor:"values"`
}

type LPushXInput struct {
	Key    string   `cbor:"key"`
	Values []string `cbor:"values"`
}

type LPopInput struct {
	Key   string  `cbor:"key"`
	Count *uint64 `cbor:"count,omitempty"`
}

type LPosInput struct {
	Key    string  `cbor:"key"`
	Value  string  `cbor:"value"`
	Rank   *int64  `cbor:"rank,omitempty"`
	Count  *uint64 `cbor:"count,omitempty"`
	MaxLen *uint64 `cbor:"max_len,omitempty"`
}

type LRangeInput struct {
	Key   string `cbor:"key"`
	Start int64  `cbor:"start"`
	Stop  int64  `cbor:"stop"`
}

type LRemInput struct {
	Key   string `cbor:"key"`
	Count int64  `cbor:"count"`
	Value string `cbor:"value"`
}

type LSetInput struct {
	Key   string `cbor:"key"`
	Index int64  `cbor:"index"`
	Value string `cbor:"value"`
}

type LTrimInput struct {
	Key   string `cbor:"key"`
	Start int64  `cbor:"start"`
	Stop  int64  `cbor:"stop"`
}

type RPushInput struct {
	Key    string   `cbor:"key"`
	Values []string `cbor:"values"`
}

type RPushXInput struct {
	Key    string   `cbor:"key"`
	Values []string `cbor:"values"`
}

type RPopInput struct {
	Key   string  `cbor:"key"`
	Count *uint64 `cbor:"count,omitempty"`
}

type LMoveInput struct {
	Src      string `cbor:"src"`
	Dst      string `cbor:"dst"`
	WhereSrc string `cbor:"where_src"`
	WhereDst string `cbor:"where_dst"`
}
