package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandIDStringAndParseRoundTrip(t *testing.T) {
	ids := []CommandID{Get, Set, Delete, Heartbeat, AclList, AclSet, AclRemove, Login,
		HGet, HSet, HDel, HGetAll, HKeys, HVals, HLen, HExists, HIncrBy, HStrLen,
		KeyExchange, HUpsert, UserRemove, LLen, LIndex, LPush, LPushX, LPop, LPos,
		LRange, LRem, LSet, LTrim, RPush, RPushX, RPop, LMove, ClientID}

	for _, id := range ids {
		name := id.String()
		require.NotEqual(t, "UNKNOWN", name)
		parsed, ok := ParseCommandID(name)
		require.True(t, ok, "round trip failed for %s", name)
		require.Equal(t, id, parsed)
	}
}

func TestAlwaysAllowed(t *testing.T) {
	require.True(t, AlwaysAllowed(Heartbeat))
	require.True(t, AlwaysAllowed(Login))
	require.True(t, AlwaysAllowed(KeyExchange))
	require.False(t, AlwaysAllowed(Get))
}

func TestParseUnknownCommandID(t *testing.T) {
	_, ok := ParseCommandID("NOT_A_REAL_COMMAND")
	require.False(t, ok)
}
