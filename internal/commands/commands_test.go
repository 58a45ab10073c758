package commands

import (
	"testing"

	"filippo.io/age"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/FairyTail2000/in-mem/internal/store"
	"github.com/FairyTail2000/in-mem/pkg/proto"
)

// fakeConn is a minimal ConnInfo for exercising handlers without a real
// network connection or Framer.
type fakeConn struct {
	id            uuid.UUID
	username      string
	authenticated bool
	peerKey       string
}

func newFakeConn() *fakeConn { return &fakeConn{id: uuid.New()} }

func (c *fakeConn) ID() uuid.UUID         { return c.id }
func (c *fakeConn) Username() string      { return c.username }
func (c *fakeConn) IsAuthenticated() bool { return c.authenticated }
func (c *fakeConn) Authenticate(username string) {
	c.username = username
	c.authenticated = true
}
func (c *fakeConn) PeerRecipient() (string, bool) { return c.peerKey, c.peerKey != "" }
func (c *fakeConn) BindPeerRecipient(recipientStr string) error {
	c.peerKey = recipientStr
	return nil
}

// runHandler drives a handler through the same PreExec/Execute/PostExec
// sequence worker.handle does, collapsing a PreExec refusal into
// Result{Close: true} instead of propagating it as a test failure.
func runHandler(t *testing.T, h Handler, st *store.Store, conn ConnInfo, encrypted bool, payload any) Result {
	t.Helper()
	raw, err := cbor.Marshal(payload)
	require.NoError(t, err)

	ctx := &Context{Store: st, Conn: conn, Raw: raw, Encrypted: encrypted}
	if err := h.PreExec(ctx); err != nil {
		return Result{Close: true}
	}
	res := h.Execute(ctx)
	h.PostExec(ctx, res)
	return res
}

func TestGetSetDeleteHandlers(t *testing.T) {
	st := store.New(store.Budget{})
	conn := newFakeConn()

	res := runHandler(t, setHandler{}, st, conn, true, proto.SetInput{Key: "k", Value: "v"})
	require.Equal(t, proto.StatusSuccess, res.Status)

	res = runHandler(t, getHandler{}, st, conn, true, proto.GetInput{Key: "k"})
	require.Equal(t, proto.StatusSuccess, res.Status)
	require.Equal(t, "v", res.Content)

	res = runHandler(t, deleteHandler{}, st, conn, true, proto.DeleteInput{Key: "k"})
	require.Equal(t, proto.StatusSuccess, res.Status)

	res = runHandler(t, getHandler{}, st, conn, true, proto.GetInput{Key: "k"})
	require.Equal(t, proto.StatusFailure, res.Status)
	require.Nil(t, res.Content)
}

func TestGetWithDefault(t *testing.T) {
	st := store.New(store.Budget{})
	conn := newFakeConn()
	def := "fallback"

	res := runHandler(t, getHandler{}, st, conn, true, proto.GetInput{Key: "missing", Default: &def})
	require.Equal(t, proto.StatusFailure, res.Status)
	require.Equal(t, "fallback", res.Content)
}

func TestLoginRefusesUnencryptedFrame(t *testing.T) {
	st := store.New(store.Budget{})
	require.NoError(t, st.UserAdd("alice", store.HashPassword("secret")))
	conn := newFakeConn()
	conn.peerKey = "age1somerecipient"

	res := runHandler(t, loginHandler{}, st, conn, false, proto.LoginInput{User: "alice", Password: "secret"})
	require.True(t, res.Close)
	require.False(t, conn.IsAuthenticated())
}

func TestLoginRefusesWhenAlreadyAuthenticated(t *testing.T) {
	st := store.New(store.Budget{})
	require.NoError(t, st.UserAdd("alice", store.HashPassword("secret")))
	conn := newFakeConn()
	conn.peerKey = "age1somerecipient"
	conn.authenticated = true

	res := runHandler(t, loginHandler{}, st, conn, true, proto.LoginInput{User: "alice", Password: "secret"})
	require.True(t, res.Close)
}

func TestLoginRefusesWithoutBoundPeerKey(t *testing.T) {
	st := store.New(store.Budget{})
	require.NoError(t, st.UserAdd("alice", store.HashPassword("secret")))
	conn := newFakeConn()

	res := runHandler(t, loginHandler{}, st, conn, true, proto.LoginInput{User: "alice", Password: "secret"})
	require.True(t, res.Close)
}

func TestLoginPostExecAuthenticatesConnection(t *testing.T) {
	st := store.New(store.Budget{})
	require.NoError(t, st.UserAdd("alice", store.HashPassword("secret")))
	conn := newFakeConn()
	conn.peerKey = "age1somerecipient"

	res := runHandler(t, loginHandler{}, st, conn, true, proto.LoginInput{User: "alice", Password: "secret"})
	require.Equal(t, proto.StatusSuccess, res.Status)
	require.True(t, conn.IsAuthenticated())
	require.Equal(t, "alice", conn.Username())
}

func TestLoginWrongPasswordIsFailureNotClose(t *testing.T) {
	st := store.New(store.Budget{})
	require.NoError(t, st.UserAdd("alice", store.HashPassword("secret")))
	conn := newFakeConn()
	conn.peerKey = "age1somerecipient"

	res := runHandler(t, loginHandler{}, st, conn, true, proto.LoginInput{User: "alice", Password: "wrong"})
	require.Equal(t, proto.StatusFailure, res.Status)
	require.False(t, res.Close)
	require.False(t, conn.IsAuthenticated())
}

func TestLoginDeniesOnBoundKeyMismatch(t *testing.T) {
	st := store.New(store.Budget{})
	require.NoError(t, st.UserAdd("alice", store.HashPassword("secret")))
	require.NoError(t, st.BindKey("alice", "age1expectedkey"))
	conn := newFakeConn()
	conn.peerKey = "age1differentkey"

	res := runHandler(t, loginHandler{}, st, conn, true, proto.LoginInput{User: "alice", Password: "secret"})
	require.True(t, res.Close)
	require.False(t, conn.IsAuthenticated())
}

func TestLoginSucceedsWhenBoundKeyMatches(t *testing.T) {
	st := store.New(store.Budget{})
	require.NoError(t, st.UserAdd("alice", store.HashPassword("secret")))
	require.NoError(t, st.BindKey("alice", "age1expectedkey"))
	conn := newFakeConn()
	conn.peerKey = "age1expectedkey"

	res := runHandler(t, loginHandler{}, st, conn, true, proto.LoginInput{User: "alice", Password: "secret"})
	require.Equal(t, proto.StatusSuccess, res.Status)
	require.True(t, conn.IsAuthenticated())
}

func TestKeyExchangeRefusesUnencryptedFrame(t *testing.T) {
	st := store.New(store.Budget{})
	conn := newFakeConn()

	res := runHandler(t, keyExchangeHandler{}, st, conn, false, proto.KeyExchangeInput{PubKey: "not-even-parsed"})
	require.True(t, res.Close)
}

func TestKeyExchangeRejectsMalformedKey(t *testing.T) {
	st := store.New(store.Budget{})
	conn := newFakeConn()

	res := runHandler(t, keyExchangeHandler{}, st, conn, true, proto.KeyExchangeInput{PubKey: "not-a-valid-key"})
	require.Equal(t, proto.StatusFailure, res.Status)
	require.Empty(t, conn.peerKey)
}

func TestKeyExchangeBindsKeyWithoutRequiringAuthentication(t *testing.T) {
	st := store.New(store.Budget{})
	conn := newFakeConn()
	identity, err := age.GenerateX25519Identity()
	require.NoError(t, err)

	res := runHandler(t, keyExchangeHandler{}, st, conn, true, proto.KeyExchangeInput{PubKey: identity.Recipient().String()})
	require.Equal(t, proto.StatusSuccess, res.Status)
	require.False(t, conn.IsAuthenticated())
	require.Equal(t, identity.Recipient().String(), conn.peerKey)
}

func TestHashHandlersRoundTrip(t *testing.T) {
	st := store.New(store.Budget{})
	conn := newFakeConn()

	res := runHandler(t, hUpsertHandler{}, st, conn, true, proto.HUpsertInput{Key: "h", Field: "f", Value: "v"})
	require.Equal(t, proto.StatusSuccess, res.Status)

	res = runHandler(t, hGetHandler{}, st, conn, true, proto.HGetInput{Key: "h", Field: "f"})
	require.Equal(t, proto.StatusSuccess, res.Status)
	require.Equal(t, "v", res.Content)

	res = runHandler(t, hIncrByHandler{}, st, conn, true, proto.HIncrByInput{Key: "h", Field: "counter", Value: 3})
	require.Equal(t, proto.StatusSuccess, res.Status)
	require.Equal(t, int64(3), res.Content)
}

func TestListHandlersRoundTrip(t *testing.T) {
	st := store.New(store.Budget{})
	conn := newFakeConn()

	res := runHandler(t, rPushHandler{}, st, conn, true, proto.RPushInput{Key: "l", Values: []string{"a", "b", "c"}})
	require.Equal(t, proto.StatusSuccess, res.Status)

	res = runHandler(t, lLenHandler{}, st, conn, true, proto.LLenInput{Key: "l"})
	require.Equal(t, proto.StatusSuccess, res.Status)
	require.Equal(t, 3, res.Content)

	res = runHandler(t, lPopHandler{}, st, conn, true, proto.LPopInput{Key: "l"})
	require.Equal(t, proto.StatusSuccess, res.Status)
	require.Equal(t, []string{"c"}, res.Content)
}

func TestClientIDHandler(t *testing.T) {
	st := store.New(store.Budget{})
	conn := newFakeConn()

	res := runHandler(t, clientIDHandler{}, st, conn, true, struct{}{})
	require.Equal(t, proto.StatusSuccess, res.Status)
	require.Equal(t, conn.ID().String(), res.Content)
}
