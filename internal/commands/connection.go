package commands

import (
	"errors"

	"filippo.io/age"

	"github.com/FairyTail2000/in-mem/internal/store"
	"github.com/FairyTail2000/in-mem/pkg/proto"
)

// errRefused is returned from PreExec to signal that a precondition failed
// in a way the original dispatcher models by closing the connection rather
// than answering: an unencrypted frame on a command that requires
// encryption, or a LOGIN attempt on an already-authenticated connection.
var errRefused = errors.New("precondition failed")

// loginHandler implements the LOGIN state machine: refuse outright
// (closing the connection) if the frame wasn't encrypted, the connection is
// already authenticated, or no peer key has been bound yet; otherwise check
// the password and, if the user has a configured public key, verify it
// against the bound peer recipient before succeeding. The authenticated
// username only reaches ctx.Conn in PostExec, carried through Result.Value
// — Execute never mutates connection state directly.
type loginHandler struct{}

func (loginHandler) PreExec(ctx *Context) error {
	if !ctx.Encrypted {
		return errRefused
	}
	if ctx.Conn.IsAuthenticated() {
		return errRefused
	}
	if _, bound := ctx.Conn.PeerRecipient(); !bound {
		return errRefused
	}
	return nil
}

func (loginHandler) Execute(ctx *Context) Result {
	var in proto.LoginInput
	if res, ok := decodeOrClose(ctx, &in); !ok {
		return res
	}
	hash := store.HashPassword(in.Password)
	if !ctx.Store.UserIsValid(in.User, hash) {
		return Result{Status: proto.StatusFailure}
	}
	if ctx.Store.UserHasKey(in.User) {
		// PreExec already guarantees a peer recipient is bound.
		peerKey, _ := ctx.Conn.PeerRecipient()
		if !ctx.Store.VerifyKey(in.User, peerKey) {
			return Result{Close: true}
		}
	}
	return Result{Status: proto.StatusSuccess, Value: in.User}
}

func (loginHandler) PostExec(ctx *Context, res Result) {
	if res.Status != proto.StatusSuccess {
		return
	}
	if username, ok := res.Value.(string); ok {
		ctx.Conn.Authenticate(username)
	}
}

// keyExchangeHandler binds the caller's X25519 public key as the peer
// recipient outbound frames must be encrypted to from then on. It precedes
// LOGIN in the handshake (spec §4.5) and carries no authentication gate of
// its own — only that the inbound frame was encrypted.
type keyExchangeHandler struct{}

func (keyExchangeHandler) PreExec(ctx *Context) error {
	if !ctx.Encrypted {
		return errRefused
	}
	return nil
}

func (keyExchangeHandler) Execute(ctx *Context) Result {
	var in proto.KeyExchangeInput
	if res, ok := decodeOrClose(ctx, &in); !ok {
		return res
	}
	if _, err := age.ParseX25519Recipient(in.PubKey); err != nil {
		return Result{Status: proto.StatusFailure, Content: err.Error()}
	}
	return Result{Status: proto.StatusSuccess, Value: in.PubKey}
}

func (keyExchangeHandler) PostExec(ctx *Context, res Result) {
	if res.Status != proto.StatusSuccess {
		return
	}
	pubKey, ok := res.Value.(string)
	if !ok {
		return
	}
	_ = ctx.Conn.BindPeerRecipient(pubKey)
}
