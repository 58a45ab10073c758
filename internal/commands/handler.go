// Package commands implements the command dispatch pipeline: one Handler
// per CommandID, run through a three-phase PreExec/Execute/PostExec
// contract against a Context built fresh for every request.
//
// Handlers are registered once and shared across every connection's
// goroutine, so they must never carry per-request state on the struct
// itself — anything a handler needs to remember between phases travels in
// the Result returned from Execute and handed back to PostExec. This is a
// deliberate departure from a design where a handler mutates its own
// fields across phases, which would race the moment two connections drive
// the same handler concurrently.
package commands

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/FairyTail2000/in-mem/internal/store"
	"github.com/FairyTail2000/in-mem/pkg/proto"
)

// ConnInfo is the narrow view of a connection's mutable state a handler is
// allowed to touch. internal/server's connection type implements this; the
// interface lives here, not there, so neither package needs to import the
// other's concrete types.
type ConnInfo interface {
	ID() uuid.UUID
	Username() string
	Authenticate(username string)
	IsAuthenticated() bool
	// PeerRecipient returns the age recipient string a prior KEYEXCHANGE
	// bound to this connection, if any.
	PeerRecipient() (string, bool)
	BindPeerRecipient(recipientStr string) error
}

// Context carries everything a handler needs for one request. A fresh
// Context is built per command; nothing on it is shared across requests.
type Context struct {
	Store     *store.Store
	Conn      ConnInfo
	RequestID uuid.UUID
	Payload   proto.CommandID
	Raw       cbor.RawMessage // the still-undecoded payload
	// Encrypted reports whether the inbound frame carrying this command was
	// age-encrypted. LOGIN and KEYEXCHANGE both refuse to run against an
	// unencrypted frame.
	Encrypted bool
}

// Result is what Execute hands to PostExec and, ultimately, the dispatcher:
// the status/content pair that becomes the outgoing Response, plus an
// opaque result value PostExec can inspect to decide what side effect (if
// any) to apply to the connection.
type Result struct {
	Status  proto.Status
	Content any
	// Value carries phase-local state forward from Execute to PostExec,
	// e.g. the username a LOGIN just validated, so PostExec can apply the
	// connection-level side effect without Execute having touched the
	// connection itself.
	Value any
	// Close signals that the command refused to run in a way that must
	// close the connection rather than send a response — an unencrypted
	// LOGIN/KEYEXCHANGE, a login key mismatch, or a malformed LOGIN or
	// KEYEXCHANGE payload (every other handler answers a malformed payload
	// with a Failure response). Mirrors the original dispatcher's
	// "execute returned None" behavior: client behaved badly, drop it.
	Close bool
}

// Handler is implemented once per CommandID. PreExec checks connection-level
// preconditions (is this frame encrypted, is this connection already
// authenticated) before the payload is even decoded; a non-nil error short
// circuits Execute and PostExec and closes the connection (Result{Close:
// true}), the same refusal Execute itself can return for checks that need
// the decoded payload or the store. PostExec runs after Execute when the
// command wasn't refused, and is where a handler is allowed to mutate
// ctx.Conn (e.g. marking a connection authenticated).
type Handler interface {
	PreExec(ctx *Context) error
	Execute(ctx *Context) Result
	PostExec(ctx *Context, res Result)
}

// Base supplies no-op PreExec/PostExec so handlers that don't need a given
// phase can embed Base and only implement Execute.
type Base struct{}

func (Base) PreExec(*Context) error    { return nil }
func (Base) PostExec(*Context, Result) {}
