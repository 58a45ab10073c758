// Package server implements the TCP listener and per-connection worker
// loop: accept, frame, decode, dispatch through internal/commands, encode,
// write, repeat until the peer goes away or sends something unrecoverable.
package server

import (
	"net"
	"sync"
	"time"

	"filippo.io/age"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/FairyTail2000/in-mem/pkg/transport"
)

// Conn bundles a single accepted net.Conn with the framing and auth state
// for that one peer. It implements commands.ConnInfo narrowly so handlers
// never see the net.Conn or Framer directly.
type Conn struct {
	id     uuid.UUID
	nc     net.Conn
	framer *transport.Framer
	log    *logrus.Entry

	mu            sync.Mutex
	username      string
	authenticated bool
	peerKeyStr    string
}

// NewConn wraps an accepted connection. identity may be nil if the server
// has no configured age identity, in which case inbound encrypted frames
// are rejected.
func NewConn(nc net.Conn, identity age.Identity, brotliEffort int, log *logrus.Logger) *Conn {
	id := uuid.New()
	return &Conn{
		id:     id,
		nc:     nc,
		framer: transport.NewFramer(identity, brotliEffort),
		log:    log.WithField("conn_id", id.String()),
	}
}

func (c *Conn) ID() uuid.UUID { return c.id }

func (c *Conn) Username() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.username
}

func (c *Conn) Authenticate(username string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.username = username
	c.authenticated = true
}

func (c *Conn) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticated
}

// BindPeerRecipient parses recipientStr as an X25519 recipient and binds it
// to this connection's Framer so subsequent outbound frames are encrypted
// to it.
func (c *Conn) BindPeerRecipient(recipientStr string) error {
	recipient, err := age.ParseX25519Recipient(recipientStr)
	if err != nil {
		return err
	}
	c.framer.BindPeer(recipient)
	c.mu.Lock()
	c.peerKeyStr = recipientStr
	c.mu.Unlock()
	return nil
}

// PeerRecipient returns the recipient string a prior KEYEXCHANGE bound to
// this connection, if any.
func (c *Conn) PeerRecipient() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.peerKeyStr, c.peerKeyStr != ""
}

func (c *Conn) SetDeadline(d time.Duration) {
	if d <= 0 {
		return
	}
	_ = c.nc.SetDeadline(time.Now().Add(d))
}

func (c *Conn) Close() error {
	return c.nc.Close()
}
