package server

import (
	"net"
	"time"

	"filippo.io/age"
	"github.com/sirupsen/logrus"

	"github.com/FairyTail2000/in-mem/internal/commands"
	"github.com/FairyTail2000/in-mem/internal/store"
)

// Listener accepts TCP connections and spawns a Worker goroutine per
// connection. A transient Accept error (e.g. a momentary resource
// exhaustion) logs and keeps listening rather than tearing the whole
// server down.
type Listener struct {
	Addr         string
	Identity     age.Identity
	BrotliEffort int
	IdleTimeout  time.Duration
	Store        *store.Store
	Registry     *commands.Registry
	Log          *logrus.Logger
}

// Run listens on l.Addr and blocks accepting connections until ln.Accept
// returns a non-transient error or the listener is closed.
func (l *Listener) Run() error {
	ln, err := net.Listen("tcp", l.Addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	l.Log.WithField("addr", l.Addr).Info("listening")

	for {
		nc, err := ln.Accept()
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				l.Log.WithField("error", err).Warn("transient accept error, continuing")
				continue
			}
			return err
		}

		conn := NewConn(nc, l.Identity, l.BrotliEffort, l.Log)
		conn.log.Info("connection accepted")

		w := &Worker{Store: l.Store, Registry: l.Registry, IdleTimeout: l.IdleTimeout}
		go w.Run(conn)
	}
}
