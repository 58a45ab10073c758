package server

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/FairyTail2000/in-mem/internal/commands"
	"github.com/FairyTail2000/in-mem/internal/store"
	"github.com/FairyTail2000/in-mem/pkg/proto"
	"github.com/FairyTail2000/in-mem/pkg/transport"
)

// Worker drives a single connection's request/response loop until the peer
// disconnects or sends something the Framer can't recover from.
type Worker struct {
	Store       *store.Store
	Registry    *commands.Registry
	IdleTimeout time.Duration
}

// Run blocks, serving conn until it's closed. It never returns an error for
// an ordinary disconnect; it logs and returns for anything else.
func (w *Worker) Run(conn *Conn) {
	defer conn.Close()

	for {
		conn.SetDeadline(w.IdleTimeout)

		frame, encrypted, err := conn.framer.ReadFrame(conn.nc)
		if err != nil {
			if errors.Is(err, transport.ErrIO) {
				conn.log.Debug("connection closed")
			} else {
				conn.log.WithField("error", err).Warn("invalid frame, closing connection")
			}
			return
		}

		msg, err := proto.Decode(frame)
		if err != nil {
			conn.log.WithField("error", err).Warn("malformed message")
			return
		}
		if msg.Command == nil {
			conn.log.Warn("received a non-command message, closing connection")
			return
		}

		resp := w.handle(conn, encrypted, msg.Command)
		if resp.Close {
			conn.log.Debug("command refused, closing connection")
			return
		}
		respMsg, err := proto.NewResponseMessage(msg.ID, resp.Status, resp.Content)
		if err != nil {
			conn.log.WithField("error", err).Error("encoding response payload")
			return
		}
		out, err := proto.Encode(respMsg)
		if err != nil {
			conn.log.WithField("error", err).Error("encoding response message")
			return
		}
		if err := conn.framer.WriteFrame(conn.nc, out); err != nil {
			conn.log.WithField("error", err).Debug("writing response")
			return
		}
	}
}

func (w *Worker) handle(conn *Conn, encrypted bool, cmd *proto.Command) commands.Result {
	log := conn.log.WithFields(logrus.Fields{
		"user":       conn.Username(),
		"command_id": cmd.CommandID.String(),
	})

	if !w.Store.AclIsAllowed(conn.Username(), cmd.CommandID) {
		log.Debug("command not allowed")
		return commands.Result{Status: proto.StatusNotAllowed}
	}

	handler, ok := w.Registry.Get(cmd.CommandID)
	if !ok {
		log.Warn("no handler registered for command")
		return commands.Result{Status: proto.StatusFailure}
	}

	ctx := &commands.Context{
		Store:     w.Store,
		Conn:      conn,
		Payload:   cmd.CommandID,
		Raw:       cmd.Payload,
		Encrypted: encrypted,
	}

	if err := handler.PreExec(ctx); err != nil {
		log.WithField("error", err).Debug("pre_exec refused command")
		return commands.Result{Close: true}
	}

	res := handler.Execute(ctx)
	handler.PostExec(ctx, res)

	log.WithField("status", res.Status).Debug("command handled")
	return res
}
