package proto

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// Status is the outcome of a handled command, carried in every Response.
type Status string

const (
	StatusSuccess     Status = "Success"
	StatusFailure     Status = "Failure"
	StatusNotFound    Status = "NotFound"
	StatusNotAllowed  Status = "NotAllowed"
	StatusOutOfMemory Status = "OutOfMemory"
	StatusTypeError   Status = "TypeError"
)

// Command is the request half of a Message: a command id plus its
// command-specific payload, left undecoded until a handler claims it.
type Command struct {
	CommandID CommandID       `cbor:"command_id"`
	Payload   cbor.RawMessage `cbor:"payload,omitempty"`
}

// Response is the reply half of a Message. InReplyTo always echoes the id
// of the request it answers, so a client can correlate out-of-order replies.
type Response struct {
	Status    Status          `cbor:"status"`
	Content   cbor.RawMessage `cbor:"content,omitempty"`
	InReplyTo uuid.UUID       `cbor:"in_reply_to"`
}

// Message is the top-level envelope exchanged over a Framer. Exactly one of
// Command or Response is set; which one is set is what a bare externally
// tagged enum would encode in the original, but a pair of omitempty pointer
// fields round-trips through cbor just as compactly and decodes without a
// custom UnmarshalCBOR.
type Message struct {
	ID       uuid.UUID `cbor:"id"`
	Command  *Command  `cbor:"command,omitempty"`
	Response *Response `cbor:"response,omitempty"`
}

// NewCommandMessage builds a request Message with a freshly generated id.
func NewCommandMessage(commandID CommandID, payload any) (*Message, error) {
	raw, err := encodePayload(payload)
	if err != nil {
		return nil, err
	}
	return &Message{
		ID: uuid.New(),
		Command: &Command{
			CommandID: commandID,
			Payload:   raw,
		},
	}, nil
}

// NewResponseMessage builds a reply Message correlated to requestID.
func NewResponseMessage(requestID uuid.UUID, status Status, content any) (*Message, error) {
	raw, err := encodePayload(content)
	if err != nil {
		return nil, err
	}
	return &Message{
		ID: uuid.New(),
		Response: &Response{
			Status:    status,
			Content:   raw,
			InReplyTo: requestID,
		},
	}, nil
}

func encodePayload(v any) (cbor.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	b, err := cbor.Marshal(v)
	if err != nil {
		return nil, err
	}
	return cbor.RawMessage(b), nil
}

// Encode serialises the Message to its canonical cbor document bytes.
func Encode(msg *Message) ([]byte, error) {
	return cbor.Marshal(msg)
}

// Decode parses a document's bytes back into a Message. A malformed
// document is the caller's cue to treat the frame as fatally InvalidData.
func Decode(b []byte) (*Message, error) {
	var msg Message
	if err := cbor.Unmarshal(b, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// DecodePayload decodes a command/response payload into dst. Handlers call
// this once they've claimed a Command off the dispatch path.
func DecodePayload(raw cbor.RawMessage, dst any) error {
	if len(raw) == 0 {
		return cbor.Unmarshal([]byte{0xa0}, dst) // empty map, i.e. all-defaults
	}
	return cbor.Unmarshal(raw, dst)
}
