package proto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCommandMessageRoundTrip(t *testing.T) {
	msg, err := NewCommandMessage(Set, SetInput{Key: "k", Value: "v"})
	require.NoError(t, err)

	raw, err := Encode(msg)
	require.NoError(t, err)

	decoded, err := Decode(raw)
	require.NoError(t, err)
	require.Equal(t, msg.ID, decoded.ID)
	require.NotNil(t, decoded.Command)
	require.Nil(t, decoded.Response)
	require.Equal(t, Set, decoded.Command.CommandID)

	var in SetInput
	require.NoError(t, DecodePayload(decoded.Command.Payload, &in))
	require.Equal(t, "k", in.Key)
	require.Equal(t, "v", in.Value)
}

func TestResponseMessageRoundTrip(t *testing.T) {
	reqID := uuid.New()
	msg, err := NewResponseMessage(reqID, StatusSuccess, "hello")
	require.NoError(t, err)

	raw, err := Encode(msg)
	require.NoError(t, err)

	decoded, err := Decode(raw)
	require.NoError(t, err)
	require.NotNil(t, decoded.Response)
	require.Nil(t, decoded.Command)
	require.Equal(t, reqID, decoded.Response.InReplyTo)
	require.Equal(t, StatusSuccess, decoded.Response.Status)

	var content string
	require.NoError(t, DecodePayload(decoded.Response.Content, &content))
	require.Equal(t, "hello", content)
}

func TestDecodePayloadHandlesAllDefaults(t *testing.T) {
	msg, err := NewCommandMessage(Heartbeat, nil)
	require.NoError(t, err)
	raw, err := Encode(msg)
	require.NoError(t, err)
	decoded, err := Decode(raw)
	require.NoError(t, err)

	var in struct{}
	require.NoError(t, DecodePayload(decoded.Command.Payload, &in))
}
