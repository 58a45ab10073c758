package transport

import (
	"bytes"
	"testing"

	"filippo.io/age"
	"github.com/stretchr/testify/require"
)

func TestWriteReadFrameUnencrypted(t *testing.T) {
	f := NewFramer(nil, 1)
	var buf bytes.Buffer

	require.NoError(t, f.WriteFrame(&buf, []byte("hello world")))

	out, encrypted, err := f.ReadFrame(&buf)
	require.NoError(t, err)
	require.False(t, encrypted)
	require.Equal(t, []byte("hello world"), out)
}

func TestWriteReadFrameEncrypted(t *testing.T) {
	identity, err := age.GenerateX25519Identity()
	require.NoError(t, err)

	writer := NewFramer(nil, 1)
	writer.BindPeer(identity.Recipient())

	var buf bytes.Buffer
	require.NoError(t, writer.WriteFrame(&buf, []byte("secret payload")))

	reader := NewFramer(identity, 1)
	out, encrypted, err := reader.ReadFrame(&buf)
	require.NoError(t, err)
	require.True(t, encrypted)
	require.Equal(t, []byte("secret payload"), out)
}

func TestReadFrameRejectsEncryptedWithoutIdentity(t *testing.T) {
	identity, err := age.GenerateX25519Identity()
	require.NoError(t, err)

	writer := NewFramer(nil, 1)
	writer.BindPeer(identity.Recipient())

	var buf bytes.Buffer
	require.NoError(t, writer.WriteFrame(&buf, []byte("secret payload")))

	reader := NewFramer(nil, 1)
	_, _, err = reader.ReadFrame(&buf)
	require.ErrorIs(t, err, ErrInvalidData)
}

func TestReadFrameRejectsOversizedFrame(t *testing.T) {
	f := NewFramer(nil, 1)
	f.MaxFrameSize = 4
	var buf bytes.Buffer
	require.NoError(t, f.WriteFrame(&buf, []byte("this is longer than four bytes")))

	_, _, err := f.ReadFrame(&buf)
	require.ErrorIs(t, err, ErrInvalidData)
}

func TestPeerBound(t *testing.T) {
	f := NewFramer(nil, 1)
	require.False(t, f.PeerBound())

	identity, err := age.GenerateX25519Identity()
	require.NoError(t, err)
	f.BindPeer(identity.Recipient())
	require.True(t, f.PeerBound())
}
