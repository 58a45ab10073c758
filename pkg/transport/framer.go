// Package transport implements the secure framing layer: length-prefixed,
// brotli-compressed, optionally age/X25519-encrypted byte frames over any
// io.Reader/io.Writer pair. It knows nothing about the store or the command
// protocol; it only ever moves opaque byte slices.
package transport

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"filippo.io/age"
	"github.com/andybalholm/brotli"
)

// DefaultMaxFrameSize is the recommended cap from spec.md §5: frames larger
// than this are rejected before the length-prefixed payload is even
// allocated, bounding the damage a hostile or buggy peer can do with the
// otherwise-unbounded u32 length field.
const DefaultMaxFrameSize = 16 << 20

// ageMagic is the literal byte sequence spec.md requires sniffing for: the
// first 11 bytes of "age-encryption.org/v1", the real age file header.
const ageMagic = "age-encrypt"

// Framer is a synchronous codec for a single byte stream. It owns the
// brotli compression effort, the server's own identity (for decrypting
// inbound frames), and — once KEYEXCHANGE binds one — the peer's public
// key (for encrypting outbound frames).
type Framer struct {
	Identity      age.Identity
	BrotliEffort  int
	MaxFrameSize  int
	peerRecipient age.Recipient
}

// NewFramer builds a Framer for a freshly accepted or dialed connection.
// identity may be nil for a Framer that will only ever read/write
// unencrypted frames (e.g. in tests).
func NewFramer(identity age.Identity, brotliEffort int) *Framer {
	return &Framer{
		Identity:     identity,
		BrotliEffort: brotliEffort,
		MaxFrameSize: DefaultMaxFrameSize,
	}
}

// BindPeer records the recipient that outbound frames must now be
// encrypted to. Called once, from KEYEXCHANGE's post_exec.
func (f *Framer) BindPeer(r age.Recipient) {
	f.peerRecipient = r
}

// PeerBound reports whether a peer recipient has been bound.
func (f *Framer) PeerBound() bool {
	return f.peerRecipient != nil
}

// ReadFrame performs the read pipeline from spec.md §4.1: read the length
// prefix, read exactly that many bytes, brotli-decompress, and (if the
// decompressed buffer looks like an age container) decrypt it. The returned
// bool reports whether the frame was encrypted.
func (f *Framer) ReadFrame(r io.Reader) ([]byte, bool, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, false, fmt.Errorf("%w: reading frame length: %v", ErrIO, err)
	}
	length := binary.BigEndian.Uint32(lenBuf[:])
	if f.MaxFrameSize > 0 && int64(length) > int64(f.MaxFrameSize) {
		return nil, false, fmt.Errorf("%w: frame of %d bytes exceeds max %d", ErrInvalidData, length, f.MaxFrameSize)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, false, fmt.Errorf("%w: short read of %d byte frame: %v", ErrIO, length, err)
	}

	decompressed, err := brotliDecompress(payload)
	if err != nil {
		return nil, false, fmt.Errorf("%w: brotli decompress: %v", ErrInvalidData, err)
	}

	if !looksEncrypted(decompressed) {
		return decompressed, false, nil
	}

	if f.Identity == nil {
		return nil, false, fmt.Errorf("%w: frame is age-encrypted but no server identity is configured", ErrInvalidData)
	}

	plaintext, err := age.Decrypt(bytes.NewReader(decompressed), f.Identity)
	if err != nil {
		return nil, false, fmt.Errorf("%w: age decrypt: %v", ErrInvalidData, err)
	}
	decrypted, err := io.ReadAll(plaintext)
	if err != nil {
		return nil, false, fmt.Errorf("%w: reading decrypted frame: %v", ErrInvalidData, err)
	}
	return decrypted, true, nil
}

// WriteFrame performs the write pipeline from spec.md §4.1: encrypt to the
// bound peer (if any), brotli-compress, and emit the length-prefixed frame.
func (f *Framer) WriteFrame(w io.Writer, message []byte) error {
	toCompress := message
	if f.peerRecipient != nil {
		var buf bytes.Buffer
		enc, err := age.Encrypt(&buf, f.peerRecipient)
		if err != nil {
			return fmt.Errorf("%w: age encrypt setup: %v", ErrInvalidData, err)
		}
		if _, err := enc.Write(message); err != nil {
			return fmt.Errorf("%w: age encrypt write: %v", ErrInvalidData, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("%w: age encrypt finish: %v", ErrInvalidData, err)
		}
		toCompress = buf.Bytes()
	}

	compressed, err := brotliCompress(toCompress, f.BrotliEffort)
	if err != nil {
		return fmt.Errorf("%w: brotli compress: %v", ErrInvalidData, err)
	}

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(compressed)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("%w: writing frame length: %v", ErrIO, err)
	}
	if _, err := w.Write(compressed); err != nil {
		return fmt.Errorf("%w: writing frame payload: %v", ErrIO, err)
	}
	return nil
}

func looksEncrypted(buf []byte) bool {
	if len(buf) < len(ageMagic) {
		return false
	}
	return string(buf[:len(ageMagic)]) == ageMagic
}

func brotliCompress(data []byte, quality int) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, quality)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func brotliDecompress(data []byte) ([]byte, error) {
	r := brotli.NewReader(bytes.NewReader(data))
	return io.ReadAll(r)
}
