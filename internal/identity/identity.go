// Package identity loads the server's age/X25519 identity from disk,
// generating and persisting a new one the first time the server runs.
package identity

import (
	"fmt"
	"os"

	"filippo.io/age"
	"github.com/sirupsen/logrus"
)

// LoadOrGenerate reads an X25519 identity from path, or generates and
// writes a new one if the file doesn't exist yet (mirroring the original
// server's fallback on "server-identity.age").
func LoadOrGenerate(path string, log *logrus.Logger) (*age.X25519Identity, error) {
	raw, err := os.ReadFile(path)
	if err == nil {
		id, parseErr := age.ParseX25519Identity(string(raw))
		if parseErr != nil {
			return nil, fmt.Errorf("parsing identity file %q: %w", path, parseErr)
		}
		return id, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading identity file %q: %w", path, err)
	}

	log.WithField("path", path).Warn("no identity file found, generating a new one")
	id, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("generating identity: %w", err)
	}
	if err := os.WriteFile(path, []byte(id.String()), 0o600); err != nil {
		return nil, fmt.Errorf("writing identity file %q: %w", path, err)
	}
	log.WithField("public_key", id.Recipient().String()).Info("generated new server identity")
	return id, nil
}
