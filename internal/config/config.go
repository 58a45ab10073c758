// Package config loads the server's YAML configuration: the bootstrap user
// list, their ACL grants, and the listen/identity/compression settings,
// which take precedence over the matching command-line flags when set.
package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/FairyTail2000/in-mem/internal/store"
	"github.com/FairyTail2000/in-mem/pkg/proto"
)

// User is a bootstrap account. Password is already a 128-hex-char SHA-512
// digest (store.HashPassword's output) — operators hash the password
// themselves before putting it in the config file, the same digest a
// LOGIN command computes from the plaintext a client sends over the wire.
// PublicKey, if set, is the X25519 recipient string LOGIN's key
// verification will require a matching KEYEXCHANGE-bound peer key for.
type User struct {
	Name      string `yaml:"name"`
	Password  string `yaml:"password"`
	PublicKey string `yaml:"public_key"`
}

// Acl grants name permission to run each listed command.
type Acl struct {
	Name     string   `yaml:"name"`
	Commands []string `yaml:"commands"`
}

// Config is the root of the YAML document.
type Config struct {
	Users             []User  `yaml:"users"`
	Acls              []Acl   `yaml:"acls"`
	Port              *uint16 `yaml:"port"`
	Host              *string `yaml:"host"`
	PrivateKeyLoc     *string `yaml:"private_key_loc"`
	BrotliQuality     *uint8  `yaml:"brotli_quality"`
	MaxKeys           int     `yaml:"max_keys"`
	MaxContainerItems int     `yaml:"max_container_items"`
}

// Load reads and parses path. A missing file is not an error — the server
// runs with an empty configuration (no bootstrap users, defaults for
// everything else), matching the original's Config::new() default.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return &cfg, nil
}

// ValidUsers filters users to the ones with a non-empty name and a
// well-formed password hash, skipping anything else with a logged
// warning rather than failing the whole config load.
func ValidUsers(users []User, log *logrus.Logger) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		switch {
		case u.Name == "":
			log.Warn("config user entry has an empty name, skipping")
		case u.Password == "":
			log.WithField("user", u.Name).Warn("config user entry has an empty password hash, skipping")
		case len(u.Password) != store.PasswordHashLen:
			log.WithField("user", u.Name).Warn("config user entry's password hash is not a 128-hex-char SHA-512 digest, skipping")
		default:
			out = append(out, u)
		}
	}
	return out
}

// ResolvedAcl is an Acl with its command names already parsed, for any
// entries that resolved cleanly.
type ResolvedAcl struct {
	Name     string
	Commands []proto.CommandID
}

// ResolveAcls parses every Acl's command name list against the known
// CommandID table. An unrecognised command name is skipped with a warning
// rather than failing the whole config load — a typo in one ACL entry
// shouldn't keep the rest of the server from starting.
func ResolveAcls(acls []Acl, log *logrus.Logger) []ResolvedAcl {
	out := make([]ResolvedAcl, 0, len(acls))
	for _, a := range acls {
		resolved := ResolvedAcl{Name: a.Name}
		for _, name := range a.Commands {
			id, ok := proto.ParseCommandID(name)
			if !ok {
				log.WithFields(logrus.Fields{"user": a.Name, "command": name}).
					Warn("unknown command name in acl entry, skipping")
				continue
			}
			resolved.Commands = append(resolved.Commands, id)
		}
		out = append(out, resolved)
	}
	return out
}
