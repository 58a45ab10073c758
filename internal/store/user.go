package store

import "crypto/subtle"

// UserAdd creates or overwrites a user record. passwordHash is stored
// verbatim; the caller is responsible for hashing it before calling in.
func (s *Store) UserAdd(username, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, exists := s.values[username]
	if exists && v.kind != KindUser {
		return ErrTypeMismatch
	}
	if !exists {
		if err := s.reserveNewKey(username); err != nil {
			return err
		}
		s.values[username] = &value{kind: KindUser}
	}
	s.values[username].user.PasswordHash = passwordHash
	return nil
}

// UserRemove deletes a user record, reporting whether it existed.
func (s *Store) UserRemove(username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[username]
	if !ok || v.kind != KindUser {
		return false
	}
	delete(s.values, username)
	delete(s.acl, username)
	return true
}

// UserIsValid reports whether username exists and passwordHash matches its
// stored hash, using a constant-time comparison to avoid leaking timing
// information about how much of the hash matched (spec.md §4.3).
func (s *Store) UserIsValid(username, passwordHash string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[username]
	if !ok || v.kind != KindUser {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(v.user.PasswordHash), []byte(passwordHash)) == 1
}

// UserHasKey reports whether username has a bound public key.
func (s *Store) UserHasKey(username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[username]
	if !ok || v.kind != KindUser {
		return false
	}
	return v.user.HasKey
}

// UserPublicKey returns the age recipient string bound to username, if any.
func (s *Store) UserPublicKey(username string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[username]
	if !ok || v.kind != KindUser || !v.user.HasKey {
		return "", false
	}
	return v.user.PublicKey, true
}

// VerifyKey reports whether username has a bound public key matching
// recipientStr exactly. LOGIN calls this when the user has a configured
// key, comparing it against the recipient the connection bound via a prior
// KEYEXCHANGE: a mismatch denies the login even with a correct password.
func (s *Store) VerifyKey(username, recipientStr string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[username]
	if !ok || v.kind != KindUser || !v.user.HasKey {
		return false
	}
	return v.user.PublicKey == recipientStr
}

// BindKey attaches a public key (an age recipient's string form) to an
// existing user. Only the config-bootstrap path calls this — unlike the
// connection-level peer key KEYEXCHANGE binds, a user's expected key is
// configured up front and checked against, never updated by a command.
func (s *Store) BindKey(username, publicKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[username]
	if !ok || v.kind != KindUser {
		return ErrTypeMismatch
	}
	v.user.PublicKey = publicKey
	v.user.HasKey = true
	return nil
}
