package store

import "github.com/FairyTail2000/in-mem/pkg/proto"

// AclAdd grants username permission to run commandID.
func (s *Store) AclAdd(username string, commandID proto.CommandID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	allowed, ok := s.acl[username]
	if !ok {
		allowed = make(map[proto.CommandID]struct{})
		s.acl[username] = allowed
	}
	allowed[commandID] = struct{}{}
}

// AclRemove revokes username's permission to run commandID, reporting
// whether the grant was present.
func (s *Store) AclRemove(username string, commandID proto.CommandID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	allowed, ok := s.acl[username]
	if !ok {
		return false
	}
	if _, present := allowed[commandID]; !present {
		return false
	}
	delete(allowed, commandID)
	return true
}

// AclList returns every command username is explicitly granted.
func (s *Store) AclList(username string) []proto.CommandID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	allowed := s.acl[username]
	out := make([]proto.CommandID, 0, len(allowed))
	for c := range allowed {
		out = append(out, c)
	}
	return out
}

// AclIsAllowed reports whether username may run commandID. Heartbeat,
// Login, and KeyExchange are always allowed, independent of any explicit
// grant, since a client can't reach any other command without them.
func (s *Store) AclIsAllowed(username string, commandID proto.CommandID) bool {
	if proto.AlwaysAllowed(commandID) {
		return true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	allowed, ok := s.acl[username]
	if !ok {
		return false
	}
	_, present := allowed[commandID]
	return present
}
