// Package store implements the typed, in-memory key/value container at the
// heart of the server: one shared map behind a single sync.RWMutex, holding
// string/hash/list/user variants under one key namespace, plus the ACL.
//
// No ecosystem library replaces a plain RWMutex for this: every example in
// the retrieved corpus that guards shared connection/broker state
// (dcrodman-franz-go's brokerCxn.dieMu, katzenpost's decoy.go) reaches for
// sync.RWMutex directly, and spec.md is explicit that this is "a single
// readers/writer lock" — there is no third-party concern to delegate to.
package store

import (
	"sync"

	"github.com/FairyTail2000/in-mem/pkg/proto"
)

// Store is the single shared container behind the command pipeline. All
// mutating operations take the writer lock; all reads take the reader lock.
type Store struct {
	mu     sync.RWMutex
	values map[string]*value
	budget Budget
	acl    map[string]map[proto.CommandID]struct{}
}

// New creates an empty Store governed by the given allocation budget.
func New(budget Budget) *Store {
	return &Store{
		values: make(map[string]*value),
		budget: budget,
		acl:    make(map[string]map[proto.CommandID]struct{}),
	}
}

// reserveNewKey checks the top-level budget for one additional key beyond
// what key already occupies (i.e. it's a no-op if key already exists).
// Mirrors the source's try_reserve(1)-then-shrink-and-retry-once contract;
// Go maps have no shrink_to_fit equivalent; the retry collapses to a single
// check, noted in DESIGN.md.
func (s *Store) reserveNewKey(key string) error {
	if _, exists := s.values[key]; exists {
		return nil
	}
	return s.budget.reserveKeys(len(s.values), 1)
}
