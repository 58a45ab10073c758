package store

import (
	"fmt"
	"math"
	"strconv"
)

// hashAt returns the hash map stored at key, nil if key is absent, or
// ErrTypeMismatch if key holds a different variant.
func (s *Store) hashAt(key string) (map[string]string, error) {
	v, ok := s.values[key]
	if !ok {
		return nil, nil
	}
	if v.kind != KindHash {
		return nil, ErrTypeMismatch
	}
	return v.hash, nil
}

// HGet looks up a single field. found is false for either a missing key or
// a missing field; err is non-nil only when key exists as a different
// variant.
func (s *Store) HGet(key, field string) (val string, found bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, err := s.hashAt(key)
	if err != nil || h == nil {
		return "", false, err
	}
	val, found = h[field]
	return val, found, nil
}

// HSet writes every field in fields into the hash at key, creating it if
// absent. The write is all-or-nothing: a budget failure leaves the hash
// exactly as it was (spec.md §4.3's "which fields failed is not reported").
func (s *Store) HSet(key string, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, err := s.hashAt(key)
	if err != nil {
		return err
	}
	isNew := h == nil
	if isNew {
		if err := s.reserveNewKey(key); err != nil {
			return err
		}
	}
	newFields := 0
	for f := range fields {
		if _, exists := h[f]; !exists {
			newFields++
		}
	}
	if err := s.budget.reserveContainer(len(h), newFields); err != nil {
		return err
	}
	if isNew {
		h = make(map[string]string, len(fields))
		s.values[key] = &value{kind: KindHash, hash: h}
	}
	for f, v := range fields {
		h[f] = v
	}
	return nil
}

// HUpsert is HSET for a single field.
func (s *Store) HUpsert(key, field, val string) error {
	return s.HSet(key, map[string]string{field: val})
}

// HDel removes a field, reporting whether it was actually present.
func (s *Store) HDel(key, field string) (removed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, err := s.hashAt(key)
	if err != nil || h == nil {
		return false, err
	}
	if _, ok := h[field]; !ok {
		return false, nil
	}
	delete(h, field)
	return true, nil
}

// HExists reports whether a field is present.
func (s *Store) HExists(key, field string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, err := s.hashAt(key)
	if err != nil || h == nil {
		return false, err
	}
	_, ok := h[field]
	return ok, nil
}

// HGetAll returns a copy of every field/value pair. A missing key returns
// an empty map with no error; a wrong-variant key returns ErrTypeMismatch
// (spec.md §9's recommended safer contract, adopted in SPEC_FULL.md §6.2).
func (s *Store) HGetAll(key string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, err := s.hashAt(key)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out, nil
}

// HKeys returns a copy of every field name.
func (s *Store) HKeys(key string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, err := s.hashAt(key)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(h))
	for k := range h {
		out = append(out, k)
	}
	return out, nil
}

// HVals returns a copy of every value.
func (s *Store) HVals(key string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, err := s.hashAt(key)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(h))
	for _, v := range h {
		out = append(out, v)
	}
	return out, nil
}

// HLen returns the number of fields, or an error if key holds a different
// variant.
func (s *Store) HLen(key string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, err := s.hashAt(key)
	if err != nil {
		return 0, err
	}
	return len(h), nil
}

// HStrLen returns the byte length of a field's value. found is false if the
// key or field is absent.
func (s *Store) HStrLen(key, field string) (length int, found bool, err error) {
	val, found, err := s.HGet(key, field)
	if err != nil || !found {
		return 0, found, err
	}
	return len(val), true, nil
}

// HIncrBy parses the field as a signed 64-bit decimal, adds value, and
// stores the result back as a decimal string. A missing field is seeded at
// value. A non-integer field is a TypeError. Overflow clamps to the int64
// bounds rather than the source's saturate-to-zero (SPEC_FULL.md §6.3).
func (s *Store) HIncrBy(key, field string, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, err := s.hashAt(key)
	if err != nil {
		return 0, err
	}
	if h == nil {
		if err := s.reserveNewKey(key); err != nil {
			return 0, err
		}
		h = make(map[string]string)
		s.values[key] = &value{kind: KindHash, hash: h}
	}

	current, exists := h[field]
	if !exists {
		if err := s.budget.reserveContainer(len(h), 1); err != nil {
			return 0, err
		}
		h[field] = strconv.FormatInt(delta, 10)
		return delta, nil
	}

	parsed, err := strconv.ParseInt(current, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: field %q is not an integer", ErrTypeMismatch, field)
	}
	next := addClamp(parsed, delta)
	h[field] = strconv.FormatInt(next, 10)
	return next, nil
}

func addClamp(a, b int64) int64 {
	sum := a + b
	if b > 0 && sum < a {
		return math.MaxInt64
	}
	if b < 0 && sum > a {
		return math.MinInt64
	}
	return sum
}
