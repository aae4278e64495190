// Package records reads and writes named collections as JSON sequences
// against a kv.Store. The store is the single source of truth; callers read
// fresh on every query and never cache between calls.
package records

import (
	"encoding/json"

	"stockroom/internal/domain"
	"stockroom/internal/kv"
)

// List returns the stored sequence for name in insertion order. A collection
// that has never been written reads as an empty slice. A payload that does
// not decode surfaces as *domain.CorruptStateError.
func List[T any](s kv.Store, name string) ([]T, error) {
	raw, ok, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, &domain.CorruptStateError{Collection: name, Err: err}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Write replaces the entire stored collection for name.
func Write[T any](s kv.Store, name string, seq []T) error {
	if seq == nil {
		seq = []T{}
	}
	b, err := json.Marshal(seq)
	if err != nil {
		return err
	}
	return s.Set(name, string(b))
}
