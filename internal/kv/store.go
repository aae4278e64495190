// Package kv is the key-value persistence surface behind the record store.
// Each named collection is one key holding a serialized payload; there is no
// locking, so concurrent writers race and the last write wins.
package kv

// Store addresses whole collections by name.
type Store interface {
	// Get returns the stored payload and whether the name has ever been written.
	Get(name string) (string, bool, error)
	// Set replaces the payload for name.
	Set(name, value string) error
}
