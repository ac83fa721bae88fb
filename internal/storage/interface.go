package storage

import "strings"

// Provider is a string-keyed JSON-blob cache with get/set/remove semantics.
// The remote documents and the user's course selection are cached verbatim
// under well-known keys (see constants) so every command works offline after
// the first successful fetch.
//
// Get, Set, and Remove must be safe for concurrent use on a loaded store:
// watch mode reads from its tick goroutines while the scheduled refresh
// writes.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get unmarshals the blob under key into v. It returns false, without
	// error, when the key is absent: a missing document is a first-class
	// value here, not a failure.
	Get(key string, v any) (bool, error)
	Set(key string, v any) error
	Remove(key string) error

	// Utils
	GetCachePath() string
}

// NewFromPath selects a backend by path extension: a .json path gets the
// plain-file store, anything else the SQLite store.
func NewFromPath(path string) Provider {
	if strings.HasSuffix(path, ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}
