package tz

import (
	"fmt"
	"sync"
)

// NotFoundError reports a zone identifier that the provider could not
// resolve. It is a recoverable, caller-visible error, distinct from
// the gap and overlap outcomes of Resolve, which are not errors.
type NotFoundError struct {
	// Name is the unresolvable zone identifier.
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown zone %q", e.Name)
}

// Provider loads zone rule tables by identifier. Implementations
// return a *NotFoundError for identifiers they do not know.
// Providers are data sources, not caches; wrap one in a DB to get
// caching.
type Provider interface {
	LoadZone(name string) (*Zone, error)
}

// DB looks up zones through a Provider and caches the result per
// identifier for the life of the process. The cache is populate-once:
// the first successful load of an identifier wins and later lookups
// observe the same *Zone. Concurrent first lookups of the same
// identifier may both invoke the provider; whichever publishes first
// wins and the other result is discarded. A partially built zone is
// never observable because publication happens under the lock after
// the provider returns.
type DB struct {
	provider Provider

	mu    sync.RWMutex
	zones map[string]*Zone
}

// NewDB returns a DB backed by the given provider. The provider must
// not be nil; a nil provider is a programmer error and panics.
func NewDB(p Provider) *DB {
	if p == nil {
		panic("tz: NewDB called with nil provider")
	}
	return &DB{provider: p, zones: make(map[string]*Zone)}
}

// Zone returns the zone for the given identifier, loading it through
// the provider on first use. Unknown identifiers return a
// *NotFoundError.
func (db *DB) Zone(name string) (*Zone, error) {
	db.mu.RLock()
	z, ok := db.zones[name]
	db.mu.RUnlock()
	if ok {
		return z, nil
	}

	// Load outside the lock: providers may read files and two
	// goroutines racing on a fresh identifier at worst compute the
	// same immutable table twice.
	loaded, err := db.provider.LoadZone(name)
	if err != nil {
		return nil, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	if z, ok := db.zones[name]; ok {
		return z, nil // first caller won
	}
	db.zones[name] = loaded
	return loaded, nil
}
