// Package session ties one catalog instance to one UI session.
package session

import (
	"time"

	"github.com/google/uuid"

	"product_catalog/store"
)

// Session owns exactly one Catalog for its lifetime. State is never shared
// between sessions; in a multi-session deployment each session gets its own
// instance.
type Session struct {
	ID      uuid.UUID
	Started time.Time
	Catalog *store.Catalog
}

// New wraps catalog in a fresh session with a random identity.
func New(catalog *store.Catalog) *Session {
	return &Session{
		ID:      uuid.New(),
		Started: time.Now(),
		Catalog: catalog,
	}
}
