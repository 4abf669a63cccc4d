// Package storage declares the data-access boundary the framework core is
// wired against. The contract is deliberately thin: items carry an
// identifier and an opaque optimistic-concurrency token, and the only
// operation the core references is Create. Real persistence lives outside
// this repository; the in-memory store here backs tests and the demo CLI.
package storage

import "context"

// StoredItem is the envelope a store accepts and returns. The Etag is an
// opaque concurrency token: carried through untouched, never interpreted by
// the core.
type StoredItem struct {
	ID      string
	Etag    string
	Payload any
}

// Creator is the create half of the CRUD boundary consumed by the
// framework. Implementations assign an ID when the item arrives without one
// and report duplicates as conflict faults.
type Creator interface {
	Create(ctx context.Context, item StoredItem) (StoredItem, error)
}
