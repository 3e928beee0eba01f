// Package store persists happy things as JSON documents, one per
// file, under a per-tenant, per-user collection path. A live
// subscription streams full snapshots of the collection whenever it
// changes.
package store

import (
	"context"

	"github.com/ekinoz/happy/internal/model"
)

// Store is the document-store contract. Implementations assign ids
// and creation timestamps on insert; callers never pick ids.
type Store interface {
	// List returns the user's items ordered by creation time
	// descending (newest first).
	List(ctx context.Context) ([]model.Item, error)

	// Insert stores a new document with the given text and returns
	// the stored item with its assigned id and timestamp.
	Insert(ctx context.Context, text string) (model.Item, error)

	// Delete removes the document with the given id.
	Delete(ctx context.Context, id string) error

	// Subscribe opens a live query over the collection. The channel
	// receives the full current snapshot immediately, then again
	// after every change, and closes when ctx is cancelled. One
	// subscription per consumer; cancelling ctx releases it.
	Subscribe(ctx context.Context) (<-chan []model.Item, error)
}
