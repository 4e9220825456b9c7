package repositories

import (
	"context"
)

// Write represents one document write inside a batch. An empty ID lets
// the destination assign the document identity.
type Write struct {
	ID  string
	Doc map[string]interface{}
}

// DocumentRepository defines the interface for raw document write operations.
// The migrator only ever creates or overwrites documents; reads, updates and
// deletes are out of scope for a one-time seeding run.
type DocumentRepository interface {
	// Set creates or overwrites the document at collection+id.
	Set(ctx context.Context, collection, id string, doc map[string]interface{}) error
	// Add inserts a document with a destination-assigned identity.
	Add(ctx context.Context, collection string, doc map[string]interface{}) error
	// CommitBatch submits a group of writes to one collection as a single
	// batch. Within a batch, writes apply in order.
	CommitBatch(ctx context.Context, collection string, writes []Write) error
}
