package storage

import (
	"context"

	"github.com/pondside/docbrief/core"
)

// DocumentRepository provides operations for managing document records.
// Implementations must be thread-safe and support concurrent access.
type DocumentRepository interface {
	// AddDocument adds a document to storage.
	// Generates a new ID from sequence and sets CreatedAt/UpdatedAt if unset.
	// Returns the document with the generated ID and timestamps populated.
	AddDocument(ctx context.Context, doc *core.Document) (*core.Document, error)

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.Document, error)

	// GetDocuments retrieves multiple documents by their IDs.
	// Returns only the documents that exist (no error for missing documents).
	GetDocuments(ctx context.Context, ids ...core.ID) ([]*core.Document, error)

	// ListDocuments retrieves all documents ordered by creation time ascending.
	ListDocuments(ctx context.Context) ([]*core.Document, error)

	// ListDocumentsByStatus retrieves all documents currently in the given
	// status, ordered by ID ascending.
	ListDocumentsByStatus(ctx context.Context, status core.Status) ([]*core.Document, error)

	// UpdateDocument overwrites an existing document in a single atomic write.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if the document doesn't exist; it never re-creates
	// a record that was deleted concurrently.
	UpdateDocument(ctx context.Context, doc *core.Document) (*core.Document, error)

	// DeleteDocument removes a document by ID.
	// Also removes associated indices.
	// Returns ErrNotFound if the document doesn't exist.
	DeleteDocument(ctx context.Context, id core.ID) error

	// Close closes the repository and releases resources.
	Close() error
}
