package storage

import (
	"context"
	"io"
)

// DocumentStore is the external document-storage collaborator. The engine
// only keeps opaque references (paths/URLs) to what it stores here: expense
// attachments and backup snapshots.
type DocumentStore interface {
	// Put stores a document and returns its opaque reference.
	Put(ctx context.Context, doc io.Reader, path string, contentType string) (string, error)

	// Get retrieves a stored document.
	Get(ctx context.Context, ref string) (io.ReadCloser, error)

	// Delete removes a stored document. Deleting a missing document is not
	// an error.
	Delete(ctx context.Context, ref string) error

	// URL resolves a reference to a client-facing URL.
	URL(ref string) string
}
