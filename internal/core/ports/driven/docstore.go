package driven

import (
	"context"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// DocumentStore retains parsed documents for the lifetime of a session.
// Backed by memory; nothing survives a restart.
type DocumentStore interface {
	// SaveDocument stores or replaces a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	// Returns domain.ErrNotFound when the ID is unknown.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// DeleteDocument removes a document.
	DeleteDocument(ctx context.Context, id string) error

	// ListDocuments returns summaries, most recently parsed first.
	ListDocuments(ctx context.Context) ([]domain.DocumentSummary, error)
}
