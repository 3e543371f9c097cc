package driving

import (
	"context"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
)

// ParserService turns markup into features.
type ParserService interface {
	// Parse decodes raw and builds the document's features in source order.
	// Returns a *domain.ParseError when the markup cannot be read at all;
	// a document with zero features is not an error.
	Parse(ctx context.Context, raw domain.RawDocument) (*domain.Document, error)
}

// DocumentService looks up documents retained by the parser.
type DocumentService interface {
	// Get retrieves a parsed document by ID.
	Get(ctx context.Context, documentID string) (*domain.Document, error)

	// List returns summaries of retained documents.
	List(ctx context.Context) ([]domain.DocumentSummary, error)
}
