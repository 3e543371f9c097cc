package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
	"github.com/custodia-labs/kmlpser/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DefaultMaxDocuments is the capacity used when none is given.
const DefaultMaxDocuments = 64

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// When full, saving a new document evicts the least recently saved one.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
	order     []string
	capacity  int
}

// NewDocumentStore creates a new in-memory document store holding at most
// capacity documents. A capacity <= 0 means DefaultMaxDocuments.
func NewDocumentStore(capacity int) *DocumentStore {
	if capacity <= 0 {
		capacity = DefaultMaxDocuments
	}
	return &DocumentStore{
		documents: make(map[string]domain.Document),
		capacity:  capacity,
	}
}

// SaveDocument stores or replaces a document.
func (s *DocumentStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	if doc == nil || doc.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[doc.ID]; ok {
		s.removeFromOrder(doc.ID)
	}
	s.documents[doc.ID] = *doc
	s.order = append(s.order, doc.ID)

	for len(s.order) > s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.documents, oldest)
	}
	return nil
}

// GetDocument retrieves a document by ID.
func (s *DocumentStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// DeleteDocument removes a document. Deleting an unknown ID is not an error.
func (s *DocumentStore) DeleteDocument(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[id]; !ok {
		return nil
	}
	delete(s.documents, id)
	s.removeFromOrder(id)
	return nil
}

// ListDocuments returns summaries, most recently saved first.
func (s *DocumentStore) ListDocuments(_ context.Context) ([]domain.DocumentSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.DocumentSummary, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		doc := s.documents[s.order[i]]
		result = append(result, doc.Summary())
	}
	return result, nil
}

func (s *DocumentStore) removeFromOrder(id string) {
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
