package inmemorytopology

import (
	"context"
	"slices"
	"sync"

	"github.com/specialistvlad/tagweaver/internal/topologystore"
)

// Store implements the topologystore.Store interface using maps and a mutex
// for thread-safe concurrent access.
type Store struct {
	mu    sync.RWMutex
	docs  map[string]*topologystore.Document
	order []string // first-recorded order of tags
}

// New creates a new, empty in-memory topology store.
func New() topologystore.Store {
	return &Store{
		docs: make(map[string]*topologystore.Document),
	}
}

// Put records a document, replacing any previous document with the same tag.
func (s *Store) Put(ctx context.Context, doc *topologystore.Document) (*topologystore.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deps := slices.Sorted(slices.Values(doc.Dependencies))
	stored := &topologystore.Document{
		Tag:          doc.Tag,
		Source:       doc.Source,
		Dependencies: slices.Compact(deps),
	}

	prev, exists := s.docs[doc.Tag]
	if !exists {
		s.order = append(s.order, doc.Tag)
	}
	s.docs[doc.Tag] = stored
	return prev, exists
}

// Get retrieves a document by tag.
func (s *Store) Get(ctx context.Context, tag string) (*topologystore.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[tag]
	return doc, ok
}

// Tags returns a snapshot of all tags in first-recorded order.
func (s *Store) Tags(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.order)
}

// DependenciesOf returns the sorted dependencies of tag, or an empty slice
// when the tag was never recorded.
func (s *Store) DependenciesOf(ctx context.Context, tag string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[tag]
	if !ok {
		return []string{}
	}
	return slices.Clone(doc.Dependencies)
}

// Len returns the number of recorded documents.
func (s *Store) Len(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.docs)
}
