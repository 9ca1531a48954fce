package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	j "github.com/goccy/go-json"

	skema "github.com/reoring/skema"
)

// DocumentStore persists descriptor documents by name.
type DocumentStore interface {
	// Get returns the document stored under name, or ErrNotFound.
	Get(ctx context.Context, name string) (map[string]any, error)
	// Put stores doc under name, replacing any previous document.
	Put(ctx context.Context, name string, doc map[string]any) error
	// Delete removes the document. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the stored names in sorted order.
	List(ctx context.Context) ([]string, error)
}

// MemoryStore keeps documents in memory. Documents are held encoded, so
// callers never share maps with the store. Safe for concurrent use.
type MemoryStore struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, name string) (map[string]any, error) {
	s.mu.RLock()
	data, ok := s.data[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return decodeDocument(ctx, data)
}

func (s *MemoryStore) Put(_ context.Context, name string, doc map[string]any) error {
	data, err := j.Marshal(doc)
	if err != nil {
		return fmt.Errorf("registry: encode %q: %w", name, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = data
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

func (s *MemoryStore) List(context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.data))
	for n := range s.data {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

// decodeDocument goes through the JSON front door so stored numbers come
// back as int64/float64 like any other parsed input.
func decodeDocument(ctx context.Context, data []byte) (map[string]any, error) {
	v, err := skema.DecodeJSON(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("registry: decode document: %w", err)
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("registry: stored document is %T, not an object", v)
	}
	return doc, nil
}
