package option

// Store exposes option retrieval for HTTP handlers.
type Store interface {
	List() []Option
	ListKind(kind Kind) []Option
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Option
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied options.
func NewMemoryStore(items []Option) *MemoryStore {
	return &MemoryStore{items: append([]Option(nil), items...)}
}

// List returns every option in seed order.
func (s *MemoryStore) List() []Option {
	return append([]Option(nil), s.items...)
}

// ListKind returns the options of one kind in seed order.
func (s *MemoryStore) ListKind(kind Kind) []Option {
	out := make([]Option, 0, len(s.items))
	for _, item := range s.items {
		if item.Kind == kind {
			out = append(out, item)
		}
	}
	return out
}
