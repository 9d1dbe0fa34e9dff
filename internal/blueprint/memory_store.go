package blueprint

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-process Store. Nothing is persisted across restarts.
type MemoryStore struct {
	mu         sync.RWMutex
	blueprints map[Key][]Point
}

// NewMemoryStore creates an empty in-memory Store.
func NewMemoryStore() Store {
	return &MemoryStore{blueprints: make(map[Key][]Point)}
}

// Create stores a copy of bp.
func (s *MemoryStore) Create(_ context.Context, bp *Blueprint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := bp.Key()
	if _, ok := s.blueprints[key]; ok {
		return ErrDuplicateBlueprint
	}
	s.blueprints[key] = append([]Point{}, bp.Points...)
	return nil
}

// AppendPoint adds p to the end of an existing blueprint.
func (s *MemoryStore) AppendPoint(_ context.Context, author, name string, p Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key{Author: author, Name: name}
	points, ok := s.blueprints[key]
	if !ok {
		return ErrBlueprintNotFound
	}
	s.blueprints[key] = append(points, p)
	return nil
}

// Get returns a copy of a single blueprint.
func (s *MemoryStore) Get(_ context.Context, author, name string) (*Blueprint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := Key{Author: author, Name: name}
	points, ok := s.blueprints[key]
	if !ok {
		return nil, ErrBlueprintNotFound
	}
	bp := s.snapshot(key, points)
	return &bp, nil
}

// ListByAuthor returns copies of the author's blueprints ordered by name.
func (s *MemoryStore) ListByAuthor(_ context.Context, author string) ([]Blueprint, error) {
	blueprints := s.collect(func(k Key) bool { return k.Author == author })
	if len(blueprints) == 0 {
		return nil, ErrBlueprintNotFound
	}
	return blueprints, nil
}

// List returns copies of all blueprints ordered by author and name.
func (s *MemoryStore) List(_ context.Context) ([]Blueprint, error) {
	return s.collect(func(Key) bool { return true }), nil
}

func (s *MemoryStore) collect(match func(Key) bool) []Blueprint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blueprints := []Blueprint{}
	for key, points := range s.blueprints {
		if match(key) {
			blueprints = append(blueprints, s.snapshot(key, points))
		}
	}

	sort.Slice(blueprints, func(i, j int) bool {
		if blueprints[i].Author != blueprints[j].Author {
			return blueprints[i].Author < blueprints[j].Author
		}
		return blueprints[i].Name < blueprints[j].Name
	})
	return blueprints
}

func (s *MemoryStore) snapshot(key Key, points []Point) Blueprint {
	return Blueprint{
		Author: key.Author,
		Name:   key.Name,
		Points: append([]Point{}, points...),
	}
}
