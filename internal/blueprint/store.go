package blueprint

import (
	"context"
	"errors"
	"fmt"
)

// ErrBlueprintNotFound is returned when no blueprint matches the requested
// author (and name).
var ErrBlueprintNotFound = errors.New("blueprint not found")

// ErrPersistence is returned for any backend failure: constraint violations,
// lost connectivity, malformed data.
var ErrPersistence = errors.New("blueprint persistence failure")

// ErrDuplicateBlueprint is returned when a blueprint with the same author and
// name already exists. It matches ErrPersistence under errors.Is.
var ErrDuplicateBlueprint = fmt.Errorf("%w: blueprint already exists", ErrPersistence)

// Store provides persistence for blueprints and their points.
// Blueprints are never renamed or deleted, and points are only appended.
type Store interface {
	// Create persists bp and its initial points in order.
	Create(ctx context.Context, bp *Blueprint) error
	// AppendPoint adds p as the last point of an existing blueprint.
	AppendPoint(ctx context.Context, author, name string, p Point) error
	// Get returns a single fully populated blueprint.
	Get(ctx context.Context, author, name string) (*Blueprint, error)
	// ListByAuthor returns every blueprint owned by author, ordered by name.
	// An author without blueprints yields ErrBlueprintNotFound.
	ListByAuthor(ctx context.Context, author string) ([]Blueprint, error)
	// List returns every blueprint ordered by author then name. An empty
	// store yields an empty slice.
	List(ctx context.Context) ([]Blueprint, error)
}

// persistenceError wraps a backend failure so that it matches ErrPersistence
// while keeping the cause inspectable.
func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
