package blueprint

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cedab23/blueprints/internal/blueprint/metrics"
)

// Service exposes the blueprint operations to the API layer. It delegates
// every call to the configured Store and never alters results or error
// kinds; it only records metrics and debug logs.
type Service struct {
	store   Store
	metrics *metrics.Metrics
	logger  *slog.Logger
}

var _ Store = (*Service)(nil)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for operation outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService creates a Service over store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create persists a new blueprint.
func (s *Service) Create(ctx context.Context, bp *Blueprint) error {
	start := time.Now()
	err := s.store.Create(ctx, bp)
	s.observe("create", start, err, "author", bp.Author, "name", bp.Name)
	if err == nil && s.metrics != nil {
		s.metrics.IncrementBlueprintsCreated()
		s.metrics.AddPointsStored(len(bp.Points))
	}
	return err
}

// AppendPoint adds a point to an existing blueprint.
func (s *Service) AppendPoint(ctx context.Context, author, name string, p Point) error {
	start := time.Now()
	err := s.store.AppendPoint(ctx, author, name, p)
	s.observe("append_point", start, err, "author", author, "name", name)
	if err == nil && s.metrics != nil {
		s.metrics.AddPointsStored(1)
	}
	return err
}

// Get returns a single blueprint.
func (s *Service) Get(ctx context.Context, author, name string) (*Blueprint, error) {
	start := time.Now()
	bp, err := s.store.Get(ctx, author, name)
	s.observe("get", start, err, "author", author, "name", name)
	return bp, err
}

// ListByAuthor returns the blueprints owned by author.
func (s *Service) ListByAuthor(ctx context.Context, author string) ([]Blueprint, error) {
	start := time.Now()
	blueprints, err := s.store.ListByAuthor(ctx, author)
	s.observe("list_by_author", start, err, "author", author)
	return blueprints, err
}

// List returns every blueprint.
func (s *Service) List(ctx context.Context) ([]Blueprint, error) {
	start := time.Now()
	blueprints, err := s.store.List(ctx)
	s.observe("list", start, err)
	return blueprints, err
}

func (s *Service) observe(op string, start time.Time, err error, attrs ...any) {
	result := outcome(err)
	if s.metrics != nil {
		s.metrics.ObserveOperation(op, result, start)
	}

	// Failures are reported to clients and logged by the HTTP handlers.
	if result != "ok" {
		s.logger.Debug("blueprint store operation did not succeed",
			append([]any{"operation", op, "outcome", result, "error", err}, attrs...)...)
	}
}

// outcome classifies an operation result for metrics and logs.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrBlueprintNotFound):
		return "not_found"
	case errors.Is(err, ErrDuplicateBlueprint):
		return "duplicate"
	default:
		return "error"
	}
}
