package blueprint

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new Store backed by the given connection pool.
func NewPostgresStore(pool *pgxpool.Pool) Store {
	return &PostgresStore{pool: pool}
}

// selectJoined yields one row per (blueprint, point) pair. Blueprints without
// points still yield a single row with NULL coordinates. Callers order names
// with COLLATE "C" to get the same bytewise order as MemoryStore.
const selectJoined = `
	SELECT b.author, b.name, p.x, p.y
	FROM blueprints b
	LEFT JOIN points p ON p.blueprint_id = b.id`

const insertPoint = `INSERT INTO points (blueprint_id, x, y) VALUES ($1, $2, $3)`

// Create inserts the blueprint row and its points in a single transaction.
// A failure on any point rolls back the whole blueprint.
func (s *PostgresStore) Create(ctx context.Context, bp *Blueprint) error {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		var id uuid.UUID
		err := tx.QueryRow(ctx,
			`INSERT INTO blueprints (author, name) VALUES ($1, $2) RETURNING id`,
			bp.Author, bp.Name,
		).Scan(&id)
		if err != nil {
			return err
		}

		if len(bp.Points) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for _, p := range bp.Points {
			batch.Queue(insertPoint, id, p.X, p.Y)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateBlueprint
		}
		return persistenceError("inserting blueprint", err)
	}

	return nil
}

// AppendPoint resolves the blueprint and inserts the point in one statement,
// so a missing blueprint never receives a point.
func (s *PostgresStore) AppendPoint(ctx context.Context, author, name string, p Point) error {
	result, err := s.pool.Exec(ctx, `
		INSERT INTO points (blueprint_id, x, y)
		SELECT id, $3, $4 FROM blueprints
		WHERE author = $1 AND name = $2`,
		author, name, p.X, p.Y,
	)
	if err != nil {
		return persistenceError("appending point", err)
	}

	if result.RowsAffected() == 0 {
		return ErrBlueprintNotFound
	}

	return nil
}

// Get retrieves a single blueprint with all its points.
func (s *PostgresStore) Get(ctx context.Context, author, name string) (*Blueprint, error) {
	blueprints, err := s.queryGrouped(ctx, "loading blueprint",
		selectJoined+` WHERE b.author = $1 AND b.name = $2 ORDER BY p.id`,
		author, name,
	)
	if err != nil {
		return nil, err
	}

	if len(blueprints) == 0 {
		return nil, ErrBlueprintNotFound
	}

	return &blueprints[0], nil
}

// ListByAuthor retrieves every blueprint owned by author, ordered by name.
func (s *PostgresStore) ListByAuthor(ctx context.Context, author string) ([]Blueprint, error) {
	blueprints, err := s.queryGrouped(ctx, "loading blueprints by author",
		selectJoined+` WHERE b.author = $1 ORDER BY b.name COLLATE "C", p.id`,
		author,
	)
	if err != nil {
		return nil, err
	}

	if len(blueprints) == 0 {
		return nil, ErrBlueprintNotFound
	}

	return blueprints, nil
}

// List retrieves every blueprint ordered by author and name.
func (s *PostgresStore) List(ctx context.Context) ([]Blueprint, error) {
	return s.queryGrouped(ctx, "loading all blueprints",
		selectJoined+` ORDER BY b.author COLLATE "C", b.name COLLATE "C", p.id`,
	)
}

// queryGrouped runs a joined query and folds its rows into blueprints.
func (s *PostgresStore) queryGrouped(ctx context.Context, op, query string, args ...any) ([]Blueprint, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, persistenceError(op, err)
	}
	defer rows.Close()

	var g grouper
	for rows.Next() {
		var r joinedRow
		if err := rows.Scan(&r.Author, &r.Name, &r.X, &r.Y); err != nil {
			return nil, persistenceError("scanning blueprint row", err)
		}
		g.add(r)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceError(op, err)
	}

	return g.result(), nil
}
