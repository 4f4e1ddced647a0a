package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/charleslimjh/tp/internal/domain"
	"github.com/charleslimjh/tp/migrations"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
// Begin on a pgx.Tx opens a savepoint, so Save stays atomic either way.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// pgEateryRepo is the Postgres implementation of EateryRepo.
type pgEateryRepo struct {
	db    db
	close func()
}

// NewPostgresRepo constructs an EateryRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPostgresRepo(db db) EateryRepo {
	return &pgEateryRepo{db: db, close: func() {}}
}

// OpenPostgres connects to dsn, applies pending migrations and returns a Store
// that owns the connection pool.
func OpenPostgres(ctx context.Context, dsn string) (Store, error) {
	if err := Migrate(ctx, dsn); err != nil {
		return nil, err
	}

	// New() does not open connections immediately; Ping verifies reachability.
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("repo.OpenPostgres: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("repo.OpenPostgres: ping: %w", err)
	}
	return &pgEateryRepo{db: pool, close: pool.Close}, nil
}

// Migrate applies every pending migration in migrations.FS to dsn.
// goose needs database/sql, so this opens its own short-lived *sql.DB.
func Migrate(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("repo.Migrate: open: %w", err)
	}
	defer sqlDB.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	if err != nil {
		return fmt.Errorf("repo.Migrate: create goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("repo.Migrate: up: %w", err)
	}
	return nil
}

// Load returns all eateries ordered by position, with tags aggregated per row.
func (r *pgEateryRepo) Load(ctx context.Context) ([]*domain.Eatery, error) {
	const q = `
		SELECT e.name, e.phone, e.cuisine, e.location,
		       COALESCE(array_agg(t.tag ORDER BY t.tag) FILTER (WHERE t.tag IS NOT NULL), '{}') AS tags
		FROM eateries e
		LEFT JOIN eatery_tags t ON t.eatery_id = e.id
		GROUP BY e.id, e.position
		ORDER BY e.position`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.EateryRepo.Load: %w", err)
	}
	defer rows.Close()

	var out []eateryRow
	for rows.Next() {
		var row eateryRow
		if err := rows.Scan(&row.Name, &row.Phone, &row.Cuisine, &row.Location, &row.Tags); err != nil {
			return nil, fmt.Errorf("repo.EateryRepo.Load: scan: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.EateryRepo.Load: rows: %w", err)
	}

	eateries, err := toEateries(out)
	if err != nil {
		return nil, fmt.Errorf("repo.EateryRepo.Load: %w", err)
	}
	return eateries, nil
}

// Save replaces the stored guide inside a single transaction.
func (r *pgEateryRepo) Save(ctx context.Context, eateries []*domain.Eatery) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.EateryRepo.Save: begin: %w", err)
	}
	// Rollback after Commit is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	// eatery_tags rows go with their parent via ON DELETE CASCADE.
	if _, err := tx.Exec(ctx, `DELETE FROM eateries`); err != nil {
		return fmt.Errorf("repo.EateryRepo.Save: clear: %w", err)
	}

	const insertEatery = `
		INSERT INTO eateries (id, position, name, phone, cuisine, location)
		VALUES (@id, @position, @name, @phone, @cuisine, @location)`
	const insertTag = `
		INSERT INTO eatery_tags (eatery_id, tag)
		VALUES (@eatery_id, @tag)
		ON CONFLICT (eatery_id, tag) DO NOTHING`

	for i, e := range eateries {
		row := toRow(e)
		id := uuid.New()
		_, err := tx.Exec(ctx, insertEatery, pgx.NamedArgs{
			"id":       id,
			"position": i,
			"name":     row.Name,
			"phone":    row.Phone,
			"cuisine":  row.Cuisine,
			"location": row.Location,
		})
		if err != nil {
			return fmt.Errorf("repo.EateryRepo.Save: insert eatery %d: %w", i, err)
		}
		for _, tag := range row.Tags {
			if _, err := tx.Exec(ctx, insertTag, pgx.NamedArgs{"eatery_id": id, "tag": tag}); err != nil {
				return fmt.Errorf("repo.EateryRepo.Save: insert tag %q: %w", tag, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repo.EateryRepo.Save: commit: %w", err)
	}
	return nil
}

func (r *pgEateryRepo) Close() error {
	r.close()
	return nil
}
