package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/author"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/database"
)

// postgresRepository implements author.Repository
// Uses pgxpool for PostgreSQL and the cache layer for reads by id
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates a new author repository instance
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	authorCacheKeyPrefix = "author:"
	cacheTTL             = 5 * time.Minute

	// Name of the UNIQUE (name) constraint on authors
	nameUniqueConstraint = "authors_name_key"
	uniqueViolation      = "23505"
)

const authorColumns = `id, name, phone_number, created_at, updated_at`

func scanAuthor(row pgx.Row) (*author.Author, error) {
	var a author.Author
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.PhoneNumber,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// mapWriteError turns a unique violation on the name constraint into the
// same validation error the application-level check produces
func mapWriteError(err error, action string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == nameUniqueConstraint {
		return author.NewDuplicateNameError()
	}
	return fmt.Errorf("failed to %s author: %w", action, err)
}

// Create inserts new author; id and created_at come from the database
func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, phone_number)
        VALUES ($1, $2)
        RETURNING ` + authorColumns

	created, err := scanAuthor(r.pool.QueryRow(ctx, query, a.Name, a.PhoneNumber))
	if err != nil {
		return nil, mapWriteError(err, "create")
	}

	return created, nil
}

// GetByID retrieves author by UUID with caching
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var cached author.Author
	hit, err := r.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("author cache read failed")
	}
	if err == nil && hit {
		return &cached, nil
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, a, cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("author cache write failed")
	}

	return a, nil
}

// List retrieves a page of authors ordered by creation time
func (r *postgresRepository) List(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
	query := `
        SELECT ` + authorColumns + `
        FROM authors
        ORDER BY created_at DESC, id
        LIMIT $1 OFFSET $2
    `

	rows, err := r.pool.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := make([]author.Author, 0, filter.Limit)
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating authors: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	return authors, total, nil
}

// Update locks the row, applies mutate and writes the result back.
// updated_at is set by the database.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, mutate func(*author.Author, author.NameChecker) error) (*author.Author, error) {
	updated, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*author.Author, error) {
		selectQuery := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1 FOR UPDATE`

		current, err := scanAuthor(tx.QueryRow(ctx, selectQuery, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, author.ErrAuthorNotFound
			}
			return nil, fmt.Errorf("failed to lock author: %w", err)
		}

		if err := mutate(current, txNames{tx: tx}); err != nil {
			return nil, err
		}

		updateQuery := `
            UPDATE authors
            SET name = $2, phone_number = $3, updated_at = NOW()
            WHERE id = $1
            RETURNING ` + authorColumns

		saved, err := scanAuthor(tx.QueryRow(ctx, updateQuery, id, current.Name, current.PhoneNumber))
		if err != nil {
			return nil, mapWriteError(err, "update")
		}
		return saved, nil
	})
	if err != nil {
		return nil, err
	}

	r.refresh(ctx, updated)
	return updated, nil
}

// Delete removes author by ID
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

// ExistsByName is the exact, case-sensitive equality lookup behind the
// uniqueness check
func (r *postgresRepository) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	return existsByName(ctx, r.pool, name, excludeID)
}

// rowQuerier is satisfied by *pgxpool.Pool and pgx.Tx
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func existsByName(ctx context.Context, q rowQuerier, name string, excludeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE name = $1 AND id <> $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author name: %w", err)
	}
	return exists, nil
}

// txNames answers name lookups on the connection that holds the row lock
type txNames struct {
	tx pgx.Tx
}

func (n txNames) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	return existsByName(ctx, n.tx, name, excludeID)
}

// refresh writes the committed row through to the cache. If that fails the
// key is dropped so readers fall back to the database.
func (r *postgresRepository) refresh(ctx context.Context, a *author.Author) {
	key := authorCacheKeyPrefix + a.ID.String()
	if err := r.cache.Set(ctx, key, a, cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("author cache refresh failed")
		r.invalidate(ctx, a.ID)
	}
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, authorCacheKeyPrefix+id.String()); err != nil {
		log.Warn().Err(err).Str("author_id", id.String()).Msg("author cache invalidation failed")
	}
}
