package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/post"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/database"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates a new post repository instance
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) post.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	postCacheKeyPrefix = "post:"
	cacheTTL           = 5 * time.Minute
)

const postColumns = `id, title, content, summary, category, created_at, updated_at`

func scanPost(row pgx.Row) (*post.Post, error) {
	var p post.Post
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.Summary,
		&p.Category,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	query := `
        INSERT INTO posts (title, content, summary, category)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + postColumns

	created, err := scanPost(r.pool.QueryRow(ctx, query, p.Title, p.Content, p.Summary, p.Category))
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	cacheKey := postCacheKeyPrefix + id.String()

	var cached post.Post
	hit, err := r.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("post cache read failed")
	}
	if err == nil && hit {
		return &cached, nil
	}

	p, err := scanPost(r.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, p, cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("post cache write failed")
	}
	return p, nil
}

func (r *postgresRepository) List(ctx context.Context, filter post.PostFilter) ([]post.Post, int64, error) {
	var where strings.Builder
	args := []interface{}{}

	where.WriteString(" WHERE 1=1")
	if filter.Category != "" {
		args = append(args, filter.Category)
		where.WriteString(fmt.Sprintf(" AND category = $%d", len(args)))
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts`+where.String(), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := `SELECT ` + postColumns + ` FROM posts` + where.String() +
		fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]post.Post, 0, filter.Limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, mutate func(*post.Post) error) (*post.Post, error) {
	updated, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*post.Post, error) {
		current, err := scanPost(tx.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, post.ErrPostNotFound
			}
			return nil, fmt.Errorf("failed to lock post: %w", err)
		}

		if err := mutate(current); err != nil {
			return nil, err
		}

		query := `
            UPDATE posts
            SET title = $2, content = $3, summary = $4, category = $5, updated_at = NOW()
            WHERE id = $1
            RETURNING ` + postColumns

		saved, err := scanPost(tx.QueryRow(ctx, query, id, current.Title, current.Content, current.Summary, current.Category))
		if err != nil {
			return nil, fmt.Errorf("failed to update post: %w", err)
		}
		return saved, nil
	})
	if err != nil {
		return nil, err
	}

	r.refresh(ctx, updated)
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

// refresh writes the committed row through to the cache, dropping the key
// if the write fails
func (r *postgresRepository) refresh(ctx context.Context, p *post.Post) {
	key := postCacheKeyPrefix + p.ID.String()
	if err := r.cache.Set(ctx, key, p, cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("post cache refresh failed")
		r.invalidate(ctx, p.ID)
	}
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, postCacheKeyPrefix+id.String()); err != nil {
		log.Warn().Err(err).Str("post_id", id.String()).Msg("post cache invalidation failed")
	}
}
