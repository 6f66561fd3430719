package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared"
)

type postService struct {
	repo post.Repository
}

func NewPostService(repo post.Repository) post.Service {
	return &postService{repo: repo}
}

func (s *postService) Create(ctx context.Context, req *post.CreatePostRequest) (*post.Post, error) {
	p := req.ToEntity()

	if err := p.Validate(); err != nil {
		log.Debug().Err(err).Msg("post rejected by validation")
		return nil, err
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		log.Error().Err(err).Msg("post create failed")
		return nil, err
	}

	log.Info().
		Str("post_id", created.ID.String()).
		Str("category", created.Category).
		Msg("post created")
	return created, nil
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	if id == uuid.Nil {
		return nil, post.ErrPostNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *postService) List(ctx context.Context, filter post.PostFilter) ([]post.Post, int64, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *postService) Update(ctx context.Context, id uuid.UUID, req *post.UpdatePostRequest) (*post.Post, error) {
	if id == uuid.Nil {
		return nil, post.ErrPostNotFound
	}

	updated, err := s.repo.Update(ctx, id, func(p *post.Post) error {
		req.ApplyToEntity(p)
		return p.Validate()
	})
	switch {
	case err == nil:
	case shared.IsValidationError(err):
		log.Debug().Err(err).Str("post_id", id.String()).Msg("post update rejected by validation")
		return nil, err
	case errors.Is(err, post.ErrPostNotFound):
		return nil, err
	default:
		log.Error().Err(err).Str("post_id", id.String()).Msg("post update failed")
		return nil, err
	}

	log.Info().Str("post_id", updated.ID.String()).Msg("post updated")
	return updated, nil
}

func (s *postService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return post.ErrPostNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("post_id", id.String()).Msg("post deleted")
	return nil
}
