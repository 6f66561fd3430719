package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/author"
	"blog-backend/internal/shared"
)

// authorService implements author.Service
type authorService struct {
	repo author.Repository
}

// NewAuthorService creates a new author service instance.
// On create the repository doubles as the NameChecker for the uniqueness rule.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{
		repo: repo,
	}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	newAuthor := req.ToEntity()

	if err := newAuthor.Validate(ctx, s.repo); err != nil {
		logRejected(err, "create", uuid.Nil)
		return nil, err
	}

	created, err := s.repo.Create(ctx, newAuthor)
	if err != nil {
		// A concurrent insert can still win the race; storage reports it
		// as the same duplicate-name violation.
		logRejected(err, "create", uuid.Nil)
		return nil, err
	}

	log.Info().
		Str("author_id", created.ID.String()).
		Msg("author created")
	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	if id == uuid.Nil {
		return nil, author.ErrAuthorNotFound
	}

	return s.repo.GetByID(ctx, id)
}

func (s *authorService) List(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.Author, error) {
	if id == uuid.Nil {
		return nil, author.ErrAuthorNotFound
	}

	updated, err := s.repo.Update(ctx, id, func(a *author.Author, names author.NameChecker) error {
		req.ApplyToEntity(a)
		return a.Validate(ctx, names)
	})
	if err != nil {
		logRejected(err, "update", id)
		return nil, err
	}

	log.Info().
		Str("author_id", updated.ID.String()).
		Msg("author updated")
	return updated, nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return author.ErrAuthorNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("author_id", id.String()).Msg("author deleted")
	return nil
}

func logRejected(err error, op string, id uuid.UUID) {
	if shared.IsValidationError(err) {
		log.Debug().Err(err).Str("op", op).Msg("author rejected by validation")
		return
	}
	if errors.Is(err, author.ErrAuthorNotFound) {
		return
	}
	if id != uuid.Nil {
		log.Error().Err(err).Str("op", op).Str("author_id", id.String()).Msg("author write failed")
		return
	}
	log.Error().Err(err).Str("op", op).Msg("author write failed")
}
