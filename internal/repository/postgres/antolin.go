package postgres

import (
	"context"

	"gssb-library-backend/internal/domain"
	"gssb-library-backend/internal/entity"
	"gssb-library-backend/internal/repository"
)

type antolinRepository struct {
	entities *entity.Store
}

func NewAntolinRepository(entities *entity.Store) repository.AntolinRepository {
	return &antolinRepository{entities: entities}
}

func (r *antolinRepository) Get(ctx context.Context, isbn13 string) (*domain.AntolinEntry, error) {
	entry := &domain.AntolinEntry{}
	if err := r.entities.Get(ctx, antolinSchema, isbn13, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// FindByISBN10 is the fallback lookup for items without an ISBN13. Returns
// nil without error when nothing matches.
func (r *antolinRepository) FindByISBN10(ctx context.Context, isbn10 string) (*domain.AntolinEntry, error) {
	var entries []domain.AntolinEntry
	_, err := r.entities.Read(ctx, antolinSchema,
		entity.Criteria{"isbn10": isbn10}, entity.ReadOptions{Limit: 1}, &entries)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}
