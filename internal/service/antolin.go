package service

import (
	"context"

	"gssb-library-backend/internal/domain"
	"gssb-library-backend/internal/repository"
)

type antolinService struct {
	antolinRepo repository.AntolinRepository
}

func NewAntolinService(antolinRepo repository.AntolinRepository) AntolinService {
	return &antolinService{antolinRepo: antolinRepo}
}

func (s *antolinService) Get(ctx context.Context, isbn13 string) (*domain.AntolinEntry, error) {
	entry, err := s.antolinRepo.Get(ctx, isbn13)
	if err != nil {
		return nil, err
	}
	entry.DeriveLink()
	return entry, nil
}
