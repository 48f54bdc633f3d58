package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"gssb-library-backend/internal/entity"
	"gssb-library-backend/internal/repository"
)

type Store struct {
	entities *entity.Store
	repository.BorrowerRepository
	repository.ItemRepository
	repository.CheckoutRepository
	repository.HistoryRepository
	repository.AntolinRepository
	repository.ReportRepository
}

func NewStore(db *sql.DB) *Store {
	entities := entity.NewStore(db)
	return &Store{
		entities:           entities,
		BorrowerRepository: NewBorrowerRepository(entities),
		ItemRepository:     NewItemRepository(entities),
		CheckoutRepository: NewCheckoutRepository(entities),
		HistoryRepository:  NewHistoryRepository(entities),
		AntolinRepository:  NewAntolinRepository(entities),
		ReportRepository:   NewReportRepository(entities),
	}
}

// Entities exposes the generic store, mainly for tests.
func (s *Store) Entities() *entity.Store { return s.entities }
