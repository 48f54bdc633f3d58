package repository

import (
	"context"
	"time"

	"gssb-library-backend/internal/domain"
	"gssb-library-backend/internal/entity"
)

type BorrowerRepository interface {
	Get(ctx context.Context, borrowerNumber int32) (*domain.Borrower, error)
	Create(ctx context.Context, b *domain.Borrower) error
	Update(ctx context.Context, b *domain.Borrower) error
	Delete(ctx context.Context, borrowerNumber int32) error
	List(ctx context.Context, q entity.Criteria, opt entity.ReadOptions) ([]domain.Borrower, int, error)
	MaxBorrowerNumber(ctx context.Context) (int32, error)

	// Loans of one borrower, joined with the item rows. feesOnly restricts
	// to loans with an outstanding fine.
	Checkouts(ctx context.Context, borrowerNumber int32, feesOnly bool) ([]domain.CheckedOutItem, error)
	History(ctx context.Context, borrowerNumber int32, feesOnly bool) ([]domain.CheckedOutItem, error)
}

type ItemRepository interface {
	Get(ctx context.Context, barcode string) (*domain.Item, error)
	Create(ctx context.Context, item *domain.Item) error
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, barcode string) error
	List(ctx context.Context, q entity.Criteria, opt entity.ReadOptions) ([]domain.Item, int, error)
}

type CheckoutRepository interface {
	// Find returns the active checkout of an item, or nil if there is none.
	Find(ctx context.Context, barcode string) (*domain.Checkout, error)
	Create(ctx context.Context, co *domain.Checkout) error
	UpdateDateDue(ctx context.Context, id int64, dateDue time.Time) error
	Remove(ctx context.Context, id int64) error

	RenewAllForBorrower(ctx context.Context, borrowerNumber int32, dateDue time.Time) error
	PayFeesForBorrower(ctx context.Context, borrowerNumber int32) error
	PayFee(ctx context.Context, barcode string) error
	SweepFines(ctx context.Context, asOf time.Time, fineCents int32) (int64, error)
	FeeSummaries(ctx context.Context) ([]domain.BorrowerFeeSummary, error)
}

type HistoryRepository interface {
	// Create copies a completed checkout into the history table under a
	// fresh identity.
	Create(ctx context.Context, co *domain.Checkout) error
	ListForItem(ctx context.Context, barcode string) ([]domain.HistoryRecord, error)

	PayFeesForBorrower(ctx context.Context, borrowerNumber int32) error
	PayFee(ctx context.Context, id int64) error
	FeeSummaries(ctx context.Context) ([]domain.BorrowerFeeSummary, error)
}

type AntolinRepository interface {
	Get(ctx context.Context, isbn13 string) (*domain.AntolinEntry, error)
	FindByISBN10(ctx context.Context, isbn10 string) (*domain.AntolinEntry, error)
}

type ReportRepository interface {
	// ItemUsage lists items matching the criteria whose most recent
	// checkout predates the cutoff.
	ItemUsage(ctx context.Context, q entity.Criteria, lastCheckoutBefore time.Time) ([]domain.ItemUsage, error)
}
