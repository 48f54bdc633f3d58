package service

import (
	"context"
	"time"

	"gssb-library-backend/internal/domain"
	"gssb-library-backend/internal/entity"
)

// Clock is the time source injected into the circulation services so due
// dates and return dates are deterministic under test.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// CirculationPolicy holds the circulation constants consumed by the engine.
type CirculationPolicy struct {
	BorrowDays       int
	RenewalDays      int
	OverdueFineCents int32
}

func DefaultCirculationPolicy() CirculationPolicy {
	return CirculationPolicy{BorrowDays: 21, RenewalDays: 21, OverdueFineCents: 50}
}

type BorrowerService interface {
	Create(ctx context.Context, b *domain.Borrower) (*domain.Borrower, error)
	Get(ctx context.Context, borrowerNumber int32, details domain.BorrowerDetails) (*domain.Borrower, error)
	Update(ctx context.Context, b *domain.Borrower) error
	Delete(ctx context.Context, borrowerNumber int32) error
	List(ctx context.Context, q entity.Criteria, opt entity.ReadOptions) ([]domain.Borrower, int, error)
	Checkouts(ctx context.Context, borrowerNumber int32, feesOnly bool) ([]domain.CheckedOutItem, error)
	History(ctx context.Context, borrowerNumber int32, feesOnly bool) ([]domain.CheckedOutItem, error)
	Fees(ctx context.Context, borrowerNumber int32) (*domain.Fees, error)
	PayFees(ctx context.Context, borrowerNumber int32) error
	RenewAllItems(ctx context.Context, borrowerNumber int32) error
	AllFees(ctx context.Context) ([]domain.BorrowerFeeSummary, error)
}

type ItemService interface {
	Get(ctx context.Context, barcode string, details domain.ItemDetails) (*domain.Item, error)
	Create(ctx context.Context, item *domain.Item) error
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, barcode string) error
	List(ctx context.Context, q entity.Criteria, opt entity.ReadOptions) ([]domain.Item, int, error)
	Checkout(ctx context.Context, barcode string, borrowerNumber int32) (*domain.CheckoutResult, error)
	Renew(ctx context.Context, barcode string) (*domain.CheckoutResult, error)
	Checkin(ctx context.Context, barcode string) (*domain.CheckoutResult, error)
}

type CheckoutService interface {
	// UpdateFees runs the bulk fee sweep over all active checkouts as of
	// the given time, returning the number of rows written.
	UpdateFees(ctx context.Context, asOf time.Time) (int64, error)
	PayCheckoutFee(ctx context.Context, barcode string) error
	PayHistoryFee(ctx context.Context, id int64) error
}

type ReportService interface {
	ItemUsage(ctx context.Context, q entity.Criteria, lastCheckoutBefore time.Time) ([]domain.ItemUsage, error)
}

type AntolinService interface {
	Get(ctx context.Context, isbn13 string) (*domain.AntolinEntry, error)
}
