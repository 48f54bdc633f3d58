package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"gssb-library-backend/internal/domain"
	"gssb-library-backend/internal/entity"
)

// fixedClock pins time for deterministic due dates.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// MockBorrowerRepo
type MockBorrowerRepo struct {
	mock.Mock
}

func (m *MockBorrowerRepo) Get(ctx context.Context, borrowerNumber int32) (*domain.Borrower, error) {
	args := m.Called(ctx, borrowerNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrower), args.Error(1)
}
func (m *MockBorrowerRepo) Create(ctx context.Context, b *domain.Borrower) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBorrowerRepo) Update(ctx context.Context, b *domain.Borrower) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBorrowerRepo) Delete(ctx context.Context, borrowerNumber int32) error {
	args := m.Called(ctx, borrowerNumber)
	return args.Error(0)
}
func (m *MockBorrowerRepo) List(ctx context.Context, q entity.Criteria, opt entity.ReadOptions) ([]domain.Borrower, int, error) {
	args := m.Called(ctx, q, opt)
	return args.Get(0).([]domain.Borrower), args.Int(1), args.Error(2)
}
func (m *MockBorrowerRepo) MaxBorrowerNumber(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockBorrowerRepo) Checkouts(ctx context.Context, borrowerNumber int32, feesOnly bool) ([]domain.CheckedOutItem, error) {
	args := m.Called(ctx, borrowerNumber, feesOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CheckedOutItem), args.Error(1)
}
func (m *MockBorrowerRepo) History(ctx context.Context, borrowerNumber int32, feesOnly bool) ([]domain.CheckedOutItem, error) {
	args := m.Called(ctx, borrowerNumber, feesOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CheckedOutItem), args.Error(1)
}

// MockItemRepo
type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) Get(ctx context.Context, barcode string) (*domain.Item, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) Update(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) Delete(ctx context.Context, barcode string) error {
	args := m.Called(ctx, barcode)
	return args.Error(0)
}
func (m *MockItemRepo) List(ctx context.Context, q entity.Criteria, opt entity.ReadOptions) ([]domain.Item, int, error) {
	args := m.Called(ctx, q, opt)
	return args.Get(0).([]domain.Item), args.Int(1), args.Error(2)
}

// MockCheckoutRepo
type MockCheckoutRepo struct {
	mock.Mock
}

func (m *MockCheckoutRepo) Find(ctx context.Context, barcode string) (*domain.Checkout, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Checkout), args.Error(1)
}
func (m *MockCheckoutRepo) Create(ctx context.Context, co *domain.Checkout) error {
	args := m.Called(ctx, co)
	return args.Error(0)
}
func (m *MockCheckoutRepo) UpdateDateDue(ctx context.Context, id int64, dateDue time.Time) error {
	args := m.Called(ctx, id, dateDue)
	return args.Error(0)
}
func (m *MockCheckoutRepo) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCheckoutRepo) RenewAllForBorrower(ctx context.Context, borrowerNumber int32, dateDue time.Time) error {
	args := m.Called(ctx, borrowerNumber, dateDue)
	return args.Error(0)
}
func (m *MockCheckoutRepo) PayFeesForBorrower(ctx context.Context, borrowerNumber int32) error {
	args := m.Called(ctx, borrowerNumber)
	return args.Error(0)
}
func (m *MockCheckoutRepo) PayFee(ctx context.Context, barcode string) error {
	args := m.Called(ctx, barcode)
	return args.Error(0)
}
func (m *MockCheckoutRepo) SweepFines(ctx context.Context, asOf time.Time, fineCents int32) (int64, error) {
	args := m.Called(ctx, asOf, fineCents)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCheckoutRepo) FeeSummaries(ctx context.Context) ([]domain.BorrowerFeeSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BorrowerFeeSummary), args.Error(1)
}

// MockHistoryRepo
type MockHistoryRepo struct {
	mock.Mock
}

func (m *MockHistoryRepo) Create(ctx context.Context, co *domain.Checkout) error {
	args := m.Called(ctx, co)
	return args.Error(0)
}
func (m *MockHistoryRepo) ListForItem(ctx context.Context, barcode string) ([]domain.HistoryRecord, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryRecord), args.Error(1)
}
func (m *MockHistoryRepo) PayFeesForBorrower(ctx context.Context, borrowerNumber int32) error {
	args := m.Called(ctx, borrowerNumber)
	return args.Error(0)
}
func (m *MockHistoryRepo) PayFee(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockHistoryRepo) FeeSummaries(ctx context.Context) ([]domain.BorrowerFeeSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BorrowerFeeSummary), args.Error(1)
}

// MockAntolinRepo
type MockAntolinRepo struct {
	mock.Mock
}

func (m *MockAntolinRepo) Get(ctx context.Context, isbn13 string) (*domain.AntolinEntry, error) {
	args := m.Called(ctx, isbn13)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AntolinEntry), args.Error(1)
}
func (m *MockAntolinRepo) FindByISBN10(ctx context.Context, isbn10 string) (*domain.AntolinEntry, error) {
	args := m.Called(ctx, isbn10)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AntolinEntry), args.Error(1)
}
