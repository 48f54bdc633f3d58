package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gssb-library-backend/internal/domain"
	"gssb-library-backend/internal/entity"
)

type itemFixture struct {
	itemRepo     *MockItemRepo
	borrowerRepo *MockBorrowerRepo
	checkoutRepo *MockCheckoutRepo
	historyRepo  *MockHistoryRepo
	antolinRepo  *MockAntolinRepo
	clock        fixedClock
	svc          ItemService
}

func newItemFixture() *itemFixture {
	f := &itemFixture{
		itemRepo:     new(MockItemRepo),
		borrowerRepo: new(MockBorrowerRepo),
		checkoutRepo: new(MockCheckoutRepo),
		historyRepo:  new(MockHistoryRepo),
		antolinRepo:  new(MockAntolinRepo),
		clock:        fixedClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
	}
	f.svc = NewItemService(f.itemRepo, f.borrowerRepo, f.checkoutRepo, f.historyRepo,
		f.antolinRepo, DefaultCirculationPolicy(), f.clock)
	return f
}

func circulatingItem(barcode string) *domain.Item {
	return &domain.Item{Barcode: barcode, Title: "Momo", State: domain.ItemStateCirculating}
}

func TestItemService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("OnLoanAttachesCheckoutAndBorrower", func(t *testing.T) {
		f := newItemFixture()
		f.itemRepo.On("Get", ctx, "B100").Return(circulatingItem("B100"), nil)
		co := &domain.Checkout{ID: 42, BorrowerNumber: 7, Barcode: "B100"}
		f.checkoutRepo.On("Find", ctx, "B100").Return(co, nil)
		f.borrowerRepo.On("Get", ctx, int32(7)).Return(&domain.Borrower{BorrowerNumber: 7, Surname: "Schmidt"}, nil)

		item, err := f.svc.Get(ctx, "B100", domain.ItemDetails{})
		assert.NoError(t, err)
		assert.Equal(t, co, item.Checkout)
		assert.Equal(t, "Schmidt", item.Borrower.Surname)
	})

	t.Run("WithHistory", func(t *testing.T) {
		f := newItemFixture()
		f.itemRepo.On("Get", ctx, "B100").Return(circulatingItem("B100"), nil)
		f.checkoutRepo.On("Find", ctx, "B100").Return(nil, nil)
		f.historyRepo.On("ListForItem", ctx, "B100").Return([]domain.HistoryRecord{
			{Checkout: domain.Checkout{ID: 17}, Surname: "Weber"},
		}, nil)

		item, err := f.svc.Get(ctx, "B100", domain.ItemDetails{History: true})
		assert.NoError(t, err)
		assert.Nil(t, item.Checkout)
		assert.Len(t, item.History, 1)
	})

	t.Run("AntolinByISBN13", func(t *testing.T) {
		f := newItemFixture()
		item := circulatingItem("B100")
		item.ISBN13 = "9783123456789"
		f.itemRepo.On("Get", ctx, "B100").Return(item, nil)
		f.checkoutRepo.On("Find", ctx, "B100").Return(nil, nil)
		f.antolinRepo.On("Get", ctx, "9783123456789").Return(&domain.AntolinEntry{BookID: 555}, nil)

		got, err := f.svc.Get(ctx, "B100", domain.ItemDetails{})
		assert.NoError(t, err)
		assert.NotNil(t, got.Antolin)
		assert.Contains(t, got.Antolin.Link, "book_id=555")
	})

	t.Run("AntolinLookupFailureIsNotFatal", func(t *testing.T) {
		f := newItemFixture()
		item := circulatingItem("B100")
		item.ISBN13 = "9783123456789"
		f.itemRepo.On("Get", ctx, "B100").Return(item, nil)
		f.checkoutRepo.On("Find", ctx, "B100").Return(nil, nil)
		f.antolinRepo.On("Get", ctx, "9783123456789").Return(nil, errors.New("connection refused"))

		got, err := f.svc.Get(ctx, "B100", domain.ItemDetails{})
		assert.NoError(t, err)
		assert.Nil(t, got.Antolin)
	})

	t.Run("AntolinFallsBackToISBN10", func(t *testing.T) {
		f := newItemFixture()
		item := circulatingItem("B100")
		item.ISBN10 = "3123456789"
		f.itemRepo.On("Get", ctx, "B100").Return(item, nil)
		f.checkoutRepo.On("Find", ctx, "B100").Return(nil, nil)
		f.antolinRepo.On("FindByISBN10", ctx, "3123456789").Return(&domain.AntolinEntry{BookID: 777}, nil)

		got, err := f.svc.Get(ctx, "B100", domain.ItemDetails{})
		assert.NoError(t, err)
		assert.NotNil(t, got.Antolin)
	})
}

func TestItemService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newItemFixture()
		f.borrowerRepo.On("Get", ctx, int32(7)).Return(&domain.Borrower{BorrowerNumber: 7}, nil)
		f.itemRepo.On("Get", ctx, "B100").Return(circulatingItem("B100"), nil)
		f.checkoutRepo.On("Find", ctx, "B100").Return(nil, nil)
		f.checkoutRepo.On("Create", ctx, mock.AnythingOfType("*domain.Checkout")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Checkout).ID = 42
			}).Return(nil)

		result, err := f.svc.Checkout(ctx, "B100", 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), result.Checkout.ID)
		assert.Equal(t, f.clock.now, result.Checkout.CheckoutDate)
		assert.Equal(t, f.clock.now.AddDate(0, 0, 21), result.Checkout.DateDue)
		assert.Equal(t, result.Checkout, result.Item.Checkout)
	})

	t.Run("AlreadyCheckedOut", func(t *testing.T) {
		f := newItemFixture()
		f.borrowerRepo.On("Get", ctx, int32(7)).Return(&domain.Borrower{BorrowerNumber: 7}, nil)
		f.itemRepo.On("Get", ctx, "B100").Return(circulatingItem("B100"), nil)
		existing := &domain.Checkout{ID: 42, BorrowerNumber: 9, Barcode: "B100"}
		f.checkoutRepo.On("Find", ctx, "B100").Return(existing, nil)
		f.borrowerRepo.On("Get", ctx, int32(9)).Return(&domain.Borrower{BorrowerNumber: 9}, nil)

		_, err := f.svc.Checkout(ctx, "B100", 7)
		var already *domain.AlreadyCheckedOutError
		assert.True(t, errors.As(err, &already))
		assert.Equal(t, existing, already.Checkout)
		f.checkoutRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("NotCirculating", func(t *testing.T) {
		f := newItemFixture()
		f.borrowerRepo.On("Get", ctx, int32(7)).Return(&domain.Borrower{BorrowerNumber: 7}, nil)
		stored := &domain.Item{Barcode: "B100", State: domain.ItemStateStored}
		f.itemRepo.On("Get", ctx, "B100").Return(stored, nil)
		f.checkoutRepo.On("Find", ctx, "B100").Return(nil, nil)

		_, err := f.svc.Checkout(ctx, "B100", 7)
		var notCirc *domain.NotCirculatingError
		assert.True(t, errors.As(err, &notCirc))
		f.checkoutRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("UnknownBorrower", func(t *testing.T) {
		f := newItemFixture()
		f.borrowerRepo.On("Get", ctx, int32(99)).Return(nil, &domain.NotFoundError{Entity: "borrower", Key: int32(99)})

		_, err := f.svc.Checkout(ctx, "B100", 99)
		var nf *domain.NotFoundError
		assert.True(t, errors.As(err, &nf))
		f.itemRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestItemService_Renew(t *testing.T) {
	ctx := context.Background()

	t.Run("ExtendsDueDateOnly", func(t *testing.T) {
		f := newItemFixture()
		f.itemRepo.On("Get", ctx, "B100").Return(circulatingItem("B100"), nil)
		co := &domain.Checkout{ID: 42, BorrowerNumber: 7, Barcode: "B100", Renewals: 3}
		f.checkoutRepo.On("Find", ctx, "B100").Return(co, nil)
		f.borrowerRepo.On("Get", ctx, int32(7)).Return(&domain.Borrower{BorrowerNumber: 7}, nil)

		wantDue := f.clock.now.AddDate(0, 0, 21)
		f.checkoutRepo.On("UpdateDateDue", ctx, int64(42), wantDue).Return(nil)

		result, err := f.svc.Renew(ctx, "B100")
		assert.NoError(t, err)
		assert.Equal(t, wantDue, result.Checkout.DateDue)

		// The renewals counter stays where it was.
		assert.Equal(t, int32(3), result.Checkout.Renewals)
	})

	t.Run("NotCheckedOut", func(t *testing.T) {
		f := newItemFixture()
		f.itemRepo.On("Get", ctx, "B100").Return(circulatingItem("B100"), nil)
		f.checkoutRepo.On("Find", ctx, "B100").Return(nil, nil)

		_, err := f.svc.Renew(ctx, "B100")
		var notOut *domain.NotCheckedOutError
		assert.True(t, errors.As(err, &notOut))
		assert.Equal(t, "B100", notOut.Barcode)
	})
}

func TestItemService_Checkin(t *testing.T) {
	ctx := context.Background()

	t.Run("CopiesToHistoryBeforeRemoving", func(t *testing.T) {
		f := newItemFixture()
		f.itemRepo.On("Get", ctx, "B100").Return(circulatingItem("B100"), nil)
		co := &domain.Checkout{ID: 42, BorrowerNumber: 7, Barcode: "B100"}
		f.checkoutRepo.On("Find", ctx, "B100").Return(co, nil)
		f.borrowerRepo.On("Get", ctx, int32(7)).Return(&domain.Borrower{BorrowerNumber: 7}, nil)

		historyWritten := false
		f.historyRepo.On("Create", ctx, co).Run(func(mock.Arguments) {
			historyWritten = true
		}).Return(nil)
		f.checkoutRepo.On("Remove", ctx, int64(42)).Run(func(mock.Arguments) {
			assert.True(t, historyWritten, "active checkout removed before history copy")
		}).Return(nil)

		result, err := f.svc.Checkin(ctx, "B100")
		assert.NoError(t, err)
		assert.NotNil(t, result.Checkout.ReturnDate)
		assert.Equal(t, f.clock.now, *result.Checkout.ReturnDate)
		f.checkoutRepo.AssertExpectations(t)
		f.historyRepo.AssertExpectations(t)
	})

	t.Run("HistoryWriteFailureKeepsCheckout", func(t *testing.T) {
		f := newItemFixture()
		f.itemRepo.On("Get", ctx, "B100").Return(circulatingItem("B100"), nil)
		co := &domain.Checkout{ID: 42, BorrowerNumber: 7, Barcode: "B100"}
		f.checkoutRepo.On("Find", ctx, "B100").Return(co, nil)
		f.borrowerRepo.On("Get", ctx, int32(7)).Return(&domain.Borrower{BorrowerNumber: 7}, nil)
		f.historyRepo.On("Create", ctx, co).Return(errors.New("disk full"))

		_, err := f.svc.Checkin(ctx, "B100")
		assert.Error(t, err)
		f.checkoutRepo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("NotCheckedOut", func(t *testing.T) {
		f := newItemFixture()
		f.itemRepo.On("Get", ctx, "B100").Return(circulatingItem("B100"), nil)
		f.checkoutRepo.On("Find", ctx, "B100").Return(nil, nil)

		_, err := f.svc.Checkin(ctx, "B100")
		var notOut *domain.NotCheckedOutError
		assert.True(t, errors.As(err, &notOut))
	})
}

func TestItemService_List(t *testing.T) {
	ctx := context.Background()
	f := newItemFixture()

	items := []domain.Item{
		{Barcode: "B100", State: domain.ItemStateCirculating},
		{Barcode: "B200", State: domain.ItemStateCirculating},
	}
	f.itemRepo.On("List", ctx, mock.Anything, mock.Anything).Return(items, 2, nil)
	co := &domain.Checkout{ID: 42, Barcode: "B200"}
	f.checkoutRepo.On("Find", mock.Anything, "B100").Return(nil, nil)
	f.checkoutRepo.On("Find", mock.Anything, "B200").Return(co, nil)

	got, count, err := f.svc.List(ctx, nil, entity.ReadOptions{ReturnCount: true})
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Nil(t, got[0].Checkout)
	assert.Equal(t, co, got[1].Checkout)
}
