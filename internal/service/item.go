package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"gssb-library-backend/internal/domain"
	"gssb-library-backend/internal/entity"
	"gssb-library-backend/internal/logger"
	"gssb-library-backend/internal/repository"
)

type itemService struct {
	itemRepo     repository.ItemRepository
	borrowerRepo repository.BorrowerRepository
	checkoutRepo repository.CheckoutRepository
	historyRepo  repository.HistoryRepository
	antolinRepo  repository.AntolinRepository
	policy       CirculationPolicy
	clock        Clock
}

func NewItemService(
	itemRepo repository.ItemRepository,
	borrowerRepo repository.BorrowerRepository,
	checkoutRepo repository.CheckoutRepository,
	historyRepo repository.HistoryRepository,
	antolinRepo repository.AntolinRepository,
	policy CirculationPolicy,
	clock Clock,
) ItemService {
	return &itemService{
		itemRepo:     itemRepo,
		borrowerRepo: borrowerRepo,
		checkoutRepo: checkoutRepo,
		historyRepo:  historyRepo,
		antolinRepo:  antolinRepo,
		policy:       policy,
		clock:        clock,
	}
}

// Get fetches an item with its active checkout and that checkout's borrower
// attached when the item is on loan, optionally its history, and best-effort
// Antolin metadata.
func (s *itemService) Get(ctx context.Context, barcode string, details domain.ItemDetails) (*domain.Item, error) {
	item, err := s.itemRepo.Get(ctx, barcode)
	if err != nil {
		return nil, err
	}

	checkout, err := s.checkoutRepo.Find(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if checkout != nil {
		item.Checkout = checkout
		borrower, err := s.borrowerRepo.Get(ctx, checkout.BorrowerNumber)
		if err != nil {
			return nil, err
		}
		item.Borrower = borrower
	}

	if details.History {
		history, err := s.historyRepo.ListForItem(ctx, barcode)
		if err != nil {
			return nil, err
		}
		item.History = history
	}

	s.enrichAntolin(ctx, item)
	return item, nil
}

// enrichAntolin attaches catalog metadata by ISBN13, falling back to ISBN10.
// The lookup is advisory: a missing entry is expected and ignored, any other
// failure is logged and the item fetch still succeeds.
func (s *itemService) enrichAntolin(ctx context.Context, item *domain.Item) {
	if item.ISBN13 != "" {
		entry, err := s.antolinRepo.Get(ctx, item.ISBN13)
		if err != nil {
			var nf *domain.NotFoundError
			if !errors.As(err, &nf) {
				logger.Warn("antolin lookup failed", "isbn13", item.ISBN13, "error", err)
			}
			return
		}
		entry.DeriveLink()
		item.Antolin = entry
		return
	}
	if item.ISBN10 != "" {
		entry, err := s.antolinRepo.FindByISBN10(ctx, item.ISBN10)
		if err != nil {
			logger.Warn("antolin isbn10 lookup failed", "isbn10", item.ISBN10, "error", err)
			return
		}
		if entry != nil {
			entry.DeriveLink()
			item.Antolin = entry
		}
	}
}

func (s *itemService) Create(ctx context.Context, item *domain.Item) error {
	return s.itemRepo.Create(ctx, item)
}

func (s *itemService) Update(ctx context.Context, item *domain.Item) error {
	return s.itemRepo.Update(ctx, item)
}

func (s *itemService) Delete(ctx context.Context, barcode string) error {
	return s.itemRepo.Delete(ctx, barcode)
}

// List reads a filtered, paginated item page and attaches the active
// checkout of every returned row. The per-row lookups run concurrently and
// are merged back by index, so row order is preserved.
func (s *itemService) List(ctx context.Context, q entity.Criteria, opt entity.ReadOptions) ([]domain.Item, int, error) {
	items, count, err := s.itemRepo.List(ctx, q, opt)
	if err != nil {
		return nil, 0, err
	}

	checkouts := make([]*domain.Checkout, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i := range items {
		i := i
		g.Go(func() error {
			checkout, err := s.checkoutRepo.Find(gctx, items[i].Barcode)
			checkouts[i] = checkout
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	for i := range items {
		items[i].Checkout = checkouts[i]
	}
	return items, count, nil
}

// Checkout lends an item to a borrower. The borrower must exist, the item
// must not be on loan and must be circulating.
func (s *itemService) Checkout(ctx context.Context, barcode string, borrowerNumber int32) (*domain.CheckoutResult, error) {
	borrower, err := s.borrowerRepo.Get(ctx, borrowerNumber)
	if err != nil {
		return nil, err
	}

	item, err := s.Get(ctx, barcode, domain.ItemDetails{})
	if err != nil {
		return nil, err
	}
	if item.Checkout != nil {
		return nil, &domain.AlreadyCheckedOutError{Checkout: item.Checkout}
	}
	if item.State != domain.ItemStateCirculating {
		return nil, &domain.NotCirculatingError{Item: item}
	}

	now := s.clock.Now()
	checkout := &domain.Checkout{
		BorrowerNumber: borrowerNumber,
		Barcode:        barcode,
		CheckoutDate:   now,
		DateDue:        now.AddDate(0, 0, s.policy.BorrowDays),
	}
	if err := s.checkoutRepo.Create(ctx, checkout); err != nil {
		return nil, err
	}

	item.Checkout = checkout
	item.Borrower = borrower
	return &domain.CheckoutResult{Borrower: borrower, Item: item, Checkout: checkout}, nil
}

// getCheckedOut fetches an item and fails with NotCheckedOutError unless it
// has an active checkout.
func (s *itemService) getCheckedOut(ctx context.Context, barcode string) (*domain.Item, error) {
	item, err := s.Get(ctx, barcode, domain.ItemDetails{})
	if err != nil {
		return nil, err
	}
	if item.Checkout == nil {
		return nil, &domain.NotCheckedOutError{Barcode: barcode}
	}
	return item, nil
}

// Renew extends the active checkout to now + renewalDays. The renewals
// counter is intentionally not incremented.
func (s *itemService) Renew(ctx context.Context, barcode string) (*domain.CheckoutResult, error) {
	item, err := s.getCheckedOut(ctx, barcode)
	if err != nil {
		return nil, err
	}

	dateDue := s.clock.Now().AddDate(0, 0, s.policy.RenewalDays)
	if err := s.checkoutRepo.UpdateDateDue(ctx, item.Checkout.ID, dateDue); err != nil {
		return nil, err
	}
	item.Checkout.DateDue = dateDue
	return &domain.CheckoutResult{Borrower: item.Borrower, Item: item, Checkout: item.Checkout}, nil
}

// Checkin returns an item: the checkout is stamped with the return date,
// copied into history, and only after that copy committed is the active
// checkout removed. A failure between the two steps leaves a duplicate loan
// record rather than losing one.
func (s *itemService) Checkin(ctx context.Context, barcode string) (*domain.CheckoutResult, error) {
	item, err := s.getCheckedOut(ctx, barcode)
	if err != nil {
		return nil, err
	}

	checkout := item.Checkout
	now := s.clock.Now()
	checkout.ReturnDate = &now

	if err := s.historyRepo.Create(ctx, checkout); err != nil {
		return nil, err
	}
	if err := s.checkoutRepo.Remove(ctx, checkout.ID); err != nil {
		return nil, err
	}
	return &domain.CheckoutResult{Borrower: item.Borrower, Item: item, Checkout: checkout}, nil
}
