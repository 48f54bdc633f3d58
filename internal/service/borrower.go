package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"gssb-library-backend/internal/domain"
	"gssb-library-backend/internal/entity"
	"gssb-library-backend/internal/repository"
)

type borrowerService struct {
	borrowerRepo repository.BorrowerRepository
	checkoutRepo repository.CheckoutRepository
	historyRepo  repository.HistoryRepository
	policy       CirculationPolicy
	clock        Clock
}

func NewBorrowerService(
	borrowerRepo repository.BorrowerRepository,
	checkoutRepo repository.CheckoutRepository,
	historyRepo repository.HistoryRepository,
	policy CirculationPolicy,
	clock Clock,
) BorrowerService {
	return &borrowerService{
		borrowerRepo: borrowerRepo,
		checkoutRepo: checkoutRepo,
		historyRepo:  historyRepo,
		policy:       policy,
		clock:        clock,
	}
}

// Create registers a borrower. Without a supplied borrower number the next
// one is derived as 1 + max(existing). The card number is always derived
// from the borrower number. The read-then-write number assignment is racy
// under concurrent registrations; registration runs single-writer.
func (s *borrowerService) Create(ctx context.Context, b *domain.Borrower) (*domain.Borrower, error) {
	if b.BorrowerNumber == 0 {
		max, err := s.borrowerRepo.MaxBorrowerNumber(ctx)
		if err != nil {
			return nil, err
		}
		b.BorrowerNumber = max + 1
	}
	if b.CardNumber == 0 {
		b.DeriveCardNumber()
	}
	if err := s.borrowerRepo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *borrowerService) Get(ctx context.Context, borrowerNumber int32, details domain.BorrowerDetails) (*domain.Borrower, error) {
	b, err := s.borrowerRepo.Get(ctx, borrowerNumber)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	if details.Items {
		g.Go(func() error {
			items, err := s.Checkouts(gctx, borrowerNumber, false)
			b.Items = items
			return err
		})
	}
	if details.History {
		g.Go(func() error {
			history, err := s.History(gctx, borrowerNumber, false)
			b.History = history
			return err
		})
	}
	if details.Fees {
		g.Go(func() error {
			fees, err := s.Fees(gctx, borrowerNumber)
			b.Fees = fees
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *borrowerService) Update(ctx context.Context, b *domain.Borrower) error {
	if b.CardNumber == 0 {
		b.DeriveCardNumber()
	}
	return s.borrowerRepo.Update(ctx, b)
}

func (s *borrowerService) Delete(ctx context.Context, borrowerNumber int32) error {
	return s.borrowerRepo.Delete(ctx, borrowerNumber)
}

func (s *borrowerService) List(ctx context.Context, q entity.Criteria, opt entity.ReadOptions) ([]domain.Borrower, int, error) {
	return s.borrowerRepo.List(ctx, q, opt)
}

func (s *borrowerService) Checkouts(ctx context.Context, borrowerNumber int32, feesOnly bool) ([]domain.CheckedOutItem, error) {
	return s.borrowerRepo.Checkouts(ctx, borrowerNumber, feesOnly)
}

func (s *borrowerService) History(ctx context.Context, borrowerNumber int32, feesOnly bool) ([]domain.CheckedOutItem, error) {
	return s.borrowerRepo.History(ctx, borrowerNumber, feesOnly)
}

// Fees recomputes the borrower's fee aggregate from the loan rows with an
// outstanding fine, active and historical, fetched concurrently.
func (s *borrowerService) Fees(ctx context.Context, borrowerNumber int32) (*domain.Fees, error) {
	var items, history []domain.CheckedOutItem

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.Checkouts(gctx, borrowerNumber, true)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.History(gctx, borrowerNumber, true)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.Fees{
		TotalCents: domain.TotalOutstandingCents(items) + domain.TotalOutstandingCents(history),
		Items:      items,
		History:    history,
	}, nil
}

// PayFees settles every outstanding fine of the borrower through two scoped
// updates, one per loan table. It deliberately does not reuse an in-memory
// fees read; the updates see the current rows.
func (s *borrowerService) PayFees(ctx context.Context, borrowerNumber int32) error {
	if _, err := s.borrowerRepo.Get(ctx, borrowerNumber); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.checkoutRepo.PayFeesForBorrower(gctx, borrowerNumber) })
	g.Go(func() error { return s.historyRepo.PayFeesForBorrower(gctx, borrowerNumber) })
	return g.Wait()
}

// RenewAllItems pushes the due date of every active checkout of the borrower
// to now + renewalDays in one bulk update. The renewals counters are left
// untouched, matching the single-item renew. Having no checkouts is not an
// error.
func (s *borrowerService) RenewAllItems(ctx context.Context, borrowerNumber int32) error {
	dateDue := s.clock.Now().AddDate(0, 0, s.policy.RenewalDays)
	return s.checkoutRepo.RenewAllForBorrower(ctx, borrowerNumber, dateDue)
}

// AllFees builds the library-wide fee report. The two grouped aggregates run
// in parallel and are merged by borrower number: the old fee always reflects
// only the history contribution, even for borrowers present in both sets.
func (s *borrowerService) AllFees(ctx context.Context) ([]domain.BorrowerFeeSummary, error) {
	var active, past []domain.BorrowerFeeSummary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		active, err = s.checkoutRepo.FeeSummaries(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		past, err = s.historyRepo.FeeSummaries(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]domain.BorrowerFeeSummary, 0, len(active)+len(past))
	index := make(map[int32]int, len(active))
	for _, s := range active {
		s.NewFeeCents = s.FeeCents
		s.OldFeeCents = 0
		index[s.BorrowerNumber] = len(merged)
		merged = append(merged, s)
	}
	for _, s := range past {
		if i, ok := index[s.BorrowerNumber]; ok {
			merged[i].FeeCents += s.FeeCents
			merged[i].OldFeeCents = s.FeeCents
			continue
		}
		s.OldFeeCents = s.FeeCents
		s.NewFeeCents = 0
		merged = append(merged, s)
	}
	return merged, nil
}
