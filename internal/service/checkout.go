package service

import (
	"context"
	"time"

	"gssb-library-backend/internal/repository"
)

type checkoutService struct {
	checkoutRepo repository.CheckoutRepository
	historyRepo  repository.HistoryRepository
	policy       CirculationPolicy
}

func NewCheckoutService(
	checkoutRepo repository.CheckoutRepository,
	historyRepo repository.HistoryRepository,
	policy CirculationPolicy,
) CheckoutService {
	return &checkoutService{
		checkoutRepo: checkoutRepo,
		historyRepo:  historyRepo,
		policy:       policy,
	}
}

func (s *checkoutService) UpdateFees(ctx context.Context, asOf time.Time) (int64, error) {
	return s.checkoutRepo.SweepFines(ctx, asOf, s.policy.OverdueFineCents)
}

func (s *checkoutService) PayCheckoutFee(ctx context.Context, barcode string) error {
	return s.checkoutRepo.PayFee(ctx, barcode)
}

func (s *checkoutService) PayHistoryFee(ctx context.Context, id int64) error {
	return s.historyRepo.PayFee(ctx, id)
}
