package service

import (
	"context"
	"time"

	"gssb-library-backend/internal/domain"
	"gssb-library-backend/internal/entity"
	"gssb-library-backend/internal/repository"
)

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) ItemUsage(ctx context.Context, q entity.Criteria, lastCheckoutBefore time.Time) ([]domain.ItemUsage, error) {
	return s.reportRepo.ItemUsage(ctx, q, lastCheckoutBefore)
}
