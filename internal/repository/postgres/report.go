package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"gssb-library-backend/internal/domain"
	"gssb-library-backend/internal/entity"
	"gssb-library-backend/internal/repository"
)

type reportRepository struct {
	entities *entity.Store
	dialect  goqu.DialectWrapper
}

func NewReportRepository(entities *entity.Store) repository.ReportRepository {
	return &reportRepository{entities: entities, dialect: goqu.Dialect("postgres")}
}

// ItemUsage reports items matching the criteria whose most recent checkout
// predates the cutoff. The item criteria are composed from the same
// expressions the generic item read uses, qualified for the join.
func (r *reportRepository) ItemUsage(ctx context.Context, q entity.Criteria, lastCheckoutBefore time.Time) ([]domain.ItemUsage, error) {
	exps, err := r.entities.Expressions(itemSchema, q, "i")
	if err != nil {
		return nil, err
	}

	lastCheckout := goqu.MAX(goqu.I("h.checkout_date"))
	query, args, err := r.dialect.
		From(goqu.T("items").As("i")).
		Join(goqu.T("issue_history").As("h"),
			goqu.On(goqu.I("i.barcode").Eq(goqu.I("h.barcode")))).
		Select(goqu.I("i.barcode"), goqu.I("i.title"), goqu.I("i.author"),
			lastCheckout.As("last_checkout_date")).
		Where(exps...).
		GroupBy(goqu.I("i.barcode"), goqu.I("i.title"), goqu.I("i.author")).
		Having(lastCheckout.Lt(lastCheckoutBefore)).
		Order(goqu.I("i.barcode").Asc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("building item usage query: %w", err)
	}

	var usage []domain.ItemUsage
	if err := r.entities.DB().SelectContext(ctx, &usage, query, args...); err != nil {
		return nil, err
	}
	return usage, nil
}
