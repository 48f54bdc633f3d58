package postgres

import (
	"context"

	"gssb-library-backend/internal/domain"
	"gssb-library-backend/internal/entity"
	"gssb-library-backend/internal/repository"
)

type historyRepository struct {
	entities *entity.Store
}

func NewHistoryRepository(entities *entity.Store) repository.HistoryRepository {
	return &historyRepository{entities: entities}
}

// Create copies a completed checkout into the history table. The id of the
// source checkout is not carried over; the history row gets its own.
func (r *historyRepository) Create(ctx context.Context, co *domain.Checkout) error {
	return r.entities.Create(ctx, historySchema, map[string]any{
		"borrowernumber":  co.BorrowerNumber,
		"barcode":         co.Barcode,
		"checkout_date":   co.CheckoutDate,
		"date_due":        co.DateDue,
		"returndate":      co.ReturnDate,
		"renewals":        co.Renewals,
		"fine_due_cents":  co.FineDueCents,
		"fine_paid_cents": co.FinePaidCents,
	})
}

func (r *historyRepository) ListForItem(ctx context.Context, barcode string) ([]domain.HistoryRecord, error) {
	query := `SELECT h.id, h.borrowernumber, h.barcode, h.checkout_date, h.date_due,
	                 h.returndate, h.renewals, h.fine_due_cents, h.fine_paid_cents, b.surname
	          FROM issue_history h INNER JOIN borrowers b ON h.borrowernumber = b.borrowernumber
	          WHERE h.barcode = $1
	          ORDER BY h.checkout_date DESC, h.id DESC`

	rows, err := r.entities.DB().QueryContext(ctx, query, barcode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.HistoryRecord
	for rows.Next() {
		var h domain.HistoryRecord
		if err := rows.Scan(
			&h.ID, &h.BorrowerNumber, &h.Barcode, &h.CheckoutDate, &h.DateDue,
			&h.ReturnDate, &h.Renewals, &h.FineDueCents, &h.FinePaidCents, &h.Surname,
		); err != nil {
			return nil, err
		}
		records = append(records, h)
	}
	return records, rows.Err()
}

func (r *historyRepository) PayFeesForBorrower(ctx context.Context, borrowerNumber int32) error {
	query := `UPDATE issue_history SET fine_paid_cents = fine_due_cents
	          WHERE fine_due_cents > fine_paid_cents AND borrowernumber = $1`
	_, err := r.entities.DB().ExecContext(ctx, query, borrowerNumber)
	return err
}

func (r *historyRepository) PayFee(ctx context.Context, id int64) error {
	query := `UPDATE issue_history SET fine_paid_cents = fine_due_cents WHERE id = $1`
	_, err := r.entities.DB().ExecContext(ctx, query, id)
	return err
}

func (r *historyRepository) FeeSummaries(ctx context.Context) ([]domain.BorrowerFeeSummary, error) {
	return feeSummaries(ctx, r.entities, "issue_history")
}
