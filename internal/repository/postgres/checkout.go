package postgres

import (
	"context"
	"time"

	"gssb-library-backend/internal/domain"
	"gssb-library-backend/internal/entity"
	"gssb-library-backend/internal/repository"
)

type checkoutRepository struct {
	entities *entity.Store
}

func NewCheckoutRepository(entities *entity.Store) repository.CheckoutRepository {
	return &checkoutRepository{entities: entities}
}

func (r *checkoutRepository) Find(ctx context.Context, barcode string) (*domain.Checkout, error) {
	co := &domain.Checkout{}
	found, err := r.entities.Find(ctx, checkoutSchema, barcode, co)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return co, nil
}

func (r *checkoutRepository) Create(ctx context.Context, co *domain.Checkout) error {
	query := `INSERT INTO "out" (borrowernumber, barcode, checkout_date, date_due, returndate, renewals, fine_due_cents, fine_paid_cents)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.entities.DB().QueryRowContext(ctx, query,
		co.BorrowerNumber, co.Barcode, co.CheckoutDate, co.DateDue,
		co.ReturnDate, co.Renewals, co.FineDueCents, co.FinePaidCents,
	).Scan(&co.ID)
}

func (r *checkoutRepository) UpdateDateDue(ctx context.Context, id int64, dateDue time.Time) error {
	query := `UPDATE "out" SET date_due = $1 WHERE id = $2`
	_, err := r.entities.DB().ExecContext(ctx, query, dateDue, id)
	return err
}

func (r *checkoutRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM "out" WHERE id = $1`
	_, err := r.entities.DB().ExecContext(ctx, query, id)
	return err
}

func (r *checkoutRepository) RenewAllForBorrower(ctx context.Context, borrowerNumber int32, dateDue time.Time) error {
	query := `UPDATE "out" SET date_due = $1 WHERE borrowernumber = $2`
	_, err := r.entities.DB().ExecContext(ctx, query, dateDue, borrowerNumber)
	return err
}

func (r *checkoutRepository) PayFeesForBorrower(ctx context.Context, borrowerNumber int32) error {
	query := `UPDATE "out" SET fine_paid_cents = fine_due_cents
	          WHERE fine_due_cents > fine_paid_cents AND borrowernumber = $1`
	_, err := r.entities.DB().ExecContext(ctx, query, borrowerNumber)
	return err
}

func (r *checkoutRepository) PayFee(ctx context.Context, barcode string) error {
	query := `UPDATE "out" SET fine_paid_cents = fine_due_cents WHERE barcode = $1`
	_, err := r.entities.DB().ExecContext(ctx, query, barcode)
	return err
}

// SweepFines materializes the overdue fine on every active checkout: the
// fixed amount when the due date has passed as of the given time, zero
// otherwise. Returns the number of rows written.
func (r *checkoutRepository) SweepFines(ctx context.Context, asOf time.Time, fineCents int32) (int64, error) {
	query := `UPDATE "out" SET fine_due_cents = CASE WHEN date_due < $1 THEN $2 ELSE 0 END`
	res, err := r.entities.DB().ExecContext(ctx, query, asOf, fineCents)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *checkoutRepository) FeeSummaries(ctx context.Context) ([]domain.BorrowerFeeSummary, error) {
	return feeSummaries(ctx, r.entities, `"out"`)
}

// feeSummaries runs the grouped outstanding-fee aggregation over one loan
// table. Only borrowers owing anything appear.
func feeSummaries(ctx context.Context, entities *entity.Store, table string) ([]domain.BorrowerFeeSummary, error) {
	query := `SELECT b.borrowernumber, b.surname, b.contactname, b.firstname,
	                 SUM(GREATEST(c.fine_due_cents - c.fine_paid_cents, 0)) AS fee
	          FROM borrowers b INNER JOIN ` + table + ` c ON b.borrowernumber = c.borrowernumber
	          GROUP BY b.borrowernumber, b.surname, b.contactname, b.firstname
	          HAVING SUM(GREATEST(c.fine_due_cents - c.fine_paid_cents, 0)) > 0`

	rows, err := entities.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.BorrowerFeeSummary
	for rows.Next() {
		var s domain.BorrowerFeeSummary
		if err := rows.Scan(&s.BorrowerNumber, &s.Surname, &s.ContactName, &s.FirstName, &s.FeeCents); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
