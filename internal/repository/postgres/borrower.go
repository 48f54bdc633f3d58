package postgres

import (
	"context"
	"fmt"

	"gssb-library-backend/internal/domain"
	"gssb-library-backend/internal/entity"
	"gssb-library-backend/internal/repository"
)

type borrowerRepository struct {
	entities *entity.Store
}

func NewBorrowerRepository(entities *entity.Store) repository.BorrowerRepository {
	return &borrowerRepository{entities: entities}
}

func (r *borrowerRepository) Get(ctx context.Context, borrowerNumber int32) (*domain.Borrower, error) {
	b := &domain.Borrower{}
	if err := r.entities.Get(ctx, borrowerSchema, borrowerNumber, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *borrowerRepository) Create(ctx context.Context, b *domain.Borrower) error {
	return r.entities.Create(ctx, borrowerSchema, borrowerRecord(b))
}

func (r *borrowerRepository) Update(ctx context.Context, b *domain.Borrower) error {
	rec := borrowerRecord(b)
	delete(rec, "borrowernumber")
	return r.entities.Update(ctx, borrowerSchema, b.BorrowerNumber, rec)
}

func (r *borrowerRepository) Delete(ctx context.Context, borrowerNumber int32) error {
	return r.entities.Remove(ctx, borrowerSchema, borrowerNumber)
}

func (r *borrowerRepository) List(ctx context.Context, q entity.Criteria, opt entity.ReadOptions) ([]domain.Borrower, int, error) {
	var borrowers []domain.Borrower
	count, err := r.entities.Read(ctx, borrowerSchema, q, opt, &borrowers)
	if err != nil {
		return nil, 0, err
	}
	return borrowers, count, nil
}

func (r *borrowerRepository) MaxBorrowerNumber(ctx context.Context) (int32, error) {
	var max int32
	query := `SELECT COALESCE(MAX(borrowernumber), 0) FROM borrowers`
	if err := r.entities.DB().GetContext(ctx, &max, query); err != nil {
		return 0, fmt.Errorf("reading max borrowernumber: %w", err)
	}
	return max, nil
}

func (r *borrowerRepository) Checkouts(ctx context.Context, borrowerNumber int32, feesOnly bool) ([]domain.CheckedOutItem, error) {
	return r.loans(ctx, `"out"`, borrowerNumber, feesOnly)
}

func (r *borrowerRepository) History(ctx context.Context, borrowerNumber int32, feesOnly bool) ([]domain.CheckedOutItem, error) {
	return r.loans(ctx, "issue_history", borrowerNumber, feesOnly)
}

// loans joins the given loan table (active checkouts or history) with the
// item rows for one borrower.
func (r *borrowerRepository) loans(ctx context.Context, table string, borrowerNumber int32, feesOnly bool) ([]domain.CheckedOutItem, error) {
	query := `SELECT ` + checkedOutItemColumns + `
	          FROM items i INNER JOIN ` + table + ` c ON i.barcode = c.barcode
	          WHERE c.borrowernumber = $1`
	if feesOnly {
		query += " AND c.fine_due_cents > c.fine_paid_cents"
	}
	query += " ORDER BY c.checkout_date DESC, c.id DESC"

	rows, err := r.entities.DB().QueryContext(ctx, query, borrowerNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []domain.CheckedOutItem
	for rows.Next() {
		var l domain.CheckedOutItem
		if err := scanCheckedOutItem(rows, &l); err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

const checkedOutItemColumns = `i.barcode, i.title, i.author, i.description, i.subject,
	i.publicationyear, i.publishercode, i.age, i.media, i.seriestitle,
	i.classification, i.itemnotes, i.replacementprice_cents, i.state,
	i.antolin_sticker, i.isbn10, i.isbn13,
	c.id, c.borrowernumber, c.barcode, c.checkout_date, c.date_due,
	c.returndate, c.renewals, c.fine_due_cents, c.fine_paid_cents`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCheckedOutItem(row rowScanner, l *domain.CheckedOutItem) error {
	return row.Scan(
		&l.Item.Barcode, &l.Item.Title, &l.Item.Author, &l.Item.Description, &l.Item.Subject,
		&l.Item.PublicationYear, &l.Item.PublisherCode, &l.Item.Age, &l.Item.Media, &l.Item.SeriesTitle,
		&l.Item.Classification, &l.Item.ItemNotes, &l.Item.ReplacementPriceCents, &l.Item.State,
		&l.Item.AntolinSticker, &l.Item.ISBN10, &l.Item.ISBN13,
		&l.Checkout.ID, &l.Checkout.BorrowerNumber, &l.Checkout.Barcode, &l.Checkout.CheckoutDate, &l.Checkout.DateDue,
		&l.Checkout.ReturnDate, &l.Checkout.Renewals, &l.Checkout.FineDueCents, &l.Checkout.FinePaidCents,
	)
}

func borrowerRecord(b *domain.Borrower) map[string]any {
	return map[string]any{
		"borrowernumber": b.BorrowerNumber,
		"cardnumber":     b.CardNumber,
		"firstname":      b.FirstName,
		"contactname":    b.ContactName,
		"surname":        b.Surname,
		"streetaddress":  b.StreetAddress,
		"city":           b.City,
		"zipcode":        b.Zipcode,
		"phone":          b.Phone,
		"emailaddress":   b.EmailAddress,
		"emailaddress_2": b.EmailAddress2,
		"state":          b.State,
	}
}
