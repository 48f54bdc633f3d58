package domain

import "time"

// Checkout is an active loan row in the `out` table. HistoryRecord carries the
// same shape once the loan is completed.
type Checkout struct {
	ID             int64      `db:"id" json:"id"`
	BorrowerNumber int32      `db:"borrowernumber" json:"borrowernumber"`
	Barcode        string     `db:"barcode" json:"barcode"`
	CheckoutDate   time.Time  `db:"checkout_date" json:"checkout_date"`
	DateDue        time.Time  `db:"date_due" json:"date_due"`
	ReturnDate     *time.Time `db:"returndate" json:"returndate"`
	Renewals       int32      `db:"renewals" json:"renewals"`
	FineDueCents   int32      `db:"fine_due_cents" json:"fine_due_cents"`
	FinePaidCents  int32      `db:"fine_paid_cents" json:"fine_paid_cents"`
}

// HistoryRecord is a completed loan as shown in an item's history view,
// including the surname of the borrower who held the item.
type HistoryRecord struct {
	Checkout
	Surname string `db:"surname" json:"surname"`
}
