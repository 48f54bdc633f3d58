package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOutstandingCents(t *testing.T) {
	assert.Equal(t, int32(150), OutstandingCents(200, 50))
	assert.Equal(t, int32(0), OutstandingCents(50, 50))

	// Overpaid rows count as zero, never negative.
	assert.Equal(t, int32(0), OutstandingCents(50, 100))
}

func TestTotalOutstandingCents(t *testing.T) {
	loans := []CheckedOutItem{
		{Checkout: Checkout{FineDueCents: 200, FinePaidCents: 0}},
		{Checkout: Checkout{FineDueCents: 50, FinePaidCents: 50}},
		{Checkout: Checkout{FineDueCents: 50, FinePaidCents: 100}},
	}
	assert.Equal(t, int32(200), TotalOutstandingCents(loans))

	assert.Equal(t, int32(0), TotalOutstandingCents(nil))
}

func TestFineOwedCents(t *testing.T) {
	asOf := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("overdue", func(t *testing.T) {
		due := asOf.AddDate(0, 0, -1)
		assert.Equal(t, int32(50), FineOwedCents(due, asOf, 50))
	})

	t.Run("not yet due", func(t *testing.T) {
		due := asOf.AddDate(0, 0, 7)
		assert.Equal(t, int32(0), FineOwedCents(due, asOf, 50))
	})

	t.Run("due exactly now", func(t *testing.T) {
		assert.Equal(t, int32(0), FineOwedCents(asOf, asOf, 50))
	})
}

func TestDeriveCardNumber(t *testing.T) {
	b := &Borrower{BorrowerNumber: 123}
	b.DeriveCardNumber()
	assert.Equal(t, int32(100000123), b.CardNumber)
}

func TestAntolinDeriveLink(t *testing.T) {
	e := &AntolinEntry{BookID: 9876}
	e.DeriveLink()
	assert.Equal(t, "https://www.antolin.de/all/bookdetail.jsp?book_id=9876", e.Link)
}
