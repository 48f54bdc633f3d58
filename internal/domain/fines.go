package domain

import "time"

// OutstandingCents returns the unpaid part of a loan's fine. Overpaid rows
// count as zero, they are never refunded here.
func OutstandingCents(fineDueCents, finePaidCents int32) int32 {
	if d := fineDueCents - finePaidCents; d > 0 {
		return d
	}
	return 0
}

// TotalOutstandingCents sums the outstanding fines over a set of loan rows.
func TotalOutstandingCents(loans []CheckedOutItem) int32 {
	var total int32
	for _, l := range loans {
		total += OutstandingCents(l.Checkout.FineDueCents, l.Checkout.FinePaidCents)
	}
	return total
}

// FineOwedCents returns the fine a loan owes as of the given time: the fixed
// per-sweep amount once the due date has passed, zero before. This is a
// point-in-time snapshot; it is only materialized into fine_due by the
// explicit fee sweep, not accrued per day.
func FineOwedCents(dateDue, asOf time.Time, fineCents int32) int32 {
	if dateDue.Before(asOf) {
		return fineCents
	}
	return 0
}
