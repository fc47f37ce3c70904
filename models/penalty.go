package models

import "time"

// DefaultLateFeePerDay is the per-day late fee applied when no rate is
// configured, in whole currency units.
const DefaultLateFeePerDay = 50.0

// DefaultLoanPeriod is how long a copy may be kept before it is overdue.
const DefaultLoanPeriod = 14 * 24 * time.Hour

// Penalty returns the late fee owed when a rental due at dueAt is returned
// at returnedAt. Only whole days count: a return 23h59m past due owes
// nothing, exactly on the due date owes nothing, N full days late owes
// N * ratePerDay.
func Penalty(dueAt, returnedAt time.Time, ratePerDay float64) float64 {
	if !returnedAt.After(dueAt) {
		return 0
	}
	daysLate := int(returnedAt.Sub(dueAt) / (24 * time.Hour))
	return float64(daysLate) * ratePerDay
}
