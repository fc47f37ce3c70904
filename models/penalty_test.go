package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/the1kimko/book-rental-management-system/models"
)

func Test_Penalty(t *testing.T) {
	due := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		returnedAt time.Time
		rate       float64
		want       float64
	}{
		{
			name:       "returned_early_owes_nothing",
			returnedAt: due.Add(-48 * time.Hour),
			rate:       50,
			want:       0,
		},
		{
			name:       "returned_exactly_on_due_date_owes_nothing",
			returnedAt: due,
			rate:       50,
			want:       0,
		},
		{
			name:       "partial_day_late_floors_to_zero",
			returnedAt: due.Add(23*time.Hour + 59*time.Minute),
			rate:       50,
			want:       0,
		},
		{
			name:       "one_full_day_late",
			returnedAt: due.Add(24 * time.Hour),
			rate:       50,
			want:       50,
		},
		{
			name:       "one_day_and_change_still_one_day",
			returnedAt: due.Add(25 * time.Hour),
			rate:       50,
			want:       50,
		},
		{
			name:       "ten_days_late",
			returnedAt: due.Add(10 * 24 * time.Hour),
			rate:       50,
			want:       500,
		},
		{
			name:       "custom_rate",
			returnedAt: due.Add(3 * 24 * time.Hour),
			rate:       12.5,
			want:       37.5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, models.Penalty(due, tc.returnedAt, tc.rate))
		})
	}
}
