package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "january",
			date:     time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			expected: "15 Januari 2025",
		},
		{
			name:     "december",
			date:     time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			expected: "1 Desember 2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDate(tt.date))
		})
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, DaysUntil(now, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, DaysUntil(now, now.Add(time.Hour)))
	assert.Equal(t, 0, DaysUntil(now, now))
	assert.Equal(t, 0, DaysUntil(now, now.Add(-time.Hour)))
}

func TestBill_DueLabel(t *testing.T) {
	now := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "5 hari lagi", Bill{DueDate: time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)}.DueLabel(now))
	assert.Equal(t, "Jatuh tempo terlewat", Bill{DueDate: now}.DueLabel(now))
}

func TestPaymentStatus_Label(t *testing.T) {
	assert.Equal(t, "Lunas", PaymentPaid.Label())
	assert.Equal(t, "Pending", PaymentPending.Label())
	assert.Equal(t, "Terlambat", PaymentOverdue.Label())
}
