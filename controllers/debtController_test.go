package controllers

import (
	"testing"
	"time"

	"pembukuan-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatus(t *testing.T) {
	now := time.Date(2026, time.August, 14, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 1, 0)

	cases := []struct {
		name      string
		amount    float64
		remaining float64
		due       *time.Time
		want      models.DebtStatus
	}{
		{"untouched", 1000, 1000, nil, models.DebtActive},
		{"untouched with future due date", 1000, 1000, &future, models.DebtActive},
		{"partially paid", 1000, 400, nil, models.DebtPartial},
		{"fully paid", 1000, 0, nil, models.DebtPaid},
		{"paid wins over overdue", 1000, 0, &past, models.DebtPaid},
		{"past due date", 1000, 1000, &past, models.DebtOverdue},
		{"partial but overdue", 1000, 400, &past, models.DebtOverdue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, paymentStatus(tc.amount, tc.remaining, tc.due, now))
		})
	}
}
