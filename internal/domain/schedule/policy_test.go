//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"petcare-backend/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
)

func TestCanCancel(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	leadTime := 6 * time.Hour

	cases := []struct {
		name    string
		eventAt time.Time
		errIs   error
	}{
		{name: "past event", eventAt: now.Add(-time.Minute), errIs: schedule.ErrPastEvent},
		{name: "event happening right now", eventAt: now, errIs: schedule.ErrTooSoonToCancel},
		{name: "one minute inside window", eventAt: now.Add(6*time.Hour - time.Minute), errIs: schedule.ErrTooSoonToCancel},
		{name: "5h59m away", eventAt: now.Add(5*time.Hour + 59*time.Minute), errIs: schedule.ErrTooSoonToCancel},
		// Boundary pinned deliberately: exactly the lead time allows.
		{name: "exactly 6h00m00s away", eventAt: now.Add(6 * time.Hour)},
		{name: "6h01m away", eventAt: now.Add(6*time.Hour + time.Minute)},
		{name: "far future", eventAt: now.Add(72 * time.Hour)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := schedule.CanCancel(tc.eventAt, now, leadTime)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
