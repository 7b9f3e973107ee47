package schedule

import (
	"errors"
	"time"
)

var (
	ErrPastEvent       = errors.New("cannot cancel past events")
	ErrTooSoonToCancel = errors.New("event is too soon to cancel")
)

// CanCancel is the self-service cancellation decision. Given the event time,
// the current time and the configured lead time it returns nil when the
// caller may cancel, ErrPastEvent for events already in the past and
// ErrTooSoonToCancel inside the lead-time window.
//
// The boundary is inclusive: delta == leadTime allows cancellation.
func CanCancel(eventAt, now time.Time, leadTime time.Duration) error {
	delta := eventAt.Sub(now)
	if delta < 0 {
		return ErrPastEvent
	}
	if delta < leadTime {
		return ErrTooSoonToCancel
	}
	return nil
}
