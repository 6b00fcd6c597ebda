package mutations

import "time"

// SetClock replaces the clock used for the date of payments.
func (h *Handler) SetClock(now func() time.Time) {
	h.now = now
}
