package schedule

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// IsTimeAvailable reports whether an interview starting at start can be
// booked. A candidate is rejected when its start instant is already in the
// past, or when it overlaps a booked slot other than the one identified by
// exemptID (the requester's own booking during a reschedule). Pass an empty
// exemptID when the requester holds no booking.
//
// The overlap test is deterministic; the past check reads the injected clock,
// so tests supply a fake.
func IsTimeAvailable(clock clockwork.Clock, start time.Time, duration time.Duration, existing []BookedSlot, exemptID string) bool {
	if start.Before(clock.Now()) {
		return false
	}
	end := start.Add(duration)
	for _, slot := range existing {
		if !slot.IsBooked {
			continue
		}
		if exemptID != "" && slot.ID == exemptID {
			continue
		}
		// Half-open intervals: [start,end) overlaps [slot.Start,slot.End)
		// iff start < slot.End && slot.Start < end.
		if start.Before(slot.End) && slot.Start.Before(end) {
			return false
		}
	}
	return true
}
