package schedule

import (
	"fmt"
	"time"
)

// Slot is a candidate interview interval. Intervals are half-open, so a slot
// ending at 11:00 does not conflict with one starting at 11:00.
type Slot struct {
	Start time.Time
	End   time.Time
}

// GenerateParams configures one slot generation query.
type GenerateParams struct {
	// LocalDate is the calendar day the requester wants slots for, carried in
	// the requester's timezone. Only its year, month, day and Location are
	// used.
	LocalDate time.Time

	// RangeStart and RangeEnd bound the query as UTC instants, inclusive and
	// exclusive respectively.
	RangeStart time.Time
	RangeEnd   time.Time

	// Duration is the slot length. Zero means DefaultDuration; a negative
	// value is rejected rather than returning an empty result.
	Duration time.Duration

	// Hours is the examiner's daily working window. The zero value means the
	// default 08:00-16:00 UTC window.
	Hours WorkingHours
}

// GenerateTimeSlots enumerates fixed-duration candidate slots within the
// working hours of every UTC day overlapping [RangeStart, RangeEnd), keeping
// only slots whose start instant falls on LocalDate's calendar day in
// LocalDate's timezone. A local day can straddle two UTC dates, so both UTC
// days contribute candidates.
//
// The result is ascending by start time and recomputed from scratch on every
// call. A local date with no overlap in the range yields an empty result, not
// an error.
func GenerateTimeSlots(params GenerateParams) ([]Slot, error) {
	duration := params.Duration
	if duration == 0 {
		duration = DefaultDuration
	}
	if duration < 0 {
		return nil, fmt.Errorf("%w: slot duration %s must be positive", ErrInvalidConfiguration, duration)
	}

	hours := params.Hours
	if hours == (WorkingHours{}) {
		hours = WorkingHours{StartMinuteUTC: DefaultStartMinuteUTC, EndMinuteUTC: DefaultEndMinuteUTC}
	}
	if err := hours.Validate(); err != nil {
		return nil, err
	}

	rangeStart := params.RangeStart.UTC()
	rangeEnd := params.RangeEnd.UTC()
	loc := params.LocalDate.Location()
	localYear, localMonth, localDay := params.LocalDate.Date()

	var slots []Slot
	for day := truncateToUTCDay(rangeStart); day.Before(rangeEnd); day = day.AddDate(0, 0, 1) {
		win, ok := resolveWindow(day, hours, rangeStart, rangeEnd)
		if !ok {
			continue
		}
		maxStart := win.end.Add(-duration)
		if maxStart.Before(win.start) {
			continue
		}
		for start := win.start; !start.After(maxStart); start = start.Add(duration) {
			year, month, dayOfMonth := start.In(loc).Date()
			if year != localYear || month != localMonth || dayOfMonth != localDay {
				continue
			}
			slots = append(slots, Slot{Start: start, End: start.Add(duration)})
		}
	}
	return slots, nil
}
