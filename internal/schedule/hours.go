package schedule

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfiguration marks a malformed working-hours window or slot
// duration. ErrInvalidArgument marks booking input that cannot be normalized.
// Both wrap the underlying detail so callers can match with errors.Is.
var (
	ErrInvalidConfiguration = errors.New("invalid scheduling configuration")
	ErrInvalidArgument      = errors.New("invalid slot input")
)

const minutesPerDay = 24 * 60

// Defaults applied when the caller leaves the corresponding
// GenerateParams field zero.
const (
	DefaultDuration       = 30 * time.Minute
	DefaultStartMinuteUTC = 8 * 60
	DefaultEndMinuteUTC   = 16 * 60
)

// WorkingHours is the examiner's daily working window expressed as minutes
// from UTC midnight. The window is half-open: work runs from StartMinuteUTC
// up to but not including EndMinuteUTC. EndMinuteUTC may exceed 1440 when
// the window crosses UTC midnight.
type WorkingHours struct {
	StartMinuteUTC int
	EndMinuteUTC   int
}

func NewWorkingHours(startMinute, endMinute int) (WorkingHours, error) {
	hours := WorkingHours{StartMinuteUTC: startMinute, EndMinuteUTC: endMinute}
	if err := hours.Validate(); err != nil {
		return WorkingHours{}, err
	}
	return hours, nil
}

func (h WorkingHours) Validate() error {
	if h.StartMinuteUTC < 0 || h.StartMinuteUTC >= minutesPerDay {
		return fmt.Errorf("%w: start minute %d outside the UTC day", ErrInvalidConfiguration, h.StartMinuteUTC)
	}
	if h.EndMinuteUTC <= h.StartMinuteUTC {
		return fmt.Errorf("%w: end minute %d not after start minute %d", ErrInvalidConfiguration, h.EndMinuteUTC, h.StartMinuteUTC)
	}
	return nil
}

// window is one UTC day's working span clamped to the requested query range.
type window struct {
	start time.Time
	end   time.Time
}

// resolveWindow intersects the working window of the UTC day beginning at
// utcDayStart with [rangeStart, rangeEnd). The second return is false when
// the intersection is empty.
func resolveWindow(utcDayStart time.Time, hours WorkingHours, rangeStart, rangeEnd time.Time) (window, bool) {
	workStart := utcDayStart.Add(time.Duration(hours.StartMinuteUTC) * time.Minute)
	workEnd := utcDayStart.Add(time.Duration(hours.EndMinuteUTC) * time.Minute)

	effectiveStart := workStart
	if rangeStart.After(effectiveStart) {
		effectiveStart = rangeStart
	}
	effectiveEnd := workEnd
	if rangeEnd.Before(effectiveEnd) {
		effectiveEnd = rangeEnd
	}
	if !effectiveEnd.After(effectiveStart) {
		return window{}, false
	}
	return window{start: effectiveStart, end: effectiveEnd}, true
}

func truncateToUTCDay(value time.Time) time.Time {
	value = value.UTC()
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}
