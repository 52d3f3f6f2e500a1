package schedule

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func bookedAt(id string, start, end time.Time) BookedSlot {
	return BookedSlot{ID: id, Start: start, End: end, IsBooked: true, Status: StatusAccept}
}

func TestIsTimeAvailable_RejectsOverlap(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(day)
	existing := []BookedSlot{
		bookedAt("abc", day.Add(10*time.Hour), day.Add(11*time.Hour)),
	}

	if IsTimeAvailable(clock, day.Add(10*time.Hour+30*time.Minute), time.Hour, existing, "") {
		t.Fatal("10:30 overlaps the 10:00-11:00 booking, expected rejection")
	}
	// Back-to-back is fine: intervals are half-open.
	if !IsTimeAvailable(clock, day.Add(11*time.Hour), time.Hour, existing, "") {
		t.Fatal("11:00 starts exactly when the booking ends, expected acceptance")
	}
	if !IsTimeAvailable(clock, day.Add(9*time.Hour), time.Hour, existing, "") {
		t.Fatal("09:00-10:00 touches only the booking start, expected acceptance")
	}
	// A candidate that swallows the booking whole still conflicts.
	if IsTimeAvailable(clock, day.Add(9*time.Hour+30*time.Minute), 3*time.Hour, existing, "") {
		t.Fatal("candidate containing the booking expected rejection")
	}
}

func TestIsTimeAvailable_ExemptsOwnBooking(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(day)
	existing := []BookedSlot{
		bookedAt("abc", day.Add(9*time.Hour), day.Add(10*time.Hour)),
	}

	if !IsTimeAvailable(clock, day.Add(9*time.Hour), time.Hour, existing, "abc") {
		t.Fatal("requester's own booking must not block its identical candidate")
	}
	if IsTimeAvailable(clock, day.Add(9*time.Hour), time.Hour, existing, "") {
		t.Fatal("without the exemption the identical candidate must be rejected")
	}
	if IsTimeAvailable(clock, day.Add(9*time.Hour), time.Hour, existing, "other") {
		t.Fatal("an unrelated exemption id must not unblock the candidate")
	}
}

func TestIsTimeAvailable_RejectsPast(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(day.Add(12 * time.Hour))

	if IsTimeAvailable(clock, day.Add(10*time.Hour), time.Hour, nil, "") {
		t.Fatal("a start before now must be rejected even with no bookings")
	}
	// Starting exactly at now is still bookable.
	if !IsTimeAvailable(clock, day.Add(12*time.Hour), time.Hour, nil, "") {
		t.Fatal("a start equal to now must be accepted")
	}
}

func TestIsTimeAvailable_IgnoresUnbookedSlots(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(day)
	existing := []BookedSlot{
		{
			ID:          "req-1",
			Start:       day.Add(10 * time.Hour),
			End:         day.Add(11 * time.Hour),
			IsBooked:    false,
			IsRequested: true,
			Status:      StatusPending,
		},
	}

	// Pending requests do not reserve the interval.
	if !IsTimeAvailable(clock, day.Add(10*time.Hour), time.Hour, existing, "") {
		t.Fatal("an unbooked pending request must not block the candidate")
	}
}
