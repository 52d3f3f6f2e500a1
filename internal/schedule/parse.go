package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Booking request lifecycle states. Transitions are owned by the booking
// persistence collaborator; this package only reads them.
const (
	StatusPending = "PENDING"
	StatusAccept  = "ACCEPT"
	StatusDecline = "DECLINE"
)

// RawSlot is a booking record as delivered by the persistence collaborator.
// Timestamp fields may arrive as time.Time values, RFC 3339 strings, or raw
// bytes depending on the transport that produced them.
type RawSlot struct {
	ID                     string      `json:"id"`
	StartTime              interface{} `json:"startTime"`
	EndTime                interface{} `json:"endTime"`
	Duration               int         `json:"duration"`
	Status                 string      `json:"status"`
	IsBooked               bool        `json:"isBooked"`
	IsRequested            bool        `json:"isRequested"`
	IsCurrentUserRequested bool        `json:"isCurrentUserRequested"`
	OwnerID                string      `json:"ownerId"`
}

// BookedSlot is the canonical, normalized form of a RawSlot. Start and End
// are UTC instants; Duration is in minutes.
type BookedSlot struct {
	ID                     string
	Start                  time.Time
	End                    time.Time
	Duration               int
	Status                 string
	IsBooked               bool
	IsRequested            bool
	IsCurrentUserRequested bool
	OwnerID                string
}

// Raw converts a normalized slot back to the collaborator shape, mainly so
// normalized data can round-trip through ParseSlots unchanged.
func (s BookedSlot) Raw() RawSlot {
	return RawSlot{
		ID:                     s.ID,
		StartTime:              s.Start,
		EndTime:                s.End,
		Duration:               s.Duration,
		Status:                 s.Status,
		IsBooked:               s.IsBooked,
		IsRequested:            s.IsRequested,
		IsCurrentUserRequested: s.IsCurrentUserRequested,
		OwnerID:                s.OwnerID,
	}
}

// ParseSlots normalizes raw booking records into canonical slots sorted
// ascending by start time. Records missing an ID are assigned a fresh UUID.
// An unparseable timestamp fails the whole call; records are never dropped
// silently. Feeding normalized output back in reproduces it unchanged.
func ParseSlots(raw []RawSlot) ([]BookedSlot, error) {
	slots := make([]BookedSlot, 0, len(raw))
	for i, record := range raw {
		start, err := parseInstant(record.StartTime)
		if err != nil {
			return nil, fmt.Errorf("slot %d: start time: %w", i, err)
		}
		end, err := parseInstant(record.EndTime)
		if err != nil {
			return nil, fmt.Errorf("slot %d: end time: %w", i, err)
		}
		id := record.ID
		if id == "" {
			id = uuid.NewString()
		}
		slots = append(slots, BookedSlot{
			ID:                     id,
			Start:                  start,
			End:                    end,
			Duration:               record.Duration,
			Status:                 record.Status,
			IsBooked:               record.IsBooked,
			IsRequested:            record.IsRequested,
			IsCurrentUserRequested: record.IsCurrentUserRequested,
			OwnerID:                record.OwnerID,
		})
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})
	return slots, nil
}

func parseInstant(value interface{}) (time.Time, error) {
	switch typed := value.(type) {
	case time.Time:
		return typed.UTC(), nil
	case string:
		return parseTimestamp(typed)
	case []byte:
		return parseTimestamp(string(typed))
	default:
		if value == nil {
			return time.Time{}, fmt.Errorf("%w: timestamp is required", ErrInvalidArgument)
		}
		return time.Time{}, fmt.Errorf("%w: unsupported timestamp type %T", ErrInvalidArgument, value)
	}
}

func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: timestamp is required", ErrInvalidArgument)
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp must be RFC 3339: %v", ErrInvalidArgument, err)
	}
	return parsed.UTC(), nil
}
