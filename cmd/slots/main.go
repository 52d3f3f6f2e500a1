// cmd/slots/main.go
//
// Diagnostic tool: generates interview slot candidates for one local calendar
// date and marks which of them are still bookable against an exported set of
// existing bookings. Lets support staff reproduce what a requester sees
// without going through the portals.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/medintake/examsched/internal/config"
	"github.com/medintake/examsched/internal/schedule"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	configPath := flag.String("config", getEnv("CONFIG_PATH", "config/config.yaml"), "path to config file")
	dateArg := flag.String("date", "", "local calendar date to inspect (YYYY-MM-DD)")
	tzArg := flag.String("tz", "UTC", "IANA timezone of the requester")
	durationArg := flag.Int("duration", 0, "slot duration in minutes (0 = first configured option)")
	bookingsArg := flag.String("bookings", "", "JSON file with exported bookings")
	exemptArg := flag.String("exempt", "", "booking id held by the requester, exempt from conflicts")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.App.Environment)

	if *dateArg == "" {
		log.Fatal().Msg("-date is required")
	}
	loc, err := time.LoadLocation(*tzArg)
	if err != nil {
		log.Fatal().Err(err).Str("tz", *tzArg).Msg("Unknown timezone")
	}
	localDate, err := time.ParseInLocation("2006-01-02", *dateArg, loc)
	if err != nil {
		log.Fatal().Err(err).Str("date", *dateArg).Msg("Date must be YYYY-MM-DD")
	}

	durationMinutes := *durationArg
	if durationMinutes == 0 {
		durationMinutes = cfg.DefaultDurationMinutes()
	}

	clock := clockwork.NewRealClock()
	checkLeadTime(clock, cfg, localDate)

	existing, err := loadBookings(*bookingsArg)
	if err != nil {
		log.Fatal().Err(err).Str("path", *bookingsArg).Msg("Failed to load bookings")
	}

	duration := time.Duration(durationMinutes) * time.Minute
	slots, err := schedule.GenerateTimeSlots(schedule.GenerateParams{
		LocalDate:  localDate,
		RangeStart: localDate.UTC(),
		RangeEnd:   localDate.AddDate(0, 0, 1).UTC(),
		Duration:   duration,
		Hours:      cfg.WorkingHours(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Slot generation failed")
	}

	log.Info().
		Str("date", *dateArg).
		Str("tz", *tzArg).
		Int("duration_minutes", durationMinutes).
		Int("candidates", len(slots)).
		Msg("Generated candidate slots")

	for _, slot := range slots {
		marker := "available"
		if !schedule.IsTimeAvailable(clock, slot.Start, duration, existing, *exemptArg) {
			marker = "blocked"
		}
		fmt.Printf("%s - %s (%s)  %s\n",
			slot.Start.In(loc).Format("15:04"),
			slot.End.In(loc).Format("15:04"),
			slot.Start.UTC().Format(time.RFC3339),
			marker,
		)
	}
}

func checkLeadTime(clock clockwork.Clock, cfg *config.Config, localDate time.Time) {
	now := clock.Now().In(localDate.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, localDate.Location())
	daysAhead := int(localDate.Sub(today).Hours() / 24)
	if daysAhead < cfg.Scheduling.MinDaysAhead || daysAhead > cfg.Scheduling.MaxDaysAhead {
		log.Warn().
			Int("days_ahead", daysAhead).
			Int("min", cfg.Scheduling.MinDaysAhead).
			Int("max", cfg.Scheduling.MaxDaysAhead).
			Msg("Date is outside the configured booking window; portals would not offer it")
	}
}

func loadBookings(path string) ([]schedule.BookedSlot, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bookings file: %w", err)
	}
	var raw []schedule.RawSlot
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse bookings file: %w", err)
	}
	return schedule.ParseSlots(raw)
}
