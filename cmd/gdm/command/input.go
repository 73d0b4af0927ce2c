package command

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Akkadate/gdm-app-sub001/compliance"
	"github.com/Akkadate/gdm-app-sub001/config"
	"github.com/Akkadate/gdm-app-sub001/errors"
)

func readInput(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read input file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: unable to parse %s: %s", errors.InvalidInput, path, err)
	}
	return nil
}

func writeOutput(v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseDate parses a calendar date flag. An empty value returns def.
func parseDate(name string, value string, def time.Time) (time.Time, error) {
	if value == "" {
		return def, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: --%s must be a date formatted as %s", errors.InvalidInput, name, time.DateOnly)
	}
	return t, nil
}

// calendarDay returns midnight UTC of the calendar day of t in its own
// location.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dateRange resolves the --from and --to flags. The range defaults to a
// window of days ending today.
func dateRange(days int, clock config.Clock, fromValue string, toValue string) (time.Time, time.Time, error) {
	to, err := parseDate("to", toValue, calendarDay(clock()))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	first, _ := compliance.Window(to, days)
	from, err := parseDate("from", fromValue, first)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: --to %s is before --from %s", errors.InvalidInput, to.Format(time.DateOnly), from.Format(time.DateOnly))
	}
	return from, to, nil
}
