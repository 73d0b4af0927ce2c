// Package statistics aggregates glucose readings by reading type, calendar
// day and calendar month.
package statistics

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/Akkadate/gdm-app-sub001/errors"
	"github.com/Akkadate/gdm-app-sub001/glucose"
)

const MonthFormat = "2006-01"

// Summary of a group of readings. Average is rounded to one decimal.
type Summary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

type Averages struct {
	ByType  map[glucose.ReadingType]Summary `json:"byType"`
	Overall Summary                         `json:"overall"`
}

type DailyAverage struct {
	Date    string                          `json:"date"`
	ByType  map[glucose.ReadingType]Summary `json:"byType"`
	Overall Summary                         `json:"overall"`
}

type MonthlyBucket struct {
	Month             string  `json:"month"`
	Count             int     `json:"count"`
	Average           float64 `json:"average"`
	OutOfRange        int     `json:"outOfRange"`
	OutOfRangePercent float64 `json:"outOfRangePercent"`
	Min               float64 `json:"min"`
	Max               float64 `json:"max"`
}

type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Averages groups the readings of [start, end] by reading type. The overall
// average is weighted by the number of readings of each type.
func (a *Aggregator) Averages(readings []glucose.Reading, start, end time.Time) (Averages, error) {
	selected, err := inRange(readings, start, end)
	if err != nil {
		return Averages{}, err
	}

	groups := groupByType(selected)
	return Averages{
		ByType:  summarize(groups),
		Overall: weighted(groups),
	}, nil
}

// Daily groups the readings of [start, end] by calendar day, then by type.
// Only days with readings are returned, in ascending order.
func (a *Aggregator) Daily(readings []glucose.Reading, start, end time.Time) ([]DailyAverage, error) {
	selected, err := inRange(readings, start, end)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]glucose.Reading)
	for _, r := range selected {
		byDay[r.Day()] = append(byDay[r.Day()], r)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	slices.Sort(days)

	result := make([]DailyAverage, 0, len(days))
	for _, day := range days {
		groups := groupByType(byDay[day])
		result = append(result, DailyAverage{
			Date:    day,
			ByType:  summarize(groups),
			Overall: weighted(groups),
		})
	}
	return result, nil
}

// Monthly returns one bucket per calendar month between start and end,
// including months without readings.
func (a *Aggregator) Monthly(readings []glucose.Reading, start, end time.Time) ([]MonthlyBucket, error) {
	selected, err := inRange(readings, start, end)
	if err != nil {
		return nil, err
	}

	type monthly struct {
		acc        accumulator
		outOfRange int
	}
	byMonth := make(map[string]*monthly)
	for _, r := range selected {
		key := r.ReadingDate.Format(MonthFormat)
		m, ok := byMonth[key]
		if !ok {
			m = &monthly{}
			byMonth[key] = m
		}
		m.acc.add(r.GlucoseValue)
		if r.OutOfRange {
			m.outOfRange++
		}
	}

	months := Months(start, end)
	result := make([]MonthlyBucket, 0, len(months))
	for _, month := range months {
		bucket := MonthlyBucket{Month: month}
		if m, ok := byMonth[month]; ok {
			bucket.Count = m.acc.count
			bucket.Average = m.acc.summary().Average
			bucket.OutOfRange = m.outOfRange
			bucket.OutOfRangePercent = round1(100 * float64(m.outOfRange) / float64(m.acc.count))
			bucket.Min = m.acc.min
			bucket.Max = m.acc.max
		}
		result = append(result, bucket)
	}
	return result, nil
}

// Months lists the calendar months from the month of start to the month of
// end, inclusive.
func Months(start, end time.Time) []string {
	current := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)

	var months []string
	for !current.After(last) {
		months = append(months, current.Format(MonthFormat))
		current = current.AddDate(0, 1, 0)
	}
	return months
}

func inRange(readings []glucose.Reading, start, end time.Time) ([]glucose.Reading, error) {
	from := start.Format(time.DateOnly)
	to := end.Format(time.DateOnly)
	if from > to {
		return nil, fmt.Errorf("%w: start %s is after end %s", errors.InvalidInput, from, to)
	}

	selected := make([]glucose.Reading, 0, len(readings))
	for _, r := range readings {
		if err := validate(r); err != nil {
			return nil, err
		}
		if day := r.Day(); day >= from && day <= to {
			selected = append(selected, r)
		}
	}
	return selected, nil
}

func validate(r glucose.Reading) error {
	if err := r.ReadingType.Validate(); err != nil {
		return fmt.Errorf("reading of %s: %w", r.Day(), err)
	}
	if err := glucose.ValidateValue(r.GlucoseValue); err != nil {
		return fmt.Errorf("%s reading of %s: %w", r.ReadingType, r.Day(), err)
	}
	return nil
}

func groupByType(readings []glucose.Reading) map[glucose.ReadingType]*accumulator {
	groups := make(map[glucose.ReadingType]*accumulator)
	for _, r := range readings {
		acc, ok := groups[r.ReadingType]
		if !ok {
			acc = &accumulator{}
			groups[r.ReadingType] = acc
		}
		acc.add(r.GlucoseValue)
	}
	return groups
}

func summarize(groups map[glucose.ReadingType]*accumulator) map[glucose.ReadingType]Summary {
	result := make(map[glucose.ReadingType]Summary, len(groups))
	for readingType, acc := range groups {
		result[readingType] = acc.summary()
	}
	return result
}

// weighted combines per type averages as Σ(average × count) / Σ(count),
// which is the sum of all values over their count.
func weighted(groups map[glucose.ReadingType]*accumulator) Summary {
	overall := Summary{}
	total := 0.0
	first := true
	for _, readingType := range glucose.ReadingTypes() {
		acc, ok := groups[readingType]
		if !ok || acc.count == 0 {
			continue
		}
		total += acc.sum
		overall.Count += acc.count
		if first || acc.min < overall.Min {
			overall.Min = acc.min
		}
		if first || acc.max > overall.Max {
			overall.Max = acc.max
		}
		first = false
	}
	if overall.Count > 0 {
		overall.Average = round1(total / float64(overall.Count))
	}
	return overall
}

type accumulator struct {
	sum   float64
	count int
	min   float64
	max   float64
}

func (a *accumulator) add(value float64) {
	if a.count == 0 || value < a.min {
		a.min = value
	}
	if a.count == 0 || value > a.max {
		a.max = value
	}
	a.sum += value
	a.count++
}

func (a *accumulator) mean() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}

func (a *accumulator) summary() Summary {
	return Summary{
		Average: round1(a.mean()),
		Count:   a.count,
		Min:     a.min,
		Max:     a.max,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
