// Package compliance compares the number of glucose readings a patient logged
// each day with the number expected for their risk level.
package compliance

import (
	"fmt"
	"math"
	"time"

	"github.com/Akkadate/gdm-app-sub001/config"
	"github.com/Akkadate/gdm-app-sub001/errors"
	"github.com/Akkadate/gdm-app-sub001/glucose"
	"github.com/Akkadate/gdm-app-sub001/risk"
)

type Day struct {
	Date      string `json:"date"`
	Expected  int    `json:"expected"`
	Actual    int    `json:"actual"`
	Compliant bool   `json:"compliant"`
}

type Report struct {
	PatientId      string     `json:"patientId"`
	RiskLevel      risk.Level `json:"riskLevel"`
	ComplianceRate int        `json:"complianceRate"`
	CompliantDays  int        `json:"compliantDays"`
	TotalDays      int        `json:"totalDays"`
	DailyData      []Day      `json:"dailyData"`
}

type Calculator struct {
	cfg *config.Analytics
}

func NewCalculator(cfg *config.Analytics) *Calculator {
	return &Calculator{cfg: cfg}
}

// ExpectedCount is the number of readings expected per day. Unknown levels
// get the low risk expectation.
func (c *Calculator) ExpectedCount(level risk.Level) int {
	switch level {
	case risk.LevelHigh:
		return c.cfg.ExpectedDailyReadings.High
	case risk.LevelMedium:
		return c.cfg.ExpectedDailyReadings.Medium
	default:
		return c.cfg.ExpectedDailyReadings.Low
	}
}

// WindowDays returns days, or the configured default when days is not set.
func (c *Calculator) WindowDays(days int) int {
	if days <= 0 {
		return c.cfg.ComplianceWindowDays
	}
	return days
}

// Window returns the first and last calendar day of a window of days ending
// on the calendar day of today.
func Window(today time.Time, days int) (time.Time, time.Time) {
	y, m, d := today.Date()
	last := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return last.AddDate(0, 0, -(days - 1)), last
}

// Calculate builds the report for the window of days ending on the calendar
// day of today. Every day of the window is present, whether or not readings
// were logged; readings outside the window are ignored.
func (c *Calculator) Calculate(patientId string, level risk.Level, days int, today time.Time, readings []glucose.Reading) (Report, error) {
	if days < 0 {
		return Report{}, fmt.Errorf("%w: window must not be negative, got %d", errors.InvalidInput, days)
	}
	days = c.WindowDays(days)

	actual := make(map[string]int, days)
	for _, r := range readings {
		actual[r.Day()]++
	}

	expected := c.ExpectedCount(level)
	report := Report{
		PatientId: patientId,
		RiskLevel: level,
		TotalDays: days,
		DailyData: make([]Day, 0, days),
	}

	first, _ := Window(today, days)
	totalActual, totalExpected := 0, 0
	for i := 0; i < days; i++ {
		date := first.AddDate(0, 0, i).Format(time.DateOnly)
		day := Day{
			Date:     date,
			Expected: expected,
			Actual:   actual[date],
		}
		day.Compliant = day.Actual >= day.Expected
		if day.Compliant {
			report.CompliantDays++
		}

		totalActual += day.Actual
		totalExpected += day.Expected
		report.DailyData = append(report.DailyData, day)
	}

	if totalExpected > 0 {
		report.ComplianceRate = int(math.Round(100 * float64(totalActual) / float64(totalExpected)))
	}

	return report, nil
}
