// Package alerts merges out of range glucose readings and missed appointments
// into a single feed, most recent first.
package alerts

import (
	"fmt"
	"slices"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Akkadate/gdm-app-sub001/config"
	"github.com/Akkadate/gdm-app-sub001/glucose"
	"github.com/Akkadate/gdm-app-sub001/risk"
)

type Type string

const (
	TypeGlucose     Type = "glucose"
	TypeAppointment Type = "appointment"
)

type GlucoseEvent struct {
	PatientId   string              `json:"patientId"`
	PatientName string              `json:"patientName"`
	RiskLevel   risk.Level          `json:"riskLevel"`
	Date        time.Time           `json:"date"`
	Value       float64             `json:"value"`
	ReadingType glucose.ReadingType `json:"readingType"`
}

func (e GlucoseEvent) Validate() error {
	if err := e.ReadingType.Validate(); err != nil {
		return fmt.Errorf("glucose event of patient %s: %w", e.PatientId, err)
	}
	if err := glucose.ValidateValue(e.Value); err != nil {
		return fmt.Errorf("glucose event of patient %s: %w", e.PatientId, err)
	}
	return nil
}

type AppointmentEvent struct {
	PatientId       string     `json:"patientId"`
	PatientName     string     `json:"patientName"`
	RiskLevel       risk.Level `json:"riskLevel"`
	Date            time.Time  `json:"date"`
	AppointmentType string     `json:"appointmentType,omitempty"`
}

type Alert struct {
	Type        Type       `json:"type"`
	PatientId   string     `json:"patientId"`
	PatientName string     `json:"patientName"`
	Date        time.Time  `json:"date"`
	Message     string     `json:"message"`
	RiskLevel   risk.Level `json:"riskLevel"`
}

type Ranker struct {
	cfg *config.Analytics
}

func NewRanker(cfg *config.Analytics) *Ranker {
	return &Ranker{cfg: cfg}
}

// Rank returns at most limit alerts sorted by date descending. Alerts on the
// same date keep their input order, glucose events before appointments. A
// limit of zero or less uses the configured feed limit. Glucose events with
// an unknown reading type or an impossible value are rejected.
func (r *Ranker) Rank(glucoseEvents []GlucoseEvent, appointmentEvents []AppointmentEvent, limit int) ([]Alert, error) {
	if limit <= 0 {
		limit = r.cfg.AlertFeedLimit
	}

	feed := make([]Alert, 0, len(glucoseEvents)+len(appointmentEvents))
	caser := cases.Title(language.English)
	for _, e := range glucoseEvents {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		feed = append(feed, Alert{
			Type:        TypeGlucose,
			PatientId:   e.PatientId,
			PatientName: e.PatientName,
			Date:        e.Date,
			Message:     fmt.Sprintf("%s glucose of %g %s is out of range", caser.String(string(e.ReadingType)), e.Value, glucose.Units),
			RiskLevel:   e.RiskLevel,
		})
	}
	for _, e := range appointmentEvents {
		message := "Missed appointment"
		if e.AppointmentType != "" {
			message = fmt.Sprintf("Missed %s appointment", e.AppointmentType)
		}
		feed = append(feed, Alert{
			Type:        TypeAppointment,
			PatientId:   e.PatientId,
			PatientName: e.PatientName,
			Date:        e.Date,
			Message:     message,
			RiskLevel:   e.RiskLevel,
		})
	}

	slices.SortStableFunc(feed, func(a, b Alert) int {
		return b.Date.Compare(a.Date)
	})

	if len(feed) > limit {
		feed = feed[:limit]
	}
	return feed, nil
}
