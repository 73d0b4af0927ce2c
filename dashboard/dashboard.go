// Package dashboard assembles the clinic overview from independent
// collaborator fetches.
package dashboard

import (
	"context"
	"time"

	"github.com/Akkadate/gdm-app-sub001/alerts"
	"github.com/Akkadate/gdm-app-sub001/risk"
)

type Service interface {
	Overview(ctx context.Context, from time.Time, to time.Time) (*Overview, error)
}

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusMissed    AppointmentStatus = "missed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusCompleted,
	AppointmentStatusMissed,
	AppointmentStatusCancelled,
}

// AppointmentCounts is the number of appointments per status in the period.
// Every status is present.
type AppointmentCounts map[AppointmentStatus]int

type Overview struct {
	From          time.Time         `json:"from"`
	To            time.Time         `json:"to"`
	TotalPatients int               `json:"totalPatients"`
	RiskLevels    risk.Counts       `json:"riskLevels"`
	Appointments  AppointmentCounts `json:"appointments"`
	Alerts        []alerts.Alert    `json:"alerts"`
}
