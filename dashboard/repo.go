package dashboard

import (
	"context"
	"time"

	"github.com/Akkadate/gdm-app-sub001/alerts"
	"github.com/Akkadate/gdm-app-sub001/risk"
)

//go:generate go tool mockgen -source=./repo.go -destination=./test/mock_repository.go -package test

type PatientRepository interface {
	ListRiskLevels(ctx context.Context) ([]risk.Level, error)
}

type AppointmentRepository interface {
	CountByStatus(ctx context.Context, from time.Time, to time.Time) (AppointmentCounts, error)
	ListMissed(ctx context.Context, from time.Time, to time.Time, limit int) ([]alerts.AppointmentEvent, error)
}

type ReadingRepository interface {
	ListOutOfRange(ctx context.Context, from time.Time, to time.Time, limit int) ([]alerts.GlucoseEvent, error)
}
