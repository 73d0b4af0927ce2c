package dashboard

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Akkadate/gdm-app-sub001/alerts"
	"github.com/Akkadate/gdm-app-sub001/config"
	"github.com/Akkadate/gdm-app-sub001/errors"
	"github.com/Akkadate/gdm-app-sub001/risk"
)

type service struct {
	patients     PatientRepository
	appointments AppointmentRepository
	readings     ReadingRepository
	ranker       *alerts.Ranker
	cfg          *config.Analytics
	logger       *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(patients PatientRepository, appointments AppointmentRepository, readings ReadingRepository, ranker *alerts.Ranker, cfg *config.Analytics, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		patients:     patients,
		appointments: appointments,
		readings:     readings,
		ranker:       ranker,
		cfg:          cfg,
		logger:       logger,
	}, nil
}

// Overview fetches the risk levels, appointment counts and alert events
// concurrently. The overview fails as a whole if any fetch fails.
func (s *service) Overview(ctx context.Context, from time.Time, to time.Time) (*Overview, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: period end %s is before start %s", errors.InvalidInput, to.Format(time.DateOnly), from.Format(time.DateOnly))
	}

	var levels []risk.Level
	var counts AppointmentCounts
	var glucoseEvents []alerts.GlucoseEvent
	var appointmentEvents []alerts.AppointmentEvent
	limit := s.cfg.AlertFeedLimit

	g, grpCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		levels, err = s.patients.ListRiskLevels(grpCtx)
		return s.branchError("riskLevels", err)
	})
	g.Go(func() error {
		var err error
		counts, err = s.appointments.CountByStatus(grpCtx, from, to)
		return s.branchError("appointmentCounts", err)
	})
	g.Go(func() error {
		var err error
		appointmentEvents, err = s.appointments.ListMissed(grpCtx, from, to, limit)
		return s.branchError("missedAppointments", err)
	})
	g.Go(func() error {
		var err error
		glucoseEvents, err = s.readings.ListOutOfRange(grpCtx, from, to, limit)
		return s.branchError("outOfRangeReadings", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	feed, err := s.ranker.Rank(glucoseEvents, appointmentEvents, limit)
	if err != nil {
		s.logger.Warnw("unable to rank dashboard alerts", zap.Error(err))
		return nil, err
	}

	distribution := risk.Distribution(levels)
	return &Overview{
		From:          from,
		To:            to,
		TotalPatients: distribution.Total(),
		RiskLevels:    distribution,
		Appointments:  completeCounts(counts),
		Alerts:        feed,
	}, nil
}

func (s *service) branchError(branch string, err error) error {
	if err != nil {
		s.logger.Warnw("unable to fetch dashboard data", "branch", branch, zap.Error(err))
	}
	return err
}

func completeCounts(counts AppointmentCounts) AppointmentCounts {
	result := make(AppointmentCounts, len(AppointmentStatuses))
	for _, status := range AppointmentStatuses {
		result[status] = counts[status]
	}
	return result
}
