package glucose

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Akkadate/gdm-app-sub001/errors"
)

type Service interface {
	Create(ctx context.Context, reading Reading) (*Reading, error)
	Update(ctx context.Context, id string, update ReadingUpdate) (*Reading, error)
}

// ReadingUpdate holds the attributes to change. The out of range flag is not
// part of it because it is always derived.
type ReadingUpdate struct {
	ReadingDate  *time.Time   `json:"readingDate,omitempty"`
	ReadingTime  *string      `json:"readingTime,omitempty"`
	ReadingType  *ReadingType `json:"readingType,omitempty"`
	GlucoseValue *float64     `json:"glucoseValue,omitempty"`
	Notes        *string      `json:"notes,omitempty"`
}

func (u ReadingUpdate) Apply(reading Reading) Reading {
	if u.ReadingDate != nil {
		reading.ReadingDate = *u.ReadingDate
	}
	if u.ReadingTime != nil {
		reading.ReadingTime = *u.ReadingTime
	}
	if u.ReadingType != nil {
		reading.ReadingType = *u.ReadingType
	}
	if u.GlucoseValue != nil {
		reading.GlucoseValue = *u.GlucoseValue
	}
	if u.Notes != nil {
		reading.Notes = u.Notes
	}
	return reading
}

type service struct {
	classifier *Classifier
	repo       Repository
	targets    TargetRepository
	logger     *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(classifier *Classifier, repo Repository, targets TargetRepository, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		classifier: classifier,
		repo:       repo,
		targets:    targets,
		logger:     logger,
	}, nil
}

func (s *service) Create(ctx context.Context, reading Reading) (*Reading, error) {
	if reading.PatientId == "" {
		return nil, fmt.Errorf("%w: patient id is missing", errors.InvalidInput)
	}

	classified, err := s.classify(ctx, reading)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, classified)
}

func (s *service) Update(ctx context.Context, id string, update ReadingUpdate) (*Reading, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	classified, err := s.classify(ctx, update.Apply(*existing))
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, classified)
}

func (s *service) classify(ctx context.Context, reading Reading) (Reading, error) {
	targets, err := s.targets.ListTargets(ctx, reading.PatientId)
	if err != nil {
		return reading, err
	}

	classified, classification, err := s.classifier.ClassifyReading(reading, targets)
	if err != nil {
		return reading, err
	}
	if classified.OutOfRange {
		s.logger.Infow("glucose reading out of range",
			"patientId", classified.PatientId,
			"readingType", classified.ReadingType,
			"status", classification.Status,
			"low", classification.Range.Low,
			"high", classification.Range.High,
		)
	}
	return classified, nil
}
