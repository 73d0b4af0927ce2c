package patients

import (
	"context"
	"fmt"

	"github.com/mohae/deepcopy"
	"go.uber.org/zap"

	"github.com/Akkadate/gdm-app-sub001/config"
	"github.com/Akkadate/gdm-app-sub001/errors"
	"github.com/Akkadate/gdm-app-sub001/risk"
)

type service struct {
	assessor *risk.Assessor
	repo     Repository
	clock    config.Clock
	logger   *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(assessor *risk.Assessor, repo Repository, clock config.Clock, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		assessor: assessor,
		repo:     repo,
		clock:    clock,
		logger:   logger,
	}, nil
}

func (s *service) Get(ctx context.Context, id string) (*Profile, error) {
	return s.repo.Get(ctx, id)
}

// Register creates the profile with a provisional assessment.
func (s *service) Register(ctx context.Context, profile Profile) (*Profile, error) {
	if profile.Id == "" {
		return nil, fmt.Errorf("%w: patient id is missing", errors.InvalidInput)
	}

	created := deepcopy.Copy(profile).(Profile)
	if err := s.assess(&created); err != nil {
		return nil, err
	}

	s.logger.Infow("registering patient", "patientId", created.Id, "riskLevel", created.RiskLevel, "riskScore", created.RiskScore)
	return s.repo.Create(ctx, created)
}

func (s *service) Recalculate(ctx context.Context, id string) (*Profile, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := deepcopy.Copy(*existing).(Profile)
	if err := s.assess(&updated); err != nil {
		return nil, err
	}

	s.logLevelChange(*existing, updated)
	return s.repo.Update(ctx, id, updated)
}

// UpdateAnthropometrics applies the update and reassesses the patient. The
// profile is returned as is when the update does not change anything.
func (s *service) UpdateAnthropometrics(ctx context.Context, id string, update AnthropometricUpdate) (*Profile, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !update.Changes(existing.Attributes) {
		s.logger.Debugw("anthropometric update without changes", "patientId", id)
		return existing, nil
	}

	updated := deepcopy.Copy(*existing).(Profile)
	updated.Attributes = update.Apply(updated.Attributes)
	if err := s.assess(&updated); err != nil {
		return nil, err
	}

	s.logLevelChange(*existing, updated)
	return s.repo.Update(ctx, id, updated)
}

func (s *service) assess(profile *Profile) error {
	now := s.clock()
	assessment, err := s.assessor.Assess(profile.Attributes, now)
	if err != nil {
		return err
	}
	profile.Apply(assessment, now)
	return nil
}

func (s *service) logLevelChange(before Profile, after Profile) {
	if before.RiskLevel != after.RiskLevel {
		s.logger.Infow("patient risk level changed",
			"patientId", after.Id,
			"from", before.RiskLevel,
			"to", after.RiskLevel,
			"riskScore", after.RiskScore,
		)
	}
}
