package risk

import (
	"fmt"
	"math"
	"time"

	"github.com/Akkadate/gdm-app-sub001/config"
	"github.com/Akkadate/gdm-app-sub001/errors"
)

type Assessor struct {
	cfg *config.Analytics
}

func NewAssessor(cfg *config.Analytics) *Assessor {
	return &Assessor{cfg: cfg}
}

// Assess computes BMI, age, risk factors, score and level. The result only
// depends on attrs, the configuration and the calendar day of now.
func (a *Assessor) Assess(attrs Attributes, now time.Time) (Assessment, error) {
	bmi, err := BMI(attrs.PrePregnancyWeight, attrs.Height)
	if err != nil {
		return Assessment{}, err
	}
	age, err := Age(attrs.DateOfBirth, now)
	if err != nil {
		return Assessment{}, err
	}

	weights := a.cfg.RiskWeights
	criteria := a.cfg.RiskCriteria

	factors := make([]string, 0, 5)
	score := 0
	add := func(tag string, weight int) {
		factors = append(factors, tag)
		score += weight
	}

	if attrs.FamilyHistoryDiabetes {
		add(FactorFamilyHistory, weights.FamilyHistory)
	}
	if attrs.PreviousGDM {
		add(FactorPreviousGDM, weights.PreviousGDM)
	}
	if attrs.PreviousMacrosomia {
		add(FactorPreviousMacrosomia, weights.PreviousMacrosomia)
	}
	if bmi != nil && *bmi >= criteria.BMI {
		add(FactorBMI30Plus, weights.BMI30Plus)
	}
	if age != nil && *age >= criteria.Age {
		add(FactorAge35Plus, weights.Age35Plus)
	}

	return Assessment{
		BMI:         bmi,
		Age:         age,
		RiskFactors: factors,
		RiskScore:   score,
		RiskLevel:   a.Level(score, attrs.PreviousGDM),
	}, nil
}

// Level maps a score to a risk level. A previous GDM diagnosis is always high
// risk, whatever the score.
func (a *Assessor) Level(score int, previousGDM bool) Level {
	if previousGDM {
		return LevelHigh
	}

	switch tiers := a.cfg.RiskTiers; {
	case score >= tiers.High:
		return LevelHigh
	case score >= tiers.Medium:
		return LevelMedium
	default:
		return LevelLow
	}
}

// BMI returns weight / height² rounded to two decimals, with height in
// centimeters. It is nil when either input is missing.
func BMI(weightKg, heightCm *float64) (*float64, error) {
	if weightKg == nil || heightCm == nil {
		return nil, nil
	}
	if err := validatePositive("prePregnancyWeight", *weightKg); err != nil {
		return nil, err
	}
	if err := validatePositive("height", *heightCm); err != nil {
		return nil, err
	}

	meters := *heightCm / 100
	bmi := math.Round(*weightKg/(meters*meters)*100) / 100
	return &bmi, nil
}

// Age returns the number of whole years between the date of birth and the
// calendar day of now. It is nil when the date of birth is missing.
func Age(dateOfBirth *time.Time, now time.Time) (*int, error) {
	if dateOfBirth == nil {
		return nil, nil
	}

	dob := *dateOfBirth
	if dob.IsZero() {
		return nil, nil
	}

	y, m, d := now.Date()
	by, bm, bd := dob.Date()
	if by > y || (by == y && (bm > m || (bm == m && bd > d))) {
		return nil, fmt.Errorf("%w: date of birth %s is in the future", errors.InvalidInput, dob.Format(time.DateOnly))
	}

	age := y - by
	if m < bm || (m == bm && d < bd) {
		age--
	}
	return &age, nil
}

func validatePositive(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return fmt.Errorf("%w: %s must be a positive number, got %v", errors.InvalidInput, field, value)
	}
	return nil
}
