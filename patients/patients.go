package patients

import (
	"context"
	"time"

	"github.com/Akkadate/gdm-app-sub001/risk"
)

type Service interface {
	Get(ctx context.Context, id string) (*Profile, error)
	Register(ctx context.Context, profile Profile) (*Profile, error)
	Recalculate(ctx context.Context, id string) (*Profile, error)
	UpdateAnthropometrics(ctx context.Context, id string, update AnthropometricUpdate) (*Profile, error)
}

// Profile is the patient record together with its latest risk assessment.
type Profile struct {
	Id              string  `json:"id" bson:"userId"`
	FullName        *string `json:"fullName,omitempty" bson:"fullName,omitempty"`
	risk.Attributes `bson:",inline"`

	BMI          *float64   `json:"bmi,omitempty" bson:"bmi,omitempty"`
	RiskLevel    risk.Level `json:"riskLevel" bson:"riskLevel"`
	RiskScore    int        `json:"riskScore" bson:"riskScore"`
	RiskFactors  []string   `json:"riskFactors" bson:"riskFactors"`
	AssessedTime *time.Time `json:"assessedTime,omitempty" bson:"assessedTime,omitempty"`
}

// Apply stores the outcome of an assessment on the profile.
func (p *Profile) Apply(assessment risk.Assessment, at time.Time) {
	p.BMI = assessment.BMI
	p.RiskLevel = assessment.RiskLevel
	p.RiskScore = assessment.RiskScore
	p.RiskFactors = assessment.RiskFactors
	p.AssessedTime = &at
}

// AnthropometricUpdate holds the attributes that trigger a new assessment
// when they change.
type AnthropometricUpdate struct {
	DateOfBirth        *time.Time `json:"dateOfBirth,omitempty"`
	PrePregnancyWeight *float64   `json:"prePregnancyWeight,omitempty"`
	Height             *float64   `json:"height,omitempty"`
}

// Changes reports whether applying the update would modify attrs.
func (u AnthropometricUpdate) Changes(attrs risk.Attributes) bool {
	if u.DateOfBirth != nil && (attrs.DateOfBirth == nil || !attrs.DateOfBirth.Equal(*u.DateOfBirth)) {
		return true
	}
	if u.PrePregnancyWeight != nil && (attrs.PrePregnancyWeight == nil || *attrs.PrePregnancyWeight != *u.PrePregnancyWeight) {
		return true
	}
	if u.Height != nil && (attrs.Height == nil || *attrs.Height != *u.Height) {
		return true
	}
	return false
}

func (u AnthropometricUpdate) Apply(attrs risk.Attributes) risk.Attributes {
	if u.DateOfBirth != nil {
		attrs.DateOfBirth = u.DateOfBirth
	}
	if u.PrePregnancyWeight != nil {
		attrs.PrePregnancyWeight = u.PrePregnancyWeight
	}
	if u.Height != nil {
		attrs.Height = u.Height
	}
	return attrs
}
