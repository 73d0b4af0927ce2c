// Package risk stratifies a pregnant patient's gestational diabetes risk from
// their clinical attributes.
package risk

import (
	"fmt"
	"time"

	"github.com/Akkadate/gdm-app-sub001/errors"
)

type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Levels in ascending order of risk.
var Levels = []Level{LevelLow, LevelMedium, LevelHigh}

func ParseLevel(value string) (Level, error) {
	for _, l := range Levels {
		if string(l) == value {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unknown risk level %q", errors.InvalidInput, value)
}

// Risk factor tags, in the order they are evaluated.
const (
	FactorFamilyHistory      = "familyHistory"
	FactorPreviousGDM        = "previousGDM"
	FactorPreviousMacrosomia = "previousMacrosomia"
	FactorBMI30Plus          = "bmi30plus"
	FactorAge35Plus          = "age35plus"
)

// Attributes are the clinical inputs of an assessment. Weight is in
// kilograms and height in centimeters. Nil values are missing data.
type Attributes struct {
	DateOfBirth           *time.Time `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	PrePregnancyWeight    *float64   `json:"prePregnancyWeight,omitempty" bson:"prePregnancyWeight,omitempty"`
	Height                *float64   `json:"height,omitempty" bson:"height,omitempty"`
	FamilyHistoryDiabetes bool       `json:"familyHistoryDiabetes" bson:"familyHistoryDiabetes"`
	PreviousGDM           bool       `json:"previousGdm" bson:"previousGdm"`
	PreviousMacrosomia    bool       `json:"previousMacrosomia" bson:"previousMacrosomia"`
}

type Assessment struct {
	BMI         *float64 `json:"bmi"`
	Age         *int     `json:"age"`
	RiskFactors []string `json:"riskFactors"`
	RiskScore   int      `json:"riskScore"`
	RiskLevel   Level    `json:"riskLevel"`
}

// Counts is the number of patients per risk level. Every level is present.
type Counts map[Level]int

func Distribution(levels []Level) Counts {
	counts := make(Counts, len(Levels))
	for _, l := range Levels {
		counts[l] = 0
	}
	for _, l := range levels {
		if _, ok := counts[l]; ok {
			counts[l]++
		}
	}
	return counts
}

func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}
