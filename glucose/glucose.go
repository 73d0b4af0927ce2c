// Package glucose models self-monitored blood glucose readings and classifies
// them against the clinical thresholds of their meal context.
package glucose

import (
	"fmt"
	"math"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Akkadate/gdm-app-sub001/errors"
)

const Units = "mg/dL"

type ReadingType string

const (
	ReadingTypeFasting  ReadingType = "fasting"
	ReadingTypePreMeal  ReadingType = "pre-meal"
	ReadingTypePostMeal ReadingType = "post-meal"
	ReadingTypeBedtime  ReadingType = "bedtime"
)

var readingTypes = mapset.NewSet(
	ReadingTypeFasting,
	ReadingTypePreMeal,
	ReadingTypePostMeal,
	ReadingTypeBedtime,
)

// ReadingTypes returns the supported reading types in display order.
func ReadingTypes() []ReadingType {
	return []ReadingType{ReadingTypeFasting, ReadingTypePreMeal, ReadingTypePostMeal, ReadingTypeBedtime}
}

func (r ReadingType) Validate() error {
	if !readingTypes.Contains(r) {
		return fmt.Errorf("%w: unknown reading type %q", errors.InvalidInput, r)
	}
	return nil
}

// Bucket is the meal context a patient specific target applies to.
type Bucket string

const (
	BucketPreMeal  Bucket = "pre-meal"
	BucketPostMeal Bucket = "post-meal"
)

// BucketOf maps any reading or target type to its meal bucket. Types
// mentioning "post" or "after" are post-meal, everything else is pre-meal.
func BucketOf(value string) Bucket {
	v := strings.ToLower(value)
	if strings.Contains(v, "post") || strings.Contains(v, "after") {
		return BucketPostMeal
	}
	return BucketPreMeal
}

type Status string

const (
	StatusLow    Status = "low"
	StatusNormal Status = "normal"
	StatusHigh   Status = "high"
)

type Reading struct {
	Id           *primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PatientId    string              `json:"patientId" bson:"patientId"`
	ReadingDate  time.Time           `json:"readingDate" bson:"readingDate"`
	ReadingTime  string              `json:"readingTime,omitempty" bson:"readingTime,omitempty"`
	ReadingType  ReadingType         `json:"readingType" bson:"readingType"`
	GlucoseValue float64             `json:"glucoseValue" bson:"glucoseValue"`
	OutOfRange   bool                `json:"outOfRange" bson:"outOfRange"`
	Notes        *string             `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Day is the calendar date key of the reading. Reading dates are calendar
// dates and are never converted between timezones.
func (r Reading) Day() string {
	return r.ReadingDate.Format(time.DateOnly)
}

// Target is a patient specific range overriding the default thresholds for
// a meal bucket from its effective date on.
type Target struct {
	PatientId     string    `json:"patientId" bson:"patientId"`
	TargetType    Bucket    `json:"targetType" bson:"targetType"`
	MinValue      float64   `json:"minValue" bson:"minValue"`
	MaxValue      float64   `json:"maxValue" bson:"maxValue"`
	EffectiveDate time.Time `json:"effectiveDate" bson:"effectiveDate"`
}

func (t Target) Validate() error {
	if err := ValidateValue(t.MinValue); err != nil {
		return fmt.Errorf("%w: target min value %v is invalid", errors.InvalidInput, t.MinValue)
	}
	if err := ValidateValue(t.MaxValue); err != nil {
		return fmt.Errorf("%w: target max value %v is invalid", errors.InvalidInput, t.MaxValue)
	}
	if t.MaxValue <= t.MinValue {
		return fmt.Errorf("%w: target range [%v, %v] is empty", errors.InvalidInput, t.MinValue, t.MaxValue)
	}
	return nil
}

func ValidateValue(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return fmt.Errorf("%w: glucose value must be a positive number, got %v", errors.InvalidInput, value)
	}
	return nil
}
