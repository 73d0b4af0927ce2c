package glucose

import (
	"time"

	"github.com/Akkadate/gdm-app-sub001/config"
)

type Classification struct {
	Status     Status       `json:"status"`
	OutOfRange bool         `json:"outOfRange"`
	Range      config.Range `json:"range"`
	// Target is set when a patient specific target was applied.
	Target *Target `json:"target,omitempty"`
}

type Classifier struct {
	thresholds config.GlucoseThresholds
}

func NewClassifier(cfg *config.Analytics) *Classifier {
	return &Classifier{thresholds: cfg.GlucoseThresholds}
}

// Classify places a value in its range. The applicable patient target for
// the reading's meal bucket wins over the configured thresholds. A zero at
// accepts targets with any effective date.
func (c *Classifier) Classify(readingType ReadingType, value float64, targets []Target, at time.Time) (Classification, error) {
	if err := readingType.Validate(); err != nil {
		return Classification{}, err
	}
	if err := ValidateValue(value); err != nil {
		return Classification{}, err
	}

	result := Classification{}
	target, err := applicableTarget(BucketOf(string(readingType)), targets, at)
	if err != nil {
		return Classification{}, err
	}
	if target != nil {
		result.Range = config.Range{Low: target.MinValue, High: target.MaxValue}
		result.Target = target
	} else {
		result.Range = c.DefaultRange(readingType)
	}

	switch {
	case value > result.Range.High:
		result.Status = StatusHigh
	case value < result.Range.Low:
		result.Status = StatusLow
	default:
		result.Status = StatusNormal
	}
	result.OutOfRange = result.Status != StatusNormal

	return result, nil
}

// ClassifyReading recomputes the out of range flag of a reading.
func (c *Classifier) ClassifyReading(reading Reading, targets []Target) (Reading, Classification, error) {
	classification, err := c.Classify(reading.ReadingType, reading.GlucoseValue, targets, reading.ReadingDate)
	if err != nil {
		return reading, Classification{}, err
	}
	reading.OutOfRange = classification.OutOfRange
	return reading, classification, nil
}

// DefaultRange is the configured range of a reading type with unset bounds
// taken from the fallback range.
func (c *Classifier) DefaultRange(readingType ReadingType) config.Range {
	var r config.Range
	switch readingType {
	case ReadingTypeFasting:
		r = c.thresholds.Fasting
	case ReadingTypePreMeal:
		r = c.thresholds.PreMeal
	case ReadingTypePostMeal:
		r = c.thresholds.PostMeal
	case ReadingTypeBedtime:
		r = c.thresholds.Bedtime
	}
	return c.thresholds.Resolve(r)
}

// applicableTarget returns the target of the bucket with the latest effective
// date not after at. Later entries win ties.
func applicableTarget(bucket Bucket, targets []Target, at time.Time) (*Target, error) {
	var selected *Target
	for i := range targets {
		t := targets[i]
		if BucketOf(string(t.TargetType)) != bucket {
			continue
		}
		if !at.IsZero() && !t.EffectiveDate.IsZero() && effectiveAfter(t.EffectiveDate, at) {
			continue
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if selected == nil || !t.EffectiveDate.Before(selected.EffectiveDate) {
			selected = &t
		}
	}
	return selected, nil
}

func effectiveAfter(effective time.Time, at time.Time) bool {
	return effective.Format(time.DateOnly) > at.Format(time.DateOnly)
}
