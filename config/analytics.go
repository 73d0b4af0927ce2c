package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/TwiN/deepmerge"
	"github.com/mitchellh/mapstructure"

	"github.com/Akkadate/gdm-app-sub001/errors"
)

// Range is a closed [Low, High] glucose band in mg/dL. A zero bound is unset
// and resolves to the corresponding fallback bound.
type Range struct {
	Low  float64 `json:"low" mapstructure:"low"`
	High float64 `json:"high" mapstructure:"high"`
}

type GlucoseThresholds struct {
	Fasting  Range `json:"fasting" mapstructure:"fasting"`
	PreMeal  Range `json:"preMeal" mapstructure:"preMeal"`
	PostMeal Range `json:"postMeal" mapstructure:"postMeal"`
	Bedtime  Range `json:"bedtime" mapstructure:"bedtime"`
	Fallback Range `json:"fallback" mapstructure:"fallback"`
}

// Resolve fills the unset bounds of r from the fallback range.
func (t GlucoseThresholds) Resolve(r Range) Range {
	if r.Low == 0 {
		r.Low = t.Fallback.Low
	}
	if r.High == 0 {
		r.High = t.Fallback.High
	}
	return r
}

type RiskWeights struct {
	Age35Plus          int `json:"age35plus" mapstructure:"age35plus"`
	BMI30Plus          int `json:"bmi30plus" mapstructure:"bmi30plus"`
	FamilyHistory      int `json:"familyHistory" mapstructure:"familyHistory"`
	PreviousGDM        int `json:"previousGDM" mapstructure:"previousGDM"`
	PreviousMacrosomia int `json:"previousMacrosomia" mapstructure:"previousMacrosomia"`
}

// RiskCriteria are the cut-offs at which BMI and age become risk factors.
type RiskCriteria struct {
	BMI float64 `json:"bmi" mapstructure:"bmi"`
	Age int     `json:"age" mapstructure:"age"`
}

// RiskTiers are the minimum scores for the medium and high risk levels.
type RiskTiers struct {
	High   int `json:"high" mapstructure:"high"`
	Medium int `json:"medium" mapstructure:"medium"`
}

type ExpectedDailyReadings struct {
	High   int `json:"high" mapstructure:"high"`
	Medium int `json:"medium" mapstructure:"medium"`
	Low    int `json:"low" mapstructure:"low"`
}

// Analytics is the configuration injected into every calculator. Calculators
// never hard code thresholds or weights.
type Analytics struct {
	GlucoseThresholds     GlucoseThresholds     `json:"glucoseThresholds" mapstructure:"glucoseThresholds"`
	RiskWeights           RiskWeights           `json:"riskWeights" mapstructure:"riskWeights"`
	RiskCriteria          RiskCriteria          `json:"riskCriteria" mapstructure:"riskCriteria"`
	RiskTiers             RiskTiers             `json:"riskTiers" mapstructure:"riskTiers"`
	ExpectedDailyReadings ExpectedDailyReadings `json:"expectedDailyReadings" mapstructure:"expectedDailyReadings"`
	ComplianceWindowDays  int                   `json:"complianceWindowDays" mapstructure:"complianceWindowDays"`
	AlertFeedLimit        int                   `json:"alertFeedLimit" mapstructure:"alertFeedLimit"`
}

func DefaultAnalytics() *Analytics {
	return &Analytics{
		GlucoseThresholds: GlucoseThresholds{
			Fasting:  Range{Low: 70, High: 95},
			PostMeal: Range{Low: 70, High: 140},
			Fallback: Range{Low: 70, High: 180},
		},
		RiskWeights: RiskWeights{
			Age35Plus:          1,
			BMI30Plus:          1,
			FamilyHistory:      1,
			PreviousGDM:        3,
			PreviousMacrosomia: 1,
		},
		RiskCriteria: RiskCriteria{
			BMI: 30,
			Age: 35,
		},
		RiskTiers: RiskTiers{
			High:   3,
			Medium: 1,
		},
		ExpectedDailyReadings: ExpectedDailyReadings{
			High:   4,
			Medium: 2,
			Low:    1,
		},
		ComplianceWindowDays: 14,
		AlertFeedLimit:       10,
	}
}

// NewAnalytics loads the analytics configuration referenced by the service
// configuration, or the defaults when no file is configured.
func NewAnalytics(cfg *Config) (*Analytics, error) {
	if cfg == nil || cfg.AnalyticsConfigPath == "" {
		return DefaultAnalytics(), nil
	}

	overrides, err := os.ReadFile(cfg.AnalyticsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read analytics configuration: %w", err)
	}
	return LoadAnalytics(overrides)
}

// LoadAnalytics merges a JSON document of overrides onto the defaults.
// Keys may be nested objects or dotted paths such as
// "glucoseThresholds.fasting.high".
func LoadAnalytics(overrides []byte) (*Analytics, error) {
	options := make(map[string]interface{})
	if len(strings.TrimSpace(string(overrides))) > 0 {
		if err := json.Unmarshal(overrides, &options); err != nil {
			return nil, fmt.Errorf("%w: analytics configuration is not valid json: %v", errors.InvalidInput, err)
		}
	}
	return AnalyticsFromMap(options)
}

// AnalyticsFromMap applies recognized options from an arbitrary map onto the
// defaults. Unknown options are rejected.
func AnalyticsFromMap(options map[string]interface{}) (*Analytics, error) {
	defaults, err := json.Marshal(DefaultAnalytics())
	if err != nil {
		return nil, err
	}

	src, err := json.Marshal(expandDottedKeys(options))
	if err != nil {
		return nil, fmt.Errorf("%w: unable to encode analytics options: %v", errors.InvalidInput, err)
	}

	merged, err := deepmerge.JSON(defaults, src, deepmerge.Config{PreventMultipleDefinitionsOfKeysWithPrimitiveValue: false})
	if err != nil {
		return nil, fmt.Errorf("%w: unable to merge analytics options: %v", errors.InvalidInput, err)
	}

	values := make(map[string]interface{})
	if err := json.Unmarshal(merged, &values); err != nil {
		return nil, err
	}

	result := &Analytics{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(values); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.InvalidInput, err)
	}

	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

func (a *Analytics) Validate() error {
	fallback := a.GlucoseThresholds.Fallback
	if err := validateRange("glucoseThresholds.fallback", fallback); err != nil {
		return err
	}

	ranges := map[string]Range{
		"glucoseThresholds.fasting":  a.GlucoseThresholds.Fasting,
		"glucoseThresholds.preMeal":  a.GlucoseThresholds.PreMeal,
		"glucoseThresholds.postMeal": a.GlucoseThresholds.PostMeal,
		"glucoseThresholds.bedtime":  a.GlucoseThresholds.Bedtime,
	}
	for name, r := range ranges {
		if err := validateRange(name, a.GlucoseThresholds.Resolve(r)); err != nil {
			return err
		}
	}

	weights := map[string]int{
		"riskWeights.age35plus":          a.RiskWeights.Age35Plus,
		"riskWeights.bmi30plus":          a.RiskWeights.BMI30Plus,
		"riskWeights.familyHistory":      a.RiskWeights.FamilyHistory,
		"riskWeights.previousGDM":        a.RiskWeights.PreviousGDM,
		"riskWeights.previousMacrosomia": a.RiskWeights.PreviousMacrosomia,
		"expectedDailyReadings.high":     a.ExpectedDailyReadings.High,
		"expectedDailyReadings.medium":   a.ExpectedDailyReadings.Medium,
		"expectedDailyReadings.low":      a.ExpectedDailyReadings.Low,
	}
	for name, w := range weights {
		if w < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", errors.InvalidInput, name, w)
		}
	}

	if a.RiskCriteria.BMI <= 0 || a.RiskCriteria.Age <= 0 {
		return fmt.Errorf("%w: riskCriteria must be positive", errors.InvalidInput)
	}
	if a.RiskTiers.Medium <= 0 || a.RiskTiers.High < a.RiskTiers.Medium {
		return fmt.Errorf("%w: riskTiers must satisfy 0 < medium <= high", errors.InvalidInput)
	}
	if a.ComplianceWindowDays <= 0 {
		return fmt.Errorf("%w: complianceWindowDays must be positive, got %d", errors.InvalidInput, a.ComplianceWindowDays)
	}
	if a.AlertFeedLimit <= 0 {
		return fmt.Errorf("%w: alertFeedLimit must be positive, got %d", errors.InvalidInput, a.AlertFeedLimit)
	}

	return nil
}

func validateRange(name string, r Range) error {
	if math.IsNaN(r.Low) || math.IsNaN(r.High) || r.Low <= 0 || r.High <= r.Low {
		return fmt.Errorf("%w: %s must satisfy 0 < low < high, got [%v, %v]", errors.InvalidInput, name, r.Low, r.High)
	}
	return nil
}

func expandDottedKeys(options map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(options))
	for key, value := range options {
		if nested, ok := value.(map[string]interface{}); ok {
			value = expandDottedKeys(nested)
		}

		path := strings.Split(key, ".")
		current := result
		for _, segment := range path[:len(path)-1] {
			next, ok := current[segment].(map[string]interface{})
			if !ok {
				next = make(map[string]interface{})
				current[segment] = next
			}
			current = next
		}

		leaf := path[len(path)-1]
		existing, existingIsMap := current[leaf].(map[string]interface{})
		incoming, incomingIsMap := value.(map[string]interface{})
		if existingIsMap && incomingIsMap {
			for k, v := range incoming {
				existing[k] = v
			}
			continue
		}
		current[leaf] = value
	}
	return result
}
