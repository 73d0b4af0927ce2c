package command

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Akkadate/gdm-app-sub001/engine"
	"github.com/Akkadate/gdm-app-sub001/glucose"
)

var classifyParams = struct {
	InputPath string
}{}

var classifyCmd = &cobra.Command{
	Use:   "classify {readings.json}",
	Args:  cobra.ExactArgs(1),
	Short: "Classify glucose readings",
	Long:  "The classify command recomputes the status and the out of range flag of every reading against the configured thresholds and the patient's targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		classifyParams.InputPath = args[0]
		return Run(classify)
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

type readingsInput struct {
	Readings []glucose.Reading `json:"readings"`
	Targets  []glucose.Target  `json:"targets"`
}

type classifiedReading struct {
	glucose.Reading
	Classification glucose.Classification `json:"classification"`
}

func classify(components engine.Components, logger *zap.SugaredLogger) error {
	var in readingsInput
	if err := readInput(classifyParams.InputPath, &in); err != nil {
		return err
	}

	result := make([]classifiedReading, 0, len(in.Readings))
	for _, r := range in.Readings {
		reading, classification, err := components.Classifier.ClassifyReading(r, targetsOf(in.Targets, r.PatientId))
		if err != nil {
			return err
		}
		if reading.OutOfRange != r.OutOfRange {
			logger.Debugw("out of range flag changed", "patientId", r.PatientId, "date", r.Day(), "outOfRange", reading.OutOfRange)
		}
		result = append(result, classifiedReading{
			Reading:        reading,
			Classification: classification,
		})
	}

	return writeOutput(result)
}

// targetsOf returns the targets of a patient. Targets without a patient
// apply to everyone.
func targetsOf(targets []glucose.Target, patientId string) []glucose.Target {
	var result []glucose.Target
	for _, t := range targets {
		if t.PatientId == "" || t.PatientId == patientId {
			result = append(result, t)
		}
	}
	return result
}
