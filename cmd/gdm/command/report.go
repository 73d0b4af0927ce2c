package command

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Akkadate/gdm-app-sub001/config"
	"github.com/Akkadate/gdm-app-sub001/engine"
	"github.com/Akkadate/gdm-app-sub001/errors"
	"github.com/Akkadate/gdm-app-sub001/glucose"
	"github.com/Akkadate/gdm-app-sub001/patients"
	"github.com/Akkadate/gdm-app-sub001/report"
)

var reportParams = struct {
	InputPath  string
	OutputPath string
	Days       int
	Today      string
	From       string
}{}

var reportCmd = &cobra.Command{
	Use:   "report {patient-readings.json}",
	Args:  cobra.ExactArgs(1),
	Short: "Export a patient's surveillance report",
	Long:  "The report command assesses the patient, classifies the readings and exports the results as an xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		reportParams.InputPath = args[0]
		return Run(generateReport)
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportParams.OutputPath, "output", "o", "report.xlsx", "Output file")
	reportCmd.Flags().IntVar(&reportParams.Days, "days", 0, "Compliance window length in days (defaults to the configured window)")
	reportCmd.Flags().StringVar(&reportParams.Today, "today", "", "Last day of the report (defaults to today)")
	reportCmd.Flags().StringVar(&reportParams.From, "from", "", "First day of the glucose statistics (defaults to the start of the compliance window)")

	rootCmd.AddCommand(reportCmd)
}

type reportInput struct {
	Patient  patientInput      `json:"patient"`
	Readings []glucose.Reading `json:"readings"`
	Targets  []glucose.Target  `json:"targets"`
}

func generateReport(components engine.Components, clock config.Clock, logger *zap.SugaredLogger) error {
	var in reportInput
	if err := readInput(reportParams.InputPath, &in); err != nil {
		return err
	}
	if in.Patient.Id == "" {
		return fmt.Errorf("%w: patient id is missing", errors.InvalidInput)
	}

	if reportParams.Days < 0 {
		return fmt.Errorf("%w: --days must not be negative, got %d", errors.InvalidInput, reportParams.Days)
	}
	days := components.Compliance.WindowDays(reportParams.Days)
	from, today, err := dateRange(days, clock, reportParams.From, reportParams.Today)
	if err != nil {
		return err
	}

	profile := patients.Profile{
		Id:         in.Patient.Id,
		FullName:   in.Patient.FullName,
		Attributes: in.Patient.Attributes,
	}
	assessment, err := components.Assessor.Assess(profile.Attributes, today)
	if err != nil {
		return err
	}
	profile.Apply(assessment, clock())

	readings := make([]glucose.Reading, 0, len(in.Readings))
	for _, r := range in.Readings {
		reading, _, err := components.Classifier.ClassifyReading(r, in.Targets)
		if err != nil {
			return err
		}
		readings = append(readings, reading)
	}

	input := report.Input{
		Profile:       profile,
		GeneratedTime: clock(),
	}
	if input.Compliance, err = components.Compliance.Calculate(profile.Id, profile.RiskLevel, days, today, readings); err != nil {
		return err
	}
	if input.Averages, err = components.Statistics.Averages(readings, from, today); err != nil {
		return err
	}
	if input.Monthly, err = components.Statistics.Monthly(readings, from, today); err != nil {
		return err
	}

	f, err := report.New(input).Generate()
	if err != nil {
		return fmt.Errorf("%w: unable to generate report: %v", errors.Internal, err)
	}
	if err := f.Save(reportParams.OutputPath); err != nil {
		return fmt.Errorf("unable to save report: %w", err)
	}

	logger.Infow("report generated", "patientId", profile.Id, "riskLevel", profile.RiskLevel, "output", reportParams.OutputPath)
	return nil
}
