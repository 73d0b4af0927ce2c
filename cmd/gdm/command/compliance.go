package command

import (
	"github.com/spf13/cobra"

	"github.com/Akkadate/gdm-app-sub001/config"
	"github.com/Akkadate/gdm-app-sub001/engine"
	"github.com/Akkadate/gdm-app-sub001/glucose"
	"github.com/Akkadate/gdm-app-sub001/risk"
)

var complianceParams = struct {
	InputPath string
	Days      int
	Today     string
}{}

var complianceCmd = &cobra.Command{
	Use:   "compliance {patient-readings.json}",
	Args:  cobra.ExactArgs(1),
	Short: "Compute monitoring compliance",
	Long:  "The compliance command compares the readings logged each day with the number expected for the patient's risk level",
	RunE: func(cmd *cobra.Command, args []string) error {
		complianceParams.InputPath = args[0]
		return Run(calculateCompliance)
	},
}

func init() {
	complianceCmd.Flags().IntVar(&complianceParams.Days, "days", 0, "Window length in days (defaults to the configured window)")
	complianceCmd.Flags().StringVar(&complianceParams.Today, "today", "", "Last day of the window (defaults to today)")

	rootCmd.AddCommand(complianceCmd)
}

type complianceInput struct {
	PatientId string            `json:"patientId"`
	RiskLevel string            `json:"riskLevel"`
	Readings  []glucose.Reading `json:"readings"`
}

func calculateCompliance(components engine.Components, clock config.Clock) error {
	var in complianceInput
	if err := readInput(complianceParams.InputPath, &in); err != nil {
		return err
	}
	level, err := risk.ParseLevel(in.RiskLevel)
	if err != nil {
		return err
	}
	today, err := parseDate("today", complianceParams.Today, clock())
	if err != nil {
		return err
	}

	report, err := components.Compliance.Calculate(in.PatientId, level, complianceParams.Days, today, in.Readings)
	if err != nil {
		return err
	}
	return writeOutput(report)
}
