package command

import (
	"github.com/spf13/cobra"

	"github.com/Akkadate/gdm-app-sub001/config"
	"github.com/Akkadate/gdm-app-sub001/engine"
	"github.com/Akkadate/gdm-app-sub001/risk"
)

var assessParams = struct {
	InputPath string
	Date      string
}{}

var assessCmd = &cobra.Command{
	Use:   "assess {patients.json}",
	Args:  cobra.ExactArgs(1),
	Short: "Assess the GDM risk of patients",
	Long:  "The assess command computes BMI, age, risk factors, score and level of every patient in the input file, then prints the risk level distribution",
	RunE: func(cmd *cobra.Command, args []string) error {
		assessParams.InputPath = args[0]
		return Run(assess)
	},
}

func init() {
	assessCmd.Flags().StringVar(&assessParams.Date, "date", "", "Assessment date (defaults to today)")

	rootCmd.AddCommand(assessCmd)
}

type patientAssessment struct {
	PatientId string `json:"patientId"`
	risk.Assessment
}

type assessOutput struct {
	Assessments  []patientAssessment `json:"assessments"`
	Distribution risk.Counts         `json:"distribution"`
}

func assess(components engine.Components, clock config.Clock) error {
	var in []patientInput
	if err := readInput(assessParams.InputPath, &in); err != nil {
		return err
	}
	now, err := parseDate("date", assessParams.Date, clock())
	if err != nil {
		return err
	}

	result := assessOutput{Assessments: make([]patientAssessment, 0, len(in))}
	levels := make([]risk.Level, 0, len(in))
	for _, patient := range in {
		assessment, err := components.Assessor.Assess(patient.Attributes, now)
		if err != nil {
			return err
		}
		result.Assessments = append(result.Assessments, patientAssessment{
			PatientId:  patient.Id,
			Assessment: assessment,
		})
		levels = append(levels, assessment.RiskLevel)
	}
	result.Distribution = risk.Distribution(levels)

	return writeOutput(result)
}

type patientInput struct {
	Id       string  `json:"id"`
	FullName *string `json:"fullName,omitempty"`
	risk.Attributes
}
