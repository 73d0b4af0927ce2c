package command

import (
	"github.com/spf13/cobra"

	"github.com/Akkadate/gdm-app-sub001/alerts"
	"github.com/Akkadate/gdm-app-sub001/engine"
)

var alertsParams = struct {
	InputPath string
	Limit     int
}{}

var alertsCmd = &cobra.Command{
	Use:   "alerts {events.json}",
	Args:  cobra.ExactArgs(1),
	Short: "Build the alert feed",
	Long:  "The alerts command merges out of range readings and missed appointments into a single feed, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		alertsParams.InputPath = args[0]
		return Run(rankAlerts)
	},
}

func init() {
	alertsCmd.Flags().IntVar(&alertsParams.Limit, "limit", 0, "Maximum number of alerts (defaults to the configured feed limit)")

	rootCmd.AddCommand(alertsCmd)
}

type alertsInput struct {
	Glucose      []alerts.GlucoseEvent     `json:"glucose"`
	Appointments []alerts.AppointmentEvent `json:"appointments"`
}

func rankAlerts(components engine.Components) error {
	var in alertsInput
	if err := readInput(alertsParams.InputPath, &in); err != nil {
		return err
	}

	feed, err := components.Ranker.Rank(in.Glucose, in.Appointments, alertsParams.Limit)
	if err != nil {
		return err
	}
	return writeOutput(feed)
}
