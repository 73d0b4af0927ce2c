package command

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Akkadate/gdm-app-sub001/config"
	"github.com/Akkadate/gdm-app-sub001/engine"
	"github.com/Akkadate/gdm-app-sub001/statistics"
)

var statsParams = struct {
	InputPath string
	From      string
	To        string
}{}

var statsCmd = &cobra.Command{
	Use:   "stats {readings.json}",
	Args:  cobra.ExactArgs(1),
	Short: "Aggregate glucose readings",
	Long:  "The stats command computes averages by reading type, by day and by month over a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		statsParams.InputPath = args[0]
		return Run(aggregate)
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsParams.From, "from", "", "First day of the range (defaults to the start of the compliance window)")
	statsCmd.Flags().StringVar(&statsParams.To, "to", "", "Last day of the range (defaults to today)")

	rootCmd.AddCommand(statsCmd)
}

type statsOutput struct {
	From     string                     `json:"from"`
	To       string                     `json:"to"`
	Averages statistics.Averages        `json:"averagesByType"`
	Daily    []statistics.DailyAverage  `json:"dailyAverages"`
	Monthly  []statistics.MonthlyBucket `json:"monthly"`
}

func aggregate(components engine.Components, clock config.Clock) error {
	var in readingsInput
	if err := readInput(statsParams.InputPath, &in); err != nil {
		return err
	}
	from, to, err := dateRange(components.Compliance.WindowDays(0), clock, statsParams.From, statsParams.To)
	if err != nil {
		return err
	}

	result := statsOutput{From: from.Format(time.DateOnly), To: to.Format(time.DateOnly)}
	if result.Averages, err = components.Statistics.Averages(in.Readings, from, to); err != nil {
		return err
	}
	if result.Daily, err = components.Statistics.Daily(in.Readings, from, to); err != nil {
		return err
	}
	if result.Monthly, err = components.Statistics.Monthly(in.Readings, from, to); err != nil {
		return err
	}
	return writeOutput(result)
}
