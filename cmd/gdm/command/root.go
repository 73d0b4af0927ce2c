package command

import (
	"fmt"
	"io"
	"os"

	"github.com/DataDog/datadog-agent/pkg/util/fxutil"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/Akkadate/gdm-app-sub001/engine"
	"github.com/Akkadate/gdm-app-sub001/errors"
)

var (
	logLevel string
	out      io.Writer = os.Stdout
)

// Run executes a given function with dependencies supplied by the analytics engine DI graph
// `f` must return an error or nothing
// `opts` can be used to supply additional arguments that are not provided by the engine
func Run(f interface{}, opts ...fx.Option) error {
	deps := append(opts, engine.Dependencies()...)
	return fxutil.OneShot(f, deps...)
}

var rootCmd = &cobra.Command{
	Use:           "gdm",
	Short:         "Gestational diabetes surveillance analytics",
	Long:          "The gdm tool runs the surveillance analytics over JSON exports of patients, glucose readings and appointments",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Overwrite zap's log level
		return os.Setenv("GDM_LOG_LEVEL", logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "v", "error", "Log Level")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
