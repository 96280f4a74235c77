package cli

// NewRootCmd builds the root cobra command and wires persistent logging
// flags. PersistentPreRunE installs the logger on the command context so
// every subcommand and the library underneath share it.

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jlrickert/usercfg/pkg/log"
)

type Deps struct {
	LogFile  string
	LogLevel string
	LogJSON  bool

	Shutdown func() error
}

func NewRootCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = &Deps{}
	}

	cmd := &cobra.Command{
		Use:   "usercfg",
		Short: "locate and migrate per-version user settings",
		Long: "usercfg finds the most appropriate previously saved settings file\n" +
			"for an upgraded, downgraded, or renamed application and transfers its\n" +
			"fields into a target settings store.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var out io.Writer = os.Stderr
			var logFile *os.File
			if deps.LogFile != "" {
				f, err := os.OpenFile(deps.LogFile,
					os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
				if err != nil {
					return err
				}
				out = f
				logFile = f
			}
			lg, shutdown, err := log.NewLogger(log.LoggerConfig{
				Out:     out,
				Level:   log.ParseLevel(deps.LogLevel),
				JSON:    deps.LogJSON,
				Version: Version,
			})
			if err != nil {
				return err
			}
			deps.Shutdown = func() error {
				err := shutdown()
				if logFile != nil {
					if closeErr := logFile.Close(); err == nil {
						err = closeErr
					}
				}
				return err
			}
			cmd.SetContext(log.ContextWithLogger(cmd.Context(), lg))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if deps.Shutdown != nil {
				return deps.Shutdown()
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&deps.LogFile, "log-file", "",
		"write logs to file (default stderr)")
	cmd.PersistentFlags().StringVar(&deps.LogLevel, "log-level", "info",
		"minimum log level")
	cmd.PersistentFlags().BoolVar(&deps.LogJSON, "log-json", false,
		"output logs as JSON")

	cmd.AddCommand(
		NewResolveCmd(deps),
		NewMigrateCmd(deps),
		NewVersionsCmd(deps),
		NewWatchCmd(deps),
	)

	return cmd
}
