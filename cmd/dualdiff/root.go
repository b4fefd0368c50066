package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const logLevelEnv = "DUALDIFF_LOG_LEVEL"

// app holds state shared by all subcommands.
type app struct {
	log      *logrus.Logger
	logLevel string
}

func newRootCommand() *cobra.Command {
	a := &app{log: logrus.New()}

	cmd := &cobra.Command{
		Use:   "dualdiff",
		Short: "Exact derivatives of scalar functions by forward-mode automatic differentiation",
		Long: `dualdiff evaluates functions from a built-in catalog over dual numbers,
yielding the function value and its exact first derivative at a point.

Run "dualdiff list" to see the available functions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogging(cmd.ErrOrStderr())
		},
	}

	defaultLevel := os.Getenv(logLevelEnv)
	if defaultLevel == "" {
		defaultLevel = logrus.WarnLevel.String()
	}
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", defaultLevel,
		"log level (panic, fatal, error, warn, info, debug, trace); also "+logLevelEnv)

	cmd.AddCommand(
		newVersionCommand(),
		a.newListCommand(),
		a.newGradCommand(),
		a.newEvalCommand(),
		a.newCheckCommand(),
		a.newTableCommand(),
	)
	return cmd
}

func (a *app) setupLogging(w io.Writer) error {
	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.log.SetOutput(w)
	a.log.SetLevel(level)
	return nil
}
