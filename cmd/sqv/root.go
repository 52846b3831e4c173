package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var debug bool

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sqv",
		Short:         "Work with SQF value literals",
		Long:          "sqv parses, validates and canonicalizes SQF value literals (arrays, strings, booleans and numbers).",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(fmtCmd())
	cmd.AddCommand(checkCmd())
	return cmd
}

func newLogger() (*zap.Logger, error) {
	logConf := zap.NewDevelopmentConfig()
	if debug {
		logConf.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		logConf.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return logConf.Build()
}

// readInput reads the named file, or stdin when the argument is absent
// or "-".
func readInput(args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		return "stdin", data, err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return args[0], nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return args[0], data, nil
}
