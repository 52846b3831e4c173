package main

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	sqv "github.com/sqf-tools/go-sqv"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check [file]",
		Short:   "Validate a literal against the strict grammar",
		Example: `  sqv check loadout.sqv`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			name, data, err := readInput(args)
			if err != nil {
				return err
			}

			v, err := sqv.Parse(data, sqv.Strict())
			if err != nil {
				var perr *sqv.ParseError
				if errors.As(err, &perr) {
					logger.Debug("strict parse failed",
						zap.Stringer("kind", perr.Kind),
						zap.Int("offset", perr.Offset))
					color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "%s: %s at offset %d\n", name, perr.Kind, perr.Offset)
					return errors.New("invalid literal")
				}
				return err
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s: ok (%s)\n", name, v.Kind())
			return nil
		},
	}
	return cmd
}
