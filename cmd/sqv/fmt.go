package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	sqv "github.com/sqf-tools/go-sqv"
)

func fmtCmd() *cobra.Command {
	var raw bool
	var strict bool

	cmd := &cobra.Command{
		Use:     "fmt [file]",
		Short:   "Parse a literal and print its canonical form",
		Example: `  echo "[1 2 3]" | sqv fmt`,
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
			logger.Debug("parsing input", zap.String("source", name), zap.Int("bytes", len(data)))

			var opts []sqv.ParseOption
			if strict {
				opts = append(opts, sqv.Strict())
			}
			v, err := sqv.Parse(data, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			logger.Debug("parsed value", zap.Stringer("kind", v.Kind()))

			var encOpts []sqv.EncodeOption
			if raw {
				encOpts = append(encOpts, sqv.NoEscape())
			}
			out, err := sqv.Marshal(v, encOpts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print strings unquoted and unescaped")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject loosely-formed input instead of absorbing it")
	return cmd
}
