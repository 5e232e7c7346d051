package main

import "github.com/spf13/cobra"

func newRewriteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rewrite [file|-]",
		Short: "Rewrite diagnostics and print them as JSON",
		Long: `Read a JSON array of diagnostics and write the same array with brand-related
messages replaced. Order and length are preserved; only messageText changes.

Examples:
  # Rewrite diagnostics piped from another tool
  cat diagnostics.json | brandgate rewrite

  # Rewrite a file with the built-in rules
  brandgate rewrite --builtin diagnostics.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine(cmd)
			if err != nil {
				return err
			}
			ds, err := readDiagnostics(cmd, args)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), engine.Rewrite(cmd.Context(), ds))
		},
	}
}
