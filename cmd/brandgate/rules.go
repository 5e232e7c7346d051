package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/brandgate/internal/adapters/http/dto"
	"github.com/jsamuelsen11/brandgate/internal/domain/rewrite"
)

func newRulesCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the effective rewrite rule set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rs, _, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), dto.ToRulesResponse(rs))
			}
			printRules(cmd.OutOrStdout(), rs)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the rule set as JSON (same shape as GET /api/v1/rules)")
	return cmd
}

func printRules(w io.Writer, rs *rewrite.RuleSet) {
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(w, "%s %q\n\n", bold("gate:"), rs.Gate())
	for i, r := range rs.Rules() {
		fmt.Fprintf(w, "%d. %s\n", i+1, cyan(r.Name))
		printRule(w, r)
	}
	if fb, ok := rs.Fallback(); ok {
		fmt.Fprintf(w, "fallback: %s\n", cyan(fb.Name))
		printRule(w, fb)
	}
}

func printRule(w io.Writer, r rewrite.Rule) {
	code := "any"
	if r.Code != nil {
		code = strconv.Itoa(*r.Code)
	}
	kind, text := rewrite.Describe(r.Replacement)

	fmt.Fprintf(w, "   code:     %s\n", code)
	fmt.Fprintf(w, "   contains: %q\n", r.Contains)
	fmt.Fprintf(w, "   %-9s %s\n", kind+":", text)
	fmt.Fprintln(w)
}
