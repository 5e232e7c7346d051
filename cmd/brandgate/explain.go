package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/brandgate/internal/domain/diagnostic"
	"github.com/jsamuelsen11/brandgate/internal/domain/rewrite"
)

const maxMessageWidth = 72

func newExplainCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [file|-]",
		Short: "Show how each diagnostic is classified",
		Long: `Print one row per diagnostic with its outcome and the rule that decided it.

Outcomes:
  rewritten    a rule or the fallback replaced the message
  failed       the winning rule's replacement failed; the message was kept
  no_match     the gate matched but no rule did
  gate_failed  the message does not mention the gate
  chain        the message is a chain and is never rewritten`,
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

			return printExplain(cmd.OutOrStdout(), ds, engine.Explain(cmd.Context(), ds))
		},
	}
}

func printExplain(w io.Writer, ds []diagnostic.Diagnostic, results []rewrite.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tCODE\tFILE\tOUTCOME\tRULE\tMESSAGE")

	counts := make(map[rewrite.Outcome]int)
	var failures []string
	for i, res := range results {
		counts[res.Outcome]++
		d := ds[i]

		rule := res.Rule
		if rule == "" {
			rule = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i, codeLabel(d.Code), location(d), colorOutcome(res.Outcome), rule,
			truncate(res.Message.String(), maxMessageWidth))

		if res.Err != nil {
			failures = append(failures, fmt.Sprintf("#%d: %v", i, res.Err))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d diagnostic(s): %s rewritten, %s failed, %d unchanged\n",
		len(results),
		color.GreenString(strconv.Itoa(counts[rewrite.OutcomeRewritten])),
		color.RedString(strconv.Itoa(counts[rewrite.OutcomeFailed])),
		counts[rewrite.OutcomeChain]+counts[rewrite.OutcomeGateFailed]+counts[rewrite.OutcomeNoMatch],
	)
	for _, f := range failures {
		fmt.Fprintf(w, "%s %s\n", color.RedString("✗"), f)
	}
	return nil
}

func colorOutcome(o rewrite.Outcome) string {
	switch o {
	case rewrite.OutcomeRewritten:
		return color.GreenString(o.String())
	case rewrite.OutcomeFailed:
		return color.RedString(o.String())
	case rewrite.OutcomeNoMatch:
		return color.YellowString(o.String())
	default:
		return color.New(color.Faint).Sprint(o.String())
	}
}

func codeLabel(code int) string {
	if code <= 0 {
		return "-"
	}
	return "TS" + strconv.Itoa(code)
}

func location(d diagnostic.Diagnostic) string {
	if d.File == "" {
		return "-"
	}
	// Positions are zero-based on the wire; editors show one-based.
	return fmt.Sprintf("%s:%d:%d", d.File, d.Range.Start.Line+1, d.Range.Start.Character+1)
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
