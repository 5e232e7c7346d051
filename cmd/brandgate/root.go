package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/brandgate/internal/app"
	"github.com/jsamuelsen11/brandgate/internal/domain/rewrite"
	"github.com/jsamuelsen11/brandgate/internal/platform/config"
	"github.com/jsamuelsen11/brandgate/internal/platform/logging"
)

const (
	defaultConfigDir = "configs"
	defaultProfile   = "local"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	configDir string
	profile   string
	builtin   bool
	noColor   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "brandgate",
		Short: "Rewrite diagnostics about branded types into plain explanations",
		Long: `brandgate applies the gateway's rewrite rules to diagnostics read from a
file or stdin.

Rules come from the same layered configuration as the server
({config-dir}/base.yaml, {config-dir}/{profile}.yaml, APP_* env vars).
Use --builtin to skip configuration and apply the built-in brand rules.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.configDir, "config-dir", defaultConfigDir, "directory containing base.yaml and profile configs")
	f.StringVar(&opts.profile, "profile", envOr("APP_PROFILE", defaultProfile), "configuration profile (defaults to $APP_PROFILE)")
	f.BoolVar(&opts.builtin, "builtin", false, "ignore configuration and use the built-in brand rules")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newRewriteCmd(opts),
		newExplainCmd(opts),
		newRulesCmd(opts),
	)
	return cmd
}

// setup resolves the rule set and a logger writing to the command's stderr.
func (o *options) setup(cmd *cobra.Command) (*rewrite.RuleSet, *slog.Logger, error) {
	if o.builtin {
		return rewrite.Default(), logging.New("warn", "text", cmd.ErrOrStderr()), nil
	}

	cfg, err := config.Load(o.profile, config.WithConfigDir(o.configDir))
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, "text", cmd.ErrOrStderr())

	rs, err := app.BuildRuleSet(cfg.Rewrite)
	if err != nil {
		return nil, nil, fmt.Errorf("building rewrite rules: %w", err)
	}
	return rs, logger, nil
}

// engine builds an engine that logs failed replacements.
func (o *options) engine(cmd *cobra.Command) (*rewrite.Engine, error) {
	rs, logger, err := o.setup(cmd)
	if err != nil {
		return nil, err
	}
	return rewrite.NewEngine(rs, rewrite.WithObserver(app.RewriteObserver(nil, logger))), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
