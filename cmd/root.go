package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/timvw/tmux-fragments/internal/config"
	"github.com/timvw/tmux-fragments/internal/fragment"
	"github.com/timvw/tmux-fragments/internal/logging"
	"github.com/timvw/tmux-fragments/internal/mux"
	telemetry "github.com/timvw/tmux-fragments/internal/otel"
	"github.com/timvw/tmux-fragments/internal/plugin"
	"go.uber.org/zap"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

var (
	// Global flags.
	flagTmux      string
	flagProvider  string
	flagModel     string
	flagBaseURL   string
	flagAPIKey    string
	flagMaxTokens int64
	flagLogLevel  string
	flagVerbose   bool
)

// app is the per-invocation wiring built in PersistentPreRunE.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	telemetry *telemetry.Telemetry
	mux       mux.Multiplexer
	registry  *plugin.Registry
}

var current *app

var rootCmd = &cobra.Command{
	Use:   "tmux-fragments",
	Short: "tmux fragment and shell-assistant template loaders for LLM prompts",
	Long: `tmux-fragments captures terminal context from tmux and serves it as prompt
fragments, alongside two shell-assistant system prompt templates.

Fragment arguments (prefix "tmux"):
  current[:N]      active pane, last N lines
  %<pane_id>[:N]   specific pane, e.g. %1:1000
  all[:N]          every pane, one fragment each
  sys              uname -a, $SHELL, aliases

N defaults to tmux's history-limit.

Templates (prefix "shassist"): default, command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		current = a
		return nil
	},
}

// Execute runs the root command and exits with a code derived from the error kind.
func Execute() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(int(MapExitCode(err)))
	}
}

// run executes one command line. Telemetry and logs are flushed whether or
// not the command fails; cobra skips post-run hooks on error.
func run(args []string) error {
	rootCmd.SetArgs(args)
	defer shutdown()
	return rootCmd.Execute()
}

func shutdown() {
	if current == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	current.telemetry.Shutdown(ctx)
	_ = current.logger.Sync()
	current = nil
}

// loaderRef turns an argument into a "<prefix>:<argument>" reference. An
// argument that already carries the prefix, in any case, keeps its own
// argument part.
func loaderRef(prefix, arg string) string {
	if strings.HasPrefix(strings.ToLower(arg), prefix+":") {
		return prefix + arg[len(prefix):]
	}
	return prefix + ":" + arg
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().StringVar(&flagTmux, "tmux", "", "tmux binary (default: tmux, or tmux_binary from config)")
	rootCmd.PersistentFlags().StringVar(&flagProvider, "provider", "", "LLM provider for ask: anthropic, openai")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "LLM model name (default: claude-sonnet-4-5 for anthropic, gpt-4o-mini for openai)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "override LLM API base URL")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "override LLM API key")
	rootCmd.PersistentFlags().Int64Var(&flagMaxTokens, "max-tokens", 0, "max completion tokens (default: 4096)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging to stderr")
}

// newApp loads config, applies flag overrides and wires the loaders.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)
	cfg.ResolveAPIKey(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel, flagVerbose)
	if err != nil {
		return nil, err
	}
	if cfg.ConfigFile != "" {
		logger.Debug("loaded config file", zap.String("path", cfg.ConfigFile))
	}

	telemetry.Version = Version
	tel, err := telemetry.Init(cmd.Context(), telemetry.OTELConfig{
		Endpoint: cfg.OTELEndpoint,
		Headers:  cfg.OTELHeaders,
	})
	if err != nil {
		return nil, err
	}

	m, err := mux.FromName("tmux",
		mux.WithBinary(cfg.TmuxBinary),
		mux.WithDefaultHistoryLimit(cfg.HistoryLimitDefault),
		mux.WithLogger(logger.Named("tmux")),
	)
	if err != nil {
		return nil, err
	}

	builder := fragment.NewBuilder(m,
		fragment.WithShell(cfg.Shell),
		fragment.WithLogger(logger.Named("fragment")),
		fragment.WithMetrics(tel.Metrics),
	)
	registry := plugin.NewRegistry()
	plugin.Register(registry, builder, tel.Metrics)

	return &app{
		cfg:       cfg,
		logger:    logger,
		telemetry: tel,
		mux:       m,
		registry:  registry,
	}, nil
}

// applyFlags lets explicitly set flags win over config and environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("tmux") {
		cfg.TmuxBinary = flagTmux
	}
	if flags.Changed("provider") {
		cfg.Provider = flagProvider
	}
	if flags.Changed("model") {
		cfg.Model = flagModel
	}
	if flags.Changed("base-url") {
		cfg.BaseURL = flagBaseURL
	}
	if flags.Changed("api-key") {
		cfg.APIKey = flagAPIKey
	}
	if flags.Changed("max-tokens") {
		cfg.MaxTokens = flagMaxTokens
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
}
