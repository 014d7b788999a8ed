package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/timvw/tmux-fragments/internal/config"
	"github.com/timvw/tmux-fragments/internal/llm"
	"github.com/timvw/tmux-fragments/internal/model"
	"go.uber.org/zap"
)

var (
	flagAskFragments []string
	flagAskTemplate  string
)

var askCmd = &cobra.Command{
	Use:   "ask [question...]",
	Short: "Ask an LLM with tmux fragments and a shassist template",
	Long: `Resolve fragment and template references through the loaders and send
them to the configured LLM provider, acting as a minimal host.

Fragments are placed before the question in the order given.`,
	Example: `  tmux-fragments ask -f tmux:current:200 "why did the build fail?"
  tmux-fragments ask -t shassist:command -f tmux:sys "find large files in ~"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		question := strings.Join(args, " ")
		if strings.TrimSpace(question) == "" && len(flagAskFragments) == 0 {
			return model.NewError(model.ErrInvalidArgument, "nothing to ask: give a question or at least one -f fragment")
		}

		tpl, err := current.registry.LoadTemplate(flagAskTemplate)
		if err != nil {
			return err
		}

		var frags []model.Fragment
		for _, ref := range flagAskFragments {
			loaded, err := current.registry.LoadFragments(ctx, ref)
			if err != nil {
				return err
			}
			frags = append(frags, loaded...)
		}

		completer, err := newCompleter(current.cfg)
		if err != nil {
			return err
		}

		current.logger.Debug("sending prompt",
			zap.String("provider", completer.Provider()),
			zap.String("model", completer.Model()),
			zap.String("template", tpl.Name),
			zap.Int("fragments", len(frags)))

		resp, err := completer.Complete(ctx, tpl.System, llm.BuildUserMessage(frags, question))
		if err != nil {
			return err
		}
		current.telemetry.Metrics.RecordTokens(ctx, completer.Provider(), completer.Model(),
			resp.Usage.InputTokens, resp.Usage.OutputTokens)

		fmt.Fprintln(os.Stdout, strings.TrimRight(resp.Text, "\n"))
		return nil
	},
}

// newCompleter returns the completer for the configured provider.
func newCompleter(cfg *config.Config) (llm.Completer, error) {
	switch cfg.Provider {
	case "anthropic":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("no API key found. Set TMUX_FRAGMENTS_API_KEY or ANTHROPIC_API_KEY")
		}
		return llm.NewAnthropicCompleter(llm.AnthropicConfig{
			BaseURL:   cfg.BaseURL,
			APIKey:    cfg.APIKey,
			Model:     cfg.DefaultModel(),
			MaxTokens: cfg.MaxTokens,
		}), nil
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("no API key found. Set TMUX_FRAGMENTS_API_KEY or OPENAI_API_KEY")
		}
		return llm.NewOpenAICompleter(llm.OpenAIConfig{
			BaseURL:   cfg.BaseURL,
			APIKey:    cfg.APIKey,
			Model:     cfg.DefaultModel(),
			MaxTokens: cfg.MaxTokens,
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (supported: anthropic, openai)", cfg.Provider)
	}
}

func init() {
	askCmd.Flags().StringArrayVarP(&flagAskFragments, "fragment", "f", nil, "fragment reference, e.g. tmux:current:200 (repeatable)")
	askCmd.Flags().StringVarP(&flagAskTemplate, "template", "t", "shassist:default", "template reference")
	rootCmd.AddCommand(askCmd)
}
