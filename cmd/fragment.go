package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/timvw/tmux-fragments/internal/fragment"
	"github.com/timvw/tmux-fragments/internal/render"
)

var (
	flagFragmentFormat string
	flagFragmentPretty bool
	flagTheme          string
)

var fragmentCmd = &cobra.Command{
	Use:   "fragment [argument]",
	Short: "Load tmux context as one or more fragments",
	Long: `Run the tmux fragment loader and print the resulting fragments.

Arguments:
  current[:N]      active pane (default)
  %<pane_id>[:N]   specific pane id, e.g. %1:1000
  all[:N]          all panes, one fragment per pane
  sys              system info (uname, shell, aliases)

The argument may also be given as a full reference, e.g. "tmux:all:200".`,
	Example: `  tmux-fragments fragment
  tmux-fragments fragment all:200 --format text
  tmux-fragments fragment %3 --pretty`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := render.ParseFormat(flagFragmentFormat)
		if err != nil {
			return err
		}

		var arg string
		if len(args) == 1 {
			arg = args[0]
		}

		frags, err := current.registry.LoadFragments(cmd.Context(), loaderRef(fragment.Prefix, arg))
		if err != nil {
			return err
		}

		if flagFragmentPretty {
			return render.Pretty(os.Stdout, frags, render.ThemeByName(flagTheme))
		}
		return render.Fragments(os.Stdout, frags, format)
	},
}

func init() {
	fragmentCmd.Flags().StringVar(&flagFragmentFormat, "format", "json", "output format: json, yaml, text")
	fragmentCmd.Flags().BoolVar(&flagFragmentPretty, "pretty", false, "human-readable output with styled headers")
	fragmentCmd.Flags().StringVar(&flagTheme, "theme", "dark", "color theme for --pretty: dark, light")
	rootCmd.AddCommand(fragmentCmd)
}
