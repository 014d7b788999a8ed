package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/timvw/tmux-fragments/internal/render"
	"github.com/timvw/tmux-fragments/internal/template"
)

var flagTemplateFormat string

var templateCmd = &cobra.Command{
	Use:   "template [name]",
	Short: "Print a shell-assistant system prompt template",
	Long: `Run the shassist template loader.

Names: default (shell mentor), command (bash commands only).
Output is a YAML template with name and system keys unless --format is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := render.ParseFormat(flagTemplateFormat)
		if err != nil {
			return err
		}

		var name string
		if len(args) == 1 {
			name = args[0]
		}

		tpl, err := current.registry.LoadTemplate(loaderRef(template.Prefix, name))
		if err != nil {
			return err
		}
		return render.Template(os.Stdout, tpl, format)
	},
}

func init() {
	templateCmd.Flags().StringVar(&flagTemplateFormat, "format", "yaml", "output format: yaml, json, text")
	rootCmd.AddCommand(templateCmd)
}
