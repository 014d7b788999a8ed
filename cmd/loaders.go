package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loadersCmd = &cobra.Command{
	Use:   "loaders",
	Short: "List registered fragment and template loader prefixes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range current.registry.FragmentPrefixes() {
			fmt.Printf("fragment\t%s\n", p)
		}
		for _, p := range current.registry.TemplatePrefixes() {
			fmt.Printf("template\t%s\n", p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadersCmd)
}
