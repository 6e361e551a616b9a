package cmd

import (
	"github.com/nexcard/nexcard/cmd/nexcard-cli/internal/output"
	"github.com/nexcard/nexcard/internal/theme"
	"github.com/spf13/cobra"
)

func newThemesCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the card themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.Themes(cmd.OutOrStdout(), theme.Default().All(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", output.FormatTable, "output format (table, json)")
	return cmd
}
